package toast

import (
	"testing"
	"time"
)

func TestShowAndCurrent(t *testing.T) {
	n := NewNotifier(time.Minute)
	n.Show("hello", nil)

	current := n.Current()
	if current == nil || current.Message != "hello" {
		t.Fatalf("unexpected current toast: %+v", current)
	}
}

func TestWindowExpiry(t *testing.T) {
	n := NewNotifier(10 * time.Millisecond)
	n.Show("fleeting", nil)

	deadline := time.Now().Add(time.Second)
	for n.Current() != nil {
		if time.Now().After(deadline) {
			t.Fatalf("toast never expired")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestShowReplacesPrevious(t *testing.T) {
	n := NewNotifier(time.Minute)
	first := 0
	n.Show("first", &Action{Label: "Undo", Run: func() { first++ }})
	n.Show("second", nil)

	if got := n.Current(); got == nil || got.Message != "second" {
		t.Fatalf("expected the second toast, got %+v", got)
	}
	if n.Invoke() {
		t.Fatalf("the replaced toast's action must be gone")
	}
	if first != 0 {
		t.Fatalf("the replaced action ran")
	}
}

func TestInvokeRunsActionOnce(t *testing.T) {
	n := NewNotifier(time.Minute)
	runs := 0
	n.Show("deleted", &Action{Label: "Undo", Run: func() { runs++ }})

	if !n.Invoke() {
		t.Fatalf("expected the action to run")
	}
	if runs != 1 {
		t.Fatalf("expected one run, got %d", runs)
	}
	if n.Current() != nil {
		t.Fatalf("invoking dismisses the toast")
	}
	if n.Invoke() {
		t.Fatalf("the action is one-shot")
	}
	if runs != 1 {
		t.Fatalf("the action ran again")
	}
}

func TestHideInvalidatesAction(t *testing.T) {
	n := NewNotifier(time.Minute)
	n.Show("deleted", &Action{Label: "Undo", Run: func() {}})
	n.Hide()

	if n.Current() != nil {
		t.Fatalf("hidden toast still visible")
	}
	if n.Invoke() {
		t.Fatalf("a hidden toast's action must not run")
	}
}

func TestOnShowSinkReceivesToasts(t *testing.T) {
	n := NewNotifier(time.Minute)
	var seen []string
	n.OnShow(func(toast Toast) { seen = append(seen, toast.Message) })

	n.Show("one", nil)
	n.Show("two", nil)

	if len(seen) != 2 || seen[0] != "one" || seen[1] != "two" {
		t.Fatalf("unexpected sink calls: %v", seen)
	}
}
