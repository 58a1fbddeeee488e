// Package toast provides transient user feedback with an optional one-shot
// action, typically "Undo" after a destructive operation.
package toast

import (
	"sync"
	"time"
)

// DefaultWindow is how long a toast (and its action) stays live.
const DefaultWindow = 5 * time.Second

// Action is a one-shot follow-up the user may trigger while the toast is
// visible.
type Action struct {
	Label string
	Run   func()
}

// Toast is a single transient notification.
type Toast struct {
	Message string
	Action  *Action
}

// Notifier holds at most one live toast. Showing a new toast replaces the
// previous one and invalidates its action; the window elapsing does the same.
type Notifier struct {
	mu      sync.Mutex
	window  time.Duration
	seq     int
	current *Toast
	timer   *time.Timer
	sink    func(Toast)
}

// NewNotifier returns a notifier with the given window. A non-positive
// window falls back to DefaultWindow.
func NewNotifier(window time.Duration) *Notifier {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Notifier{window: window}
}

// OnShow registers a sink invoked for every shown toast. Used by the CLI to
// print feedback lines.
func (n *Notifier) OnShow(sink func(Toast)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sink = sink
}

// Show displays a toast, replacing any previous one.
func (n *Notifier) Show(message string, action *Action) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	id := n.seq
	n.current = &Toast{Message: message, Action: action}
	n.timer = time.AfterFunc(n.window, func() {
		n.expire(id)
	})
	sink := n.sink
	current := *n.current
	n.mu.Unlock()

	if sink != nil {
		sink(current)
	}
}

// Hide dismisses the current toast and invalidates its action.
func (n *Notifier) Hide() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = nil
}

// Current returns the visible toast, or nil once it was dismissed or the
// window elapsed.
func (n *Notifier) Current() *Toast {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	t := *n.current
	return &t
}

// Invoke runs the current toast's action, if any, and dismisses the toast.
// It reports whether an action ran. The action runs at most once.
func (n *Notifier) Invoke() bool {
	n.mu.Lock()
	if n.current == nil || n.current.Action == nil || n.current.Action.Run == nil {
		n.mu.Unlock()
		return false
	}
	run := n.current.Action.Run
	if n.timer != nil {
		n.timer.Stop()
	}
	n.current = nil
	n.mu.Unlock()

	run()
	return true
}

func (n *Notifier) expire(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.seq == id {
		n.current = nil
	}
}
