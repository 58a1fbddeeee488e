package entry

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTitleAndBody(t *testing.T) {
	e := &Entry{Content: "buy milk\noat, not dairy\ncheck the fridge first"}
	if got := e.Title(); got != "buy milk" {
		t.Errorf("Title = %q", got)
	}
	if got := e.Body(); got != "oat, not dairy\ncheck the fridge first" {
		t.Errorf("Body = %q", got)
	}

	single := &Entry{Content: "just a title"}
	if got := single.Title(); got != "just a title" {
		t.Errorf("Title = %q", got)
	}
	if got := single.Body(); got != "" {
		t.Errorf("Body should be empty, got %q", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	e := &Entry{ID: "a", Content: "x", Status: StatusTodo}
	c := e.Clone()
	c.Status = StatusDone
	if e.Status != StatusTodo {
		t.Fatalf("mutating the clone changed the original")
	}
}

func TestParseRecurrence(t *testing.T) {
	tests := []struct {
		raw      string
		expected Recurrence
	}{
		{"", RecurrenceNone},
		{"daily", RecurrenceDaily},
		{"Weekly", RecurrenceWeekly},
		{" MONTHLY ", RecurrenceMonthly},
	}
	for _, tc := range tests {
		got, err := ParseRecurrence(tc.raw)
		if err != nil {
			t.Errorf("ParseRecurrence(%q): %v", tc.raw, err)
		}
		if got != tc.expected {
			t.Errorf("ParseRecurrence(%q) = %q, expected %q", tc.raw, got, tc.expected)
		}
	}

	if _, err := ParseRecurrence("fortnightly"); err == nil {
		t.Errorf("ParseRecurrence should reject unknown rules")
	}
}

func TestNextDate(t *testing.T) {
	tests := []struct {
		rule Recurrence
		date string
		next string
	}{
		{RecurrenceDaily, "2026-08-28", "2026-08-29"},
		{RecurrenceDaily, "2026-08-31", "2026-09-01"},
		{RecurrenceWeekly, "2026-08-28", "2026-09-04"},
		{RecurrenceMonthly, "2026-08-28", "2026-09-28"},
		// Overflow normalizes forward rather than clamping.
		{RecurrenceMonthly, "2026-01-31", "2026-03-03"},
		{RecurrenceNone, "2026-08-28", ""},
		{RecurrenceDaily, "not a date", ""},
		{RecurrenceDaily, "", ""},
	}
	for _, tc := range tests {
		if got := tc.rule.NextDate(tc.date); got != tc.next {
			t.Errorf("%s.NextDate(%q) = %q, expected %q", tc.rule, tc.date, got, tc.next)
		}
	}
}

func TestTimestampJSON(t *testing.T) {
	stamp := Timestamp{Time: time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)}
	data, err := json.Marshal(&stamp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2026-08-28T10:30:00Z"` {
		t.Fatalf("unexpected encoding: %s", data)
	}

	var back Timestamp
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(stamp.Time) {
		t.Fatalf("round trip changed the time: %v", back)
	}

	var zero Timestamp
	data, err = json.Marshal(&zero)
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(data) != `""` {
		t.Fatalf("zero timestamp should encode as empty string, got %s", data)
	}

	var decoded Timestamp
	if err := json.Unmarshal([]byte(`""`), &decoded); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !decoded.IsZero() {
		t.Fatalf("empty string should decode to the zero time")
	}
}
