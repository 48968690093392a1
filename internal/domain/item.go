// Package domain contains core business entities and interfaces.
package domain

import (
	"slices"
	"time"
)

// ItemType identifies the kind of a stored item.
type ItemType string

const (
	TypeEvent ItemType = "event" // has a start and an end
	TypeTask  ItemType = "task"  // has a due date/time
	TypePlan  ItemType = "plan"  // no temporal fields
)

// Item is one stored event, task or plan.
// Only the temporal fields appropriate to Type are populated; the
// constructors below enforce that, so a zero Start/End/Due means
// "not applicable", never "midnight of year one happens to matter".
// Fields are ordered to minimize memory padding.
type Item struct {
	Start time.Time `json:"start,omitempty" yaml:"start,omitempty"` // events only
	End   time.Time `json:"end,omitempty" yaml:"end,omitempty"`     // events only
	Due   time.Time `json:"due,omitempty" yaml:"due,omitempty"`     // tasks only
	Type  ItemType  `json:"type" yaml:"type"`
	Title string    `json:"title" yaml:"title"`
	Tags  []string  `json:"tags,omitempty" yaml:"tags,omitempty"` // without the '#' marker
	ID    int       `json:"id" yaml:"id"`
}

// NewEvent creates an event item. The ID is assigned by the store on insert.
func NewEvent(title string, tags []string, start, end time.Time) (Item, error) {
	if title == "" {
		return Item{}, ErrEmptyTitle
	}
	if start.IsZero() || end.IsZero() {
		return Item{}, ErrMissingEventTimes
	}
	if end.Before(start) {
		return Item{}, ErrEndBeforeStart
	}
	return Item{Type: TypeEvent, Title: title, Tags: slices.Clone(tags), Start: start, End: end}, nil
}

// NewTask creates a task item with a due date/time.
func NewTask(title string, tags []string, due time.Time) (Item, error) {
	if title == "" {
		return Item{}, ErrEmptyTitle
	}
	if due.IsZero() {
		return Item{}, ErrMissingDue
	}
	return Item{Type: TypeTask, Title: title, Tags: slices.Clone(tags), Due: due}, nil
}

// NewPlan creates a plan item, which carries no date or time.
func NewPlan(title string, tags []string) (Item, error) {
	if title == "" {
		return Item{}, ErrEmptyTitle
	}
	return Item{Type: TypePlan, Title: title, Tags: slices.Clone(tags)}, nil
}

// When returns the item's ordering timestamp: start for events, due for
// tasks. The second return is false for plans, which have no timestamp.
func (it Item) When() (time.Time, bool) {
	switch it.Type {
	case TypeEvent:
		return it.Start, true
	case TypeTask:
		return it.Due, true
	default:
		return time.Time{}, false
	}
}

// HasTag reports whether the item carries the given tag (marker stripped).
func (it Item) HasTag(tag string) bool {
	return slices.Contains(it.Tags, tag)
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	out := it
	out.Tags = slices.Clone(it.Tags)
	return out
}

// Compare orders items chronologically by their When timestamp.
// Plans sort after dated items; all ties break by ID so the order is total.
func Compare(a, b Item) int {
	aw, aok := a.When()
	bw, bok := b.When()
	switch {
	case aok && bok:
		if c := aw.Compare(bw); c != 0 {
			return c
		}
	case aok:
		return -1
	case bok:
		return 1
	}
	return a.ID - b.ID
}

// SortItems sorts items in place by Compare.
func SortItems(items []Item) {
	slices.SortFunc(items, Compare)
}
