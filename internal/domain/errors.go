package domain

import "errors"

// Domain errors.
var (
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrMissingEventTimes = errors.New("event requires a start and an end")
	ErrMissingDue        = errors.New("task requires a due date or time")
	ErrEndBeforeStart    = errors.New("event end is before its start")
	ErrItemNotFound      = errors.New("item not found")
	ErrFieldMismatch     = errors.New("field does not apply to this item type")
	ErrNothingToUndo     = errors.New("nothing to undo")
	ErrStoreNotFound     = errors.New("item storage not found")
)
