package domain

import (
	"slices"
	"time"
)

// Command is the kind of operation a parsed Intent requests.
type Command string

const (
	CmdAddEvent Command = "add_event"
	CmdAddTask  Command = "add_task"
	CmdAddPlan  Command = "add_plan"
	CmdList     Command = "list"
	CmdDelete   Command = "delete"
	CmdEdit     Command = "edit"
	CmdUndo     Command = "undo"
	CmdSave     Command = "save"
	CmdExit     Command = "exit"

	// CmdUnknown marks input whose first token matched no keyword.
	// Such intents always carry ParseFail and are never executed.
	CmdUnknown Command = "unknown"
)

// IsAdd reports whether the command creates an item.
func (c Command) IsAdd() bool {
	return c == CmdAddEvent || c == CmdAddTask || c == CmdAddPlan
}

// ParseStatus communicates whether raw input was understood.
type ParseStatus string

const (
	ParseSuccess ParseStatus = "success"
	ParseFail    ParseStatus = "fail"
)

// EditField names the single field an EDIT command touches.
type EditField string

const (
	FieldTitle     EditField = "title"
	FieldStartDate EditField = "start_date"
	FieldStartTime EditField = "start_time"
	FieldEndDate   EditField = "end_date"
	FieldEndTime   EditField = "end_time"
	FieldDueDate   EditField = "due_date"
	FieldDueTime   EditField = "due_time"
)

// QueryKind selects how a LIST command filters the store.
type QueryKind string

const (
	QueryAll     QueryKind = "all"
	QueryHashtag QueryKind = "hashtag"
	QueryRange   QueryKind = "range"
)

// Query is the payload of a LIST intent.
type Query struct {
	Kind QueryKind
	Tag  string    // QueryHashtag only
	From time.Time // QueryRange only, inclusive
	To   time.Time // QueryRange only, inclusive
}

// Intent is a parsed command plus its typed payload. Which fields are
// populated depends on Command; everything else stays at its zero value.
type Intent struct {
	Start time.Time // add_event
	End   time.Time // add_event
	Due   time.Time // add_task

	Query Query // list

	Title string   // add_*
	Tags  []string // add_*, without the '#' marker

	Text string    // edit title payload
	Date Date      // edit *_date payload
	Time TimeOfDay // edit *_time payload

	Command Command
	Status  ParseStatus
	Field   EditField // edit

	ID int // delete, edit
}

// Failed creates a FAIL intent for the given command; it carries no
// usable payload and is never executed.
func Failed(cmd Command) *Intent {
	return &Intent{Command: cmd, Status: ParseFail}
}

// Clone returns a deep copy. The undo ledger stores clones so later
// mutation of live data cannot corrupt a pending inverse.
func (in *Intent) Clone() *Intent {
	out := *in
	out.Tags = slices.Clone(in.Tags)
	return &out
}
