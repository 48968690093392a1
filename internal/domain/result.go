package domain

// ExecStatus communicates the outcome of executing an Intent.
//
// ExecNull means the intent was never executed because parsing failed;
// it is distinct from ExecFail, which is a validation, lookup or
// storage failure of a well-formed command.
type ExecStatus string

const (
	ExecSuccess ExecStatus = "success"
	ExecFail    ExecStatus = "fail"
	ExecNull    ExecStatus = "null"
)

// Result is the structured response to one executed (or short-circuited)
// Intent. Item is set for ADD/DELETE/EDIT successes, Items for LIST.
type Result struct {
	Item    *Item
	Items   []Item
	Command Command
	Parse   ParseStatus
	Exec    ExecStatus
}

// OK reports whether the command both parsed and executed successfully.
func (r *Result) OK() bool {
	return r.Parse == ParseSuccess && r.Exec == ExecSuccess
}
