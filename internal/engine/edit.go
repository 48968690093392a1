package engine

import (
	"fmt"

	"github.com/laulijun/udo/internal/domain"
)

// runEdit mutates one field of one item. Date edits replace the
// year/month/day while preserving the time of day; time edits do the
// opposite. The field must apply to the item's type: start/end fields
// are events-only, due fields tasks-only. The inverse is a field-scoped
// edit intent holding the prior value.
func (e *Engine) runEdit(in *domain.Intent) *domain.Result {
	it, ok := e.cache.Get(in.ID)
	if !ok {
		return &domain.Result{Command: domain.CmdEdit, Exec: domain.ExecFail}
	}

	inverse := &domain.Intent{
		Command: domain.CmdEdit,
		Status:  domain.ParseSuccess,
		ID:      in.ID,
		Field:   in.Field,
	}

	switch in.Field {
	case domain.FieldTitle:
		inverse.Text = it.Title
		it.Title = in.Text
	case domain.FieldStartDate:
		if it.Type != domain.TypeEvent {
			return e.editMismatch(it, in.Field)
		}
		inverse.Date = domain.DateOf(it.Start)
		it.Start = in.Date.In(it.Start)
	case domain.FieldStartTime:
		if it.Type != domain.TypeEvent {
			return e.editMismatch(it, in.Field)
		}
		inverse.Time = domain.TimeOfDay{Hour: it.Start.Hour(), Minute: it.Start.Minute()}
		it.Start = in.Time.In(it.Start)
	case domain.FieldEndDate:
		if it.Type != domain.TypeEvent {
			return e.editMismatch(it, in.Field)
		}
		inverse.Date = domain.DateOf(it.End)
		it.End = in.Date.In(it.End)
	case domain.FieldEndTime:
		if it.Type != domain.TypeEvent {
			return e.editMismatch(it, in.Field)
		}
		inverse.Time = domain.TimeOfDay{Hour: it.End.Hour(), Minute: it.End.Minute()}
		it.End = in.Time.In(it.End)
	case domain.FieldDueDate:
		if it.Type != domain.TypeTask {
			return e.editMismatch(it, in.Field)
		}
		inverse.Date = domain.DateOf(it.Due)
		it.Due = in.Date.In(it.Due)
	case domain.FieldDueTime:
		if it.Type != domain.TypeTask {
			return e.editMismatch(it, in.Field)
		}
		inverse.Time = domain.TimeOfDay{Hour: it.Due.Hour(), Minute: it.Due.Minute()}
		it.Due = in.Time.In(it.Due)
	default:
		return &domain.Result{Command: domain.CmdEdit, Exec: domain.ExecFail}
	}

	if in.Field == domain.FieldTitle && it.Title == "" {
		return &domain.Result{Command: domain.CmdEdit, Exec: domain.ExecFail}
	}

	e.cache.Update(it)
	e.undo.Record(inverse)
	e.log.Info("engine", fmt.Sprintf("edited %s of #%d", in.Field, in.ID))
	return &domain.Result{Command: domain.CmdEdit, Exec: domain.ExecSuccess, Item: &it}
}

// editMismatch reports an edit against a field the item type does not
// carry; the item is left unchanged and nothing is recorded for undo.
func (e *Engine) editMismatch(it domain.Item, field domain.EditField) *domain.Result {
	e.log.Warn("engine", fmt.Sprintf("cannot edit %s of a %s", field, it.Type))
	return &domain.Result{Command: domain.CmdEdit, Exec: domain.ExecFail}
}
