package engine

import (
	"fmt"

	"github.com/laulijun/udo/internal/domain"
)

// runDelete removes the item and records an add intent carrying every
// field of the removed item, so an undo re-creates it. The re-created
// item gets a fresh ID: retired IDs are never reused.
func (e *Engine) runDelete(in *domain.Intent) *domain.Result {
	it, ok := e.cache.Get(in.ID)
	if !ok {
		return &domain.Result{Command: domain.CmdDelete, Exec: domain.ExecFail}
	}
	e.cache.Delete(in.ID)

	e.undo.Record(inverseAdd(it))
	e.log.Info("engine", fmt.Sprintf("deleted %s #%d %q", it.Type, it.ID, it.Title))
	return &domain.Result{Command: domain.CmdDelete, Exec: domain.ExecSuccess, Item: &it}
}

// inverseAdd builds the add intent that re-creates a deleted item, the
// add command matching the deleted item's type.
func inverseAdd(it domain.Item) *domain.Intent {
	in := &domain.Intent{
		Status: domain.ParseSuccess,
		Title:  it.Title,
		Tags:   it.Tags,
		Start:  it.Start,
		End:    it.End,
		Due:    it.Due,
	}
	switch it.Type {
	case domain.TypeEvent:
		in.Command = domain.CmdAddEvent
	case domain.TypeTask:
		in.Command = domain.CmdAddTask
	default:
		in.Command = domain.CmdAddPlan
	}
	return in
}
