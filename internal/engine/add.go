package engine

import (
	"fmt"

	"github.com/laulijun/udo/internal/domain"
)

// runAdd constructs an item from the intent, inserts it, and records a
// delete-by-id inverse. Construction re-validates the payload, so an
// intent assembled outside the parser (an undo replay, a test) gets the
// same checks.
func (e *Engine) runAdd(in *domain.Intent) *domain.Result {
	var (
		it  domain.Item
		err error
	)
	switch in.Command {
	case domain.CmdAddEvent:
		it, err = domain.NewEvent(in.Title, in.Tags, in.Start, in.End)
	case domain.CmdAddTask:
		it, err = domain.NewTask(in.Title, in.Tags, in.Due)
	default:
		it, err = domain.NewPlan(in.Title, in.Tags)
	}
	if err != nil {
		e.log.Warn("engine", fmt.Sprintf("add rejected: %v", err))
		return &domain.Result{Command: in.Command, Exec: domain.ExecFail}
	}

	it = e.cache.Insert(it)
	e.undo.Record(&domain.Intent{
		Command: domain.CmdDelete,
		Status:  domain.ParseSuccess,
		ID:      it.ID,
	})

	e.log.Info("engine", fmt.Sprintf("added %s #%d %q", it.Type, it.ID, it.Title))
	return &domain.Result{Command: in.Command, Exec: domain.ExecSuccess, Item: &it}
}
