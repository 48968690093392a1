package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/laulijun/udo/internal/domain"
)

// Engine executes parsed intents against the item cache, records
// inverse intents for undo, and delegates persistence to the storage
// port. It owns the cache and the ledger exclusively; callers interact
// only through Execute, Load, ItemsOn and ItemsBetween.
//
// The engine assumes a single caller: one command is parsed and
// executed to completion before the next. Exposing it to concurrent
// callers requires external mutual exclusion around the whole
// look-up/mutate/record sequence.
type Engine struct {
	cache   *Cache
	undo    *UndoLedger
	storage domain.ItemStorage
	log     domain.Logger
}

// New creates an engine with an empty cache. A nil logger disables
// logging.
func New(storage domain.ItemStorage, log domain.Logger) *Engine {
	if log == nil {
		log = domain.NopLogger{}
	}
	return &Engine{
		cache:   NewCache(),
		undo:    NewUndoLedger(),
		storage: storage,
		log:     log,
	}
}

// Load replaces the cache contents from storage. A missing store is
// treated as an empty one; other read failures are returned but leave
// the engine usable with an empty cache.
func (e *Engine) Load() error {
	e.cache.Clear()
	items, err := e.storage.Load()
	if err != nil {
		if errors.Is(err, domain.ErrStoreNotFound) {
			e.log.Info("engine", "no stored items, starting empty")
			return nil
		}
		e.log.Error("engine", fmt.Sprintf("load failed: %v", err))
		return fmt.Errorf("load items: %w", err)
	}
	e.cache.Restore(items)
	e.log.Info("engine", fmt.Sprintf("loaded %d items", len(items)))
	return nil
}

// Execute runs one intent and always returns a non-nil result.
//
// A nil intent or an empty command is a programming error and panics;
// a FAIL parse status is expected input and short-circuits to an
// ExecNull result without touching the cache or the ledger.
func (e *Engine) Execute(in *domain.Intent) *domain.Result {
	if in == nil {
		panic("engine: nil intent")
	}
	if in.Command == "" {
		panic("engine: intent without command")
	}

	if in.Status == domain.ParseFail {
		return &domain.Result{Command: in.Command, Parse: domain.ParseFail, Exec: domain.ExecNull}
	}

	var res *domain.Result
	switch in.Command {
	case domain.CmdAddEvent, domain.CmdAddTask, domain.CmdAddPlan:
		res = e.runAdd(in)
	case domain.CmdDelete:
		res = e.runDelete(in)
	case domain.CmdEdit:
		res = e.runEdit(in)
	case domain.CmdList:
		res = e.runList(in)
	case domain.CmdUndo:
		res = e.runUndo()
	case domain.CmdSave:
		res = e.runSave()
	case domain.CmdExit:
		res = e.runExit()
	default:
		res = &domain.Result{Command: in.Command, Exec: domain.ExecFail}
	}

	// Only successfully parsed intents reach this point.
	res.Parse = domain.ParseSuccess
	return res
}

// ItemsOn returns the items relevant to the given calendar day, for the
// presentation layer's today view.
func (e *Engine) ItemsOn(day time.Time) []domain.Item {
	return e.cache.ItemsOn(day)
}

// ItemsBetween returns the items inside the inclusive range, for the
// presentation layer's upcoming view.
func (e *Engine) ItemsBetween(from, to time.Time) []domain.Item {
	return e.cache.ItemsBetween(from, to)
}

// runUndo consumes the pending inverse and re-executes it as if freshly
// parsed. With nothing pending it reports a failed no-op rather than
// faulting.
func (e *Engine) runUndo() *domain.Result {
	inverse, ok := e.undo.Take()
	if !ok {
		e.log.Debug("engine", "undo with empty ledger")
		return &domain.Result{Command: domain.CmdUndo, Exec: domain.ExecFail}
	}
	inverse.Status = domain.ParseSuccess
	e.log.Info("engine", fmt.Sprintf("undo replays %s", inverse.Command))
	return e.Execute(inverse)
}

// runSave writes the full item list through the storage port.
func (e *Engine) runSave() *domain.Result {
	res := &domain.Result{Command: domain.CmdSave, Exec: domain.ExecSuccess}
	if err := e.storage.Save(e.cache.All()); err != nil {
		e.log.Error("engine", fmt.Sprintf("save failed: %v", err))
		res.Exec = domain.ExecFail
	}
	return res
}

// runExit saves first but succeeds regardless: a failed save must not
// trap the user in the program. The failure is logged by runSave.
func (e *Engine) runExit() *domain.Result {
	e.runSave()
	return &domain.Result{Command: domain.CmdExit, Exec: domain.ExecSuccess}
}
