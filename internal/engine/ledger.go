package engine

import "github.com/laulijun/udo/internal/domain"

// UndoLedger holds at most one pending inverse intent. It is a single
// slot, not a stack: every successful mutation overwrites whatever was
// pending, and UNDO consumes it.
type UndoLedger struct {
	pending *domain.Intent
}

// NewUndoLedger creates an empty ledger.
func NewUndoLedger() *UndoLedger {
	return &UndoLedger{}
}

// Record stores a deep copy of the inverse intent, replacing any
// previously pending one.
func (u *UndoLedger) Record(in *domain.Intent) {
	u.pending = in.Clone()
}

// Take removes and returns the pending inverse, or false when there is
// nothing to undo.
func (u *UndoLedger) Take() (*domain.Intent, bool) {
	if u.pending == nil {
		return nil, false
	}
	in := u.pending
	u.pending = nil
	return in, true
}

// Pending reports whether an inverse is waiting.
func (u *UndoLedger) Pending() bool {
	return u.pending != nil
}

// Clear drops any pending inverse.
func (u *UndoLedger) Clear() {
	u.pending = nil
}
