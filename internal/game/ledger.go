package game

// MaxLedgerDepth bounds the undo history. The oldest snapshot is dropped
// when a new action pushes past it.
const MaxLedgerDepth = 10

// ledgerEntry pairs a deep-copied position snapshot with the session
// penalty flag at capture time. Entries are value-independent of the live
// session: mutating the session never touches a stored snapshot.
type ledgerEntry struct {
	index       int
	position    *Position
	penaltyMode bool
}

// Ledger is the bounded undo/redo history over putt-recording actions
// within the current position. It never crosses a position boundary: the
// engine clears it whenever a position finalizes or the session restarts.
type Ledger struct {
	undo []ledgerEntry
	redo []ledgerEntry
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Push captures the pre-mutation state of the position at index before a
// new putt is recorded. New actions invalidate any redo history.
func (l *Ledger) Push(index int, pos *Position, penaltyMode bool) {
	l.undo = append(l.undo, ledgerEntry{index: index, position: pos.Clone(), penaltyMode: penaltyMode})
	if len(l.undo) > MaxLedgerDepth {
		l.undo = l.undo[len(l.undo)-MaxLedgerDepth:]
	}
	l.redo = nil
}

// CanUndo reports whether an undo is permitted: the stack is non-empty and
// the current position has not completed.
func (l *Ledger) CanUndo(s *Session) bool {
	return len(l.undo) > 0 && !s.Current().Completed
}

// CanRedo reports whether a redo is permitted.
func (l *Ledger) CanRedo() bool {
	return len(l.redo) > 0
}

// Undo restores the most recent snapshot into the session and moves the
// pre-undo state onto the redo stack. Safe to call when not permitted: it
// is a no-op returning false.
func (l *Ledger) Undo(s *Session) bool {
	if !l.CanUndo(s) {
		return false
	}
	entry := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]

	l.redo = append(l.redo, ledgerEntry{
		index:       entry.index,
		position:    s.Positions[entry.index].Clone(),
		penaltyMode: s.PenaltyMode,
	})
	restore(s, entry)
	return true
}

// Redo reapplies the most recently undone action. No-op returning false
// when the redo stack is empty.
func (l *Ledger) Redo(s *Session) bool {
	if !l.CanRedo() {
		return false
	}
	entry := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]

	l.undo = append(l.undo, ledgerEntry{
		index:       entry.index,
		position:    s.Positions[entry.index].Clone(),
		penaltyMode: s.PenaltyMode,
	})
	restore(s, entry)
	return true
}

// Clear empties both stacks. Called on position finalization and restart.
func (l *Ledger) Clear() {
	l.undo = nil
	l.redo = nil
}

func restore(s *Session, entry ledgerEntry) {
	s.Positions[entry.index] = entry.position.Clone()
	s.PenaltyMode = entry.penaltyMode
}
