package game

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"
)

// Engine errors. Callers hitting these issued a request the current state
// cannot accept; session state is left untouched.
var (
	ErrSessionComplete = errors.New("session already finalized")
	ErrChoicePending   = errors.New("attempt budget exhausted: resolve restart or penalty first")
	ErrNoChoicePending = errors.New("no exhaustion choice pending")
)

// Outcome tells the caller what a recorded putt led to.
type Outcome int

const (
	// OutcomeRecorded: putt logged, position still in progress.
	OutcomeRecorded Outcome = iota
	// OutcomeAdvanced: position completed, the next one is active.
	OutcomeAdvanced
	// OutcomeChoiceRequired: budget exhausted without three sinks; the
	// caller must resolve restart vs continue-with-penalty.
	OutcomeChoiceRequired
	// OutcomeSessionComplete: position nine completed, round finalized.
	OutcomeSessionComplete
)

// SessionStore is the persistence collaborator the engine writes through.
// SaveCurrent is best-effort; Archive must be awaited before the current
// pointer is cleared.
type SessionStore interface {
	SaveCurrent(ctx context.Context, s *Session) error
	Archive(ctx context.Context, s *Session) error
	ClearCurrent(ctx context.Context, sessionID string) error
}

// Engine drives a session through the progression rules. It is the single
// mutating entry point: callers invoke one action at a time and must not
// overlap invocations (the TUI event loop and an HTTP handler chain both
// serialize naturally).
type Engine struct {
	session       *Session
	ledger        *Ledger
	store         SessionStore
	choicePending bool
}

// NewEngine wraps a session. A nil session starts a fresh round; a nil
// store disables persistence.
func NewEngine(s *Session, store SessionStore) *Engine {
	if s == nil {
		s = NewSession()
	}
	return &Engine{session: s, ledger: NewLedger(), store: store}
}

// Session exposes the engine's session for rendering and persistence.
func (e *Engine) Session() *Session {
	return e.session
}

// ChoicePending reports whether an exhaustion choice is awaiting resolution.
func (e *Engine) ChoicePending() bool {
	return e.choicePending
}

// RecordPutt applies one putt outcome to the active position and runs the
// completion rules. The pre-mutation state is snapshotted for undo before
// anything changes.
func (e *Engine) RecordPutt(ctx context.Context, result PuttResult) (Outcome, error) {
	if e.session.Finalized() {
		return OutcomeRecorded, ErrSessionComplete
	}
	if e.choicePending {
		return OutcomeRecorded, ErrChoicePending
	}

	pos := e.session.Current()
	e.ledger.Push(e.session.CurrentNumber-1, pos, e.session.PenaltyMode)
	pos.Record(result, time.Now())

	// Finalize immediately on the third sink so no putt can ever land on a
	// completed position.
	if pos.PuttsSunk >= PuttsRequired {
		return e.completeCurrent(ctx)
	}

	if pos.Exhausted() && !e.session.PenaltyMode {
		e.choicePending = true
		return OutcomeChoiceRequired, nil
	}

	return OutcomeRecorded, nil
}

// ContinueWithPenalty resolves the exhaustion choice by electing penalty
// scoring. The flag is sticky for the rest of the session and the position
// stays open, taking over-budget putts until the third sink.
func (e *Engine) ContinueWithPenalty() error {
	if !e.choicePending {
		return ErrNoChoicePending
	}
	e.choicePending = false
	e.session.PenaltyMode = true
	e.session.Current().Status = StatusContinuedPenalty
	return nil
}

// Restart resolves the exhaustion choice by discarding the whole round and
// starting fresh. The old session is not archived, and its autosaved row is
// retired so it can never resurface as the current round.
func (e *Engine) Restart(ctx context.Context) *Session {
	old := e.session.SessionID
	e.session = NewSession()
	e.ledger.Clear()
	e.choicePending = false
	if e.store != nil {
		if err := e.store.ClearCurrent(ctx, old); err != nil {
			fmt.Fprintf(os.Stderr, "warning: clear discarded session: %v\n", err)
		}
	}
	e.saveBestEffort(ctx)
	return e.session
}

// completeCurrent finalizes the active position, applies carryover to the
// next one, and either advances or ends the round.
func (e *Engine) completeCurrent(ctx context.Context) (Outcome, error) {
	pos := e.session.Current()
	if pos.Status != StatusContinuedPenalty {
		pos.Status = StatusSuccess
	}
	pos.Completed = true
	pos.PositionScore = pos.Score(e.session.PenaltyMode)
	pos.AccuracyRate = pos.Accuracy()

	// Undo never crosses a position boundary.
	e.ledger.Clear()

	if e.session.CurrentNumber < PositionCount {
		carry := pos.Carryover()
		e.session.Positions[e.session.CurrentNumber] = NewPosition(e.session.CurrentNumber+1, carry)
		e.session.CurrentNumber++
		e.saveBestEffort(ctx)
		return OutcomeAdvanced, nil
	}

	if err := e.finalize(ctx); err != nil {
		return OutcomeSessionComplete, err
	}
	return OutcomeSessionComplete, nil
}

// finalize ends the round: integrity repair, end time, score, summary, then
// archival. The current-session pointer is only cleared once archival
// succeeds, so a finished-but-unarchived round is never lost.
func (e *Engine) finalize(ctx context.Context) error {
	s := e.session
	for _, diag := range s.Repair() {
		fmt.Fprintf(os.Stderr, "warning: session integrity: %s\n", diag)
	}

	now := time.Now()
	s.EndTime = &now
	score := s.Score()
	s.FinalScore = &score
	summary := s.BuildSummary()
	s.Summary = &summary

	return e.archiveAndClear(ctx)
}

// RetryFinalize re-attempts archival of an already finalized session after
// an archive failure.
func (e *Engine) RetryFinalize(ctx context.Context) error {
	if !e.session.Finalized() {
		return errors.New("session not finalized")
	}
	return e.archiveAndClear(ctx)
}

func (e *Engine) archiveAndClear(ctx context.Context) error {
	if e.store == nil {
		return nil
	}
	if err := e.store.Archive(ctx, e.session); err != nil {
		return fmt.Errorf("archive session: %w", err)
	}
	if err := e.store.ClearCurrent(ctx, e.session.SessionID); err != nil {
		// The archived row already carries an end time, so a stale
		// current pointer is harmless; the next load skips it.
		fmt.Fprintf(os.Stderr, "warning: clear current session: %v\n", err)
	}
	return nil
}

// CanUndo reports whether the last putt can be reverted.
func (e *Engine) CanUndo() bool {
	return e.ledger.CanUndo(e.session)
}

// CanRedo reports whether an undone putt can be reapplied.
func (e *Engine) CanRedo() bool {
	return e.ledger.CanRedo()
}

// Undo reverts the most recent putt-recording action. Safe no-op when not
// permitted. A pending exhaustion choice is dissolved, since the reverted
// putt is the one that exhausted the budget.
func (e *Engine) Undo() bool {
	if !e.ledger.Undo(e.session) {
		return false
	}
	e.choicePending = false
	return true
}

// Redo reapplies the most recently undone putt. Safe no-op when not
// permitted. If the restored state has the budget exhausted again in a
// penalty-free session, the choice point is re-surfaced.
func (e *Engine) Redo() bool {
	if !e.ledger.Redo(e.session) {
		return false
	}
	pos := e.session.Current()
	e.choicePending = pos.Exhausted() && !e.session.PenaltyMode && pos.PuttsSunk < PuttsRequired
	return true
}

// Save persists the in-progress session. Best-effort: callers on the
// autosave path log and swallow the error.
func (e *Engine) Save(ctx context.Context) error {
	if e.store == nil || e.session.Finalized() {
		return nil
	}
	if err := e.store.SaveCurrent(ctx, e.session); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (e *Engine) saveBestEffort(ctx context.Context) {
	if err := e.Save(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
}
