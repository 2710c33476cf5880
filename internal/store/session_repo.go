package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Nighteyez07/disc-golf-putting-tr/ent"
	"github.com/Nighteyez07/disc-golf-putting-tr/ent/sessionrecord"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
)

// DefaultHistoryLimit caps history queries when the caller passes no limit.
const DefaultHistoryLimit = 50

// SessionRepo persists putting sessions. Loads return (nil, nil) when no
// matching session exists.
type SessionRepo interface {
	// SaveCurrent upserts the in-progress session. Best-effort for
	// callers on the autosave path.
	SaveCurrent(ctx context.Context, s *game.Session) error

	// LoadCurrent returns the most recent unfinished session.
	LoadCurrent(ctx context.Context) (*game.Session, error)

	// ClearCurrent marks the named session ended so it no longer loads
	// as current. No-op if the session is already finalized or absent.
	ClearCurrent(ctx context.Context, sessionID string) error

	// Archive upserts a finalized session. Failures propagate: the
	// engine must not lose a finished round.
	Archive(ctx context.Context, s *game.Session) error

	// Get returns a session by ID.
	Get(ctx context.Context, sessionID string) (*game.Session, error)

	// History returns finalized sessions, most recent first.
	History(ctx context.Context, limit int) ([]*game.Session, error)

	// DeleteOldest removes the count oldest finalized sessions and
	// reports how many were deleted.
	DeleteOldest(ctx context.Context, count int) (int, error)
}

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

// The repo satisfies the engine's persistence contract.
var _ game.SessionStore = (*sessionRepo)(nil)

func (r *sessionRepo) SaveCurrent(ctx context.Context, s *game.Session) error {
	if err := r.upsert(ctx, s); err != nil {
		return fmt.Errorf("save current session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Archive(ctx context.Context, s *game.Session) error {
	if err := r.upsert(ctx, s); err != nil {
		return fmt.Errorf("archive session: %w", err)
	}
	return nil
}

// upsert writes the full session state, replacing any existing row with the
// same session ID.
func (r *sessionRepo) upsert(ctx context.Context, s *game.Session) error {
	update := r.client.SessionRecord.Update().
		Where(sessionrecord.SessionID(s.SessionID)).
		SetStartTime(s.StartTime).
		SetPenaltyMode(s.PenaltyMode).
		SetCurrentPosition(s.CurrentNumber).
		SetPositions(s.Positions)
	if s.EndTime != nil {
		update = update.SetEndTime(*s.EndTime)
	} else {
		update = update.ClearEndTime()
	}
	if s.FinalScore != nil {
		update = update.SetFinalScore(*s.FinalScore)
	} else {
		update = update.ClearFinalScore()
	}
	if s.Summary != nil {
		update = update.SetSummary(s.Summary)
	} else {
		update = update.ClearSummary()
	}

	n, err := update.Save(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	create := r.client.SessionRecord.Create().
		SetSessionID(s.SessionID).
		SetStartTime(s.StartTime).
		SetPenaltyMode(s.PenaltyMode).
		SetCurrentPosition(s.CurrentNumber).
		SetPositions(s.Positions)
	if s.EndTime != nil {
		create = create.SetEndTime(*s.EndTime)
	}
	if s.FinalScore != nil {
		create = create.SetFinalScore(*s.FinalScore)
	}
	if s.Summary != nil {
		create = create.SetSummary(s.Summary)
	}
	_, err = create.Save(ctx)
	return err
}

func (r *sessionRepo) LoadCurrent(ctx context.Context) (*game.Session, error) {
	rec, err := r.client.SessionRecord.Query().
		Where(sessionrecord.EndTimeIsNil()).
		Order(ent.Desc(sessionrecord.FieldStartTime)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load current session: %w", err)
	}

	s := recordToSession(rec)
	for _, diag := range s.Repair() {
		fmt.Fprintf(os.Stderr, "warning: loaded session integrity: %s\n", diag)
	}
	return s, nil
}

func (r *sessionRepo) ClearCurrent(ctx context.Context, sessionID string) error {
	_, err := r.client.SessionRecord.Update().
		Where(
			sessionrecord.SessionID(sessionID),
			sessionrecord.EndTimeIsNil(),
		).
		SetEndTime(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("clear current session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*game.Session, error) {
	rec, err := r.client.SessionRecord.Query().
		Where(sessionrecord.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return recordToSession(rec), nil
}

func (r *sessionRepo) History(ctx context.Context, limit int) ([]*game.Session, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	recs, err := r.client.SessionRecord.Query().
		Where(sessionrecord.EndTimeNotNil()).
		Order(ent.Desc(sessionrecord.FieldStartTime)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session history: %w", err)
	}

	sessions := make([]*game.Session, 0, len(recs))
	for _, rec := range recs {
		sessions = append(sessions, recordToSession(rec))
	}
	return sessions, nil
}

func (r *sessionRepo) DeleteOldest(ctx context.Context, count int) (int, error) {
	recs, err := r.client.SessionRecord.Query().
		Where(sessionrecord.EndTimeNotNil()).
		Order(ent.Asc(sessionrecord.FieldStartTime)).
		Limit(count).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query oldest sessions: %w", err)
	}
	if len(recs) == 0 {
		return 0, nil
	}

	ids := make([]int, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ID)
	}
	n, err := r.client.SessionRecord.Delete().
		Where(sessionrecord.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete oldest sessions: %w", err)
	}
	return n, nil
}

// recordToSession rebuilds a domain session from a persisted row.
func recordToSession(rec *ent.SessionRecord) *game.Session {
	s := &game.Session{
		SessionID:     rec.SessionID,
		StartTime:     rec.StartTime,
		PenaltyMode:   rec.PenaltyMode,
		CurrentNumber: rec.CurrentPosition,
		Positions:     rec.Positions,
		Summary:       rec.Summary,
	}
	if rec.EndTime != nil {
		t := *rec.EndTime
		s.EndTime = &t
	}
	if rec.FinalScore != nil {
		v := *rec.FinalScore
		s.FinalScore = &v
	}
	return s
}
