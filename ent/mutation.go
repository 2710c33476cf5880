// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Nighteyez07/disc-golf-putting-tr/ent/predicate"
	"github.com/Nighteyez07/disc-golf-putting-tr/ent/sessionrecord"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeSessionRecord = "SessionRecord"
)

// SessionRecordMutation represents an operation that mutates the SessionRecord nodes in the graph.
type SessionRecordMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	session_id          *string
	start_time          *time.Time
	end_time            *time.Time
	penalty_mode        *bool
	current_position    *int
	addcurrent_position *int
	final_score         *int
	addfinal_score      *int
	positions           *[]*game.Position
	appendpositions     []*game.Position
	summary             **game.Summary
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*SessionRecord, error)
	predicates          []predicate.SessionRecord
}

var _ ent.Mutation = (*SessionRecordMutation)(nil)

// sessionrecordOption allows management of the mutation configuration using functional options.
type sessionrecordOption func(*SessionRecordMutation)

// newSessionRecordMutation creates new mutation for the SessionRecord entity.
func newSessionRecordMutation(c config, op Op, opts ...sessionrecordOption) *SessionRecordMutation {
	m := &SessionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeSessionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionRecordID sets the ID field of the mutation.
func withSessionRecordID(id int) sessionrecordOption {
	return func(m *SessionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *SessionRecord
		)
		m.oldValue = func(ctx context.Context) (*SessionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SessionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSessionRecord sets the old SessionRecord of the mutation.
func withSessionRecord(node *SessionRecord) sessionrecordOption {
	return func(m *SessionRecordMutation) {
		m.oldValue = func(context.Context) (*SessionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SessionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *SessionRecordMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *SessionRecordMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *SessionRecordMutation) ResetSessionID() {
	m.session_id = nil
}

// SetStartTime sets the "start_time" field.
func (m *SessionRecordMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *SessionRecordMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *SessionRecordMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *SessionRecordMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *SessionRecordMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *SessionRecordMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[sessionrecord.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *SessionRecordMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[sessionrecord.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *SessionRecordMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, sessionrecord.FieldEndTime)
}

// SetPenaltyMode sets the "penalty_mode" field.
func (m *SessionRecordMutation) SetPenaltyMode(b bool) {
	m.penalty_mode = &b
}

// PenaltyMode returns the value of the "penalty_mode" field in the mutation.
func (m *SessionRecordMutation) PenaltyMode() (r bool, exists bool) {
	v := m.penalty_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldPenaltyMode returns the old "penalty_mode" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldPenaltyMode(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPenaltyMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPenaltyMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPenaltyMode: %w", err)
	}
	return oldValue.PenaltyMode, nil
}

// ResetPenaltyMode resets all changes to the "penalty_mode" field.
func (m *SessionRecordMutation) ResetPenaltyMode() {
	m.penalty_mode = nil
}

// SetCurrentPosition sets the "current_position" field.
func (m *SessionRecordMutation) SetCurrentPosition(i int) {
	m.current_position = &i
	m.addcurrent_position = nil
}

// CurrentPosition returns the value of the "current_position" field in the mutation.
func (m *SessionRecordMutation) CurrentPosition() (r int, exists bool) {
	v := m.current_position
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentPosition returns the old "current_position" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldCurrentPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentPosition: %w", err)
	}
	return oldValue.CurrentPosition, nil
}

// AddCurrentPosition adds i to the "current_position" field.
func (m *SessionRecordMutation) AddCurrentPosition(i int) {
	if m.addcurrent_position != nil {
		*m.addcurrent_position += i
	} else {
		m.addcurrent_position = &i
	}
}

// AddedCurrentPosition returns the value that was added to the "current_position" field in this mutation.
func (m *SessionRecordMutation) AddedCurrentPosition() (r int, exists bool) {
	v := m.addcurrent_position
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentPosition resets all changes to the "current_position" field.
func (m *SessionRecordMutation) ResetCurrentPosition() {
	m.current_position = nil
	m.addcurrent_position = nil
}

// SetFinalScore sets the "final_score" field.
func (m *SessionRecordMutation) SetFinalScore(i int) {
	m.final_score = &i
	m.addfinal_score = nil
}

// FinalScore returns the value of the "final_score" field in the mutation.
func (m *SessionRecordMutation) FinalScore() (r int, exists bool) {
	v := m.final_score
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalScore returns the old "final_score" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldFinalScore(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalScore: %w", err)
	}
	return oldValue.FinalScore, nil
}

// AddFinalScore adds i to the "final_score" field.
func (m *SessionRecordMutation) AddFinalScore(i int) {
	if m.addfinal_score != nil {
		*m.addfinal_score += i
	} else {
		m.addfinal_score = &i
	}
}

// AddedFinalScore returns the value that was added to the "final_score" field in this mutation.
func (m *SessionRecordMutation) AddedFinalScore() (r int, exists bool) {
	v := m.addfinal_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearFinalScore clears the value of the "final_score" field.
func (m *SessionRecordMutation) ClearFinalScore() {
	m.final_score = nil
	m.addfinal_score = nil
	m.clearedFields[sessionrecord.FieldFinalScore] = struct{}{}
}

// FinalScoreCleared returns if the "final_score" field was cleared in this mutation.
func (m *SessionRecordMutation) FinalScoreCleared() bool {
	_, ok := m.clearedFields[sessionrecord.FieldFinalScore]
	return ok
}

// ResetFinalScore resets all changes to the "final_score" field.
func (m *SessionRecordMutation) ResetFinalScore() {
	m.final_score = nil
	m.addfinal_score = nil
	delete(m.clearedFields, sessionrecord.FieldFinalScore)
}

// SetPositions sets the "positions" field.
func (m *SessionRecordMutation) SetPositions(ga []*game.Position) {
	m.positions = &ga
	m.appendpositions = nil
}

// Positions returns the value of the "positions" field in the mutation.
func (m *SessionRecordMutation) Positions() (r []*game.Position, exists bool) {
	v := m.positions
	if v == nil {
		return
	}
	return *v, true
}

// OldPositions returns the old "positions" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldPositions(ctx context.Context) (v []*game.Position, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPositions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPositions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPositions: %w", err)
	}
	return oldValue.Positions, nil
}

// AppendPositions adds ga to the "positions" field.
func (m *SessionRecordMutation) AppendPositions(ga []*game.Position) {
	m.appendpositions = append(m.appendpositions, ga...)
}

// AppendedPositions returns the list of values that were appended to the "positions" field in this mutation.
func (m *SessionRecordMutation) AppendedPositions() ([]*game.Position, bool) {
	if len(m.appendpositions) == 0 {
		return nil, false
	}
	return m.appendpositions, true
}

// ResetPositions resets all changes to the "positions" field.
func (m *SessionRecordMutation) ResetPositions() {
	m.positions = nil
	m.appendpositions = nil
}

// SetSummary sets the "summary" field.
func (m *SessionRecordMutation) SetSummary(ga *game.Summary) {
	m.summary = &ga
}

// Summary returns the value of the "summary" field in the mutation.
func (m *SessionRecordMutation) Summary() (r *game.Summary, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the SessionRecord entity.
// If the SessionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionRecordMutation) OldSummary(ctx context.Context) (v *game.Summary, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *SessionRecordMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[sessionrecord.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *SessionRecordMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[sessionrecord.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *SessionRecordMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, sessionrecord.FieldSummary)
}

// Where appends a list predicates to the SessionRecordMutation builder.
func (m *SessionRecordMutation) Where(ps ...predicate.SessionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SessionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SessionRecord).
func (m *SessionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionRecordMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.session_id != nil {
		fields = append(fields, sessionrecord.FieldSessionID)
	}
	if m.start_time != nil {
		fields = append(fields, sessionrecord.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, sessionrecord.FieldEndTime)
	}
	if m.penalty_mode != nil {
		fields = append(fields, sessionrecord.FieldPenaltyMode)
	}
	if m.current_position != nil {
		fields = append(fields, sessionrecord.FieldCurrentPosition)
	}
	if m.final_score != nil {
		fields = append(fields, sessionrecord.FieldFinalScore)
	}
	if m.positions != nil {
		fields = append(fields, sessionrecord.FieldPositions)
	}
	if m.summary != nil {
		fields = append(fields, sessionrecord.FieldSummary)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case sessionrecord.FieldSessionID:
		return m.SessionID()
	case sessionrecord.FieldStartTime:
		return m.StartTime()
	case sessionrecord.FieldEndTime:
		return m.EndTime()
	case sessionrecord.FieldPenaltyMode:
		return m.PenaltyMode()
	case sessionrecord.FieldCurrentPosition:
		return m.CurrentPosition()
	case sessionrecord.FieldFinalScore:
		return m.FinalScore()
	case sessionrecord.FieldPositions:
		return m.Positions()
	case sessionrecord.FieldSummary:
		return m.Summary()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case sessionrecord.FieldSessionID:
		return m.OldSessionID(ctx)
	case sessionrecord.FieldStartTime:
		return m.OldStartTime(ctx)
	case sessionrecord.FieldEndTime:
		return m.OldEndTime(ctx)
	case sessionrecord.FieldPenaltyMode:
		return m.OldPenaltyMode(ctx)
	case sessionrecord.FieldCurrentPosition:
		return m.OldCurrentPosition(ctx)
	case sessionrecord.FieldFinalScore:
		return m.OldFinalScore(ctx)
	case sessionrecord.FieldPositions:
		return m.OldPositions(ctx)
	case sessionrecord.FieldSummary:
		return m.OldSummary(ctx)
	}
	return nil, fmt.Errorf("unknown SessionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case sessionrecord.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case sessionrecord.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case sessionrecord.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case sessionrecord.FieldPenaltyMode:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPenaltyMode(v)
		return nil
	case sessionrecord.FieldCurrentPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentPosition(v)
		return nil
	case sessionrecord.FieldFinalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalScore(v)
		return nil
	case sessionrecord.FieldPositions:
		v, ok := value.([]*game.Position)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPositions(v)
		return nil
	case sessionrecord.FieldSummary:
		v, ok := value.(*game.Summary)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	}
	return fmt.Errorf("unknown SessionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionRecordMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_position != nil {
		fields = append(fields, sessionrecord.FieldCurrentPosition)
	}
	if m.addfinal_score != nil {
		fields = append(fields, sessionrecord.FieldFinalScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case sessionrecord.FieldCurrentPosition:
		return m.AddedCurrentPosition()
	case sessionrecord.FieldFinalScore:
		return m.AddedFinalScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case sessionrecord.FieldCurrentPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentPosition(v)
		return nil
	case sessionrecord.FieldFinalScore:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFinalScore(v)
		return nil
	}
	return fmt.Errorf("unknown SessionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(sessionrecord.FieldEndTime) {
		fields = append(fields, sessionrecord.FieldEndTime)
	}
	if m.FieldCleared(sessionrecord.FieldFinalScore) {
		fields = append(fields, sessionrecord.FieldFinalScore)
	}
	if m.FieldCleared(sessionrecord.FieldSummary) {
		fields = append(fields, sessionrecord.FieldSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionRecordMutation) ClearField(name string) error {
	switch name {
	case sessionrecord.FieldEndTime:
		m.ClearEndTime()
		return nil
	case sessionrecord.FieldFinalScore:
		m.ClearFinalScore()
		return nil
	case sessionrecord.FieldSummary:
		m.ClearSummary()
		return nil
	}
	return fmt.Errorf("unknown SessionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionRecordMutation) ResetField(name string) error {
	switch name {
	case sessionrecord.FieldSessionID:
		m.ResetSessionID()
		return nil
	case sessionrecord.FieldStartTime:
		m.ResetStartTime()
		return nil
	case sessionrecord.FieldEndTime:
		m.ResetEndTime()
		return nil
	case sessionrecord.FieldPenaltyMode:
		m.ResetPenaltyMode()
		return nil
	case sessionrecord.FieldCurrentPosition:
		m.ResetCurrentPosition()
		return nil
	case sessionrecord.FieldFinalScore:
		m.ResetFinalScore()
		return nil
	case sessionrecord.FieldPositions:
		m.ResetPositions()
		return nil
	case sessionrecord.FieldSummary:
		m.ResetSummary()
		return nil
	}
	return fmt.Errorf("unknown SessionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SessionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SessionRecord edge %s", name)
}
