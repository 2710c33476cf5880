// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Nighteyez07/disc-golf-putting-tr/ent/predicate"
	"github.com/Nighteyez07/disc-golf-putting-tr/ent/sessionrecord"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
)

// SessionRecordUpdate is the builder for updating SessionRecord entities.
type SessionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *SessionRecordMutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdate) Where(ps ...predicate.SessionRecord) *SessionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdate) SetSessionID(v string) *SessionRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableSessionID(v *string) *SessionRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SessionRecordUpdate) SetStartTime(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableStartTime(v *time.Time) *SessionRecordUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SessionRecordUpdate) SetEndTime(v time.Time) *SessionRecordUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableEndTime(v *time.Time) *SessionRecordUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *SessionRecordUpdate) ClearEndTime() *SessionRecordUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetPenaltyMode sets the "penalty_mode" field.
func (_u *SessionRecordUpdate) SetPenaltyMode(v bool) *SessionRecordUpdate {
	_u.mutation.SetPenaltyMode(v)
	return _u
}

// SetNillablePenaltyMode sets the "penalty_mode" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillablePenaltyMode(v *bool) *SessionRecordUpdate {
	if v != nil {
		_u.SetPenaltyMode(*v)
	}
	return _u
}

// SetCurrentPosition sets the "current_position" field.
func (_u *SessionRecordUpdate) SetCurrentPosition(v int) *SessionRecordUpdate {
	_u.mutation.ResetCurrentPosition()
	_u.mutation.SetCurrentPosition(v)
	return _u
}

// SetNillableCurrentPosition sets the "current_position" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableCurrentPosition(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetCurrentPosition(*v)
	}
	return _u
}

// AddCurrentPosition adds value to the "current_position" field.
func (_u *SessionRecordUpdate) AddCurrentPosition(v int) *SessionRecordUpdate {
	_u.mutation.AddCurrentPosition(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *SessionRecordUpdate) SetFinalScore(v int) *SessionRecordUpdate {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *SessionRecordUpdate) SetNillableFinalScore(v *int) *SessionRecordUpdate {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *SessionRecordUpdate) AddFinalScore(v int) *SessionRecordUpdate {
	_u.mutation.AddFinalScore(v)
	return _u
}

// ClearFinalScore clears the value of the "final_score" field.
func (_u *SessionRecordUpdate) ClearFinalScore() *SessionRecordUpdate {
	_u.mutation.ClearFinalScore()
	return _u
}

// SetPositions sets the "positions" field.
func (_u *SessionRecordUpdate) SetPositions(v []*game.Position) *SessionRecordUpdate {
	_u.mutation.SetPositions(v)
	return _u
}

// AppendPositions appends value to the "positions" field.
func (_u *SessionRecordUpdate) AppendPositions(v []*game.Position) *SessionRecordUpdate {
	_u.mutation.AppendPositions(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionRecordUpdate) SetSummary(v *game.Summary) *SessionRecordUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionRecordUpdate) ClearSummary() *SessionRecordUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdate) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(sessionrecord.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(sessionrecord.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(sessionrecord.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.PenaltyMode(); ok {
		_spec.SetField(sessionrecord.FieldPenaltyMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentPosition(); ok {
		_spec.SetField(sessionrecord.FieldCurrentPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPosition(); ok {
		_spec.AddField(sessionrecord.FieldCurrentPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(sessionrecord.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(sessionrecord.FieldFinalScore, field.TypeInt, value)
	}
	if _u.mutation.FinalScoreCleared() {
		_spec.ClearField(sessionrecord.FieldFinalScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Positions(); ok {
		_spec.SetField(sessionrecord.FieldPositions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPositions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldPositions, value)
		})
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(sessionrecord.FieldSummary, field.TypeJSON, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(sessionrecord.FieldSummary, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionRecordUpdateOne is the builder for updating a single SessionRecord entity.
type SessionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionRecordUpdateOne) SetSessionID(v string) *SessionRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableSessionID(v *string) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SessionRecordUpdateOne) SetStartTime(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableStartTime(v *time.Time) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SessionRecordUpdateOne) SetEndTime(v time.Time) *SessionRecordUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableEndTime(v *time.Time) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *SessionRecordUpdateOne) ClearEndTime() *SessionRecordUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetPenaltyMode sets the "penalty_mode" field.
func (_u *SessionRecordUpdateOne) SetPenaltyMode(v bool) *SessionRecordUpdateOne {
	_u.mutation.SetPenaltyMode(v)
	return _u
}

// SetNillablePenaltyMode sets the "penalty_mode" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillablePenaltyMode(v *bool) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetPenaltyMode(*v)
	}
	return _u
}

// SetCurrentPosition sets the "current_position" field.
func (_u *SessionRecordUpdateOne) SetCurrentPosition(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetCurrentPosition()
	_u.mutation.SetCurrentPosition(v)
	return _u
}

// SetNillableCurrentPosition sets the "current_position" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableCurrentPosition(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetCurrentPosition(*v)
	}
	return _u
}

// AddCurrentPosition adds value to the "current_position" field.
func (_u *SessionRecordUpdateOne) AddCurrentPosition(v int) *SessionRecordUpdateOne {
	_u.mutation.AddCurrentPosition(v)
	return _u
}

// SetFinalScore sets the "final_score" field.
func (_u *SessionRecordUpdateOne) SetFinalScore(v int) *SessionRecordUpdateOne {
	_u.mutation.ResetFinalScore()
	_u.mutation.SetFinalScore(v)
	return _u
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_u *SessionRecordUpdateOne) SetNillableFinalScore(v *int) *SessionRecordUpdateOne {
	if v != nil {
		_u.SetFinalScore(*v)
	}
	return _u
}

// AddFinalScore adds value to the "final_score" field.
func (_u *SessionRecordUpdateOne) AddFinalScore(v int) *SessionRecordUpdateOne {
	_u.mutation.AddFinalScore(v)
	return _u
}

// ClearFinalScore clears the value of the "final_score" field.
func (_u *SessionRecordUpdateOne) ClearFinalScore() *SessionRecordUpdateOne {
	_u.mutation.ClearFinalScore()
	return _u
}

// SetPositions sets the "positions" field.
func (_u *SessionRecordUpdateOne) SetPositions(v []*game.Position) *SessionRecordUpdateOne {
	_u.mutation.SetPositions(v)
	return _u
}

// AppendPositions appends value to the "positions" field.
func (_u *SessionRecordUpdateOne) AppendPositions(v []*game.Position) *SessionRecordUpdateOne {
	_u.mutation.AppendPositions(v)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionRecordUpdateOne) SetSummary(v *game.Summary) *SessionRecordUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionRecordUpdateOne) ClearSummary() *SessionRecordUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_u *SessionRecordUpdateOne) Mutation() *SessionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionRecordUpdate builder.
func (_u *SessionRecordUpdateOne) Where(ps ...predicate.SessionRecord) *SessionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionRecordUpdateOne) Select(field string, fields ...string) *SessionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionRecord entity.
func (_u *SessionRecordUpdateOne) Save(ctx context.Context) (*SessionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) SaveX(ctx context.Context) *SessionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionRecordUpdateOne) sqlSave(ctx context.Context) (_node *SessionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionrecord.Table, sessionrecord.Columns, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionrecord.FieldID)
		for _, f := range fields {
			if !sessionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(sessionrecord.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(sessionrecord.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(sessionrecord.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.PenaltyMode(); ok {
		_spec.SetField(sessionrecord.FieldPenaltyMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CurrentPosition(); ok {
		_spec.SetField(sessionrecord.FieldCurrentPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentPosition(); ok {
		_spec.AddField(sessionrecord.FieldCurrentPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalScore(); ok {
		_spec.SetField(sessionrecord.FieldFinalScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalScore(); ok {
		_spec.AddField(sessionrecord.FieldFinalScore, field.TypeInt, value)
	}
	if _u.mutation.FinalScoreCleared() {
		_spec.ClearField(sessionrecord.FieldFinalScore, field.TypeInt)
	}
	if value, ok := _u.mutation.Positions(); ok {
		_spec.SetField(sessionrecord.FieldPositions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPositions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, sessionrecord.FieldPositions, value)
		})
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(sessionrecord.FieldSummary, field.TypeJSON, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(sessionrecord.FieldSummary, field.TypeJSON)
	}
	_node = &SessionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
