// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Nighteyez07/disc-golf-putting-tr/ent/sessionrecord"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
)

// SessionRecordCreate is the builder for creating a SessionRecord entity.
type SessionRecordCreate struct {
	config
	mutation *SessionRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionRecordCreate) SetSessionID(v string) *SessionRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *SessionRecordCreate) SetStartTime(v time.Time) *SessionRecordCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *SessionRecordCreate) SetEndTime(v time.Time) *SessionRecordCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableEndTime(v *time.Time) *SessionRecordCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetPenaltyMode sets the "penalty_mode" field.
func (_c *SessionRecordCreate) SetPenaltyMode(v bool) *SessionRecordCreate {
	_c.mutation.SetPenaltyMode(v)
	return _c
}

// SetNillablePenaltyMode sets the "penalty_mode" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillablePenaltyMode(v *bool) *SessionRecordCreate {
	if v != nil {
		_c.SetPenaltyMode(*v)
	}
	return _c
}

// SetCurrentPosition sets the "current_position" field.
func (_c *SessionRecordCreate) SetCurrentPosition(v int) *SessionRecordCreate {
	_c.mutation.SetCurrentPosition(v)
	return _c
}

// SetNillableCurrentPosition sets the "current_position" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableCurrentPosition(v *int) *SessionRecordCreate {
	if v != nil {
		_c.SetCurrentPosition(*v)
	}
	return _c
}

// SetFinalScore sets the "final_score" field.
func (_c *SessionRecordCreate) SetFinalScore(v int) *SessionRecordCreate {
	_c.mutation.SetFinalScore(v)
	return _c
}

// SetNillableFinalScore sets the "final_score" field if the given value is not nil.
func (_c *SessionRecordCreate) SetNillableFinalScore(v *int) *SessionRecordCreate {
	if v != nil {
		_c.SetFinalScore(*v)
	}
	return _c
}

// SetPositions sets the "positions" field.
func (_c *SessionRecordCreate) SetPositions(v []*game.Position) *SessionRecordCreate {
	_c.mutation.SetPositions(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *SessionRecordCreate) SetSummary(v *game.Summary) *SessionRecordCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// Mutation returns the SessionRecordMutation object of the builder.
func (_c *SessionRecordCreate) Mutation() *SessionRecordMutation {
	return _c.mutation
}

// Save creates the SessionRecord in the database.
func (_c *SessionRecordCreate) Save(ctx context.Context) (*SessionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionRecordCreate) SaveX(ctx context.Context) *SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionRecordCreate) defaults() {
	if _, ok := _c.mutation.PenaltyMode(); !ok {
		v := sessionrecord.DefaultPenaltyMode
		_c.mutation.SetPenaltyMode(v)
	}
	if _, ok := _c.mutation.CurrentPosition(); !ok {
		v := sessionrecord.DefaultCurrentPosition
		_c.mutation.SetCurrentPosition(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionRecord.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionRecord.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`ent: missing required field "SessionRecord.start_time"`)}
	}
	if _, ok := _c.mutation.PenaltyMode(); !ok {
		return &ValidationError{Name: "penalty_mode", err: errors.New(`ent: missing required field "SessionRecord.penalty_mode"`)}
	}
	if _, ok := _c.mutation.CurrentPosition(); !ok {
		return &ValidationError{Name: "current_position", err: errors.New(`ent: missing required field "SessionRecord.current_position"`)}
	}
	if _, ok := _c.mutation.Positions(); !ok {
		return &ValidationError{Name: "positions", err: errors.New(`ent: missing required field "SessionRecord.positions"`)}
	}
	return nil
}

func (_c *SessionRecordCreate) sqlSave(ctx context.Context) (*SessionRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionRecordCreate) createSpec() (*SessionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionrecord.Table, sqlgraph.NewFieldSpec(sessionrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(sessionrecord.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(sessionrecord.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.PenaltyMode(); ok {
		_spec.SetField(sessionrecord.FieldPenaltyMode, field.TypeBool, value)
		_node.PenaltyMode = value
	}
	if value, ok := _c.mutation.CurrentPosition(); ok {
		_spec.SetField(sessionrecord.FieldCurrentPosition, field.TypeInt, value)
		_node.CurrentPosition = value
	}
	if value, ok := _c.mutation.FinalScore(); ok {
		_spec.SetField(sessionrecord.FieldFinalScore, field.TypeInt, value)
		_node.FinalScore = &value
	}
	if value, ok := _c.mutation.Positions(); ok {
		_spec.SetField(sessionrecord.FieldPositions, field.TypeJSON, value)
		_node.Positions = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(sessionrecord.FieldSummary, field.TypeJSON, value)
		_node.Summary = value
	}
	return _node, _spec
}

// SessionRecordCreateBulk is the builder for creating many SessionRecord entities in bulk.
type SessionRecordCreateBulk struct {
	config
	err      error
	builders []*SessionRecordCreate
}

// Save creates the SessionRecord entities in the database.
func (_c *SessionRecordCreateBulk) Save(ctx context.Context) ([]*SessionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionRecordCreateBulk) SaveX(ctx context.Context) []*SessionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
