// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Nighteyez07/disc-golf-putting-tr/ent/sessionrecord"
	"github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
)

// SessionRecord is the model entity for the SessionRecord schema.
type SessionRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID assigned at session creation
	SessionID string `json:"session_id,omitempty"`
	// When the round began
	StartTime time.Time `json:"start_time,omitempty"`
	// Set exactly once at finalization; NULL while active
	EndTime *time.Time `json:"end_time,omitempty"`
	// Sticky session-wide penalty election
	PenaltyMode bool `json:"penalty_mode,omitempty"`
	// Active station number 1..9
	CurrentPosition int `json:"current_position,omitempty"`
	// Sum of position scores, set at finalization
	FinalScore *int `json:"final_score,omitempty"`
	// All nine positions including full putt logs
	Positions []*game.Position `json:"positions,omitempty"`
	// Finalization snapshot, absent while active
	Summary      *game.Summary `json:"summary,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionrecord.FieldPositions, sessionrecord.FieldSummary:
			values[i] = new([]byte)
		case sessionrecord.FieldPenaltyMode:
			values[i] = new(sql.NullBool)
		case sessionrecord.FieldID, sessionrecord.FieldCurrentPosition, sessionrecord.FieldFinalScore:
			values[i] = new(sql.NullInt64)
		case sessionrecord.FieldSessionID:
			values[i] = new(sql.NullString)
		case sessionrecord.FieldStartTime, sessionrecord.FieldEndTime:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionRecord fields.
func (_m *SessionRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionrecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionrecord.FieldStartTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field start_time", values[i])
			} else if value.Valid {
				_m.StartTime = value.Time
			}
		case sessionrecord.FieldEndTime:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field end_time", values[i])
			} else if value.Valid {
				_m.EndTime = new(time.Time)
				*_m.EndTime = value.Time
			}
		case sessionrecord.FieldPenaltyMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field penalty_mode", values[i])
			} else if value.Valid {
				_m.PenaltyMode = value.Bool
			}
		case sessionrecord.FieldCurrentPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_position", values[i])
			} else if value.Valid {
				_m.CurrentPosition = int(value.Int64)
			}
		case sessionrecord.FieldFinalScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field final_score", values[i])
			} else if value.Valid {
				_m.FinalScore = new(int)
				*_m.FinalScore = int(value.Int64)
			}
		case sessionrecord.FieldPositions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field positions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Positions); err != nil {
					return fmt.Errorf("unmarshal field positions: %w", err)
				}
			}
		case sessionrecord.FieldSummary:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Summary); err != nil {
					return fmt.Errorf("unmarshal field summary: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionRecord.
// This includes values selected through modifiers, order, etc.
func (_m *SessionRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionRecord.
// Note that you need to call SessionRecord.Unwrap() before calling this method if this SessionRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionRecord) Update() *SessionRecordUpdateOne {
	return NewSessionRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionRecord) Unwrap() *SessionRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionRecord) String() string {
	var builder strings.Builder
	builder.WriteString("SessionRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("start_time=")
	builder.WriteString(_m.StartTime.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.EndTime; v != nil {
		builder.WriteString("end_time=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("penalty_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.PenaltyMode))
	builder.WriteString(", ")
	builder.WriteString("current_position=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentPosition))
	builder.WriteString(", ")
	if v := _m.FinalScore; v != nil {
		builder.WriteString("final_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("positions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Positions))
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(fmt.Sprintf("%v", _m.Summary))
	builder.WriteByte(')')
	return builder.String()
}

// SessionRecords is a parsable slice of SessionRecord.
type SessionRecords []*SessionRecord
