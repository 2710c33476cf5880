// Code generated by ent, DO NOT EDIT.

package sessionrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Nighteyez07/disc-golf-putting-tr/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldSessionID, v))
}

// StartTime applies equality check predicate on the "start_time" field. It's identical to StartTimeEQ.
func StartTime(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldStartTime, v))
}

// EndTime applies equality check predicate on the "end_time" field. It's identical to EndTimeEQ.
func EndTime(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldEndTime, v))
}

// PenaltyMode applies equality check predicate on the "penalty_mode" field. It's identical to PenaltyModeEQ.
func PenaltyMode(v bool) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldPenaltyMode, v))
}

// CurrentPosition applies equality check predicate on the "current_position" field. It's identical to CurrentPositionEQ.
func CurrentPosition(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldCurrentPosition, v))
}

// FinalScore applies equality check predicate on the "final_score" field. It's identical to FinalScoreEQ.
func FinalScore(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldFinalScore, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// StartTimeEQ applies the EQ predicate on the "start_time" field.
func StartTimeEQ(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldStartTime, v))
}

// StartTimeNEQ applies the NEQ predicate on the "start_time" field.
func StartTimeNEQ(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldStartTime, v))
}

// StartTimeIn applies the In predicate on the "start_time" field.
func StartTimeIn(vs ...time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldStartTime, vs...))
}

// StartTimeNotIn applies the NotIn predicate on the "start_time" field.
func StartTimeNotIn(vs ...time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldStartTime, vs...))
}

// StartTimeGT applies the GT predicate on the "start_time" field.
func StartTimeGT(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldStartTime, v))
}

// StartTimeGTE applies the GTE predicate on the "start_time" field.
func StartTimeGTE(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldStartTime, v))
}

// StartTimeLT applies the LT predicate on the "start_time" field.
func StartTimeLT(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldStartTime, v))
}

// StartTimeLTE applies the LTE predicate on the "start_time" field.
func StartTimeLTE(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldStartTime, v))
}

// EndTimeEQ applies the EQ predicate on the "end_time" field.
func EndTimeEQ(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldEndTime, v))
}

// EndTimeNEQ applies the NEQ predicate on the "end_time" field.
func EndTimeNEQ(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldEndTime, v))
}

// EndTimeIn applies the In predicate on the "end_time" field.
func EndTimeIn(vs ...time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldEndTime, vs...))
}

// EndTimeNotIn applies the NotIn predicate on the "end_time" field.
func EndTimeNotIn(vs ...time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldEndTime, vs...))
}

// EndTimeGT applies the GT predicate on the "end_time" field.
func EndTimeGT(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldEndTime, v))
}

// EndTimeGTE applies the GTE predicate on the "end_time" field.
func EndTimeGTE(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldEndTime, v))
}

// EndTimeLT applies the LT predicate on the "end_time" field.
func EndTimeLT(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldEndTime, v))
}

// EndTimeLTE applies the LTE predicate on the "end_time" field.
func EndTimeLTE(v time.Time) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldEndTime, v))
}

// EndTimeIsNil applies the IsNil predicate on the "end_time" field.
func EndTimeIsNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIsNull(FieldEndTime))
}

// EndTimeNotNil applies the NotNil predicate on the "end_time" field.
func EndTimeNotNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotNull(FieldEndTime))
}

// PenaltyModeEQ applies the EQ predicate on the "penalty_mode" field.
func PenaltyModeEQ(v bool) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldPenaltyMode, v))
}

// PenaltyModeNEQ applies the NEQ predicate on the "penalty_mode" field.
func PenaltyModeNEQ(v bool) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldPenaltyMode, v))
}

// CurrentPositionEQ applies the EQ predicate on the "current_position" field.
func CurrentPositionEQ(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldCurrentPosition, v))
}

// CurrentPositionNEQ applies the NEQ predicate on the "current_position" field.
func CurrentPositionNEQ(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldCurrentPosition, v))
}

// CurrentPositionIn applies the In predicate on the "current_position" field.
func CurrentPositionIn(vs ...int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldCurrentPosition, vs...))
}

// CurrentPositionNotIn applies the NotIn predicate on the "current_position" field.
func CurrentPositionNotIn(vs ...int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldCurrentPosition, vs...))
}

// CurrentPositionGT applies the GT predicate on the "current_position" field.
func CurrentPositionGT(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldCurrentPosition, v))
}

// CurrentPositionGTE applies the GTE predicate on the "current_position" field.
func CurrentPositionGTE(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldCurrentPosition, v))
}

// CurrentPositionLT applies the LT predicate on the "current_position" field.
func CurrentPositionLT(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldCurrentPosition, v))
}

// CurrentPositionLTE applies the LTE predicate on the "current_position" field.
func CurrentPositionLTE(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldCurrentPosition, v))
}

// FinalScoreEQ applies the EQ predicate on the "final_score" field.
func FinalScoreEQ(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldEQ(FieldFinalScore, v))
}

// FinalScoreNEQ applies the NEQ predicate on the "final_score" field.
func FinalScoreNEQ(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNEQ(FieldFinalScore, v))
}

// FinalScoreIn applies the In predicate on the "final_score" field.
func FinalScoreIn(vs ...int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIn(FieldFinalScore, vs...))
}

// FinalScoreNotIn applies the NotIn predicate on the "final_score" field.
func FinalScoreNotIn(vs ...int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotIn(FieldFinalScore, vs...))
}

// FinalScoreGT applies the GT predicate on the "final_score" field.
func FinalScoreGT(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGT(FieldFinalScore, v))
}

// FinalScoreGTE applies the GTE predicate on the "final_score" field.
func FinalScoreGTE(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldGTE(FieldFinalScore, v))
}

// FinalScoreLT applies the LT predicate on the "final_score" field.
func FinalScoreLT(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLT(FieldFinalScore, v))
}

// FinalScoreLTE applies the LTE predicate on the "final_score" field.
func FinalScoreLTE(v int) predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldLTE(FieldFinalScore, v))
}

// FinalScoreIsNil applies the IsNil predicate on the "final_score" field.
func FinalScoreIsNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIsNull(FieldFinalScore))
}

// FinalScoreNotNil applies the NotNil predicate on the "final_score" field.
func FinalScoreNotNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotNull(FieldFinalScore))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.SessionRecord {
	return predicate.SessionRecord(sql.FieldNotNull(FieldSummary))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SessionRecord) predicate.SessionRecord {
	return predicate.SessionRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SessionRecord) predicate.SessionRecord {
	return predicate.SessionRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SessionRecord) predicate.SessionRecord {
	return predicate.SessionRecord(sql.NotPredicates(p))
}
