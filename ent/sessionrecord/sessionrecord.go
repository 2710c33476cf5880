// Code generated by ent, DO NOT EDIT.

package sessionrecord

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionrecord type in the database.
	Label = "session_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldPenaltyMode holds the string denoting the penalty_mode field in the database.
	FieldPenaltyMode = "penalty_mode"
	// FieldCurrentPosition holds the string denoting the current_position field in the database.
	FieldCurrentPosition = "current_position"
	// FieldFinalScore holds the string denoting the final_score field in the database.
	FieldFinalScore = "final_score"
	// FieldPositions holds the string denoting the positions field in the database.
	FieldPositions = "positions"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// Table holds the table name of the sessionrecord in the database.
	Table = "session_records"
)

// Columns holds all SQL columns for sessionrecord fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldStartTime,
	FieldEndTime,
	FieldPenaltyMode,
	FieldCurrentPosition,
	FieldFinalScore,
	FieldPositions,
	FieldSummary,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultPenaltyMode holds the default value on creation for the "penalty_mode" field.
	DefaultPenaltyMode bool
	// DefaultCurrentPosition holds the default value on creation for the "current_position" field.
	DefaultCurrentPosition int
)

// OrderOption defines the ordering options for the SessionRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByPenaltyMode orders the results by the penalty_mode field.
func ByPenaltyMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPenaltyMode, opts...).ToFunc()
}

// ByCurrentPosition orders the results by the current_position field.
func ByCurrentPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPosition, opts...).ToFunc()
}

// ByFinalScore orders the results by the final_score field.
func ByFinalScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalScore, opts...).ToFunc()
}
