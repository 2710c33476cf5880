// Code generated by ent, DO NOT EDIT.

package ent

import (
	"github.com/Nighteyez07/disc-golf-putting-tr/ent/schema"
	"github.com/Nighteyez07/disc-golf-putting-tr/ent/sessionrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	sessionrecordFields := schema.SessionRecord{}.Fields()
	_ = sessionrecordFields
	// sessionrecordDescSessionID is the schema descriptor for session_id field.
	sessionrecordDescSessionID := sessionrecordFields[0].Descriptor()
	// sessionrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionrecord.SessionIDValidator = sessionrecordDescSessionID.Validators[0].(func(string) error)
	// sessionrecordDescPenaltyMode is the schema descriptor for penalty_mode field.
	sessionrecordDescPenaltyMode := sessionrecordFields[3].Descriptor()
	// sessionrecord.DefaultPenaltyMode holds the default value on creation for the penalty_mode field.
	sessionrecord.DefaultPenaltyMode = sessionrecordDescPenaltyMode.Default.(bool)
	// sessionrecordDescCurrentPosition is the schema descriptor for current_position field.
	sessionrecordDescCurrentPosition := sessionrecordFields[4].Descriptor()
	// sessionrecord.DefaultCurrentPosition holds the default value on creation for the current_position field.
	sessionrecord.DefaultCurrentPosition = sessionrecordDescCurrentPosition.Default.(int)
}
