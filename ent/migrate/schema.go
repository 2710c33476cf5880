// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SessionRecordsColumns holds the columns for the "session_records" table.
	SessionRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "start_time", Type: field.TypeTime},
		{Name: "end_time", Type: field.TypeTime, Nullable: true},
		{Name: "penalty_mode", Type: field.TypeBool, Default: false},
		{Name: "current_position", Type: field.TypeInt, Default: 1},
		{Name: "final_score", Type: field.TypeInt, Nullable: true},
		{Name: "positions", Type: field.TypeJSON},
		{Name: "summary", Type: field.TypeJSON, Nullable: true},
	}
	// SessionRecordsTable holds the schema information for the "session_records" table.
	SessionRecordsTable = &schema.Table{
		Name:       "session_records",
		Columns:    SessionRecordsColumns,
		PrimaryKey: []*schema.Column{SessionRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrecord_start_time",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[2]},
			},
			{
				Name:    "sessionrecord_end_time",
				Unique:  false,
				Columns: []*schema.Column{SessionRecordsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SessionRecordsTable,
	}
)

func init() {
}
