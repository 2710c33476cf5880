package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/Nighteyez07/disc-golf-putting-tr/internal/game"
)

// SessionRecord is a persisted putting round. One row per session; the
// per-position putt logs ride along as JSON so a round reconstructs
// losslessly for history display and score re-derivation.
type SessionRecord struct {
	ent.Schema
}

func (SessionRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned at session creation"),
		field.Time("start_time").
			Comment("When the round began"),
		field.Time("end_time").
			Optional().
			Nillable().
			Comment("Set exactly once at finalization; NULL while active"),
		field.Bool("penalty_mode").
			Default(false).
			Comment("Sticky session-wide penalty election"),
		field.Int("current_position").
			Default(1).
			Comment("Active station number 1..9"),
		field.Int("final_score").
			Optional().
			Nillable().
			Comment("Sum of position scores, set at finalization"),
		field.JSON("positions", []*game.Position{}).
			Comment("All nine positions including full putt logs"),
		field.JSON("summary", &game.Summary{}).
			Optional().
			Comment("Finalization snapshot, absent while active"),
	}
}

func (SessionRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("start_time"),
		index.Fields("end_time"),
	}
}
