package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DailyStat holds the schema definition for the DailyStat entity.
// One row per (chatbot, day), incremented synchronously with each message and
// rebuildable byte-identically from the messages table.
type DailyStat struct {
	ent.Schema
}

// Fields of the DailyStat.
func (DailyStat) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("daily_stat_id").
			Unique().
			Immutable(),
		field.String("chatbot_id").
			Immutable(),
		field.Time("date").
			SchemaType(map[string]string{"postgres": "date"}).
			Immutable(),
		field.Int("session_count").
			Default(0),
		field.Int("message_count").
			Default(0),
		field.Int64("total_response_time_ms").
			Default(0),
		field.Int64("input_tokens").
			Default(0),
		field.Int64("output_tokens").
			Default(0),
		field.Int64("retrieval_count").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DailyStat.
func (DailyStat) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chatbot", Chatbot.Type).
			Ref("daily_stats").
			Field("chatbot_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DailyStat.
func (DailyStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chatbot_id", "date").
			Unique(),
	}
}
