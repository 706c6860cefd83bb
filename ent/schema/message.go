package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Immutable(),
		field.Enum("role").
			Values("user", "assistant").
			Immutable(),
		field.Text("content").
			MaxLen(10000),
		field.JSON("sources", []map[string]any{}).
			Optional().
			Comment("Citations attached to assistant messages"),
		field.Bool("cancelled").
			Default(false),
		field.Bool("failed").
			Default(false),
		field.Int("response_time_ms").
			Default(0),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int("retrieval_count").
			Default(0),
		field.Int("retrieval_time_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", ChatSession.Type).
			Ref("messages").
			Field("session_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		// History reads: newest-first per session
		index.Fields("session_id", "created_at"),
	}
}
