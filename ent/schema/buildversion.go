package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BuildVersion holds the schema definition for the BuildVersion entity.
// One row per (chatbot, version); at most one row per chatbot is active and
// chatbot.active_version mirrors it.
type BuildVersion struct {
	ent.Schema
}

// Fields of the BuildVersion.
func (BuildVersion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("build_version_id").
			Unique().
			Immutable(),
		field.String("chatbot_id").
			Immutable(),
		field.Int("version").
			Positive().
			Immutable(),
		field.Enum("status").
			Values("building", "ready", "active", "archived").
			Default("building"),
		field.Time("activated_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the BuildVersion.
func (BuildVersion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chatbot", Chatbot.Type).
			Ref("versions").
			Field("chatbot_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the BuildVersion.
func (BuildVersion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chatbot_id", "version").
			Unique(),
		index.Fields("chatbot_id", "status"),
	}
}
