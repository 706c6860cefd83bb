package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Chatbot holds the schema definition for the Chatbot entity.
// A chatbot is a tenant: it owns documents, build versions, sessions and stats.
type Chatbot struct {
	ent.Schema
}

// Fields of the Chatbot.
func (Chatbot) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("chatbot_id").
			Unique().
			Immutable(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.Text("description").
			Optional(),
		field.JSON("persona", map[string]any{}).
			Optional().
			Comment("name, tone, language, greeting, system_prompt, fallback_message"),
		field.String("access_url").
			Unique().
			MinLen(3).
			MaxLen(64).
			Comment("URL-safe public slug"),
		field.Enum("status").
			Values("processing", "active", "inactive", "cleanup_pending").
			Default("processing"),
		field.Int("active_version").
			Default(0).
			Comment("0 = no active version yet"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Chatbot.
func (Chatbot) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("documents", Document.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("versions", BuildVersion.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("sessions", ChatSession.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("daily_stats", DailyStat.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Chatbot.
func (Chatbot) Indexes() []ent.Index {
	return []ent.Index{
		// Public lookup path
		index.Fields("access_url").
			Unique(),
		// Janitor scan
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
