package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Document holds the schema definition for the Document entity.
// A document row doubles as the durable ingestion queue entry: workers claim
// pending rows with FOR UPDATE SKIP LOCKED and heartbeat last_interaction_at.
type Document struct {
	ent.Schema
}

// Fields of the Document.
func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("document_id").
			Unique().
			Immutable(),
		field.String("chatbot_id").
			Immutable(),
		field.String("filename").
			NotEmpty().
			MaxLen(512),
		field.String("stored_path").
			NotEmpty(),
		field.Int64("size_bytes").
			NonNegative(),
		field.Enum("status").
			Values("pending", "parsing", "chunking", "embedding",
				"extracting", "graphing", "completed", "failed").
			Default("pending"),
		field.Int("version").
			Comment("Build version this document belongs to"),
		field.Int("page_count").
			Default(0),
		field.Int("progress").
			Default(0).
			Range(0, 100),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.Int("chunk_count").
			Default(0),
		field.Int("entity_count").
			Default(0),
		field.Int("attempts").
			Default(0),
		field.Time("processed_at").
			Optional().
			Nillable(),
		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica"),
		field.Time("last_interaction_at").
			Optional().
			Nillable().
			Comment("For orphan detection"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Document.
func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("chatbot", Chatbot.Type).
			Ref("documents").
			Field("chatbot_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Document.
func (Document) Indexes() []ent.Index {
	return []ent.Index{
		// Queue claim: pending rows ordered by creation
		index.Fields("status", "created_at"),
		// Per-tenant listing
		index.Fields("chatbot_id", "created_at"),
		// Version completion check
		index.Fields("chatbot_id", "version", "status"),
		// Orphan detection
		index.Fields("pod_id", "last_interaction_at"),
	}
}
