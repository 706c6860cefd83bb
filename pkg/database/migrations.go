package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These back the admin search over chatbot names and message contents.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_chatbots_name_gin
		ON chatbots USING gin(to_tsvector('english', name || ' ' || COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create chatbot name GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_messages_content_gin
		ON messages USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create message content GIN index: %w", err)
	}

	return nil
}
