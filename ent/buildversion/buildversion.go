// Code generated by ent, DO NOT EDIT.

package buildversion

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the buildversion type in the database.
	Label = "build_version"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "build_version_id"
	// FieldChatbotID holds the string denoting the chatbot_id field in the database.
	FieldChatbotID = "chatbot_id"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldActivatedAt holds the string denoting the activated_at field in the database.
	FieldActivatedAt = "activated_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeChatbot holds the string denoting the chatbot edge name in mutations.
	EdgeChatbot = "chatbot"
	// ChatbotFieldID holds the string denoting the ID field of the Chatbot.
	ChatbotFieldID = "chatbot_id"
	// Table holds the table name of the buildversion in the database.
	Table = "build_versions"
	// ChatbotTable is the table that holds the chatbot relation/edge.
	ChatbotTable = "build_versions"
	// ChatbotInverseTable is the table name for the Chatbot entity.
	// It exists in this package in order to avoid circular dependency with the "chatbot" package.
	ChatbotInverseTable = "chatbots"
	// ChatbotColumn is the table column denoting the chatbot relation/edge.
	ChatbotColumn = "chatbot_id"
)

// Columns holds all SQL columns for buildversion fields.
var Columns = []string{
	FieldID,
	FieldChatbotID,
	FieldVersion,
	FieldStatus,
	FieldActivatedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
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
	// VersionValidator is a validator for the "version" field. It is called by the builders before save.
	VersionValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusBuilding is the default value of the Status enum.
const DefaultStatus = StatusBuilding

// Status values.
const (
	StatusBuilding Status = "building"
	StatusReady    Status = "ready"
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusBuilding, StatusReady, StatusActive, StatusArchived:
		return nil
	default:
		return fmt.Errorf("buildversion: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the BuildVersion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChatbotID orders the results by the chatbot_id field.
func ByChatbotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatbotID, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByActivatedAt orders the results by the activated_at field.
func ByActivatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivatedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByChatbotField orders the results by chatbot field.
func ByChatbotField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChatbotStep(), sql.OrderByField(field, opts...))
	}
}
func newChatbotStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChatbotInverseTable, ChatbotFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ChatbotTable, ChatbotColumn),
	)
}
