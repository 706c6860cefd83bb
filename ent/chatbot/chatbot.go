// Code generated by ent, DO NOT EDIT.

package chatbot

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the chatbot type in the database.
	Label = "chatbot"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "chatbot_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldPersona holds the string denoting the persona field in the database.
	FieldPersona = "persona"
	// FieldAccessURL holds the string denoting the access_url field in the database.
	FieldAccessURL = "access_url"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldActiveVersion holds the string denoting the active_version field in the database.
	FieldActiveVersion = "active_version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocuments holds the string denoting the documents edge name in mutations.
	EdgeDocuments = "documents"
	// EdgeVersions holds the string denoting the versions edge name in mutations.
	EdgeVersions = "versions"
	// EdgeSessions holds the string denoting the sessions edge name in mutations.
	EdgeSessions = "sessions"
	// EdgeDailyStats holds the string denoting the daily_stats edge name in mutations.
	EdgeDailyStats = "daily_stats"
	// DocumentFieldID holds the string denoting the ID field of the Document.
	DocumentFieldID = "document_id"
	// BuildVersionFieldID holds the string denoting the ID field of the BuildVersion.
	BuildVersionFieldID = "build_version_id"
	// ChatSessionFieldID holds the string denoting the ID field of the ChatSession.
	ChatSessionFieldID = "session_id"
	// DailyStatFieldID holds the string denoting the ID field of the DailyStat.
	DailyStatFieldID = "daily_stat_id"
	// Table holds the table name of the chatbot in the database.
	Table = "chatbots"
	// DocumentsTable is the table that holds the documents relation/edge.
	DocumentsTable = "documents"
	// DocumentsInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentsInverseTable = "documents"
	// DocumentsColumn is the table column denoting the documents relation/edge.
	DocumentsColumn = "chatbot_id"
	// VersionsTable is the table that holds the versions relation/edge.
	VersionsTable = "build_versions"
	// VersionsInverseTable is the table name for the BuildVersion entity.
	// It exists in this package in order to avoid circular dependency with the "buildversion" package.
	VersionsInverseTable = "build_versions"
	// VersionsColumn is the table column denoting the versions relation/edge.
	VersionsColumn = "chatbot_id"
	// SessionsTable is the table that holds the sessions relation/edge.
	SessionsTable = "chat_sessions"
	// SessionsInverseTable is the table name for the ChatSession entity.
	// It exists in this package in order to avoid circular dependency with the "chatsession" package.
	SessionsInverseTable = "chat_sessions"
	// SessionsColumn is the table column denoting the sessions relation/edge.
	SessionsColumn = "chatbot_id"
	// DailyStatsTable is the table that holds the daily_stats relation/edge.
	DailyStatsTable = "daily_stats"
	// DailyStatsInverseTable is the table name for the DailyStat entity.
	// It exists in this package in order to avoid circular dependency with the "dailystat" package.
	DailyStatsInverseTable = "daily_stats"
	// DailyStatsColumn is the table column denoting the daily_stats relation/edge.
	DailyStatsColumn = "chatbot_id"
)

// Columns holds all SQL columns for chatbot fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDescription,
	FieldPersona,
	FieldAccessURL,
	FieldStatus,
	FieldActiveVersion,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// AccessURLValidator is a validator for the "access_url" field. It is called by the builders before save.
	AccessURLValidator func(string) error
	// DefaultActiveVersion holds the default value on creation for the "active_version" field.
	DefaultActiveVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusProcessing is the default value of the Status enum.
const DefaultStatus = StatusProcessing

// Status values.
const (
	StatusProcessing     Status = "processing"
	StatusActive         Status = "active"
	StatusInactive       Status = "inactive"
	StatusCleanupPending Status = "cleanup_pending"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusProcessing, StatusActive, StatusInactive, StatusCleanupPending:
		return nil
	default:
		return fmt.Errorf("chatbot: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Chatbot queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByAccessURL orders the results by the access_url field.
func ByAccessURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessURL, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByActiveVersion orders the results by the active_version field.
func ByActiveVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActiveVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocumentsCount orders the results by documents count.
func ByDocumentsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDocumentsStep(), opts...)
	}
}

// ByDocuments orders the results by documents terms.
func ByDocuments(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByVersionsCount orders the results by versions count.
func ByVersionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVersionsStep(), opts...)
	}
}

// ByVersions orders the results by versions terms.
func ByVersions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVersionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// BySessionsCount orders the results by sessions count.
func BySessionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newSessionsStep(), opts...)
	}
}

// BySessions orders the results by sessions terms.
func BySessions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDailyStatsCount orders the results by daily_stats count.
func ByDailyStatsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDailyStatsStep(), opts...)
	}
}

// ByDailyStats orders the results by daily_stats terms.
func ByDailyStats(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDailyStatsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newDocumentsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentsInverseTable, DocumentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DocumentsTable, DocumentsColumn),
	)
}
func newVersionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VersionsInverseTable, BuildVersionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VersionsTable, VersionsColumn),
	)
}
func newSessionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionsInverseTable, ChatSessionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, SessionsTable, SessionsColumn),
	)
}
func newDailyStatsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DailyStatsInverseTable, DailyStatFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DailyStatsTable, DailyStatsColumn),
	)
}
