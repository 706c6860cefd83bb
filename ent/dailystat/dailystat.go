// Code generated by ent, DO NOT EDIT.

package dailystat

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the dailystat type in the database.
	Label = "daily_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "daily_stat_id"
	// FieldChatbotID holds the string denoting the chatbot_id field in the database.
	FieldChatbotID = "chatbot_id"
	// FieldDate holds the string denoting the date field in the database.
	FieldDate = "date"
	// FieldSessionCount holds the string denoting the session_count field in the database.
	FieldSessionCount = "session_count"
	// FieldMessageCount holds the string denoting the message_count field in the database.
	FieldMessageCount = "message_count"
	// FieldTotalResponseTimeMs holds the string denoting the total_response_time_ms field in the database.
	FieldTotalResponseTimeMs = "total_response_time_ms"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldRetrievalCount holds the string denoting the retrieval_count field in the database.
	FieldRetrievalCount = "retrieval_count"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeChatbot holds the string denoting the chatbot edge name in mutations.
	EdgeChatbot = "chatbot"
	// ChatbotFieldID holds the string denoting the ID field of the Chatbot.
	ChatbotFieldID = "chatbot_id"
	// Table holds the table name of the dailystat in the database.
	Table = "daily_stats"
	// ChatbotTable is the table that holds the chatbot relation/edge.
	ChatbotTable = "daily_stats"
	// ChatbotInverseTable is the table name for the Chatbot entity.
	// It exists in this package in order to avoid circular dependency with the "chatbot" package.
	ChatbotInverseTable = "chatbots"
	// ChatbotColumn is the table column denoting the chatbot relation/edge.
	ChatbotColumn = "chatbot_id"
)

// Columns holds all SQL columns for dailystat fields.
var Columns = []string{
	FieldID,
	FieldChatbotID,
	FieldDate,
	FieldSessionCount,
	FieldMessageCount,
	FieldTotalResponseTimeMs,
	FieldInputTokens,
	FieldOutputTokens,
	FieldRetrievalCount,
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
	// DefaultSessionCount holds the default value on creation for the "session_count" field.
	DefaultSessionCount int
	// DefaultMessageCount holds the default value on creation for the "message_count" field.
	DefaultMessageCount int
	// DefaultTotalResponseTimeMs holds the default value on creation for the "total_response_time_ms" field.
	DefaultTotalResponseTimeMs int64
	// DefaultInputTokens holds the default value on creation for the "input_tokens" field.
	DefaultInputTokens int64
	// DefaultOutputTokens holds the default value on creation for the "output_tokens" field.
	DefaultOutputTokens int64
	// DefaultRetrievalCount holds the default value on creation for the "retrieval_count" field.
	DefaultRetrievalCount int64
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the DailyStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChatbotID orders the results by the chatbot_id field.
func ByChatbotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatbotID, opts...).ToFunc()
}

// ByDate orders the results by the date field.
func ByDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDate, opts...).ToFunc()
}

// BySessionCount orders the results by the session_count field.
func BySessionCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionCount, opts...).ToFunc()
}

// ByMessageCount orders the results by the message_count field.
func ByMessageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageCount, opts...).ToFunc()
}

// ByTotalResponseTimeMs orders the results by the total_response_time_ms field.
func ByTotalResponseTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalResponseTimeMs, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByRetrievalCount orders the results by the retrieval_count field.
func ByRetrievalCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetrievalCount, opts...).ToFunc()
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
