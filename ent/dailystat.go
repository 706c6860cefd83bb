// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/dailystat"
)

// DailyStat is the model entity for the DailyStat schema.
type DailyStat struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChatbotID holds the value of the "chatbot_id" field.
	ChatbotID string `json:"chatbot_id,omitempty"`
	// Date holds the value of the "date" field.
	Date time.Time `json:"date,omitempty"`
	// SessionCount holds the value of the "session_count" field.
	SessionCount int `json:"session_count,omitempty"`
	// MessageCount holds the value of the "message_count" field.
	MessageCount int `json:"message_count,omitempty"`
	// TotalResponseTimeMs holds the value of the "total_response_time_ms" field.
	TotalResponseTimeMs int64 `json:"total_response_time_ms,omitempty"`
	// InputTokens holds the value of the "input_tokens" field.
	InputTokens int64 `json:"input_tokens,omitempty"`
	// OutputTokens holds the value of the "output_tokens" field.
	OutputTokens int64 `json:"output_tokens,omitempty"`
	// RetrievalCount holds the value of the "retrieval_count" field.
	RetrievalCount int64 `json:"retrieval_count,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DailyStatQuery when eager-loading is set.
	Edges        DailyStatEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DailyStatEdges holds the relations/edges for other nodes in the graph.
type DailyStatEdges struct {
	// Chatbot holds the value of the chatbot edge.
	Chatbot *Chatbot `json:"chatbot,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChatbotOrErr returns the Chatbot value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e DailyStatEdges) ChatbotOrErr() (*Chatbot, error) {
	if e.Chatbot != nil {
		return e.Chatbot, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chatbot.Label}
	}
	return nil, &NotLoadedError{edge: "chatbot"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DailyStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case dailystat.FieldSessionCount, dailystat.FieldMessageCount, dailystat.FieldTotalResponseTimeMs, dailystat.FieldInputTokens, dailystat.FieldOutputTokens, dailystat.FieldRetrievalCount:
			values[i] = new(sql.NullInt64)
		case dailystat.FieldID, dailystat.FieldChatbotID:
			values[i] = new(sql.NullString)
		case dailystat.FieldDate, dailystat.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DailyStat fields.
func (_m *DailyStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case dailystat.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case dailystat.FieldChatbotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chatbot_id", values[i])
			} else if value.Valid {
				_m.ChatbotID = value.String
			}
		case dailystat.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.Time
			}
		case dailystat.FieldSessionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field session_count", values[i])
			} else if value.Valid {
				_m.SessionCount = int(value.Int64)
			}
		case dailystat.FieldMessageCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field message_count", values[i])
			} else if value.Valid {
				_m.MessageCount = int(value.Int64)
			}
		case dailystat.FieldTotalResponseTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_response_time_ms", values[i])
			} else if value.Valid {
				_m.TotalResponseTimeMs = value.Int64
			}
		case dailystat.FieldInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field input_tokens", values[i])
			} else if value.Valid {
				_m.InputTokens = value.Int64
			}
		case dailystat.FieldOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field output_tokens", values[i])
			} else if value.Valid {
				_m.OutputTokens = value.Int64
			}
		case dailystat.FieldRetrievalCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retrieval_count", values[i])
			} else if value.Valid {
				_m.RetrievalCount = value.Int64
			}
		case dailystat.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DailyStat.
// This includes values selected through modifiers, order, etc.
func (_m *DailyStat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChatbot queries the "chatbot" edge of the DailyStat entity.
func (_m *DailyStat) QueryChatbot() *ChatbotQuery {
	return NewDailyStatClient(_m.config).QueryChatbot(_m)
}

// Update returns a builder for updating this DailyStat.
// Note that you need to call DailyStat.Unwrap() before calling this method if this DailyStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DailyStat) Update() *DailyStatUpdateOne {
	return NewDailyStatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DailyStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DailyStat) Unwrap() *DailyStat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DailyStat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DailyStat) String() string {
	var builder strings.Builder
	builder.WriteString("DailyStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chatbot_id=")
	builder.WriteString(_m.ChatbotID)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SessionCount))
	builder.WriteString(", ")
	builder.WriteString("message_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MessageCount))
	builder.WriteString(", ")
	builder.WriteString("total_response_time_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalResponseTimeMs))
	builder.WriteString(", ")
	builder.WriteString("input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputTokens))
	builder.WriteString(", ")
	builder.WriteString("output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputTokens))
	builder.WriteString(", ")
	builder.WriteString("retrieval_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetrievalCount))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DailyStats is a parsable slice of DailyStat.
type DailyStats []*DailyStat
