// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lorekeep/lorekeep/ent/chatbot"
)

// Chatbot is the model entity for the Chatbot schema.
type Chatbot struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// name, tone, language, greeting, system_prompt, fallback_message
	Persona map[string]interface{} `json:"persona,omitempty"`
	// URL-safe public slug
	AccessURL string `json:"access_url,omitempty"`
	// Status holds the value of the "status" field.
	Status chatbot.Status `json:"status,omitempty"`
	// 0 = no active version yet
	ActiveVersion int `json:"active_version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChatbotQuery when eager-loading is set.
	Edges        ChatbotEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ChatbotEdges holds the relations/edges for other nodes in the graph.
type ChatbotEdges struct {
	// Documents holds the value of the documents edge.
	Documents []*Document `json:"documents,omitempty"`
	// Versions holds the value of the versions edge.
	Versions []*BuildVersion `json:"versions,omitempty"`
	// Sessions holds the value of the sessions edge.
	Sessions []*ChatSession `json:"sessions,omitempty"`
	// DailyStats holds the value of the daily_stats edge.
	DailyStats []*DailyStat `json:"daily_stats,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// DocumentsOrErr returns the Documents value or an error if the edge
// was not loaded in eager-loading.
func (e ChatbotEdges) DocumentsOrErr() ([]*Document, error) {
	if e.loadedTypes[0] {
		return e.Documents, nil
	}
	return nil, &NotLoadedError{edge: "documents"}
}

// VersionsOrErr returns the Versions value or an error if the edge
// was not loaded in eager-loading.
func (e ChatbotEdges) VersionsOrErr() ([]*BuildVersion, error) {
	if e.loadedTypes[1] {
		return e.Versions, nil
	}
	return nil, &NotLoadedError{edge: "versions"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e ChatbotEdges) SessionsOrErr() ([]*ChatSession, error) {
	if e.loadedTypes[2] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// DailyStatsOrErr returns the DailyStats value or an error if the edge
// was not loaded in eager-loading.
func (e ChatbotEdges) DailyStatsOrErr() ([]*DailyStat, error) {
	if e.loadedTypes[3] {
		return e.DailyStats, nil
	}
	return nil, &NotLoadedError{edge: "daily_stats"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Chatbot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case chatbot.FieldPersona:
			values[i] = new([]byte)
		case chatbot.FieldActiveVersion:
			values[i] = new(sql.NullInt64)
		case chatbot.FieldID, chatbot.FieldName, chatbot.FieldDescription, chatbot.FieldAccessURL, chatbot.FieldStatus:
			values[i] = new(sql.NullString)
		case chatbot.FieldCreatedAt, chatbot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Chatbot fields.
func (_m *Chatbot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case chatbot.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case chatbot.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case chatbot.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case chatbot.FieldPersona:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field persona", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Persona); err != nil {
					return fmt.Errorf("unmarshal field persona: %w", err)
				}
			}
		case chatbot.FieldAccessURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field access_url", values[i])
			} else if value.Valid {
				_m.AccessURL = value.String
			}
		case chatbot.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = chatbot.Status(value.String)
			}
		case chatbot.FieldActiveVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field active_version", values[i])
			} else if value.Valid {
				_m.ActiveVersion = int(value.Int64)
			}
		case chatbot.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case chatbot.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Chatbot.
// This includes values selected through modifiers, order, etc.
func (_m *Chatbot) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocuments queries the "documents" edge of the Chatbot entity.
func (_m *Chatbot) QueryDocuments() *DocumentQuery {
	return NewChatbotClient(_m.config).QueryDocuments(_m)
}

// QueryVersions queries the "versions" edge of the Chatbot entity.
func (_m *Chatbot) QueryVersions() *BuildVersionQuery {
	return NewChatbotClient(_m.config).QueryVersions(_m)
}

// QuerySessions queries the "sessions" edge of the Chatbot entity.
func (_m *Chatbot) QuerySessions() *ChatSessionQuery {
	return NewChatbotClient(_m.config).QuerySessions(_m)
}

// QueryDailyStats queries the "daily_stats" edge of the Chatbot entity.
func (_m *Chatbot) QueryDailyStats() *DailyStatQuery {
	return NewChatbotClient(_m.config).QueryDailyStats(_m)
}

// Update returns a builder for updating this Chatbot.
// Note that you need to call Chatbot.Unwrap() before calling this method if this Chatbot
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Chatbot) Update() *ChatbotUpdateOne {
	return NewChatbotClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Chatbot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Chatbot) Unwrap() *Chatbot {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Chatbot is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Chatbot) String() string {
	var builder strings.Builder
	builder.WriteString("Chatbot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("persona=")
	builder.WriteString(fmt.Sprintf("%v", _m.Persona))
	builder.WriteString(", ")
	builder.WriteString("access_url=")
	builder.WriteString(_m.AccessURL)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("active_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.ActiveVersion))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Chatbots is a parsable slice of Chatbot.
type Chatbots []*Chatbot
