// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lorekeep/lorekeep/ent/buildversion"
	"github.com/lorekeep/lorekeep/ent/chatbot"
)

// BuildVersion is the model entity for the BuildVersion schema.
type BuildVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ChatbotID holds the value of the "chatbot_id" field.
	ChatbotID string `json:"chatbot_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Status holds the value of the "status" field.
	Status buildversion.Status `json:"status,omitempty"`
	// ActivatedAt holds the value of the "activated_at" field.
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BuildVersionQuery when eager-loading is set.
	Edges        BuildVersionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BuildVersionEdges holds the relations/edges for other nodes in the graph.
type BuildVersionEdges struct {
	// Chatbot holds the value of the chatbot edge.
	Chatbot *Chatbot `json:"chatbot,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ChatbotOrErr returns the Chatbot value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BuildVersionEdges) ChatbotOrErr() (*Chatbot, error) {
	if e.Chatbot != nil {
		return e.Chatbot, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: chatbot.Label}
	}
	return nil, &NotLoadedError{edge: "chatbot"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BuildVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case buildversion.FieldVersion:
			values[i] = new(sql.NullInt64)
		case buildversion.FieldID, buildversion.FieldChatbotID, buildversion.FieldStatus:
			values[i] = new(sql.NullString)
		case buildversion.FieldActivatedAt, buildversion.FieldCreatedAt, buildversion.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BuildVersion fields.
func (_m *BuildVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case buildversion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case buildversion.FieldChatbotID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chatbot_id", values[i])
			} else if value.Valid {
				_m.ChatbotID = value.String
			}
		case buildversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case buildversion.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = buildversion.Status(value.String)
			}
		case buildversion.FieldActivatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field activated_at", values[i])
			} else if value.Valid {
				_m.ActivatedAt = new(time.Time)
				*_m.ActivatedAt = value.Time
			}
		case buildversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case buildversion.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BuildVersion.
// This includes values selected through modifiers, order, etc.
func (_m *BuildVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryChatbot queries the "chatbot" edge of the BuildVersion entity.
func (_m *BuildVersion) QueryChatbot() *ChatbotQuery {
	return NewBuildVersionClient(_m.config).QueryChatbot(_m)
}

// Update returns a builder for updating this BuildVersion.
// Note that you need to call BuildVersion.Unwrap() before calling this method if this BuildVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BuildVersion) Update() *BuildVersionUpdateOne {
	return NewBuildVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BuildVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BuildVersion) Unwrap() *BuildVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BuildVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BuildVersion) String() string {
	var builder strings.Builder
	builder.WriteString("BuildVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("chatbot_id=")
	builder.WriteString(_m.ChatbotID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.ActivatedAt; v != nil {
		builder.WriteString("activated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BuildVersions is a parsable slice of BuildVersion.
type BuildVersions []*BuildVersion
