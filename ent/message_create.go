// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lorekeep/lorekeep/ent/chatsession"
	"github.com/lorekeep/lorekeep/ent/message"
)

// MessageCreate is the builder for creating a Message entity.
type MessageCreate struct {
	config
	mutation *MessageMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSessionID sets the "session_id" field.
func (_c *MessageCreate) SetSessionID(v string) *MessageCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *MessageCreate) SetRole(v message.Role) *MessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *MessageCreate) SetContent(v string) *MessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetSources sets the "sources" field.
func (_c *MessageCreate) SetSources(v []map[string]interface{}) *MessageCreate {
	_c.mutation.SetSources(v)
	return _c
}

// SetCancelled sets the "cancelled" field.
func (_c *MessageCreate) SetCancelled(v bool) *MessageCreate {
	_c.mutation.SetCancelled(v)
	return _c
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCancelled(v *bool) *MessageCreate {
	if v != nil {
		_c.SetCancelled(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *MessageCreate) SetFailed(v bool) *MessageCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *MessageCreate) SetNillableFailed(v *bool) *MessageCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_c *MessageCreate) SetResponseTimeMs(v int) *MessageCreate {
	_c.mutation.SetResponseTimeMs(v)
	return _c
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_c *MessageCreate) SetNillableResponseTimeMs(v *int) *MessageCreate {
	if v != nil {
		_c.SetResponseTimeMs(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *MessageCreate) SetInputTokens(v int) *MessageCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *MessageCreate) SetNillableInputTokens(v *int) *MessageCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *MessageCreate) SetOutputTokens(v int) *MessageCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *MessageCreate) SetNillableOutputTokens(v *int) *MessageCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetRetrievalCount sets the "retrieval_count" field.
func (_c *MessageCreate) SetRetrievalCount(v int) *MessageCreate {
	_c.mutation.SetRetrievalCount(v)
	return _c
}

// SetNillableRetrievalCount sets the "retrieval_count" field if the given value is not nil.
func (_c *MessageCreate) SetNillableRetrievalCount(v *int) *MessageCreate {
	if v != nil {
		_c.SetRetrievalCount(*v)
	}
	return _c
}

// SetRetrievalTimeMs sets the "retrieval_time_ms" field.
func (_c *MessageCreate) SetRetrievalTimeMs(v int) *MessageCreate {
	_c.mutation.SetRetrievalTimeMs(v)
	return _c
}

// SetNillableRetrievalTimeMs sets the "retrieval_time_ms" field if the given value is not nil.
func (_c *MessageCreate) SetNillableRetrievalTimeMs(v *int) *MessageCreate {
	if v != nil {
		_c.SetRetrievalTimeMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MessageCreate) SetCreatedAt(v time.Time) *MessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MessageCreate) SetNillableCreatedAt(v *time.Time) *MessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MessageCreate) SetID(v string) *MessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetSession sets the "session" edge to the ChatSession entity.
func (_c *MessageCreate) SetSession(v *ChatSession) *MessageCreate {
	return _c.SetSessionID(v.ID)
}

// Mutation returns the MessageMutation object of the builder.
func (_c *MessageCreate) Mutation() *MessageMutation {
	return _c.mutation
}

// Save creates the Message in the database.
func (_c *MessageCreate) Save(ctx context.Context) (*Message, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MessageCreate) SaveX(ctx context.Context) *Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MessageCreate) defaults() {
	if _, ok := _c.mutation.Cancelled(); !ok {
		v := message.DefaultCancelled
		_c.mutation.SetCancelled(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := message.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		v := message.DefaultResponseTimeMs
		_c.mutation.SetResponseTimeMs(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := message.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := message.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.RetrievalCount(); !ok {
		v := message.DefaultRetrievalCount
		_c.mutation.SetRetrievalCount(v)
	}
	if _, ok := _c.mutation.RetrievalTimeMs(); !ok {
		v := message.DefaultRetrievalTimeMs
		_c.mutation.SetRetrievalTimeMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := message.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MessageCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Message.session_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Message.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := message.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Message.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Message.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := message.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Message.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		return &ValidationError{Name: "cancelled", err: errors.New(`ent: missing required field "Message.cancelled"`)}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "Message.failed"`)}
	}
	if _, ok := _c.mutation.ResponseTimeMs(); !ok {
		return &ValidationError{Name: "response_time_ms", err: errors.New(`ent: missing required field "Message.response_time_ms"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "Message.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "Message.output_tokens"`)}
	}
	if _, ok := _c.mutation.RetrievalCount(); !ok {
		return &ValidationError{Name: "retrieval_count", err: errors.New(`ent: missing required field "Message.retrieval_count"`)}
	}
	if _, ok := _c.mutation.RetrievalTimeMs(); !ok {
		return &ValidationError{Name: "retrieval_time_ms", err: errors.New(`ent: missing required field "Message.retrieval_time_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Message.created_at"`)}
	}
	if len(_c.mutation.SessionIDs()) == 0 {
		return &ValidationError{Name: "session", err: errors.New(`ent: missing required edge "Message.session"`)}
	}
	return nil
}

func (_c *MessageCreate) sqlSave(ctx context.Context) (*Message, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Message.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MessageCreate) createSpec() (*Message, *sqlgraph.CreateSpec) {
	var (
		_node = &Message{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(message.Table, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(message.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.Sources(); ok {
		_spec.SetField(message.FieldSources, field.TypeJSON, value)
		_node.Sources = value
	}
	if value, ok := _c.mutation.Cancelled(); ok {
		_spec.SetField(message.FieldCancelled, field.TypeBool, value)
		_node.Cancelled = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(message.FieldFailed, field.TypeBool, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.ResponseTimeMs(); ok {
		_spec.SetField(message.FieldResponseTimeMs, field.TypeInt, value)
		_node.ResponseTimeMs = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(message.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(message.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.RetrievalCount(); ok {
		_spec.SetField(message.FieldRetrievalCount, field.TypeInt, value)
		_node.RetrievalCount = value
	}
	if value, ok := _c.mutation.RetrievalTimeMs(); ok {
		_spec.SetField(message.FieldRetrievalTimeMs, field.TypeInt, value)
		_node.RetrievalTimeMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(message.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.SessionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   message.SessionTable,
			Columns: []string{message.SessionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SessionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.Create().
//		SetSessionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreate) OnConflict(opts ...sql.ConflictOption) *MessageUpsertOne {
	_c.conflict = opts
	return &MessageUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreate) OnConflictColumns(columns ...string) *MessageUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertOne{
		create: _c,
	}
}

type (
	// MessageUpsertOne is the builder for "upsert"-ing
	//  one Message node.
	MessageUpsertOne struct {
		create *MessageCreate
	}

	// MessageUpsert is the "OnConflict" setter.
	MessageUpsert struct {
		*sql.UpdateSet
	}
)

// SetContent sets the "content" field.
func (u *MessageUpsert) SetContent(v string) *MessageUpsert {
	u.Set(message.FieldContent, v)
	return u
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsert) UpdateContent() *MessageUpsert {
	u.SetExcluded(message.FieldContent)
	return u
}

// SetSources sets the "sources" field.
func (u *MessageUpsert) SetSources(v []map[string]interface{}) *MessageUpsert {
	u.Set(message.FieldSources, v)
	return u
}

// UpdateSources sets the "sources" field to the value that was provided on create.
func (u *MessageUpsert) UpdateSources() *MessageUpsert {
	u.SetExcluded(message.FieldSources)
	return u
}

// ClearSources clears the value of the "sources" field.
func (u *MessageUpsert) ClearSources() *MessageUpsert {
	u.SetNull(message.FieldSources)
	return u
}

// SetCancelled sets the "cancelled" field.
func (u *MessageUpsert) SetCancelled(v bool) *MessageUpsert {
	u.Set(message.FieldCancelled, v)
	return u
}

// UpdateCancelled sets the "cancelled" field to the value that was provided on create.
func (u *MessageUpsert) UpdateCancelled() *MessageUpsert {
	u.SetExcluded(message.FieldCancelled)
	return u
}

// SetFailed sets the "failed" field.
func (u *MessageUpsert) SetFailed(v bool) *MessageUpsert {
	u.Set(message.FieldFailed, v)
	return u
}

// UpdateFailed sets the "failed" field to the value that was provided on create.
func (u *MessageUpsert) UpdateFailed() *MessageUpsert {
	u.SetExcluded(message.FieldFailed)
	return u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (u *MessageUpsert) SetResponseTimeMs(v int) *MessageUpsert {
	u.Set(message.FieldResponseTimeMs, v)
	return u
}

// UpdateResponseTimeMs sets the "response_time_ms" field to the value that was provided on create.
func (u *MessageUpsert) UpdateResponseTimeMs() *MessageUpsert {
	u.SetExcluded(message.FieldResponseTimeMs)
	return u
}

// AddResponseTimeMs adds v to the "response_time_ms" field.
func (u *MessageUpsert) AddResponseTimeMs(v int) *MessageUpsert {
	u.Add(message.FieldResponseTimeMs, v)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *MessageUpsert) SetInputTokens(v int) *MessageUpsert {
	u.Set(message.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *MessageUpsert) UpdateInputTokens() *MessageUpsert {
	u.SetExcluded(message.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *MessageUpsert) AddInputTokens(v int) *MessageUpsert {
	u.Add(message.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *MessageUpsert) SetOutputTokens(v int) *MessageUpsert {
	u.Set(message.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *MessageUpsert) UpdateOutputTokens() *MessageUpsert {
	u.SetExcluded(message.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *MessageUpsert) AddOutputTokens(v int) *MessageUpsert {
	u.Add(message.FieldOutputTokens, v)
	return u
}

// SetRetrievalCount sets the "retrieval_count" field.
func (u *MessageUpsert) SetRetrievalCount(v int) *MessageUpsert {
	u.Set(message.FieldRetrievalCount, v)
	return u
}

// UpdateRetrievalCount sets the "retrieval_count" field to the value that was provided on create.
func (u *MessageUpsert) UpdateRetrievalCount() *MessageUpsert {
	u.SetExcluded(message.FieldRetrievalCount)
	return u
}

// AddRetrievalCount adds v to the "retrieval_count" field.
func (u *MessageUpsert) AddRetrievalCount(v int) *MessageUpsert {
	u.Add(message.FieldRetrievalCount, v)
	return u
}

// SetRetrievalTimeMs sets the "retrieval_time_ms" field.
func (u *MessageUpsert) SetRetrievalTimeMs(v int) *MessageUpsert {
	u.Set(message.FieldRetrievalTimeMs, v)
	return u
}

// UpdateRetrievalTimeMs sets the "retrieval_time_ms" field to the value that was provided on create.
func (u *MessageUpsert) UpdateRetrievalTimeMs() *MessageUpsert {
	u.SetExcluded(message.FieldRetrievalTimeMs)
	return u
}

// AddRetrievalTimeMs adds v to the "retrieval_time_ms" field.
func (u *MessageUpsert) AddRetrievalTimeMs(v int) *MessageUpsert {
	u.Add(message.FieldRetrievalTimeMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertOne) UpdateNewValues() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(message.FieldID)
		}
		if _, exists := u.create.mutation.SessionID(); exists {
			s.SetIgnore(message.FieldSessionID)
		}
		if _, exists := u.create.mutation.Role(); exists {
			s.SetIgnore(message.FieldRole)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(message.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MessageUpsertOne) Ignore() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertOne) DoNothing() *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreate.OnConflict
// documentation for more info.
func (u *MessageUpsertOne) Update(set func(*MessageUpsert)) *MessageUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetContent sets the "content" field.
func (u *MessageUpsertOne) SetContent(v string) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateContent() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// SetSources sets the "sources" field.
func (u *MessageUpsertOne) SetSources(v []map[string]interface{}) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetSources(v)
	})
}

// UpdateSources sets the "sources" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateSources() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSources()
	})
}

// ClearSources clears the value of the "sources" field.
func (u *MessageUpsertOne) ClearSources() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.ClearSources()
	})
}

// SetCancelled sets the "cancelled" field.
func (u *MessageUpsertOne) SetCancelled(v bool) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetCancelled(v)
	})
}

// UpdateCancelled sets the "cancelled" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateCancelled() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateCancelled()
	})
}

// SetFailed sets the "failed" field.
func (u *MessageUpsertOne) SetFailed(v bool) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetFailed(v)
	})
}

// UpdateFailed sets the "failed" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateFailed() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateFailed()
	})
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (u *MessageUpsertOne) SetResponseTimeMs(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetResponseTimeMs(v)
	})
}

// AddResponseTimeMs adds v to the "response_time_ms" field.
func (u *MessageUpsertOne) AddResponseTimeMs(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.AddResponseTimeMs(v)
	})
}

// UpdateResponseTimeMs sets the "response_time_ms" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateResponseTimeMs() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateResponseTimeMs()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *MessageUpsertOne) SetInputTokens(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *MessageUpsertOne) AddInputTokens(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateInputTokens() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *MessageUpsertOne) SetOutputTokens(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *MessageUpsertOne) AddOutputTokens(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateOutputTokens() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetRetrievalCount sets the "retrieval_count" field.
func (u *MessageUpsertOne) SetRetrievalCount(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetRetrievalCount(v)
	})
}

// AddRetrievalCount adds v to the "retrieval_count" field.
func (u *MessageUpsertOne) AddRetrievalCount(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.AddRetrievalCount(v)
	})
}

// UpdateRetrievalCount sets the "retrieval_count" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateRetrievalCount() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateRetrievalCount()
	})
}

// SetRetrievalTimeMs sets the "retrieval_time_ms" field.
func (u *MessageUpsertOne) SetRetrievalTimeMs(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.SetRetrievalTimeMs(v)
	})
}

// AddRetrievalTimeMs adds v to the "retrieval_time_ms" field.
func (u *MessageUpsertOne) AddRetrievalTimeMs(v int) *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.AddRetrievalTimeMs(v)
	})
}

// UpdateRetrievalTimeMs sets the "retrieval_time_ms" field to the value that was provided on create.
func (u *MessageUpsertOne) UpdateRetrievalTimeMs() *MessageUpsertOne {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateRetrievalTimeMs()
	})
}

// Exec executes the query.
func (u *MessageUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MessageUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: MessageUpsertOne.ID is not supported by MySQL driver. Use MessageUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MessageUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MessageCreateBulk is the builder for creating many Message entities in bulk.
type MessageCreateBulk struct {
	config
	err      error
	builders []*MessageCreate
	conflict []sql.ConflictOption
}

// Save creates the Message entities in the database.
func (_c *MessageCreateBulk) Save(ctx context.Context) ([]*Message, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Message, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MessageMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MessageCreateBulk) SaveX(ctx context.Context) []*Message {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Message.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MessageUpsert) {
//			SetSessionID(v+v).
//		}).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflict(opts ...sql.ConflictOption) *MessageUpsertBulk {
	_c.conflict = opts
	return &MessageUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MessageCreateBulk) OnConflictColumns(columns ...string) *MessageUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MessageUpsertBulk{
		create: _c,
	}
}

// MessageUpsertBulk is the builder for "upsert"-ing
// a bulk of Message nodes.
type MessageUpsertBulk struct {
	create *MessageCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(message.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MessageUpsertBulk) UpdateNewValues() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(message.FieldID)
			}
			if _, exists := b.mutation.SessionID(); exists {
				s.SetIgnore(message.FieldSessionID)
			}
			if _, exists := b.mutation.Role(); exists {
				s.SetIgnore(message.FieldRole)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(message.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Message.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MessageUpsertBulk) Ignore() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MessageUpsertBulk) DoNothing() *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MessageCreateBulk.OnConflict
// documentation for more info.
func (u *MessageUpsertBulk) Update(set func(*MessageUpsert)) *MessageUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MessageUpsert{UpdateSet: update})
	}))
	return u
}

// SetContent sets the "content" field.
func (u *MessageUpsertBulk) SetContent(v string) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetContent(v)
	})
}

// UpdateContent sets the "content" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateContent() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateContent()
	})
}

// SetSources sets the "sources" field.
func (u *MessageUpsertBulk) SetSources(v []map[string]interface{}) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetSources(v)
	})
}

// UpdateSources sets the "sources" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateSources() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateSources()
	})
}

// ClearSources clears the value of the "sources" field.
func (u *MessageUpsertBulk) ClearSources() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.ClearSources()
	})
}

// SetCancelled sets the "cancelled" field.
func (u *MessageUpsertBulk) SetCancelled(v bool) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetCancelled(v)
	})
}

// UpdateCancelled sets the "cancelled" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateCancelled() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateCancelled()
	})
}

// SetFailed sets the "failed" field.
func (u *MessageUpsertBulk) SetFailed(v bool) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetFailed(v)
	})
}

// UpdateFailed sets the "failed" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateFailed() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateFailed()
	})
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (u *MessageUpsertBulk) SetResponseTimeMs(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetResponseTimeMs(v)
	})
}

// AddResponseTimeMs adds v to the "response_time_ms" field.
func (u *MessageUpsertBulk) AddResponseTimeMs(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.AddResponseTimeMs(v)
	})
}

// UpdateResponseTimeMs sets the "response_time_ms" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateResponseTimeMs() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateResponseTimeMs()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *MessageUpsertBulk) SetInputTokens(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *MessageUpsertBulk) AddInputTokens(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateInputTokens() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *MessageUpsertBulk) SetOutputTokens(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *MessageUpsertBulk) AddOutputTokens(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateOutputTokens() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetRetrievalCount sets the "retrieval_count" field.
func (u *MessageUpsertBulk) SetRetrievalCount(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetRetrievalCount(v)
	})
}

// AddRetrievalCount adds v to the "retrieval_count" field.
func (u *MessageUpsertBulk) AddRetrievalCount(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.AddRetrievalCount(v)
	})
}

// UpdateRetrievalCount sets the "retrieval_count" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateRetrievalCount() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateRetrievalCount()
	})
}

// SetRetrievalTimeMs sets the "retrieval_time_ms" field.
func (u *MessageUpsertBulk) SetRetrievalTimeMs(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.SetRetrievalTimeMs(v)
	})
}

// AddRetrievalTimeMs adds v to the "retrieval_time_ms" field.
func (u *MessageUpsertBulk) AddRetrievalTimeMs(v int) *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.AddRetrievalTimeMs(v)
	})
}

// UpdateRetrievalTimeMs sets the "retrieval_time_ms" field to the value that was provided on create.
func (u *MessageUpsertBulk) UpdateRetrievalTimeMs() *MessageUpsertBulk {
	return u.Update(func(s *MessageUpsert) {
		s.UpdateRetrievalTimeMs()
	})
}

// Exec executes the query.
func (u *MessageUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the MessageCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for MessageCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MessageUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
