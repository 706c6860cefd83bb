// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/lorekeep/lorekeep/ent/message"
	"github.com/lorekeep/lorekeep/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *MessageUpdate) SetContent(v string) *MessageUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableContent(v *string) *MessageUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSources sets the "sources" field.
func (_u *MessageUpdate) SetSources(v []map[string]interface{}) *MessageUpdate {
	_u.mutation.SetSources(v)
	return _u
}

// AppendSources appends value to the "sources" field.
func (_u *MessageUpdate) AppendSources(v []map[string]interface{}) *MessageUpdate {
	_u.mutation.AppendSources(v)
	return _u
}

// ClearSources clears the value of the "sources" field.
func (_u *MessageUpdate) ClearSources() *MessageUpdate {
	_u.mutation.ClearSources()
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *MessageUpdate) SetCancelled(v bool) *MessageUpdate {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableCancelled(v *bool) *MessageUpdate {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetFailed sets the "failed" field.
func (_u *MessageUpdate) SetFailed(v bool) *MessageUpdate {
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableFailed(v *bool) *MessageUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *MessageUpdate) SetResponseTimeMs(v int) *MessageUpdate {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableResponseTimeMs(v *int) *MessageUpdate {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *MessageUpdate) AddResponseTimeMs(v int) *MessageUpdate {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *MessageUpdate) SetInputTokens(v int) *MessageUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableInputTokens(v *int) *MessageUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *MessageUpdate) AddInputTokens(v int) *MessageUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *MessageUpdate) SetOutputTokens(v int) *MessageUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableOutputTokens(v *int) *MessageUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *MessageUpdate) AddOutputTokens(v int) *MessageUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetRetrievalCount sets the "retrieval_count" field.
func (_u *MessageUpdate) SetRetrievalCount(v int) *MessageUpdate {
	_u.mutation.ResetRetrievalCount()
	_u.mutation.SetRetrievalCount(v)
	return _u
}

// SetNillableRetrievalCount sets the "retrieval_count" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableRetrievalCount(v *int) *MessageUpdate {
	if v != nil {
		_u.SetRetrievalCount(*v)
	}
	return _u
}

// AddRetrievalCount adds value to the "retrieval_count" field.
func (_u *MessageUpdate) AddRetrievalCount(v int) *MessageUpdate {
	_u.mutation.AddRetrievalCount(v)
	return _u
}

// SetRetrievalTimeMs sets the "retrieval_time_ms" field.
func (_u *MessageUpdate) SetRetrievalTimeMs(v int) *MessageUpdate {
	_u.mutation.ResetRetrievalTimeMs()
	_u.mutation.SetRetrievalTimeMs(v)
	return _u
}

// SetNillableRetrievalTimeMs sets the "retrieval_time_ms" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableRetrievalTimeMs(v *int) *MessageUpdate {
	if v != nil {
		_u.SetRetrievalTimeMs(*v)
	}
	return _u
}

// AddRetrievalTimeMs adds value to the "retrieval_time_ms" field.
func (_u *MessageUpdate) AddRetrievalTimeMs(v int) *MessageUpdate {
	_u.mutation.AddRetrievalTimeMs(v)
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdate) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := message.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Message.content": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.session"`)
	}
	return nil
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sources(); ok {
		_spec.SetField(message.FieldSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, message.FieldSources, value)
		})
	}
	if _u.mutation.SourcesCleared() {
		_spec.ClearField(message.FieldSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(message.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(message.FieldFailed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(message.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(message.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(message.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(message.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(message.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(message.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetrievalCount(); ok {
		_spec.SetField(message.FieldRetrievalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetrievalCount(); ok {
		_spec.AddField(message.FieldRetrievalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetrievalTimeMs(); ok {
		_spec.SetField(message.FieldRetrievalTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetrievalTimeMs(); ok {
		_spec.AddField(message.FieldRetrievalTimeMs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetContent sets the "content" field.
func (_u *MessageUpdateOne) SetContent(v string) *MessageUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableContent(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetSources sets the "sources" field.
func (_u *MessageUpdateOne) SetSources(v []map[string]interface{}) *MessageUpdateOne {
	_u.mutation.SetSources(v)
	return _u
}

// AppendSources appends value to the "sources" field.
func (_u *MessageUpdateOne) AppendSources(v []map[string]interface{}) *MessageUpdateOne {
	_u.mutation.AppendSources(v)
	return _u
}

// ClearSources clears the value of the "sources" field.
func (_u *MessageUpdateOne) ClearSources() *MessageUpdateOne {
	_u.mutation.ClearSources()
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *MessageUpdateOne) SetCancelled(v bool) *MessageUpdateOne {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableCancelled(v *bool) *MessageUpdateOne {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetFailed sets the "failed" field.
func (_u *MessageUpdateOne) SetFailed(v bool) *MessageUpdateOne {
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableFailed(v *bool) *MessageUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (_u *MessageUpdateOne) SetResponseTimeMs(v int) *MessageUpdateOne {
	_u.mutation.ResetResponseTimeMs()
	_u.mutation.SetResponseTimeMs(v)
	return _u
}

// SetNillableResponseTimeMs sets the "response_time_ms" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableResponseTimeMs(v *int) *MessageUpdateOne {
	if v != nil {
		_u.SetResponseTimeMs(*v)
	}
	return _u
}

// AddResponseTimeMs adds value to the "response_time_ms" field.
func (_u *MessageUpdateOne) AddResponseTimeMs(v int) *MessageUpdateOne {
	_u.mutation.AddResponseTimeMs(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *MessageUpdateOne) SetInputTokens(v int) *MessageUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableInputTokens(v *int) *MessageUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *MessageUpdateOne) AddInputTokens(v int) *MessageUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *MessageUpdateOne) SetOutputTokens(v int) *MessageUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableOutputTokens(v *int) *MessageUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *MessageUpdateOne) AddOutputTokens(v int) *MessageUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetRetrievalCount sets the "retrieval_count" field.
func (_u *MessageUpdateOne) SetRetrievalCount(v int) *MessageUpdateOne {
	_u.mutation.ResetRetrievalCount()
	_u.mutation.SetRetrievalCount(v)
	return _u
}

// SetNillableRetrievalCount sets the "retrieval_count" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableRetrievalCount(v *int) *MessageUpdateOne {
	if v != nil {
		_u.SetRetrievalCount(*v)
	}
	return _u
}

// AddRetrievalCount adds value to the "retrieval_count" field.
func (_u *MessageUpdateOne) AddRetrievalCount(v int) *MessageUpdateOne {
	_u.mutation.AddRetrievalCount(v)
	return _u
}

// SetRetrievalTimeMs sets the "retrieval_time_ms" field.
func (_u *MessageUpdateOne) SetRetrievalTimeMs(v int) *MessageUpdateOne {
	_u.mutation.ResetRetrievalTimeMs()
	_u.mutation.SetRetrievalTimeMs(v)
	return _u
}

// SetNillableRetrievalTimeMs sets the "retrieval_time_ms" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableRetrievalTimeMs(v *int) *MessageUpdateOne {
	if v != nil {
		_u.SetRetrievalTimeMs(*v)
	}
	return _u
}

// AddRetrievalTimeMs adds value to the "retrieval_time_ms" field.
func (_u *MessageUpdateOne) AddRetrievalTimeMs(v int) *MessageUpdateOne {
	_u.mutation.AddRetrievalTimeMs(v)
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MessageUpdateOne) check() error {
	if v, ok := _u.mutation.Content(); ok {
		if err := message.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "Message.content": %w`, err)}
		}
	}
	if _u.mutation.SessionCleared() && len(_u.mutation.SessionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Message.session"`)
	}
	return nil
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(message.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sources(); ok {
		_spec.SetField(message.FieldSources, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSources(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, message.FieldSources, value)
		})
	}
	if _u.mutation.SourcesCleared() {
		_spec.ClearField(message.FieldSources, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(message.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(message.FieldFailed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTimeMs(); ok {
		_spec.SetField(message.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseTimeMs(); ok {
		_spec.AddField(message.FieldResponseTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(message.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(message.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(message.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(message.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetrievalCount(); ok {
		_spec.SetField(message.FieldRetrievalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetrievalCount(); ok {
		_spec.AddField(message.FieldRetrievalCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RetrievalTimeMs(); ok {
		_spec.SetField(message.FieldRetrievalTimeMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetrievalTimeMs(); ok {
		_spec.AddField(message.FieldRetrievalTimeMs, field.TypeInt, value)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
