// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/lorekeep/lorekeep/ent/dailystat"
	"github.com/lorekeep/lorekeep/ent/predicate"
)

// DailyStatUpdate is the builder for updating DailyStat entities.
type DailyStatUpdate struct {
	config
	hooks    []Hook
	mutation *DailyStatMutation
}

// Where appends a list predicates to the DailyStatUpdate builder.
func (_u *DailyStatUpdate) Where(ps ...predicate.DailyStat) *DailyStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionCount sets the "session_count" field.
func (_u *DailyStatUpdate) SetSessionCount(v int) *DailyStatUpdate {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *DailyStatUpdate) SetNillableSessionCount(v *int) *DailyStatUpdate {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *DailyStatUpdate) AddSessionCount(v int) *DailyStatUpdate {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *DailyStatUpdate) SetMessageCount(v int) *DailyStatUpdate {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *DailyStatUpdate) SetNillableMessageCount(v *int) *DailyStatUpdate {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *DailyStatUpdate) AddMessageCount(v int) *DailyStatUpdate {
	_u.mutation.AddMessageCount(v)
	return _u
}

// SetTotalResponseTimeMs sets the "total_response_time_ms" field.
func (_u *DailyStatUpdate) SetTotalResponseTimeMs(v int64) *DailyStatUpdate {
	_u.mutation.ResetTotalResponseTimeMs()
	_u.mutation.SetTotalResponseTimeMs(v)
	return _u
}

// SetNillableTotalResponseTimeMs sets the "total_response_time_ms" field if the given value is not nil.
func (_u *DailyStatUpdate) SetNillableTotalResponseTimeMs(v *int64) *DailyStatUpdate {
	if v != nil {
		_u.SetTotalResponseTimeMs(*v)
	}
	return _u
}

// AddTotalResponseTimeMs adds value to the "total_response_time_ms" field.
func (_u *DailyStatUpdate) AddTotalResponseTimeMs(v int64) *DailyStatUpdate {
	_u.mutation.AddTotalResponseTimeMs(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *DailyStatUpdate) SetInputTokens(v int64) *DailyStatUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *DailyStatUpdate) SetNillableInputTokens(v *int64) *DailyStatUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *DailyStatUpdate) AddInputTokens(v int64) *DailyStatUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *DailyStatUpdate) SetOutputTokens(v int64) *DailyStatUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *DailyStatUpdate) SetNillableOutputTokens(v *int64) *DailyStatUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *DailyStatUpdate) AddOutputTokens(v int64) *DailyStatUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetRetrievalCount sets the "retrieval_count" field.
func (_u *DailyStatUpdate) SetRetrievalCount(v int64) *DailyStatUpdate {
	_u.mutation.ResetRetrievalCount()
	_u.mutation.SetRetrievalCount(v)
	return _u
}

// SetNillableRetrievalCount sets the "retrieval_count" field if the given value is not nil.
func (_u *DailyStatUpdate) SetNillableRetrievalCount(v *int64) *DailyStatUpdate {
	if v != nil {
		_u.SetRetrievalCount(*v)
	}
	return _u
}

// AddRetrievalCount adds value to the "retrieval_count" field.
func (_u *DailyStatUpdate) AddRetrievalCount(v int64) *DailyStatUpdate {
	_u.mutation.AddRetrievalCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DailyStatUpdate) SetUpdatedAt(v time.Time) *DailyStatUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DailyStatMutation object of the builder.
func (_u *DailyStatUpdate) Mutation() *DailyStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DailyStatUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DailyStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DailyStatUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dailystat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyStatUpdate) check() error {
	if _u.mutation.ChatbotCleared() && len(_u.mutation.ChatbotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DailyStat.chatbot"`)
	}
	return nil
}

func (_u *DailyStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailystat.Table, dailystat.Columns, sqlgraph.NewFieldSpec(dailystat.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(dailystat.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(dailystat.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(dailystat.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(dailystat.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalResponseTimeMs(); ok {
		_spec.SetField(dailystat.FieldTotalResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalResponseTimeMs(); ok {
		_spec.AddField(dailystat.FieldTotalResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(dailystat.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(dailystat.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(dailystat.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(dailystat.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RetrievalCount(); ok {
		_spec.SetField(dailystat.FieldRetrievalCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRetrievalCount(); ok {
		_spec.AddField(dailystat.FieldRetrievalCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dailystat.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailystat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DailyStatUpdateOne is the builder for updating a single DailyStat entity.
type DailyStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DailyStatMutation
}

// SetSessionCount sets the "session_count" field.
func (_u *DailyStatUpdateOne) SetSessionCount(v int) *DailyStatUpdateOne {
	_u.mutation.ResetSessionCount()
	_u.mutation.SetSessionCount(v)
	return _u
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_u *DailyStatUpdateOne) SetNillableSessionCount(v *int) *DailyStatUpdateOne {
	if v != nil {
		_u.SetSessionCount(*v)
	}
	return _u
}

// AddSessionCount adds value to the "session_count" field.
func (_u *DailyStatUpdateOne) AddSessionCount(v int) *DailyStatUpdateOne {
	_u.mutation.AddSessionCount(v)
	return _u
}

// SetMessageCount sets the "message_count" field.
func (_u *DailyStatUpdateOne) SetMessageCount(v int) *DailyStatUpdateOne {
	_u.mutation.ResetMessageCount()
	_u.mutation.SetMessageCount(v)
	return _u
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_u *DailyStatUpdateOne) SetNillableMessageCount(v *int) *DailyStatUpdateOne {
	if v != nil {
		_u.SetMessageCount(*v)
	}
	return _u
}

// AddMessageCount adds value to the "message_count" field.
func (_u *DailyStatUpdateOne) AddMessageCount(v int) *DailyStatUpdateOne {
	_u.mutation.AddMessageCount(v)
	return _u
}

// SetTotalResponseTimeMs sets the "total_response_time_ms" field.
func (_u *DailyStatUpdateOne) SetTotalResponseTimeMs(v int64) *DailyStatUpdateOne {
	_u.mutation.ResetTotalResponseTimeMs()
	_u.mutation.SetTotalResponseTimeMs(v)
	return _u
}

// SetNillableTotalResponseTimeMs sets the "total_response_time_ms" field if the given value is not nil.
func (_u *DailyStatUpdateOne) SetNillableTotalResponseTimeMs(v *int64) *DailyStatUpdateOne {
	if v != nil {
		_u.SetTotalResponseTimeMs(*v)
	}
	return _u
}

// AddTotalResponseTimeMs adds value to the "total_response_time_ms" field.
func (_u *DailyStatUpdateOne) AddTotalResponseTimeMs(v int64) *DailyStatUpdateOne {
	_u.mutation.AddTotalResponseTimeMs(v)
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *DailyStatUpdateOne) SetInputTokens(v int64) *DailyStatUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *DailyStatUpdateOne) SetNillableInputTokens(v *int64) *DailyStatUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *DailyStatUpdateOne) AddInputTokens(v int64) *DailyStatUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *DailyStatUpdateOne) SetOutputTokens(v int64) *DailyStatUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *DailyStatUpdateOne) SetNillableOutputTokens(v *int64) *DailyStatUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *DailyStatUpdateOne) AddOutputTokens(v int64) *DailyStatUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetRetrievalCount sets the "retrieval_count" field.
func (_u *DailyStatUpdateOne) SetRetrievalCount(v int64) *DailyStatUpdateOne {
	_u.mutation.ResetRetrievalCount()
	_u.mutation.SetRetrievalCount(v)
	return _u
}

// SetNillableRetrievalCount sets the "retrieval_count" field if the given value is not nil.
func (_u *DailyStatUpdateOne) SetNillableRetrievalCount(v *int64) *DailyStatUpdateOne {
	if v != nil {
		_u.SetRetrievalCount(*v)
	}
	return _u
}

// AddRetrievalCount adds value to the "retrieval_count" field.
func (_u *DailyStatUpdateOne) AddRetrievalCount(v int64) *DailyStatUpdateOne {
	_u.mutation.AddRetrievalCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DailyStatUpdateOne) SetUpdatedAt(v time.Time) *DailyStatUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the DailyStatMutation object of the builder.
func (_u *DailyStatUpdateOne) Mutation() *DailyStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the DailyStatUpdate builder.
func (_u *DailyStatUpdateOne) Where(ps ...predicate.DailyStat) *DailyStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DailyStatUpdateOne) Select(field string, fields ...string) *DailyStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DailyStat entity.
func (_u *DailyStatUpdateOne) Save(ctx context.Context) (*DailyStat, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DailyStatUpdateOne) SaveX(ctx context.Context) *DailyStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DailyStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DailyStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DailyStatUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dailystat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DailyStatUpdateOne) check() error {
	if _u.mutation.ChatbotCleared() && len(_u.mutation.ChatbotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DailyStat.chatbot"`)
	}
	return nil
}

func (_u *DailyStatUpdateOne) sqlSave(ctx context.Context) (_node *DailyStat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dailystat.Table, dailystat.Columns, sqlgraph.NewFieldSpec(dailystat.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DailyStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dailystat.FieldID)
		for _, f := range fields {
			if !dailystat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dailystat.FieldID {
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
	if value, ok := _u.mutation.SessionCount(); ok {
		_spec.SetField(dailystat.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSessionCount(); ok {
		_spec.AddField(dailystat.FieldSessionCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MessageCount(); ok {
		_spec.SetField(dailystat.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMessageCount(); ok {
		_spec.AddField(dailystat.FieldMessageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalResponseTimeMs(); ok {
		_spec.SetField(dailystat.FieldTotalResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalResponseTimeMs(); ok {
		_spec.AddField(dailystat.FieldTotalResponseTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(dailystat.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(dailystat.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(dailystat.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(dailystat.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RetrievalCount(); ok {
		_spec.SetField(dailystat.FieldRetrievalCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedRetrievalCount(); ok {
		_spec.AddField(dailystat.FieldRetrievalCount, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dailystat.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &DailyStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dailystat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
