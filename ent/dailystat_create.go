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
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/dailystat"
)

// DailyStatCreate is the builder for creating a DailyStat entity.
type DailyStatCreate struct {
	config
	mutation *DailyStatMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatbotID sets the "chatbot_id" field.
func (_c *DailyStatCreate) SetChatbotID(v string) *DailyStatCreate {
	_c.mutation.SetChatbotID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *DailyStatCreate) SetDate(v time.Time) *DailyStatCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetSessionCount sets the "session_count" field.
func (_c *DailyStatCreate) SetSessionCount(v int) *DailyStatCreate {
	_c.mutation.SetSessionCount(v)
	return _c
}

// SetNillableSessionCount sets the "session_count" field if the given value is not nil.
func (_c *DailyStatCreate) SetNillableSessionCount(v *int) *DailyStatCreate {
	if v != nil {
		_c.SetSessionCount(*v)
	}
	return _c
}

// SetMessageCount sets the "message_count" field.
func (_c *DailyStatCreate) SetMessageCount(v int) *DailyStatCreate {
	_c.mutation.SetMessageCount(v)
	return _c
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_c *DailyStatCreate) SetNillableMessageCount(v *int) *DailyStatCreate {
	if v != nil {
		_c.SetMessageCount(*v)
	}
	return _c
}

// SetTotalResponseTimeMs sets the "total_response_time_ms" field.
func (_c *DailyStatCreate) SetTotalResponseTimeMs(v int64) *DailyStatCreate {
	_c.mutation.SetTotalResponseTimeMs(v)
	return _c
}

// SetNillableTotalResponseTimeMs sets the "total_response_time_ms" field if the given value is not nil.
func (_c *DailyStatCreate) SetNillableTotalResponseTimeMs(v *int64) *DailyStatCreate {
	if v != nil {
		_c.SetTotalResponseTimeMs(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *DailyStatCreate) SetInputTokens(v int64) *DailyStatCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *DailyStatCreate) SetNillableInputTokens(v *int64) *DailyStatCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *DailyStatCreate) SetOutputTokens(v int64) *DailyStatCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *DailyStatCreate) SetNillableOutputTokens(v *int64) *DailyStatCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetRetrievalCount sets the "retrieval_count" field.
func (_c *DailyStatCreate) SetRetrievalCount(v int64) *DailyStatCreate {
	_c.mutation.SetRetrievalCount(v)
	return _c
}

// SetNillableRetrievalCount sets the "retrieval_count" field if the given value is not nil.
func (_c *DailyStatCreate) SetNillableRetrievalCount(v *int64) *DailyStatCreate {
	if v != nil {
		_c.SetRetrievalCount(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DailyStatCreate) SetUpdatedAt(v time.Time) *DailyStatCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DailyStatCreate) SetNillableUpdatedAt(v *time.Time) *DailyStatCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DailyStatCreate) SetID(v string) *DailyStatCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChatbot sets the "chatbot" edge to the Chatbot entity.
func (_c *DailyStatCreate) SetChatbot(v *Chatbot) *DailyStatCreate {
	return _c.SetChatbotID(v.ID)
}

// Mutation returns the DailyStatMutation object of the builder.
func (_c *DailyStatCreate) Mutation() *DailyStatMutation {
	return _c.mutation
}

// Save creates the DailyStat in the database.
func (_c *DailyStatCreate) Save(ctx context.Context) (*DailyStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DailyStatCreate) SaveX(ctx context.Context) *DailyStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DailyStatCreate) defaults() {
	if _, ok := _c.mutation.SessionCount(); !ok {
		v := dailystat.DefaultSessionCount
		_c.mutation.SetSessionCount(v)
	}
	if _, ok := _c.mutation.MessageCount(); !ok {
		v := dailystat.DefaultMessageCount
		_c.mutation.SetMessageCount(v)
	}
	if _, ok := _c.mutation.TotalResponseTimeMs(); !ok {
		v := dailystat.DefaultTotalResponseTimeMs
		_c.mutation.SetTotalResponseTimeMs(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := dailystat.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := dailystat.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.RetrievalCount(); !ok {
		v := dailystat.DefaultRetrievalCount
		_c.mutation.SetRetrievalCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dailystat.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DailyStatCreate) check() error {
	if _, ok := _c.mutation.ChatbotID(); !ok {
		return &ValidationError{Name: "chatbot_id", err: errors.New(`ent: missing required field "DailyStat.chatbot_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "DailyStat.date"`)}
	}
	if _, ok := _c.mutation.SessionCount(); !ok {
		return &ValidationError{Name: "session_count", err: errors.New(`ent: missing required field "DailyStat.session_count"`)}
	}
	if _, ok := _c.mutation.MessageCount(); !ok {
		return &ValidationError{Name: "message_count", err: errors.New(`ent: missing required field "DailyStat.message_count"`)}
	}
	if _, ok := _c.mutation.TotalResponseTimeMs(); !ok {
		return &ValidationError{Name: "total_response_time_ms", err: errors.New(`ent: missing required field "DailyStat.total_response_time_ms"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "DailyStat.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "DailyStat.output_tokens"`)}
	}
	if _, ok := _c.mutation.RetrievalCount(); !ok {
		return &ValidationError{Name: "retrieval_count", err: errors.New(`ent: missing required field "DailyStat.retrieval_count"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DailyStat.updated_at"`)}
	}
	if len(_c.mutation.ChatbotIDs()) == 0 {
		return &ValidationError{Name: "chatbot", err: errors.New(`ent: missing required edge "DailyStat.chatbot"`)}
	}
	return nil
}

func (_c *DailyStatCreate) sqlSave(ctx context.Context) (*DailyStat, error) {
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
			return nil, fmt.Errorf("unexpected DailyStat.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DailyStatCreate) createSpec() (*DailyStat, *sqlgraph.CreateSpec) {
	var (
		_node = &DailyStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dailystat.Table, sqlgraph.NewFieldSpec(dailystat.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(dailystat.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.SessionCount(); ok {
		_spec.SetField(dailystat.FieldSessionCount, field.TypeInt, value)
		_node.SessionCount = value
	}
	if value, ok := _c.mutation.MessageCount(); ok {
		_spec.SetField(dailystat.FieldMessageCount, field.TypeInt, value)
		_node.MessageCount = value
	}
	if value, ok := _c.mutation.TotalResponseTimeMs(); ok {
		_spec.SetField(dailystat.FieldTotalResponseTimeMs, field.TypeInt64, value)
		_node.TotalResponseTimeMs = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(dailystat.FieldInputTokens, field.TypeInt64, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(dailystat.FieldOutputTokens, field.TypeInt64, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.RetrievalCount(); ok {
		_spec.SetField(dailystat.FieldRetrievalCount, field.TypeInt64, value)
		_node.RetrievalCount = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dailystat.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ChatbotIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dailystat.ChatbotTable,
			Columns: []string{dailystat.ChatbotColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatbot.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ChatbotID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DailyStat.Create().
//		SetChatbotID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DailyStatUpsert) {
//			SetChatbotID(v+v).
//		}).
//		Exec(ctx)
func (_c *DailyStatCreate) OnConflict(opts ...sql.ConflictOption) *DailyStatUpsertOne {
	_c.conflict = opts
	return &DailyStatUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DailyStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DailyStatCreate) OnConflictColumns(columns ...string) *DailyStatUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DailyStatUpsertOne{
		create: _c,
	}
}

type (
	// DailyStatUpsertOne is the builder for "upsert"-ing
	//  one DailyStat node.
	DailyStatUpsertOne struct {
		create *DailyStatCreate
	}

	// DailyStatUpsert is the "OnConflict" setter.
	DailyStatUpsert struct {
		*sql.UpdateSet
	}
)

// SetSessionCount sets the "session_count" field.
func (u *DailyStatUpsert) SetSessionCount(v int) *DailyStatUpsert {
	u.Set(dailystat.FieldSessionCount, v)
	return u
}

// UpdateSessionCount sets the "session_count" field to the value that was provided on create.
func (u *DailyStatUpsert) UpdateSessionCount() *DailyStatUpsert {
	u.SetExcluded(dailystat.FieldSessionCount)
	return u
}

// AddSessionCount adds v to the "session_count" field.
func (u *DailyStatUpsert) AddSessionCount(v int) *DailyStatUpsert {
	u.Add(dailystat.FieldSessionCount, v)
	return u
}

// SetMessageCount sets the "message_count" field.
func (u *DailyStatUpsert) SetMessageCount(v int) *DailyStatUpsert {
	u.Set(dailystat.FieldMessageCount, v)
	return u
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *DailyStatUpsert) UpdateMessageCount() *DailyStatUpsert {
	u.SetExcluded(dailystat.FieldMessageCount)
	return u
}

// AddMessageCount adds v to the "message_count" field.
func (u *DailyStatUpsert) AddMessageCount(v int) *DailyStatUpsert {
	u.Add(dailystat.FieldMessageCount, v)
	return u
}

// SetTotalResponseTimeMs sets the "total_response_time_ms" field.
func (u *DailyStatUpsert) SetTotalResponseTimeMs(v int64) *DailyStatUpsert {
	u.Set(dailystat.FieldTotalResponseTimeMs, v)
	return u
}

// UpdateTotalResponseTimeMs sets the "total_response_time_ms" field to the value that was provided on create.
func (u *DailyStatUpsert) UpdateTotalResponseTimeMs() *DailyStatUpsert {
	u.SetExcluded(dailystat.FieldTotalResponseTimeMs)
	return u
}

// AddTotalResponseTimeMs adds v to the "total_response_time_ms" field.
func (u *DailyStatUpsert) AddTotalResponseTimeMs(v int64) *DailyStatUpsert {
	u.Add(dailystat.FieldTotalResponseTimeMs, v)
	return u
}

// SetInputTokens sets the "input_tokens" field.
func (u *DailyStatUpsert) SetInputTokens(v int64) *DailyStatUpsert {
	u.Set(dailystat.FieldInputTokens, v)
	return u
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *DailyStatUpsert) UpdateInputTokens() *DailyStatUpsert {
	u.SetExcluded(dailystat.FieldInputTokens)
	return u
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *DailyStatUpsert) AddInputTokens(v int64) *DailyStatUpsert {
	u.Add(dailystat.FieldInputTokens, v)
	return u
}

// SetOutputTokens sets the "output_tokens" field.
func (u *DailyStatUpsert) SetOutputTokens(v int64) *DailyStatUpsert {
	u.Set(dailystat.FieldOutputTokens, v)
	return u
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *DailyStatUpsert) UpdateOutputTokens() *DailyStatUpsert {
	u.SetExcluded(dailystat.FieldOutputTokens)
	return u
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *DailyStatUpsert) AddOutputTokens(v int64) *DailyStatUpsert {
	u.Add(dailystat.FieldOutputTokens, v)
	return u
}

// SetRetrievalCount sets the "retrieval_count" field.
func (u *DailyStatUpsert) SetRetrievalCount(v int64) *DailyStatUpsert {
	u.Set(dailystat.FieldRetrievalCount, v)
	return u
}

// UpdateRetrievalCount sets the "retrieval_count" field to the value that was provided on create.
func (u *DailyStatUpsert) UpdateRetrievalCount() *DailyStatUpsert {
	u.SetExcluded(dailystat.FieldRetrievalCount)
	return u
}

// AddRetrievalCount adds v to the "retrieval_count" field.
func (u *DailyStatUpsert) AddRetrievalCount(v int64) *DailyStatUpsert {
	u.Add(dailystat.FieldRetrievalCount, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DailyStatUpsert) SetUpdatedAt(v time.Time) *DailyStatUpsert {
	u.Set(dailystat.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DailyStatUpsert) UpdateUpdatedAt() *DailyStatUpsert {
	u.SetExcluded(dailystat.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DailyStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dailystat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DailyStatUpsertOne) UpdateNewValues() *DailyStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dailystat.FieldID)
		}
		if _, exists := u.create.mutation.ChatbotID(); exists {
			s.SetIgnore(dailystat.FieldChatbotID)
		}
		if _, exists := u.create.mutation.Date(); exists {
			s.SetIgnore(dailystat.FieldDate)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DailyStat.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DailyStatUpsertOne) Ignore() *DailyStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DailyStatUpsertOne) DoNothing() *DailyStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DailyStatCreate.OnConflict
// documentation for more info.
func (u *DailyStatUpsertOne) Update(set func(*DailyStatUpsert)) *DailyStatUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DailyStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionCount sets the "session_count" field.
func (u *DailyStatUpsertOne) SetSessionCount(v int) *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetSessionCount(v)
	})
}

// AddSessionCount adds v to the "session_count" field.
func (u *DailyStatUpsertOne) AddSessionCount(v int) *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.AddSessionCount(v)
	})
}

// UpdateSessionCount sets the "session_count" field to the value that was provided on create.
func (u *DailyStatUpsertOne) UpdateSessionCount() *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateSessionCount()
	})
}

// SetMessageCount sets the "message_count" field.
func (u *DailyStatUpsertOne) SetMessageCount(v int) *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetMessageCount(v)
	})
}

// AddMessageCount adds v to the "message_count" field.
func (u *DailyStatUpsertOne) AddMessageCount(v int) *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.AddMessageCount(v)
	})
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *DailyStatUpsertOne) UpdateMessageCount() *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateMessageCount()
	})
}

// SetTotalResponseTimeMs sets the "total_response_time_ms" field.
func (u *DailyStatUpsertOne) SetTotalResponseTimeMs(v int64) *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetTotalResponseTimeMs(v)
	})
}

// AddTotalResponseTimeMs adds v to the "total_response_time_ms" field.
func (u *DailyStatUpsertOne) AddTotalResponseTimeMs(v int64) *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.AddTotalResponseTimeMs(v)
	})
}

// UpdateTotalResponseTimeMs sets the "total_response_time_ms" field to the value that was provided on create.
func (u *DailyStatUpsertOne) UpdateTotalResponseTimeMs() *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateTotalResponseTimeMs()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *DailyStatUpsertOne) SetInputTokens(v int64) *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *DailyStatUpsertOne) AddInputTokens(v int64) *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *DailyStatUpsertOne) UpdateInputTokens() *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *DailyStatUpsertOne) SetOutputTokens(v int64) *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *DailyStatUpsertOne) AddOutputTokens(v int64) *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *DailyStatUpsertOne) UpdateOutputTokens() *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetRetrievalCount sets the "retrieval_count" field.
func (u *DailyStatUpsertOne) SetRetrievalCount(v int64) *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetRetrievalCount(v)
	})
}

// AddRetrievalCount adds v to the "retrieval_count" field.
func (u *DailyStatUpsertOne) AddRetrievalCount(v int64) *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.AddRetrievalCount(v)
	})
}

// UpdateRetrievalCount sets the "retrieval_count" field to the value that was provided on create.
func (u *DailyStatUpsertOne) UpdateRetrievalCount() *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateRetrievalCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DailyStatUpsertOne) SetUpdatedAt(v time.Time) *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DailyStatUpsertOne) UpdateUpdatedAt() *DailyStatUpsertOne {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DailyStatUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DailyStatCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DailyStatUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DailyStatUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DailyStatUpsertOne.ID is not supported by MySQL driver. Use DailyStatUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DailyStatUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DailyStatCreateBulk is the builder for creating many DailyStat entities in bulk.
type DailyStatCreateBulk struct {
	config
	err      error
	builders []*DailyStatCreate
	conflict []sql.ConflictOption
}

// Save creates the DailyStat entities in the database.
func (_c *DailyStatCreateBulk) Save(ctx context.Context) ([]*DailyStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DailyStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DailyStatMutation)
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
func (_c *DailyStatCreateBulk) SaveX(ctx context.Context) []*DailyStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DailyStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DailyStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DailyStat.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DailyStatUpsert) {
//			SetChatbotID(v+v).
//		}).
//		Exec(ctx)
func (_c *DailyStatCreateBulk) OnConflict(opts ...sql.ConflictOption) *DailyStatUpsertBulk {
	_c.conflict = opts
	return &DailyStatUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DailyStat.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DailyStatCreateBulk) OnConflictColumns(columns ...string) *DailyStatUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DailyStatUpsertBulk{
		create: _c,
	}
}

// DailyStatUpsertBulk is the builder for "upsert"-ing
// a bulk of DailyStat nodes.
type DailyStatUpsertBulk struct {
	create *DailyStatCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DailyStat.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dailystat.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DailyStatUpsertBulk) UpdateNewValues() *DailyStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dailystat.FieldID)
			}
			if _, exists := b.mutation.ChatbotID(); exists {
				s.SetIgnore(dailystat.FieldChatbotID)
			}
			if _, exists := b.mutation.Date(); exists {
				s.SetIgnore(dailystat.FieldDate)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DailyStat.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DailyStatUpsertBulk) Ignore() *DailyStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DailyStatUpsertBulk) DoNothing() *DailyStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DailyStatCreateBulk.OnConflict
// documentation for more info.
func (u *DailyStatUpsertBulk) Update(set func(*DailyStatUpsert)) *DailyStatUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DailyStatUpsert{UpdateSet: update})
	}))
	return u
}

// SetSessionCount sets the "session_count" field.
func (u *DailyStatUpsertBulk) SetSessionCount(v int) *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetSessionCount(v)
	})
}

// AddSessionCount adds v to the "session_count" field.
func (u *DailyStatUpsertBulk) AddSessionCount(v int) *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.AddSessionCount(v)
	})
}

// UpdateSessionCount sets the "session_count" field to the value that was provided on create.
func (u *DailyStatUpsertBulk) UpdateSessionCount() *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateSessionCount()
	})
}

// SetMessageCount sets the "message_count" field.
func (u *DailyStatUpsertBulk) SetMessageCount(v int) *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetMessageCount(v)
	})
}

// AddMessageCount adds v to the "message_count" field.
func (u *DailyStatUpsertBulk) AddMessageCount(v int) *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.AddMessageCount(v)
	})
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *DailyStatUpsertBulk) UpdateMessageCount() *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateMessageCount()
	})
}

// SetTotalResponseTimeMs sets the "total_response_time_ms" field.
func (u *DailyStatUpsertBulk) SetTotalResponseTimeMs(v int64) *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetTotalResponseTimeMs(v)
	})
}

// AddTotalResponseTimeMs adds v to the "total_response_time_ms" field.
func (u *DailyStatUpsertBulk) AddTotalResponseTimeMs(v int64) *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.AddTotalResponseTimeMs(v)
	})
}

// UpdateTotalResponseTimeMs sets the "total_response_time_ms" field to the value that was provided on create.
func (u *DailyStatUpsertBulk) UpdateTotalResponseTimeMs() *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateTotalResponseTimeMs()
	})
}

// SetInputTokens sets the "input_tokens" field.
func (u *DailyStatUpsertBulk) SetInputTokens(v int64) *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetInputTokens(v)
	})
}

// AddInputTokens adds v to the "input_tokens" field.
func (u *DailyStatUpsertBulk) AddInputTokens(v int64) *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.AddInputTokens(v)
	})
}

// UpdateInputTokens sets the "input_tokens" field to the value that was provided on create.
func (u *DailyStatUpsertBulk) UpdateInputTokens() *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateInputTokens()
	})
}

// SetOutputTokens sets the "output_tokens" field.
func (u *DailyStatUpsertBulk) SetOutputTokens(v int64) *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetOutputTokens(v)
	})
}

// AddOutputTokens adds v to the "output_tokens" field.
func (u *DailyStatUpsertBulk) AddOutputTokens(v int64) *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.AddOutputTokens(v)
	})
}

// UpdateOutputTokens sets the "output_tokens" field to the value that was provided on create.
func (u *DailyStatUpsertBulk) UpdateOutputTokens() *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateOutputTokens()
	})
}

// SetRetrievalCount sets the "retrieval_count" field.
func (u *DailyStatUpsertBulk) SetRetrievalCount(v int64) *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetRetrievalCount(v)
	})
}

// AddRetrievalCount adds v to the "retrieval_count" field.
func (u *DailyStatUpsertBulk) AddRetrievalCount(v int64) *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.AddRetrievalCount(v)
	})
}

// UpdateRetrievalCount sets the "retrieval_count" field to the value that was provided on create.
func (u *DailyStatUpsertBulk) UpdateRetrievalCount() *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateRetrievalCount()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DailyStatUpsertBulk) SetUpdatedAt(v time.Time) *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DailyStatUpsertBulk) UpdateUpdatedAt() *DailyStatUpsertBulk {
	return u.Update(func(s *DailyStatUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DailyStatUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DailyStatCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DailyStatCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DailyStatUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
