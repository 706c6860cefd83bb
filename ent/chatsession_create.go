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
	"github.com/lorekeep/lorekeep/ent/chatsession"
	"github.com/lorekeep/lorekeep/ent/message"
)

// ChatSessionCreate is the builder for creating a ChatSession entity.
type ChatSessionCreate struct {
	config
	mutation *ChatSessionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatbotID sets the "chatbot_id" field.
func (_c *ChatSessionCreate) SetChatbotID(v string) *ChatSessionCreate {
	_c.mutation.SetChatbotID(v)
	return _c
}

// SetMessageCount sets the "message_count" field.
func (_c *ChatSessionCreate) SetMessageCount(v int) *ChatSessionCreate {
	_c.mutation.SetMessageCount(v)
	return _c
}

// SetNillableMessageCount sets the "message_count" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableMessageCount(v *int) *ChatSessionCreate {
	if v != nil {
		_c.SetMessageCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatSessionCreate) SetCreatedAt(v time.Time) *ChatSessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatSessionCreate) SetNillableCreatedAt(v *time.Time) *ChatSessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *ChatSessionCreate) SetExpiresAt(v time.Time) *ChatSessionCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ChatSessionCreate) SetID(v string) *ChatSessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChatbot sets the "chatbot" edge to the Chatbot entity.
func (_c *ChatSessionCreate) SetChatbot(v *Chatbot) *ChatSessionCreate {
	return _c.SetChatbotID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *ChatSessionCreate) AddMessageIDs(ids ...string) *ChatSessionCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *ChatSessionCreate) AddMessages(v ...*Message) *ChatSessionCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// Mutation returns the ChatSessionMutation object of the builder.
func (_c *ChatSessionCreate) Mutation() *ChatSessionMutation {
	return _c.mutation
}

// Save creates the ChatSession in the database.
func (_c *ChatSessionCreate) Save(ctx context.Context) (*ChatSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatSessionCreate) SaveX(ctx context.Context) *ChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatSessionCreate) defaults() {
	if _, ok := _c.mutation.MessageCount(); !ok {
		v := chatsession.DefaultMessageCount
		_c.mutation.SetMessageCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatsession.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatSessionCreate) check() error {
	if _, ok := _c.mutation.ChatbotID(); !ok {
		return &ValidationError{Name: "chatbot_id", err: errors.New(`ent: missing required field "ChatSession.chatbot_id"`)}
	}
	if _, ok := _c.mutation.MessageCount(); !ok {
		return &ValidationError{Name: "message_count", err: errors.New(`ent: missing required field "ChatSession.message_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ChatSession.created_at"`)}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "ChatSession.expires_at"`)}
	}
	if len(_c.mutation.ChatbotIDs()) == 0 {
		return &ValidationError{Name: "chatbot", err: errors.New(`ent: missing required edge "ChatSession.chatbot"`)}
	}
	return nil
}

func (_c *ChatSessionCreate) sqlSave(ctx context.Context) (*ChatSession, error) {
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
			return nil, fmt.Errorf("unexpected ChatSession.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatSessionCreate) createSpec() (*ChatSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ChatSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatsession.Table, sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.MessageCount(); ok {
		_spec.SetField(chatsession.FieldMessageCount, field.TypeInt, value)
		_node.MessageCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatsession.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(chatsession.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if nodes := _c.mutation.ChatbotIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   chatsession.ChatbotTable,
			Columns: []string{chatsession.ChatbotColumn},
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
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatsession.MessagesTable,
			Columns: []string{chatsession.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatSession.Create().
//		SetChatbotID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatSessionUpsert) {
//			SetChatbotID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatSessionCreate) OnConflict(opts ...sql.ConflictOption) *ChatSessionUpsertOne {
	_c.conflict = opts
	return &ChatSessionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatSessionCreate) OnConflictColumns(columns ...string) *ChatSessionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatSessionUpsertOne{
		create: _c,
	}
}

type (
	// ChatSessionUpsertOne is the builder for "upsert"-ing
	//  one ChatSession node.
	ChatSessionUpsertOne struct {
		create *ChatSessionCreate
	}

	// ChatSessionUpsert is the "OnConflict" setter.
	ChatSessionUpsert struct {
		*sql.UpdateSet
	}
)

// SetMessageCount sets the "message_count" field.
func (u *ChatSessionUpsert) SetMessageCount(v int) *ChatSessionUpsert {
	u.Set(chatsession.FieldMessageCount, v)
	return u
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *ChatSessionUpsert) UpdateMessageCount() *ChatSessionUpsert {
	u.SetExcluded(chatsession.FieldMessageCount)
	return u
}

// AddMessageCount adds v to the "message_count" field.
func (u *ChatSessionUpsert) AddMessageCount(v int) *ChatSessionUpsert {
	u.Add(chatsession.FieldMessageCount, v)
	return u
}

// SetExpiresAt sets the "expires_at" field.
func (u *ChatSessionUpsert) SetExpiresAt(v time.Time) *ChatSessionUpsert {
	u.Set(chatsession.FieldExpiresAt, v)
	return u
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ChatSessionUpsert) UpdateExpiresAt() *ChatSessionUpsert {
	u.SetExcluded(chatsession.FieldExpiresAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ChatSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatSessionUpsertOne) UpdateNewValues() *ChatSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chatsession.FieldID)
		}
		if _, exists := u.create.mutation.ChatbotID(); exists {
			s.SetIgnore(chatsession.FieldChatbotID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chatsession.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatSession.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChatSessionUpsertOne) Ignore() *ChatSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatSessionUpsertOne) DoNothing() *ChatSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatSessionCreate.OnConflict
// documentation for more info.
func (u *ChatSessionUpsertOne) Update(set func(*ChatSessionUpsert)) *ChatSessionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageCount sets the "message_count" field.
func (u *ChatSessionUpsertOne) SetMessageCount(v int) *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetMessageCount(v)
	})
}

// AddMessageCount adds v to the "message_count" field.
func (u *ChatSessionUpsertOne) AddMessageCount(v int) *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.AddMessageCount(v)
	})
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *ChatSessionUpsertOne) UpdateMessageCount() *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateMessageCount()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ChatSessionUpsertOne) SetExpiresAt(v time.Time) *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ChatSessionUpsertOne) UpdateExpiresAt() *ChatSessionUpsertOne {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *ChatSessionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatSessionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatSessionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChatSessionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChatSessionUpsertOne.ID is not supported by MySQL driver. Use ChatSessionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChatSessionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChatSessionCreateBulk is the builder for creating many ChatSession entities in bulk.
type ChatSessionCreateBulk struct {
	config
	err      error
	builders []*ChatSessionCreate
	conflict []sql.ConflictOption
}

// Save creates the ChatSession entities in the database.
func (_c *ChatSessionCreateBulk) Save(ctx context.Context) ([]*ChatSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChatSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatSessionMutation)
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
func (_c *ChatSessionCreateBulk) SaveX(ctx context.Context) []*ChatSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ChatSession.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatSessionUpsert) {
//			SetChatbotID(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatSessionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChatSessionUpsertBulk {
	_c.conflict = opts
	return &ChatSessionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ChatSession.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatSessionCreateBulk) OnConflictColumns(columns ...string) *ChatSessionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatSessionUpsertBulk{
		create: _c,
	}
}

// ChatSessionUpsertBulk is the builder for "upsert"-ing
// a bulk of ChatSession nodes.
type ChatSessionUpsertBulk struct {
	create *ChatSessionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ChatSession.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatsession.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatSessionUpsertBulk) UpdateNewValues() *ChatSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chatsession.FieldID)
			}
			if _, exists := b.mutation.ChatbotID(); exists {
				s.SetIgnore(chatsession.FieldChatbotID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chatsession.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ChatSession.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChatSessionUpsertBulk) Ignore() *ChatSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatSessionUpsertBulk) DoNothing() *ChatSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatSessionCreateBulk.OnConflict
// documentation for more info.
func (u *ChatSessionUpsertBulk) Update(set func(*ChatSessionUpsert)) *ChatSessionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatSessionUpsert{UpdateSet: update})
	}))
	return u
}

// SetMessageCount sets the "message_count" field.
func (u *ChatSessionUpsertBulk) SetMessageCount(v int) *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetMessageCount(v)
	})
}

// AddMessageCount adds v to the "message_count" field.
func (u *ChatSessionUpsertBulk) AddMessageCount(v int) *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.AddMessageCount(v)
	})
}

// UpdateMessageCount sets the "message_count" field to the value that was provided on create.
func (u *ChatSessionUpsertBulk) UpdateMessageCount() *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateMessageCount()
	})
}

// SetExpiresAt sets the "expires_at" field.
func (u *ChatSessionUpsertBulk) SetExpiresAt(v time.Time) *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.SetExpiresAt(v)
	})
}

// UpdateExpiresAt sets the "expires_at" field to the value that was provided on create.
func (u *ChatSessionUpsertBulk) UpdateExpiresAt() *ChatSessionUpsertBulk {
	return u.Update(func(s *ChatSessionUpsert) {
		s.UpdateExpiresAt()
	})
}

// Exec executes the query.
func (u *ChatSessionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChatSessionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatSessionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatSessionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
