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
	"github.com/lorekeep/lorekeep/ent/buildversion"
	"github.com/lorekeep/lorekeep/ent/chatbot"
)

// BuildVersionCreate is the builder for creating a BuildVersion entity.
type BuildVersionCreate struct {
	config
	mutation *BuildVersionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatbotID sets the "chatbot_id" field.
func (_c *BuildVersionCreate) SetChatbotID(v string) *BuildVersionCreate {
	_c.mutation.SetChatbotID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *BuildVersionCreate) SetVersion(v int) *BuildVersionCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *BuildVersionCreate) SetStatus(v buildversion.Status) *BuildVersionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *BuildVersionCreate) SetNillableStatus(v *buildversion.Status) *BuildVersionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetActivatedAt sets the "activated_at" field.
func (_c *BuildVersionCreate) SetActivatedAt(v time.Time) *BuildVersionCreate {
	_c.mutation.SetActivatedAt(v)
	return _c
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_c *BuildVersionCreate) SetNillableActivatedAt(v *time.Time) *BuildVersionCreate {
	if v != nil {
		_c.SetActivatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BuildVersionCreate) SetCreatedAt(v time.Time) *BuildVersionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BuildVersionCreate) SetNillableCreatedAt(v *time.Time) *BuildVersionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BuildVersionCreate) SetUpdatedAt(v time.Time) *BuildVersionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BuildVersionCreate) SetNillableUpdatedAt(v *time.Time) *BuildVersionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BuildVersionCreate) SetID(v string) *BuildVersionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChatbot sets the "chatbot" edge to the Chatbot entity.
func (_c *BuildVersionCreate) SetChatbot(v *Chatbot) *BuildVersionCreate {
	return _c.SetChatbotID(v.ID)
}

// Mutation returns the BuildVersionMutation object of the builder.
func (_c *BuildVersionCreate) Mutation() *BuildVersionMutation {
	return _c.mutation
}

// Save creates the BuildVersion in the database.
func (_c *BuildVersionCreate) Save(ctx context.Context) (*BuildVersion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BuildVersionCreate) SaveX(ctx context.Context) *BuildVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuildVersionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuildVersionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BuildVersionCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := buildversion.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := buildversion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := buildversion.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BuildVersionCreate) check() error {
	if _, ok := _c.mutation.ChatbotID(); !ok {
		return &ValidationError{Name: "chatbot_id", err: errors.New(`ent: missing required field "BuildVersion.chatbot_id"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "BuildVersion.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := buildversion.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "BuildVersion.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "BuildVersion.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := buildversion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BuildVersion.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BuildVersion.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BuildVersion.updated_at"`)}
	}
	if len(_c.mutation.ChatbotIDs()) == 0 {
		return &ValidationError{Name: "chatbot", err: errors.New(`ent: missing required edge "BuildVersion.chatbot"`)}
	}
	return nil
}

func (_c *BuildVersionCreate) sqlSave(ctx context.Context) (*BuildVersion, error) {
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
			return nil, fmt.Errorf("unexpected BuildVersion.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BuildVersionCreate) createSpec() (*BuildVersion, *sqlgraph.CreateSpec) {
	var (
		_node = &BuildVersion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(buildversion.Table, sqlgraph.NewFieldSpec(buildversion.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(buildversion.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(buildversion.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ActivatedAt(); ok {
		_spec.SetField(buildversion.FieldActivatedAt, field.TypeTime, value)
		_node.ActivatedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(buildversion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(buildversion.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ChatbotIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   buildversion.ChatbotTable,
			Columns: []string{buildversion.ChatbotColumn},
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
//	client.BuildVersion.Create().
//		SetChatbotID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuildVersionUpsert) {
//			SetChatbotID(v+v).
//		}).
//		Exec(ctx)
func (_c *BuildVersionCreate) OnConflict(opts ...sql.ConflictOption) *BuildVersionUpsertOne {
	_c.conflict = opts
	return &BuildVersionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BuildVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuildVersionCreate) OnConflictColumns(columns ...string) *BuildVersionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuildVersionUpsertOne{
		create: _c,
	}
}

type (
	// BuildVersionUpsertOne is the builder for "upsert"-ing
	//  one BuildVersion node.
	BuildVersionUpsertOne struct {
		create *BuildVersionCreate
	}

	// BuildVersionUpsert is the "OnConflict" setter.
	BuildVersionUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *BuildVersionUpsert) SetStatus(v buildversion.Status) *BuildVersionUpsert {
	u.Set(buildversion.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BuildVersionUpsert) UpdateStatus() *BuildVersionUpsert {
	u.SetExcluded(buildversion.FieldStatus)
	return u
}

// SetActivatedAt sets the "activated_at" field.
func (u *BuildVersionUpsert) SetActivatedAt(v time.Time) *BuildVersionUpsert {
	u.Set(buildversion.FieldActivatedAt, v)
	return u
}

// UpdateActivatedAt sets the "activated_at" field to the value that was provided on create.
func (u *BuildVersionUpsert) UpdateActivatedAt() *BuildVersionUpsert {
	u.SetExcluded(buildversion.FieldActivatedAt)
	return u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (u *BuildVersionUpsert) ClearActivatedAt() *BuildVersionUpsert {
	u.SetNull(buildversion.FieldActivatedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BuildVersionUpsert) SetUpdatedAt(v time.Time) *BuildVersionUpsert {
	u.Set(buildversion.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BuildVersionUpsert) UpdateUpdatedAt() *BuildVersionUpsert {
	u.SetExcluded(buildversion.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.BuildVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(buildversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuildVersionUpsertOne) UpdateNewValues() *BuildVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(buildversion.FieldID)
		}
		if _, exists := u.create.mutation.ChatbotID(); exists {
			s.SetIgnore(buildversion.FieldChatbotID)
		}
		if _, exists := u.create.mutation.Version(); exists {
			s.SetIgnore(buildversion.FieldVersion)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(buildversion.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BuildVersion.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BuildVersionUpsertOne) Ignore() *BuildVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuildVersionUpsertOne) DoNothing() *BuildVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuildVersionCreate.OnConflict
// documentation for more info.
func (u *BuildVersionUpsertOne) Update(set func(*BuildVersionUpsert)) *BuildVersionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuildVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *BuildVersionUpsertOne) SetStatus(v buildversion.Status) *BuildVersionUpsertOne {
	return u.Update(func(s *BuildVersionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BuildVersionUpsertOne) UpdateStatus() *BuildVersionUpsertOne {
	return u.Update(func(s *BuildVersionUpsert) {
		s.UpdateStatus()
	})
}

// SetActivatedAt sets the "activated_at" field.
func (u *BuildVersionUpsertOne) SetActivatedAt(v time.Time) *BuildVersionUpsertOne {
	return u.Update(func(s *BuildVersionUpsert) {
		s.SetActivatedAt(v)
	})
}

// UpdateActivatedAt sets the "activated_at" field to the value that was provided on create.
func (u *BuildVersionUpsertOne) UpdateActivatedAt() *BuildVersionUpsertOne {
	return u.Update(func(s *BuildVersionUpsert) {
		s.UpdateActivatedAt()
	})
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (u *BuildVersionUpsertOne) ClearActivatedAt() *BuildVersionUpsertOne {
	return u.Update(func(s *BuildVersionUpsert) {
		s.ClearActivatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BuildVersionUpsertOne) SetUpdatedAt(v time.Time) *BuildVersionUpsertOne {
	return u.Update(func(s *BuildVersionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BuildVersionUpsertOne) UpdateUpdatedAt() *BuildVersionUpsertOne {
	return u.Update(func(s *BuildVersionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BuildVersionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuildVersionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuildVersionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BuildVersionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: BuildVersionUpsertOne.ID is not supported by MySQL driver. Use BuildVersionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BuildVersionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BuildVersionCreateBulk is the builder for creating many BuildVersion entities in bulk.
type BuildVersionCreateBulk struct {
	config
	err      error
	builders []*BuildVersionCreate
	conflict []sql.ConflictOption
}

// Save creates the BuildVersion entities in the database.
func (_c *BuildVersionCreateBulk) Save(ctx context.Context) ([]*BuildVersion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BuildVersion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BuildVersionMutation)
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
func (_c *BuildVersionCreateBulk) SaveX(ctx context.Context) []*BuildVersion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BuildVersionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BuildVersionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BuildVersion.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BuildVersionUpsert) {
//			SetChatbotID(v+v).
//		}).
//		Exec(ctx)
func (_c *BuildVersionCreateBulk) OnConflict(opts ...sql.ConflictOption) *BuildVersionUpsertBulk {
	_c.conflict = opts
	return &BuildVersionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BuildVersion.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BuildVersionCreateBulk) OnConflictColumns(columns ...string) *BuildVersionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BuildVersionUpsertBulk{
		create: _c,
	}
}

// BuildVersionUpsertBulk is the builder for "upsert"-ing
// a bulk of BuildVersion nodes.
type BuildVersionUpsertBulk struct {
	create *BuildVersionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BuildVersion.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(buildversion.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *BuildVersionUpsertBulk) UpdateNewValues() *BuildVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(buildversion.FieldID)
			}
			if _, exists := b.mutation.ChatbotID(); exists {
				s.SetIgnore(buildversion.FieldChatbotID)
			}
			if _, exists := b.mutation.Version(); exists {
				s.SetIgnore(buildversion.FieldVersion)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(buildversion.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BuildVersion.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BuildVersionUpsertBulk) Ignore() *BuildVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BuildVersionUpsertBulk) DoNothing() *BuildVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BuildVersionCreateBulk.OnConflict
// documentation for more info.
func (u *BuildVersionUpsertBulk) Update(set func(*BuildVersionUpsert)) *BuildVersionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BuildVersionUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *BuildVersionUpsertBulk) SetStatus(v buildversion.Status) *BuildVersionUpsertBulk {
	return u.Update(func(s *BuildVersionUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *BuildVersionUpsertBulk) UpdateStatus() *BuildVersionUpsertBulk {
	return u.Update(func(s *BuildVersionUpsert) {
		s.UpdateStatus()
	})
}

// SetActivatedAt sets the "activated_at" field.
func (u *BuildVersionUpsertBulk) SetActivatedAt(v time.Time) *BuildVersionUpsertBulk {
	return u.Update(func(s *BuildVersionUpsert) {
		s.SetActivatedAt(v)
	})
}

// UpdateActivatedAt sets the "activated_at" field to the value that was provided on create.
func (u *BuildVersionUpsertBulk) UpdateActivatedAt() *BuildVersionUpsertBulk {
	return u.Update(func(s *BuildVersionUpsert) {
		s.UpdateActivatedAt()
	})
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (u *BuildVersionUpsertBulk) ClearActivatedAt() *BuildVersionUpsertBulk {
	return u.Update(func(s *BuildVersionUpsert) {
		s.ClearActivatedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BuildVersionUpsertBulk) SetUpdatedAt(v time.Time) *BuildVersionUpsertBulk {
	return u.Update(func(s *BuildVersionUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BuildVersionUpsertBulk) UpdateUpdatedAt() *BuildVersionUpsertBulk {
	return u.Update(func(s *BuildVersionUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BuildVersionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BuildVersionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BuildVersionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BuildVersionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
