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
	"github.com/lorekeep/lorekeep/ent/chatsession"
	"github.com/lorekeep/lorekeep/ent/dailystat"
	"github.com/lorekeep/lorekeep/ent/document"
)

// ChatbotCreate is the builder for creating a Chatbot entity.
type ChatbotCreate struct {
	config
	mutation *ChatbotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *ChatbotCreate) SetName(v string) *ChatbotCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *ChatbotCreate) SetDescription(v string) *ChatbotCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ChatbotCreate) SetNillableDescription(v *string) *ChatbotCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetPersona sets the "persona" field.
func (_c *ChatbotCreate) SetPersona(v map[string]interface{}) *ChatbotCreate {
	_c.mutation.SetPersona(v)
	return _c
}

// SetAccessURL sets the "access_url" field.
func (_c *ChatbotCreate) SetAccessURL(v string) *ChatbotCreate {
	_c.mutation.SetAccessURL(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ChatbotCreate) SetStatus(v chatbot.Status) *ChatbotCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ChatbotCreate) SetNillableStatus(v *chatbot.Status) *ChatbotCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetActiveVersion sets the "active_version" field.
func (_c *ChatbotCreate) SetActiveVersion(v int) *ChatbotCreate {
	_c.mutation.SetActiveVersion(v)
	return _c
}

// SetNillableActiveVersion sets the "active_version" field if the given value is not nil.
func (_c *ChatbotCreate) SetNillableActiveVersion(v *int) *ChatbotCreate {
	if v != nil {
		_c.SetActiveVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChatbotCreate) SetCreatedAt(v time.Time) *ChatbotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChatbotCreate) SetNillableCreatedAt(v *time.Time) *ChatbotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ChatbotCreate) SetUpdatedAt(v time.Time) *ChatbotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ChatbotCreate) SetNillableUpdatedAt(v *time.Time) *ChatbotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChatbotCreate) SetID(v string) *ChatbotCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_c *ChatbotCreate) AddDocumentIDs(ids ...string) *ChatbotCreate {
	_c.mutation.AddDocumentIDs(ids...)
	return _c
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_c *ChatbotCreate) AddDocuments(v ...*Document) *ChatbotCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDocumentIDs(ids...)
}

// AddVersionIDs adds the "versions" edge to the BuildVersion entity by IDs.
func (_c *ChatbotCreate) AddVersionIDs(ids ...string) *ChatbotCreate {
	_c.mutation.AddVersionIDs(ids...)
	return _c
}

// AddVersions adds the "versions" edges to the BuildVersion entity.
func (_c *ChatbotCreate) AddVersions(v ...*BuildVersion) *ChatbotCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVersionIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the ChatSession entity by IDs.
func (_c *ChatbotCreate) AddSessionIDs(ids ...string) *ChatbotCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the ChatSession entity.
func (_c *ChatbotCreate) AddSessions(v ...*ChatSession) *ChatbotCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// AddDailyStatIDs adds the "daily_stats" edge to the DailyStat entity by IDs.
func (_c *ChatbotCreate) AddDailyStatIDs(ids ...string) *ChatbotCreate {
	_c.mutation.AddDailyStatIDs(ids...)
	return _c
}

// AddDailyStats adds the "daily_stats" edges to the DailyStat entity.
func (_c *ChatbotCreate) AddDailyStats(v ...*DailyStat) *ChatbotCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDailyStatIDs(ids...)
}

// Mutation returns the ChatbotMutation object of the builder.
func (_c *ChatbotCreate) Mutation() *ChatbotMutation {
	return _c.mutation
}

// Save creates the Chatbot in the database.
func (_c *ChatbotCreate) Save(ctx context.Context) (*Chatbot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChatbotCreate) SaveX(ctx context.Context) *Chatbot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatbotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatbotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChatbotCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := chatbot.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ActiveVersion(); !ok {
		v := chatbot.DefaultActiveVersion
		_c.mutation.SetActiveVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := chatbot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := chatbot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChatbotCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Chatbot.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := chatbot.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Chatbot.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AccessURL(); !ok {
		return &ValidationError{Name: "access_url", err: errors.New(`ent: missing required field "Chatbot.access_url"`)}
	}
	if v, ok := _c.mutation.AccessURL(); ok {
		if err := chatbot.AccessURLValidator(v); err != nil {
			return &ValidationError{Name: "access_url", err: fmt.Errorf(`ent: validator failed for field "Chatbot.access_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Chatbot.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := chatbot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Chatbot.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActiveVersion(); !ok {
		return &ValidationError{Name: "active_version", err: errors.New(`ent: missing required field "Chatbot.active_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Chatbot.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Chatbot.updated_at"`)}
	}
	return nil
}

func (_c *ChatbotCreate) sqlSave(ctx context.Context) (*Chatbot, error) {
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
			return nil, fmt.Errorf("unexpected Chatbot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChatbotCreate) createSpec() (*Chatbot, *sqlgraph.CreateSpec) {
	var (
		_node = &Chatbot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(chatbot.Table, sqlgraph.NewFieldSpec(chatbot.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(chatbot.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(chatbot.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Persona(); ok {
		_spec.SetField(chatbot.FieldPersona, field.TypeJSON, value)
		_node.Persona = value
	}
	if value, ok := _c.mutation.AccessURL(); ok {
		_spec.SetField(chatbot.FieldAccessURL, field.TypeString, value)
		_node.AccessURL = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(chatbot.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ActiveVersion(); ok {
		_spec.SetField(chatbot.FieldActiveVersion, field.TypeInt, value)
		_node.ActiveVersion = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(chatbot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(chatbot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatbot.DocumentsTable,
			Columns: []string{chatbot.DocumentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VersionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatbot.VersionsTable,
			Columns: []string{chatbot.VersionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(buildversion.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatbot.SessionsTable,
			Columns: []string{chatbot.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(chatsession.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DailyStatsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   chatbot.DailyStatsTable,
			Columns: []string{chatbot.DailyStatsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dailystat.FieldID, field.TypeString),
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
//	client.Chatbot.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatbotUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatbotCreate) OnConflict(opts ...sql.ConflictOption) *ChatbotUpsertOne {
	_c.conflict = opts
	return &ChatbotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Chatbot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatbotCreate) OnConflictColumns(columns ...string) *ChatbotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatbotUpsertOne{
		create: _c,
	}
}

type (
	// ChatbotUpsertOne is the builder for "upsert"-ing
	//  one Chatbot node.
	ChatbotUpsertOne struct {
		create *ChatbotCreate
	}

	// ChatbotUpsert is the "OnConflict" setter.
	ChatbotUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ChatbotUpsert) SetName(v string) *ChatbotUpsert {
	u.Set(chatbot.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ChatbotUpsert) UpdateName() *ChatbotUpsert {
	u.SetExcluded(chatbot.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *ChatbotUpsert) SetDescription(v string) *ChatbotUpsert {
	u.Set(chatbot.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ChatbotUpsert) UpdateDescription() *ChatbotUpsert {
	u.SetExcluded(chatbot.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *ChatbotUpsert) ClearDescription() *ChatbotUpsert {
	u.SetNull(chatbot.FieldDescription)
	return u
}

// SetPersona sets the "persona" field.
func (u *ChatbotUpsert) SetPersona(v map[string]interface{}) *ChatbotUpsert {
	u.Set(chatbot.FieldPersona, v)
	return u
}

// UpdatePersona sets the "persona" field to the value that was provided on create.
func (u *ChatbotUpsert) UpdatePersona() *ChatbotUpsert {
	u.SetExcluded(chatbot.FieldPersona)
	return u
}

// ClearPersona clears the value of the "persona" field.
func (u *ChatbotUpsert) ClearPersona() *ChatbotUpsert {
	u.SetNull(chatbot.FieldPersona)
	return u
}

// SetAccessURL sets the "access_url" field.
func (u *ChatbotUpsert) SetAccessURL(v string) *ChatbotUpsert {
	u.Set(chatbot.FieldAccessURL, v)
	return u
}

// UpdateAccessURL sets the "access_url" field to the value that was provided on create.
func (u *ChatbotUpsert) UpdateAccessURL() *ChatbotUpsert {
	u.SetExcluded(chatbot.FieldAccessURL)
	return u
}

// SetStatus sets the "status" field.
func (u *ChatbotUpsert) SetStatus(v chatbot.Status) *ChatbotUpsert {
	u.Set(chatbot.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChatbotUpsert) UpdateStatus() *ChatbotUpsert {
	u.SetExcluded(chatbot.FieldStatus)
	return u
}

// SetActiveVersion sets the "active_version" field.
func (u *ChatbotUpsert) SetActiveVersion(v int) *ChatbotUpsert {
	u.Set(chatbot.FieldActiveVersion, v)
	return u
}

// UpdateActiveVersion sets the "active_version" field to the value that was provided on create.
func (u *ChatbotUpsert) UpdateActiveVersion() *ChatbotUpsert {
	u.SetExcluded(chatbot.FieldActiveVersion)
	return u
}

// AddActiveVersion adds v to the "active_version" field.
func (u *ChatbotUpsert) AddActiveVersion(v int) *ChatbotUpsert {
	u.Add(chatbot.FieldActiveVersion, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatbotUpsert) SetUpdatedAt(v time.Time) *ChatbotUpsert {
	u.Set(chatbot.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatbotUpsert) UpdateUpdatedAt() *ChatbotUpsert {
	u.SetExcluded(chatbot.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Chatbot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatbot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatbotUpsertOne) UpdateNewValues() *ChatbotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(chatbot.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(chatbot.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Chatbot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ChatbotUpsertOne) Ignore() *ChatbotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatbotUpsertOne) DoNothing() *ChatbotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatbotCreate.OnConflict
// documentation for more info.
func (u *ChatbotUpsertOne) Update(set func(*ChatbotUpsert)) *ChatbotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatbotUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ChatbotUpsertOne) SetName(v string) *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ChatbotUpsertOne) UpdateName() *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ChatbotUpsertOne) SetDescription(v string) *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ChatbotUpsertOne) UpdateDescription() *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ChatbotUpsertOne) ClearDescription() *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.ClearDescription()
	})
}

// SetPersona sets the "persona" field.
func (u *ChatbotUpsertOne) SetPersona(v map[string]interface{}) *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetPersona(v)
	})
}

// UpdatePersona sets the "persona" field to the value that was provided on create.
func (u *ChatbotUpsertOne) UpdatePersona() *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdatePersona()
	})
}

// ClearPersona clears the value of the "persona" field.
func (u *ChatbotUpsertOne) ClearPersona() *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.ClearPersona()
	})
}

// SetAccessURL sets the "access_url" field.
func (u *ChatbotUpsertOne) SetAccessURL(v string) *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetAccessURL(v)
	})
}

// UpdateAccessURL sets the "access_url" field to the value that was provided on create.
func (u *ChatbotUpsertOne) UpdateAccessURL() *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdateAccessURL()
	})
}

// SetStatus sets the "status" field.
func (u *ChatbotUpsertOne) SetStatus(v chatbot.Status) *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChatbotUpsertOne) UpdateStatus() *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdateStatus()
	})
}

// SetActiveVersion sets the "active_version" field.
func (u *ChatbotUpsertOne) SetActiveVersion(v int) *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetActiveVersion(v)
	})
}

// AddActiveVersion adds v to the "active_version" field.
func (u *ChatbotUpsertOne) AddActiveVersion(v int) *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.AddActiveVersion(v)
	})
}

// UpdateActiveVersion sets the "active_version" field to the value that was provided on create.
func (u *ChatbotUpsertOne) UpdateActiveVersion() *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdateActiveVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatbotUpsertOne) SetUpdatedAt(v time.Time) *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatbotUpsertOne) UpdateUpdatedAt() *ChatbotUpsertOne {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChatbotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatbotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatbotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ChatbotUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ChatbotUpsertOne.ID is not supported by MySQL driver. Use ChatbotUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ChatbotUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ChatbotCreateBulk is the builder for creating many Chatbot entities in bulk.
type ChatbotCreateBulk struct {
	config
	err      error
	builders []*ChatbotCreate
	conflict []sql.ConflictOption
}

// Save creates the Chatbot entities in the database.
func (_c *ChatbotCreateBulk) Save(ctx context.Context) ([]*Chatbot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Chatbot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChatbotMutation)
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
func (_c *ChatbotCreateBulk) SaveX(ctx context.Context) []*Chatbot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChatbotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChatbotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Chatbot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ChatbotUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ChatbotCreateBulk) OnConflict(opts ...sql.ConflictOption) *ChatbotUpsertBulk {
	_c.conflict = opts
	return &ChatbotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Chatbot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ChatbotCreateBulk) OnConflictColumns(columns ...string) *ChatbotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ChatbotUpsertBulk{
		create: _c,
	}
}

// ChatbotUpsertBulk is the builder for "upsert"-ing
// a bulk of Chatbot nodes.
type ChatbotUpsertBulk struct {
	create *ChatbotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Chatbot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(chatbot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ChatbotUpsertBulk) UpdateNewValues() *ChatbotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(chatbot.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(chatbot.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Chatbot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ChatbotUpsertBulk) Ignore() *ChatbotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ChatbotUpsertBulk) DoNothing() *ChatbotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ChatbotCreateBulk.OnConflict
// documentation for more info.
func (u *ChatbotUpsertBulk) Update(set func(*ChatbotUpsert)) *ChatbotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ChatbotUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ChatbotUpsertBulk) SetName(v string) *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ChatbotUpsertBulk) UpdateName() *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *ChatbotUpsertBulk) SetDescription(v string) *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *ChatbotUpsertBulk) UpdateDescription() *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *ChatbotUpsertBulk) ClearDescription() *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.ClearDescription()
	})
}

// SetPersona sets the "persona" field.
func (u *ChatbotUpsertBulk) SetPersona(v map[string]interface{}) *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetPersona(v)
	})
}

// UpdatePersona sets the "persona" field to the value that was provided on create.
func (u *ChatbotUpsertBulk) UpdatePersona() *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdatePersona()
	})
}

// ClearPersona clears the value of the "persona" field.
func (u *ChatbotUpsertBulk) ClearPersona() *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.ClearPersona()
	})
}

// SetAccessURL sets the "access_url" field.
func (u *ChatbotUpsertBulk) SetAccessURL(v string) *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetAccessURL(v)
	})
}

// UpdateAccessURL sets the "access_url" field to the value that was provided on create.
func (u *ChatbotUpsertBulk) UpdateAccessURL() *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdateAccessURL()
	})
}

// SetStatus sets the "status" field.
func (u *ChatbotUpsertBulk) SetStatus(v chatbot.Status) *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *ChatbotUpsertBulk) UpdateStatus() *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdateStatus()
	})
}

// SetActiveVersion sets the "active_version" field.
func (u *ChatbotUpsertBulk) SetActiveVersion(v int) *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetActiveVersion(v)
	})
}

// AddActiveVersion adds v to the "active_version" field.
func (u *ChatbotUpsertBulk) AddActiveVersion(v int) *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.AddActiveVersion(v)
	})
}

// UpdateActiveVersion sets the "active_version" field to the value that was provided on create.
func (u *ChatbotUpsertBulk) UpdateActiveVersion() *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdateActiveVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ChatbotUpsertBulk) SetUpdatedAt(v time.Time) *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ChatbotUpsertBulk) UpdateUpdatedAt() *ChatbotUpsertBulk {
	return u.Update(func(s *ChatbotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ChatbotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ChatbotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ChatbotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ChatbotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
