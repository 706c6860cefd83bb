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
	"github.com/lorekeep/lorekeep/ent/buildversion"
	"github.com/lorekeep/lorekeep/ent/predicate"
)

// BuildVersionUpdate is the builder for updating BuildVersion entities.
type BuildVersionUpdate struct {
	config
	hooks    []Hook
	mutation *BuildVersionMutation
}

// Where appends a list predicates to the BuildVersionUpdate builder.
func (_u *BuildVersionUpdate) Where(ps ...predicate.BuildVersion) *BuildVersionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *BuildVersionUpdate) SetStatus(v buildversion.Status) *BuildVersionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BuildVersionUpdate) SetNillableStatus(v *buildversion.Status) *BuildVersionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActivatedAt sets the "activated_at" field.
func (_u *BuildVersionUpdate) SetActivatedAt(v time.Time) *BuildVersionUpdate {
	_u.mutation.SetActivatedAt(v)
	return _u
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_u *BuildVersionUpdate) SetNillableActivatedAt(v *time.Time) *BuildVersionUpdate {
	if v != nil {
		_u.SetActivatedAt(*v)
	}
	return _u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (_u *BuildVersionUpdate) ClearActivatedAt() *BuildVersionUpdate {
	_u.mutation.ClearActivatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BuildVersionUpdate) SetUpdatedAt(v time.Time) *BuildVersionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BuildVersionMutation object of the builder.
func (_u *BuildVersionUpdate) Mutation() *BuildVersionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BuildVersionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuildVersionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BuildVersionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuildVersionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BuildVersionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := buildversion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuildVersionUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := buildversion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BuildVersion.status": %w`, err)}
		}
	}
	if _u.mutation.ChatbotCleared() && len(_u.mutation.ChatbotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BuildVersion.chatbot"`)
	}
	return nil
}

func (_u *BuildVersionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(buildversion.Table, buildversion.Columns, sqlgraph.NewFieldSpec(buildversion.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(buildversion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActivatedAt(); ok {
		_spec.SetField(buildversion.FieldActivatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivatedAtCleared() {
		_spec.ClearField(buildversion.FieldActivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(buildversion.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{buildversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BuildVersionUpdateOne is the builder for updating a single BuildVersion entity.
type BuildVersionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BuildVersionMutation
}

// SetStatus sets the "status" field.
func (_u *BuildVersionUpdateOne) SetStatus(v buildversion.Status) *BuildVersionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *BuildVersionUpdateOne) SetNillableStatus(v *buildversion.Status) *BuildVersionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActivatedAt sets the "activated_at" field.
func (_u *BuildVersionUpdateOne) SetActivatedAt(v time.Time) *BuildVersionUpdateOne {
	_u.mutation.SetActivatedAt(v)
	return _u
}

// SetNillableActivatedAt sets the "activated_at" field if the given value is not nil.
func (_u *BuildVersionUpdateOne) SetNillableActivatedAt(v *time.Time) *BuildVersionUpdateOne {
	if v != nil {
		_u.SetActivatedAt(*v)
	}
	return _u
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (_u *BuildVersionUpdateOne) ClearActivatedAt() *BuildVersionUpdateOne {
	_u.mutation.ClearActivatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BuildVersionUpdateOne) SetUpdatedAt(v time.Time) *BuildVersionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BuildVersionMutation object of the builder.
func (_u *BuildVersionUpdateOne) Mutation() *BuildVersionMutation {
	return _u.mutation
}

// Where appends a list predicates to the BuildVersionUpdate builder.
func (_u *BuildVersionUpdateOne) Where(ps ...predicate.BuildVersion) *BuildVersionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BuildVersionUpdateOne) Select(field string, fields ...string) *BuildVersionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BuildVersion entity.
func (_u *BuildVersionUpdateOne) Save(ctx context.Context) (*BuildVersion, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BuildVersionUpdateOne) SaveX(ctx context.Context) *BuildVersion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BuildVersionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BuildVersionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BuildVersionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := buildversion.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BuildVersionUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := buildversion.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "BuildVersion.status": %w`, err)}
		}
	}
	if _u.mutation.ChatbotCleared() && len(_u.mutation.ChatbotIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BuildVersion.chatbot"`)
	}
	return nil
}

func (_u *BuildVersionUpdateOne) sqlSave(ctx context.Context) (_node *BuildVersion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(buildversion.Table, buildversion.Columns, sqlgraph.NewFieldSpec(buildversion.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BuildVersion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, buildversion.FieldID)
		for _, f := range fields {
			if !buildversion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != buildversion.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(buildversion.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActivatedAt(); ok {
		_spec.SetField(buildversion.FieldActivatedAt, field.TypeTime, value)
	}
	if _u.mutation.ActivatedAtCleared() {
		_spec.ClearField(buildversion.FieldActivatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(buildversion.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BuildVersion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{buildversion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
