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
	"github.com/lorekeep/lorekeep/ent/document"
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetChatbotID sets the "chatbot_id" field.
func (_c *DocumentCreate) SetChatbotID(v string) *DocumentCreate {
	_c.mutation.SetChatbotID(v)
	return _c
}

// SetFilename sets the "filename" field.
func (_c *DocumentCreate) SetFilename(v string) *DocumentCreate {
	_c.mutation.SetFilename(v)
	return _c
}

// SetStoredPath sets the "stored_path" field.
func (_c *DocumentCreate) SetStoredPath(v string) *DocumentCreate {
	_c.mutation.SetStoredPath(v)
	return _c
}

// SetSizeBytes sets the "size_bytes" field.
func (_c *DocumentCreate) SetSizeBytes(v int64) *DocumentCreate {
	_c.mutation.SetSizeBytes(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DocumentCreate) SetStatus(v document.Status) *DocumentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableStatus(v *document.Status) *DocumentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *DocumentCreate) SetVersion(v int) *DocumentCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetPageCount sets the "page_count" field.
func (_c *DocumentCreate) SetPageCount(v int) *DocumentCreate {
	_c.mutation.SetPageCount(v)
	return _c
}

// SetNillablePageCount sets the "page_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePageCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetPageCount(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *DocumentCreate) SetProgress(v int) *DocumentCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableProgress(v *int) *DocumentCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DocumentCreate) SetErrorMessage(v string) *DocumentCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableErrorMessage(v *string) *DocumentCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetChunkCount sets the "chunk_count" field.
func (_c *DocumentCreate) SetChunkCount(v int) *DocumentCreate {
	_c.mutation.SetChunkCount(v)
	return _c
}

// SetNillableChunkCount sets the "chunk_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableChunkCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetChunkCount(*v)
	}
	return _c
}

// SetEntityCount sets the "entity_count" field.
func (_c *DocumentCreate) SetEntityCount(v int) *DocumentCreate {
	_c.mutation.SetEntityCount(v)
	return _c
}

// SetNillableEntityCount sets the "entity_count" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableEntityCount(v *int) *DocumentCreate {
	if v != nil {
		_c.SetEntityCount(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *DocumentCreate) SetAttempts(v int) *DocumentCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableAttempts(v *int) *DocumentCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *DocumentCreate) SetProcessedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableProcessedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *DocumentCreate) SetPodID(v string) *DocumentCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *DocumentCreate) SetNillablePodID(v *string) *DocumentCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *DocumentCreate) SetLastInteractionAt(v time.Time) *DocumentCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableLastInteractionAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentCreate) SetUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DocumentCreate) SetID(v string) *DocumentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetChatbot sets the "chatbot" edge to the Chatbot entity.
func (_c *DocumentCreate) SetChatbot(v *Chatbot) *DocumentCreate {
	return _c.SetChatbotID(v.ID)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := document.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		v := document.DefaultPageCount
		_c.mutation.SetPageCount(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := document.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		v := document.DefaultChunkCount
		_c.mutation.SetChunkCount(v)
	}
	if _, ok := _c.mutation.EntityCount(); !ok {
		v := document.DefaultEntityCount
		_c.mutation.SetEntityCount(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := document.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := document.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.ChatbotID(); !ok {
		return &ValidationError{Name: "chatbot_id", err: errors.New(`ent: missing required field "Document.chatbot_id"`)}
	}
	if _, ok := _c.mutation.Filename(); !ok {
		return &ValidationError{Name: "filename", err: errors.New(`ent: missing required field "Document.filename"`)}
	}
	if v, ok := _c.mutation.Filename(); ok {
		if err := document.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Document.filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StoredPath(); !ok {
		return &ValidationError{Name: "stored_path", err: errors.New(`ent: missing required field "Document.stored_path"`)}
	}
	if v, ok := _c.mutation.StoredPath(); ok {
		if err := document.StoredPathValidator(v); err != nil {
			return &ValidationError{Name: "stored_path", err: fmt.Errorf(`ent: validator failed for field "Document.stored_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SizeBytes(); !ok {
		return &ValidationError{Name: "size_bytes", err: errors.New(`ent: missing required field "Document.size_bytes"`)}
	}
	if v, ok := _c.mutation.SizeBytes(); ok {
		if err := document.SizeBytesValidator(v); err != nil {
			return &ValidationError{Name: "size_bytes", err: fmt.Errorf(`ent: validator failed for field "Document.size_bytes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Document.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := document.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Document.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Document.version"`)}
	}
	if _, ok := _c.mutation.PageCount(); !ok {
		return &ValidationError{Name: "page_count", err: errors.New(`ent: missing required field "Document.page_count"`)}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Document.progress"`)}
	}
	if v, ok := _c.mutation.Progress(); ok {
		if err := document.ProgressValidator(v); err != nil {
			return &ValidationError{Name: "progress", err: fmt.Errorf(`ent: validator failed for field "Document.progress": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChunkCount(); !ok {
		return &ValidationError{Name: "chunk_count", err: errors.New(`ent: missing required field "Document.chunk_count"`)}
	}
	if _, ok := _c.mutation.EntityCount(); !ok {
		return &ValidationError{Name: "entity_count", err: errors.New(`ent: missing required field "Document.entity_count"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "Document.attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Document.updated_at"`)}
	}
	if len(_c.mutation.ChatbotIDs()) == 0 {
		return &ValidationError{Name: "chatbot", err: errors.New(`ent: missing required edge "Document.chatbot"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
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
			return nil, fmt.Errorf("unexpected Document.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Filename(); ok {
		_spec.SetField(document.FieldFilename, field.TypeString, value)
		_node.Filename = value
	}
	if value, ok := _c.mutation.StoredPath(); ok {
		_spec.SetField(document.FieldStoredPath, field.TypeString, value)
		_node.StoredPath = value
	}
	if value, ok := _c.mutation.SizeBytes(); ok {
		_spec.SetField(document.FieldSizeBytes, field.TypeInt64, value)
		_node.SizeBytes = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(document.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(document.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.PageCount(); ok {
		_spec.SetField(document.FieldPageCount, field.TypeInt, value)
		_node.PageCount = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(document.FieldProgress, field.TypeInt, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(document.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ChunkCount(); ok {
		_spec.SetField(document.FieldChunkCount, field.TypeInt, value)
		_node.ChunkCount = value
	}
	if value, ok := _c.mutation.EntityCount(); ok {
		_spec.SetField(document.FieldEntityCount, field.TypeInt, value)
		_node.EntityCount = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(document.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(document.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(document.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(document.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ChatbotIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   document.ChatbotTable,
			Columns: []string{document.ChatbotColumn},
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
//	client.Document.Create().
//		SetChatbotID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetChatbotID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertOne {
	_c.conflict = opts
	return &DocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflictColumns(columns ...string) *DocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertOne{
		create: _c,
	}
}

type (
	// DocumentUpsertOne is the builder for "upsert"-ing
	//  one Document node.
	DocumentUpsertOne struct {
		create *DocumentCreate
	}

	// DocumentUpsert is the "OnConflict" setter.
	DocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetFilename sets the "filename" field.
func (u *DocumentUpsert) SetFilename(v string) *DocumentUpsert {
	u.Set(document.FieldFilename, v)
	return u
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateFilename() *DocumentUpsert {
	u.SetExcluded(document.FieldFilename)
	return u
}

// SetStoredPath sets the "stored_path" field.
func (u *DocumentUpsert) SetStoredPath(v string) *DocumentUpsert {
	u.Set(document.FieldStoredPath, v)
	return u
}

// UpdateStoredPath sets the "stored_path" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateStoredPath() *DocumentUpsert {
	u.SetExcluded(document.FieldStoredPath)
	return u
}

// SetSizeBytes sets the "size_bytes" field.
func (u *DocumentUpsert) SetSizeBytes(v int64) *DocumentUpsert {
	u.Set(document.FieldSizeBytes, v)
	return u
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateSizeBytes() *DocumentUpsert {
	u.SetExcluded(document.FieldSizeBytes)
	return u
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *DocumentUpsert) AddSizeBytes(v int64) *DocumentUpsert {
	u.Add(document.FieldSizeBytes, v)
	return u
}

// SetStatus sets the "status" field.
func (u *DocumentUpsert) SetStatus(v document.Status) *DocumentUpsert {
	u.Set(document.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateStatus() *DocumentUpsert {
	u.SetExcluded(document.FieldStatus)
	return u
}

// SetVersion sets the "version" field.
func (u *DocumentUpsert) SetVersion(v int) *DocumentUpsert {
	u.Set(document.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateVersion() *DocumentUpsert {
	u.SetExcluded(document.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *DocumentUpsert) AddVersion(v int) *DocumentUpsert {
	u.Add(document.FieldVersion, v)
	return u
}

// SetPageCount sets the "page_count" field.
func (u *DocumentUpsert) SetPageCount(v int) *DocumentUpsert {
	u.Set(document.FieldPageCount, v)
	return u
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *DocumentUpsert) UpdatePageCount() *DocumentUpsert {
	u.SetExcluded(document.FieldPageCount)
	return u
}

// AddPageCount adds v to the "page_count" field.
func (u *DocumentUpsert) AddPageCount(v int) *DocumentUpsert {
	u.Add(document.FieldPageCount, v)
	return u
}

// SetProgress sets the "progress" field.
func (u *DocumentUpsert) SetProgress(v int) *DocumentUpsert {
	u.Set(document.FieldProgress, v)
	return u
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateProgress() *DocumentUpsert {
	u.SetExcluded(document.FieldProgress)
	return u
}

// AddProgress adds v to the "progress" field.
func (u *DocumentUpsert) AddProgress(v int) *DocumentUpsert {
	u.Add(document.FieldProgress, v)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *DocumentUpsert) SetErrorMessage(v string) *DocumentUpsert {
	u.Set(document.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateErrorMessage() *DocumentUpsert {
	u.SetExcluded(document.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DocumentUpsert) ClearErrorMessage() *DocumentUpsert {
	u.SetNull(document.FieldErrorMessage)
	return u
}

// SetChunkCount sets the "chunk_count" field.
func (u *DocumentUpsert) SetChunkCount(v int) *DocumentUpsert {
	u.Set(document.FieldChunkCount, v)
	return u
}

// UpdateChunkCount sets the "chunk_count" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateChunkCount() *DocumentUpsert {
	u.SetExcluded(document.FieldChunkCount)
	return u
}

// AddChunkCount adds v to the "chunk_count" field.
func (u *DocumentUpsert) AddChunkCount(v int) *DocumentUpsert {
	u.Add(document.FieldChunkCount, v)
	return u
}

// SetEntityCount sets the "entity_count" field.
func (u *DocumentUpsert) SetEntityCount(v int) *DocumentUpsert {
	u.Set(document.FieldEntityCount, v)
	return u
}

// UpdateEntityCount sets the "entity_count" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateEntityCount() *DocumentUpsert {
	u.SetExcluded(document.FieldEntityCount)
	return u
}

// AddEntityCount adds v to the "entity_count" field.
func (u *DocumentUpsert) AddEntityCount(v int) *DocumentUpsert {
	u.Add(document.FieldEntityCount, v)
	return u
}

// SetAttempts sets the "attempts" field.
func (u *DocumentUpsert) SetAttempts(v int) *DocumentUpsert {
	u.Set(document.FieldAttempts, v)
	return u
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateAttempts() *DocumentUpsert {
	u.SetExcluded(document.FieldAttempts)
	return u
}

// AddAttempts adds v to the "attempts" field.
func (u *DocumentUpsert) AddAttempts(v int) *DocumentUpsert {
	u.Add(document.FieldAttempts, v)
	return u
}

// SetProcessedAt sets the "processed_at" field.
func (u *DocumentUpsert) SetProcessedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldProcessedAt, v)
	return u
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateProcessedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldProcessedAt)
	return u
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *DocumentUpsert) ClearProcessedAt() *DocumentUpsert {
	u.SetNull(document.FieldProcessedAt)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *DocumentUpsert) SetPodID(v string) *DocumentUpsert {
	u.Set(document.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *DocumentUpsert) UpdatePodID() *DocumentUpsert {
	u.SetExcluded(document.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *DocumentUpsert) ClearPodID() *DocumentUpsert {
	u.SetNull(document.FieldPodID)
	return u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *DocumentUpsert) SetLastInteractionAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldLastInteractionAt, v)
	return u
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateLastInteractionAt() *DocumentUpsert {
	u.SetExcluded(document.FieldLastInteractionAt)
	return u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *DocumentUpsert) ClearLastInteractionAt() *DocumentUpsert {
	u.SetNull(document.FieldLastInteractionAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsert) SetUpdatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateUpdatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertOne) UpdateNewValues() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(document.FieldID)
		}
		if _, exists := u.create.mutation.ChatbotID(); exists {
			s.SetIgnore(document.FieldChatbotID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(document.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentUpsertOne) Ignore() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertOne) DoNothing() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreate.OnConflict
// documentation for more info.
func (u *DocumentUpsertOne) Update(set func(*DocumentUpsert)) *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilename sets the "filename" field.
func (u *DocumentUpsertOne) SetFilename(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateFilename() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFilename()
	})
}

// SetStoredPath sets the "stored_path" field.
func (u *DocumentUpsertOne) SetStoredPath(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStoredPath(v)
	})
}

// UpdateStoredPath sets the "stored_path" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateStoredPath() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStoredPath()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *DocumentUpsertOne) SetSizeBytes(v int64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *DocumentUpsertOne) AddSizeBytes(v int64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateSizeBytes() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetStatus sets the "status" field.
func (u *DocumentUpsertOne) SetStatus(v document.Status) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateStatus() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetVersion sets the "version" field.
func (u *DocumentUpsertOne) SetVersion(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *DocumentUpsertOne) AddVersion(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateVersion() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateVersion()
	})
}

// SetPageCount sets the "page_count" field.
func (u *DocumentUpsertOne) SetPageCount(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPageCount(v)
	})
}

// AddPageCount adds v to the "page_count" field.
func (u *DocumentUpsertOne) AddPageCount(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddPageCount(v)
	})
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdatePageCount() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePageCount()
	})
}

// SetProgress sets the "progress" field.
func (u *DocumentUpsertOne) SetProgress(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *DocumentUpsertOne) AddProgress(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateProgress() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateProgress()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DocumentUpsertOne) SetErrorMessage(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateErrorMessage() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DocumentUpsertOne) ClearErrorMessage() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearErrorMessage()
	})
}

// SetChunkCount sets the "chunk_count" field.
func (u *DocumentUpsertOne) SetChunkCount(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetChunkCount(v)
	})
}

// AddChunkCount adds v to the "chunk_count" field.
func (u *DocumentUpsertOne) AddChunkCount(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddChunkCount(v)
	})
}

// UpdateChunkCount sets the "chunk_count" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateChunkCount() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateChunkCount()
	})
}

// SetEntityCount sets the "entity_count" field.
func (u *DocumentUpsertOne) SetEntityCount(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetEntityCount(v)
	})
}

// AddEntityCount adds v to the "entity_count" field.
func (u *DocumentUpsertOne) AddEntityCount(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddEntityCount(v)
	})
}

// UpdateEntityCount sets the "entity_count" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateEntityCount() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateEntityCount()
	})
}

// SetAttempts sets the "attempts" field.
func (u *DocumentUpsertOne) SetAttempts(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *DocumentUpsertOne) AddAttempts(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateAttempts() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateAttempts()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *DocumentUpsertOne) SetProcessedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateProcessedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *DocumentUpsertOne) ClearProcessedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearProcessedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *DocumentUpsertOne) SetPodID(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdatePodID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *DocumentUpsertOne) ClearPodID() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *DocumentUpsertOne) SetLastInteractionAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateLastInteractionAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *DocumentUpsertOne) ClearLastInteractionAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertOne) SetUpdatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateUpdatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DocumentUpsertOne.ID is not supported by MySQL driver. Use DocumentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
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
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetChatbotID(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertBulk {
	_c.conflict = opts
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflictColumns(columns ...string) *DocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// DocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of Document nodes.
type DocumentUpsertBulk struct {
	create *DocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(document.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DocumentUpsertBulk) UpdateNewValues() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(document.FieldID)
			}
			if _, exists := b.mutation.ChatbotID(); exists {
				s.SetIgnore(document.FieldChatbotID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(document.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentUpsertBulk) Ignore() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertBulk) DoNothing() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentUpsertBulk) Update(set func(*DocumentUpsert)) *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetFilename sets the "filename" field.
func (u *DocumentUpsertBulk) SetFilename(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetFilename(v)
	})
}

// UpdateFilename sets the "filename" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateFilename() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateFilename()
	})
}

// SetStoredPath sets the "stored_path" field.
func (u *DocumentUpsertBulk) SetStoredPath(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStoredPath(v)
	})
}

// UpdateStoredPath sets the "stored_path" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateStoredPath() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStoredPath()
	})
}

// SetSizeBytes sets the "size_bytes" field.
func (u *DocumentUpsertBulk) SetSizeBytes(v int64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetSizeBytes(v)
	})
}

// AddSizeBytes adds v to the "size_bytes" field.
func (u *DocumentUpsertBulk) AddSizeBytes(v int64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddSizeBytes(v)
	})
}

// UpdateSizeBytes sets the "size_bytes" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateSizeBytes() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateSizeBytes()
	})
}

// SetStatus sets the "status" field.
func (u *DocumentUpsertBulk) SetStatus(v document.Status) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateStatus() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateStatus()
	})
}

// SetVersion sets the "version" field.
func (u *DocumentUpsertBulk) SetVersion(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *DocumentUpsertBulk) AddVersion(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateVersion() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateVersion()
	})
}

// SetPageCount sets the "page_count" field.
func (u *DocumentUpsertBulk) SetPageCount(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPageCount(v)
	})
}

// AddPageCount adds v to the "page_count" field.
func (u *DocumentUpsertBulk) AddPageCount(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddPageCount(v)
	})
}

// UpdatePageCount sets the "page_count" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdatePageCount() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePageCount()
	})
}

// SetProgress sets the "progress" field.
func (u *DocumentUpsertBulk) SetProgress(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetProgress(v)
	})
}

// AddProgress adds v to the "progress" field.
func (u *DocumentUpsertBulk) AddProgress(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddProgress(v)
	})
}

// UpdateProgress sets the "progress" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateProgress() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateProgress()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *DocumentUpsertBulk) SetErrorMessage(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateErrorMessage() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *DocumentUpsertBulk) ClearErrorMessage() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearErrorMessage()
	})
}

// SetChunkCount sets the "chunk_count" field.
func (u *DocumentUpsertBulk) SetChunkCount(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetChunkCount(v)
	})
}

// AddChunkCount adds v to the "chunk_count" field.
func (u *DocumentUpsertBulk) AddChunkCount(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddChunkCount(v)
	})
}

// UpdateChunkCount sets the "chunk_count" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateChunkCount() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateChunkCount()
	})
}

// SetEntityCount sets the "entity_count" field.
func (u *DocumentUpsertBulk) SetEntityCount(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetEntityCount(v)
	})
}

// AddEntityCount adds v to the "entity_count" field.
func (u *DocumentUpsertBulk) AddEntityCount(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddEntityCount(v)
	})
}

// UpdateEntityCount sets the "entity_count" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateEntityCount() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateEntityCount()
	})
}

// SetAttempts sets the "attempts" field.
func (u *DocumentUpsertBulk) SetAttempts(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetAttempts(v)
	})
}

// AddAttempts adds v to the "attempts" field.
func (u *DocumentUpsertBulk) AddAttempts(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddAttempts(v)
	})
}

// UpdateAttempts sets the "attempts" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateAttempts() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateAttempts()
	})
}

// SetProcessedAt sets the "processed_at" field.
func (u *DocumentUpsertBulk) SetProcessedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetProcessedAt(v)
	})
}

// UpdateProcessedAt sets the "processed_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateProcessedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateProcessedAt()
	})
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (u *DocumentUpsertBulk) ClearProcessedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearProcessedAt()
	})
}

// SetPodID sets the "pod_id" field.
func (u *DocumentUpsertBulk) SetPodID(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdatePodID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *DocumentUpsertBulk) ClearPodID() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearPodID()
	})
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (u *DocumentUpsertBulk) SetLastInteractionAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetLastInteractionAt(v)
	})
}

// UpdateLastInteractionAt sets the "last_interaction_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateLastInteractionAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateLastInteractionAt()
	})
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (u *DocumentUpsertBulk) ClearLastInteractionAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearLastInteractionAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertBulk) SetUpdatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateUpdatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
