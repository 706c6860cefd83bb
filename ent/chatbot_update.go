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
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/chatsession"
	"github.com/lorekeep/lorekeep/ent/dailystat"
	"github.com/lorekeep/lorekeep/ent/document"
	"github.com/lorekeep/lorekeep/ent/predicate"
)

// ChatbotUpdate is the builder for updating Chatbot entities.
type ChatbotUpdate struct {
	config
	hooks    []Hook
	mutation *ChatbotMutation
}

// Where appends a list predicates to the ChatbotUpdate builder.
func (_u *ChatbotUpdate) Where(ps ...predicate.Chatbot) *ChatbotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ChatbotUpdate) SetName(v string) *ChatbotUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChatbotUpdate) SetNillableName(v *string) *ChatbotUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChatbotUpdate) SetDescription(v string) *ChatbotUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChatbotUpdate) SetNillableDescription(v *string) *ChatbotUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ChatbotUpdate) ClearDescription() *ChatbotUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetPersona sets the "persona" field.
func (_u *ChatbotUpdate) SetPersona(v map[string]interface{}) *ChatbotUpdate {
	_u.mutation.SetPersona(v)
	return _u
}

// ClearPersona clears the value of the "persona" field.
func (_u *ChatbotUpdate) ClearPersona() *ChatbotUpdate {
	_u.mutation.ClearPersona()
	return _u
}

// SetAccessURL sets the "access_url" field.
func (_u *ChatbotUpdate) SetAccessURL(v string) *ChatbotUpdate {
	_u.mutation.SetAccessURL(v)
	return _u
}

// SetNillableAccessURL sets the "access_url" field if the given value is not nil.
func (_u *ChatbotUpdate) SetNillableAccessURL(v *string) *ChatbotUpdate {
	if v != nil {
		_u.SetAccessURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatbotUpdate) SetStatus(v chatbot.Status) *ChatbotUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatbotUpdate) SetNillableStatus(v *chatbot.Status) *ChatbotUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActiveVersion sets the "active_version" field.
func (_u *ChatbotUpdate) SetActiveVersion(v int) *ChatbotUpdate {
	_u.mutation.ResetActiveVersion()
	_u.mutation.SetActiveVersion(v)
	return _u
}

// SetNillableActiveVersion sets the "active_version" field if the given value is not nil.
func (_u *ChatbotUpdate) SetNillableActiveVersion(v *int) *ChatbotUpdate {
	if v != nil {
		_u.SetActiveVersion(*v)
	}
	return _u
}

// AddActiveVersion adds value to the "active_version" field.
func (_u *ChatbotUpdate) AddActiveVersion(v int) *ChatbotUpdate {
	_u.mutation.AddActiveVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatbotUpdate) SetUpdatedAt(v time.Time) *ChatbotUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ChatbotUpdate) AddDocumentIDs(ids ...string) *ChatbotUpdate {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ChatbotUpdate) AddDocuments(v ...*Document) *ChatbotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddVersionIDs adds the "versions" edge to the BuildVersion entity by IDs.
func (_u *ChatbotUpdate) AddVersionIDs(ids ...string) *ChatbotUpdate {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the BuildVersion entity.
func (_u *ChatbotUpdate) AddVersions(v ...*BuildVersion) *ChatbotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the ChatSession entity by IDs.
func (_u *ChatbotUpdate) AddSessionIDs(ids ...string) *ChatbotUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the ChatSession entity.
func (_u *ChatbotUpdate) AddSessions(v ...*ChatSession) *ChatbotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddDailyStatIDs adds the "daily_stats" edge to the DailyStat entity by IDs.
func (_u *ChatbotUpdate) AddDailyStatIDs(ids ...string) *ChatbotUpdate {
	_u.mutation.AddDailyStatIDs(ids...)
	return _u
}

// AddDailyStats adds the "daily_stats" edges to the DailyStat entity.
func (_u *ChatbotUpdate) AddDailyStats(v ...*DailyStat) *ChatbotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDailyStatIDs(ids...)
}

// Mutation returns the ChatbotMutation object of the builder.
func (_u *ChatbotUpdate) Mutation() *ChatbotMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ChatbotUpdate) ClearDocuments() *ChatbotUpdate {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ChatbotUpdate) RemoveDocumentIDs(ids ...string) *ChatbotUpdate {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ChatbotUpdate) RemoveDocuments(v ...*Document) *ChatbotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearVersions clears all "versions" edges to the BuildVersion entity.
func (_u *ChatbotUpdate) ClearVersions() *ChatbotUpdate {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to BuildVersion entities by IDs.
func (_u *ChatbotUpdate) RemoveVersionIDs(ids ...string) *ChatbotUpdate {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to BuildVersion entities.
func (_u *ChatbotUpdate) RemoveVersions(v ...*BuildVersion) *ChatbotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the ChatSession entity.
func (_u *ChatbotUpdate) ClearSessions() *ChatbotUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to ChatSession entities by IDs.
func (_u *ChatbotUpdate) RemoveSessionIDs(ids ...string) *ChatbotUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to ChatSession entities.
func (_u *ChatbotUpdate) RemoveSessions(v ...*ChatSession) *ChatbotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearDailyStats clears all "daily_stats" edges to the DailyStat entity.
func (_u *ChatbotUpdate) ClearDailyStats() *ChatbotUpdate {
	_u.mutation.ClearDailyStats()
	return _u
}

// RemoveDailyStatIDs removes the "daily_stats" edge to DailyStat entities by IDs.
func (_u *ChatbotUpdate) RemoveDailyStatIDs(ids ...string) *ChatbotUpdate {
	_u.mutation.RemoveDailyStatIDs(ids...)
	return _u
}

// RemoveDailyStats removes "daily_stats" edges to DailyStat entities.
func (_u *ChatbotUpdate) RemoveDailyStats(v ...*DailyStat) *ChatbotUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDailyStatIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChatbotUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatbotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChatbotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatbotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatbotUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatbot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatbotUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := chatbot.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Chatbot.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccessURL(); ok {
		if err := chatbot.AccessURLValidator(v); err != nil {
			return &ValidationError{Name: "access_url", err: fmt.Errorf(`ent: validator failed for field "Chatbot.access_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := chatbot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Chatbot.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatbotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatbot.Table, chatbot.Columns, sqlgraph.NewFieldSpec(chatbot.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(chatbot.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(chatbot.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(chatbot.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(chatbot.FieldPersona, field.TypeJSON, value)
	}
	if _u.mutation.PersonaCleared() {
		_spec.ClearField(chatbot.FieldPersona, field.TypeJSON)
	}
	if value, ok := _u.mutation.AccessURL(); ok {
		_spec.SetField(chatbot.FieldAccessURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatbot.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActiveVersion(); ok {
		_spec.SetField(chatbot.FieldActiveVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveVersion(); ok {
		_spec.AddField(chatbot.FieldActiveVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatbot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DailyStatsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDailyStatsIDs(); len(nodes) > 0 && !_u.mutation.DailyStatsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DailyStatsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatbot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChatbotUpdateOne is the builder for updating a single Chatbot entity.
type ChatbotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChatbotMutation
}

// SetName sets the "name" field.
func (_u *ChatbotUpdateOne) SetName(v string) *ChatbotUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ChatbotUpdateOne) SetNillableName(v *string) *ChatbotUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ChatbotUpdateOne) SetDescription(v string) *ChatbotUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ChatbotUpdateOne) SetNillableDescription(v *string) *ChatbotUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ChatbotUpdateOne) ClearDescription() *ChatbotUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetPersona sets the "persona" field.
func (_u *ChatbotUpdateOne) SetPersona(v map[string]interface{}) *ChatbotUpdateOne {
	_u.mutation.SetPersona(v)
	return _u
}

// ClearPersona clears the value of the "persona" field.
func (_u *ChatbotUpdateOne) ClearPersona() *ChatbotUpdateOne {
	_u.mutation.ClearPersona()
	return _u
}

// SetAccessURL sets the "access_url" field.
func (_u *ChatbotUpdateOne) SetAccessURL(v string) *ChatbotUpdateOne {
	_u.mutation.SetAccessURL(v)
	return _u
}

// SetNillableAccessURL sets the "access_url" field if the given value is not nil.
func (_u *ChatbotUpdateOne) SetNillableAccessURL(v *string) *ChatbotUpdateOne {
	if v != nil {
		_u.SetAccessURL(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ChatbotUpdateOne) SetStatus(v chatbot.Status) *ChatbotUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ChatbotUpdateOne) SetNillableStatus(v *chatbot.Status) *ChatbotUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetActiveVersion sets the "active_version" field.
func (_u *ChatbotUpdateOne) SetActiveVersion(v int) *ChatbotUpdateOne {
	_u.mutation.ResetActiveVersion()
	_u.mutation.SetActiveVersion(v)
	return _u
}

// SetNillableActiveVersion sets the "active_version" field if the given value is not nil.
func (_u *ChatbotUpdateOne) SetNillableActiveVersion(v *int) *ChatbotUpdateOne {
	if v != nil {
		_u.SetActiveVersion(*v)
	}
	return _u
}

// AddActiveVersion adds value to the "active_version" field.
func (_u *ChatbotUpdateOne) AddActiveVersion(v int) *ChatbotUpdateOne {
	_u.mutation.AddActiveVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ChatbotUpdateOne) SetUpdatedAt(v time.Time) *ChatbotUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddDocumentIDs adds the "documents" edge to the Document entity by IDs.
func (_u *ChatbotUpdateOne) AddDocumentIDs(ids ...string) *ChatbotUpdateOne {
	_u.mutation.AddDocumentIDs(ids...)
	return _u
}

// AddDocuments adds the "documents" edges to the Document entity.
func (_u *ChatbotUpdateOne) AddDocuments(v ...*Document) *ChatbotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDocumentIDs(ids...)
}

// AddVersionIDs adds the "versions" edge to the BuildVersion entity by IDs.
func (_u *ChatbotUpdateOne) AddVersionIDs(ids ...string) *ChatbotUpdateOne {
	_u.mutation.AddVersionIDs(ids...)
	return _u
}

// AddVersions adds the "versions" edges to the BuildVersion entity.
func (_u *ChatbotUpdateOne) AddVersions(v ...*BuildVersion) *ChatbotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVersionIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the ChatSession entity by IDs.
func (_u *ChatbotUpdateOne) AddSessionIDs(ids ...string) *ChatbotUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the ChatSession entity.
func (_u *ChatbotUpdateOne) AddSessions(v ...*ChatSession) *ChatbotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// AddDailyStatIDs adds the "daily_stats" edge to the DailyStat entity by IDs.
func (_u *ChatbotUpdateOne) AddDailyStatIDs(ids ...string) *ChatbotUpdateOne {
	_u.mutation.AddDailyStatIDs(ids...)
	return _u
}

// AddDailyStats adds the "daily_stats" edges to the DailyStat entity.
func (_u *ChatbotUpdateOne) AddDailyStats(v ...*DailyStat) *ChatbotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDailyStatIDs(ids...)
}

// Mutation returns the ChatbotMutation object of the builder.
func (_u *ChatbotUpdateOne) Mutation() *ChatbotMutation {
	return _u.mutation
}

// ClearDocuments clears all "documents" edges to the Document entity.
func (_u *ChatbotUpdateOne) ClearDocuments() *ChatbotUpdateOne {
	_u.mutation.ClearDocuments()
	return _u
}

// RemoveDocumentIDs removes the "documents" edge to Document entities by IDs.
func (_u *ChatbotUpdateOne) RemoveDocumentIDs(ids ...string) *ChatbotUpdateOne {
	_u.mutation.RemoveDocumentIDs(ids...)
	return _u
}

// RemoveDocuments removes "documents" edges to Document entities.
func (_u *ChatbotUpdateOne) RemoveDocuments(v ...*Document) *ChatbotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDocumentIDs(ids...)
}

// ClearVersions clears all "versions" edges to the BuildVersion entity.
func (_u *ChatbotUpdateOne) ClearVersions() *ChatbotUpdateOne {
	_u.mutation.ClearVersions()
	return _u
}

// RemoveVersionIDs removes the "versions" edge to BuildVersion entities by IDs.
func (_u *ChatbotUpdateOne) RemoveVersionIDs(ids ...string) *ChatbotUpdateOne {
	_u.mutation.RemoveVersionIDs(ids...)
	return _u
}

// RemoveVersions removes "versions" edges to BuildVersion entities.
func (_u *ChatbotUpdateOne) RemoveVersions(v ...*BuildVersion) *ChatbotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVersionIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the ChatSession entity.
func (_u *ChatbotUpdateOne) ClearSessions() *ChatbotUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to ChatSession entities by IDs.
func (_u *ChatbotUpdateOne) RemoveSessionIDs(ids ...string) *ChatbotUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to ChatSession entities.
func (_u *ChatbotUpdateOne) RemoveSessions(v ...*ChatSession) *ChatbotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// ClearDailyStats clears all "daily_stats" edges to the DailyStat entity.
func (_u *ChatbotUpdateOne) ClearDailyStats() *ChatbotUpdateOne {
	_u.mutation.ClearDailyStats()
	return _u
}

// RemoveDailyStatIDs removes the "daily_stats" edge to DailyStat entities by IDs.
func (_u *ChatbotUpdateOne) RemoveDailyStatIDs(ids ...string) *ChatbotUpdateOne {
	_u.mutation.RemoveDailyStatIDs(ids...)
	return _u
}

// RemoveDailyStats removes "daily_stats" edges to DailyStat entities.
func (_u *ChatbotUpdateOne) RemoveDailyStats(v ...*DailyStat) *ChatbotUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDailyStatIDs(ids...)
}

// Where appends a list predicates to the ChatbotUpdate builder.
func (_u *ChatbotUpdateOne) Where(ps ...predicate.Chatbot) *ChatbotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChatbotUpdateOne) Select(field string, fields ...string) *ChatbotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Chatbot entity.
func (_u *ChatbotUpdateOne) Save(ctx context.Context) (*Chatbot, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChatbotUpdateOne) SaveX(ctx context.Context) *Chatbot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChatbotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChatbotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ChatbotUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := chatbot.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChatbotUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := chatbot.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Chatbot.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AccessURL(); ok {
		if err := chatbot.AccessURLValidator(v); err != nil {
			return &ValidationError{Name: "access_url", err: fmt.Errorf(`ent: validator failed for field "Chatbot.access_url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := chatbot.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Chatbot.status": %w`, err)}
		}
	}
	return nil
}

func (_u *ChatbotUpdateOne) sqlSave(ctx context.Context) (_node *Chatbot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(chatbot.Table, chatbot.Columns, sqlgraph.NewFieldSpec(chatbot.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Chatbot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, chatbot.FieldID)
		for _, f := range fields {
			if !chatbot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != chatbot.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(chatbot.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(chatbot.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(chatbot.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Persona(); ok {
		_spec.SetField(chatbot.FieldPersona, field.TypeJSON, value)
	}
	if _u.mutation.PersonaCleared() {
		_spec.ClearField(chatbot.FieldPersona, field.TypeJSON)
	}
	if value, ok := _u.mutation.AccessURL(); ok {
		_spec.SetField(chatbot.FieldAccessURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(chatbot.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ActiveVersion(); ok {
		_spec.SetField(chatbot.FieldActiveVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedActiveVersion(); ok {
		_spec.AddField(chatbot.FieldActiveVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(chatbot.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDocumentsIDs(); len(nodes) > 0 && !_u.mutation.DocumentsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVersionsIDs(); len(nodes) > 0 && !_u.mutation.VersionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VersionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DailyStatsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDailyStatsIDs(); len(nodes) > 0 && !_u.mutation.DailyStatsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DailyStatsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Chatbot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{chatbot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
