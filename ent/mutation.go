// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/lorekeep/lorekeep/ent/adminuser"
	"github.com/lorekeep/lorekeep/ent/buildversion"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/chatsession"
	"github.com/lorekeep/lorekeep/ent/dailystat"
	"github.com/lorekeep/lorekeep/ent/document"
	"github.com/lorekeep/lorekeep/ent/message"
	"github.com/lorekeep/lorekeep/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdminUser    = "AdminUser"
	TypeBuildVersion = "BuildVersion"
	TypeChatSession  = "ChatSession"
	TypeChatbot      = "Chatbot"
	TypeDailyStat    = "DailyStat"
	TypeDocument     = "Document"
	TypeMessage      = "Message"
)

// AdminUserMutation represents an operation that mutates the AdminUser nodes in the graph.
type AdminUserMutation struct {
	config
	op            Op
	typ           string
	id            *string
	email         *string
	password_hash *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AdminUser, error)
	predicates    []predicate.AdminUser
}

var _ ent.Mutation = (*AdminUserMutation)(nil)

// adminuserOption allows management of the mutation configuration using functional options.
type adminuserOption func(*AdminUserMutation)

// newAdminUserMutation creates new mutation for the AdminUser entity.
func newAdminUserMutation(c config, op Op, opts ...adminuserOption) *AdminUserMutation {
	m := &AdminUserMutation{
		config:        c,
		op:            op,
		typ:           TypeAdminUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdminUserID sets the ID field of the mutation.
func withAdminUserID(id string) adminuserOption {
	return func(m *AdminUserMutation) {
		var (
			err   error
			once  sync.Once
			value *AdminUser
		)
		m.oldValue = func(ctx context.Context) (*AdminUser, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AdminUser.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdminUser sets the old AdminUser of the mutation.
func withAdminUser(node *AdminUser) adminuserOption {
	return func(m *AdminUserMutation) {
		m.oldValue = func(context.Context) (*AdminUser, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdminUserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdminUserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AdminUser entities.
func (m *AdminUserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdminUserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdminUserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AdminUser.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *AdminUserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AdminUserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the AdminUser entity.
// If the AdminUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminUserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *AdminUserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *AdminUserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *AdminUserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the AdminUser entity.
// If the AdminUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminUserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *AdminUserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AdminUserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdminUserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AdminUser entity.
// If the AdminUser object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminUserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdminUserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AdminUserMutation builder.
func (m *AdminUserMutation) Where(ps ...predicate.AdminUser) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdminUserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdminUserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AdminUser, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdminUserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdminUserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AdminUser).
func (m *AdminUserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdminUserMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.email != nil {
		fields = append(fields, adminuser.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, adminuser.FieldPasswordHash)
	}
	if m.created_at != nil {
		fields = append(fields, adminuser.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdminUserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case adminuser.FieldEmail:
		return m.Email()
	case adminuser.FieldPasswordHash:
		return m.PasswordHash()
	case adminuser.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdminUserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case adminuser.FieldEmail:
		return m.OldEmail(ctx)
	case adminuser.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case adminuser.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AdminUser field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminUserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case adminuser.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case adminuser.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case adminuser.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AdminUser field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdminUserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdminUserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminUserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AdminUser numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdminUserMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdminUserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdminUserMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AdminUser nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdminUserMutation) ResetField(name string) error {
	switch name {
	case adminuser.FieldEmail:
		m.ResetEmail()
		return nil
	case adminuser.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case adminuser.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AdminUser field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdminUserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdminUserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdminUserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdminUserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdminUserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdminUserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdminUserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AdminUser unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdminUserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AdminUser edge %s", name)
}

// BuildVersionMutation represents an operation that mutates the BuildVersion nodes in the graph.
type BuildVersionMutation struct {
	config
	op             Op
	typ            string
	id             *string
	version        *int
	addversion     *int
	status         *buildversion.Status
	activated_at   *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	chatbot        *string
	clearedchatbot bool
	done           bool
	oldValue       func(context.Context) (*BuildVersion, error)
	predicates     []predicate.BuildVersion
}

var _ ent.Mutation = (*BuildVersionMutation)(nil)

// buildversionOption allows management of the mutation configuration using functional options.
type buildversionOption func(*BuildVersionMutation)

// newBuildVersionMutation creates new mutation for the BuildVersion entity.
func newBuildVersionMutation(c config, op Op, opts ...buildversionOption) *BuildVersionMutation {
	m := &BuildVersionMutation{
		config:        c,
		op:            op,
		typ:           TypeBuildVersion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBuildVersionID sets the ID field of the mutation.
func withBuildVersionID(id string) buildversionOption {
	return func(m *BuildVersionMutation) {
		var (
			err   error
			once  sync.Once
			value *BuildVersion
		)
		m.oldValue = func(ctx context.Context) (*BuildVersion, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BuildVersion.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBuildVersion sets the old BuildVersion of the mutation.
func withBuildVersion(node *BuildVersion) buildversionOption {
	return func(m *BuildVersionMutation) {
		m.oldValue = func(context.Context) (*BuildVersion, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BuildVersionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BuildVersionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BuildVersion entities.
func (m *BuildVersionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BuildVersionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BuildVersionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BuildVersion.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatbotID sets the "chatbot_id" field.
func (m *BuildVersionMutation) SetChatbotID(s string) {
	m.chatbot = &s
}

// ChatbotID returns the value of the "chatbot_id" field in the mutation.
func (m *BuildVersionMutation) ChatbotID() (r string, exists bool) {
	v := m.chatbot
	if v == nil {
		return
	}
	return *v, true
}

// OldChatbotID returns the old "chatbot_id" field's value of the BuildVersion entity.
// If the BuildVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildVersionMutation) OldChatbotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatbotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatbotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatbotID: %w", err)
	}
	return oldValue.ChatbotID, nil
}

// ResetChatbotID resets all changes to the "chatbot_id" field.
func (m *BuildVersionMutation) ResetChatbotID() {
	m.chatbot = nil
}

// SetVersion sets the "version" field.
func (m *BuildVersionMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *BuildVersionMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the BuildVersion entity.
// If the BuildVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildVersionMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *BuildVersionMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *BuildVersionMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *BuildVersionMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetStatus sets the "status" field.
func (m *BuildVersionMutation) SetStatus(b buildversion.Status) {
	m.status = &b
}

// Status returns the value of the "status" field in the mutation.
func (m *BuildVersionMutation) Status() (r buildversion.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the BuildVersion entity.
// If the BuildVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildVersionMutation) OldStatus(ctx context.Context) (v buildversion.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *BuildVersionMutation) ResetStatus() {
	m.status = nil
}

// SetActivatedAt sets the "activated_at" field.
func (m *BuildVersionMutation) SetActivatedAt(t time.Time) {
	m.activated_at = &t
}

// ActivatedAt returns the value of the "activated_at" field in the mutation.
func (m *BuildVersionMutation) ActivatedAt() (r time.Time, exists bool) {
	v := m.activated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldActivatedAt returns the old "activated_at" field's value of the BuildVersion entity.
// If the BuildVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildVersionMutation) OldActivatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivatedAt: %w", err)
	}
	return oldValue.ActivatedAt, nil
}

// ClearActivatedAt clears the value of the "activated_at" field.
func (m *BuildVersionMutation) ClearActivatedAt() {
	m.activated_at = nil
	m.clearedFields[buildversion.FieldActivatedAt] = struct{}{}
}

// ActivatedAtCleared returns if the "activated_at" field was cleared in this mutation.
func (m *BuildVersionMutation) ActivatedAtCleared() bool {
	_, ok := m.clearedFields[buildversion.FieldActivatedAt]
	return ok
}

// ResetActivatedAt resets all changes to the "activated_at" field.
func (m *BuildVersionMutation) ResetActivatedAt() {
	m.activated_at = nil
	delete(m.clearedFields, buildversion.FieldActivatedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *BuildVersionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BuildVersionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BuildVersion entity.
// If the BuildVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildVersionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BuildVersionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BuildVersionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BuildVersionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BuildVersion entity.
// If the BuildVersion object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BuildVersionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BuildVersionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearChatbot clears the "chatbot" edge to the Chatbot entity.
func (m *BuildVersionMutation) ClearChatbot() {
	m.clearedchatbot = true
	m.clearedFields[buildversion.FieldChatbotID] = struct{}{}
}

// ChatbotCleared reports if the "chatbot" edge to the Chatbot entity was cleared.
func (m *BuildVersionMutation) ChatbotCleared() bool {
	return m.clearedchatbot
}

// ChatbotIDs returns the "chatbot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatbotID instead. It exists only for internal usage by the builders.
func (m *BuildVersionMutation) ChatbotIDs() (ids []string) {
	if id := m.chatbot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChatbot resets all changes to the "chatbot" edge.
func (m *BuildVersionMutation) ResetChatbot() {
	m.chatbot = nil
	m.clearedchatbot = false
}

// Where appends a list predicates to the BuildVersionMutation builder.
func (m *BuildVersionMutation) Where(ps ...predicate.BuildVersion) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BuildVersionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BuildVersionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BuildVersion, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BuildVersionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BuildVersionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BuildVersion).
func (m *BuildVersionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BuildVersionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.chatbot != nil {
		fields = append(fields, buildversion.FieldChatbotID)
	}
	if m.version != nil {
		fields = append(fields, buildversion.FieldVersion)
	}
	if m.status != nil {
		fields = append(fields, buildversion.FieldStatus)
	}
	if m.activated_at != nil {
		fields = append(fields, buildversion.FieldActivatedAt)
	}
	if m.created_at != nil {
		fields = append(fields, buildversion.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, buildversion.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BuildVersionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case buildversion.FieldChatbotID:
		return m.ChatbotID()
	case buildversion.FieldVersion:
		return m.Version()
	case buildversion.FieldStatus:
		return m.Status()
	case buildversion.FieldActivatedAt:
		return m.ActivatedAt()
	case buildversion.FieldCreatedAt:
		return m.CreatedAt()
	case buildversion.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BuildVersionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case buildversion.FieldChatbotID:
		return m.OldChatbotID(ctx)
	case buildversion.FieldVersion:
		return m.OldVersion(ctx)
	case buildversion.FieldStatus:
		return m.OldStatus(ctx)
	case buildversion.FieldActivatedAt:
		return m.OldActivatedAt(ctx)
	case buildversion.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case buildversion.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BuildVersion field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildVersionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case buildversion.FieldChatbotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatbotID(v)
		return nil
	case buildversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case buildversion.FieldStatus:
		v, ok := value.(buildversion.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case buildversion.FieldActivatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivatedAt(v)
		return nil
	case buildversion.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case buildversion.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BuildVersion field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BuildVersionMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, buildversion.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BuildVersionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case buildversion.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BuildVersionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case buildversion.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown BuildVersion numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BuildVersionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(buildversion.FieldActivatedAt) {
		fields = append(fields, buildversion.FieldActivatedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BuildVersionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BuildVersionMutation) ClearField(name string) error {
	switch name {
	case buildversion.FieldActivatedAt:
		m.ClearActivatedAt()
		return nil
	}
	return fmt.Errorf("unknown BuildVersion nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BuildVersionMutation) ResetField(name string) error {
	switch name {
	case buildversion.FieldChatbotID:
		m.ResetChatbotID()
		return nil
	case buildversion.FieldVersion:
		m.ResetVersion()
		return nil
	case buildversion.FieldStatus:
		m.ResetStatus()
		return nil
	case buildversion.FieldActivatedAt:
		m.ResetActivatedAt()
		return nil
	case buildversion.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case buildversion.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BuildVersion field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BuildVersionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chatbot != nil {
		edges = append(edges, buildversion.EdgeChatbot)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BuildVersionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case buildversion.EdgeChatbot:
		if id := m.chatbot; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BuildVersionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BuildVersionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BuildVersionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchatbot {
		edges = append(edges, buildversion.EdgeChatbot)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BuildVersionMutation) EdgeCleared(name string) bool {
	switch name {
	case buildversion.EdgeChatbot:
		return m.clearedchatbot
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BuildVersionMutation) ClearEdge(name string) error {
	switch name {
	case buildversion.EdgeChatbot:
		m.ClearChatbot()
		return nil
	}
	return fmt.Errorf("unknown BuildVersion unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BuildVersionMutation) ResetEdge(name string) error {
	switch name {
	case buildversion.EdgeChatbot:
		m.ResetChatbot()
		return nil
	}
	return fmt.Errorf("unknown BuildVersion edge %s", name)
}

// ChatSessionMutation represents an operation that mutates the ChatSession nodes in the graph.
type ChatSessionMutation struct {
	config
	op               Op
	typ              string
	id               *string
	message_count    *int
	addmessage_count *int
	created_at       *time.Time
	expires_at       *time.Time
	clearedFields    map[string]struct{}
	chatbot          *string
	clearedchatbot   bool
	messages         map[string]struct{}
	removedmessages  map[string]struct{}
	clearedmessages  bool
	done             bool
	oldValue         func(context.Context) (*ChatSession, error)
	predicates       []predicate.ChatSession
}

var _ ent.Mutation = (*ChatSessionMutation)(nil)

// chatsessionOption allows management of the mutation configuration using functional options.
type chatsessionOption func(*ChatSessionMutation)

// newChatSessionMutation creates new mutation for the ChatSession entity.
func newChatSessionMutation(c config, op Op, opts ...chatsessionOption) *ChatSessionMutation {
	m := &ChatSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeChatSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatSessionID sets the ID field of the mutation.
func withChatSessionID(id string) chatsessionOption {
	return func(m *ChatSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ChatSession
		)
		m.oldValue = func(ctx context.Context) (*ChatSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChatSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatSession sets the old ChatSession of the mutation.
func withChatSession(node *ChatSession) chatsessionOption {
	return func(m *ChatSessionMutation) {
		m.oldValue = func(context.Context) (*ChatSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ChatSession entities.
func (m *ChatSessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatSessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatSessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChatSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatbotID sets the "chatbot_id" field.
func (m *ChatSessionMutation) SetChatbotID(s string) {
	m.chatbot = &s
}

// ChatbotID returns the value of the "chatbot_id" field in the mutation.
func (m *ChatSessionMutation) ChatbotID() (r string, exists bool) {
	v := m.chatbot
	if v == nil {
		return
	}
	return *v, true
}

// OldChatbotID returns the old "chatbot_id" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldChatbotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatbotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatbotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatbotID: %w", err)
	}
	return oldValue.ChatbotID, nil
}

// ResetChatbotID resets all changes to the "chatbot_id" field.
func (m *ChatSessionMutation) ResetChatbotID() {
	m.chatbot = nil
}

// SetMessageCount sets the "message_count" field.
func (m *ChatSessionMutation) SetMessageCount(i int) {
	m.message_count = &i
	m.addmessage_count = nil
}

// MessageCount returns the value of the "message_count" field in the mutation.
func (m *ChatSessionMutation) MessageCount() (r int, exists bool) {
	v := m.message_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageCount returns the old "message_count" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldMessageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageCount: %w", err)
	}
	return oldValue.MessageCount, nil
}

// AddMessageCount adds i to the "message_count" field.
func (m *ChatSessionMutation) AddMessageCount(i int) {
	if m.addmessage_count != nil {
		*m.addmessage_count += i
	} else {
		m.addmessage_count = &i
	}
}

// AddedMessageCount returns the value that was added to the "message_count" field in this mutation.
func (m *ChatSessionMutation) AddedMessageCount() (r int, exists bool) {
	v := m.addmessage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageCount resets all changes to the "message_count" field.
func (m *ChatSessionMutation) ResetMessageCount() {
	m.message_count = nil
	m.addmessage_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ChatSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ChatSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ChatSession entity.
// If the ChatSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ChatSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// ClearChatbot clears the "chatbot" edge to the Chatbot entity.
func (m *ChatSessionMutation) ClearChatbot() {
	m.clearedchatbot = true
	m.clearedFields[chatsession.FieldChatbotID] = struct{}{}
}

// ChatbotCleared reports if the "chatbot" edge to the Chatbot entity was cleared.
func (m *ChatSessionMutation) ChatbotCleared() bool {
	return m.clearedchatbot
}

// ChatbotIDs returns the "chatbot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatbotID instead. It exists only for internal usage by the builders.
func (m *ChatSessionMutation) ChatbotIDs() (ids []string) {
	if id := m.chatbot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChatbot resets all changes to the "chatbot" edge.
func (m *ChatSessionMutation) ResetChatbot() {
	m.chatbot = nil
	m.clearedchatbot = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ChatSessionMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ChatSessionMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ChatSessionMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ChatSessionMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ChatSessionMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ChatSessionMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ChatSessionMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// Where appends a list predicates to the ChatSessionMutation builder.
func (m *ChatSessionMutation) Where(ps ...predicate.ChatSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChatSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChatSession).
func (m *ChatSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatSessionMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.chatbot != nil {
		fields = append(fields, chatsession.FieldChatbotID)
	}
	if m.message_count != nil {
		fields = append(fields, chatsession.FieldMessageCount)
	}
	if m.created_at != nil {
		fields = append(fields, chatsession.FieldCreatedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, chatsession.FieldExpiresAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatsession.FieldChatbotID:
		return m.ChatbotID()
	case chatsession.FieldMessageCount:
		return m.MessageCount()
	case chatsession.FieldCreatedAt:
		return m.CreatedAt()
	case chatsession.FieldExpiresAt:
		return m.ExpiresAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatsession.FieldChatbotID:
		return m.OldChatbotID(ctx)
	case chatsession.FieldMessageCount:
		return m.OldMessageCount(ctx)
	case chatsession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatsession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	}
	return nil, fmt.Errorf("unknown ChatSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatsession.FieldChatbotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatbotID(v)
		return nil
	case chatsession.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageCount(v)
		return nil
	case chatsession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatsession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatSessionMutation) AddedFields() []string {
	var fields []string
	if m.addmessage_count != nil {
		fields = append(fields, chatsession.FieldMessageCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatsession.FieldMessageCount:
		return m.AddedMessageCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatsession.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageCount(v)
		return nil
	}
	return fmt.Errorf("unknown ChatSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatSessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatSessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChatSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatSessionMutation) ResetField(name string) error {
	switch name {
	case chatsession.FieldChatbotID:
		m.ResetChatbotID()
		return nil
	case chatsession.FieldMessageCount:
		m.ResetMessageCount()
		return nil
	case chatsession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatsession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	}
	return fmt.Errorf("unknown ChatSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.chatbot != nil {
		edges = append(edges, chatsession.EdgeChatbot)
	}
	if m.messages != nil {
		edges = append(edges, chatsession.EdgeMessages)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatsession.EdgeChatbot:
		if id := m.chatbot; id != nil {
			return []ent.Value{*id}
		}
	case chatsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedmessages != nil {
		edges = append(edges, chatsession.EdgeMessages)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatSessionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chatsession.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedchatbot {
		edges = append(edges, chatsession.EdgeChatbot)
	}
	if m.clearedmessages {
		edges = append(edges, chatsession.EdgeMessages)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case chatsession.EdgeChatbot:
		return m.clearedchatbot
	case chatsession.EdgeMessages:
		return m.clearedmessages
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatSessionMutation) ClearEdge(name string) error {
	switch name {
	case chatsession.EdgeChatbot:
		m.ClearChatbot()
		return nil
	}
	return fmt.Errorf("unknown ChatSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatSessionMutation) ResetEdge(name string) error {
	switch name {
	case chatsession.EdgeChatbot:
		m.ResetChatbot()
		return nil
	case chatsession.EdgeMessages:
		m.ResetMessages()
		return nil
	}
	return fmt.Errorf("unknown ChatSession edge %s", name)
}

// ChatbotMutation represents an operation that mutates the Chatbot nodes in the graph.
type ChatbotMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	description        *string
	persona            *map[string]interface{}
	access_url         *string
	status             *chatbot.Status
	active_version     *int
	addactive_version  *int
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	documents          map[string]struct{}
	removeddocuments   map[string]struct{}
	cleareddocuments   bool
	versions           map[string]struct{}
	removedversions    map[string]struct{}
	clearedversions    bool
	sessions           map[string]struct{}
	removedsessions    map[string]struct{}
	clearedsessions    bool
	daily_stats        map[string]struct{}
	removeddaily_stats map[string]struct{}
	cleareddaily_stats bool
	done               bool
	oldValue           func(context.Context) (*Chatbot, error)
	predicates         []predicate.Chatbot
}

var _ ent.Mutation = (*ChatbotMutation)(nil)

// chatbotOption allows management of the mutation configuration using functional options.
type chatbotOption func(*ChatbotMutation)

// newChatbotMutation creates new mutation for the Chatbot entity.
func newChatbotMutation(c config, op Op, opts ...chatbotOption) *ChatbotMutation {
	m := &ChatbotMutation{
		config:        c,
		op:            op,
		typ:           TypeChatbot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChatbotID sets the ID field of the mutation.
func withChatbotID(id string) chatbotOption {
	return func(m *ChatbotMutation) {
		var (
			err   error
			once  sync.Once
			value *Chatbot
		)
		m.oldValue = func(ctx context.Context) (*Chatbot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Chatbot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChatbot sets the old Chatbot of the mutation.
func withChatbot(node *Chatbot) chatbotOption {
	return func(m *ChatbotMutation) {
		m.oldValue = func(context.Context) (*Chatbot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChatbotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChatbotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Chatbot entities.
func (m *ChatbotMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChatbotMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChatbotMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Chatbot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ChatbotMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ChatbotMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Chatbot entity.
// If the Chatbot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ChatbotMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *ChatbotMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ChatbotMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Chatbot entity.
// If the Chatbot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ChatbotMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[chatbot.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ChatbotMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[chatbot.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ChatbotMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, chatbot.FieldDescription)
}

// SetPersona sets the "persona" field.
func (m *ChatbotMutation) SetPersona(value map[string]interface{}) {
	m.persona = &value
}

// Persona returns the value of the "persona" field in the mutation.
func (m *ChatbotMutation) Persona() (r map[string]interface{}, exists bool) {
	v := m.persona
	if v == nil {
		return
	}
	return *v, true
}

// OldPersona returns the old "persona" field's value of the Chatbot entity.
// If the Chatbot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotMutation) OldPersona(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersona is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersona requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersona: %w", err)
	}
	return oldValue.Persona, nil
}

// ClearPersona clears the value of the "persona" field.
func (m *ChatbotMutation) ClearPersona() {
	m.persona = nil
	m.clearedFields[chatbot.FieldPersona] = struct{}{}
}

// PersonaCleared returns if the "persona" field was cleared in this mutation.
func (m *ChatbotMutation) PersonaCleared() bool {
	_, ok := m.clearedFields[chatbot.FieldPersona]
	return ok
}

// ResetPersona resets all changes to the "persona" field.
func (m *ChatbotMutation) ResetPersona() {
	m.persona = nil
	delete(m.clearedFields, chatbot.FieldPersona)
}

// SetAccessURL sets the "access_url" field.
func (m *ChatbotMutation) SetAccessURL(s string) {
	m.access_url = &s
}

// AccessURL returns the value of the "access_url" field in the mutation.
func (m *ChatbotMutation) AccessURL() (r string, exists bool) {
	v := m.access_url
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessURL returns the old "access_url" field's value of the Chatbot entity.
// If the Chatbot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotMutation) OldAccessURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessURL: %w", err)
	}
	return oldValue.AccessURL, nil
}

// ResetAccessURL resets all changes to the "access_url" field.
func (m *ChatbotMutation) ResetAccessURL() {
	m.access_url = nil
}

// SetStatus sets the "status" field.
func (m *ChatbotMutation) SetStatus(c chatbot.Status) {
	m.status = &c
}

// Status returns the value of the "status" field in the mutation.
func (m *ChatbotMutation) Status() (r chatbot.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Chatbot entity.
// If the Chatbot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotMutation) OldStatus(ctx context.Context) (v chatbot.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ChatbotMutation) ResetStatus() {
	m.status = nil
}

// SetActiveVersion sets the "active_version" field.
func (m *ChatbotMutation) SetActiveVersion(i int) {
	m.active_version = &i
	m.addactive_version = nil
}

// ActiveVersion returns the value of the "active_version" field in the mutation.
func (m *ChatbotMutation) ActiveVersion() (r int, exists bool) {
	v := m.active_version
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveVersion returns the old "active_version" field's value of the Chatbot entity.
// If the Chatbot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotMutation) OldActiveVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveVersion: %w", err)
	}
	return oldValue.ActiveVersion, nil
}

// AddActiveVersion adds i to the "active_version" field.
func (m *ChatbotMutation) AddActiveVersion(i int) {
	if m.addactive_version != nil {
		*m.addactive_version += i
	} else {
		m.addactive_version = &i
	}
}

// AddedActiveVersion returns the value that was added to the "active_version" field in this mutation.
func (m *ChatbotMutation) AddedActiveVersion() (r int, exists bool) {
	v := m.addactive_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetActiveVersion resets all changes to the "active_version" field.
func (m *ChatbotMutation) ResetActiveVersion() {
	m.active_version = nil
	m.addactive_version = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ChatbotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChatbotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Chatbot entity.
// If the Chatbot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChatbotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChatbotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChatbotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Chatbot entity.
// If the Chatbot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChatbotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChatbotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddDocumentIDs adds the "documents" edge to the Document entity by ids.
func (m *ChatbotMutation) AddDocumentIDs(ids ...string) {
	if m.documents == nil {
		m.documents = make(map[string]struct{})
	}
	for i := range ids {
		m.documents[ids[i]] = struct{}{}
	}
}

// ClearDocuments clears the "documents" edge to the Document entity.
func (m *ChatbotMutation) ClearDocuments() {
	m.cleareddocuments = true
}

// DocumentsCleared reports if the "documents" edge to the Document entity was cleared.
func (m *ChatbotMutation) DocumentsCleared() bool {
	return m.cleareddocuments
}

// RemoveDocumentIDs removes the "documents" edge to the Document entity by IDs.
func (m *ChatbotMutation) RemoveDocumentIDs(ids ...string) {
	if m.removeddocuments == nil {
		m.removeddocuments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.documents, ids[i])
		m.removeddocuments[ids[i]] = struct{}{}
	}
}

// RemovedDocuments returns the removed IDs of the "documents" edge to the Document entity.
func (m *ChatbotMutation) RemovedDocumentsIDs() (ids []string) {
	for id := range m.removeddocuments {
		ids = append(ids, id)
	}
	return
}

// DocumentsIDs returns the "documents" edge IDs in the mutation.
func (m *ChatbotMutation) DocumentsIDs() (ids []string) {
	for id := range m.documents {
		ids = append(ids, id)
	}
	return
}

// ResetDocuments resets all changes to the "documents" edge.
func (m *ChatbotMutation) ResetDocuments() {
	m.documents = nil
	m.cleareddocuments = false
	m.removeddocuments = nil
}

// AddVersionIDs adds the "versions" edge to the BuildVersion entity by ids.
func (m *ChatbotMutation) AddVersionIDs(ids ...string) {
	if m.versions == nil {
		m.versions = make(map[string]struct{})
	}
	for i := range ids {
		m.versions[ids[i]] = struct{}{}
	}
}

// ClearVersions clears the "versions" edge to the BuildVersion entity.
func (m *ChatbotMutation) ClearVersions() {
	m.clearedversions = true
}

// VersionsCleared reports if the "versions" edge to the BuildVersion entity was cleared.
func (m *ChatbotMutation) VersionsCleared() bool {
	return m.clearedversions
}

// RemoveVersionIDs removes the "versions" edge to the BuildVersion entity by IDs.
func (m *ChatbotMutation) RemoveVersionIDs(ids ...string) {
	if m.removedversions == nil {
		m.removedversions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.versions, ids[i])
		m.removedversions[ids[i]] = struct{}{}
	}
}

// RemovedVersions returns the removed IDs of the "versions" edge to the BuildVersion entity.
func (m *ChatbotMutation) RemovedVersionsIDs() (ids []string) {
	for id := range m.removedversions {
		ids = append(ids, id)
	}
	return
}

// VersionsIDs returns the "versions" edge IDs in the mutation.
func (m *ChatbotMutation) VersionsIDs() (ids []string) {
	for id := range m.versions {
		ids = append(ids, id)
	}
	return
}

// ResetVersions resets all changes to the "versions" edge.
func (m *ChatbotMutation) ResetVersions() {
	m.versions = nil
	m.clearedversions = false
	m.removedversions = nil
}

// AddSessionIDs adds the "sessions" edge to the ChatSession entity by ids.
func (m *ChatbotMutation) AddSessionIDs(ids ...string) {
	if m.sessions == nil {
		m.sessions = make(map[string]struct{})
	}
	for i := range ids {
		m.sessions[ids[i]] = struct{}{}
	}
}

// ClearSessions clears the "sessions" edge to the ChatSession entity.
func (m *ChatbotMutation) ClearSessions() {
	m.clearedsessions = true
}

// SessionsCleared reports if the "sessions" edge to the ChatSession entity was cleared.
func (m *ChatbotMutation) SessionsCleared() bool {
	return m.clearedsessions
}

// RemoveSessionIDs removes the "sessions" edge to the ChatSession entity by IDs.
func (m *ChatbotMutation) RemoveSessionIDs(ids ...string) {
	if m.removedsessions == nil {
		m.removedsessions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.sessions, ids[i])
		m.removedsessions[ids[i]] = struct{}{}
	}
}

// RemovedSessions returns the removed IDs of the "sessions" edge to the ChatSession entity.
func (m *ChatbotMutation) RemovedSessionsIDs() (ids []string) {
	for id := range m.removedsessions {
		ids = append(ids, id)
	}
	return
}

// SessionsIDs returns the "sessions" edge IDs in the mutation.
func (m *ChatbotMutation) SessionsIDs() (ids []string) {
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return
}

// ResetSessions resets all changes to the "sessions" edge.
func (m *ChatbotMutation) ResetSessions() {
	m.sessions = nil
	m.clearedsessions = false
	m.removedsessions = nil
}

// AddDailyStatIDs adds the "daily_stats" edge to the DailyStat entity by ids.
func (m *ChatbotMutation) AddDailyStatIDs(ids ...string) {
	if m.daily_stats == nil {
		m.daily_stats = make(map[string]struct{})
	}
	for i := range ids {
		m.daily_stats[ids[i]] = struct{}{}
	}
}

// ClearDailyStats clears the "daily_stats" edge to the DailyStat entity.
func (m *ChatbotMutation) ClearDailyStats() {
	m.cleareddaily_stats = true
}

// DailyStatsCleared reports if the "daily_stats" edge to the DailyStat entity was cleared.
func (m *ChatbotMutation) DailyStatsCleared() bool {
	return m.cleareddaily_stats
}

// RemoveDailyStatIDs removes the "daily_stats" edge to the DailyStat entity by IDs.
func (m *ChatbotMutation) RemoveDailyStatIDs(ids ...string) {
	if m.removeddaily_stats == nil {
		m.removeddaily_stats = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.daily_stats, ids[i])
		m.removeddaily_stats[ids[i]] = struct{}{}
	}
}

// RemovedDailyStats returns the removed IDs of the "daily_stats" edge to the DailyStat entity.
func (m *ChatbotMutation) RemovedDailyStatsIDs() (ids []string) {
	for id := range m.removeddaily_stats {
		ids = append(ids, id)
	}
	return
}

// DailyStatsIDs returns the "daily_stats" edge IDs in the mutation.
func (m *ChatbotMutation) DailyStatsIDs() (ids []string) {
	for id := range m.daily_stats {
		ids = append(ids, id)
	}
	return
}

// ResetDailyStats resets all changes to the "daily_stats" edge.
func (m *ChatbotMutation) ResetDailyStats() {
	m.daily_stats = nil
	m.cleareddaily_stats = false
	m.removeddaily_stats = nil
}

// Where appends a list predicates to the ChatbotMutation builder.
func (m *ChatbotMutation) Where(ps ...predicate.Chatbot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChatbotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChatbotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Chatbot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChatbotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChatbotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Chatbot).
func (m *ChatbotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChatbotMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, chatbot.FieldName)
	}
	if m.description != nil {
		fields = append(fields, chatbot.FieldDescription)
	}
	if m.persona != nil {
		fields = append(fields, chatbot.FieldPersona)
	}
	if m.access_url != nil {
		fields = append(fields, chatbot.FieldAccessURL)
	}
	if m.status != nil {
		fields = append(fields, chatbot.FieldStatus)
	}
	if m.active_version != nil {
		fields = append(fields, chatbot.FieldActiveVersion)
	}
	if m.created_at != nil {
		fields = append(fields, chatbot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, chatbot.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChatbotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case chatbot.FieldName:
		return m.Name()
	case chatbot.FieldDescription:
		return m.Description()
	case chatbot.FieldPersona:
		return m.Persona()
	case chatbot.FieldAccessURL:
		return m.AccessURL()
	case chatbot.FieldStatus:
		return m.Status()
	case chatbot.FieldActiveVersion:
		return m.ActiveVersion()
	case chatbot.FieldCreatedAt:
		return m.CreatedAt()
	case chatbot.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChatbotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case chatbot.FieldName:
		return m.OldName(ctx)
	case chatbot.FieldDescription:
		return m.OldDescription(ctx)
	case chatbot.FieldPersona:
		return m.OldPersona(ctx)
	case chatbot.FieldAccessURL:
		return m.OldAccessURL(ctx)
	case chatbot.FieldStatus:
		return m.OldStatus(ctx)
	case chatbot.FieldActiveVersion:
		return m.OldActiveVersion(ctx)
	case chatbot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case chatbot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Chatbot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatbotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case chatbot.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case chatbot.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case chatbot.FieldPersona:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersona(v)
		return nil
	case chatbot.FieldAccessURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessURL(v)
		return nil
	case chatbot.FieldStatus:
		v, ok := value.(chatbot.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case chatbot.FieldActiveVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveVersion(v)
		return nil
	case chatbot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case chatbot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Chatbot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChatbotMutation) AddedFields() []string {
	var fields []string
	if m.addactive_version != nil {
		fields = append(fields, chatbot.FieldActiveVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChatbotMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case chatbot.FieldActiveVersion:
		return m.AddedActiveVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChatbotMutation) AddField(name string, value ent.Value) error {
	switch name {
	case chatbot.FieldActiveVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddActiveVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Chatbot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChatbotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(chatbot.FieldDescription) {
		fields = append(fields, chatbot.FieldDescription)
	}
	if m.FieldCleared(chatbot.FieldPersona) {
		fields = append(fields, chatbot.FieldPersona)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChatbotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChatbotMutation) ClearField(name string) error {
	switch name {
	case chatbot.FieldDescription:
		m.ClearDescription()
		return nil
	case chatbot.FieldPersona:
		m.ClearPersona()
		return nil
	}
	return fmt.Errorf("unknown Chatbot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChatbotMutation) ResetField(name string) error {
	switch name {
	case chatbot.FieldName:
		m.ResetName()
		return nil
	case chatbot.FieldDescription:
		m.ResetDescription()
		return nil
	case chatbot.FieldPersona:
		m.ResetPersona()
		return nil
	case chatbot.FieldAccessURL:
		m.ResetAccessURL()
		return nil
	case chatbot.FieldStatus:
		m.ResetStatus()
		return nil
	case chatbot.FieldActiveVersion:
		m.ResetActiveVersion()
		return nil
	case chatbot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case chatbot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Chatbot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChatbotMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.documents != nil {
		edges = append(edges, chatbot.EdgeDocuments)
	}
	if m.versions != nil {
		edges = append(edges, chatbot.EdgeVersions)
	}
	if m.sessions != nil {
		edges = append(edges, chatbot.EdgeSessions)
	}
	if m.daily_stats != nil {
		edges = append(edges, chatbot.EdgeDailyStats)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChatbotMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case chatbot.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.documents))
		for id := range m.documents {
			ids = append(ids, id)
		}
		return ids
	case chatbot.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.versions))
		for id := range m.versions {
			ids = append(ids, id)
		}
		return ids
	case chatbot.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.sessions))
		for id := range m.sessions {
			ids = append(ids, id)
		}
		return ids
	case chatbot.EdgeDailyStats:
		ids := make([]ent.Value, 0, len(m.daily_stats))
		for id := range m.daily_stats {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChatbotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removeddocuments != nil {
		edges = append(edges, chatbot.EdgeDocuments)
	}
	if m.removedversions != nil {
		edges = append(edges, chatbot.EdgeVersions)
	}
	if m.removedsessions != nil {
		edges = append(edges, chatbot.EdgeSessions)
	}
	if m.removeddaily_stats != nil {
		edges = append(edges, chatbot.EdgeDailyStats)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChatbotMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case chatbot.EdgeDocuments:
		ids := make([]ent.Value, 0, len(m.removeddocuments))
		for id := range m.removeddocuments {
			ids = append(ids, id)
		}
		return ids
	case chatbot.EdgeVersions:
		ids := make([]ent.Value, 0, len(m.removedversions))
		for id := range m.removedversions {
			ids = append(ids, id)
		}
		return ids
	case chatbot.EdgeSessions:
		ids := make([]ent.Value, 0, len(m.removedsessions))
		for id := range m.removedsessions {
			ids = append(ids, id)
		}
		return ids
	case chatbot.EdgeDailyStats:
		ids := make([]ent.Value, 0, len(m.removeddaily_stats))
		for id := range m.removeddaily_stats {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChatbotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.cleareddocuments {
		edges = append(edges, chatbot.EdgeDocuments)
	}
	if m.clearedversions {
		edges = append(edges, chatbot.EdgeVersions)
	}
	if m.clearedsessions {
		edges = append(edges, chatbot.EdgeSessions)
	}
	if m.cleareddaily_stats {
		edges = append(edges, chatbot.EdgeDailyStats)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChatbotMutation) EdgeCleared(name string) bool {
	switch name {
	case chatbot.EdgeDocuments:
		return m.cleareddocuments
	case chatbot.EdgeVersions:
		return m.clearedversions
	case chatbot.EdgeSessions:
		return m.clearedsessions
	case chatbot.EdgeDailyStats:
		return m.cleareddaily_stats
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChatbotMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Chatbot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChatbotMutation) ResetEdge(name string) error {
	switch name {
	case chatbot.EdgeDocuments:
		m.ResetDocuments()
		return nil
	case chatbot.EdgeVersions:
		m.ResetVersions()
		return nil
	case chatbot.EdgeSessions:
		m.ResetSessions()
		return nil
	case chatbot.EdgeDailyStats:
		m.ResetDailyStats()
		return nil
	}
	return fmt.Errorf("unknown Chatbot edge %s", name)
}

// DailyStatMutation represents an operation that mutates the DailyStat nodes in the graph.
type DailyStatMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	date                      *time.Time
	session_count             *int
	addsession_count          *int
	message_count             *int
	addmessage_count          *int
	total_response_time_ms    *int64
	addtotal_response_time_ms *int64
	input_tokens              *int64
	addinput_tokens           *int64
	output_tokens             *int64
	addoutput_tokens          *int64
	retrieval_count           *int64
	addretrieval_count        *int64
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	chatbot                   *string
	clearedchatbot            bool
	done                      bool
	oldValue                  func(context.Context) (*DailyStat, error)
	predicates                []predicate.DailyStat
}

var _ ent.Mutation = (*DailyStatMutation)(nil)

// dailystatOption allows management of the mutation configuration using functional options.
type dailystatOption func(*DailyStatMutation)

// newDailyStatMutation creates new mutation for the DailyStat entity.
func newDailyStatMutation(c config, op Op, opts ...dailystatOption) *DailyStatMutation {
	m := &DailyStatMutation{
		config:        c,
		op:            op,
		typ:           TypeDailyStat,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDailyStatID sets the ID field of the mutation.
func withDailyStatID(id string) dailystatOption {
	return func(m *DailyStatMutation) {
		var (
			err   error
			once  sync.Once
			value *DailyStat
		)
		m.oldValue = func(ctx context.Context) (*DailyStat, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DailyStat.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDailyStat sets the old DailyStat of the mutation.
func withDailyStat(node *DailyStat) dailystatOption {
	return func(m *DailyStatMutation) {
		m.oldValue = func(context.Context) (*DailyStat, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DailyStatMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DailyStatMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DailyStat entities.
func (m *DailyStatMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DailyStatMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DailyStatMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DailyStat.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatbotID sets the "chatbot_id" field.
func (m *DailyStatMutation) SetChatbotID(s string) {
	m.chatbot = &s
}

// ChatbotID returns the value of the "chatbot_id" field in the mutation.
func (m *DailyStatMutation) ChatbotID() (r string, exists bool) {
	v := m.chatbot
	if v == nil {
		return
	}
	return *v, true
}

// OldChatbotID returns the old "chatbot_id" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldChatbotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatbotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatbotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatbotID: %w", err)
	}
	return oldValue.ChatbotID, nil
}

// ResetChatbotID resets all changes to the "chatbot_id" field.
func (m *DailyStatMutation) ResetChatbotID() {
	m.chatbot = nil
}

// SetDate sets the "date" field.
func (m *DailyStatMutation) SetDate(t time.Time) {
	m.date = &t
}

// Date returns the value of the "date" field in the mutation.
func (m *DailyStatMutation) Date() (r time.Time, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *DailyStatMutation) ResetDate() {
	m.date = nil
}

// SetSessionCount sets the "session_count" field.
func (m *DailyStatMutation) SetSessionCount(i int) {
	m.session_count = &i
	m.addsession_count = nil
}

// SessionCount returns the value of the "session_count" field in the mutation.
func (m *DailyStatMutation) SessionCount() (r int, exists bool) {
	v := m.session_count
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionCount returns the old "session_count" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldSessionCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionCount: %w", err)
	}
	return oldValue.SessionCount, nil
}

// AddSessionCount adds i to the "session_count" field.
func (m *DailyStatMutation) AddSessionCount(i int) {
	if m.addsession_count != nil {
		*m.addsession_count += i
	} else {
		m.addsession_count = &i
	}
}

// AddedSessionCount returns the value that was added to the "session_count" field in this mutation.
func (m *DailyStatMutation) AddedSessionCount() (r int, exists bool) {
	v := m.addsession_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetSessionCount resets all changes to the "session_count" field.
func (m *DailyStatMutation) ResetSessionCount() {
	m.session_count = nil
	m.addsession_count = nil
}

// SetMessageCount sets the "message_count" field.
func (m *DailyStatMutation) SetMessageCount(i int) {
	m.message_count = &i
	m.addmessage_count = nil
}

// MessageCount returns the value of the "message_count" field in the mutation.
func (m *DailyStatMutation) MessageCount() (r int, exists bool) {
	v := m.message_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageCount returns the old "message_count" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldMessageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageCount: %w", err)
	}
	return oldValue.MessageCount, nil
}

// AddMessageCount adds i to the "message_count" field.
func (m *DailyStatMutation) AddMessageCount(i int) {
	if m.addmessage_count != nil {
		*m.addmessage_count += i
	} else {
		m.addmessage_count = &i
	}
}

// AddedMessageCount returns the value that was added to the "message_count" field in this mutation.
func (m *DailyStatMutation) AddedMessageCount() (r int, exists bool) {
	v := m.addmessage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMessageCount resets all changes to the "message_count" field.
func (m *DailyStatMutation) ResetMessageCount() {
	m.message_count = nil
	m.addmessage_count = nil
}

// SetTotalResponseTimeMs sets the "total_response_time_ms" field.
func (m *DailyStatMutation) SetTotalResponseTimeMs(i int64) {
	m.total_response_time_ms = &i
	m.addtotal_response_time_ms = nil
}

// TotalResponseTimeMs returns the value of the "total_response_time_ms" field in the mutation.
func (m *DailyStatMutation) TotalResponseTimeMs() (r int64, exists bool) {
	v := m.total_response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalResponseTimeMs returns the old "total_response_time_ms" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldTotalResponseTimeMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalResponseTimeMs: %w", err)
	}
	return oldValue.TotalResponseTimeMs, nil
}

// AddTotalResponseTimeMs adds i to the "total_response_time_ms" field.
func (m *DailyStatMutation) AddTotalResponseTimeMs(i int64) {
	if m.addtotal_response_time_ms != nil {
		*m.addtotal_response_time_ms += i
	} else {
		m.addtotal_response_time_ms = &i
	}
}

// AddedTotalResponseTimeMs returns the value that was added to the "total_response_time_ms" field in this mutation.
func (m *DailyStatMutation) AddedTotalResponseTimeMs() (r int64, exists bool) {
	v := m.addtotal_response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalResponseTimeMs resets all changes to the "total_response_time_ms" field.
func (m *DailyStatMutation) ResetTotalResponseTimeMs() {
	m.total_response_time_ms = nil
	m.addtotal_response_time_ms = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *DailyStatMutation) SetInputTokens(i int64) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *DailyStatMutation) InputTokens() (r int64, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldInputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *DailyStatMutation) AddInputTokens(i int64) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *DailyStatMutation) AddedInputTokens() (r int64, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *DailyStatMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *DailyStatMutation) SetOutputTokens(i int64) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *DailyStatMutation) OutputTokens() (r int64, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldOutputTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *DailyStatMutation) AddOutputTokens(i int64) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *DailyStatMutation) AddedOutputTokens() (r int64, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *DailyStatMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetRetrievalCount sets the "retrieval_count" field.
func (m *DailyStatMutation) SetRetrievalCount(i int64) {
	m.retrieval_count = &i
	m.addretrieval_count = nil
}

// RetrievalCount returns the value of the "retrieval_count" field in the mutation.
func (m *DailyStatMutation) RetrievalCount() (r int64, exists bool) {
	v := m.retrieval_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetrievalCount returns the old "retrieval_count" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldRetrievalCount(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetrievalCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetrievalCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetrievalCount: %w", err)
	}
	return oldValue.RetrievalCount, nil
}

// AddRetrievalCount adds i to the "retrieval_count" field.
func (m *DailyStatMutation) AddRetrievalCount(i int64) {
	if m.addretrieval_count != nil {
		*m.addretrieval_count += i
	} else {
		m.addretrieval_count = &i
	}
}

// AddedRetrievalCount returns the value that was added to the "retrieval_count" field in this mutation.
func (m *DailyStatMutation) AddedRetrievalCount() (r int64, exists bool) {
	v := m.addretrieval_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetrievalCount resets all changes to the "retrieval_count" field.
func (m *DailyStatMutation) ResetRetrievalCount() {
	m.retrieval_count = nil
	m.addretrieval_count = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DailyStatMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DailyStatMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DailyStat entity.
// If the DailyStat object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DailyStatMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DailyStatMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearChatbot clears the "chatbot" edge to the Chatbot entity.
func (m *DailyStatMutation) ClearChatbot() {
	m.clearedchatbot = true
	m.clearedFields[dailystat.FieldChatbotID] = struct{}{}
}

// ChatbotCleared reports if the "chatbot" edge to the Chatbot entity was cleared.
func (m *DailyStatMutation) ChatbotCleared() bool {
	return m.clearedchatbot
}

// ChatbotIDs returns the "chatbot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatbotID instead. It exists only for internal usage by the builders.
func (m *DailyStatMutation) ChatbotIDs() (ids []string) {
	if id := m.chatbot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChatbot resets all changes to the "chatbot" edge.
func (m *DailyStatMutation) ResetChatbot() {
	m.chatbot = nil
	m.clearedchatbot = false
}

// Where appends a list predicates to the DailyStatMutation builder.
func (m *DailyStatMutation) Where(ps ...predicate.DailyStat) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DailyStatMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DailyStatMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DailyStat, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DailyStatMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DailyStatMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DailyStat).
func (m *DailyStatMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DailyStatMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.chatbot != nil {
		fields = append(fields, dailystat.FieldChatbotID)
	}
	if m.date != nil {
		fields = append(fields, dailystat.FieldDate)
	}
	if m.session_count != nil {
		fields = append(fields, dailystat.FieldSessionCount)
	}
	if m.message_count != nil {
		fields = append(fields, dailystat.FieldMessageCount)
	}
	if m.total_response_time_ms != nil {
		fields = append(fields, dailystat.FieldTotalResponseTimeMs)
	}
	if m.input_tokens != nil {
		fields = append(fields, dailystat.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, dailystat.FieldOutputTokens)
	}
	if m.retrieval_count != nil {
		fields = append(fields, dailystat.FieldRetrievalCount)
	}
	if m.updated_at != nil {
		fields = append(fields, dailystat.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DailyStatMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dailystat.FieldChatbotID:
		return m.ChatbotID()
	case dailystat.FieldDate:
		return m.Date()
	case dailystat.FieldSessionCount:
		return m.SessionCount()
	case dailystat.FieldMessageCount:
		return m.MessageCount()
	case dailystat.FieldTotalResponseTimeMs:
		return m.TotalResponseTimeMs()
	case dailystat.FieldInputTokens:
		return m.InputTokens()
	case dailystat.FieldOutputTokens:
		return m.OutputTokens()
	case dailystat.FieldRetrievalCount:
		return m.RetrievalCount()
	case dailystat.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DailyStatMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dailystat.FieldChatbotID:
		return m.OldChatbotID(ctx)
	case dailystat.FieldDate:
		return m.OldDate(ctx)
	case dailystat.FieldSessionCount:
		return m.OldSessionCount(ctx)
	case dailystat.FieldMessageCount:
		return m.OldMessageCount(ctx)
	case dailystat.FieldTotalResponseTimeMs:
		return m.OldTotalResponseTimeMs(ctx)
	case dailystat.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case dailystat.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case dailystat.FieldRetrievalCount:
		return m.OldRetrievalCount(ctx)
	case dailystat.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DailyStat field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyStatMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dailystat.FieldChatbotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatbotID(v)
		return nil
	case dailystat.FieldDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case dailystat.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionCount(v)
		return nil
	case dailystat.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageCount(v)
		return nil
	case dailystat.FieldTotalResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalResponseTimeMs(v)
		return nil
	case dailystat.FieldInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case dailystat.FieldOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case dailystat.FieldRetrievalCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetrievalCount(v)
		return nil
	case dailystat.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DailyStat field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DailyStatMutation) AddedFields() []string {
	var fields []string
	if m.addsession_count != nil {
		fields = append(fields, dailystat.FieldSessionCount)
	}
	if m.addmessage_count != nil {
		fields = append(fields, dailystat.FieldMessageCount)
	}
	if m.addtotal_response_time_ms != nil {
		fields = append(fields, dailystat.FieldTotalResponseTimeMs)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, dailystat.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, dailystat.FieldOutputTokens)
	}
	if m.addretrieval_count != nil {
		fields = append(fields, dailystat.FieldRetrievalCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DailyStatMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dailystat.FieldSessionCount:
		return m.AddedSessionCount()
	case dailystat.FieldMessageCount:
		return m.AddedMessageCount()
	case dailystat.FieldTotalResponseTimeMs:
		return m.AddedTotalResponseTimeMs()
	case dailystat.FieldInputTokens:
		return m.AddedInputTokens()
	case dailystat.FieldOutputTokens:
		return m.AddedOutputTokens()
	case dailystat.FieldRetrievalCount:
		return m.AddedRetrievalCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DailyStatMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dailystat.FieldSessionCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSessionCount(v)
		return nil
	case dailystat.FieldMessageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMessageCount(v)
		return nil
	case dailystat.FieldTotalResponseTimeMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalResponseTimeMs(v)
		return nil
	case dailystat.FieldInputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case dailystat.FieldOutputTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case dailystat.FieldRetrievalCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetrievalCount(v)
		return nil
	}
	return fmt.Errorf("unknown DailyStat numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DailyStatMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DailyStatMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DailyStatMutation) ClearField(name string) error {
	return fmt.Errorf("unknown DailyStat nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DailyStatMutation) ResetField(name string) error {
	switch name {
	case dailystat.FieldChatbotID:
		m.ResetChatbotID()
		return nil
	case dailystat.FieldDate:
		m.ResetDate()
		return nil
	case dailystat.FieldSessionCount:
		m.ResetSessionCount()
		return nil
	case dailystat.FieldMessageCount:
		m.ResetMessageCount()
		return nil
	case dailystat.FieldTotalResponseTimeMs:
		m.ResetTotalResponseTimeMs()
		return nil
	case dailystat.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case dailystat.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case dailystat.FieldRetrievalCount:
		m.ResetRetrievalCount()
		return nil
	case dailystat.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DailyStat field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DailyStatMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chatbot != nil {
		edges = append(edges, dailystat.EdgeChatbot)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DailyStatMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dailystat.EdgeChatbot:
		if id := m.chatbot; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DailyStatMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DailyStatMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DailyStatMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchatbot {
		edges = append(edges, dailystat.EdgeChatbot)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DailyStatMutation) EdgeCleared(name string) bool {
	switch name {
	case dailystat.EdgeChatbot:
		return m.clearedchatbot
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DailyStatMutation) ClearEdge(name string) error {
	switch name {
	case dailystat.EdgeChatbot:
		m.ClearChatbot()
		return nil
	}
	return fmt.Errorf("unknown DailyStat unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DailyStatMutation) ResetEdge(name string) error {
	switch name {
	case dailystat.EdgeChatbot:
		m.ResetChatbot()
		return nil
	}
	return fmt.Errorf("unknown DailyStat edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	filename            *string
	stored_path         *string
	size_bytes          *int64
	addsize_bytes       *int64
	status              *document.Status
	version             *int
	addversion          *int
	page_count          *int
	addpage_count       *int
	progress            *int
	addprogress         *int
	error_message       *string
	chunk_count         *int
	addchunk_count      *int
	entity_count        *int
	addentity_count     *int
	attempts            *int
	addattempts         *int
	processed_at        *time.Time
	pod_id              *string
	last_interaction_at *time.Time
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	chatbot             *string
	clearedchatbot      bool
	done                bool
	oldValue            func(context.Context) (*Document, error)
	predicates          []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id string) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Document entities.
func (m *DocumentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChatbotID sets the "chatbot_id" field.
func (m *DocumentMutation) SetChatbotID(s string) {
	m.chatbot = &s
}

// ChatbotID returns the value of the "chatbot_id" field in the mutation.
func (m *DocumentMutation) ChatbotID() (r string, exists bool) {
	v := m.chatbot
	if v == nil {
		return
	}
	return *v, true
}

// OldChatbotID returns the old "chatbot_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldChatbotID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatbotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatbotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatbotID: %w", err)
	}
	return oldValue.ChatbotID, nil
}

// ResetChatbotID resets all changes to the "chatbot_id" field.
func (m *DocumentMutation) ResetChatbotID() {
	m.chatbot = nil
}

// SetFilename sets the "filename" field.
func (m *DocumentMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *DocumentMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *DocumentMutation) ResetFilename() {
	m.filename = nil
}

// SetStoredPath sets the "stored_path" field.
func (m *DocumentMutation) SetStoredPath(s string) {
	m.stored_path = &s
}

// StoredPath returns the value of the "stored_path" field in the mutation.
func (m *DocumentMutation) StoredPath() (r string, exists bool) {
	v := m.stored_path
	if v == nil {
		return
	}
	return *v, true
}

// OldStoredPath returns the old "stored_path" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStoredPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoredPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoredPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoredPath: %w", err)
	}
	return oldValue.StoredPath, nil
}

// ResetStoredPath resets all changes to the "stored_path" field.
func (m *DocumentMutation) ResetStoredPath() {
	m.stored_path = nil
}

// SetSizeBytes sets the "size_bytes" field.
func (m *DocumentMutation) SetSizeBytes(i int64) {
	m.size_bytes = &i
	m.addsize_bytes = nil
}

// SizeBytes returns the value of the "size_bytes" field in the mutation.
func (m *DocumentMutation) SizeBytes() (r int64, exists bool) {
	v := m.size_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizeBytes returns the old "size_bytes" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldSizeBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizeBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizeBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizeBytes: %w", err)
	}
	return oldValue.SizeBytes, nil
}

// AddSizeBytes adds i to the "size_bytes" field.
func (m *DocumentMutation) AddSizeBytes(i int64) {
	if m.addsize_bytes != nil {
		*m.addsize_bytes += i
	} else {
		m.addsize_bytes = &i
	}
}

// AddedSizeBytes returns the value that was added to the "size_bytes" field in this mutation.
func (m *DocumentMutation) AddedSizeBytes() (r int64, exists bool) {
	v := m.addsize_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetSizeBytes resets all changes to the "size_bytes" field.
func (m *DocumentMutation) ResetSizeBytes() {
	m.size_bytes = nil
	m.addsize_bytes = nil
}

// SetStatus sets the "status" field.
func (m *DocumentMutation) SetStatus(d document.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DocumentMutation) Status() (r document.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldStatus(ctx context.Context) (v document.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DocumentMutation) ResetStatus() {
	m.status = nil
}

// SetVersion sets the "version" field.
func (m *DocumentMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *DocumentMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *DocumentMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *DocumentMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *DocumentMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetPageCount sets the "page_count" field.
func (m *DocumentMutation) SetPageCount(i int) {
	m.page_count = &i
	m.addpage_count = nil
}

// PageCount returns the value of the "page_count" field in the mutation.
func (m *DocumentMutation) PageCount() (r int, exists bool) {
	v := m.page_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPageCount returns the old "page_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPageCount: %w", err)
	}
	return oldValue.PageCount, nil
}

// AddPageCount adds i to the "page_count" field.
func (m *DocumentMutation) AddPageCount(i int) {
	if m.addpage_count != nil {
		*m.addpage_count += i
	} else {
		m.addpage_count = &i
	}
}

// AddedPageCount returns the value that was added to the "page_count" field in this mutation.
func (m *DocumentMutation) AddedPageCount() (r int, exists bool) {
	v := m.addpage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPageCount resets all changes to the "page_count" field.
func (m *DocumentMutation) ResetPageCount() {
	m.page_count = nil
	m.addpage_count = nil
}

// SetProgress sets the "progress" field.
func (m *DocumentMutation) SetProgress(i int) {
	m.progress = &i
	m.addprogress = nil
}

// Progress returns the value of the "progress" field in the mutation.
func (m *DocumentMutation) Progress() (r int, exists bool) {
	v := m.progress
	if v == nil {
		return
	}
	return *v, true
}

// OldProgress returns the old "progress" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProgress(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProgress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProgress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProgress: %w", err)
	}
	return oldValue.Progress, nil
}

// AddProgress adds i to the "progress" field.
func (m *DocumentMutation) AddProgress(i int) {
	if m.addprogress != nil {
		*m.addprogress += i
	} else {
		m.addprogress = &i
	}
}

// AddedProgress returns the value that was added to the "progress" field in this mutation.
func (m *DocumentMutation) AddedProgress() (r int, exists bool) {
	v := m.addprogress
	if v == nil {
		return
	}
	return *v, true
}

// ResetProgress resets all changes to the "progress" field.
func (m *DocumentMutation) ResetProgress() {
	m.progress = nil
	m.addprogress = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *DocumentMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *DocumentMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *DocumentMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[document.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *DocumentMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[document.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *DocumentMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, document.FieldErrorMessage)
}

// SetChunkCount sets the "chunk_count" field.
func (m *DocumentMutation) SetChunkCount(i int) {
	m.chunk_count = &i
	m.addchunk_count = nil
}

// ChunkCount returns the value of the "chunk_count" field in the mutation.
func (m *DocumentMutation) ChunkCount() (r int, exists bool) {
	v := m.chunk_count
	if v == nil {
		return
	}
	return *v, true
}

// OldChunkCount returns the old "chunk_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldChunkCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChunkCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChunkCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChunkCount: %w", err)
	}
	return oldValue.ChunkCount, nil
}

// AddChunkCount adds i to the "chunk_count" field.
func (m *DocumentMutation) AddChunkCount(i int) {
	if m.addchunk_count != nil {
		*m.addchunk_count += i
	} else {
		m.addchunk_count = &i
	}
}

// AddedChunkCount returns the value that was added to the "chunk_count" field in this mutation.
func (m *DocumentMutation) AddedChunkCount() (r int, exists bool) {
	v := m.addchunk_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetChunkCount resets all changes to the "chunk_count" field.
func (m *DocumentMutation) ResetChunkCount() {
	m.chunk_count = nil
	m.addchunk_count = nil
}

// SetEntityCount sets the "entity_count" field.
func (m *DocumentMutation) SetEntityCount(i int) {
	m.entity_count = &i
	m.addentity_count = nil
}

// EntityCount returns the value of the "entity_count" field in the mutation.
func (m *DocumentMutation) EntityCount() (r int, exists bool) {
	v := m.entity_count
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityCount returns the old "entity_count" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldEntityCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityCount: %w", err)
	}
	return oldValue.EntityCount, nil
}

// AddEntityCount adds i to the "entity_count" field.
func (m *DocumentMutation) AddEntityCount(i int) {
	if m.addentity_count != nil {
		*m.addentity_count += i
	} else {
		m.addentity_count = &i
	}
}

// AddedEntityCount returns the value that was added to the "entity_count" field in this mutation.
func (m *DocumentMutation) AddedEntityCount() (r int, exists bool) {
	v := m.addentity_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetEntityCount resets all changes to the "entity_count" field.
func (m *DocumentMutation) ResetEntityCount() {
	m.entity_count = nil
	m.addentity_count = nil
}

// SetAttempts sets the "attempts" field.
func (m *DocumentMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *DocumentMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *DocumentMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *DocumentMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *DocumentMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetProcessedAt sets the "processed_at" field.
func (m *DocumentMutation) SetProcessedAt(t time.Time) {
	m.processed_at = &t
}

// ProcessedAt returns the value of the "processed_at" field in the mutation.
func (m *DocumentMutation) ProcessedAt() (r time.Time, exists bool) {
	v := m.processed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedAt returns the old "processed_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldProcessedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedAt: %w", err)
	}
	return oldValue.ProcessedAt, nil
}

// ClearProcessedAt clears the value of the "processed_at" field.
func (m *DocumentMutation) ClearProcessedAt() {
	m.processed_at = nil
	m.clearedFields[document.FieldProcessedAt] = struct{}{}
}

// ProcessedAtCleared returns if the "processed_at" field was cleared in this mutation.
func (m *DocumentMutation) ProcessedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldProcessedAt]
	return ok
}

// ResetProcessedAt resets all changes to the "processed_at" field.
func (m *DocumentMutation) ResetProcessedAt() {
	m.processed_at = nil
	delete(m.clearedFields, document.FieldProcessedAt)
}

// SetPodID sets the "pod_id" field.
func (m *DocumentMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *DocumentMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldPodID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *DocumentMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[document.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *DocumentMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[document.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *DocumentMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, document.FieldPodID)
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (m *DocumentMutation) SetLastInteractionAt(t time.Time) {
	m.last_interaction_at = &t
}

// LastInteractionAt returns the value of the "last_interaction_at" field in the mutation.
func (m *DocumentMutation) LastInteractionAt() (r time.Time, exists bool) {
	v := m.last_interaction_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastInteractionAt returns the old "last_interaction_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldLastInteractionAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastInteractionAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastInteractionAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastInteractionAt: %w", err)
	}
	return oldValue.LastInteractionAt, nil
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (m *DocumentMutation) ClearLastInteractionAt() {
	m.last_interaction_at = nil
	m.clearedFields[document.FieldLastInteractionAt] = struct{}{}
}

// LastInteractionAtCleared returns if the "last_interaction_at" field was cleared in this mutation.
func (m *DocumentMutation) LastInteractionAtCleared() bool {
	_, ok := m.clearedFields[document.FieldLastInteractionAt]
	return ok
}

// ResetLastInteractionAt resets all changes to the "last_interaction_at" field.
func (m *DocumentMutation) ResetLastInteractionAt() {
	m.last_interaction_at = nil
	delete(m.clearedFields, document.FieldLastInteractionAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearChatbot clears the "chatbot" edge to the Chatbot entity.
func (m *DocumentMutation) ClearChatbot() {
	m.clearedchatbot = true
	m.clearedFields[document.FieldChatbotID] = struct{}{}
}

// ChatbotCleared reports if the "chatbot" edge to the Chatbot entity was cleared.
func (m *DocumentMutation) ChatbotCleared() bool {
	return m.clearedchatbot
}

// ChatbotIDs returns the "chatbot" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChatbotID instead. It exists only for internal usage by the builders.
func (m *DocumentMutation) ChatbotIDs() (ids []string) {
	if id := m.chatbot; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChatbot resets all changes to the "chatbot" edge.
func (m *DocumentMutation) ResetChatbot() {
	m.chatbot = nil
	m.clearedchatbot = false
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.chatbot != nil {
		fields = append(fields, document.FieldChatbotID)
	}
	if m.filename != nil {
		fields = append(fields, document.FieldFilename)
	}
	if m.stored_path != nil {
		fields = append(fields, document.FieldStoredPath)
	}
	if m.size_bytes != nil {
		fields = append(fields, document.FieldSizeBytes)
	}
	if m.status != nil {
		fields = append(fields, document.FieldStatus)
	}
	if m.version != nil {
		fields = append(fields, document.FieldVersion)
	}
	if m.page_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.progress != nil {
		fields = append(fields, document.FieldProgress)
	}
	if m.error_message != nil {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.chunk_count != nil {
		fields = append(fields, document.FieldChunkCount)
	}
	if m.entity_count != nil {
		fields = append(fields, document.FieldEntityCount)
	}
	if m.attempts != nil {
		fields = append(fields, document.FieldAttempts)
	}
	if m.processed_at != nil {
		fields = append(fields, document.FieldProcessedAt)
	}
	if m.pod_id != nil {
		fields = append(fields, document.FieldPodID)
	}
	if m.last_interaction_at != nil {
		fields = append(fields, document.FieldLastInteractionAt)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldChatbotID:
		return m.ChatbotID()
	case document.FieldFilename:
		return m.Filename()
	case document.FieldStoredPath:
		return m.StoredPath()
	case document.FieldSizeBytes:
		return m.SizeBytes()
	case document.FieldStatus:
		return m.Status()
	case document.FieldVersion:
		return m.Version()
	case document.FieldPageCount:
		return m.PageCount()
	case document.FieldProgress:
		return m.Progress()
	case document.FieldErrorMessage:
		return m.ErrorMessage()
	case document.FieldChunkCount:
		return m.ChunkCount()
	case document.FieldEntityCount:
		return m.EntityCount()
	case document.FieldAttempts:
		return m.Attempts()
	case document.FieldProcessedAt:
		return m.ProcessedAt()
	case document.FieldPodID:
		return m.PodID()
	case document.FieldLastInteractionAt:
		return m.LastInteractionAt()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldChatbotID:
		return m.OldChatbotID(ctx)
	case document.FieldFilename:
		return m.OldFilename(ctx)
	case document.FieldStoredPath:
		return m.OldStoredPath(ctx)
	case document.FieldSizeBytes:
		return m.OldSizeBytes(ctx)
	case document.FieldStatus:
		return m.OldStatus(ctx)
	case document.FieldVersion:
		return m.OldVersion(ctx)
	case document.FieldPageCount:
		return m.OldPageCount(ctx)
	case document.FieldProgress:
		return m.OldProgress(ctx)
	case document.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case document.FieldChunkCount:
		return m.OldChunkCount(ctx)
	case document.FieldEntityCount:
		return m.OldEntityCount(ctx)
	case document.FieldAttempts:
		return m.OldAttempts(ctx)
	case document.FieldProcessedAt:
		return m.OldProcessedAt(ctx)
	case document.FieldPodID:
		return m.OldPodID(ctx)
	case document.FieldLastInteractionAt:
		return m.OldLastInteractionAt(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldChatbotID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatbotID(v)
		return nil
	case document.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case document.FieldStoredPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoredPath(v)
		return nil
	case document.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizeBytes(v)
		return nil
	case document.FieldStatus:
		v, ok := value.(document.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case document.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPageCount(v)
		return nil
	case document.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProgress(v)
		return nil
	case document.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case document.FieldChunkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChunkCount(v)
		return nil
	case document.FieldEntityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityCount(v)
		return nil
	case document.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case document.FieldProcessedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedAt(v)
		return nil
	case document.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case document.FieldLastInteractionAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastInteractionAt(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addsize_bytes != nil {
		fields = append(fields, document.FieldSizeBytes)
	}
	if m.addversion != nil {
		fields = append(fields, document.FieldVersion)
	}
	if m.addpage_count != nil {
		fields = append(fields, document.FieldPageCount)
	}
	if m.addprogress != nil {
		fields = append(fields, document.FieldProgress)
	}
	if m.addchunk_count != nil {
		fields = append(fields, document.FieldChunkCount)
	}
	if m.addentity_count != nil {
		fields = append(fields, document.FieldEntityCount)
	}
	if m.addattempts != nil {
		fields = append(fields, document.FieldAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldSizeBytes:
		return m.AddedSizeBytes()
	case document.FieldVersion:
		return m.AddedVersion()
	case document.FieldPageCount:
		return m.AddedPageCount()
	case document.FieldProgress:
		return m.AddedProgress()
	case document.FieldChunkCount:
		return m.AddedChunkCount()
	case document.FieldEntityCount:
		return m.AddedEntityCount()
	case document.FieldAttempts:
		return m.AddedAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldSizeBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSizeBytes(v)
		return nil
	case document.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	case document.FieldPageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPageCount(v)
		return nil
	case document.FieldProgress:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProgress(v)
		return nil
	case document.FieldChunkCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChunkCount(v)
		return nil
	case document.FieldEntityCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEntityCount(v)
		return nil
	case document.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldErrorMessage) {
		fields = append(fields, document.FieldErrorMessage)
	}
	if m.FieldCleared(document.FieldProcessedAt) {
		fields = append(fields, document.FieldProcessedAt)
	}
	if m.FieldCleared(document.FieldPodID) {
		fields = append(fields, document.FieldPodID)
	}
	if m.FieldCleared(document.FieldLastInteractionAt) {
		fields = append(fields, document.FieldLastInteractionAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case document.FieldProcessedAt:
		m.ClearProcessedAt()
		return nil
	case document.FieldPodID:
		m.ClearPodID()
		return nil
	case document.FieldLastInteractionAt:
		m.ClearLastInteractionAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldChatbotID:
		m.ResetChatbotID()
		return nil
	case document.FieldFilename:
		m.ResetFilename()
		return nil
	case document.FieldStoredPath:
		m.ResetStoredPath()
		return nil
	case document.FieldSizeBytes:
		m.ResetSizeBytes()
		return nil
	case document.FieldStatus:
		m.ResetStatus()
		return nil
	case document.FieldVersion:
		m.ResetVersion()
		return nil
	case document.FieldPageCount:
		m.ResetPageCount()
		return nil
	case document.FieldProgress:
		m.ResetProgress()
		return nil
	case document.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case document.FieldChunkCount:
		m.ResetChunkCount()
		return nil
	case document.FieldEntityCount:
		m.ResetEntityCount()
		return nil
	case document.FieldAttempts:
		m.ResetAttempts()
		return nil
	case document.FieldProcessedAt:
		m.ResetProcessedAt()
		return nil
	case document.FieldPodID:
		m.ResetPodID()
		return nil
	case document.FieldLastInteractionAt:
		m.ResetLastInteractionAt()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.chatbot != nil {
		edges = append(edges, document.EdgeChatbot)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeChatbot:
		if id := m.chatbot; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedchatbot {
		edges = append(edges, document.EdgeChatbot)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeChatbot:
		return m.clearedchatbot
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	case document.EdgeChatbot:
		m.ClearChatbot()
		return nil
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeChatbot:
		m.ResetChatbot()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	role                 *message.Role
	content              *string
	sources              *[]map[string]interface{}
	appendsources        []map[string]interface{}
	cancelled            *bool
	failed               *bool
	response_time_ms     *int
	addresponse_time_ms  *int
	input_tokens         *int
	addinput_tokens      *int
	output_tokens        *int
	addoutput_tokens     *int
	retrieval_count      *int
	addretrieval_count   *int
	retrieval_time_ms    *int
	addretrieval_time_ms *int
	created_at           *time.Time
	clearedFields        map[string]struct{}
	session              *string
	clearedsession       bool
	done                 bool
	oldValue             func(context.Context) (*Message, error)
	predicates           []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *MessageMutation) SetSessionID(s string) {
	m.session = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *MessageMutation) SessionID() (r string, exists bool) {
	v := m.session
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *MessageMutation) ResetSessionID() {
	m.session = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetSources sets the "sources" field.
func (m *MessageMutation) SetSources(value []map[string]interface{}) {
	m.sources = &value
	m.appendsources = nil
}

// Sources returns the value of the "sources" field in the mutation.
func (m *MessageMutation) Sources() (r []map[string]interface{}, exists bool) {
	v := m.sources
	if v == nil {
		return
	}
	return *v, true
}

// OldSources returns the old "sources" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSources(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSources is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSources requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSources: %w", err)
	}
	return oldValue.Sources, nil
}

// AppendSources adds value to the "sources" field.
func (m *MessageMutation) AppendSources(value []map[string]interface{}) {
	m.appendsources = append(m.appendsources, value...)
}

// AppendedSources returns the list of values that were appended to the "sources" field in this mutation.
func (m *MessageMutation) AppendedSources() ([]map[string]interface{}, bool) {
	if len(m.appendsources) == 0 {
		return nil, false
	}
	return m.appendsources, true
}

// ClearSources clears the value of the "sources" field.
func (m *MessageMutation) ClearSources() {
	m.sources = nil
	m.appendsources = nil
	m.clearedFields[message.FieldSources] = struct{}{}
}

// SourcesCleared returns if the "sources" field was cleared in this mutation.
func (m *MessageMutation) SourcesCleared() bool {
	_, ok := m.clearedFields[message.FieldSources]
	return ok
}

// ResetSources resets all changes to the "sources" field.
func (m *MessageMutation) ResetSources() {
	m.sources = nil
	m.appendsources = nil
	delete(m.clearedFields, message.FieldSources)
}

// SetCancelled sets the "cancelled" field.
func (m *MessageMutation) SetCancelled(b bool) {
	m.cancelled = &b
}

// Cancelled returns the value of the "cancelled" field in the mutation.
func (m *MessageMutation) Cancelled() (r bool, exists bool) {
	v := m.cancelled
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelled returns the old "cancelled" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCancelled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelled: %w", err)
	}
	return oldValue.Cancelled, nil
}

// ResetCancelled resets all changes to the "cancelled" field.
func (m *MessageMutation) ResetCancelled() {
	m.cancelled = nil
}

// SetFailed sets the "failed" field.
func (m *MessageMutation) SetFailed(b bool) {
	m.failed = &b
}

// Failed returns the value of the "failed" field in the mutation.
func (m *MessageMutation) Failed() (r bool, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldFailed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// ResetFailed resets all changes to the "failed" field.
func (m *MessageMutation) ResetFailed() {
	m.failed = nil
}

// SetResponseTimeMs sets the "response_time_ms" field.
func (m *MessageMutation) SetResponseTimeMs(i int) {
	m.response_time_ms = &i
	m.addresponse_time_ms = nil
}

// ResponseTimeMs returns the value of the "response_time_ms" field in the mutation.
func (m *MessageMutation) ResponseTimeMs() (r int, exists bool) {
	v := m.response_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseTimeMs returns the old "response_time_ms" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldResponseTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseTimeMs: %w", err)
	}
	return oldValue.ResponseTimeMs, nil
}

// AddResponseTimeMs adds i to the "response_time_ms" field.
func (m *MessageMutation) AddResponseTimeMs(i int) {
	if m.addresponse_time_ms != nil {
		*m.addresponse_time_ms += i
	} else {
		m.addresponse_time_ms = &i
	}
}

// AddedResponseTimeMs returns the value that was added to the "response_time_ms" field in this mutation.
func (m *MessageMutation) AddedResponseTimeMs() (r int, exists bool) {
	v := m.addresponse_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetResponseTimeMs resets all changes to the "response_time_ms" field.
func (m *MessageMutation) ResetResponseTimeMs() {
	m.response_time_ms = nil
	m.addresponse_time_ms = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *MessageMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *MessageMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *MessageMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *MessageMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *MessageMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *MessageMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *MessageMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *MessageMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *MessageMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *MessageMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetRetrievalCount sets the "retrieval_count" field.
func (m *MessageMutation) SetRetrievalCount(i int) {
	m.retrieval_count = &i
	m.addretrieval_count = nil
}

// RetrievalCount returns the value of the "retrieval_count" field in the mutation.
func (m *MessageMutation) RetrievalCount() (r int, exists bool) {
	v := m.retrieval_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetrievalCount returns the old "retrieval_count" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRetrievalCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetrievalCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetrievalCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetrievalCount: %w", err)
	}
	return oldValue.RetrievalCount, nil
}

// AddRetrievalCount adds i to the "retrieval_count" field.
func (m *MessageMutation) AddRetrievalCount(i int) {
	if m.addretrieval_count != nil {
		*m.addretrieval_count += i
	} else {
		m.addretrieval_count = &i
	}
}

// AddedRetrievalCount returns the value that was added to the "retrieval_count" field in this mutation.
func (m *MessageMutation) AddedRetrievalCount() (r int, exists bool) {
	v := m.addretrieval_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetrievalCount resets all changes to the "retrieval_count" field.
func (m *MessageMutation) ResetRetrievalCount() {
	m.retrieval_count = nil
	m.addretrieval_count = nil
}

// SetRetrievalTimeMs sets the "retrieval_time_ms" field.
func (m *MessageMutation) SetRetrievalTimeMs(i int) {
	m.retrieval_time_ms = &i
	m.addretrieval_time_ms = nil
}

// RetrievalTimeMs returns the value of the "retrieval_time_ms" field in the mutation.
func (m *MessageMutation) RetrievalTimeMs() (r int, exists bool) {
	v := m.retrieval_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldRetrievalTimeMs returns the old "retrieval_time_ms" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRetrievalTimeMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetrievalTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetrievalTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetrievalTimeMs: %w", err)
	}
	return oldValue.RetrievalTimeMs, nil
}

// AddRetrievalTimeMs adds i to the "retrieval_time_ms" field.
func (m *MessageMutation) AddRetrievalTimeMs(i int) {
	if m.addretrieval_time_ms != nil {
		*m.addretrieval_time_ms += i
	} else {
		m.addretrieval_time_ms = &i
	}
}

// AddedRetrievalTimeMs returns the value that was added to the "retrieval_time_ms" field in this mutation.
func (m *MessageMutation) AddedRetrievalTimeMs() (r int, exists bool) {
	v := m.addretrieval_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetrievalTimeMs resets all changes to the "retrieval_time_ms" field.
func (m *MessageMutation) ResetRetrievalTimeMs() {
	m.retrieval_time_ms = nil
	m.addretrieval_time_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSession clears the "session" edge to the ChatSession entity.
func (m *MessageMutation) ClearSession() {
	m.clearedsession = true
	m.clearedFields[message.FieldSessionID] = struct{}{}
}

// SessionCleared reports if the "session" edge to the ChatSession entity was cleared.
func (m *MessageMutation) SessionCleared() bool {
	return m.clearedsession
}

// SessionIDs returns the "session" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SessionID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) SessionIDs() (ids []string) {
	if id := m.session; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSession resets all changes to the "session" edge.
func (m *MessageMutation) ResetSession() {
	m.session = nil
	m.clearedsession = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.session != nil {
		fields = append(fields, message.FieldSessionID)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.sources != nil {
		fields = append(fields, message.FieldSources)
	}
	if m.cancelled != nil {
		fields = append(fields, message.FieldCancelled)
	}
	if m.failed != nil {
		fields = append(fields, message.FieldFailed)
	}
	if m.response_time_ms != nil {
		fields = append(fields, message.FieldResponseTimeMs)
	}
	if m.input_tokens != nil {
		fields = append(fields, message.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, message.FieldOutputTokens)
	}
	if m.retrieval_count != nil {
		fields = append(fields, message.FieldRetrievalCount)
	}
	if m.retrieval_time_ms != nil {
		fields = append(fields, message.FieldRetrievalTimeMs)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldSessionID:
		return m.SessionID()
	case message.FieldRole:
		return m.Role()
	case message.FieldContent:
		return m.Content()
	case message.FieldSources:
		return m.Sources()
	case message.FieldCancelled:
		return m.Cancelled()
	case message.FieldFailed:
		return m.Failed()
	case message.FieldResponseTimeMs:
		return m.ResponseTimeMs()
	case message.FieldInputTokens:
		return m.InputTokens()
	case message.FieldOutputTokens:
		return m.OutputTokens()
	case message.FieldRetrievalCount:
		return m.RetrievalCount()
	case message.FieldRetrievalTimeMs:
		return m.RetrievalTimeMs()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldSessionID:
		return m.OldSessionID(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldSources:
		return m.OldSources(ctx)
	case message.FieldCancelled:
		return m.OldCancelled(ctx)
	case message.FieldFailed:
		return m.OldFailed(ctx)
	case message.FieldResponseTimeMs:
		return m.OldResponseTimeMs(ctx)
	case message.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case message.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case message.FieldRetrievalCount:
		return m.OldRetrievalCount(ctx)
	case message.FieldRetrievalTimeMs:
		return m.OldRetrievalTimeMs(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldSources:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSources(v)
		return nil
	case message.FieldCancelled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelled(v)
		return nil
	case message.FieldFailed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case message.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseTimeMs(v)
		return nil
	case message.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case message.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case message.FieldRetrievalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetrievalCount(v)
		return nil
	case message.FieldRetrievalTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetrievalTimeMs(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addresponse_time_ms != nil {
		fields = append(fields, message.FieldResponseTimeMs)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, message.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, message.FieldOutputTokens)
	}
	if m.addretrieval_count != nil {
		fields = append(fields, message.FieldRetrievalCount)
	}
	if m.addretrieval_time_ms != nil {
		fields = append(fields, message.FieldRetrievalTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldResponseTimeMs:
		return m.AddedResponseTimeMs()
	case message.FieldInputTokens:
		return m.AddedInputTokens()
	case message.FieldOutputTokens:
		return m.AddedOutputTokens()
	case message.FieldRetrievalCount:
		return m.AddedRetrievalCount()
	case message.FieldRetrievalTimeMs:
		return m.AddedRetrievalTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldResponseTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResponseTimeMs(v)
		return nil
	case message.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case message.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case message.FieldRetrievalCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetrievalCount(v)
		return nil
	case message.FieldRetrievalTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetrievalTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldSources) {
		fields = append(fields, message.FieldSources)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldSources:
		m.ClearSources()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldSessionID:
		m.ResetSessionID()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldSources:
		m.ResetSources()
		return nil
	case message.FieldCancelled:
		m.ResetCancelled()
		return nil
	case message.FieldFailed:
		m.ResetFailed()
		return nil
	case message.FieldResponseTimeMs:
		m.ResetResponseTimeMs()
		return nil
	case message.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case message.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case message.FieldRetrievalCount:
		m.ResetRetrievalCount()
		return nil
	case message.FieldRetrievalTimeMs:
		m.ResetRetrievalTimeMs()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.session != nil {
		edges = append(edges, message.EdgeSession)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeSession:
		if id := m.session; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsession {
		edges = append(edges, message.EdgeSession)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeSession:
		return m.clearedsession
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeSession:
		m.ClearSession()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeSession:
		m.ResetSession()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}
