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
	"github.com/hymnly133/prizm/ent/auditentry"
	"github.com/hymnly133/prizm/ent/deduplog"
	"github.com/hymnly133/prizm/ent/memoryentry"
	"github.com/hymnly133/prizm/ent/predicate"
	"github.com/hymnly133/prizm/ent/schedule"
	"github.com/hymnly133/prizm/ent/workflowrun"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAuditEntry  = "AuditEntry"
	TypeDedupLog    = "DedupLog"
	TypeMemoryEntry = "MemoryEntry"
	TypeSchedule    = "Schedule"
	TypeWorkflowRun = "WorkflowRun"
)

// AuditEntryMutation represents an operation that mutates the AuditEntry nodes in the graph.
type AuditEntryMutation struct {
	config
	op             Op
	typ            string
	id             *string
	scope          *string
	session_id     *string
	tool_name      *string
	arguments      *string
	result         *string
	is_error       *bool
	action         *string
	duration_ms    *int64
	addduration_ms *int64
	created_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*AuditEntry, error)
	predicates     []predicate.AuditEntry
}

var _ ent.Mutation = (*AuditEntryMutation)(nil)

// auditentryOption allows management of the mutation configuration using functional options.
type auditentryOption func(*AuditEntryMutation)

// newAuditEntryMutation creates new mutation for the AuditEntry entity.
func newAuditEntryMutation(c config, op Op, opts ...auditentryOption) *AuditEntryMutation {
	m := &AuditEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEntryID sets the ID field of the mutation.
func withAuditEntryID(id string) auditentryOption {
	return func(m *AuditEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEntry
		)
		m.oldValue = func(ctx context.Context) (*AuditEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEntry sets the old AuditEntry of the mutation.
func withAuditEntry(node *AuditEntry) auditentryOption {
	return func(m *AuditEntryMutation) {
		m.oldValue = func(context.Context) (*AuditEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditEntry entities.
func (m *AuditEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScope sets the "scope" field.
func (m *AuditEntryMutation) SetScope(s string) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *AuditEntryMutation) Scope() (r string, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldScope(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *AuditEntryMutation) ResetScope() {
	m.scope = nil
}

// SetSessionID sets the "session_id" field.
func (m *AuditEntryMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AuditEntryMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldSessionID(ctx context.Context) (v string, err error) {
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

// ClearSessionID clears the value of the "session_id" field.
func (m *AuditEntryMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[auditentry.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *AuditEntryMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AuditEntryMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, auditentry.FieldSessionID)
}

// SetToolName sets the "tool_name" field.
func (m *AuditEntryMutation) SetToolName(s string) {
	m.tool_name = &s
}

// ToolName returns the value of the "tool_name" field in the mutation.
func (m *AuditEntryMutation) ToolName() (r string, exists bool) {
	v := m.tool_name
	if v == nil {
		return
	}
	return *v, true
}

// OldToolName returns the old "tool_name" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldToolName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolName: %w", err)
	}
	return oldValue.ToolName, nil
}

// ResetToolName resets all changes to the "tool_name" field.
func (m *AuditEntryMutation) ResetToolName() {
	m.tool_name = nil
}

// SetArguments sets the "arguments" field.
func (m *AuditEntryMutation) SetArguments(s string) {
	m.arguments = &s
}

// Arguments returns the value of the "arguments" field in the mutation.
func (m *AuditEntryMutation) Arguments() (r string, exists bool) {
	v := m.arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldArguments returns the old "arguments" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldArguments(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArguments: %w", err)
	}
	return oldValue.Arguments, nil
}

// ClearArguments clears the value of the "arguments" field.
func (m *AuditEntryMutation) ClearArguments() {
	m.arguments = nil
	m.clearedFields[auditentry.FieldArguments] = struct{}{}
}

// ArgumentsCleared returns if the "arguments" field was cleared in this mutation.
func (m *AuditEntryMutation) ArgumentsCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldArguments]
	return ok
}

// ResetArguments resets all changes to the "arguments" field.
func (m *AuditEntryMutation) ResetArguments() {
	m.arguments = nil
	delete(m.clearedFields, auditentry.FieldArguments)
}

// SetResult sets the "result" field.
func (m *AuditEntryMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *AuditEntryMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldResult(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *AuditEntryMutation) ClearResult() {
	m.result = nil
	m.clearedFields[auditentry.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *AuditEntryMutation) ResultCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *AuditEntryMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, auditentry.FieldResult)
}

// SetIsError sets the "is_error" field.
func (m *AuditEntryMutation) SetIsError(b bool) {
	m.is_error = &b
}

// IsError returns the value of the "is_error" field in the mutation.
func (m *AuditEntryMutation) IsError() (r bool, exists bool) {
	v := m.is_error
	if v == nil {
		return
	}
	return *v, true
}

// OldIsError returns the old "is_error" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldIsError(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsError: %w", err)
	}
	return oldValue.IsError, nil
}

// ResetIsError resets all changes to the "is_error" field.
func (m *AuditEntryMutation) ResetIsError() {
	m.is_error = nil
}

// SetAction sets the "action" field.
func (m *AuditEntryMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditEntryMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ClearAction clears the value of the "action" field.
func (m *AuditEntryMutation) ClearAction() {
	m.action = nil
	m.clearedFields[auditentry.FieldAction] = struct{}{}
}

// ActionCleared returns if the "action" field was cleared in this mutation.
func (m *AuditEntryMutation) ActionCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldAction]
	return ok
}

// ResetAction resets all changes to the "action" field.
func (m *AuditEntryMutation) ResetAction() {
	m.action = nil
	delete(m.clearedFields, auditentry.FieldAction)
}

// SetDurationMs sets the "duration_ms" field.
func (m *AuditEntryMutation) SetDurationMs(i int64) {
	m.duration_ms = &i
	m.addduration_ms = nil
}

// DurationMs returns the value of the "duration_ms" field in the mutation.
func (m *AuditEntryMutation) DurationMs() (r int64, exists bool) {
	v := m.duration_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationMs returns the old "duration_ms" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldDurationMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationMs: %w", err)
	}
	return oldValue.DurationMs, nil
}

// AddDurationMs adds i to the "duration_ms" field.
func (m *AuditEntryMutation) AddDurationMs(i int64) {
	if m.addduration_ms != nil {
		*m.addduration_ms += i
	} else {
		m.addduration_ms = &i
	}
}

// AddedDurationMs returns the value that was added to the "duration_ms" field in this mutation.
func (m *AuditEntryMutation) AddedDurationMs() (r int64, exists bool) {
	v := m.addduration_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (m *AuditEntryMutation) ClearDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	m.clearedFields[auditentry.FieldDurationMs] = struct{}{}
}

// DurationMsCleared returns if the "duration_ms" field was cleared in this mutation.
func (m *AuditEntryMutation) DurationMsCleared() bool {
	_, ok := m.clearedFields[auditentry.FieldDurationMs]
	return ok
}

// ResetDurationMs resets all changes to the "duration_ms" field.
func (m *AuditEntryMutation) ResetDurationMs() {
	m.duration_ms = nil
	m.addduration_ms = nil
	delete(m.clearedFields, auditentry.FieldDurationMs)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEntry entity.
// If the AuditEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *AuditEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the AuditEntryMutation builder.
func (m *AuditEntryMutation) Where(ps ...predicate.AuditEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEntry).
func (m *AuditEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEntryMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.scope != nil {
		fields = append(fields, auditentry.FieldScope)
	}
	if m.session_id != nil {
		fields = append(fields, auditentry.FieldSessionID)
	}
	if m.tool_name != nil {
		fields = append(fields, auditentry.FieldToolName)
	}
	if m.arguments != nil {
		fields = append(fields, auditentry.FieldArguments)
	}
	if m.result != nil {
		fields = append(fields, auditentry.FieldResult)
	}
	if m.is_error != nil {
		fields = append(fields, auditentry.FieldIsError)
	}
	if m.action != nil {
		fields = append(fields, auditentry.FieldAction)
	}
	if m.duration_ms != nil {
		fields = append(fields, auditentry.FieldDurationMs)
	}
	if m.created_at != nil {
		fields = append(fields, auditentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldScope:
		return m.Scope()
	case auditentry.FieldSessionID:
		return m.SessionID()
	case auditentry.FieldToolName:
		return m.ToolName()
	case auditentry.FieldArguments:
		return m.Arguments()
	case auditentry.FieldResult:
		return m.Result()
	case auditentry.FieldIsError:
		return m.IsError()
	case auditentry.FieldAction:
		return m.Action()
	case auditentry.FieldDurationMs:
		return m.DurationMs()
	case auditentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditentry.FieldScope:
		return m.OldScope(ctx)
	case auditentry.FieldSessionID:
		return m.OldSessionID(ctx)
	case auditentry.FieldToolName:
		return m.OldToolName(ctx)
	case auditentry.FieldArguments:
		return m.OldArguments(ctx)
	case auditentry.FieldResult:
		return m.OldResult(ctx)
	case auditentry.FieldIsError:
		return m.OldIsError(ctx)
	case auditentry.FieldAction:
		return m.OldAction(ctx)
	case auditentry.FieldDurationMs:
		return m.OldDurationMs(ctx)
	case auditentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case auditentry.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case auditentry.FieldToolName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolName(v)
		return nil
	case auditentry.FieldArguments:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArguments(v)
		return nil
	case auditentry.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case auditentry.FieldIsError:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsError(v)
		return nil
	case auditentry.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditentry.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationMs(v)
		return nil
	case auditentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEntryMutation) AddedFields() []string {
	var fields []string
	if m.addduration_ms != nil {
		fields = append(fields, auditentry.FieldDurationMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEntryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditentry.FieldDurationMs:
		return m.AddedDurationMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditentry.FieldDurationMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationMs(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditentry.FieldSessionID) {
		fields = append(fields, auditentry.FieldSessionID)
	}
	if m.FieldCleared(auditentry.FieldArguments) {
		fields = append(fields, auditentry.FieldArguments)
	}
	if m.FieldCleared(auditentry.FieldResult) {
		fields = append(fields, auditentry.FieldResult)
	}
	if m.FieldCleared(auditentry.FieldAction) {
		fields = append(fields, auditentry.FieldAction)
	}
	if m.FieldCleared(auditentry.FieldDurationMs) {
		fields = append(fields, auditentry.FieldDurationMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEntryMutation) ClearField(name string) error {
	switch name {
	case auditentry.FieldSessionID:
		m.ClearSessionID()
		return nil
	case auditentry.FieldArguments:
		m.ClearArguments()
		return nil
	case auditentry.FieldResult:
		m.ClearResult()
		return nil
	case auditentry.FieldAction:
		m.ClearAction()
		return nil
	case auditentry.FieldDurationMs:
		m.ClearDurationMs()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEntryMutation) ResetField(name string) error {
	switch name {
	case auditentry.FieldScope:
		m.ResetScope()
		return nil
	case auditentry.FieldSessionID:
		m.ResetSessionID()
		return nil
	case auditentry.FieldToolName:
		m.ResetToolName()
		return nil
	case auditentry.FieldArguments:
		m.ResetArguments()
		return nil
	case auditentry.FieldResult:
		m.ResetResult()
		return nil
	case auditentry.FieldIsError:
		m.ResetIsError()
		return nil
	case auditentry.FieldAction:
		m.ResetAction()
		return nil
	case auditentry.FieldDurationMs:
		m.ResetDurationMs()
		return nil
	case auditentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AuditEntry edge %s", name)
}

// DedupLogMutation represents an operation that mutates the DedupLog nodes in the graph.
type DedupLogMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	kept_memory_id      *string
	new_memory_content  *string
	new_memory_type     *string
	new_memory_metadata *map[string]interface{}
	kept_memory_content *string
	vector_distance     *float64
	addvector_distance  *float64
	llm_reasoning       *string
	user_id             *string
	group_id            *string
	created_at          *time.Time
	rolled_back         *bool
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*DedupLog, error)
	predicates          []predicate.DedupLog
}

var _ ent.Mutation = (*DedupLogMutation)(nil)

// deduplogOption allows management of the mutation configuration using functional options.
type deduplogOption func(*DedupLogMutation)

// newDedupLogMutation creates new mutation for the DedupLog entity.
func newDedupLogMutation(c config, op Op, opts ...deduplogOption) *DedupLogMutation {
	m := &DedupLogMutation{
		config:        c,
		op:            op,
		typ:           TypeDedupLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDedupLogID sets the ID field of the mutation.
func withDedupLogID(id string) deduplogOption {
	return func(m *DedupLogMutation) {
		var (
			err   error
			once  sync.Once
			value *DedupLog
		)
		m.oldValue = func(ctx context.Context) (*DedupLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DedupLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDedupLog sets the old DedupLog of the mutation.
func withDedupLog(node *DedupLog) deduplogOption {
	return func(m *DedupLogMutation) {
		m.oldValue = func(context.Context) (*DedupLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DedupLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DedupLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DedupLog entities.
func (m *DedupLogMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DedupLogMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DedupLogMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DedupLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKeptMemoryID sets the "kept_memory_id" field.
func (m *DedupLogMutation) SetKeptMemoryID(s string) {
	m.kept_memory_id = &s
}

// KeptMemoryID returns the value of the "kept_memory_id" field in the mutation.
func (m *DedupLogMutation) KeptMemoryID() (r string, exists bool) {
	v := m.kept_memory_id
	if v == nil {
		return
	}
	return *v, true
}

// OldKeptMemoryID returns the old "kept_memory_id" field's value of the DedupLog entity.
// If the DedupLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupLogMutation) OldKeptMemoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeptMemoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeptMemoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeptMemoryID: %w", err)
	}
	return oldValue.KeptMemoryID, nil
}

// ResetKeptMemoryID resets all changes to the "kept_memory_id" field.
func (m *DedupLogMutation) ResetKeptMemoryID() {
	m.kept_memory_id = nil
}

// SetNewMemoryContent sets the "new_memory_content" field.
func (m *DedupLogMutation) SetNewMemoryContent(s string) {
	m.new_memory_content = &s
}

// NewMemoryContent returns the value of the "new_memory_content" field in the mutation.
func (m *DedupLogMutation) NewMemoryContent() (r string, exists bool) {
	v := m.new_memory_content
	if v == nil {
		return
	}
	return *v, true
}

// OldNewMemoryContent returns the old "new_memory_content" field's value of the DedupLog entity.
// If the DedupLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupLogMutation) OldNewMemoryContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewMemoryContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewMemoryContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewMemoryContent: %w", err)
	}
	return oldValue.NewMemoryContent, nil
}

// ResetNewMemoryContent resets all changes to the "new_memory_content" field.
func (m *DedupLogMutation) ResetNewMemoryContent() {
	m.new_memory_content = nil
}

// SetNewMemoryType sets the "new_memory_type" field.
func (m *DedupLogMutation) SetNewMemoryType(s string) {
	m.new_memory_type = &s
}

// NewMemoryType returns the value of the "new_memory_type" field in the mutation.
func (m *DedupLogMutation) NewMemoryType() (r string, exists bool) {
	v := m.new_memory_type
	if v == nil {
		return
	}
	return *v, true
}

// OldNewMemoryType returns the old "new_memory_type" field's value of the DedupLog entity.
// If the DedupLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupLogMutation) OldNewMemoryType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewMemoryType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewMemoryType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewMemoryType: %w", err)
	}
	return oldValue.NewMemoryType, nil
}

// ResetNewMemoryType resets all changes to the "new_memory_type" field.
func (m *DedupLogMutation) ResetNewMemoryType() {
	m.new_memory_type = nil
}

// SetNewMemoryMetadata sets the "new_memory_metadata" field.
func (m *DedupLogMutation) SetNewMemoryMetadata(value map[string]interface{}) {
	m.new_memory_metadata = &value
}

// NewMemoryMetadata returns the value of the "new_memory_metadata" field in the mutation.
func (m *DedupLogMutation) NewMemoryMetadata() (r map[string]interface{}, exists bool) {
	v := m.new_memory_metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldNewMemoryMetadata returns the old "new_memory_metadata" field's value of the DedupLog entity.
// If the DedupLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupLogMutation) OldNewMemoryMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNewMemoryMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNewMemoryMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNewMemoryMetadata: %w", err)
	}
	return oldValue.NewMemoryMetadata, nil
}

// ClearNewMemoryMetadata clears the value of the "new_memory_metadata" field.
func (m *DedupLogMutation) ClearNewMemoryMetadata() {
	m.new_memory_metadata = nil
	m.clearedFields[deduplog.FieldNewMemoryMetadata] = struct{}{}
}

// NewMemoryMetadataCleared returns if the "new_memory_metadata" field was cleared in this mutation.
func (m *DedupLogMutation) NewMemoryMetadataCleared() bool {
	_, ok := m.clearedFields[deduplog.FieldNewMemoryMetadata]
	return ok
}

// ResetNewMemoryMetadata resets all changes to the "new_memory_metadata" field.
func (m *DedupLogMutation) ResetNewMemoryMetadata() {
	m.new_memory_metadata = nil
	delete(m.clearedFields, deduplog.FieldNewMemoryMetadata)
}

// SetKeptMemoryContent sets the "kept_memory_content" field.
func (m *DedupLogMutation) SetKeptMemoryContent(s string) {
	m.kept_memory_content = &s
}

// KeptMemoryContent returns the value of the "kept_memory_content" field in the mutation.
func (m *DedupLogMutation) KeptMemoryContent() (r string, exists bool) {
	v := m.kept_memory_content
	if v == nil {
		return
	}
	return *v, true
}

// OldKeptMemoryContent returns the old "kept_memory_content" field's value of the DedupLog entity.
// If the DedupLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupLogMutation) OldKeptMemoryContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeptMemoryContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeptMemoryContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeptMemoryContent: %w", err)
	}
	return oldValue.KeptMemoryContent, nil
}

// ClearKeptMemoryContent clears the value of the "kept_memory_content" field.
func (m *DedupLogMutation) ClearKeptMemoryContent() {
	m.kept_memory_content = nil
	m.clearedFields[deduplog.FieldKeptMemoryContent] = struct{}{}
}

// KeptMemoryContentCleared returns if the "kept_memory_content" field was cleared in this mutation.
func (m *DedupLogMutation) KeptMemoryContentCleared() bool {
	_, ok := m.clearedFields[deduplog.FieldKeptMemoryContent]
	return ok
}

// ResetKeptMemoryContent resets all changes to the "kept_memory_content" field.
func (m *DedupLogMutation) ResetKeptMemoryContent() {
	m.kept_memory_content = nil
	delete(m.clearedFields, deduplog.FieldKeptMemoryContent)
}

// SetVectorDistance sets the "vector_distance" field.
func (m *DedupLogMutation) SetVectorDistance(f float64) {
	m.vector_distance = &f
	m.addvector_distance = nil
}

// VectorDistance returns the value of the "vector_distance" field in the mutation.
func (m *DedupLogMutation) VectorDistance() (r float64, exists bool) {
	v := m.vector_distance
	if v == nil {
		return
	}
	return *v, true
}

// OldVectorDistance returns the old "vector_distance" field's value of the DedupLog entity.
// If the DedupLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupLogMutation) OldVectorDistance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVectorDistance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVectorDistance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVectorDistance: %w", err)
	}
	return oldValue.VectorDistance, nil
}

// AddVectorDistance adds f to the "vector_distance" field.
func (m *DedupLogMutation) AddVectorDistance(f float64) {
	if m.addvector_distance != nil {
		*m.addvector_distance += f
	} else {
		m.addvector_distance = &f
	}
}

// AddedVectorDistance returns the value that was added to the "vector_distance" field in this mutation.
func (m *DedupLogMutation) AddedVectorDistance() (r float64, exists bool) {
	v := m.addvector_distance
	if v == nil {
		return
	}
	return *v, true
}

// ResetVectorDistance resets all changes to the "vector_distance" field.
func (m *DedupLogMutation) ResetVectorDistance() {
	m.vector_distance = nil
	m.addvector_distance = nil
}

// SetLlmReasoning sets the "llm_reasoning" field.
func (m *DedupLogMutation) SetLlmReasoning(s string) {
	m.llm_reasoning = &s
}

// LlmReasoning returns the value of the "llm_reasoning" field in the mutation.
func (m *DedupLogMutation) LlmReasoning() (r string, exists bool) {
	v := m.llm_reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmReasoning returns the old "llm_reasoning" field's value of the DedupLog entity.
// If the DedupLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupLogMutation) OldLlmReasoning(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmReasoning: %w", err)
	}
	return oldValue.LlmReasoning, nil
}

// ResetLlmReasoning resets all changes to the "llm_reasoning" field.
func (m *DedupLogMutation) ResetLlmReasoning() {
	m.llm_reasoning = nil
}

// SetUserID sets the "user_id" field.
func (m *DedupLogMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *DedupLogMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the DedupLog entity.
// If the DedupLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupLogMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *DedupLogMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[deduplog.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *DedupLogMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[deduplog.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *DedupLogMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, deduplog.FieldUserID)
}

// SetGroupID sets the "group_id" field.
func (m *DedupLogMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *DedupLogMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the DedupLog entity.
// If the DedupLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupLogMutation) OldGroupID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ClearGroupID clears the value of the "group_id" field.
func (m *DedupLogMutation) ClearGroupID() {
	m.group_id = nil
	m.clearedFields[deduplog.FieldGroupID] = struct{}{}
}

// GroupIDCleared returns if the "group_id" field was cleared in this mutation.
func (m *DedupLogMutation) GroupIDCleared() bool {
	_, ok := m.clearedFields[deduplog.FieldGroupID]
	return ok
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *DedupLogMutation) ResetGroupID() {
	m.group_id = nil
	delete(m.clearedFields, deduplog.FieldGroupID)
}

// SetCreatedAt sets the "created_at" field.
func (m *DedupLogMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DedupLogMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DedupLog entity.
// If the DedupLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupLogMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *DedupLogMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRolledBack sets the "rolled_back" field.
func (m *DedupLogMutation) SetRolledBack(b bool) {
	m.rolled_back = &b
}

// RolledBack returns the value of the "rolled_back" field in the mutation.
func (m *DedupLogMutation) RolledBack() (r bool, exists bool) {
	v := m.rolled_back
	if v == nil {
		return
	}
	return *v, true
}

// OldRolledBack returns the old "rolled_back" field's value of the DedupLog entity.
// If the DedupLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DedupLogMutation) OldRolledBack(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRolledBack is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRolledBack requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRolledBack: %w", err)
	}
	return oldValue.RolledBack, nil
}

// ResetRolledBack resets all changes to the "rolled_back" field.
func (m *DedupLogMutation) ResetRolledBack() {
	m.rolled_back = nil
}

// Where appends a list predicates to the DedupLogMutation builder.
func (m *DedupLogMutation) Where(ps ...predicate.DedupLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DedupLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DedupLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DedupLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DedupLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DedupLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DedupLog).
func (m *DedupLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DedupLogMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.kept_memory_id != nil {
		fields = append(fields, deduplog.FieldKeptMemoryID)
	}
	if m.new_memory_content != nil {
		fields = append(fields, deduplog.FieldNewMemoryContent)
	}
	if m.new_memory_type != nil {
		fields = append(fields, deduplog.FieldNewMemoryType)
	}
	if m.new_memory_metadata != nil {
		fields = append(fields, deduplog.FieldNewMemoryMetadata)
	}
	if m.kept_memory_content != nil {
		fields = append(fields, deduplog.FieldKeptMemoryContent)
	}
	if m.vector_distance != nil {
		fields = append(fields, deduplog.FieldVectorDistance)
	}
	if m.llm_reasoning != nil {
		fields = append(fields, deduplog.FieldLlmReasoning)
	}
	if m.user_id != nil {
		fields = append(fields, deduplog.FieldUserID)
	}
	if m.group_id != nil {
		fields = append(fields, deduplog.FieldGroupID)
	}
	if m.created_at != nil {
		fields = append(fields, deduplog.FieldCreatedAt)
	}
	if m.rolled_back != nil {
		fields = append(fields, deduplog.FieldRolledBack)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DedupLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deduplog.FieldKeptMemoryID:
		return m.KeptMemoryID()
	case deduplog.FieldNewMemoryContent:
		return m.NewMemoryContent()
	case deduplog.FieldNewMemoryType:
		return m.NewMemoryType()
	case deduplog.FieldNewMemoryMetadata:
		return m.NewMemoryMetadata()
	case deduplog.FieldKeptMemoryContent:
		return m.KeptMemoryContent()
	case deduplog.FieldVectorDistance:
		return m.VectorDistance()
	case deduplog.FieldLlmReasoning:
		return m.LlmReasoning()
	case deduplog.FieldUserID:
		return m.UserID()
	case deduplog.FieldGroupID:
		return m.GroupID()
	case deduplog.FieldCreatedAt:
		return m.CreatedAt()
	case deduplog.FieldRolledBack:
		return m.RolledBack()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DedupLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deduplog.FieldKeptMemoryID:
		return m.OldKeptMemoryID(ctx)
	case deduplog.FieldNewMemoryContent:
		return m.OldNewMemoryContent(ctx)
	case deduplog.FieldNewMemoryType:
		return m.OldNewMemoryType(ctx)
	case deduplog.FieldNewMemoryMetadata:
		return m.OldNewMemoryMetadata(ctx)
	case deduplog.FieldKeptMemoryContent:
		return m.OldKeptMemoryContent(ctx)
	case deduplog.FieldVectorDistance:
		return m.OldVectorDistance(ctx)
	case deduplog.FieldLlmReasoning:
		return m.OldLlmReasoning(ctx)
	case deduplog.FieldUserID:
		return m.OldUserID(ctx)
	case deduplog.FieldGroupID:
		return m.OldGroupID(ctx)
	case deduplog.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case deduplog.FieldRolledBack:
		return m.OldRolledBack(ctx)
	}
	return nil, fmt.Errorf("unknown DedupLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DedupLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deduplog.FieldKeptMemoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeptMemoryID(v)
		return nil
	case deduplog.FieldNewMemoryContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewMemoryContent(v)
		return nil
	case deduplog.FieldNewMemoryType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewMemoryType(v)
		return nil
	case deduplog.FieldNewMemoryMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNewMemoryMetadata(v)
		return nil
	case deduplog.FieldKeptMemoryContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeptMemoryContent(v)
		return nil
	case deduplog.FieldVectorDistance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVectorDistance(v)
		return nil
	case deduplog.FieldLlmReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmReasoning(v)
		return nil
	case deduplog.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case deduplog.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case deduplog.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case deduplog.FieldRolledBack:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRolledBack(v)
		return nil
	}
	return fmt.Errorf("unknown DedupLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DedupLogMutation) AddedFields() []string {
	var fields []string
	if m.addvector_distance != nil {
		fields = append(fields, deduplog.FieldVectorDistance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DedupLogMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case deduplog.FieldVectorDistance:
		return m.AddedVectorDistance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DedupLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	case deduplog.FieldVectorDistance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVectorDistance(v)
		return nil
	}
	return fmt.Errorf("unknown DedupLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DedupLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deduplog.FieldNewMemoryMetadata) {
		fields = append(fields, deduplog.FieldNewMemoryMetadata)
	}
	if m.FieldCleared(deduplog.FieldKeptMemoryContent) {
		fields = append(fields, deduplog.FieldKeptMemoryContent)
	}
	if m.FieldCleared(deduplog.FieldUserID) {
		fields = append(fields, deduplog.FieldUserID)
	}
	if m.FieldCleared(deduplog.FieldGroupID) {
		fields = append(fields, deduplog.FieldGroupID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DedupLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DedupLogMutation) ClearField(name string) error {
	switch name {
	case deduplog.FieldNewMemoryMetadata:
		m.ClearNewMemoryMetadata()
		return nil
	case deduplog.FieldKeptMemoryContent:
		m.ClearKeptMemoryContent()
		return nil
	case deduplog.FieldUserID:
		m.ClearUserID()
		return nil
	case deduplog.FieldGroupID:
		m.ClearGroupID()
		return nil
	}
	return fmt.Errorf("unknown DedupLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DedupLogMutation) ResetField(name string) error {
	switch name {
	case deduplog.FieldKeptMemoryID:
		m.ResetKeptMemoryID()
		return nil
	case deduplog.FieldNewMemoryContent:
		m.ResetNewMemoryContent()
		return nil
	case deduplog.FieldNewMemoryType:
		m.ResetNewMemoryType()
		return nil
	case deduplog.FieldNewMemoryMetadata:
		m.ResetNewMemoryMetadata()
		return nil
	case deduplog.FieldKeptMemoryContent:
		m.ResetKeptMemoryContent()
		return nil
	case deduplog.FieldVectorDistance:
		m.ResetVectorDistance()
		return nil
	case deduplog.FieldLlmReasoning:
		m.ResetLlmReasoning()
		return nil
	case deduplog.FieldUserID:
		m.ResetUserID()
		return nil
	case deduplog.FieldGroupID:
		m.ResetGroupID()
		return nil
	case deduplog.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case deduplog.FieldRolledBack:
		m.ResetRolledBack()
		return nil
	}
	return fmt.Errorf("unknown DedupLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DedupLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DedupLogMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DedupLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DedupLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DedupLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DedupLogMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DedupLogMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DedupLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DedupLogMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DedupLog edge %s", name)
}

// MemoryEntryMutation represents an operation that mutates the MemoryEntry nodes in the graph.
type MemoryEntryMutation struct {
	config
	op            Op
	typ           string
	id            *string
	user_id       *string
	group_id      *string
	layer         *memoryentry.Layer
	content       *string
	metadata      *map[string]interface{}
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MemoryEntry, error)
	predicates    []predicate.MemoryEntry
}

var _ ent.Mutation = (*MemoryEntryMutation)(nil)

// memoryentryOption allows management of the mutation configuration using functional options.
type memoryentryOption func(*MemoryEntryMutation)

// newMemoryEntryMutation creates new mutation for the MemoryEntry entity.
func newMemoryEntryMutation(c config, op Op, opts ...memoryentryOption) *MemoryEntryMutation {
	m := &MemoryEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeMemoryEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMemoryEntryID sets the ID field of the mutation.
func withMemoryEntryID(id string) memoryentryOption {
	return func(m *MemoryEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *MemoryEntry
		)
		m.oldValue = func(ctx context.Context) (*MemoryEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MemoryEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMemoryEntry sets the old MemoryEntry of the mutation.
func withMemoryEntry(node *MemoryEntry) memoryentryOption {
	return func(m *MemoryEntryMutation) {
		m.oldValue = func(context.Context) (*MemoryEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MemoryEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MemoryEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MemoryEntry entities.
func (m *MemoryEntryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MemoryEntryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MemoryEntryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MemoryEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *MemoryEntryMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *MemoryEntryMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ClearUserID clears the value of the "user_id" field.
func (m *MemoryEntryMutation) ClearUserID() {
	m.user_id = nil
	m.clearedFields[memoryentry.FieldUserID] = struct{}{}
}

// UserIDCleared returns if the "user_id" field was cleared in this mutation.
func (m *MemoryEntryMutation) UserIDCleared() bool {
	_, ok := m.clearedFields[memoryentry.FieldUserID]
	return ok
}

// ResetUserID resets all changes to the "user_id" field.
func (m *MemoryEntryMutation) ResetUserID() {
	m.user_id = nil
	delete(m.clearedFields, memoryentry.FieldUserID)
}

// SetGroupID sets the "group_id" field.
func (m *MemoryEntryMutation) SetGroupID(s string) {
	m.group_id = &s
}

// GroupID returns the value of the "group_id" field in the mutation.
func (m *MemoryEntryMutation) GroupID() (r string, exists bool) {
	v := m.group_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGroupID returns the old "group_id" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldGroupID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGroupID: %w", err)
	}
	return oldValue.GroupID, nil
}

// ClearGroupID clears the value of the "group_id" field.
func (m *MemoryEntryMutation) ClearGroupID() {
	m.group_id = nil
	m.clearedFields[memoryentry.FieldGroupID] = struct{}{}
}

// GroupIDCleared returns if the "group_id" field was cleared in this mutation.
func (m *MemoryEntryMutation) GroupIDCleared() bool {
	_, ok := m.clearedFields[memoryentry.FieldGroupID]
	return ok
}

// ResetGroupID resets all changes to the "group_id" field.
func (m *MemoryEntryMutation) ResetGroupID() {
	m.group_id = nil
	delete(m.clearedFields, memoryentry.FieldGroupID)
}

// SetLayer sets the "layer" field.
func (m *MemoryEntryMutation) SetLayer(value memoryentry.Layer) {
	m.layer = &value
}

// Layer returns the value of the "layer" field in the mutation.
func (m *MemoryEntryMutation) Layer() (r memoryentry.Layer, exists bool) {
	v := m.layer
	if v == nil {
		return
	}
	return *v, true
}

// OldLayer returns the old "layer" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldLayer(ctx context.Context) (v memoryentry.Layer, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLayer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLayer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLayer: %w", err)
	}
	return oldValue.Layer, nil
}

// ResetLayer resets all changes to the "layer" field.
func (m *MemoryEntryMutation) ResetLayer() {
	m.layer = nil
}

// SetContent sets the "content" field.
func (m *MemoryEntryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MemoryEntryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldContent(ctx context.Context) (v string, err error) {
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
func (m *MemoryEntryMutation) ResetContent() {
	m.content = nil
}

// SetMetadata sets the "metadata" field.
func (m *MemoryEntryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *MemoryEntryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *MemoryEntryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[memoryentry.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *MemoryEntryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[memoryentry.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *MemoryEntryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, memoryentry.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *MemoryEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MemoryEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MemoryEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MemoryEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MemoryEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MemoryEntry entity.
// If the MemoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MemoryEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *MemoryEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the MemoryEntryMutation builder.
func (m *MemoryEntryMutation) Where(ps ...predicate.MemoryEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MemoryEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MemoryEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MemoryEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MemoryEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MemoryEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MemoryEntry).
func (m *MemoryEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MemoryEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, memoryentry.FieldUserID)
	}
	if m.group_id != nil {
		fields = append(fields, memoryentry.FieldGroupID)
	}
	if m.layer != nil {
		fields = append(fields, memoryentry.FieldLayer)
	}
	if m.content != nil {
		fields = append(fields, memoryentry.FieldContent)
	}
	if m.metadata != nil {
		fields = append(fields, memoryentry.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, memoryentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, memoryentry.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MemoryEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case memoryentry.FieldUserID:
		return m.UserID()
	case memoryentry.FieldGroupID:
		return m.GroupID()
	case memoryentry.FieldLayer:
		return m.Layer()
	case memoryentry.FieldContent:
		return m.Content()
	case memoryentry.FieldMetadata:
		return m.Metadata()
	case memoryentry.FieldCreatedAt:
		return m.CreatedAt()
	case memoryentry.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MemoryEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case memoryentry.FieldUserID:
		return m.OldUserID(ctx)
	case memoryentry.FieldGroupID:
		return m.OldGroupID(ctx)
	case memoryentry.FieldLayer:
		return m.OldLayer(ctx)
	case memoryentry.FieldContent:
		return m.OldContent(ctx)
	case memoryentry.FieldMetadata:
		return m.OldMetadata(ctx)
	case memoryentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case memoryentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown MemoryEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case memoryentry.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case memoryentry.FieldGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGroupID(v)
		return nil
	case memoryentry.FieldLayer:
		v, ok := value.(memoryentry.Layer)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLayer(v)
		return nil
	case memoryentry.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case memoryentry.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case memoryentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case memoryentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MemoryEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MemoryEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MemoryEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown MemoryEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MemoryEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(memoryentry.FieldUserID) {
		fields = append(fields, memoryentry.FieldUserID)
	}
	if m.FieldCleared(memoryentry.FieldGroupID) {
		fields = append(fields, memoryentry.FieldGroupID)
	}
	if m.FieldCleared(memoryentry.FieldMetadata) {
		fields = append(fields, memoryentry.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MemoryEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MemoryEntryMutation) ClearField(name string) error {
	switch name {
	case memoryentry.FieldUserID:
		m.ClearUserID()
		return nil
	case memoryentry.FieldGroupID:
		m.ClearGroupID()
		return nil
	case memoryentry.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MemoryEntryMutation) ResetField(name string) error {
	switch name {
	case memoryentry.FieldUserID:
		m.ResetUserID()
		return nil
	case memoryentry.FieldGroupID:
		m.ResetGroupID()
		return nil
	case memoryentry.FieldLayer:
		m.ResetLayer()
		return nil
	case memoryentry.FieldContent:
		m.ResetContent()
		return nil
	case memoryentry.FieldMetadata:
		m.ResetMetadata()
		return nil
	case memoryentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case memoryentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown MemoryEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MemoryEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MemoryEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MemoryEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MemoryEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MemoryEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MemoryEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MemoryEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MemoryEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MemoryEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MemoryEntry edge %s", name)
}

// ScheduleMutation represents an operation that mutates the Schedule nodes in the graph.
type ScheduleMutation struct {
	config
	op            Op
	typ           string
	id            *string
	scope         *string
	title         *string
	prompt        *string
	remind_at     *time.Time
	cron_spec     *string
	enabled       *bool
	last_fired_at *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Schedule, error)
	predicates    []predicate.Schedule
}

var _ ent.Mutation = (*ScheduleMutation)(nil)

// scheduleOption allows management of the mutation configuration using functional options.
type scheduleOption func(*ScheduleMutation)

// newScheduleMutation creates new mutation for the Schedule entity.
func newScheduleMutation(c config, op Op, opts ...scheduleOption) *ScheduleMutation {
	m := &ScheduleMutation{
		config:        c,
		op:            op,
		typ:           TypeSchedule,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduleID sets the ID field of the mutation.
func withScheduleID(id string) scheduleOption {
	return func(m *ScheduleMutation) {
		var (
			err   error
			once  sync.Once
			value *Schedule
		)
		m.oldValue = func(ctx context.Context) (*Schedule, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Schedule.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSchedule sets the old Schedule of the mutation.
func withSchedule(node *Schedule) scheduleOption {
	return func(m *ScheduleMutation) {
		m.oldValue = func(context.Context) (*Schedule, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Schedule entities.
func (m *ScheduleMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduleMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduleMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Schedule.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScope sets the "scope" field.
func (m *ScheduleMutation) SetScope(s string) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *ScheduleMutation) Scope() (r string, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldScope(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *ScheduleMutation) ResetScope() {
	m.scope = nil
}

// SetTitle sets the "title" field.
func (m *ScheduleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ScheduleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ScheduleMutation) ResetTitle() {
	m.title = nil
}

// SetPrompt sets the "prompt" field.
func (m *ScheduleMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ScheduleMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ScheduleMutation) ResetPrompt() {
	m.prompt = nil
}

// SetRemindAt sets the "remind_at" field.
func (m *ScheduleMutation) SetRemindAt(t time.Time) {
	m.remind_at = &t
}

// RemindAt returns the value of the "remind_at" field in the mutation.
func (m *ScheduleMutation) RemindAt() (r time.Time, exists bool) {
	v := m.remind_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRemindAt returns the old "remind_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldRemindAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemindAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemindAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemindAt: %w", err)
	}
	return oldValue.RemindAt, nil
}

// ClearRemindAt clears the value of the "remind_at" field.
func (m *ScheduleMutation) ClearRemindAt() {
	m.remind_at = nil
	m.clearedFields[schedule.FieldRemindAt] = struct{}{}
}

// RemindAtCleared returns if the "remind_at" field was cleared in this mutation.
func (m *ScheduleMutation) RemindAtCleared() bool {
	_, ok := m.clearedFields[schedule.FieldRemindAt]
	return ok
}

// ResetRemindAt resets all changes to the "remind_at" field.
func (m *ScheduleMutation) ResetRemindAt() {
	m.remind_at = nil
	delete(m.clearedFields, schedule.FieldRemindAt)
}

// SetCronSpec sets the "cron_spec" field.
func (m *ScheduleMutation) SetCronSpec(s string) {
	m.cron_spec = &s
}

// CronSpec returns the value of the "cron_spec" field in the mutation.
func (m *ScheduleMutation) CronSpec() (r string, exists bool) {
	v := m.cron_spec
	if v == nil {
		return
	}
	return *v, true
}

// OldCronSpec returns the old "cron_spec" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldCronSpec(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCronSpec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCronSpec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCronSpec: %w", err)
	}
	return oldValue.CronSpec, nil
}

// ClearCronSpec clears the value of the "cron_spec" field.
func (m *ScheduleMutation) ClearCronSpec() {
	m.cron_spec = nil
	m.clearedFields[schedule.FieldCronSpec] = struct{}{}
}

// CronSpecCleared returns if the "cron_spec" field was cleared in this mutation.
func (m *ScheduleMutation) CronSpecCleared() bool {
	_, ok := m.clearedFields[schedule.FieldCronSpec]
	return ok
}

// ResetCronSpec resets all changes to the "cron_spec" field.
func (m *ScheduleMutation) ResetCronSpec() {
	m.cron_spec = nil
	delete(m.clearedFields, schedule.FieldCronSpec)
}

// SetEnabled sets the "enabled" field.
func (m *ScheduleMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *ScheduleMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *ScheduleMutation) ResetEnabled() {
	m.enabled = nil
}

// SetLastFiredAt sets the "last_fired_at" field.
func (m *ScheduleMutation) SetLastFiredAt(t time.Time) {
	m.last_fired_at = &t
}

// LastFiredAt returns the value of the "last_fired_at" field in the mutation.
func (m *ScheduleMutation) LastFiredAt() (r time.Time, exists bool) {
	v := m.last_fired_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFiredAt returns the old "last_fired_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldLastFiredAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFiredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFiredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFiredAt: %w", err)
	}
	return oldValue.LastFiredAt, nil
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (m *ScheduleMutation) ClearLastFiredAt() {
	m.last_fired_at = nil
	m.clearedFields[schedule.FieldLastFiredAt] = struct{}{}
}

// LastFiredAtCleared returns if the "last_fired_at" field was cleared in this mutation.
func (m *ScheduleMutation) LastFiredAtCleared() bool {
	_, ok := m.clearedFields[schedule.FieldLastFiredAt]
	return ok
}

// ResetLastFiredAt resets all changes to the "last_fired_at" field.
func (m *ScheduleMutation) ResetLastFiredAt() {
	m.last_fired_at = nil
	delete(m.clearedFields, schedule.FieldLastFiredAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ScheduleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ScheduleMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ScheduleMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Schedule entity.
// If the Schedule object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduleMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ScheduleMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ScheduleMutation builder.
func (m *ScheduleMutation) Where(ps ...predicate.Schedule) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Schedule, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Schedule).
func (m *ScheduleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduleMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.scope != nil {
		fields = append(fields, schedule.FieldScope)
	}
	if m.title != nil {
		fields = append(fields, schedule.FieldTitle)
	}
	if m.prompt != nil {
		fields = append(fields, schedule.FieldPrompt)
	}
	if m.remind_at != nil {
		fields = append(fields, schedule.FieldRemindAt)
	}
	if m.cron_spec != nil {
		fields = append(fields, schedule.FieldCronSpec)
	}
	if m.enabled != nil {
		fields = append(fields, schedule.FieldEnabled)
	}
	if m.last_fired_at != nil {
		fields = append(fields, schedule.FieldLastFiredAt)
	}
	if m.created_at != nil {
		fields = append(fields, schedule.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, schedule.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case schedule.FieldScope:
		return m.Scope()
	case schedule.FieldTitle:
		return m.Title()
	case schedule.FieldPrompt:
		return m.Prompt()
	case schedule.FieldRemindAt:
		return m.RemindAt()
	case schedule.FieldCronSpec:
		return m.CronSpec()
	case schedule.FieldEnabled:
		return m.Enabled()
	case schedule.FieldLastFiredAt:
		return m.LastFiredAt()
	case schedule.FieldCreatedAt:
		return m.CreatedAt()
	case schedule.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case schedule.FieldScope:
		return m.OldScope(ctx)
	case schedule.FieldTitle:
		return m.OldTitle(ctx)
	case schedule.FieldPrompt:
		return m.OldPrompt(ctx)
	case schedule.FieldRemindAt:
		return m.OldRemindAt(ctx)
	case schedule.FieldCronSpec:
		return m.OldCronSpec(ctx)
	case schedule.FieldEnabled:
		return m.OldEnabled(ctx)
	case schedule.FieldLastFiredAt:
		return m.OldLastFiredAt(ctx)
	case schedule.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case schedule.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Schedule field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case schedule.FieldScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case schedule.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case schedule.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case schedule.FieldRemindAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemindAt(v)
		return nil
	case schedule.FieldCronSpec:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCronSpec(v)
		return nil
	case schedule.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case schedule.FieldLastFiredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFiredAt(v)
		return nil
	case schedule.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case schedule.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Schedule field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduleMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduleMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduleMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Schedule numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(schedule.FieldRemindAt) {
		fields = append(fields, schedule.FieldRemindAt)
	}
	if m.FieldCleared(schedule.FieldCronSpec) {
		fields = append(fields, schedule.FieldCronSpec)
	}
	if m.FieldCleared(schedule.FieldLastFiredAt) {
		fields = append(fields, schedule.FieldLastFiredAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduleMutation) ClearField(name string) error {
	switch name {
	case schedule.FieldRemindAt:
		m.ClearRemindAt()
		return nil
	case schedule.FieldCronSpec:
		m.ClearCronSpec()
		return nil
	case schedule.FieldLastFiredAt:
		m.ClearLastFiredAt()
		return nil
	}
	return fmt.Errorf("unknown Schedule nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduleMutation) ResetField(name string) error {
	switch name {
	case schedule.FieldScope:
		m.ResetScope()
		return nil
	case schedule.FieldTitle:
		m.ResetTitle()
		return nil
	case schedule.FieldPrompt:
		m.ResetPrompt()
		return nil
	case schedule.FieldRemindAt:
		m.ResetRemindAt()
		return nil
	case schedule.FieldCronSpec:
		m.ResetCronSpec()
		return nil
	case schedule.FieldEnabled:
		m.ResetEnabled()
		return nil
	case schedule.FieldLastFiredAt:
		m.ResetLastFiredAt()
		return nil
	case schedule.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case schedule.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Schedule field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Schedule unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Schedule edge %s", name)
}

// WorkflowRunMutation represents an operation that mutates the WorkflowRun nodes in the graph.
type WorkflowRunMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	scope               *string
	workflow_name       *string
	status              *workflowrun.Status
	step_results        *map[string]interface{}
	current_step_idx    *int
	addcurrent_step_idx *int
	resume_token        *string
	approve_prompt      *string
	error               *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*WorkflowRun, error)
	predicates          []predicate.WorkflowRun
}

var _ ent.Mutation = (*WorkflowRunMutation)(nil)

// workflowrunOption allows management of the mutation configuration using functional options.
type workflowrunOption func(*WorkflowRunMutation)

// newWorkflowRunMutation creates new mutation for the WorkflowRun entity.
func newWorkflowRunMutation(c config, op Op, opts ...workflowrunOption) *WorkflowRunMutation {
	m := &WorkflowRunMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowRunID sets the ID field of the mutation.
func withWorkflowRunID(id string) workflowrunOption {
	return func(m *WorkflowRunMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowRun
		)
		m.oldValue = func(ctx context.Context) (*WorkflowRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowRun sets the old WorkflowRun of the mutation.
func withWorkflowRun(node *WorkflowRun) workflowrunOption {
	return func(m *WorkflowRunMutation) {
		m.oldValue = func(context.Context) (*WorkflowRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowRun entities.
func (m *WorkflowRunMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowRunMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowRunMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetScope sets the "scope" field.
func (m *WorkflowRunMutation) SetScope(s string) {
	m.scope = &s
}

// Scope returns the value of the "scope" field in the mutation.
func (m *WorkflowRunMutation) Scope() (r string, exists bool) {
	v := m.scope
	if v == nil {
		return
	}
	return *v, true
}

// OldScope returns the old "scope" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldScope(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScope is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScope requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScope: %w", err)
	}
	return oldValue.Scope, nil
}

// ResetScope resets all changes to the "scope" field.
func (m *WorkflowRunMutation) ResetScope() {
	m.scope = nil
}

// SetWorkflowName sets the "workflow_name" field.
func (m *WorkflowRunMutation) SetWorkflowName(s string) {
	m.workflow_name = &s
}

// WorkflowName returns the value of the "workflow_name" field in the mutation.
func (m *WorkflowRunMutation) WorkflowName() (r string, exists bool) {
	v := m.workflow_name
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowName returns the old "workflow_name" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldWorkflowName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowName: %w", err)
	}
	return oldValue.WorkflowName, nil
}

// ResetWorkflowName resets all changes to the "workflow_name" field.
func (m *WorkflowRunMutation) ResetWorkflowName() {
	m.workflow_name = nil
}

// SetStatus sets the "status" field.
func (m *WorkflowRunMutation) SetStatus(w workflowrun.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowRunMutation) Status() (r workflowrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldStatus(ctx context.Context) (v workflowrun.Status, err error) {
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
func (m *WorkflowRunMutation) ResetStatus() {
	m.status = nil
}

// SetStepResults sets the "step_results" field.
func (m *WorkflowRunMutation) SetStepResults(value map[string]interface{}) {
	m.step_results = &value
}

// StepResults returns the value of the "step_results" field in the mutation.
func (m *WorkflowRunMutation) StepResults() (r map[string]interface{}, exists bool) {
	v := m.step_results
	if v == nil {
		return
	}
	return *v, true
}

// OldStepResults returns the old "step_results" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldStepResults(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepResults is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepResults requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepResults: %w", err)
	}
	return oldValue.StepResults, nil
}

// ClearStepResults clears the value of the "step_results" field.
func (m *WorkflowRunMutation) ClearStepResults() {
	m.step_results = nil
	m.clearedFields[workflowrun.FieldStepResults] = struct{}{}
}

// StepResultsCleared returns if the "step_results" field was cleared in this mutation.
func (m *WorkflowRunMutation) StepResultsCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldStepResults]
	return ok
}

// ResetStepResults resets all changes to the "step_results" field.
func (m *WorkflowRunMutation) ResetStepResults() {
	m.step_results = nil
	delete(m.clearedFields, workflowrun.FieldStepResults)
}

// SetCurrentStepIdx sets the "current_step_idx" field.
func (m *WorkflowRunMutation) SetCurrentStepIdx(i int) {
	m.current_step_idx = &i
	m.addcurrent_step_idx = nil
}

// CurrentStepIdx returns the value of the "current_step_idx" field in the mutation.
func (m *WorkflowRunMutation) CurrentStepIdx() (r int, exists bool) {
	v := m.current_step_idx
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentStepIdx returns the old "current_step_idx" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCurrentStepIdx(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentStepIdx is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentStepIdx requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentStepIdx: %w", err)
	}
	return oldValue.CurrentStepIdx, nil
}

// AddCurrentStepIdx adds i to the "current_step_idx" field.
func (m *WorkflowRunMutation) AddCurrentStepIdx(i int) {
	if m.addcurrent_step_idx != nil {
		*m.addcurrent_step_idx += i
	} else {
		m.addcurrent_step_idx = &i
	}
}

// AddedCurrentStepIdx returns the value that was added to the "current_step_idx" field in this mutation.
func (m *WorkflowRunMutation) AddedCurrentStepIdx() (r int, exists bool) {
	v := m.addcurrent_step_idx
	if v == nil {
		return
	}
	return *v, true
}

// ResetCurrentStepIdx resets all changes to the "current_step_idx" field.
func (m *WorkflowRunMutation) ResetCurrentStepIdx() {
	m.current_step_idx = nil
	m.addcurrent_step_idx = nil
}

// SetResumeToken sets the "resume_token" field.
func (m *WorkflowRunMutation) SetResumeToken(s string) {
	m.resume_token = &s
}

// ResumeToken returns the value of the "resume_token" field in the mutation.
func (m *WorkflowRunMutation) ResumeToken() (r string, exists bool) {
	v := m.resume_token
	if v == nil {
		return
	}
	return *v, true
}

// OldResumeToken returns the old "resume_token" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldResumeToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResumeToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResumeToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResumeToken: %w", err)
	}
	return oldValue.ResumeToken, nil
}

// ClearResumeToken clears the value of the "resume_token" field.
func (m *WorkflowRunMutation) ClearResumeToken() {
	m.resume_token = nil
	m.clearedFields[workflowrun.FieldResumeToken] = struct{}{}
}

// ResumeTokenCleared returns if the "resume_token" field was cleared in this mutation.
func (m *WorkflowRunMutation) ResumeTokenCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldResumeToken]
	return ok
}

// ResetResumeToken resets all changes to the "resume_token" field.
func (m *WorkflowRunMutation) ResetResumeToken() {
	m.resume_token = nil
	delete(m.clearedFields, workflowrun.FieldResumeToken)
}

// SetApprovePrompt sets the "approve_prompt" field.
func (m *WorkflowRunMutation) SetApprovePrompt(s string) {
	m.approve_prompt = &s
}

// ApprovePrompt returns the value of the "approve_prompt" field in the mutation.
func (m *WorkflowRunMutation) ApprovePrompt() (r string, exists bool) {
	v := m.approve_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovePrompt returns the old "approve_prompt" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldApprovePrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovePrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovePrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovePrompt: %w", err)
	}
	return oldValue.ApprovePrompt, nil
}

// ClearApprovePrompt clears the value of the "approve_prompt" field.
func (m *WorkflowRunMutation) ClearApprovePrompt() {
	m.approve_prompt = nil
	m.clearedFields[workflowrun.FieldApprovePrompt] = struct{}{}
}

// ApprovePromptCleared returns if the "approve_prompt" field was cleared in this mutation.
func (m *WorkflowRunMutation) ApprovePromptCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldApprovePrompt]
	return ok
}

// ResetApprovePrompt resets all changes to the "approve_prompt" field.
func (m *WorkflowRunMutation) ResetApprovePrompt() {
	m.approve_prompt = nil
	delete(m.clearedFields, workflowrun.FieldApprovePrompt)
}

// SetError sets the "error" field.
func (m *WorkflowRunMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *WorkflowRunMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *WorkflowRunMutation) ClearError() {
	m.error = nil
	m.clearedFields[workflowrun.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *WorkflowRunMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[workflowrun.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *WorkflowRunMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, workflowrun.FieldError)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowRunMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowRunMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WorkflowRunMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowRunMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowRunMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowRun entity.
// If the WorkflowRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowRunMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *WorkflowRunMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the WorkflowRunMutation builder.
func (m *WorkflowRunMutation) Where(ps ...predicate.WorkflowRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowRun).
func (m *WorkflowRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowRunMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.scope != nil {
		fields = append(fields, workflowrun.FieldScope)
	}
	if m.workflow_name != nil {
		fields = append(fields, workflowrun.FieldWorkflowName)
	}
	if m.status != nil {
		fields = append(fields, workflowrun.FieldStatus)
	}
	if m.step_results != nil {
		fields = append(fields, workflowrun.FieldStepResults)
	}
	if m.current_step_idx != nil {
		fields = append(fields, workflowrun.FieldCurrentStepIdx)
	}
	if m.resume_token != nil {
		fields = append(fields, workflowrun.FieldResumeToken)
	}
	if m.approve_prompt != nil {
		fields = append(fields, workflowrun.FieldApprovePrompt)
	}
	if m.error != nil {
		fields = append(fields, workflowrun.FieldError)
	}
	if m.created_at != nil {
		fields = append(fields, workflowrun.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflowrun.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowrun.FieldScope:
		return m.Scope()
	case workflowrun.FieldWorkflowName:
		return m.WorkflowName()
	case workflowrun.FieldStatus:
		return m.Status()
	case workflowrun.FieldStepResults:
		return m.StepResults()
	case workflowrun.FieldCurrentStepIdx:
		return m.CurrentStepIdx()
	case workflowrun.FieldResumeToken:
		return m.ResumeToken()
	case workflowrun.FieldApprovePrompt:
		return m.ApprovePrompt()
	case workflowrun.FieldError:
		return m.Error()
	case workflowrun.FieldCreatedAt:
		return m.CreatedAt()
	case workflowrun.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowrun.FieldScope:
		return m.OldScope(ctx)
	case workflowrun.FieldWorkflowName:
		return m.OldWorkflowName(ctx)
	case workflowrun.FieldStatus:
		return m.OldStatus(ctx)
	case workflowrun.FieldStepResults:
		return m.OldStepResults(ctx)
	case workflowrun.FieldCurrentStepIdx:
		return m.OldCurrentStepIdx(ctx)
	case workflowrun.FieldResumeToken:
		return m.OldResumeToken(ctx)
	case workflowrun.FieldApprovePrompt:
		return m.OldApprovePrompt(ctx)
	case workflowrun.FieldError:
		return m.OldError(ctx)
	case workflowrun.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowrun.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowrun.FieldScope:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScope(v)
		return nil
	case workflowrun.FieldWorkflowName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowName(v)
		return nil
	case workflowrun.FieldStatus:
		v, ok := value.(workflowrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowrun.FieldStepResults:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepResults(v)
		return nil
	case workflowrun.FieldCurrentStepIdx:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentStepIdx(v)
		return nil
	case workflowrun.FieldResumeToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResumeToken(v)
		return nil
	case workflowrun.FieldApprovePrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovePrompt(v)
		return nil
	case workflowrun.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case workflowrun.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowrun.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowRunMutation) AddedFields() []string {
	var fields []string
	if m.addcurrent_step_idx != nil {
		fields = append(fields, workflowrun.FieldCurrentStepIdx)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowrun.FieldCurrentStepIdx:
		return m.AddedCurrentStepIdx()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowrun.FieldCurrentStepIdx:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCurrentStepIdx(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowrun.FieldStepResults) {
		fields = append(fields, workflowrun.FieldStepResults)
	}
	if m.FieldCleared(workflowrun.FieldResumeToken) {
		fields = append(fields, workflowrun.FieldResumeToken)
	}
	if m.FieldCleared(workflowrun.FieldApprovePrompt) {
		fields = append(fields, workflowrun.FieldApprovePrompt)
	}
	if m.FieldCleared(workflowrun.FieldError) {
		fields = append(fields, workflowrun.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowRunMutation) ClearField(name string) error {
	switch name {
	case workflowrun.FieldStepResults:
		m.ClearStepResults()
		return nil
	case workflowrun.FieldResumeToken:
		m.ClearResumeToken()
		return nil
	case workflowrun.FieldApprovePrompt:
		m.ClearApprovePrompt()
		return nil
	case workflowrun.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowRunMutation) ResetField(name string) error {
	switch name {
	case workflowrun.FieldScope:
		m.ResetScope()
		return nil
	case workflowrun.FieldWorkflowName:
		m.ResetWorkflowName()
		return nil
	case workflowrun.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowrun.FieldStepResults:
		m.ResetStepResults()
		return nil
	case workflowrun.FieldCurrentStepIdx:
		m.ResetCurrentStepIdx()
		return nil
	case workflowrun.FieldResumeToken:
		m.ResetResumeToken()
		return nil
	case workflowrun.FieldApprovePrompt:
		m.ResetApprovePrompt()
		return nil
	case workflowrun.FieldError:
		m.ResetError()
		return nil
	case workflowrun.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowrun.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WorkflowRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WorkflowRun edge %s", name)
}
