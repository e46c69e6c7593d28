// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hymnly133/prizm/ent/auditentry"
	"github.com/hymnly133/prizm/ent/predicate"
)

// AuditEntryUpdate is the builder for updating AuditEntry entities.
type AuditEntryUpdate struct {
	config
	hooks    []Hook
	mutation *AuditEntryMutation
}

// Where appends a list predicates to the AuditEntryUpdate builder.
func (_u *AuditEntryUpdate) Where(ps ...predicate.AuditEntry) *AuditEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScope sets the "scope" field.
func (_u *AuditEntryUpdate) SetScope(v string) *AuditEntryUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableScope(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AuditEntryUpdate) SetSessionID(v string) *AuditEntryUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableSessionID(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *AuditEntryUpdate) ClearSessionID() *AuditEntryUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *AuditEntryUpdate) SetToolName(v string) *AuditEntryUpdate {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableToolName(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *AuditEntryUpdate) SetArguments(v string) *AuditEntryUpdate {
	_u.mutation.SetArguments(v)
	return _u
}

// SetNillableArguments sets the "arguments" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableArguments(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetArguments(*v)
	}
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *AuditEntryUpdate) ClearArguments() *AuditEntryUpdate {
	_u.mutation.ClearArguments()
	return _u
}

// SetResult sets the "result" field.
func (_u *AuditEntryUpdate) SetResult(v string) *AuditEntryUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableResult(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AuditEntryUpdate) ClearResult() *AuditEntryUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetIsError sets the "is_error" field.
func (_u *AuditEntryUpdate) SetIsError(v bool) *AuditEntryUpdate {
	_u.mutation.SetIsError(v)
	return _u
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableIsError(v *bool) *AuditEntryUpdate {
	if v != nil {
		_u.SetIsError(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AuditEntryUpdate) SetAction(v string) *AuditEntryUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableAction(v *string) *AuditEntryUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// ClearAction clears the value of the "action" field.
func (_u *AuditEntryUpdate) ClearAction() *AuditEntryUpdate {
	_u.mutation.ClearAction()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AuditEntryUpdate) SetDurationMs(v int64) *AuditEntryUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AuditEntryUpdate) SetNillableDurationMs(v *int64) *AuditEntryUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AuditEntryUpdate) AddDurationMs(v int64) *AuditEntryUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *AuditEntryUpdate) ClearDurationMs() *AuditEntryUpdate {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_u *AuditEntryUpdate) Mutation() *AuditEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AuditEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AuditEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuditEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditentry.Table, auditentry.Columns, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(auditentry.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(auditentry.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(auditentry.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(auditentry.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(auditentry.FieldArguments, field.TypeString, value)
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(auditentry.FieldArguments, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(auditentry.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(auditentry.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.IsError(); ok {
		_spec.SetField(auditentry.FieldIsError, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(auditentry.FieldAction, field.TypeString, value)
	}
	if _u.mutation.ActionCleared() {
		_spec.ClearField(auditentry.FieldAction, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(auditentry.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(auditentry.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(auditentry.FieldDurationMs, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AuditEntryUpdateOne is the builder for updating a single AuditEntry entity.
type AuditEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AuditEntryMutation
}

// SetScope sets the "scope" field.
func (_u *AuditEntryUpdateOne) SetScope(v string) *AuditEntryUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableScope(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AuditEntryUpdateOne) SetSessionID(v string) *AuditEntryUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableSessionID(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *AuditEntryUpdateOne) ClearSessionID() *AuditEntryUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetToolName sets the "tool_name" field.
func (_u *AuditEntryUpdateOne) SetToolName(v string) *AuditEntryUpdateOne {
	_u.mutation.SetToolName(v)
	return _u
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableToolName(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetToolName(*v)
	}
	return _u
}

// SetArguments sets the "arguments" field.
func (_u *AuditEntryUpdateOne) SetArguments(v string) *AuditEntryUpdateOne {
	_u.mutation.SetArguments(v)
	return _u
}

// SetNillableArguments sets the "arguments" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableArguments(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetArguments(*v)
	}
	return _u
}

// ClearArguments clears the value of the "arguments" field.
func (_u *AuditEntryUpdateOne) ClearArguments() *AuditEntryUpdateOne {
	_u.mutation.ClearArguments()
	return _u
}

// SetResult sets the "result" field.
func (_u *AuditEntryUpdateOne) SetResult(v string) *AuditEntryUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableResult(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *AuditEntryUpdateOne) ClearResult() *AuditEntryUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetIsError sets the "is_error" field.
func (_u *AuditEntryUpdateOne) SetIsError(v bool) *AuditEntryUpdateOne {
	_u.mutation.SetIsError(v)
	return _u
}

// SetNillableIsError sets the "is_error" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableIsError(v *bool) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetIsError(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *AuditEntryUpdateOne) SetAction(v string) *AuditEntryUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableAction(v *string) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// ClearAction clears the value of the "action" field.
func (_u *AuditEntryUpdateOne) ClearAction() *AuditEntryUpdateOne {
	_u.mutation.ClearAction()
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *AuditEntryUpdateOne) SetDurationMs(v int64) *AuditEntryUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *AuditEntryUpdateOne) SetNillableDurationMs(v *int64) *AuditEntryUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *AuditEntryUpdateOne) AddDurationMs(v int64) *AuditEntryUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// ClearDurationMs clears the value of the "duration_ms" field.
func (_u *AuditEntryUpdateOne) ClearDurationMs() *AuditEntryUpdateOne {
	_u.mutation.ClearDurationMs()
	return _u
}

// Mutation returns the AuditEntryMutation object of the builder.
func (_u *AuditEntryUpdateOne) Mutation() *AuditEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the AuditEntryUpdate builder.
func (_u *AuditEntryUpdateOne) Where(ps ...predicate.AuditEntry) *AuditEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AuditEntryUpdateOne) Select(field string, fields ...string) *AuditEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AuditEntry entity.
func (_u *AuditEntryUpdateOne) Save(ctx context.Context) (*AuditEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AuditEntryUpdateOne) SaveX(ctx context.Context) *AuditEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AuditEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AuditEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AuditEntryUpdateOne) sqlSave(ctx context.Context) (_node *AuditEntry, err error) {
	_spec := sqlgraph.NewUpdateSpec(auditentry.Table, auditentry.Columns, sqlgraph.NewFieldSpec(auditentry.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AuditEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, auditentry.FieldID)
		for _, f := range fields {
			if !auditentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != auditentry.FieldID {
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
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(auditentry.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(auditentry.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(auditentry.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.ToolName(); ok {
		_spec.SetField(auditentry.FieldToolName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Arguments(); ok {
		_spec.SetField(auditentry.FieldArguments, field.TypeString, value)
	}
	if _u.mutation.ArgumentsCleared() {
		_spec.ClearField(auditentry.FieldArguments, field.TypeString)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(auditentry.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(auditentry.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.IsError(); ok {
		_spec.SetField(auditentry.FieldIsError, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(auditentry.FieldAction, field.TypeString, value)
	}
	if _u.mutation.ActionCleared() {
		_spec.ClearField(auditentry.FieldAction, field.TypeString)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(auditentry.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(auditentry.FieldDurationMs, field.TypeInt64, value)
	}
	if _u.mutation.DurationMsCleared() {
		_spec.ClearField(auditentry.FieldDurationMs, field.TypeInt64)
	}
	_node = &AuditEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{auditentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
