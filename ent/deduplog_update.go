// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hymnly133/prizm/ent/deduplog"
	"github.com/hymnly133/prizm/ent/predicate"
)

// DedupLogUpdate is the builder for updating DedupLog entities.
type DedupLogUpdate struct {
	config
	hooks    []Hook
	mutation *DedupLogMutation
}

// Where appends a list predicates to the DedupLogUpdate builder.
func (_u *DedupLogUpdate) Where(ps ...predicate.DedupLog) *DedupLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKeptMemoryID sets the "kept_memory_id" field.
func (_u *DedupLogUpdate) SetKeptMemoryID(v string) *DedupLogUpdate {
	_u.mutation.SetKeptMemoryID(v)
	return _u
}

// SetNillableKeptMemoryID sets the "kept_memory_id" field if the given value is not nil.
func (_u *DedupLogUpdate) SetNillableKeptMemoryID(v *string) *DedupLogUpdate {
	if v != nil {
		_u.SetKeptMemoryID(*v)
	}
	return _u
}

// SetNewMemoryContent sets the "new_memory_content" field.
func (_u *DedupLogUpdate) SetNewMemoryContent(v string) *DedupLogUpdate {
	_u.mutation.SetNewMemoryContent(v)
	return _u
}

// SetNillableNewMemoryContent sets the "new_memory_content" field if the given value is not nil.
func (_u *DedupLogUpdate) SetNillableNewMemoryContent(v *string) *DedupLogUpdate {
	if v != nil {
		_u.SetNewMemoryContent(*v)
	}
	return _u
}

// SetNewMemoryType sets the "new_memory_type" field.
func (_u *DedupLogUpdate) SetNewMemoryType(v string) *DedupLogUpdate {
	_u.mutation.SetNewMemoryType(v)
	return _u
}

// SetNillableNewMemoryType sets the "new_memory_type" field if the given value is not nil.
func (_u *DedupLogUpdate) SetNillableNewMemoryType(v *string) *DedupLogUpdate {
	if v != nil {
		_u.SetNewMemoryType(*v)
	}
	return _u
}

// SetNewMemoryMetadata sets the "new_memory_metadata" field.
func (_u *DedupLogUpdate) SetNewMemoryMetadata(v map[string]interface{}) *DedupLogUpdate {
	_u.mutation.SetNewMemoryMetadata(v)
	return _u
}

// ClearNewMemoryMetadata clears the value of the "new_memory_metadata" field.
func (_u *DedupLogUpdate) ClearNewMemoryMetadata() *DedupLogUpdate {
	_u.mutation.ClearNewMemoryMetadata()
	return _u
}

// SetKeptMemoryContent sets the "kept_memory_content" field.
func (_u *DedupLogUpdate) SetKeptMemoryContent(v string) *DedupLogUpdate {
	_u.mutation.SetKeptMemoryContent(v)
	return _u
}

// SetNillableKeptMemoryContent sets the "kept_memory_content" field if the given value is not nil.
func (_u *DedupLogUpdate) SetNillableKeptMemoryContent(v *string) *DedupLogUpdate {
	if v != nil {
		_u.SetKeptMemoryContent(*v)
	}
	return _u
}

// ClearKeptMemoryContent clears the value of the "kept_memory_content" field.
func (_u *DedupLogUpdate) ClearKeptMemoryContent() *DedupLogUpdate {
	_u.mutation.ClearKeptMemoryContent()
	return _u
}

// SetVectorDistance sets the "vector_distance" field.
func (_u *DedupLogUpdate) SetVectorDistance(v float64) *DedupLogUpdate {
	_u.mutation.ResetVectorDistance()
	_u.mutation.SetVectorDistance(v)
	return _u
}

// SetNillableVectorDistance sets the "vector_distance" field if the given value is not nil.
func (_u *DedupLogUpdate) SetNillableVectorDistance(v *float64) *DedupLogUpdate {
	if v != nil {
		_u.SetVectorDistance(*v)
	}
	return _u
}

// AddVectorDistance adds value to the "vector_distance" field.
func (_u *DedupLogUpdate) AddVectorDistance(v float64) *DedupLogUpdate {
	_u.mutation.AddVectorDistance(v)
	return _u
}

// SetLlmReasoning sets the "llm_reasoning" field.
func (_u *DedupLogUpdate) SetLlmReasoning(v string) *DedupLogUpdate {
	_u.mutation.SetLlmReasoning(v)
	return _u
}

// SetNillableLlmReasoning sets the "llm_reasoning" field if the given value is not nil.
func (_u *DedupLogUpdate) SetNillableLlmReasoning(v *string) *DedupLogUpdate {
	if v != nil {
		_u.SetLlmReasoning(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DedupLogUpdate) SetUserID(v string) *DedupLogUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DedupLogUpdate) SetNillableUserID(v *string) *DedupLogUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DedupLogUpdate) ClearUserID() *DedupLogUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *DedupLogUpdate) SetGroupID(v string) *DedupLogUpdate {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *DedupLogUpdate) SetNillableGroupID(v *string) *DedupLogUpdate {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *DedupLogUpdate) ClearGroupID() *DedupLogUpdate {
	_u.mutation.ClearGroupID()
	return _u
}

// SetRolledBack sets the "rolled_back" field.
func (_u *DedupLogUpdate) SetRolledBack(v bool) *DedupLogUpdate {
	_u.mutation.SetRolledBack(v)
	return _u
}

// SetNillableRolledBack sets the "rolled_back" field if the given value is not nil.
func (_u *DedupLogUpdate) SetNillableRolledBack(v *bool) *DedupLogUpdate {
	if v != nil {
		_u.SetRolledBack(*v)
	}
	return _u
}

// Mutation returns the DedupLogMutation object of the builder.
func (_u *DedupLogUpdate) Mutation() *DedupLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DedupLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DedupLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DedupLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DedupLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DedupLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(deduplog.Table, deduplog.Columns, sqlgraph.NewFieldSpec(deduplog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.KeptMemoryID(); ok {
		_spec.SetField(deduplog.FieldKeptMemoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewMemoryContent(); ok {
		_spec.SetField(deduplog.FieldNewMemoryContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewMemoryType(); ok {
		_spec.SetField(deduplog.FieldNewMemoryType, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewMemoryMetadata(); ok {
		_spec.SetField(deduplog.FieldNewMemoryMetadata, field.TypeJSON, value)
	}
	if _u.mutation.NewMemoryMetadataCleared() {
		_spec.ClearField(deduplog.FieldNewMemoryMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.KeptMemoryContent(); ok {
		_spec.SetField(deduplog.FieldKeptMemoryContent, field.TypeString, value)
	}
	if _u.mutation.KeptMemoryContentCleared() {
		_spec.ClearField(deduplog.FieldKeptMemoryContent, field.TypeString)
	}
	if value, ok := _u.mutation.VectorDistance(); ok {
		_spec.SetField(deduplog.FieldVectorDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVectorDistance(); ok {
		_spec.AddField(deduplog.FieldVectorDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LlmReasoning(); ok {
		_spec.SetField(deduplog.FieldLlmReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(deduplog.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(deduplog.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(deduplog.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(deduplog.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.RolledBack(); ok {
		_spec.SetField(deduplog.FieldRolledBack, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deduplog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DedupLogUpdateOne is the builder for updating a single DedupLog entity.
type DedupLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DedupLogMutation
}

// SetKeptMemoryID sets the "kept_memory_id" field.
func (_u *DedupLogUpdateOne) SetKeptMemoryID(v string) *DedupLogUpdateOne {
	_u.mutation.SetKeptMemoryID(v)
	return _u
}

// SetNillableKeptMemoryID sets the "kept_memory_id" field if the given value is not nil.
func (_u *DedupLogUpdateOne) SetNillableKeptMemoryID(v *string) *DedupLogUpdateOne {
	if v != nil {
		_u.SetKeptMemoryID(*v)
	}
	return _u
}

// SetNewMemoryContent sets the "new_memory_content" field.
func (_u *DedupLogUpdateOne) SetNewMemoryContent(v string) *DedupLogUpdateOne {
	_u.mutation.SetNewMemoryContent(v)
	return _u
}

// SetNillableNewMemoryContent sets the "new_memory_content" field if the given value is not nil.
func (_u *DedupLogUpdateOne) SetNillableNewMemoryContent(v *string) *DedupLogUpdateOne {
	if v != nil {
		_u.SetNewMemoryContent(*v)
	}
	return _u
}

// SetNewMemoryType sets the "new_memory_type" field.
func (_u *DedupLogUpdateOne) SetNewMemoryType(v string) *DedupLogUpdateOne {
	_u.mutation.SetNewMemoryType(v)
	return _u
}

// SetNillableNewMemoryType sets the "new_memory_type" field if the given value is not nil.
func (_u *DedupLogUpdateOne) SetNillableNewMemoryType(v *string) *DedupLogUpdateOne {
	if v != nil {
		_u.SetNewMemoryType(*v)
	}
	return _u
}

// SetNewMemoryMetadata sets the "new_memory_metadata" field.
func (_u *DedupLogUpdateOne) SetNewMemoryMetadata(v map[string]interface{}) *DedupLogUpdateOne {
	_u.mutation.SetNewMemoryMetadata(v)
	return _u
}

// ClearNewMemoryMetadata clears the value of the "new_memory_metadata" field.
func (_u *DedupLogUpdateOne) ClearNewMemoryMetadata() *DedupLogUpdateOne {
	_u.mutation.ClearNewMemoryMetadata()
	return _u
}

// SetKeptMemoryContent sets the "kept_memory_content" field.
func (_u *DedupLogUpdateOne) SetKeptMemoryContent(v string) *DedupLogUpdateOne {
	_u.mutation.SetKeptMemoryContent(v)
	return _u
}

// SetNillableKeptMemoryContent sets the "kept_memory_content" field if the given value is not nil.
func (_u *DedupLogUpdateOne) SetNillableKeptMemoryContent(v *string) *DedupLogUpdateOne {
	if v != nil {
		_u.SetKeptMemoryContent(*v)
	}
	return _u
}

// ClearKeptMemoryContent clears the value of the "kept_memory_content" field.
func (_u *DedupLogUpdateOne) ClearKeptMemoryContent() *DedupLogUpdateOne {
	_u.mutation.ClearKeptMemoryContent()
	return _u
}

// SetVectorDistance sets the "vector_distance" field.
func (_u *DedupLogUpdateOne) SetVectorDistance(v float64) *DedupLogUpdateOne {
	_u.mutation.ResetVectorDistance()
	_u.mutation.SetVectorDistance(v)
	return _u
}

// SetNillableVectorDistance sets the "vector_distance" field if the given value is not nil.
func (_u *DedupLogUpdateOne) SetNillableVectorDistance(v *float64) *DedupLogUpdateOne {
	if v != nil {
		_u.SetVectorDistance(*v)
	}
	return _u
}

// AddVectorDistance adds value to the "vector_distance" field.
func (_u *DedupLogUpdateOne) AddVectorDistance(v float64) *DedupLogUpdateOne {
	_u.mutation.AddVectorDistance(v)
	return _u
}

// SetLlmReasoning sets the "llm_reasoning" field.
func (_u *DedupLogUpdateOne) SetLlmReasoning(v string) *DedupLogUpdateOne {
	_u.mutation.SetLlmReasoning(v)
	return _u
}

// SetNillableLlmReasoning sets the "llm_reasoning" field if the given value is not nil.
func (_u *DedupLogUpdateOne) SetNillableLlmReasoning(v *string) *DedupLogUpdateOne {
	if v != nil {
		_u.SetLlmReasoning(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DedupLogUpdateOne) SetUserID(v string) *DedupLogUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DedupLogUpdateOne) SetNillableUserID(v *string) *DedupLogUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *DedupLogUpdateOne) ClearUserID() *DedupLogUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetGroupID sets the "group_id" field.
func (_u *DedupLogUpdateOne) SetGroupID(v string) *DedupLogUpdateOne {
	_u.mutation.SetGroupID(v)
	return _u
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_u *DedupLogUpdateOne) SetNillableGroupID(v *string) *DedupLogUpdateOne {
	if v != nil {
		_u.SetGroupID(*v)
	}
	return _u
}

// ClearGroupID clears the value of the "group_id" field.
func (_u *DedupLogUpdateOne) ClearGroupID() *DedupLogUpdateOne {
	_u.mutation.ClearGroupID()
	return _u
}

// SetRolledBack sets the "rolled_back" field.
func (_u *DedupLogUpdateOne) SetRolledBack(v bool) *DedupLogUpdateOne {
	_u.mutation.SetRolledBack(v)
	return _u
}

// SetNillableRolledBack sets the "rolled_back" field if the given value is not nil.
func (_u *DedupLogUpdateOne) SetNillableRolledBack(v *bool) *DedupLogUpdateOne {
	if v != nil {
		_u.SetRolledBack(*v)
	}
	return _u
}

// Mutation returns the DedupLogMutation object of the builder.
func (_u *DedupLogUpdateOne) Mutation() *DedupLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the DedupLogUpdate builder.
func (_u *DedupLogUpdateOne) Where(ps ...predicate.DedupLog) *DedupLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DedupLogUpdateOne) Select(field string, fields ...string) *DedupLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DedupLog entity.
func (_u *DedupLogUpdateOne) Save(ctx context.Context) (*DedupLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DedupLogUpdateOne) SaveX(ctx context.Context) *DedupLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DedupLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DedupLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DedupLogUpdateOne) sqlSave(ctx context.Context) (_node *DedupLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(deduplog.Table, deduplog.Columns, sqlgraph.NewFieldSpec(deduplog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DedupLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deduplog.FieldID)
		for _, f := range fields {
			if !deduplog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deduplog.FieldID {
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
	if value, ok := _u.mutation.KeptMemoryID(); ok {
		_spec.SetField(deduplog.FieldKeptMemoryID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewMemoryContent(); ok {
		_spec.SetField(deduplog.FieldNewMemoryContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewMemoryType(); ok {
		_spec.SetField(deduplog.FieldNewMemoryType, field.TypeString, value)
	}
	if value, ok := _u.mutation.NewMemoryMetadata(); ok {
		_spec.SetField(deduplog.FieldNewMemoryMetadata, field.TypeJSON, value)
	}
	if _u.mutation.NewMemoryMetadataCleared() {
		_spec.ClearField(deduplog.FieldNewMemoryMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.KeptMemoryContent(); ok {
		_spec.SetField(deduplog.FieldKeptMemoryContent, field.TypeString, value)
	}
	if _u.mutation.KeptMemoryContentCleared() {
		_spec.ClearField(deduplog.FieldKeptMemoryContent, field.TypeString)
	}
	if value, ok := _u.mutation.VectorDistance(); ok {
		_spec.SetField(deduplog.FieldVectorDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedVectorDistance(); ok {
		_spec.AddField(deduplog.FieldVectorDistance, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LlmReasoning(); ok {
		_spec.SetField(deduplog.FieldLlmReasoning, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(deduplog.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(deduplog.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.GroupID(); ok {
		_spec.SetField(deduplog.FieldGroupID, field.TypeString, value)
	}
	if _u.mutation.GroupIDCleared() {
		_spec.ClearField(deduplog.FieldGroupID, field.TypeString)
	}
	if value, ok := _u.mutation.RolledBack(); ok {
		_spec.SetField(deduplog.FieldRolledBack, field.TypeBool, value)
	}
	_node = &DedupLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deduplog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
