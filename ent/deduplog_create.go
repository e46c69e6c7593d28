// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hymnly133/prizm/ent/deduplog"
)

// DedupLogCreate is the builder for creating a DedupLog entity.
type DedupLogCreate struct {
	config
	mutation *DedupLogMutation
	hooks    []Hook
}

// SetKeptMemoryID sets the "kept_memory_id" field.
func (_c *DedupLogCreate) SetKeptMemoryID(v string) *DedupLogCreate {
	_c.mutation.SetKeptMemoryID(v)
	return _c
}

// SetNewMemoryContent sets the "new_memory_content" field.
func (_c *DedupLogCreate) SetNewMemoryContent(v string) *DedupLogCreate {
	_c.mutation.SetNewMemoryContent(v)
	return _c
}

// SetNewMemoryType sets the "new_memory_type" field.
func (_c *DedupLogCreate) SetNewMemoryType(v string) *DedupLogCreate {
	_c.mutation.SetNewMemoryType(v)
	return _c
}

// SetNewMemoryMetadata sets the "new_memory_metadata" field.
func (_c *DedupLogCreate) SetNewMemoryMetadata(v map[string]interface{}) *DedupLogCreate {
	_c.mutation.SetNewMemoryMetadata(v)
	return _c
}

// SetKeptMemoryContent sets the "kept_memory_content" field.
func (_c *DedupLogCreate) SetKeptMemoryContent(v string) *DedupLogCreate {
	_c.mutation.SetKeptMemoryContent(v)
	return _c
}

// SetNillableKeptMemoryContent sets the "kept_memory_content" field if the given value is not nil.
func (_c *DedupLogCreate) SetNillableKeptMemoryContent(v *string) *DedupLogCreate {
	if v != nil {
		_c.SetKeptMemoryContent(*v)
	}
	return _c
}

// SetVectorDistance sets the "vector_distance" field.
func (_c *DedupLogCreate) SetVectorDistance(v float64) *DedupLogCreate {
	_c.mutation.SetVectorDistance(v)
	return _c
}

// SetLlmReasoning sets the "llm_reasoning" field.
func (_c *DedupLogCreate) SetLlmReasoning(v string) *DedupLogCreate {
	_c.mutation.SetLlmReasoning(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *DedupLogCreate) SetUserID(v string) *DedupLogCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *DedupLogCreate) SetNillableUserID(v *string) *DedupLogCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetGroupID sets the "group_id" field.
func (_c *DedupLogCreate) SetGroupID(v string) *DedupLogCreate {
	_c.mutation.SetGroupID(v)
	return _c
}

// SetNillableGroupID sets the "group_id" field if the given value is not nil.
func (_c *DedupLogCreate) SetNillableGroupID(v *string) *DedupLogCreate {
	if v != nil {
		_c.SetGroupID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DedupLogCreate) SetCreatedAt(v time.Time) *DedupLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DedupLogCreate) SetNillableCreatedAt(v *time.Time) *DedupLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRolledBack sets the "rolled_back" field.
func (_c *DedupLogCreate) SetRolledBack(v bool) *DedupLogCreate {
	_c.mutation.SetRolledBack(v)
	return _c
}

// SetNillableRolledBack sets the "rolled_back" field if the given value is not nil.
func (_c *DedupLogCreate) SetNillableRolledBack(v *bool) *DedupLogCreate {
	if v != nil {
		_c.SetRolledBack(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DedupLogCreate) SetID(v string) *DedupLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DedupLogMutation object of the builder.
func (_c *DedupLogCreate) Mutation() *DedupLogMutation {
	return _c.mutation
}

// Save creates the DedupLog in the database.
func (_c *DedupLogCreate) Save(ctx context.Context) (*DedupLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DedupLogCreate) SaveX(ctx context.Context) *DedupLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DedupLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DedupLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DedupLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deduplog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.RolledBack(); !ok {
		v := deduplog.DefaultRolledBack
		_c.mutation.SetRolledBack(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DedupLogCreate) check() error {
	if _, ok := _c.mutation.KeptMemoryID(); !ok {
		return &ValidationError{Name: "kept_memory_id", err: errors.New(`ent: missing required field "DedupLog.kept_memory_id"`)}
	}
	if _, ok := _c.mutation.NewMemoryContent(); !ok {
		return &ValidationError{Name: "new_memory_content", err: errors.New(`ent: missing required field "DedupLog.new_memory_content"`)}
	}
	if _, ok := _c.mutation.NewMemoryType(); !ok {
		return &ValidationError{Name: "new_memory_type", err: errors.New(`ent: missing required field "DedupLog.new_memory_type"`)}
	}
	if _, ok := _c.mutation.VectorDistance(); !ok {
		return &ValidationError{Name: "vector_distance", err: errors.New(`ent: missing required field "DedupLog.vector_distance"`)}
	}
	if _, ok := _c.mutation.LlmReasoning(); !ok {
		return &ValidationError{Name: "llm_reasoning", err: errors.New(`ent: missing required field "DedupLog.llm_reasoning"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DedupLog.created_at"`)}
	}
	if _, ok := _c.mutation.RolledBack(); !ok {
		return &ValidationError{Name: "rolled_back", err: errors.New(`ent: missing required field "DedupLog.rolled_back"`)}
	}
	return nil
}

func (_c *DedupLogCreate) sqlSave(ctx context.Context) (*DedupLog, error) {
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
			return nil, fmt.Errorf("unexpected DedupLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DedupLogCreate) createSpec() (*DedupLog, *sqlgraph.CreateSpec) {
	var (
		_node = &DedupLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deduplog.Table, sqlgraph.NewFieldSpec(deduplog.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.KeptMemoryID(); ok {
		_spec.SetField(deduplog.FieldKeptMemoryID, field.TypeString, value)
		_node.KeptMemoryID = value
	}
	if value, ok := _c.mutation.NewMemoryContent(); ok {
		_spec.SetField(deduplog.FieldNewMemoryContent, field.TypeString, value)
		_node.NewMemoryContent = value
	}
	if value, ok := _c.mutation.NewMemoryType(); ok {
		_spec.SetField(deduplog.FieldNewMemoryType, field.TypeString, value)
		_node.NewMemoryType = value
	}
	if value, ok := _c.mutation.NewMemoryMetadata(); ok {
		_spec.SetField(deduplog.FieldNewMemoryMetadata, field.TypeJSON, value)
		_node.NewMemoryMetadata = value
	}
	if value, ok := _c.mutation.KeptMemoryContent(); ok {
		_spec.SetField(deduplog.FieldKeptMemoryContent, field.TypeString, value)
		_node.KeptMemoryContent = value
	}
	if value, ok := _c.mutation.VectorDistance(); ok {
		_spec.SetField(deduplog.FieldVectorDistance, field.TypeFloat64, value)
		_node.VectorDistance = value
	}
	if value, ok := _c.mutation.LlmReasoning(); ok {
		_spec.SetField(deduplog.FieldLlmReasoning, field.TypeString, value)
		_node.LlmReasoning = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(deduplog.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.GroupID(); ok {
		_spec.SetField(deduplog.FieldGroupID, field.TypeString, value)
		_node.GroupID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deduplog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.RolledBack(); ok {
		_spec.SetField(deduplog.FieldRolledBack, field.TypeBool, value)
		_node.RolledBack = value
	}
	return _node, _spec
}

// DedupLogCreateBulk is the builder for creating many DedupLog entities in bulk.
type DedupLogCreateBulk struct {
	config
	err      error
	builders []*DedupLogCreate
}

// Save creates the DedupLog entities in the database.
func (_c *DedupLogCreateBulk) Save(ctx context.Context) ([]*DedupLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DedupLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DedupLogMutation)
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
func (_c *DedupLogCreateBulk) SaveX(ctx context.Context) []*DedupLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DedupLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DedupLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
