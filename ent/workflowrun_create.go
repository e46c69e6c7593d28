// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hymnly133/prizm/ent/workflowrun"
)

// WorkflowRunCreate is the builder for creating a WorkflowRun entity.
type WorkflowRunCreate struct {
	config
	mutation *WorkflowRunMutation
	hooks    []Hook
}

// SetScope sets the "scope" field.
func (_c *WorkflowRunCreate) SetScope(v string) *WorkflowRunCreate {
	_c.mutation.SetScope(v)
	return _c
}

// SetWorkflowName sets the "workflow_name" field.
func (_c *WorkflowRunCreate) SetWorkflowName(v string) *WorkflowRunCreate {
	_c.mutation.SetWorkflowName(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkflowRunCreate) SetStatus(v workflowrun.Status) *WorkflowRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableStatus(v *workflowrun.Status) *WorkflowRunCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetStepResults sets the "step_results" field.
func (_c *WorkflowRunCreate) SetStepResults(v map[string]interface{}) *WorkflowRunCreate {
	_c.mutation.SetStepResults(v)
	return _c
}

// SetCurrentStepIdx sets the "current_step_idx" field.
func (_c *WorkflowRunCreate) SetCurrentStepIdx(v int) *WorkflowRunCreate {
	_c.mutation.SetCurrentStepIdx(v)
	return _c
}

// SetNillableCurrentStepIdx sets the "current_step_idx" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableCurrentStepIdx(v *int) *WorkflowRunCreate {
	if v != nil {
		_c.SetCurrentStepIdx(*v)
	}
	return _c
}

// SetResumeToken sets the "resume_token" field.
func (_c *WorkflowRunCreate) SetResumeToken(v string) *WorkflowRunCreate {
	_c.mutation.SetResumeToken(v)
	return _c
}

// SetNillableResumeToken sets the "resume_token" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableResumeToken(v *string) *WorkflowRunCreate {
	if v != nil {
		_c.SetResumeToken(*v)
	}
	return _c
}

// SetApprovePrompt sets the "approve_prompt" field.
func (_c *WorkflowRunCreate) SetApprovePrompt(v string) *WorkflowRunCreate {
	_c.mutation.SetApprovePrompt(v)
	return _c
}

// SetNillableApprovePrompt sets the "approve_prompt" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableApprovePrompt(v *string) *WorkflowRunCreate {
	if v != nil {
		_c.SetApprovePrompt(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *WorkflowRunCreate) SetError(v string) *WorkflowRunCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableError(v *string) *WorkflowRunCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkflowRunCreate) SetCreatedAt(v time.Time) *WorkflowRunCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableCreatedAt(v *time.Time) *WorkflowRunCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WorkflowRunCreate) SetUpdatedAt(v time.Time) *WorkflowRunCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WorkflowRunCreate) SetNillableUpdatedAt(v *time.Time) *WorkflowRunCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkflowRunCreate) SetID(v string) *WorkflowRunCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_c *WorkflowRunCreate) Mutation() *WorkflowRunMutation {
	return _c.mutation
}

// Save creates the WorkflowRun in the database.
func (_c *WorkflowRunCreate) Save(ctx context.Context) (*WorkflowRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkflowRunCreate) SaveX(ctx context.Context) *WorkflowRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkflowRunCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workflowrun.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentStepIdx(); !ok {
		v := workflowrun.DefaultCurrentStepIdx
		_c.mutation.SetCurrentStepIdx(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workflowrun.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := workflowrun.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkflowRunCreate) check() error {
	if _, ok := _c.mutation.Scope(); !ok {
		return &ValidationError{Name: "scope", err: errors.New(`ent: missing required field "WorkflowRun.scope"`)}
	}
	if _, ok := _c.mutation.WorkflowName(); !ok {
		return &ValidationError{Name: "workflow_name", err: errors.New(`ent: missing required field "WorkflowRun.workflow_name"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workflowrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentStepIdx(); !ok {
		return &ValidationError{Name: "current_step_idx", err: errors.New(`ent: missing required field "WorkflowRun.current_step_idx"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowRun.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowRun.updated_at"`)}
	}
	return nil
}

func (_c *WorkflowRunCreate) sqlSave(ctx context.Context) (*WorkflowRun, error) {
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
			return nil, fmt.Errorf("unexpected WorkflowRun.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkflowRunCreate) createSpec() (*WorkflowRun, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workflowrun.Table, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Scope(); ok {
		_spec.SetField(workflowrun.FieldScope, field.TypeString, value)
		_node.Scope = value
	}
	if value, ok := _c.mutation.WorkflowName(); ok {
		_spec.SetField(workflowrun.FieldWorkflowName, field.TypeString, value)
		_node.WorkflowName = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workflowrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.StepResults(); ok {
		_spec.SetField(workflowrun.FieldStepResults, field.TypeJSON, value)
		_node.StepResults = value
	}
	if value, ok := _c.mutation.CurrentStepIdx(); ok {
		_spec.SetField(workflowrun.FieldCurrentStepIdx, field.TypeInt, value)
		_node.CurrentStepIdx = value
	}
	if value, ok := _c.mutation.ResumeToken(); ok {
		_spec.SetField(workflowrun.FieldResumeToken, field.TypeString, value)
		_node.ResumeToken = &value
	}
	if value, ok := _c.mutation.ApprovePrompt(); ok {
		_spec.SetField(workflowrun.FieldApprovePrompt, field.TypeString, value)
		_node.ApprovePrompt = &value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(workflowrun.FieldError, field.TypeString, value)
		_node.Error = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workflowrun.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowrun.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// WorkflowRunCreateBulk is the builder for creating many WorkflowRun entities in bulk.
type WorkflowRunCreateBulk struct {
	config
	err      error
	builders []*WorkflowRunCreate
}

// Save creates the WorkflowRun entities in the database.
func (_c *WorkflowRunCreateBulk) Save(ctx context.Context) ([]*WorkflowRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkflowRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowRunMutation)
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
func (_c *WorkflowRunCreateBulk) SaveX(ctx context.Context) []*WorkflowRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkflowRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkflowRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
