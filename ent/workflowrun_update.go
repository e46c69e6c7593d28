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
	"github.com/hymnly133/prizm/ent/predicate"
	"github.com/hymnly133/prizm/ent/workflowrun"
)

// WorkflowRunUpdate is the builder for updating WorkflowRun entities.
type WorkflowRunUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowRunMutation
}

// Where appends a list predicates to the WorkflowRunUpdate builder.
func (_u *WorkflowRunUpdate) Where(ps ...predicate.WorkflowRun) *WorkflowRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScope sets the "scope" field.
func (_u *WorkflowRunUpdate) SetScope(v string) *WorkflowRunUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableScope(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetWorkflowName sets the "workflow_name" field.
func (_u *WorkflowRunUpdate) SetWorkflowName(v string) *WorkflowRunUpdate {
	_u.mutation.SetWorkflowName(v)
	return _u
}

// SetNillableWorkflowName sets the "workflow_name" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableWorkflowName(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetWorkflowName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowRunUpdate) SetStatus(v workflowrun.Status) *WorkflowRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableStatus(v *workflowrun.Status) *WorkflowRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStepResults sets the "step_results" field.
func (_u *WorkflowRunUpdate) SetStepResults(v map[string]interface{}) *WorkflowRunUpdate {
	_u.mutation.SetStepResults(v)
	return _u
}

// ClearStepResults clears the value of the "step_results" field.
func (_u *WorkflowRunUpdate) ClearStepResults() *WorkflowRunUpdate {
	_u.mutation.ClearStepResults()
	return _u
}

// SetCurrentStepIdx sets the "current_step_idx" field.
func (_u *WorkflowRunUpdate) SetCurrentStepIdx(v int) *WorkflowRunUpdate {
	_u.mutation.ResetCurrentStepIdx()
	_u.mutation.SetCurrentStepIdx(v)
	return _u
}

// SetNillableCurrentStepIdx sets the "current_step_idx" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableCurrentStepIdx(v *int) *WorkflowRunUpdate {
	if v != nil {
		_u.SetCurrentStepIdx(*v)
	}
	return _u
}

// AddCurrentStepIdx adds value to the "current_step_idx" field.
func (_u *WorkflowRunUpdate) AddCurrentStepIdx(v int) *WorkflowRunUpdate {
	_u.mutation.AddCurrentStepIdx(v)
	return _u
}

// SetResumeToken sets the "resume_token" field.
func (_u *WorkflowRunUpdate) SetResumeToken(v string) *WorkflowRunUpdate {
	_u.mutation.SetResumeToken(v)
	return _u
}

// SetNillableResumeToken sets the "resume_token" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableResumeToken(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetResumeToken(*v)
	}
	return _u
}

// ClearResumeToken clears the value of the "resume_token" field.
func (_u *WorkflowRunUpdate) ClearResumeToken() *WorkflowRunUpdate {
	_u.mutation.ClearResumeToken()
	return _u
}

// SetApprovePrompt sets the "approve_prompt" field.
func (_u *WorkflowRunUpdate) SetApprovePrompt(v string) *WorkflowRunUpdate {
	_u.mutation.SetApprovePrompt(v)
	return _u
}

// SetNillableApprovePrompt sets the "approve_prompt" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableApprovePrompt(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetApprovePrompt(*v)
	}
	return _u
}

// ClearApprovePrompt clears the value of the "approve_prompt" field.
func (_u *WorkflowRunUpdate) ClearApprovePrompt() *WorkflowRunUpdate {
	_u.mutation.ClearApprovePrompt()
	return _u
}

// SetError sets the "error" field.
func (_u *WorkflowRunUpdate) SetError(v string) *WorkflowRunUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *WorkflowRunUpdate) SetNillableError(v *string) *WorkflowRunUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *WorkflowRunUpdate) ClearError() *WorkflowRunUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowRunUpdate) SetUpdatedAt(v time.Time) *WorkflowRunUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_u *WorkflowRunUpdate) Mutation() *WorkflowRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkflowRunUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkflowRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowRunUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowRunUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowrun.Table, workflowrun.Columns, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(workflowrun.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkflowName(); ok {
		_spec.SetField(workflowrun.FieldWorkflowName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StepResults(); ok {
		_spec.SetField(workflowrun.FieldStepResults, field.TypeJSON, value)
	}
	if _u.mutation.StepResultsCleared() {
		_spec.ClearField(workflowrun.FieldStepResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentStepIdx(); ok {
		_spec.SetField(workflowrun.FieldCurrentStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStepIdx(); ok {
		_spec.AddField(workflowrun.FieldCurrentStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResumeToken(); ok {
		_spec.SetField(workflowrun.FieldResumeToken, field.TypeString, value)
	}
	if _u.mutation.ResumeTokenCleared() {
		_spec.ClearField(workflowrun.FieldResumeToken, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovePrompt(); ok {
		_spec.SetField(workflowrun.FieldApprovePrompt, field.TypeString, value)
	}
	if _u.mutation.ApprovePromptCleared() {
		_spec.ClearField(workflowrun.FieldApprovePrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(workflowrun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(workflowrun.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowrun.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkflowRunUpdateOne is the builder for updating a single WorkflowRun entity.
type WorkflowRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowRunMutation
}

// SetScope sets the "scope" field.
func (_u *WorkflowRunUpdateOne) SetScope(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableScope(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetWorkflowName sets the "workflow_name" field.
func (_u *WorkflowRunUpdateOne) SetWorkflowName(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetWorkflowName(v)
	return _u
}

// SetNillableWorkflowName sets the "workflow_name" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableWorkflowName(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetWorkflowName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkflowRunUpdateOne) SetStatus(v workflowrun.Status) *WorkflowRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableStatus(v *workflowrun.Status) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetStepResults sets the "step_results" field.
func (_u *WorkflowRunUpdateOne) SetStepResults(v map[string]interface{}) *WorkflowRunUpdateOne {
	_u.mutation.SetStepResults(v)
	return _u
}

// ClearStepResults clears the value of the "step_results" field.
func (_u *WorkflowRunUpdateOne) ClearStepResults() *WorkflowRunUpdateOne {
	_u.mutation.ClearStepResults()
	return _u
}

// SetCurrentStepIdx sets the "current_step_idx" field.
func (_u *WorkflowRunUpdateOne) SetCurrentStepIdx(v int) *WorkflowRunUpdateOne {
	_u.mutation.ResetCurrentStepIdx()
	_u.mutation.SetCurrentStepIdx(v)
	return _u
}

// SetNillableCurrentStepIdx sets the "current_step_idx" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableCurrentStepIdx(v *int) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetCurrentStepIdx(*v)
	}
	return _u
}

// AddCurrentStepIdx adds value to the "current_step_idx" field.
func (_u *WorkflowRunUpdateOne) AddCurrentStepIdx(v int) *WorkflowRunUpdateOne {
	_u.mutation.AddCurrentStepIdx(v)
	return _u
}

// SetResumeToken sets the "resume_token" field.
func (_u *WorkflowRunUpdateOne) SetResumeToken(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetResumeToken(v)
	return _u
}

// SetNillableResumeToken sets the "resume_token" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableResumeToken(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetResumeToken(*v)
	}
	return _u
}

// ClearResumeToken clears the value of the "resume_token" field.
func (_u *WorkflowRunUpdateOne) ClearResumeToken() *WorkflowRunUpdateOne {
	_u.mutation.ClearResumeToken()
	return _u
}

// SetApprovePrompt sets the "approve_prompt" field.
func (_u *WorkflowRunUpdateOne) SetApprovePrompt(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetApprovePrompt(v)
	return _u
}

// SetNillableApprovePrompt sets the "approve_prompt" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableApprovePrompt(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetApprovePrompt(*v)
	}
	return _u
}

// ClearApprovePrompt clears the value of the "approve_prompt" field.
func (_u *WorkflowRunUpdateOne) ClearApprovePrompt() *WorkflowRunUpdateOne {
	_u.mutation.ClearApprovePrompt()
	return _u
}

// SetError sets the "error" field.
func (_u *WorkflowRunUpdateOne) SetError(v string) *WorkflowRunUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *WorkflowRunUpdateOne) SetNillableError(v *string) *WorkflowRunUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *WorkflowRunUpdateOne) ClearError() *WorkflowRunUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkflowRunUpdateOne) SetUpdatedAt(v time.Time) *WorkflowRunUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the WorkflowRunMutation object of the builder.
func (_u *WorkflowRunUpdateOne) Mutation() *WorkflowRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkflowRunUpdate builder.
func (_u *WorkflowRunUpdateOne) Where(ps ...predicate.WorkflowRun) *WorkflowRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkflowRunUpdateOne) Select(field string, fields ...string) *WorkflowRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkflowRun entity.
func (_u *WorkflowRunUpdateOne) Save(ctx context.Context) (*WorkflowRun, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkflowRunUpdateOne) SaveX(ctx context.Context) *WorkflowRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkflowRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkflowRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkflowRunUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workflowrun.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkflowRunUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workflowrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkflowRunUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowrun.Table, workflowrun.Columns, sqlgraph.NewFieldSpec(workflowrun.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowrun.FieldID)
		for _, f := range fields {
			if !workflowrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowrun.FieldID {
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
		_spec.SetField(workflowrun.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkflowName(); ok {
		_spec.SetField(workflowrun.FieldWorkflowName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workflowrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StepResults(); ok {
		_spec.SetField(workflowrun.FieldStepResults, field.TypeJSON, value)
	}
	if _u.mutation.StepResultsCleared() {
		_spec.ClearField(workflowrun.FieldStepResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.CurrentStepIdx(); ok {
		_spec.SetField(workflowrun.FieldCurrentStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentStepIdx(); ok {
		_spec.AddField(workflowrun.FieldCurrentStepIdx, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ResumeToken(); ok {
		_spec.SetField(workflowrun.FieldResumeToken, field.TypeString, value)
	}
	if _u.mutation.ResumeTokenCleared() {
		_spec.ClearField(workflowrun.FieldResumeToken, field.TypeString)
	}
	if value, ok := _u.mutation.ApprovePrompt(); ok {
		_spec.SetField(workflowrun.FieldApprovePrompt, field.TypeString, value)
	}
	if _u.mutation.ApprovePromptCleared() {
		_spec.ClearField(workflowrun.FieldApprovePrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(workflowrun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(workflowrun.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowrun.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkflowRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
