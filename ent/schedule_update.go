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
	"github.com/hymnly133/prizm/ent/schedule"
)

// ScheduleUpdate is the builder for updating Schedule entities.
type ScheduleUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleMutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (_u *ScheduleUpdate) Where(ps ...predicate.Schedule) *ScheduleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScope sets the "scope" field.
func (_u *ScheduleUpdate) SetScope(v string) *ScheduleUpdate {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableScope(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ScheduleUpdate) SetTitle(v string) *ScheduleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableTitle(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ScheduleUpdate) SetPrompt(v string) *ScheduleUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillablePrompt(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetRemindAt sets the "remind_at" field.
func (_u *ScheduleUpdate) SetRemindAt(v time.Time) *ScheduleUpdate {
	_u.mutation.SetRemindAt(v)
	return _u
}

// SetNillableRemindAt sets the "remind_at" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableRemindAt(v *time.Time) *ScheduleUpdate {
	if v != nil {
		_u.SetRemindAt(*v)
	}
	return _u
}

// ClearRemindAt clears the value of the "remind_at" field.
func (_u *ScheduleUpdate) ClearRemindAt() *ScheduleUpdate {
	_u.mutation.ClearRemindAt()
	return _u
}

// SetCronSpec sets the "cron_spec" field.
func (_u *ScheduleUpdate) SetCronSpec(v string) *ScheduleUpdate {
	_u.mutation.SetCronSpec(v)
	return _u
}

// SetNillableCronSpec sets the "cron_spec" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableCronSpec(v *string) *ScheduleUpdate {
	if v != nil {
		_u.SetCronSpec(*v)
	}
	return _u
}

// ClearCronSpec clears the value of the "cron_spec" field.
func (_u *ScheduleUpdate) ClearCronSpec() *ScheduleUpdate {
	_u.mutation.ClearCronSpec()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduleUpdate) SetEnabled(v bool) *ScheduleUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableEnabled(v *bool) *ScheduleUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_u *ScheduleUpdate) SetLastFiredAt(v time.Time) *ScheduleUpdate {
	_u.mutation.SetLastFiredAt(v)
	return _u
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_u *ScheduleUpdate) SetNillableLastFiredAt(v *time.Time) *ScheduleUpdate {
	if v != nil {
		_u.SetLastFiredAt(*v)
	}
	return _u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (_u *ScheduleUpdate) ClearLastFiredAt() *ScheduleUpdate {
	_u.mutation.ClearLastFiredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduleUpdate) SetUpdatedAt(v time.Time) *ScheduleUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduleMutation object of the builder.
func (_u *ScheduleUpdate) Mutation() *ScheduleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduleUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduleUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ScheduleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Scope(); ok {
		_spec.SetField(schedule.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(schedule.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(schedule.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.RemindAt(); ok {
		_spec.SetField(schedule.FieldRemindAt, field.TypeTime, value)
	}
	if _u.mutation.RemindAtCleared() {
		_spec.ClearField(schedule.FieldRemindAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CronSpec(); ok {
		_spec.SetField(schedule.FieldCronSpec, field.TypeString, value)
	}
	if _u.mutation.CronSpecCleared() {
		_spec.ClearField(schedule.FieldCronSpec, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(schedule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastFiredAt(); ok {
		_spec.SetField(schedule.FieldLastFiredAt, field.TypeTime, value)
	}
	if _u.mutation.LastFiredAtCleared() {
		_spec.ClearField(schedule.FieldLastFiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schedule.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduleUpdateOne is the builder for updating a single Schedule entity.
type ScheduleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleMutation
}

// SetScope sets the "scope" field.
func (_u *ScheduleUpdateOne) SetScope(v string) *ScheduleUpdateOne {
	_u.mutation.SetScope(v)
	return _u
}

// SetNillableScope sets the "scope" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableScope(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetScope(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ScheduleUpdateOne) SetTitle(v string) *ScheduleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableTitle(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *ScheduleUpdateOne) SetPrompt(v string) *ScheduleUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillablePrompt(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetRemindAt sets the "remind_at" field.
func (_u *ScheduleUpdateOne) SetRemindAt(v time.Time) *ScheduleUpdateOne {
	_u.mutation.SetRemindAt(v)
	return _u
}

// SetNillableRemindAt sets the "remind_at" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableRemindAt(v *time.Time) *ScheduleUpdateOne {
	if v != nil {
		_u.SetRemindAt(*v)
	}
	return _u
}

// ClearRemindAt clears the value of the "remind_at" field.
func (_u *ScheduleUpdateOne) ClearRemindAt() *ScheduleUpdateOne {
	_u.mutation.ClearRemindAt()
	return _u
}

// SetCronSpec sets the "cron_spec" field.
func (_u *ScheduleUpdateOne) SetCronSpec(v string) *ScheduleUpdateOne {
	_u.mutation.SetCronSpec(v)
	return _u
}

// SetNillableCronSpec sets the "cron_spec" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableCronSpec(v *string) *ScheduleUpdateOne {
	if v != nil {
		_u.SetCronSpec(*v)
	}
	return _u
}

// ClearCronSpec clears the value of the "cron_spec" field.
func (_u *ScheduleUpdateOne) ClearCronSpec() *ScheduleUpdateOne {
	_u.mutation.ClearCronSpec()
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *ScheduleUpdateOne) SetEnabled(v bool) *ScheduleUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableEnabled(v *bool) *ScheduleUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetLastFiredAt sets the "last_fired_at" field.
func (_u *ScheduleUpdateOne) SetLastFiredAt(v time.Time) *ScheduleUpdateOne {
	_u.mutation.SetLastFiredAt(v)
	return _u
}

// SetNillableLastFiredAt sets the "last_fired_at" field if the given value is not nil.
func (_u *ScheduleUpdateOne) SetNillableLastFiredAt(v *time.Time) *ScheduleUpdateOne {
	if v != nil {
		_u.SetLastFiredAt(*v)
	}
	return _u
}

// ClearLastFiredAt clears the value of the "last_fired_at" field.
func (_u *ScheduleUpdateOne) ClearLastFiredAt() *ScheduleUpdateOne {
	_u.mutation.ClearLastFiredAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduleUpdateOne) SetUpdatedAt(v time.Time) *ScheduleUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ScheduleMutation object of the builder.
func (_u *ScheduleUpdateOne) Mutation() *ScheduleMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduleUpdate builder.
func (_u *ScheduleUpdateOne) Where(ps ...predicate.Schedule) *ScheduleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduleUpdateOne) Select(field string, fields ...string) *ScheduleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Schedule entity.
func (_u *ScheduleUpdateOne) Save(ctx context.Context) (*Schedule, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleUpdateOne) SaveX(ctx context.Context) *Schedule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduleUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := schedule.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ScheduleUpdateOne) sqlSave(ctx context.Context) (_node *Schedule, err error) {
	_spec := sqlgraph.NewUpdateSpec(schedule.Table, schedule.Columns, sqlgraph.NewFieldSpec(schedule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Schedule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, schedule.FieldID)
		for _, f := range fields {
			if !schedule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != schedule.FieldID {
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
		_spec.SetField(schedule.FieldScope, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(schedule.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(schedule.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.RemindAt(); ok {
		_spec.SetField(schedule.FieldRemindAt, field.TypeTime, value)
	}
	if _u.mutation.RemindAtCleared() {
		_spec.ClearField(schedule.FieldRemindAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CronSpec(); ok {
		_spec.SetField(schedule.FieldCronSpec, field.TypeString, value)
	}
	if _u.mutation.CronSpecCleared() {
		_spec.ClearField(schedule.FieldCronSpec, field.TypeString)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(schedule.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastFiredAt(); ok {
		_spec.SetField(schedule.FieldLastFiredAt, field.TypeTime, value)
	}
	if _u.mutation.LastFiredAtCleared() {
		_spec.ClearField(schedule.FieldLastFiredAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(schedule.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Schedule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{schedule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
