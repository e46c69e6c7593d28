// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hymnly133/prizm/ent/auditentry"
	"github.com/hymnly133/prizm/ent/deduplog"
	"github.com/hymnly133/prizm/ent/memoryentry"
	"github.com/hymnly133/prizm/ent/schedule"
	"github.com/hymnly133/prizm/ent/schema"
	"github.com/hymnly133/prizm/ent/workflowrun"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	auditentryFields := schema.AuditEntry{}.Fields()
	_ = auditentryFields
	// auditentryDescIsError is the schema descriptor for is_error field.
	auditentryDescIsError := auditentryFields[6].Descriptor()
	// auditentry.DefaultIsError holds the default value on creation for the is_error field.
	auditentry.DefaultIsError = auditentryDescIsError.Default.(bool)
	// auditentryDescCreatedAt is the schema descriptor for created_at field.
	auditentryDescCreatedAt := auditentryFields[9].Descriptor()
	// auditentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	auditentry.DefaultCreatedAt = auditentryDescCreatedAt.Default.(func() time.Time)
	deduplogFields := schema.DedupLog{}.Fields()
	_ = deduplogFields
	// deduplogDescCreatedAt is the schema descriptor for created_at field.
	deduplogDescCreatedAt := deduplogFields[10].Descriptor()
	// deduplog.DefaultCreatedAt holds the default value on creation for the created_at field.
	deduplog.DefaultCreatedAt = deduplogDescCreatedAt.Default.(func() time.Time)
	// deduplogDescRolledBack is the schema descriptor for rolled_back field.
	deduplogDescRolledBack := deduplogFields[11].Descriptor()
	// deduplog.DefaultRolledBack holds the default value on creation for the rolled_back field.
	deduplog.DefaultRolledBack = deduplogDescRolledBack.Default.(bool)
	memoryentryFields := schema.MemoryEntry{}.Fields()
	_ = memoryentryFields
	// memoryentryDescCreatedAt is the schema descriptor for created_at field.
	memoryentryDescCreatedAt := memoryentryFields[6].Descriptor()
	// memoryentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	memoryentry.DefaultCreatedAt = memoryentryDescCreatedAt.Default.(func() time.Time)
	// memoryentryDescUpdatedAt is the schema descriptor for updated_at field.
	memoryentryDescUpdatedAt := memoryentryFields[7].Descriptor()
	// memoryentry.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	memoryentry.DefaultUpdatedAt = memoryentryDescUpdatedAt.Default.(func() time.Time)
	// memoryentry.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	memoryentry.UpdateDefaultUpdatedAt = memoryentryDescUpdatedAt.UpdateDefault.(func() time.Time)
	scheduleFields := schema.Schedule{}.Fields()
	_ = scheduleFields
	// scheduleDescEnabled is the schema descriptor for enabled field.
	scheduleDescEnabled := scheduleFields[6].Descriptor()
	// schedule.DefaultEnabled holds the default value on creation for the enabled field.
	schedule.DefaultEnabled = scheduleDescEnabled.Default.(bool)
	// scheduleDescCreatedAt is the schema descriptor for created_at field.
	scheduleDescCreatedAt := scheduleFields[8].Descriptor()
	// schedule.DefaultCreatedAt holds the default value on creation for the created_at field.
	schedule.DefaultCreatedAt = scheduleDescCreatedAt.Default.(func() time.Time)
	// scheduleDescUpdatedAt is the schema descriptor for updated_at field.
	scheduleDescUpdatedAt := scheduleFields[9].Descriptor()
	// schedule.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	schedule.DefaultUpdatedAt = scheduleDescUpdatedAt.Default.(func() time.Time)
	// schedule.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	schedule.UpdateDefaultUpdatedAt = scheduleDescUpdatedAt.UpdateDefault.(func() time.Time)
	workflowrunFields := schema.WorkflowRun{}.Fields()
	_ = workflowrunFields
	// workflowrunDescCurrentStepIdx is the schema descriptor for current_step_idx field.
	workflowrunDescCurrentStepIdx := workflowrunFields[5].Descriptor()
	// workflowrun.DefaultCurrentStepIdx holds the default value on creation for the current_step_idx field.
	workflowrun.DefaultCurrentStepIdx = workflowrunDescCurrentStepIdx.Default.(int)
	// workflowrunDescCreatedAt is the schema descriptor for created_at field.
	workflowrunDescCreatedAt := workflowrunFields[9].Descriptor()
	// workflowrun.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowrun.DefaultCreatedAt = workflowrunDescCreatedAt.Default.(func() time.Time)
	// workflowrunDescUpdatedAt is the schema descriptor for updated_at field.
	workflowrunDescUpdatedAt := workflowrunFields[10].Descriptor()
	// workflowrun.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowrun.DefaultUpdatedAt = workflowrunDescUpdatedAt.Default.(func() time.Time)
	// workflowrun.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowrun.UpdateDefaultUpdatedAt = workflowrunDescUpdatedAt.UpdateDefault.(func() time.Time)
}
