// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "scope", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "tool_name", Type: field.TypeString},
		{Name: "arguments", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "is_error", Type: field.TypeBool, Default: false},
		{Name: "action", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_scope_session_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[1], AuditEntriesColumns[2]},
			},
			{
				Name:    "auditentry_tool_name",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[3]},
			},
			{
				Name:    "auditentry_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[9]},
			},
		},
	}
	// DedupLogsColumns holds the columns for the "dedup_logs" table.
	DedupLogsColumns = []*schema.Column{
		{Name: "log_id", Type: field.TypeString, Unique: true},
		{Name: "kept_memory_id", Type: field.TypeString},
		{Name: "new_memory_content", Type: field.TypeString, Size: 2147483647},
		{Name: "new_memory_type", Type: field.TypeString},
		{Name: "new_memory_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "kept_memory_content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "vector_distance", Type: field.TypeFloat64},
		{Name: "llm_reasoning", Type: field.TypeString, Size: 2147483647},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "group_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "rolled_back", Type: field.TypeBool, Default: false},
	}
	// DedupLogsTable holds the schema information for the "dedup_logs" table.
	DedupLogsTable = &schema.Table{
		Name:       "dedup_logs",
		Columns:    DedupLogsColumns,
		PrimaryKey: []*schema.Column{DedupLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deduplog_kept_memory_id",
				Unique:  false,
				Columns: []*schema.Column{DedupLogsColumns[1]},
			},
			{
				Name:    "deduplog_group_id",
				Unique:  false,
				Columns: []*schema.Column{DedupLogsColumns[9]},
			},
			{
				Name:    "deduplog_created_at",
				Unique:  false,
				Columns: []*schema.Column{DedupLogsColumns[10]},
			},
		},
	}
	// MemoryEntriesColumns holds the columns for the "memory_entries" table.
	MemoryEntriesColumns = []*schema.Column{
		{Name: "memory_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString, Nullable: true},
		{Name: "group_id", Type: field.TypeString, Nullable: true},
		{Name: "layer", Type: field.TypeEnum, Enums: []string{"profile", "episodic", "foresight", "event_log", "document"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// MemoryEntriesTable holds the schema information for the "memory_entries" table.
	MemoryEntriesTable = &schema.Table{
		Name:       "memory_entries",
		Columns:    MemoryEntriesColumns,
		PrimaryKey: []*schema.Column{MemoryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "memoryentry_group_id",
				Unique:  false,
				Columns: []*schema.Column{MemoryEntriesColumns[2]},
			},
			{
				Name:    "memoryentry_layer",
				Unique:  false,
				Columns: []*schema.Column{MemoryEntriesColumns[3]},
			},
			{
				Name:    "memoryentry_user_id",
				Unique:  false,
				Columns: []*schema.Column{MemoryEntriesColumns[1]},
			},
			{
				Name:    "memoryentry_updated_at",
				Unique:  false,
				Columns: []*schema.Column{MemoryEntriesColumns[7]},
			},
		},
	}
	// SchedulesColumns holds the columns for the "schedules" table.
	SchedulesColumns = []*schema.Column{
		{Name: "schedule_id", Type: field.TypeString, Unique: true},
		{Name: "scope", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "remind_at", Type: field.TypeTime, Nullable: true},
		{Name: "cron_spec", Type: field.TypeString, Nullable: true},
		{Name: "enabled", Type: field.TypeBool, Default: true},
		{Name: "last_fired_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SchedulesTable holds the schema information for the "schedules" table.
	SchedulesTable = &schema.Table{
		Name:       "schedules",
		Columns:    SchedulesColumns,
		PrimaryKey: []*schema.Column{SchedulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "schedule_scope",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[1]},
			},
			{
				Name:    "schedule_enabled",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[6]},
			},
			{
				Name:    "schedule_remind_at",
				Unique:  false,
				Columns: []*schema.Column{SchedulesColumns[4]},
			},
		},
	}
	// WorkflowRunsColumns holds the columns for the "workflow_runs" table.
	WorkflowRunsColumns = []*schema.Column{
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "scope", Type: field.TypeString},
		{Name: "workflow_name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "paused", "completed", "failed", "cancelled"}, Default: "running"},
		{Name: "step_results", Type: field.TypeJSON, Nullable: true},
		{Name: "current_step_idx", Type: field.TypeInt, Default: 0},
		{Name: "resume_token", Type: field.TypeString, Nullable: true},
		{Name: "approve_prompt", Type: field.TypeString, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// WorkflowRunsTable holds the schema information for the "workflow_runs" table.
	WorkflowRunsTable = &schema.Table{
		Name:       "workflow_runs",
		Columns:    WorkflowRunsColumns,
		PrimaryKey: []*schema.Column{WorkflowRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "workflowrun_scope_workflow_name",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[1], WorkflowRunsColumns[2]},
			},
			{
				Name:    "workflowrun_status",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[3]},
			},
			{
				Name:    "workflowrun_created_at",
				Unique:  false,
				Columns: []*schema.Column{WorkflowRunsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditEntriesTable,
		DedupLogsTable,
		MemoryEntriesTable,
		SchedulesTable,
		WorkflowRunsTable,
	}
)

func init() {
}
