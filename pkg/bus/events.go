package bus

import "github.com/hymnly133/prizm/pkg/models"

// Event names published by the core. This is a closed set: side-effect
// handlers (audit, locks, memory extraction, WebSocket broadcast, schedule
// reconciliation) subscribe to these names only.
const (
	EventSessionCreated           = "agent:session.created"
	EventSessionDeleted           = "agent:session.deleted"
	EventSessionRolledBack        = "agent:session.rolledBack"
	EventSessionChatStatusChanged = "agent:session.chatStatusChanged"
	EventMessageCompleted         = "agent:message.completed"
	EventSessionCompressing       = "agent:session.compressing"

	EventToolExecuted = "tool:executed"

	EventDocumentSaved         = "document:saved"
	EventDocumentDeleted       = "document:deleted"
	EventDocumentMemoryUpdated = "document:memory.updated"

	EventLockChanged   = "resource:lock.changed"
	EventFileOperation = "file:operation"

	EventTodoMutated      = "todo:mutated"
	EventClipboardMutated = "clipboard:mutated"

	EventBgCompleted = "bg:session.completed"
	EventBgFailed    = "bg:session.failed"
	EventBgTimeout   = "bg:session.timeout"
	EventBgCancelled = "bg:session.cancelled"

	EventScheduleCreated  = "schedule:created"
	EventScheduleUpdated  = "schedule:updated"
	EventScheduleDeleted  = "schedule:deleted"
	EventScheduleReminded = "schedule:reminded"

	EventCronJobCreated  = "cron:job.created"
	EventCronJobExecuted = "cron:job.executed"
	EventCronJobFailed   = "cron:job.failed"

	EventTaskStarted   = "task:started"
	EventTaskCompleted = "task:completed"
	EventTaskFailed    = "task:failed"
	EventTaskCancelled = "task:cancelled"

	EventWorkflowStarted       = "workflow:started"
	EventWorkflowStepCompleted = "workflow:step.completed"
	EventWorkflowPaused        = "workflow:paused"
	EventWorkflowCompleted     = "workflow:completed"
	EventWorkflowFailed        = "workflow:failed"
	EventWorkflowDefRegistered = "workflow:def.registered"
	EventWorkflowDefDeleted    = "workflow:def.deleted"

	EventNotificationRequested = "notification:requested"
)

// SessionPayload accompanies session lifecycle events.
type SessionPayload struct {
	Scope     string             `json:"scope"`
	SessionID string             `json:"sessionId"`
	Kind      models.SessionKind `json:"kind,omitempty"`
}

// RollbackPayload accompanies agent:session.rolledBack.
type RollbackPayload struct {
	Scope                string   `json:"scope"`
	SessionID            string   `json:"sessionId"`
	CheckpointID         string   `json:"checkpointId"`
	MessageIndex         int      `json:"messageIndex"`
	RemovedCheckpointIDs []string `json:"removedCheckpointIds"`
	RemovedMemoryIDs     []string `json:"removedMemoryIds,omitempty"`
	DeletedDocumentIDs   []string `json:"deletedDocumentIds,omitempty"`
	RestoredPaths        []string `json:"restoredPaths,omitempty"`
}

// MessageCompletedPayload accompanies agent:message.completed.
type MessageCompletedPayload struct {
	Scope     string        `json:"scope"`
	SessionID string        `json:"sessionId"`
	MessageID string        `json:"messageId"`
	Role      models.Role   `json:"role"`
	Usage     *models.Usage `json:"usage,omitempty"`
	Stopped   bool          `json:"stopped,omitempty"`
}

// CompressingPayload accompanies agent:session.compressing.
type CompressingPayload struct {
	Scope          string `json:"scope"`
	SessionID      string `json:"sessionId"`
	FromRound      int    `json:"fromRound"`
	ThroughRound   int    `json:"throughRound"`
	SummaryPreview string `json:"summaryPreview,omitempty"`
}

// ToolExecutedPayload accompanies tool:executed. Action carries auxiliary
// semantics such as "force_override" for lock overrides.
type ToolExecutedPayload struct {
	Scope      string `json:"scope"`
	SessionID  string `json:"sessionId"`
	ToolName   string `json:"toolName"`
	Arguments  string `json:"arguments,omitempty"`
	Result     string `json:"result,omitempty"`
	IsError    bool   `json:"isError,omitempty"`
	Action     string `json:"action,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
}

// DocumentPayload accompanies document:* events.
type DocumentPayload struct {
	Scope      string `json:"scope"`
	DocumentID string `json:"documentId"`
	Title      string `json:"title,omitempty"`
	SessionID  string `json:"sessionId,omitempty"`
}

// LockChangedPayload accompanies resource:lock.changed.
type LockChangedPayload struct {
	Scope        string `json:"scope"`
	ResourceType string `json:"resourceType"`
	ResourceID   string `json:"resourceId"`
	SessionID    string `json:"sessionId"`
	Action       string `json:"action"` // "locked" or "unlocked"
}

// FileOperationPayload accompanies file:operation.
type FileOperationPayload struct {
	Scope     string `json:"scope"`
	SessionID string `json:"sessionId,omitempty"`
	Path      string `json:"path"`
	Operation string `json:"operation"` // write, move, delete
	FromPath  string `json:"fromPath,omitempty"`
}

// MutationPayload accompanies todo:mutated and clipboard:mutated.
type MutationPayload struct {
	Scope     string `json:"scope"`
	ID        string `json:"id"`
	Mutation  string `json:"mutation"`
	SessionID string `json:"sessionId,omitempty"`
}

// BgResultPayload accompanies bg:session.* terminal events.
type BgResultPayload struct {
	Scope      string                 `json:"scope"`
	SessionID  string                 `json:"sessionId"`
	Result     string                 `json:"result,omitempty"`
	Error      string                 `json:"error,omitempty"`
	DurationMs int64                  `json:"durationMs,omitempty"`
	Announce   *models.AnnounceTarget `json:"announce,omitempty"`
	Label      string                 `json:"label,omitempty"`
}

// SchedulePayload accompanies schedule:* events.
type SchedulePayload struct {
	Scope      string `json:"scope"`
	ScheduleID string `json:"scheduleId"`
	Title      string `json:"title,omitempty"`
	RemindAt   string `json:"remindAt,omitempty"`
}

// CronJobPayload accompanies cron:job.* events.
type CronJobPayload struct {
	Scope string `json:"scope"`
	JobID string `json:"jobId"`
	Spec  string `json:"spec,omitempty"`
	Error string `json:"error,omitempty"`
}

// TaskPayload accompanies task:* events.
type TaskPayload struct {
	Scope     string `json:"scope"`
	TaskID    string `json:"taskId"`
	SessionID string `json:"sessionId,omitempty"`
	Label     string `json:"label,omitempty"`
	Error     string `json:"error,omitempty"`
}

// WorkflowPayload accompanies workflow:* run events.
type WorkflowPayload struct {
	Scope        string `json:"scope"`
	RunID        string `json:"runId"`
	WorkflowName string `json:"workflowName"`
	StepID       string `json:"stepId,omitempty"`
	Status       string `json:"status,omitempty"`
	Error        string `json:"error,omitempty"`
}

// WorkflowDefPayload accompanies workflow:def.* events.
type WorkflowDefPayload struct {
	Scope string `json:"scope"`
	Name  string `json:"name"`
}

// NotificationPayload accompanies notification:requested.
type NotificationPayload struct {
	Scope   string `json:"scope"`
	Title   string `json:"title"`
	Body    string `json:"body,omitempty"`
	Urgency string `json:"urgency,omitempty"`
}
