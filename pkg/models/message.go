package models

import "time"

// Role is the author role of an agent message.
type Role string

// Message roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
	RoleTool      Role = "tool"
)

// PartType discriminates message parts.
type PartType string

// Part types.
const (
	PartText PartType = "text"
	PartTool PartType = "tool"
)

// ToolStatus is the lifecycle status of a tool part.
type ToolStatus string

// Tool part statuses.
const (
	ToolStatusPreparing ToolStatus = "preparing"
	ToolStatusRunning   ToolStatus = "running"
	ToolStatusCompleted ToolStatus = "completed"
	ToolStatusError     ToolStatus = "error"
	ToolStatusCancelled ToolStatus = "cancelled"
)

// IsTerminal reports whether the status is final. Terminal tool statuses
// never regress to preparing/running.
func (s ToolStatus) IsTerminal() bool {
	switch s {
	case ToolStatusCompleted, ToolStatusError, ToolStatusCancelled:
		return true
	}
	return false
}

// MessagePart is one segment of an agent message: either accumulated text or
// a tool invocation identified by ToolID.
type MessagePart struct {
	Type      PartType   `json:"type"`
	Content   string     `json:"content,omitempty"`
	ToolID    string     `json:"id,omitempty"`
	ToolName  string     `json:"name,omitempty"`
	Arguments string     `json:"arguments,omitempty"`
	Result    string     `json:"result,omitempty"`
	Status    ToolStatus `json:"status,omitempty"`
	IsError   bool       `json:"isError,omitempty"`
}

// Usage aggregates token consumption for one turn.
type Usage struct {
	InputTokens  int `json:"inputTokens"`
	OutputTokens int `json:"outputTokens"`
	TotalTokens  int `json:"totalTokens"`
}

// Add accumulates another usage record.
func (u *Usage) Add(other Usage) {
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.TotalTokens += other.TotalTokens
}

// MemoryRefs records the memory rows a turn touched: ids injected into the
// prompt and ids created by extraction. Stored as opaque ids, not pointers.
type MemoryRefs struct {
	Injected []string `json:"injected,omitempty"`
	Created  []string `json:"created,omitempty"`
}

// AgentMessage is one message in a session. Parts are ordered; tool part ids
// are unique within a message.
type AgentMessage struct {
	ID         string         `json:"id"`
	Role       Role           `json:"role"`
	Parts      []*MessagePart `json:"parts"`
	CreatedAt  time.Time      `json:"createdAt"`
	Model      string         `json:"model,omitempty"`
	Usage      *Usage         `json:"usage,omitempty"`
	Reasoning  string         `json:"reasoning,omitempty"`
	MemoryRefs *MemoryRefs    `json:"memoryRefs,omitempty"`
	Stopped    bool           `json:"stopped,omitempty"`
}

// Text concatenates the text parts of the message.
func (m *AgentMessage) Text() string {
	out := ""
	for _, p := range m.Parts {
		if p.Type == PartText {
			out += p.Content
		}
	}
	return out
}

// ToolPart returns the tool part with the given id, or nil.
func (m *AgentMessage) ToolPart(id string) *MessagePart {
	for _, p := range m.Parts {
		if p.Type == PartTool && p.ToolID == id {
			return p
		}
	}
	return nil
}

// MergeToolPart upserts a tool part by id. Updates are merge-by-id: non-empty
// fields of the update overwrite, and the status transition is monotonic: a
// part already in a terminal status ignores attempts to move it back to
// preparing/running.
func (m *AgentMessage) MergeToolPart(update MessagePart) *MessagePart {
	existing := m.ToolPart(update.ToolID)
	if existing == nil {
		part := update
		part.Type = PartTool
		m.Parts = append(m.Parts, &part)
		return &part
	}
	if update.ToolName != "" {
		existing.ToolName = update.ToolName
	}
	if update.Arguments != "" {
		existing.Arguments = update.Arguments
	}
	if update.Result != "" {
		existing.Result = update.Result
	}
	if update.Status != "" {
		if !(existing.Status.IsTerminal() && !update.Status.IsTerminal()) {
			existing.Status = update.Status
		}
	}
	if update.IsError {
		existing.IsError = true
	}
	return existing
}

// AppendText appends content to a trailing text part, creating one if the
// last part is not text.
func (m *AgentMessage) AppendText(content string) {
	if content == "" {
		return
	}
	if n := len(m.Parts); n > 0 && m.Parts[n-1].Type == PartText {
		m.Parts[n-1].Content += content
		return
	}
	m.Parts = append(m.Parts, &MessagePart{Type: PartText, Content: content})
}
