// Package models contains the shared data model for the workspace core:
// agent sessions, messages, checkpoints, background metadata, and the
// streaming chunk types produced by a chat turn.
package models

import (
	"fmt"
	"time"
)

// SessionKind classifies an agent session.
type SessionKind string

// Session kinds.
const (
	SessionKindInteractive SessionKind = "interactive"
	SessionKindBackground  SessionKind = "background"
	SessionKindTool        SessionKind = "tool"
)

// BgStatus is the lifecycle status of a background session.
type BgStatus string

// Background session statuses. Terminal statuses are sticky: once a session
// reaches one of them it never transitions back to pending/running.
const (
	BgStatusPending   BgStatus = "pending"
	BgStatusRunning   BgStatus = "running"
	BgStatusCompleted BgStatus = "completed"
	BgStatusFailed    BgStatus = "failed"
	BgStatusCancelled BgStatus = "cancelled"
	BgStatusTimeout   BgStatus = "timeout"
)

// IsTerminal reports whether the status is a terminal (sticky) state.
func (s BgStatus) IsTerminal() bool {
	switch s {
	case BgStatusCompleted, BgStatusFailed, BgStatusCancelled, BgStatusTimeout:
		return true
	}
	return false
}

// TriggerType identifies what spawned a background session.
type TriggerType string

// Background trigger types.
const (
	TriggerToolSpawn      TriggerType = "tool_spawn"
	TriggerAPI            TriggerType = "api"
	TriggerLLM            TriggerType = "llm"
	TriggerCron           TriggerType = "cron"
	TriggerScheduleRemind TriggerType = "schedule_remind"
	TriggerWorkflow       TriggerType = "workflow"
)

// MemoryPolicy controls which memory extraction passes are skipped for a
// session. The zero value skips nothing (interactive default).
type MemoryPolicy struct {
	SkipPerRoundExtract       bool `json:"skipPerRoundExtract"`
	SkipNarrativeBatchExtract bool `json:"skipNarrativeBatchExtract"`
	SkipDocumentExtract       bool `json:"skipDocumentExtract"`
	SkipConversationSummary   bool `json:"skipConversationSummary"`
}

// MemoryPolicyOverride is a partial MemoryPolicy: nil fields inherit the
// default for the session kind instead of replacing it.
type MemoryPolicyOverride struct {
	SkipPerRoundExtract       *bool `json:"skipPerRoundExtract,omitempty"`
	SkipNarrativeBatchExtract *bool `json:"skipNarrativeBatchExtract,omitempty"`
	SkipDocumentExtract       *bool `json:"skipDocumentExtract,omitempty"`
	SkipConversationSummary   *bool `json:"skipConversationSummary,omitempty"`
}

// BackgroundMemoryDefaults is the memory policy applied to background
// sessions before any override.
func BackgroundMemoryDefaults() MemoryPolicy {
	return MemoryPolicy{
		SkipPerRoundExtract:       true,
		SkipNarrativeBatchExtract: true,
		SkipDocumentExtract:       false,
		SkipConversationSummary:   true,
	}
}

// Merge applies a partial override on top of a base policy. Fields the
// override leaves nil keep the base value.
func (p MemoryPolicy) Merge(o *MemoryPolicyOverride) MemoryPolicy {
	if o == nil {
		return p
	}
	merged := p
	if o.SkipPerRoundExtract != nil {
		merged.SkipPerRoundExtract = *o.SkipPerRoundExtract
	}
	if o.SkipNarrativeBatchExtract != nil {
		merged.SkipNarrativeBatchExtract = *o.SkipNarrativeBatchExtract
	}
	if o.SkipDocumentExtract != nil {
		merged.SkipDocumentExtract = *o.SkipDocumentExtract
	}
	if o.SkipConversationSummary != nil {
		merged.SkipConversationSummary = *o.SkipConversationSummary
	}
	return merged
}

// AnnounceTarget identifies the parent session that receives a synthetic
// system message when a background session completes.
type AnnounceTarget struct {
	Scope     string `json:"scope"`
	SessionID string `json:"sessionId"`
}

// BgMeta is the metadata attached to background sessions.
type BgMeta struct {
	TriggerType     TriggerType     `json:"triggerType"`
	ParentSessionID string          `json:"parentSessionId,omitempty"`
	Depth           int             `json:"depth"`
	Label           string          `json:"label,omitempty"`
	TimeoutMs       int64           `json:"timeoutMs,omitempty"`
	AnnounceTarget  *AnnounceTarget `json:"announceTarget,omitempty"`
	MemoryPolicy    MemoryPolicy    `json:"memoryPolicy"`
}

// AgentSession is an ordered sequence of messages plus session metadata.
// The scope store owns persistence; the agent runtime exclusively mutates the
// tail of Messages during a turn.
type AgentSession struct {
	ID                     string       `json:"id"`
	Scope                  string       `json:"scope"`
	Kind                   SessionKind  `json:"kind"`
	Title                  string       `json:"title,omitempty"`
	BgMeta                 *BgMeta      `json:"bgMeta,omitempty"`
	BgStatus               BgStatus     `json:"bgStatus,omitempty"`
	BgResult               string       `json:"bgResult,omitempty"`
	Messages               []*AgentMessage `json:"messages"`
	StartedAt              time.Time    `json:"startedAt"`
	FinishedAt             *time.Time   `json:"finishedAt,omitempty"`
	CompressedThroughRound int          `json:"compressedThroughRound"`
	CompressionSummaries   []string     `json:"compressionSummaries,omitempty"`
	GrantedPaths           []string     `json:"grantedPaths,omitempty"`
	AllowedTools           []string     `json:"allowedTools,omitempty"`
	AllowedMCPServerIDs    []string     `json:"allowedMcpServerIds,omitempty"`
	Checkpoints            []*Checkpoint `json:"checkpoints,omitempty"`
	LLMSummary             string       `json:"llmSummary,omitempty"`
}

// Validate rejects sessions whose shape violates the model invariants.
// Called by the scope store at load time so inconsistent sessions never
// reach the runtime.
func (s *AgentSession) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("session has no id")
	}
	if s.Scope == "" {
		return fmt.Errorf("session %s has no scope", s.ID)
	}
	isBackground := s.Kind == SessionKindBackground
	if isBackground && s.BgMeta == nil {
		return fmt.Errorf("session %s: kind=background requires bgMeta", s.ID)
	}
	if !isBackground && s.BgMeta != nil {
		return fmt.Errorf("session %s: bgMeta present on %s session", s.ID, s.Kind)
	}
	prevIdx := -1
	for _, cp := range s.Checkpoints {
		if cp.MessageIndex <= prevIdx {
			return fmt.Errorf("session %s: checkpoints not strictly increasing at %s", s.ID, cp.ID)
		}
		if cp.MessageIndex >= len(s.Messages) {
			return fmt.Errorf("session %s: checkpoint %s index %d out of range", s.ID, cp.ID, cp.MessageIndex)
		}
		prevIdx = cp.MessageIndex
	}
	return nil
}

// CompleteRounds counts finished user→assistant rounds in the session.
func (s *AgentSession) CompleteRounds() int {
	n := 0
	for _, m := range s.Messages {
		if m.Role == RoleAssistant {
			n++
		}
	}
	return n
}

// SetBgStatus applies a background status transition, refusing to move out of
// a terminal state. Returns false if the transition was rejected.
func (s *AgentSession) SetBgStatus(next BgStatus) bool {
	if s.BgStatus.IsTerminal() {
		return false
	}
	s.BgStatus = next
	return true
}
