package models

import "time"

// FileAction classifies a file change captured by a checkpoint.
type FileAction string

// File change actions.
const (
	FileCreated  FileAction = "created"
	FileModified FileAction = "modified"
	FileMoved    FileAction = "moved"
	FileDeleted  FileAction = "deleted"
)

// FileChange is one entry in a checkpoint's change list.
type FileChange struct {
	Path     string     `json:"path"`
	Action   FileAction `json:"action"`
	FromPath string     `json:"fromPath,omitempty"`
}

// Checkpoint records which files changed during one user turn, keyed by the
// index of the user message that opened the turn. Pre-turn file contents
// (snapshots) are stored off-session keyed by (sessionID, checkpointID).
type Checkpoint struct {
	ID           string       `json:"id"`
	SessionID    string       `json:"sessionId"`
	MessageIndex int          `json:"messageIndex"`
	UserMessage  string       `json:"userMessage"`
	CreatedAt    time.Time    `json:"createdAt"`
	FileChanges  []FileChange `json:"fileChanges,omitempty"`
	Completed    bool         `json:"completed"`
}
