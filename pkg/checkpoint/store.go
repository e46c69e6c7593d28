// Package checkpoint records which files changed during one chat turn and
// keeps pre-images so a session can be rolled back to an earlier point.
package checkpoint

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hymnly133/prizm/pkg/models"
)

// NewCheckpoint returns a skeleton checkpoint for a turn about to run.
func NewCheckpoint(sessionID string, messageIndex int, userMessage string) models.Checkpoint {
	return models.Checkpoint{
		ID:           "cp-" + uuid.New().String(),
		SessionID:    sessionID,
		MessageIndex: messageIndex,
		UserMessage:  userMessage,
		CreatedAt:    time.Now(),
	}
}

// Complete returns a copy of cp marked completed with the given file
// changes. The input is not modified.
func Complete(cp models.Checkpoint, changes []models.FileChange) models.Checkpoint {
	out := cp
	out.FileChanges = append([]models.FileChange(nil), changes...)
	out.Completed = true
	return out
}

// Store owns per-session snapshot collectors and the on-disk snapshot
// files under <scopeRoot>/.prizm/checkpoints/<sessionId>/<checkpointId>.json.
type Store struct {
	mu         sync.Mutex
	collectors map[string]map[string]string
}

// NewStore creates an empty checkpoint store.
func NewStore() *Store {
	return &Store{collectors: make(map[string]map[string]string)}
}

// InitCollector resets the snapshot collector for a session. Must be
// called at turn entry before any capture.
func (s *Store) InitCollector(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collectors[sessionID] = make(map[string]string)
}

// Capture records the pre-image of a path the first time it is seen in the
// session. A nil content (file did not exist) is stored as the empty
// string. Capturing into an uninitialized collector is a silent no-op.
func (s *Store) Capture(sessionID, path string, content *string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.collectors[sessionID]
	if !ok {
		return
	}
	if _, seen := m[path]; seen {
		return
	}
	if content == nil {
		m[path] = ""
	} else {
		m[path] = *content
	}
}

// Flush returns the collected snapshots and clears the collector. A
// second flush returns an empty map.
func (s *Store) Flush(sessionID string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.collectors[sessionID]
	if !ok {
		return map[string]string{}
	}
	delete(s.collectors, sessionID)
	return m
}

func snapshotPath(scopeRoot, sessionID, checkpointID string) string {
	return filepath.Join(scopeRoot, ".prizm", "checkpoints", sessionID, checkpointID+".json")
}

// WriteSnapshots persists a checkpoint's pre-images. An empty map writes
// nothing.
func (s *Store) WriteSnapshots(scopeRoot, sessionID, checkpointID string, snapshots map[string]string) error {
	if len(snapshots) == 0 {
		return nil
	}
	path := snapshotPath(scopeRoot, sessionID, checkpointID)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating checkpoint dir: %w", err)
	}
	data, err := json.MarshalIndent(snapshots, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshots: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing snapshots: %w", err)
	}
	return nil
}

// LoadSnapshots reads a checkpoint's pre-images. A missing or malformed
// file yields an empty map.
func (s *Store) LoadSnapshots(scopeRoot, sessionID, checkpointID string) map[string]string {
	data, err := os.ReadFile(snapshotPath(scopeRoot, sessionID, checkpointID))
	if err != nil {
		return map[string]string{}
	}
	var out map[string]string
	if err := json.Unmarshal(data, &out); err != nil {
		slog.Warn("Malformed checkpoint snapshot file",
			"session", sessionID, "checkpoint", checkpointID, "error", err)
		return map[string]string{}
	}
	if out == nil {
		out = map[string]string{}
	}
	return out
}

// DeleteSnapshots removes a checkpoint's snapshot file. Missing files are
// not an error.
func (s *Store) DeleteSnapshots(scopeRoot, sessionID, checkpointID string) {
	err := os.Remove(snapshotPath(scopeRoot, sessionID, checkpointID))
	if err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to delete checkpoint snapshots",
			"session", sessionID, "checkpoint", checkpointID, "error", err)
	}
}
