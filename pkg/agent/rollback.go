package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/models"
	"github.com/hymnly133/prizm/pkg/scope"
)

const docSnapshotPrefix = "[doc] "

// RollbackToCheckpoint rewinds a session to the state before the turn that
// created the given checkpoint. The checkpoint itself and every later one
// are removed; messages are truncated to the checkpoint's user message;
// files and documents touched by the discarded turns are restored from
// their pre-images; documents and memories created in the discarded turns
// are deleted. Refused while a turn is in flight.
func (r *Runtime) RollbackToCheckpoint(ctx context.Context, scopeName, sessionID, checkpointID string) error {
	r.mu.Lock()
	_, busy := r.turns[turnKey(scopeName, sessionID)]
	r.mu.Unlock()
	if busy {
		return ErrTurnInFlight
	}

	sess, err := r.store.GetSession(scopeName, sessionID)
	if err != nil {
		return err
	}

	var target *models.Checkpoint
	for _, cp := range sess.Checkpoints {
		if cp.ID == checkpointID {
			target = cp
			break
		}
	}
	if target == nil {
		return fmt.Errorf("checkpoint %s: %w", checkpointID, scope.ErrNotFound)
	}

	// Everything at or after the target's user message is discarded,
	// including the target checkpoint itself.
	var removed []*models.Checkpoint
	for _, cp := range sess.Checkpoints {
		if cp.MessageIndex >= target.MessageIndex {
			removed = append(removed, cp)
		}
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i].MessageIndex < removed[j].MessageIndex })

	removedIDs := make([]string, 0, len(removed))
	for _, cp := range removed {
		removedIDs = append(removedIDs, cp.ID)
	}

	var removedMemIDs []string
	var createdDocIDs []string
	for _, msg := range sess.Messages[target.MessageIndex:] {
		if msg.MemoryRefs != nil {
			removedMemIDs = append(removedMemIDs, msg.MemoryRefs.Created...)
		}
		createdDocIDs = append(createdDocIDs, createdDocumentIDs(msg)...)
	}

	// Pre-images aggregate oldest checkpoint first so each path restores
	// to its state before the earliest discarded change.
	root := r.store.Root(scopeName)
	preImages := make(map[string]string)
	for _, cp := range removed {
		for path, pre := range r.cps.LoadSnapshots(root, sessionID, cp.ID) {
			if _, seen := preImages[path]; !seen {
				preImages[path] = pre
			}
		}
	}

	for _, docID := range createdDocIDs {
		if err := r.store.DeleteDocument(ctx, scopeName, docID); err != nil && !errors.Is(err, scope.ErrNotFound) {
			slog.Warn("Rollback failed to delete created document",
				"session", sessionID, "document", docID, "error", err)
		}
	}

	restored := make([]string, 0, len(preImages))
	for path, pre := range preImages {
		var err error
		if docID, ok := strings.CutPrefix(path, docSnapshotPrefix); ok {
			err = r.store.RestoreDocument(scopeName, docID, pre)
		} else {
			err = r.store.RestoreWorkspaceFile(scopeName, path, pre)
		}
		if err != nil {
			slog.Warn("Rollback failed to restore pre-image",
				"session", sessionID, "path", path, "error", err)
			continue
		}
		restored = append(restored, path)
	}
	sort.Strings(restored)

	if r.mem != nil {
		for _, memID := range removedMemIDs {
			if err := r.mem.DeleteMemory(ctx, memID); err != nil {
				slog.Warn("Rollback failed to delete memory",
					"session", sessionID, "memory", memID, "error", err)
			}
		}
	}

	if _, err := r.store.TruncateMessages(ctx, scopeName, sessionID, target.MessageIndex); err != nil {
		return err
	}
	for _, cp := range removed {
		r.cps.DeleteSnapshots(root, sessionID, cp.ID)
	}

	r.bus.Emit(ctx, bus.EventSessionRolledBack, bus.RollbackPayload{
		Scope:                scopeName,
		SessionID:            sessionID,
		CheckpointID:         checkpointID,
		MessageIndex:         target.MessageIndex,
		RemovedCheckpointIDs: removedIDs,
		RemovedMemoryIDs:     removedMemIDs,
		DeletedDocumentIDs:   createdDocIDs,
		RestoredPaths:        restored,
	})
	return nil
}

// createdDocumentIDs extracts document ids minted by successful
// prizm_create_document calls in one message.
func createdDocumentIDs(msg *models.AgentMessage) []string {
	var ids []string
	for _, part := range msg.Parts {
		if part.Type != models.PartTool || part.ToolName != "prizm_create_document" {
			continue
		}
		if part.IsError || part.Status != models.ToolStatusCompleted {
			continue
		}
		var result struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal([]byte(part.Result), &result); err == nil && result.ID != "" {
			ids = append(ids, result.ID)
		}
	}
	return ids
}
