package scope

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hymnly133/prizm/pkg/bus"
)

// ClipboardEntry is a shared text snippet stored under .prizm/clipboard/.
type ClipboardEntry struct {
	ID        string    `json:"id" yaml:"id"`
	Label     string    `json:"label,omitempty" yaml:"label,omitempty"`
	SessionID string    `json:"sessionId,omitempty" yaml:"sessionId,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	Content   string    `json:"content" yaml:"-"`
}

func (s *Store) clipboardDir(scope string) string {
	return filepath.Join(s.Root(scope), ".prizm", "clipboard")
}

// AddClipboardEntry stores a snippet and publishes clipboard:mutated.
func (s *Store) AddClipboardEntry(ctx context.Context, scope, label, content, sessionID string) (*ClipboardEntry, error) {
	if content == "" {
		return nil, NewValidationError("content", "must not be empty")
	}
	entry := &ClipboardEntry{
		ID:        "clip-" + uuid.New().String(),
		Label:     label,
		SessionID: sessionID,
		CreatedAt: time.Now(),
		Content:   content,
	}
	st := s.state(scope)
	st.mu.Lock()
	err := func() error {
		if err := os.MkdirAll(s.clipboardDir(scope), 0o755); err != nil {
			return fmt.Errorf("creating clipboard dir: %w", err)
		}
		data, err := encodeFrontmatter(entry, entry.Content)
		if err != nil {
			return err
		}
		return os.WriteFile(filepath.Join(s.clipboardDir(scope), entry.ID+".md"), data, 0o644)
	}()
	st.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.bus.Emit(ctx, bus.EventClipboardMutated, bus.MutationPayload{
		Scope: scope, ID: entry.ID, Mutation: "added", SessionID: sessionID,
	})
	return entry, nil
}

// ListClipboardEntries returns entries newest first.
func (s *Store) ListClipboardEntries(scope string) ([]*ClipboardEntry, error) {
	entries, err := os.ReadDir(s.clipboardDir(scope))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing clipboard: %w", err)
	}
	var out []*ClipboardEntry
	for _, f := range entries {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.clipboardDir(scope), f.Name()))
		if err != nil {
			continue
		}
		var entry ClipboardEntry
		body, err := decodeFrontmatter(data, &entry)
		if err != nil {
			continue
		}
		entry.Content = body
		out = append(out, &entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// DeleteClipboardEntry removes an entry and publishes clipboard:mutated.
func (s *Store) DeleteClipboardEntry(ctx context.Context, scope, id, sessionID string) error {
	st := s.state(scope)
	st.mu.Lock()
	err := os.Remove(filepath.Join(s.clipboardDir(scope), id+".md"))
	st.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("clipboard entry %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("deleting clipboard entry %s: %w", id, err)
	}
	s.bus.Emit(ctx, bus.EventClipboardMutated, bus.MutationPayload{
		Scope: scope, ID: id, Mutation: "deleted", SessionID: sessionID,
	})
	return nil
}
