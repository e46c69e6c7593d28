// Package scope implements the scope data store: an in-memory cache over
// on-disk workspace state partitioned by scope. Documents, todo lists, and
// clipboard entries are Markdown files with YAML frontmatter; agent sessions
// are JSON under <scopeRoot>/.prizm/sessions/. The store exclusively owns
// persisted workspace state and publishes mutation events on the bus.
package scope

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/models"
)

// Store is the scope data store. Construct with NewStore.
type Store struct {
	root string
	bus  *bus.Bus

	mu     sync.Mutex
	scopes map[string]*scopeState
}

type scopeState struct {
	mu       sync.RWMutex
	sessions map[string]*models.AgentSession
	loaded   bool
}

// NewStore creates a store rooted at dir (one subdirectory per scope).
func NewStore(dir string, b *bus.Bus) *Store {
	return &Store{
		root:   dir,
		bus:    b,
		scopes: make(map[string]*scopeState),
	}
}

// Root returns the on-disk root for a scope.
func (s *Store) Root(scope string) string {
	return filepath.Join(s.root, scope)
}

func (s *Store) sessionsDir(scope string) string {
	return filepath.Join(s.Root(scope), ".prizm", "sessions")
}

func (s *Store) state(scope string) *scopeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.scopes[scope]
	if !ok {
		st = &scopeState{sessions: make(map[string]*models.AgentSession)}
		s.scopes[scope] = st
	}
	return st
}

// loadSessions populates the cache from disk once per scope. Sessions that
// fail validation are rejected and left on disk untouched.
func (s *Store) loadSessions(scope string, st *scopeState) {
	if st.loaded {
		return
	}
	st.loaded = true
	entries, err := os.ReadDir(s.sessionsDir(scope))
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		path := filepath.Join(s.sessionsDir(scope), entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			slog.Warn("Failed to read session file", "path", path, "error", err)
			continue
		}
		var sess models.AgentSession
		if err := json.Unmarshal(data, &sess); err != nil {
			slog.Warn("Malformed session file", "path", path, "error", err)
			continue
		}
		if err := sess.Validate(); err != nil {
			slog.Warn("Rejecting inconsistent session at load", "path", path, "error", err)
			continue
		}
		st.sessions[sess.ID] = &sess
	}
}

func (s *Store) persistSession(scope string, sess *models.AgentSession) error {
	dir := s.sessionsDir(scope)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating sessions dir: %w", err)
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", sess.ID, err)
	}
	if err := os.WriteFile(filepath.Join(dir, sess.ID+".json"), data, 0o644); err != nil {
		return fmt.Errorf("writing session %s: %w", sess.ID, err)
	}
	return nil
}

// CreateSessionInput carries optional fields for session creation.
type CreateSessionInput struct {
	Kind                SessionKindOption
	Title               string
	BgMeta              *models.BgMeta
	GrantedPaths        []string
	AllowedTools        []string
	AllowedMCPServerIDs []string
}

// SessionKindOption defaults to interactive when empty.
type SessionKindOption = models.SessionKind

// CreateSession creates and persists a new session, publishing
// agent:session.created.
func (s *Store) CreateSession(ctx context.Context, scope string, in CreateSessionInput) (*models.AgentSession, error) {
	kind := in.Kind
	if kind == "" {
		kind = models.SessionKindInteractive
	}
	sess := &models.AgentSession{
		ID:                  "sess-" + uuid.New().String(),
		Scope:               scope,
		Kind:                kind,
		Title:               in.Title,
		BgMeta:              in.BgMeta,
		Messages:            []*models.AgentMessage{},
		StartedAt:           time.Now(),
		GrantedPaths:        in.GrantedPaths,
		AllowedTools:        in.AllowedTools,
		AllowedMCPServerIDs: in.AllowedMCPServerIDs,
	}
	if kind == models.SessionKindBackground {
		sess.BgStatus = models.BgStatusPending
	}
	if err := sess.Validate(); err != nil {
		return nil, err
	}

	st := s.state(scope)
	st.mu.Lock()
	s.loadSessions(scope, st)
	st.sessions[sess.ID] = sess
	err := s.persistSession(scope, sess)
	cp := cloneSession(sess)
	st.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.bus.Emit(ctx, bus.EventSessionCreated, bus.SessionPayload{
		Scope: scope, SessionID: sess.ID, Kind: kind,
	})
	return cp, nil
}

// GetSession returns a deep copy of a session, or ErrNotFound.
func (s *Store) GetSession(scope, sessionID string) (*models.AgentSession, error) {
	st := s.state(scope)
	st.mu.Lock()
	s.loadSessions(scope, st)
	sess, ok := st.sessions[sessionID]
	if !ok {
		st.mu.Unlock()
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	cp := cloneSession(sess)
	st.mu.Unlock()
	return cp, nil
}

// ListSessions returns copies of every session in the scope.
func (s *Store) ListSessions(scope string) []*models.AgentSession {
	st := s.state(scope)
	st.mu.Lock()
	defer st.mu.Unlock()
	s.loadSessions(scope, st)
	out := make([]*models.AgentSession, 0, len(st.sessions))
	for _, sess := range st.sessions {
		out = append(out, cloneSession(sess))
	}
	return out
}

// DeleteSession removes a session and its checkpoint snapshots, publishing
// agent:session.deleted. Idempotent on missing sessions.
func (s *Store) DeleteSession(ctx context.Context, scope, sessionID string) error {
	st := s.state(scope)
	st.mu.Lock()
	s.loadSessions(scope, st)
	sess, ok := st.sessions[sessionID]
	if !ok {
		st.mu.Unlock()
		return nil
	}
	kind := sess.Kind
	delete(st.sessions, sessionID)
	st.mu.Unlock()

	if err := os.Remove(filepath.Join(s.sessionsDir(scope), sessionID+".json")); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to remove session file", "session", sessionID, "error", err)
	}
	if err := os.RemoveAll(filepath.Join(s.Root(scope), ".prizm", "checkpoints", sessionID)); err != nil {
		slog.Warn("Failed to remove session checkpoints", "session", sessionID, "error", err)
	}

	s.bus.Emit(ctx, bus.EventSessionDeleted, bus.SessionPayload{
		Scope: scope, SessionID: sessionID, Kind: kind,
	})
	return nil
}

// UpdateSession applies fn to the session under the scope lock and
// persists the result. fn returning an error aborts without persisting.
func (s *Store) UpdateSession(ctx context.Context, scope, sessionID string, fn func(*models.AgentSession) error) (*models.AgentSession, error) {
	st := s.state(scope)
	st.mu.Lock()
	defer st.mu.Unlock()
	s.loadSessions(scope, st)
	sess, ok := st.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := s.persistSession(scope, sess); err != nil {
		return nil, err
	}
	return cloneSession(sess), nil
}

// AppendMessage appends a message to the session tail and persists.
func (s *Store) AppendMessage(ctx context.Context, scope, sessionID string, msg *models.AgentMessage) error {
	_, err := s.UpdateSession(ctx, scope, sessionID, func(sess *models.AgentSession) error {
		sess.Messages = append(sess.Messages, msg)
		return nil
	})
	return err
}

// TruncateMessages cuts the session's messages to length index (clamped
// into [0, len]) and drops checkpoints at or past the cut.
func (s *Store) TruncateMessages(ctx context.Context, scope, sessionID string, index int) (*models.AgentSession, error) {
	return s.UpdateSession(ctx, scope, sessionID, func(sess *models.AgentSession) error {
		if index < 0 {
			index = 0
		}
		if index > len(sess.Messages) {
			index = len(sess.Messages)
		}
		sess.Messages = sess.Messages[:index]
		kept := sess.Checkpoints[:0]
		for _, cp := range sess.Checkpoints {
			if cp.MessageIndex < index {
				kept = append(kept, cp)
			}
		}
		sess.Checkpoints = kept
		return nil
	})
}

func cloneSession(sess *models.AgentSession) *models.AgentSession {
	data, err := json.Marshal(sess)
	if err != nil {
		cp := *sess
		return &cp
	}
	var out models.AgentSession
	if err := json.Unmarshal(data, &out); err != nil {
		cp := *sess
		return &cp
	}
	return &out
}
