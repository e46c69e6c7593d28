// Package background runs detached agent sessions: tool-spawned subtasks,
// API-triggered jobs, and cron-driven runs. It enforces global concurrency
// and nesting-depth caps and reports results back to parent sessions.
package background

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hymnly133/prizm/pkg/agent"
	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/config"
	"github.com/hymnly133/prizm/pkg/models"
	"github.com/hymnly133/prizm/pkg/scope"
)

// ErrShutdown is returned by Trigger after the manager has been shut down.
var ErrShutdown = errors.New("background manager is shut down")

// ConcurrencyLimitError reports a refused trigger: either the global cap or
// the nesting depth cap was hit.
type ConcurrencyLimitError struct {
	msg string
}

func (e *ConcurrencyLimitError) Error() string { return e.msg }

// TriggerSpec describes one background session to start.
type TriggerSpec struct {
	Scope           string
	ParentSessionID string
	Trigger         models.TriggerType
	Prompt          string
	Label           string
	Model           string
	TimeoutMs       int64
	MemoryOverride  *models.MemoryPolicyOverride
	Announce        *models.AnnounceTarget
	AllowedTools    []string

	// Optional preamble material passed through to the session prompt.
	SystemInstructions   string
	Context              map[string]any
	ExpectedOutputFormat string
}

type run struct {
	scope     string
	cancel    context.CancelFunc
	done      chan struct{}
	cancelled bool
	result    string
	err       error
}

// Manager owns the background session pool. It implements
// agent.TaskSpawner so sessions can spawn subtasks through tools.
type Manager struct {
	cfg     config.BackgroundConfig
	store   *scope.Store
	runtime *agent.Runtime
	bus     *bus.Bus

	mu      sync.Mutex
	running map[string]*run
	closed  bool
	wg      sync.WaitGroup
}

// NewManager wires the pool and registers the announce handler that folds
// background results back into parent sessions.
func NewManager(cfg config.BackgroundConfig, store *scope.Store, rt *agent.Runtime, b *bus.Bus) *Manager {
	m := &Manager{
		cfg:     cfg,
		store:   store,
		runtime: rt,
		bus:     b,
		running: make(map[string]*run),
	}
	for _, event := range []string{bus.EventBgCompleted, bus.EventBgFailed, bus.EventBgTimeout} {
		b.Subscribe(event, m.announce, "background.announce")
	}
	return m
}

// SpawnTask implements agent.TaskSpawner: a tool call in a parent session
// starts a subtask that announces its result back to the parent.
func (m *Manager) SpawnTask(ctx context.Context, parentScope, parentSessionID, prompt, label string) (string, error) {
	id, err := m.Trigger(ctx, TriggerSpec{
		Scope:           parentScope,
		ParentSessionID: parentSessionID,
		Trigger:         models.TriggerToolSpawn,
		Prompt:          prompt,
		Label:           label,
		Announce:        &models.AnnounceTarget{Scope: parentScope, SessionID: parentSessionID},
	})
	if err != nil {
		return "", err
	}
	m.bus.Emit(ctx, bus.EventTaskStarted, bus.TaskPayload{
		Scope: parentScope, TaskID: id, SessionID: parentSessionID, Label: label,
	})
	return id, nil
}

// Trigger starts a background session and returns its session id. The
// session runs until completion, timeout, or cancellation.
func (m *Manager) Trigger(ctx context.Context, spec TriggerSpec) (string, error) {
	depth := 1
	if spec.ParentSessionID != "" {
		parent, err := m.store.GetSession(spec.Scope, spec.ParentSessionID)
		if err != nil {
			return "", fmt.Errorf("parent session: %w", err)
		}
		if parent.BgMeta != nil {
			depth = parent.BgMeta.Depth + 1
		}
	}
	if depth > m.cfg.MaxDepth {
		return "", &ConcurrencyLimitError{msg: fmt.Sprintf(
			"depth limit reached: nesting depth %d exceeds the maximum of %d", depth, m.cfg.MaxDepth)}
	}

	timeout := m.cfg.DefaultTimeout
	if spec.TimeoutMs > 0 {
		timeout = time.Duration(spec.TimeoutMs) * time.Millisecond
	}
	meta := &models.BgMeta{
		TriggerType:     spec.Trigger,
		ParentSessionID: spec.ParentSessionID,
		Depth:           depth,
		Label:           spec.Label,
		TimeoutMs:       timeout.Milliseconds(),
		AnnounceTarget:  spec.Announce,
		MemoryPolicy:    models.BackgroundMemoryDefaults().Merge(spec.MemoryOverride),
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return "", ErrShutdown
	}
	if len(m.running) >= m.cfg.MaxGlobal {
		n := len(m.running)
		m.mu.Unlock()
		return "", &ConcurrencyLimitError{msg: fmt.Sprintf(
			"global concurrency limit reached: %d background sessions already running", n)}
	}
	// Reserve the slot before the session exists so a concurrent burst
	// cannot overshoot the cap.
	reserve := "pending-" + uuid.New().String()
	m.running[reserve] = &run{}
	m.mu.Unlock()

	sess, err := m.store.CreateSession(ctx, spec.Scope, scope.CreateSessionInput{
		Kind:         models.SessionKindBackground,
		Title:        spec.Label,
		BgMeta:       meta,
		AllowedTools: spec.AllowedTools,
	})
	if err != nil {
		m.mu.Lock()
		delete(m.running, reserve)
		m.mu.Unlock()
		return "", err
	}

	runCtx, cancel := context.WithTimeout(context.Background(), timeout)
	r := &run{scope: spec.Scope, cancel: cancel, done: make(chan struct{})}
	m.mu.Lock()
	delete(m.running, reserve)
	m.running[sess.ID] = r
	m.mu.Unlock()

	m.wg.Add(1)
	go m.execute(runCtx, r, sess.ID, spec)
	return sess.ID, nil
}

// TriggerSync starts a background session and blocks until it finishes.
func (m *Manager) TriggerSync(ctx context.Context, spec TriggerSpec) (string, error) {
	_, result, err := m.TriggerAndWait(ctx, spec)
	return result, err
}

// TriggerAndWait starts a background session, waits for it, and returns
// both the session id and the result.
func (m *Manager) TriggerAndWait(ctx context.Context, spec TriggerSpec) (string, string, error) {
	id, err := m.Trigger(ctx, spec)
	if err != nil {
		return "", "", err
	}
	m.mu.Lock()
	r := m.running[id]
	m.mu.Unlock()
	if r == nil {
		return id, m.sessionResult(spec.Scope, id), nil
	}
	select {
	case <-r.done:
	case <-ctx.Done():
		return id, "", ctx.Err()
	}
	if r.err != nil {
		return id, "", r.err
	}
	return id, r.result, nil
}

// Cancel stops a running background session. Idempotent; returns whether a
// running session was found.
func (m *Manager) Cancel(sessionID string) bool {
	m.mu.Lock()
	r, ok := m.running[sessionID]
	if ok {
		r.cancelled = true
	}
	m.mu.Unlock()
	if !ok {
		return false
	}
	r.cancel()
	return true
}

// IsRunning reports whether a background session is still active.
func (m *Manager) IsRunning(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.running[sessionID]
	return ok
}

// ActiveCount returns the number of running background sessions.
func (m *Manager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.running)
}

// Shutdown cancels every running session and waits for the pool to drain
// or the context to expire.
func (m *Manager) Shutdown(ctx context.Context) error {
	m.mu.Lock()
	m.closed = true
	for _, r := range m.running {
		r.cancelled = true
		if r.cancel != nil {
			r.cancel()
		}
	}
	m.mu.Unlock()

	drained := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) execute(runCtx context.Context, r *run, sessionID string, spec TriggerSpec) {
	defer m.wg.Done()
	defer r.cancel()
	start := time.Now()

	_, err := m.store.UpdateSession(runCtx, spec.Scope, sessionID, func(s *models.AgentSession) error {
		s.SetBgStatus(models.BgStatusRunning)
		return nil
	})
	if err != nil {
		slog.Warn("Failed to mark background session running", "session", sessionID, "error", err)
	}

	opts := agent.ChatOptions{
		Model:          spec.Model,
		SystemPreamble: backgroundPreamble(spec),
		AllowedTools:   spec.AllowedTools,
	}

	turnErr := m.runTurn(runCtx, spec.Scope, sessionID, spec.Prompt, opts)

	// Result guard: a background session must call prizm_set_result. One
	// corrective turn is granted before falling back to the last reply.
	if turnErr == nil && runCtx.Err() == nil && m.sessionResult(spec.Scope, sessionID) == "" {
		turnErr = m.runTurn(runCtx, spec.Scope, sessionID,
			"You have not recorded a result. Call prizm_set_result now with your final result.", opts)
		if turnErr == nil && m.sessionResult(spec.Scope, sessionID) == "" {
			m.adoptLastReplyAsResult(spec.Scope, sessionID)
		}
	}

	result := m.sessionResult(spec.Scope, sessionID)
	m.mu.Lock()
	cancelled := r.cancelled
	m.mu.Unlock()

	status := models.BgStatusCompleted
	event := bus.EventBgCompleted
	var failure string
	switch {
	case cancelled:
		status, event = models.BgStatusCancelled, bus.EventBgCancelled
	case runCtx.Err() == context.DeadlineExceeded:
		status, event = models.BgStatusTimeout, bus.EventBgTimeout
		failure = "background session timed out"
	case turnErr != nil:
		status, event = models.BgStatusFailed, bus.EventBgFailed
		failure = turnErr.Error()
	}

	now := time.Now()
	_, err = m.store.UpdateSession(context.Background(), spec.Scope, sessionID, func(s *models.AgentSession) error {
		s.SetBgStatus(status)
		s.FinishedAt = &now
		return nil
	})
	if err != nil {
		slog.Warn("Failed to finalize background session", "session", sessionID, "error", err)
	}

	r.result = result
	if failure != "" {
		r.err = errors.New(failure)
	}
	m.mu.Lock()
	delete(m.running, sessionID)
	m.mu.Unlock()
	close(r.done)

	ctx := context.Background()
	m.bus.Emit(ctx, event, bus.BgResultPayload{
		Scope:      spec.Scope,
		SessionID:  sessionID,
		Result:     result,
		Error:      failure,
		DurationMs: time.Since(start).Milliseconds(),
		Announce:   spec.Announce,
		Label:      spec.Label,
	})
	if spec.Trigger == models.TriggerToolSpawn {
		taskEvent := bus.EventTaskCompleted
		switch status {
		case models.BgStatusCancelled:
			taskEvent = bus.EventTaskCancelled
		case models.BgStatusFailed, models.BgStatusTimeout:
			taskEvent = bus.EventTaskFailed
		}
		m.bus.Emit(ctx, taskEvent, bus.TaskPayload{
			Scope: spec.Scope, TaskID: sessionID, SessionID: spec.ParentSessionID,
			Label: spec.Label, Error: failure,
		})
	}
}

// runTurn drives one chat turn to completion, stopping it if the run
// context expires first.
func (m *Manager) runTurn(runCtx context.Context, scopeName, sessionID, prompt string, opts agent.ChatOptions) error {
	ch, err := m.runtime.Chat(context.Background(), scopeName, sessionID, prompt, opts)
	if err != nil {
		return err
	}
	var turnErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		for chunk := range ch {
			if e, ok := chunk.(*models.ErrorChunk); ok {
				turnErr = errors.New(e.Message)
			}
		}
	}()
	select {
	case <-done:
	case <-runCtx.Done():
		m.runtime.Stop(scopeName, sessionID)
		<-done
	}
	return turnErr
}

func (m *Manager) sessionResult(scopeName, sessionID string) string {
	sess, err := m.store.GetSession(scopeName, sessionID)
	if err != nil {
		return ""
	}
	return sess.BgResult
}

// adoptLastReplyAsResult uses the final assistant text when the session
// never called prizm_set_result despite the corrective turn.
func (m *Manager) adoptLastReplyAsResult(scopeName, sessionID string) {
	_, err := m.store.UpdateSession(context.Background(), scopeName, sessionID, func(s *models.AgentSession) error {
		for i := len(s.Messages) - 1; i >= 0; i-- {
			if s.Messages[i].Role == models.RoleAssistant {
				s.BgResult = s.Messages[i].Text()
				break
			}
		}
		return nil
	})
	if err != nil {
		slog.Warn("Failed to adopt fallback result", "session", sessionID, "error", err)
	}
}

// announce folds a finished background session's outcome into the parent
// session as a synthetic system message.
func (m *Manager) announce(ctx context.Context, payload any) error {
	p, ok := payload.(bus.BgResultPayload)
	if !ok || p.Announce == nil {
		return nil
	}
	label := p.Label
	if label == "" {
		label = p.SessionID
	}
	text := fmt.Sprintf("[background task %q completed] %s", label, p.Result)
	if p.Error != "" {
		text = fmt.Sprintf("[background task %q failed] %s", label, p.Error)
	}
	return m.store.AppendMessage(ctx, p.Announce.Scope, p.Announce.SessionID, &models.AgentMessage{
		ID:        "msg-" + uuid.New().String(),
		Role:      models.RoleSystem,
		Parts:     []*models.MessagePart{{Type: models.PartText, Content: text}},
		CreatedAt: time.Now(),
	})
}

func backgroundPreamble(spec TriggerSpec) string {
	var b strings.Builder
	b.WriteString("You are running as a detached background task. Work autonomously; " +
		"no user is watching. When you are done, record your outcome by calling " +
		"prizm_set_result exactly once with a concise final result.")
	if spec.SystemInstructions != "" {
		b.WriteString("\n\n" + spec.SystemInstructions)
	}
	if len(spec.Context) > 0 {
		if data, err := json.Marshal(spec.Context); err == nil {
			b.WriteString("\n\nContext:\n" + string(data))
		}
	}
	if spec.ExpectedOutputFormat != "" {
		b.WriteString("\n\nExpected output format:\n" + spec.ExpectedOutputFormat)
	}
	if spec.Label != "" {
		b.WriteString("\nTask label: " + spec.Label)
	}
	return b.String()
}
