// Package terminal manages PTYs for agent sessions: long-lived interactive
// terminals with attachable output, and reusable one-shot exec workers.
package terminal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hymnly133/prizm/pkg/agent"
	"github.com/hymnly133/prizm/pkg/config"
	"github.com/hymnly133/prizm/pkg/scope"
)

// Manager owns every PTY in the process. It implements agent.Execer so the
// prizm_exec tool can run one-shot commands.
type Manager struct {
	cfg    config.TerminalConfig
	logDir string
	store  *scope.Store

	mu        sync.Mutex
	terminals map[string]*Terminal
	workers   map[workerKey]*execWorker
	stop      chan struct{}
	stopOnce  sync.Once
}

// NewManager creates the terminal manager and starts its reaper.
func NewManager(cfg config.TerminalConfig, logDir string, store *scope.Store) *Manager {
	m := &Manager{
		cfg:       cfg,
		logDir:    logDir,
		store:     store,
		terminals: make(map[string]*Terminal),
		workers:   make(map[workerKey]*execWorker),
		stop:      make(chan struct{}),
	}
	go m.reapLoop()
	return m
}

func (m *Manager) logPath(kind, id string) string {
	if m.logDir == "" {
		return ""
	}
	if err := os.MkdirAll(m.logDir, 0o755); err != nil {
		return ""
	}
	ts := time.Now().UTC().Format("20060102T150405Z")
	return filepath.Join(m.logDir, fmt.Sprintf("%s_%s_%s.log", kind, id, ts))
}

// Create starts a new interactive terminal for an agent session, enforcing
// the per-session and global caps and the shell whitelist.
func (m *Manager) Create(scopeName, sessionID, requestedShell string, cols, rows uint16) (*Terminal, error) {
	shell, err := resolveShell(requestedShell)
	if err != nil {
		return nil, err
	}
	if cols == 0 {
		cols = 80
	}
	if rows == 0 {
		rows = 24
	}

	m.mu.Lock()
	if len(m.terminals) >= m.cfg.MaxGlobal {
		m.mu.Unlock()
		return nil, fmt.Errorf("global terminal limit of %d reached", m.cfg.MaxGlobal)
	}
	perSession := 0
	for _, t := range m.terminals {
		if t.SessionID == sessionID {
			perSession++
		}
	}
	if perSession >= m.cfg.MaxPerSession {
		m.mu.Unlock()
		return nil, fmt.Errorf("session terminal limit of %d reached", m.cfg.MaxPerSession)
	}
	m.mu.Unlock()

	cwd := m.store.Root(scopeName)
	if err := os.MkdirAll(cwd, 0o755); err != nil {
		return nil, fmt.Errorf("creating scope root: %w", err)
	}
	t, err := newTerminal(scopeName, sessionID, shell, cwd, m.logPath("interactive", sessionID), m.cfg.RingBufferSize, cols, rows)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.terminals[t.ID] = t
	m.mu.Unlock()
	return t, nil
}

// Get returns a terminal by id.
func (m *Manager) Get(terminalID string) (*Terminal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.terminals[terminalID]
	if !ok {
		return nil, fmt.Errorf("terminal %s: %w", terminalID, scope.ErrNotFound)
	}
	return t, nil
}

// List returns the terminals belonging to one agent session.
func (m *Manager) List(sessionID string) []*Terminal {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Terminal
	for _, t := range m.terminals {
		if t.SessionID == sessionID {
			out = append(out, t)
		}
	}
	return out
}

// Kill terminates a terminal and removes it from the registry.
func (m *Manager) Kill(terminalID string) error {
	m.mu.Lock()
	t, ok := m.terminals[terminalID]
	delete(m.terminals, terminalID)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("terminal %s: %w", terminalID, scope.ErrNotFound)
	}
	t.Kill()
	return nil
}

// Exec implements agent.Execer against the session's main workspace.
func (m *Manager) Exec(ctx context.Context, scopeName, sessionID, command string, timeout time.Duration) (*agent.ExecResult, error) {
	return m.ExecIn(ctx, scopeName, sessionID, WorkspaceMain, command, timeout)
}

// ExecIn runs a one-shot command on the reusable worker for
// (sessionID, workspace). A timeout destroys the worker so the next call
// gets a fresh shell.
func (m *Manager) ExecIn(ctx context.Context, scopeName, sessionID string, workspace WorkspaceType, command string, timeout time.Duration) (*agent.ExecResult, error) {
	if command == "" {
		return nil, fmt.Errorf("empty command")
	}
	cwd := m.store.Root(scopeName)
	if err := os.MkdirAll(cwd, 0o755); err != nil {
		return nil, fmt.Errorf("creating scope root: %w", err)
	}

	key := workerKey{sessionID: sessionID, workspace: workspace}
	w, err := m.workerFor(key, cwd)
	if err != nil {
		return nil, err
	}
	if err := w.acquire(); err != nil {
		return nil, err
	}

	nonce := newExecNonce()
	begin := "PRIZM_EXEC_BEGIN_" + nonce
	end := "PRIZM_EXEC_END_" + nonce
	deadline := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	raw, completed := w.run(wrapCommand(cwd, command, begin, end), end, deadline)
	if !completed {
		m.destroyWorker(key, w)
		return &agent.ExecResult{TimedOut: true, ExitCode: -1}, nil
	}
	w.release()

	output, code := parseExecOutput(raw, begin, end)
	return &agent.ExecResult{Output: output, ExitCode: code}, nil
}

func (m *Manager) workerFor(key workerKey, cwd string) (*execWorker, error) {
	m.mu.Lock()
	if w, ok := m.workers[key]; ok {
		m.mu.Unlock()
		return w, nil
	}
	m.mu.Unlock()

	w, err := startExecWorker(key, cwd)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.workers[key]; ok {
		// Lost the race; keep the established worker.
		go w.destroy()
		return existing, nil
	}
	m.workers[key] = w
	return w, nil
}

func (m *Manager) destroyWorker(key workerKey, w *execWorker) {
	m.mu.Lock()
	if m.workers[key] == w {
		delete(m.workers, key)
	}
	m.mu.Unlock()
	w.destroy()
}

// WorkerCount returns the number of live exec workers.
func (m *Manager) WorkerCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workers)
}

// TerminalCount returns the number of live interactive terminals.
func (m *Manager) TerminalCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.terminals)
}

func (m *Manager) reapLoop() {
	interval := m.cfg.ReapInterval
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-m.stop:
			return
		case <-ticker.C:
			m.reap()
		}
	}
}

func (m *Manager) reap() {
	now := time.Now()
	m.mu.Lock()
	var killTerms []*Terminal
	for id, t := range m.terminals {
		exited, _ := t.Exited()
		idleFor := now.Sub(t.LastActivity())
		tooOld := now.Sub(t.CreatedAt) > m.cfg.MaxLifetime
		if exited || idleFor > m.cfg.IdleTimeout || tooOld {
			killTerms = append(killTerms, t)
			delete(m.terminals, id)
		}
	}
	var killWorkers []*execWorker
	for key, w := range m.workers {
		if free, lastUsed := w.idle(); free && now.Sub(lastUsed) > m.cfg.ExecIdleTimeout {
			killWorkers = append(killWorkers, w)
			delete(m.workers, key)
		}
	}
	m.mu.Unlock()

	for _, t := range killTerms {
		slog.Info("Reaping terminal", "terminal", t.ID, "session", t.SessionID)
		t.Kill()
	}
	for _, w := range killWorkers {
		w.destroy()
	}
}

// Shutdown kills every PTY, waits up to 3 seconds for exits, then destroys
// whatever remains.
func (m *Manager) Shutdown() {
	m.stopOnce.Do(func() { close(m.stop) })

	m.mu.Lock()
	terms := make([]*Terminal, 0, len(m.terminals))
	for _, t := range m.terminals {
		terms = append(terms, t)
	}
	workers := make([]*execWorker, 0, len(m.workers))
	for _, w := range m.workers {
		workers = append(workers, w)
	}
	m.terminals = make(map[string]*Terminal)
	m.workers = make(map[workerKey]*execWorker)
	m.mu.Unlock()

	for _, t := range terms {
		t.Kill()
	}
	for _, w := range workers {
		w.destroy()
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		alive := false
		for _, t := range terms {
			if exited, _ := t.Exited(); !exited {
				alive = true
				break
			}
		}
		if !alive {
			return
		}
		time.Sleep(50 * time.Millisecond)
	}
}
