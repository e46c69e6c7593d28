package terminal

import (
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/google/uuid"
)

// Event is one terminal-side message pushed to attached listeners.
type Event struct {
	Type       string `json:"type"`
	TerminalID string `json:"terminalId"`
	Data       string `json:"data,omitempty"`
	ExitCode   int    `json:"exitCode,omitempty"`
	Signal     string `json:"signal,omitempty"`
	Message    string `json:"message,omitempty"`
}

// Event types emitted to listeners.
const (
	EventOutput   = "terminal:output"
	EventExit     = "terminal:exit"
	EventAttached = "terminal:attached"
	EventError    = "terminal:error"
)

// Listener receives terminal events. Called from the read loop goroutine.
type Listener func(Event)

// Terminal is one long-lived interactive PTY.
type Terminal struct {
	ID        string
	Scope     string
	SessionID string
	Shell     string
	CreatedAt time.Time

	mu           sync.Mutex
	ptmx         *os.File
	cmd          *exec.Cmd
	ring         *ringBuffer
	listeners    map[string]Listener
	lastActivity time.Time
	exited       bool
	exitCode     int
	logFile      *os.File
}

func newTerminal(scope, sessionID, shell, cwd, logPath string, ringSize int, cols, rows uint16) (*Terminal, error) {
	cmd := exec.Command(shell)
	cmd.Dir = cwd
	cmd.Env = sanitizeEnv(os.Environ())

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Cols: cols, Rows: rows})
	if err != nil {
		return nil, fmt.Errorf("starting pty: %w", err)
	}

	now := time.Now()
	t := &Terminal{
		ID:           "term-" + uuid.New().String(),
		Scope:        scope,
		SessionID:    sessionID,
		Shell:        shell,
		CreatedAt:    now,
		ptmx:         ptmx,
		cmd:          cmd,
		ring:         newRingBuffer(ringSize),
		listeners:    make(map[string]Listener),
		lastActivity: now,
	}
	if logPath != "" {
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			t.logFile = f
		}
	}
	go t.readLoop()
	return t, nil
}

func (t *Terminal) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := t.ptmx.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			t.mu.Lock()
			t.ring.Write(chunk)
			t.lastActivity = time.Now()
			if t.logFile != nil {
				t.logFile.Write(chunk)
			}
			listeners := t.snapshotListeners()
			t.mu.Unlock()
			for _, l := range listeners {
				l(Event{Type: EventOutput, TerminalID: t.ID, Data: string(chunk)})
			}
		}
		if err != nil {
			break
		}
	}

	code := 0
	if err := t.cmd.Wait(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			code = exitErr.ExitCode()
		} else {
			code = -1
		}
	}
	t.mu.Lock()
	t.exited = true
	t.exitCode = code
	if t.logFile != nil {
		t.logFile.Close()
		t.logFile = nil
	}
	listeners := t.snapshotListeners()
	t.mu.Unlock()
	for _, l := range listeners {
		l(Event{Type: EventExit, TerminalID: t.ID, ExitCode: code})
	}
}

// caller holds t.mu
func (t *Terminal) snapshotListeners() []Listener {
	out := make([]Listener, 0, len(t.listeners))
	for _, l := range t.listeners {
		out = append(out, l)
	}
	return out
}

// Write sends input to the PTY. Single-writer by contract.
func (t *Terminal) Write(data string) error {
	t.mu.Lock()
	exited := t.exited
	t.lastActivity = time.Now()
	t.mu.Unlock()
	if exited {
		return fmt.Errorf("terminal %s has exited", t.ID)
	}
	_, err := t.ptmx.WriteString(data)
	return err
}

// Resize changes the PTY window size.
func (t *Terminal) Resize(cols, rows uint16) error {
	t.mu.Lock()
	t.lastActivity = time.Now()
	t.mu.Unlock()
	return pty.Setsize(t.ptmx, &pty.Winsize{Cols: cols, Rows: rows})
}

// Attach registers a listener. The current ring buffer is replayed as a
// single output event first, then attached; a dead terminal additionally
// receives its exit event immediately.
func (t *Terminal) Attach(listenerID string, l Listener) {
	t.mu.Lock()
	replay := t.ring.Bytes()
	exited, code := t.exited, t.exitCode
	t.listeners[listenerID] = l
	t.mu.Unlock()

	if len(replay) > 0 {
		l(Event{Type: EventOutput, TerminalID: t.ID, Data: string(replay)})
	}
	l(Event{Type: EventAttached, TerminalID: t.ID})
	if exited {
		l(Event{Type: EventExit, TerminalID: t.ID, ExitCode: code})
	}
}

// Detach removes a listener. Unknown ids are a no-op.
func (t *Terminal) Detach(listenerID string) {
	t.mu.Lock()
	delete(t.listeners, listenerID)
	t.mu.Unlock()
}

// Exited reports the terminal's exit state.
func (t *Terminal) Exited() (bool, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.exited, t.exitCode
}

// LastActivity returns the time of the most recent input or output.
func (t *Terminal) LastActivity() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastActivity
}

// Kill signals the shell and closes the PTY. The read loop then observes
// EOF and emits the exit event.
func (t *Terminal) Kill() {
	t.mu.Lock()
	exited := t.exited
	t.mu.Unlock()
	if !exited && t.cmd.Process != nil {
		t.cmd.Process.Kill()
	}
	t.ptmx.Close()
}
