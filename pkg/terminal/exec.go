package terminal

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
	"github.com/google/uuid"
)

// WorkspaceType selects which working tree an exec worker runs in.
type WorkspaceType string

// Workspace types for exec workers.
const (
	WorkspaceMain     WorkspaceType = "main"
	WorkspaceSession  WorkspaceType = "session"
	WorkspaceWorkflow WorkspaceType = "workflow"
)

type workerKey struct {
	sessionID string
	workspace WorkspaceType
}

// execWorker is a reusable PTY shell running one command at a time.
type execWorker struct {
	key  workerKey
	ptmx *os.File
	cmd  *exec.Cmd

	mu       sync.Mutex
	cond     *sync.Cond
	out      []byte
	busy     bool
	dead     bool
	lastUsed time.Time
}

func startExecWorker(key workerKey, cwd string) (*execWorker, error) {
	shell, err := resolveShell("")
	if err != nil {
		return nil, err
	}
	cmd := exec.Command(shell)
	cmd.Dir = cwd
	cmd.Env = sanitizeEnv(os.Environ())
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("starting exec worker: %w", err)
	}
	w := &execWorker{key: key, ptmx: ptmx, cmd: cmd, lastUsed: time.Now()}
	w.cond = sync.NewCond(&w.mu)
	go w.readLoop()
	return w, nil
}

func (w *execWorker) readLoop() {
	buf := make([]byte, 4096)
	for {
		n, err := w.ptmx.Read(buf)
		if n > 0 {
			w.mu.Lock()
			w.out = append(w.out, buf[:n]...)
			w.cond.Broadcast()
			w.mu.Unlock()
		}
		if err != nil {
			break
		}
	}
	w.cmd.Wait()
	w.mu.Lock()
	w.dead = true
	w.cond.Broadcast()
	w.mu.Unlock()
}

func (w *execWorker) destroy() {
	if w.cmd.Process != nil {
		w.cmd.Process.Kill()
	}
	w.ptmx.Close()
}

// acquire marks the worker busy. At most one command runs at a time.
func (w *execWorker) acquire() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dead {
		return fmt.Errorf("exec worker is dead")
	}
	if w.busy {
		return fmt.Errorf("exec worker is busy")
	}
	w.busy = true
	return nil
}

func (w *execWorker) release() {
	w.mu.Lock()
	w.busy = false
	w.lastUsed = time.Now()
	w.mu.Unlock()
}

func (w *execWorker) idle() (bool, time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.busy, w.lastUsed
}

// run writes one wrapped command and waits for its end marker or the
// deadline. Returns the raw bytes produced after the write.
func (w *execWorker) run(wrapped, endMarker string, deadline time.Time) (string, bool) {
	w.mu.Lock()
	offset := len(w.out)
	w.mu.Unlock()

	if _, err := w.ptmx.WriteString(wrapped); err != nil {
		return "", false
	}

	// Wake the cond wait periodically so the deadline is observed even
	// when the shell produces no output.
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				w.mu.Lock()
				w.cond.Broadcast()
				w.mu.Unlock()
			}
		}
	}()

	w.mu.Lock()
	defer w.mu.Unlock()
	for {
		tail := string(w.out[offset:])
		if strings.Contains(stripANSI(tail), endMarker+":") {
			return tail, true
		}
		if w.dead || time.Now().After(deadline) {
			return tail, false
		}
		w.cond.Wait()
	}
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07]*(\x07|\x1b\\)`)

func stripANSI(s string) string {
	s = ansiRe.ReplaceAllString(s, "")
	return strings.ReplaceAll(s, "\r", "")
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// splitEcho renders a marker as two concatenated quoted halves so the
// PTY's echo of the command line never contains the joined marker.
func splitEcho(marker string) string {
	half := len(marker) / 2
	return "'" + marker[:half] + "''" + marker[half:] + "'"
}

// wrapCommand builds the one-shot protocol line: begin marker, cd prefix,
// the command, then an end marker carrying the exit code.
func wrapCommand(cwd, command, beginMarker, endMarker string) string {
	command = strings.TrimSpace(command)
	if rest, ok := strings.CutPrefix(command, "git "); ok {
		command = "git --no-pager " + rest
	}
	return fmt.Sprintf("echo %s; cd %s && %s; echo %s:$?\n",
		splitEcho(beginMarker), shellQuote(cwd), command, splitEcho(endMarker))
}

// parseExecOutput slices the output between the markers and parses the
// `:N` exit code trailer.
func parseExecOutput(raw, beginMarker, endMarker string) (string, int) {
	clean := stripANSI(raw)
	begin := strings.Index(clean, beginMarker)
	if begin < 0 {
		return "", -1
	}
	clean = clean[begin+len(beginMarker):]
	if nl := strings.IndexByte(clean, '\n'); nl >= 0 {
		clean = clean[nl+1:]
	}
	end := strings.Index(clean, endMarker+":")
	if end < 0 {
		return "", -1
	}
	body := strings.TrimSuffix(clean[:end], "\n")
	trailer := clean[end+len(endMarker)+1:]
	digits := trailer
	if nl := strings.IndexByte(digits, '\n'); nl >= 0 {
		digits = digits[:nl]
	}
	code, err := strconv.Atoi(strings.TrimSpace(digits))
	if err != nil {
		code = -1
	}
	return body, code
}

func newExecNonce() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
}
