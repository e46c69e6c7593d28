package terminal

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/config"
	"github.com/hymnly133/prizm/pkg/scope"
)

func TestRingBufferKeepsTail(t *testing.T) {
	r := newRingBuffer(10)
	r.Write([]byte("abcde"))
	assert.Equal(t, "abcde", string(r.Bytes()))

	r.Write([]byte("fghij"))
	assert.Equal(t, "abcdefghij", string(r.Bytes()))

	r.Write([]byte("XY"))
	assert.Equal(t, "cdefghijXY", string(r.Bytes()))
	assert.Equal(t, 10, r.Len())

	// A single write larger than the buffer keeps only its tail.
	r.Write([]byte("0123456789ABCDEF"))
	assert.Equal(t, "6789ABCDEF", string(r.Bytes()))
}

func TestSanitizeEnvStripsSecrets(t *testing.T) {
	env := []string{
		"PATH=/usr/bin",
		"HOME=/root",
		"AWS_SECRET_ACCESS_KEY=abc",
		"api_key=xyz",
		"GITHUB_TOKEN=t",
		"DB_password=p",
		"my_credential_store=c",
		"SSH_PRIVATE=k",
		"TERM=xterm",
	}
	got := sanitizeEnv(env)
	assert.Equal(t, []string{"PATH=/usr/bin", "HOME=/root", "TERM=xterm"}, got)
}

func TestResolveShellRejectsUnknown(t *testing.T) {
	_, err := resolveShell("/usr/bin/python3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")

	shell, err := resolveShell("")
	require.NoError(t, err)
	assert.NotEmpty(t, shell)
}

func TestWrapCommandInjectsGitNoPager(t *testing.T) {
	wrapped := wrapCommand("/tmp/w", "git log -1", "B_MARK", "E_MARK")
	assert.Contains(t, wrapped, "git --no-pager log -1")
	assert.Contains(t, wrapped, "cd '/tmp/w'")
	// Markers are echoed split so the command line never contains them.
	assert.NotContains(t, wrapped, "B_MARK")
	assert.NotContains(t, wrapped, "E_MARK")
}

func TestParseExecOutput(t *testing.T) {
	raw := "noise before\nBEGIN_M\nhello\nworld\nEND_M:0\ntrailing"
	body, code := parseExecOutput(raw, "BEGIN_M", "END_M")
	assert.Equal(t, "hello\nworld", body)
	assert.Equal(t, 0, code)

	raw = "BEGIN_M\n\x1b[31mred\x1b[0m\r\nEND_M:127\n"
	body, code = parseExecOutput(raw, "BEGIN_M", "END_M")
	assert.Equal(t, "red", body)
	assert.Equal(t, 127, code)

	_, code = parseExecOutput("garbage", "BEGIN_M", "END_M")
	assert.Equal(t, -1, code)
}

func newTestTerminalManager(t *testing.T) (*Manager, *scope.Store) {
	t.Helper()
	store := scope.NewStore(t.TempDir(), bus.New())
	cfg := config.TerminalConfig{
		MaxPerSession:   2,
		MaxGlobal:       4,
		IdleTimeout:     30 * time.Minute,
		MaxLifetime:     8 * time.Hour,
		ReapInterval:    time.Minute,
		ExecIdleTimeout: 10 * time.Minute,
		RingBufferSize:  100 * 1024,
	}
	m := NewManager(cfg, t.TempDir(), store)
	t.Cleanup(m.Shutdown)
	return m, store
}

func TestInteractiveTerminalLifecycle(t *testing.T) {
	if _, err := resolveShell(""); err != nil {
		t.Skip("no allowed shell on this host")
	}
	m, _ := newTestTerminalManager(t)

	term, err := m.Create("proj", "sess-1", "", 80, 24)
	require.NoError(t, err)
	require.NoError(t, term.Write("echo terminal-says-hi\n"))

	require.Eventually(t, func() bool {
		return strings.Contains(string(term.ring.Bytes()), "terminal-says-hi")
	}, 5*time.Second, 20*time.Millisecond)

	// Attach replays the ring buffer first, then reports attached.
	var mu sync.Mutex
	var events []Event
	term.Attach("client-1", func(e Event) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	})
	mu.Lock()
	require.NotEmpty(t, events)
	assert.Equal(t, EventOutput, events[0].Type)
	assert.Contains(t, events[0].Data, "terminal-says-hi")
	assert.Equal(t, EventAttached, events[1].Type)
	mu.Unlock()

	require.NoError(t, m.Kill(term.ID))
	require.Eventually(t, func() bool {
		exited, _ := term.Exited()
		return exited
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, 0, m.TerminalCount())
}

func TestTerminalLimits(t *testing.T) {
	if _, err := resolveShell(""); err != nil {
		t.Skip("no allowed shell on this host")
	}
	m, _ := newTestTerminalManager(t)

	for i := 0; i < 2; i++ {
		_, err := m.Create("proj", "sess-1", "", 80, 24)
		require.NoError(t, err)
	}
	_, err := m.Create("proj", "sess-1", "", 80, 24)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session terminal limit")

	// Other sessions still fit until the global cap.
	_, err = m.Create("proj", "sess-2", "", 80, 24)
	require.NoError(t, err)
	_, err = m.Create("proj", "sess-3", "", 80, 24)
	require.NoError(t, err)
	_, err = m.Create("proj", "sess-4", "", 80, 24)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "global terminal limit")
}

func TestExecWorkerRoundTrip(t *testing.T) {
	if _, err := resolveShell(""); err != nil {
		t.Skip("no allowed shell on this host")
	}
	m, _ := newTestTerminalManager(t)
	ctx := context.Background()

	res, err := m.Exec(ctx, "proj", "sess-1", "echo exec-output", 10*time.Second)
	require.NoError(t, err)
	assert.False(t, res.TimedOut)
	assert.Equal(t, 0, res.ExitCode)
	assert.Contains(t, res.Output, "exec-output")

	// The worker is reused for the next command on the same key.
	require.Equal(t, 1, m.WorkerCount())
	res, err = m.Exec(ctx, "proj", "sess-1", "false", 10*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)
	assert.Equal(t, 1, m.WorkerCount())
}

func TestExecTimeoutDestroysWorker(t *testing.T) {
	if _, err := resolveShell(""); err != nil {
		t.Skip("no allowed shell on this host")
	}
	m, _ := newTestTerminalManager(t)

	res, err := m.Exec(context.Background(), "proj", "sess-1", "sleep 30", 300*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, res.TimedOut)
	assert.Equal(t, -1, res.ExitCode)
	assert.Equal(t, 0, m.WorkerCount())

	// The next exec builds a fresh worker and succeeds.
	res, err = m.Exec(context.Background(), "proj", "sess-1", "echo back", 10*time.Second)
	require.NoError(t, err)
	assert.False(t, res.TimedOut)
	assert.Contains(t, res.Output, "back")
}
