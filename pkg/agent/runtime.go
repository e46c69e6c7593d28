// Package agent implements the chat core: one-turn orchestration from a
// user message to one appended assistant message, including prompt
// assembly, the sliding context window, streaming consumption, tool
// interleaving, interaction gating, checkpointing, and rollback.
package agent

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/checkpoint"
	"github.com/hymnly133/prizm/pkg/config"
	"github.com/hymnly133/prizm/pkg/llm"
	"github.com/hymnly133/prizm/pkg/locks"
	"github.com/hymnly133/prizm/pkg/memory"
	"github.com/hymnly133/prizm/pkg/models"
	"github.com/hymnly133/prizm/pkg/scope"
)

// ErrTurnInFlight is returned when a session already has an active turn.
var ErrTurnInFlight = fmt.Errorf("session already has a turn in flight")

// ChatOptions tunes one chat turn. The zero value is a plain turn with
// defaults from the runtime config.
type ChatOptions struct {
	Model                     string
	UserID                    string
	SystemPreamble            string
	RulesContent              string
	ActiveSkillInstructions   string
	SkillMetadataForDiscovery string
	WorkflowEditContext       string
	PromptInjection           string
	MemoryTexts               []string
	GrantedPaths              []string
	AllowedTools              []string
	AllowedMCPServerIDs       []string
	Thinking                  bool
	IncludeScopeContext       bool
	SkipMemoryInjection       bool
	SkipMemoryExtract         bool
	FullContextTurns          int // 0 means the configured default
	CachedContextTurns        int
}

// TaskSpawner starts a background session on behalf of a tool call.
// Wired in by the background manager after construction.
type TaskSpawner interface {
	SpawnTask(ctx context.Context, parentScope, parentSessionID, prompt, label string) (string, error)
}

// ExecResult is the outcome of a one-shot exec worker command.
type ExecResult struct {
	Output   string `json:"output"`
	ExitCode int    `json:"exitCode"`
	TimedOut bool   `json:"timedOut"`
}

// Execer runs one-shot commands in a reusable PTY worker. Wired in by the
// terminal manager after construction.
type Execer interface {
	Exec(ctx context.Context, scopeName, sessionID, command string, timeout time.Duration) (*ExecResult, error)
}

type turnSlot struct {
	cancel context.CancelFunc
}

// Runtime is the agent session runtime. One Runtime serves every scope.
type Runtime struct {
	cfg      config.AgentConfig
	store    *scope.Store
	bus      *bus.Bus
	client   llm.Client
	cps      *checkpoint.Store
	mem      *memory.Writer // nil disables memory features
	locks    *locks.Manager
	tools    *ToolRegistry
	commands *CommandRegistry
	counter  *TokenCounter

	spawner TaskSpawner // optional
	execer  Execer      // optional

	mu        sync.Mutex
	turns     map[string]*turnSlot
	interacts map[string]chan InteractResponse
}

// NewRuntime wires the chat core. mem may be nil to disable memory.
func NewRuntime(cfg config.AgentConfig, store *scope.Store, b *bus.Bus, client llm.Client, cps *checkpoint.Store, mem *memory.Writer, lm *locks.Manager) *Runtime {
	r := &Runtime{
		cfg:       cfg,
		store:     store,
		bus:       b,
		client:    client,
		cps:       cps,
		mem:       mem,
		locks:     lm,
		counter:   NewTokenCounter(),
		turns:     make(map[string]*turnSlot),
		interacts: make(map[string]chan InteractResponse),
	}
	r.tools = newToolRegistry(r)
	r.commands = newCommandRegistry(r)
	return r
}

// SetTaskSpawner wires the background session manager in.
func (r *Runtime) SetTaskSpawner(s TaskSpawner) { r.spawner = s }

// SetExecer wires the terminal manager's exec workers in.
func (r *Runtime) SetExecer(e Execer) { r.execer = e }

// Commands exposes the slash command registry for extension.
func (r *Runtime) Commands() *CommandRegistry { return r.commands }

// Tools exposes the tool registry for extension.
func (r *Runtime) Tools() *ToolRegistry { return r.tools }

func turnKey(scopeName, sessionID string) string {
	return scopeName + "/" + sessionID
}

// Chat runs one turn. The returned channel streams chunks and is closed
// when the turn finishes; the terminal chunk is a UsageChunk (done) or an
// ErrorChunk. A session admits at most one in-flight turn.
func (r *Runtime) Chat(ctx context.Context, scopeName, sessionID, userText string, opts ChatOptions) (<-chan models.Chunk, error) {
	sess, err := r.store.GetSession(scopeName, sessionID)
	if err != nil {
		return nil, err
	}

	// Slash commands may bypass the LLM turn entirely.
	if strings.HasPrefix(userText, "/") {
		if handled, ch := r.runCommand(ctx, sess, userText); handled {
			return ch, nil
		}
	}

	key := turnKey(scopeName, sessionID)
	turnCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	r.mu.Lock()
	if _, busy := r.turns[key]; busy {
		r.mu.Unlock()
		cancel()
		return nil, ErrTurnInFlight
	}
	r.turns[key] = &turnSlot{cancel: cancel}
	r.mu.Unlock()

	userMsg := &models.AgentMessage{
		ID:        "msg-" + uuid.New().String(),
		Role:      models.RoleUser,
		Parts:     []*models.MessagePart{{Type: models.PartText, Content: userText}},
		CreatedAt: time.Now(),
	}
	if err := r.store.AppendMessage(turnCtx, scopeName, sessionID, userMsg); err != nil {
		r.releaseTurn(key)
		return nil, err
	}

	// Checkpoint on turn entry: record which user message opened the turn
	// and start collecting pre-images for any file the turn touches.
	sess, err = r.store.GetSession(scopeName, sessionID)
	if err != nil {
		r.releaseTurn(key)
		return nil, err
	}
	cp := checkpoint.NewCheckpoint(sessionID, len(sess.Messages)-1, userText)
	r.cps.InitCollector(sessionID)
	_, err = r.store.UpdateSession(turnCtx, scopeName, sessionID, func(s *models.AgentSession) error {
		s.Checkpoints = append(s.Checkpoints, &cp)
		return nil
	})
	if err != nil {
		r.releaseTurn(key)
		return nil, err
	}

	out := make(chan models.Chunk, 64)
	go r.runTurn(turnCtx, out, scopeName, sessionID, cp, userText, opts)
	return out, nil
}

// Stop cancels the in-flight turn for a session. Idempotent; returns
// whether a turn was actually cancelled.
func (r *Runtime) Stop(scopeName, sessionID string) bool {
	r.mu.Lock()
	slot, ok := r.turns[turnKey(scopeName, sessionID)]
	r.mu.Unlock()
	if !ok {
		return false
	}
	slot.cancel()
	return true
}

func (r *Runtime) releaseTurn(key string) {
	r.mu.Lock()
	if slot, ok := r.turns[key]; ok {
		slot.cancel()
		delete(r.turns, key)
	}
	r.mu.Unlock()
}

// Close releases the LLM client.
func (r *Runtime) Close() error {
	return r.client.Close()
}
