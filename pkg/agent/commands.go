package agent

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hymnly133/prizm/pkg/models"
)

// CommandMode decides what happens with a command's output.
type CommandMode string

// Command modes: message appends a system message and skips the LLM turn;
// prompt injects the text into the next turn's history.
const (
	CommandModeMessage CommandMode = "message"
	CommandModePrompt  CommandMode = "prompt"
)

// CommandResult is the outcome of a slash command.
type CommandResult struct {
	Mode CommandMode
	Text string
}

// CommandContext is what a command handler sees.
type CommandContext struct {
	Scope   string
	Session *models.AgentSession
	Args    string
}

// CommandHandler runs one slash command.
type CommandHandler func(ctx context.Context, cc *CommandContext) (*CommandResult, error)

// CommandRegistry holds the registered slash commands.
type CommandRegistry struct {
	mu       sync.RWMutex
	handlers map[string]CommandHandler
	help     map[string]string
}

func newCommandRegistry(r *Runtime) *CommandRegistry {
	reg := &CommandRegistry{
		handlers: make(map[string]CommandHandler),
		help:     make(map[string]string),
	}
	reg.Register("help", "list available commands", func(ctx context.Context, cc *CommandContext) (*CommandResult, error) {
		reg.mu.RLock()
		names := make([]string, 0, len(reg.handlers))
		for name := range reg.handlers {
			names = append(names, name)
		}
		reg.mu.RUnlock()
		sort.Strings(names)
		var b strings.Builder
		b.WriteString("Available commands:\n")
		for _, name := range names {
			b.WriteString(fmt.Sprintf("  /%s - %s\n", name, reg.help[name]))
		}
		return &CommandResult{Mode: CommandModeMessage, Text: b.String()}, nil
	})
	reg.Register("status", "show session status", func(ctx context.Context, cc *CommandContext) (*CommandResult, error) {
		s := cc.Session
		text := fmt.Sprintf("session %s (%s)\nmessages: %d, rounds: %d, compressed through round %d, checkpoints: %d",
			s.ID, s.Kind, len(s.Messages), s.CompleteRounds(), s.CompressedThroughRound, len(s.Checkpoints))
		if s.BgStatus != "" {
			text += fmt.Sprintf("\nbg status: %s", s.BgStatus)
		}
		return &CommandResult{Mode: CommandModeMessage, Text: text}, nil
	})
	return reg
}

// Register adds a command by bare name (no leading slash).
func (reg *CommandRegistry) Register(name, help string, handler CommandHandler) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.handlers[name] = handler
	reg.help[name] = help
}

func (reg *CommandRegistry) lookup(name string) (CommandHandler, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	h, ok := reg.handlers[name]
	return h, ok
}

// runCommand handles a leading-slash user text. Message-mode commands
// (and unknown commands) complete without an LLM turn and return
// (true, channel); prompt-mode commands return (false, nil) after stashing
// nothing; the caller proceeds with a normal turn and the command text
// travels via ChatOptions.PromptInjection upstream.
func (r *Runtime) runCommand(ctx context.Context, sess *models.AgentSession, userText string) (bool, <-chan models.Chunk) {
	name, args, _ := strings.Cut(strings.TrimPrefix(userText, "/"), " ")
	handler, ok := r.commands.lookup(name)

	var result *CommandResult
	if !ok {
		result = &CommandResult{
			Mode: CommandModeMessage,
			Text: fmt.Sprintf("Unknown command /%s. Try /help.", name),
		}
	} else {
		var err error
		result, err = handler(ctx, &CommandContext{Scope: sess.Scope, Session: sess, Args: strings.TrimSpace(args)})
		if err != nil {
			result = &CommandResult{Mode: CommandModeMessage, Text: "command failed: " + err.Error()}
		}
	}

	if result.Mode == CommandModePrompt {
		// The note joins the turn history as a per-turn system message.
		_ = r.store.AppendMessage(ctx, sess.Scope, sess.ID, &models.AgentMessage{
			ID:        "msg-" + uuid.New().String(),
			Role:      models.RoleSystem,
			Parts:     []*models.MessagePart{{Type: models.PartText, Content: result.Text}},
			CreatedAt: time.Now(),
		})
		return false, nil
	}

	_ = r.store.AppendMessage(ctx, sess.Scope, sess.ID, &models.AgentMessage{
		ID:        "msg-" + uuid.New().String(),
		Role:      models.RoleSystem,
		Parts:     []*models.MessagePart{{Type: models.PartText, Content: result.Text}},
		CreatedAt: time.Now(),
	})

	out := make(chan models.Chunk, 2)
	out <- &models.CommandResultChunk{Command: "/" + name, Text: result.Text}
	out <- &models.UsageChunk{Done: true}
	close(out)
	return true, out
}
