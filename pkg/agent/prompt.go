package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/llm"
	"github.com/hymnly133/prizm/pkg/memory"
	"github.com/hymnly133/prizm/pkg/models"
)

const baseSystemPrompt = `You are the workspace agent. You operate on the user's scoped workspace
through the provided tools. Prefer small, reversible edits. Ask via an
interaction request before destructive operations.`

// assembledPrompt is the outcome of prompt assembly for one turn.
type assembledPrompt struct {
	messages    []llm.PromptMessage
	injectedIDs []string
}

// assemblePrompt builds the provider prompt in fixed section order:
// system prefix, profile memories, context memories, compressed history
// window, per-turn dynamic block, then the current user message.
func (r *Runtime) assemblePrompt(ctx context.Context, sess *models.AgentSession, userText string, opts ChatOptions) *assembledPrompt {
	out := &assembledPrompt{}

	system := baseSystemPrompt
	if opts.SystemPreamble != "" {
		system += "\n\n" + opts.SystemPreamble
	}
	out.messages = append(out.messages, llm.PromptMessage{Role: models.RoleSystem, Content: system})

	if r.mem != nil && !opts.SkipMemoryInjection {
		if block, ids := r.profileBlock(ctx, opts.UserID); block != "" {
			out.messages = append(out.messages, llm.PromptMessage{Role: models.RoleSystem, Content: block})
			out.injectedIDs = append(out.injectedIDs, ids...)
		}
		if r.contextMemoryGate(sess, userText) {
			if block, ids := r.contextBlock(ctx, sess, userText); block != "" {
				out.messages = append(out.messages, llm.PromptMessage{Role: models.RoleSystem, Content: block})
				out.injectedIDs = append(out.injectedIDs, ids...)
			}
		}
	}
	for _, text := range opts.MemoryTexts {
		out.messages = append(out.messages, llm.PromptMessage{Role: models.RoleSystem, Content: "[memory] " + text})
	}

	out.messages = append(out.messages, r.historyWindow(sess)...)

	if dynamic := dynamicBlock(opts); dynamic != "" {
		out.messages = append(out.messages, llm.PromptMessage{Role: models.RoleSystem, Content: dynamic})
	}

	out.messages = append(out.messages, llm.PromptMessage{Role: models.RoleUser, Content: userText})
	return out
}

// contextMemoryGate decides whether scope-level memories are injected:
// substantial queries always, trivial ones only on a fresh session.
func (r *Runtime) contextMemoryGate(sess *models.AgentSession, userText string) bool {
	n := len(strings.TrimSpace(userText))
	if n >= 4 {
		return true
	}
	fresh := len(sess.Messages) <= 1
	return fresh && n >= 1
}

func (r *Runtime) profileBlock(ctx context.Context, userID string) (string, []string) {
	if userID == "" {
		userID = "local"
	}
	rows, err := r.mem.ListProfileMemories(ctx, userID)
	if err != nil || len(rows) == 0 {
		return "", nil
	}
	var b strings.Builder
	b.WriteString("User profile:\n")
	var ids []string
	for _, row := range rows {
		b.WriteString("- " + row.Content + "\n")
		ids = append(ids, row.ID)
	}
	return b.String(), ids
}

func (r *Runtime) contextBlock(ctx context.Context, sess *models.AgentSession, userText string) (string, []string) {
	var b strings.Builder
	var ids []string
	group := sess.Scope
	for _, layer := range []string{memory.LayerEpisodic, memory.LayerForesight, memory.LayerDocument} {
		g := group
		if layer == memory.LayerDocument {
			g = sess.Scope + ":docs"
		}
		hits, err := r.mem.Search(ctx, layer, &g, userText, 3)
		if err != nil {
			slog.Warn("Context memory search failed", "layer", layer, "error", err)
			continue
		}
		for _, hit := range hits {
			b.WriteString("- " + hit.Content + "\n")
			ids = append(ids, hit.ID)
		}
	}
	sessionGroup := sess.Scope + ":session:" + sess.ID
	hits, err := r.mem.Search(ctx, memory.LayerEventLog, &sessionGroup, userText, 2)
	if err == nil {
		for _, hit := range hits {
			b.WriteString("- " + hit.Content + "\n")
			ids = append(ids, hit.ID)
		}
	}
	if b.Len() == 0 {
		return "", nil
	}
	return "Relevant context:\n" + b.String(), ids
}

func dynamicBlock(opts ChatOptions) string {
	var sections []string
	if opts.RulesContent != "" {
		sections = append(sections, "Rules:\n"+opts.RulesContent)
	}
	if opts.ActiveSkillInstructions != "" {
		sections = append(sections, "Active skill:\n"+opts.ActiveSkillInstructions)
	} else if opts.SkillMetadataForDiscovery != "" {
		sections = append(sections, "Available skills:\n"+opts.SkillMetadataForDiscovery)
	}
	if opts.WorkflowEditContext != "" {
		sections = append(sections, "Workflow context:\n"+opts.WorkflowEditContext)
	}
	if opts.PromptInjection != "" {
		sections = append(sections, opts.PromptInjection)
	}
	return strings.Join(sections, "\n\n")
}

// historyWindow converts the session tail past the compression horizon
// into prompt messages. Compression summaries stand in for the rounds
// they replaced.
func (r *Runtime) historyWindow(sess *models.AgentSession) []llm.PromptMessage {
	var out []llm.PromptMessage
	for _, summary := range sess.CompressionSummaries {
		out = append(out, llm.PromptMessage{Role: models.RoleSystem, Content: "Earlier conversation summary:\n" + summary})
	}
	start := 2 * sess.CompressedThroughRound
	if start > len(sess.Messages) {
		start = len(sess.Messages)
	}
	// The current user message is assembled separately.
	tail := sess.Messages[start:]
	if n := len(tail); n > 0 && tail[n-1].Role == models.RoleUser {
		tail = tail[:n-1]
	}
	for _, msg := range tail {
		content := msg.Text()
		if content == "" {
			continue
		}
		out = append(out, llm.PromptMessage{Role: msg.Role, Content: content})
	}
	return out
}

// maybeCompress applies the A/B sliding window: once the uncompressed tail
// reaches A+B complete rounds, the oldest B rounds are folded into a
// summary, stored as a session memory, and the horizon advances by B.
func (r *Runtime) maybeCompress(ctx context.Context, scopeName, sessionID string, opts ChatOptions) {
	a := opts.FullContextTurns
	if a <= 0 {
		a = r.cfg.FullContextTurns
	}
	b := opts.CachedContextTurns
	if b <= 0 {
		b = r.cfg.CachedContextTurns
	}

	sess, err := r.store.GetSession(scopeName, sessionID)
	if err != nil {
		return
	}
	complete := sess.CompleteRounds()
	through := sess.CompressedThroughRound
	if complete-through < a+b {
		return
	}

	start := 2 * through
	end := 2 * (through + b)
	if end > len(sess.Messages) {
		end = len(sess.Messages)
	}
	summary := summarizeRounds(sess.Messages[start:end])

	_, err = r.store.UpdateSession(ctx, scopeName, sessionID, func(s *models.AgentSession) error {
		s.CompressedThroughRound = through + b
		s.CompressionSummaries = append(s.CompressionSummaries, summary)
		return nil
	})
	if err != nil {
		slog.Warn("Failed to persist compression", "session", sessionID, "error", err)
		return
	}

	if r.mem != nil {
		_, err := r.mem.ProcessMemCell(ctx, memory.MemCell{Memories: []memory.ExtractedMemory{{
			Layer:   memory.LayerEventLog,
			Content: "Conversation summary (rounds " + fmt.Sprint(through+1) + "-" + fmt.Sprint(through+b) + "): " + summary,
		}}}, memory.Routing{UserID: opts.UserID, Scope: scopeName, SessionID: sessionID})
		if err != nil {
			slog.Warn("Failed to write session summary memory", "session", sessionID, "error", err)
		}
	}

	r.bus.Emit(ctx, bus.EventSessionCompressing, bus.CompressingPayload{
		Scope:          scopeName,
		SessionID:      sessionID,
		FromRound:      through + 1,
		ThroughRound:   through + b,
		SummaryPreview: truncate(summary, 200),
	})
}

// summarizeRounds builds a compact digest of the compressed messages.
func summarizeRounds(messages []*models.AgentMessage) string {
	var b strings.Builder
	for _, msg := range messages {
		text := strings.TrimSpace(msg.Text())
		if text == "" {
			continue
		}
		b.WriteString(string(msg.Role) + ": " + truncate(text, 300) + "\n")
	}
	return strings.TrimSpace(b.String())
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
