package agent

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/checkpoint"
	"github.com/hymnly133/prizm/pkg/llm"
	"github.com/hymnly133/prizm/pkg/memory"
	"github.com/hymnly133/prizm/pkg/models"
)

// runTurn consumes the provider stream and drives the whole turn. It owns
// the assistant message under construction; nothing else mutates the
// session tail while the turn is in flight.
func (r *Runtime) runTurn(ctx context.Context, out chan<- models.Chunk, scopeName, sessionID string, cp models.Checkpoint, userText string, opts ChatOptions) {
	key := turnKey(scopeName, sessionID)
	defer close(out)
	defer r.releaseTurn(key)

	r.maybeCompress(ctx, scopeName, sessionID, opts)

	sess, err := r.store.GetSession(scopeName, sessionID)
	if err != nil {
		send(ctx, out, &models.ErrorChunk{Message: err.Error()})
		return
	}

	prompt := r.assemblePrompt(ctx, sess, userText, opts)
	if len(prompt.injectedIDs) > 0 {
		send(ctx, out, &models.MemoryInjectedChunk{MemoryIDs: prompt.injectedIDs})
	}

	model := opts.Model
	if model == "" {
		model = r.cfg.DefaultModel
	}
	stream, err := r.client.Generate(ctx, r.generateInput(prompt, sessionID, model, opts))
	if err != nil {
		send(ctx, out, &models.ErrorChunk{Message: err.Error(), Retryable: true})
		return
	}

	msg := &models.AgentMessage{
		ID:        "msg-" + uuid.New().String(),
		Role:      models.RoleAssistant,
		Parts:     []*models.MessagePart{},
		CreatedAt: time.Now(),
		Model:     model,
	}
	var usage models.Usage
	toolCalls := 0
	stopped := false
	errored := false

consume:
	for {
		select {
		case <-ctx.Done():
			stopped = true
			break consume
		case chunk, ok := <-stream:
			if !ok {
				break consume
			}
			switch c := chunk.(type) {
			case *models.TextChunk:
				msg.AppendText(c.Content)
				send(ctx, out, chunk)
			case *models.ReasoningChunk:
				msg.Reasoning += c.Content
				send(ctx, out, chunk)
			case *models.ToolPreparingChunk:
				msg.MergeToolPart(models.MessagePart{ToolID: c.ToolID, ToolName: c.Name, Status: models.ToolStatusPreparing})
				send(ctx, out, chunk)
			case *models.ToolArgsDeltaChunk:
				if part := msg.ToolPart(c.ToolID); part != nil {
					part.Arguments += c.Delta
				}
				send(ctx, out, chunk)
			case *models.ToolCallChunk:
				send(ctx, out, chunk)
				merged := msg.MergeToolPart(models.MessagePart{
					ToolID: c.ToolID, ToolName: c.Name, Arguments: c.Arguments,
					Result: c.Result, Status: c.Status, IsError: c.IsError,
				})
				if !c.Status.IsTerminal() {
					toolCalls++
					r.executeTool(ctx, out, scopeName, sessionID, msg, merged, opts)
				}
			case *models.ToolResultChunk:
				send(ctx, out, chunk)
			case *models.ToolProgressChunk:
				send(ctx, out, chunk)
			case *models.InteractRequestChunk:
				send(ctx, out, chunk)
				resp := r.waitForInteraction(ctx, c.RequestID)
				if resp.Denied() && c.ToolID != "" {
					msg.MergeToolPart(models.MessagePart{
						ToolID: c.ToolID, Status: models.ToolStatusCancelled,
						Result: "denied by user", IsError: true,
					})
				}
			case *models.UsageChunk:
				usage = c.Usage
				break consume
			case *models.ErrorChunk:
				send(ctx, out, chunk)
				errored = true
				break consume
			default:
				send(ctx, out, chunk)
			}
		}
	}

	if len(msg.Parts) == 0 && msg.Reasoning == "" {
		// Nothing produced: cancelled or failed before any content, no
		// assistant message is persisted.
		if !stopped && !errored {
			send(ctx, out, &models.UsageChunk{Model: model, Usage: usage, Done: true})
		}
		return
	}

	r.finalize(ctx, out, scopeName, sessionID, cp, userText, msg, usage, prompt, toolCalls, stopped, opts)
}

// finalize persists the assistant message, completes the checkpoint,
// runs memory extraction, and emits the terminal chunk. Runs exactly once
// per turn that produced content.
func (r *Runtime) finalize(ctx context.Context, out chan<- models.Chunk, scopeName, sessionID string, cp models.Checkpoint, userText string, msg *models.AgentMessage, usage models.Usage, prompt *assembledPrompt, toolCalls int, stopped bool, opts ChatOptions) {
	// Persistence must survive the turn's cancellation.
	pctx := context.WithoutCancel(ctx)

	if usage.TotalTokens == 0 {
		usage = r.counter.Estimate(prompt.messages, msg)
	}
	msg.Usage = &usage
	msg.Stopped = stopped

	refs := &models.MemoryRefs{Injected: prompt.injectedIDs}
	if r.mem != nil && !opts.SkipMemoryExtract && r.extractAllowed(scopeName, sessionID) {
		created, err := r.extractRoundMemory(pctx, scopeName, sessionID, userText, msg, opts)
		if err != nil {
			slog.Warn("Memory extraction failed", "session", sessionID, "error", err)
		} else {
			refs.Created = created
		}
	}
	if len(refs.Injected) > 0 || len(refs.Created) > 0 {
		msg.MemoryRefs = refs
	}

	if err := r.store.AppendMessage(pctx, scopeName, sessionID, msg); err != nil {
		send(ctx, out, &models.ErrorChunk{Message: "failed to persist assistant message: " + err.Error()})
		return
	}

	changes := checkpoint.ExtractFileChanges(msg)
	completed := checkpoint.Complete(cp, changes)
	_, err := r.store.UpdateSession(pctx, scopeName, sessionID, func(s *models.AgentSession) error {
		for i, existing := range s.Checkpoints {
			if existing.ID == cp.ID {
				s.Checkpoints[i] = &completed
				break
			}
		}
		return nil
	})
	if err != nil {
		slog.Warn("Failed to complete checkpoint", "checkpoint", cp.ID, "error", err)
	}
	snapshots := r.cps.Flush(sessionID)
	if err := r.cps.WriteSnapshots(r.store.Root(scopeName), sessionID, cp.ID, snapshots); err != nil {
		slog.Warn("Failed to write checkpoint snapshots", "checkpoint", cp.ID, "error", err)
	}

	r.bus.Emit(pctx, bus.EventMessageCompleted, bus.MessageCompletedPayload{
		Scope:     scopeName,
		SessionID: sessionID,
		MessageID: msg.ID,
		Role:      msg.Role,
		Usage:     msg.Usage,
		Stopped:   stopped,
	})

	// Delivered even after cancellation so clients observe stopped=true.
	sendFinal(out, &models.UsageChunk{
		Model:      msg.Model,
		Usage:      usage,
		ToolCalls:  toolCalls,
		MessageID:  msg.ID,
		Stopped:    stopped,
		MemoryRefs: msg.MemoryRefs,
		Done:       true,
	})
}

// generateInput converts the assembled prompt into the provider request.
func (r *Runtime) generateInput(prompt *assembledPrompt, sessionID, model string, opts ChatOptions) *llm.GenerateInput {
	return &llm.GenerateInput{
		SessionID: sessionID,
		Model:     model,
		Messages:  prompt.messages,
		Tools:     r.tools.Specs(opts.AllowedTools),
		Thinking:  opts.Thinking,
	}
}

// extractAllowed consults the session's memory policy.
func (r *Runtime) extractAllowed(scopeName, sessionID string) bool {
	sess, err := r.store.GetSession(scopeName, sessionID)
	if err != nil {
		return false
	}
	if sess.BgMeta != nil {
		return !sess.BgMeta.MemoryPolicy.SkipPerRoundExtract
	}
	return true
}

// extractRoundMemory writes the per-round event log memory and returns
// created memory ids.
func (r *Runtime) extractRoundMemory(ctx context.Context, scopeName, sessionID, userText string, msg *models.AgentMessage, opts ChatOptions) ([]string, error) {
	content := "user: " + truncate(userText, 500)
	if text := msg.Text(); text != "" {
		content += "\nassistant: " + truncate(text, 500)
	}
	result, err := r.mem.ProcessMemCell(ctx, memory.MemCell{Memories: []memory.ExtractedMemory{{
		Layer:   memory.LayerEventLog,
		Content: content,
	}}}, memory.Routing{UserID: opts.UserID, Scope: scopeName, SessionID: sessionID})
	if err != nil {
		return nil, err
	}
	return result.Created, nil
}

func send(ctx context.Context, out chan<- models.Chunk, chunk models.Chunk) {
	select {
	case <-ctx.Done():
	case out <- chunk:
	}
}

// sendFinal delivers a terminal chunk without blocking on a reader that
// already went away.
func sendFinal(out chan<- models.Chunk, chunk models.Chunk) {
	select {
	case out <- chunk:
	default:
	}
}
