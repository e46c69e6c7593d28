package agent

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/checkpoint"
	"github.com/hymnly133/prizm/pkg/config"
	"github.com/hymnly133/prizm/pkg/llm"
	"github.com/hymnly133/prizm/pkg/locks"
	"github.com/hymnly133/prizm/pkg/models"
	"github.com/hymnly133/prizm/pkg/scope"
)

func newTestRuntime(t *testing.T, client llm.Client) (*Runtime, *scope.Store, *bus.Bus) {
	t.Helper()
	b := bus.New()
	store := scope.NewStore(t.TempDir(), b)
	cfg := config.AgentConfig{
		FullContextTurns:   8,
		CachedContextTurns: 4,
		DefaultModel:       "test-model",
	}
	r := NewRuntime(cfg, store, b, client, checkpoint.NewStore(), nil, locks.NewManager(b))
	t.Cleanup(func() { _ = r.Close() })
	return r, store, b
}

func mkSession(t *testing.T, store *scope.Store, scopeName string) *models.AgentSession {
	t.Helper()
	sess, err := store.CreateSession(context.Background(), scopeName, scope.CreateSessionInput{Title: "test"})
	require.NoError(t, err)
	return sess
}

// drain collects every chunk until the stream closes, invoking onChunk
// (when non-nil) for each one as it arrives.
func drain(t *testing.T, ch <-chan models.Chunk, onChunk func(models.Chunk)) []models.Chunk {
	t.Helper()
	var chunks []models.Chunk
	timeout := time.After(5 * time.Second)
	for {
		select {
		case chunk, ok := <-ch:
			if !ok {
				return chunks
			}
			chunks = append(chunks, chunk)
			if onChunk != nil {
				onChunk(chunk)
			}
		case <-timeout:
			t.Fatal("turn did not finish in time")
		}
	}
}

func finalUsage(t *testing.T, chunks []models.Chunk) *models.UsageChunk {
	t.Helper()
	for i := len(chunks) - 1; i >= 0; i-- {
		if u, ok := chunks[i].(*models.UsageChunk); ok {
			return u
		}
	}
	t.Fatal("no usage chunk in stream")
	return nil
}

func TestChatSimpleTurn(t *testing.T) {
	client := llm.NewScriptedClient([]models.Chunk{
		&models.TextChunk{Content: "Hello, "},
		&models.TextChunk{Content: "world."},
		&models.UsageChunk{Usage: models.Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
	})
	r, store, _ := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "hi there", ChatOptions{})
	require.NoError(t, err)
	chunks := drain(t, ch, nil)

	final := finalUsage(t, chunks)
	assert.True(t, final.Done)
	assert.False(t, final.Stopped)
	assert.Equal(t, 15, final.Usage.TotalTokens)

	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, models.RoleUser, got.Messages[0].Role)
	assert.Equal(t, models.RoleAssistant, got.Messages[1].Role)
	assert.Equal(t, "Hello, world.", got.Messages[1].Text())
	assert.Equal(t, "test-model", got.Messages[1].Model)

	require.Len(t, got.Checkpoints, 1)
	assert.True(t, got.Checkpoints[0].Completed)
	assert.Equal(t, 0, got.Checkpoints[0].MessageIndex)
}

func TestChatEstimatesUsageWhenProviderOmitsIt(t *testing.T) {
	client := llm.NewScriptedClient([]models.Chunk{
		&models.TextChunk{Content: "four score and seven"},
	})
	r, store, _ := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "count this", ChatOptions{})
	require.NoError(t, err)
	chunks := drain(t, ch, nil)

	final := finalUsage(t, chunks)
	assert.Positive(t, final.Usage.InputTokens)
	assert.Positive(t, final.Usage.OutputTokens)
	assert.Equal(t, final.Usage.InputTokens+final.Usage.OutputTokens, final.Usage.TotalTokens)
}

func TestChatRejectsConcurrentTurns(t *testing.T) {
	client := llm.NewBlockingClient()
	r, store, _ := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "first", ChatOptions{})
	require.NoError(t, err)
	<-client.Started

	_, err = r.Chat(context.Background(), "proj", sess.ID, "second", ChatOptions{})
	assert.ErrorIs(t, err, ErrTurnInFlight)

	assert.True(t, r.Stop("proj", sess.ID))
	drain(t, ch, nil)

	// The rejected turn must not have appended its user message.
	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "first", got.Messages[0].Text())
}

func TestChatToolCallWritesFile(t *testing.T) {
	client := llm.NewScriptedClient([]models.Chunk{
		&models.ToolCallChunk{
			ToolID: "t1", Name: "prizm_file_write",
			Arguments: `{"path":"notes.txt","content":"hello"}`,
			Status:    models.ToolStatusRunning,
		},
		&models.TextChunk{Content: "Wrote the file."},
		&models.UsageChunk{Usage: models.Usage{TotalTokens: 20}},
	})
	r, store, b := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	var executed []bus.ToolExecutedPayload
	b.Subscribe(bus.EventToolExecuted, func(ctx context.Context, payload any) error {
		executed = append(executed, payload.(bus.ToolExecutedPayload))
		return nil
	}, "test")

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "write notes", ChatOptions{})
	require.NoError(t, err)
	chunks := drain(t, ch, nil)

	content, err := store.ReadWorkspaceFile("proj", "notes.txt")
	require.NoError(t, err)
	require.NotNil(t, content)
	assert.Equal(t, "hello", *content)

	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	part := got.Messages[1].ToolPart("t1")
	require.NotNil(t, part)
	assert.Equal(t, models.ToolStatusCompleted, part.Status)
	assert.False(t, part.IsError)

	require.Len(t, got.Checkpoints, 1)
	require.Len(t, got.Checkpoints[0].FileChanges, 1)
	assert.Equal(t, "notes.txt", got.Checkpoints[0].FileChanges[0].Path)

	require.Len(t, executed, 1)
	assert.Equal(t, "prizm_file_write", executed[0].ToolName)
	assert.Equal(t, 1, finalUsage(t, chunks).ToolCalls)
}

func TestChatToolErrorDoesNotAbortTurn(t *testing.T) {
	client := llm.NewScriptedClient([]models.Chunk{
		&models.ToolCallChunk{
			ToolID: "t1", Name: "prizm_file_write",
			Arguments: `{"path":"../escape.txt","content":"x"}`,
			Status:    models.ToolStatusRunning,
		},
		&models.TextChunk{Content: "That path is outside the scope."},
		&models.UsageChunk{Usage: models.Usage{TotalTokens: 8}},
	})
	r, store, _ := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "write outside", ChatOptions{})
	require.NoError(t, err)
	drain(t, ch, nil)

	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	part := got.Messages[1].ToolPart("t1")
	require.NotNil(t, part)
	assert.Equal(t, models.ToolStatusError, part.Status)
	assert.True(t, part.IsError)
	assert.Equal(t, "That path is outside the scope.", got.Messages[1].Text())
}

func TestChatDisallowedToolIsRefused(t *testing.T) {
	client := llm.NewScriptedClient([]models.Chunk{
		&models.ToolCallChunk{
			ToolID: "t1", Name: "prizm_file_delete",
			Arguments: `{"path":"notes.txt"}`,
			Status:    models.ToolStatusRunning,
		},
		&models.UsageChunk{},
	})
	r, store, _ := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")
	require.NoError(t, store.WriteWorkspaceFile(context.Background(), "proj", "notes.txt", "keep me", ""))

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "delete it", ChatOptions{
		AllowedTools: []string{"prizm_file_write"},
	})
	require.NoError(t, err)
	drain(t, ch, nil)

	content, err := store.ReadWorkspaceFile("proj", "notes.txt")
	require.NoError(t, err)
	require.NotNil(t, content)

	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	part := got.Messages[1].ToolPart("t1")
	require.NotNil(t, part)
	assert.True(t, part.IsError)
	assert.Contains(t, part.Result, "not allowed")
}

func TestStopBeforeContentPersistsNothing(t *testing.T) {
	client := llm.NewBlockingClient()
	r, store, _ := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "hang", ChatOptions{})
	require.NoError(t, err)
	<-client.Started
	require.True(t, r.Stop("proj", sess.ID))
	drain(t, ch, nil)

	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	// Only the user message survives; no assistant message is fabricated.
	require.Len(t, got.Messages, 1)
	assert.Equal(t, models.RoleUser, got.Messages[0].Role)

	// Stop on an idle session reports false.
	assert.False(t, r.Stop("proj", sess.ID))
}

// partialClient emits some text and then blocks until cancelled.
type partialClient struct {
	started chan struct{}
}

func (c *partialClient) Generate(ctx context.Context, input *llm.GenerateInput) (<-chan models.Chunk, error) {
	out := make(chan models.Chunk, 1)
	go func() {
		defer close(out)
		out <- &models.TextChunk{Content: "partial answer"}
		close(c.started)
		<-ctx.Done()
	}()
	return out, nil
}

func (c *partialClient) Close() error { return nil }

func TestStopAfterContentPersistsStoppedMessage(t *testing.T) {
	client := &partialClient{started: make(chan struct{})}
	r, store, _ := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "start talking", ChatOptions{})
	require.NoError(t, err)
	<-client.started
	require.True(t, r.Stop("proj", sess.ID))
	chunks := drain(t, ch, nil)

	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "partial answer", got.Messages[1].Text())
	assert.True(t, got.Messages[1].Stopped)

	final := finalUsage(t, chunks)
	assert.True(t, final.Stopped)
	assert.True(t, final.Done)
}

func TestInteractDeniedOnCancel(t *testing.T) {
	client := llm.NewScriptedClient([]models.Chunk{
		&models.TextChunk{Content: "I need approval first."},
		&models.ToolPreparingChunk{ToolID: "t1", Name: "prizm_file_delete"},
		&models.InteractRequestChunk{RequestID: "rq-1", ToolID: "t1", Prompt: "Delete notes.txt?"},
	})
	r, store, _ := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "clean up", ChatOptions{})
	require.NoError(t, err)
	drain(t, ch, func(chunk models.Chunk) {
		if _, ok := chunk.(*models.InteractRequestChunk); ok {
			r.Stop("proj", sess.ID)
		}
	})

	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	part := got.Messages[1].ToolPart("t1")
	require.NotNil(t, part)
	assert.Equal(t, models.ToolStatusCancelled, part.Status)
	assert.Equal(t, "denied by user", part.Result)
	assert.True(t, part.IsError)
}

func TestResolveInteractionApproved(t *testing.T) {
	client := llm.NewScriptedClient([]models.Chunk{
		&models.InteractRequestChunk{RequestID: "rq-1", Prompt: "Proceed?"},
		&models.TextChunk{Content: "Approved, continuing."},
		&models.UsageChunk{Usage: models.Usage{TotalTokens: 5}},
	})
	r, store, _ := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "do it", ChatOptions{})
	require.NoError(t, err)
	drain(t, ch, func(chunk models.Chunk) {
		if req, ok := chunk.(*models.InteractRequestChunk); ok {
			go func() {
				// The resolution arrives out of band, as an API call would.
				for !r.ResolveInteraction(req.RequestID, true, nil) {
					time.Sleep(time.Millisecond)
				}
			}()
		}
	})

	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "Approved, continuing.", got.Messages[1].Text())

	// A second resolve for the same request finds nobody waiting.
	assert.False(t, r.ResolveInteraction("rq-1", true, nil))
}

func TestUnknownCommand(t *testing.T) {
	client := llm.NewScriptedClient()
	r, store, _ := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "/bogus", ChatOptions{})
	require.NoError(t, err)
	chunks := drain(t, ch, nil)

	require.Len(t, chunks, 2)
	result, ok := chunks[0].(*models.CommandResultChunk)
	require.True(t, ok)
	assert.Equal(t, "/bogus", result.Command)
	assert.Contains(t, result.Text, "Unknown command /bogus")

	// No LLM call happened.
	assert.Empty(t, client.Calls())
}

func TestHelpCommandListsRegistered(t *testing.T) {
	client := llm.NewScriptedClient()
	r, store, _ := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "/help", ChatOptions{})
	require.NoError(t, err)
	chunks := drain(t, ch, nil)

	result, ok := chunks[0].(*models.CommandResultChunk)
	require.True(t, ok)
	assert.Contains(t, result.Text, "/help")
	assert.Contains(t, result.Text, "/status")

	// The command transcript lands in the session as a system message.
	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, models.RoleSystem, got.Messages[0].Role)
}

func TestCompressionAdvancesWindow(t *testing.T) {
	client := llm.NewScriptedClient([]models.Chunk{
		&models.TextChunk{Content: "fresh answer"},
		&models.UsageChunk{Usage: models.Usage{TotalTokens: 4}},
	})
	r, store, b := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		require.NoError(t, store.AppendMessage(ctx, "proj", sess.ID, &models.AgentMessage{
			ID: fmt.Sprintf("u-%d", i), Role: models.RoleUser,
			Parts: []*models.MessagePart{{Type: models.PartText, Content: "question"}},
		}))
		require.NoError(t, store.AppendMessage(ctx, "proj", sess.ID, &models.AgentMessage{
			ID: fmt.Sprintf("a-%d", i), Role: models.RoleAssistant,
			Parts: []*models.MessagePart{{Type: models.PartText, Content: "answer"}},
		}))
	}

	var compressing *bus.CompressingPayload
	b.Subscribe(bus.EventSessionCompressing, func(ctx context.Context, payload any) error {
		p := payload.(bus.CompressingPayload)
		compressing = &p
		return nil
	}, "test")

	ch, err := r.Chat(ctx, "proj", sess.ID, "one more", ChatOptions{
		FullContextTurns:   2,
		CachedContextTurns: 1,
	})
	require.NoError(t, err)
	drain(t, ch, nil)

	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.CompressedThroughRound)
	require.Len(t, got.CompressionSummaries, 1)
	assert.Contains(t, got.CompressionSummaries[0], "question")

	require.NotNil(t, compressing)
	assert.Equal(t, 1, compressing.FromRound)
	assert.Equal(t, 1, compressing.ThroughRound)
}

func TestCompressionBelowThresholdIsNoop(t *testing.T) {
	client := llm.NewScriptedClient([]models.Chunk{
		&models.TextChunk{Content: "ok"},
		&models.UsageChunk{},
	})
	r, store, _ := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "first question", ChatOptions{
		FullContextTurns:   2,
		CachedContextTurns: 1,
	})
	require.NoError(t, err)
	drain(t, ch, nil)

	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.CompressedThroughRound)
	assert.Empty(t, got.CompressionSummaries)
}
