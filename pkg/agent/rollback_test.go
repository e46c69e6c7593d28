package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/llm"
	"github.com/hymnly133/prizm/pkg/models"
	"github.com/hymnly133/prizm/pkg/scope"
)

func TestRollbackCascade(t *testing.T) {
	client := llm.NewScriptedClient(
		[]models.Chunk{
			&models.TextChunk{Content: "turn one"},
			&models.UsageChunk{Usage: models.Usage{TotalTokens: 3}},
		},
		[]models.Chunk{
			&models.ToolCallChunk{
				ToolID: "t1", Name: "prizm_create_document",
				Arguments: `{"title":"Notes","content":"alpha"}`,
				Status:    models.ToolStatusRunning,
			},
			&models.ToolCallChunk{
				ToolID: "t2", Name: "prizm_file_write",
				Arguments: `{"path":"a.txt","content":"v2"}`,
				Status:    models.ToolStatusRunning,
			},
			&models.TextChunk{Content: "turn two"},
			&models.UsageChunk{Usage: models.Usage{TotalTokens: 9}},
		},
		[]models.Chunk{
			&models.ToolCallChunk{
				ToolID: "t3", Name: "prizm_file_write",
				Arguments: `{"path":"a.txt","content":"v3"}`,
				Status:    models.ToolStatusRunning,
			},
			&models.UsageChunk{Usage: models.Usage{TotalTokens: 7}},
		},
	)
	r, store, b := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")
	ctx := context.Background()
	require.NoError(t, store.WriteWorkspaceFile(ctx, "proj", "a.txt", "v1", ""))

	for _, prompt := range []string{"say hi", "make a doc and edit a", "edit a again"} {
		ch, err := r.Chat(ctx, "proj", sess.ID, prompt, ChatOptions{})
		require.NoError(t, err)
		drain(t, ch, nil)
	}

	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 6)
	require.Len(t, got.Checkpoints, 3)
	docs, err := store.ListDocuments("proj")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	content, err := store.ReadWorkspaceFile("proj", "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "v3", *content)

	var rolled *bus.RollbackPayload
	b.Subscribe(bus.EventSessionRolledBack, func(ctx context.Context, payload any) error {
		p := payload.(bus.RollbackPayload)
		rolled = &p
		return nil
	}, "test")

	// Rewind to before turn two: it and everything after it is discarded.
	target := got.Checkpoints[1]
	require.NoError(t, r.RollbackToCheckpoint(ctx, "proj", sess.ID, target.ID))

	got, err = store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "turn one", got.Messages[1].Text())
	require.Len(t, got.Checkpoints, 1)

	// The document created in the discarded turn is gone.
	docs, err = store.ListDocuments("proj")
	require.NoError(t, err)
	assert.Empty(t, docs)

	// The file restores to its pre-turn-two state, not turn three's input.
	content, err = store.ReadWorkspaceFile("proj", "a.txt")
	require.NoError(t, err)
	require.NotNil(t, content)
	assert.Equal(t, "v1", *content)

	require.NotNil(t, rolled)
	assert.Equal(t, target.ID, rolled.CheckpointID)
	assert.Equal(t, 2, rolled.MessageIndex)
	require.Len(t, rolled.RemovedCheckpointIDs, 2)
	assert.Equal(t, target.ID, rolled.RemovedCheckpointIDs[0])
	assert.Contains(t, rolled.RestoredPaths, "a.txt")
}

func TestRollbackRestoresUpdatedDocument(t *testing.T) {
	r, store, _ := newTestRuntime(t, llm.NewScriptedClient())
	sess := mkSession(t, store, "proj")
	ctx := context.Background()

	doc, err := store.CreateDocument(ctx, "proj", "Plan", "original body", "", nil)
	require.NoError(t, err)

	r.client.(*llm.ScriptedClient).Enqueue(
		&models.ToolCallChunk{
			ToolID: "t1", Name: "prizm_update_document",
			Arguments: `{"id":"` + doc.ID + `","content":"rewritten"}`,
			Status:    models.ToolStatusRunning,
		},
		&models.TextChunk{Content: "updated"},
		&models.UsageChunk{},
	)
	ch, err := r.Chat(ctx, "proj", sess.ID, "rewrite the plan", ChatOptions{})
	require.NoError(t, err)
	drain(t, ch, nil)

	updated, err := store.GetDocument("proj", doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", updated.Content)

	got, err := store.GetSession("proj", sess.ID)
	require.NoError(t, err)
	require.NoError(t, r.RollbackToCheckpoint(ctx, "proj", sess.ID, got.Checkpoints[0].ID))

	restored, err := store.GetDocument("proj", doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "original body", restored.Content)
	assert.Equal(t, "Plan", restored.Title)
}

func TestRollbackUnknownCheckpoint(t *testing.T) {
	r, store, _ := newTestRuntime(t, llm.NewScriptedClient())
	sess := mkSession(t, store, "proj")

	err := r.RollbackToCheckpoint(context.Background(), "proj", sess.ID, "cp-missing")
	assert.ErrorIs(t, err, scope.ErrNotFound)
}

func TestRollbackRefusedDuringTurn(t *testing.T) {
	client := llm.NewBlockingClient()
	r, store, _ := newTestRuntime(t, client)
	sess := mkSession(t, store, "proj")

	ch, err := r.Chat(context.Background(), "proj", sess.ID, "hang", ChatOptions{})
	require.NoError(t, err)
	<-client.Started

	err = r.RollbackToCheckpoint(context.Background(), "proj", sess.ID, "cp-any")
	assert.ErrorIs(t, err, ErrTurnInFlight)

	r.Stop("proj", sess.ID)
	drain(t, ch, nil)
}
