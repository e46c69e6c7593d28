package background

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnly133/prizm/pkg/agent"
	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/checkpoint"
	"github.com/hymnly133/prizm/pkg/config"
	"github.com/hymnly133/prizm/pkg/llm"
	"github.com/hymnly133/prizm/pkg/locks"
	"github.com/hymnly133/prizm/pkg/models"
	"github.com/hymnly133/prizm/pkg/scope"
)

func newTestManager(t *testing.T, client llm.Client, bgCfg config.BackgroundConfig) (*Manager, *scope.Store, *bus.Bus) {
	t.Helper()
	b := bus.New()
	store := scope.NewStore(t.TempDir(), b)
	rt := agent.NewRuntime(config.AgentConfig{
		FullContextTurns:   8,
		CachedContextTurns: 4,
		DefaultModel:       "test-model",
	}, store, b, client, checkpoint.NewStore(), nil, locks.NewManager(b))
	t.Cleanup(func() { _ = rt.Close() })
	m := NewManager(bgCfg, store, rt, b)
	rt.SetTaskSpawner(m)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = m.Shutdown(ctx)
	})
	return m, store, b
}

func defaultBgCfg() config.BackgroundConfig {
	return config.BackgroundConfig{MaxGlobal: 5, MaxDepth: 2, DefaultTimeout: 5 * time.Second}
}

func setResultScript(result, text string) []models.Chunk {
	return []models.Chunk{
		&models.ToolCallChunk{
			ToolID: "t1", Name: "prizm_set_result",
			Arguments: `{"result":"` + result + `"}`,
			Status:    models.ToolStatusRunning,
		},
		&models.TextChunk{Content: text},
		&models.UsageChunk{Usage: models.Usage{TotalTokens: 5}},
	}
}

func TestTriggerSyncRunsToCompletion(t *testing.T) {
	client := llm.NewScriptedClient(setResultScript("done-42", "finished the task"))
	m, store, b := newTestManager(t, client, defaultBgCfg())

	var completed *bus.BgResultPayload
	b.Subscribe(bus.EventBgCompleted, func(ctx context.Context, payload any) error {
		p := payload.(bus.BgResultPayload)
		completed = &p
		return nil
	}, "test")

	result, err := m.TriggerSync(context.Background(), TriggerSpec{
		Scope:   "proj",
		Trigger: models.TriggerAPI,
		Prompt:  "do the thing",
		Label:   "nightly-check",
	})
	require.NoError(t, err)
	assert.Equal(t, "done-42", result)

	require.NotNil(t, completed)
	assert.Equal(t, "done-42", completed.Result)
	assert.Equal(t, "nightly-check", completed.Label)

	sessions := store.ListSessions("proj")
	require.Len(t, sessions, 1)
	sess := sessions[0]
	assert.Equal(t, models.SessionKindBackground, sess.Kind)
	assert.Equal(t, models.BgStatusCompleted, sess.BgStatus)
	assert.Equal(t, "done-42", sess.BgResult)
	require.NotNil(t, sess.FinishedAt)
	require.NotNil(t, sess.BgMeta)
	assert.Equal(t, 1, sess.BgMeta.Depth)
	assert.True(t, sess.BgMeta.MemoryPolicy.SkipPerRoundExtract)
	assert.False(t, sess.BgMeta.MemoryPolicy.SkipDocumentExtract)
	assert.Equal(t, 0, m.ActiveCount())
}

func TestResultGuardGrantsOneCorrectiveTurn(t *testing.T) {
	client := llm.NewScriptedClient(
		[]models.Chunk{
			&models.TextChunk{Content: "I did the work but forgot the result."},
			&models.UsageChunk{},
		},
		setResultScript("late-result", "recorded now"),
	)
	m, _, _ := newTestManager(t, client, defaultBgCfg())

	result, err := m.TriggerSync(context.Background(), TriggerSpec{
		Scope: "proj", Trigger: models.TriggerAPI, Prompt: "work",
	})
	require.NoError(t, err)
	assert.Equal(t, "late-result", result)
	require.Len(t, client.Calls(), 2)
}

func TestResultGuardFallsBackToLastReply(t *testing.T) {
	client := llm.NewScriptedClient(
		[]models.Chunk{&models.TextChunk{Content: "first reply"}, &models.UsageChunk{}},
		[]models.Chunk{&models.TextChunk{Content: "second reply"}, &models.UsageChunk{}},
	)
	m, _, _ := newTestManager(t, client, defaultBgCfg())

	result, err := m.TriggerSync(context.Background(), TriggerSpec{
		Scope: "proj", Trigger: models.TriggerAPI, Prompt: "work",
	})
	require.NoError(t, err)
	assert.Equal(t, "second reply", result)
}

func TestDepthLimitRefusesDeepNesting(t *testing.T) {
	m, store, _ := newTestManager(t, llm.NewScriptedClient(), defaultBgCfg())

	parent, err := store.CreateSession(context.Background(), "proj", scope.CreateSessionInput{
		Kind: models.SessionKindBackground,
		BgMeta: &models.BgMeta{
			TriggerType:  models.TriggerAPI,
			Depth:        2,
			MemoryPolicy: models.BackgroundMemoryDefaults(),
		},
	})
	require.NoError(t, err)

	_, err = m.Trigger(context.Background(), TriggerSpec{
		Scope:           "proj",
		ParentSessionID: parent.ID,
		Trigger:         models.TriggerToolSpawn,
		Prompt:          "too deep",
	})
	var limitErr *ConcurrencyLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Contains(t, limitErr.Error(), "depth limit")
}

func TestGlobalLimitRefusesOverflow(t *testing.T) {
	client := llm.NewBlockingClient()
	cfg := defaultBgCfg()
	cfg.MaxGlobal = 1
	m, _, _ := newTestManager(t, client, cfg)

	id, err := m.Trigger(context.Background(), TriggerSpec{
		Scope: "proj", Trigger: models.TriggerAPI, Prompt: "hold the slot",
	})
	require.NoError(t, err)
	<-client.Started

	_, err = m.Trigger(context.Background(), TriggerSpec{
		Scope: "proj", Trigger: models.TriggerAPI, Prompt: "one too many",
	})
	var limitErr *ConcurrencyLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Contains(t, limitErr.Error(), "global concurrency limit")

	m.Cancel(id)
}

func TestCancelMarksSessionCancelled(t *testing.T) {
	client := llm.NewBlockingClient()
	m, store, b := newTestManager(t, client, defaultBgCfg())

	cancelled := make(chan bus.BgResultPayload, 1)
	b.Subscribe(bus.EventBgCancelled, func(ctx context.Context, payload any) error {
		cancelled <- payload.(bus.BgResultPayload)
		return nil
	}, "test")

	id, err := m.Trigger(context.Background(), TriggerSpec{
		Scope: "proj", Trigger: models.TriggerAPI, Prompt: "long job",
	})
	require.NoError(t, err)
	<-client.Started
	require.True(t, m.IsRunning(id))
	require.True(t, m.Cancel(id))

	select {
	case <-cancelled:
	case <-time.After(5 * time.Second):
		t.Fatal("no cancellation event")
	}

	sess, err := store.GetSession("proj", id)
	require.NoError(t, err)
	assert.Equal(t, models.BgStatusCancelled, sess.BgStatus)
	assert.False(t, m.IsRunning(id))

	// A second cancel finds nothing running.
	assert.False(t, m.Cancel(id))
}

func TestTimeoutMarksSessionTimedOut(t *testing.T) {
	client := llm.NewBlockingClient()
	m, store, b := newTestManager(t, client, defaultBgCfg())

	timedOut := make(chan bus.BgResultPayload, 1)
	b.Subscribe(bus.EventBgTimeout, func(ctx context.Context, payload any) error {
		timedOut <- payload.(bus.BgResultPayload)
		return nil
	}, "test")

	id, err := m.Trigger(context.Background(), TriggerSpec{
		Scope:     "proj",
		Trigger:   models.TriggerAPI,
		Prompt:    "never finishes",
		TimeoutMs: 50,
	})
	require.NoError(t, err)

	var payload bus.BgResultPayload
	select {
	case payload = <-timedOut:
	case <-time.After(5 * time.Second):
		t.Fatal("no timeout event")
	}
	assert.Equal(t, id, payload.SessionID)

	sess, err := store.GetSession("proj", id)
	require.NoError(t, err)
	assert.Equal(t, models.BgStatusTimeout, sess.BgStatus)
}

func TestSpawnTaskAnnouncesToParent(t *testing.T) {
	client := llm.NewScriptedClient(setResultScript("subtask says hi", "done"))
	m, store, b := newTestManager(t, client, defaultBgCfg())

	parent, err := store.CreateSession(context.Background(), "proj", scope.CreateSessionInput{Title: "parent"})
	require.NoError(t, err)

	taskDone := make(chan struct{}, 1)
	b.Subscribe(bus.EventTaskCompleted, func(ctx context.Context, payload any) error {
		taskDone <- struct{}{}
		return nil
	}, "test")

	id, err := m.SpawnTask(context.Background(), "proj", parent.ID, "research this", "research")
	require.NoError(t, err)

	select {
	case <-taskDone:
	case <-time.After(5 * time.Second):
		t.Fatal("task did not complete")
	}

	child, err := store.GetSession("proj", id)
	require.NoError(t, err)
	require.NotNil(t, child.BgMeta)
	assert.Equal(t, models.TriggerToolSpawn, child.BgMeta.TriggerType)
	assert.Equal(t, parent.ID, child.BgMeta.ParentSessionID)

	got, err := store.GetSession("proj", parent.ID)
	require.NoError(t, err)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, models.RoleSystem, got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Text(), "subtask says hi")
	assert.Contains(t, got.Messages[0].Text(), "research")
}

func TestMemoryOverrideMergesOntoDefaults(t *testing.T) {
	client := llm.NewScriptedClient(setResultScript("r", "t"))
	m, store, _ := newTestManager(t, client, defaultBgCfg())

	enable := false
	_, err := m.TriggerSync(context.Background(), TriggerSpec{
		Scope:          "proj",
		Trigger:        models.TriggerAPI,
		Prompt:         "work",
		MemoryOverride: &models.MemoryPolicyOverride{SkipPerRoundExtract: &enable},
	})
	require.NoError(t, err)

	sessions := store.ListSessions("proj")
	require.Len(t, sessions, 1)
	policy := sessions[0].BgMeta.MemoryPolicy
	assert.False(t, policy.SkipPerRoundExtract)
	assert.True(t, policy.SkipNarrativeBatchExtract)
	assert.True(t, policy.SkipConversationSummary)
}
