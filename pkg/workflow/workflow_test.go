package workflow

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/config"
	"github.com/hymnly133/prizm/pkg/database"
	"github.com/hymnly133/prizm/pkg/scope"
)

// fakeExecutor returns scripted outcomes per step id, in call order.
type fakeExecutor struct {
	mu       sync.Mutex
	outcomes map[string][]StepOutcome
	calls    []StepInput
	block    chan struct{}
}

func (f *fakeExecutor) ExecuteStep(ctx context.Context, in StepInput) StepOutcome {
	f.mu.Lock()
	f.calls = append(f.calls, in)
	queue := f.outcomes[in.StepID]
	var out StepOutcome
	if len(queue) > 0 {
		out = queue[0]
		f.outcomes[in.StepID] = queue[1:]
	} else {
		out = StepOutcome{Status: StepStatusCompleted, Output: "out-" + in.StepID, SessionID: "sess-" + in.StepID}
	}
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return out
}

func (f *fakeExecutor) callCount(stepID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.StepID == stepID {
			n++
		}
	}
	return n
}

func newTestRunner(t *testing.T) (*Runner, *Registry, *fakeExecutor, *bus.Bus) {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewClient(ctx, filepath.Join(t.TempDir(), "prizm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	b := bus.New()
	t.Cleanup(b.ClearAll)
	registry := NewRegistry(b)
	exec := &fakeExecutor{outcomes: make(map[string][]StepOutcome)}
	cfg := config.WorkflowConfig{
		RunRetention:       time.Hour,
		DefaultStepTimeout: time.Minute,
	}
	runner := NewRunner(cfg, NewStore(db), registry, b, exec, nil)
	return runner, registry, exec, b
}

func collectEvents(b *bus.Bus, names ...string) *[]string {
	var mu sync.Mutex
	seen := &[]string{}
	for _, name := range names {
		event := name
		b.Subscribe(event, func(ctx context.Context, payload any) error {
			mu.Lock()
			*seen = append(*seen, event)
			mu.Unlock()
			return nil
		}, "test.collect")
	}
	return seen
}

func TestParseDefinitionInvariants(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want string
	}{
		{"no name", "steps:\n  - id: a\n    type: agent\n    prompt: hi\n", "no name"},
		{"no steps", "name: w\n", "no steps"},
		{"missing id", "name: w\nsteps:\n  - type: agent\n    prompt: hi\n", "has no id"},
		{"duplicate id", "name: w\nsteps:\n  - id: a\n    type: agent\n    prompt: hi\n  - id: a\n    type: agent\n    prompt: hi\n", "duplicate step id"},
		{"unknown type", "name: w\nsteps:\n  - id: a\n    type: magic\n", "unknown step type"},
		{"agent without prompt", "name: w\nsteps:\n  - id: a\n    type: agent\n", "requires a prompt"},
		{"transform without expr", "name: w\nsteps:\n  - id: a\n    type: transform\n", "requires a transform"},
		{"forward reference", "name: w\nsteps:\n  - id: a\n    type: agent\n    prompt: use $b\n    input: $b\n  - id: b\n    type: agent\n    prompt: hi\n", "does not point to an earlier step"},
		{"prev in first step", "name: w\nsteps:\n  - id: a\n    type: transform\n    transform: $prev\n", "$prev used in the first step"},
		{"bad retryOn", "name: w\nsteps:\n  - id: a\n    type: agent\n    prompt: hi\n    retryConfig:\n      retryOn: [skipped]\n      maxRetries: 1\n", "not failed or timeout"},
		{"bad errorStrategy", "name: w\nconfig:\n  errorStrategy: explode\nsteps:\n  - id: a\n    type: agent\n    prompt: hi\n", "unknown errorStrategy"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseDefinition([]byte(tc.yaml))
			require.Error(t, err)
			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestParseDefinitionRoundTrip(t *testing.T) {
	def, err := ParseDefinition([]byte(`
name: publish
description: draft and publish
steps:
  - id: draft
    type: agent
    prompt: "Write a draft"
  - id: review
    type: approve
    approvePrompt: "Publish this? $draft"
  - id: publish
    type: agent
    prompt: "Publish: $draft.output"
    condition: "$review.approved"
`))
	require.NoError(t, err)
	assert.Equal(t, "publish", def.Name)
	require.Len(t, def.Steps, 3)
	assert.Equal(t, ErrorStrategyFailFast, def.ErrorStrategy())

	raw, err := SerializeDefinition(def)
	require.NoError(t, err)
	again, err := ParseDefinition(raw)
	require.NoError(t, err)
	assert.Equal(t, def.Steps, again.Steps)
}

func TestRunCompletesLinearWorkflow(t *testing.T) {
	runner, _, exec, b := newTestRunner(t)
	seen := collectEvents(b, bus.EventWorkflowStarted, bus.EventWorkflowCompleted)

	def, err := ParseDefinition([]byte(`
name: linear
steps:
  - id: a
    type: agent
    prompt: "first"
  - id: b
    type: agent
    prompt: "second with $a"
`))
	require.NoError(t, err)

	run, err := runner.Run(context.Background(), "online", def)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, run.Status)
	assert.Equal(t, 2, run.CurrentStepIdx)
	require.Contains(t, run.StepResults, "a")
	require.Contains(t, run.StepResults, "b")
	assert.Equal(t, "out-a", run.StepResults["a"].Output)
	assert.Equal(t, "sess-b", run.StepResults["b"].SessionID)

	// prompt interpolation saw step a's output
	require.Equal(t, 2, len(exec.calls))
	assert.Equal(t, "second with out-a", exec.calls[1].Prompt)
	assert.Equal(t, []string{bus.EventWorkflowStarted, bus.EventWorkflowCompleted}, *seen)
}

func TestApprovePausesAndResumeCompletes(t *testing.T) {
	runner, registry, exec, b := newTestRunner(t)
	ctx := context.Background()
	seen := collectEvents(b, bus.EventWorkflowPaused, bus.EventWorkflowCompleted)

	def, err := ParseDefinition([]byte(`
name: publish
steps:
  - id: draft
    type: agent
    prompt: "Write a draft"
  - id: review
    type: approve
    approvePrompt: "Publish? $draft"
  - id: publish
    type: agent
    prompt: "Go: $draft"
    condition: "$review.approved"
`))
	require.NoError(t, err)
	require.NoError(t, registry.Register(ctx, "online", def))

	run, err := runner.Run(ctx, "online", def)
	require.NoError(t, err)
	assert.Equal(t, StatusPaused, run.Status)
	require.NotEmpty(t, run.ResumeToken)
	assert.Equal(t, "Publish? out-draft", run.ApprovePrompt)
	assert.Equal(t, 1, exec.callCount("draft"))
	assert.Equal(t, 0, exec.callCount("publish"))

	resumed, err := runner.Resume(ctx, run.ResumeToken, true)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, resumed.Status)
	require.Contains(t, resumed.StepResults, "review")
	require.NotNil(t, resumed.StepResults["review"].Approved)
	assert.True(t, *resumed.StepResults["review"].Approved)
	assert.Equal(t, 1, exec.callCount("publish"))
	assert.Empty(t, resumed.ResumeToken)

	// the token is single-use
	_, err = runner.Resume(ctx, run.ResumeToken, true)
	require.ErrorIs(t, err, scope.ErrNotFound)

	assert.Equal(t, []string{bus.EventWorkflowPaused, bus.EventWorkflowCompleted}, *seen)
}

func TestResumeDeniedSkipsConditionalStep(t *testing.T) {
	runner, registry, exec, _ := newTestRunner(t)
	ctx := context.Background()

	def, err := ParseDefinition([]byte(`
name: publish
steps:
  - id: draft
    type: agent
    prompt: "Write a draft"
  - id: review
    type: approve
    approvePrompt: "Publish?"
  - id: publish
    type: agent
    prompt: "Go"
    condition: "$review.approved"
`))
	require.NoError(t, err)
	require.NoError(t, registry.Register(ctx, "online", def))

	run, err := runner.Run(ctx, "online", def)
	require.NoError(t, err)
	resumed, err := runner.Resume(ctx, run.ResumeToken, false)
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, resumed.Status)
	assert.Equal(t, StepStatusSkipped, resumed.StepResults["publish"].Status)
	assert.Equal(t, 0, exec.callCount("publish"))
}

func TestTransformStepResolvesPrev(t *testing.T) {
	runner, _, exec, _ := newTestRunner(t)
	exec.outcomes["fetch"] = []StepOutcome{{Status: StepStatusCompleted, Output: "42", SessionID: "s1"}}

	def, err := ParseDefinition([]byte(`
name: shape
steps:
  - id: fetch
    type: agent
    prompt: "get"
  - id: shape
    type: transform
    transform: "value=$prev.output status=$fetch.status"
`))
	require.NoError(t, err)

	run, err := runner.Run(context.Background(), "online", def)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, run.Status)
	assert.Equal(t, "value=42 status=completed", run.StepResults["shape"].Output)
}

func TestRetryConfigRetriesFailedStep(t *testing.T) {
	runner, _, exec, _ := newTestRunner(t)
	exec.outcomes["flaky"] = []StepOutcome{
		{Status: StepStatusFailed, Error: "boom"},
		{Status: StepStatusCompleted, Output: "ok"},
	}

	def, err := ParseDefinition([]byte(`
name: retry
steps:
  - id: flaky
    type: agent
    prompt: "try"
    retryConfig:
      retryOn: [failed]
      maxRetries: 2
      retryDelayMs: 1
`))
	require.NoError(t, err)

	run, err := runner.Run(context.Background(), "online", def)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, run.Status)
	assert.Equal(t, "ok", run.StepResults["flaky"].Output)
	assert.Equal(t, 2, exec.callCount("flaky"))
}

func TestFailFastStopsRun(t *testing.T) {
	runner, _, exec, b := newTestRunner(t)
	seen := collectEvents(b, bus.EventWorkflowFailed)
	exec.outcomes["a"] = []StepOutcome{{Status: StepStatusFailed, Error: "boom"}}

	def, err := ParseDefinition([]byte(`
name: ff
steps:
  - id: a
    type: agent
    prompt: "one"
  - id: b
    type: agent
    prompt: "two"
`))
	require.NoError(t, err)

	run, err := runner.Run(context.Background(), "online", def)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, run.Status)
	assert.Contains(t, run.Error, "step a failed: boom")
	assert.Equal(t, 0, exec.callCount("b"))
	assert.Equal(t, []string{bus.EventWorkflowFailed}, *seen)
}

func TestContinueStrategyProceedsPastFailure(t *testing.T) {
	runner, _, exec, _ := newTestRunner(t)
	exec.outcomes["a"] = []StepOutcome{{Status: StepStatusFailed, Error: "boom"}}

	def, err := ParseDefinition([]byte(`
name: cont
config:
  errorStrategy: continue
steps:
  - id: a
    type: agent
    prompt: "one"
  - id: b
    type: agent
    prompt: "two"
`))
	require.NoError(t, err)

	run, err := runner.Run(context.Background(), "online", def)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, run.Status)
	assert.Equal(t, StepStatusFailed, run.StepResults["a"].Status)
	assert.Equal(t, StepStatusCompleted, run.StepResults["b"].Status)
}

func TestCancelDiscardsInFlightResult(t *testing.T) {
	runner, _, exec, _ := newTestRunner(t)
	ctx := context.Background()
	exec.block = make(chan struct{})

	def, err := ParseDefinition([]byte(`
name: slow
steps:
  - id: a
    type: agent
    prompt: "slow"
  - id: b
    type: agent
    prompt: "never"
`))
	require.NoError(t, err)

	done := make(chan *Run, 1)
	go func() {
		run, err := runner.Run(ctx, "online", def)
		require.NoError(t, err)
		done <- run
	}()

	// wait for step a to be in flight, then cancel the run
	require.Eventually(t, func() bool { return exec.callCount("a") == 1 }, 2*time.Second, 10*time.Millisecond)
	var runID string
	require.Eventually(t, func() bool {
		runs, err := runner.store.ListRuns(ctx, "online", "", 10)
		require.NoError(t, err)
		if len(runs) == 0 {
			return false
		}
		runID = runs[0].ID
		return true
	}, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, runner.Cancel(ctx, runID))
	close(exec.block)

	run := <-done
	stored, err := runner.store.GetRunByID(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, stored.Status)
	assert.NotContains(t, stored.StepResults, "a")
	assert.Equal(t, 0, exec.callCount("b"))
}

func TestRunPersistsAcrossStoreReload(t *testing.T) {
	runner, registry, _, _ := newTestRunner(t)
	ctx := context.Background()

	def, err := ParseDefinition([]byte(`
name: durable
steps:
  - id: draft
    type: agent
    prompt: "draft"
  - id: review
    type: approve
    approvePrompt: "ok?"
`))
	require.NoError(t, err)
	require.NoError(t, registry.Register(ctx, "online", def))

	run, err := runner.Run(ctx, "online", def)
	require.NoError(t, err)
	require.Equal(t, StatusPaused, run.Status)

	reloaded, err := runner.store.GetRunByResumeToken(ctx, run.ResumeToken)
	require.NoError(t, err)
	assert.Equal(t, run.ID, reloaded.ID)
	assert.Equal(t, StatusPaused, reloaded.Status)
	assert.Equal(t, 1, reloaded.CurrentStepIdx)
	assert.Equal(t, "out-draft", reloaded.StepResults["draft"].Output)
}

func TestPruneRemovesOldTerminalRuns(t *testing.T) {
	runner, _, _, _ := newTestRunner(t)
	ctx := context.Background()

	def, err := ParseDefinition([]byte("name: p\nsteps:\n  - id: a\n    type: agent\n    prompt: hi\n"))
	require.NoError(t, err)
	run, err := runner.Run(ctx, "online", def)
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, run.Status)

	// retention window of an hour keeps the fresh run
	n, err := runner.Prune(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	n, err = runner.store.PruneRuns(ctx, -time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRegistryLifecycle(t *testing.T) {
	b := bus.New()
	t.Cleanup(b.ClearAll)
	registry := NewRegistry(b)
	ctx := context.Background()

	def, err := ParseDefinition([]byte("name: one\nsteps:\n  - id: a\n    type: agent\n    prompt: hi\n"))
	require.NoError(t, err)
	require.NoError(t, registry.Register(ctx, "online", def))

	got, err := registry.Get("online", "one")
	require.NoError(t, err)
	assert.Equal(t, "one", got.Name)

	_, err = registry.Get("offline", "one")
	require.ErrorIs(t, err, scope.ErrNotFound)

	assert.Len(t, registry.List("online"), 1)
	assert.Empty(t, registry.List("offline"))

	require.NoError(t, registry.Delete(ctx, "online", "one"))
	require.ErrorIs(t, registry.Delete(ctx, "online", "one"), scope.ErrNotFound)
}
