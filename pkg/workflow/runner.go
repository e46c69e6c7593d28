package workflow

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/config"
)

// ErrRunNotActive reports a cancel on a run that already reached a
// terminal status.
var ErrRunNotActive = fmt.Errorf("workflow run is not running or paused")

// StepInput is what an agent step hands to the executor.
type StepInput struct {
	Scope         string
	RunID         string
	StepID        string
	Prompt        string
	Input         string
	Model         string
	TimeoutMs     int64
	SessionConfig map[string]any
}

// StepOutcome is the executor's report for one agent step attempt.
type StepOutcome struct {
	SessionID  string
	Status     string
	Output     string
	DurationMs int64
	Error      string
}

// StepExecutor runs one agent step to completion.
type StepExecutor interface {
	ExecuteStep(ctx context.Context, in StepInput) StepOutcome
}

// ActionExecutor dispatches a step's linked actions. Failures are logged
// and never fail the step.
type ActionExecutor interface {
	ExecuteAction(ctx context.Context, scopeName string, action LinkedAction, stepOutput string) error
}

// Runner drives workflow runs step by step, pausing at approve steps and
// persisting progress after every step.
type Runner struct {
	cfg      config.WorkflowConfig
	store    *Store
	registry *Registry
	bus      *bus.Bus
	exec     StepExecutor
	actions  ActionExecutor

	mu        sync.Mutex
	cancelled map[string]bool
}

// NewRunner wires a runner. actions may be nil when no linked actions are
// supported.
func NewRunner(cfg config.WorkflowConfig, store *Store, registry *Registry, b *bus.Bus, exec StepExecutor, actions ActionExecutor) *Runner {
	return &Runner{
		cfg:       cfg,
		store:     store,
		registry:  registry,
		bus:       b,
		exec:      exec,
		actions:   actions,
		cancelled: make(map[string]bool),
	}
}

// Run creates a run record for a definition and drives it until it
// completes, fails, or pauses at an approve step.
func (r *Runner) Run(ctx context.Context, scopeName string, def *Definition) (*Run, error) {
	run, err := r.store.CreateRun(ctx, scopeName, def.Name)
	if err != nil {
		return nil, err
	}
	r.bus.Emit(ctx, bus.EventWorkflowStarted, bus.WorkflowPayload{
		Scope: scopeName, RunID: run.ID, WorkflowName: def.Name,
	})
	if err := r.drive(ctx, run, def); err != nil {
		return run, err
	}
	return run, nil
}

// Resume continues a paused run past its approve step. The token is
// single-use: it is cleared before the run advances.
func (r *Runner) Resume(ctx context.Context, token string, approved bool) (*Run, error) {
	run, err := r.store.GetRunByResumeToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if run.Status != StatusPaused {
		return nil, fmt.Errorf("workflow run %s is %s, not paused: %w", run.ID, run.Status, ErrRunNotActive)
	}
	def, err := r.registry.Get(run.Scope, run.WorkflowName)
	if err != nil {
		return nil, fmt.Errorf("resuming run %s: %w", run.ID, err)
	}
	if run.CurrentStepIdx >= len(def.Steps) {
		return nil, fmt.Errorf("run %s step index %d out of range", run.ID, run.CurrentStepIdx)
	}
	step := &def.Steps[run.CurrentStepIdx]

	a := approved
	run.StepResults[step.ID] = &StepResult{Status: StepStatusCompleted, Approved: &a}
	run.ResumeToken = ""
	run.ApprovePrompt = ""
	run.Status = StatusRunning
	run.CurrentStepIdx++
	if err := r.store.SaveRun(ctx, run); err != nil {
		return nil, err
	}
	r.bus.Emit(ctx, bus.EventWorkflowStepCompleted, bus.WorkflowPayload{
		Scope: run.Scope, RunID: run.ID, WorkflowName: run.WorkflowName,
		StepID: step.ID, Status: StepStatusCompleted,
	})
	if err := r.drive(ctx, run, def); err != nil {
		return run, err
	}
	return run, nil
}

// Cancel marks a run cancelled. An in-flight agent step finishes its
// session but its result is discarded.
func (r *Runner) Cancel(ctx context.Context, runID string) error {
	run, err := r.store.GetRunByID(ctx, runID)
	if err != nil {
		return err
	}
	if run.Status != StatusRunning && run.Status != StatusPaused {
		return fmt.Errorf("workflow run %s is %s: %w", runID, run.Status, ErrRunNotActive)
	}
	r.mu.Lock()
	r.cancelled[runID] = true
	r.mu.Unlock()
	run.Status = StatusCancelled
	run.ResumeToken = ""
	run.ApprovePrompt = ""
	return r.store.SaveRun(ctx, run)
}

// Prune deletes terminal runs past the retention window.
func (r *Runner) Prune(ctx context.Context) (int, error) {
	return r.store.PruneRuns(ctx, r.cfg.RunRetention)
}

func (r *Runner) isCancelled(runID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancelled[runID]
}

func (r *Runner) clearCancelled(runID string) {
	r.mu.Lock()
	delete(r.cancelled, runID)
	r.mu.Unlock()
}

// drive executes steps from run.CurrentStepIdx until the run reaches a
// terminal status or pauses.
func (r *Runner) drive(ctx context.Context, run *Run, def *Definition) error {
	for i := run.CurrentStepIdx; i < len(def.Steps); i++ {
		step := &def.Steps[i]
		prevID := ""
		if i > 0 {
			prevID = def.Steps[i-1].ID
		}

		if r.isCancelled(run.ID) {
			r.clearCancelled(run.ID)
			return nil
		}

		if step.Condition != "" && !truthy(resolveExpr(step.Condition, run.StepResults, prevID)) {
			run.StepResults[step.ID] = &StepResult{Status: StepStatusSkipped}
			run.CurrentStepIdx = i + 1
			if err := r.store.SaveRun(ctx, run); err != nil {
				return err
			}
			r.emitStepCompleted(ctx, run, step.ID, StepStatusSkipped)
			continue
		}

		switch step.Type {
		case StepApprove:
			token, err := newResumeToken()
			if err != nil {
				return err
			}
			run.Status = StatusPaused
			run.ResumeToken = token
			run.ApprovePrompt = resolveExpr(step.ApprovePromptText(), run.StepResults, prevID)
			run.CurrentStepIdx = i
			if err := r.store.SaveRun(ctx, run); err != nil {
				return err
			}
			r.bus.Emit(ctx, bus.EventWorkflowPaused, bus.WorkflowPayload{
				Scope: run.Scope, RunID: run.ID, WorkflowName: run.WorkflowName,
				StepID: step.ID, Status: StatusPaused,
			})
			return nil

		case StepTransform:
			result := &StepResult{
				Status: StepStatusCompleted,
				Output: resolveExpr(step.Transform, run.StepResults, prevID),
			}
			if err := r.recordStep(ctx, run, def, step, i, prevID, result); err != nil {
				return err
			}
			if run.Status == StatusFailed || run.Status == StatusCancelled {
				return nil
			}

		case StepAgent:
			result := r.executeAgentStep(ctx, run, step, prevID)
			if r.isCancelled(run.ID) {
				r.clearCancelled(run.ID)
				return nil
			}
			if err := r.recordStep(ctx, run, def, step, i, prevID, result); err != nil {
				return err
			}
			if run.Status == StatusFailed || run.Status == StatusCancelled {
				return nil
			}
		}
	}

	run.Status = StatusCompleted
	run.CurrentStepIdx = len(def.Steps)
	if err := r.store.SaveRun(ctx, run); err != nil {
		return err
	}
	r.bus.Emit(ctx, bus.EventWorkflowCompleted, bus.WorkflowPayload{
		Scope: run.Scope, RunID: run.ID, WorkflowName: run.WorkflowName,
		Status: StatusCompleted,
	})
	return nil
}

// recordStep persists a step result and applies the error strategy when
// the step did not complete.
func (r *Runner) recordStep(ctx context.Context, run *Run, def *Definition, step *Step, idx int, prevID string, result *StepResult) error {
	run.StepResults[step.ID] = result
	run.CurrentStepIdx = idx + 1

	failed := result.Status == StepStatusFailed || result.Status == StepStatusTimeout
	if failed && def.ErrorStrategy() == ErrorStrategyFailFast {
		run.Status = StatusFailed
		run.Error = fmt.Sprintf("step %s %s: %s", step.ID, result.Status, result.Error)
		if err := r.store.SaveRun(ctx, run); err != nil {
			return err
		}
		r.emitStepCompleted(ctx, run, step.ID, result.Status)
		r.bus.Emit(ctx, bus.EventWorkflowFailed, bus.WorkflowPayload{
			Scope: run.Scope, RunID: run.ID, WorkflowName: run.WorkflowName,
			StepID: step.ID, Status: StatusFailed, Error: run.Error,
		})
		return nil
	}

	if err := r.store.SaveRun(ctx, run); err != nil {
		return err
	}
	r.emitStepCompleted(ctx, run, step.ID, result.Status)

	if !failed {
		r.dispatchActions(ctx, run, step, result.Output)
	}
	return nil
}

func (r *Runner) emitStepCompleted(ctx context.Context, run *Run, stepID, status string) {
	r.bus.Emit(ctx, bus.EventWorkflowStepCompleted, bus.WorkflowPayload{
		Scope: run.Scope, RunID: run.ID, WorkflowName: run.WorkflowName,
		StepID: stepID, Status: status,
	})
}

// executeAgentStep runs the step through the executor, honoring its retry
// configuration.
func (r *Runner) executeAgentStep(ctx context.Context, run *Run, step *Step, prevID string) *StepResult {
	timeoutMs := step.TimeoutMs
	if timeoutMs <= 0 {
		timeoutMs = r.cfg.DefaultStepTimeout.Milliseconds()
	}
	in := StepInput{
		Scope:         run.Scope,
		RunID:         run.ID,
		StepID:        step.ID,
		Prompt:        resolveExpr(step.Prompt, run.StepResults, prevID),
		Input:         resolveExpr(step.Input, run.StepResults, prevID),
		Model:         step.Model,
		TimeoutMs:     timeoutMs,
		SessionConfig: step.SessionConfig,
	}

	attempts := 1
	if step.RetryConfig != nil && step.RetryConfig.MaxRetries > 0 {
		attempts += step.RetryConfig.MaxRetries
	}

	var out StepOutcome
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 && step.RetryConfig.RetryDelayMs > 0 {
			time.Sleep(time.Duration(step.RetryConfig.RetryDelayMs) * time.Millisecond)
		}
		out = r.exec.ExecuteStep(ctx, in)
		if !retryable(step.RetryConfig, out.Status) || attempt == attempts-1 {
			break
		}
		slog.Info("retrying workflow step",
			"runId", run.ID, "stepId", step.ID,
			"status", out.Status, "attempt", attempt+1)
	}

	return &StepResult{
		Status:     out.Status,
		Output:     out.Output,
		SessionID:  out.SessionID,
		DurationMs: out.DurationMs,
		Error:      out.Error,
	}
}

func retryable(rc *RetryConfig, status string) bool {
	if rc == nil {
		return false
	}
	for _, on := range rc.RetryOn {
		if on == status {
			return true
		}
	}
	return false
}

func (r *Runner) dispatchActions(ctx context.Context, run *Run, step *Step, output string) {
	if r.actions == nil || len(step.LinkedActions) == 0 {
		return
	}
	for _, action := range step.LinkedActions {
		if err := r.actions.ExecuteAction(ctx, run.Scope, action, output); err != nil {
			slog.Warn("workflow linked action failed",
				"runId", run.ID, "stepId", step.ID,
				"action", action.Type, "error", err)
		}
	}
}

func newResumeToken() (string, error) {
	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generating resume token: %w", err)
	}
	return "wf-" + hex.EncodeToString(raw), nil
}
