package workflow

import (
	"context"
	"strings"
	"time"

	"github.com/hymnly133/prizm/pkg/background"
	"github.com/hymnly133/prizm/pkg/models"
)

// BackgroundStepExecutor runs agent steps as background sessions.
type BackgroundStepExecutor struct {
	bg *background.Manager
}

// NewBackgroundStepExecutor wraps the background manager.
func NewBackgroundStepExecutor(bg *background.Manager) *BackgroundStepExecutor {
	return &BackgroundStepExecutor{bg: bg}
}

// ExecuteStep runs one step session to completion and reports its outcome.
func (e *BackgroundStepExecutor) ExecuteStep(ctx context.Context, in StepInput) StepOutcome {
	prompt := in.Prompt
	if in.Input != "" {
		prompt += "\n\nInput:\n" + in.Input
	}
	spec := background.TriggerSpec{
		Scope:     in.Scope,
		Trigger:   models.TriggerWorkflow,
		Prompt:    prompt,
		Label:     "workflow:" + in.StepID,
		Model:     in.Model,
		TimeoutMs: in.TimeoutMs,
	}
	applySessionConfig(&spec, in.SessionConfig)

	start := time.Now()
	sessionID, result, err := e.bg.TriggerAndWait(ctx, spec)
	out := StepOutcome{
		SessionID:  sessionID,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		out.Error = err.Error()
		if strings.Contains(out.Error, "timed out") {
			out.Status = StepStatusTimeout
		} else {
			out.Status = StepStatusFailed
		}
		return out
	}
	out.Status = StepStatusCompleted
	out.Output = result
	return out
}

// applySessionConfig maps the step's sessionConfig keys onto the trigger
// spec. Unknown keys are ignored.
func applySessionConfig(spec *background.TriggerSpec, cfg map[string]any) {
	if cfg == nil {
		return
	}
	if v, ok := cfg["systemInstructions"].(string); ok {
		spec.SystemInstructions = v
	}
	if v, ok := cfg["expectedOutputFormat"].(string); ok {
		spec.ExpectedOutputFormat = v
	}
	if v, ok := cfg["context"].(map[string]any); ok {
		spec.Context = v
	}
	if v, ok := cfg["allowedTools"].([]any); ok {
		tools := make([]string, 0, len(v))
		for _, t := range v {
			if s, ok := t.(string); ok {
				tools = append(tools, s)
			}
		}
		spec.AllowedTools = tools
	}
}
