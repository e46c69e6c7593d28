// Package workflow executes declarative multi-step definitions: agent
// steps delegated to the background manager, approve steps that pause the
// run behind a resume token, and transform steps that reshape prior
// outputs. Runs are persisted so a paused run survives a restart.
package workflow

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Step types.
const (
	StepAgent     = "agent"
	StepApprove   = "approve"
	StepTransform = "transform"
)

// Retryable step outcomes for RetryConfig.RetryOn.
const (
	StepStatusCompleted = "completed"
	StepStatusFailed    = "failed"
	StepStatusTimeout   = "timeout"
	StepStatusSkipped   = "skipped"
)

// ParseError reports a rejected workflow definition.
type ParseError struct {
	StepID  string
	Message string
}

func (e *ParseError) Error() string {
	if e.StepID == "" {
		return "workflow parse error: " + e.Message
	}
	return fmt.Sprintf("workflow parse error at step %q: %s", e.StepID, e.Message)
}

// RetryConfig retries a step whose status lands in RetryOn.
type RetryConfig struct {
	RetryOn      []string `yaml:"retryOn" json:"retryOn"`
	MaxRetries   int      `yaml:"maxRetries" json:"maxRetries"`
	RetryDelayMs int64    `yaml:"retryDelayMs" json:"retryDelayMs"`
}

// LinkedAction is a side-effect invocation dispatched to the injected
// action executor after its step completes.
type LinkedAction struct {
	Type   string         `yaml:"type" json:"type"`
	Params map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
}

// Step is one node of a workflow definition.
type Step struct {
	ID            string         `yaml:"id" json:"id"`
	Type          string         `yaml:"type" json:"type"`
	Prompt        string         `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	ApprovePrompt string         `yaml:"approvePrompt,omitempty" json:"approvePrompt,omitempty"`
	Transform     string         `yaml:"transform,omitempty" json:"transform,omitempty"`
	Input         string         `yaml:"input,omitempty" json:"input,omitempty"`
	Condition     string         `yaml:"condition,omitempty" json:"condition,omitempty"`
	Model         string         `yaml:"model,omitempty" json:"model,omitempty"`
	TimeoutMs     int64          `yaml:"timeoutMs,omitempty" json:"timeoutMs,omitempty"`
	SessionConfig map[string]any `yaml:"sessionConfig,omitempty" json:"sessionConfig,omitempty"`
	RetryConfig   *RetryConfig   `yaml:"retryConfig,omitempty" json:"retryConfig,omitempty"`
	LinkedActions []LinkedAction `yaml:"linkedActions,omitempty" json:"linkedActions,omitempty"`
}

// DefConfig carries definition-level execution options.
type DefConfig struct {
	ErrorStrategy string `yaml:"errorStrategy,omitempty" json:"errorStrategy,omitempty"`
}

// Error strategies.
const (
	ErrorStrategyFailFast = "fail_fast"
	ErrorStrategyContinue = "continue"
)

// Definition is a parsed workflow.
type Definition struct {
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Steps       []Step     `yaml:"steps" json:"steps"`
	Triggers    []string   `yaml:"triggers,omitempty" json:"triggers,omitempty"`
	Config      *DefConfig `yaml:"config,omitempty" json:"config,omitempty"`
}

// ErrorStrategy returns the effective strategy, defaulting to fail_fast.
func (d *Definition) ErrorStrategy() string {
	if d.Config != nil && d.Config.ErrorStrategy == ErrorStrategyContinue {
		return ErrorStrategyContinue
	}
	return ErrorStrategyFailFast
}

var stepRefRe = regexp.MustCompile(`\$([A-Za-z0-9_-]+)(?:\.([A-Za-z0-9_]+))?`)

// ParseDefinition decodes and validates a YAML workflow definition.
func ParseDefinition(raw []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(raw, &def); err != nil {
		return nil, &ParseError{Message: "invalid YAML: " + err.Error()}
	}
	if err := ValidateDefinition(&def); err != nil {
		return nil, err
	}
	return &def, nil
}

// ValidateDefinition enforces the parse-time invariants: unique ids, known
// step types, required fields per type, and backward-only step references.
func ValidateDefinition(def *Definition) error {
	if def.Name == "" {
		return &ParseError{Message: "workflow has no name"}
	}
	if len(def.Steps) == 0 {
		return &ParseError{Message: "workflow has no steps"}
	}
	if def.Config != nil {
		switch def.Config.ErrorStrategy {
		case "", ErrorStrategyFailFast, ErrorStrategyContinue:
		default:
			return &ParseError{Message: fmt.Sprintf("unknown errorStrategy %q", def.Config.ErrorStrategy)}
		}
	}

	earlier := make(map[string]bool, len(def.Steps))
	for i := range def.Steps {
		step := &def.Steps[i]
		if step.ID == "" {
			return &ParseError{Message: fmt.Sprintf("step %d has no id", i)}
		}
		if earlier[step.ID] {
			return &ParseError{StepID: step.ID, Message: "duplicate step id"}
		}

		switch step.Type {
		case StepAgent:
			if step.Prompt == "" {
				return &ParseError{StepID: step.ID, Message: "agent step requires a prompt"}
			}
		case StepApprove:
			if step.ApprovePrompt == "" && step.Prompt == "" {
				return &ParseError{StepID: step.ID, Message: "approve step requires approvePrompt or prompt"}
			}
		case StepTransform:
			if step.Transform == "" {
				return &ParseError{StepID: step.ID, Message: "transform step requires a transform expression"}
			}
		default:
			return &ParseError{StepID: step.ID, Message: fmt.Sprintf("unknown step type %q", step.Type)}
		}

		if step.RetryConfig != nil {
			for _, on := range step.RetryConfig.RetryOn {
				if on != StepStatusFailed && on != StepStatusTimeout {
					return &ParseError{StepID: step.ID, Message: fmt.Sprintf("retryOn value %q is not failed or timeout", on)}
				}
			}
		}

		for _, expr := range []string{step.Input, step.Condition, step.Transform} {
			if err := checkRefs(expr, step.ID, earlier); err != nil {
				return err
			}
		}
		earlier[step.ID] = true
	}
	return nil
}

// checkRefs rejects $stepId references to steps that have not run yet.
// $prev is always legal past the first step.
func checkRefs(expr, stepID string, earlier map[string]bool) error {
	for _, match := range stepRefRe.FindAllStringSubmatch(expr, -1) {
		ref := match[1]
		if ref == "prev" {
			if len(earlier) == 0 {
				return &ParseError{StepID: stepID, Message: "$prev used in the first step"}
			}
			continue
		}
		if !earlier[ref] {
			return &ParseError{StepID: stepID, Message: fmt.Sprintf("reference $%s does not point to an earlier step", ref)}
		}
	}
	return nil
}

// ApprovePromptText returns the approve step's user-facing prompt.
func (s *Step) ApprovePromptText() string {
	if s.ApprovePrompt != "" {
		return s.ApprovePrompt
	}
	return s.Prompt
}

// SerializeDefinition renders a definition back to YAML.
func SerializeDefinition(def *Definition) ([]byte, error) {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}
