package workflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hymnly133/prizm/ent"
	"github.com/hymnly133/prizm/ent/workflowrun"
	"github.com/hymnly133/prizm/pkg/database"
	"github.com/hymnly133/prizm/pkg/scope"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
)

// StepResult is the recorded outcome of one executed step.
type StepResult struct {
	Status     string `json:"status"`
	Output     string `json:"output,omitempty"`
	Approved   *bool  `json:"approved,omitempty"`
	SessionID  string `json:"sessionId,omitempty"`
	DurationMs int64  `json:"durationMs,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Run is one workflow execution record.
type Run struct {
	ID             string                 `json:"id"`
	Scope          string                 `json:"scope"`
	WorkflowName   string                 `json:"workflowName"`
	Status         string                 `json:"status"`
	StepResults    map[string]*StepResult `json:"stepResults"`
	CurrentStepIdx int                    `json:"currentStepIdx"`
	ResumeToken    string                 `json:"resumeToken,omitempty"`
	ApprovePrompt  string                 `json:"approvePrompt,omitempty"`
	Error          string                 `json:"error,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// Store persists workflow runs in the database.
type Store struct {
	db *database.Client
}

// NewStore wraps the database client.
func NewStore(db *database.Client) *Store {
	return &Store{db: db}
}

// CreateRun inserts a fresh running record.
func (s *Store) CreateRun(ctx context.Context, scopeName, workflowName string) (*Run, error) {
	row, err := s.db.WorkflowRun.Create().
		SetID("run-" + uuid.New().String()).
		SetScope(scopeName).
		SetWorkflowName(workflowName).
		SetStatus(workflowrun.StatusRunning).
		SetStepResults(map[string]any{}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating workflow run: %w", err)
	}
	return runFromEnt(row), nil
}

// SaveRun writes the mutable fields of a run back to the database.
func (s *Store) SaveRun(ctx context.Context, run *Run) error {
	update := s.db.WorkflowRun.UpdateOneID(run.ID).
		SetStatus(workflowrun.Status(run.Status)).
		SetStepResults(stepResultsToJSON(run.StepResults)).
		SetCurrentStepIdx(run.CurrentStepIdx)
	if run.ResumeToken != "" {
		update = update.SetResumeToken(run.ResumeToken)
	} else {
		update = update.ClearResumeToken()
	}
	if run.ApprovePrompt != "" {
		update = update.SetApprovePrompt(run.ApprovePrompt)
	} else {
		update = update.ClearApprovePrompt()
	}
	if run.Error != "" {
		update = update.SetError(run.Error)
	} else {
		update = update.ClearError()
	}
	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("workflow run %s: %w", run.ID, scope.ErrNotFound)
		}
		return fmt.Errorf("saving workflow run: %w", err)
	}
	run.UpdatedAt = row.UpdatedAt
	return nil
}

// GetRunByID loads one run, or scope.ErrNotFound.
func (s *Store) GetRunByID(ctx context.Context, runID string) (*Run, error) {
	row, err := s.db.WorkflowRun.Get(ctx, runID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("workflow run %s: %w", runID, scope.ErrNotFound)
		}
		return nil, fmt.Errorf("loading workflow run: %w", err)
	}
	return runFromEnt(row), nil
}

// GetRunByResumeToken finds the paused run holding a resume token.
func (s *Store) GetRunByResumeToken(ctx context.Context, token string) (*Run, error) {
	row, err := s.db.WorkflowRun.Query().
		Where(workflowrun.ResumeTokenEQ(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("resume token: %w", scope.ErrNotFound)
		}
		return nil, fmt.Errorf("loading workflow run by token: %w", err)
	}
	return runFromEnt(row), nil
}

// ListRuns returns runs newest first, optionally filtered by scope and
// status. A non-positive limit returns up to 100 rows.
func (s *Store) ListRuns(ctx context.Context, scopeName, status string, limit int) ([]*Run, error) {
	q := s.db.WorkflowRun.Query()
	if scopeName != "" {
		q = q.Where(workflowrun.ScopeEQ(scopeName))
	}
	if status != "" {
		q = q.Where(workflowrun.StatusEQ(workflowrun.Status(status)))
	}
	if limit <= 0 {
		limit = 100
	}
	rows, err := q.Order(ent.Desc(workflowrun.FieldCreatedAt)).Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing workflow runs: %w", err)
	}
	out := make([]*Run, 0, len(rows))
	for _, row := range rows {
		out = append(out, runFromEnt(row))
	}
	return out, nil
}

// PruneRuns deletes terminal runs older than the retention window and
// returns how many were removed. Paused and running runs are kept.
func (s *Store) PruneRuns(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)
	n, err := s.db.WorkflowRun.Delete().
		Where(
			workflowrun.CreatedAtLT(cutoff),
			workflowrun.StatusIn(
				workflowrun.StatusCompleted,
				workflowrun.StatusFailed,
				workflowrun.StatusCancelled,
			),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("pruning workflow runs: %w", err)
	}
	return n, nil
}

// DeleteRun removes a run record. Missing rows return scope.ErrNotFound.
func (s *Store) DeleteRun(ctx context.Context, runID string) error {
	err := s.db.WorkflowRun.DeleteOneID(runID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("workflow run %s: %w", runID, scope.ErrNotFound)
		}
		return fmt.Errorf("deleting workflow run: %w", err)
	}
	return nil
}

func stepResultsToJSON(results map[string]*StepResult) map[string]any {
	out := make(map[string]any, len(results))
	for id, result := range results {
		data, err := json.Marshal(result)
		if err != nil {
			continue
		}
		var generic map[string]any
		if err := json.Unmarshal(data, &generic); err != nil {
			continue
		}
		out[id] = generic
	}
	return out
}

func stepResultsFromJSON(raw map[string]any) map[string]*StepResult {
	out := make(map[string]*StepResult, len(raw))
	for id, value := range raw {
		data, err := json.Marshal(value)
		if err != nil {
			continue
		}
		var result StepResult
		if err := json.Unmarshal(data, &result); err != nil {
			continue
		}
		out[id] = &result
	}
	return out
}

func runFromEnt(row *ent.WorkflowRun) *Run {
	run := &Run{
		ID:             row.ID,
		Scope:          row.Scope,
		WorkflowName:   row.WorkflowName,
		Status:         string(row.Status),
		StepResults:    stepResultsFromJSON(row.StepResults),
		CurrentStepIdx: row.CurrentStepIdx,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
	if row.ResumeToken != nil {
		run.ResumeToken = *row.ResumeToken
	}
	if row.ApprovePrompt != nil {
		run.ApprovePrompt = *row.ApprovePrompt
	}
	if row.Error != nil {
		run.Error = *row.Error
	}
	return run
}
