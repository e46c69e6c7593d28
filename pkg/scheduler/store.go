package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hymnly133/prizm/ent"
	"github.com/hymnly133/prizm/ent/schedule"
	"github.com/hymnly133/prizm/pkg/database"
	"github.com/hymnly133/prizm/pkg/scope"
)

// Schedule is either a one-shot reminder (RemindAt set) or a recurring
// cron job (CronSpec set). Firing starts a background session with Prompt.
type Schedule struct {
	ID          string     `json:"id"`
	Scope       string     `json:"scope"`
	Title       string     `json:"title"`
	Prompt      string     `json:"prompt"`
	RemindAt    *time.Time `json:"remindAt,omitempty"`
	CronSpec    string     `json:"cronSpec,omitempty"`
	Enabled     bool       `json:"enabled"`
	LastFiredAt *time.Time `json:"lastFiredAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Store persists schedules in the database.
type Store struct {
	db *database.Client
}

// NewStore wraps the database client.
func NewStore(db *database.Client) *Store {
	return &Store{db: db}
}

// Create inserts a schedule and fills its generated fields.
func (s *Store) Create(ctx context.Context, sched *Schedule) error {
	if sched.ID == "" {
		sched.ID = "sched-" + uuid.New().String()
	}
	row, err := s.db.Schedule.Create().
		SetID(sched.ID).
		SetScope(sched.Scope).
		SetTitle(sched.Title).
		SetPrompt(sched.Prompt).
		SetNillableRemindAt(sched.RemindAt).
		SetCronSpec(sched.CronSpec).
		SetEnabled(sched.Enabled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("creating schedule: %w", err)
	}
	sched.CreatedAt = row.CreatedAt
	sched.UpdatedAt = row.UpdatedAt
	return nil
}

// Update rewrites a schedule's mutable fields.
func (s *Store) Update(ctx context.Context, sched *Schedule) error {
	update := s.db.Schedule.UpdateOneID(sched.ID).
		SetTitle(sched.Title).
		SetPrompt(sched.Prompt).
		SetCronSpec(sched.CronSpec).
		SetEnabled(sched.Enabled)
	if sched.RemindAt != nil {
		update = update.SetRemindAt(*sched.RemindAt)
	} else {
		update = update.ClearRemindAt()
	}
	if sched.LastFiredAt != nil {
		update = update.SetLastFiredAt(*sched.LastFiredAt)
	} else {
		update = update.ClearLastFiredAt()
	}
	row, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("schedule %s: %w", sched.ID, scope.ErrNotFound)
		}
		return fmt.Errorf("updating schedule: %w", err)
	}
	sched.UpdatedAt = row.UpdatedAt
	return nil
}

// Get loads one schedule, or scope.ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (*Schedule, error) {
	row, err := s.db.Schedule.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("schedule %s: %w", id, scope.ErrNotFound)
		}
		return nil, fmt.Errorf("loading schedule: %w", err)
	}
	return scheduleFromEnt(row), nil
}

// List returns a scope's schedules, newest first. An empty scope lists
// every schedule.
func (s *Store) List(ctx context.Context, scopeName string) ([]*Schedule, error) {
	q := s.db.Schedule.Query()
	if scopeName != "" {
		q = q.Where(schedule.ScopeEQ(scopeName))
	}
	rows, err := q.Order(ent.Desc(schedule.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	out := make([]*Schedule, 0, len(rows))
	for _, row := range rows {
		out = append(out, scheduleFromEnt(row))
	}
	return out, nil
}

// Delete removes a schedule. Missing ids return scope.ErrNotFound.
func (s *Store) Delete(ctx context.Context, id string) error {
	err := s.db.Schedule.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("schedule %s: %w", id, scope.ErrNotFound)
		}
		return fmt.Errorf("deleting schedule: %w", err)
	}
	return nil
}

// DueReminders returns enabled one-shot reminders whose remind time has
// passed and that have not fired yet.
func (s *Store) DueReminders(ctx context.Context, now time.Time) ([]*Schedule, error) {
	rows, err := s.db.Schedule.Query().
		Where(
			schedule.EnabledEQ(true),
			schedule.RemindAtNotNil(),
			schedule.RemindAtLTE(now),
			schedule.LastFiredAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying due reminders: %w", err)
	}
	out := make([]*Schedule, 0, len(rows))
	for _, row := range rows {
		out = append(out, scheduleFromEnt(row))
	}
	return out, nil
}

// MarkFired records a firing. One-shot reminders are disabled so they
// never fire twice.
func (s *Store) MarkFired(ctx context.Context, id string, at time.Time, disable bool) error {
	update := s.db.Schedule.UpdateOneID(id).SetLastFiredAt(at)
	if disable {
		update = update.SetEnabled(false)
	}
	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("schedule %s: %w", id, scope.ErrNotFound)
		}
		return fmt.Errorf("marking schedule fired: %w", err)
	}
	return nil
}

func scheduleFromEnt(row *ent.Schedule) *Schedule {
	return &Schedule{
		ID:          row.ID,
		Scope:       row.Scope,
		Title:       row.Title,
		Prompt:      row.Prompt,
		RemindAt:    row.RemindAt,
		CronSpec:    row.CronSpec,
		Enabled:     row.Enabled,
		LastFiredAt: row.LastFiredAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
