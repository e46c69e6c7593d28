// Package scheduler fires reminders and recurring cron jobs as background
// sessions. Schedules are persisted so they survive a restart; the cron
// engine is reconciled from schedule:* events rather than mutated inline,
// so any emitter (API, tools, boot) keeps it in sync the same way.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/hymnly133/prizm/pkg/background"
	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/models"
)

// defaultPollInterval is how often due one-shot reminders are checked.
const defaultPollInterval = 30 * time.Second

// BackgroundTrigger starts background sessions for fired schedules.
// Satisfied by background.Manager.
type BackgroundTrigger interface {
	Trigger(ctx context.Context, spec background.TriggerSpec) (string, error)
}

// Scheduler owns the cron engine and the reminder poll loop.
type Scheduler struct {
	store   *Store
	bg      BackgroundTrigger
	bus     *bus.Bus
	poll    time.Duration
	engine  *cron.Cron
	stop    chan struct{}
	stopped sync.Once
	wg      sync.WaitGroup

	mu      sync.Mutex
	entries map[string]cron.EntryID
}

// New wires a scheduler and registers the reconciliation listener.
// pollInterval <= 0 selects the default.
func New(store *Store, bg BackgroundTrigger, b *bus.Bus, pollInterval time.Duration) *Scheduler {
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	s := &Scheduler{
		store:   store,
		bg:      bg,
		bus:     b,
		poll:    pollInterval,
		engine:  cron.New(),
		stop:    make(chan struct{}),
		entries: make(map[string]cron.EntryID),
	}
	for _, event := range []string{bus.EventScheduleCreated, bus.EventScheduleUpdated, bus.EventScheduleDeleted} {
		b.Subscribe(event, s.reconcile, "scheduler.reconcile")
	}
	return s
}

// Start loads persisted schedules into the cron engine and begins the
// reminder poll loop.
func (s *Scheduler) Start(ctx context.Context) error {
	schedules, err := s.store.List(ctx, "")
	if err != nil {
		return fmt.Errorf("loading schedules: %w", err)
	}
	for _, sched := range schedules {
		if err := s.syncCronEntry(sched); err != nil {
			slog.Error("Skipping schedule with bad cron spec",
				"scheduleId", sched.ID, "error", err)
		}
	}
	s.engine.Start()
	s.wg.Add(1)
	go s.pollLoop()
	slog.Info("Scheduler started", "schedules", len(schedules))
	return nil
}

// Shutdown stops the cron engine and waits for in-flight firings, bounded
// by ctx.
func (s *Scheduler) Shutdown(ctx context.Context) error {
	s.stopped.Do(func() { close(s.stop) })
	cronCtx := s.engine.Stop()
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-cronCtx.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Create validates and persists a schedule, then announces it so the cron
// engine picks it up.
func (s *Scheduler) Create(ctx context.Context, sched *Schedule) error {
	if err := validateSchedule(sched); err != nil {
		return err
	}
	if err := s.store.Create(ctx, sched); err != nil {
		return err
	}
	s.bus.Emit(ctx, bus.EventScheduleCreated, schedulePayload(sched))
	return nil
}

// Update rewrites a schedule and announces the change.
func (s *Scheduler) Update(ctx context.Context, sched *Schedule) error {
	if err := validateSchedule(sched); err != nil {
		return err
	}
	if err := s.store.Update(ctx, sched); err != nil {
		return err
	}
	s.bus.Emit(ctx, bus.EventScheduleUpdated, schedulePayload(sched))
	return nil
}

// Delete removes a schedule and announces the removal.
func (s *Scheduler) Delete(ctx context.Context, id string) error {
	sched, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.bus.Emit(ctx, bus.EventScheduleDeleted, schedulePayload(sched))
	return nil
}

// Get loads one schedule.
func (s *Scheduler) Get(ctx context.Context, id string) (*Schedule, error) {
	return s.store.Get(ctx, id)
}

// List returns a scope's schedules.
func (s *Scheduler) List(ctx context.Context, scopeName string) ([]*Schedule, error) {
	return s.store.List(ctx, scopeName)
}

// EntryCount reports how many cron entries are installed.
func (s *Scheduler) EntryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// validateSchedule enforces that a schedule is exactly one of reminder or
// cron job and that its cron spec parses.
func validateSchedule(sched *Schedule) error {
	if sched.Scope == "" {
		return fmt.Errorf("schedule requires a scope")
	}
	if sched.Title == "" {
		return fmt.Errorf("schedule requires a title")
	}
	if sched.Prompt == "" {
		return fmt.Errorf("schedule requires a prompt")
	}
	hasRemind := sched.RemindAt != nil
	hasCron := sched.CronSpec != ""
	if hasRemind == hasCron {
		return fmt.Errorf("schedule requires exactly one of remindAt or cronSpec")
	}
	if hasCron {
		if _, err := cron.ParseStandard(sched.CronSpec); err != nil {
			return fmt.Errorf("invalid cron spec %q: %w", sched.CronSpec, err)
		}
	}
	return nil
}

// reconcile resyncs one cron entry from its schedule:* event.
func (s *Scheduler) reconcile(ctx context.Context, payload any) error {
	p, ok := payload.(bus.SchedulePayload)
	if !ok {
		return nil
	}
	sched, err := s.store.Get(ctx, p.ScheduleID)
	if err != nil {
		s.removeCronEntry(p.ScheduleID)
		return nil
	}
	return s.syncCronEntry(sched)
}

// syncCronEntry installs, replaces, or removes the cron entry for one
// schedule to match its persisted state.
func (s *Scheduler) syncCronEntry(sched *Schedule) error {
	s.removeCronEntry(sched.ID)
	if !sched.Enabled || sched.CronSpec == "" {
		return nil
	}
	id := sched.ID
	entryID, err := s.engine.AddFunc(sched.CronSpec, func() { s.fireCron(id) })
	if err != nil {
		return fmt.Errorf("adding cron entry for %s: %w", sched.ID, err)
	}
	s.mu.Lock()
	s.entries[sched.ID] = entryID
	s.mu.Unlock()
	s.bus.Emit(context.Background(), bus.EventCronJobCreated, bus.CronJobPayload{
		Scope: sched.Scope, JobID: sched.ID, Spec: sched.CronSpec,
	})
	return nil
}

func (s *Scheduler) removeCronEntry(scheduleID string) {
	s.mu.Lock()
	if entryID, ok := s.entries[scheduleID]; ok {
		s.engine.Remove(entryID)
		delete(s.entries, scheduleID)
	}
	s.mu.Unlock()
}

// fireCron starts a background session for one cron firing. It runs on a
// cron engine goroutine, which engine.Stop waits out on shutdown. The
// schedule is re-read so a just-disabled job never fires.
func (s *Scheduler) fireCron(scheduleID string) {
	ctx := context.Background()

	sched, err := s.store.Get(ctx, scheduleID)
	if err != nil || !sched.Enabled {
		return
	}
	_, err = s.bg.Trigger(ctx, background.TriggerSpec{
		Scope:   sched.Scope,
		Trigger: models.TriggerCron,
		Prompt:  sched.Prompt,
		Label:   sched.Title,
	})
	if err != nil {
		slog.Error("Cron job failed to start", "scheduleId", scheduleID, "error", err)
		s.bus.Emit(ctx, bus.EventCronJobFailed, bus.CronJobPayload{
			Scope: sched.Scope, JobID: sched.ID, Spec: sched.CronSpec, Error: err.Error(),
		})
		return
	}
	if err := s.store.MarkFired(ctx, sched.ID, time.Now(), false); err != nil {
		slog.Error("Failed to record cron firing", "scheduleId", scheduleID, "error", err)
	}
	s.bus.Emit(ctx, bus.EventCronJobExecuted, bus.CronJobPayload{
		Scope: sched.Scope, JobID: sched.ID, Spec: sched.CronSpec,
	})
}

// pollLoop fires due one-shot reminders.
func (s *Scheduler) pollLoop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.fireDueReminders()
		case <-s.stop:
			return
		}
	}
}

func (s *Scheduler) fireDueReminders() {
	ctx := context.Background()
	due, err := s.store.DueReminders(ctx, time.Now())
	if err != nil {
		slog.Error("Failed to query due reminders", "error", err)
		return
	}
	for _, sched := range due {
		// disable first so a slow trigger cannot double-fire on the next tick
		if err := s.store.MarkFired(ctx, sched.ID, time.Now(), true); err != nil {
			slog.Error("Failed to mark reminder fired", "scheduleId", sched.ID, "error", err)
			continue
		}
		_, err := s.bg.Trigger(ctx, background.TriggerSpec{
			Scope:   sched.Scope,
			Trigger: models.TriggerScheduleRemind,
			Prompt:  sched.Prompt,
			Label:   sched.Title,
		})
		if err != nil {
			slog.Error("Reminder failed to start", "scheduleId", sched.ID, "error", err)
			continue
		}
		payload := schedulePayload(sched)
		s.bus.Emit(ctx, bus.EventScheduleReminded, payload)
	}
}

func schedulePayload(sched *Schedule) bus.SchedulePayload {
	p := bus.SchedulePayload{
		Scope:      sched.Scope,
		ScheduleID: sched.ID,
		Title:      sched.Title,
	}
	if sched.RemindAt != nil {
		p.RemindAt = sched.RemindAt.UTC().Format(time.RFC3339)
	}
	return p
}
