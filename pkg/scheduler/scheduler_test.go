package scheduler

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnly133/prizm/pkg/background"
	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/database"
	"github.com/hymnly133/prizm/pkg/models"
	"github.com/hymnly133/prizm/pkg/scope"
)

// fakeTrigger records the background sessions a scheduler would start.
type fakeTrigger struct {
	mu    sync.Mutex
	specs []background.TriggerSpec
}

func (f *fakeTrigger) Trigger(ctx context.Context, spec background.TriggerSpec) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.specs = append(f.specs, spec)
	return "bg-" + spec.Label, nil
}

func (f *fakeTrigger) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.specs)
}

func (f *fakeTrigger) last() background.TriggerSpec {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.specs[len(f.specs)-1]
}

func newTestScheduler(t *testing.T, poll time.Duration) (*Scheduler, *fakeTrigger, *bus.Bus) {
	t.Helper()
	db, err := database.NewClient(context.Background(), filepath.Join(t.TempDir(), "prizm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	b := bus.New()
	t.Cleanup(b.ClearAll)
	trigger := &fakeTrigger{}
	s := New(NewStore(db), trigger, b, poll)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s, trigger, b
}

func futureTime(d time.Duration) *time.Time {
	t := time.Now().Add(d)
	return &t
}

func TestValidateSchedule(t *testing.T) {
	remind := futureTime(time.Hour)
	cases := []struct {
		name  string
		sched Schedule
		want  string
	}{
		{"no scope", Schedule{Title: "t", Prompt: "p", RemindAt: remind}, "requires a scope"},
		{"no title", Schedule{Scope: "s", Prompt: "p", RemindAt: remind}, "requires a title"},
		{"no prompt", Schedule{Scope: "s", Title: "t", RemindAt: remind}, "requires a prompt"},
		{"neither kind", Schedule{Scope: "s", Title: "t", Prompt: "p"}, "exactly one"},
		{"both kinds", Schedule{Scope: "s", Title: "t", Prompt: "p", RemindAt: remind, CronSpec: "* * * * *"}, "exactly one"},
		{"bad cron", Schedule{Scope: "s", Title: "t", Prompt: "p", CronSpec: "not cron"}, "invalid cron spec"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateSchedule(&tc.sched)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
	assert.NoError(t, validateSchedule(&Schedule{Scope: "s", Title: "t", Prompt: "p", CronSpec: "*/5 * * * *"}))
}

func TestCreateCronScheduleInstallsEntry(t *testing.T) {
	s, _, b := newTestScheduler(t, time.Hour)
	ctx := context.Background()

	var events []string
	var mu sync.Mutex
	for _, name := range []string{bus.EventScheduleCreated, bus.EventCronJobCreated} {
		event := name
		b.Subscribe(event, func(ctx context.Context, payload any) error {
			mu.Lock()
			events = append(events, event)
			mu.Unlock()
			return nil
		}, "test.collect")
	}

	sched := &Schedule{Scope: "online", Title: "nightly", Prompt: "tidy up", CronSpec: "0 3 * * *", Enabled: true}
	require.NoError(t, s.Create(ctx, sched))
	require.NotEmpty(t, sched.ID)

	assert.Equal(t, 1, s.EntryCount())
	mu.Lock()
	assert.Contains(t, events, bus.EventScheduleCreated)
	assert.Contains(t, events, bus.EventCronJobCreated)
	mu.Unlock()

	got, err := s.Get(ctx, sched.ID)
	require.NoError(t, err)
	assert.Equal(t, "nightly", got.Title)
	assert.Equal(t, "0 3 * * *", got.CronSpec)
}

func TestDisableRemovesCronEntry(t *testing.T) {
	s, _, _ := newTestScheduler(t, time.Hour)
	ctx := context.Background()

	sched := &Schedule{Scope: "online", Title: "nightly", Prompt: "tidy", CronSpec: "0 3 * * *", Enabled: true}
	require.NoError(t, s.Create(ctx, sched))
	require.Equal(t, 1, s.EntryCount())

	sched.Enabled = false
	require.NoError(t, s.Update(ctx, sched))
	assert.Equal(t, 0, s.EntryCount())

	sched.Enabled = true
	require.NoError(t, s.Update(ctx, sched))
	assert.Equal(t, 1, s.EntryCount())
}

func TestDeleteRemovesCronEntry(t *testing.T) {
	s, _, _ := newTestScheduler(t, time.Hour)
	ctx := context.Background()

	sched := &Schedule{Scope: "online", Title: "nightly", Prompt: "tidy", CronSpec: "0 3 * * *", Enabled: true}
	require.NoError(t, s.Create(ctx, sched))
	require.NoError(t, s.Delete(ctx, sched.ID))
	assert.Equal(t, 0, s.EntryCount())

	_, err := s.Get(ctx, sched.ID)
	require.ErrorIs(t, err, scope.ErrNotFound)
}

func TestReminderFiresExactlyOnce(t *testing.T) {
	s, trigger, b := newTestScheduler(t, 20*time.Millisecond)
	ctx := context.Background()

	reminded := make(chan bus.SchedulePayload, 1)
	b.Subscribe(bus.EventScheduleReminded, func(ctx context.Context, payload any) error {
		if p, ok := payload.(bus.SchedulePayload); ok {
			select {
			case reminded <- p:
			default:
			}
		}
		return nil
	}, "test.reminded")

	past := time.Now().Add(-time.Minute)
	sched := &Schedule{Scope: "online", Title: "standup", Prompt: "remind me about standup", RemindAt: &past, Enabled: true}
	require.NoError(t, s.Create(ctx, sched))
	require.NoError(t, s.Start(ctx))

	require.Eventually(t, func() bool { return trigger.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	spec := trigger.last()
	assert.Equal(t, models.TriggerScheduleRemind, spec.Trigger)
	assert.Equal(t, "remind me about standup", spec.Prompt)
	assert.Equal(t, "standup", spec.Label)

	select {
	case p := <-reminded:
		assert.Equal(t, sched.ID, p.ScheduleID)
	case <-time.After(2 * time.Second):
		t.Fatal("schedule:reminded was not emitted")
	}

	// several more poll ticks must not refire the one-shot
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, trigger.count())

	got, err := s.Get(ctx, sched.ID)
	require.NoError(t, err)
	assert.False(t, got.Enabled)
	require.NotNil(t, got.LastFiredAt)
}

func TestStartLoadsPersistedCronSchedules(t *testing.T) {
	db, err := database.NewClient(context.Background(), filepath.Join(t.TempDir(), "prizm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	store := NewStore(db)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &Schedule{Scope: "online", Title: "a", Prompt: "p", CronSpec: "0 3 * * *", Enabled: true}))
	require.NoError(t, store.Create(ctx, &Schedule{Scope: "online", Title: "b", Prompt: "p", CronSpec: "0 4 * * *", Enabled: false}))

	b := bus.New()
	t.Cleanup(b.ClearAll)
	s := New(store, &fakeTrigger{}, b, time.Hour)
	require.NoError(t, s.Start(ctx))
	t.Cleanup(func() {
		sctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = s.Shutdown(sctx)
	})

	// only the enabled schedule lands in the engine
	assert.Equal(t, 1, s.EntryCount())
}
