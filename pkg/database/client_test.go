package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnly133/prizm/ent/auditentry"
	"github.com/hymnly133/prizm/ent/workflowrun"
)

// newTestClient opens a file-backed SQLite database under the test's temp
// dir so migrations run against the same driver production uses.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()
	client, err := NewClient(ctx, filepath.Join(t.TempDir(), "prizm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestMigrationsApplyIdempotently(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prizm.db")

	client, err := NewClient(ctx, path)
	require.NoError(t, err)
	require.NoError(t, client.Close())

	// second open over the same file must be a no-op
	client, err = NewClient(ctx, path)
	require.NoError(t, err)
	require.NoError(t, client.Close())
}

func TestWorkflowRunRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	created, err := client.WorkflowRun.Create().
		SetID("run-1").
		SetScope("online").
		SetWorkflowName("publish").
		SetStatus(workflowrun.StatusRunning).
		SetStepResults(map[string]any{}).
		Save(ctx)
	require.NoError(t, err)

	_, err = created.Update().
		SetStatus(workflowrun.StatusPaused).
		SetResumeToken("tok-1").
		SetApprovePrompt("publish now?").
		Save(ctx)
	require.NoError(t, err)

	got, err := client.WorkflowRun.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, workflowrun.StatusPaused, got.Status)
	require.NotNil(t, got.ResumeToken)
	assert.Equal(t, "tok-1", *got.ResumeToken)
}

func TestAuditEntryQueryBySession(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	for i, name := range []string{"prizm_file_write", "prizm_exec"} {
		_, err := client.AuditEntry.Create().
			SetID("audit-" + name).
			SetScope("online").
			SetSessionID("sess-1").
			SetToolName(name).
			SetCreatedAt(time.Now().Add(time.Duration(i) * time.Second)).
			Save(ctx)
		require.NoError(t, err)
	}

	n, err := client.AuditEntry.Query().
		Where(auditentry.ScopeEQ("online"), auditentry.SessionIDEQ("sess-1")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestHealth(t *testing.T) {
	client := newTestClient(t)
	status, err := Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
}
