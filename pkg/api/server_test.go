package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnly133/prizm/pkg/agent"
	"github.com/hymnly133/prizm/pkg/audit"
	"github.com/hymnly133/prizm/pkg/background"
	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/checkpoint"
	"github.com/hymnly133/prizm/pkg/config"
	"github.com/hymnly133/prizm/pkg/database"
	"github.com/hymnly133/prizm/pkg/llm"
	"github.com/hymnly133/prizm/pkg/locks"
	"github.com/hymnly133/prizm/pkg/models"
	"github.com/hymnly133/prizm/pkg/scheduler"
	"github.com/hymnly133/prizm/pkg/scope"
	"github.com/hymnly133/prizm/pkg/workflow"
)

type testServer struct {
	srv    *Server
	router http.Handler
	store  *scope.Store
	bus    *bus.Bus
	client *llm.ScriptedClient
	locks  *locks.Manager
}

func testConfig() *config.Config {
	return &config.Config{
		AuthDisabled:     true,
		WebSocketEnabled: false,
		Agent: config.AgentConfig{
			FullContextTurns:   8,
			CachedContextTurns: 4,
			DefaultModel:       "test-model",
		},
		Background: config.BackgroundConfig{
			MaxGlobal:      5,
			MaxDepth:       2,
			DefaultTimeout: time.Minute,
		},
		Workflow: config.WorkflowConfig{
			RunRetention:       24 * time.Hour,
			DefaultStepTimeout: time.Minute,
		},
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewClient(ctx, filepath.Join(t.TempDir(), "prizm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	b := bus.New()
	store := scope.NewStore(t.TempDir(), b)
	lm := locks.NewManager(b)
	client := llm.NewScriptedClient()
	rt := agent.NewRuntime(cfg.Agent, store, b, client, checkpoint.NewStore(), nil, lm)
	t.Cleanup(func() { _ = rt.Close() })

	bg := background.NewManager(cfg.Background, store, rt, b)
	t.Cleanup(func() { _ = bg.Shutdown(context.Background()) })

	registry := workflow.NewRegistry(b)
	runStore := workflow.NewStore(db)
	runner := workflow.NewRunner(cfg.Workflow, runStore, registry, b, workflow.NewBackgroundStepExecutor(bg), nil)

	schedStore := scheduler.NewStore(db)
	sched := scheduler.New(schedStore, bg, b, time.Minute)
	t.Cleanup(func() { _ = sched.Shutdown(context.Background()) })

	srv := NewServer(Deps{
		Config:     cfg,
		DB:         db,
		Bus:        b,
		Store:      store,
		Runtime:    rt,
		Background: bg,
		Locks:      lm,
		Workflows:  registry,
		Runner:     runner,
		RunStore:   runStore,
		Scheduler:  sched,
		Audit:      audit.NewLog(db, b),
	})
	return &testServer{
		srv:    srv,
		router: srv.Router(),
		store:  store,
		bus:    b,
		client: client,
		locks:  lm,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch v := body.(type) {
		case string:
			buf.WriteString(v)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(v))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, testConfig())
	w := ts.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decodeBody(t, w)["status"])
}

func TestAuthRejectsMissingOrWrongKey(t *testing.T) {
	cfg := testConfig()
	cfg.AuthDisabled = false
	cfg.APIKey = "sekrit"
	ts := newTestServer(t, cfg)

	w := ts.do(t, http.MethodGet, "/api/v1/documents?scope=proj", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents?scope=proj", nil)
	req.Header.Set("X-API-Key", "wrong")
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/documents?scope=proj", nil)
	req.Header.Set("X-API-Key", "sekrit")
	rec = httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestScopeQueryIsRequired(t *testing.T) {
	ts := newTestServer(t, testConfig())
	w := ts.do(t, http.MethodGet, "/api/v1/documents", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t, testConfig())

	w := ts.do(t, http.MethodPost, "/api/v1/agent/sessions?scope=proj", jsonObj{"title": "research"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	id, _ := created["id"].(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "research", created["title"])

	w = ts.do(t, http.MethodGet, "/api/v1/agent/sessions/"+id+"?scope=proj", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodDelete, "/api/v1/agent/sessions/"+id+"?scope=proj", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(t, http.MethodGet, "/api/v1/agent/sessions/"+id+"?scope=proj", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// jsonObj keeps request body literals terse.
type jsonObj = map[string]any

// sseFrames parses the data frames out of an SSE body, skipping heartbeat
// comments.
func sseFrames(t *testing.T, body string) []map[string]any {
	t.Helper()
	var frames []map[string]any
	for _, line := range strings.Split(body, "\n") {
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		var frame map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &frame))
		frames = append(frames, frame)
	}
	return frames
}

func TestChatStreamsSSE(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.client.Enqueue(
		&models.TextChunk{Content: "Hello, "},
		&models.TextChunk{Content: "world."},
		&models.UsageChunk{Usage: models.Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15}},
	)

	sess, err := ts.store.CreateSession(context.Background(), "proj", scope.CreateSessionInput{Title: "chat"})
	require.NoError(t, err)

	w := ts.do(t, http.MethodPost, "/api/v1/agent/sessions/"+sess.ID+"/chat?scope=proj", jsonObj{"content": "hi"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")

	frames := sseFrames(t, w.Body.String())
	require.NotEmpty(t, frames)

	var text strings.Builder
	for _, f := range frames {
		if f["type"] == "text" {
			text.WriteString(f["content"].(string))
		}
	}
	assert.Equal(t, "Hello, world.", text.String())

	done := frames[len(frames)-1]
	require.Equal(t, "done", done["type"])
	usage, ok := done["usage"].(map[string]any)
	require.True(t, ok, "done frame missing usage: %v", done)
	assert.EqualValues(t, 15, usage["totalTokens"])
	assert.NotEmpty(t, done["messageId"])
}

func TestChatOnMissingSessionReturns404(t *testing.T) {
	ts := newTestServer(t, testConfig())
	w := ts.do(t, http.MethodPost, "/api/v1/agent/sessions/sess-nope/chat?scope=proj", jsonObj{"content": "hi"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentUpdateHonorsLocks(t *testing.T) {
	ts := newTestServer(t, testConfig())

	w := ts.do(t, http.MethodPost, "/api/v1/documents?scope=proj", jsonObj{"title": "notes", "content": "v1"})
	require.Equal(t, http.StatusCreated, w.Code)
	docID := decodeBody(t, w)["id"].(string)

	_, err := ts.locks.Acquire(context.Background(), "proj", "document", docID, "sess-a", "editing", 0)
	require.NoError(t, err)

	w = ts.do(t, http.MethodPut, "/api/v1/documents/"+docID+"?scope=proj",
		jsonObj{"content": "v2", "sessionId": "sess-b"})
	require.Equal(t, http.StatusLocked, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "RESOURCE_LOCKED", body["code"])
	lock, ok := body["lock"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sess-a", lock["sessionId"])
	assert.NotEmpty(t, lock["expiresAt"])

	// Holder writes pass.
	w = ts.do(t, http.MethodPut, "/api/v1/documents/"+docID+"?scope=proj",
		jsonObj{"content": "v2", "sessionId": "sess-a"})
	require.Equal(t, http.StatusOK, w.Code)

	// Force bypasses the gate.
	w = ts.do(t, http.MethodPut, "/api/v1/documents/"+docID+"?scope=proj&force=true",
		jsonObj{"content": "v3", "sessionId": "sess-b"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "v3", decodeBody(t, w)["content"])
}

func TestAcquireLockConflictEnvelope(t *testing.T) {
	ts := newTestServer(t, testConfig())

	w := ts.do(t, http.MethodPost, "/api/v1/locks/acquire",
		jsonObj{"scope": "proj", "resourceType": "document", "resourceId": "doc-1", "sessionId": "sess-a"})
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/api/v1/locks/acquire",
		jsonObj{"scope": "proj", "resourceType": "document", "resourceId": "doc-1", "sessionId": "sess-b"})
	require.Equal(t, http.StatusLocked, w.Code)
	assert.Equal(t, "RESOURCE_LOCKED", decodeBody(t, w)["code"])

	w = ts.do(t, http.MethodPost, "/api/v1/locks/acquire?force=true",
		jsonObj{"scope": "proj", "resourceType": "document", "resourceId": "doc-1", "sessionId": "sess-b"})
	require.Equal(t, http.StatusOK, w.Code)
}

const linearWorkflowYAML = `
name: publish
steps:
  - id: draft
    type: agent
    prompt: write the draft
`

const approveWorkflowYAML = `
name: gated
steps:
  - id: draft
    type: agent
    prompt: write the draft
  - id: gate
    type: approve
    approvePrompt: "Publish? $draft"
  - id: publish
    type: agent
    prompt: "publish $draft"
`

func TestWorkflowLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.client.Enqueue(
		&models.TextChunk{Content: "drafted"},
		&models.UsageChunk{Usage: models.Usage{TotalTokens: 3}},
	)

	w := ts.do(t, http.MethodPut, "/api/v1/workflows?scope=proj", linearWorkflowYAML)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decodeBody(t, w)["steps"])

	w = ts.do(t, http.MethodGet, "/api/v1/workflows?scope=proj", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/api/v1/workflows/publish/run?scope=proj", nil)
	require.Equal(t, http.StatusOK, w.Code)
	run := decodeBody(t, w)
	assert.Equal(t, "completed", run["status"])
	results := run["stepResults"].(map[string]any)
	draft := results["draft"].(map[string]any)
	assert.Equal(t, "drafted", draft["output"])

	w = ts.do(t, http.MethodGet, "/api/v1/workflow-runs/"+run["id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestWorkflowApproveAndResumeOverHTTP(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.client.Enqueue(
		&models.TextChunk{Content: "the post"},
		&models.UsageChunk{Usage: models.Usage{TotalTokens: 3}},
	)

	w := ts.do(t, http.MethodPut, "/api/v1/workflows?scope=proj", approveWorkflowYAML)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPost, "/api/v1/workflows/gated/run?scope=proj", nil)
	require.Equal(t, http.StatusOK, w.Code)
	run := decodeBody(t, w)
	require.Equal(t, "paused", run["status"])
	token := run["resumeToken"].(string)
	require.NotEmpty(t, token)
	assert.Equal(t, "Publish? the post", run["approvePrompt"])

	ts.client.Enqueue(
		&models.TextChunk{Content: "published"},
		&models.UsageChunk{Usage: models.Usage{TotalTokens: 3}},
	)
	w = ts.do(t, http.MethodPost, "/api/v1/workflow-runs/resume",
		jsonObj{"resumeToken": token, "approved": true})
	require.Equal(t, http.StatusOK, w.Code)
	resumed := decodeBody(t, w)
	assert.Equal(t, "completed", resumed["status"])

	// The token is single-use.
	w = ts.do(t, http.MethodPost, "/api/v1/workflow-runs/resume",
		jsonObj{"resumeToken": token, "approved": true})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWorkflowRejectsInvalidYAML(t *testing.T) {
	ts := newTestServer(t, testConfig())
	w := ts.do(t, http.MethodPut, "/api/v1/workflows?scope=proj", "name: broken\nsteps: []\n")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBackgroundTriggerAndWait(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.client.Enqueue(
		&models.TextChunk{Content: "done-bg"},
		&models.UsageChunk{Usage: models.Usage{TotalTokens: 3}},
	)

	w := ts.do(t, http.MethodPost, "/api/v1/background",
		jsonObj{"scope": "proj", "prompt": "summarize", "wait": true})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "done-bg", body["result"])
	sessionID := body["sessionId"].(string)

	w = ts.do(t, http.MethodGet, "/api/v1/background/"+sessionID+"?scope=proj", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decodeBody(t, w)
	assert.Equal(t, "completed", status["bgStatus"])
	assert.Equal(t, false, status["running"])
}

func TestScheduleCRUDAndValidation(t *testing.T) {
	ts := newTestServer(t, testConfig())

	w := ts.do(t, http.MethodPost, "/api/v1/schedules?scope=proj",
		jsonObj{"title": "standup", "prompt": "post the standup", "cronSpec": "0 9 * * *", "remindAt": time.Now().Format(time.RFC3339)})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = ts.do(t, http.MethodPost, "/api/v1/schedules?scope=proj",
		jsonObj{"title": "standup", "prompt": "post the standup", "cronSpec": "0 9 * * *"})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = ts.do(t, http.MethodGet, "/api/v1/schedules?scope=proj", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ts.do(t, http.MethodPut, "/api/v1/schedules/"+id,
		jsonObj{"title": "standup", "prompt": "post the standup", "cronSpec": "0 10 * * *"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0 10 * * *", decodeBody(t, w)["cronSpec"])

	w = ts.do(t, http.MethodDelete, "/api/v1/schedules/"+id, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = ts.do(t, http.MethodGet, "/api/v1/schedules/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuditEndpoint(t *testing.T) {
	ts := newTestServer(t, testConfig())
	ts.bus.Emit(context.Background(), bus.EventToolExecuted, bus.ToolExecutedPayload{
		Scope: "proj", SessionID: "sess-1", ToolName: "prizm_exec",
	})

	w := ts.do(t, http.MethodGet, "/api/v1/audit?scope=proj", nil)
	require.Equal(t, http.StatusOK, w.Code)
	entries := decodeBody(t, w)["entries"].([]any)
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]any)
	assert.Equal(t, "prizm_exec", entry["toolName"])
}
