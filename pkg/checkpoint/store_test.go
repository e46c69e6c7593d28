package checkpoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hymnly133/prizm/pkg/models"
)

func TestCompleteIsPure(t *testing.T) {
	cp := NewCheckpoint("sess-1", 2, "do the thing")
	changes := []models.FileChange{{Path: "a.txt", Action: models.FileCreated}}

	done := Complete(cp, changes)
	assert.True(t, done.Completed)
	assert.Len(t, done.FileChanges, 1)
	assert.False(t, cp.Completed)
	assert.Empty(t, cp.FileChanges)
}

func TestCollectorFirstCaptureWins(t *testing.T) {
	s := NewStore()
	s.InitCollector("sess-1")

	v1, v2 := "first", "second"
	s.Capture("sess-1", "foo.txt", &v1)
	s.Capture("sess-1", "foo.txt", &v2)

	got := s.Flush("sess-1")
	assert.Equal(t, map[string]string{"foo.txt": "first"}, got)
}

func TestCollectorNilContentStoredAsEmpty(t *testing.T) {
	s := NewStore()
	s.InitCollector("sess-1")
	s.Capture("sess-1", "new.txt", nil)
	assert.Equal(t, map[string]string{"new.txt": ""}, s.Flush("sess-1"))
}

func TestCaptureWithoutInitIsNoOp(t *testing.T) {
	s := NewStore()
	v := "data"
	s.Capture("sess-unknown", "foo.txt", &v)
	assert.Empty(t, s.Flush("sess-unknown"))
}

func TestFlushClearsCollector(t *testing.T) {
	s := NewStore()
	s.InitCollector("sess-1")
	v := "data"
	s.Capture("sess-1", "foo.txt", &v)

	require.Len(t, s.Flush("sess-1"), 1)
	assert.Empty(t, s.Flush("sess-1"))
}

func TestSnapshotRoundTrip(t *testing.T) {
	root := t.TempDir()
	s := NewStore()

	snaps := map[string]string{"foo.txt": "before"}
	require.NoError(t, s.WriteSnapshots(root, "sess-1", "cp-1", snaps))
	assert.Equal(t, snaps, s.LoadSnapshots(root, "sess-1", "cp-1"))

	s.DeleteSnapshots(root, "sess-1", "cp-1")
	assert.Empty(t, s.LoadSnapshots(root, "sess-1", "cp-1"))
}

func TestEmptySnapshotsNotWritten(t *testing.T) {
	root := t.TempDir()
	s := NewStore()
	require.NoError(t, s.WriteSnapshots(root, "sess-1", "cp-1", nil))
	_, err := os.Stat(filepath.Join(root, ".prizm", "checkpoints", "sess-1", "cp-1.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestMalformedSnapshotFileYieldsEmpty(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".prizm", "checkpoints", "sess-1")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cp-1.json"), []byte("{not json"), 0o644))

	s := NewStore()
	assert.Equal(t, map[string]string{}, s.LoadSnapshots(root, "sess-1", "cp-1"))
}

func toolPart(name, args string, isErr bool) *models.MessagePart {
	return &models.MessagePart{
		Type:      models.PartTool,
		ToolName:  name,
		Arguments: args,
		Status:    models.ToolStatusCompleted,
		IsError:   isErr,
	}
}

func TestExtractFileChanges(t *testing.T) {
	msg := &models.AgentMessage{
		Role: models.RoleAssistant,
		Parts: []*models.MessagePart{
			toolPart("prizm_file_write", `{"path":"foo.txt","content":"x"}`, false),
			toolPart("prizm_file_move", `{"from":"a.txt","to":"b.txt"}`, false),
			toolPart("prizm_file_delete", `{"path":"old.txt"}`, false),
			toolPart("prizm_create_document", `{"title":"Notes"}`, false),
			toolPart("prizm_update_document", `{"id":"doc-1"}`, false),
			toolPart("prizm_delete_document", `{"id":"doc-2"}`, false),
		},
	}

	got := ExtractFileChanges(msg)
	require.Len(t, got, 6)
	assert.Equal(t, models.FileChange{Path: "foo.txt", Action: models.FileCreated}, got[0])
	assert.Equal(t, models.FileChange{Path: "b.txt", Action: models.FileMoved, FromPath: "a.txt"}, got[1])
	assert.Equal(t, models.FileChange{Path: "old.txt", Action: models.FileDeleted}, got[2])
	assert.Equal(t, models.FileChange{Path: "[doc] Notes", Action: models.FileCreated}, got[3])
	assert.Equal(t, models.FileChange{Path: "[doc] doc-1", Action: models.FileModified}, got[4])
	assert.Equal(t, models.FileChange{Path: "[doc] doc-2", Action: models.FileDeleted}, got[5])
}

func TestExtractSkipsErrorsAndBadJSON(t *testing.T) {
	msg := &models.AgentMessage{
		Role: models.RoleAssistant,
		Parts: []*models.MessagePart{
			toolPart("prizm_file_write", `{"path":"errored.txt"}`, true),
			toolPart("prizm_file_write", `@@@not repairable}{`, false),
			toolPart("prizm_file_write", `{"path":"good.txt"}`, false),
		},
	}

	got := ExtractFileChanges(msg)
	require.Len(t, got, 1)
	assert.Equal(t, "good.txt", got[0].Path)
}

func TestExtractRepairsMalformedArguments(t *testing.T) {
	msg := &models.AgentMessage{
		Role: models.RoleAssistant,
		Parts: []*models.MessagePart{
			// single quotes and trailing comma, repairable
			toolPart("prizm_file_write", `{'path': 'fixed.txt',}`, false),
		},
	}

	got := ExtractFileChanges(msg)
	require.Len(t, got, 1)
	assert.Equal(t, "fixed.txt", got[0].Path)
}

func TestExtractCollapsesDuplicatePaths(t *testing.T) {
	msg := &models.AgentMessage{
		Role: models.RoleAssistant,
		Parts: []*models.MessagePart{
			toolPart("prizm_file_write", `{"path":"foo.txt"}`, false),
			toolPart("prizm_file_delete", `{"path":"foo.txt"}`, false),
		},
	}

	got := ExtractFileChanges(msg)
	require.Len(t, got, 1)
	assert.Equal(t, models.FileCreated, got[0].Action)
}
