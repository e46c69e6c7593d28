package scope

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hymnly133/prizm/pkg/bus"
)

// resolvePath maps a scope-relative path onto disk, rejecting escapes from
// the scope root.
func (s *Store) resolvePath(scope, rel string) (string, error) {
	if rel == "" {
		return "", NewValidationError("path", "must not be empty")
	}
	clean := filepath.Clean("/" + rel)
	if strings.HasPrefix(clean, "/.prizm") {
		return "", NewValidationError("path", "the .prizm directory is reserved")
	}
	abs := filepath.Join(s.Root(scope), clean)
	root := s.Root(scope)
	if abs != root && !strings.HasPrefix(abs, root+string(filepath.Separator)) {
		return "", NewValidationError("path", "escapes the scope root")
	}
	return abs, nil
}

// ReadWorkspaceFile reads a scope-relative file. A missing file returns
// (nil, nil) so callers can distinguish absent from empty.
func (s *Store) ReadWorkspaceFile(scope, rel string) (*string, error) {
	abs, err := s.resolvePath(scope, rel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", rel, err)
	}
	content := string(data)
	return &content, nil
}

// WriteWorkspaceFile writes a scope-relative file and publishes
// file:operation.
func (s *Store) WriteWorkspaceFile(ctx context.Context, scope, rel, content, sessionID string) error {
	abs, err := s.resolvePath(scope, rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("creating parent dir for %s: %w", rel, err)
	}
	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	s.bus.Emit(ctx, bus.EventFileOperation, bus.FileOperationPayload{
		Scope: scope, SessionID: sessionID, Path: rel, Operation: "write",
	})
	return nil
}

// MoveWorkspaceFile renames a scope-relative file and publishes
// file:operation.
func (s *Store) MoveWorkspaceFile(ctx context.Context, scope, from, to, sessionID string) error {
	absFrom, err := s.resolvePath(scope, from)
	if err != nil {
		return err
	}
	absTo, err := s.resolvePath(scope, to)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(absTo), 0o755); err != nil {
		return fmt.Errorf("creating parent dir for %s: %w", to, err)
	}
	if err := os.Rename(absFrom, absTo); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file %s: %w", from, ErrNotFound)
		}
		return fmt.Errorf("moving %s to %s: %w", from, to, err)
	}
	s.bus.Emit(ctx, bus.EventFileOperation, bus.FileOperationPayload{
		Scope: scope, SessionID: sessionID, Path: to, Operation: "move", FromPath: from,
	})
	return nil
}

// DeleteWorkspaceFile removes a scope-relative file and publishes
// file:operation.
func (s *Store) DeleteWorkspaceFile(ctx context.Context, scope, rel, sessionID string) error {
	abs, err := s.resolvePath(scope, rel)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file %s: %w", rel, ErrNotFound)
		}
		return fmt.Errorf("deleting %s: %w", rel, err)
	}
	s.bus.Emit(ctx, bus.EventFileOperation, bus.FileOperationPayload{
		Scope: scope, SessionID: sessionID, Path: rel, Operation: "delete",
	})
	return nil
}

// RestoreWorkspaceFile writes a pre-image back without publishing
// file:operation. Used by rollback, which is a restore rather than an edit.
// An empty pre-image deletes the file (it did not exist before the turn).
func (s *Store) RestoreWorkspaceFile(scope, rel, preImage string) error {
	abs, err := s.resolvePath(scope, rel)
	if err != nil {
		return err
	}
	if preImage == "" {
		if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("removing %s: %w", rel, err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("creating parent dir for %s: %w", rel, err)
	}
	if err := os.WriteFile(abs, []byte(preImage), 0o644); err != nil {
		return fmt.Errorf("restoring %s: %w", rel, err)
	}
	return nil
}
