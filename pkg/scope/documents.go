package scope

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hymnly133/prizm/pkg/bus"
)

// Document is a scope-owned Markdown document with YAML frontmatter.
type Document struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Tags      []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	SessionID string    `json:"sessionId,omitempty" yaml:"sessionId,omitempty"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
	Content   string    `json:"content" yaml:"-"`
}

func (s *Store) documentsDir(scope string) string {
	return filepath.Join(s.Root(scope), "documents")
}

func (s *Store) documentPath(scope, id string) string {
	return filepath.Join(s.documentsDir(scope), id+".md")
}

func (s *Store) writeDocument(scope string, doc *Document) error {
	if err := os.MkdirAll(s.documentsDir(scope), 0o755); err != nil {
		return fmt.Errorf("creating documents dir: %w", err)
	}
	data, err := encodeFrontmatter(doc, doc.Content)
	if err != nil {
		return err
	}
	return os.WriteFile(s.documentPath(scope, doc.ID), data, 0o644)
}

// CreateDocument persists a new document and publishes document:saved.
// SessionID records the creating agent session for rollback bookkeeping.
func (s *Store) CreateDocument(ctx context.Context, scope, title, content, sessionID string, tags []string) (*Document, error) {
	if title == "" {
		return nil, NewValidationError("title", "must not be empty")
	}
	now := time.Now()
	doc := &Document{
		ID:        "doc-" + uuid.New().String(),
		Title:     title,
		Tags:      tags,
		SessionID: sessionID,
		CreatedAt: now,
		UpdatedAt: now,
		Content:   content,
	}
	st := s.state(scope)
	st.mu.Lock()
	err := s.writeDocument(scope, doc)
	st.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.bus.Emit(ctx, bus.EventDocumentSaved, bus.DocumentPayload{
		Scope: scope, DocumentID: doc.ID, Title: doc.Title, SessionID: sessionID,
	})
	return doc, nil
}

// GetDocument loads a document by id, or ErrNotFound.
func (s *Store) GetDocument(scope, id string) (*Document, error) {
	st := s.state(scope)
	st.mu.RLock()
	defer st.mu.RUnlock()
	data, err := os.ReadFile(s.documentPath(scope, id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("document %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("reading document %s: %w", id, err)
	}
	var doc Document
	body, err := decodeFrontmatter(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("document %s: %w", id, err)
	}
	doc.Content = body
	if doc.ID == "" {
		doc.ID = id
	}
	return &doc, nil
}

// ListDocuments returns every document in the scope.
func (s *Store) ListDocuments(scope string) ([]*Document, error) {
	entries, err := os.ReadDir(s.documentsDir(scope))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	var docs []*Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".md")
		doc, err := s.GetDocument(scope, id)
		if err != nil {
			continue
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// UpdateDocument applies fn under the scope lock, persists, and publishes
// document:saved.
func (s *Store) UpdateDocument(ctx context.Context, scope, id string, fn func(*Document) error) (*Document, error) {
	doc, err := s.GetDocument(scope, id)
	if err != nil {
		return nil, err
	}
	if err := fn(doc); err != nil {
		return nil, err
	}
	doc.UpdatedAt = time.Now()

	st := s.state(scope)
	st.mu.Lock()
	err = s.writeDocument(scope, doc)
	st.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.bus.Emit(ctx, bus.EventDocumentSaved, bus.DocumentPayload{
		Scope: scope, DocumentID: doc.ID, Title: doc.Title,
	})
	return doc, nil
}

// RawDocument returns the raw on-disk bytes of a document as a string, or
// nil when the document does not exist. Used for checkpoint pre-images.
func (s *Store) RawDocument(scope, id string) *string {
	st := s.state(scope)
	st.mu.RLock()
	defer st.mu.RUnlock()
	data, err := os.ReadFile(s.documentPath(scope, id))
	if err != nil {
		return nil
	}
	raw := string(data)
	return &raw
}

// RestoreDocument writes raw document bytes back, or deletes the document
// when raw is empty. Rollback path; publishes no events.
func (s *Store) RestoreDocument(scope, id, raw string) error {
	st := s.state(scope)
	st.mu.Lock()
	defer st.mu.Unlock()
	path := s.documentPath(scope, id)
	if raw == "" {
		err := os.Remove(path)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("deleting document %s: %w", id, err)
		}
		return nil
	}
	if err := os.MkdirAll(s.documentsDir(scope), 0o755); err != nil {
		return fmt.Errorf("creating documents dir: %w", err)
	}
	return os.WriteFile(path, []byte(raw), 0o644)
}

// DeleteDocument removes a document and publishes document:deleted.
// Missing documents return ErrNotFound.
func (s *Store) DeleteDocument(ctx context.Context, scope, id string) error {
	st := s.state(scope)
	st.mu.Lock()
	err := os.Remove(s.documentPath(scope, id))
	st.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("document %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("deleting document %s: %w", id, err)
	}
	s.bus.Emit(ctx, bus.EventDocumentDeleted, bus.DocumentPayload{
		Scope: scope, DocumentID: id,
	})
	return nil
}
