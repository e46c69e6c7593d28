package scope

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/hymnly133/prizm/pkg/bus"
)

// TodoItem is one entry in a scope's todo list.
type TodoItem struct {
	ID        string     `json:"id" yaml:"id"`
	Text      string     `json:"text" yaml:"text"`
	Done      bool       `json:"done" yaml:"done"`
	CreatedAt time.Time  `json:"createdAt" yaml:"createdAt"`
	DoneAt    *time.Time `json:"doneAt,omitempty" yaml:"doneAt,omitempty"`
}

// TodoList is a named list of todo items stored as one Markdown file.
type TodoList struct {
	ID        string     `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Items     []TodoItem `json:"items" yaml:"items"`
	UpdatedAt time.Time  `json:"updatedAt" yaml:"updatedAt"`
}

func (s *Store) todosDir(scope string) string {
	return filepath.Join(s.Root(scope), "todos")
}

func (s *Store) todoPath(scope, id string) string {
	return filepath.Join(s.todosDir(scope), id+".md")
}

func (s *Store) writeTodoList(scope string, list *TodoList) error {
	if err := os.MkdirAll(s.todosDir(scope), 0o755); err != nil {
		return fmt.Errorf("creating todos dir: %w", err)
	}
	data, err := encodeFrontmatter(list, "")
	if err != nil {
		return err
	}
	return os.WriteFile(s.todoPath(scope, list.ID), data, 0o644)
}

// GetTodoList loads a todo list by id, or ErrNotFound.
func (s *Store) GetTodoList(scope, id string) (*TodoList, error) {
	st := s.state(scope)
	st.mu.RLock()
	defer st.mu.RUnlock()
	data, err := os.ReadFile(s.todoPath(scope, id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("todo list %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("reading todo list %s: %w", id, err)
	}
	var list TodoList
	if _, err := decodeFrontmatter(data, &list); err != nil {
		return nil, fmt.Errorf("todo list %s: %w", id, err)
	}
	return &list, nil
}

// CreateTodoList persists a new todo list and publishes todo:mutated.
func (s *Store) CreateTodoList(ctx context.Context, scope, title, sessionID string) (*TodoList, error) {
	list := &TodoList{
		ID:        "todo-" + uuid.New().String(),
		Title:     title,
		Items:     []TodoItem{},
		UpdatedAt: time.Now(),
	}
	st := s.state(scope)
	st.mu.Lock()
	err := s.writeTodoList(scope, list)
	st.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.bus.Emit(ctx, bus.EventTodoMutated, bus.MutationPayload{
		Scope: scope, ID: list.ID, Mutation: "created", SessionID: sessionID,
	})
	return list, nil
}

// MutateTodoList applies fn to a todo list under the scope lock, persists,
// and publishes todo:mutated with the given mutation label.
func (s *Store) MutateTodoList(ctx context.Context, scope, id, mutation, sessionID string, fn func(*TodoList) error) (*TodoList, error) {
	list, err := s.GetTodoList(scope, id)
	if err != nil {
		return nil, err
	}
	if err := fn(list); err != nil {
		return nil, err
	}
	list.UpdatedAt = time.Now()

	st := s.state(scope)
	st.mu.Lock()
	err = s.writeTodoList(scope, list)
	st.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.bus.Emit(ctx, bus.EventTodoMutated, bus.MutationPayload{
		Scope: scope, ID: id, Mutation: mutation, SessionID: sessionID,
	})
	return list, nil
}

// AddTodoItem appends an item to a list.
func (s *Store) AddTodoItem(ctx context.Context, scope, listID, text, sessionID string) (*TodoList, error) {
	if text == "" {
		return nil, NewValidationError("text", "must not be empty")
	}
	return s.MutateTodoList(ctx, scope, listID, "item_added", sessionID, func(list *TodoList) error {
		list.Items = append(list.Items, TodoItem{
			ID:        "ti-" + uuid.New().String(),
			Text:      text,
			CreatedAt: time.Now(),
		})
		return nil
	})
}

// CompleteTodoItem marks an item done.
func (s *Store) CompleteTodoItem(ctx context.Context, scope, listID, itemID, sessionID string) (*TodoList, error) {
	return s.MutateTodoList(ctx, scope, listID, "item_completed", sessionID, func(list *TodoList) error {
		for i := range list.Items {
			if list.Items[i].ID == itemID {
				now := time.Now()
				list.Items[i].Done = true
				list.Items[i].DoneAt = &now
				return nil
			}
		}
		return fmt.Errorf("todo item %s: %w", itemID, ErrNotFound)
	})
}

// DeleteTodoList removes a list and publishes todo:mutated.
func (s *Store) DeleteTodoList(ctx context.Context, scope, id, sessionID string) error {
	st := s.state(scope)
	st.mu.Lock()
	err := os.Remove(s.todoPath(scope, id))
	st.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("todo list %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("deleting todo list %s: %w", id, err)
	}
	s.bus.Emit(ctx, bus.EventTodoMutated, bus.MutationPayload{
		Scope: scope, ID: id, Mutation: "deleted", SessionID: sessionID,
	})
	return nil
}
