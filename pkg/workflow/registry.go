package workflow

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/scope"
)

// Registry holds the registered workflow definitions per scope. Paused
// runs resume against the registered definition of the same name.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]*Definition
	bus  *bus.Bus
}

// NewRegistry creates an empty definition registry.
func NewRegistry(b *bus.Bus) *Registry {
	return &Registry{defs: make(map[string]*Definition), bus: b}
}

func defKey(scopeName, name string) string {
	return scopeName + "/" + name
}

// Register validates and stores a definition, replacing any previous one
// of the same name.
func (r *Registry) Register(ctx context.Context, scopeName string, def *Definition) error {
	if err := ValidateDefinition(def); err != nil {
		return err
	}
	r.mu.Lock()
	r.defs[defKey(scopeName, def.Name)] = def
	r.mu.Unlock()
	r.bus.Emit(ctx, bus.EventWorkflowDefRegistered, bus.WorkflowDefPayload{
		Scope: scopeName, Name: def.Name,
	})
	return nil
}

// Get returns a registered definition, or scope.ErrNotFound.
func (r *Registry) Get(scopeName, name string) (*Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[defKey(scopeName, name)]
	if !ok {
		return nil, fmt.Errorf("workflow %s: %w", name, scope.ErrNotFound)
	}
	return def, nil
}

// List returns the definitions registered in a scope, sorted by name.
func (r *Registry) List(scopeName string) []*Definition {
	prefix := scopeName + "/"
	r.mu.RLock()
	var out []*Definition
	for key, def := range r.defs {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			out = append(out, def)
		}
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Delete removes a definition. Missing names return scope.ErrNotFound.
func (r *Registry) Delete(ctx context.Context, scopeName, name string) error {
	key := defKey(scopeName, name)
	r.mu.Lock()
	_, ok := r.defs[key]
	delete(r.defs, key)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("workflow %s: %w", name, scope.ErrNotFound)
	}
	r.bus.Emit(ctx, bus.EventWorkflowDefDeleted, bus.WorkflowDefPayload{
		Scope: scopeName, Name: name,
	})
	return nil
}
