package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/kaptinlin/jsonrepair"

	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/llm"
	"github.com/hymnly133/prizm/pkg/locks"
	"github.com/hymnly133/prizm/pkg/models"
	"github.com/hymnly133/prizm/pkg/scope"
)

// Invocation is one tool call as seen by a handler.
type Invocation struct {
	Scope     string
	SessionID string
	ToolID    string
	Args      string
}

// decodeArgs unmarshals tool arguments into v, repairing malformed JSON.
func (inv *Invocation) decodeArgs(v any) error {
	raw := inv.Args
	if raw == "" {
		raw = "{}"
	}
	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}
	repaired, err := jsonrepair.JSONRepair(raw)
	if err != nil {
		return fmt.Errorf("unparseable tool arguments: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("unparseable tool arguments: %w", err)
	}
	return nil
}

// ToolHandler executes one tool call and returns its result text.
type ToolHandler func(ctx context.Context, inv *Invocation) (string, error)

type toolDef struct {
	handler     ToolHandler
	description string
	schema      map[string]any
}

// ToolRegistry holds the callable tools for the runtime.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]*toolDef
}

// Register adds or replaces a tool.
func (reg *ToolRegistry) Register(name, description string, schema map[string]any, handler ToolHandler) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.tools[name] = &toolDef{handler: handler, description: description, schema: schema}
}

// Specs returns the provider-facing tool list, filtered by the optional
// whitelist (nil admits every tool).
func (reg *ToolRegistry) Specs(allowed []string) []llm.Tool {
	var allowSet map[string]bool
	if allowed != nil {
		allowSet = make(map[string]bool, len(allowed))
		for _, name := range allowed {
			allowSet[name] = true
		}
	}
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	names := make([]string, 0, len(reg.tools))
	for name := range reg.tools {
		if allowSet == nil || allowSet[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	out := make([]llm.Tool, 0, len(names))
	for _, name := range names {
		def := reg.tools[name]
		out = append(out, llm.Tool{Name: name, Description: def.description, InputSchema: def.schema})
	}
	return out
}

func (reg *ToolRegistry) lookup(name string) (*toolDef, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	def, ok := reg.tools[name]
	return def, ok
}

// executeTool runs one tool call inside the streaming loop: merge running
// status, run the handler, merge the terminal part, forward the chunk,
// and publish the audit event. Tool errors never abort the turn.
func (r *Runtime) executeTool(ctx context.Context, out chan<- models.Chunk, scopeName, sessionID string, msg *models.AgentMessage, part *models.MessagePart, opts ChatOptions) {
	name := part.ToolName
	update := models.MessagePart{ToolID: part.ToolID, ToolName: name, Status: models.ToolStatusCompleted}

	def, known := r.tools.lookup(name)
	switch {
	case !known:
		update.Result = fmt.Sprintf("unknown tool %q", name)
		update.Status = models.ToolStatusError
		update.IsError = true
	case !toolAllowed(name, opts.AllowedTools):
		update.Result = fmt.Sprintf("tool %q is not allowed in this session", name)
		update.Status = models.ToolStatusError
		update.IsError = true
	default:
		msg.MergeToolPart(models.MessagePart{ToolID: part.ToolID, Status: models.ToolStatusRunning})
		send(ctx, out, &models.ToolCallChunk{ToolID: part.ToolID, Name: name, Arguments: part.Arguments, Status: models.ToolStatusRunning})

		start := time.Now()
		result, err := def.handler(ctx, &Invocation{
			Scope: scopeName, SessionID: sessionID, ToolID: part.ToolID, Args: part.Arguments,
		})
		duration := time.Since(start)
		if err != nil {
			update.Result = err.Error()
			update.Status = models.ToolStatusError
			update.IsError = true
		} else {
			update.Result = result
		}

		r.bus.Emit(context.WithoutCancel(ctx), bus.EventToolExecuted, bus.ToolExecutedPayload{
			Scope:      scopeName,
			SessionID:  sessionID,
			ToolName:   name,
			Arguments:  part.Arguments,
			Result:     update.Result,
			IsError:    update.IsError,
			DurationMs: duration.Milliseconds(),
		})
	}

	msg.MergeToolPart(update)
	send(ctx, out, &models.ToolCallChunk{
		ToolID: part.ToolID, Name: name, Arguments: part.Arguments,
		Result: update.Result, Status: update.Status, IsError: update.IsError,
	})
}

func toolAllowed(name string, allowed []string) bool {
	if allowed == nil {
		return true
	}
	for _, a := range allowed {
		if a == name {
			return true
		}
	}
	return false
}

func pathSchema(props map[string]any, required ...string) map[string]any {
	return map[string]any{"type": "object", "properties": props, "required": required}
}

// newToolRegistry registers the built-in prizm tools.
func newToolRegistry(r *Runtime) *ToolRegistry {
	reg := &ToolRegistry{tools: make(map[string]*toolDef)}

	reg.Register("prizm_file_write", "Write a file in the scope workspace",
		pathSchema(map[string]any{
			"path":    map[string]any{"type": "string"},
			"content": map[string]any{"type": "string"},
		}, "path", "content"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			var args struct{ Path, Content string }
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			pre, err := r.store.ReadWorkspaceFile(inv.Scope, args.Path)
			if err != nil {
				return "", err
			}
			r.cps.Capture(inv.SessionID, args.Path, pre)
			if err := r.store.WriteWorkspaceFile(ctx, inv.Scope, args.Path, args.Content, inv.SessionID); err != nil {
				return "", err
			}
			return "wrote " + args.Path, nil
		})

	reg.Register("prizm_file_move", "Move or rename a workspace file",
		pathSchema(map[string]any{
			"from": map[string]any{"type": "string"},
			"to":   map[string]any{"type": "string"},
		}, "from", "to"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			var args struct{ From, To string }
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			preFrom, err := r.store.ReadWorkspaceFile(inv.Scope, args.From)
			if err != nil {
				return "", err
			}
			preTo, err := r.store.ReadWorkspaceFile(inv.Scope, args.To)
			if err != nil {
				return "", err
			}
			r.cps.Capture(inv.SessionID, args.From, preFrom)
			r.cps.Capture(inv.SessionID, args.To, preTo)
			if err := r.store.MoveWorkspaceFile(ctx, inv.Scope, args.From, args.To, inv.SessionID); err != nil {
				return "", err
			}
			return "moved " + args.From + " to " + args.To, nil
		})

	reg.Register("prizm_file_delete", "Delete a workspace file",
		pathSchema(map[string]any{
			"path": map[string]any{"type": "string"},
		}, "path"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			var args struct{ Path string }
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			pre, err := r.store.ReadWorkspaceFile(inv.Scope, args.Path)
			if err != nil {
				return "", err
			}
			r.cps.Capture(inv.SessionID, args.Path, pre)
			if err := r.store.DeleteWorkspaceFile(ctx, inv.Scope, args.Path, inv.SessionID); err != nil {
				return "", err
			}
			return "deleted " + args.Path, nil
		})

	reg.Register("prizm_create_document", "Create a scope document",
		pathSchema(map[string]any{
			"title":   map[string]any{"type": "string"},
			"content": map[string]any{"type": "string"},
			"tags":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		}, "title"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			var args struct {
				Title   string
				Content string
				Tags    []string
			}
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			doc, err := r.store.CreateDocument(ctx, inv.Scope, args.Title, args.Content, inv.SessionID, args.Tags)
			if err != nil {
				return "", err
			}
			result, _ := json.Marshal(map[string]string{"id": doc.ID})
			return string(result), nil
		})

	reg.Register("prizm_update_document", "Update a scope document",
		pathSchema(map[string]any{
			"id":      map[string]any{"type": "string"},
			"title":   map[string]any{"type": "string"},
			"content": map[string]any{"type": "string"},
		}, "id"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			var args struct{ ID, Title, Content string }
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			r.cps.Capture(inv.SessionID, "[doc] "+args.ID, r.store.RawDocument(inv.Scope, args.ID))
			_, err := r.store.UpdateDocument(ctx, inv.Scope, args.ID, func(d *scope.Document) error {
				if args.Title != "" {
					d.Title = args.Title
				}
				if args.Content != "" {
					d.Content = args.Content
				}
				return nil
			})
			if err != nil {
				return "", err
			}
			return "updated document " + args.ID, nil
		})

	reg.Register("prizm_delete_document", "Delete a scope document",
		pathSchema(map[string]any{
			"id": map[string]any{"type": "string"},
		}, "id"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			var args struct{ ID string }
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			r.cps.Capture(inv.SessionID, "[doc] "+args.ID, r.store.RawDocument(inv.Scope, args.ID))
			if err := r.store.DeleteDocument(ctx, inv.Scope, args.ID); err != nil {
				return "", err
			}
			return "deleted document " + args.ID, nil
		})

	reg.Register("prizm_todo_add", "Add an item to a todo list",
		pathSchema(map[string]any{
			"listId": map[string]any{"type": "string"},
			"text":   map[string]any{"type": "string"},
		}, "listId", "text"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			var args struct {
				ListID string `json:"listId"`
				Text   string
			}
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			_, err := r.store.AddTodoItem(ctx, inv.Scope, args.ListID, args.Text, inv.SessionID)
			if err != nil {
				return "", err
			}
			return "added todo item", nil
		})

	reg.Register("prizm_todo_complete", "Complete a todo item",
		pathSchema(map[string]any{
			"listId": map[string]any{"type": "string"},
			"itemId": map[string]any{"type": "string"},
		}, "listId", "itemId"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			var args struct {
				ListID string `json:"listId"`
				ItemID string `json:"itemId"`
			}
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			_, err := r.store.CompleteTodoItem(ctx, inv.Scope, args.ListID, args.ItemID, inv.SessionID)
			if err != nil {
				return "", err
			}
			return "completed todo item", nil
		})

	reg.Register("prizm_clipboard_add", "Store a snippet on the scope clipboard",
		pathSchema(map[string]any{
			"label":   map[string]any{"type": "string"},
			"content": map[string]any{"type": "string"},
		}, "content"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			var args struct{ Label, Content string }
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			entry, err := r.store.AddClipboardEntry(ctx, inv.Scope, args.Label, args.Content, inv.SessionID)
			if err != nil {
				return "", err
			}
			return "clipboard entry " + entry.ID, nil
		})

	reg.Register("prizm_set_result", "Set the background session result",
		pathSchema(map[string]any{
			"result": map[string]any{"type": "string"},
		}, "result"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			var args struct{ Result string }
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			_, err := r.store.UpdateSession(ctx, inv.Scope, inv.SessionID, func(s *models.AgentSession) error {
				s.BgResult = args.Result
				return nil
			})
			if err != nil {
				return "", err
			}
			return "result recorded", nil
		})

	reg.Register("prizm_spawn_task", "Spawn a background task session",
		pathSchema(map[string]any{
			"prompt": map[string]any{"type": "string"},
			"label":  map[string]any{"type": "string"},
		}, "prompt"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			if r.spawner == nil {
				return "", fmt.Errorf("background tasks are not available")
			}
			var args struct{ Prompt, Label string }
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			id, err := r.spawner.SpawnTask(ctx, inv.Scope, inv.SessionID, args.Prompt, args.Label)
			if err != nil {
				return "", err
			}
			return "spawned background session " + id, nil
		})

	reg.Register("prizm_exec", "Run a one-shot shell command in the scope workspace",
		pathSchema(map[string]any{
			"command":   map[string]any{"type": "string"},
			"timeoutMs": map[string]any{"type": "integer"},
		}, "command"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			if r.execer == nil {
				return "", fmt.Errorf("exec workers are not available")
			}
			var args struct {
				Command   string
				TimeoutMs int64 `json:"timeoutMs"`
			}
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			timeout := 30 * time.Second
			if args.TimeoutMs > 0 {
				timeout = time.Duration(args.TimeoutMs) * time.Millisecond
			}
			result, err := r.execer.Exec(ctx, inv.Scope, inv.SessionID, args.Command, timeout)
			if err != nil {
				return "", err
			}
			encoded, _ := json.Marshal(result)
			return string(encoded), nil
		})

	reg.Register("prizm_acquire_lock", "Acquire a cooperative lock on a resource",
		pathSchema(map[string]any{
			"resourceType": map[string]any{"type": "string"},
			"resourceId":   map[string]any{"type": "string"},
			"reason":       map[string]any{"type": "string"},
			"ttlMs":        map[string]any{"type": "integer"},
			"force":        map[string]any{"type": "boolean"},
		}, "resourceType", "resourceId"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			var args struct {
				ResourceType string `json:"resourceType"`
				ResourceID   string `json:"resourceId"`
				Reason       string
				TTLMs        int64 `json:"ttlMs"`
				Force        bool
			}
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			ttl := time.Duration(args.TTLMs) * time.Millisecond
			var err error
			if args.Force {
				_, err = r.locks.ForceAcquire(ctx, inv.Scope, args.ResourceType, args.ResourceID, inv.SessionID, args.Reason, ttl)
			} else {
				_, err = r.locks.Acquire(ctx, inv.Scope, args.ResourceType, args.ResourceID, inv.SessionID, args.Reason, ttl)
			}
			if err != nil {
				var held *locks.ErrLocked
				if ok := asErrLocked(err, &held); ok {
					return "", fmt.Errorf("resource locked by session %s since %s", held.Holder.SessionID, held.Holder.AcquiredAt.Format(time.RFC3339))
				}
				return "", err
			}
			return "lock acquired", nil
		})

	reg.Register("prizm_release_lock", "Release a cooperative resource lock",
		pathSchema(map[string]any{
			"resourceType": map[string]any{"type": "string"},
			"resourceId":   map[string]any{"type": "string"},
		}, "resourceType", "resourceId"),
		func(ctx context.Context, inv *Invocation) (string, error) {
			var args struct {
				ResourceType string `json:"resourceType"`
				ResourceID   string `json:"resourceId"`
			}
			if err := inv.decodeArgs(&args); err != nil {
				return "", err
			}
			r.locks.Release(ctx, inv.Scope, args.ResourceType, args.ResourceID, inv.SessionID)
			return "lock released", nil
		})

	return reg
}

func asErrLocked(err error, target **locks.ErrLocked) bool {
	le, ok := err.(*locks.ErrLocked)
	if ok {
		*target = le
	}
	return ok
}
