package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"

	"github.com/hymnly133/prizm/pkg/bus"
)

// WebSocket close codes for authentication failures.
const (
	closeMissingKey websocket.StatusCode = 4001
	closeInvalidKey websocket.StatusCode = 4003
)

const wsWriteTimeout = 5 * time.Second

// bridgedEvents is every bus event mirrored onto the /ws stream.
var bridgedEvents = []string{
	bus.EventSessionCreated,
	bus.EventSessionDeleted,
	bus.EventSessionRolledBack,
	bus.EventSessionChatStatusChanged,
	bus.EventMessageCompleted,
	bus.EventSessionCompressing,
	bus.EventToolExecuted,
	bus.EventDocumentSaved,
	bus.EventDocumentDeleted,
	bus.EventDocumentMemoryUpdated,
	bus.EventLockChanged,
	bus.EventFileOperation,
	bus.EventTodoMutated,
	bus.EventClipboardMutated,
	bus.EventBgCompleted,
	bus.EventBgFailed,
	bus.EventBgTimeout,
	bus.EventBgCancelled,
	bus.EventScheduleCreated,
	bus.EventScheduleUpdated,
	bus.EventScheduleDeleted,
	bus.EventScheduleReminded,
	bus.EventCronJobCreated,
	bus.EventCronJobExecuted,
	bus.EventCronJobFailed,
	bus.EventTaskStarted,
	bus.EventTaskCompleted,
	bus.EventTaskFailed,
	bus.EventTaskCancelled,
	bus.EventWorkflowStarted,
	bus.EventWorkflowStepCompleted,
	bus.EventWorkflowPaused,
	bus.EventWorkflowCompleted,
	bus.EventWorkflowFailed,
	bus.EventWorkflowDefRegistered,
	bus.EventWorkflowDefDeleted,
	bus.EventNotificationRequested,
}

// wsClient is one connected event-stream consumer. An empty scope set
// means the client receives events from every scope.
type wsClient struct {
	conn   *websocket.Conn
	scopes map[string]bool

	writeMu sync.Mutex
}

func (cl *wsClient) wants(scopeName string) bool {
	if len(cl.scopes) == 0 {
		return true
	}
	return cl.scopes[scopeName]
}

func (cl *wsClient) send(data []byte) error {
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()
	ctx, cancel := context.WithTimeout(context.Background(), wsWriteTimeout)
	defer cancel()
	return cl.conn.Write(ctx, websocket.MessageText, data)
}

// eventHub fans bus events out to WebSocket clients. Delivery happens on
// the emitter's goroutine, so sends are bounded by wsWriteTimeout and a
// failed send drops the client.
type eventHub struct {
	mu      sync.Mutex
	clients map[*wsClient]struct{}
	unsubs  []bus.Unsubscribe
	closed  bool
}

func newEventHub(b *bus.Bus) *eventHub {
	h := &eventHub{clients: make(map[*wsClient]struct{})}
	for _, name := range bridgedEvents {
		event := name
		unsub := b.Subscribe(event, func(ctx context.Context, payload any) error {
			h.broadcast(event, payload)
			return nil
		}, "ws.bridge")
		h.unsubs = append(h.unsubs, unsub)
	}
	return h
}

func (h *eventHub) add(cl *wsClient) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[cl] = struct{}{}
	return true
}

func (h *eventHub) remove(cl *wsClient) {
	h.mu.Lock()
	delete(h.clients, cl)
	h.mu.Unlock()
}

// broadcast flattens the payload into a JSON object, adds the event name
// as "type", and sends it to every client whose scope filter matches.
func (h *eventHub) broadcast(event string, payload any) {
	frame, scopeName, err := eventFrame(event, payload)
	if err != nil {
		slog.Warn("Dropping unbridgeable event", "event", event, "error", err)
		return
	}

	h.mu.Lock()
	targets := make([]*wsClient, 0, len(h.clients))
	for cl := range h.clients {
		if cl.wants(scopeName) {
			targets = append(targets, cl)
		}
	}
	h.mu.Unlock()

	for _, cl := range targets {
		if err := cl.send(frame); err != nil {
			h.remove(cl)
			cl.conn.Close(websocket.StatusAbnormalClosure, "write failed")
		}
	}
}

func eventFrame(event string, payload any) ([]byte, string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, "", err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, "", err
	}
	fields["type"] = event
	scopeName, _ := fields["scope"].(string)
	frame, err := json.Marshal(fields)
	if err != nil {
		return nil, "", err
	}
	return frame, scopeName, nil
}

func (h *eventHub) close() {
	for _, unsub := range h.unsubs {
		unsub()
	}
	h.mu.Lock()
	h.closed = true
	clients := make([]*wsClient, 0, len(h.clients))
	for cl := range h.clients {
		clients = append(clients, cl)
	}
	h.clients = make(map[*wsClient]struct{})
	h.mu.Unlock()

	for _, cl := range clients {
		cl.conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
}

// wsAuthOK accepts the connection first so authentication failures can be
// reported with the 4001/4003 close codes.
func (s *Server) wsAuthOK(conn *websocket.Conn, c *gin.Context) bool {
	if s.cfg.AuthDisabled {
		return true
	}
	key := apiKeyFrom(c)
	if key == "" {
		conn.Close(closeMissingKey, "missing API key")
		return false
	}
	if !keyMatches(key, s.cfg.APIKey) {
		conn.Close(closeInvalidKey, "invalid API key")
		return false
	}
	return true
}

// handleEventWS upgrades the connection and streams bridged bus events
// until the client disconnects. The optional scopes query parameter is a
// comma-separated allow-list.
func (s *Server) handleEventWS(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return
	}
	if !s.wsAuthOK(conn, c) {
		return
	}

	cl := &wsClient{conn: conn, scopes: parseScopeFilter(c.Query("scopes"))}
	if !s.hub.add(cl) {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		return
	}
	defer s.hub.remove(cl)

	// Drain client frames so pings and close handshakes are processed.
	ctx := c.Request.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			conn.Close(websocket.StatusNormalClosure, "")
			return
		}
	}
}

func parseScopeFilter(raw string) map[string]bool {
	scopes := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			scopes[part] = true
		}
	}
	return scopes
}
