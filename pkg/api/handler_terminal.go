package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hymnly133/prizm/pkg/terminal"
)

type createTerminalRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Shell     string `json:"shell"`
	Cols      uint16 `json:"cols"`
	Rows      uint16 `json:"rows"`
}

type terminalInfo struct {
	ID        string    `json:"id"`
	Scope     string    `json:"scope"`
	SessionID string    `json:"sessionId"`
	Shell     string    `json:"shell"`
	CreatedAt time.Time `json:"createdAt"`
	Exited    bool      `json:"exited"`
	ExitCode  int       `json:"exitCode,omitempty"`
}

func terminalInfoOf(t *terminal.Terminal) terminalInfo {
	exited, code := t.Exited()
	return terminalInfo{
		ID:        t.ID,
		Scope:     t.Scope,
		SessionID: t.SessionID,
		Shell:     t.Shell,
		CreatedAt: t.CreatedAt,
		Exited:    exited,
		ExitCode:  code,
	}
}

func (s *Server) handleCreateTerminal(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	var req createTerminalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	t, err := s.terminals.Create(scopeName, req.SessionID, req.Shell, req.Cols, req.Rows)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, terminalInfoOf(t))
}

func (s *Server) handleListTerminals(c *gin.Context) {
	sessionID := c.Query("sessionId")
	if sessionID == "" {
		badRequest(c, "sessionId query parameter is required")
		return
	}
	infos := []terminalInfo{}
	for _, t := range s.terminals.List(sessionID) {
		infos = append(infos, terminalInfoOf(t))
	}
	c.JSON(http.StatusOK, gin.H{"terminals": infos})
}

func (s *Server) handleKillTerminal(c *gin.Context) {
	if err := s.terminals.Kill(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// terminalMessage is one client-to-server frame on /ws/terminal.
type terminalMessage struct {
	Type       string `json:"type"`
	TerminalID string `json:"terminalId"`
	Data       string `json:"data,omitempty"`
	Cols       uint16 `json:"cols,omitempty"`
	Rows       uint16 `json:"rows,omitempty"`
}

// handleTerminalWS multiplexes any number of terminals over one WebSocket.
// The client sends terminal:attach, terminal:input, terminal:resize,
// terminal:detach, and terminal:ping frames; terminal events stream back
// in their wire shape plus terminal:pong replies.
func (s *Server) handleTerminalWS(c *gin.Context) {
	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		return
	}
	if !s.wsAuthOK(conn, c) {
		return
	}

	cl := &wsClient{conn: conn}
	connID := "wsconn-" + uuid.New().String()
	attached := make(map[string]*terminal.Terminal)
	defer func() {
		for _, t := range attached {
			t.Detach(connID)
		}
		conn.Close(websocket.StatusNormalClosure, "")
	}()

	sendEvent := func(ev terminal.Event) {
		data, err := json.Marshal(ev)
		if err != nil {
			return
		}
		cl.send(data)
	}
	sendError := func(terminalID, msg string) {
		sendEvent(terminal.Event{Type: terminal.EventError, TerminalID: terminalID, Message: msg})
	}

	ctx := c.Request.Context()
	for {
		_, raw, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg terminalMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			sendError("", "malformed message")
			continue
		}

		switch msg.Type {
		case "terminal:attach":
			t, err := s.terminals.Get(msg.TerminalID)
			if err != nil {
				sendError(msg.TerminalID, err.Error())
				continue
			}
			attached[t.ID] = t
			t.Attach(connID, sendEvent)

		case "terminal:input":
			t, ok := attached[msg.TerminalID]
			if !ok {
				sendError(msg.TerminalID, "terminal not attached")
				continue
			}
			if err := t.Write(msg.Data); err != nil {
				sendError(msg.TerminalID, err.Error())
			}

		case "terminal:resize":
			t, ok := attached[msg.TerminalID]
			if !ok {
				sendError(msg.TerminalID, "terminal not attached")
				continue
			}
			if err := t.Resize(msg.Cols, msg.Rows); err != nil {
				sendError(msg.TerminalID, err.Error())
			}

		case "terminal:detach":
			if t, ok := attached[msg.TerminalID]; ok {
				t.Detach(connID)
				delete(attached, msg.TerminalID)
			}

		case "terminal:ping":
			if data, err := json.Marshal(gin.H{"type": "terminal:pong"}); err == nil {
				cl.send(data)
			}

		default:
			sendError(msg.TerminalID, "unknown message type "+msg.Type)
		}
	}
}
