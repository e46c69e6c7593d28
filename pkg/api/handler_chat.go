package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hymnly133/prizm/pkg/agent"
	"github.com/hymnly133/prizm/pkg/models"
)

// heartbeatInterval is the SSE keep-alive comment cadence.
const heartbeatInterval = 3 * time.Second

type chatRequest struct {
	Content             string   `json:"content" binding:"required"`
	Model               string   `json:"model"`
	FileRefs            []string `json:"fileRefs"`
	MCPEnabled          bool     `json:"mcpEnabled"`
	IncludeScopeContext bool     `json:"includeScopeContext"`
	FullContextTurns    int      `json:"fullContextTurns"`
	CachedContextTurns  int      `json:"cachedContextTurns"`
}

// handleChat runs one turn and streams its chunks as SSE frames. Each
// frame is a JSON object whose "type" field is the chunk type; the stream
// ends with a "done" frame carrying the turn totals.
func (s *Server) handleChat(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	opts := agent.ChatOptions{
		Model:               req.Model,
		GrantedPaths:        req.FileRefs,
		IncludeScopeContext: req.IncludeScopeContext,
		FullContextTurns:    req.FullContextTurns,
		CachedContextTurns:  req.CachedContextTurns,
	}
	ch, err := s.runtime.Chat(c.Request.Context(), scopeName, c.Param("id"), req.Content, opts)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Writer.Flush()

	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	var final *models.UsageChunk
	for {
		select {
		case chunk, open := <-ch:
			if !open {
				s.writeFrame(c, doneFrame(final))
				return
			}
			if u, ok := chunk.(*models.UsageChunk); ok {
				final = u
			}
			s.writeFrame(c, chunkFrame(chunk))

		case <-ticker.C:
			fmt.Fprint(c.Writer, ": heartbeat\n\n")
			c.Writer.Flush()

		case <-c.Request.Context().Done():
			// client went away; the turn keeps running to completion
			return
		}
	}
}

func (s *Server) writeFrame(c *gin.Context, frame map[string]any) {
	data, err := json.Marshal(frame)
	if err != nil {
		return
	}
	fmt.Fprintf(c.Writer, "data: %s\n\n", data)
	c.Writer.Flush()
}

// chunkFrame flattens a chunk into its SSE frame representation.
func chunkFrame(chunk models.Chunk) map[string]any {
	frame := map[string]any{}
	if raw, err := json.Marshal(chunk); err == nil {
		_ = json.Unmarshal(raw, &frame)
	}
	frame["type"] = string(chunk.ChunkType())
	return frame
}

// doneFrame closes the stream. A nil usage chunk means the turn ended in
// an error frame; done is still sent so clients always see the terminator.
func doneFrame(final *models.UsageChunk) map[string]any {
	frame := map[string]any{"type": string(models.ChunkTypeDone)}
	if final != nil {
		frame["model"] = final.Model
		frame["usage"] = final.Usage
		frame["messageId"] = final.MessageID
		if final.Stopped {
			frame["stopped"] = true
		}
		if final.MemoryRefs != nil {
			frame["memoryRefs"] = final.MemoryRefs
		}
	}
	return frame
}

func (s *Server) handleStop(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	stopped := s.runtime.Stop(scopeName, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"stopped": stopped})
}

type interactResponseRequest struct {
	RequestID string         `json:"requestId" binding:"required"`
	Approved  bool           `json:"approved"`
	Data      map[string]any `json:"data"`
}

func (s *Server) handleInteractResponse(c *gin.Context) {
	var req interactResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	resolved := s.runtime.ResolveInteraction(req.RequestID, req.Approved, req.Data)
	if !resolved {
		c.JSON(http.StatusNotFound, gin.H{"error": "no pending interaction with that requestId"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resolved": true})
}

type rollbackRequest struct {
	CheckpointID string `json:"checkpointId" binding:"required"`
}

func (s *Server) handleRollback(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	var req rollbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if err := s.runtime.RollbackToCheckpoint(c.Request.Context(), scopeName, c.Param("id"), req.CheckpointID); err != nil {
		writeError(c, err)
		return
	}
	sess, err := s.store.GetSession(scopeName, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}
