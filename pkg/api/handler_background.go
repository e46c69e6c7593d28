package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hymnly133/prizm/pkg/background"
	"github.com/hymnly133/prizm/pkg/models"
)

type triggerRequest struct {
	Scope                string                       `json:"scope" binding:"required"`
	Prompt               string                       `json:"prompt" binding:"required"`
	Label                string                       `json:"label"`
	Model                string                       `json:"model"`
	TimeoutMs            int64                        `json:"timeoutMs"`
	ParentSessionID      string                       `json:"parentSessionId"`
	MemoryOverride       *models.MemoryPolicyOverride `json:"memoryOverride"`
	AllowedTools         []string                     `json:"allowedTools"`
	SystemInstructions   string                       `json:"systemInstructions"`
	Context              map[string]any               `json:"context"`
	ExpectedOutputFormat string                       `json:"expectedOutputFormat"`
	Wait                 bool                         `json:"wait"`
}

// handleTriggerBackground starts a background session. With wait=true the
// request blocks until the session finishes and returns its result.
func (s *Server) handleTriggerBackground(c *gin.Context) {
	var req triggerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	spec := background.TriggerSpec{
		Scope:                req.Scope,
		ParentSessionID:      req.ParentSessionID,
		Trigger:              models.TriggerAPI,
		Prompt:               req.Prompt,
		Label:                req.Label,
		Model:                req.Model,
		TimeoutMs:            req.TimeoutMs,
		MemoryOverride:       req.MemoryOverride,
		AllowedTools:         req.AllowedTools,
		SystemInstructions:   req.SystemInstructions,
		Context:              req.Context,
		ExpectedOutputFormat: req.ExpectedOutputFormat,
	}
	if req.Wait {
		sessionID, result, err := s.background.TriggerAndWait(c.Request.Context(), spec)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sessionId": sessionID, "result": result})
		return
	}
	sessionID, err := s.background.Trigger(c.Request.Context(), spec)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"sessionId": sessionID})
}

// handleBackgroundStatus reports one background session's lifecycle state.
func (s *Server) handleBackgroundStatus(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	sess, err := s.store.GetSession(scopeName, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionId":  sess.ID,
		"bgStatus":   sess.BgStatus,
		"bgResult":   sess.BgResult,
		"bgMeta":     sess.BgMeta,
		"startedAt":  sess.StartedAt,
		"finishedAt": sess.FinishedAt,
		"running":    s.background.IsRunning(sess.ID),
	})
}

func (s *Server) handleCancelBackground(c *gin.Context) {
	cancelled := s.background.Cancel(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
}
