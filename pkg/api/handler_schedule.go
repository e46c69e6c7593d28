package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hymnly133/prizm/pkg/audit"
	"github.com/hymnly133/prizm/pkg/scheduler"
)

type scheduleRequest struct {
	Title    string     `json:"title"`
	Prompt   string     `json:"prompt"`
	RemindAt *time.Time `json:"remindAt"`
	CronSpec string     `json:"cronSpec"`
	Enabled  *bool      `json:"enabled"`
}

func (req *scheduleRequest) apply(sched *scheduler.Schedule) {
	sched.Title = req.Title
	sched.Prompt = req.Prompt
	sched.RemindAt = req.RemindAt
	sched.CronSpec = req.CronSpec
	if req.Enabled != nil {
		sched.Enabled = *req.Enabled
	}
}

func (s *Server) handleCreateSchedule(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	sched := &scheduler.Schedule{Scope: scopeName, Enabled: true}
	req.apply(sched)
	if err := s.scheduler.Create(c.Request.Context(), sched); err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, sched)
}

func (s *Server) handleListSchedules(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	schedules, err := s.scheduler.List(c.Request.Context(), scopeName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": schedules})
}

func (s *Server) handleGetSchedule(c *gin.Context) {
	sched, err := s.scheduler.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sched)
}

func (s *Server) handleUpdateSchedule(c *gin.Context) {
	sched, err := s.scheduler.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	req.apply(sched)
	if err := s.scheduler.Update(c.Request.Context(), sched); err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, sched)
}

func (s *Server) handleDeleteSchedule(c *gin.Context) {
	if err := s.scheduler.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleAuditQuery(c *gin.Context) {
	entries, err := s.audit.Recent(c.Request.Context(), auditQueryFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func auditQueryFrom(c *gin.Context) audit.Query {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	return audit.Query{
		Scope:     c.Query("scope"),
		SessionID: c.Query("sessionId"),
		ToolName:  c.Query("tool"),
		Limit:     limit,
	}
}
