package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hymnly133/prizm/pkg/scope"
)

type createSessionRequest struct {
	Title               string   `json:"title"`
	GrantedPaths        []string `json:"grantedPaths"`
	AllowedTools        []string `json:"allowedTools"`
	AllowedMCPServerIDs []string `json:"allowedMcpServerIds"`
}

func (s *Server) handleCreateSession(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	sess, err := s.store.CreateSession(c.Request.Context(), scopeName, scope.CreateSessionInput{
		Title:               req.Title,
		GrantedPaths:        req.GrantedPaths,
		AllowedTools:        req.AllowedTools,
		AllowedMCPServerIDs: req.AllowedMCPServerIDs,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

func (s *Server) handleListSessions(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": s.store.ListSessions(scopeName)})
}

func (s *Server) handleGetSession(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	sess, err := s.store.GetSession(scopeName, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

func (s *Server) handleDeleteSession(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	if err := s.store.DeleteSession(c.Request.Context(), scopeName, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleSessionLocks(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	held := s.locks.ListSessionLocks(scopeName, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"locks": held})
}

type lockRequest struct {
	Scope        string `json:"scope" binding:"required"`
	ResourceType string `json:"resourceType" binding:"required"`
	ResourceID   string `json:"resourceId" binding:"required"`
	SessionID    string `json:"sessionId" binding:"required"`
	Reason       string `json:"reason"`
	TTLMs        int64  `json:"ttlMs"`
}

func (s *Server) handleAcquireLock(c *gin.Context) {
	var req lockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	ttl := time.Duration(req.TTLMs) * time.Millisecond
	acquire := s.locks.Acquire
	if c.Query("force") == "true" {
		acquire = s.locks.ForceAcquire
	}
	lock, err := acquire(c.Request.Context(), req.Scope, req.ResourceType, req.ResourceID, req.SessionID, req.Reason, ttl)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, lock)
}

func (s *Server) handleReleaseLock(c *gin.Context) {
	var req lockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	s.locks.Release(c.Request.Context(), req.Scope, req.ResourceType, req.ResourceID, req.SessionID)
	c.JSON(http.StatusOK, gin.H{"released": true})
}
