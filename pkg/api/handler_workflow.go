package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hymnly133/prizm/pkg/workflow"
)

// handleRegisterWorkflow accepts a YAML definition body and registers it
// in the scope, replacing any previous version of the same name.
func (s *Server) handleRegisterWorkflow(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil || len(raw) == 0 {
		badRequest(c, "request body must be a YAML workflow definition")
		return
	}
	def, err := workflow.ParseDefinition(raw)
	if err != nil {
		writeError(c, err)
		return
	}
	if err := s.workflows.Register(c.Request.Context(), scopeName, def); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": def.Name, "steps": len(def.Steps)})
}

func (s *Server) handleListWorkflows(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"workflows": s.workflows.List(scopeName)})
}

func (s *Server) handleDeleteWorkflow(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	if err := s.workflows.Delete(c.Request.Context(), scopeName, c.Param("name")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// handleRunWorkflow starts a registered workflow and returns the run in
// whatever state it reached: completed, failed, or paused at an approve
// step with its resume token.
func (s *Server) handleRunWorkflow(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	def, err := s.workflows.Get(scopeName, c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	run, err := s.runner.Run(c.Request.Context(), scopeName, def)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

type resumeRequest struct {
	ResumeToken string `json:"resumeToken" binding:"required"`
	Approved    bool   `json:"approved"`
}

func (s *Server) handleResumeRun(c *gin.Context) {
	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	run, err := s.runner.Resume(c.Request.Context(), req.ResumeToken, req.Approved)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func (s *Server) handleListRuns(c *gin.Context) {
	runs, err := s.runStore.ListRuns(c.Request.Context(), c.Query("scope"), c.Query("status"), 0)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (s *Server) handleGetRun(c *gin.Context) {
	run, err := s.runStore.GetRunByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func (s *Server) handleCancelRun(c *gin.Context) {
	if err := s.runner.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func (s *Server) handleDeleteRun(c *gin.Context) {
	if err := s.runStore.DeleteRun(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
