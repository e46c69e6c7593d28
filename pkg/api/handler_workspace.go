package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hymnly133/prizm/pkg/scope"
)

// lockGate enforces cooperative locks on workspace writes. A resource held
// by a different session returns the 423 envelope unless ?force=true.
func (s *Server) lockGate(c *gin.Context, scopeName, resourceType, resourceID, sessionID string) bool {
	if c.Query("force") == "true" {
		return true
	}
	holder := s.locks.GetLock(scopeName, resourceType, resourceID)
	if holder != nil && holder.SessionID != sessionID {
		c.JSON(http.StatusLocked, lockedResponse(holder))
		return false
	}
	return true
}

type documentRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	SessionID string   `json:"sessionId"`
}

func (s *Server) handleCreateDocument(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.Title == "" {
		badRequest(c, "title is required")
		return
	}
	doc, err := s.store.CreateDocument(c.Request.Context(), scopeName, req.Title, req.Content, req.SessionID, req.Tags)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

func (s *Server) handleListDocuments(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	docs, err := s.store.ListDocuments(scopeName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

func (s *Server) handleGetDocument(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	doc, err := s.store.GetDocument(scopeName, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) handleUpdateDocument(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	var req documentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	id := c.Param("id")
	if !s.lockGate(c, scopeName, "document", id, req.SessionID) {
		return
	}
	doc, err := s.store.UpdateDocument(c.Request.Context(), scopeName, id, func(d *scope.Document) error {
		if req.Title != "" {
			d.Title = req.Title
		}
		if req.Content != "" {
			d.Content = req.Content
		}
		if req.Tags != nil {
			d.Tags = req.Tags
		}
		return nil
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if !s.lockGate(c, scopeName, "document", id, c.Query("sessionId")) {
		return
	}
	if err := s.store.DeleteDocument(c.Request.Context(), scopeName, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type todoRequest struct {
	Title     string `json:"title"`
	Text      string `json:"text"`
	SessionID string `json:"sessionId"`
}

func (s *Server) handleCreateTodoList(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.Title == "" {
		badRequest(c, "title is required")
		return
	}
	list, err := s.store.CreateTodoList(c.Request.Context(), scopeName, req.Title, req.SessionID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, list)
}

func (s *Server) handleGetTodoList(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	list, err := s.store.GetTodoList(scopeName, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleAddTodoItem(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	if req.Text == "" {
		badRequest(c, "text is required")
		return
	}
	id := c.Param("id")
	if !s.lockGate(c, scopeName, "todo_list", id, req.SessionID) {
		return
	}
	list, err := s.store.AddTodoItem(c.Request.Context(), scopeName, id, req.Text, req.SessionID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleCompleteTodoItem(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	id := c.Param("id")
	sessionID := c.Query("sessionId")
	if !s.lockGate(c, scopeName, "todo_list", id, sessionID) {
		return
	}
	list, err := s.store.CompleteTodoItem(c.Request.Context(), scopeName, id, c.Param("itemId"), sessionID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleDeleteTodoList(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	id := c.Param("id")
	if !s.lockGate(c, scopeName, "todo_list", id, c.Query("sessionId")) {
		return
	}
	if err := s.store.DeleteTodoList(c.Request.Context(), scopeName, id, c.Query("sessionId")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type clipboardRequest struct {
	Label     string `json:"label"`
	Content   string `json:"content"`
	SessionID string `json:"sessionId"`
}

func (s *Server) handleAddClipboardEntry(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	var req clipboardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	entry, err := s.store.AddClipboardEntry(c.Request.Context(), scopeName, req.Label, req.Content, req.SessionID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (s *Server) handleListClipboardEntries(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	entries, err := s.store.ListClipboardEntries(scopeName)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (s *Server) handleDeleteClipboardEntry(c *gin.Context) {
	scopeName, ok := scopeOf(c)
	if !ok {
		return
	}
	if err := s.store.DeleteClipboardEntry(c.Request.Context(), scopeName, c.Param("id"), c.Query("sessionId")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
