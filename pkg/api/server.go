// Package api is the HTTP and WebSocket surface of the workspace server:
// SSE chat streaming, session and workspace CRUD, workflow and background
// control, terminal attachment, and the domain-event bridge.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hymnly133/prizm/pkg/agent"
	"github.com/hymnly133/prizm/pkg/audit"
	"github.com/hymnly133/prizm/pkg/background"
	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/config"
	"github.com/hymnly133/prizm/pkg/database"
	"github.com/hymnly133/prizm/pkg/locks"
	"github.com/hymnly133/prizm/pkg/scheduler"
	"github.com/hymnly133/prizm/pkg/scope"
	"github.com/hymnly133/prizm/pkg/terminal"
	"github.com/hymnly133/prizm/pkg/workflow"
)

// Deps bundles everything the handlers reach into.
type Deps struct {
	Config     *config.Config
	DB         *database.Client
	Bus        *bus.Bus
	Store      *scope.Store
	Runtime    *agent.Runtime
	Background *background.Manager
	Terminals  *terminal.Manager
	Locks      *locks.Manager
	Workflows  *workflow.Registry
	Runner     *workflow.Runner
	RunStore   *workflow.Store
	Scheduler  *scheduler.Scheduler
	Audit      *audit.Log
}

// Server is the HTTP API server.
type Server struct {
	cfg        *config.Config
	db         *database.Client
	bus        *bus.Bus
	store      *scope.Store
	runtime    *agent.Runtime
	background *background.Manager
	terminals  *terminal.Manager
	locks      *locks.Manager
	workflows  *workflow.Registry
	runner     *workflow.Runner
	runStore   *workflow.Store
	scheduler  *scheduler.Scheduler
	audit      *audit.Log
	hub        *eventHub

	httpServer *http.Server
}

// NewServer wires the server and, when WebSocket support is enabled,
// subscribes the event bridge to the bus.
func NewServer(d Deps) *Server {
	s := &Server{
		cfg:        d.Config,
		db:         d.DB,
		bus:        d.Bus,
		store:      d.Store,
		runtime:    d.Runtime,
		background: d.Background,
		terminals:  d.Terminals,
		locks:      d.Locks,
		workflows:  d.Workflows,
		runner:     d.Runner,
		runStore:   d.RunStore,
		scheduler:  d.Scheduler,
		audit:      d.Audit,
	}
	if d.Config.WebSocketEnabled {
		s.hub = newEventHub(d.Bus)
	}
	return s
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	if s.cfg.CORSEnabled {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-API-Key", "Authorization")
		r.Use(cors.New(corsCfg))
	}

	r.GET("/health", s.handleHealth)

	if s.hub != nil {
		r.GET(s.cfg.WebSocketPath, s.handleEventWS)
	}
	r.GET("/ws/terminal", s.handleTerminalWS)

	v1 := r.Group("/api/v1", s.authMiddleware())
	{
		sessions := v1.Group("/agent/sessions")
		sessions.POST("", s.handleCreateSession)
		sessions.GET("", s.handleListSessions)
		sessions.GET("/:id", s.handleGetSession)
		sessions.DELETE("/:id", s.handleDeleteSession)
		sessions.POST("/:id/chat", s.handleChat)
		sessions.POST("/:id/stop", s.handleStop)
		sessions.POST("/:id/interact-response", s.handleInteractResponse)
		sessions.POST("/:id/rollback", s.handleRollback)
		sessions.GET("/:id/locks", s.handleSessionLocks)

		v1.POST("/locks/acquire", s.handleAcquireLock)
		v1.POST("/locks/release", s.handleReleaseLock)

		docs := v1.Group("/documents")
		docs.POST("", s.handleCreateDocument)
		docs.GET("", s.handleListDocuments)
		docs.GET("/:id", s.handleGetDocument)
		docs.PUT("/:id", s.handleUpdateDocument)
		docs.DELETE("/:id", s.handleDeleteDocument)

		todos := v1.Group("/todos")
		todos.POST("", s.handleCreateTodoList)
		todos.GET("/:id", s.handleGetTodoList)
		todos.POST("/:id/items", s.handleAddTodoItem)
		todos.POST("/:id/items/:itemId/complete", s.handleCompleteTodoItem)
		todos.DELETE("/:id", s.handleDeleteTodoList)

		clip := v1.Group("/clipboard")
		clip.POST("", s.handleAddClipboardEntry)
		clip.GET("", s.handleListClipboardEntries)
		clip.DELETE("/:id", s.handleDeleteClipboardEntry)

		wf := v1.Group("/workflows")
		wf.PUT("", s.handleRegisterWorkflow)
		wf.GET("", s.handleListWorkflows)
		wf.DELETE("/:name", s.handleDeleteWorkflow)
		wf.POST("/:name/run", s.handleRunWorkflow)

		runs := v1.Group("/workflow-runs")
		runs.GET("", s.handleListRuns)
		runs.GET("/:id", s.handleGetRun)
		runs.POST("/resume", s.handleResumeRun)
		runs.POST("/:id/cancel", s.handleCancelRun)
		runs.DELETE("/:id", s.handleDeleteRun)

		bg := v1.Group("/background")
		bg.POST("", s.handleTriggerBackground)
		bg.GET("/:id", s.handleBackgroundStatus)
		bg.POST("/:id/cancel", s.handleCancelBackground)

		scheds := v1.Group("/schedules")
		scheds.POST("", s.handleCreateSchedule)
		scheds.GET("", s.handleListSchedules)
		scheds.GET("/:id", s.handleGetSchedule)
		scheds.PUT("/:id", s.handleUpdateSchedule)
		scheds.DELETE("/:id", s.handleDeleteSchedule)

		v1.GET("/audit", s.handleAuditQuery)

		terms := v1.Group("/terminals")
		terms.POST("", s.handleCreateTerminal)
		terms.GET("", s.handleListTerminals)
		terms.DELETE("/:id", s.handleKillTerminal)
	}
	return r
}

// Run serves until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests, bounded by ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hub != nil {
		s.hub.close()
	}
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// scopeOf reads the mandatory scope query parameter.
func scopeOf(c *gin.Context) (string, bool) {
	name := c.Query("scope")
	if name == "" {
		badRequest(c, "scope query parameter is required")
		return "", false
	}
	return name, true
}

func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": dbHealth,
	})
}
