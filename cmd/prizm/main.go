// Prizm workspace server: agent sessions with streaming turns, shared
// workspace primitives, background sub-sessions, workflows, schedules,
// and PTY terminals behind one HTTP/WebSocket API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/philippgille/chromem-go"
	"golang.org/x/sync/errgroup"

	"github.com/hymnly133/prizm/pkg/agent"
	"github.com/hymnly133/prizm/pkg/api"
	"github.com/hymnly133/prizm/pkg/audit"
	"github.com/hymnly133/prizm/pkg/background"
	"github.com/hymnly133/prizm/pkg/bus"
	"github.com/hymnly133/prizm/pkg/checkpoint"
	"github.com/hymnly133/prizm/pkg/config"
	"github.com/hymnly133/prizm/pkg/database"
	"github.com/hymnly133/prizm/pkg/llm"
	"github.com/hymnly133/prizm/pkg/locks"
	"github.com/hymnly133/prizm/pkg/memory"
	"github.com/hymnly133/prizm/pkg/scheduler"
	"github.com/hymnly133/prizm/pkg/scope"
	"github.com/hymnly133/prizm/pkg/terminal"
	"github.com/hymnly133/prizm/pkg/workflow"
)

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))
	slog.Info("Starting prizm", "addr", cfg.Addr(), "dataDir", cfg.DataDir)

	ctx := context.Background()

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		slog.Error("Failed to create data directory", "dir", cfg.DataDir, "error", err)
		os.Exit(1)
	}
	db, err := database.NewClient(ctx, cfg.DatabasePath())
	if err != nil {
		slog.Error("Failed to open database", "path", cfg.DatabasePath(), "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database", "error", err)
		}
	}()

	b := bus.New()
	store := scope.NewStore(filepath.Join(cfg.DataDir, "scopes"), b)

	lockManager := locks.NewManager(b)
	lockManager.StartReaper(30 * time.Second)

	llmClient := llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"), 0)

	var memWriter *memory.Writer
	if cfg.Memory.Enabled {
		embed := memory.NewDeterministicEmbedder(cfg.Memory.EmbeddingDim)
		if cfg.Memory.EmbeddingEndpoint != "" {
			embed = memory.NewOpenAICompatEmbedder(
				cfg.Memory.EmbeddingEndpoint,
				cfg.Memory.EmbeddingAPIKey,
				cfg.Memory.EmbeddingModel,
			)
		}
		memWriter = memory.NewWriter(db, chromem.NewDB(), embed, nil, cfg.Memory.DedupThreshold)
		slog.Info("Semantic memory enabled", "provider", cfg.Memory.EmbeddingProvider)
	}

	runtime := agent.NewRuntime(cfg.Agent, store, b, llmClient, checkpoint.NewStore(), memWriter, lockManager)
	defer func() {
		if err := runtime.Close(); err != nil {
			slog.Error("Error closing runtime", "error", err)
		}
	}()

	bgManager := background.NewManager(cfg.Background, store, runtime, b)
	runtime.SetTaskSpawner(bgManager)

	termManager := terminal.NewManager(cfg.Terminal, cfg.TerminalLogDir(), store)
	runtime.SetExecer(termManager)

	auditLog := audit.NewLog(db, b)

	registry := workflow.NewRegistry(b)
	runStore := workflow.NewStore(db)
	runner := workflow.NewRunner(cfg.Workflow, runStore, registry, b,
		workflow.NewBackgroundStepExecutor(bgManager), nil)

	sched := scheduler.New(scheduler.NewStore(db), bgManager, b, 0)
	if err := sched.Start(ctx); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}

	server := api.NewServer(api.Deps{
		Config:     cfg,
		DB:         db,
		Bus:        b,
		Store:      store,
		Runtime:    runtime,
		Background: bgManager,
		Terminals:  termManager,
		Locks:      lockManager,
		Workflows:  registry,
		Runner:     runner,
		RunStore:   runStore,
		Scheduler:  sched,
		Audit:      auditLog,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Run)
	slog.Info("Prizm started", "addr", cfg.Addr())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case <-gctx.Done():
		slog.Error("Server error triggered shutdown")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	httpCtx, httpCancel := context.WithTimeout(shutdownCtx, 5*time.Second)
	if err := server.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}
	httpCancel()

	if err := bgManager.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Background manager shutdown incomplete", "error", err)
	}
	termManager.Shutdown()
	if err := sched.Shutdown(shutdownCtx); err != nil {
		slog.Warn("Scheduler shutdown incomplete", "error", err)
	}
	lockManager.Stop()
	b.ClearAll()

	if err := g.Wait(); err != nil {
		slog.Error("Server exited with error", "error", err)
	}
	slog.Info("Shutdown complete")
}
