// Package config loads server configuration from PRIZM_* environment
// variables with defaults suitable for a single-host local deployment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config is the top-level server configuration.
type Config struct {
	Host             string
	Port             int
	DataDir          string
	AuthDisabled     bool
	APIKey           string
	CORSEnabled      bool
	WebSocketEnabled bool
	WebSocketPath    string
	LogLevel         string
	MCPScope         string

	Agent      AgentConfig
	Background BackgroundConfig
	Terminal   TerminalConfig
	Memory     MemoryConfig
	Workflow   WorkflowConfig
}

// AgentConfig tunes the chat runtime.
type AgentConfig struct {
	// FullContextTurns (A) and CachedContextTurns (B) parameterize the
	// sliding context window: once the uncompressed tail exceeds A+B
	// complete rounds, the oldest B rounds are compressed into a summary.
	FullContextTurns   int
	CachedContextTurns int
	DefaultModel       string
	TurnTimeout        time.Duration
}

// BackgroundConfig caps the background session manager.
type BackgroundConfig struct {
	MaxGlobal      int
	MaxDepth       int
	DefaultTimeout time.Duration
}

// TerminalConfig caps the terminal session manager.
type TerminalConfig struct {
	MaxPerSession   int
	MaxGlobal       int
	IdleTimeout     time.Duration
	MaxLifetime     time.Duration
	ReapInterval    time.Duration
	ExecIdleTimeout time.Duration
	RingBufferSize  int
}

// MemoryConfig configures the semantic memory writer and its embedder.
type MemoryConfig struct {
	Enabled           bool
	EmbeddingProvider string
	EmbeddingModel    string
	EmbeddingEndpoint string
	EmbeddingAPIKey   string
	EmbeddingDim      int
	DedupThreshold    float32
}

// WorkflowConfig tunes the workflow runner.
type WorkflowConfig struct {
	RunRetention       time.Duration
	DefaultStepTimeout time.Duration
}

// ValidationError reports a bad environment value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config error on %s: %s", e.Field, e.Message)
}

// Load builds a Config from the environment.
func Load() (*Config, error) {
	home, _ := os.UserHomeDir()
	cfg := &Config{
		Host:             getEnv("PRIZM_HOST", "127.0.0.1"),
		DataDir:          getEnv("PRIZM_DATA_DIR", filepath.Join(home, ".prizm")),
		AuthDisabled:     getBool("PRIZM_AUTH_DISABLED", false),
		APIKey:           os.Getenv("PRIZM_API_KEY"),
		CORSEnabled:      getBool("PRIZM_CORS_ENABLED", false),
		WebSocketEnabled: getBool("PRIZM_WEBSOCKET_ENABLED", true),
		WebSocketPath:    getEnv("PRIZM_WEBSOCKET_PATH", "/ws"),
		LogLevel:         getEnv("PRIZM_LOG_LEVEL", "info"),
		MCPScope:         getEnv("PRIZM_MCP_SCOPE", ""),
		Agent: AgentConfig{
			FullContextTurns:   getInt("PRIZM_FULL_CONTEXT_TURNS", 8),
			CachedContextTurns: getInt("PRIZM_CACHED_CONTEXT_TURNS", 4),
			DefaultModel:       getEnv("PRIZM_DEFAULT_MODEL", ""),
			TurnTimeout:        getDuration("PRIZM_TURN_TIMEOUT", 10*time.Minute),
		},
		Background: BackgroundConfig{
			MaxGlobal:      getInt("PRIZM_BG_MAX_GLOBAL", 5),
			MaxDepth:       getInt("PRIZM_BG_MAX_DEPTH", 2),
			DefaultTimeout: getDuration("PRIZM_BG_TIMEOUT", 10*time.Minute),
		},
		Terminal: TerminalConfig{
			MaxPerSession:   5,
			MaxGlobal:       20,
			IdleTimeout:     30 * time.Minute,
			MaxLifetime:     8 * time.Hour,
			ReapInterval:    60 * time.Second,
			ExecIdleTimeout: 10 * time.Minute,
			RingBufferSize:  100 * 1024,
		},
		Memory: MemoryConfig{
			Enabled:           getBool("PRIZM_MEMORY_ENABLED", true),
			EmbeddingProvider: getEnv("PRIZM_EMBEDDING_PROVIDER", ""),
			EmbeddingModel:    getEnv("PRIZM_EMBEDDING_MODEL", ""),
			EmbeddingEndpoint: getEnv("PRIZM_EMBEDDING_ENDPOINT", ""),
			EmbeddingAPIKey:   os.Getenv("PRIZM_EMBEDDING_API_KEY"),
			EmbeddingDim:      getInt("PRIZM_EMBEDDING_DIM", 256),
			DedupThreshold:    0.25,
		},
		Workflow: WorkflowConfig{
			RunRetention:       getDuration("PRIZM_WORKFLOW_RETENTION", 30*24*time.Hour),
			DefaultStepTimeout: getDuration("PRIZM_WORKFLOW_STEP_TIMEOUT", 5*time.Minute),
		},
	}

	port, err := strconv.Atoi(getEnv("PRIZM_PORT", "8420"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, &ValidationError{Field: "PRIZM_PORT", Message: "must be a valid TCP port"}
	}
	cfg.Port = port

	if cfg.Agent.FullContextTurns < 1 {
		return nil, &ValidationError{Field: "PRIZM_FULL_CONTEXT_TURNS", Message: "must be >= 1"}
	}
	if cfg.Agent.CachedContextTurns < 1 {
		return nil, &ValidationError{Field: "PRIZM_CACHED_CONTEXT_TURNS", Message: "must be >= 1"}
	}
	if cfg.Background.MaxGlobal < 1 {
		return nil, &ValidationError{Field: "PRIZM_BG_MAX_GLOBAL", Message: "must be >= 1"}
	}
	if cfg.Background.MaxDepth < 0 {
		return nil, &ValidationError{Field: "PRIZM_BG_MAX_DEPTH", Message: "must be >= 0"}
	}
	if !cfg.AuthDisabled && cfg.APIKey == "" {
		return nil, &ValidationError{Field: "PRIZM_API_KEY", Message: "required unless PRIZM_AUTH_DISABLED=true"}
	}

	return cfg, nil
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ScopeRoot returns the on-disk root for a scope's workspace state.
func (c *Config) ScopeRoot(scope string) string {
	return filepath.Join(c.DataDir, "scopes", scope)
}

// TerminalLogDir returns the directory for terminal session logs.
func (c *Config) TerminalLogDir() string {
	return filepath.Join(c.DataDir, "terminal-logs")
}

// DatabasePath returns the SQLite database file path.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "prizm.db")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
