package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hymnly133/prizm/pkg/agent"
	"github.com/hymnly133/prizm/pkg/background"
	"github.com/hymnly133/prizm/pkg/locks"
	"github.com/hymnly133/prizm/pkg/scope"
	"github.com/hymnly133/prizm/pkg/workflow"
)

// lockBody is the holder descriptor inside a 423 response.
type lockBody struct {
	SessionID  string `json:"sessionId"`
	AcquiredAt string `json:"acquiredAt"`
	Reason     string `json:"reason,omitempty"`
	ExpiresAt  string `json:"expiresAt"`
}

func lockedResponse(holder *locks.Lock) gin.H {
	return gin.H{
		"error": "resource is locked by another session",
		"code":  "RESOURCE_LOCKED",
		"lock": lockBody{
			SessionID:  holder.SessionID,
			AcquiredAt: holder.AcquiredAt.UTC().Format(time.RFC3339),
			Reason:     holder.Reason,
			ExpiresAt:  holder.ExpiresAt().UTC().Format(time.RFC3339),
		},
	}
}

// writeError maps domain errors onto the HTTP taxonomy: validation 400,
// not-found 404, turn conflicts 409, lock collisions 423, concurrency
// caps 429, shutdown 503, everything else 500.
func writeError(c *gin.Context, err error) {
	var parseErr *workflow.ParseError
	if errors.As(err, &parseErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": parseErr.Error()})
		return
	}
	if errors.Is(err, scope.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, agent.ErrTurnInFlight) || errors.Is(err, workflow.ErrRunNotActive) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	var lockedErr *locks.ErrLocked
	if errors.As(err, &lockedErr) {
		c.JSON(http.StatusLocked, lockedResponse(lockedErr.Holder))
		return
	}
	var limitErr *background.ConcurrencyLimitError
	if errors.As(err, &limitErr) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": limitErr.Error()})
		return
	}
	if errors.Is(err, background.ErrShutdown) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	slog.Error("Unhandled API error", "error", err, "path", c.Request.URL.Path)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
