// Package llm defines the interface between the chat runtime and LLM
// providers. Concrete providers live outside the core; the runtime only
// depends on the streaming Generate contract.
package llm

import (
	"context"

	"github.com/hymnly133/prizm/pkg/models"
)

// Tool describes one callable tool in provider-neutral form.
type Tool struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	InputSchema map[string]any `json:"inputSchema,omitempty"`
}

// PromptMessage is one message of the assembled prompt.
type PromptMessage struct {
	Role    models.Role `json:"role"`
	Content string      `json:"content"`
}

// GenerateInput is the full request for one generation.
type GenerateInput struct {
	SessionID string
	Model     string
	Messages  []PromptMessage
	Tools     []Tool
	Thinking  bool
}

// Client streams one generation as a channel of chunks. The channel is
// closed at stream end; provider failures arrive as a terminal ErrorChunk
// before close. Cancelling ctx stops the stream.
type Client interface {
	Generate(ctx context.Context, input *GenerateInput) (<-chan models.Chunk, error)
	Close() error
}
