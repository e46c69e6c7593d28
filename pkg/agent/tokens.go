package agent

import (
	"github.com/pkoukk/tiktoken-go"

	"github.com/hymnly133/prizm/pkg/llm"
	"github.com/hymnly133/prizm/pkg/models"
)

// TokenCounter estimates token usage when the provider reports none.
type TokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTokenCounter loads the cl100k_base encoding; on failure it falls
// back to a bytes/4 heuristic.
func NewTokenCounter() *TokenCounter {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return &TokenCounter{}
	}
	return &TokenCounter{enc: enc}
}

// Count returns the token count of one text.
func (c *TokenCounter) Count(text string) int {
	if c.enc == nil {
		return (len(text) + 3) / 4
	}
	return len(c.enc.Encode(text, nil, nil))
}

// Estimate computes usage for a prompt and the produced message.
func (c *TokenCounter) Estimate(prompt []llm.PromptMessage, msg *models.AgentMessage) models.Usage {
	in := 0
	for _, m := range prompt {
		in += c.Count(m.Content)
	}
	out := c.Count(msg.Text()) + c.Count(msg.Reasoning)
	return models.Usage{
		InputTokens:  in,
		OutputTokens: out,
		TotalTokens:  in + out,
	}
}
