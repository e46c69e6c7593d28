package llm

import (
	"context"
	"errors"
	"io"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/hymnly133/prizm/pkg/models"
)

// DefaultAnthropicModel is used when a turn does not name a model.
const DefaultAnthropicModel = "claude-sonnet-4-5"

const defaultMaxTokens = 8192

// AnthropicClient streams generations through the Anthropic Messages API.
type AnthropicClient struct {
	client    anthropic.Client
	maxTokens int64
}

// NewAnthropicClient builds the provider. An empty apiKey defers to the
// SDK's ANTHROPIC_API_KEY environment lookup.
func NewAnthropicClient(apiKey string, maxTokens int64) *AnthropicClient {
	var opts []option.RequestOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &AnthropicClient{client: anthropic.NewClient(opts...), maxTokens: maxTokens}
}

// Generate implements Client. The stream maps Anthropic events onto chat
// chunks: text and thinking deltas, tool_use blocks as preparing /
// args-delta / full call, and a terminal usage chunk.
func (c *AnthropicClient) Generate(ctx context.Context, input *GenerateInput) (<-chan models.Chunk, error) {
	params := c.buildParams(input)
	out := make(chan models.Chunk, 16)

	go func() {
		defer close(out)
		stream := c.client.Messages.NewStreaming(ctx, params)

		var usage models.Usage
		toolIDs := make(map[int64]string)
		toolNames := make(map[int64]string)
		toolArgs := make(map[int64]*strings.Builder)

		for stream.Next() {
			event := stream.Current()
			switch event.Type {
			case "message_start":
				usage.InputTokens = int(event.Message.Usage.InputTokens)

			case "content_block_start":
				if event.ContentBlock.Type == "tool_use" {
					toolIDs[event.Index] = event.ContentBlock.ID
					toolNames[event.Index] = event.ContentBlock.Name
					toolArgs[event.Index] = &strings.Builder{}
					send(ctx, out, &models.ToolPreparingChunk{
						ToolID: event.ContentBlock.ID,
						Name:   event.ContentBlock.Name,
					})
				}

			case "content_block_delta":
				switch event.Delta.Type {
				case "text_delta":
					if event.Delta.Text != "" {
						send(ctx, out, &models.TextChunk{Content: event.Delta.Text})
					}
				case "thinking_delta":
					if event.Delta.Thinking != "" {
						send(ctx, out, &models.ReasoningChunk{Content: event.Delta.Thinking})
					}
				case "input_json_delta":
					if buf, ok := toolArgs[event.Index]; ok {
						buf.WriteString(event.Delta.PartialJSON)
						send(ctx, out, &models.ToolArgsDeltaChunk{
							ToolID: toolIDs[event.Index],
							Delta:  event.Delta.PartialJSON,
						})
					}
				}

			case "content_block_stop":
				if id, ok := toolIDs[event.Index]; ok {
					send(ctx, out, &models.ToolCallChunk{
						ToolID:    id,
						Name:      toolNames[event.Index],
						Arguments: toolArgs[event.Index].String(),
						Status:    models.ToolStatusRunning,
					})
					delete(toolIDs, event.Index)
					delete(toolNames, event.Index)
					delete(toolArgs, event.Index)
				}

			case "message_delta":
				if event.Usage.OutputTokens > 0 {
					usage.OutputTokens = int(event.Usage.OutputTokens)
				}
			}
		}

		if err := stream.Err(); err != nil && !errors.Is(err, io.EOF) {
			if ctx.Err() == nil {
				send(ctx, out, &models.ErrorChunk{Message: err.Error(), Retryable: true})
			}
			return
		}
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
		send(ctx, out, &models.UsageChunk{Model: string(params.Model), Usage: usage})
	}()

	return out, nil
}

func (c *AnthropicClient) buildParams(input *GenerateInput) anthropic.MessageNewParams {
	model := input.Model
	if model == "" {
		model = DefaultAnthropicModel
	}

	var systemBlocks []string
	var messages []anthropic.MessageParam
	for _, msg := range input.Messages {
		switch msg.Role {
		case models.RoleSystem:
			if msg.Content != "" {
				systemBlocks = append(systemBlocks, msg.Content)
			}
		case models.RoleUser:
			if msg.Content != "" {
				messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
			}
		case models.RoleAssistant:
			if msg.Content != "" {
				messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
			}
		}
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		Messages:  messages,
		MaxTokens: c.maxTokens,
	}
	if len(systemBlocks) > 0 {
		params.System = []anthropic.TextBlockParam{{Text: strings.Join(systemBlocks, "\n\n")}}
	}
	if len(input.Tools) > 0 {
		tools := make([]anthropic.ToolUnionParam, 0, len(input.Tools))
		for _, tool := range input.Tools {
			var schema anthropic.ToolInputSchemaParam
			if props, ok := toolProperties(tool); ok {
				schema.Properties = props
			}
			tools = append(tools, anthropic.ToolUnionParam{
				OfTool: &anthropic.ToolParam{
					Name:        tool.Name,
					Description: anthropic.String(tool.Description),
					InputSchema: schema,
				},
			})
		}
		params.Tools = tools
	}
	return params
}

// toolProperties extracts the "properties" object of a JSON-Schema tool
// definition, which is all the Messages API schema param carries.
func toolProperties(tool Tool) (any, bool) {
	if tool.InputSchema == nil {
		return nil, false
	}
	props, ok := tool.InputSchema["properties"]
	return props, ok
}

// send delivers a chunk unless ctx is already cancelled.
func send(ctx context.Context, out chan<- models.Chunk, chunk models.Chunk) {
	select {
	case <-ctx.Done():
	case out <- chunk:
	}
}

// Close implements Client. The SDK client holds no persistent resources.
func (c *AnthropicClient) Close() error { return nil }
