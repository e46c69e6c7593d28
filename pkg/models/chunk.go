package models

// ChunkType identifies the kind of streaming chunk a chat turn emits.
// These values double as the SSE frame "type" field.
type ChunkType string

// Chunk types.
const (
	ChunkTypeText            ChunkType = "text"
	ChunkTypeReasoning       ChunkType = "reasoning"
	ChunkTypeToolPreparing   ChunkType = "tool_call_preparing"
	ChunkTypeToolArgsDelta   ChunkType = "tool_call_args_delta"
	ChunkTypeToolCall        ChunkType = "tool_call"
	ChunkTypeToolResultChunk ChunkType = "tool_result_chunk"
	ChunkTypeToolProgress    ChunkType = "tool_progress"
	ChunkTypeInteractRequest ChunkType = "interact_request"
	ChunkTypeMemoryInjected  ChunkType = "memory_injected"
	ChunkTypeCommandResult   ChunkType = "command_result"
	ChunkTypeUsage           ChunkType = "usage"
	ChunkTypeError           ChunkType = "error"
	ChunkTypeDone            ChunkType = "done"
)

// Chunk is the interface for all streaming chunk variants.
type Chunk interface {
	ChunkType() ChunkType
}

// TextChunk is a delta of assistant text.
type TextChunk struct {
	Content string `json:"content"`
}

// ReasoningChunk is a delta of model reasoning text.
type ReasoningChunk struct {
	Content string `json:"content"`
}

// ToolPreparingChunk signals that the model started emitting a tool call.
type ToolPreparingChunk struct {
	ToolID string `json:"id"`
	Name   string `json:"name"`
}

// ToolArgsDeltaChunk carries a partial arguments fragment for a tool call.
type ToolArgsDeltaChunk struct {
	ToolID string `json:"id"`
	Delta  string `json:"delta"`
}

// ToolCallChunk is a status-bearing tool part update (running, completed,
// error, cancelled) merged by id into the assistant message.
type ToolCallChunk struct {
	ToolID    string     `json:"id"`
	Name      string     `json:"name"`
	Arguments string     `json:"arguments,omitempty"`
	Result    string     `json:"result,omitempty"`
	Status    ToolStatus `json:"status"`
	IsError   bool       `json:"isError,omitempty"`
}

// ToolResultChunk streams incremental tool output before completion.
type ToolResultChunk struct {
	ToolID string `json:"id"`
	Delta  string `json:"delta"`
}

// ToolProgressChunk reports coarse tool progress for long-running tools.
type ToolProgressChunk struct {
	ToolID  string `json:"id"`
	Message string `json:"message"`
}

// InteractRequestChunk asks the client to approve or answer a tool-initiated
// question. The turn blocks until a matching interact response arrives or the
// turn is cancelled.
type InteractRequestChunk struct {
	RequestID string         `json:"requestId"`
	ToolID    string         `json:"toolId,omitempty"`
	Prompt    string         `json:"prompt"`
	Options   map[string]any `json:"options,omitempty"`
}

// MemoryInjectedChunk reports the memory ids injected into the prompt.
type MemoryInjectedChunk struct {
	MemoryIDs []string `json:"memoryIds"`
}

// CommandResultChunk carries the output of a slash command that bypassed the
// LLM turn.
type CommandResultChunk struct {
	Command string `json:"command"`
	Text    string `json:"text"`
}

// UsageChunk is the terminal chunk of a successful turn.
type UsageChunk struct {
	Model      string      `json:"model,omitempty"`
	Usage      Usage       `json:"usage"`
	ToolCalls  int         `json:"toolCalls"`
	MessageID  string      `json:"messageId,omitempty"`
	Stopped    bool        `json:"stopped,omitempty"`
	MemoryRefs *MemoryRefs `json:"memoryRefs,omitempty"`
	Done       bool        `json:"done"`
}

// ErrorChunk is the terminal chunk of a failed turn.
type ErrorChunk struct {
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

func (c *TextChunk) ChunkType() ChunkType            { return ChunkTypeText }
func (c *ReasoningChunk) ChunkType() ChunkType       { return ChunkTypeReasoning }
func (c *ToolPreparingChunk) ChunkType() ChunkType   { return ChunkTypeToolPreparing }
func (c *ToolArgsDeltaChunk) ChunkType() ChunkType   { return ChunkTypeToolArgsDelta }
func (c *ToolCallChunk) ChunkType() ChunkType        { return ChunkTypeToolCall }
func (c *ToolResultChunk) ChunkType() ChunkType      { return ChunkTypeToolResultChunk }
func (c *ToolProgressChunk) ChunkType() ChunkType    { return ChunkTypeToolProgress }
func (c *InteractRequestChunk) ChunkType() ChunkType { return ChunkTypeInteractRequest }
func (c *MemoryInjectedChunk) ChunkType() ChunkType  { return ChunkTypeMemoryInjected }
func (c *CommandResultChunk) ChunkType() ChunkType   { return ChunkTypeCommandResult }
func (c *UsageChunk) ChunkType() ChunkType           { return ChunkTypeUsage }
func (c *ErrorChunk) ChunkType() ChunkType           { return ChunkTypeError }
