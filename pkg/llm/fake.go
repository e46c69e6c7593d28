package llm

import (
	"context"
	"sync"

	"github.com/hymnly133/prizm/pkg/models"
)

// ScriptedClient replays pre-programmed chunk sequences, one script per
// Generate call in order. Used throughout the test suites in place of a
// real provider.
type ScriptedClient struct {
	mu      sync.Mutex
	scripts [][]models.Chunk
	calls   []*GenerateInput
}

// NewScriptedClient builds a client that replays the given scripts.
func NewScriptedClient(scripts ...[]models.Chunk) *ScriptedClient {
	return &ScriptedClient{scripts: scripts}
}

// Enqueue appends another scripted response.
func (c *ScriptedClient) Enqueue(chunks ...models.Chunk) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scripts = append(c.scripts, chunks)
}

// Calls returns the inputs Generate has seen, in order.
func (c *ScriptedClient) Calls() []*GenerateInput {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*GenerateInput(nil), c.calls...)
}

// Generate replays the next script. An exhausted client streams a single
// empty text chunk so callers still observe a well-formed turn.
func (c *ScriptedClient) Generate(ctx context.Context, input *GenerateInput) (<-chan models.Chunk, error) {
	c.mu.Lock()
	c.calls = append(c.calls, input)
	var script []models.Chunk
	if len(c.scripts) > 0 {
		script = c.scripts[0]
		c.scripts = c.scripts[1:]
	}
	c.mu.Unlock()

	out := make(chan models.Chunk, len(script)+1)
	go func() {
		defer close(out)
		for _, chunk := range script {
			select {
			case <-ctx.Done():
				return
			case out <- chunk:
			}
		}
	}()
	return out, nil
}

// Close implements Client.
func (c *ScriptedClient) Close() error { return nil }

// BlockingClient never emits a chunk until released; it exercises
// cancellation paths.
type BlockingClient struct {
	Started chan struct{}
	Release chan struct{}
	once    sync.Once
}

// NewBlockingClient builds a client that blocks inside Generate's stream.
func NewBlockingClient() *BlockingClient {
	return &BlockingClient{
		Started: make(chan struct{}, 1),
		Release: make(chan struct{}),
	}
}

// Generate emits nothing until Release is closed or ctx is cancelled.
func (c *BlockingClient) Generate(ctx context.Context, input *GenerateInput) (<-chan models.Chunk, error) {
	out := make(chan models.Chunk)
	go func() {
		defer close(out)
		select {
		case c.Started <- struct{}{}:
		default:
		}
		select {
		case <-ctx.Done():
		case <-c.Release:
			out <- &models.TextChunk{Content: "released"}
		}
	}()
	return out, nil
}

// Close implements Client.
func (c *BlockingClient) Close() error {
	c.once.Do(func() { close(c.Release) })
	return nil
}
