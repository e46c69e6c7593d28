package memory

import (
	"context"
	"hash/fnv"
	"math"

	"github.com/philippgille/chromem-go"
)

// NewOpenAICompatEmbedder builds an embedding function against any
// OpenAI-compatible embeddings endpoint.
func NewOpenAICompatEmbedder(endpoint, apiKey, model string) chromem.EmbeddingFunc {
	return chromem.NewEmbeddingFuncOpenAICompat(endpoint, apiKey, model, nil)
}

// NewDeterministicEmbedder returns a local embedding function with no
// external dependency: token hashes bucketed into a fixed-dimension vector,
// L2-normalized. Identical texts embed identically, which is all the dedup
// tests and offline deployments need.
func NewDeterministicEmbedder(dim int) chromem.EmbeddingFunc {
	if dim <= 0 {
		dim = 256
	}
	return func(ctx context.Context, text string) ([]float32, error) {
		vec := make([]float32, dim)
		start := 0
		flush := func(end int) {
			if end <= start {
				return
			}
			h := fnv.New32a()
			_, _ = h.Write([]byte(text[start:end]))
			vec[int(h.Sum32())%dim] += 1
		}
		for i, r := range text {
			if r == ' ' || r == '\n' || r == '\t' {
				flush(i)
				start = i + 1
			}
		}
		flush(len(text))

		var norm float64
		for _, v := range vec {
			norm += float64(v) * float64(v)
		}
		if norm == 0 {
			vec[0] = 1
			return vec, nil
		}
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
		return vec, nil
	}
}
