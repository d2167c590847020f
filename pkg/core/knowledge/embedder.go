package knowledge

import (
	"context"
	"fmt"
	"os"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const embeddingModel = "text-embedding-004"

// Embedder attaches Gemini embeddings to chunks for similarity search.
type Embedder struct {
	apiKey string
}

// NewEmbedder reads GEMINI_API_KEY; returns nil when no key is configured so
// callers can treat embedding as optional.
func NewEmbedder() *Embedder {
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		return nil
	}
	return &Embedder{apiKey: key}
}

// EmbedAsset embeds every chunk of an asset in place.
func (e *Embedder) EmbedAsset(asset *Asset) error {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(e.apiKey))
	if err != nil {
		return fmt.Errorf("embedding client init failed: %w", err)
	}
	defer client.Close()

	model := client.EmbeddingModel(embeddingModel)
	for i := range asset.Chunks {
		res, err := model.EmbedContent(ctx, genai.Text(asset.Chunks[i].Content))
		if err != nil {
			return fmt.Errorf("embed chunk %d failed: %w", i, err)
		}
		asset.Chunks[i].Embedding = toFloat64(res.Embedding.Values)
	}
	return nil
}

// EmbedQuery embeds a search query with the same model as the chunks.
func (e *Embedder) EmbedQuery(ctx context.Context, query string) ([]float64, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(e.apiKey))
	if err != nil {
		return nil, fmt.Errorf("embedding client init failed: %w", err)
	}
	defer client.Close()

	res, err := client.EmbeddingModel(embeddingModel).EmbedContent(ctx, genai.Text(query))
	if err != nil {
		return nil, fmt.Errorf("embed query failed: %w", err)
	}
	return toFloat64(res.Embedding.Values), nil
}

func toFloat64(values []float32) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
