package knowledge

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
)

// MemoryStore implements Store with in-memory maps. Used for development and
// tests; production indexing lives in the hosted database.
type MemoryStore struct {
	mu     sync.RWMutex
	assets map[string]*Asset
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{assets: make(map[string]*Asset)}
}

func (s *MemoryStore) CreateAsset(asset *Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.assets[asset.ID]; exists {
		return fmt.Errorf("asset '%s' already exists", asset.ID)
	}
	s.assets[asset.ID] = asset
	return nil
}

func (s *MemoryStore) GetAsset(id string) (*Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	asset, ok := s.assets[id]
	if !ok {
		return nil, fmt.Errorf("asset '%s' not found", id)
	}
	return asset, nil
}

func (s *MemoryStore) UpdateAsset(asset *Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.assets[asset.ID]; !exists {
		return fmt.Errorf("asset '%s' not found", asset.ID)
	}
	s.assets[asset.ID] = asset
	return nil
}

func (s *MemoryStore) DeleteAsset(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assets[id]; !ok {
		return fmt.Errorf("asset '%s' not found", id)
	}
	delete(s.assets, id)
	return nil
}

func (s *MemoryStore) ListAssets(assetType AssetType) ([]*Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var results []*Asset
	for _, asset := range s.assets {
		if assetType == "" || asset.Type == assetType {
			results = append(results, asset)
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].UploadedAt.Before(results[j].UploadedAt)
	})
	return results, nil
}

// SearchChunks does case-insensitive substring matching over chunk content.
// The keyword fallback when no embedder is configured.
func (s *MemoryStore) SearchChunks(query string, limit int) ([]Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	var results []Chunk
	for _, asset := range s.assets {
		for _, chunk := range asset.Chunks {
			if strings.Contains(strings.ToLower(chunk.Content), needle) {
				results = append(results, chunk)
				if limit > 0 && len(results) >= limit {
					return results, nil
				}
			}
		}
	}
	return results, nil
}

// SearchChunksByEmbedding ranks all embedded chunks by cosine similarity.
// Brute force is fine at coaching-library scale.
func (s *MemoryStore) SearchChunksByEmbedding(embedding []float64, limit int) ([]Chunk, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	type scored struct {
		chunk Chunk
		score float64
	}
	var candidates []scored
	for _, asset := range s.assets {
		for _, chunk := range asset.Chunks {
			if len(chunk.Embedding) == 0 {
				continue
			}
			candidates = append(candidates, scored{chunk, cosineSimilarity(embedding, chunk.Embedding)})
		}
	}

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	results := make([]Chunk, len(candidates))
	for i, c := range candidates {
		results[i] = c.chunk
	}
	return results, nil
}

func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
