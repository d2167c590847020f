// Package knowledge ingests coaching material (protocol documents, web
// resources, lesson content) into chunked, embeddable assets that back the
// platform's retrieval features.
package knowledge

import (
	"time"

	"github.com/google/uuid"
)

// AssetType categorizes a knowledge asset.
type AssetType string

const (
	AssetProtocol AssetType = "PROTOCOL" // coaching protocol documents
	AssetWeb      AssetType = "WEB"      // ingested web pages
	AssetLesson   AssetType = "LESSON"   // course lesson content
)

// AssetStatus tracks processing state.
type AssetStatus string

const (
	StatusPending AssetStatus = "PENDING"
	StatusIndexed AssetStatus = "INDEXED"
	StatusError   AssetStatus = "ERROR"
)

// Asset is one ingested document.
type Asset struct {
	ID     string      `json:"id"`
	Type   AssetType   `json:"type"`
	Name   string      `json:"name"`
	Source string      `json:"source"` // URL or upload path
	Status AssetStatus `json:"status"`

	GroupID string `json:"group_id,omitempty"` // optional coaching-group scope

	Chunks []Chunk `json:"chunks,omitempty"`

	UploadedAt  time.Time  `json:"uploaded_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`

	Error string `json:"error,omitempty"`
}

// ChunkType identifies the content kind of a chunk.
type ChunkType string

const (
	ChunkParagraph ChunkType = "PARAGRAPH"
	ChunkHeader    ChunkType = "HEADER"
)

// Chunk is a semantic unit within an asset, the retrieval granule.
type Chunk struct {
	ID      string    `json:"id"`
	AssetID string    `json:"asset_id"`
	Type    ChunkType `json:"type"`

	Content string `json:"content"`
	Section string `json:"section"` // nearest preceding header

	// Embedding is populated by the embedder; excluded from API payloads.
	Embedding []float64 `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// Store is the persistence boundary for assets and chunks. The hosted
// database with a vector index is the production target; MemoryStore covers
// development and tests.
type Store interface {
	CreateAsset(asset *Asset) error
	GetAsset(id string) (*Asset, error)
	UpdateAsset(asset *Asset) error
	DeleteAsset(id string) error
	ListAssets(assetType AssetType) ([]*Asset, error)

	SearchChunks(query string, limit int) ([]Chunk, error)
	SearchChunksByEmbedding(embedding []float64, limit int) ([]Chunk, error)
}

// NewAsset creates a pending asset.
func NewAsset(name string, assetType AssetType, source string) *Asset {
	return &Asset{
		ID:         uuid.NewString(),
		Type:       assetType,
		Name:       name,
		Source:     source,
		Status:     StatusPending,
		UploadedAt: time.Now().UTC(),
	}
}

// MarkIndexed records successful processing.
func (a *Asset) MarkIndexed() {
	now := time.Now().UTC()
	a.Status = StatusIndexed
	a.ProcessedAt = &now
}

// MarkError records a processing failure.
func (a *Asset) MarkError(msg string) {
	a.Status = StatusError
	a.Error = msg
}

// AddChunk appends a chunk, stamping ownership and creation time.
func (a *Asset) AddChunk(chunk Chunk) {
	chunk.ID = uuid.NewString()
	chunk.AssetID = a.ID
	chunk.CreatedAt = time.Now().UTC()
	a.Chunks = append(a.Chunks, chunk)
}
