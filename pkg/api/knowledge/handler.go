// Package knowledge exposes ingestion and search over the coaching library.
package knowledge

import (
	"encoding/json"
	"fmt"
	"net/http"

	"grouphome_coaching/pkg/core/knowledge"
)

// Handler wraps the ingester and its backing store. Embedder may be nil; the
// search endpoint falls back to keyword matching.
type Handler struct {
	Store    knowledge.Store
	Ingester *knowledge.Ingester
	Embedder *knowledge.Embedder
}

func NewHandler(store knowledge.Store, ingester *knowledge.Ingester, embedder *knowledge.Embedder) *Handler {
	return &Handler{Store: store, Ingester: ingester, Embedder: embedder}
}

func allowCORS(w http.ResponseWriter, r *http.Request, methods string) bool {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", methods+", OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	if r.Method == "OPTIONS" {
		w.WriteHeader(http.StatusOK)
		return true
	}
	return false
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// IngestRequest is the POST /api/knowledge/ingest body. Either URL or HTML
// must be set.
type IngestRequest struct {
	Name string              `json:"name"`
	URL  string              `json:"url,omitempty"`
	HTML string              `json:"html,omitempty"`
	Type knowledge.AssetType `json:"type,omitempty"`
}

// HandleIngest indexes a URL or uploaded HTML document into the library.
func (h *Handler) HandleIngest(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r, "POST") {
		return
	}

	var req IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request: %v", err), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	var (
		asset *knowledge.Asset
		err   error
	)
	switch {
	case req.URL != "":
		asset, err = h.Ingester.IngestURL(req.URL, req.Name)
	case req.HTML != "":
		assetType := req.Type
		if assetType == "" {
			assetType = knowledge.AssetProtocol
		}
		asset, err = h.Ingester.IngestHTML(req.HTML, req.Name, assetType)
	default:
		http.Error(w, "url or html is required", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("ingestion failed: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, asset)
}

// HandleAssets lists indexed assets, optionally filtered by ?type=.
func (h *Handler) HandleAssets(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r, "GET") {
		return
	}

	assets, err := h.Store.ListAssets(knowledge.AssetType(r.URL.Query().Get("type")))
	if err != nil {
		http.Error(w, fmt.Sprintf("failed to list assets: %v", err), http.StatusInternalServerError)
		return
	}
	if assets == nil {
		assets = []*knowledge.Asset{}
	}
	writeJSON(w, assets)
}

// HandleSearch answers ?q= queries. With an embedder configured it does
// similarity search; otherwise it falls back to keyword matching.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if allowCORS(w, r, "GET") {
		return
	}

	query := r.URL.Query().Get("q")
	if query == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}

	const limit = 10
	var (
		chunks []knowledge.Chunk
		err    error
	)
	if h.Embedder != nil {
		embedding, embedErr := h.Embedder.EmbedQuery(r.Context(), query)
		if embedErr != nil {
			fmt.Printf("[KNOWLEDGE] query embedding failed, falling back to keywords: %v\n", embedErr)
		} else {
			chunks, err = h.Store.SearchChunksByEmbedding(embedding, limit)
		}
	}
	if chunks == nil && err == nil {
		chunks, err = h.Store.SearchChunks(query, limit)
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("search failed: %v", err), http.StatusInternalServerError)
		return
	}
	if chunks == nil {
		chunks = []knowledge.Chunk{}
	}
	writeJSON(w, chunks)
}
