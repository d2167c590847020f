package knowledge

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Ingester turns raw coaching material into chunked assets. The optional
// embedder attaches vectors as part of ingestion.
type Ingester struct {
	store    Store
	embedder *Embedder // nil disables embedding
	client   *http.Client
}

func NewIngester(store Store, embedder *Embedder) *Ingester {
	return &Ingester{
		store:    store,
		embedder: embedder,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// IngestURL fetches a web resource, chunks it and stores the asset.
func (in *Ingester) IngestURL(url string, name string) (*Asset, error) {
	res, err := in.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch failed: status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("html parse failed: %w", err)
	}

	asset := NewAsset(name, AssetWeb, url)
	return in.finishAsset(asset, doc)
}

// IngestHTML chunks already-fetched HTML, e.g. an uploaded protocol document.
func (in *Ingester) IngestHTML(html string, name string, assetType AssetType) (*Asset, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("html parse failed: %w", err)
	}

	asset := NewAsset(name, assetType, "upload:"+name)
	return in.finishAsset(asset, doc)
}

func (in *Ingester) finishAsset(asset *Asset, doc *goquery.Document) (*Asset, error) {
	for _, chunk := range ChunkDocument(doc) {
		asset.AddChunk(chunk)
	}
	if len(asset.Chunks) == 0 {
		asset.MarkError("no extractable content")
		if err := in.store.CreateAsset(asset); err != nil {
			return nil, err
		}
		return asset, fmt.Errorf("no extractable content in %s", asset.Source)
	}

	if in.embedder != nil {
		if err := in.embedder.EmbedAsset(asset); err != nil {
			// Keyword search still works without vectors.
			fmt.Printf("[KNOWLEDGE] embedding failed for %s: %v\n", asset.ID, err)
		}
	}

	asset.MarkIndexed()
	if err := in.store.CreateAsset(asset); err != nil {
		return nil, err
	}
	fmt.Printf("[KNOWLEDGE] indexed %s (%d chunks)\n", asset.Name, len(asset.Chunks))
	return asset, nil
}

// ChunkDocument walks the document body and emits header and paragraph
// chunks. Each paragraph carries the nearest preceding header as its section.
func ChunkDocument(doc *goquery.Document) []Chunk {
	var chunks []Chunk
	section := ""

	doc.Find("h1, h2, h3, p, li").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}
		switch goquery.NodeName(sel) {
		case "h1", "h2", "h3":
			section = text
			chunks = append(chunks, Chunk{Type: ChunkHeader, Content: text, Section: text})
		default:
			// Skip boilerplate fragments.
			if len(text) < 20 {
				return
			}
			chunks = append(chunks, Chunk{Type: ChunkParagraph, Content: text, Section: section})
		}
	})

	return chunks
}
