package knowledge

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const protocolHTML = `
<html><body>
<h1>Week 4 Protocol: Occupancy Ramp</h1>
<p>During the first ninety days, focus on referral relationships with local discharge planners.</p>
<h2>Daily Actions</h2>
<p>Call two placement coordinators every morning before opening email.</p>
<ul><li>Track every referral source in the intake log with full contact details.</li></ul>
<p>no</p>
</body></html>`

func TestChunkDocument(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(protocolHTML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	chunks := ChunkDocument(doc)

	// 2 headers + 3 long-enough text blocks; the "no" fragment is dropped.
	if len(chunks) != 5 {
		t.Fatalf("expected 5 chunks, got %d", len(chunks))
	}
	if chunks[0].Type != ChunkHeader || chunks[0].Content != "Week 4 Protocol: Occupancy Ramp" {
		t.Errorf("first chunk should be the h1, got %+v", chunks[0])
	}
	// Paragraphs inherit the nearest preceding header as their section.
	if chunks[1].Section != "Week 4 Protocol: Occupancy Ramp" {
		t.Errorf("paragraph section wrong: %q", chunks[1].Section)
	}
	if chunks[3].Section != "Daily Actions" {
		t.Errorf("post-h2 section wrong: %q", chunks[3].Section)
	}
}

func TestIngestHTML(t *testing.T) {
	store := NewMemoryStore()
	ingester := NewIngester(store, nil)

	asset, err := ingester.IngestHTML(protocolHTML, "week4-protocol", AssetProtocol)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if asset.Status != StatusIndexed {
		t.Errorf("expected INDEXED, got %s", asset.Status)
	}
	if asset.ProcessedAt == nil {
		t.Error("processed timestamp missing")
	}

	stored, err := store.GetAsset(asset.ID)
	if err != nil {
		t.Fatalf("stored asset not found: %v", err)
	}
	if len(stored.Chunks) != 5 {
		t.Errorf("expected 5 stored chunks, got %d", len(stored.Chunks))
	}
	for _, c := range stored.Chunks {
		if c.AssetID != asset.ID || c.ID == "" {
			t.Errorf("chunk ownership not stamped: %+v", c)
		}
	}
}

func TestIngestHTML_EmptyDocument(t *testing.T) {
	store := NewMemoryStore()
	ingester := NewIngester(store, nil)

	asset, err := ingester.IngestHTML("<html><body></body></html>", "empty", AssetWeb)
	if err == nil {
		t.Fatal("expected error for empty document")
	}
	if asset.Status != StatusError {
		t.Errorf("expected ERROR status, got %s", asset.Status)
	}
}

func TestMemoryStore_SearchChunks(t *testing.T) {
	store := NewMemoryStore()
	ingester := NewIngester(store, nil)
	if _, err := ingester.IngestHTML(protocolHTML, "week4", AssetProtocol); err != nil {
		t.Fatalf("ingest: %v", err)
	}

	results, err := store.SearchChunks("discharge planners", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(results))
	}
	if !strings.Contains(results[0].Content, "referral relationships") {
		t.Errorf("wrong chunk returned: %q", results[0].Content)
	}
}

func TestMemoryStore_SearchChunksByEmbedding(t *testing.T) {
	store := NewMemoryStore()
	asset := NewAsset("manual", AssetLesson, "upload:manual")
	asset.AddChunk(Chunk{Type: ChunkParagraph, Content: "occupancy ramp tactics"})
	asset.AddChunk(Chunk{Type: ChunkParagraph, Content: "mindset journaling"})
	asset.Chunks[0].Embedding = []float64{1, 0, 0}
	asset.Chunks[1].Embedding = []float64{0, 1, 0}
	if err := store.CreateAsset(asset); err != nil {
		t.Fatalf("create: %v", err)
	}

	results, err := store.SearchChunksByEmbedding([]float64{0.9, 0.1, 0}, 1)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 || results[0].Content != "occupancy ramp tactics" {
		t.Errorf("nearest chunk wrong: %+v", results)
	}
}

func TestMemoryStore_AssetLifecycle(t *testing.T) {
	store := NewMemoryStore()
	asset := NewAsset("doc", AssetProtocol, "upload:doc")

	if err := store.CreateAsset(asset); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.CreateAsset(asset); err == nil {
		t.Error("duplicate create must fail")
	}

	asset.MarkIndexed()
	if err := store.UpdateAsset(asset); err != nil {
		t.Fatalf("update: %v", err)
	}

	listed, err := store.ListAssets(AssetProtocol)
	if err != nil || len(listed) != 1 {
		t.Fatalf("list: %v (%d)", err, len(listed))
	}

	if err := store.DeleteAsset(asset.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetAsset(asset.ID); err == nil {
		t.Error("deleted asset still retrievable")
	}
}
