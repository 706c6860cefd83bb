// Package retrieval implements the hybrid retriever: vector search over the
// active collection fused with bounded graph expansion, assembled into a
// token-budgeted, priority-ordered context.
package retrieval

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/graphstore"
	"github.com/lorekeep/lorekeep/pkg/vectorstore"
)

// ItemKind tags where a context item came from.
type ItemKind string

const (
	KindVector ItemKind = "vector"
	KindGraph  ItemKind = "graph"
)

// ContextItem is one unit of assembled context.
type ContextItem struct {
	Kind  ItemKind
	Text  string
	Score float64

	// Vector items
	Chunk *vectorstore.ScoredChunk

	// Graph items
	Node *graphstore.ExpandedNode
}

// Source is a citation descriptor surfaced to the client.
type Source struct {
	Kind       string  `json:"kind"`
	DocumentID string  `json:"document_id,omitempty"`
	Filename   string  `json:"filename,omitempty"`
	Page       int     `json:"page,omitempty"`
	ChunkIndex int     `json:"chunk_index,omitempty"`
	EntityName string  `json:"entity_name,omitempty"`
	EntityType string  `json:"entity_type,omitempty"`
	Score      float64 `json:"score"`
	Preview    string  `json:"preview,omitempty"`
}

// Result is the retriever's output.
type Result struct {
	Items    []ContextItem
	Sources  []Source
	Duration time.Duration
}

// Embedder embeds the query text.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// VectorSearcher is the slice of the vector store the retriever needs.
type VectorSearcher interface {
	Search(ctx context.Context, tenantID string, version int, vector []float32, topK int, threshold float64) ([]vectorstore.ScoredChunk, error)
}

// GraphReader is the slice of the graph store the retriever needs.
type GraphReader interface {
	SeedsByChunkIDs(ctx context.Context, tenantID string, version int, chunkIDs []string) ([]graphstore.Node, error)
	SeedsByTerms(ctx context.Context, tenantID string, version int, terms []string) ([]graphstore.Node, error)
	Expand(ctx context.Context, tenantID string, version int, seedNorms []string, maxHops int, minScore float64, maxNodes int) ([]graphstore.ExpandedNode, error)
}

// Retriever runs the hybrid retrieval pipeline.
type Retriever struct {
	embedder Embedder
	vectors  VectorSearcher
	graph    GraphReader
	cfg      config.RetrievalConfig
}

// New builds a retriever.
func New(embedder Embedder, vectors VectorSearcher, graph GraphReader, cfg config.RetrievalConfig) *Retriever {
	return &Retriever{
		embedder: embedder,
		vectors:  vectors,
		graph:    graph,
		cfg:      cfg,
	}
}

// Retrieve runs vector search plus graph expansion against the tenant's
// active version. Graph failures degrade to vector-only results; vector
// failures are fatal for the request.
func (r *Retriever) Retrieve(ctx context.Context, tenantID string, version int, query string, includeGraph bool) (*Result, error) {
	start := time.Now()

	qvecs, err := r.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	vecCtx, cancel := context.WithTimeout(ctx, r.cfg.VectorTimeout)
	hits, err := r.vectors.Search(vecCtx, tenantID, version, qvecs[0], r.cfg.TopK, r.cfg.VectorScoreThreshold)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	var expanded []graphstore.ExpandedNode
	if includeGraph {
		expanded = r.expandGraph(ctx, tenantID, version, query, hits)
	}

	items := assemble(hits, expanded, r.cfg)
	return &Result{
		Items:    items,
		Sources:  sourcesFor(items),
		Duration: time.Since(start),
	}, nil
}

// expandGraph seeds from retrieved chunk ids and query key terms, then walks
// the graph. Key-term seeding runs even when the vector pass came back
// empty. Errors are logged, not fatal: graph context is an enrichment.
func (r *Retriever) expandGraph(ctx context.Context, tenantID string, version int, query string, hits []vectorstore.ScoredChunk) []graphstore.ExpandedNode {
	gctx, cancel := context.WithTimeout(ctx, r.cfg.GraphTimeout)
	defer cancel()

	seedSet := map[string]graphstore.Node{}

	if len(hits) > 0 {
		chunkIDs := make([]string, len(hits))
		for i, h := range hits {
			chunkIDs[i] = h.PointID
		}
		seeds, err := r.graph.SeedsByChunkIDs(gctx, tenantID, version, chunkIDs)
		if err != nil {
			slog.Warn("Graph seeding by chunk ids failed", "tenant_id", tenantID, "error", err)
		}
		for _, s := range seeds {
			seedSet[s.NormName] = s
		}
	}

	if terms := KeyTerms(query); len(terms) > 0 {
		seeds, err := r.graph.SeedsByTerms(gctx, tenantID, version, terms)
		if err != nil {
			slog.Warn("Graph seeding by key terms failed", "tenant_id", tenantID, "error", err)
		}
		for _, s := range seeds {
			seedSet[s.NormName] = s
		}
	}

	if len(seedSet) == 0 {
		return nil
	}

	seedNorms := make([]string, 0, len(seedSet))
	for norm := range seedSet {
		seedNorms = append(seedNorms, norm)
	}

	expanded, err := r.graph.Expand(gctx, tenantID, version, seedNorms,
		r.cfg.MaxHops, r.cfg.EdgeScoreThreshold, r.cfg.MaxGraphNodes)
	if err != nil {
		slog.Warn("Graph expansion failed", "tenant_id", tenantID, "error", err)
	}

	// Seeds themselves are part of the result at hop 0
	result := make([]graphstore.ExpandedNode, 0, len(seedSet)+len(expanded))
	for _, s := range seedSet {
		result = append(result, graphstore.ExpandedNode{Node: s, Hop: 0})
	}
	remaining := r.cfg.MaxGraphNodes - len(result)
	for i := 0; i < len(expanded) && i < remaining; i++ {
		result = append(result, expanded[i])
	}
	return result
}
