package retrieval

import (
	"fmt"
	"sort"

	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/graphstore"
	"github.com/lorekeep/lorekeep/pkg/vectorstore"
)

const (
	vectorWeight = 0.7
	graphWeight  = 0.3
	// previewChars bounds the citation text preview.
	previewChars = 200
)

// assemble orders context items by priority band and truncates to the token
// budget. Bands: Definitions, then chunks by fused score, then Concepts,
// then Processes. Fused score = 0.7·vector + 0.3·best incident edge.
func assemble(hits []vectorstore.ScoredChunk, nodes []graphstore.ExpandedNode, cfg config.RetrievalConfig) []ContextItem {
	var definitions, concepts, processes []ContextItem
	for i := range nodes {
		n := &nodes[i]
		item := ContextItem{
			Kind:  KindGraph,
			Text:  nodeText(n),
			Score: n.EdgeScore,
			Node:  n,
		}
		switch n.Type {
		case graphstore.NodeDefinition:
			definitions = append(definitions, item)
		case graphstore.NodeProcess:
			processes = append(processes, item)
		default:
			concepts = append(concepts, item)
		}
	}

	// Lower hop first, then stronger incident edge
	byHop := func(items []ContextItem) {
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Node.Hop != items[j].Node.Hop {
				return items[i].Node.Hop < items[j].Node.Hop
			}
			return items[i].Score > items[j].Score
		})
	}
	byHop(definitions)
	byHop(concepts)
	byHop(processes)

	chunks := make([]ContextItem, 0, len(hits))
	for i := range hits {
		h := &hits[i]
		fused := vectorWeight*float64(h.Score) + graphWeight*bestIncidentEdge(h.PointID, nodes)
		chunks = append(chunks, ContextItem{
			Kind:  KindVector,
			Text:  h.Text,
			Score: fused,
			Chunk: h,
		})
	}
	sort.SliceStable(chunks, func(i, j int) bool {
		if chunks[i].Score != chunks[j].Score {
			return chunks[i].Score > chunks[j].Score
		}
		return chunks[i].Chunk.ChunkIndex < chunks[j].Chunk.ChunkIndex
	})

	ordered := make([]ContextItem, 0, len(definitions)+len(chunks)+len(concepts)+len(processes))
	ordered = append(ordered, definitions...)
	ordered = append(ordered, chunks...)
	ordered = append(ordered, concepts...)
	ordered = append(ordered, processes...)

	// Token budget truncation: keep whole items until the budget is spent
	budget := cfg.ContextTokenBudget
	var out []ContextItem
	for _, item := range ordered {
		cost := EstimateTokens(item.Text)
		if cost > budget && len(out) > 0 {
			break
		}
		out = append(out, item)
		budget -= cost
		if budget <= 0 {
			break
		}
	}
	return out
}

// bestIncidentEdge returns the strongest edge score among graph nodes whose
// chunk evidence includes the given chunk, 0 if none.
func bestIncidentEdge(pointID string, nodes []graphstore.ExpandedNode) float64 {
	best := 0.0
	for i := range nodes {
		for _, cid := range nodes[i].ChunkIDs {
			if cid == pointID && nodes[i].EdgeScore > best {
				best = nodes[i].EdgeScore
			}
		}
	}
	return best
}

func nodeText(n *graphstore.ExpandedNode) string {
	if n.Description != "" {
		return fmt.Sprintf("%s: %s", n.Name, n.Description)
	}
	return n.Name
}

// sourcesFor builds the citation list surfaced alongside the answer.
func sourcesFor(items []ContextItem) []Source {
	sources := make([]Source, 0, len(items))
	for _, item := range items {
		switch item.Kind {
		case KindVector:
			c := item.Chunk
			sources = append(sources, Source{
				Kind:       string(KindVector),
				DocumentID: c.DocumentID,
				Filename:   c.Filename,
				Page:       c.Page,
				ChunkIndex: c.ChunkIndex,
				Score:      item.Score,
				Preview:    preview(c.Text),
			})
		case KindGraph:
			n := item.Node
			sources = append(sources, Source{
				Kind:       string(KindGraph),
				EntityName: n.Name,
				EntityType: n.Type,
				Score:      item.Score,
				Preview:    preview(n.Description),
			})
		}
	}
	return sources
}

func preview(s string) string {
	runes := []rune(s)
	if len(runes) <= previewChars {
		return s
	}
	return string(runes[:previewChars]) + "…"
}
