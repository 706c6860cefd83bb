package retrieval

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/pkg/graphstore"
	"github.com/lorekeep/lorekeep/pkg/vectorstore"
)

func node(nodeType, name string, hop int, edgeScore float64) graphstore.ExpandedNode {
	return graphstore.ExpandedNode{
		Node: graphstore.Node{Type: nodeType, Name: name, NormName: name},
		Hop:  hop, EdgeScore: edgeScore,
	}
}

func TestAssemble_BandOrdering(t *testing.T) {
	hits := []vectorstore.ScoredChunk{
		{Chunk: vectorstore.Chunk{ChunkIndex: 0, Text: "chunk"}, PointID: "p0", Score: 0.8},
	}
	nodes := []graphstore.ExpandedNode{
		node(graphstore.NodeProcess, "deploy procedure", 1, 0.8),
		node(graphstore.NodeConcept, "scheduler", 1, 0.9),
		node(graphstore.NodeDefinition, "quorum", 2, 0.7),
	}

	items := assemble(hits, nodes, testCfg())
	require.Len(t, items, 4)
	assert.Equal(t, "quorum", items[0].Node.Name, "Definitions come first")
	assert.Equal(t, KindVector, items[1].Kind, "then chunks")
	assert.Equal(t, "scheduler", items[2].Node.Name, "then Concepts")
	assert.Equal(t, "deploy procedure", items[3].Node.Name, "then Processes")
}

func TestAssemble_ChunkTieBreakByIndex(t *testing.T) {
	hits := []vectorstore.ScoredChunk{
		{Chunk: vectorstore.Chunk{ChunkIndex: 5, Text: "later"}, PointID: "p5", Score: 0.8},
		{Chunk: vectorstore.Chunk{ChunkIndex: 2, Text: "earlier"}, PointID: "p2", Score: 0.8},
	}

	items := assemble(hits, nil, testCfg())
	require.Len(t, items, 2)
	assert.Equal(t, "earlier", items[0].Text, "equal fused score: lower chunk_index wins")
}

func TestAssemble_GraphNodesOrderedByHop(t *testing.T) {
	nodes := []graphstore.ExpandedNode{
		node(graphstore.NodeConcept, "far", 2, 0.95),
		node(graphstore.NodeConcept, "near", 1, 0.75),
	}

	items := assemble(nil, nodes, testCfg())
	require.Len(t, items, 2)
	assert.Equal(t, "near", items[0].Node.Name, "lower hop wins within a band")
}

func TestAssemble_TokenBudgetTruncates(t *testing.T) {
	cfg := testCfg()
	cfg.ContextTokenBudget = 30

	long := strings.Repeat("word ", 40) // ~50 tokens
	hits := []vectorstore.ScoredChunk{
		{Chunk: vectorstore.Chunk{ChunkIndex: 0, Text: long}, PointID: "p0", Score: 0.9},
		{Chunk: vectorstore.Chunk{ChunkIndex: 1, Text: long}, PointID: "p1", Score: 0.8},
	}

	items := assemble(hits, nil, cfg)
	assert.Len(t, items, 1, "the first item always fits; the second exceeds the budget")
}

func TestPreview_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("x", 500)
	p := preview(long)
	assert.Equal(t, previewChars+1, len([]rune(p))) // 200 chars + ellipsis
	assert.True(t, strings.HasSuffix(p, "…"))

	assert.Equal(t, "short", preview("short"))
}
