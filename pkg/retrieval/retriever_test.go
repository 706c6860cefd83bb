package retrieval

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/graphstore"
	"github.com/lorekeep/lorekeep/pkg/vectorstore"
)

func testCfg() config.RetrievalConfig {
	return config.RetrievalConfig{
		TopK:                 8,
		VectorScoreThreshold: 0.7,
		MaxHops:              2,
		EdgeScoreThreshold:   0.7,
		MaxGraphNodes:        20,
		ContextTokenBudget:   3000,
		VectorTimeout:        5 * time.Second,
		GraphTimeout:         10 * time.Second,
	}
}

type fakeEmbedder struct{ err error }

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{0.1, 0.2, 0.3}
	}
	return out, nil
}

type fakeVectors struct {
	hits []vectorstore.ScoredChunk
	err  error
}

func (f *fakeVectors) Search(_ context.Context, _ string, _ int, _ []float32, _ int, _ float64) ([]vectorstore.ScoredChunk, error) {
	return f.hits, f.err
}

type fakeGraph struct {
	byChunk   []graphstore.Node
	byTerms   []graphstore.Node
	expanded  []graphstore.ExpandedNode
	termCalls [][]string
	seedCalls [][]string
}

func (f *fakeGraph) SeedsByChunkIDs(_ context.Context, _ string, _ int, ids []string) ([]graphstore.Node, error) {
	return f.byChunk, nil
}

func (f *fakeGraph) SeedsByTerms(_ context.Context, _ string, _ int, terms []string) ([]graphstore.Node, error) {
	f.termCalls = append(f.termCalls, terms)
	return f.byTerms, nil
}

func (f *fakeGraph) Expand(_ context.Context, _ string, _ int, seeds []string, _ int, _ float64, _ int) ([]graphstore.ExpandedNode, error) {
	f.seedCalls = append(f.seedCalls, seeds)
	return f.expanded, nil
}

func chunkHit(id string, index int, score float32, text string) vectorstore.ScoredChunk {
	return vectorstore.ScoredChunk{
		Chunk: vectorstore.Chunk{
			DocumentID: "doc-1",
			ChunkIndex: index,
			Text:       text,
			Filename:   "handbook.pdf",
			Page:       1,
		},
		PointID: id,
		Score:   score,
	}
}

func TestRetrieve_VectorOnly(t *testing.T) {
	r := New(&fakeEmbedder{}, &fakeVectors{hits: []vectorstore.ScoredChunk{
		chunkHit("p1", 0, 0.9, "first chunk"),
		chunkHit("p2", 1, 0.8, "second chunk"),
	}}, &fakeGraph{}, testCfg())

	res, err := r.Retrieve(context.Background(), "tenant-1", 1, "plain lowercase query", false)
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, KindVector, res.Items[0].Kind)
	assert.InDelta(t, 0.7*0.9, res.Items[0].Score, 1e-9, "no incident edges: fused score is 0.7·vector")
}

func TestRetrieve_EmbedFailureIsFatal(t *testing.T) {
	r := New(&fakeEmbedder{err: errors.New("model down")},
		&fakeVectors{}, &fakeGraph{}, testCfg())

	_, err := r.Retrieve(context.Background(), "tenant-1", 1, "q", true)
	assert.Error(t, err)
}

func TestRetrieve_KeywordSeedingRunsOnEmptyVectorResult(t *testing.T) {
	graph := &fakeGraph{
		byTerms: []graphstore.Node{{
			Type: graphstore.NodeDefinition, Name: "Circuit Breaker",
			NormName: "circuit breaker", Description: "halts failing calls",
		}},
	}
	r := New(&fakeEmbedder{}, &fakeVectors{hits: nil}, graph, testCfg())

	res, err := r.Retrieve(context.Background(), "tenant-1", 1, "Tell me about the Circuit Breaker", true)
	require.NoError(t, err)

	require.Len(t, graph.termCalls, 1, "key-term seeding must run despite the empty vector result")
	assert.Contains(t, graph.termCalls[0], "circuit breaker")
	require.Len(t, res.Items, 1)
	assert.Equal(t, KindGraph, res.Items[0].Kind)
}

func TestRetrieve_SingleEntityNameReachesDefinition(t *testing.T) {
	graph := &fakeGraph{
		byTerms: []graphstore.Node{{
			Type: graphstore.NodeDefinition, Name: "GraphRAG",
			NormName: "graphrag", Description: "retrieval fusing vectors with a knowledge graph",
		}},
	}
	r := New(&fakeEmbedder{}, &fakeVectors{hits: nil}, graph, testCfg())

	res, err := r.Retrieve(context.Background(), "tenant-1", 1, "What is GraphRAG?", true)
	require.NoError(t, err)

	require.Len(t, graph.termCalls, 1)
	assert.Contains(t, graph.termCalls[0], "graphrag")
	require.Len(t, res.Items, 1)
	assert.Equal(t, KindGraph, res.Items[0].Kind)
	assert.Contains(t, res.Items[0].Text, "knowledge graph")
}

func TestRetrieve_FusedScoreUsesIncidentEdges(t *testing.T) {
	graph := &fakeGraph{
		byChunk: []graphstore.Node{{
			Type: graphstore.NodeConcept, Name: "Retry", NormName: "retry",
			ChunkIDs: []string{"p2"},
		}},
		expanded: []graphstore.ExpandedNode{{
			Node: graphstore.Node{
				Type: graphstore.NodeConcept, Name: "Backoff", NormName: "backoff",
				ChunkIDs: []string{"p2"},
			},
			Hop: 1, EdgeScore: 0.9,
		}},
	}
	r := New(&fakeEmbedder{}, &fakeVectors{hits: []vectorstore.ScoredChunk{
		chunkHit("p1", 0, 0.9, "vector-strong chunk"),
		chunkHit("p2", 1, 0.75, "graph-connected chunk"),
	}}, graph, testCfg())

	res, err := r.Retrieve(context.Background(), "tenant-1", 1, "q", true)
	require.NoError(t, err)

	var chunkItems []ContextItem
	for _, item := range res.Items {
		if item.Kind == KindVector {
			chunkItems = append(chunkItems, item)
		}
	}
	require.Len(t, chunkItems, 2)

	// p2: 0.7·0.75 + 0.3·0.9 = 0.795 beats p1: 0.7·0.9 = 0.63
	assert.Equal(t, "graph-connected chunk", chunkItems[0].Text)
	assert.InDelta(t, 0.795, chunkItems[0].Score, 1e-9)
	assert.InDelta(t, 0.63, chunkItems[1].Score, 1e-9)
}

func TestRetrieve_SourcesCarryCitations(t *testing.T) {
	r := New(&fakeEmbedder{}, &fakeVectors{hits: []vectorstore.ScoredChunk{
		chunkHit("p1", 3, 0.85, "cited text"),
	}}, &fakeGraph{}, testCfg())

	res, err := r.Retrieve(context.Background(), "tenant-1", 2, "q", false)
	require.NoError(t, err)
	require.Len(t, res.Sources, 1)
	assert.Equal(t, "vector", res.Sources[0].Kind)
	assert.Equal(t, "doc-1", res.Sources[0].DocumentID)
	assert.Equal(t, "handbook.pdf", res.Sources[0].Filename)
	assert.Equal(t, 3, res.Sources[0].ChunkIndex)
	assert.Equal(t, "cited text", res.Sources[0].Preview)
}
