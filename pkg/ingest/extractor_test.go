package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/pkg/graphstore"
	"github.com/lorekeep/lorekeep/pkg/llm"
)

// fakeCompleter returns canned responses per call, in order.
type fakeCompleter struct {
	responses []string
	err       error
	calls     int
}

func (f *fakeCompleter) Complete(_ context.Context, _ []llm.Message) (string, llm.Usage, error) {
	if f.err != nil {
		return "", llm.Usage{}, f.err
	}
	resp := f.responses[f.calls%len(f.responses)]
	f.calls++
	return resp, llm.Usage{}, nil
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "kubernetes operator", Normalize("  Kubernetes   Operator!  "))
	assert.Equal(t, "tls handshake", Normalize("TLS Handshake."))
	assert.Equal(t, "", Normalize("!!!"))
}

func TestRulePass_Definitions(t *testing.T) {
	chunk := Chunk{
		Index: 0,
		Text:  "A circuit breaker is defined as a component that halts calls to a failing dependency.",
	}
	nodes := rulePass(chunk, "chunk-0")

	require.Len(t, nodes, 1)
	assert.Equal(t, graphstore.NodeDefinition, nodes[0].Type)
	assert.Equal(t, "circuit breaker", nodes[0].NormName[2:]) // "a circuit breaker"
	assert.Equal(t, 0.9, nodes[0].Confidence)
	assert.Equal(t, []string{"chunk-0"}, nodes[0].ChunkIDs)
}

func TestRulePass_NumberedProcedure(t *testing.T) {
	chunk := Chunk{
		Index:   0,
		Section: "3.2 Restarting the cluster",
		Text:    "1. Drain the node carefully\n2. Cordon remaining nodes\n3. Restart the control plane",
	}
	nodes := rulePass(chunk, "chunk-0")

	var process *graphstore.Node
	for i := range nodes {
		if nodes[i].Type == graphstore.NodeProcess {
			process = &nodes[i]
		}
	}
	require.NotNil(t, process, "numbered steps under a section heading form a Process")
	assert.Equal(t, "3.2 Restarting the cluster", process.Name)
}

func TestExtract_LLMPassAndFusion(t *testing.T) {
	completer := &fakeCompleter{responses: []string{`
Here is the graph you asked for:
{"entities": [
   {"name": "Circuit Breaker", "type": "concept", "description": "stops cascading failures"},
   {"name": "Retry Budget", "type": "concept", "description": ""}],
 "relations": [
   {"source": "Circuit Breaker", "target": "Retry Budget", "type": "RELATED_TO", "score": 8, "context": "both guard dependencies"},
   {"source": "Circuit Breaker", "target": "Retry Budget", "type": "DEPENDS_ON", "score": 3, "context": "weak"}]}
`}}
	ex := NewExtractor(completer)

	chunks := []Chunk{{Index: 0, Text: "Circuit Breaker is defined as a component that stops cascading failures."}}
	nodes, edges, err := ex.Extract(context.Background(), chunks, func(i int) string { return "cid-0" })
	require.NoError(t, err)

	// Rule pass found the Definition; LLM pass found two Concepts.
	types := map[string]int{}
	for _, n := range nodes {
		types[n.Type]++
	}
	assert.Equal(t, 1, types[graphstore.NodeDefinition])
	assert.Equal(t, 2, types[graphstore.NodeConcept])

	// The 0.3-scored edge fell below the 0.5 floor; the 0.8 one survived.
	require.Len(t, edges, 1)
	assert.Equal(t, graphstore.EdgeRelatedTo, edges[0].Type)
	assert.Equal(t, 0.8, edges[0].Score)
	assert.Equal(t, "circuit breaker", edges[0].SourceNorm)
}

func TestExtract_SameEntityMergesAcrossChunks(t *testing.T) {
	completer := &fakeCompleter{responses: []string{
		`{"entities": [{"name": "Load Balancer", "type": "concept", "description": "short"}], "relations": []}`,
		`{"entities": [{"name": "load   balancer", "type": "concept", "description": "a much longer description"}], "relations": []}`,
	}}
	ex := NewExtractor(completer)

	chunks := []Chunk{
		{Index: 0, Text: "chunk one"},
		{Index: 1, Text: "chunk two"},
	}
	nodes, _, err := ex.Extract(context.Background(), chunks, func(i int) string {
		return map[int]string{0: "cid-0", 1: "cid-1"}[i]
	})
	require.NoError(t, err)

	require.Len(t, nodes, 1, "same normalized name and type must merge")
	assert.Equal(t, "load balancer", nodes[0].NormName)
	assert.ElementsMatch(t, []string{"cid-0", "cid-1"}, nodes[0].ChunkIDs)
	assert.Equal(t, "a much longer description", nodes[0].Description)
}

func TestExtract_InvalidResponseSkipsChunkNotFatal(t *testing.T) {
	completer := &fakeCompleter{responses: []string{
		`this model did not return JSON at all`,
		`{"entities": [{"name": "Valid Entity", "type": "concept", "description": ""}], "relations": []}`,
	}}
	ex := NewExtractor(completer)

	chunks := []Chunk{
		{Index: 0, Text: "bad chunk"},
		{Index: 1, Text: "good chunk"},
	}
	nodes, _, err := ex.Extract(context.Background(), chunks, func(i int) string { return "cid" })
	require.NoError(t, err, "a schema-invalid response is dropped per chunk, not fatal")
	require.Len(t, nodes, 1)
	assert.Equal(t, "valid entity", nodes[0].NormName)
}

func TestExtract_RejectsOutOfRangeScoresAndBadTypes(t *testing.T) {
	completer := &fakeCompleter{responses: []string{`
{"entities": [
   {"name": "A", "type": "concept", "description": ""},
   {"name": "B", "type": "banana", "description": ""}],
 "relations": [
   {"source": "A", "target": "B", "type": "RELATED_TO", "score": 15, "context": ""},
   {"source": "A", "target": "A", "type": "RELATED_TO", "score": 9, "context": ""},
   {"source": "A", "target": "B", "type": "CAUSES", "score": 9, "context": ""}]}
`}}
	ex := NewExtractor(completer)

	nodes, edges, err := ex.Extract(context.Background(),
		[]Chunk{{Index: 0, Text: "x"}}, func(i int) string { return "cid" })
	require.NoError(t, err)

	require.Len(t, nodes, 1, "unknown entity type is dropped")
	assert.Empty(t, edges, "out-of-range score, self-loop, and unknown relation type are all dropped")
}

func TestExtract_ContextCancellationPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ex := NewExtractor(&fakeCompleter{err: errors.New("canceled upstream")})
	_, _, err := ex.Extract(ctx, []Chunk{{Index: 0, Text: "x"}}, func(i int) string { return "cid" })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSalvageExtraction(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		out, err := salvageExtraction(`{"entities": [], "relations": []}`)
		require.NoError(t, err)
		assert.Empty(t, out.Entities)
	})

	t.Run("fenced JSON", func(t *testing.T) {
		out, err := salvageExtraction("```json\n{\"entities\": [{\"name\": \"X\", \"type\": \"concept\"}], \"relations\": []}\n```")
		require.NoError(t, err)
		require.Len(t, out.Entities, 1)
	})

	t.Run("no JSON", func(t *testing.T) {
		_, err := salvageExtraction("sorry, I cannot help with that")
		assert.Error(t, err)
	})
}
