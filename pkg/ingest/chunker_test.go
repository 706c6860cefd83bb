package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunker_ShortTextIsOneChunk(t *testing.T) {
	c := &Chunker{Size: 1000, Overlap: 200}
	chunks := c.Split([]Segment{
		{Kind: SegmentText, Text: "A short paragraph.", Page: 1, Section: "Intro"},
	})

	require.Len(t, chunks, 1)
	assert.Equal(t, 0, chunks[0].Index)
	assert.Equal(t, "A short paragraph.", chunks[0].Text)
	assert.Equal(t, 1, chunks[0].Page)
	assert.Equal(t, "Intro", chunks[0].Section)
}

func TestChunker_LongTextSplitsWithOverlap(t *testing.T) {
	c := &Chunker{Size: 100, Overlap: 20}

	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("Sentence number with some words. ")
	}
	chunks := c.Split([]Segment{{Kind: SegmentText, Text: sb.String(), Page: 1}})

	require.Greater(t, len(chunks), 1)
	for i, chunk := range chunks {
		assert.Equal(t, i, chunk.Index, "chunk_index must be document-ordered")
		assert.LessOrEqual(t, len(chunk.Text), 100+20+len("Sentence number with some words. "),
			"chunks should stay near the target size")
	}

	// Consecutive chunks share overlap text
	tail := chunks[0].Text[len(chunks[0].Text)-10:]
	assert.Contains(t, chunks[1].Text, strings.TrimSpace(tail))
}

func TestChunker_NeverSplitsTables(t *testing.T) {
	c := &Chunker{Size: 50, Overlap: 10}

	table := strings.Repeat("cell-a  cell-b  cell-c\n", 20) // far over the target size
	chunks := c.Split([]Segment{
		{Kind: SegmentText, Text: "Before the table.", Page: 1},
		{Kind: SegmentTable, Text: strings.TrimSpace(table), Page: 1, Section: "Data"},
		{Kind: SegmentText, Text: "After the table.", Page: 2},
	})

	var tableChunks []Chunk
	for _, ch := range chunks {
		if ch.IsTable {
			tableChunks = append(tableChunks, ch)
		}
	}
	require.Len(t, tableChunks, 1, "a table must be exactly one chunk regardless of size")
	assert.Equal(t, strings.TrimSpace(table), tableChunks[0].Text)
}

func TestChunker_CaptionIsAtomic(t *testing.T) {
	c := &Chunker{Size: 1000, Overlap: 200}
	chunks := c.Split([]Segment{
		{Kind: SegmentCaption, Text: "Figure 3: Deployment topology", Page: 4},
	})

	require.Len(t, chunks, 1)
	assert.True(t, chunks[0].IsCaption)
}

func TestChunker_IndexOrderSpansSegmentKinds(t *testing.T) {
	c := &Chunker{Size: 1000, Overlap: 200}
	chunks := c.Split([]Segment{
		{Kind: SegmentText, Text: "intro", Page: 1},
		{Kind: SegmentTable, Text: "a  b  c", Page: 1},
		{Kind: SegmentText, Text: "outro", Page: 2},
	})

	require.Len(t, chunks, 3)
	for i, ch := range chunks {
		assert.Equal(t, i, ch.Index)
	}
	assert.False(t, chunks[0].IsTable)
	assert.True(t, chunks[1].IsTable)
	assert.False(t, chunks[2].IsTable)
}

func TestChunker_PreservesSectionAttribution(t *testing.T) {
	c := &Chunker{Size: 1000, Overlap: 200}
	chunks := c.Split([]Segment{
		{Kind: SegmentText, Text: "First part.", Page: 1, Section: "1. Overview"},
		{Kind: SegmentText, Text: "Second part.", Page: 2, Section: "2. Details"},
	})

	require.Len(t, chunks, 1, "short segments pack into one chunk")
	assert.Equal(t, "1. Overview", chunks[0].Section, "attribution follows the chunk start")
}
