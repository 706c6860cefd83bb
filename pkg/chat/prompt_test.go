package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lorekeep/lorekeep/pkg/graphstore"
	"github.com/lorekeep/lorekeep/pkg/llm"
	"github.com/lorekeep/lorekeep/pkg/retrieval"
	"github.com/lorekeep/lorekeep/pkg/vectorstore"
)

func TestPersonaFromMap(t *testing.T) {
	p := PersonaFromMap(map[string]any{
		"name":             "Lore",
		"tone":             "friendly",
		"language":         "English",
		"greeting":         "Hi there!",
		"system_prompt":    "Custom prompt.",
		"fallback_message": "No idea, sorry.",
		"unexpected":       42,
	})
	assert.Equal(t, "Lore", p.Name)
	assert.Equal(t, "friendly", p.Tone)
	assert.Equal(t, "Custom prompt.", p.SystemPrompt)
	assert.Equal(t, "No idea, sorry.", p.FallbackMessage)
}

func TestPersonaFromMap_EmptyMap(t *testing.T) {
	p := PersonaFromMap(nil)
	assert.Empty(t, p.Name)
	assert.Equal(t, defaultFallback, p.Fallback())
}

func TestSystemPrompt_DefaultWithTraits(t *testing.T) {
	p := Persona{Name: "Lore", Tone: "formal", Language: "German"}
	sp := p.systemPrompt()
	assert.Contains(t, sp, defaultSystemPrompt)
	assert.Contains(t, sp, "Your name is Lore.")
	assert.Contains(t, sp, "formal tone")
	assert.Contains(t, sp, "Answer in German.")
}

func TestSystemPrompt_OverrideWins(t *testing.T) {
	p := Persona{SystemPrompt: "Only answer about cheese."}
	assert.True(t, strings.HasPrefix(p.systemPrompt(), "Only answer about cheese."))
}

func TestBuildMessages_Order(t *testing.T) {
	items := []retrieval.ContextItem{
		{
			Kind: retrieval.KindGraph,
			Node: &graphstore.ExpandedNode{Node: graphstore.Node{
				Type: graphstore.NodeDefinition, Name: "Quorum",
				Description: "minimum votes for consensus",
			}},
		},
		{
			Kind: retrieval.KindVector,
			Text: "A quorum is reached when...",
			Chunk: &vectorstore.ScoredChunk{Chunk: vectorstore.Chunk{
				Filename: "raft.pdf", Page: 4,
			}},
		},
	}
	history := []llm.Message{
		{Role: "user", Content: "earlier question"},
		{Role: "assistant", Content: "earlier answer"},
	}

	msgs := buildMessages(Persona{Name: "Lore"}, items, history, "What is a quorum?")
	require.Len(t, msgs, 4)

	assert.Equal(t, "system", msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "[Definition] Quorum: minimum votes for consensus")
	assert.Contains(t, msgs[0].Content, "[raft.pdf p.4] A quorum is reached when...")
	// Context order must match the assembled priority order
	assert.Less(t,
		strings.Index(msgs[0].Content, "Quorum: minimum"),
		strings.Index(msgs[0].Content, "raft.pdf"))

	assert.Equal(t, "earlier question", msgs[1].Content)
	assert.Equal(t, "earlier answer", msgs[2].Content)
	assert.Equal(t, "user", msgs[3].Role)
	assert.Equal(t, "What is a quorum?", msgs[3].Content)
}

func TestBuildMessages_NoContextOmitsSection(t *testing.T) {
	msgs := buildMessages(Persona{}, nil, nil, "hello")
	require.Len(t, msgs, 2)
	assert.NotContains(t, msgs[0].Content, "## Context")
}
