package chat

import (
	"fmt"
	"strings"

	"github.com/lorekeep/lorekeep/pkg/llm"
	"github.com/lorekeep/lorekeep/pkg/retrieval"
)

const defaultSystemPrompt = `You are a helpful assistant that answers questions using the provided context.
Base your answers on the context below. When the context does not cover the question, say so instead of guessing.
Cite facts from the context rather than inventing new ones.`

const defaultFallback = "I couldn't find anything in my knowledge base about that. Could you rephrase the question or ask about something else?"

// Persona is the per-tenant presentation layer stored as JSON on the chatbot.
type Persona struct {
	Name            string
	Tone            string
	Language        string
	Greeting        string
	SystemPrompt    string
	FallbackMessage string
}

// PersonaFromMap decodes the chatbot's persona JSON. Missing or mistyped
// keys fall back to zero values.
func PersonaFromMap(m map[string]any) Persona {
	str := func(key string) string {
		v, _ := m[key].(string)
		return v
	}
	return Persona{
		Name:            str("name"),
		Tone:            str("tone"),
		Language:        str("language"),
		Greeting:        str("greeting"),
		SystemPrompt:    str("system_prompt"),
		FallbackMessage: str("fallback_message"),
	}
}

// Fallback returns the answer used when retrieval finds no context.
func (p Persona) Fallback() string {
	if p.FallbackMessage != "" {
		return p.FallbackMessage
	}
	return defaultFallback
}

// systemPrompt composes the system message: an explicit override wins,
// otherwise the default prompt is decorated with persona traits.
func (p Persona) systemPrompt() string {
	base := p.SystemPrompt
	if base == "" {
		base = defaultSystemPrompt
	}
	var b strings.Builder
	b.WriteString(base)
	if p.Name != "" {
		fmt.Fprintf(&b, "\nYour name is %s.", p.Name)
	}
	if p.Tone != "" {
		fmt.Fprintf(&b, "\nAnswer in a %s tone.", p.Tone)
	}
	if p.Language != "" {
		fmt.Fprintf(&b, "\nAnswer in %s.", p.Language)
	}
	return b.String()
}

// buildMessages assembles the full prompt. Precedence is persona system
// prompt, then retrieval context in its priority order, then conversation
// history, then the current user message.
func buildMessages(p Persona, items []retrieval.ContextItem, history []llm.Message, userText string) []llm.Message {
	msgs := make([]llm.Message, 0, len(history)+2)

	system := p.systemPrompt()
	if len(items) > 0 {
		system += "\n\n## Context\n" + renderContext(items)
	}
	msgs = append(msgs, llm.Message{Role: "system", Content: system})
	msgs = append(msgs, history...)
	msgs = append(msgs, llm.Message{Role: "user", Content: userText})
	return msgs
}

// renderContext formats assembled context items, keeping their order.
func renderContext(items []retrieval.ContextItem) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch {
		case item.Kind == retrieval.KindGraph && item.Node != nil:
			fmt.Fprintf(&b, "[%s] %s", item.Node.Node.Type, item.Node.Node.Name)
			if item.Node.Node.Description != "" {
				b.WriteString(": " + item.Node.Node.Description)
			}
		case item.Kind == retrieval.KindVector && item.Chunk != nil:
			fmt.Fprintf(&b, "[%s p.%d] %s", item.Chunk.Chunk.Filename, item.Chunk.Chunk.Page, item.Text)
		default:
			b.WriteString(item.Text)
		}
	}
	return b.String()
}
