// Package chat streams assistant answers over a typed event channel:
// prompt composition with persona and history, hybrid retrieval, LLM
// token streaming with cancellation, and message persistence.
package chat

import "github.com/lorekeep/lorekeep/pkg/retrieval"

// Event type discriminators.
const (
	EventThinking = "thinking_status"
	EventContent  = "content"
	EventSources  = "sources"
	EventDone     = "done"
	EventError    = "error"
)

// Stage labels carried by thinking_status events.
const (
	StageHistory      = "history"
	StageRetrieval    = "retrieval"
	StageContextFound = "context_found"
	StageGenerating   = "generating"
)

// Event is one unit of the answer stream. Type selects which fields are set.
type Event struct {
	Type        string             `json:"type"`
	Stage       string             `json:"stage,omitempty"`
	SourceCount *int               `json:"source_count,omitempty"`
	Content     string             `json:"content,omitempty"`
	Sources     []retrieval.Source `json:"sources,omitempty"`
	MessageID   string             `json:"message_id,omitempty"`
	ErrorKind   string             `json:"error_kind,omitempty"`
	Message     string             `json:"message,omitempty"`
}

func thinkingEvent(stage string) Event {
	return Event{Type: EventThinking, Stage: stage}
}

func contextFoundEvent(sourceCount int) Event {
	return Event{Type: EventThinking, Stage: StageContextFound, SourceCount: &sourceCount}
}

func contentEvent(text string) Event {
	return Event{Type: EventContent, Content: text}
}

func sourcesEvent(sources []retrieval.Source) Event {
	return Event{Type: EventSources, Sources: sources}
}

func doneEvent(messageID string) Event {
	return Event{Type: EventDone, MessageID: messageID}
}

func errorEvent(kind, message string) Event {
	return Event{Type: EventError, ErrorKind: kind, Message: message}
}
