// Package llm wraps the OpenAI-compatible model server behind a gateway with
// a global concurrency cap. Chat generation and embedding share the cap so a
// burst of ingestion cannot starve the query path of its model slots.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"golang.org/x/sync/semaphore"

	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/fault"
)

// Message is a single prompt message.
type Message struct {
	Role    string // "system", "user" or "assistant"
	Content string
}

// Usage reports token consumption for one generation.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// StreamChunk is one unit of a streamed generation. Exactly one of Content,
// Usage or Err is set; the channel closes after the final chunk.
type StreamChunk struct {
	Content string
	Usage   *Usage
	Err     error
}

// Gateway is the shared entry point to the model server.
type Gateway struct {
	chat  openai.Client
	embed openai.Client
	cfg   config.LLMConfig
	sem   *semaphore.Weighted
}

// NewGateway builds a gateway from configuration. No connection is made
// until the first request.
func NewGateway(cfg config.LLMConfig) *Gateway {
	return &Gateway{
		chat: openai.NewClient(
			option.WithBaseURL(cfg.BaseURL),
			option.WithAPIKey(cfg.APIKey),
		),
		embed: openai.NewClient(
			option.WithBaseURL(cfg.EmbeddingBaseURL),
			option.WithAPIKey(cfg.APIKey),
		),
		cfg: cfg,
		sem: semaphore.NewWeighted(int64(cfg.Concurrency)),
	}
}

// Ping verifies the chat endpoint is reachable. Used at boot as a soft check.
func (g *Gateway) Ping(ctx context.Context) error {
	_, err := g.chat.Models.List(ctx)
	if err != nil {
		return fmt.Errorf("llm endpoint unreachable: %w", err)
	}
	return nil
}

// acquire takes a model slot, respecting both the global cap and the caller's
// context.
func (g *Gateway) acquire(ctx context.Context) error {
	if err := g.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("failed to acquire llm slot: %w", err)
	}
	return nil
}

func toParams(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			out = append(out, openai.SystemMessage(m.Content))
		case "assistant":
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

// classify maps transport and API errors onto the transient/permanent split.
// 5xx and connection errors are retryable; 4xx means the request itself is
// wrong and retrying cannot help.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		if apierr.StatusCode >= 500 || apierr.StatusCode == 429 {
			return fault.Transient(err)
		}
		return fault.Permanent(err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	// Transport-level failure: connection refused, reset, DNS
	return fault.Transient(err)
}

// Complete runs a non-streaming generation. Used by the extraction pipeline
// and the initial-message reply.
func (g *Gateway) Complete(ctx context.Context, messages []Message) (string, Usage, error) {
	if err := g.acquire(ctx); err != nil {
		return "", Usage{}, err
	}
	defer g.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()

	resp, err := g.chat.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    g.cfg.Model,
		Messages: toParams(messages),
	})
	if err != nil {
		return "", Usage{}, classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", Usage{}, fault.Permanentf("model returned no choices")
	}

	usage := Usage{
		InputTokens:  int(resp.Usage.PromptTokens),
		OutputTokens: int(resp.Usage.CompletionTokens),
	}
	return resp.Choices[0].Message.Content, usage, nil
}

// StreamChat starts a streaming generation and returns a channel of chunks.
// The model slot is held until the stream finishes, errors, or the context is
// cancelled. The channel is closed after the last chunk.
func (g *Gateway) StreamChat(ctx context.Context, messages []Message) (<-chan StreamChunk, error) {
	if err := g.acquire(ctx); err != nil {
		return nil, err
	}

	out := make(chan StreamChunk, 64)

	go func() {
		defer close(out)
		defer g.sem.Release(1)

		streamCtx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
		defer cancel()

		stream := g.chat.Chat.Completions.NewStreaming(streamCtx, openai.ChatCompletionNewParams{
			Model:    g.cfg.Model,
			Messages: toParams(messages),
			StreamOptions: openai.ChatCompletionStreamOptionsParam{
				IncludeUsage: openai.Bool(true),
			},
		})
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
				select {
				case out <- StreamChunk{Content: chunk.Choices[0].Delta.Content}:
				case <-ctx.Done():
					return
				}
			}
			if chunk.Usage.TotalTokens > 0 {
				usage := &Usage{
					InputTokens:  int(chunk.Usage.PromptTokens),
					OutputTokens: int(chunk.Usage.CompletionTokens),
				}
				select {
				case out <- StreamChunk{Usage: usage}:
				case <-ctx.Done():
					return
				}
			}
		}
		if err := stream.Err(); err != nil {
			slog.Warn("LLM stream ended with error", "error", err)
			select {
			case out <- StreamChunk{Err: classify(err)}:
			case <-ctx.Done():
			}
		}
	}()

	return out, nil
}

// Embed returns one vector per input text, in input order.
func (g *Gateway) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	if err := g.acquire(ctx); err != nil {
		return nil, err
	}
	defer g.sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, g.cfg.RequestTimeout)
	defer cancel()

	resp, err := g.embed.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Model: g.cfg.EmbeddingModel,
		Input: openai.EmbeddingNewParamsInputUnion{
			OfArrayOfStrings: texts,
		},
	})
	if err != nil {
		return nil, classify(err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fault.Permanentf("embedding count mismatch: sent %d texts, got %d vectors",
			len(texts), len(resp.Data))
	}

	vectors := make([][]float32, len(texts))
	for _, d := range resp.Data {
		vec := make([]float32, len(d.Embedding))
		for i, v := range d.Embedding {
			vec[i] = float32(v)
		}
		vectors[d.Index] = vec
	}
	for i, v := range vectors {
		if v == nil {
			return nil, fault.Permanentf("embedding response missing index %d", i)
		}
		if len(v) != g.cfg.EmbeddingDim {
			return nil, fault.Permanentf("embedding dimension mismatch: configured %d, got %d",
				g.cfg.EmbeddingDim, len(v))
		}
	}
	return vectors, nil
}
