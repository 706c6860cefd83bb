package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/chatsession"
	"github.com/lorekeep/lorekeep/ent/dailystat"
	entmsg "github.com/lorekeep/lorekeep/ent/message"
	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/fault"
	"github.com/lorekeep/lorekeep/pkg/llm"
	"github.com/lorekeep/lorekeep/pkg/retrieval"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
	ErrEmptyMessage    = errors.New("message is empty")
	ErrMessageTooLong  = errors.New("message exceeds the length limit")
)

// Retriever produces context for a query against a tenant's active version.
type Retriever interface {
	Retrieve(ctx context.Context, tenantID string, version int, query string, includeGraph bool) (*retrieval.Result, error)
}

// Generator streams a completion for the composed prompt.
type Generator interface {
	StreamChat(ctx context.Context, messages []llm.Message) (<-chan llm.StreamChunk, error)
}

// CancelSignal is the stop-request side of the bus.
type CancelSignal interface {
	CancelRequested(ctx context.Context, sessionID string) (bool, error)
	ClearCancel(ctx context.Context, sessionID string)
}

// Streamer runs one chat turn end to end: persistence, retrieval, prompt
// composition, token streaming and metric accounting.
type Streamer struct {
	db        *ent.Client
	retriever Retriever
	generator Generator
	cancels   CancelSignal
	cfg       config.ChatConfig
	logger    *slog.Logger
}

// NewStreamer creates a Streamer.
func NewStreamer(db *ent.Client, retriever Retriever, generator Generator, cancels CancelSignal, cfg config.ChatConfig) *Streamer {
	return &Streamer{
		db:        db,
		retriever: retriever,
		generator: generator,
		cancels:   cancels,
		cfg:       cfg,
		logger:    slog.Default().With("component", "chat.streamer"),
	}
}

// Stream validates the session, persists the user message, then launches
// the answer pipeline. Events arrive on the returned channel, which closes
// when the turn is over. Errors returned here happened before the user
// message was persisted; later failures surface as error events instead.
func (s *Streamer) Stream(ctx context.Context, sessionID, userText string) (<-chan Event, error) {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return nil, ErrEmptyMessage
	}
	if s.cfg.MaxMessageChars > 0 && len(userText) > s.cfg.MaxMessageChars {
		return nil, ErrMessageTooLong
	}

	sess, err := s.db.ChatSession.Query().
		Where(chatsession.ID(sessionID)).
		WithChatbot().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if time.Now().After(sess.ExpiresAt) {
		return nil, ErrSessionExpired
	}
	bot := sess.Edges.Chatbot
	if bot == nil {
		return nil, fmt.Errorf("session %s has no chatbot", sessionID)
	}

	firstMessage := sess.MessageCount == 0
	userMsgID, err := s.persistUserMessage(ctx, sess, userText, firstMessage)
	if err != nil {
		return nil, err
	}

	events := make(chan Event, 16)
	go s.run(ctx, sess, bot, userText, userMsgID, events)
	return events, nil
}

// persistUserMessage stores the user turn and increments the session and
// daily counters in the same transaction.
func (s *Streamer) persistUserMessage(ctx context.Context, sess *ent.ChatSession, text string, firstMessage bool) (string, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to open transaction: %w", err)
	}

	msgID := uuid.New().String()
	_, err = tx.Message.Create().
		SetID(msgID).
		SetSessionID(sess.ID).
		SetRole(entmsg.RoleUser).
		SetContent(text).
		Save(ctx)
	if err == nil {
		err = tx.ChatSession.UpdateOneID(sess.ID).AddMessageCount(1).Exec(ctx)
	}
	if err == nil {
		err = bumpDailyStats(ctx, tx, sess.ChatbotID, statDelta{
			messages: 1,
			sessions: boolToInt(firstMessage),
		})
	}
	if err != nil {
		_ = tx.Rollback()
		return "", fmt.Errorf("failed to persist user message: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit user message: %w", err)
	}
	return msgID, nil
}

// run is the post-persistence pipeline. Every failure from here on is
// reported as an error event plus a failed assistant message.
func (s *Streamer) run(ctx context.Context, sess *ent.ChatSession, bot *ent.Chatbot, userText, userMsgID string, events chan<- Event) {
	defer close(events)
	started := time.Now()

	// A stop request from a previous turn must not kill this one.
	s.cancels.ClearCancel(ctx, sess.ID)

	events <- thinkingEvent(StageHistory)
	history, err := s.loadHistory(ctx, sess.ID, userMsgID)
	if err != nil {
		s.fail(ctx, sess, events, started, "", err)
		return
	}

	events <- thinkingEvent(StageRetrieval)
	result := &retrieval.Result{}
	if bot.ActiveVersion > 0 {
		result, err = s.retriever.Retrieve(ctx, bot.ID, bot.ActiveVersion, userText, true)
		if err != nil {
			s.fail(ctx, sess, events, started, "", err)
			return
		}
	}
	events <- contextFoundEvent(len(result.Sources))

	persona := PersonaFromMap(bot.Persona)

	// No context at all: answer with the persona fallback instead of
	// letting the model hallucinate over an empty prompt.
	if len(result.Items) == 0 {
		s.finish(ctx, sess, events, started, result, persona.Fallback(), llm.Usage{})
		return
	}

	events <- thinkingEvent(StageGenerating)
	llmCtx, cancelLLM := context.WithCancel(ctx)
	defer cancelLLM()

	stream, err := s.generator.StreamChat(llmCtx, buildMessages(persona, result.Items, history, userText))
	if err != nil {
		s.fail(ctx, sess, events, started, "", err)
		return
	}

	var answer strings.Builder
	var usage llm.Usage
	filter := &ThinkFilter{}
	for chunk := range stream {
		if chunk.Err != nil {
			s.fail(ctx, sess, events, started, answer.String(), chunk.Err)
			return
		}
		if chunk.Usage != nil {
			usage = *chunk.Usage
			continue
		}
		visible := filter.Feed(chunk.Content)
		if visible == "" {
			continue
		}
		if s.cancelled(ctx, sess.ID) {
			cancelLLM()
			s.persistCancelled(ctx, sess, events, started, result, answer.String(), usage)
			return
		}
		answer.WriteString(visible)
		events <- contentEvent(visible)
	}
	if tail := filter.Flush(); tail != "" {
		answer.WriteString(tail)
		events <- contentEvent(tail)
	}

	s.finish(ctx, sess, events, started, result, answer.String(), usage)
}

// cancelled polls the stop-request key. Bus errors are logged and treated
// as "keep going" so a flaky Redis cannot kill live streams.
func (s *Streamer) cancelled(ctx context.Context, sessionID string) bool {
	stop, err := s.cancels.CancelRequested(ctx, sessionID)
	if err != nil {
		s.logger.Warn("cancellation poll failed", "session_id", sessionID, "error", err)
		return false
	}
	return stop
}

// loadHistory returns the most recent turns in chronological order. The
// current user message is excluded here and appended to the prompt
// separately, so it occupies one of the HistoryTurns slots: only turns-1
// prior turns are loaded.
func (s *Streamer) loadHistory(ctx context.Context, sessionID, currentMsgID string) ([]llm.Message, error) {
	turns := s.cfg.HistoryTurns
	if turns <= 0 {
		turns = 10
	}
	// Fetch the tail newest-first, then reverse. Each turn is a user and
	// an assistant message.
	rows, err := s.db.Message.Query().
		Where(
			entmsg.SessionID(sessionID),
			entmsg.Failed(false),
			entmsg.IDNEQ(currentMsgID),
		).
		Order(ent.Desc(entmsg.FieldCreatedAt)).
		Limit((turns - 1) * 2).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	out := make([]llm.Message, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		out = append(out, llm.Message{
			Role:    rows[i].Role.String(),
			Content: rows[i].Content,
		})
	}
	return out, nil
}

// finish persists the assistant message and emits sources plus done.
func (s *Streamer) finish(ctx context.Context, sess *ent.ChatSession, events chan<- Event, started time.Time, result *retrieval.Result, answer string, usage llm.Usage) {
	// The fallback path never streamed tokens, so emit the answer here.
	if len(result.Items) == 0 && answer != "" {
		events <- contentEvent(answer)
	}

	msgID, err := s.persistAssistant(ctx, sess, assistantRecord{
		content:   answer,
		sources:   result.Sources,
		usage:     usage,
		retrieval: result,
		elapsed:   time.Since(started),
	})
	if err != nil {
		s.logger.Error("failed to persist assistant message", "session_id", sess.ID, "error", err)
		events <- errorEvent("internal", "failed to record the answer")
		return
	}

	if len(result.Sources) > 0 {
		events <- sourcesEvent(result.Sources)
	}
	events <- doneEvent(msgID)
}

// persistCancelled stores the partial answer flagged cancelled and closes
// the turn without emitting further tokens.
func (s *Streamer) persistCancelled(ctx context.Context, sess *ent.ChatSession, events chan<- Event, started time.Time, result *retrieval.Result, partial string, usage llm.Usage) {
	s.cancels.ClearCancel(ctx, sess.ID)
	msgID, err := s.persistAssistant(ctx, sess, assistantRecord{
		content:   partial,
		sources:   result.Sources,
		usage:     usage,
		retrieval: result,
		elapsed:   time.Since(started),
		cancelled: true,
	})
	if err != nil {
		s.logger.Error("failed to persist cancelled message", "session_id", sess.ID, "error", err)
		events <- errorEvent("internal", "failed to record the partial answer")
		return
	}
	events <- doneEvent(msgID)
}

// fail records a failed assistant message and emits an error event. The
// user message stays.
func (s *Streamer) fail(ctx context.Context, sess *ent.ChatSession, events chan<- Event, started time.Time, partial string, cause error) {
	if errors.Is(cause, context.Canceled) {
		// Client went away; nothing to tell it.
		s.logger.Info("chat turn abandoned", "session_id", sess.ID)
		return
	}
	s.logger.Error("chat turn failed", "session_id", sess.ID, "error", cause)

	if _, err := s.persistAssistant(ctx, sess, assistantRecord{
		content: partial,
		usage:   llm.Usage{},
		elapsed: time.Since(started),
		failed:  true,
	}); err != nil {
		s.logger.Error("failed to persist failed message", "session_id", sess.ID, "error", err)
	}

	kind := "internal"
	switch {
	case fault.IsTransient(cause):
		kind = "transient"
	case fault.IsPermanent(cause):
		kind = "permanent"
	}
	events <- errorEvent(kind, "the assistant could not complete this answer")
}

type assistantRecord struct {
	content   string
	sources   []retrieval.Source
	usage     llm.Usage
	retrieval *retrieval.Result
	elapsed   time.Duration
	cancelled bool
	failed    bool
}

// persistAssistant stores the assistant turn with its metrics and bumps
// the session and daily counters, all in one transaction.
func (s *Streamer) persistAssistant(ctx context.Context, sess *ent.ChatSession, rec assistantRecord) (string, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to open transaction: %w", err)
	}

	retrievalCount := 0
	retrievalMs := 0
	if rec.retrieval != nil {
		retrievalCount = len(rec.retrieval.Sources)
		retrievalMs = int(rec.retrieval.Duration.Milliseconds())
	}

	msgID := uuid.New().String()
	_, err = tx.Message.Create().
		SetID(msgID).
		SetSessionID(sess.ID).
		SetRole(entmsg.RoleAssistant).
		SetContent(truncateContent(rec.content)).
		SetSources(sourcesToMaps(rec.sources)).
		SetCancelled(rec.cancelled).
		SetFailed(rec.failed).
		SetResponseTimeMs(int(rec.elapsed.Milliseconds())).
		SetInputTokens(rec.usage.InputTokens).
		SetOutputTokens(rec.usage.OutputTokens).
		SetRetrievalCount(retrievalCount).
		SetRetrievalTimeMs(retrievalMs).
		Save(ctx)
	if err == nil {
		err = tx.ChatSession.UpdateOneID(sess.ID).AddMessageCount(1).Exec(ctx)
	}
	if err == nil {
		err = bumpDailyStats(ctx, tx, sess.ChatbotID, statDelta{
			messages:       1,
			responseTimeMs: rec.elapsed.Milliseconds(),
			inputTokens:    int64(rec.usage.InputTokens),
			outputTokens:   int64(rec.usage.OutputTokens),
			retrievals:     int64(retrievalCount),
		})
	}
	if err != nil {
		_ = tx.Rollback()
		return "", fmt.Errorf("failed to persist assistant message: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit assistant message: %w", err)
	}
	return msgID, nil
}

type statDelta struct {
	sessions       int
	messages       int
	responseTimeMs int64
	inputTokens    int64
	outputTokens   int64
	retrievals     int64
}

// bumpDailyStats upserts today's per-tenant counters.
func bumpDailyStats(ctx context.Context, tx *ent.Tx, chatbotID string, d statDelta) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	return tx.DailyStat.Create().
		SetID(uuid.New().String()).
		SetChatbotID(chatbotID).
		SetDate(today).
		SetSessionCount(d.sessions).
		SetMessageCount(d.messages).
		SetTotalResponseTimeMs(d.responseTimeMs).
		SetInputTokens(d.inputTokens).
		SetOutputTokens(d.outputTokens).
		SetRetrievalCount(d.retrievals).
		OnConflictColumns(dailystat.FieldChatbotID, dailystat.FieldDate).
		Update(func(u *ent.DailyStatUpsert) {
			u.AddSessionCount(d.sessions)
			u.AddMessageCount(d.messages)
			u.AddTotalResponseTimeMs(d.responseTimeMs)
			u.AddInputTokens(d.inputTokens)
			u.AddOutputTokens(d.outputTokens)
			u.AddRetrievalCount(d.retrievals)
			u.SetUpdatedAt(time.Now())
		}).
		Exec(ctx)
}

// truncateContent keeps persisted content inside the column limit.
func truncateContent(text string) string {
	const max = 10000
	if len(text) <= max {
		return text
	}
	runes := []rune(text)
	for len(string(runes)) > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}

// sourcesToMaps converts citations to the JSON shape stored on messages.
func sourcesToMaps(sources []retrieval.Source) []map[string]any {
	if len(sources) == 0 {
		return nil
	}
	raw, err := json.Marshal(sources)
	if err != nil {
		return nil
	}
	var out []map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
