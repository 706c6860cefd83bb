package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/ent/chatsession"
	entmsg "github.com/lorekeep/lorekeep/ent/message"
	"github.com/lorekeep/lorekeep/pkg/chat"
	"github.com/lorekeep/lorekeep/pkg/config"
	"github.com/lorekeep/lorekeep/pkg/models"
)

// Canceller publishes stop requests for in-flight generations.
type Canceller interface {
	RequestCancel(ctx context.Context, sessionID string) error
}

// SessionService manages public chat sessions.
type SessionService struct {
	client   *ent.Client
	bots     *ChatbotService
	streamer *chat.Streamer
	cancels  Canceller
	cfg      config.ChatConfig
}

// NewSessionService creates a new SessionService.
func NewSessionService(client *ent.Client, bots *ChatbotService, streamer *chat.Streamer, cancels Canceller, cfg config.ChatConfig) *SessionService {
	return &SessionService{
		client:   client,
		bots:     bots,
		streamer: streamer,
		cancels:  cancels,
		cfg:      cfg,
	}
}

// CreateSession starts a session for the tenant behind the public slug.
// When the request carries an initial message, the assistant reply is
// generated synchronously and returned alongside the session.
func (s *SessionService) CreateSession(ctx context.Context, accessURL string, req models.CreateSessionRequest) (*models.SessionResponse, error) {
	bot, err := s.bots.GetChatbotByAccessURL(ctx, accessURL)
	if err != nil {
		return nil, err
	}
	if bot.Status == chatbot.StatusInactive {
		return nil, ErrNotFound
	}

	sess, err := s.client.ChatSession.Create().
		SetID(uuid.New().String()).
		SetChatbotID(bot.ID).
		SetExpiresAt(time.Now().Add(s.cfg.SessionTTL)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	persona := chat.PersonaFromMap(bot.Persona)
	resp := &models.SessionResponse{
		SessionID: sess.ID,
		ExpiresAt: sess.ExpiresAt,
		Greeting:  persona.Greeting,
	}

	if req.InitialMessage != "" {
		reply, err := s.answerSynchronously(ctx, sess.ID, req.InitialMessage)
		if err != nil {
			// The session itself is fine; the client can retry the
			// question over the streaming endpoint.
			slog.Warn("Initial message reply failed",
				"session_id", sess.ID, "error", err)
		}
		resp.InitialReply = reply
	}

	return resp, nil
}

// answerSynchronously runs one chat turn and collects the streamed tokens
// into a single string.
func (s *SessionService) answerSynchronously(ctx context.Context, sessionID, message string) (string, error) {
	events, err := s.streamer.Stream(ctx, sessionID, message)
	if err != nil {
		return "", err
	}

	var reply string
	for ev := range events {
		switch ev.Type {
		case chat.EventContent:
			reply += ev.Content
		case chat.EventError:
			return reply, fmt.Errorf("%s: %s", ev.ErrorKind, ev.Message)
		}
	}
	return reply, nil
}

// StreamMessage runs a streamed chat turn after verifying the session
// belongs to the tenant behind the slug.
func (s *SessionService) StreamMessage(ctx context.Context, accessURL, sessionID, message string) (<-chan chat.Event, error) {
	if _, err := s.resolveSession(ctx, accessURL, sessionID); err != nil {
		return nil, err
	}
	return s.streamer.Stream(ctx, sessionID, message)
}

// StopGeneration publishes a cancellation request for the session. The
// streaming side picks it up between tokens and persists the partial reply.
func (s *SessionService) StopGeneration(ctx context.Context, accessURL, sessionID string) error {
	if _, err := s.resolveSession(ctx, accessURL, sessionID); err != nil {
		return err
	}
	if err := s.cancels.RequestCancel(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to publish stop request: %w", err)
	}
	return nil
}

// GetSessionDetail returns a session with its full message history.
func (s *SessionService) GetSessionDetail(httpCtx context.Context, accessURL, sessionID string) (*models.SessionDetail, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	sess, err := s.resolveSession(ctx, accessURL, sessionID)
	if err != nil {
		return nil, err
	}

	msgs, err := s.client.Message.Query().
		Where(entmsg.SessionID(sess.ID)).
		Order(ent.Asc(entmsg.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	return &models.SessionDetail{Session: sess, Messages: msgs}, nil
}

// resolveSession loads a session and checks it belongs to the tenant
// behind the public slug, so sessions cannot be read across tenants.
func (s *SessionService) resolveSession(ctx context.Context, accessURL, sessionID string) (*ent.ChatSession, error) {
	bot, err := s.bots.GetChatbotByAccessURL(ctx, accessURL)
	if err != nil {
		return nil, err
	}

	sess, err := s.client.ChatSession.Query().
		Where(
			chatsession.ID(sessionID),
			chatsession.ChatbotID(bot.ID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return sess, nil
}

// PurgeExpired deletes sessions whose expiry plus the grace window has
// passed. Message rows go with them via the cascade. Returns the number
// of sessions purged.
func (s *SessionService) PurgeExpired(ctx context.Context, grace time.Duration) (int, error) {
	cutoff := time.Now().Add(-grace)
	n, err := s.client.ChatSession.Delete().
		Where(chatsession.ExpiresAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}
	return n, nil
}
