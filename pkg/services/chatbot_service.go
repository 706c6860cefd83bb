// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/lorekeep/lorekeep/ent"
	"github.com/lorekeep/lorekeep/ent/chatbot"
	"github.com/lorekeep/lorekeep/pkg/models"
)

// accessURLRe matches URL-safe slugs: lowercase alphanumerics and hyphens,
// no leading/trailing hyphen, 3-64 characters.
var accessURLRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,62}[a-z0-9]$`)

// ChatbotService manages tenant (chatbot) lifecycle.
type ChatbotService struct {
	client   *ent.Client
	versions *VersionService
}

// NewChatbotService creates a new ChatbotService.
func NewChatbotService(client *ent.Client, versions *VersionService) *ChatbotService {
	return &ChatbotService{client: client, versions: versions}
}

// CreateChatbot creates a tenant with a unique public slug.
func (s *ChatbotService) CreateChatbot(httpCtx context.Context, req models.CreateChatbotRequest) (*ent.Chatbot, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if len(req.Name) > 255 {
		return nil, NewValidationError("name", "must be at most 255 characters")
	}
	if !accessURLRe.MatchString(req.AccessURL) {
		return nil, NewValidationError("access_url",
			"must be 3-64 lowercase alphanumerics and hyphens, no leading/trailing hyphen")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	bot, err := s.client.Chatbot.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetDescription(req.Description).
		SetPersona(req.Persona).
		SetAccessURL(req.AccessURL).
		SetStatus(chatbot.StatusProcessing).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create chatbot: %w", err)
	}
	return bot, nil
}

// GetChatbot returns a tenant by id.
func (s *ChatbotService) GetChatbot(httpCtx context.Context, id string) (*ent.Chatbot, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	bot, err := s.client.Chatbot.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get chatbot: %w", err)
	}
	return bot, nil
}

// GetChatbotByAccessURL resolves the public slug. Tenants pending cleanup
// are invisible to the public surface.
func (s *ChatbotService) GetChatbotByAccessURL(httpCtx context.Context, accessURL string) (*ent.Chatbot, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	bot, err := s.client.Chatbot.Query().
		Where(
			chatbot.AccessURL(accessURL),
			chatbot.StatusNEQ(chatbot.StatusCleanupPending),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve access url: %w", err)
	}
	return bot, nil
}

// ListChatbots returns all tenants, newest first.
func (s *ChatbotService) ListChatbots(httpCtx context.Context) ([]*ent.Chatbot, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	bots, err := s.client.Chatbot.Query().
		Order(ent.Desc(chatbot.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chatbots: %w", err)
	}
	return bots, nil
}

// UpdateChatbot patches mutable fields.
func (s *ChatbotService) UpdateChatbot(httpCtx context.Context, id string, req models.UpdateChatbotRequest) (*ent.Chatbot, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	update := s.client.Chatbot.UpdateOneID(id)
	if req.Name != nil {
		if *req.Name == "" {
			return nil, NewValidationError("name", "must not be empty")
		}
		update = update.SetName(*req.Name)
	}
	if req.Description != nil {
		update = update.SetDescription(*req.Description)
	}
	if req.Persona != nil {
		update = update.SetPersona(*req.Persona)
	}

	bot, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update chatbot: %w", err)
	}
	return bot, nil
}

// UpdateStatus toggles a tenant between active and inactive. Lifecycle
// statuses (processing, cleanup_pending) are managed internally and cannot
// be set through this path.
func (s *ChatbotService) UpdateStatus(httpCtx context.Context, id string, status string) (*ent.Chatbot, error) {
	if status != string(chatbot.StatusActive) && status != string(chatbot.StatusInactive) {
		return nil, NewValidationError("status", "must be active or inactive")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	bot, err := s.client.Chatbot.UpdateOneID(id).
		SetStatus(chatbot.Status(status)).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update chatbot status: %w", err)
	}
	return bot, nil
}

// DeleteChatbot removes a tenant and every artifact it owns across the
// vector store, graph store and file storage. If a cleanup substep fails,
// the row is left in cleanup_pending and the janitor retries.
func (s *ChatbotService) DeleteChatbot(httpCtx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 60*time.Second)
	defer cancel()

	bot, err := s.client.Chatbot.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get chatbot: %w", err)
	}

	return s.versions.CleanupTenant(ctx, bot)
}

// PersonaInfo is the public view of a tenant's persona.
func (s *ChatbotService) PersonaInfo(httpCtx context.Context, accessURL string) (*models.PersonaInfo, error) {
	bot, err := s.GetChatbotByAccessURL(httpCtx, accessURL)
	if err != nil {
		return nil, err
	}

	str := func(key string) string {
		v, _ := bot.Persona[key].(string)
		return v
	}
	return &models.PersonaInfo{
		Name:        str("name"),
		DisplayName: bot.Name,
		Greeting:    str("greeting"),
	}, nil
}
