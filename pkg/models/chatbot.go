// Package models contains request/response models and business domain types.
package models

import "github.com/lorekeep/lorekeep/ent"

// CreateChatbotRequest contains fields for creating a chatbot
type CreateChatbotRequest struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Persona     map[string]any `json:"persona"`
	AccessURL   string         `json:"access_url"`
}

// UpdateChatbotRequest contains optional fields for patching a chatbot
type UpdateChatbotRequest struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	Persona     *map[string]any `json:"persona,omitempty"`
}

// UpdateChatbotStatusRequest toggles a chatbot between active and inactive
type UpdateChatbotStatusRequest struct {
	Status string `json:"status"`
}

// ChatbotResponse wraps a Chatbot
type ChatbotResponse struct {
	*ent.Chatbot
}

// PersonaInfo is the public (unauthenticated) view of a chatbot
type PersonaInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Greeting    string `json:"greeting"`
}
