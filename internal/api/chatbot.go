package api

import (
	"context"
	"net/http"
)

// Chatbot is a chatbot entity managed by administrators.
type Chatbot struct {
	ChatbotID   string `json:"chatbot_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"is_public"`
	Tag         string `json:"tag,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// CreateChatbotRequest holds the fields for a new chatbot.
type CreateChatbotRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPublic    *bool  `json:"is_public,omitempty"`
	Tag         string `json:"tag,omitempty"`
}

// UpdateChatbotRequest holds a partial chatbot update. Nil fields are left
// untouched by the server.
type UpdateChatbotRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	IsPublic    *bool   `json:"is_public,omitempty"`
	Tag         *string `json:"tag,omitempty"`
}

// ListChatbots returns all chatbots.
func (c *Client) ListChatbots(ctx context.Context) ([]Chatbot, error) {
	var chatbots []Chatbot
	if err := c.do(ctx, http.MethodGet, "/set/chatbots", nil, &chatbots); err != nil {
		return nil, err
	}
	return chatbots, nil
}

// CreateChatbot creates a chatbot.
func (c *Client) CreateChatbot(ctx context.Context, request *CreateChatbotRequest) (*Chatbot, error) {
	chatbot := &Chatbot{}
	if err := c.do(ctx, http.MethodPost, "/set/chatbots", request, chatbot); err != nil {
		return nil, err
	}
	return chatbot, nil
}

// GetChatbot returns one chatbot.
func (c *Client) GetChatbot(ctx context.Context, chatbotID string) (*Chatbot, error) {
	chatbot := &Chatbot{}
	if err := c.do(ctx, http.MethodGet, "/set/chatbots/"+chatbotID, nil, chatbot); err != nil {
		return nil, err
	}
	return chatbot, nil
}

// UpdateChatbot patches a chatbot's settings.
func (c *Client) UpdateChatbot(ctx context.Context, chatbotID string, request *UpdateChatbotRequest) (*Chatbot, error) {
	chatbot := &Chatbot{}
	if err := c.do(ctx, http.MethodPatch, "/set/chatbots/"+chatbotID, request, chatbot); err != nil {
		return nil, err
	}
	return chatbot, nil
}

// DeleteChatbot removes a chatbot and its manuals.
func (c *Client) DeleteChatbot(ctx context.Context, chatbotID string) error {
	return c.do(ctx, http.MethodDelete, "/set/chatbots/"+chatbotID, nil, nil)
}
