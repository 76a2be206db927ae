package api

import (
	"context"
	"net/http"

	"github.com/Sro01/Documate/internal/types"
)

// Ask sends a user message to a chatbot and returns its reply. This is the
// message exchange call behind every send and regeneration in the chat
// controller; a failure is returned as an error, never as an empty success.
func (c *Client) Ask(ctx context.Context, request *types.ChatRequest) (*types.ChatResponse, error) {
	response := &types.ChatResponse{}
	if err := c.do(ctx, http.MethodPost, "/chats", request, response); err != nil {
		return nil, err
	}
	return response, nil
}
