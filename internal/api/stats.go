package api

import (
	"context"
	"net/http"
)

// ChatbotQueryCount is the query volume attributed to one chatbot.
type ChatbotQueryCount struct {
	ChatbotID   string `json:"chatbot_id"`
	ChatbotName string `json:"chatbot_name,omitempty"`
	Queries     int    `json:"queries"`
}

// DateQueryCount is the query volume on one date.
type DateQueryCount struct {
	Date    string `json:"date"`
	Queries int    `json:"queries"`
}

// OverviewStats aggregates usage across the whole platform.
type OverviewStats struct {
	TotalQueries  int                 `json:"total_queries"`
	UniqueClients int                 `json:"unique_clients"`
	ByChatbot     []ChatbotQueryCount `json:"by_chatbot"`
	ByDate        []DateQueryCount    `json:"by_date"`
}

// ChatbotStats aggregates usage for one chatbot.
type ChatbotStats struct {
	ChatbotID     string           `json:"chatbot_id"`
	ChatbotName   string           `json:"chatbot_name,omitempty"`
	TotalQueries  int              `json:"total_queries"`
	UniqueClients int              `json:"unique_clients"`
	ByDate        []DateQueryCount `json:"by_date"`
}

// DateStats aggregates usage on one date.
type DateStats struct {
	Date          string              `json:"date"`
	TotalQueries  int                 `json:"total_queries"`
	UniqueClients int                 `json:"unique_clients"`
	ByChatbot     []ChatbotQueryCount `json:"by_chatbot"`
}

// GetOverviewStats returns platform-wide usage statistics.
func (c *Client) GetOverviewStats(ctx context.Context) (*OverviewStats, error) {
	stats := &OverviewStats{}
	if err := c.do(ctx, http.MethodGet, "/stats/overview", nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetChatbotStats returns usage statistics for one chatbot.
func (c *Client) GetChatbotStats(ctx context.Context, chatbotID string) (*ChatbotStats, error) {
	stats := &ChatbotStats{}
	if err := c.do(ctx, http.MethodGet, "/stats/chatbot/"+chatbotID, nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// GetDateStats returns usage statistics for one date (YYYY-MM-DD).
func (c *Client) GetDateStats(ctx context.Context, date string) (*DateStats, error) {
	stats := &DateStats{}
	if err := c.do(ctx, http.MethodGet, "/stats/date/"+date, nil, stats); err != nil {
		return nil, err
	}
	return stats, nil
}
