package store

import (
	"encoding/json"
	"time"

	"github.com/Sro01/Documate/internal/types"
)

const (
	sessionsKey        = "documate_chat_sessions"
	selectedChatbotKey = "documate_selected_chatbot"
)

// Session is one persisted chat conversation bound to a chatbot.
type Session struct {
	SessionID string          `json:"session_id"`
	Title     string          `json:"title"`
	Messages  []types.Message `json:"messages"`
	ChatbotID string          `json:"chatbot_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	IsPinned  bool            `json:"isPinned,omitempty"`
}

// SelectedChatbot is the last chatbot the user targeted.
type SelectedChatbot struct {
	ChatbotID string `json:"chatbot_id"`
	Name      string `json:"name"`
}

// LoadSessions returns every persisted session in storage order. A missing
// or corrupt blob yields an empty collection; timestamps are reconstructed
// as time.Time by the JSON round trip.
func (s *Store) LoadSessions() []*Session {
	value, ok := s.load(sessionsKey)
	if !ok {
		return nil
	}

	var sessions []*Session
	if err := json.Unmarshal([]byte(value), &sessions); err != nil {
		log.Error("unmarshaling sessions", "error", err)
		return nil
	}
	return sessions
}

// SaveSessions persists the full session collection.
func (s *Store) SaveSessions(sessions []*Session) {
	bytes, err := json.Marshal(sessions)
	if err != nil {
		log.Error("marshaling sessions", "error", err)
		return
	}
	s.save(sessionsKey, string(bytes))
}

// SaveSelectedChatbot records the last chatbot the user targeted.
func (s *Store) SaveSelectedChatbot(chatbot SelectedChatbot) {
	bytes, err := json.Marshal(chatbot)
	if err != nil {
		log.Error("marshaling selected chatbot", "error", err)
		return
	}
	s.save(selectedChatbotKey, string(bytes))
}

// LoadSelectedChatbot returns the last targeted chatbot, or nil when none
// has been recorded.
func (s *Store) LoadSelectedChatbot() *SelectedChatbot {
	value, ok := s.load(selectedChatbotKey)
	if !ok {
		return nil
	}

	chatbot := &SelectedChatbot{}
	if err := json.Unmarshal([]byte(value), chatbot); err != nil {
		log.Error("unmarshaling selected chatbot", "error", err)
		return nil
	}
	return chatbot
}
