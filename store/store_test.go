package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Sro01/Documate/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionsRoundTrip(t *testing.T) {
	s := newTestStore(t)

	createdAt := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	sessions := []*Session{
		{
			SessionID: "session-1",
			Title:     "How do I reset the printer?",
			Messages: []types.Message{
				{Role: types.RoleUser, Content: "How do I reset the printer?"},
				{Role: types.RoleAssistant, Content: "Hold the power button for ten seconds.", ChatbotName: "PrinterBot"},
			},
			ChatbotID: "chatbot-1",
			CreatedAt: createdAt,
			UpdatedAt: createdAt.Add(time.Minute),
		},
		{
			SessionID: "session-2",
			Title:     "New chat 2024/03/01 11:00",
			Messages:  []types.Message{},
			ChatbotID: "chatbot-2",
			CreatedAt: createdAt.Add(time.Hour),
			UpdatedAt: createdAt.Add(time.Hour),
			IsPinned:  true,
		},
	}
	s.SaveSessions(sessions)

	loaded := s.LoadSessions()
	require.Len(t, loaded, 2)
	require.Equal(t, "session-1", loaded[0].SessionID)
	require.Equal(t, "How do I reset the printer?", loaded[0].Title)
	require.Len(t, loaded[0].Messages, 2)
	require.Equal(t, types.RoleAssistant, loaded[0].Messages[1].Role)
	require.Equal(t, "PrinterBot", loaded[0].Messages[1].ChatbotName)
	require.True(t, loaded[0].CreatedAt.Equal(createdAt))
	require.True(t, loaded[0].UpdatedAt.Equal(createdAt.Add(time.Minute)))
	require.True(t, loaded[1].IsPinned)
}

func TestLoadSessionsMissing(t *testing.T) {
	s := newTestStore(t)
	require.Empty(t, s.LoadSessions())
}

func TestLoadSessionsCorruptBlob(t *testing.T) {
	s := newTestStore(t)
	s.save(sessionsKey, "{not json")
	require.Empty(t, s.LoadSessions())

	// The store stays usable after a corrupt read.
	s.SaveSessions([]*Session{{SessionID: "session-1", Messages: []types.Message{}}})
	require.Len(t, s.LoadSessions(), 1)
}

func TestSelectedChatbotRoundTrip(t *testing.T) {
	s := newTestStore(t)
	require.Nil(t, s.LoadSelectedChatbot())

	s.SaveSelectedChatbot(SelectedChatbot{ChatbotID: "chatbot-1", Name: "PrinterBot"})
	selected := s.LoadSelectedChatbot()
	require.NotNil(t, selected)
	require.Equal(t, "chatbot-1", selected.ChatbotID)
	require.Equal(t, "PrinterBot", selected.Name)
}

func TestAuthRecords(t *testing.T) {
	s := newTestStore(t)
	require.Empty(t, s.LoadAccessToken())

	s.SaveAccessToken("token-abc")
	s.SaveAdmin("admin-1", "Jamie")
	require.Equal(t, "token-abc", s.LoadAccessToken())
	adminID, name := s.LoadAdmin()
	require.Equal(t, "admin-1", adminID)
	require.Equal(t, "Jamie", name)

	s.ClearAuth()
	require.Empty(t, s.LoadAccessToken())
	adminID, name = s.LoadAdmin()
	require.Empty(t, adminID)
	require.Empty(t, name)
}

func TestPersistenceAcrossReopen(t *testing.T) {
	directory := t.TempDir()
	s, err := New(directory)
	require.NoError(t, err)
	s.SaveSessions([]*Session{{SessionID: "session-1", Title: "Kept", Messages: []types.Message{}}})
	require.NoError(t, s.Close())

	reopened, err := New(directory)
	require.NoError(t, err)
	defer reopened.Close()
	loaded := reopened.LoadSessions()
	require.Len(t, loaded, 1)
	require.Equal(t, "Kept", loaded[0].Title)
}
