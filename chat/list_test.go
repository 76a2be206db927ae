package chat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sro01/Documate/internal/types"
)

func TestSessionsPinnedFirstStable(t *testing.T) {
	repository := newTestRepository(t)
	list := NewSessionList(repository)
	defer list.Close()

	// Storage order after creation is d, c, b, a (most recent first).
	a := repository.CreateSession("chatbot-1")
	b := repository.CreateSession("chatbot-1")
	c := repository.CreateSession("chatbot-1")
	d := repository.CreateSession("chatbot-1")

	repository.TogglePin(c.SessionID)
	repository.TogglePin(a.SessionID)

	sessions := list.Sessions()
	require.Len(t, sessions, 4)
	// Pinned sessions first, each group keeping storage order.
	require.Equal(t, c.SessionID, sessions[0].SessionID)
	require.Equal(t, a.SessionID, sessions[1].SessionID)
	require.Equal(t, d.SessionID, sessions[2].SessionID)
	require.Equal(t, b.SessionID, sessions[3].SessionID)
}

func TestListTracksRepositoryChanges(t *testing.T) {
	repository := newTestRepository(t)
	list := NewSessionList(repository)
	defer list.Close()

	require.Empty(t, list.Sessions())

	session := repository.CreateSession("chatbot-1")
	require.Len(t, list.Sessions(), 1)

	repository.RenameSession(session.SessionID, "Renamed")
	require.Equal(t, "Renamed", list.Sessions()[0].Title)

	repository.DeleteSession(session.SessionID)
	require.Empty(t, list.Sessions())
}

func TestPreview(t *testing.T) {
	repository := newTestRepository(t)
	list := NewSessionList(repository)
	defer list.Close()

	session := repository.CreateSession("chatbot-1")
	require.Empty(t, list.Preview(session))

	repository.AppendMessage(session.SessionID, types.Message{Role: types.RoleUser, Content: "question"})
	updated := repository.AppendMessage(session.SessionID, types.Message{Role: types.RoleAssistant, Content: "answer"})
	require.Equal(t, "answer", list.Preview(updated))
}
