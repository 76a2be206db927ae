package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sro01/Documate/internal/configuration"
	"github.com/Sro01/Documate/internal/types"
	"github.com/Sro01/Documate/store"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *store.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	config := &configuration.Config{APIHost: server.URL, RequestTimeout: 5}
	return New(config, s), s
}

func writeEnvelope(w http.ResponseWriter, data any) {
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func TestAskDecodesEnvelope(t *testing.T) {
	var received types.ChatRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chats", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		writeEnvelope(w, types.ChatResponse{
			ChatbotName: "PrinterBot",
			Answer:      "Hold the power button.",
			Uncertainty: types.UncertaintyLow,
		})
	}))

	response, err := client.Ask(context.Background(), &types.ChatRequest{
		ChatbotID: "chatbot-1",
		SessionID: "session-1",
		Messages:  []types.Message{{Role: types.RoleUser, Content: "How do I reset it?"}},
	})
	require.NoError(t, err)
	require.Equal(t, "PrinterBot", response.ChatbotName)
	require.Equal(t, "Hold the power button.", response.Answer)
	require.Equal(t, "chatbot-1", received.ChatbotID)
	require.Len(t, received.Messages, 1)
}

func TestErrorEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]string{"code": "CHATBOT_NOT_FOUND", "message": "no such chatbot"},
		})
	}))

	_, err := client.GetChatbot(context.Background(), "missing")
	require.Error(t, err)
	require.Equal(t, "CHATBOT_NOT_FOUND: no such chatbot", err.Error())
}

func TestBearerTokenAttached(t *testing.T) {
	var authorization string
	client, s := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		writeEnvelope(w, []Chatbot{})
	}))

	s.SaveAccessToken("token-abc")
	_, err := client.ListChatbots(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer token-abc", authorization)
}

func TestUnauthorizedClearsCredentials(t *testing.T) {
	client, s := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   map[string]string{"code": "UNAUTHORIZED", "message": "token expired"},
		})
	}))

	s.SaveAccessToken("stale-token")
	s.SaveAdmin("admin-1", "Jamie")

	_, err := client.ListChatbots(context.Background())
	require.Error(t, err)
	require.Empty(t, s.LoadAccessToken())
	adminID, _ := s.LoadAdmin()
	require.Empty(t, adminID)
}

func TestLoginStoresToken(t *testing.T) {
	client, s := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		writeEnvelope(w, LoginData{AccessToken: "fresh-token", TokenType: "bearer"})
	}))

	data, err := client.Login(context.Background(), "jamie", "secret")
	require.NoError(t, err)
	require.Equal(t, "fresh-token", data.AccessToken)
	require.Equal(t, "fresh-token", s.LoadAccessToken())
}
