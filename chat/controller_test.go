package chat

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/Sro01/Documate/internal/types"
	"github.com/Sro01/Documate/store"
)

// fakeExchange answers with a canned response, optionally blocking until
// released so tests can interleave other operations mid round trip.
type fakeExchange struct {
	response *types.ChatResponse
	err      error

	requests []*types.ChatRequest
	started  chan struct{}
	release  chan struct{}
}

func (f *fakeExchange) Ask(ctx context.Context, request *types.ChatRequest) (*types.ChatResponse, error) {
	f.requests = append(f.requests, request)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func answer(content string) *types.ChatResponse {
	return &types.ChatResponse{ChatbotName: "PrinterBot", Answer: content}
}

func newTestController(t *testing.T, exchange Exchange) (*Controller, *Repository) {
	t.Helper()
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	repository := NewRepository(s)
	controller := NewController(repository, s, exchange)
	t.Cleanup(controller.Close)
	return controller, repository
}

func TestSendAndAwaitReplyCreatesSession(t *testing.T) {
	exchange := &fakeExchange{response: answer("Hold the power button.")}
	controller, repository := newTestController(t, exchange)

	err := controller.SendAndAwaitReply(context.Background(), "How do I reset it?", "chatbot-1")
	require.NoError(t, err)

	state := controller.Snapshot()
	require.NotEmpty(t, state.SessionID)
	require.False(t, state.Loading)
	require.Len(t, state.Messages, 2)
	require.Equal(t, types.RoleUser, state.Messages[0].Role)
	require.Equal(t, "How do I reset it?", state.Messages[0].Content)
	require.Equal(t, types.RoleAssistant, state.Messages[1].Role)
	require.Equal(t, "Hold the power button.", state.Messages[1].Content)
	require.Equal(t, "PrinterBot", state.Messages[1].ChatbotName)

	// Persisted, not just cached.
	session := repository.GetSession(state.SessionID)
	require.Len(t, session.Messages, 2)
	require.Equal(t, "chatbot-1", session.ChatbotID)
	require.Equal(t, "How do I reset it?", session.Title)
}

func TestSendEmptyContentIsNoOp(t *testing.T) {
	exchange := &fakeExchange{response: answer("unused")}
	controller, repository := newTestController(t, exchange)

	require.NoError(t, controller.SendAndAwaitReply(context.Background(), "   \n\t ", "chatbot-1"))
	require.Empty(t, controller.Snapshot().SessionID)
	require.Empty(t, repository.ListSessions())
	require.Empty(t, exchange.requests)
}

func TestSendFailureKeepsUserMessage(t *testing.T) {
	exchange := &fakeExchange{err: errors.New("upstream unavailable")}
	controller, _ := newTestController(t, exchange)

	err := controller.SendAndAwaitReply(context.Background(), "hello", "chatbot-1")
	require.Error(t, err)

	state := controller.Snapshot()
	require.False(t, state.Loading)
	require.Len(t, state.Messages, 1)
	require.Equal(t, types.RoleUser, state.Messages[0].Role)
}

func TestLoadingFlagDuringRoundTrip(t *testing.T) {
	exchange := &fakeExchange{
		response: answer("done"),
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	controller, _ := newTestController(t, exchange)

	done := make(chan error, 1)
	go func() {
		done <- controller.SendAndAwaitReply(context.Background(), "hello", "chatbot-1")
	}()

	<-exchange.started
	require.True(t, controller.Snapshot().Loading)

	close(exchange.release)
	require.NoError(t, <-done)
	require.False(t, controller.Snapshot().Loading)
}

func TestLateReplyLandsInOriginatingSession(t *testing.T) {
	exchange := &fakeExchange{
		response: answer("late reply"),
		started:  make(chan struct{}),
		release:  make(chan struct{}),
	}
	controller, repository := newTestController(t, exchange)

	done := make(chan error, 1)
	go func() {
		done <- controller.SendAndAwaitReply(context.Background(), "original question", "chatbot-1")
	}()
	<-exchange.started

	originating := controller.Snapshot().SessionID
	require.NotEmpty(t, originating)

	// Switch away while the reply is in flight.
	other := repository.CreateSession("chatbot-2")
	controller.Select(other.SessionID)

	close(exchange.release)
	require.NoError(t, <-done)

	// The reply was written under the originating session.
	session := repository.GetSession(originating)
	require.Len(t, session.Messages, 2)
	require.Equal(t, "late reply", session.Messages[1].Content)

	// The active session's cache was not polluted.
	state := controller.Snapshot()
	require.Equal(t, other.SessionID, state.SessionID)
	require.Empty(t, state.Messages)
}

func TestEditRegeneratesFollowingReply(t *testing.T) {
	exchange := &fakeExchange{response: answer("first answer")}
	controller, repository := newTestController(t, exchange)

	require.NoError(t, controller.SendAndAwaitReply(context.Background(), "first question", "chatbot-1"))

	exchange.response = answer("regenerated answer")
	require.NoError(t, controller.EditUserMessage(context.Background(), 0, "edited question"))

	state := controller.Snapshot()
	require.Equal(t, -1, state.EditingIndex)
	require.Len(t, state.Messages, 2)
	require.Equal(t, "edited question", state.Messages[0].Content)
	require.Equal(t, "regenerated answer", state.Messages[1].Content)

	// The regeneration call targeted the session's bound chatbot.
	require.Len(t, exchange.requests, 2)
	require.Equal(t, "chatbot-1", exchange.requests[1].ChatbotID)
	require.Equal(t, "edited question", exchange.requests[1].Messages[0].Content)

	session := repository.GetSession(state.SessionID)
	require.Equal(t, "regenerated answer", session.Messages[1].Content)
}

func TestEditWithoutFollowingReply(t *testing.T) {
	exchange := &fakeExchange{response: answer("unused")}
	controller, _ := newTestController(t, exchange)

	controller.SendUserMessage("only a user message", "chatbot-1")
	require.NoError(t, controller.EditUserMessage(context.Background(), 0, "rewritten"))

	state := controller.Snapshot()
	require.Len(t, state.Messages, 1)
	require.Equal(t, "rewritten", state.Messages[0].Content)
	// No regeneration call was made.
	require.Empty(t, exchange.requests)
}

func TestEditNoOps(t *testing.T) {
	exchange := &fakeExchange{response: answer("answer")}
	controller, _ := newTestController(t, exchange)

	// No active session.
	require.NoError(t, controller.EditUserMessage(context.Background(), 0, "content"))

	require.NoError(t, controller.SendAndAwaitReply(context.Background(), "question", "chatbot-1"))
	before := controller.Snapshot()

	// Out of bounds, empty and unchanged content all leave state alone.
	require.NoError(t, controller.EditUserMessage(context.Background(), 5, "content"))
	require.NoError(t, controller.EditUserMessage(context.Background(), -1, "content"))
	require.NoError(t, controller.EditUserMessage(context.Background(), 0, "  "))
	require.NoError(t, controller.EditUserMessage(context.Background(), 0, "question"))

	after := controller.Snapshot()
	require.Equal(t, before.Messages, after.Messages)
	require.Len(t, exchange.requests, 1)
}

func TestEditFailureKeepsStaleReply(t *testing.T) {
	exchange := &fakeExchange{response: answer("stale answer")}
	controller, _ := newTestController(t, exchange)

	require.NoError(t, controller.SendAndAwaitReply(context.Background(), "question", "chatbot-1"))

	exchange.err = errors.New("upstream unavailable")
	err := controller.EditUserMessage(context.Background(), 0, "edited question")
	require.Error(t, err)

	state := controller.Snapshot()
	require.Equal(t, -1, state.EditingIndex)
	require.Equal(t, "edited question", state.Messages[0].Content)
	require.Equal(t, "stale answer", state.Messages[1].Content)
}

func TestSelectStaleSession(t *testing.T) {
	exchange := &fakeExchange{response: answer("answer")}
	controller, _ := newTestController(t, exchange)

	controller.Select("never-existed")
	state := controller.Snapshot()
	require.Equal(t, "never-existed", state.SessionID)
	require.Empty(t, state.Messages)
}

func TestControllerTracksExternalMutations(t *testing.T) {
	exchange := &fakeExchange{response: answer("answer")}
	controller, repository := newTestController(t, exchange)

	session := repository.CreateSession("chatbot-1")
	controller.Select(session.SessionID)

	// A write made directly through the repository shows up in the
	// controller without an explicit reload.
	repository.AppendMessage(session.SessionID, types.Message{Role: types.RoleUser, Content: "external"})
	state := controller.Snapshot()
	require.Len(t, state.Messages, 1)
	require.Equal(t, "external", state.Messages[0].Content)
}

func TestDeleteAndClearMessages(t *testing.T) {
	exchange := &fakeExchange{response: answer("answer")}
	controller, repository := newTestController(t, exchange)

	require.NoError(t, controller.SendAndAwaitReply(context.Background(), "question", "chatbot-1"))
	state := controller.Snapshot()

	controller.DeleteMessage(1)
	require.Len(t, controller.Snapshot().Messages, 1)

	controller.ClearMessages()
	require.Empty(t, controller.Snapshot().Messages)
	require.Empty(t, repository.GetSession(state.SessionID).Messages)
}

func TestSelectChatbotPersists(t *testing.T) {
	s, err := store.New(t.TempDir())
	require.NoError(t, err)
	defer s.Close()
	repository := NewRepository(s)
	controller := NewController(repository, s, &fakeExchange{response: answer("answer")})
	defer controller.Close()

	controller.SelectChatbot("chatbot-7", "ScannerBot")
	selected := s.LoadSelectedChatbot()
	require.NotNil(t, selected)
	require.Equal(t, "chatbot-7", selected.ChatbotID)
	require.Equal(t, "ScannerBot", selected.Name)
}

func TestSendUserMessageTrimsAndAppends(t *testing.T) {
	exchange := &fakeExchange{response: answer("unused")}
	controller, _ := newTestController(t, exchange)

	controller.SendUserMessage("  spaced out  ", "chatbot-1")
	state := controller.Snapshot()
	require.NotEmpty(t, state.SessionID)
	require.False(t, state.Loading)
	require.Len(t, state.Messages, 1)
	require.Equal(t, "spaced out", state.Messages[0].Content)
	// No exchange call is made for a plain append.
	require.Empty(t, exchange.requests)
}
