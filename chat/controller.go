package chat

import (
	"context"
	"strings"
	"sync"

	"github.com/Sro01/Documate/internal/types"
	"github.com/Sro01/Documate/store"
)

// Exchange turns a user message into an assistant reply. Implemented by the
// REST client against the remote platform; faked in tests.
type Exchange interface {
	Ask(ctx context.Context, request *types.ChatRequest) (*types.ChatResponse, error)
}

// State is a point-in-time snapshot of the controller for the view layer.
type State struct {
	// SessionID of the active session; empty when none is selected.
	SessionID string
	// Messages of the active session.
	Messages []types.Message
	// Loading reports an exchange round trip in flight for a send.
	Loading bool
	// EditingIndex is the index of the assistant message currently being
	// regenerated after an edit, or -1.
	EditingIndex int
}

// Controller binds one active session to the message exchange workflow.
//
// The active selection and its cached messages are process-local state; the
// repository remains the source of truth. Messages are reloaded whenever the
// selection changes or a change notification arrives for the active session,
// so writes from elsewhere (another view, a late reply) are picked up without
// polling. The controller mutex is never held across an exchange round trip.
type Controller struct {
	mu         sync.Mutex
	repository *Repository
	store      *store.Store
	exchange   Exchange

	sessionID    string
	messages     []types.Message
	loading      bool
	editingIndex int

	unsubscribe func()
}

// NewController instantiates a controller with no active session.
func NewController(repository *Repository, s *store.Store, exchange Exchange) *Controller {
	c := &Controller{
		repository:   repository,
		store:        s,
		exchange:     exchange,
		editingIndex: -1,
	}
	c.unsubscribe = repository.Subscribe(func(sessionID string) {
		c.mu.Lock()
		if c.sessionID == "" || sessionID != c.sessionID {
			c.mu.Unlock()
			return
		}
		c.mu.Unlock()
		c.reload()
	})
	return c
}

// Close detaches the controller from repository notifications.
func (c *Controller) Close() {
	if c.unsubscribe != nil {
		c.unsubscribe()
	}
}

// Snapshot returns a consistent copy of the controller state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	messages := make([]types.Message, len(c.messages))
	copy(messages, c.messages)
	return State{
		SessionID:    c.sessionID,
		Messages:     messages,
		Loading:      c.loading,
		EditingIndex: c.editingIndex,
	}
}

// Select makes the given session active and loads its messages. A stale or
// deleted id degrades to an empty message list rather than failing.
func (c *Controller) Select(sessionID string) {
	c.mu.Lock()
	c.sessionID = sessionID
	c.editingIndex = -1
	c.mu.Unlock()
	c.reload()
}

// Clear returns the controller to the no-session-selected state.
func (c *Controller) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessionID = ""
	c.messages = nil
	c.editingIndex = -1
}

// SelectChatbot persists the chatbot subsequent sends should target.
func (c *Controller) SelectChatbot(chatbotID, name string) {
	c.store.SaveSelectedChatbot(store.SelectedChatbot{ChatbotID: chatbotID, Name: name})
}

// SendUserMessage appends a user message to the active session without
// contacting the exchange. When no session is active, one is created bound
// to chatbotID and selected first. Empty content is a no-op.
func (c *Controller) SendUserMessage(content, chatbotID string) {
	content = strings.TrimSpace(content)
	if content == "" {
		return
	}
	sessionID := c.ensureSession(chatbotID)
	message := types.Message{Role: types.RoleUser, Content: content}
	if updated := c.repository.AppendMessage(sessionID, message); updated != nil {
		c.setMessages(sessionID, updated.Messages)
	}
}

// SendAndAwaitReply appends a user message, invokes the exchange and appends
// the assistant reply. On exchange failure the user's message remains, no
// assistant message is appended, and the loading flag is cleared.
//
// The reply is written back under the session id captured at send time: if
// the user switches sessions while the call is in flight, the late reply
// still lands in the originating session's stored messages.
func (c *Controller) SendAndAwaitReply(ctx context.Context, content, chatbotID string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	sessionID := c.ensureSession(chatbotID)

	userMessage := types.Message{Role: types.RoleUser, Content: content}
	if updated := c.repository.AppendMessage(sessionID, userMessage); updated != nil {
		c.setMessages(sessionID, updated.Messages)
	}

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	response, err := c.exchange.Ask(ctx, &types.ChatRequest{
		ChatbotID: chatbotID,
		SessionID: sessionID,
		Messages:  []types.Message{userMessage},
	})

	c.mu.Lock()
	c.loading = false
	c.mu.Unlock()

	if err != nil {
		return err
	}

	assistantMessage := types.Message{
		Role:        types.RoleAssistant,
		Content:     response.Answer,
		ChatbotName: response.ChatbotName,
		Images:      response.Images,
	}
	if updated := c.repository.AppendMessage(sessionID, assistantMessage); updated != nil {
		c.setMessages(sessionID, updated.Messages)
	}
	return nil
}

// EditUserMessage rewrites the content of the message at index. When the
// following message is an assistant reply, it is regenerated: the exchange
// is re-invoked with the edited content and the reply overwrites that
// message in place. Out-of-bounds indices, empty or unchanged content, and
// the no-session state are no-ops.
func (c *Controller) EditUserMessage(ctx context.Context, index int, newContent string) error {
	newContent = strings.TrimSpace(newContent)

	c.mu.Lock()
	sessionID := c.sessionID
	c.mu.Unlock()
	if sessionID == "" || newContent == "" {
		return nil
	}

	session := c.repository.GetSession(sessionID)
	if session == nil || index < 0 || index >= len(session.Messages) {
		return nil
	}
	if session.Messages[index].Content == newContent {
		return nil
	}

	messages := make([]types.Message, len(session.Messages))
	copy(messages, session.Messages)
	messages[index].Content = newContent
	if updated := c.repository.ReplaceMessages(sessionID, messages); updated != nil {
		c.setMessages(sessionID, updated.Messages)
	}

	// No assistant reply follows the edited message; the edit stands alone.
	regenerateIndex := index + 1
	if regenerateIndex >= len(messages) || messages[regenerateIndex].Role != types.RoleAssistant {
		return nil
	}

	c.mu.Lock()
	c.editingIndex = regenerateIndex
	c.mu.Unlock()

	response, err := c.exchange.Ask(ctx, &types.ChatRequest{
		ChatbotID: c.regenerationChatbot(session),
		SessionID: sessionID,
		Messages:  []types.Message{{Role: types.RoleUser, Content: newContent}},
	})

	c.mu.Lock()
	c.editingIndex = -1
	c.mu.Unlock()

	if err != nil {
		// The stale assistant content stays on display.
		return err
	}

	// Re-fetch before overwriting: another writer may have touched the
	// session during the round trip.
	current := c.repository.GetSession(sessionID)
	if current == nil || regenerateIndex >= len(current.Messages) {
		return nil
	}
	regenerated := make([]types.Message, len(current.Messages))
	copy(regenerated, current.Messages)
	regenerated[regenerateIndex].Content = response.Answer
	regenerated[regenerateIndex].ChatbotName = response.ChatbotName
	regenerated[regenerateIndex].Images = response.Images
	if updated := c.repository.ReplaceMessages(sessionID, regenerated); updated != nil {
		c.setMessages(sessionID, updated.Messages)
	}
	return nil
}

// DeleteMessage removes the message at index from the active session.
func (c *Controller) DeleteMessage(index int) {
	c.mu.Lock()
	sessionID := c.sessionID
	count := len(c.messages)
	c.mu.Unlock()
	if sessionID == "" || index < 0 || index >= count {
		return
	}

	session := c.repository.GetSession(sessionID)
	if session == nil || index >= len(session.Messages) {
		return
	}
	messages := make([]types.Message, 0, len(session.Messages)-1)
	messages = append(messages, session.Messages[:index]...)
	messages = append(messages, session.Messages[index+1:]...)
	if updated := c.repository.ReplaceMessages(sessionID, messages); updated != nil {
		c.setMessages(sessionID, updated.Messages)
	}
}

// ClearMessages empties the active session's message list.
func (c *Controller) ClearMessages() {
	c.mu.Lock()
	sessionID := c.sessionID
	c.mu.Unlock()
	if sessionID == "" {
		return
	}
	if updated := c.repository.ReplaceMessages(sessionID, []types.Message{}); updated != nil {
		c.setMessages(sessionID, updated.Messages)
	}
}

// ensureSession returns the active session id, creating and selecting a new
// session bound to chatbotID when none is active.
func (c *Controller) ensureSession(chatbotID string) string {
	c.mu.Lock()
	if c.sessionID != "" {
		sessionID := c.sessionID
		c.mu.Unlock()
		return sessionID
	}
	c.mu.Unlock()

	session := c.repository.CreateSession(chatbotID)
	c.mu.Lock()
	c.sessionID = session.SessionID
	c.messages = session.Messages
	c.editingIndex = -1
	c.mu.Unlock()
	return session.SessionID
}

// regenerationChatbot resolves which chatbot a regeneration call targets:
// the session's bound chatbot, else the persisted selected chatbot.
func (c *Controller) regenerationChatbot(session *store.Session) string {
	if session.ChatbotID != "" {
		return session.ChatbotID
	}
	if selected := c.store.LoadSelectedChatbot(); selected != nil {
		return selected.ChatbotID
	}
	return ""
}

// reload refreshes the cached messages from the repository.
func (c *Controller) reload() {
	c.mu.Lock()
	sessionID := c.sessionID
	c.mu.Unlock()
	if sessionID == "" {
		return
	}

	session := c.repository.GetSession(sessionID)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sessionID != sessionID {
		return
	}
	if session == nil {
		c.messages = nil
		return
	}
	c.messages = session.Messages
}

// setMessages installs messages for sessionID unless the selection has moved on.
func (c *Controller) setMessages(sessionID string, messages []types.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sessionID != sessionID {
		return
	}
	c.messages = messages
}
