package chat

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sro01/Documate/internal/types"
	"github.com/Sro01/Documate/store"
)

// titlePlaceholderPrefix marks a session title that has not yet been derived
// from user input. The check is a best-effort prefix heuristic: a session the
// user renames to something starting with this prefix would re-trigger
// derivation, which we accept.
const titlePlaceholderPrefix = "New chat"

const titleMaxRunes = 50

// ChangeListener is notified with the id of a mutated session.
type ChangeListener func(sessionID string)

// Repository owns all reads and writes of the persisted session collection.
// Every mutation persists the full collection and notifies subscribers
// synchronously before returning, so a subscriber reading back through the
// repository observes the post-mutation state.
//
// Operations referencing an unknown session id return nil (or false for
// Delete); they never fail.
type Repository struct {
	mu        sync.Mutex
	store     *store.Store
	listeners map[int]ChangeListener
	nextID    int
}

// NewRepository instantiates a repository over the given store.
func NewRepository(s *store.Store) *Repository {
	return &Repository{
		store:     s,
		listeners: map[int]ChangeListener{},
	}
}

// Subscribe registers a listener for change notifications. The returned
// function unsubscribes it.
func (r *Repository) Subscribe(listener ChangeListener) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = listener
	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

// notify delivers a change event to all subscribers. Called without the
// repository lock held so listeners may re-enter the repository.
func (r *Repository) notify(sessionID string) {
	r.mu.Lock()
	listeners := make([]ChangeListener, 0, len(r.listeners))
	for _, listener := range r.listeners {
		listeners = append(listeners, listener)
	}
	r.mu.Unlock()

	for _, listener := range listeners {
		listener(sessionID)
	}
}

// CreateSession creates a new session bound to the given chatbot and inserts
// it at the front of the collection, so storage order is most-recent-first.
func (r *Repository) CreateSession(chatbotID string) *store.Session {
	now := time.Now()
	session := &store.Session{
		SessionID: uuid.New().String(),
		Title:     fmt.Sprintf("%s %s", titlePlaceholderPrefix, now.Format("2006/01/02 15:04")),
		Messages:  []types.Message{},
		ChatbotID: chatbotID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.mu.Lock()
	sessions := r.store.LoadSessions()
	sessions = append([]*store.Session{session}, sessions...)
	r.store.SaveSessions(sessions)
	r.mu.Unlock()

	r.notify(session.SessionID)
	return copySession(session)
}

// GetSession returns the session with the given id, or nil.
func (r *Repository) GetSession(sessionID string) *store.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, session := range r.store.LoadSessions() {
		if session.SessionID == sessionID {
			return copySession(session)
		}
	}
	return nil
}

// ListSessions returns all sessions in storage order, unsorted by pin.
func (r *Repository) ListSessions() []*store.Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	sessions := r.store.LoadSessions()
	out := make([]*store.Session, len(sessions))
	for i, session := range sessions {
		out[i] = copySession(session)
	}
	return out
}

// AppendMessage pushes a message onto a session. The first user message of a
// still-untitled session becomes its title, truncated to 50 runes.
func (r *Repository) AppendMessage(sessionID string, message types.Message) *store.Session {
	return r.mutate(sessionID, func(session *store.Session) {
		session.Messages = append(session.Messages, message)
		if strings.HasPrefix(session.Title, titlePlaceholderPrefix) &&
			message.Role == types.RoleUser &&
			len(session.Messages) == 1 {
			session.Title = deriveTitle(message.Content)
		}
	})
}

// ReplaceMessages replaces a session's message list wholesale. Title
// derivation is not re-run.
func (r *Repository) ReplaceMessages(sessionID string, messages []types.Message) *store.Session {
	return r.mutate(sessionID, func(session *store.Session) {
		session.Messages = messages
	})
}

// RenameSession sets a session's title.
func (r *Repository) RenameSession(sessionID, title string) *store.Session {
	return r.mutate(sessionID, func(session *store.Session) {
		session.Title = title
	})
}

// TogglePin flips a session's pin flag.
func (r *Repository) TogglePin(sessionID string) *store.Session {
	return r.mutate(sessionID, func(session *store.Session) {
		session.IsPinned = !session.IsPinned
	})
}

// DeleteSession removes a session by id, reporting whether it existed.
func (r *Repository) DeleteSession(sessionID string) bool {
	r.mu.Lock()
	sessions := r.store.LoadSessions()
	filtered := sessions[:0]
	for _, session := range sessions {
		if session.SessionID != sessionID {
			filtered = append(filtered, session)
		}
	}
	if len(filtered) == len(sessions) {
		r.mu.Unlock()
		return false
	}
	r.store.SaveSessions(filtered)
	r.mu.Unlock()

	r.notify(sessionID)
	return true
}

// DeleteAllSessions drops the whole collection.
func (r *Repository) DeleteAllSessions() {
	r.mu.Lock()
	r.store.SaveSessions(nil)
	r.mu.Unlock()

	r.notify("")
}

// mutate applies fn to the named session, bumps its updated_at, persists and
// notifies. Returns nil when the session does not exist.
func (r *Repository) mutate(sessionID string, fn func(*store.Session)) *store.Session {
	r.mu.Lock()
	sessions := r.store.LoadSessions()
	var target *store.Session
	for _, session := range sessions {
		if session.SessionID == sessionID {
			target = session
			break
		}
	}
	if target == nil {
		r.mu.Unlock()
		return nil
	}
	fn(target)
	target.UpdatedAt = time.Now()
	r.store.SaveSessions(sessions)
	updated := copySession(target)
	r.mu.Unlock()

	r.notify(sessionID)
	return updated
}

// deriveTitle truncates the first user message into a session title.
func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleMaxRunes {
		return content
	}
	return string(runes[:titleMaxRunes]) + "..."
}

// copySession returns a defensive copy so callers cannot mutate stored state.
func copySession(session *store.Session) *store.Session {
	out := *session
	out.Messages = make([]types.Message, len(session.Messages))
	copy(out.Messages, session.Messages)
	return &out
}
