package chat

import (
	"sync"

	"github.com/Sro01/Documate/store"
)

// SessionList feeds the session sidebar: it tracks the repository's change
// notifications and hands out a pinned-first ordering of all sessions.
type SessionList struct {
	mu         sync.Mutex
	repository *Repository
	sessions   []*store.Session

	unsubscribe func()
}

// NewSessionList instantiates a list view model subscribed to the repository.
func NewSessionList(repository *Repository) *SessionList {
	l := &SessionList{repository: repository}
	l.unsubscribe = repository.Subscribe(func(string) {
		l.Refresh()
	})
	l.Refresh()
	return l
}

// Close detaches the list from repository notifications.
func (l *SessionList) Close() {
	if l.unsubscribe != nil {
		l.unsubscribe()
	}
}

// Refresh re-pulls the session collection from the repository.
func (l *SessionList) Refresh() {
	sessions := l.repository.ListSessions()
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sessions = sessions
}

// Sessions returns all sessions, pinned first. The ordering is a stable
// partition: within the pinned and unpinned groups, storage order is kept.
func (l *SessionList) Sessions() []*store.Session {
	l.mu.Lock()
	defer l.mu.Unlock()

	sorted := make([]*store.Session, 0, len(l.sessions))
	for _, session := range l.sessions {
		if session.IsPinned {
			sorted = append(sorted, session)
		}
	}
	for _, session := range l.sessions {
		if !session.IsPinned {
			sorted = append(sorted, session)
		}
	}
	return sorted
}

// Preview returns the content of a session's final message, or empty.
func (l *SessionList) Preview(session *store.Session) string {
	if len(session.Messages) == 0 {
		return ""
	}
	return session.Messages[len(session.Messages)-1].Content
}
