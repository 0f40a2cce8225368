package repo

import (
	"sync"

	"SurveyBot/model"
)

// SessionStore keeps live survey sessions in memory, keyed by Telegram user id.
// Access to a single user's session is serialized; different users never wait on each other.
type SessionStore struct {
	mu      sync.Mutex
	entries map[int64]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	refs    int // guarded by SessionStore.mu
	session model.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		entries: make(map[int64]*sessionEntry),
	}
}

// With runs fn with exclusive access to the user's session, creating it on first use.
// Sessions that end up back in their initial empty state are dropped once nobody holds them.
func (s *SessionStore) With(userID int64, fn func(sess *model.Session) error) error {
	e := s.acquire(userID)
	defer s.release(userID, e)

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(&e.session)
}

// Get returns a copy of the user's session.
func (s *SessionStore) Get(userID int64) (model.Session, bool) {
	e, ok := s.lookup(userID)
	if !ok {
		return model.Session{}, false
	}
	defer s.release(userID, e)

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session, true
}

// Len returns the number of sessions in progress.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *SessionStore) acquire(userID int64) *sessionEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if !ok {
		e = &sessionEntry{session: model.NewSession()}
		s.entries[userID] = e
	}
	e.refs++
	return e
}

func (s *SessionStore) lookup(userID int64) (*sessionEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[userID]
	if ok {
		e.refs++
	}
	return e, ok
}

func (s *SessionStore) release(userID int64, e *sessionEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.refs--
	// refs == 0 means no goroutine can be holding e.mu, so reading the session is safe.
	if e.refs == 0 && e.session.IsZero() {
		delete(s.entries, userID)
	}
}
