package session

import (
	"sync"
	"time"
)

type entry struct {
	mu   sync.Mutex
	sess Session
}

// Store is the session repository: one Session per user, created lazily,
// guarded by a per-user lock so exactly one operation runs per user at a
// time. The store-wide lock only protects the map itself and is never held
// across user work.
type Store struct {
	mu      sync.Mutex
	entries map[int64]*entry
	timeout time.Duration
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a repository with the given inactivity timeout.
func NewStore(timeout time.Duration, opts ...Option) *Store {
	s := &Store{
		entries: make(map[int64]*entry),
		timeout: timeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Acquire returns the user's session with its lock held; the caller must call
// release when done. Expiry is applied lazily here: a session idle past the
// timeout is reset before it is handed out.
func (s *Store) Acquire(userID int64) (*Session, func()) {
	s.mu.Lock()
	e, ok := s.entries[userID]
	if !ok {
		now := s.now()
		e = &entry{sess: Session{
			UserID:       userID,
			State:        StateIdle,
			CreatedAt:    now,
			LastActivity: now,
		}}
		s.entries[userID] = e
	}
	s.mu.Unlock()

	e.mu.Lock()
	now := s.now()
	if e.sess.State != StateIdle && now.Sub(e.sess.LastActivity) >= s.timeout {
		e.sess.Reset()
	}
	e.sess.LastActivity = now
	return &e.sess, e.mu.Unlock
}

// Peek returns a copy of the session without applying expiry or touching the
// activity clock.
func (s *Store) Peek(userID int64) (Session, bool) {
	s.mu.Lock()
	e, ok := s.entries[userID]
	s.mu.Unlock()
	if !ok {
		return Session{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess, true
}

// Purge removes sessions idle past the timeout and returns how many were
// dropped. Dropped sessions are recreated as idle on next access, so this
// changes nothing observable.
func (s *Store) Purge() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if !e.mu.TryLock() {
			continue
		}
		idle := now.Sub(e.sess.LastActivity) >= s.timeout
		e.mu.Unlock()
		if idle {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}
