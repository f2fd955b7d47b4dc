package gateway

import (
	"context"
	"sync"
	"time"

	"github.com/sfomin/gw-currency-rates/internal/conversation"
	"github.com/sfomin/gw-currency-rates/internal/logger"
)

// Session holds the conversation state for one user between turns.
// Its mutex is held for the whole of a turn, including the backend
// call, so turns from the same user are processed strictly in order.
type Session struct {
	mu           sync.Mutex
	state        conversation.State
	createdAt    time.Time
	lastActivity time.Time
}

// State returns the current conversation state. The caller must hold
// the session via Acquire.
func (s *Session) State() conversation.State {
	return s.state
}

// SetState replaces the conversation state. The caller must hold the
// session via Acquire.
func (s *Session) SetState(state conversation.State) {
	s.state = state
}

// Release unlocks the session after a turn.
func (s *Session) Release() {
	s.mu.Unlock()
}

// SessionStore owns the per-user session map. Sessions idle beyond the
// TTL are reset on access and evicted by the janitor, which bounds both
// memory and how long abandoned partial input survives.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session

	now func() time.Time
}

// NewSessionStore creates a store with the given idle TTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Acquire returns the user's session locked for one turn, creating it
// at Idle when absent. A session idle past the TTL is reset to Idle
// before being handed out: the user starts fresh with no memory of
// prior partial input. Release must be called when the turn is done.
func (s *SessionStore) Acquire(userID string) *Session {
	s.mu.Lock()
	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session{
			state:     conversation.Idle(),
			createdAt: s.now(),
		}
		s.sessions[userID] = sess
	}
	s.mu.Unlock()

	sess.mu.Lock()

	now := s.now()
	if s.ttl > 0 && !sess.lastActivity.IsZero() && now.Sub(sess.lastActivity) > s.ttl {
		sess.state = conversation.Idle()
	}
	sess.lastActivity = now

	return sess
}

// Len returns the number of tracked sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Run sweeps expired sessions until the context is cancelled.
func (s *SessionStore) Run(ctx context.Context, sweepEvery time.Duration) {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			evicted := s.sweep()
			if evicted > 0 {
				logger.Log.Infow("evicted idle sessions", "count", evicted)
			}
		}
	}
}

// sweep evicts sessions idle past the TTL. Sessions with a turn in
// flight are skipped and picked up on a later pass.
func (s *SessionStore) sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if !sess.mu.TryLock() {
			continue
		}
		if now.Sub(sess.lastActivity) > s.ttl {
			delete(s.sessions, id)
			evicted++
		}
		sess.mu.Unlock()
	}
	return evicted
}
