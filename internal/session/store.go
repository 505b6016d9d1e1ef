// Package session holds the identity flags for signed-in users. A
// session is three flags: authenticated, username and role. Logout
// clears all three at once; there is no partial sign-out.
package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"venuehub/pkg/model"
)

const CookieName = "venuehub_session"

const defaultTTL = 12 * time.Hour

type record struct {
	Authenticated bool
	Username      string
	Role          model.Role
	ExpiresAt     time.Time
}

// Store maps opaque session tokens to identity flags. It implements
// middleware.ActorResolver.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]record
	ttl      time.Duration
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]record),
		ttl:      defaultTTL,
		now:      time.Now,
	}
}

// Start creates a session for the user and returns its token.
func (s *Store) Start(username string, role model.Role) string {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = record{
		Authenticated: true,
		Username:      username,
		Role:          role,
		ExpiresAt:     s.now().Add(s.ttl),
	}
	s.mu.Unlock()

	return token
}

// End removes the session wholesale. Ending an unknown token is a no-op.
func (s *Store) End(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// Lookup returns the actor for a token, if the session is live.
func (s *Store) Lookup(token string) (model.Actor, bool) {
	s.mu.RLock()
	rec, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok || !rec.Authenticated || s.now().After(rec.ExpiresAt) {
		return model.Actor{}, false
	}
	return model.Actor{Username: rec.Username, Role: rec.Role}, true
}

// Resolve reads the session cookie and answers the request identity.
func (s *Store) Resolve(r *http.Request) (model.Actor, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return model.Actor{}, false
	}
	return s.Lookup(cookie.Value)
}
