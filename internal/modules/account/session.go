package account

import (
	"sync"
	"time"
)

// session holds the one signed-in user of this device.
type session struct {
	mu      sync.RWMutex
	current *AuthUser
	now     func() time.Time
}

func newSession() *session { return &session{now: time.Now} }

func (s *session) set(u AuthUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &u
}

func (s *session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// get returns the signed-in user. An expired session counts as signed out.
func (s *session) get() (AuthUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return AuthUser{}, ErrNotSignedIn
	}
	if !s.current.ExpiresAt.IsZero() && !s.now().Before(s.current.ExpiresAt) {
		return AuthUser{}, ErrNotSignedIn
	}
	return *s.current, nil
}
