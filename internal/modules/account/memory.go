package account

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-process CredentialStore and ProfileStore.
type MemoryStore struct {
	mu          sync.RWMutex
	credentials map[string]Credential
	profiles    map[string]User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{credentials: map[string]Credential{}, profiles: map[string]User{}}
}

func (s *MemoryStore) CreateCredential(ctx context.Context, c Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.credentials[c.Email]; ok {
		return ErrEmailTaken
	}
	s.credentials[c.Email] = c
	return nil
}

func (s *MemoryStore) CredentialByEmail(ctx context.Context, email string) (Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.credentials[email]
	if !ok {
		return Credential{}, ErrUserNotFound
	}
	return c, nil
}

func (s *MemoryStore) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, c := range s.credentials {
		if c.ID == id {
			c.PasswordHash = hash
			s.credentials[email] = c
			return nil
		}
	}
	return ErrUserNotFound
}

func (s *MemoryStore) SaveProfile(ctx context.Context, uid string, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[uid] = user
	return nil
}

func (s *MemoryStore) Profile(ctx context.Context, uid string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.profiles[uid]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}
