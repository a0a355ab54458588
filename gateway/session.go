package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"restaurant-ordering/models"
)

// SessionStore persists the `{ user, token, isAuthenticated }` blob
// between runs
type SessionStore interface {
	Current() models.Session
	Save(models.Session) error
	Clear() error
}

// FileSessionStore keeps the blob in a JSON file, the closest Go
// equivalent of the browser's local storage
type FileSessionStore struct {
	path string

	mu      sync.Mutex
	current models.Session
}

func NewFileSessionStore(path string) (*FileSessionStore, error) {
	s := &FileSessionStore{path: path}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if err := json.Unmarshal(raw, &s.current); err != nil {
		// Corrupt blob: start unauthenticated rather than failing startup.
		s.current = models.Session{}
	}
	return s, nil
}

func (s *FileSessionStore) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *FileSessionStore) Save(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	s.current = session
	return nil
}

func (s *FileSessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = models.Session{}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// MemorySessionStore holds the blob in memory only (tests, throwaway
// sessions)
type MemorySessionStore struct {
	mu      sync.Mutex
	current models.Session
}

func (s *MemorySessionStore) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *MemorySessionStore) Save(session models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = session
	return nil
}

func (s *MemorySessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = models.Session{}
	return nil
}
