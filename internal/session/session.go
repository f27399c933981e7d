// Package session holds the process-wide authentication state: the
// bearer token and current-user record issued at login. It is the
// client analogue of browser local storage, persisted as a JSON file
// so consecutive CLI invocations share one session.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/civicpulse/civicpulse-cli/internal/core/domain"
	"github.com/civicpulse/civicpulse-cli/internal/core/ports"
)

// state is the persisted session record.
type state struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

// Store is a file-backed ports.Session. Reads and writes are guarded by
// a mutex; teardown on 401 is a one-shot transition, so there is no
// concurrent-writer contention in practice.
type Store struct {
	path string

	mu      sync.RWMutex
	current state
}

var _ ports.Session = (*Store)(nil)

// NewStore creates a session store backed by the given file path and
// reads any persisted session. A missing or unreadable file yields an
// anonymous session.
func NewStore(path string) *Store {
	s := &Store{path: path}
	if data, err := os.ReadFile(path); err == nil {
		var st state
		if err := json.Unmarshal(data, &st); err == nil {
			s.current = st
		}
	}
	return s
}

// Token returns the stored bearer token, or "" for an anonymous session.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// CurrentUser returns the stored user record and whether one exists.
func (s *Store) CurrentUser() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.User, s.current.Token != ""
}

// Set persists a new token and user record, replacing any prior session.
func (s *Store) Set(token string, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = state{Token: token, User: user}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session directory: %w", err)
	}
	data, err := json.Marshal(s.current)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// Clear removes the persisted session. Clearing an absent session is
// not an error.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = state{}

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Authenticated reports whether a usable session exists. A token whose
// exp claim has passed counts as unauthenticated; the claim is read
// without signature verification since only the backend holds the key.
func (s *Store) Authenticated() bool {
	token := s.Token()
	if token == "" {
		return false
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Opaque non-JWT tokens are accepted as-is; the backend is the
		// authority and will answer 401 if the token is stale.
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(time.Now())
}
