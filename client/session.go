// Package client is the Go counterpart of the web front end's session and
// request plumbing. It keeps the auth token and user record in memory,
// mirrors them to a durable file and wraps all API calls
package client

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"go.uber.org/zap"
)

// SessionState tracks where the session is in its lifecycle. Consumers
// must treat Uninitialized and Restoring as "wait", not as "logged out"
type SessionState int

const (
	StateUninitialized SessionState = iota
	StateRestoring
	StateAuthenticated
	StateAnonymous
)

func (s SessionState) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "uninitialized"
	}
}

// StoredUser is the non-secret user record mirrored next to the token.
// It is a cache of server truth and may go stale
type StoredUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type sessionFile struct {
	Token string     `json:"token"`
	User  StoredUser `json:"user"`
}

// Session is the client-side session store. All access goes through it,
// nothing reads the mirror file directly
type Session struct {
	mu    sync.Mutex
	state SessionState
	token string
	user  StoredUser

	// Durable mirror location
	path string
}

func NewSession(path string) *Session {
	return &Session{
		state: StateUninitialized,
		path:  path,
	}
}

// Bootstrap restores a previously persisted session. A missing mirror
// means Anonymous, a corrupted one is removed and also means Anonymous.
// It never fails, the worst outcome is starting logged out
func (s *Session) Bootstrap() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateRestoring

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			zap.L().Debug("Failed to read session mirror", zap.Error(err))
		}

		s.state = StateAnonymous
		return
	}

	var f sessionFile
	if err := json.Unmarshal(raw, &f); err != nil || f.Token == "" || f.User.ID == "" {
		zap.L().Debug("Clearing corrupted session mirror", zap.Error(err))

		os.Remove(s.path)
		s.state = StateAnonymous
		return
	}

	s.token = f.Token
	s.user = f.User
	s.state = StateAuthenticated
}

// Login stores the token and user in memory and persists them so the next
// Bootstrap restores the session
func (s *Session) Login(token string, user StoredUser) error {
	raw, err := json.Marshal(sessionFile{
		Token: token,
		User:  user,
	})
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = user
	s.state = StateAuthenticated

	return nil
}

// Logout clears the in-memory state and the durable mirror. The token
// itself stays valid until it expires, nothing is revoked server-side
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	os.Remove(s.path)

	s.token = ""
	s.user = StoredUser{}
	s.state = StateAnonymous
}

// Ready reports whether bootstrap has completed. Dependent fetches must
// wait for it, firing earlier risks a false "logged out" round trip
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state == StateAuthenticated || s.state == StateAnonymous
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Token returns the current auth token, empty when not authenticated
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token
}

// User returns the cached user record and whether one is held
func (s *Session) User() (StoredUser, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.user, s.state == StateAuthenticated
}
