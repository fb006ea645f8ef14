// Package session owns login state. Credentials come from configuration
// rather than source literals, tokens are issued server-side, and route
// access is decided by the pure Allow check.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Role tags recognized by the route guards.
const (
	RoleLeader   = "leader"
	RoleManager  = "manager"
	RoleDesigner = "designer"
)

var ErrInvalidCredentials = errors.New("invalid login or password")

// Credential is one entry of the injectable login table.
type Credential struct {
	Login    string `yaml:"login"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

// Session is the server-side record of an authenticated user.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store keeps active sessions in memory keyed by bearer token.
type Store struct {
	mu       sync.RWMutex
	creds    []Credential
	sessions map[string]Session
}

func NewStore(creds []Credential) *Store {
	return &Store{
		creds:    creds,
		sessions: make(map[string]Session),
	}
}

// Login authenticates an exact (login, password) match against the
// credential table and issues a new session token.
func (s *Store) Login(login, password string) (Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.creds {
		if c.Login == login && c.Password == password {
			sess := Session{
				Token:     uuid.New().String(),
				Username:  c.Login,
				Role:      c.Role,
				CreatedAt: time.Now(),
			}
			s.sessions[sess.Token] = sess
			return sess, nil
		}
	}

	return Session{}, ErrInvalidCredentials
}

// Get returns the session for a token, if any.
func (s *Store) Get(token string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[token]
	return sess, ok
}

// Logout revokes a token. Unknown tokens are a no-op.
func (s *Store) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}

// Allow is the route guard: a session reaches a role-gated route only
// when its role tag matches exactly. A leader is not a superset of a
// manager; the views are disjoint.
func Allow(sess Session, requiredRole string) bool {
	if sess.Token == "" {
		return false
	}
	return sess.Role == requiredRole
}
