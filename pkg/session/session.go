// Package session holds the process-wide auth state: access and refresh
// tokens plus the signed-in user, persisted to a JSON file so a restart
// picks up where the last run left off.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

// State is the lifecycle state of the session.
type State int

const (
	Anonymous State = iota
	Authenticating
	Authenticated
	Refreshing
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case Refreshing:
		return "refreshing"
	default:
		return "anonymous"
	}
}

// TokenStatus distinguishes "not yet checked" from "checked and absent"
// so views can show a neutral loading state instead of bouncing to login.
type TokenStatus int

const (
	TokenUnknown TokenStatus = iota
	TokenAbsent
	TokenPresent
)

// persisted is the on-disk shape of the session file.
type persisted struct {
	Access  string       `json:"access"`
	Refresh string       `json:"refresh,omitempty"`
	User    *domain.User `json:"user,omitempty"`
}

// Store is the single owner of session state. The HTTP client is the
// only caller allowed to mutate tokens after login (refresh side effect);
// everything else reads.
type Store struct {
	mu      sync.Mutex
	path    string
	state   State
	status  TokenStatus
	access  string
	refresh string
	user    *domain.User
}

// DefaultPath returns ~/.jobdeck/session.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".jobdeck", "session.json"), nil
}

// Open returns a store bound to path. Token status stays Unknown until
// Hydrate runs.
func Open(path string) *Store {
	return &Store{path: path, state: Anonymous, status: TokenUnknown}
}

// Hydrate loads persisted credentials. A missing or unreadable file is
// not an error; it just means the session is anonymous.
func (s *Store) Hydrate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.status = TokenAbsent
		s.state = Anonymous
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}

	var p persisted
	if err := json.Unmarshal(data, &p); err != nil || p.Access == "" {
		s.status = TokenAbsent
		s.state = Anonymous
		if err != nil {
			return fmt.Errorf("parse session file: %w", err)
		}
		return nil
	}

	s.access = p.Access
	s.refresh = p.Refresh
	s.user = p.User
	s.status = TokenPresent
	s.state = Authenticated
	return nil
}

// SetAuthenticating marks a login or register attempt in progress.
func (s *Store) SetAuthenticating() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Authenticating
}

// SetRefreshing marks an access-token refresh in progress.
func (s *Store) SetRefreshing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Refreshing
}

// SetAnonymous drops back to anonymous without touching the file.
// Used when a login attempt is rejected before anything was persisted.
func (s *Store) SetAnonymous() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Anonymous
}

// SetAuthenticated stores and persists a fresh credential set.
func (s *Store) SetAuthenticated(access, refresh string, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = access
	s.refresh = refresh
	u := user
	s.user = &u
	s.status = TokenPresent
	s.state = Authenticated
	return s.persistLocked()
}

// SetAccessToken replaces only the access token after a refresh.
func (s *Store) SetAccessToken(access string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = access
	s.status = TokenPresent
	s.state = Authenticated
	return s.persistLocked()
}

// Clear wipes state and removes the session file. Safe to call when
// already anonymous.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = ""
	s.refresh = ""
	s.user = nil
	s.status = TokenAbsent
	s.state = Anonymous

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// persistLocked writes the session file; callers hold s.mu.
func (s *Store) persistLocked() error {
	data, err := json.Marshal(persisted{Access: s.access, Refresh: s.refresh, User: s.user})
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// AccessToken returns the current access token and its status.
func (s *Store) AccessToken() (string, TokenStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access, s.status
}

// RefreshToken returns the stored refresh token, empty when absent.
func (s *Store) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

// User returns a copy of the signed-in user, nil when anonymous.
func (s *Store) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
