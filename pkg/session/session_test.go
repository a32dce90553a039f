package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/pkg/domain"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return Open(filepath.Join(t.TempDir(), "session.json"))
}

func TestOpenStatusUnknownBeforeHydrate(t *testing.T) {
	s := tempStore(t)
	_, status := s.AccessToken()
	assert.Equal(t, TokenUnknown, status)
	assert.Equal(t, Anonymous, s.State())
}

func TestHydrateMissingFile(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Hydrate())

	_, status := s.AccessToken()
	assert.Equal(t, TokenAbsent, status)
	assert.Equal(t, Anonymous, s.State())
	assert.Nil(t, s.User())
}

func TestPersistHydrateRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := Open(path)
	user := domain.User{ID: 7, Username: "alice", FullName: "Alice Liddell", Email: "alice@example.test"}
	require.NoError(t, s.SetAuthenticated("access-tok", "refresh-tok", user))

	// Fresh store, same file: simulates a process restart.
	reloaded := Open(path)
	require.NoError(t, reloaded.Hydrate())

	access, status := reloaded.AccessToken()
	assert.Equal(t, TokenPresent, status)
	assert.Equal(t, "access-tok", access)
	assert.Equal(t, "refresh-tok", reloaded.RefreshToken())
	assert.Equal(t, Authenticated, reloaded.State())
	require.NotNil(t, reloaded.User())
	assert.Equal(t, user, *reloaded.User())
}

func TestSetAccessTokenReplacesOnlyAccess(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.SetAuthenticated("old-access", "refresh-tok", domain.User{Username: "alice"}))
	require.NoError(t, s.SetAccessToken("new-access"))

	access, _ := s.AccessToken()
	assert.Equal(t, "new-access", access)
	assert.Equal(t, "refresh-tok", s.RefreshToken())
	require.NotNil(t, s.User())
	assert.Equal(t, "alice", s.User().Username)
}

func TestClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := Open(path)
	require.NoError(t, s.SetAuthenticated("tok", "ref", domain.User{Username: "alice"}))
	require.NoError(t, s.Clear())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "session file should be gone after Clear")

	_, status := s.AccessToken()
	assert.Equal(t, TokenAbsent, status)
	assert.Equal(t, Anonymous, s.State())
	assert.Nil(t, s.User())

	// Clearing again is a no-op, not an error.
	require.NoError(t, s.Clear())
}

func TestHydrateCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	s := Open(path)
	require.Error(t, s.Hydrate())

	_, status := s.AccessToken()
	assert.Equal(t, TokenAbsent, status)
	assert.Equal(t, Anonymous, s.State())
}

func TestStateTransitions(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Hydrate())

	s.SetAuthenticating()
	assert.Equal(t, Authenticating, s.State())

	// Rejected credentials: back to anonymous, nothing persisted.
	s.SetAnonymous()
	assert.Equal(t, Anonymous, s.State())
	_, err := os.Stat(s.path)
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, s.SetAuthenticated("tok", "ref", domain.User{Username: "alice"}))
	s.SetRefreshing()
	assert.Equal(t, Refreshing, s.State())

	require.NoError(t, s.SetAccessToken("tok2"))
	assert.Equal(t, Authenticated, s.State())
}
