package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCreds() []Credential {
	return []Credential{
		{Login: "admin", Password: "admin", Role: RoleLeader},
		{Login: "manager", Password: "manager", Role: RoleManager},
		{Login: "designer", Password: "designer", Role: RoleDesigner},
	}
}

func TestLogin(t *testing.T) {
	store := NewStore(testCreds())

	sess, err := store.Login("manager", "manager")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "manager", sess.Username)
	assert.Equal(t, RoleManager, sess.Role)

	got, ok := store.Get(sess.Token)
	require.True(t, ok)
	assert.Equal(t, sess.Token, got.Token)
}

func TestLogin_ExactMatchRequired(t *testing.T) {
	store := NewStore(testCreds())

	tests := []struct {
		name     string
		login    string
		password string
	}{
		{"wrong password", "admin", "wrong"},
		{"wrong login", "nobody", "admin"},
		{"crossed pair", "admin", "manager"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Login(tt.login, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestLogout(t *testing.T) {
	store := NewStore(testCreds())

	sess, err := store.Login("designer", "designer")
	require.NoError(t, err)

	store.Logout(sess.Token)

	_, ok := store.Get(sess.Token)
	assert.False(t, ok)

	// revoking again is harmless
	store.Logout(sess.Token)
}

func TestAllow(t *testing.T) {
	store := NewStore(testCreds())

	manager, err := store.Login("manager", "manager")
	require.NoError(t, err)

	assert.True(t, Allow(manager, RoleManager))
	assert.False(t, Allow(manager, RoleLeader), "manager must not reach leader routes")
	assert.False(t, Allow(manager, RoleDesigner))

	// unauthenticated sessions are always denied
	assert.False(t, Allow(Session{}, RoleManager))
	assert.False(t, Allow(Session{Role: RoleManager}, RoleManager))
}

func TestLogin_IssuesDistinctTokens(t *testing.T) {
	store := NewStore(testCreds())

	a, err := store.Login("admin", "admin")
	require.NoError(t, err)
	b, err := store.Login("admin", "admin")
	require.NoError(t, err)

	assert.NotEqual(t, a.Token, b.Token)

	// both stay valid until logged out
	_, ok := store.Get(a.Token)
	assert.True(t, ok)
	_, ok = store.Get(b.Token)
	assert.True(t, ok)
}
