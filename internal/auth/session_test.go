package auth

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "eventhub/cli/internal/errors"
	"eventhub/cli/internal/keychain"
)

const jwtLike = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
	"eyJpZCI6InUtMSIsImVtYWlsIjoiYUBiLmNvbSIsInJvbGUiOiJ1c2VyIn0." +
	"c2ln"

// failingStore simulates an unavailable credential store.
type failingStore struct{}

func (failingStore) Set(string, string) error   { return errors.New("locked") }
func (failingStore) Get(string) (string, error) { return "", errors.New("locked") }
func (failingStore) Remove(string) error        { return errors.New("locked") }

func TestManager_Lifecycle(t *testing.T) {
	m := NewManager(keychain.NewMemory())

	assert.False(t, m.IsLoggedIn())
	assert.Nil(t, m.CurrentIdentity())

	require.NoError(t, m.StoreSession("Bearer "+jwtLike))
	assert.True(t, m.IsLoggedIn())

	claims := m.CurrentIdentity()
	require.NotNil(t, claims)
	assert.Equal(t, "u-1", claims.Subject())
	assert.Equal(t, "a@b.com", claims.Email())

	tok, err := m.Token()
	require.NoError(t, err)
	assert.Equal(t, "Bearer "+jwtLike, tok, "token is stored verbatim")

	require.NoError(t, m.ClearSession())
	assert.False(t, m.IsLoggedIn())
	assert.Nil(t, m.CurrentIdentity())
}

func TestManager_StoreOverwrites(t *testing.T) {
	m := NewManager(keychain.NewMemory())
	require.NoError(t, m.StoreSession("first"))
	require.NoError(t, m.StoreSession("second"))

	tok, err := m.Token()
	require.NoError(t, err)
	assert.Equal(t, "second", tok)
}

func TestManager_PresenceOnly(t *testing.T) {
	m := NewManager(keychain.NewMemory())

	// Malformed tokens still count as logged in but yield no identity.
	require.NoError(t, m.StoreSession("not-a-token"))
	assert.True(t, m.IsLoggedIn())
	assert.Nil(t, m.CurrentIdentity())

	// An expired token is still a present token.
	expired := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256"}`)) + "." +
		base64.RawURLEncoding.EncodeToString([]byte(`{"sub":"1","exp":1}`)) + ".sig"
	require.NoError(t, m.StoreSession(expired))
	assert.True(t, m.IsLoggedIn())
	require.NotNil(t, m.CurrentIdentity())
}

func TestManager_StoreFailureDegrades(t *testing.T) {
	m := NewManager(failingStore{})

	assert.Error(t, m.StoreSession("x"))
	assert.Error(t, m.ClearSession())
	assert.False(t, m.IsLoggedIn())
	assert.NotPanics(t, func() { assert.Nil(t, m.CurrentIdentity()) })
}

func TestManager_Require(t *testing.T) {
	m := NewManager(keychain.NewMemory())

	err := m.Require("eventhub events mine")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.True(t, apperrors.Is(err, apperrors.NotAuthenticated))
	assert.Equal(t, "eventhub events mine", CallbackOf(err))

	require.NoError(t, m.StoreSession("Bearer xyz"))
	assert.NoError(t, m.Require("eventhub events mine"))
}
