package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplegrid/gridapi/internal/auth"
)

func TestStaticTokenManagerGetToken(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("test-token")

	token, err := manager.GetToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "test-token", token)
}

func TestStaticTokenManagerNoToken(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("")

	token, err := manager.GetToken(context.Background())

	require.ErrorIs(t, err, auth.ErrNoTokenConfigured)
	assert.Empty(t, token)
}

func TestStaticTokenManagerSetToken(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("old-token")
	manager.SetToken("new-token", time.Time{})

	token, err := manager.GetToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}

func TestStaticTokenManagerExpiredToken(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("")
	manager.SetToken("test-token", time.Now().Add(-time.Minute))

	token, err := manager.GetToken(context.Background())

	require.ErrorIs(t, err, auth.ErrTokenExpired)
	assert.Empty(t, token)
}

func TestStaticTokenManagerTokenWithoutExpiryNeverExpires(t *testing.T) {
	t.Parallel()

	manager := auth.NewStaticTokenManager("")
	manager.SetToken("test-token", time.Time{})

	token, err := manager.GetToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "test-token", token)
}

type recordingPersister struct {
	apiDomain string
	token     string
	expiresAt time.Time
	calls     int
	err       error
}

func (p *recordingPersister) UpdateAPIToken(apiDomain, token string, expiresAt time.Time) error {
	p.apiDomain = apiDomain
	p.token = token
	p.expiresAt = expiresAt
	p.calls++

	return p.err
}

func TestConfigTokenManagerDelegatesGetToken(t *testing.T) {
	t.Parallel()

	manager := auth.NewConfigTokenManager(auth.NewStaticTokenManager("test-token"), nil, "api.example.com")

	token, err := manager.GetToken(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "test-token", token)
}

func TestConfigTokenManagerWrapsDelegateError(t *testing.T) {
	t.Parallel()

	manager := auth.NewConfigTokenManager(auth.NewStaticTokenManager(""), nil, "api.example.com")

	_, err := manager.GetToken(context.Background())

	require.ErrorIs(t, err, auth.ErrNoTokenConfigured)
}

func TestConfigTokenManagerPersistsOnSetToken(t *testing.T) {
	t.Parallel()

	persister := &recordingPersister{}
	delegate := auth.NewStaticTokenManager("old-token")
	manager := auth.NewConfigTokenManager(delegate, persister, "api.example.com")

	expiresAt := time.Now().Add(time.Hour)
	manager.SetToken("new-token", expiresAt)

	assert.Equal(t, 1, persister.calls)
	assert.Equal(t, "api.example.com", persister.apiDomain)
	assert.Equal(t, "new-token", persister.token)
	assert.Equal(t, expiresAt, persister.expiresAt)

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}

func TestConfigTokenManagerPersistFailureKeepsToken(t *testing.T) {
	t.Parallel()

	persister := &recordingPersister{err: assert.AnError}
	manager := auth.NewConfigTokenManager(auth.NewStaticTokenManager(""), persister, "api.example.com")

	manager.SetToken("new-token", time.Time{})

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}

func TestConfigTokenManagerNilPersister(t *testing.T) {
	t.Parallel()

	manager := auth.NewConfigTokenManager(auth.NewStaticTokenManager(""), nil, "api.example.com")

	manager.SetToken("new-token", time.Time{})

	token, err := manager.GetToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}

func TestTokenStore(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	assert.Nil(t, store.Get())

	store.Set(&auth.Token{AccessToken: "test-token"})
	require.NotNil(t, store.Get())
	assert.Equal(t, "test-token", store.Get().AccessToken)
}
