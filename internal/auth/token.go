package auth

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Static errors for token management.
var (
	ErrNoTokenConfigured = errors.New("no API token configured")
	ErrTokenExpired      = errors.New("API token has expired")
)

// TokenManager provides Bearer tokens for API requests. Token acquisition is
// outside this library; managers only store and hand out tokens.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(token string, expiresAt time.Time)
}

// Token holds an access token and its optional expiry.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Expired reports whether the token is past its expiry. Tokens without an
// expiry never expire.
func (t *Token) Expired() bool {
	return !t.ExpiresAt.IsZero() && time.Now().After(t.ExpiresAt)
}

// TokenStore is a goroutine-safe holder for the current token.
type TokenStore struct {
	mu    sync.RWMutex
	token *Token
}

// NewTokenStore creates an empty token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// Get returns the current token, or nil when none is set.
func (s *TokenStore) Get() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token
}

// Set replaces the current token.
func (s *TokenStore) Set(token *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
}

// StaticTokenManager hands out a fixed token for the lifetime of the client.
type StaticTokenManager struct {
	store *TokenStore
}

// NewStaticTokenManager creates a token manager around a fixed token.
func NewStaticTokenManager(token string) *StaticTokenManager {
	store := NewTokenStore()
	if token != "" {
		store.Set(&Token{AccessToken: token})
	}

	return &StaticTokenManager{store: store}
}

// GetToken returns the stored token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	token := m.store.Get()
	if token == nil || token.AccessToken == "" {
		return "", ErrNoTokenConfigured
	}

	if token.Expired() {
		return "", ErrTokenExpired
	}

	return token.AccessToken, nil
}

// SetToken replaces the stored token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{AccessToken: token, ExpiresAt: expiresAt})
}
