package auth

import (
	"context"
	"fmt"
	"os"
	"time"
)

// ConfigPersister defines the interface for persisting token changes back to
// a configuration file.
type ConfigPersister interface {
	UpdateAPIToken(apiDomain, token string, expiresAt time.Time) error
}

// ConfigTokenManager wraps a TokenManager and persists token updates to
// config, so a token set via SetToken (for example by a CLI login) survives
// the process.
type ConfigTokenManager struct {
	delegate        TokenManager
	configPersister ConfigPersister
	apiDomain       string
}

// NewConfigTokenManager creates a config-persisting token manager.
func NewConfigTokenManager(delegate TokenManager, configPersister ConfigPersister, apiDomain string) *ConfigTokenManager {
	return &ConfigTokenManager{
		delegate:        delegate,
		configPersister: configPersister,
		apiDomain:       apiDomain,
	}
}

// GetToken returns the current token from the delegate.
func (m *ConfigTokenManager) GetToken(ctx context.Context) (string, error) {
	token, err := m.delegate.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("getting token: %w", err)
	}

	return token, nil
}

// SetToken updates the delegate and persists the new token. Persistence
// failures are reported but do not fail the update.
func (m *ConfigTokenManager) SetToken(token string, expiresAt time.Time) {
	m.delegate.SetToken(token, expiresAt)

	if m.configPersister == nil {
		return
	}

	if err := m.configPersister.UpdateAPIToken(m.apiDomain, token, expiresAt); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to persist token: %v\n", err)
	}
}
