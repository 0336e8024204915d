package commands

import (
	"fmt"
	"sync"
	"time"
)

// ConfigPersister persists refreshed tokens back to the CLI configuration
// file. A mutex serializes writes so concurrent refreshes cannot corrupt the
// file.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateAPIToken updates the stored token for the given API domain.
func (p *ConfigPersister) UpdateAPIToken(apiDomain, token string, expiresAt time.Time) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()

	apiConfig, exists := config.APIs[apiDomain]
	if !exists {
		return fmt.Errorf("%w: '%s'", ErrAPIConfigNotFoundForDomain, apiDomain)
	}

	apiConfig.Token = token

	if !expiresAt.IsZero() {
		apiConfig.TokenExpiresAt = &expiresAt
	}

	now := time.Now()
	apiConfig.LastRefreshed = &now

	err := saveConfigStruct(config)
	if err != nil {
		return fmt.Errorf("failed to save updated token: %w", err)
	}

	return nil
}
