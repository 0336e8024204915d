// Package gridclient provides the main entry point for creating Grid API clients
package gridclient

import (
	"fmt"
	"strings"

	"github.com/peoplegrid/gridapi/internal/client"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// New creates a new Grid API client from the given configuration.
func New(config *gridapi.Config) (gridapi.Client, error) {
	if config == nil {
		return nil, gridapi.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, gridapi.ErrAPIEndpointRequired
	}

	config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a new client with an API endpoint and access token.
func NewWithToken(endpoint, token string) (gridapi.Client, error) {
	return New(&gridapi.Config{
		APIEndpoint: endpoint,
		APIToken:    token,
	})
}

// normalizeEndpoint trims a trailing slash and defaults the scheme to https.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
