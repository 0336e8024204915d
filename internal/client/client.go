// Package client implements the gridapi.Client interface over the HTTP
// transport.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/peoplegrid/gridapi/internal/auth"
	"github.com/peoplegrid/gridapi/internal/constants"
	"github.com/peoplegrid/gridapi/internal/http"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// Static errors for err113 compliance.
var (
	ErrAPIEndpointRequired      = errors.New("API endpoint is required")
	ErrNoTokenManagerConfigured = errors.New("no token manager configured")
)

// Client implements the gridapi.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       gridapi.Logger

	// Resource clients
	employees     gridapi.EmployeesClient
	departments   gridapi.DepartmentsClient
	teams         gridapi.TeamsClient
	compensations gridapi.CompensationsClient
	leaveRequests gridapi.LeaveRequestsClient
	timeEntries   gridapi.TimeEntriesClient
	payrollRuns   gridapi.PayrollRunsClient
}

// createTokenManager creates the token manager from config, or nil when no
// credentials are configured.
func createTokenManager(config *gridapi.Config) auth.TokenManager {
	if config.APIToken != "" {
		return auth.NewStaticTokenManager(config.APIToken)
	}

	return nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *gridapi.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Cache != nil && config.Cache.Type != gridapi.CacheTypeNone {
		cache, err := gridapi.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating cache backend: %w", err)
		}

		ttl := gridapi.DefaultCacheOptions().DefaultTTL
		if config.Cache.Options != nil && config.Cache.Options.DefaultTTL > 0 {
			ttl = config.Cache.Options.DefaultTTL
		}

		httpOpts = append(httpOpts, http.WithCache(cache, ttl))
	}

	return httpOpts, nil
}

// New creates a new Grid API client.
func New(config *gridapi.Config) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	tokenManager := createTokenManager(config)

	return NewWithTokenManager(config, tokenManager)
}

// NewWithTokenManager creates a new Grid API client with a custom token
// manager.
func NewWithTokenManager(config *gridapi.Config, tokenManager auth.TokenManager) (*Client, error) {
	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(config.APIEndpoint, tokenManager, httpOpts...)

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.APIEndpoint,
		logger:       config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// GetTokenManager returns the token manager for this client.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// GetToken returns the current access token from the token manager.
func (c *Client) GetToken(ctx context.Context) (string, error) {
	if c.tokenManager == nil {
		return "", ErrNoTokenManagerConfigured
	}

	token, err := c.tokenManager.GetToken(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get token: %w", err)
	}

	return token, nil
}

// Resource client accessors

// Employees implements gridapi.Client.Employees.
func (c *Client) Employees() gridapi.EmployeesClient {
	return c.employees
}

// Departments implements gridapi.Client.Departments.
func (c *Client) Departments() gridapi.DepartmentsClient {
	return c.departments
}

// Teams implements gridapi.Client.Teams.
func (c *Client) Teams() gridapi.TeamsClient {
	return c.teams
}

// Compensations implements gridapi.Client.Compensations.
func (c *Client) Compensations() gridapi.CompensationsClient {
	return c.compensations
}

// LeaveRequests implements gridapi.Client.LeaveRequests.
func (c *Client) LeaveRequests() gridapi.LeaveRequestsClient {
	return c.leaveRequests
}

// TimeEntries implements gridapi.Client.TimeEntries.
func (c *Client) TimeEntries() gridapi.TimeEntriesClient {
	return c.timeEntries
}

// PayrollRuns implements gridapi.Client.PayrollRuns.
func (c *Client) PayrollRuns() gridapi.PayrollRunsClient {
	return c.payrollRuns
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.employees = NewEmployeesClient(c.httpClient)
	c.departments = NewDepartmentsClient(c.httpClient)
	c.teams = NewTeamsClient(c.httpClient)
	c.compensations = NewCompensationsClient(c.httpClient)
	c.leaveRequests = NewLeaveRequestsClient(c.httpClient)
	c.timeEntries = NewTimeEntriesClient(c.httpClient)
	c.payrollRuns = NewPayrollRunsClient(c.httpClient)
}

// loggerAdapter adapts gridapi.Logger to http.Logger.
type loggerAdapter struct {
	logger gridapi.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
