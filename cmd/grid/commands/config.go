package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/peoplegrid/gridapi/internal/auth"
	"github.com/peoplegrid/gridapi/internal/client"
	"github.com/peoplegrid/gridapi/internal/constants"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// Config represents the CLI configuration.
type Config struct {
	// Multi-API configuration
	APIs       map[string]*APIConfig `json:"apis,omitempty"        yaml:"apis,omitempty"`
	CurrentAPI string                `json:"current_api,omitempty" yaml:"current_api,omitempty"`

	// Global settings
	Output string `json:"output" yaml:"output"`
}

// APIConfig represents configuration for a single Grid API endpoint.
type APIConfig struct {
	Endpoint       string     `json:"endpoint"                   yaml:"endpoint"`
	Token          string     `json:"token,omitempty"            yaml:"token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty" yaml:"token_expires_at,omitempty"`
	LastRefreshed  *time.Time `json:"last_refreshed,omitempty"   yaml:"last_refreshed,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage grid CLI configuration including API endpoints and settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			output := viper.GetString("output")
			switch output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")

				return encoder.Encode(config)
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(os.Stdout)

				return encoder.Encode(config)
			default:
				return displayConfigTable(config)
			}
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a global configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			config := loadConfig()

			switch key {
			case "output":
				config.Output = value
			default:
				return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
			}

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Set %s to %s\n", key, value)

			return nil
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove all configuration settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile := viper.ConfigFileUsed()
			if configFile == "" {
				home, _ := os.UserHomeDir()
				configFile = filepath.Join(home, ".grid", "config.yml")
			}

			err := os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			fmt.Fprintln(os.Stdout, "Cleared all configuration")

			return nil
		},
	}
}

func loadConfig() *Config {
	config := &Config{
		Output:     viper.GetString("output"),
		CurrentAPI: viper.GetString("current_api"),
		APIs:       make(map[string]*APIConfig),
	}

	apisRaw := viper.GetStringMap("apis")
	for domain, apiRaw := range apisRaw {
		if apiMap, ok := apiRaw.(map[string]interface{}); ok {
			config.APIs[domain] = parseAPIConfig(apiMap)
		}
	}

	return config
}

// parseAPIConfig parses API configuration from a map.
func parseAPIConfig(apiMap map[string]interface{}) *APIConfig {
	apiConfig := &APIConfig{}

	if endpoint, ok := apiMap["endpoint"].(string); ok {
		apiConfig.Endpoint = endpoint
	}

	if token, ok := apiMap["token"].(string); ok {
		apiConfig.Token = token
	}

	if expiresAtStr, ok := apiMap["token_expires_at"].(string); ok && expiresAtStr != "" {
		t, err := time.Parse(time.RFC3339, expiresAtStr)
		if err == nil {
			apiConfig.TokenExpiresAt = &t
		}
	}

	if lastRefreshedStr, ok := apiMap["last_refreshed"].(string); ok && lastRefreshedStr != "" {
		t, err := time.Parse(time.RFC3339, lastRefreshedStr)
		if err == nil {
			apiConfig.LastRefreshed = &t
		}
	}

	return apiConfig
}

func saveConfigStruct(config *Config) error {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get user home directory: %w", err)
		}

		configDir := filepath.Join(home, ".grid")

		err = os.MkdirAll(configDir, constants.ConfigDirPerm)
		if err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		configFile = filepath.Join(configDir, "config.yml")
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// normalizeEndpointURL ensures the endpoint has a scheme and no trailing
// slash.
func normalizeEndpointURL(endpoint string) string {
	endpoint = strings.TrimSuffix(endpoint, "/")

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// extractDomainFromEndpoint extracts the domain portion from an API endpoint.
func extractDomainFromEndpoint(endpoint string) string {
	domain := strings.TrimPrefix(endpoint, "https://")
	domain = strings.TrimPrefix(domain, "http://")

	if idx := strings.Index(domain, "/"); idx != -1 {
		domain = domain[:idx]
	}

	if idx := strings.Index(domain, ":"); idx != -1 {
		domain = domain[:idx]
	}

	return domain
}

// getCurrentAPIConfig returns the configuration for the currently targeted API.
func getCurrentAPIConfig() (*APIConfig, error) {
	config := loadConfig()

	if config.CurrentAPI == "" {
		if len(config.APIs) == 0 {
			return nil, constants.ErrNoAPIsConfigured
		}

		for domain := range config.APIs {
			config.CurrentAPI = domain

			break
		}
	}

	apiConfig, exists := config.APIs[config.CurrentAPI]
	if !exists {
		return nil, fmt.Errorf("%w: '%s'", constants.ErrAPIConfigNotFound, config.CurrentAPI)
	}

	return apiConfig, nil
}

// getAPIConfigByFlag returns API config based on command line flag or current API.
func getAPIConfigByFlag(apiFlag string) (*APIConfig, error) {
	if apiFlag == "" {
		return getCurrentAPIConfig()
	}

	config := loadConfig()

	if apiConfig, exists := config.APIs[apiFlag]; exists {
		return apiConfig, nil
	}

	resolvedEndpoint := ResolveAPIEndpoint(apiFlag)
	for _, apiConfig := range config.APIs {
		if apiConfig.Endpoint == resolvedEndpoint {
			return apiConfig, nil
		}
	}

	return nil, fmt.Errorf("%w: '%s', use 'grid apis list' to see available APIs", constants.ErrAPIConfigNotFound, apiFlag)
}

// ResolveAPIEndpoint resolves a short name to its endpoint, or returns the
// input unchanged when it is already a URL.
func ResolveAPIEndpoint(apiNameOrEndpoint string) string {
	config := loadConfig()

	if apiConfig, exists := config.APIs[apiNameOrEndpoint]; exists {
		return apiConfig.Endpoint
	}

	return apiNameOrEndpoint
}

// findAPIDomain returns the config key whose endpoint matches the given API
// config.
func findAPIDomain(apiConfig *APIConfig) (string, error) {
	config := loadConfig()

	for domain, cfg := range config.APIs {
		if cfg.Endpoint == apiConfig.Endpoint {
			return domain, nil
		}
	}

	return "", fmt.Errorf("%w for endpoint %s", constants.ErrNoDomainForAPI, apiConfig.Endpoint)
}

// CreateClientWithAPI creates a Grid API client using the specified API or
// the current API. Tokens set at runtime are persisted back to the config
// file via the config token manager.
func CreateClientWithAPI(apiFlag string) (gridapi.Client, error) {
	apiConfig, err := getAPIConfigByFlag(apiFlag)
	if err != nil {
		return nil, err
	}

	if apiConfig.Token == "" {
		return nil, fmt.Errorf("%w for %s", constants.ErrNotAuthenticated, apiConfig.Endpoint)
	}

	apiDomain, err := findAPIDomain(apiConfig)
	if err != nil {
		return nil, err
	}

	gridConfig := &gridapi.Config{
		APIEndpoint: apiConfig.Endpoint,
		RetryMax:    constants.DefaultRetryMax,
		Debug:       viper.GetBool("verbose"),
	}

	staticManager := auth.NewStaticTokenManager(apiConfig.Token)
	tokenManager := auth.NewConfigTokenManager(staticManager, NewConfigPersister(), apiDomain)

	apiClient, err := client.NewWithTokenManager(gridConfig, tokenManager)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return apiClient, nil
}

// displayConfigTable displays configuration in a table format.
func displayConfigTable(config *Config) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append([]string{"Output", config.Output})

	if config.CurrentAPI != "" {
		_ = table.Append([]string{"Current API", config.CurrentAPI})
	}

	_, _ = os.Stdout.WriteString("Global Configuration:\n")

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if len(config.APIs) == 0 {
		_, _ = os.Stdout.WriteString("\nNo APIs configured. Use 'grid apis add' to add one.\n")

		return nil
	}

	_, _ = os.Stdout.WriteString("\nConfigured APIs:\n")

	apiTable := tablewriter.NewWriter(os.Stdout)
	apiTable.Header("Domain", "Endpoint", "Token", "Token Expires", "Current")

	for domain, apiConfig := range config.APIs {
		token := constants.NotAvailable
		if apiConfig.Token != "" {
			token = constants.MaskedSecret
		}

		current := ""
		if domain == config.CurrentAPI {
			current = "yes"
		}

		_ = apiTable.Append([]string{domain, apiConfig.Endpoint, token, formatTimePtr(apiConfig.TokenExpiresAt), current})
	}

	err = apiTable.Render()
	if err != nil {
		return fmt.Errorf("failed to render API config table: %w", err)
	}

	return nil
}
