package commands

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/peoplegrid/gridapi/internal/client"
	"github.com/peoplegrid/gridapi/internal/constants"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		token       string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with a Grid API",
		Long:  "Store an API token for a Grid API endpoint after verifying it works",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(apiEndpoint, token)
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint or configured API name")
	cmd.Flags().StringVarP(&token, "token", "t", "", "API token (prompted when omitted)")

	return cmd
}

func runLogin(apiEndpoint, token string) error {
	endpoint, err := resolveLoginEndpoint(apiEndpoint)
	if err != nil {
		return err
	}

	if token == "" {
		token, err = promptForToken()
		if err != nil {
			return err
		}
	}

	if token == "" {
		return ErrTokenRequired
	}

	err = verifyToken(endpoint, token)
	if err != nil {
		return fmt.Errorf("token verification failed: %w", err)
	}

	domain := extractDomainFromEndpoint(endpoint)

	config := loadConfig()
	if config.APIs == nil {
		config.APIs = make(map[string]*APIConfig)
	}

	apiConfig, exists := config.APIs[domain]
	if !exists {
		apiConfig = &APIConfig{}
		config.APIs[domain] = apiConfig
	}

	apiConfig.Endpoint = endpoint
	apiConfig.Token = token
	config.CurrentAPI = domain

	err = saveConfigStruct(config)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Authenticated with %s\n", endpoint)

	return nil
}

// resolveLoginEndpoint picks the endpoint to authenticate against: the --api
// flag when given, otherwise the current API from the configuration.
func resolveLoginEndpoint(apiFlag string) (string, error) {
	if apiFlag != "" {
		return normalizeEndpointURL(ResolveAPIEndpoint(apiFlag)), nil
	}

	apiConfig, err := getCurrentAPIConfig()
	if err != nil {
		return "", fmt.Errorf("no API endpoint specified: %w", err)
	}

	return apiConfig.Endpoint, nil
}

func promptForToken() (string, error) {
	fmt.Fprint(os.Stdout, "API token: ")

	tokenBytes, err := term.ReadPassword(int(syscall.Stdin))

	fmt.Fprintln(os.Stdout)

	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return string(tokenBytes), nil
}

// verifyToken makes a minimal authenticated request to confirm the token is
// accepted before it is stored.
func verifyToken(endpoint, token string) error {
	gridConfig := &gridapi.Config{
		APIEndpoint: endpoint,
		APIToken:    token,
		RetryMax:    constants.DefaultRetryMax,
	}

	apiClient, err := client.New(gridConfig)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	opts := gridapi.NewListOptions().WithLimit(1)

	_, err = apiClient.Employees().List(context.Background(), opts)
	if err != nil {
		return err
	}

	return nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	var apiFlag string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear stored credentials",
		Long:  "Remove the stored API token for an API endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			apiConfig, err := getAPIConfigByFlag(apiFlag)
			if err != nil {
				return err
			}

			domain, err := findAPIDomain(apiConfig)
			if err != nil {
				return err
			}

			config := loadConfig()

			stored, exists := config.APIs[domain]
			if !exists {
				return fmt.Errorf("%w: '%s'", constants.ErrAPIConfigNotFound, domain)
			}

			stored.Token = ""
			stored.TokenExpiresAt = nil
			stored.LastRefreshed = nil

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Logged out of %s\n", stored.Endpoint)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiFlag, "api", "a", "", "API endpoint or configured API name")

	return cmd
}
