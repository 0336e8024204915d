package constants

import "errors"

// API and configuration errors.
var (
	ErrNoAPIsConfigured  = errors.New("no APIs configured, use 'grid apis add' to add one")
	ErrNoDomainForAPI    = errors.New("could not determine API domain")
	ErrAPIConfigNotFound = errors.New("API configuration not found")
	ErrNotAuthenticated  = errors.New("not authenticated. Use 'grid login' to authenticate first")
)
