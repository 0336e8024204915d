package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/peoplegrid/gridapi/internal/constants"
	"github.com/peoplegrid/gridapi/pkg/gridapi"
)

// Common static errors used throughout the commands package.
var (
	ErrUnknownConfigKey           = errors.New("unknown configuration key")
	ErrAPIConfigNotFoundForDomain = errors.New("no API configuration found for domain")
	ErrTokenRequired              = errors.New("token is required")
	ErrDepartmentNameRequired     = errors.New("department name is required")
	ErrInvalidDateFormat          = errors.New("invalid date, expected YYYY-MM-DD")
)

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// renderOutput dispatches to the renderer matching the configured output
// format. The table renderer is supplied by the caller.
func renderOutput(data interface{}, renderTable func() error) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return renderJSON(data)
	case constants.FormatYAML:
		return renderYAML(data)
	default:
		return renderTable()
	}
}

// listLimitOptions builds list options from the standard --limit and --cursor
// flags shared by every list command.
func listLimitOptions(limit int, cursor string) *gridapi.ListOptions {
	opts := gridapi.NewListOptions()
	if limit > constants.MaxPageSize {
		limit = constants.MaxPageSize
	}

	if limit > 0 {
		opts.Limit = limit
	}

	if cursor != "" {
		opts.Cursor = cursor
	}

	return opts
}

// formatTimePtr renders an optional timestamp for table output.
func formatTimePtr(t *time.Time) string {
	if t == nil {
		return constants.NotAvailable
	}

	return t.Format(time.RFC3339)
}

// formatStringPtr renders an optional string for table output.
func formatStringPtr(s *string) string {
	if s == nil {
		return constants.NotAvailable
	}

	return *s
}

// formatBool renders a boolean for table output.
func formatBool(value bool) string {
	return strconv.FormatBool(value)
}

// printPageFooter prints cursor information after a table listing so the user
// can continue with --cursor.
func printPageFooter[T any](resp *gridapi.ListResponse[T]) {
	if resp.TotalCount != nil {
		_, _ = fmt.Fprintf(os.Stdout, "\nShowing %d of %d\n", len(resp.Results), *resp.TotalCount)
	}

	if resp.HasMore && resp.NextCursor != nil {
		_, _ = fmt.Fprintf(os.Stdout, "More results available. Continue with --cursor %s\n", *resp.NextCursor)
	}
}
