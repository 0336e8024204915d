//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Endpoint string
	Token    string
	GridPath string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Endpoint: os.Getenv("GRID_ENDPOINT"),
		Token:    os.Getenv("GRID_TOKEN"),
		GridPath: getGridPath(),
		Verbose:  os.Getenv("GRID_VERBOSE") == "true",
	}
}

// getGridPath determines the path to the grid binary
func getGridPath() string {
	if path := os.Getenv("GRID_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../grid",
		"./grid",
		"../grid",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "grid" // Fallback to PATH
}

// SkipIfMissingConfig skips the test when the environment is not configured
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if c.Endpoint == "" || c.Token == "" {
		t.Skip("GRID_ENDPOINT and GRID_TOKEN must be set for integration tests")
	}
}

// CommandRunner executes grid commands against the configured API
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a runner bound to the test
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes the grid binary with the given arguments plus the api and
// token flags from the environment, returning stdout, stderr and any error
func (r *CommandRunner) Run(args ...string) (string, string, error) {
	fullArgs := append([]string{}, args...)
	fullArgs = append(fullArgs, "--api", r.config.Endpoint, "--token", r.config.Token)

	cmd := exec.Command(r.config.GridPath, fullArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if r.config.Verbose {
		r.t.Logf("running: grid %v", args)
	}

	err := cmd.Run()

	return stdout.String(), stderr.String(), err
}

// CleanupResource deletes a resource, ignoring failures
func (r *CommandRunner) CleanupResource(resource, id string) {
	_, _, _ = r.Run(resource, "delete", id, "--force")
}

// GenerateTestName returns a unique name for test resources
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// AssertJSONOutput fails the test when the output is not valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	var parsed interface{}
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("expected valid JSON output, got error %v:\n%s", err, output)
	}
}

// ExtractJSONField unmarshals output and returns a top-level string field
func ExtractJSONField(t *testing.T, output, field string) string {
	t.Helper()

	var parsed map[string]interface{}
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("expected JSON object, got error %v:\n%s", err, output)
	}

	value, _ := parsed[field].(string)

	return value
}
