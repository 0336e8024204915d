package commands

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  "Display the grid CLI version, commit, and build date",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := struct {
				Version   string `json:"version"    yaml:"version"`
				Commit    string `json:"commit"     yaml:"commit"`
				BuildDate string `json:"build_date" yaml:"build_date"`
				GoVersion string `json:"go_version" yaml:"go_version"`
				Platform  string `json:"platform"   yaml:"platform"`
			}{
				Version:   version,
				Commit:    commit,
				BuildDate: date,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}

			return renderOutput(info, func() error {
				fmt.Fprintf(os.Stdout, "grid version %s\n", info.Version)
				fmt.Fprintf(os.Stdout, "  commit:     %s\n", info.Commit)
				fmt.Fprintf(os.Stdout, "  built:      %s\n", info.BuildDate)
				fmt.Fprintf(os.Stdout, "  go version: %s\n", info.GoVersion)
				fmt.Fprintf(os.Stdout, "  platform:   %s\n", info.Platform)

				return nil
			})
		},
	}
}
