package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magicappdev/cli/internal/cmdtypes"
	"github.com/magicappdev/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show magicappdev version information.

Displays:
  - CLI version, commit, and build date
  - Template engine and manifest schema engine versions`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(c *cobra.Command, _ []string) error {
	info := version.Get()
	w := c.OutOrStdout()

	fmt.Fprintf(w, "magicappdev version %s\n", info.Version)
	fmt.Fprintf(w, "  Commit:    %s\n", info.GitCommit)
	fmt.Fprintf(w, "  Built:     %s\n", info.BuildDate)
	fmt.Fprintf(w, "  Go:        %s\n", info.GoVersion)
	fmt.Fprintf(w, "  Templates: raymond %s\n", info.TemplateEngine)
	fmt.Fprintf(w, "  Schema:    cue %s\n", info.SchemaEngine)

	return nil
}
