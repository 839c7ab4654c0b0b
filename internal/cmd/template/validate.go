package template

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magicappdev/cli/internal/cmdtypes"
	oerrors "github.com/magicappdev/cli/internal/errors"
	"github.com/magicappdev/cli/internal/manifest"
	"github.com/magicappdev/cli/internal/output"
	"github.com/magicappdev/cli/internal/version"
)

// NewValidateCmd creates the template validate command.
func NewValidateCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dir>",
		Short: "Validate a template directory",
		Long: `Validate a template directory without installing it.

The directory must contain a template.yaml manifest. The manifest is checked
against the manifest schema, every file source is resolved and the resulting
template is checked for well-formed paths, conditions and variables.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runValidate(c, args[0])
		},
	}
}

func runValidate(c *cobra.Command, dir string) error {
	tmpl, err := manifest.LoadFile(dir, version.Version)
	if err != nil {
		return manifestError(err, dir)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf(
		"Template %s is valid (%d files, %d variables)",
		output.StyleNoun.Render(tmpl.Slug), len(tmpl.Files), len(tmpl.Variables))))
	return nil
}

// manifestError maps a manifest load failure to an ExitError.
func manifestError(err error, dir string) error {
	if errors.Is(err, oerrors.ErrNotFound) {
		return &oerrors.ExitError{Code: oerrors.ExitNotFound, Err: err}
	}
	return &oerrors.ExitError{
		Code: oerrors.ExitCodeFromError(err),
		Err: &oerrors.DetailError{
			Type:     "invalid template",
			Message:  err.Error(),
			Location: dir,
			Cause:    err,
		},
	}
}
