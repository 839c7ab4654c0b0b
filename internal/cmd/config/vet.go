package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/magicappdev/cli/internal/cmdtypes"
	"github.com/magicappdev/cli/internal/config"
	oerrors "github.com/magicappdev/cli/internal/errors"
	"github.com/magicappdev/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the configuration file",
		Long: `Validate the magicappdev configuration file.

The command validates the configuration file at ~/.magicappdev/config.yaml by
default. Use --config flag to specify a different location. Environment
variables are applied before validation.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	path, err := config.ExpandPath(cfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.FileExists(path)
	if err != nil {
		return fmt.Errorf("checking config file: %w", err)
	}
	if !exists {
		return &oerrors.ExitError{
			Code: oerrors.ExitNotFound,
			Err:  oerrors.NewNotFoundError("config file not found", path, "Run 'magicappdev config init' to create one."),
		}
	}

	loaded, err := config.NewLoader().Load(path)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), path, "", ""),
		}
	}

	if err := config.Validate(loaded); err != nil {
		var verrs config.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validating config: %w", err)
		}

		stderr := c.ErrOrStderr()
		fmt.Fprintln(stderr, "Error: config validation failed")
		fmt.Fprintf(stderr, "  File: %s\n\n", path)
		for _, e := range verrs {
			fmt.Fprintf(stderr, "  %s: %s\n", e.Field, e.Message)
		}
		return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+path))
	return nil
}
