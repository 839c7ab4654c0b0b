// Package main is the entry point for the magicappdev CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/magicappdev/cli/internal/cmd"
	oerrors "github.com/magicappdev/cli/internal/errors"
	"github.com/magicappdev/cli/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *oerrors.ExitError
		if errors.As(err, &exitErr) {
			if !exitErr.Printed {
				fmt.Fprintln(os.Stderr, err)
			}
			exit(exitErr.Code)
		}
		// Flag and argument errors from cobra.
		fmt.Fprintln(os.Stderr, err)
		exit(oerrors.ExitCodeFromError(err))
	}
}

func exit(code int) {
	output.Debug("exiting", "code", code, "reason", oerrors.ExitCodeName(code))
	os.Exit(code)
}
