package template

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/otiai10/copy"
	"github.com/spf13/cobra"

	"github.com/magicappdev/cli/internal/cmdtypes"
	oerrors "github.com/magicappdev/cli/internal/errors"
	"github.com/magicappdev/cli/internal/generator"
	"github.com/magicappdev/cli/internal/manifest"
	"github.com/magicappdev/cli/internal/output"
	"github.com/magicappdev/cli/internal/version"
)

// NewInstallCmd creates the template install command.
func NewInstallCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "install <dir>",
		Short: "Install a local template directory",
		Long: `Validate a template directory and copy it into the templates directory
(~/.magicappdev/templates/<slug>), making it available to generate.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runInstall(c, cfg, args[0], force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Replace an installed template with the same slug")

	return c
}

func runInstall(c *cobra.Command, cfg *cmdtypes.GlobalConfig, src string, force bool) error {
	tmpl, err := manifest.LoadFile(src, version.Version)
	if err != nil {
		return manifestError(err, src)
	}

	isBuiltin := func(b generator.Template) bool {
		return b.ID == tmpl.ID || b.Slug == tmpl.Slug || b.ID == tmpl.Slug || b.Slug == tmpl.ID
	}
	if slices.ContainsFunc(generator.Builtin(), isBuiltin) {
		return &oerrors.ExitError{
			Code: oerrors.ExitConflict,
			Err: &oerrors.DetailError{
				Type:    "conflict",
				Message: fmt.Sprintf("template %q collides with a built-in template", tmpl.Slug),
				Hint:    "Change the id and slug in " + manifest.FileName + ".",
				Cause:   generator.ErrDuplicateTemplate,
			},
		}
	}

	if cfg.TemplatesDir == "" {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError("no templates directory configured", "", "templatesDir", "Pass --templates-dir or set templatesDir in the config file."),
		}
	}

	dest := filepath.Join(cfg.TemplatesDir, tmpl.Slug)
	inside, err := within(src, dest)
	if err != nil {
		return fmt.Errorf("resolving install paths: %w", err)
	}
	if inside {
		return &oerrors.ExitError{
			Code: oerrors.ExitConflict,
			Err: &oerrors.DetailError{
				Type:     "already installed",
				Message:  fmt.Sprintf("%s is the installed copy of %q", src, tmpl.Slug),
				Location: dest,
				Hint:     "Install from a directory outside the templates directory.",
				Cause:    oerrors.ErrConflict,
			},
		}
	}

	if _, err := os.Stat(dest); err == nil {
		if !force {
			return &oerrors.ExitError{
				Code: oerrors.ExitConflict,
				Err: &oerrors.DetailError{
					Type:     "already installed",
					Message:  fmt.Sprintf("template %q is already installed", tmpl.Slug),
					Location: dest,
					Hint:     "Use --force to replace it.",
					Cause:    oerrors.ErrConflict,
				},
			}
		}
		if err := os.RemoveAll(dest); err != nil {
			return fmt.Errorf("removing installed copy: %w", err)
		}
	}

	if err := copy.Copy(src, dest); err != nil {
		return fmt.Errorf("copying template: %w", err)
	}

	output.Debug("installed template", "slug", tmpl.Slug, "src", src, "dest", dest)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf(
		"Installed %s into %s", output.StyleNoun.Render(tmpl.Slug), dest)))
	return nil
}

// within reports whether path is dir or lies below it.
func within(path, dir string) (bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false, err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false, err
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false, nil
	}
	return rel == "." || filepath.IsLocal(rel), nil
}
