// Package generate provides the generate, component, screen and app commands.
package generate

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magicappdev/cli/internal/cmdtypes"
	oerrors "github.com/magicappdev/cli/internal/errors"
	"github.com/magicappdev/cli/internal/generator"
	"github.com/magicappdev/cli/internal/output"
)

// options holds the flags shared by every generating command.
type options struct {
	dir       string
	sets      []string
	varsFile  string
	overwrite bool
	dryRun    bool
	diff      bool
	output    string
	template  string
}

func (o *options) addFlags(c *cobra.Command) {
	c.Flags().StringVarP(&o.dir, "dir", "d", ".", "Output directory")
	c.Flags().StringArrayVar(&o.sets, "set", nil, "Set a template variable (name=value, can be repeated)")
	c.Flags().StringVar(&o.varsFile, "vars", "", "YAML file of variable values")
	c.Flags().BoolVar(&o.overwrite, "overwrite", false, "Replace existing files (default: generate.overwrite from config)")
	c.Flags().BoolVar(&o.dryRun, "dry-run", false, "Show what would be written without writing")
	c.Flags().BoolVar(&o.diff, "diff", false, "Print a unified diff of every file that would be written (implies --dry-run)")
	c.Flags().StringVarP(&o.output, "output", "o", "text",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))
}

// generateFunc runs one generation for an already resolved template.
type generateFunc func(g *generator.Generator, tmpl generator.Template, opts generator.GenerateOptions) (*generator.GenerateResult, error)

// request is a fully described generation.
type request struct {
	slug     string
	category generator.Category // empty accepts any
	outDir   string             // directory files land in, for display
	extra    generator.Variables
	run      generateFunc
}

// NewGenerateCmd creates the generate command.
func NewGenerateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var o options

	c := &cobra.Command{
		Use:   "generate <template>",
		Short: "Generate files from a template",
		Long: `Generate files from a template.

The template is looked up by id or slug among the built-in templates, the
templates directory and the pull cache. Variables are read from --vars first,
then --set; declared defaults fill the rest.

Examples:
  # Generate a React component into ./src/components
  magicappdev generate react-component -d src/components --set name=UserCard

  # Preview the files without writing them
  magicappdev generate next-app --set name=shop --dry-run

  # Show what would change in existing files
  magicappdev generate react-hook --set name=useAuth --overwrite --diff`,
		Aliases: []string{"gen", "g"},
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return run(c, cfg, &o, request{
				slug:   args[0],
				outDir: o.dir,
				run: func(g *generator.Generator, tmpl generator.Template, opts generator.GenerateOptions) (*generator.GenerateResult, error) {
					return g.Generate(tmpl, opts)
				},
			})
		},
	}

	o.addFlags(c)
	return c
}

func run(c *cobra.Command, cfg *cmdtypes.GlobalConfig, o *options, req request) error {
	format, err := output.ParseFormat(o.output)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), "", "output", ""),
		}
	}

	overwrite := o.overwrite
	if !c.Flags().Changed("overwrite") && cfg.Config != nil {
		overwrite = cfg.Config.Generate.Overwrite
	}
	dryRun := o.dryRun || o.diff

	reg, err := cfg.Registry()
	if err != nil {
		return cmdtypes.ExitErrorFrom(err)
	}
	tmpl, err := reg.Lookup(req.slug)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitNotFound,
			Err: &oerrors.DetailError{
				Type:    "not found",
				Message: err.Error(),
				Hint:    "Run 'magicappdev template list' to see available templates.",
				Cause:   err,
			},
		}
	}
	if req.category != "" && tmpl.Category != req.category {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: oerrors.NewValidationError(
				fmt.Sprintf("template %q is a %s template, not a %s template", tmpl.Slug, tmpl.Category, req.category),
				"", "template",
				fmt.Sprintf("Run 'magicappdev template list --category %s' to see matching templates.", req.category)),
		}
	}

	vars, err := collectVariables(o.varsFile, o.sets, tmpl)
	if err != nil {
		return cmdtypes.ExitErrorFrom(err)
	}

	output.Debug("generating",
		"template", tmpl.Slug,
		"dir", req.outDir,
		"overwrite", overwrite,
		"dryRun", dryRun,
	)

	res, err := req.run(generator.NewGenerator(), tmpl, generator.GenerateOptions{
		OutputDir: o.dir,
		Variables: vars,
		Overwrite: overwrite,
		DryRun:    dryRun,
	})
	if err != nil {
		return generationError(err, tmpl)
	}

	w := c.OutOrStdout()
	if format != output.FormatText {
		return output.Encode(w, format, res)
	}

	if o.diff {
		if err := printDiffs(w, res, req.outDir); err != nil {
			return err
		}
	}

	display := vars
	if len(req.extra) > 0 {
		display = make(generator.Variables, len(vars)+len(req.extra))
		maps.Copy(display, vars)
		maps.Copy(display, req.extra)
	}
	printResult(w, tmpl, display, res, req.outDir, dryRun)
	return nil
}

// generationError turns a generator failure into an ExitError with a hint.
func generationError(err error, tmpl generator.Template) error {
	var hint string
	switch {
	case errors.Is(err, generator.ErrInvalidVariables):
		hint = fmt.Sprintf("Pass values with --set name=value or --vars file.yaml. Run 'magicappdev template show %s' to list variables.", tmpl.Slug)
	case errors.Is(err, generator.ErrPathEscape):
		hint = "Generated paths must stay inside the output directory."
	}

	return &oerrors.ExitError{
		Code: oerrors.ExitCodeFromError(err),
		Err: &oerrors.DetailError{
			Type:    "generation failed",
			Message: err.Error(),
			Context: map[string]string{"Template": tmpl.Slug},
			Hint:    hint,
			Cause:   err,
		},
	}
}
