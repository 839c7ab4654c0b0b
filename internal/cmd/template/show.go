package template

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magicappdev/cli/internal/cmdtypes"
	oerrors "github.com/magicappdev/cli/internal/errors"
	"github.com/magicappdev/cli/internal/generator"
	"github.com/magicappdev/cli/internal/output"
)

// NewShowCmd creates the template show command.
func NewShowCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "show <id|slug>",
		Short: "Show a template's variables and files",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runShow(c, cfg, args[0], format)
		},
	}

	c.Flags().StringVarP(&format, "output", "o", "text", fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runShow(c *cobra.Command, cfg *cmdtypes.GlobalConfig, key, format string) error {
	f, err := output.ParseFormat(format)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), "", "output", ""),
		}
	}

	reg, err := cfg.Registry()
	if err != nil {
		return cmdtypes.ExitErrorFrom(err)
	}
	tmpl, err := reg.Lookup(key)
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

	w := c.OutOrStdout()
	if f != output.FormatText {
		return output.Encode(w, f, tmpl)
	}

	printTemplate(w, tmpl)
	return nil
}

func printTemplate(w io.Writer, t generator.Template) {
	fmt.Fprintf(w, "%s %s\n", output.StyleNoun.Render(t.Name), output.StyleDim.Render(t.Version))
	if t.Description != "" {
		fmt.Fprintln(w, t.Description)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  ID:         %s\n", t.ID)
	fmt.Fprintf(w, "  Slug:       %s\n", t.Slug)
	fmt.Fprintf(w, "  Category:   %s\n", t.Category)
	if len(t.Frameworks) > 0 {
		fmt.Fprintf(w, "  Frameworks: %s\n", strings.Join(t.Frameworks, ", "))
	}
	if len(t.Tags) > 0 {
		fmt.Fprintf(w, "  Tags:       %s\n", strings.Join(t.Tags, ", "))
	}

	if len(t.Variables) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, output.StyleSummary.Render("Variables"))
		tbl := output.NewTable("NAME", "TYPE", "REQUIRED", "DEFAULT", "DESCRIPTION")
		for _, v := range t.Variables {
			typ := string(v.Type)
			if v.Type == generator.TypeSelect {
				typ = fmt.Sprintf("select (%s)", strings.Join(v.Options, "|"))
			}
			def := ""
			if v.Default != nil {
				def = fmt.Sprint(v.Default)
			}
			required := ""
			if v.Required {
				required = "yes"
			}
			tbl.Row(v.Name, typ, required, def, v.Description)
		}
		fmt.Fprintln(w, tbl.String())
		printPrompts(w, t.Variables)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleSummary.Render("Files"))
	for _, file := range t.Files {
		line := "  " + file.Path
		if file.Condition != "" {
			line += output.StyleDim.Render("  if " + file.Condition)
		}
		fmt.Fprintln(w, line)
	}

	printDeps(w, "Dependencies", t.Dependencies)
	printDeps(w, "Dev dependencies", t.DevDependencies)
}

func printPrompts(w io.Writer, vars []generator.TemplateVariable) {
	var lines []string
	for _, v := range vars {
		if v.Prompt != "" {
			lines = append(lines, fmt.Sprintf("  %s  %s", v.Prompt, output.StyleDim.Render("--set "+v.Name+"=<value>")))
		}
	}
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleSummary.Render("Prompts"))
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}

func printDeps(w io.Writer, title string, deps map[string]string) {
	if len(deps) == 0 {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, output.StyleSummary.Render(title))
	for _, name := range slices.Sorted(maps.Keys(deps)) {
		fmt.Fprintf(w, "  %s %s\n", name, deps[name])
	}
}
