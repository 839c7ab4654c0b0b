package template

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magicappdev/cli/internal/cmdtypes"
	oerrors "github.com/magicappdev/cli/internal/errors"
	"github.com/magicappdev/cli/internal/generator"
	"github.com/magicappdev/cli/internal/output"
)

// summary is the structured form of one list row.
type summary struct {
	ID          string             `json:"id"`
	Slug        string             `json:"slug"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Version     string             `json:"version,omitempty"`
	Category    generator.Category `json:"category"`
	Frameworks  []string           `json:"frameworks,omitempty"`
	Tags        []string           `json:"tags,omitempty"`
}

// NewListCmd creates the template list command.
func NewListCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var (
		category  string
		framework string
		format    string
	)

	c := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available templates",
		Long: `List the built-in templates, the templates directory and pulled templates.

Examples:
  # All templates
  magicappdev template list

  # Components for React
  magicappdev template list --category component --framework react`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runList(c, cfg, category, framework, format)
		},
	}

	categories := make([]string, 0, len(generator.Categories()))
	for _, cat := range generator.Categories() {
		categories = append(categories, string(cat))
	}
	c.Flags().StringVar(&category, "category", "", fmt.Sprintf("Only templates of this category (%s)", strings.Join(categories, ", ")))
	c.Flags().StringVar(&framework, "framework", "", "Only templates targeting this framework")
	c.Flags().StringVarP(&format, "output", "o", "text", fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return c
}

func runList(c *cobra.Command, cfg *cmdtypes.GlobalConfig, category, framework, format string) error {
	f, err := output.ParseFormat(format)
	if err != nil {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(err.Error(), "", "output", ""),
		}
	}

	cat := generator.Category(category)
	if category != "" && !cat.IsValid() {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err: oerrors.NewValidationError(
				fmt.Sprintf("unknown category %q", category), "", "category",
				fmt.Sprintf("Valid categories: %v", generator.Categories())),
		}
	}

	reg, err := cfg.Registry()
	if err != nil {
		return cmdtypes.ExitErrorFrom(err)
	}
	templates := reg.List(generator.Filter{Category: cat, Framework: framework})

	w := c.OutOrStdout()
	if f != output.FormatText {
		rows := make([]summary, 0, len(templates))
		for _, t := range templates {
			rows = append(rows, summary{
				ID:          t.ID,
				Slug:        t.Slug,
				Name:        t.Name,
				Description: t.Description,
				Version:     t.Version,
				Category:    t.Category,
				Frameworks:  t.Frameworks,
				Tags:        t.Tags,
			})
		}
		return output.Encode(w, f, rows)
	}

	if len(templates) == 0 {
		fmt.Fprintln(w, "No templates found")
		return nil
	}

	tbl := output.NewTable("SLUG", "CATEGORY", "FRAMEWORKS", "VERSION", "DESCRIPTION")
	for _, t := range templates {
		tbl.Row(t.Slug, string(t.Category), strings.Join(t.Frameworks, ", "), t.Version, t.Description)
	}
	fmt.Fprintln(w, tbl.String())
	return nil
}
