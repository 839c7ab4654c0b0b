package generate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/magicappdev/cli/internal/cmdtypes"
	"github.com/magicappdev/cli/internal/generator"
)

// Default templates of the scaffold commands.
const (
	DefaultComponentTemplate = "react-component"
	DefaultScreenTemplate    = "expo-screen"
	DefaultAppTemplate       = "next-app"
)

// scaffold describes one of the component, screen and app commands.
type scaffold struct {
	category        generator.Category
	defaultTemplate string
	nameKey         string
	short           string
	example         string

	// nested generates into <dir>/<name> instead of <dir>.
	nested bool

	generate func(g *generator.Generator, tmpl generator.Template, name string, opts generator.GenerateOptions) (*generator.GenerateResult, error)
}

// NewComponentCmd creates the component command.
func NewComponentCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newScaffoldCmd(cfg, scaffold{
		category:        generator.CategoryComponent,
		defaultTemplate: DefaultComponentTemplate,
		nameKey:         "componentName",
		short:           "Generate a component",
		example: `  # Create src/components/UserCard.tsx and friends
  magicappdev component UserCard -d src/components

  # Use plain JavaScript and Tailwind
  magicappdev component UserCard --set typescript=false --set styling=tailwind`,
		generate: (*generator.Generator).GenerateComponent,
	})
}

// NewScreenCmd creates the screen command.
func NewScreenCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newScaffoldCmd(cfg, scaffold{
		category:        generator.CategoryScreen,
		defaultTemplate: DefaultScreenTemplate,
		nameKey:         "screenName",
		short:           "Generate a screen",
		example: `  # Create an Expo screen in app/screens
  magicappdev screen Settings -d app/screens`,
		generate: (*generator.Generator).GenerateScreen,
	})
}

// NewAppCmd creates the app command.
func NewAppCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return newScaffoldCmd(cfg, scaffold{
		category:        generator.CategoryApp,
		defaultTemplate: DefaultAppTemplate,
		nameKey:         "appName",
		short:           "Generate a new app",
		example: `  # Create ./shop with the Next.js template
  magicappdev app shop

  # Create ./dashboard with the Vite template
  magicappdev app dashboard --template vite-app`,
		nested:   true,
		generate: (*generator.Generator).GenerateApp,
	})
}

func newScaffoldCmd(cfg *cmdtypes.GlobalConfig, s scaffold) *cobra.Command {
	var o options

	c := &cobra.Command{
		Use:   fmt.Sprintf("%s <name>", s.category),
		Short: s.short,
		Long: fmt.Sprintf(`%s from a %s template.

The name is available to the template as {{name}} and {{%s}}.`, s.short, s.category, s.nameKey),
		Example: s.example,
		Args:    cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			name := args[0]
			outDir := o.dir
			if s.nested {
				outDir = filepath.Join(o.dir, name)
			}
			return run(c, cfg, &o, request{
				slug:     o.template,
				category: s.category,
				outDir:   outDir,
				extra:    generator.Variables{"name": name, s.nameKey: name},
				run: func(g *generator.Generator, tmpl generator.Template, opts generator.GenerateOptions) (*generator.GenerateResult, error) {
					return s.generate(g, tmpl, name, opts)
				},
			})
		},
	}

	o.addFlags(c)
	c.Flags().StringVarP(&o.template, "template", "t", s.defaultTemplate, "Template id or slug")
	return c
}
