package template

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/magicappdev/cli/internal/cmdtypes"
	"github.com/magicappdev/cli/internal/output"
)

// NewSearchCmd creates the template search command.
func NewSearchCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "List templates in the remote repository",
		Long: `List templates available in the remote repository (remote.treeURL).

With a query only names containing it are shown. Templates already pulled
into the cache are marked.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var query string
			if len(args) == 1 {
				query = args[0]
			}
			return runSearch(c, cfg, query)
		},
	}
}

func runSearch(c *cobra.Command, cfg *cmdtypes.GlobalConfig, query string) error {
	client, ctx, cancel := newRemote(c.Context(), cfg)
	defer cancel()

	var names []string
	err := output.RunWithSpinner(ctx, "Fetching template list", func(ctx context.Context) error {
		var err error
		names, err = client.ListTemplates(ctx)
		return err
	})
	if err != nil {
		return cmdtypes.ExitErrorFrom(err)
	}

	w := c.OutOrStdout()
	query = strings.ToLower(query)
	found := 0
	for _, name := range names {
		if query != "" && !strings.Contains(strings.ToLower(name), query) {
			continue
		}
		found++
		if pulled(cfg.CacheDir, name) {
			fmt.Fprintf(w, "%s  %s\n", name, output.StyleDim.Render("(pulled)"))
			continue
		}
		fmt.Fprintln(w, name)
	}

	if found == 0 {
		fmt.Fprintln(w, "No templates found")
	}
	return nil
}

func pulled(cacheDir, name string) bool {
	if cacheDir == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(cacheDir, name))
	return err == nil
}
