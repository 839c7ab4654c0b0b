// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	cmdconfig "github.com/magicappdev/cli/internal/cmd/config"
	"github.com/magicappdev/cli/internal/cmd/generate"
	cmdtemplate "github.com/magicappdev/cli/internal/cmd/template"
	"github.com/magicappdev/cli/internal/cmdtypes"
	"github.com/magicappdev/cli/internal/config"
	"github.com/magicappdev/cli/internal/output"
)

// rootFlags holds the raw values of the persistent flags.
type rootFlags struct {
	config       string
	templatesDir string
	verbose      bool
	timestamps   bool
}

// NewRootCmd creates the root command for the magicappdev CLI.
func NewRootCmd() *cobra.Command {
	cfg := &cmdtypes.GlobalConfig{}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "magicappdev",
		Short: "Template-driven project generator",
		Long: `magicappdev generates components, screens, API routes and whole apps
from templates.

Templates come from three places: the ones built into the CLI, manifests in
the templates directory (~/.magicappdev/templates) and templates pulled from
the remote repository into the cache (~/.magicappdev/cache).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, cfg, flags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: MAGICAPPDEV_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&flags.templatesDir, "templates-dir", "", "Directory of user templates (env: MAGICAPPDEV_TEMPLATES_DIR)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(generate.NewGenerateCmd(cfg))
	rootCmd.AddCommand(generate.NewComponentCmd(cfg))
	rootCmd.AddCommand(generate.NewScreenCmd(cfg))
	rootCmd.AddCommand(generate.NewAppCmd(cfg))
	rootCmd.AddCommand(cmdtemplate.NewTemplateCmd(cfg))
	rootCmd.AddCommand(cmdconfig.NewConfigCmd(cfg))
	rootCmd.AddCommand(NewVersionCmd(cfg))

	return rootCmd
}

// initializeGlobals loads configuration, sets up logging and fills cfg.
func initializeGlobals(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *rootFlags) error {
	configPath, err := config.ResolveConfigPath(flags.config)
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
	}
	path, _ := configPath.Value.(string)

	loaded, err := config.NewLoader().LoadWithDefaults(path)
	if err != nil {
		// Commands that don't need the file still work; config vet reports it.
		output.Debug("config load error", "error", err)
		loaded = config.DefaultConfig()
	}

	var timestampsFlag *bool
	if c.Flags().Changed("timestamps") {
		timestampsFlag = output.BoolPtr(flags.timestamps)
	}
	timestamps := config.ResolveTimestamps(timestampsFlag, loaded)
	on, _ := timestamps.Value.(bool)

	output.SetupLogging(output.LogConfig{
		Verbose:    flags.verbose,
		Timestamps: output.BoolPtr(on),
	})

	templatesDir := config.ResolveTemplatesDir(flags.templatesDir, loaded)
	dir, _ := templatesDir.Value.(string)
	if dir, err = config.ExpandPath(dir); err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
	}
	cacheDir, err := config.ExpandPath(loaded.CacheDir)
	if err != nil {
		return &cmdtypes.ExitError{Code: cmdtypes.ExitGeneralError, Err: err}
	}

	cfg.Config = loaded
	cfg.ConfigPath = path
	cfg.ConfigFlag = flags.config
	cfg.TemplatesDir = dir
	cfg.CacheDir = cacheDir
	cfg.Verbose = flags.verbose

	if flags.verbose {
		config.LogResolvedValues(configPath, templatesDir, timestamps)
	}

	return nil
}
