// Package template provides the `magicappdev template` command group.
package template

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/magicappdev/cli/internal/cmdtypes"
	"github.com/magicappdev/cli/internal/config"
	"github.com/magicappdev/cli/internal/remote"
)

// NewTemplateCmd creates the template command group.
func NewTemplateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:     "template",
		Aliases: []string{"tmpl", "templates"},
		Short:   "Template operations",
		Long:    `Commands for listing, inspecting, validating and installing templates.`,
	}

	c.AddCommand(
		NewListCmd(cfg),
		NewShowCmd(cfg),
		NewValidateCmd(cfg),
		NewSearchCmd(cfg),
		NewPullCmd(cfg),
		NewInstallCmd(cfg),
	)

	return c
}

// remoteSettings returns the remote configuration with defaults applied.
func remoteSettings(cfg *cmdtypes.GlobalConfig) config.RemoteConfig {
	if cfg.Config == nil {
		return config.DefaultConfig().Remote
	}
	return cfg.Config.WithDefaults().Remote
}

// newRemote creates a client for the configured repository together with a
// context bounded by remote.timeout.
func newRemote(ctx context.Context, cfg *cmdtypes.GlobalConfig) (*remote.Client, context.Context, context.CancelFunc) {
	rc := remoteSettings(cfg)
	client := remote.NewClient(rc.RawURL, rc.TreeURL, remote.WithHTTPClient(&http.Client{Timeout: rc.Timeout}))
	ctx, cancel := context.WithTimeout(ctx, rc.Timeout)
	return client, ctx, cancel
}
