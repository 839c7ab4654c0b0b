package template

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/spf13/cobra"

	"github.com/magicappdev/cli/internal/cmdtypes"
	oerrors "github.com/magicappdev/cli/internal/errors"
	"github.com/magicappdev/cli/internal/manifest"
	"github.com/magicappdev/cli/internal/output"
	"github.com/magicappdev/cli/internal/version"
)

// retryDelay is the base delay between pull attempts.
var retryDelay = 500 * time.Millisecond

// NewPullCmd creates the template pull command.
func NewPullCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "pull <name>",
		Short: "Download a template from the remote repository",
		Long: `Download a template from the remote repository into the cache
(~/.magicappdev/cache/<name>).

Transient network failures are retried remote.retries times. The download is
validated before it replaces anything in the cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runPull(c, cfg, args[0], force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Replace a previously pulled copy")

	return c
}

func runPull(c *cobra.Command, cfg *cmdtypes.GlobalConfig, name string, force bool) error {
	if !filepath.IsLocal(name) || strings.ContainsAny(name, `/\`) {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError(fmt.Sprintf("invalid template name %q", name), "", "name", "Use a name from 'magicappdev template search'."),
		}
	}
	if cfg.CacheDir == "" {
		return &oerrors.ExitError{
			Code: oerrors.ExitValidationError,
			Err:  oerrors.NewValidationError("no cache directory configured", "", "cacheDir", ""),
		}
	}

	dest := filepath.Join(cfg.CacheDir, name)
	if _, err := os.Stat(dest); err == nil && !force {
		return &oerrors.ExitError{
			Code: oerrors.ExitConflict,
			Err: &oerrors.DetailError{
				Type:     "already pulled",
				Message:  fmt.Sprintf("template %q is already in the cache", name),
				Location: dest,
				Hint:     "Use --force to download it again.",
				Cause:    oerrors.ErrConflict,
			},
		}
	}

	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	staging, err := os.MkdirTemp(cfg.CacheDir, ".pull-")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	client, ctx, cancel := newRemote(c.Context(), cfg)
	defer cancel()

	attempts := max(remoteSettings(cfg).Retries, 1)
	err = output.RunWithSpinner(ctx, fmt.Sprintf("Pulling %s", name), func(ctx context.Context) error {
		return retry.Do(
			func() error {
				_, err := client.Download(ctx, name, staging)
				return err
			},
			retry.Context(ctx),
			retry.Attempts(uint(attempts)),
			retry.Delay(retryDelay),
			retry.LastErrorOnly(true),
			retry.RetryIf(func(err error) bool {
				return errors.Is(err, oerrors.ErrConnectivity)
			}),
			retry.OnRetry(func(n uint, err error) {
				output.Debug("pull failed, retrying", "template", name, "attempt", n+1, "error", err)
			}),
		)
	})
	if err != nil {
		return cmdtypes.ExitErrorFrom(err)
	}

	tmpl, err := manifest.LoadFile(staging, version.Version)
	if err != nil {
		return manifestError(err, name)
	}

	if err := os.RemoveAll(dest); err != nil {
		return fmt.Errorf("removing previous copy: %w", err)
	}
	if err := os.Rename(staging, dest); err != nil {
		return fmt.Errorf("moving template into cache: %w", err)
	}

	output.Debug("pulled template", "name", name, "slug", tmpl.Slug, "dest", dest)
	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(fmt.Sprintf(
		"Pulled %s into %s", output.StyleNoun.Render(tmpl.Slug), dest)))
	return nil
}
