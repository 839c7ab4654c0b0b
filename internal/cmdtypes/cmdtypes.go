// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/generate, internal/cmd/template,
// internal/cmd/config).
package cmdtypes

import (
	"sync"

	"github.com/magicappdev/cli/internal/config"
	oerrors "github.com/magicappdev/cli/internal/errors"
	"github.com/magicappdev/cli/internal/generator"
	"github.com/magicappdev/cli/internal/manifest"
	"github.com/magicappdev/cli/internal/output"
	"github.com/magicappdev/cli/internal/version"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	Config       *config.Config
	ConfigPath   string // resolved --config path
	ConfigFlag   string // raw --config flag value (needed by config vet)
	TemplatesDir string // resolved and expanded --templates-dir
	CacheDir     string // expanded cacheDir
	Verbose      bool

	registryOnce sync.Once
	registry     *generator.Registry
	registryErr  error
}

// Registry returns the template registry. It is built on first use from the
// built-in templates, the user templates directory and the pull cache.
// Manifests that fail to load or collide with an existing template are
// skipped with a warning.
func (g *GlobalConfig) Registry() (*generator.Registry, error) {
	g.registryOnce.Do(func() {
		g.registry, g.registryErr = g.buildRegistry()
	})
	return g.registry, g.registryErr
}

func (g *GlobalConfig) buildRegistry() (*generator.Registry, error) {
	reg, err := generator.NewDefaultRegistry()
	if err != nil {
		return nil, err
	}

	for _, dir := range []string{g.TemplatesDir, g.CacheDir} {
		if dir == "" {
			continue
		}
		templates, err := manifest.LoadDir(dir, version.Version)
		if err != nil {
			output.Warn("skipping invalid templates", "dir", dir, "error", err)
		}
		for _, t := range templates {
			if err := reg.Register(t); err != nil {
				output.Warn("skipping template", "slug", t.Slug, "dir", dir, "error", err)
				continue
			}
			output.Debug("registered template", "slug", t.Slug, "dir", dir)
		}
	}

	return reg, nil
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess           = oerrors.ExitSuccess
	ExitGeneralError      = oerrors.ExitGeneralError
	ExitValidationError   = oerrors.ExitValidationError
	ExitConnectivityError = oerrors.ExitConnectivityError
	ExitPermissionDenied  = oerrors.ExitPermissionDenied
	ExitNotFound          = oerrors.ExitNotFound
	ExitConflict          = oerrors.ExitConflict
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError

// ExitErrorFrom wraps err in an ExitError whose code is derived from the
// sentinel it wraps. Errors that already carry an ExitError are returned as is.
func ExitErrorFrom(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*ExitError); ok {
		return err
	}
	return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
}
