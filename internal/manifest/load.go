package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/magicappdev/cli/internal/errors"
	"github.com/magicappdev/cli/internal/generator"
	"github.com/magicappdev/cli/internal/output"
)

// DirResolver resolves sources relative to dir. Sources must stay inside it.
func DirResolver(dir string) Resolver {
	return func(source string) (string, error) {
		rel := filepath.Clean(filepath.FromSlash(source))
		if !filepath.IsLocal(rel) {
			return "", fmt.Errorf("%w: source %q", generator.ErrPathEscape, source)
		}
		data, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("%w: %s", oerrors.ErrNotFound, source)
			}
			return "", err
		}
		return string(data), nil
	}
}

// LoadFile loads the template in dir/template.yaml.
func LoadFile(dir, cliVersion string) (generator.Template, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return generator.Template{}, oerrors.NewNotFoundError(
				"no "+FileName+" found", dir,
				"a template directory must contain "+FileName,
			)
		}
		return generator.Template{}, fmt.Errorf("reading %s: %w", path, err)
	}

	m, err := Decode(data)
	if err != nil {
		return generator.Template{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := m.Compatible(cliVersion); err != nil {
		return generator.Template{}, fmt.Errorf("%s: %w", path, err)
	}
	t, err := m.Template(DirResolver(dir))
	if err != nil {
		return generator.Template{}, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// LoadDir loads every <dir>/<name>/template.yaml in name order. Hidden
// directories are ignored and a missing dir yields no templates. Broken manifests are reported in the joined error
// while the remaining templates are still returned.
func LoadDir(dir, cliVersion string) ([]generator.Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading templates directory: %w", err)
	}

	var (
		templates []generator.Template
		errs      []error
	)
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		sub := filepath.Join(dir, e.Name())
		if _, err := os.Stat(filepath.Join(sub, FileName)); err != nil {
			output.Debug("skipping directory without manifest", "dir", sub)
			continue
		}
		t, err := LoadFile(sub, cliVersion)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		output.Debug("loaded template", "slug", t.Slug, "dir", sub)
		templates = append(templates, t)
	}
	return templates, errors.Join(errs...)
}
