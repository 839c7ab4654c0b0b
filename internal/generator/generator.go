package generator

import (
	"fmt"
	"maps"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/magicappdev/cli/internal/output"
)

// Generator writes templates to disk.
type Generator struct {
	fs       afero.Fs
	compiler *Compiler
}

// Option configures a Generator.
type Option func(*Generator)

// WithFs sets the filesystem files are written to.
func WithFs(fs afero.Fs) Option {
	return func(g *Generator) {
		g.fs = fs
	}
}

// NewGenerator creates a generator using the default transforms. It writes
// to the OS filesystem unless WithFs overrides it.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{compiler: NewCompiler(nil)}
	for _, opt := range opts {
		opt(g)
	}
	if g.fs == nil {
		g.fs = afero.NewOsFs()
	}
	return g
}

// Generate produces the files of tmpl below opts.OutputDir.
//
// Files are processed strictly in declaration order. A failure stops the run
// and leaves files written for earlier entries in place.
func (g *Generator) Generate(tmpl Template, opts GenerateOptions) (*GenerateResult, error) {
	vars := opts.Variables
	if vars == nil {
		vars = Variables{}
	}

	if res := Validate(vars, tmpl.Variables); !res.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidVariables, strings.Join(res.Errors, ", "))
	}

	log := output.TemplateLogger(tmpl.Slug)
	log.Debug("generating", "output", opts.OutputDir, "dryRun", opts.DryRun, "overwrite", opts.Overwrite)

	result := &GenerateResult{
		Files:           []string{},
		Skipped:         []string{},
		Dependencies:    maps.Clone(tmpl.Dependencies),
		DevDependencies: maps.Clone(tmpl.DevDependencies),
	}
	if opts.DryRun {
		result.Rendered = make(map[string]string)
	}

	for _, file := range tmpl.Files {
		if file.Condition != "" {
			cond, err := ParseCondition(file.Condition)
			if err != nil {
				return nil, fmt.Errorf("%w: file %q: %w", ErrInvalidTemplate, file.Path, err)
			}
			if !cond.Eval(vars) {
				log.Debug("condition false", "path", file.Path, "condition", cond.String())
				result.Skipped = append(result.Skipped, file.Path)
				continue
			}
		}

		compiled, err := g.compiler.CompilePath(file.Path, vars)
		if err != nil {
			return nil, err
		}
		rel, err := containedPath(compiled)
		if err != nil {
			return nil, err
		}
		target := filepath.Join(opts.OutputDir, rel)
		relSlash := filepath.ToSlash(rel)

		if !opts.Overwrite {
			exists, err := afero.Exists(g.fs, target)
			if err != nil {
				return nil, fmt.Errorf("checking %s: %w", target, err)
			}
			if exists {
				log.Debug("exists, skipping", "path", relSlash)
				result.Skipped = append(result.Skipped, relSlash)
				continue
			}
		}

		content, err := g.compiler.CompileContent(file.Content, vars)
		if err != nil {
			return nil, fmt.Errorf("compiling %s: %w", relSlash, err)
		}

		if opts.DryRun {
			result.Rendered[relSlash] = content
		} else {
			if err := g.write(target, content); err != nil {
				return nil, err
			}
			log.Debug("wrote file", "path", relSlash)
		}
		result.Files = append(result.Files, relSlash)
	}

	return result, nil
}

func (g *Generator) write(target, content string) error {
	dir := filepath.Dir(target)
	if err := g.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := afero.WriteFile(g.fs, target, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

// containedPath cleans a compiled relative path and rejects anything that
// does not resolve to a file strictly below the output directory.
func containedPath(compiled string) (string, error) {
	if compiled == "" {
		return "", fmt.Errorf("%w: empty path", ErrPathEscape)
	}
	rel := filepath.Clean(filepath.FromSlash(compiled))
	if rel == "." || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrPathEscape, compiled)
	}
	return rel, nil
}

// GenerateComponent generates tmpl with name exposed as name and componentName.
func (g *Generator) GenerateComponent(tmpl Template, name string, opts GenerateOptions) (*GenerateResult, error) {
	opts.Variables = withName(opts.Variables, name, "componentName")
	return g.Generate(tmpl, opts)
}

// GenerateScreen generates tmpl with name exposed as name and screenName.
func (g *Generator) GenerateScreen(tmpl Template, name string, opts GenerateOptions) (*GenerateResult, error) {
	opts.Variables = withName(opts.Variables, name, "screenName")
	return g.Generate(tmpl, opts)
}

// GenerateApp generates tmpl into <OutputDir>/<name> with name exposed as
// name and appName.
func (g *Generator) GenerateApp(tmpl Template, name string, opts GenerateOptions) (*GenerateResult, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("%w: app name %q", ErrPathEscape, name)
	}
	opts.Variables = withName(opts.Variables, name, "appName")
	opts.OutputDir = filepath.Join(opts.OutputDir, name)
	return g.Generate(tmpl, opts)
}

func withName(vars Variables, name, key string) Variables {
	out := make(Variables, len(vars)+2)
	maps.Copy(out, vars)
	out["name"] = name
	out[key] = name
	return out
}
