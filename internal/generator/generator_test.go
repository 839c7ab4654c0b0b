package generator

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/magicappdev/cli/internal/errors"
)

func greetingTemplate() Template {
	return Template{
		ID:       "greeting",
		Slug:     "greeting",
		Name:     "Greeting",
		Category: CategoryUtil,
		Variables: []TemplateVariable{
			{Name: "name", Type: TypeString, Required: true},
		},
		Files: []TemplateFile{
			{Path: "{{kebabCase name}}.txt", Content: "Hello {{name}}"},
		},
	}
}

func languageTemplate() Template {
	return Template{
		ID:       "lang",
		Slug:     "lang",
		Name:     "Language",
		Category: CategoryComponent,
		Variables: []TemplateVariable{
			{Name: "name", Type: TypeString, Required: true},
			{Name: "typescript", Type: TypeBoolean, Default: true},
		},
		Files: []TemplateFile{
			{Path: "{{name}}/index.ts", Content: "export const {{name}} = 1;\n", Condition: "typescript"},
			{Path: "{{name}}/index.js", Content: "exports.{{name}} = 1;\n", Condition: "!typescript"},
			{Path: "{{name}}/README.md", Content: "# {{name}}\n"},
		},
		Dependencies:    map[string]string{"react": "^18.2.0"},
		DevDependencies: map[string]string{"vitest": "^1.0.0"},
	}
}

func readFile(t *testing.T, fs afero.Fs, path string) string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerate_EndToEnd(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := NewGenerator(WithFs(fs))

	res, err := g.Generate(greetingTemplate(), GenerateOptions{
		OutputDir: "/out",
		Variables: Variables{"name": "My Thing"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"my-thing.txt"}, res.Files)
	assert.Empty(t, res.Skipped)
	assert.Nil(t, res.Rendered)
	assert.Equal(t, "Hello My Thing", readFile(t, fs, "/out/my-thing.txt"))
}

func TestGenerate_ConditionalSkip(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := NewGenerator(WithFs(fs))

	res, err := g.Generate(languageTemplate(), GenerateOptions{
		OutputDir: "/out",
		Variables: Variables{"name": "Card", "typescript": true},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Card/index.ts", "Card/README.md"}, res.Files)
	assert.Equal(t, []string{"{{name}}/index.js"}, res.Skipped)

	exists, err := afero.Exists(fs, "/out/Card/index.js")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGenerate_UnsetConditionVariableIsFalsy(t *testing.T) {
	g := NewGenerator(WithFs(afero.NewMemMapFs()))

	res, err := g.Generate(languageTemplate(), GenerateOptions{
		OutputDir: "/out",
		Variables: Variables{"name": "Card"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Card/index.js", "Card/README.md"}, res.Files)
	assert.Equal(t, []string{"{{name}}/index.ts"}, res.Skipped)
}

func TestGenerate_OverwriteSemantics(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out/my-thing.txt", []byte("original"), 0o644))
	g := NewGenerator(WithFs(fs))
	opts := GenerateOptions{OutputDir: "/out", Variables: Variables{"name": "My Thing"}}

	res, err := g.Generate(greetingTemplate(), opts)
	require.NoError(t, err)
	assert.Empty(t, res.Files)
	assert.Equal(t, []string{"my-thing.txt"}, res.Skipped)
	assert.Equal(t, "original", readFile(t, fs, "/out/my-thing.txt"))

	opts.Overwrite = true
	res, err = g.Generate(greetingTemplate(), opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"my-thing.txt"}, res.Files)
	assert.Empty(t, res.Skipped)
	assert.Equal(t, "Hello My Thing", readFile(t, fs, "/out/my-thing.txt"))
}

func TestGenerate_DryRunTouchesNothing(t *testing.T) {
	vars := Variables{"name": "Card", "typescript": false}

	dryFs := afero.NewMemMapFs()
	dry, err := NewGenerator(WithFs(dryFs)).Generate(languageTemplate(), GenerateOptions{
		OutputDir: "/out",
		Variables: vars,
		DryRun:    true,
	})
	require.NoError(t, err)

	exists, err := afero.DirExists(dryFs, "/out")
	require.NoError(t, err)
	assert.False(t, exists, "dry run must not create directories")

	realFs := afero.NewMemMapFs()
	real, err := NewGenerator(WithFs(realFs)).Generate(languageTemplate(), GenerateOptions{
		OutputDir: "/out",
		Variables: vars,
	})
	require.NoError(t, err)

	assert.Equal(t, real.Files, dry.Files)
	assert.Equal(t, real.Skipped, dry.Skipped)
	assert.Equal(t, "exports.Card = 1;\n", dry.Rendered["Card/index.js"])
	assert.Equal(t, readFile(t, realFs, "/out/Card/README.md"), dry.Rendered["Card/README.md"])
}

func TestGenerate_DryRunReportsExistingAsSkipped(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/out/my-thing.txt", []byte("original"), 0o644))

	res, err := NewGenerator(WithFs(fs)).Generate(greetingTemplate(), GenerateOptions{
		OutputDir: "/out",
		Variables: Variables{"name": "My Thing"},
		DryRun:    true,
	})
	require.NoError(t, err)

	assert.Empty(t, res.Files)
	assert.Equal(t, []string{"my-thing.txt"}, res.Skipped)
}

func TestGenerate_InvalidVariables(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl := languageTemplate()

	_, err := NewGenerator(WithFs(fs)).Generate(tmpl, GenerateOptions{
		OutputDir: "/out",
		Variables: Variables{"typescript": "yes"},
	})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrInvalidVariables)
	assert.ErrorIs(t, err, oerrors.ErrValidation)
	assert.Contains(t, err.Error(), "Missing required variable: name")
	assert.Contains(t, err.Error(), `Variable "typescript" must be a boolean`)

	exists, _ := afero.DirExists(fs, "/out")
	assert.False(t, exists)
}

func TestGenerate_PathContainment(t *testing.T) {
	tests := []struct {
		name string
		path string
		vars Variables
	}{
		{"literal parent", "../evil.txt", Variables{}},
		{"nested parent", "a/../../evil.txt", Variables{}},
		{"absolute", "/etc/evil", Variables{}},
		{"variable parent", "{{name}}/x.txt", Variables{"name": "../.."}},
		{"output dir itself", "{{dir}}", Variables{"dir": "."}},
		{"cleans to output dir", "a/..", Variables{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			tmpl := Template{
				ID: "evil", Slug: "evil", Name: "Evil", Category: CategoryUtil,
				Files: []TemplateFile{{Path: tt.path, Content: "x"}},
			}

			_, err := NewGenerator(WithFs(fs)).Generate(tmpl, GenerateOptions{OutputDir: "/out/sub", Variables: tt.vars})
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrPathEscape)

			exists, err := afero.Exists(fs, "/out/sub")
			require.NoError(t, err)
			assert.False(t, exists)
		})
	}
}

func TestGenerate_InnerParentStaysInside(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl := Template{
		ID: "ok", Slug: "ok", Name: "Ok", Category: CategoryUtil,
		Files: []TemplateFile{{Path: "a/../b.txt", Content: "x"}},
	}

	res, err := NewGenerator(WithFs(fs)).Generate(tmpl, GenerateOptions{OutputDir: "/out"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt"}, res.Files)
}

func TestGenerate_UndefinedPathVariable(t *testing.T) {
	tmpl := Template{
		ID: "p", Slug: "p", Name: "P", Category: CategoryUtil,
		Files: []TemplateFile{{Path: "{{missing}}.txt", Content: "x"}},
	}

	_, err := NewGenerator(WithFs(afero.NewMemMapFs())).Generate(tmpl, GenerateOptions{OutputDir: "/out"})
	assert.ErrorIs(t, err, ErrUndefinedVariable)
}

func TestGenerate_FailureKeepsEarlierFiles(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl := Template{
		ID: "partial", Slug: "partial", Name: "Partial", Category: CategoryUtil,
		Files: []TemplateFile{
			{Path: "first.txt", Content: "ok"},
			{Path: "second.txt", Content: "{{#if broken}}"},
		},
	}

	_, err := NewGenerator(WithFs(fs)).Generate(tmpl, GenerateOptions{OutputDir: "/out"})
	require.Error(t, err)

	assert.Equal(t, "ok", readFile(t, fs, "/out/first.txt"))
	exists, _ := afero.Exists(fs, "/out/second.txt")
	assert.False(t, exists)
}

func TestGenerate_Deterministic(t *testing.T) {
	opts := GenerateOptions{OutputDir: "/out", Variables: Variables{"name": "Card", "typescript": true}}

	var results []*GenerateResult
	var contents []string
	for range 3 {
		fs := afero.NewMemMapFs()
		res, err := NewGenerator(WithFs(fs)).Generate(languageTemplate(), opts)
		require.NoError(t, err)
		results = append(results, res)
		contents = append(contents, readFile(t, fs, "/out/Card/index.ts"))
	}

	assert.Equal(t, results[0], results[1])
	assert.Equal(t, results[1], results[2])
	assert.Equal(t, contents[0], contents[2])
}

func TestGenerate_DependenciesAreCopies(t *testing.T) {
	tmpl := languageTemplate()

	res, err := NewGenerator(WithFs(afero.NewMemMapFs())).Generate(tmpl, GenerateOptions{
		OutputDir: "/out",
		Variables: Variables{"name": "Card"},
		DryRun:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"react": "^18.2.0"}, res.Dependencies)
	assert.Equal(t, map[string]string{"vitest": "^1.0.0"}, res.DevDependencies)

	res.Dependencies["react"] = "0.0.0"
	assert.Equal(t, "^18.2.0", tmpl.Dependencies["react"])
}

func TestGenerateComponent(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl := Template{
		ID: "c", Slug: "c", Name: "C", Category: CategoryComponent,
		Variables: []TemplateVariable{{Name: "name", Type: TypeString, Required: true}},
		Files:     []TemplateFile{{Path: "{{componentName}}.tsx", Content: "{{name}}={{componentName}}"}},
	}

	res, err := NewGenerator(WithFs(fs)).GenerateComponent(tmpl, "Button", GenerateOptions{OutputDir: "/src"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Button.tsx"}, res.Files)
	assert.Equal(t, "Button=Button", readFile(t, fs, "/src/Button.tsx"))
}

func TestGenerateScreen(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl := Template{
		ID: "s", Slug: "s", Name: "S", Category: CategoryScreen,
		Files: []TemplateFile{{Path: "{{kebabCase screenName}}.tsx", Content: "{{screenName}}"}},
	}
	supplied := Variables{"extra": "kept"}

	res, err := NewGenerator(WithFs(fs)).GenerateScreen(tmpl, "Settings Page", GenerateOptions{
		OutputDir: "/app",
		Variables: supplied,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"settings-page.tsx"}, res.Files)
	assert.NotContains(t, supplied, "screenName", "caller variables must not be mutated")
}

func TestGenerateApp(t *testing.T) {
	fs := afero.NewMemMapFs()
	tmpl := Template{
		ID: "a", Slug: "a", Name: "A", Category: CategoryApp,
		Files: []TemplateFile{{Path: "package.json", Content: `{"name":"{{appName}}"}`}},
	}

	res, err := NewGenerator(WithFs(fs)).GenerateApp(tmpl, "shop", GenerateOptions{OutputDir: "/work"})
	require.NoError(t, err)

	assert.Equal(t, []string{"package.json"}, res.Files)
	assert.Equal(t, `{"name":"shop"}`, readFile(t, fs, "/work/shop/package.json"))

	_, err = NewGenerator(WithFs(fs)).GenerateApp(tmpl, "../escape", GenerateOptions{OutputDir: "/work"})
	assert.ErrorIs(t, err, ErrPathEscape)
}
