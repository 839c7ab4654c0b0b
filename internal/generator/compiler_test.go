package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileContent(t *testing.T) {
	c := NewCompiler(nil)

	tests := []struct {
		name    string
		content string
		vars    Variables
		want    string
	}{
		{
			name:    "plain interpolation",
			content: "Hello {{name}}",
			vars:    Variables{"name": "World"},
			want:    "Hello World",
		},
		{
			name:    "no html escaping",
			content: "{{snippet}}",
			vars:    Variables{"snippet": `<a href="x">&'</a>`},
			want:    `<a href="x">&'</a>`,
		},
		{
			name:    "undefined renders empty",
			content: "[{{missing}}]",
			vars:    Variables{},
			want:    "[]",
		},
		{
			name:    "numbers and booleans",
			content: "{{port}} {{ok}}",
			vars:    Variables{"port": 3000, "ok": true},
			want:    "3000 true",
		},
		{
			name:    "pascalCase",
			content: "{{pascalCase name}}",
			vars:    Variables{"name": "my thing"},
			want:    "MyThing",
		},
		{
			name:    "camelCase",
			content: "{{camelCase name}}",
			vars:    Variables{"name": "my thing"},
			want:    "myThing",
		},
		{
			name:    "kebabCase",
			content: "{{kebabCase name}}",
			vars:    Variables{"name": "MyThing"},
			want:    "my-thing",
		},
		{
			name:    "snakeCase",
			content: "{{snakeCase name}}",
			vars:    Variables{"name": "MyThing"},
			want:    "my_thing",
		},
		{
			name:    "slugify",
			content: "{{slugify name}}",
			vars:    Variables{"name": "Hello World!"},
			want:    "hello-world",
		},
		{
			name:    "upper and lower",
			content: "{{upperCase name}}/{{lowerCase name}}",
			vars:    Variables{"name": "MiXed"},
			want:    "MIXED/mixed",
		},
		{
			name:    "transform output is not escaped",
			content: "{{upperCase name}}",
			vars:    Variables{"name": "a&b"},
			want:    "A&B",
		},
		{
			name:    "if else",
			content: "{{#if typescript}}ts{{else}}js{{/if}}",
			vars:    Variables{"typescript": false},
			want:    "js",
		},
		{
			name:    "eq subexpression",
			content: `{{#if (eq styling "css")}}css{{else}}other{{/if}}`,
			vars:    Variables{"styling": "css"},
			want:    "css",
		},
		{
			name:    "ne subexpression",
			content: `{{#if (ne styling "css")}}other{{/if}}`,
			vars:    Variables{"styling": "tailwind"},
			want:    "other",
		},
		{
			name:    "and or not",
			content: "{{#if (and a (not b))}}1{{/if}}{{#if (or b c)}}2{{/if}}",
			vars:    Variables{"a": true, "b": false, "c": 1},
			want:    "12",
		},
		{
			name:    "each over list",
			content: "{{#each items}}[{{this}}]{{/each}}",
			vars:    Variables{"items": []any{"x<", "y"}},
			want:    "[x<][y]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.CompileContent(tt.content, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileContent_ParseError(t *testing.T) {
	_, err := NewCompiler(nil).CompileContent("{{#if x}}never closed", Variables{})
	assert.Error(t, err)
}

func TestCompileContent_HelperArity(t *testing.T) {
	c := NewCompiler(nil)

	tests := []struct {
		name string
		text string
	}{
		{"transform without argument", "{{kebabCase}}"},
		{"transform with extra argument", "{{kebabCase name name}}"},
		{"eq with one argument", "{{#if (eq name)}}y{{/if}}"},
		{"and with one argument", "{{#if (and name)}}y{{/if}}"},
		{"not without argument", "{{#if (not)}}y{{/if}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := c.CompileContent(tt.text, Variables{"name": "Card"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "called with")
			assert.Empty(t, out)
		})
	}
}

func TestCompileContent_HelpersWithFullArity(t *testing.T) {
	c := NewCompiler(nil)

	out, err := c.CompileContent(
		`{{kebabCase name}}|{{#if (eq style "css")}}css{{/if}}|{{#if (not ts)}}js{{/if}}`,
		Variables{"name": "My Card", "style": "css", "ts": false},
	)
	require.NoError(t, err)
	assert.Equal(t, "my-card|css|js", out)
}

func TestCompilePath(t *testing.T) {
	c := NewCompiler(nil)

	tests := []struct {
		name string
		path string
		vars Variables
		want string
	}{
		{"literal", "src/index.ts", nil, "src/index.ts"},
		{"identifier", "{{name}}/index.ts", Variables{"name": "Card"}, "Card/index.ts"},
		{"padded identifier", "{{ name }}.ts", Variables{"name": "Card"}, "Card.ts"},
		{"transform", "{{kebabCase name}}.txt", Variables{"name": "My Thing"}, "my-thing.txt"},
		{"repeated", "{{pascalCase name}}/{{pascalCase name}}.tsx", Variables{"name": "my card"}, "MyCard/MyCard.tsx"},
		{"number", "port-{{port}}", Variables{"port": 8080}, "port-8080"},
		{"boolean", "{{flag}}.txt", Variables{"flag": false}, "false.txt"},
		{"html is not escaped", "{{name}}", Variables{"name": "a&b"}, "a&b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.CompilePath(tt.path, tt.vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompilePath_Errors(t *testing.T) {
	c := NewCompiler(nil)

	t.Run("undefined variable", func(t *testing.T) {
		_, err := c.CompilePath("{{name}}.ts", Variables{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUndefinedVariable)
		assert.Contains(t, err.Error(), `"name"`)
	})

	t.Run("nil variable", func(t *testing.T) {
		_, err := c.CompilePath("{{name}}.ts", Variables{"name": nil})
		assert.ErrorIs(t, err, ErrUndefinedVariable)
	})

	t.Run("unknown helper", func(t *testing.T) {
		_, err := c.CompilePath("{{shout name}}.ts", Variables{"name": "x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown helper")
	})

	for _, p := range []string{"{{#if a}}x{{/if}}", "{{a b c}}", "{{}}", "{{name.first}}"} {
		t.Run("unsupported "+p, func(t *testing.T) {
			_, err := c.CompilePath(p, Variables{"a": true, "b": "x", "c": "y", "name": "n"})
			assert.Error(t, err)
		})
	}
}

func TestNewCompiler_CustomTransforms(t *testing.T) {
	c := NewCompiler(map[string]Transform{
		"shout": func(s string) string { return strings.ToUpper(s) + "!" },
	})

	got, err := c.CompilePath("{{shout name}}", Variables{"name": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "HI!", got)

	got, err = c.CompileContent("{{shout name}}", Variables{"name": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "HI!", got)

	_, err = c.CompilePath("{{pascalCase name}}", Variables{"name": "hi"})
	assert.Error(t, err, "defaults are not merged into a custom set")

	assert.ElementsMatch(t, []string{"shout"}, c.Transforms())
}

func TestNewCompiler_CopiesTransforms(t *testing.T) {
	set := map[string]Transform{"id": func(s string) string { return s }}
	c := NewCompiler(set)
	set["late"] = strings.ToUpper

	assert.ElementsMatch(t, []string{"id"}, c.Transforms())
}
