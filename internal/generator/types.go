// Package generator turns templates into files on disk.
//
// A Template declares typed variables and an ordered list of files whose
// paths and contents are Handlebars templates. Generate validates the caller's
// variables, evaluates per-file conditions, compiles paths and contents and
// writes the results below an output directory.
package generator

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
)

// Category classifies a template.
type Category string

const (
	CategoryComponent Category = "component"
	CategoryScreen    Category = "screen"
	CategoryApp       Category = "app"
	CategoryAPI       Category = "api"
	CategoryHook      Category = "hook"
	CategoryUtil      Category = "util"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{CategoryComponent, CategoryScreen, CategoryApp, CategoryAPI, CategoryHook, CategoryUtil}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	return slices.Contains(Categories(), c)
}

// VariableType is the declared type of a template variable.
type VariableType string

const (
	TypeString  VariableType = "string"
	TypeBoolean VariableType = "boolean"
	TypeNumber  VariableType = "number"
	TypeSelect  VariableType = "select"
)

// IsValid reports whether t is a known variable type.
func (t VariableType) IsValid() bool {
	switch t {
	case TypeString, TypeBoolean, TypeNumber, TypeSelect:
		return true
	default:
		return false
	}
}

// Variables maps variable names to caller supplied values.
type Variables map[string]any

// TemplateVariable describes one substitution input.
type TemplateVariable struct {
	Name        string       `json:"name"`
	Type        VariableType `json:"type"`
	Required    bool         `json:"required,omitempty"`
	Default     any          `json:"default,omitempty"`
	Options     []string     `json:"options,omitempty"`
	Description string       `json:"description,omitempty"`

	// Prompt is the question answered by the value. template show lists it
	// next to the matching --set flag.
	Prompt string `json:"prompt,omitempty"`
}

// TemplateFile is one file produced by a template.
type TemplateFile struct {
	// Path may contain {{identifier}} and {{transform identifier}} placeholders.
	Path string `json:"path"`

	// Content is a Handlebars template.
	Content string `json:"content"`

	// Condition gates the file. Empty means always produced.
	Condition string `json:"condition,omitempty"`
}

// Template is a named, versioned blueprint for generated output.
type Template struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Version     string   `json:"version,omitempty"`
	Category    Category `json:"category"`
	Frameworks  []string `json:"frameworks,omitempty"`
	Tags        []string `json:"tags,omitempty"`

	Variables []TemplateVariable `json:"variables,omitempty"`
	Files     []TemplateFile     `json:"files"`

	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Validate checks the structural invariants of a template: identity fields,
// a non-empty file list, well-formed variable definitions and parseable
// conditions and paths.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template id cannot be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("template %q: name cannot be empty", t.ID)
	}
	if !slugRegex.MatchString(t.Slug) {
		return fmt.Errorf("template %q: invalid slug %q: must be lowercase alphanumeric words separated by hyphens", t.ID, t.Slug)
	}
	if !t.Category.IsValid() {
		return fmt.Errorf("template %q: unknown category %q", t.ID, t.Category)
	}
	if len(t.Files) == 0 {
		return fmt.Errorf("template %q: must declare at least one file", t.ID)
	}

	seen := make(map[string]bool, len(t.Variables))
	for _, v := range t.Variables {
		if err := v.validate(); err != nil {
			return fmt.Errorf("template %q: %w", t.ID, err)
		}
		if seen[v.Name] {
			return fmt.Errorf("template %q: variable %q declared twice", t.ID, v.Name)
		}
		seen[v.Name] = true
	}

	for i, f := range t.Files {
		if f.Path == "" {
			return fmt.Errorf("template %q: file %d has an empty path", t.ID, i)
		}
		if _, err := parsePathTemplate(f.Path); err != nil {
			return fmt.Errorf("template %q: file %q: %w", t.ID, f.Path, err)
		}
		if f.Condition == "" {
			continue
		}
		if _, err := ParseCondition(f.Condition); err != nil {
			return fmt.Errorf("template %q: file %q: %w", t.ID, f.Path, err)
		}
	}

	return nil
}

func (v TemplateVariable) validate() error {
	if v.Name == "" {
		return fmt.Errorf("variable name cannot be empty")
	}
	if !v.Type.IsValid() {
		return fmt.Errorf("variable %q: unknown type %q", v.Name, v.Type)
	}
	if v.Type == TypeSelect {
		if len(v.Options) == 0 {
			return fmt.Errorf("variable %q: select requires at least one option", v.Name)
		}
		if v.Default != nil && !slices.Contains(v.Options, jsString(v.Default)) {
			return fmt.Errorf("variable %q: default %q is not one of the options", v.Name, jsString(v.Default))
		}
		return nil
	}
	if v.Default != nil && !matchesType(v.Type, v.Default) {
		return fmt.Errorf("variable %q: default does not match type %s", v.Name, v.Type)
	}
	return nil
}

// HasFramework reports whether the template targets the framework tag.
func (t *Template) HasFramework(framework string) bool {
	return slices.Contains(t.Frameworks, framework)
}

// Clone returns a deep copy so callers cannot mutate registry state.
func (t Template) Clone() Template {
	c := t
	c.Frameworks = slices.Clone(t.Frameworks)
	c.Tags = slices.Clone(t.Tags)
	c.Files = slices.Clone(t.Files)
	c.Variables = slices.Clone(t.Variables)
	for i := range c.Variables {
		c.Variables[i].Options = slices.Clone(c.Variables[i].Options)
	}
	c.Dependencies = maps.Clone(t.Dependencies)
	c.DevDependencies = maps.Clone(t.DevDependencies)
	return c
}

// GenerateOptions configures a generation run.
type GenerateOptions struct {
	// OutputDir is the directory all files are written below.
	OutputDir string

	// Variables are substituted into paths, contents and conditions.
	Variables Variables

	// Overwrite replaces existing files instead of skipping them.
	Overwrite bool

	// DryRun computes the result without touching the filesystem.
	DryRun bool
}

// GenerateResult reports what a generation run produced.
type GenerateResult struct {
	// Files are the relative paths written (or that would be written).
	Files []string `json:"files"`

	// Skipped are paths left untouched: the raw path for files whose
	// condition was false, the compiled path for files that already existed.
	Skipped []string `json:"skipped"`

	Dependencies    map[string]string `json:"dependencies,omitempty"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`

	// Rendered holds compiled contents keyed by relative path. Dry runs only.
	Rendered map[string]string `json:"-"`
}
