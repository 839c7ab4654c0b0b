// Package manifest reads template.yaml files describing templates that ship
// outside the binary.
package manifest

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-version"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	oerrors "github.com/magicappdev/cli/internal/errors"
	"github.com/magicappdev/cli/internal/generator"
)

// FileName is the manifest file name inside a template directory.
const FileName = "template.yaml"

// Manifest is the decoded form of a template.yaml file.
type Manifest struct {
	ID          string   `mapstructure:"id"`
	Slug        string   `mapstructure:"slug"`
	Name        string   `mapstructure:"name"`
	Description string   `mapstructure:"description"`
	Version     string   `mapstructure:"version"`
	Category    string   `mapstructure:"category"`
	Frameworks  []string `mapstructure:"frameworks"`
	Tags        []string `mapstructure:"tags"`

	// Requires is a version constraint on the CLI, e.g. ">= 0.3.0".
	Requires string `mapstructure:"requires"`

	Variables       []Variable        `mapstructure:"variables"`
	Files           []File            `mapstructure:"files"`
	Dependencies    map[string]string `mapstructure:"dependencies"`
	DevDependencies map[string]string `mapstructure:"devDependencies"`
}

// Variable mirrors generator.TemplateVariable.
type Variable struct {
	Name        string   `mapstructure:"name"`
	Type        string   `mapstructure:"type"`
	Required    bool     `mapstructure:"required"`
	Default     any      `mapstructure:"default"`
	Options     []string `mapstructure:"options"`
	Description string   `mapstructure:"description"`
	Prompt      string   `mapstructure:"prompt"`
}

// File is a template file. Exactly one of Content and Source is set.
type File struct {
	Path      string `mapstructure:"path"`
	Content   string `mapstructure:"content"`
	Source    string `mapstructure:"source"`
	Condition string `mapstructure:"condition"`
}

// Resolver returns the text of a file referenced by a manifest's source field.
type Resolver func(source string) (string, error)

// Decode parses and schema-checks manifest bytes without resolving sources.
func Decode(data []byte) (*Manifest, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing yaml: %w", oerrors.ErrValidation, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: manifest is empty", oerrors.ErrValidation)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, err
	}
	if msgs := schema.validate(raw); len(msgs) > 0 {
		return nil, fmt.Errorf("%w: %s", oerrors.ErrValidation, strings.Join(msgs, "; "))
	}

	var m Manifest
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &m,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: decoding manifest: %w", oerrors.ErrValidation, err)
	}

	if m.Version != "" {
		if _, err := version.NewVersion(m.Version); err != nil {
			return nil, fmt.Errorf("%w: version %q: %w", oerrors.ErrValidation, m.Version, err)
		}
	}
	if m.Requires != "" {
		if _, err := version.NewConstraint(m.Requires); err != nil {
			return nil, fmt.Errorf("%w: requires %q: %w", oerrors.ErrValidation, m.Requires, err)
		}
	}
	for _, f := range m.Files {
		if (f.Content == "") == (f.Source == "") {
			return nil, fmt.Errorf("%w: file %q: exactly one of content and source must be set", oerrors.ErrValidation, f.Path)
		}
	}

	return &m, nil
}

// Compatible reports whether the manifest accepts the given CLI version.
// Development builds, whose version does not parse, accept everything.
func (m *Manifest) Compatible(cliVersion string) error {
	if m.Requires == "" {
		return nil
	}
	v, err := version.NewVersion(cliVersion)
	if err != nil {
		return nil
	}
	c, err := version.NewConstraint(m.Requires)
	if err != nil {
		return fmt.Errorf("%w: requires %q: %w", oerrors.ErrValidation, m.Requires, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: template %q requires CLI %s, running %s", oerrors.ErrValidation, m.ID, m.Requires, v)
	}
	return nil
}

// Template resolves file sources and converts the manifest into a validated
// generator.Template.
func (m *Manifest) Template(resolve Resolver) (generator.Template, error) {
	t := generator.Template{
		ID:              m.ID,
		Slug:            m.Slug,
		Name:            m.Name,
		Description:     m.Description,
		Version:         m.Version,
		Category:        generator.Category(m.Category),
		Frameworks:      m.Frameworks,
		Tags:            m.Tags,
		Dependencies:    m.Dependencies,
		DevDependencies: m.DevDependencies,
	}

	for _, v := range m.Variables {
		t.Variables = append(t.Variables, generator.TemplateVariable{
			Name:        v.Name,
			Type:        generator.VariableType(v.Type),
			Required:    v.Required,
			Default:     v.Default,
			Options:     v.Options,
			Description: v.Description,
			Prompt:      v.Prompt,
		})
	}

	for _, f := range m.Files {
		content := f.Content
		if f.Source != "" {
			if resolve == nil {
				return generator.Template{}, fmt.Errorf("%w: file %q: source %q given but no resolver", oerrors.ErrValidation, f.Path, f.Source)
			}
			text, err := resolve(f.Source)
			if err != nil {
				return generator.Template{}, fmt.Errorf("file %q: resolving %q: %w", f.Path, f.Source, err)
			}
			content = text
		}
		t.Files = append(t.Files, generator.TemplateFile{
			Path:      f.Path,
			Content:   content,
			Condition: f.Condition,
		})
	}

	if err := t.Validate(); err != nil {
		return generator.Template{}, fmt.Errorf("%w: %w", generator.ErrInvalidTemplate, err)
	}
	return t, nil
}

// Parse decodes manifest bytes and converts them to a template.
func Parse(data []byte, resolve Resolver) (generator.Template, error) {
	m, err := Decode(data)
	if err != nil {
		return generator.Template{}, err
	}
	return m.Template(resolve)
}
