package generator

import (
	"fmt"
	"maps"
	"regexp"
	"strings"

	"github.com/aymerick/raymond"
)

// Compiler renders template paths and contents. The transform set is fixed
// at construction; nothing is registered in process-wide state, so one
// Compiler may serve concurrent generation runs.
type Compiler struct {
	transforms map[string]Transform
}

// NewCompiler creates a compiler with the given transforms. A nil map means
// DefaultTransforms.
func NewCompiler(transforms map[string]Transform) *Compiler {
	if transforms == nil {
		transforms = DefaultTransforms()
	}
	return &Compiler{transforms: maps.Clone(transforms)}
}

// CompileContent renders Handlebars content. Values are inserted without
// HTML escaping.
func (c *Compiler) CompileContent(text string, vars Variables) (string, error) {
	tpl, err := raymond.Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing content: %w", err)
	}

	helpers := logicHelpers()
	for name, fn := range c.transforms {
		if _, taken := helpers[name]; taken {
			continue
		}
		helpers[name] = transformHelper(fn)
	}
	tpl.RegisterHelpers(helpers)

	out, err := tpl.Exec(unescapedMap(vars))
	if err != nil {
		return "", fmt.Errorf("executing content: %w", err)
	}
	return out, nil
}

// CompilePath renders a path template. Only {{identifier}} and
// {{transform identifier}} placeholders are allowed, and every identifier
// must be set in vars.
func (c *Compiler) CompilePath(text string, vars Variables) (string, error) {
	segs, err := parsePathTemplate(text)
	if err != nil {
		return "", fmt.Errorf("path %q: %w", text, err)
	}

	var b strings.Builder
	for _, seg := range segs {
		if seg.name == "" {
			b.WriteString(seg.literal)
			continue
		}

		value, ok := vars[seg.name]
		if !ok || value == nil {
			return "", fmt.Errorf("path %q: %w %q", text, ErrUndefinedVariable, seg.name)
		}

		s := jsString(value)
		if seg.transform != "" {
			fn, ok := c.transforms[seg.transform]
			if !ok {
				return "", fmt.Errorf("path %q: unknown helper %q", text, seg.transform)
			}
			s = fn(s)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// Transforms returns the names of the configured transforms.
func (c *Compiler) Transforms() []string {
	names := make([]string, 0, len(c.transforms))
	for name := range c.transforms {
		names = append(names, name)
	}
	return names
}

var (
	placeholderRegex = regexp.MustCompile(`\{\{(.*?)\}\}`)
	identifierRegex  = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)
)

// pathSegment is either literal text or a placeholder.
type pathSegment struct {
	literal   string
	transform string
	name      string
}

func parsePathTemplate(text string) ([]pathSegment, error) {
	var segs []pathSegment
	last := 0
	for _, m := range placeholderRegex.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > last {
			segs = append(segs, pathSegment{literal: text[last:m[0]]})
		}
		last = m[1]

		fields := strings.Fields(text[m[2]:m[3]])
		var seg pathSegment
		switch len(fields) {
		case 1:
			seg.name = fields[0]
		case 2:
			seg.transform, seg.name = fields[0], fields[1]
			if !identifierRegex.MatchString(seg.transform) {
				return nil, fmt.Errorf("invalid helper %q", seg.transform)
			}
		default:
			return nil, fmt.Errorf("unsupported placeholder %q", text[m[0]:m[1]])
		}
		if !identifierRegex.MatchString(seg.name) {
			return nil, fmt.Errorf("unsupported placeholder %q", text[m[0]:m[1]])
		}
		segs = append(segs, seg)
	}
	if last < len(text) {
		segs = append(segs, pathSegment{literal: text[last:]})
	}
	return segs, nil
}
