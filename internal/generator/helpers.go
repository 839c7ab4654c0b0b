package generator

import (
	"strings"

	"github.com/aymerick/raymond"
	"github.com/gosimple/slug"
	"github.com/iancoleman/strcase"
)

// Transform is a named pure text transform usable in paths and contents.
type Transform func(string) string

// DefaultTransforms returns the case-conversion helpers available to every
// built-in template.
func DefaultTransforms() map[string]Transform {
	return map[string]Transform{
		"camelCase":  strcase.ToLowerCamel,
		"pascalCase": strcase.ToCamel,
		"kebabCase":  strcase.ToKebab,
		"snakeCase":  strcase.ToSnake,
		"slugify":    slug.Make,
		"upperCase":  strings.ToUpper,
		"lowerCase":  strings.ToLower,
	}
}

// logicHelpers are the boolean helpers usable inside block expressions,
// e.g. {{#if (and typescript (eq styling "tailwind"))}}.
//
// Every helper takes a trailing *raymond.Options so raymond rejects a call
// with the wrong number of arguments instead of passing the options value
// in place of a missing one.
func logicHelpers() map[string]any {
	return map[string]any{
		"eq": func(a, b any, _ *raymond.Options) bool {
			return strictEqual(plain(a), plain(b))
		},
		"ne": func(a, b any, _ *raymond.Options) bool {
			return !strictEqual(plain(a), plain(b))
		},
		"and": func(a, b any, _ *raymond.Options) bool {
			return truthy(plain(a)) && truthy(plain(b))
		},
		"or": func(a, b any, _ *raymond.Options) bool {
			return truthy(plain(a)) || truthy(plain(b))
		},
		"not": func(a any, _ *raymond.Options) bool {
			return !truthy(plain(a))
		},
	}
}

// transformHelper adapts a Transform to the raymond helper calling convention.
// The result is marked safe so it is inserted verbatim.
func transformHelper(fn Transform) func(any, *raymond.Options) raymond.SafeString {
	return func(v any, _ *raymond.Options) raymond.SafeString {
		return raymond.SafeString(fn(jsString(plain(v))))
	}
}

// plain strips the SafeString wrapper applied to context values.
func plain(v any) any {
	if s, ok := v.(raymond.SafeString); ok {
		return string(s)
	}
	return v
}

// unescaped wraps every string in v as raymond.SafeString so interpolation
// inserts values verbatim instead of HTML-escaping them.
func unescaped(v any) any {
	switch x := v.(type) {
	case string:
		return raymond.SafeString(x)
	case Variables:
		return unescapedMap(x)
	case map[string]any:
		return unescapedMap(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = unescaped(e)
		}
		return out
	case []string:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = raymond.SafeString(e)
		}
		return out
	default:
		return v
	}
}

func unescapedMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, e := range m {
		out[k] = unescaped(e)
	}
	return out
}
