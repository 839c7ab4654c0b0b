package generate

import (
	"fmt"
	"maps"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	oerrors "github.com/magicappdev/cli/internal/errors"
	"github.com/magicappdev/cli/internal/generator"
)

// collectVariables merges the --vars file and --set values (in that order)
// and fills declared defaults for anything still unset.
func collectVariables(varsFile string, sets []string, tmpl generator.Template) (generator.Variables, error) {
	vars := generator.Variables{}

	if varsFile != "" {
		fromFile, err := readVarsFile(varsFile)
		if err != nil {
			return nil, err
		}
		maps.Copy(vars, fromFile)
	}

	fromSet, err := parseSetValues(sets, tmpl.Variables)
	if err != nil {
		return nil, err
	}
	maps.Copy(vars, fromSet)

	return generator.ApplyDefaults(vars, tmpl.Variables), nil
}

// readVarsFile reads a YAML mapping of variable values.
func readVarsFile(path string) (generator.Variables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("variables file not found", path, "")
		}
		return nil, fmt.Errorf("reading variables file: %w", err)
	}

	var vars map[string]any
	if err := yaml.Unmarshal(data, &vars); err != nil {
		return nil, oerrors.NewValidationError(err.Error(), path, "", "The variables file must be a YAML mapping of name: value.")
	}
	return vars, nil
}

// parseSetValues parses name=value pairs. Values are converted using the
// declared type of the variable; undeclared names stay strings.
func parseSetValues(sets []string, defs []generator.TemplateVariable) (generator.Variables, error) {
	types := make(map[string]generator.VariableType, len(defs))
	for _, d := range defs {
		types[d.Name] = d.Type
	}

	vars := make(generator.Variables, len(sets))
	for _, s := range sets {
		name, raw, ok := strings.Cut(s, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("invalid --set value %q", s), "", "", "Use --set name=value.")
		}

		switch types[name] {
		case generator.TypeBoolean:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, oerrors.NewValidationError(
					fmt.Sprintf("%q is not a boolean", raw), "", name, "Use true or false.")
			}
			vars[name] = b
		case generator.TypeNumber:
			n, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, oerrors.NewValidationError(
					fmt.Sprintf("%q is not a number", raw), "", name, "")
			}
			vars[name] = n
		default:
			vars[name] = raw
		}
	}
	return vars, nil
}
