package generator

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationResult is the outcome of Validate.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// Validate checks supplied variables against their definitions. Every
// violation is reported; undeclared variables are ignored.
func Validate(supplied Variables, defs []TemplateVariable) ValidationResult {
	var errs []string

	for _, def := range defs {
		value, ok := supplied[def.Name]
		if !ok {
			if def.Required {
				errs = append(errs, fmt.Sprintf("Missing required variable: %s", def.Name))
			}
			continue
		}

		switch def.Type {
		case TypeString:
			if !matchesType(TypeString, value) {
				errs = append(errs, fmt.Sprintf("Variable %q must be a string", def.Name))
			}
		case TypeBoolean:
			if !matchesType(TypeBoolean, value) {
				errs = append(errs, fmt.Sprintf("Variable %q must be a boolean", def.Name))
			}
		case TypeNumber:
			if !matchesType(TypeNumber, value) {
				errs = append(errs, fmt.Sprintf("Variable %q must be a number", def.Name))
			}
		case TypeSelect:
			if !slices.Contains(def.Options, jsString(value)) {
				errs = append(errs, fmt.Sprintf("Variable %q must be one of: %s", def.Name, strings.Join(def.Options, ", ")))
			}
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ApplyDefaults returns a copy of supplied with the default of every absent
// variable filled in.
func ApplyDefaults(supplied Variables, defs []TemplateVariable) Variables {
	out := make(Variables, len(supplied)+len(defs))
	for k, v := range supplied {
		out[k] = v
	}
	for _, def := range defs {
		if _, ok := out[def.Name]; ok || def.Default == nil {
			continue
		}
		out[def.Name] = def.Default
	}
	return out
}
