package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"
)

// Format selects how command results are printed.
type Format string

const (
	// FormatText prints human-readable text.
	FormatText Format = "text"

	// FormatYAML prints YAML.
	FormatYAML Format = "yaml"

	// FormatJSON prints indented JSON.
	FormatJSON Format = "json"
)

// ValidFormats returns the accepted --output values.
func ValidFormats() []string {
	return []string{string(FormatText), string(FormatYAML), string(FormatJSON)}
}

// ParseFormat parses an --output value. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid output format %q (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// Encode writes v to w in a structured format. Text is not a structured
// format and is rejected.
func Encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("format %q is not structured", format)
	}
}
