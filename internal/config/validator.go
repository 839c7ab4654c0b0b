package config

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
)

// maxRetries caps remote.retries.
const maxRetries = 10

// ValidationError is one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		fmt.Fprintf(&sb, "  %s: %s\n", err.Field, err.Message)
	}
	return sb.String()
}

// Validate checks a loaded configuration. Zero values are accepted because
// WithDefaults fills them.
func Validate(cfg *Config) error {
	var errs ValidationErrors

	for field, value := range map[string]string{
		"templatesDir": cfg.TemplatesDir,
		"cacheDir":     cfg.CacheDir,
	} {
		if value != "" && strings.TrimSpace(value) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "must not be whitespace only"})
		}
	}

	for field, value := range map[string]string{
		"remote.rawURL":  cfg.Remote.RawURL,
		"remote.treeURL": cfg.Remote.TreeURL,
	} {
		if value == "" {
			continue
		}
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, ValidationError{Field: field, Message: "must be an absolute http(s) URL"})
		}
	}

	if cfg.Remote.Timeout < 0 {
		errs = append(errs, ValidationError{Field: "remote.timeout", Message: "must not be negative"})
	}
	if cfg.Remote.Retries < 0 || cfg.Remote.Retries > maxRetries {
		errs = append(errs, ValidationError{Field: "remote.retries", Message: fmt.Sprintf("must be between 0 and %d", maxRetries)})
	}

	if len(errs) == 0 {
		return nil
	}
	slices.SortFunc(errs, func(a, b ValidationError) int {
		return strings.Compare(a.Field, b.Field)
	})
	return errs
}
