package generator

import (
	oerrors "github.com/magicappdev/cli/internal/errors"
)

// kindError is a sentinel that also matches a broader error category from
// internal/errors, so callers can map it to an exit code.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

var (
	// ErrInvalidVariables is returned when supplied variables fail validation.
	ErrInvalidVariables error = &kindError{"invalid variables", oerrors.ErrValidation}

	// ErrUndefinedVariable is returned when a path placeholder has no value.
	ErrUndefinedVariable error = &kindError{"undefined variable", oerrors.ErrValidation}

	// ErrPathEscape is returned when a compiled path leaves the output directory.
	ErrPathEscape error = &kindError{"path escapes output directory", oerrors.ErrValidation}

	// ErrInvalidTemplate is returned for templates that break structural invariants.
	ErrInvalidTemplate error = &kindError{"invalid template", oerrors.ErrValidation}

	// ErrDuplicateTemplate is returned when an id or slug is already registered.
	ErrDuplicateTemplate error = &kindError{"duplicate template", oerrors.ErrConflict}

	// ErrTemplateNotFound is returned when a lookup matches nothing.
	ErrTemplateNotFound error = &kindError{"template not found", oerrors.ErrNotFound}
)
