package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Condition is a parsed file condition. The grammar has exactly four shapes:
//
//	!name            Negation
//	name === literal Equal
//	name !== literal NotEqual
//	name             Truthy
type Condition interface {
	Eval(vars Variables) bool
	String() string
}

// Negation is true when the variable is falsy.
type Negation struct {
	Name string
}

// Equal compares a variable (or the left text itself when no such variable
// is set) with a literal by kind and value.
type Equal struct {
	Name    string
	Literal any
}

// NotEqual is the negation of Equal. Its literal is never parsed as a number.
type NotEqual struct {
	Name    string
	Literal any
}

// Truthy is true when the variable is truthy.
type Truthy struct {
	Name string
}

func (c Negation) Eval(vars Variables) bool { return !truthy(vars[c.Name]) }
func (c Equal) Eval(vars Variables) bool    { return strictEqual(resolveOperand(c.Name, vars), c.Literal) }
func (c NotEqual) Eval(vars Variables) bool { return !strictEqual(resolveOperand(c.Name, vars), c.Literal) }
func (c Truthy) Eval(vars Variables) bool   { return truthy(vars[c.Name]) }

func (c Negation) String() string { return "!" + c.Name }
func (c Equal) String() string    { return c.Name + " === " + formatLiteral(c.Literal) }
func (c NotEqual) String() string { return c.Name + " !== " + formatLiteral(c.Literal) }
func (c Truthy) String() string   { return c.Name }

// ParseCondition parses a condition expression. Shapes are tried in order:
// leading "!", then "===", then "!==", then a bare variable name.
func ParseCondition(expr string) (Condition, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, fmt.Errorf("empty condition")
	}

	if rest, ok := strings.CutPrefix(trimmed, "!"); ok {
		name := strings.TrimSpace(rest)
		if name == "" {
			return nil, fmt.Errorf("condition %q: missing variable after '!'", expr)
		}
		return Negation{Name: name}, nil
	}

	if left, right, ok := strings.Cut(trimmed, "==="); ok {
		name, lit, err := splitComparison(expr, left, right)
		if err != nil {
			return nil, err
		}
		return Equal{Name: name, Literal: parseLiteral(lit, true)}, nil
	}

	if left, right, ok := strings.Cut(trimmed, "!=="); ok {
		name, lit, err := splitComparison(expr, left, right)
		if err != nil {
			return nil, err
		}
		return NotEqual{Name: name, Literal: parseLiteral(lit, false)}, nil
	}

	return Truthy{Name: trimmed}, nil
}

// Evaluate parses expr and evaluates it against vars.
func Evaluate(expr string, vars Variables) (bool, error) {
	cond, err := ParseCondition(expr)
	if err != nil {
		return false, err
	}
	return cond.Eval(vars), nil
}

func splitComparison(expr, left, right string) (string, string, error) {
	name := strings.TrimSpace(left)
	lit := strings.TrimSpace(right)
	if name == "" {
		return "", "", fmt.Errorf("condition %q: missing left operand", expr)
	}
	if lit == "" {
		return "", "", fmt.Errorf("condition %q: missing right operand", expr)
	}
	return name, lit, nil
}

// parseLiteral turns the right-hand side of a comparison into a value:
// true/false, a quoted string, optionally a number, otherwise the raw text.
func parseLiteral(s string, numeric bool) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	if numeric {
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) {
			return f
		}
	}
	return s
}

// resolveOperand returns the variable's value, or the name itself when the
// variable is unset or nil.
func resolveOperand(name string, vars Variables) any {
	if v, ok := vars[name]; ok && v != nil {
		return v
	}
	return name
}

func formatLiteral(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return jsString(v)
}
