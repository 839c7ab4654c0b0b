package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthinessTable(t *testing.T) {
	falsy := map[string]any{
		"zero":          0,
		"float zero":    0.0,
		"empty string":  "",
		"nil":           nil,
		"false":         false,
	}
	for name, v := range falsy {
		t.Run("falsy "+name, func(t *testing.T) {
			vars := Variables{"v": v}
			got, err := Evaluate("v", vars)
			require.NoError(t, err)
			assert.False(t, got)

			got, err = Evaluate("!v", vars)
			require.NoError(t, err)
			assert.True(t, got)
		})
	}

	t.Run("falsy undefined", func(t *testing.T) {
		got, err := Evaluate("v", Variables{})
		require.NoError(t, err)
		assert.False(t, got)
		got, err = Evaluate("!v", Variables{})
		require.NoError(t, err)
		assert.True(t, got)
	})

	truthyValues := map[string]any{
		"string":      "x",
		"one":         1,
		"true":        true,
		"empty slice": []any{},
		"empty map":   map[string]any{},
	}
	for name, v := range truthyValues {
		t.Run("truthy "+name, func(t *testing.T) {
			got, err := Evaluate("v", Variables{"v": v})
			require.NoError(t, err)
			assert.True(t, got)
		})
	}
}

func TestParseCondition(t *testing.T) {
	tests := []struct {
		expr string
		want Condition
	}{
		{"!typescript", Negation{Name: "typescript"}},
		{"!  typescript ", Negation{Name: "typescript"}},
		{" !typescript", Negation{Name: "typescript"}},
		{"\t!typescript\n", Negation{Name: "typescript"}},
		{`styling === "tailwind"`, Equal{Name: "styling", Literal: "tailwind"}},
		{"styling === 'css'", Equal{Name: "styling", Literal: "css"}},
		{"count === 3", Equal{Name: "count", Literal: 3.0}},
		{"flag === true", Equal{Name: "flag", Literal: true}},
		{"mode === dark", Equal{Name: "mode", Literal: "dark"}},
		{"a === b === c", Equal{Name: "a", Literal: "b === c"}},
		{`styling !== "css"`, NotEqual{Name: "styling", Literal: "css"}},
		{"count !== 3", NotEqual{Name: "count", Literal: "3"}},
		{"flag !== false", NotEqual{Name: "flag", Literal: false}},
		{" withTest ", Truthy{Name: "withTest"}},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseCondition(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_LeadingWhitespaceNegation(t *testing.T) {
	vars := Variables{"typescript": true}

	got, err := Evaluate(" !typescript", vars)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = Evaluate(" !typescript", Variables{})
	require.NoError(t, err)
	assert.True(t, got)
}

func TestParseCondition_Malformed(t *testing.T) {
	for _, expr := range []string{"", "   ", "!", "! ", "=== x", "x ===", "x !== "} {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseCondition(expr)
			assert.Error(t, err)
		})
	}
}

func TestEvaluate(t *testing.T) {
	vars := Variables{
		"styling":    "tailwind",
		"count":      3,
		"typescript": true,
		"empty":      nil,
	}

	tests := []struct {
		expr string
		want bool
	}{
		{`styling === "tailwind"`, true},
		{`styling === "css"`, false},
		{"count === 3", true},
		{"count === '3'", false},
		{"typescript === true", true},
		{"typescript === 'true'", false},
		// Equality falls back to the left text when no variable is set.
		{"dark === dark", true},
		{"empty === empty", true},
		{`styling !== "css"`, true},
		{`styling !== "tailwind"`, false},
		// Inequality never parses numbers, so a numeric variable always differs.
		{"count !== 3", true},
		{"typescript !== true", false},
		{"!typescript", false},
		{"typescript", true},
		{"missing", false},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := Evaluate(tt.expr, vars)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConditionString(t *testing.T) {
	assert.Equal(t, "!ts", Negation{Name: "ts"}.String())
	assert.Equal(t, `s === "css"`, Equal{Name: "s", Literal: "css"}.String())
	assert.Equal(t, "n === 3", Equal{Name: "n", Literal: 3.0}.String())
	assert.Equal(t, "b !== true", NotEqual{Name: "b", Literal: true}.String())
	assert.Equal(t, "ts", Truthy{Name: "ts"}.String())
}
