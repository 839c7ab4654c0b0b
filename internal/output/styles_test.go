package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.Color
		wantDim  bool
	}{
		{name: "created returns green", status: StatusCreated, wantFG: ColorGreen},
		{name: "planned returns cyan", status: StatusPlanned, wantFG: ColorCyan},
		{name: "skipped returns yellow", status: StatusSkipped, wantFG: ColorYellow},
		{name: "excluded returns faint", status: StatusExcluded, wantDim: true},
		{name: "failed returns bold red", status: StatusFailed, wantBold: true, wantFG: ColorBoldRed},
		{name: "unknown returns default unstyled", status: "unknown-value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			assert.Equal(t, tt.wantBold, style.GetBold())
			assert.Equal(t, tt.wantDim, style.GetFaint())
			if tt.wantFG != "" {
				assert.Equal(t, tt.wantFG, style.GetForeground())
			}
		})
	}
}

func TestFormatFileLine(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status string
	}{
		{"short path", "index.ts", StatusCreated},
		{"nested path", "Button/Button.module.css", StatusSkipped},
		{"long path", strings.Repeat("a", 60) + ".tsx", StatusPlanned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := FormatFileLine(tt.path, tt.status)
			assert.Contains(t, line, "f:")
			assert.Contains(t, line, tt.path)
			assert.Contains(t, line, tt.status)
			assert.Less(t, strings.Index(line, tt.path), strings.Index(line, tt.status))
		})
	}
}

func TestFormatCheckmark(t *testing.T) {
	out := FormatCheckmark("Generated 3 files")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Generated 3 files")
}
