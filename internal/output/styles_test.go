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
		{
			name:   "written returns green",
			status: StatusWritten,
			wantFG: colorGreen,
		},
		{
			name:    "up-to-date returns faint",
			status:  StatusUpToDate,
			wantDim: true,
		},
		{
			name:   "skipped returns yellow",
			status: StatusSkipped,
			wantFG: colorYellow,
		},
		{
			name:     "failed returns bold red",
			status:   StatusFailed,
			wantBold: true,
			wantFG:   colorBoldRed,
		},
		{
			name:   "unknown returns default unstyled",
			status: "unknown-value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := statusStyle(tt.status)
			if tt.wantBold {
				assert.True(t, style.GetBold(), "expected bold")
			}
			if tt.wantFG != "" {
				assert.Equal(t, tt.wantFG, style.GetForeground(), "foreground color mismatch")
			}
			if tt.wantDim {
				assert.True(t, style.GetFaint(), "expected faint")
			}
		})
	}
}

func TestFormatModuleLine(t *testing.T) {
	tests := []struct {
		name     string
		address  string
		status   string
		wantText string
	}{
		{
			name:     "nested module",
			address:  "Core:CoreApi",
			status:   StatusWritten,
			wantText: "Core:CoreApi",
		},
		{
			name:     "root module (empty address)",
			address:  "",
			status:   StatusUpToDate,
			wantText: "<root>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatModuleLine(tt.address, tt.status)

			// The rendered string contains ANSI codes. Strip them for content checks.
			assert.Contains(t, result, tt.wantText, "should contain module address")
			assert.Contains(t, result, tt.status, "should contain status text")
			assert.True(t, strings.HasPrefix(stripAnsi(result), "m:"), "should start with m: prefix")
		})
	}

	t.Run("alignment consistency", func(t *testing.T) {
		// Two lines with different address lengths should have status starting
		// at the same position (both addresses shorter than min column width).
		line1 := FormatModuleLine("Core", StatusWritten)
		line2 := FormatModuleLine("Core:CoreApi", StatusWritten)

		stripped1 := stripAnsi(line1)
		stripped2 := stripAnsi(line2)

		idx1 := strings.Index(stripped1, StatusWritten)
		idx2 := strings.Index(stripped2, StatusWritten)

		assert.Equal(t, idx1, idx2, "status words should align to same column")
	})
}

func TestFormatCheckmark(t *testing.T) {
	result := FormatCheckmark("Descriptor written")
	assert.Contains(t, result, "✔", "should contain checkmark")
	assert.Contains(t, result, "Descriptor written", "should contain message")
}

func TestFormatVetCheck(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		detail     string
		wantLabel  string
		wantDetail string
	}{
		{
			name:       "with detail",
			label:      "Waterfile found",
			detail:     "Core/CoreApi/water.cue",
			wantLabel:  "Waterfile found",
			wantDetail: "Core/CoreApi/water.cue",
		},
		{
			name:      "without detail",
			label:     "Inheritance resolved",
			detail:    "",
			wantLabel: "Inheritance resolved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatVetCheck(tt.label, tt.detail)

			assert.Contains(t, result, "✔", "should contain checkmark")
			assert.Contains(t, result, tt.wantLabel, "should contain label")

			if tt.detail != "" {
				assert.Contains(t, result, tt.wantDetail, "should contain detail")
			} else {
				stripped := stripAnsi(result)
				assert.False(t, strings.HasSuffix(stripped, " "), "should not have trailing whitespace when detail is empty")
			}
		})
	}

	t.Run("alignment consistency", func(t *testing.T) {
		line1 := FormatVetCheck("Waterfile found", "Core/water.cue")
		line2 := FormatVetCheck("Schema validation passed", "Core/CoreApi/water.cue")

		stripped1 := stripAnsi(line1)
		stripped2 := stripAnsi(line2)

		idx1 := strings.Index(stripped1, "Core/water.cue")
		idx2 := strings.Index(stripped2, "Core/CoreApi/water.cue")

		assert.Equal(t, idx1, idx2, "detail text should align to same column")
	})
}

func TestFormatSummary(t *testing.T) {
	result := stripAnsi(FormatSummary(3, 2, 1, 0))
	assert.Contains(t, result, "3 written")
	assert.Contains(t, result, "2 up-to-date")
	assert.Contains(t, result, "1 skipped")
	assert.NotContains(t, result, "failed")

	onlyWritten := stripAnsi(FormatSummary(1, 0, 0, 0))
	assert.Equal(t, "1 written", onlyWritten)
}

// stripAnsi removes ANSI escape sequences for content assertions.
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}
	return result.String()
}
