// Package printspec merges the printing parameters found at every level of a
// file's hierarchy into one PrintSpec and turns raw page counts into sheets.
package printspec

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/printquote/internal/rules"
)

// PrintSpec is the resolved set of printing parameters for one file.
type PrintSpec struct {
	LayoutDivisor int  `json:"layout_divisor"`
	Copies        int  `json:"copies"`
	Color         bool `json:"color"`
	// Duplex is informational; it does not change the sheet count.
	Duplex     bool `json:"duplex"`
	Suppressed bool `json:"suppressed,omitempty"`
}

// Default is used for every parameter no level mentions.
func Default() PrintSpec {
	return PrintSpec{LayoutDivisor: 1, Copies: 1, Color: false, Duplex: true}
}

// Resolve merges parameters from the file name and the hierarchy texts
// (immediate parent first). For each parameter the first level that states
// it wins. A "do not print" marker at any level suppresses the file.
func Resolve(fileText string, hierarchy []string) PrintSpec {
	spec := Default()
	texts := make([]string, 0, 1+len(hierarchy))
	texts = append(texts, fileText)
	texts = append(texts, hierarchy...)

	var haveLayout, haveCopies, haveColor, haveDuplex bool
	for _, t := range texts {
		if !haveLayout {
			if n, ok := rules.ExtractLayoutDivisor(t); ok {
				spec.LayoutDivisor, haveLayout = n, true
			}
		}
		if !haveCopies {
			if n, ok := rules.ExtractCopyCount(t); ok {
				spec.Copies, haveCopies = n, true
			}
		}
		if !haveColor {
			if c, ok := rules.ExtractColor(t); ok {
				spec.Color, haveColor = c, true
			}
		}
		if !haveDuplex {
			if d, ok := rules.ExtractDuplex(t); ok {
				spec.Duplex, haveDuplex = d, true
			}
		}
		if rules.IsPrintSuppressed(t) {
			spec.Suppressed = true
		}
	}
	return spec
}

// String renders the print settings for the audit log, e.g. "4-up x3 color duplex".
func (s PrintSpec) String() string {
	parts := make([]string, 0, 5)
	parts = append(parts, fmt.Sprintf("%d-up", max(s.LayoutDivisor, 1)))
	parts = append(parts, fmt.Sprintf("x%d", max(s.Copies, 1)))
	if s.Color {
		parts = append(parts, "color")
	} else {
		parts = append(parts, "mono")
	}
	if s.Duplex {
		parts = append(parts, "duplex")
	} else {
		parts = append(parts, "simplex")
	}
	if s.Suppressed {
		parts = append(parts, "no-print")
	}
	return strings.Join(parts, " ")
}

// ComputeSheets returns ceil(raw/divisor) * copies. The ceiling is taken
// once, on the layout step. Divisor and copies below 1 count as 1.
func ComputeSheets(raw int, spec PrintSpec) int {
	if raw <= 0 || spec.Suppressed {
		return 0
	}
	divisor := max(spec.LayoutDivisor, 1)
	copies := max(spec.Copies, 1)
	return ceilDiv(raw, divisor) * copies
}

// Formula shows how ComputeSheets got its result, e.g. "(85 ÷ 4) → 22 × 1".
func Formula(raw int, spec PrintSpec) string {
	if spec.Suppressed {
		return "no print → 0"
	}
	raw = max(raw, 0)
	divisor := max(spec.LayoutDivisor, 1)
	copies := max(spec.Copies, 1)
	return fmt.Sprintf("(%d ÷ %d) → %d × %d", raw, divisor, ceilDiv(raw, divisor), copies)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
