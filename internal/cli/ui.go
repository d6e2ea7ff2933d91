package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/spacerabbit99982/abbund/pkg/parts"
	"github.com/spacerabbit99982/abbund/pkg/plan"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

// printError prints an error message.
func printError(format string, args ...any) {
	fmt.Println(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented detail line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}

// printRunStats prints a one-line run summary.
func printRunStats(res *plan.Result) {
	status := iconFresh
	statusStyle := styleComputed
	if res.FromCache {
		status = iconCached
		statusStyle = styleCached
	}
	line := fmt.Sprintf("%d parts · %d iterations · ", res.Summary.PartCount, len(res.Iters))
	fmt.Println("  " + StyleDim.Render(line) + statusStyle.Render(status))
}

// =============================================================================
// Tables
// =============================================================================

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		}).
		Headers(headers...)
}

// renderPartsTable formats the bill of parts.
func renderPartsTable(list []*parts.Part) string {
	t := newTable("Stk", "Bezeichnung", "Statik")
	for _, p := range list {
		status := StyleDim.Render("–")
		if p.Statics != nil {
			if p.Statics.Passed {
				status = StyleSuccess.Render(iconSuccess)
			} else {
				status = styleIconError.Render(iconError)
			}
		}
		t.Row(fmt.Sprintf("%d", p.Quantity), p.Description, status)
	}
	return t.Render()
}

// renderStaticsTable formats the deflection checks of all checked members.
func renderStaticsTable(list []*parts.Part) string {
	t := newTable("Bauteil", "Lastfall", "f [mm]", "zul. [mm]", "Ausnutzung")
	for _, p := range list {
		s := p.Statics
		if s == nil {
			continue
		}
		t.Row(
			p.Description,
			s.Description,
			fmt.Sprintf("%.1f", s.Deflection*1000),
			fmt.Sprintf("%.1f", s.Allowed*1000),
			fmt.Sprintf("%.0f%%", s.Utilization()*100),
		)
	}
	return t.Render()
}

// renderCuttingTable formats a stock-cutting plan.
func renderCuttingTable(list []*parts.Part) string {
	var b strings.Builder
	for _, p := range list {
		c := p.Cutting
		if c == nil {
			continue
		}
		b.WriteString(StyleTitle.Render(p.Description) + "\n")
		t := newTable("Anzahl", "Zuschnitte [m]", "Rest [m]")
		for _, bin := range c.Bins {
			cuts := make([]string, len(bin.Cuts))
			for i, cut := range bin.Cuts {
				cuts[i] = fmt.Sprintf("%.2f", cut)
			}
			t.Row(
				fmt.Sprintf("%d×", bin.Count),
				strings.Join(cuts, " + "),
				fmt.Sprintf("%.2f", c.StockLength-bin.Used()),
			)
		}
		b.WriteString(t.Render() + "\n")
		b.WriteString(StyleDim.Render(fmt.Sprintf("  %d Stangen à %.1fm, Verschnitt %.2fm",
			c.StockCount(), c.StockLength, c.Waste())) + "\n")
		for _, rej := range c.Rejected {
			b.WriteString(StyleWarning.Render(fmt.Sprintf("  Zuschnitt %.2fm länger als Stangenware", rej)) + "\n")
		}
	}
	return b.String()
}

// renderSummary formats the plan summary block.
func renderSummary(res *plan.Result) string {
	var b strings.Builder
	kv := func(key, value string) {
		b.WriteString(lipgloss.NewStyle().Foreground(colorGray).Width(16).Render(key) + " " + StyleValue.Render(value) + "\n")
	}
	kv("Holzvolumen", fmt.Sprintf("%.2f m³", res.Summary.TotalVolume))
	kv("Holzgewicht", fmt.Sprintf("%.0f kg", res.Summary.TotalWeight))
	kv("Schneelast", fmt.Sprintf("%.0f N/m²", res.Summary.SnowLoad))
	kv("Gesamtlast", fmt.Sprintf("%.0f N/m²", res.Summary.CombinedLoad))
	return b.String()
}
