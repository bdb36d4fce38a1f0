package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// Terminal styles shared by the output-producing commands.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F97316"))
)

// renderTable lays out rows under a styled header with padded columns.
func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i])))
		b.WriteString("  ")
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(pad(cell, widths[i]))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
