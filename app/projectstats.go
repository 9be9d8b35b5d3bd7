package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SummarizeProject returns a one-row summary of a detected project: its name,
// the framework constraint and the markers that identified it.
func SummarizeProject(name, frameworkVersion string, markers []string) string {
	var items []string
	if name != "" {
		items = append(items, name)
	}
	if frameworkVersion != "" {
		items = append(items, "CodeIgniter "+frameworkVersion)
	}
	items = append(items, markers...)
	return RenderItemsHorizontally(items, 6)
}

// RenderItemsHorizontally displays items in a grid of up to maxCols columns
// separated by bullets.
func RenderItemsHorizontally(items []string, maxCols int) string {
	if len(items) == 0 || maxCols <= 0 {
		return ""
	}

	cols := maxCols
	if len(items) < cols {
		cols = len(items)
	}
	rows := (len(items) + cols - 1) / cols

	colStyle := lipgloss.NewStyle().
		MarginRight(2).
		Align(lipgloss.Left).
		Foreground(lipgloss.Color("#888"))
	bullet := lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Render("•  ")

	var lines []string
	for r := 0; r < rows; r++ {
		var line string
		for c := 0; c < cols; c++ {
			index := c*rows + r
			if index >= len(items) {
				break
			}
			if c > 0 {
				line += bullet
			}
			line += colStyle.Render(items[index])
		}
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n") + "\n"
}
