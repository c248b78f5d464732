package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpContent generates help content with colors for the pager
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Wayfind Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Directory"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, j/k"), descStyle.Render("Move through the directory")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Enter"), descStyle.Render("Select the highlighted store")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("Esc"), descStyle.Render("Clear search, filter or selection")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search & Filter"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("/"), descStyle.Render("Search stores by name")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("c"), descStyle.Render("Cycle category filter")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Directions"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("d"), descStyle.Render("Get directions to the selected store")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Enter"), descStyle.Render("Pick your starting location")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("n, →"), descStyle.Render("Next instruction")))
	help.WriteString(fmt.Sprintf("  %s      %s\n", keyStyle.Render("p, ←"), descStyle.Render("Previous instruction")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("o"), descStyle.Render("View the full route sheet")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("x"), descStyle.Render("Cancel navigation")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("?"), descStyle.Render("Show this help")))
	help.WriteString(fmt.Sprintf("  %s         %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
