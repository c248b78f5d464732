package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	FloorHeader  lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Filter       lipgloss.Style
	DetailBox    lipgloss.Style
	NavBox       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Highlight    lipgloss.Style
	SelectionBg  lipgloss.Style
	Arrived      lipgloss.Style
	StepDistance lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		FloorHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		DetailBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		NavBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("78")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Highlight:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Arrived:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		StepDistance: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	}
}

// CategoryColor returns the color used for a category tag
func CategoryColor(category string) string {
	switch category {
	case "Fashion & Apparel":
		return "213"
	case "Electronics":
		return "39"
	case "Food & Dining":
		return "214"
	case "Beauty & Health":
		return "78"
	case "Home & Garden":
		return "180"
	case "Entertainment":
		return "99"
	case "Services":
		return "245"
	default:
		return "252"
	}
}
