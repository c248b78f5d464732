package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StoreRow is one directory line
type StoreRow struct {
	Index      int // absolute row index, for cursor matching
	Name       string
	Categories []string
	Featured   bool
}

// FloorSection groups the rows of one floor
type FloorSection struct {
	Name   string
	Stores []StoreRow
}

// StoreDetail is the detail panel content for the selected store
type StoreDetail struct {
	Name        string
	FloorName   string
	Categories  []string
	Description string
	Hours       string
	Phone       string
	Website     string
	ImageCount  int
}

// NavCard is the navigation panel content for an active session
type NavCard struct {
	Prompt      string // shown instead of a step while picking an origin
	StepText    string
	StepNum     int
	StepTotal   int
	Bearing     float64
	Destination string
	Arrived     bool
}

// Frame is everything the renderer needs for one screen
type Frame struct {
	Width          int
	VenueName      string
	FloorName      string // current floor indicator
	Loading        bool
	Query          string
	Category       string
	SearchActive   bool
	SearchInput    string // rendered textinput view
	Floors         []FloorSection
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int
	TotalRows      int
	Detail         *StoreDetail
	Nav            *NavCard
	Status         string
	StatusIsError  bool
}

// Renderer renders the directory view
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new view renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render builds the full frame
func (r *Renderer) Render(f Frame) string {
	var b strings.Builder

	title := "Wayfind"
	if f.VenueName != "" {
		title = fmt.Sprintf("Wayfind · %s", f.VenueName)
	}
	b.WriteString(r.styles.Title.Render(title))
	if f.FloorName != "" {
		b.WriteString(r.styles.Dim.Render("  " + f.FloorName))
	}
	b.WriteString("\n")

	if f.Loading {
		b.WriteString(r.styles.Dim.Render("Loading venue..."))
		b.WriteString("\n")
		return r.styles.Main.Render(b.String())
	}

	r.renderFilterLine(&b, f)
	r.renderDirectory(&b, f)

	if f.Nav != nil {
		b.WriteString("\n")
		b.WriteString(r.renderNavCard(f.Nav))
		b.WriteString("\n")
	} else if f.Detail != nil {
		b.WriteString("\n")
		b.WriteString(r.renderDetail(f.Detail))
		b.WriteString("\n")
	}

	if f.Status != "" {
		style := r.styles.Status
		if f.StatusIsError {
			style = r.styles.StatusError
		}
		b.WriteString(style.Render(f.Status))
		b.WriteString("\n")
	}

	b.WriteString(r.styles.Help.Render("↑/↓ browse · enter select · / search · c category · d directions · ? help · q quit"))

	return r.styles.Main.Render(b.String())
}

func (r *Renderer) renderFilterLine(b *strings.Builder, f Frame) {
	switch {
	case f.SearchActive:
		b.WriteString(f.SearchInput)
		b.WriteString("\n")
	case f.Query != "":
		b.WriteString(r.styles.Filter.Render(fmt.Sprintf("Search: %q", f.Query)))
		b.WriteString(r.styles.Dim.Render("  (esc to clear)"))
		b.WriteString("\n")
	case f.Category != "":
		b.WriteString(r.styles.Filter.Render(fmt.Sprintf("Category: %s", f.Category)))
		b.WriteString(r.styles.Dim.Render("  (esc to clear)"))
		b.WriteString("\n")
	}
}

func (r *Renderer) renderDirectory(b *strings.Builder, f Frame) {
	if f.TotalRows == 0 {
		b.WriteString(r.styles.Dim.Render("  No stores match."))
		b.WriteString("\n")
		return
	}

	end := f.ViewportOffset + f.ViewportHeight
	for _, floor := range f.Floors {
		headerShown := false
		for _, row := range floor.Stores {
			if row.Index < f.ViewportOffset || row.Index >= end {
				continue
			}
			if !headerShown {
				b.WriteString(r.styles.FloorHeader.Render(floor.Name))
				b.WriteString("\n")
				headerShown = true
			}
			b.WriteString(r.renderRow(row, row.Index == f.SelectedIndex))
			b.WriteString("\n")
		}
	}

	if f.ViewportOffset > 0 || end < f.TotalRows {
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("  %d-%d of %d",
			f.ViewportOffset+1, minInt(end, f.TotalRows), f.TotalRows)))
		b.WriteString("\n")
	}
}

func (r *Renderer) renderRow(row StoreRow, selected bool) string {
	cursor := "  "
	if selected {
		cursor = "> "
	}

	name := row.Name
	if row.Featured {
		name += " ★"
	}

	var tags string
	if len(row.Categories) > 0 {
		parts := make([]string, len(row.Categories))
		for i, c := range row.Categories {
			parts[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(CategoryColor(c))).Render(c)
		}
		tags = "  " + strings.Join(parts, ", ")
	}

	line := fmt.Sprintf("%s%-32s%s", cursor, name, tags)
	if selected {
		return r.styles.SelectionBg.Render(line)
	}
	return line
}

func (r *Renderer) renderDetail(d *StoreDetail) string {
	var b strings.Builder

	b.WriteString(r.styles.Highlight.Render(d.Name))
	b.WriteString(r.styles.Dim.Render("  " + d.FloorName))
	b.WriteString("\n")

	if len(d.Categories) > 0 {
		b.WriteString(strings.Join(d.Categories, ", "))
		b.WriteString("\n")
	}
	if d.Description != "" {
		b.WriteString(d.Description)
		b.WriteString("\n")
	}
	if d.Hours != "" {
		fmt.Fprintf(&b, "Hours:   %s\n", d.Hours)
	}
	if d.Phone != "" {
		fmt.Fprintf(&b, "Phone:   %s\n", d.Phone)
	}
	if d.Website != "" {
		fmt.Fprintf(&b, "Web:     %s\n", d.Website)
	}
	if d.ImageCount > 0 {
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("%d photos", d.ImageCount)))
		b.WriteString("\n")
	}
	b.WriteString(r.styles.Dim.Render("d: directions here"))

	return r.styles.DetailBox.Render(strings.TrimRight(b.String(), "\n"))
}

func (r *Renderer) renderNavCard(n *NavCard) string {
	var b strings.Builder

	if n.Prompt != "" {
		b.WriteString(r.styles.Highlight.Render(fmt.Sprintf("Directions to %s", n.Destination)))
		b.WriteString("\n")
		b.WriteString(n.Prompt)
		return r.styles.NavBox.Render(b.String())
	}

	if n.Arrived {
		b.WriteString(r.styles.Arrived.Render(fmt.Sprintf("You have arrived at %s", n.Destination)))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("x: done"))
		return r.styles.NavBox.Render(b.String())
	}

	fmt.Fprintf(&b, "Step %d/%d  ", n.StepNum, n.StepTotal)
	b.WriteString(r.styles.Dim.Render(compassLabel(n.Bearing)))
	b.WriteString("\n")
	b.WriteString(r.styles.Highlight.Render(n.StepText))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("n: next · p: back · o: full route · x: cancel"))

	return r.styles.NavBox.Render(b.String())
}

// compassLabel turns a bearing in degrees into a compass point
func compassLabel(deg float64) string {
	points := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	idx := int((deg+22.5)/45) % len(points)
	if idx < 0 {
		idx += len(points)
	}
	return fmt.Sprintf("facing %s", points[idx])
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
