package state

import (
	"wayfind/internal/domain"
)

// AppState contains the directory browsing state shared across the UI
type AppState struct {
	// Venue data
	Venue *domain.Venue

	// Visible holds the stores currently shown, in catalog order with
	// any search or category filter applied
	Visible []domain.Store

	// Cursor and viewport
	SelectedIndex  int
	ViewportOffset int
	ViewportHeight int

	// UI state
	Loading        bool
	StatusMessage  string
	CurrentFloorID string

	// Search and filter state
	SearchQuery    string
	CategoryFilter string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		ViewportHeight: 20, // Default, updated on first WindowSizeMsg
	}
}

// SetVisible replaces the visible rows, keeping the cursor in bounds
func (s *AppState) SetVisible(stores []domain.Store) {
	s.Visible = stores
	if s.SelectedIndex >= len(stores) {
		s.SelectedIndex = len(stores) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	s.clampViewport()
}

// SelectedStore returns the store under the cursor
func (s *AppState) SelectedStore() (domain.Store, bool) {
	if len(s.Visible) == 0 || s.SelectedIndex >= len(s.Visible) {
		return domain.Store{}, false
	}
	return s.Visible[s.SelectedIndex], true
}

// MoveSelection moves the cursor by delta, clamped to the visible rows
func (s *AppState) MoveSelection(delta int) {
	if len(s.Visible) == 0 {
		return
	}
	s.SelectedIndex += delta
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
	if s.SelectedIndex >= len(s.Visible) {
		s.SelectedIndex = len(s.Visible) - 1
	}
	s.clampViewport()
}

// SelectIndex jumps the cursor to an absolute row
func (s *AppState) SelectIndex(i int) {
	if i < 0 || i >= len(s.Visible) {
		return
	}
	s.SelectedIndex = i
	s.clampViewport()
}

// clampViewport scrolls the viewport so the cursor stays on screen
func (s *AppState) clampViewport() {
	if s.SelectedIndex < s.ViewportOffset {
		s.ViewportOffset = s.SelectedIndex
	}
	if s.SelectedIndex >= s.ViewportOffset+s.ViewportHeight {
		s.ViewportOffset = s.SelectedIndex - s.ViewportHeight + 1
	}
	if s.ViewportOffset < 0 {
		s.ViewportOffset = 0
	}
}
