package mapdata

import (
	"context"
	"errors"

	"github.com/paulmach/orb"

	"wayfind/internal/domain"
)

// ErrNoRoute is returned by a provider when there is no walkable path
// between the requested stores.
var ErrNoRoute = errors.New("no walkable path between stores")

// Provider is the boundary to the external indoor mapping SDK. It owns
// the building graph and all routing; this application never computes
// paths itself.
type Provider interface {
	// LoadVenue loads the venue dataset: floors and spaces.
	LoadVenue(ctx context.Context) (*domain.Venue, error)

	// ComputeRoute computes a walkable route between two stores.
	// Returns ErrNoRoute when no path exists.
	ComputeRoute(ctx context.Context, origin, destination domain.Store) (*domain.Route, error)
}

// HighlightStyle describes how a store polygon is highlighted
type HighlightStyle struct {
	Color       string
	Opacity     float64
	StrokeColor string
	StrokeWidth int
}

// CameraOptions controls a camera focus request
type CameraOptions struct {
	Zoom           float64
	Tilt           float64
	DurationMillis int
}

// PathStyle describes how a route path is drawn
type PathStyle struct {
	Color   string
	Width   int
	Opacity float64
}

// DefaultHighlightStyle is the selection highlight used by the kiosk
func DefaultHighlightStyle() HighlightStyle {
	return HighlightStyle{
		Color:       "#3498db",
		Opacity:     0.3,
		StrokeColor: "#2980b9",
		StrokeWidth: 2,
	}
}

// DefaultPathStyle is the route path style used by the kiosk
func DefaultPathStyle() PathStyle {
	return PathStyle{Color: "#27ae60", Width: 4, Opacity: 0.8}
}

// Presenter receives fire-and-forget visual requests aimed at the map
// renderer. Calls are best-effort: failures must never influence state
// machine correctness, so callers swallow and log returned errors.
type Presenter interface {
	HighlightStore(store domain.Store, style HighlightStyle) error
	ClearHighlight(store domain.Store) error
	FocusCamera(target orb.Point, opts CameraOptions) error
	DrawPath(route *domain.Route, style PathStyle) error
	ClearPath() error
	HighlightPathSection(from, to orb.Point, style PathStyle) error
	AddMarker(store domain.Store, label string) error
	ClearMarkers() error
}
