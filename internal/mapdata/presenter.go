package mapdata

import (
	"log"

	"github.com/paulmach/orb"

	"wayfind/internal/domain"
)

// LogPresenter writes presentation requests to the application log. It
// stands in for the 3D renderer when the kiosk runs headless or with the
// demo provider; every request succeeds.
type LogPresenter struct{}

// NewLogPresenter creates a presenter that only logs
func NewLogPresenter() *LogPresenter {
	return &LogPresenter{}
}

func (p *LogPresenter) HighlightStore(store domain.Store, style HighlightStyle) error {
	log.Printf("presenter: highlight %s (%s)", store.Name, style.Color)
	return nil
}

func (p *LogPresenter) ClearHighlight(store domain.Store) error {
	log.Printf("presenter: clear highlight %s", store.Name)
	return nil
}

func (p *LogPresenter) FocusCamera(target orb.Point, opts CameraOptions) error {
	log.Printf("presenter: focus camera on (%.6f, %.6f) zoom=%.0f tilt=%.0f", target.Lon(), target.Lat(), opts.Zoom, opts.Tilt)
	return nil
}

func (p *LogPresenter) DrawPath(route *domain.Route, style PathStyle) error {
	if route == nil {
		return nil
	}
	log.Printf("presenter: draw path %s -> %s (%d steps)", route.Origin.Name, route.Destination.Name, len(route.Instructions))
	return nil
}

func (p *LogPresenter) ClearPath() error {
	log.Printf("presenter: clear path")
	return nil
}

func (p *LogPresenter) HighlightPathSection(from, to orb.Point, style PathStyle) error {
	log.Printf("presenter: highlight path section (%.6f,%.6f) -> (%.6f,%.6f)", from.Lon(), from.Lat(), to.Lon(), to.Lat())
	return nil
}

func (p *LogPresenter) AddMarker(store domain.Store, label string) error {
	log.Printf("presenter: marker %q on %s", label, store.Name)
	return nil
}

func (p *LogPresenter) ClearMarkers() error {
	log.Printf("presenter: clear markers")
	return nil
}
