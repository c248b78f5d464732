package selection

import (
	"errors"
	"log"
	"sync"

	"wayfind/internal/domain"
	"wayfind/internal/mapdata"
)

// ErrSelectionInFlight is returned when Select is called while another
// selection is still committing. Callers ignore it; overlapping selects
// are dropped, never queued.
var ErrSelectionInFlight = errors.New("selection already in flight")

// Selector owns the "at most one selected store, at most one highlighted
// polygon" invariant. Selection changes translate into presenter
// requests: a highlight-clear for the previous store first, then a
// highlight-apply and camera focus for the new one. Presenter failures
// are logged and swallowed; the state transition always completes.
type Selector struct {
	mu          sync.Mutex
	presenter   mapdata.Presenter
	style       mapdata.HighlightStyle
	camera      mapdata.CameraOptions
	selected    *domain.Store
	highlighted *domain.Store
	committing  bool
	notify      func(domain.DomainEvent)
}

// New creates a selector. notify may be nil; it receives selection
// events for the bus.
func New(presenter mapdata.Presenter, notify func(domain.DomainEvent)) *Selector {
	return &Selector{
		presenter: presenter,
		style:     mapdata.DefaultHighlightStyle(),
		camera:    mapdata.CameraOptions{Zoom: 1000, Tilt: 30, DurationMillis: 1000},
		notify:    notify,
	}
}

// Select makes store the current selection. If a different store was
// selected, its highlight is cleared before the new one is applied.
// Overlapping invocations are rejected with ErrSelectionInFlight.
func (s *Selector) Select(store domain.Store) error {
	s.mu.Lock()
	if s.committing {
		s.mu.Unlock()
		return ErrSelectionInFlight
	}
	s.committing = true
	prev := s.highlighted
	same := prev != nil && prev.ID == store.ID
	s.selected = &store
	s.highlighted = &store
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.committing = false
		s.mu.Unlock()
	}()

	// Visual affordances are best-effort from here on
	if prev != nil && !same {
		if err := s.presenter.ClearHighlight(*prev); err != nil {
			log.Printf("Selector: clear highlight %s failed: %v", prev.Name, err)
		}
	}
	if !same {
		if err := s.presenter.HighlightStore(store, s.style); err != nil {
			log.Printf("Selector: highlight %s failed: %v", store.Name, err)
		}
	}
	if err := s.presenter.FocusCamera(store.Location, s.camera); err != nil {
		log.Printf("Selector: camera focus on %s failed: %v", store.Name, err)
	}

	if s.notify != nil {
		s.notify(domain.StoreSelectedEvent{Store: store})
	}
	return nil
}

// Clear removes the current selection, issuing exactly one
// highlight-clear for it. A no-op when nothing is selected.
func (s *Selector) Clear() {
	s.mu.Lock()
	prev := s.selected
	s.selected = nil
	s.highlighted = nil
	s.mu.Unlock()

	if prev == nil {
		return
	}
	if err := s.presenter.ClearHighlight(*prev); err != nil {
		log.Printf("Selector: clear highlight %s failed: %v", prev.Name, err)
	}
	if s.notify != nil {
		s.notify(domain.SelectionClearedEvent{Previous: *prev})
	}
}

// Selected returns the currently selected store, if any
func (s *Selector) Selected() (domain.Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return domain.Store{}, false
	}
	return *s.selected, true
}
