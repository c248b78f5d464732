package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"wayfind/internal/catalog"
	"wayfind/internal/config"
	"wayfind/internal/domain"
	"wayfind/internal/eventbus"
	"wayfind/internal/mapdata"
	"wayfind/internal/nav"
	"wayfind/internal/search"
	"wayfind/internal/selection"
	"wayfind/internal/ui/state"
	"wayfind/internal/ui/views"
)

// inputMode is the current key handling mode
type inputMode int

const (
	modeNormal inputMode = iota
	modeSearch
)

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService
	state     *state.AppState

	mapSvc    *mapdata.Service
	presenter mapdata.Presenter
	catalog   *catalog.Catalog
	engine    *search.Engine
	selector  *selection.Selector
	session   *nav.Session

	// UI-specific state not in AppState
	width       int
	height      int
	mode        inputMode
	searchInput textinput.Model
	categoryIdx int // 0 means no category filter
	featured    map[domain.StoreID]bool
	status      string
	statusIsErr bool

	renderer *views.Renderer
	pager    *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(
	bus eventbus.EventBus,
	cfg *config.Config,
	configSvc config.ConfigService,
	mapSvc *mapdata.Service,
	presenter mapdata.Presenter,
	selector *selection.Selector,
	session *nav.Session,
) *Model {
	ti := textinput.New()
	ti.Prompt = "Search: "
	ti.Placeholder = "store name"
	ti.CharLimit = 64

	return &Model{
		bus:         bus,
		config:      cfg,
		configSvc:   configSvc,
		state:       state.NewAppState(),
		mapSvc:      mapSvc,
		presenter:   presenter,
		selector:    selector,
		session:     session,
		searchInput: ti,
		featured:    make(map[domain.StoreID]bool),
		renderer:    views.NewRenderer(),
		pager:       NewPagerOps(nil),
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init starts the venue load
func (m *Model) Init() tea.Cmd {
	m.state.Loading = true
	return func() tea.Msg {
		venue, err := m.mapSvc.LoadVenue(context.Background())
		return venueMsg{venue: venue, err: err}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.state.ViewportHeight = msg.Height - 14
		if m.state.ViewportHeight < 5 {
			m.state.ViewportHeight = 5
		}
		return m, nil

	case venueMsg:
		return m.handleVenueLoaded(msg)

	case routeResultMsg:
		return m.handleRouteResult(msg)

	case pagerClosedMsg:
		if msg.err != nil {
			log.Printf("UI: pager failed: %v", msg.err)
			m.setStatus("Could not open pager", true)
		}
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)

	case tea.KeyMsg:
		if m.mode == modeSearch {
			return m.handleSearchKey(msg)
		}
		return m.handleNormalKey(msg)
	}

	return m, nil
}

func (m *Model) handleVenueLoaded(msg venueMsg) (tea.Model, tea.Cmd) {
	m.state.Loading = false
	if msg.err != nil {
		m.setStatus(fmt.Sprintf("Could not load venue: %v", msg.err), true)
		return m, nil
	}

	m.state.Venue = msg.venue
	m.catalog = catalog.Build(msg.venue, catalog.Options{
		ExcludeKeywords: m.config.Directory.ExcludeKeywords,
		Categories:      m.config.Categories,
	})
	m.engine = search.NewEngine(m.catalog)
	m.setVisible(m.engine.Results())

	m.placeMarkers()
	m.setStatus(fmt.Sprintf("%d stores on %d floors", m.catalog.Len(), len(msg.venue.Floors)), false)
	return m, nil
}

// placeMarkers drops promotional markers on featured stores and plain
// markers on entrances.
func (m *Model) placeMarkers() {
	if err := m.presenter.ClearMarkers(); err != nil {
		log.Printf("UI: clear markers failed: %v", err)
	}
	for _, s := range m.catalog.Featured(m.config.Directory.FeaturedCount) {
		m.featured[s.ID] = true
		if err := m.presenter.AddMarker(s, "featured"); err != nil {
			log.Printf("UI: add marker failed: %v", err)
		}
	}
	for _, s := range m.catalog.Entrances() {
		if err := m.presenter.AddMarker(s, "entrance"); err != nil {
			log.Printf("UI: add marker failed: %v", err)
		}
	}
}

func (m *Model) handleRouteResult(msg routeResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, nav.ErrSuperseded) {
			// A newer request or a cancel took over; nothing to show
			return m, nil
		}
		m.setStatus("No route available. Pick a different starting location.", true)
		return m, nil
	}

	// Route is in; start stepping right away
	if err := m.session.Begin(); err != nil {
		log.Printf("UI: begin navigation failed: %v", err)
		return m, nil
	}
	m.setStatus("", false)
	return m, nil
}

func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.NavigationArrivedEvent:
		m.setStatus(fmt.Sprintf("You have arrived at %s.", e.DestinationName), false)
	case eventbus.ErrorEvent:
		m.setStatus(e.Message, true)
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.setVisible(m.engine.Query(""))
		return m, nil
	case "enter":
		m.mode = modeNormal
		m.searchInput.Blur()
		if m.config.UI.FocusFirstMatch && m.engine.ActiveQuery() != "" {
			if first, ok := m.state.SelectedStore(); ok {
				if err := m.selector.Select(first); err != nil {
					log.Printf("UI: select first match failed: %v", err)
				}
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.categoryIdx = 0
	m.setVisible(m.engine.Query(m.searchInput.Value()))
	m.state.SelectIndex(0)
	return m, cmd
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, m.quit()

	case "up", "k":
		m.state.MoveSelection(-1)

	case "down", "j":
		m.state.MoveSelection(1)

	case "/":
		if m.engine == nil {
			return m, nil
		}
		m.mode = modeSearch
		m.searchInput.SetValue(m.engine.ActiveQuery())
		return m, m.searchInput.Focus()

	case "c":
		m.cycleCategory()

	case "esc":
		return m.handleEscape()

	case "enter":
		return m.handleEnter()

	case "d":
		return m.handleDirections()

	case "n", "right":
		m.session.Next()
		m.syncFloorFromSession()

	case "p", "left":
		m.session.Prev()
		m.syncFloorFromSession()

	case "x":
		m.cancelNavigation()

	case "o":
		if route := m.session.Route(); route != nil {
			return m, m.showPager(nav.DescribeRoute(route))
		}

	case "?":
		return m, m.showPager(renderHelpContent())
	}

	return m, nil
}

func (m *Model) cycleCategory() {
	if m.engine == nil || len(m.config.Categories) == 0 {
		return
	}
	m.searchInput.SetValue("")
	m.categoryIdx = (m.categoryIdx + 1) % (len(m.config.Categories) + 1)
	if m.categoryIdx == 0 {
		m.setVisible(m.engine.FilterCategory(""))
	} else {
		m.setVisible(m.engine.FilterCategory(m.config.Categories[m.categoryIdx-1].Name))
	}
	m.state.SelectIndex(0)
}

// handleEscape unwinds one layer: navigation first, then filters, then
// the selection.
func (m *Model) handleEscape() (tea.Model, tea.Cmd) {
	if m.session.State() != nav.StateIdle {
		m.cancelNavigation()
		return m, nil
	}
	if m.engine != nil && (m.engine.ActiveQuery() != "" || m.engine.ActiveCategory() != "") {
		m.categoryIdx = 0
		m.searchInput.SetValue("")
		m.engine.Reset()
		m.setVisible(m.engine.Results())
		return m, nil
	}
	m.selector.Clear()
	return m, nil
}

func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	store, ok := m.state.SelectedStore()
	if !ok {
		return m, nil
	}

	if m.session.State() == nav.StateAwaitingOrigin {
		m.setStatus(fmt.Sprintf("Finding a route from %s...", store.Name), false)
		return m, func() tea.Msg {
			return routeResultMsg{err: m.session.ChooseOrigin(context.Background(), store)}
		}
	}

	if err := m.selector.Select(store); err != nil {
		log.Printf("UI: select store failed: %v", err)
		return m, nil
	}
	m.setCurrentFloor(store.FloorID)
	m.setStatus("", false)
	return m, nil
}

// setCurrentFloor tracks the floor the kiosk is showing, announcing
// changes on the bus.
func (m *Model) setCurrentFloor(floorID string) {
	if floorID == "" || floorID == m.state.CurrentFloorID {
		return
	}
	m.state.CurrentFloorID = floorID
	floorName := floorID
	if m.state.Venue != nil {
		if floor, ok := m.state.Venue.FloorByID(floorID); ok {
			floorName = floor.Name
		}
	}
	m.bus.Publish(eventbus.FloorChangedEvent{FloorID: floorID, FloorName: floorName})
}

// syncFloorFromSession follows the session across connections so the
// floor indicator tracks stepping.
func (m *Model) syncFloorFromSession() {
	in, ok := m.session.Current()
	if !ok {
		return
	}
	if in.Kind == domain.InstructionExitConnection && in.ToFloorID != "" {
		m.setCurrentFloor(in.ToFloorID)
	}
	if in.Kind == domain.InstructionTakeConnection && in.FromFloorID != "" {
		m.setCurrentFloor(in.FromFloorID)
	}
}

func (m *Model) handleDirections() (tea.Model, tea.Cmd) {
	store, ok := m.state.SelectedStore()
	if !ok {
		return m, nil
	}
	if m.session.State() != nav.StateIdle {
		m.session.Cancel()
	}
	if err := m.selector.Select(store); err != nil {
		log.Printf("UI: select store failed: %v", err)
	}
	if err := m.session.ChooseDestination(store); err != nil {
		log.Printf("UI: choose destination failed: %v", err)
		return m, nil
	}
	m.setStatus("", false)
	return m, nil
}

func (m *Model) cancelNavigation() {
	if m.session.State() == nav.StateIdle {
		return
	}
	m.session.Cancel()
	m.setStatus("Navigation cancelled.", false)
}

func (m *Model) quit() tea.Cmd {
	if m.config.UI.AutosaveOnExit {
		if err := m.configSvc.Save(m.config); err != nil {
			log.Printf("UI: save config failed: %v", err)
		}
	}
	return tea.Quit
}

func (m *Model) showPager(content string) tea.Cmd {
	return func() tea.Msg {
		return pagerClosedMsg{err: m.pager.ShowInPager(content)}
	}
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusIsErr = isErr
}

// setVisible orders results by floor so the directory can be rendered
// with floor headers, then hands them to the app state.
func (m *Model) setVisible(stores []domain.Store) {
	if m.state.Venue != nil {
		floorPos := make(map[string]int, len(m.state.Venue.Floors))
		for i, f := range m.state.Venue.Floors {
			floorPos[f.ID] = i
		}
		ordered := append([]domain.Store(nil), stores...)
		sort.SliceStable(ordered, func(i, j int) bool {
			return floorPos[ordered[i].FloorID] < floorPos[ordered[j].FloorID]
		})
		stores = ordered
	}
	m.state.SetVisible(stores)
	if m.engine != nil {
		m.state.SearchQuery = m.engine.ActiveQuery()
		m.state.CategoryFilter = m.engine.ActiveCategory()
	}
}

// View renders the UI
func (m *Model) View() string {
	f := views.Frame{
		Width:          m.width,
		Loading:        m.state.Loading,
		SelectedIndex:  m.state.SelectedIndex,
		ViewportOffset: m.state.ViewportOffset,
		ViewportHeight: m.state.ViewportHeight,
		TotalRows:      len(m.state.Visible),
		Status:         m.status,
		StatusIsError:  m.statusIsErr,
		Query:          m.state.SearchQuery,
		Category:       m.state.CategoryFilter,
		SearchActive:   m.mode == modeSearch,
		SearchInput:    m.searchInput.View(),
	}
	if m.state.Venue != nil {
		f.VenueName = m.state.Venue.Name
		f.Floors = m.floorSections()
		if floor, ok := m.state.Venue.FloorByID(m.state.CurrentFloorID); ok {
			f.FloorName = floor.Name
		}
	}
	f.Detail = m.detailPanel()
	f.Nav = m.navCard()
	return m.renderer.Render(f)
}

// floorSections groups the visible rows by floor, preserving row order
func (m *Model) floorSections() []views.FloorSection {
	venue := m.state.Venue
	byFloor := make(map[string][]views.StoreRow)
	for i, s := range m.state.Visible {
		byFloor[s.FloorID] = append(byFloor[s.FloorID], views.StoreRow{
			Index:      i,
			Name:       s.Name,
			Categories: s.Categories,
			Featured:   m.featured[s.ID],
		})
	}

	var sections []views.FloorSection
	for _, floor := range venue.Floors {
		rows := byFloor[floor.ID]
		if len(rows) == 0 {
			continue
		}
		sections = append(sections, views.FloorSection{Name: floor.Name, Stores: rows})
	}
	return sections
}

func (m *Model) detailPanel() *views.StoreDetail {
	store, ok := m.selector.Selected()
	if !ok {
		return nil
	}
	floorName := store.FloorID
	if m.state.Venue != nil {
		if floor, found := m.state.Venue.FloorByID(store.FloorID); found {
			floorName = floor.Name
		}
	}
	return &views.StoreDetail{
		Name:        store.Name,
		FloorName:   floorName,
		Categories:  store.Categories,
		Description: store.Details.Description,
		Hours:       store.Details.Hours,
		Phone:       store.Details.Phone,
		Website:     store.Details.Website,
		ImageCount:  store.Details.ImageCount,
	}
}

func (m *Model) navCard() *views.NavCard {
	dest, hasDest := m.session.Destination()

	switch m.session.State() {
	case nav.StateAwaitingOrigin:
		if !hasDest {
			return nil
		}
		return &views.NavCard{
			Destination: dest.Name,
			Prompt:      "Pick your starting location from the directory and press enter.",
		}

	case nav.StateStepping, nav.StateRouteComputed:
		route := m.session.Route()
		in, ok := m.session.Current()
		if route == nil || !ok {
			return nil
		}
		return &views.NavCard{
			Destination: dest.Name,
			StepText:    nav.Describe(in, route.Origin.Name, route.Destination.Name),
			StepNum:     m.session.Cursor() + 1,
			StepTotal:   len(route.Instructions),
			Bearing:     m.session.CameraBearing(),
		}

	case nav.StateArrived:
		return &views.NavCard{Destination: dest.Name, Arrived: true}
	}

	return nil
}
