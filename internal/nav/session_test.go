package nav

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"wayfind/internal/domain"
	"wayfind/internal/mapdata"
)

var (
	storeA = domain.Store{ID: "a", Name: "Acme Shoes", Location: orb.Point{-79.3800, 43.6400}}
	storeC = domain.Store{ID: "c", Name: "Cinema Plaza", Location: orb.Point{-79.3795, 43.6404}}
)

// routeWithSteps builds a route from A to C with n instructions:
// Departure, n-2 turns, Arrival.
func routeWithSteps(n int) *domain.Route {
	instructions := make([]domain.Instruction, 0, n)
	instructions = append(instructions, domain.Instruction{
		Kind:           domain.InstructionDeparture,
		Point:          storeA.Location,
		DistanceMeters: 10,
	})
	for i := 0; i < n-2; i++ {
		instructions = append(instructions, domain.Instruction{
			Kind:           domain.InstructionTurn,
			Bearing:        domain.BearingRight,
			Point:          orb.Point{storeA.Location.Lon() + float64(i+1)*0.0001, storeA.Location.Lat()},
			DistanceMeters: 12,
		})
	}
	instructions = append(instructions, domain.Instruction{
		Kind:  domain.InstructionArrival,
		Point: storeC.Location,
	})
	return &domain.Route{
		Origin:         storeA,
		Destination:    storeC,
		Instructions:   instructions,
		DistanceMeters: 34,
	}
}

// stubRouter answers immediately with a fixed result
type stubRouter struct {
	route *domain.Route
	err   error
	calls int
}

func (r *stubRouter) ComputeRoute(ctx context.Context, origin, destination domain.Store) (*domain.Route, error) {
	r.calls++
	return r.route, r.err
}

// blockingRouter hands each call to the test, which releases it when it
// wants the "provider" to answer.
type routeResult struct {
	route *domain.Route
	err   error
}

type routeCall struct {
	origin domain.Store
	resp   chan routeResult
}

type blockingRouter struct {
	calls chan *routeCall
}

func newBlockingRouter() *blockingRouter {
	return &blockingRouter{calls: make(chan *routeCall, 4)}
}

func (r *blockingRouter) ComputeRoute(ctx context.Context, origin, destination domain.Store) (*domain.Route, error) {
	c := &routeCall{origin: origin, resp: make(chan routeResult, 1)}
	r.calls <- c
	res := <-c.resp
	return res.route, res.err
}

func (r *blockingRouter) next(t *testing.T) *routeCall {
	t.Helper()
	select {
	case c := <-r.calls:
		return c
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for route call")
		return nil
	}
}

// pathRecorder records path-related presenter calls
type pathRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (p *pathRecorder) record(c string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, c)
	return nil
}

func (p *pathRecorder) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.calls...)
}

func (p *pathRecorder) HighlightStore(domain.Store, mapdata.HighlightStyle) error {
	return p.record("highlight")
}
func (p *pathRecorder) ClearHighlight(domain.Store) error { return p.record("clearhighlight") }
func (p *pathRecorder) FocusCamera(orb.Point, mapdata.CameraOptions) error {
	return p.record("focus")
}
func (p *pathRecorder) DrawPath(*domain.Route, mapdata.PathStyle) error { return p.record("drawpath") }
func (p *pathRecorder) ClearPath() error                                { return p.record("clearpath") }
func (p *pathRecorder) HighlightPathSection(_, _ orb.Point, _ mapdata.PathStyle) error {
	return p.record("section")
}
func (p *pathRecorder) AddMarker(domain.Store, string) error { return p.record("marker") }
func (p *pathRecorder) ClearMarkers() error                  { return p.record("clearmarkers") }

// steppingSession returns a session already in Stepping over n steps
func steppingSession(t *testing.T, n int, presenter mapdata.Presenter) *Session {
	t.Helper()
	s := NewSession(&stubRouter{route: routeWithSteps(n)}, presenter, nil)
	require.NoError(t, s.ChooseDestination(storeC))
	require.NoError(t, s.ChooseOrigin(context.Background(), storeA))
	require.NoError(t, s.Begin())
	return s
}

func TestChooseDestination(t *testing.T) {
	s := NewSession(&stubRouter{}, nil, nil)

	require.Equal(t, StateIdle, s.State())
	require.NoError(t, s.ChooseDestination(storeC))
	require.Equal(t, StateAwaitingOrigin, s.State())

	dest, ok := s.Destination()
	require.True(t, ok)
	require.Equal(t, storeC.ID, dest.ID)

	// A second destination needs a cancel first
	require.Error(t, s.ChooseDestination(storeA))
}

func TestChooseOriginComputesRoute(t *testing.T) {
	s := NewSession(&stubRouter{route: routeWithSteps(3)}, nil, nil)

	require.NoError(t, s.ChooseDestination(storeC))
	require.NoError(t, s.ChooseOrigin(context.Background(), storeA))

	require.Equal(t, StateRouteComputed, s.State())
	require.Equal(t, 0, s.Cursor())
	require.NotNil(t, s.Route())
}

func TestChooseOriginInvalidFromIdle(t *testing.T) {
	s := NewSession(&stubRouter{route: routeWithSteps(3)}, nil, nil)
	require.Error(t, s.ChooseOrigin(context.Background(), storeA))
}

func TestChooseOriginNoRouteStaysAwaiting(t *testing.T) {
	router := &stubRouter{err: ErrNoRoute}
	s := NewSession(router, nil, nil)

	require.NoError(t, s.ChooseDestination(storeC))
	err := s.ChooseOrigin(context.Background(), storeA)
	require.ErrorIs(t, err, ErrNoRoute)
	require.Equal(t, StateAwaitingOrigin, s.State())
	require.Nil(t, s.Route())

	// The failure is surfaced once, not silently retried
	require.Equal(t, 1, router.calls)

	// A different origin can still succeed
	router.err = nil
	router.route = routeWithSteps(3)
	require.NoError(t, s.ChooseOrigin(context.Background(), storeC))
	require.Equal(t, StateRouteComputed, s.State())
}

func TestBeginStartsAtDeparture(t *testing.T) {
	s := steppingSession(t, 3, nil)

	require.Equal(t, StateStepping, s.State())
	require.Equal(t, 0, s.Cursor())

	in, ok := s.Current()
	require.True(t, ok)
	require.Equal(t, domain.InstructionDeparture, in.Kind)
}

func TestNextIsNoOpOutsideStepping(t *testing.T) {
	// Idle
	s := NewSession(&stubRouter{route: routeWithSteps(3)}, nil, nil)
	s.Next()
	s.Prev()
	require.Equal(t, StateIdle, s.State())
	require.Equal(t, 0, s.Cursor())

	// AwaitingOrigin
	require.NoError(t, s.ChooseDestination(storeC))
	s.Next()
	require.Equal(t, StateAwaitingOrigin, s.State())

	// Arrived
	require.NoError(t, s.ChooseOrigin(context.Background(), storeA))
	require.NoError(t, s.Begin())
	s.Next()
	s.Next()
	require.Equal(t, StateArrived, s.State())
	cursor := s.Cursor()
	s.Next()
	s.Prev()
	require.Equal(t, StateArrived, s.State())
	require.Equal(t, cursor, s.Cursor())
}

func TestArrivalAfterExactlyNMinusOneSteps(t *testing.T) {
	const n = 6
	s := steppingSession(t, n, nil)

	for i := 0; i < n-2; i++ {
		s.Next()
		require.Equal(t, StateStepping, s.State(), "still stepping after %d calls", i+1)
	}
	s.Next() // call n-1
	require.Equal(t, StateArrived, s.State())
}

func TestCursorNeverExceedsBounds(t *testing.T) {
	const n = 4
	s := steppingSession(t, n, nil)

	for i := 0; i < 20; i++ {
		s.Next()
		require.LessOrEqual(t, s.Cursor(), n-1)
		require.GreaterOrEqual(t, s.Cursor(), 0)
	}
	for i := 0; i < 20; i++ {
		s.Prev()
		require.GreaterOrEqual(t, s.Cursor(), 0)
	}
}

func TestPrevThenNextRoundTrip(t *testing.T) {
	s := steppingSession(t, 5, nil)

	s.Next()
	s.Next() // cursor 2, 0 < k < n-1
	require.Equal(t, 2, s.Cursor())

	s.Prev()
	require.Equal(t, 1, s.Cursor())
	s.Next()
	require.Equal(t, 2, s.Cursor())
	require.Equal(t, StateStepping, s.State())
}

func TestPrevAtDepartureIsNoOp(t *testing.T) {
	s := steppingSession(t, 4, nil)

	s.Prev()
	require.Equal(t, 0, s.Cursor())
	require.Equal(t, StateStepping, s.State())
}

func TestPrevBackToDepartureClearsPartialHighlight(t *testing.T) {
	p := &pathRecorder{}
	s := steppingSession(t, 4, p)

	s.Next() // cursor 1, highlights a section
	s.Prev() // back to 0

	calls := p.Calls()
	// Begin drew the path, Next highlighted a section, Prev to zero
	// cleared and redrew the base path instead of another section
	require.Equal(t, []string{"drawpath", "section", "clearpath", "drawpath"}, calls)
}

func TestCancelFromAnyStateReturnsIdle(t *testing.T) {
	states := []func(s *Session){
		func(s *Session) {}, // AwaitingOrigin
		func(s *Session) { // RouteComputed
			require.NoError(t, s.ChooseOrigin(context.Background(), storeA))
		},
		func(s *Session) { // Stepping
			require.NoError(t, s.ChooseOrigin(context.Background(), storeA))
			require.NoError(t, s.Begin())
		},
		func(s *Session) { // Arrived
			require.NoError(t, s.ChooseOrigin(context.Background(), storeA))
			require.NoError(t, s.Begin())
			s.Next()
			s.Next()
		},
	}

	for i, setup := range states {
		s := NewSession(&stubRouter{route: routeWithSteps(3)}, nil, nil)
		require.NoError(t, s.ChooseDestination(storeC))
		setup(s)

		s.Cancel()
		require.Equal(t, StateIdle, s.State(), "case %d", i)
		require.Equal(t, 0, s.Cursor(), "case %d", i)
		require.Nil(t, s.Route(), "case %d", i)
		_, ok := s.Destination()
		require.False(t, ok, "case %d", i)

		// Session can be reused afterwards
		require.NoError(t, s.ChooseDestination(storeC))
	}
}

func TestCancelWhenIdleIsNoOp(t *testing.T) {
	var events []domain.DomainEvent
	s := NewSession(&stubRouter{}, nil, func(e domain.DomainEvent) { events = append(events, e) })

	s.Cancel()
	require.Equal(t, StateIdle, s.State())
	require.Empty(t, events)
}

func TestOverlappingChooseOriginLastRequestWins(t *testing.T) {
	router := newBlockingRouter()
	s := NewSession(router, nil, nil)
	require.NoError(t, s.ChooseDestination(storeC))

	routeA := routeWithSteps(3)
	routeB := routeWithSteps(5)

	errA := make(chan error, 1)
	errB := make(chan error, 1)

	go func() { errA <- s.ChooseOrigin(context.Background(), storeA) }()
	callA := router.next(t)

	go func() { errB <- s.ChooseOrigin(context.Background(), storeC) }()
	callB := router.next(t)

	// The second (newer) request resolves first and wins
	callB.resp <- routeResult{route: routeB}
	require.NoError(t, <-errB)
	require.Equal(t, StateRouteComputed, s.State())

	// The first resolves late; its result must be discarded
	callA.resp <- routeResult{route: routeA}
	require.ErrorIs(t, <-errA, ErrSuperseded)

	require.Equal(t, len(routeB.Instructions), len(s.Route().Instructions))
}

func TestCancelDiscardsInFlightRequest(t *testing.T) {
	router := newBlockingRouter()
	s := NewSession(router, nil, nil)
	require.NoError(t, s.ChooseDestination(storeC))

	errCh := make(chan error, 1)
	go func() { errCh <- s.ChooseOrigin(context.Background(), storeA) }()
	call := router.next(t)

	s.Cancel()
	require.Equal(t, StateIdle, s.State())

	call.resp <- routeResult{route: routeWithSteps(3)}
	require.ErrorIs(t, <-errCh, ErrSuperseded)
	require.Nil(t, s.Route())
	require.Equal(t, StateIdle, s.State())
}

func TestThreeInstructionScenario(t *testing.T) {
	route := &domain.Route{
		Origin:      storeA,
		Destination: storeC,
		Instructions: []domain.Instruction{
			{Kind: domain.InstructionDeparture, Point: storeA.Location, DistanceMeters: 10},
			{Kind: domain.InstructionTurn, Bearing: domain.BearingRight, DistanceMeters: 12},
			{Kind: domain.InstructionArrival, Point: storeC.Location},
		},
	}
	s := NewSession(&stubRouter{route: route}, nil, nil)
	require.NoError(t, s.ChooseDestination(storeC))
	require.NoError(t, s.ChooseOrigin(context.Background(), storeA))
	require.NoError(t, s.Begin())

	in, _ := s.Current()
	require.Equal(t, 0, s.Cursor())
	require.Equal(t, "Start at Acme Shoes", Describe(in, route.Origin.Name, route.Destination.Name))

	s.Next()
	in, _ = s.Current()
	require.Equal(t, 1, s.Cursor())
	require.Equal(t, "Turn right (12m)", Describe(in, route.Origin.Name, route.Destination.Name))

	s.Next()
	require.Equal(t, StateArrived, s.State())
	in, _ = s.Current()
	require.Equal(t, "Arrive at Cinema Plaza", Describe(in, route.Origin.Name, route.Destination.Name))
}

func TestNavigationEvents(t *testing.T) {
	var mu sync.Mutex
	var events []domain.DomainEvent
	notify := func(e domain.DomainEvent) {
		mu.Lock()
		events = append(events, e)
		mu.Unlock()
	}

	s := NewSession(&stubRouter{route: routeWithSteps(4)}, nil, notify)
	require.NoError(t, s.ChooseDestination(storeC))
	require.NoError(t, s.ChooseOrigin(context.Background(), storeA))
	require.NoError(t, s.Begin())
	s.Next()
	s.Next()
	s.Next()

	mu.Lock()
	defer mu.Unlock()
	var types []domain.EventType
	for _, e := range events {
		types = append(types, e.Type())
	}
	require.Equal(t, []domain.EventType{
		domain.EventNavigationStarted,
		domain.EventNavigationAdvanced,
		domain.EventNavigationAdvanced,
		domain.EventNavigationArrived,
	}, types)

	arrived := events[len(events)-1].(domain.NavigationArrivedEvent)
	require.Equal(t, storeC.Name, arrived.DestinationName)
	require.NotEmpty(t, arrived.SessionID)
}
