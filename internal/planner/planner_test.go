package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukydev/wayfarer/internal/genai"
	"github.com/ukydev/wayfarer/internal/models"
)

// stubGenerator lets each test script the collaborator's behavior.
type stubGenerator struct {
	generateCalls int
	generate      func(ctx context.Context, req models.TripRequest) (*models.Itinerary, error)
	deals         func(ctx context.Context, q models.DealsQuery) (*models.DealsResult, error)
}

func (s *stubGenerator) GenerateItinerary(ctx context.Context, req models.TripRequest) (*models.Itinerary, error) {
	s.generateCalls++
	return s.generate(ctx, req)
}

func (s *stubGenerator) SearchDeals(ctx context.Context, q models.DealsQuery) (*models.DealsResult, error) {
	return s.deals(ctx, q)
}

// memStore is an in-memory Store for orchestrator tests.
type memStore struct {
	trips  []models.Itinerary
	addErr error
}

func (m *memStore) List(ctx context.Context) ([]models.Itinerary, error) { return m.trips, nil }
func (m *memStore) Add(ctx context.Context, it models.Itinerary) error {
	if m.addErr != nil {
		return m.addErr
	}
	m.trips = append(m.trips, it)
	return nil
}
func (m *memStore) Remove(ctx context.Context, id string) error {
	kept := m.trips[:0]
	for _, t := range m.trips {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	m.trips = kept
	return nil
}

// recordRenderer captures what the planner hands to the map widget.
type recordRenderer struct {
	calls  int
	points []models.MapPoint
}

func (r *recordRenderer) RenderMap(points []models.MapPoint) {
	r.calls++
	r.points = points
}

func sampleItinerary() *models.Itinerary {
	return &models.Itinerary{
		ID:          "it-1",
		Destination: "Tokyo",
		StartDate:   "2025-06-01",
		EndDate:     "2025-06-05",
		Budget:      1500,
		Style:       "adventure",
		DailyPlans: []models.DayPlan{
			{Day: 1, Title: "Arrival", Activities: []models.Activity{
				{Time: "Morning", Title: "Senso-ji", Cost: 0, Location: &models.LatLng{Lat: 35.7148, Lng: 139.7967}},
				{Time: "Evening", Title: "Ramen crawl", Cost: 30},
			}},
			{Day: 2, Title: "Day trip", Activities: []models.Activity{
				{Time: "All day", Title: "Mount Takao", Cost: 15, Location: &models.LatLng{Lat: 35.6254, Lng: 139.2437}},
			}},
		},
		TotalEstimatedCost: 1450,
		CreatedAt:          time.Now(),
	}
}

func newTestPlanner(gen *stubGenerator, st *memStore, r Renderer) *Planner {
	return New(gen, st, r, Config{BudgetMin: 500, BudgetMax: 10000, SavedDisplay: 20 * time.Millisecond})
}

func TestGenerate_Success(t *testing.T) {
	gen := &stubGenerator{generate: func(ctx context.Context, req models.TripRequest) (*models.Itinerary, error) {
		return sampleItinerary(), nil
	}}
	p := newTestPlanner(gen, &memStore{}, nil)

	it, err := p.Generate(context.Background(), validRaw())
	require.NoError(t, err)
	require.NotNil(t, it)

	snap := p.Snapshot()
	assert.Equal(t, StateReady, snap.State)
	assert.Equal(t, ViewList, snap.ViewMode)
	assert.Empty(t, snap.Banner)
	assert.Equal(t, it, snap.Itinerary)
}

func TestGenerate_ValidationFailureSkipsRemoteCall(t *testing.T) {
	gen := &stubGenerator{generate: func(ctx context.Context, req models.TripRequest) (*models.Itinerary, error) {
		return sampleItinerary(), nil
	}}
	p := newTestPlanner(gen, &memStore{}, nil)

	raw := validRaw()
	raw.Destination = "  "
	_, err := p.Generate(context.Background(), raw)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, gen.generateCalls, "validation failure must not contact the collaborator")
	assert.Equal(t, StateIdle, p.Snapshot().State, "must not transition to a loading state")
}

func TestGenerate_RemoteFailure(t *testing.T) {
	gen := &stubGenerator{generate: func(ctx context.Context, req models.TripRequest) (*models.Itinerary, error) {
		return nil, &genai.GenerationError{Reason: "remote call failed"}
	}}
	p := newTestPlanner(gen, &memStore{}, nil)

	_, err := p.Generate(context.Background(), validRaw())
	var gErr *genai.GenerationError
	require.ErrorAs(t, err, &gErr)

	snap := p.Snapshot()
	assert.Equal(t, StateFailed, snap.State)
	assert.NotEmpty(t, snap.Banner)
	assert.Nil(t, snap.Itinerary, "no partial itinerary is ever shown")
}

func TestGenerate_BusyRejection(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	gen := &stubGenerator{generate: func(ctx context.Context, req models.TripRequest) (*models.Itinerary, error) {
		close(started)
		<-release
		return sampleItinerary(), nil
	}}
	p := newTestPlanner(gen, &memStore{}, nil)

	done := make(chan error, 1)
	go func() {
		_, err := p.Generate(context.Background(), validRaw())
		done <- err
	}()
	<-started

	_, err := p.Generate(context.Background(), validRaw())
	assert.ErrorIs(t, err, ErrBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, StateReady, p.Snapshot().State, "first request's result still lands in state")
}

func TestGenerate_SupersedesPreviousItinerary(t *testing.T) {
	gen := &stubGenerator{generate: func(ctx context.Context, req models.TripRequest) (*models.Itinerary, error) {
		return nil, &genai.GenerationError{Reason: "remote call failed"}
	}}
	p := newTestPlanner(gen, &memStore{}, nil)
	p.itinerary = sampleItinerary()
	p.state = StateReady

	p.Generate(context.Background(), validRaw())
	assert.Nil(t, p.Snapshot().Itinerary, "failed rerun drops the superseded itinerary")
}

func TestSearchDeals(t *testing.T) {
	result := &models.DealsResult{Text: "Found a flight for $600", Sources: []models.GroundingSource{}}
	var captured models.DealsQuery
	gen := &stubGenerator{
		generate: func(ctx context.Context, req models.TripRequest) (*models.Itinerary, error) {
			return sampleItinerary(), nil
		},
		deals: func(ctx context.Context, q models.DealsQuery) (*models.DealsResult, error) {
			captured = q
			return result, nil
		},
	}
	p := newTestPlanner(gen, &memStore{}, nil)

	_, err := p.SearchDeals(context.Background())
	assert.ErrorIs(t, err, ErrNoItinerary, "deals lookup is only reachable after an itinerary exists")

	_, err = p.Generate(context.Background(), validRaw())
	require.NoError(t, err)

	got, err := p.SearchDeals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, result, got)
	assert.Equal(t, "Tokyo", captured.Destination)
	assert.Equal(t, 1500.0, captured.Budget)
	assert.Equal(t, result, p.Snapshot().Deals)
}

func TestSearchDeals_FailureLeavesItineraryIntact(t *testing.T) {
	gen := &stubGenerator{
		generate: func(ctx context.Context, req models.TripRequest) (*models.Itinerary, error) {
			return sampleItinerary(), nil
		},
		deals: func(ctx context.Context, q models.DealsQuery) (*models.DealsResult, error) {
			return nil, &genai.SearchError{Err: errors.New("boom")}
		},
	}
	p := newTestPlanner(gen, &memStore{}, nil)
	_, err := p.Generate(context.Background(), validRaw())
	require.NoError(t, err)

	_, err = p.SearchDeals(context.Background())
	var sErr *genai.SearchError
	require.ErrorAs(t, err, &sErr)

	snap := p.Snapshot()
	assert.Equal(t, StateReady, snap.State, "failed lookup does not disturb the itinerary")
	assert.NotNil(t, snap.Itinerary)
	assert.Nil(t, snap.Deals)
	assert.NotEmpty(t, snap.Notice)
	assert.False(t, snap.DealsSearching, "loading flag must be cleared")

	p.ClearNotice()
	assert.Empty(t, p.Snapshot().Notice)
}

func TestSave(t *testing.T) {
	gen := &stubGenerator{generate: func(ctx context.Context, req models.TripRequest) (*models.Itinerary, error) {
		return sampleItinerary(), nil
	}}
	st := &memStore{}
	p := newTestPlanner(gen, st, nil)

	assert.ErrorIs(t, p.Save(context.Background()), ErrNoItinerary)

	_, err := p.Generate(context.Background(), validRaw())
	require.NoError(t, err)

	require.NoError(t, p.Save(context.Background()))
	assert.Len(t, st.trips, 1, "store collection grows by exactly one")
	assert.Equal(t, SaveSaved, p.Snapshot().SaveStatus)

	// Confirmation auto-reverts after the display duration.
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, SaveIdle, p.Snapshot().SaveStatus)
}

func TestSave_StorageFailure(t *testing.T) {
	gen := &stubGenerator{generate: func(ctx context.Context, req models.TripRequest) (*models.Itinerary, error) {
		return sampleItinerary(), nil
	}}
	st := &memStore{addErr: errors.New("disk full")}
	p := newTestPlanner(gen, st, nil)
	_, err := p.Generate(context.Background(), validRaw())
	require.NoError(t, err)

	err = p.Save(context.Background())
	require.Error(t, err)

	snap := p.Snapshot()
	assert.Equal(t, SaveIdle, snap.SaveStatus)
	assert.NotEmpty(t, snap.Notice, "storage failure surfaces a retryable notice")
}

func TestMapPoints_OrderAndFiltering(t *testing.T) {
	gen := &stubGenerator{generate: func(ctx context.Context, req models.TripRequest) (*models.Itinerary, error) {
		return sampleItinerary(), nil
	}}
	p := newTestPlanner(gen, &memStore{}, nil)

	assert.Empty(t, p.MapPoints())

	_, err := p.Generate(context.Background(), validRaw())
	require.NoError(t, err)

	points := p.MapPoints()
	// 3 activities, 2 located: unlocated ones are skipped without error.
	require.Len(t, points, 2)
	assert.Equal(t, "Senso-ji", points[0].Label)
	assert.Equal(t, "Mount Takao", points[1].Label)
	assert.Equal(t, 35.7148, points[0].Lat)
}

func TestSetViewMode(t *testing.T) {
	gen := &stubGenerator{generate: func(ctx context.Context, req models.TripRequest) (*models.Itinerary, error) {
		return sampleItinerary(), nil
	}}
	renderer := &recordRenderer{}
	p := newTestPlanner(gen, &memStore{}, renderer)

	assert.ErrorIs(t, p.SetViewMode(ViewMap), ErrNoItinerary)

	it, err := p.Generate(context.Background(), validRaw())
	require.NoError(t, err)
	before := *it

	require.NoError(t, p.SetViewMode(ViewMap))
	assert.Equal(t, ViewMap, p.Snapshot().ViewMode)
	assert.Equal(t, 1, renderer.calls, "entering map view drives the renderer")
	assert.Len(t, renderer.points, 2)

	require.NoError(t, p.SetViewMode(ViewList))
	assert.Equal(t, 1, renderer.calls, "list view does not re-render the map")

	var vErr *ValidationError
	assert.ErrorAs(t, p.SetViewMode("globe"), &vErr)

	assert.Equal(t, before, *p.Snapshot().Itinerary, "view switching never mutates the itinerary")
	assert.Equal(t, 1, gen.generateCalls, "view switching never triggers generation")
}
