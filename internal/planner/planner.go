package planner

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/wayfarer/internal/models"
	"github.com/ukydev/wayfarer/internal/store"
)

// State is the planner's pipeline stage.
type State string

const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
	StateReady      State = "ready"
	StateFailed     State = "failed"
)

// ViewMode selects how a ready itinerary is presented. It is a
// presentation flag orthogonal to the pipeline state.
type ViewMode string

const (
	ViewList ViewMode = "list"
	ViewMap  ViewMode = "map"
)

// SaveStatus tracks the transient save confirmation.
type SaveStatus string

const (
	SaveIdle   SaveStatus = "idle"
	SaveSaving SaveStatus = "saving"
	SaveSaved  SaveStatus = "saved"
)

var (
	// ErrBusy rejects a submit while a generation is in flight. The
	// rejection is load-bearing: without it a second result could
	// silently overwrite the first.
	ErrBusy = errors.New("a generation request is already in flight")

	// ErrDealsBusy rejects a deals lookup while one is outstanding.
	ErrDealsBusy = errors.New("a deals search is already in flight")

	// ErrNoItinerary rejects operations that need a ready itinerary.
	ErrNoItinerary = errors.New("no itinerary to operate on")
)

// User-facing messages set on the snapshot when a remote call fails.
const (
	generationFailedBanner = "Couldn't build that itinerary. Maybe try a different destination?"
	dealsFailedNotice      = "The deals search didn't go through. Try again in a moment."
	saveFailedNotice       = "Couldn't save that trip. Try saving again."
)

// Generator is the outbound interface to the generation collaborator.
type Generator interface {
	GenerateItinerary(ctx context.Context, req models.TripRequest) (*models.Itinerary, error)
	SearchDeals(ctx context.Context, q models.DealsQuery) (*models.DealsResult, error)
}

// Renderer receives the plottable points whenever the map view becomes
// active. The renderer owns how markers are drawn; the planner owns
// when it is called.
type Renderer interface {
	RenderMap(points []models.MapPoint)
}

// Config bounds the budget slider and times the save confirmation.
type Config struct {
	BudgetMin    float64
	BudgetMax    float64
	SavedDisplay time.Duration
}

// Planner is the orchestrator tying validation, generation, deals
// lookup, persistence and the map renderer together. All state
// mutations are serialized by one mutex; remote calls run outside it so
// a slow collaborator never blocks reads.
type Planner struct {
	gen      Generator
	store    store.Store
	renderer Renderer
	cfg      Config

	mu             sync.Mutex
	state          State
	itinerary      *models.Itinerary
	deals          *models.DealsResult
	dealsSearching bool
	saveStatus     SaveStatus
	viewMode       ViewMode
	banner         string // blocking error shown when state is failed
	notice         string // dismissable notice for deals/save failures
}

// New creates a planner in the idle state.
func New(gen Generator, st store.Store, r Renderer, cfg Config) *Planner {
	if cfg.BudgetMin == 0 && cfg.BudgetMax == 0 {
		cfg.BudgetMin, cfg.BudgetMax = 500, 10000
	}
	if cfg.SavedDisplay == 0 {
		cfg.SavedDisplay = 2 * time.Second
	}
	return &Planner{
		gen:        gen,
		store:      st,
		renderer:   r,
		cfg:        cfg,
		state:      StateIdle,
		viewMode:   ViewList,
		saveStatus: SaveIdle,
	}
}

// Snapshot is a consistent copy of the planner's observable state.
type Snapshot struct {
	State          State               `json:"state"`
	ViewMode       ViewMode            `json:"viewMode"`
	SaveStatus     SaveStatus          `json:"saveStatus"`
	DealsSearching bool                `json:"dealsSearching"`
	Banner         string              `json:"banner,omitempty"`
	Notice         string              `json:"notice,omitempty"`
	Itinerary      *models.Itinerary   `json:"itinerary,omitempty"`
	Deals          *models.DealsResult `json:"deals,omitempty"`
}

// Snapshot returns the current observable state.
func (p *Planner) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Snapshot{
		State:          p.state,
		ViewMode:       p.viewMode,
		SaveStatus:     p.saveStatus,
		DealsSearching: p.dealsSearching,
		Banner:         p.banner,
		Notice:         p.notice,
		Itinerary:      p.itinerary,
		Deals:          p.deals,
	}
}

// Generate validates raw form input and runs one generation request.
// Invalid input never leaves the idle/previous state or reaches the
// collaborator. On failure the planner lands in the failed state with a
// banner and no partial itinerary; the previous itinerary is dropped
// either way because a new planning run supersedes it.
func (p *Planner) Generate(ctx context.Context, raw models.TripRequest) (*models.Itinerary, error) {
	p.mu.Lock()
	if p.state == StateGenerating {
		p.mu.Unlock()
		return nil, ErrBusy
	}

	req, err := ValidateTripRequest(raw, p.cfg.BudgetMin, p.cfg.BudgetMax)
	if err != nil {
		p.mu.Unlock()
		return nil, err
	}

	p.state = StateGenerating
	p.itinerary = nil
	p.deals = nil
	p.banner = ""
	p.notice = ""
	p.saveStatus = SaveIdle
	p.viewMode = ViewList
	p.mu.Unlock()

	it, err := p.gen.GenerateItinerary(ctx, req)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		log.WithError(err).WithField("destination", req.Destination).Warn("itinerary generation failed")
		p.state = StateFailed
		p.banner = generationFailedBanner
		return nil, err
	}

	p.state = StateReady
	p.itinerary = it
	return it, nil
}

// SearchDeals runs the secondary deals lookup for the active itinerary.
// It does not block itinerary display, and a failure leaves the
// itinerary and any previously fetched deals untouched apart from a
// dismissable notice.
func (p *Planner) SearchDeals(ctx context.Context) (*models.DealsResult, error) {
	p.mu.Lock()
	if p.itinerary == nil || p.state != StateReady {
		p.mu.Unlock()
		return nil, ErrNoItinerary
	}
	if p.dealsSearching {
		p.mu.Unlock()
		return nil, ErrDealsBusy
	}
	q := models.DealsQuery{
		Destination: p.itinerary.Destination,
		StartDate:   p.itinerary.StartDate,
		EndDate:     p.itinerary.EndDate,
		Budget:      p.itinerary.Budget,
	}
	p.dealsSearching = true
	p.mu.Unlock()

	result, err := p.gen.SearchDeals(ctx, q)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.dealsSearching = false
	if err != nil {
		log.WithError(err).WithField("destination", q.Destination).Warn("deals search failed")
		p.notice = dealsFailedNotice
		return nil, err
	}

	p.deals = result
	return result, nil
}

// Save persists the active itinerary. The saved confirmation reverts to
// idle on its own after the configured display duration.
func (p *Planner) Save(ctx context.Context) error {
	p.mu.Lock()
	if p.itinerary == nil {
		p.mu.Unlock()
		return ErrNoItinerary
	}
	it := *p.itinerary
	p.saveStatus = SaveSaving
	p.mu.Unlock()

	err := p.store.Add(ctx, it)

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		log.WithError(err).WithField("itinerary_id", it.ID).Error("saving itinerary failed")
		p.saveStatus = SaveIdle
		p.notice = saveFailedNotice
		return err
	}

	p.saveStatus = SaveSaved
	time.AfterFunc(p.cfg.SavedDisplay, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		if p.saveStatus == SaveSaved {
			p.saveStatus = SaveIdle
		}
	})
	return nil
}

// SetViewMode switches between list and map presentation. Switching
// never mutates the itinerary or triggers a generation request;
// entering map view hands the derived points to the renderer.
func (p *Planner) SetViewMode(mode ViewMode) error {
	if mode != ViewList && mode != ViewMap {
		return &ValidationError{Field: "viewMode", Reason: "must be list or map"}
	}

	p.mu.Lock()
	if p.itinerary == nil {
		p.mu.Unlock()
		return ErrNoItinerary
	}
	p.viewMode = mode
	points := derivePoints(p.itinerary)
	p.mu.Unlock()

	if mode == ViewMap && p.renderer != nil {
		p.renderer.RenderMap(points)
	}
	return nil
}

// MapPoints derives the plottable coordinate list for the active
// itinerary: every located activity, in day-then-activity order.
// Activities without a location are skipped without error.
func (p *Planner) MapPoints() []models.MapPoint {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.itinerary == nil {
		return []models.MapPoint{}
	}
	return derivePoints(p.itinerary)
}

func derivePoints(it *models.Itinerary) []models.MapPoint {
	points := []models.MapPoint{}
	for _, day := range it.DailyPlans {
		for _, act := range day.Activities {
			if act.Location == nil {
				continue
			}
			points = append(points, models.MapPoint{
				Lat:   act.Location.Lat,
				Lng:   act.Location.Lng,
				Label: act.Title,
			})
		}
	}
	return points
}

// ClearNotice dismisses the current notice, if any.
func (p *Planner) ClearNotice() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.notice = ""
}
