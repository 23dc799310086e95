package handlers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"github.com/ukydev/wayfarer/internal/middleware"
)

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	RespondWithJSON(w, http.StatusOK, M{"status": "ok"})
}

// Deps are the wired handlers the router composes.
type Deps struct {
	Planner   *PlannerHandler
	Trips     *TripsHandler
	Chat      *ChatHandler
	Countries *CountriesHandler
}

// NewRouter wires all routes with CORS, request logging and a per-IP
// rate limit on the endpoints that spend generation quota.
func NewRouter(d Deps) http.Handler {
	router := httprouter.New()
	limiter := middleware.NewRateLimiter(rate.Limit(0.5), 3)

	router.GET("/health", Health)

	router.GET("/api/plan", d.Planner.State)
	router.POST("/api/plan", limiter.Limit(d.Planner.Plan))
	router.POST("/api/plan/deals", limiter.Limit(d.Planner.Deals))
	router.POST("/api/plan/save", d.Planner.Save)
	router.POST("/api/plan/view", d.Planner.View)
	router.GET("/api/plan/map", d.Planner.MapData)
	router.DELETE("/api/plan/notice", d.Planner.ClearNotice)

	router.GET("/api/trips", d.Trips.List)
	router.POST("/api/trips", d.Trips.Create)
	router.DELETE("/api/trips/:id", d.Trips.Delete)

	router.POST("/api/chat", limiter.Limit(d.Chat.Send))
	router.GET("/api/chat/:session", d.Chat.History)

	router.GET("/api/countries", d.Countries.List)
	router.GET("/api/countries/:name", limiter.Limit(d.Countries.Get))

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})

	return middleware.Logging(c.Handler(router))
}
