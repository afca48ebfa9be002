package rest

import (
	"net/http"

	"github.com/bodyfuel/bodyfuel-backend/internal/transport/middleware"
)

// Handlers bundles the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Recipe   *RecipeHandler
	Journal  *JournalHandler
	Favorite *FavoriteHandler
	Review   *ReviewHandler
}

// RouterOptions configures cross-cutting behaviour of individual routes.
// Both fields are optional.
type RouterOptions struct {
	// Metrics instruments every API route and exposes GET /metrics.
	Metrics *middleware.Metrics

	// WriteLimit wraps state-changing routes, typically a rate limiter.
	WriteLimit middleware.Middleware
}

type router struct {
	mux  *http.ServeMux
	opts RouterOptions
}

// NewRouter registers every endpoint on a new ServeMux.
func NewRouter(h Handlers, opts RouterOptions) *http.ServeMux {
	rt := &router{mux: http.NewServeMux(), opts: opts}

	rt.mux.HandleFunc("GET /live", h.Health.Live)
	rt.mux.HandleFunc("GET /ready", h.Health.Ready)
	rt.mux.HandleFunc("GET /health", h.Health.Health)
	if opts.Metrics != nil {
		rt.mux.Handle("GET /metrics", opts.Metrics.Handler())
	}

	rt.read("GET /api/recipes", h.Recipe.ListShared)
	rt.write("POST /api/recipes", h.Recipe.Create)
	rt.read("GET /api/recipes/{slug}", h.Recipe.GetBySlug)
	rt.write("PATCH /api/recipes/{id}", h.Recipe.Update)
	rt.write("DELETE /api/recipes/{id}", h.Recipe.Delete)
	rt.read("GET /api/categories", h.Recipe.ListCategories)
	rt.read("GET /api/me/recipes", h.Recipe.ListMine)

	rt.read("GET /api/recipes/{id}/reviews", h.Review.List)
	rt.write("POST /api/recipes/{id}/reviews", h.Review.Create)

	rt.read("GET /api/recipes/{id}/favorite", h.Favorite.Status)
	rt.write("POST /api/recipes/{id}/favorite", h.Favorite.Add)
	rt.write("DELETE /api/recipes/{id}/favorite", h.Favorite.Remove)
	rt.read("GET /api/me/favorites", h.Favorite.List)
	rt.read("GET /api/me/favorite-recipes", h.Favorite.ListRecipes)

	rt.write("POST /api/journal", h.Journal.Add)
	rt.read("GET /api/journal", h.Journal.Get)
	rt.read("GET /api/journal/range", h.Journal.Range)
	rt.read("GET /api/journal/last-week", h.Journal.LastWeek)
	rt.read("GET /api/journal/stats", h.Journal.Stats)
	rt.write("DELETE /api/journal/{journalID}", h.Journal.Delete)
	rt.write("PATCH /api/journal/{journalID}/items/{itemID}", h.Journal.UpdateItem)
	rt.write("DELETE /api/journal/{journalID}/items/{itemID}", h.Journal.DeleteItem)

	return rt.mux
}

func (rt *router) read(pattern string, fn http.HandlerFunc) {
	rt.handle(pattern, fn, false)
}

func (rt *router) write(pattern string, fn http.HandlerFunc) {
	rt.handle(pattern, fn, true)
}

func (rt *router) handle(pattern string, fn http.HandlerFunc, write bool) {
	var h http.Handler = fn
	if write && rt.opts.WriteLimit != nil {
		h = rt.opts.WriteLimit(h)
	}
	if rt.opts.Metrics != nil {
		h = rt.opts.Metrics.Instrument(pattern, h)
	}
	rt.mux.Handle(pattern, h)
}
