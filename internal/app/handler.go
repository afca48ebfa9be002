package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres"
	"github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres/audit"
	favoriterepo "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres/favorite"
	journalrepo "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres/journal"
	reciperepo "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres/recipe"
	reviewrepo "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres/review"
	userrepo "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres/user"
	"github.com/bodyfuel/bodyfuel-backend/internal/adapter/storage"
	"github.com/bodyfuel/bodyfuel-backend/internal/auth"
	"github.com/bodyfuel/bodyfuel-backend/internal/config"
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	"github.com/bodyfuel/bodyfuel-backend/internal/nutrition"
	favoritesvc "github.com/bodyfuel/bodyfuel-backend/internal/service/favorite"
	journalsvc "github.com/bodyfuel/bodyfuel-backend/internal/service/journal"
	recipesvc "github.com/bodyfuel/bodyfuel-backend/internal/service/recipe"
	reviewsvc "github.com/bodyfuel/bodyfuel-backend/internal/service/review"
	"github.com/bodyfuel/bodyfuel-backend/internal/transport/dataloader"
	"github.com/bodyfuel/bodyfuel-backend/internal/transport/middleware"
	"github.com/bodyfuel/bodyfuel-backend/internal/transport/rest"
)

const metricsNamespace = "bodyfuel"

// NewHTTPHandler wires repositories, services and transport over pool into
// the full HTTP handler. The returned stop func releases background
// resources and must be called on shutdown.
func NewHTTPHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) (http.Handler, func()) {
	txm := postgres.NewTxManager(pool)

	// Repositories.
	auditRepo := audit.New(pool)
	recipeRepo := reciperepo.New(pool)
	journalRepo := journalrepo.New(pool)
	favoriteRepo := favoriterepo.New(pool)
	reviewRepo := reviewrepo.New(pool)
	userRepo := userrepo.New(pool)

	// Adapters.
	images := storage.NewPresigner(cfg.Storage)
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	summaries := dataloader.NewSummaries(recipeRepo)

	// Services.
	recipeService := recipesvc.NewService(logger, recipeRepo, reviewRepo, userRepo, images, auditRepo, txm, cfg.Recipe)
	journalService := journalsvc.NewService(logger, journalRepo, recipeRepo, summaries, auditRepo, txm, cfg.Journal, polarity(cfg.Nutrition))
	favoriteService := favoritesvc.NewService(logger, favoriteRepo, recipeRepo, userRepo, auditRepo, txm, cfg.Recipe)
	reviewService := reviewsvc.NewService(logger, reviewRepo, recipeRepo, userRepo)

	// Routes.
	metrics := middleware.NewMetrics(metricsNamespace)
	opts := rest.RouterOptions{Metrics: metrics}

	stop := func() {}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		opts.WriteLimit = limiter.Limit(cfg.RateLimit.WritesPerMinute)
		stop = limiter.Stop
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:   rest.NewHealthHandler(BuildVersion(), rest.HealthCheck{Name: "database", Pinger: pool}),
		Recipe:   rest.NewRecipeHandler(recipeService, logger),
		Journal:  rest.NewJournalHandler(journalService, cfg.Journal.Location, logger),
		Favorite: rest.NewFavoriteHandler(favoriteService, logger),
		Review:   rest.NewReviewHandler(reviewService, logger),
	}, opts)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(logger),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtMgr),
		middleware.Timezone(),
		middleware.Middleware(dataloader.Middleware(&dataloader.Repos{Recipe: recipeRepo})),
	)(mux)

	return handler, stop
}

// polarity converts the configured favorable-increase macros. Load has
// already rejected unknown names.
func polarity(cfg config.NutritionConfig) nutrition.Polarity {
	macros := make([]domain.Macro, 0, len(cfg.FavorableIncrease))
	for _, m := range cfg.FavorableIncrease {
		macros = append(macros, domain.Macro(m))
	}
	return nutrition.NewPolarity(macros)
}
