// Command seed fills a development database with a demo user, the default
// recipe categories and a few sample recipes, then prints an access token
// for the demo user. Re-running it keeps the user and categories and skips
// recipes when the demo user already has some.
//
// Flags:
//
//	--email   demo user email (default: demo@bodyfuel.local)
//	--name    demo user display name (default: Demo Cook)
//	--config  YAML config file (default: $CONFIG_PATH or ./config.yaml)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres"
	"github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres/audit"
	reciperepo "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres/recipe"
	reviewrepo "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres/review"
	userrepo "github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres/user"
	"github.com/bodyfuel/bodyfuel-backend/internal/adapter/storage"
	"github.com/bodyfuel/bodyfuel-backend/internal/app"
	"github.com/bodyfuel/bodyfuel-backend/internal/auth"
	"github.com/bodyfuel/bodyfuel-backend/internal/config"
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
	recipesvc "github.com/bodyfuel/bodyfuel-backend/internal/service/recipe"
	"github.com/bodyfuel/bodyfuel-backend/pkg/ctxutil"
)

func main() {
	emailFlag := flag.String("email", "demo@bodyfuel.local", "demo user email")
	nameFlag := flag.String("name", "Demo Cook", "demo user display name")
	configFlag := flag.String("config", "", "YAML config file")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configFlag != "" {
		cfg, err = config.LoadFile(*configFlag, true)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	recipes := reciperepo.New(pool)
	recipeService := recipesvc.NewService(logger, recipes, reviewrepo.New(pool), users,
		storage.NewPresigner(cfg.Storage), audit.New(pool), txm, cfg.Recipe)

	now := time.Now().UTC()
	user, err := users.Create(ctx, &domain.User{
		ID:        uuid.New(),
		Email:     *emailFlag,
		Name:      *nameFlag,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		logger.Error("create demo user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, name := range domain.DefaultCategories {
		if _, err := recipes.FindOrCreateCategory(ctx, name); err != nil {
			logger.Error("create category", slog.String("category", name), slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	existing, err := recipes.ListByUser(ctx, user.ID)
	if err != nil {
		logger.Error("list demo recipes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	created := 0
	if len(existing) == 0 {
		userCtx := ctxutil.WithUserID(ctx, user.ID)
		for _, in := range sampleRecipes() {
			res, err := recipeService.CreateRecipe(userCtx, in)
			if err != nil {
				logger.Error("create sample recipe", slog.String("name", in.Name), slog.String("error", err.Error()))
				os.Exit(1)
			}
			logger.Info("sample recipe created", slog.String("slug", res.Recipe.Slug))
			created++
		}
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL).
		GenerateAccessToken(user.ID)
	if err != nil {
		logger.Error("generate access token", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed completed",
		slog.String("user_id", user.ID.String()),
		slog.Int("categories", len(domain.DefaultCategories)),
		slog.Int("recipes_created", created),
	)
	fmt.Println(token)
}
