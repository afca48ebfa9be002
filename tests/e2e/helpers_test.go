//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/bodyfuel/bodyfuel-backend/internal/adapter/postgres/testhelper"
	"github.com/bodyfuel/bodyfuel-backend/internal/app"
	authpkg "github.com/bodyfuel/bodyfuel-backend/internal/auth"
	"github.com/bodyfuel/bodyfuel-backend/internal/config"
	"github.com/bodyfuel/bodyfuel-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// testConfig returns the configuration Load would produce for a test run.
func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
		},
		Storage: config.StorageConfig{
			Bucket:          "test-images",
			Region:          "us-east-1",
			Endpoint:        "http://localhost:9000",
			AccessKeyID:     "test",
			SecretAccessKey: "test-secret",
			UsePathStyle:    true,
			UploadTTL:       30 * time.Second,
			KeyPrefix:       "recipes/",
		},
		Recipe: config.RecipeConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Journal: config.JournalConfig{
			Timezone: "UTC",
			Location: time.UTC,
		},
		Nutrition: config.NutritionConfig{
			FavorableIncreaseRaw: "protein",
			FavorableIncrease:    []string{"protein"},
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type,X-Timezone",
			AllowCredentials: true,
			MaxAge:           86400,
		},
	}
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	cfg := testConfig()

	handler, stop := app.NewHTTPHandler(cfg, logger, pool)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

// do sends a request with an optional JSON body, bearer token and extra
// header key/value pairs and returns the status and raw response body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string, header ...string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is do followed by decoding the body into a generic map.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string, header ...string) (int, map[string]any) {
	t.Helper()

	status, raw := ts.do(t, method, path, body, token, header...)
	var result map[string]any
	if len(bytes.TrimSpace(raw)) > 0 {
		require.NoError(t, json.Unmarshal(raw, &result), "body: %s", raw)
	}
	return status, result
}

// createTestUser inserts a user directly into the DB and returns it with a
// valid access token.
func createTestUser(t *testing.T, ts *testServer) (domain.User, string) {
	t.Helper()

	user := testhelper.SeedUser(t, ts.Pool)

	tok, err := ts.jwt.GenerateAccessToken(user.ID)
	require.NoError(t, err)
	return user, tok
}

// countRows returns the number of rows in table matching column = id.
func countRows(t *testing.T, ts *testServer, table, column string, id uuid.UUID) int {
	t.Helper()

	var n int
	err := ts.Pool.QueryRow(context.Background(),
		"SELECT count(*) FROM "+table+" WHERE "+column+" = $1", id).Scan(&n)
	require.NoError(t, err)
	return n
}
