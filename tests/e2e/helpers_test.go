//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gqlhandler "github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/kampkelly/favourite-things/internal/adapter/postgres"
	auditrepo "github.com/kampkelly/favourite-things/internal/adapter/postgres/audit"
	categoryrepo "github.com/kampkelly/favourite-things/internal/adapter/postgres/category"
	favoriterepo "github.com/kampkelly/favourite-things/internal/adapter/postgres/favorite"
	"github.com/kampkelly/favourite-things/internal/adapter/postgres/testhelper"
	userrepo "github.com/kampkelly/favourite-things/internal/adapter/postgres/user"
	authpkg "github.com/kampkelly/favourite-things/internal/auth"
	"github.com/kampkelly/favourite-things/internal/config"
	authsvc "github.com/kampkelly/favourite-things/internal/service/auth"
	categorysvc "github.com/kampkelly/favourite-things/internal/service/category"
	usersvc "github.com/kampkelly/favourite-things/internal/service/user"
	gqlpkg "github.com/kampkelly/favourite-things/internal/transport/graphql"
	"github.com/kampkelly/favourite-things/internal/transport/graphql/generated"
	"github.com/kampkelly/favourite-things/internal/transport/graphql/resolver"
	"github.com/kampkelly/favourite-things/internal/transport/middleware"
	"github.com/kampkelly/favourite-things/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// GraphQL assertion / extraction helpers.
// ---------------------------------------------------------------------------

// gqlData extracts the "data" map from a GraphQL response.
func gqlData(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object in response")
	return data
}

// gqlPayload extracts a specific field from the data map.
func gqlPayload(t *testing.T, result map[string]any, field string) map[string]any {
	t.Helper()
	data := gqlData(t, result)
	payload, ok := data[field].(map[string]any)
	require.True(t, ok, "expected %q in data", field)
	return payload
}

// gqlFirstError extracts the first GraphQL error object from the response.
func gqlFirstError(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	errors, ok := result["errors"].([]any)
	require.True(t, ok, "expected errors array")
	require.NotEmpty(t, errors)

	firstErr, ok := errors[0].(map[string]any)
	require.True(t, ok)
	return firstErr
}

// gqlErrorCode extracts the error code from the first GraphQL error.
func gqlErrorCode(t *testing.T, result map[string]any) string {
	t.Helper()
	firstErr := gqlFirstError(t, result)
	extensions, ok := firstErr["extensions"].(map[string]any)
	require.True(t, ok, "expected extensions in error")

	code, ok := extensions["code"].(string)
	require.True(t, ok, "expected code string in extensions")
	return code
}

// gqlErrorMessage extracts the message from the first GraphQL error.
func gqlErrorMessage(t *testing.T, result map[string]any) string {
	t.Helper()
	firstErr := gqlFirstError(t, result)
	msg, ok := firstErr["message"].(string)
	require.True(t, ok, "expected message string in error")
	return msg
}

// requireNoErrors asserts that the GraphQL response has no errors.
func requireNoErrors(t *testing.T, result map[string]any) {
	t.Helper()
	if errs, ok := result["errors"]; ok && errs != nil {
		t.Fatalf("unexpected GraphQL errors: %v", errs)
	}
}

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

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	categoryRepo := categoryrepo.New(pool)
	favoriteRepo := favoriterepo.New(pool)
	userRepo := userrepo.New(pool)
	auditRepo := auditrepo.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	jwtSecret := "test-secret-at-least-32-chars-long!!"
	jwtIssuer := "test-issuer"
	tokenTTL := 15 * time.Minute
	jwtMgr := authpkg.NewJWTManager(jwtSecret, jwtIssuer, tokenTTL)

	// 5. Services.
	categoryService := categorysvc.NewService(logger, categoryRepo, favoriteRepo, auditRepo, txm)
	authService := authsvc.NewService(logger, userRepo, jwtMgr, config.AuthConfig{
		JWTSecret:        jwtSecret,
		JWTIssuer:        jwtIssuer,
		TokenTTL:         tokenTTL,
		PasswordHashCost: 4, // bcrypt.MinCost, keeps signup fast in tests
	})
	userService := usersvc.NewService(logger, userRepo, auditRepo)

	// 6. GraphQL resolver + handler.
	res := resolver.NewResolver(logger, categoryService, authService, userService)

	schema := generated.NewExecutableSchema(generated.Config{Resolvers: res})
	gqlSrv := gqlhandler.New(schema)
	gqlSrv.AddTransport(transport.Options{})
	gqlSrv.AddTransport(transport.POST{})
	gqlSrv.SetErrorPresenter(gqlpkg.NewErrorPresenter(logger))

	// 7. Middleware chain.
	graphqlHandler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(jwtMgr),
	)(gqlSrv)

	// 8. Mux.
	mux := http.NewServeMux()

	healthHandler := rest.NewHealthHandler(pool, "test-version")
	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("POST /query", graphqlHandler)
	mux.Handle("OPTIONS /query", graphqlHandler)

	// 9. httptest server.
	srv := httptest.NewServer(mux)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// graphqlQuery sends a GraphQL POST request and returns status + decoded body.
// ---------------------------------------------------------------------------

func (ts *testServer) graphqlQuery(t *testing.T, query string, variables map[string]any, token string) (int, map[string]any) {
	t.Helper()

	body := map[string]any{
		"query":     query,
		"variables": variables,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal graphql body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/query", bytes.NewReader(jsonBody))
	if err != nil {
		t.Fatalf("create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.StatusCode, result
}

// ---------------------------------------------------------------------------
// createTestUserAndGetToken inserts a user directly into the DB and returns
// a valid JWT token for that user together with the user's id.
// ---------------------------------------------------------------------------

func createTestUserAndGetToken(t *testing.T, ts *testServer) (string, int64) {
	t.Helper()

	user := testhelper.SeedUser(t, ts.Pool)

	tok, err := ts.jwt.GenerateToken(authpkg.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	return tok, user.ID
}
