//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2E_LiveEndpoint verifies the /live liveness probe returns 200 OK.
func TestE2E_LiveEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.Client.Get(ts.URL + "/live")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

// TestE2E_ReadyEndpoint verifies the /ready readiness probe returns 200 OK
// when the database is reachable.
func TestE2E_ReadyEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.Client.Get(ts.URL + "/ready")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
}

// TestE2E_HealthEndpoint verifies the /health endpoint returns 200 with
// version and database component status.
func TestE2E_HealthEndpoint(t *testing.T) {
	ts := setupTestServer(t)

	resp, err := ts.Client.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])

	components, ok := body["components"].(map[string]any)
	require.True(t, ok, "expected components object")

	db, ok := components["database"].(map[string]any)
	require.True(t, ok, "expected database component")
	assert.Equal(t, "ok", db["status"])
}

// TestE2E_GraphQL_AuthRequired verifies that queries requiring
// authentication return UNAUTHENTICATED when no token is provided.
func TestE2E_GraphQL_AuthRequired(t *testing.T) {
	ts := setupTestServer(t)

	queries := []struct {
		name  string
		query string
	}{
		{"allCategories", `query { allCategories { id name } }`},
		{"getCategoriesAndFavorites", `query { getCategoriesAndFavorites { id name } }`},
		{"getUserDetails", `query { getUserDetails { id email } }`},
		{"createCategory", `mutation { createCategory(name: "Movies") { id name } }`},
		{"deleteCategory", `mutation { deleteCategory(id: 1) { id name } }`},
	}

	for _, tc := range queries {
		t.Run(tc.name, func(t *testing.T) {
			status, result := ts.graphqlQuery(t, tc.query, nil, "")
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, "UNAUTHENTICATED", gqlErrorCode(t, result))
		})
	}
}

// TestE2E_RequestID_InResponse verifies that every response from the
// middleware stack includes an X-Request-Id header.
func TestE2E_RequestID_InResponse(t *testing.T) {
	ts := setupTestServer(t)

	jsonBody, err := json.Marshal(map[string]any{
		"query": `query { allCategories { id } }`,
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/query", bytes.NewReader(jsonBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	requestID := resp.Header.Get("X-Request-Id")
	assert.NotEmpty(t, requestID, "response should include X-Request-Id header")

	// The value should be a valid UUID.
	_, err = uuid.Parse(requestID)
	assert.NoError(t, err, "X-Request-Id should be a valid UUID")
}

// TestE2E_CORS_Preflight verifies that an OPTIONS preflight request to
// /query returns the appropriate Access-Control-Allow-* headers.
func TestE2E_CORS_Preflight(t *testing.T) {
	ts := setupTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/query", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Authorization,Content-Type")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Methods"))
	assert.NotEmpty(t, resp.Header.Get("Access-Control-Allow-Headers"))
}

// TestE2E_GraphQL_InvalidToken verifies that a malformed bearer token is
// rejected rather than treated as anonymous.
func TestE2E_GraphQL_InvalidToken(t *testing.T) {
	ts := setupTestServer(t)

	jsonBody, err := json.Marshal(map[string]any{
		"query": `query { allCategories { id } }`,
	})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/query", bytes.NewReader(jsonBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer not-a-real-token")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
