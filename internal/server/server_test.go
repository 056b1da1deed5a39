package server

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/articles-api/internal/config"
	"github.com/localnerve/articles-api/internal/testutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		RequestBodyLimit:   1024 * 1024,
		JWTSecret:          "secret",
		JWTIssuer:          "AuthSer",
		JWTAudience:        "AuthClient",
		JWTLifetime:        time.Minute,
		AuthRequiredRoutes: map[string]bool{"comments.delete": true},
	}
}

func TestWebHost(t *testing.T) {
	store := testutil.NewTestStore(t)
	testutil.Seed(t, store)
	app := New(testConfig(), store, zap.NewNop(), prometheus.NewRegistry())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/articles", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	// a domain error shows up on the metrics endpoint
	resp, err = app.Test(httptest.NewRequest("GET", "/api/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/api/comments/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	dup := httptest.NewRequest("POST", "/api/users", strings.NewReader(`{"userName":"User","email":"other","password":"p"}`))
	dup.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(dup)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `articles_api_domain_errors_total{type="unauthorized"} 1`)
	assert.Contains(t, string(body), `http_requests_total{method="POST",path="/api/users",service="articles-api",status_code="409"} 1`)
	assert.NotContains(t, string(body), `status_code="500"`)
}

func TestTwoAppsDoNotCollide(t *testing.T) {
	store := testutil.NewTestStore(t)
	assert.NotPanics(t, func() {
		New(testConfig(), store, zap.NewNop(), prometheus.NewRegistry())
		New(testConfig(), store, zap.NewNop(), prometheus.NewRegistry())
	})
}

func TestFunctionHost(t *testing.T) {
	store := testutil.NewTestStore(t)
	testutil.Seed(t, store)
	app := NewFunctions(testConfig(), store, zap.NewNop())

	resp, err := app.Test(httptest.NewRequest("GET", "/api/articles/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/users", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
