package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/articles-api/internal/config"
	"github.com/localnerve/articles-api/internal/dto"
	"github.com/localnerve/articles-api/internal/handlers"
	"github.com/localnerve/articles-api/internal/metrics"
	"github.com/localnerve/articles-api/internal/services"
	"github.com/localnerve/articles-api/internal/testutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, authRoutes ...string) *fiber.App {
	t.Helper()

	store := testutil.NewTestStore(t)
	testutil.Seed(t, store)

	routes := map[string]bool{"comments.delete": true}
	for _, r := range authRoutes {
		routes[r] = true
	}
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTIssuer:          "AuthSer",
		JWTAudience:        "AuthClient",
		JWTLifetime:        time.Minute,
		AuthRequiredRoutes: routes,
	}

	log := zap.NewNop()
	m := metrics.New(prometheus.NewRegistry())
	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler(log, m)})
	handlers.Register(app, handlers.Deps{
		Config:   cfg,
		Store:    store,
		Services: services.New(store, cfg),
		Metrics:  m,
		Log:      log,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body interface{}, header ...string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestUserEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/users", dto.UpdateUserRequest{UserName: "alice", Email: "a@x.com", Password: "p"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/users/2", resp.Header.Get("Location"))
	alice := decode[dto.UserDTO](t, resp)
	assert.Equal(t, 2, alice.ID)

	resp = doJSON(t, app, "POST", "/api/users", dto.UpdateUserRequest{UserName: "alice", Email: "b@x.com", Password: "p"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, services.MsgUserNameExists, decode[string](t, resp))

	resp = doJSON(t, app, "GET", "/api/users/2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, alice, decode[dto.UserDTO](t, resp))

	resp = doJSON(t, app, "GET", "/api/users", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.UserDTO](t, resp), 2)

	resp = doJSON(t, app, "PUT", "/api/users/2", dto.UpdateUserRequest{UserName: "alicia", Email: "a2@x.com", Password: "p"})
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, "PUT", "/api/users/99", dto.UpdateUserRequest{UserName: "zed", Email: "z@x.com", Password: "p"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, "DELETE", "/api/users/2", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/users/2", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)

	resp = doJSON(t, app, "DELETE", "/api/users/2", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestValidationAndBadIDs(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/users", dto.UpdateUserRequest{UserName: "nomail"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[string](t, resp), "UserDTO is invalid")

	resp = doJSON(t, app, "POST", "/api/articles", map[string]interface{}{"title": "T", "content": "c", "categoryId": 0, "userId": 1})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[string](t, resp), "categoryId")

	resp = doJSON(t, app, "PUT", "/api/articles/1", dto.UpdateArticleRequest{Title: strings.Repeat("t", 300), Content: "c", CategoryID: 1, UserID: 1})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[string](t, resp), "maximum length of 255")

	resp = doJSON(t, app, "GET", "/api/articles/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest("POST", "/api/comments", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	r, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, r.StatusCode)
}

func TestArticleEndpoints(t *testing.T) {
	app := newTestApp(t)

	// ids may arrive as strings
	resp := doJSON(t, app, "POST", "/api/articles", map[string]interface{}{"title": "T", "content": "c", "categoryId": "1", "userId": 1})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	article := decode[dto.ArticleDTO](t, resp)
	assert.Equal(t, 2, article.ID)
	assert.Equal(t, "/api/articles/2", resp.Header.Get("Location"))

	resp = doJSON(t, app, "POST", "/api/articles", dto.UpdateArticleRequest{Title: "T", Content: "c", CategoryID: 1, UserID: 1})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Article with title T exists.", decode[string](t, resp))

	resp = doJSON(t, app, "POST", "/api/articles", dto.UpdateArticleRequest{Title: "U", Content: "c", CategoryID: 1, UserID: 77})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, services.MsgUserNotFound, decode[string](t, resp))

	resp = doJSON(t, app, "POST", "/api/articles", dto.UpdateArticleRequest{Title: "U", Content: "c", CategoryID: 77, UserID: 1})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, services.MsgCategoryNotFound, decode[string](t, resp))

	resp = doJSON(t, app, "GET", "/api/users/1/articles", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]dto.ArticleDTO](t, resp), 2)

	resp = doJSON(t, app, "PUT", "/api/articles/2", dto.UpdateArticleRequest{Title: "T2", Content: "c2", CategoryID: 1, UserID: 1})
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/articles/2", nil)
	assert.Equal(t, "T2", decode[dto.ArticleDTO](t, resp).Title)

	resp = doJSON(t, app, "DELETE", "/api/articles/2", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, app, "GET", "/api/articles/2", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCategoryEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/articlecategories", dto.UpdateArticleCategoryRequest{CategoryName: "News"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	category := decode[dto.ArticleCategoryDTO](t, resp)

	resp = doJSON(t, app, "GET", "/api/articlecategories", nil)
	assert.Len(t, decode[[]dto.ArticleCategoryDTO](t, resp), 2)

	resp = doJSON(t, app, "PUT", "/api/articlecategories/2", dto.UpdateArticleCategoryRequest{CategoryName: "Sport"})
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/articlecategories/2", nil)
	assert.Equal(t, dto.ArticleCategoryDTO{ID: category.ID, CategoryName: "Sport"}, decode[dto.ArticleCategoryDTO](t, resp))

	resp = doJSON(t, app, "DELETE", "/api/articlecategories/2", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestCommentEndpointsAndAuth(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/comments", dto.UpdateCommentRequest{Content: "c", ArticleID: 999, UserID: 1})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, services.MsgArticleNotFound, decode[string](t, resp))

	resp = doJSON(t, app, "POST", "/api/comments", dto.UpdateCommentRequest{Content: "hi", ArticleID: 1, UserID: 1})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	comment := decode[dto.CommentDTO](t, resp)

	// deleting a comment requires a bearer token by default
	resp = doJSON(t, app, "DELETE", "/api/comments/2", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/token?userName=User&password=123456", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	token := decode[services.Token](t, resp)
	assert.Equal(t, "User", token.Username)

	resp = doJSON(t, app, "DELETE", "/api/comments/2", nil, "Authorization", "Bearer "+token.AccessToken)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/comments/2", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 2, comment.ID)
}

func TestConfiguredAuthRoutes(t *testing.T) {
	app := newTestApp(t, "articles.create")

	resp := doJSON(t, app, "POST", "/api/articles", dto.UpdateArticleRequest{Title: "T", Content: "c", CategoryID: 1, UserID: 1})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/api/articles", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTokenInvalidCredentials(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/token?userName=User&password=nope", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "Invalid userName or password", body["errorText"])
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/health", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", decode[services.HealthCheckResult](t, resp).Status)
}
