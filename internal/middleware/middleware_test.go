package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/articles-api/internal/services"
	"github.com/localnerve/articles-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubParser map[string]string

func (s stubParser) ParseToken(token string) (*services.Claims, error) {
	if name, ok := s[token]; ok {
		return &services.Claims{UniqueName: name}, nil
	}
	return nil, errors.New("bad token")
}

func newAuthApp(required bool) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if ce, ok := types.AsCustomError(err); ok {
				return c.Status(ce.Code).JSON(ce.Message)
			}
			return c.SendStatus(fiber.StatusInternalServerError)
		},
	})
	app.Delete("/things/:id", Authorize(stubParser{"good": "alice"}, required), func(c *fiber.Ctx) error {
		user, _ := c.Locals(UserKey).(string)
		return c.SendString(user)
	})
	return app
}

func TestAuthorizeRequired(t *testing.T) {
	app := newAuthApp(true)

	cases := map[string]int{
		"":            fiber.StatusUnauthorized,
		"Bearer":      fiber.StatusUnauthorized,
		"Basic good":  fiber.StatusUnauthorized,
		"Bearer nope": fiber.StatusUnauthorized,
		"Bearer good": fiber.StatusOK,
		"bearer good": fiber.StatusOK,
	}
	for header, want := range cases {
		req := httptest.NewRequest("DELETE", "/things/1", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, header)
	}
}

func TestAuthorizeNotRequired(t *testing.T) {
	app := newAuthApp(false)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/things/1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusConflict).JSON(err.Error())
		},
	})
	app.Use(RequestLogger(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error { return errors.New("taken") })

	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set("X-Request-ID", "abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Header.Get("X-Request-ID"))

	resp, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	var msg string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Equal(t, "taken", msg)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0].ContextMap()["requestId"])
	assert.Equal(t, int64(fiber.StatusConflict), entries[1].ContextMap()["status"])
}
