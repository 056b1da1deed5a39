package utils

import (
	"encoding/json"
	"io"
	"net"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	assert.NoError(t, PingService("http://127.0.0.1:"+port, time.Second))
	assert.Error(t, PingService("::bad", time.Second))
	assert.Error(t, PingService("http://", time.Second))
}

func TestPingServerClosedPort(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	u, err := url.Parse("http://" + ln.Addr().String())
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	assert.Error(t, PingServer(u.Port()))
}

func TestResponses(t *testing.T) {
	app := fiber.New()
	app.Get("/message", func(c *fiber.Ctx) error {
		return MessageResponse(c, fiber.StatusConflict, "taken")
	})
	app.Post("/created", func(c *fiber.Ctx) error {
		return CreatedResponse(c, "/things/7", fiber.Map{"id": 7})
	})
	app.Put("/none", NoContentResponse)

	resp, err := app.Test(httptest.NewRequest("GET", "/message", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	var msg string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&msg))
	assert.Equal(t, "taken", msg)

	resp, err = app.Test(httptest.NewRequest("POST", "/created", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/things/7", resp.Header.Get("Location"))

	resp, err = app.Test(httptest.NewRequest("PUT", "/none", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}
