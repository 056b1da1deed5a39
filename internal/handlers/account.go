package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/articles-api/internal/metrics"
	"github.com/localnerve/articles-api/internal/services"
	"github.com/localnerve/articles-api/internal/utils"
)

// AccountHandler issues bearer tokens
type AccountHandler struct {
	Auth    *services.AuthService
	Metrics *metrics.Metrics
}

// Token handles POST /token
// @Summary Issue a bearer token
// @Description Credentials are read from the query string, or from a form body
// @Tags Account
// @Produce json
// @Param userName query string true "User name"
// @Param password query string true "Password"
// @Success 200 {object} services.Token
// @Failure 400 {object} utils.TokenErrorStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /token [post]
func (h *AccountHandler) Token(c *fiber.Ctx) error {
	userName := c.Query("userName", c.FormValue("userName"))
	password := c.Query("password", c.FormValue("password"))

	token, err := h.Auth.IssueToken(c.UserContext(), userName, password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		h.Metrics.Token(false)
		return c.Status(fiber.StatusBadRequest).JSON(utils.TokenErrorStruct{ErrorText: err.Error()})
	}
	if err != nil {
		return err
	}

	h.Metrics.Token(true)
	return c.JSON(token)
}
