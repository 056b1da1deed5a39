package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/articles-api/internal/services"
	"github.com/localnerve/articles-api/internal/types"
)

// UserKey is the Locals key holding the authenticated user name
const UserKey = "user"

// TokenParser verifies a bearer token
type TokenParser interface {
	ParseToken(tokenString string) (*services.Claims, error)
}

// Authorize demands a valid bearer token when required is set, otherwise passes through
func Authorize(tokens TokenParser, required bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !required {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return types.Unauthorized("Bearer token not found")
		}

		claims, err := tokens.ParseToken(strings.TrimSpace(token))
		if err != nil {
			return types.Unauthorized("Bearer token is not valid")
		}

		c.Locals(UserKey, claims.UniqueName)

		return c.Next()
	}
}
