package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// MessageResponse sends a bare JSON string body, the shape of every domain error
func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(message)
}

// CreatedResponse sends 201 with a Location header pointing at the new resource
func CreatedResponse(c *fiber.Ctx, location string, data interface{}) error {
	c.Location(location)
	return c.Status(fiber.StatusCreated).JSON(data)
}

// NoContentResponse sends 204 with an empty body
func NoContentResponse(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// ErrorResponse sends the structured body used for unhandled failures
func ErrorResponse(c *fiber.Ctx, message string, status int, errorType string) error {
	return c.Status(status).JSON(ErrorResponseStruct{
		Status:    status,
		Message:   message,
		Ok:        false,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       c.OriginalURL(),
		Type:      errorType,
	})
}

// ErrorResponseStruct defines the schema for unhandled error responses
type ErrorResponseStruct struct {
	Status    int    `json:"status"`
	Message   string `json:"message"`
	Ok        bool   `json:"ok"`
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Type      string `json:"type,omitempty"`
}

// TokenErrorStruct defines the schema for a rejected token request
type TokenErrorStruct struct {
	ErrorText string `json:"errorText"`
}
