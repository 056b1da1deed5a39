package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/articles-api/internal/dto"
	"github.com/localnerve/articles-api/internal/services"
	"github.com/localnerve/articles-api/internal/utils"
)

// UserHandler handles /api/users
type UserHandler struct {
	Service *services.UserService
}

// List handles GET /api/users
// @Summary Get all users
// @Tags Users
// @Produce json
// @Success 200 {array} dto.UserDTO
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.Service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// Get handles GET /api/users/:userId
// @Summary Get a user by id
// @Tags Users
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} dto.UserDTO
// @Failure 404 "Not Found"
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/users/{userId} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	user, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if user == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(user)
}

// Create handles POST /api/users
// @Summary Add a user
// @Tags Users
// @Accept json
// @Produce json
// @Param user body dto.UpdateUserRequest true "New user"
// @Success 201 {object} dto.UserDTO
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Failure 409 {string} string "User with same user name or email exists"
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := bindRequest(c, "UserDTO", &req); err != nil {
		return err
	}
	user, err := h.Service.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return utils.CreatedResponse(c, fmt.Sprintf("/api/users/%d", user.ID), user)
}

// Update handles PUT /api/users/:userId
// @Summary Update a user
// @Tags Users
// @Accept json
// @Param userId path int true "User ID"
// @Param user body dto.UpdateUserRequest true "Updated user"
// @Success 204 "No Content"
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Failure 404 "Not Found"
// @Failure 409 {string} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/users/{userId} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := bindRequest(c, "UserDTO", &req); err != nil {
		return err
	}
	user, err := h.Service.Update(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	if user == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return utils.NoContentResponse(c)
}

// Delete handles DELETE /api/users/:userId
// @Summary Delete a user
// @Tags Users
// @Param userId path int true "User ID"
// @Success 204 "No Content"
// @Failure 401 {string} string
// @Failure 404 "Not Found"
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/users/{userId} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	user, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if user == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return utils.NoContentResponse(c)
}
