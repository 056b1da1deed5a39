package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/articles-api/internal/dto"
	"github.com/localnerve/articles-api/internal/services"
	"github.com/localnerve/articles-api/internal/utils"
)

// CommentHandler handles /api/comments
type CommentHandler struct {
	Service *services.CommentService
}

// List handles GET /api/comments
// @Summary Get all comments
// @Tags Comments
// @Produce json
// @Success 200 {array} dto.CommentDTO
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/comments [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	comments, err := h.Service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(comments)
}

// Get handles GET /api/comments/:commentId
// @Summary Get a comment by id
// @Tags Comments
// @Produce json
// @Param commentId path int true "Comment ID"
// @Success 200 {object} dto.CommentDTO
// @Failure 404 "Not Found"
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/comments/{commentId} [get]
func (h *CommentHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "commentId")
	if err != nil {
		return err
	}
	comment, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if comment == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(comment)
}

// Create handles POST /api/comments
// @Summary Add a comment
// @Description Fails with 404 when the article or user does not exist
// @Tags Comments
// @Accept json
// @Produce json
// @Param comment body dto.UpdateCommentRequest true "New comment"
// @Success 201 {object} dto.CommentDTO
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Failure 404 {string} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/comments [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	var req dto.UpdateCommentRequest
	if err := bindRequest(c, "CommentDTO", &req); err != nil {
		return err
	}
	comment, err := h.Service.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return utils.CreatedResponse(c, fmt.Sprintf("/api/comments/%d", comment.ID), comment)
}

// Update handles PUT /api/comments/:commentId
// @Summary Update a comment
// @Tags Comments
// @Accept json
// @Param commentId path int true "Comment ID"
// @Param comment body dto.UpdateCommentRequest true "Updated comment"
// @Success 204 "No Content"
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Failure 404 {string} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/comments/{commentId} [put]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "commentId")
	if err != nil {
		return err
	}
	var req dto.UpdateCommentRequest
	if err := bindRequest(c, "CommentDTO", &req); err != nil {
		return err
	}
	comment, err := h.Service.Update(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	if comment == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return utils.NoContentResponse(c)
}

// Delete handles DELETE /api/comments/:commentId
// @Summary Delete a comment
// @Tags Comments
// @Security BearerAuth
// @Param commentId path int true "Comment ID"
// @Success 204 "No Content"
// @Failure 401 {string} string
// @Failure 404 "Not Found"
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/comments/{commentId} [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "commentId")
	if err != nil {
		return err
	}
	comment, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if comment == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return utils.NoContentResponse(c)
}
