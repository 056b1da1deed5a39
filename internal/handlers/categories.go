package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/articles-api/internal/dto"
	"github.com/localnerve/articles-api/internal/services"
	"github.com/localnerve/articles-api/internal/utils"
)

// ArticleCategoryHandler handles /api/articlecategories
type ArticleCategoryHandler struct {
	Service *services.ArticleCategoryService
}

// List handles GET /api/articlecategories
// @Summary Get all article categories
// @Tags ArticleCategories
// @Produce json
// @Success 200 {array} dto.ArticleCategoryDTO
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/articlecategories [get]
func (h *ArticleCategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.Service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// Get handles GET /api/articlecategories/:articleCategoryId
// @Summary Get an article category by id
// @Tags ArticleCategories
// @Produce json
// @Param articleCategoryId path int true "Article category ID"
// @Success 200 {object} dto.ArticleCategoryDTO
// @Failure 404 "Not Found"
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/articlecategories/{articleCategoryId} [get]
func (h *ArticleCategoryHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "articleCategoryId")
	if err != nil {
		return err
	}
	category, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if category == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(category)
}

// Create handles POST /api/articlecategories
// @Summary Add an article category
// @Tags ArticleCategories
// @Accept json
// @Produce json
// @Param category body dto.UpdateArticleCategoryRequest true "New category"
// @Success 201 {object} dto.ArticleCategoryDTO
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/articlecategories [post]
func (h *ArticleCategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.UpdateArticleCategoryRequest
	if err := bindRequest(c, "ArticleCategoryDTO", &req); err != nil {
		return err
	}
	category, err := h.Service.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return utils.CreatedResponse(c, fmt.Sprintf("/api/articlecategories/%d", category.ID), category)
}

// Update handles PUT /api/articlecategories/:articleCategoryId
// @Summary Update an article category
// @Tags ArticleCategories
// @Accept json
// @Param articleCategoryId path int true "Article category ID"
// @Param category body dto.UpdateArticleCategoryRequest true "Updated category"
// @Success 204 "No Content"
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Failure 404 "Not Found"
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/articlecategories/{articleCategoryId} [put]
func (h *ArticleCategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "articleCategoryId")
	if err != nil {
		return err
	}
	var req dto.UpdateArticleCategoryRequest
	if err := bindRequest(c, "ArticleCategoryDTO", &req); err != nil {
		return err
	}
	category, err := h.Service.Update(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	if category == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return utils.NoContentResponse(c)
}

// Delete handles DELETE /api/articlecategories/:articleCategoryId
// @Summary Delete an article category
// @Tags ArticleCategories
// @Param articleCategoryId path int true "Article category ID"
// @Success 204 "No Content"
// @Failure 401 {string} string
// @Failure 404 "Not Found"
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/articlecategories/{articleCategoryId} [delete]
func (h *ArticleCategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "articleCategoryId")
	if err != nil {
		return err
	}
	category, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if category == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return utils.NoContentResponse(c)
}
