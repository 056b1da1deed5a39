// articles.go
//
// A multi-store articles, comments and users REST service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of articles-api.
// articles-api is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// articles-api is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with articles-api.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/articles-api/internal/dto"
	"github.com/localnerve/articles-api/internal/services"
	"github.com/localnerve/articles-api/internal/utils"
)

// ArticleHandler handles /api/articles
type ArticleHandler struct {
	Service *services.ArticleService
}

// List handles GET /api/articles
// @Summary Get all articles
// @Tags Articles
// @Produce json
// @Success 200 {array} dto.ArticleDTO
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/articles [get]
func (h *ArticleHandler) List(c *fiber.Ctx) error {
	articles, err := h.Service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(articles)
}

// ListByUser handles GET /api/users/:userId/articles
// @Summary Get the articles owned by a user
// @Tags Articles
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} dto.ArticleDTO
// @Failure 400 {string} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/users/{userId}/articles [get]
func (h *ArticleHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return err
	}
	articles, err := h.Service.ListByUser(c.UserContext(), userID)
	if err != nil {
		return err
	}
	return c.JSON(articles)
}

// Get handles GET /api/articles/:articleId
// @Summary Get an article by id
// @Tags Articles
// @Produce json
// @Param articleId path int true "Article ID"
// @Success 200 {object} dto.ArticleDTO
// @Failure 404 "Not Found"
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/articles/{articleId} [get]
func (h *ArticleHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "articleId")
	if err != nil {
		return err
	}
	article, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if article == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(article)
}

// Create handles POST /api/articles
// @Summary Add an article
// @Description Fails with 404 when the user or category does not exist, 409 when the title is taken
// @Tags Articles
// @Accept json
// @Produce json
// @Param article body dto.UpdateArticleRequest true "New article"
// @Success 201 {object} dto.ArticleDTO
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Failure 404 {string} string
// @Failure 409 {string} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/articles [post]
func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	var req dto.UpdateArticleRequest
	if err := bindRequest(c, "ArticleDTO", &req); err != nil {
		return err
	}
	article, err := h.Service.Create(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return utils.CreatedResponse(c, fmt.Sprintf("/api/articles/%d", article.ID), article)
}

// Update handles PUT /api/articles/:articleId
// @Summary Update an article
// @Tags Articles
// @Accept json
// @Param articleId path int true "Article ID"
// @Param article body dto.UpdateArticleRequest true "Updated article"
// @Success 204 "No Content"
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Failure 404 {string} string
// @Failure 409 {string} string
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/articles/{articleId} [put]
func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "articleId")
	if err != nil {
		return err
	}
	var req dto.UpdateArticleRequest
	if err := bindRequest(c, "ArticleDTO", &req); err != nil {
		return err
	}
	article, err := h.Service.Update(c.UserContext(), id, &req)
	if err != nil {
		return err
	}
	if article == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return utils.NoContentResponse(c)
}

// Delete handles DELETE /api/articles/:articleId
// @Summary Delete an article
// @Tags Articles
// @Param articleId path int true "Article ID"
// @Success 204 "No Content"
// @Failure 401 {string} string
// @Failure 404 "Not Found"
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/articles/{articleId} [delete]
func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "articleId")
	if err != nil {
		return err
	}
	article, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if article == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return utils.NoContentResponse(c)
}
