// Package functions serves the article endpoints behind a serverless function host's
// custom handler port. Responses follow the function host conventions: create answers 200,
// and every failure carries a message body.
package functions

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/articles-api/internal/dto"
	"github.com/localnerve/articles-api/internal/services"
	"github.com/localnerve/articles-api/internal/types"
	"github.com/localnerve/articles-api/internal/utils"
)

// ArticleFunctions handles the article functions
type ArticleFunctions struct {
	Service *services.ArticleService
}

// Register mounts the article functions under /api
func Register(app *fiber.App, service *services.ArticleService) {
	f := &ArticleFunctions{Service: service}

	api := app.Group("/api")
	api.Get("/articles", f.GetArticles)
	api.Get("/articles/:articleId", f.GetArticle)
	api.Post("/articles", f.AddArticle)
	api.Put("/articles/:articleId", f.UpdateArticle)
	api.Delete("/articles/:articleId", f.DeleteArticle)
}

// GetArticles returns all articles
func (f *ArticleFunctions) GetArticles(c *fiber.Ctx) error {
	articles, err := f.Service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(articles)
}

// GetArticle returns one article or a not found message
func (f *ArticleFunctions) GetArticle(c *fiber.Ctx) error {
	id, err := articleID(c)
	if err != nil {
		return err
	}
	article, err := f.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if article == nil {
		return notFound(c, id)
	}
	return c.JSON(article)
}

// AddArticle creates an article and answers 200 with it
func (f *ArticleFunctions) AddArticle(c *fiber.Ctx) error {
	req, err := bindArticle(c)
	if err != nil {
		return err
	}
	article, err := f.Service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.JSON(article)
}

// UpdateArticle replaces an article and answers 204
func (f *ArticleFunctions) UpdateArticle(c *fiber.Ctx) error {
	id, err := articleID(c)
	if err != nil {
		return err
	}
	req, err := bindArticle(c)
	if err != nil {
		return err
	}
	article, err := f.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	if article == nil {
		return notFound(c, id)
	}
	return utils.NoContentResponse(c)
}

// DeleteArticle removes an existing article and answers 204
func (f *ArticleFunctions) DeleteArticle(c *fiber.Ctx) error {
	id, err := articleID(c)
	if err != nil {
		return err
	}
	article, err := f.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if article == nil {
		return notFound(c, id)
	}
	if err := f.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return utils.NoContentResponse(c)
}

func articleID(c *fiber.Ctx) (int, error) {
	raw := c.Params("articleId")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, types.NotFound(fmt.Sprintf("Article with id: %s not found.", raw))
	}
	return id, nil
}

func bindArticle(c *fiber.Ctx) (*dto.UpdateArticleRequest, error) {
	var req dto.UpdateArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, types.Validation(fmt.Sprintf("ArticleDTO is invalid: %v", err))
	}
	if msg := dto.ValidationMessage("ArticleDTO", &req); msg != "" {
		return nil, types.Validation(msg)
	}
	return &req, nil
}

func notFound(c *fiber.Ctx, id int) error {
	return utils.MessageResponse(c, fiber.StatusNotFound, fmt.Sprintf("Article with id: %d not found.", id))
}
