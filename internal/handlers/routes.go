package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/articles-api/internal/config"
	"github.com/localnerve/articles-api/internal/metrics"
	"github.com/localnerve/articles-api/internal/middleware"
	"github.com/localnerve/articles-api/internal/repository"
	"github.com/localnerve/articles-api/internal/services"
	"go.uber.org/zap"
)

// Resource names used in AUTH_REQUIRED_ROUTES keys
const (
	ResourceUsers      = "users"
	ResourceArticles   = "articles"
	ResourceCategories = "articlecategories"
	ResourceComments   = "comments"
)

// Operation names used in AUTH_REQUIRED_ROUTES keys
const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
)

// Deps are the collaborators the web routes need
type Deps struct {
	Config   *config.Config
	Store    *repository.Store
	Services *services.Services
	Metrics  *metrics.Metrics
	Log      *zap.Logger
}

// Register mounts /token, /health and the /api resource routes on app
func Register(app *fiber.App, deps Deps) {
	guard := func(resource, operation string) fiber.Handler {
		return middleware.Authorize(deps.Services.Auth, deps.Config.RequiresAuth(resource, operation))
	}

	account := &AccountHandler{Auth: deps.Services.Auth, Metrics: deps.Metrics}
	health := &HealthHandler{Store: deps.Store, Log: deps.Log}
	app.Post("/token", account.Token)
	app.Get("/health", health.Health)

	api := app.Group("/api")

	users := &UserHandler{Service: deps.Services.Users}
	articles := &ArticleHandler{Service: deps.Services.Articles}
	categories := &ArticleCategoryHandler{Service: deps.Services.Categories}
	comments := &CommentHandler{Service: deps.Services.Comments}

	api.Get("/users", guard(ResourceUsers, OpList), users.List)
	api.Post("/users", guard(ResourceUsers, OpCreate), users.Create)
	api.Get("/users/:userId/articles", guard(ResourceArticles, OpList), articles.ListByUser)
	api.Get("/users/:userId", guard(ResourceUsers, OpGet), users.Get)
	api.Put("/users/:userId", guard(ResourceUsers, OpUpdate), users.Update)
	api.Delete("/users/:userId", guard(ResourceUsers, OpDelete), users.Delete)

	api.Get("/articles", guard(ResourceArticles, OpList), articles.List)
	api.Post("/articles", guard(ResourceArticles, OpCreate), articles.Create)
	api.Get("/articles/:articleId", guard(ResourceArticles, OpGet), articles.Get)
	api.Put("/articles/:articleId", guard(ResourceArticles, OpUpdate), articles.Update)
	api.Delete("/articles/:articleId", guard(ResourceArticles, OpDelete), articles.Delete)

	api.Get("/articlecategories", guard(ResourceCategories, OpList), categories.List)
	api.Post("/articlecategories", guard(ResourceCategories, OpCreate), categories.Create)
	api.Get("/articlecategories/:articleCategoryId", guard(ResourceCategories, OpGet), categories.Get)
	api.Put("/articlecategories/:articleCategoryId", guard(ResourceCategories, OpUpdate), categories.Update)
	api.Delete("/articlecategories/:articleCategoryId", guard(ResourceCategories, OpDelete), categories.Delete)

	api.Get("/comments", guard(ResourceComments, OpList), comments.List)
	api.Post("/comments", guard(ResourceComments, OpCreate), comments.Create)
	api.Get("/comments/:commentId", guard(ResourceComments, OpGet), comments.Get)
	api.Put("/comments/:commentId", guard(ResourceComments, OpUpdate), comments.Update)
	api.Delete("/comments/:commentId", guard(ResourceComments, OpDelete), comments.Delete)
}
