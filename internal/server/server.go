// server.go
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

// Package server assembles the Fiber applications for the web host and the function host.
package server

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/localnerve/articles-api/internal/config"
	"github.com/localnerve/articles-api/internal/functions"
	"github.com/localnerve/articles-api/internal/handlers"
	"github.com/localnerve/articles-api/internal/metrics"
	"github.com/localnerve/articles-api/internal/middleware"
	"github.com/localnerve/articles-api/internal/repository"
	"github.com/localnerve/articles-api/internal/services"
	"github.com/localnerve/articles-api/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	_ "github.com/localnerve/articles-api/docs/api" // Swagger docs
)

// ServiceName labels logs and HTTP metrics
const ServiceName = "articles-api"

// New builds the web host: resource routes, token issuance, health, metrics and Swagger UI.
// Metrics are registered with reg, so separate apps never collide.
func New(cfg *config.Config, store *repository.Store, log *zap.Logger, reg *prometheus.Registry) *fiber.App {
	m := metrics.New(reg)

	app := fiber.New(fiber.Config{
		AppName:      ServiceName,
		ErrorHandler: handlers.ErrorHandler(log, m),
		BodyLimit:    cfg.RequestBodyLimit,
	})

	prom := fiberprometheus.NewWithRegistry(reg, ServiceName, "http", "", nil)

	// Global middleware. The request logger resolves handler errors into responses,
	// so prometheus sits outside it and labels the status actually sent.
	app.Use(recover.New())
	app.Use(prom.Middleware)
	app.Use(middleware.RequestLogger(log))
	app.Use(compress.New())

	prom.RegisterAt(app, "/metrics")

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	handlers.Register(app, handlers.Deps{
		Config:   cfg,
		Store:    store,
		Services: services.New(store, cfg),
		Metrics:  m,
		Log:      log,
	})

	app.Use(notFound)

	return app
}

// NewFunctions builds the function host serving the article functions
func NewFunctions(cfg *config.Config, store *repository.Store, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               ServiceName + "-functions",
		ErrorHandler:          handlers.ErrorHandler(log, nil),
		BodyLimit:             cfg.RequestBodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(log))

	functions.Register(app, services.New(store, cfg).Articles)

	app.Use(notFound)

	return app
}

func notFound(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, "[404] Resource Not Found", fiber.StatusNotFound, "route")
}
