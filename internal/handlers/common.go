// common.go
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
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/articles-api/internal/dto"
	"github.com/localnerve/articles-api/internal/metrics"
	"github.com/localnerve/articles-api/internal/types"
	"github.com/localnerve/articles-api/internal/utils"
	"go.uber.org/zap"
)

// parseID reads a positive integer route parameter
func parseID(c *fiber.Ctx, name string) (int, error) {
	raw := c.Params(name)
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, types.Validation(fmt.Sprintf("The value '%s' is not valid for %s.", raw, name))
	}
	return id, nil
}

// bindRequest decodes the JSON body into req and runs its validation tags.
// name prefixes the validation message.
func bindRequest(c *fiber.Ctx, name string, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return types.Validation(fmt.Sprintf("%s is invalid: %v", name, err))
	}
	if msg := dto.ValidationMessage(name, req); msg != "" {
		return types.Validation(msg)
	}
	return nil
}

// ErrorHandler maps domain errors to their status with the message as a JSON string body.
// Anything else is logged and answered with the structured error body.
func ErrorHandler(log *zap.Logger, m *metrics.Metrics) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if ce, ok := types.AsCustomError(err); ok {
			m.DomainError(ce.Type)
			return utils.MessageResponse(c, ce.Code, ce.Message)
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return utils.ErrorResponse(c, fe.Message, fe.Code, "http")
		}

		log.Error("Unhandled request error",
			zap.String("method", c.Method()),
			zap.String("url", c.OriginalURL()),
			zap.Error(err))
		return utils.ErrorResponse(c, "Internal Server Error", fiber.StatusInternalServerError, "unknown")
	}
}
