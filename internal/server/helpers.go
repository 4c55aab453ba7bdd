package server

import (
	"errors"
	"log/slog"
	"strconv"

	"postboard/internal/middleware"
	"postboard/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter by name as an integer id.
// On failure it writes a 422 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func parseID(c *fiber.Ctx, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(param), 10, 64)
	if err != nil {
		_ = models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError("Invalid ID"))
		return 0, errResponseWritten
	}
	return id, nil
}

// parsePostInput decodes and checks a {title, content} body.
// On failure it writes a 422 JSON response and returns errResponseWritten.
func parsePostInput(c *fiber.Ctx) (title, content string, err error) {
	var in models.PostInput
	if err := c.BodyParser(&in); err != nil {
		_ = models.RespondWithError(c, fiber.StatusUnprocessableEntity,
			models.NewValidationError("Invalid request body"))
		return "", "", errResponseWritten
	}
	if err := in.Validate(); err != nil {
		_ = models.RespondWithError(c, fiber.StatusUnprocessableEntity, err)
		return "", "", errResponseWritten
	}
	return *in.Title, *in.Content, nil
}

// respondWithServiceError maps a service error onto its HTTP status. Server
// errors are logged with the request context before the generic body is sent.
func respondWithServiceError(c *fiber.Ctx, err error) error {
	status := models.StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("error", err.Error()))
	}
	return models.RespondWithError(c, status, err)
}
