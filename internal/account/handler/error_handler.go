package handler

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/AnthoniusHendriyanto/account-service/internal/errors"
)

const timestampLayout = "2006-01-02 | 15:04:05"

// errorEnvelope is the uniform error response body. Message is a string for
// domain errors and a list for validation errors.
type errorEnvelope struct {
	StatusCode int    `json:"statusCode"`
	Message    any    `json:"message"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
}

// NewErrorHandler translates every error escaping a handler or middleware
// into the error envelope. Errors outside the domain taxonomy become a 500.
func NewErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var message any = "Internal Server Error"

		var (
			domainErr     *apperrors.Error
			validationErr *apperrors.ValidationError
			fiberErr      *fiber.Error
		)

		switch {
		case errors.As(err, &domainErr):
			status = domainErr.Status
			message = domainErr.Message
			logger.Warn("request rejected", "status", status, "reason", domainErr.Message, "path", c.Path())
		case errors.As(err, &validationErr):
			status = fiber.StatusBadRequest
			message = validationErr.Messages
			logger.Warn("validation failed", "messages", validationErr.Messages, "path", c.Path())
		case errors.As(err, &fiberErr):
			status = fiberErr.Code
			message = fiberErr.Message
			logger.Warn("request rejected", "status", status, "reason", fiberErr.Message, "path", c.Path())
		default:
			logger.Error("unhandled error", "error", err, "path", c.Path())
		}

		return c.Status(status).JSON(errorEnvelope{
			StatusCode: status,
			Message:    message,
			Timestamp:  time.Now().Format(timestampLayout),
			Path:       c.OriginalURL(),
		})
	}
}
