package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ozanturhan/artmarket-backend/internal/authz"
	"github.com/ozanturhan/artmarket-backend/internal/dto"
	"github.com/ozanturhan/artmarket-backend/internal/services"
)

// respondError maps the service and authz error taxonomy onto HTTP
// statuses. Unrecognized errors are logged and hidden behind a 500.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, authz.ErrUnauthenticated),
		errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		status = fiber.StatusUnauthorized
	case errors.Is(err, authz.ErrInsufficientRole),
		errors.Is(err, authz.ErrNotOwner):
		status = fiber.StatusForbidden
	case errors.Is(err, authz.ErrSelfModification),
		errors.Is(err, authz.ErrSelfPurchase),
		errors.Is(err, services.ErrValidationFailed),
		errors.Is(err, services.ErrInvalidStatus):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrArtworkNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrUserNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrArtworkUnavailable),
		errors.Is(err, services.ErrEmailTaken):
		status = fiber.StatusConflict
	}

	if status == fiber.StatusInternalServerError {
		slog.Error("unhandled service error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		return c.Status(status).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		Error: true, Message: err.Error(),
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: message,
	})
}
