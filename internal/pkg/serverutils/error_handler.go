package serverutils

import (
	"errors"

	"github.com/shreyansh1410/aiNotes/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware maps taxonomy errors to generic user-facing
// responses. The messages deliberately carry no detail: an auth failure
// never says why, and a foreign note is reported exactly like a missing
// one.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		switch {
		case errors.Is(err, apperr.ErrUnauthenticated):
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid credentials"})
		case errors.Is(err, apperr.ErrNotFound):
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Note not found"})
		case errors.Is(err, apperr.ErrAlreadyActive):
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "Already active"})
		}

		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return ctx.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
		}

		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong"})
	}
}
