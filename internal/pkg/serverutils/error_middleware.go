package serverutils

import (
	"errors"

	"proofly-be/internal/pkg/apperrors"
	"proofly-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates application errors into HTTP responses.
// Unexpected errors are logged and reported as a generic 500 so no internal
// detail leaks to the client.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperrors.From(err); ok {
			status := statusFor(appErr.Kind)
			if appErr.Fields != nil {
				return ctx.Status(status).JSON(FieldErrorResponse(status, appErr.Message, appErr.Fields))
			}
			return ctx.Status(status).JSON(ErrorResponse(status, appErr.Message))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		log.Error("http", "Unhandled error", map[string]interface{}{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}

func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case apperrors.KindForbidden:
		return fiber.StatusForbidden
	case apperrors.KindNotFound:
		return fiber.StatusNotFound
	case apperrors.KindConflict:
		return fiber.StatusConflict
	case apperrors.KindValidation:
		return fiber.StatusBadRequest
	case apperrors.KindUpstream:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
