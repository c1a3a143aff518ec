package serverutils

import (
	"errors"

	"teamspace-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

var kindStatus = map[apperror.Kind]int{
	apperror.KindValidation:        fiber.StatusBadRequest,
	apperror.KindInvalidIdentifier: fiber.StatusBadRequest,
	apperror.KindUnauthorized:      fiber.StatusUnauthorized,
	apperror.KindForbidden:         fiber.StatusForbidden,
	apperror.KindNotFound:          fiber.StatusNotFound,
	apperror.KindConflict:          fiber.StatusConflict,
	apperror.KindConfiguration:     fiber.StatusInternalServerError,
	apperror.KindInternal:          fiber.StatusInternalServerError,
}

// ErrorHandlerMiddleware translates service errors into HTTP responses.
// Internal details never reach the client; they surface in logs only.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		kind := apperror.KindOf(err)
		status, ok := kindStatus[kind]
		if !ok {
			status = fiber.StatusInternalServerError
		}

		message := err.Error()
		if status == fiber.StatusInternalServerError {
			message = "internal server error"
		}
		return ctx.Status(status).JSON(ErrorResponse(message))
	}
}
