package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// ErrorHandler renderiza como dto.ErrorResponse los errores que llegan a Fiber
// (rutas inexistentes, pánicos recuperados, errores no mapeados).
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return notFound(c, "recurso no encontrado")
			case fiber.StatusMethodNotAllowed:
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "METHOD_NOT_ALLOWED", Message: fe.Message})
			}
			if fe.Code < fiber.StatusInternalServerError {
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
			}
		}
		return internalError(c, log, err)
	}
}

// writeError traduce los errores de los casos de uso a respuestas HTTP.
func writeError(c *fiber.Ctx, log *logger.Logger, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, notFoundMsg)
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return internalError(c, log, err)
	}
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
}

func internalError(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).
		Str("request_id", RequestID(c)).
		Str("path", c.Path()).
		Msg("error atendiendo petición")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}
