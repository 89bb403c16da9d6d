package http

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/shopping-api/internal/application/dto"
	"github.com/jhoicas/shopping-api/internal/domain"
	"github.com/jhoicas/shopping-api/pkg/logger"
)

// NewErrorHandler construye el boundary global de fallas: toda falla no
// manejada que sale de un handler pasa por esta tabla de decisión, en este
// orden de prioridad. Duplicado y foreign key se evalúan antes que la falla
// genérica de storage: ambas también son errores del motor y de otro modo
// caerían en esa regla primero.
func NewErrorHandler(env string, log *logger.Logger) fiber.ErrorHandler {
	dev := env == "development"
	return func(c *fiber.Ctx, err error) error {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("falla no manejada en handler")

		resp := dto.StatusResponse{Status: "ERROR", Timestamp: dto.NowISO()}

		// 1. Violación de clave única.
		if errors.Is(err, domain.ErrDuplicate) {
			resp.Message = "Duplicate entry found"
			return c.Status(fiber.StatusConflict).JSON(resp)
		}
		// 2. Violación de foreign key.
		if errors.Is(err, domain.ErrForeignKey) {
			resp.Message = "Referenced record not found"
			return c.Status(fiber.StatusBadRequest).JSON(resp)
		}
		// 3. Cualquier otra falla marcada por el motor (detalle solo en development).
		var storageErr *domain.StorageError
		if errors.Is(err, domain.ErrCheckFailed) || errors.As(err, &storageErr) {
			resp.Message = "Database operation failed"
			if dev {
				resp.Error = err.Error()
			}
			return c.Status(fiber.StatusBadRequest).JSON(resp)
		}
		// 4. Validación declarada, con detalle por campo.
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			resp.Message = "Validation failed"
			resp.Details = validationErr.Fields
			return c.Status(fiber.StatusBadRequest).JSON(resp)
		}
		// 5. Falla de token de autenticación.
		if errors.Is(err, domain.ErrInvalidToken) {
			resp.Message = "Invalid token"
			return c.Status(fiber.StatusUnauthorized).JSON(resp)
		}
		// 6. Storage no disponible (pool agotado, conexión caída): transitorio,
		// seguro de reintentar.
		if errors.Is(err, domain.ErrUnavailable) {
			resp.Message = "Database connection failed"
			return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
		}
		// 7. Fallback: status del error si lo trae, 500 si no.
		status := fiber.StatusInternalServerError
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			status = fiberErr.Code
		}
		resp.Message = err.Error()
		if dev {
			resp.Stack = string(debug.Stack())
		}
		return c.Status(status).JSON(resp)
	}
}
