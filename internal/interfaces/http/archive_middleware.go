package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-opname/internal/application/dto"
)

// archiveChecker es el contrato mínimo que necesita el middleware.
// Lo implementa *opname.ReportUseCase.
type archiveChecker interface {
	ArchiveEnabled() bool
}

// RequireArchive corta con 503 las rutas de reportes archivados cuando el
// archivo está deshabilitado (ARCHIVE_ENABLED=false). Va después de AuthMiddleware.
func RequireArchive(checker archiveChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !checker.ArchiveEnabled() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ARCHIVE_DISABLED",
				Message: "el archivo de reportes no está habilitado",
			})
		}
		return c.Next()
	}
}
