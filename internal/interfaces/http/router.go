package http

import (
	"github.com/gofiber/fiber/v2"

	appopname "github.com/jhoicas/stock-opname/internal/application/opname"
	"github.com/jhoicas/stock-opname/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportUC  *appopname.ReportUseCase
	Logger    *logger.Logger
	JWTSecret string // vacío = API sin autenticación
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	h := NewOpnameHandler(deps.ReportUC, deps.Logger)

	// El JSON Schema de carga es público.
	api.Get("/opname/schema", h.GetUploadSchema)

	opname := api.Group("/opname")
	upload := passThrough
	read := passThrough
	if deps.JWTSecret != "" {
		opname.Use(AuthMiddleware(deps.JWTSecret))
		upload = RequireRole(RoleAuditor)
		read = RequireRole(RoleAuditor, RoleViewer)
	}

	opname.Post("/reports", upload, h.BuildReport)
	opname.Post("/reports/pdf", upload, h.BuildReportPDF)
	opname.Post("/reports/xml", upload, h.BuildReportXML)

	archived := RequireArchive(deps.ReportUC)
	opname.Get("/reports", read, archived, h.ListReports)
	opname.Get("/reports/:id", read, archived, h.GetReport)
}

func passThrough(c *fiber.Ctx) error { return c.Next() }
