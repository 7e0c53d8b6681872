package http

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-opname/internal/application/dto"
	appopname "github.com/jhoicas/stock-opname/internal/application/opname"
	"github.com/jhoicas/stock-opname/internal/domain"
	"github.com/jhoicas/stock-opname/pkg/logger"
)

// HeaderFilename permite nombrar el archivo cuando se sube como cuerpo JSON crudo.
const HeaderFilename = "X-Filename"

// OpnameHandler maneja los endpoints del dashboard de stock opname.
type OpnameHandler struct {
	uc  *appopname.ReportUseCase
	log *logger.Logger
}

// NewOpnameHandler construye el handler.
func NewOpnameHandler(uc *appopname.ReportUseCase, log *logger.Logger) *OpnameHandler {
	return &OpnameHandler{uc: uc, log: log.Component("opname_http")}
}

// BuildReport godoc
// @Summary      Generar reporte de stock opname
// @Description  Recibe el archivo JSON (cuerpo crudo o multipart "file") y devuelve totales
//               por lokasi y tipo, la distribución de selisih y los registros enriquecidos.
// @Tags         opname
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      json
// @Param        schema  query  string  false  "auto | default | legacy"
// @Param        policy  query  string  false  "fail | skip"
// @Success      200  {object}  dto.OpnameReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.RecordErrorResponse
// @Router       /api/opname/reports [post]
func (h *OpnameHandler) BuildReport(c *fiber.Ctx) error {
	in, err := h.upload(c)
	if err != nil {
		return h.fail(c, err)
	}
	start := time.Now()
	report, err := h.uc.Build(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	h.logReport(report, time.Since(start), "json")
	return c.JSON(report)
}

// BuildReportPDF godoc
// @Summary      Dashboard de stock opname en PDF
// @Tags         opname
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      application/pdf
// @Param        schema  query  string  false  "auto | default | legacy"
// @Param        policy  query  string  false  "fail | skip"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.RecordErrorResponse
// @Router       /api/opname/reports/pdf [post]
func (h *OpnameHandler) BuildReportPDF(c *fiber.Ctx) error {
	in, err := h.upload(c)
	if err != nil {
		return h.fail(c, err)
	}
	pdfBytes, filename, err := h.uc.BuildPDF(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

// BuildReportXML godoc
// @Summary      Resumen de stock opname en XML
// @Tags         opname
// @Security     Bearer
// @Accept       json,mpfd
// @Produce      xml
// @Success      200  {string}  string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.RecordErrorResponse
// @Router       /api/opname/reports/xml [post]
func (h *OpnameHandler) BuildReportXML(c *fiber.Ctx) error {
	in, err := h.upload(c)
	if err != nil {
		return h.fail(c, err)
	}
	out, err := h.uc.BuildXML(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.Send(out)
}

// ListReports godoc
// @Summary      Reportes archivados
// @Tags         opname
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "máx. 100 (default 20)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  map[string]interface{}
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/opname/reports [get]
func (h *OpnameHandler) ListReports(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos"})
	}
	page.DefaultPage()
	list, err := h.uc.ListArchived(c.Context(), page)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"page":    dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
		"reports": list,
	})
}

// GetReport godoc
// @Summary      Reporte archivado por ID
// @Tags         opname
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "UUID del reporte"
// @Success      200  {object}  dto.OpnameReportSummaryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/opname/reports/{id} [get]
func (h *OpnameHandler) GetReport(c *fiber.Ctx) error {
	report, err := h.uc.GetArchived(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// GetUploadSchema godoc
// @Summary      JSON Schema del archivo de carga
// @Tags         opname
// @Produce      json
// @Param        schema  query  string  false  "auto | default | legacy"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/opname/schema [get]
func (h *OpnameHandler) GetUploadSchema(c *fiber.Ctx) error {
	s, err := appopname.UploadSchema(c.Query("schema"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(s)
}

// upload lee el archivo desde multipart ("file") o desde el cuerpo crudo.
func (h *OpnameHandler) upload(c *fiber.Ctx) (appopname.Upload, error) {
	var req dto.BuildReportRequest
	if err := c.QueryParser(&req); err != nil {
		return appopname.Upload{}, fmt.Errorf("%w: parámetros de consulta", domain.ErrInvalidInput)
	}
	in := appopname.Upload{Schema: req.Schema, Policy: req.Policy, CreatedBy: GetSubject(c)}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		fh, err := c.FormFile("file")
		if err != nil {
			return appopname.Upload{}, fmt.Errorf("%w: falta el campo file", domain.ErrInvalidInput)
		}
		f, err := fh.Open()
		if err != nil {
			return appopname.Upload{}, fmt.Errorf("abrir archivo subido: %w", err)
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return appopname.Upload{}, fmt.Errorf("leer archivo subido: %w", err)
		}
		in.Data = data
		in.SourceName = filepath.Base(fh.Filename)
		return in, nil
	}

	// fasthttp reutiliza el buffer del cuerpo al terminar la petición.
	in.Data = append([]byte(nil), c.Body()...)
	if name := c.Get(HeaderFilename); name != "" {
		in.SourceName = filepath.Base(name)
	}
	return in, nil
}

func (h *OpnameHandler) logReport(report *dto.OpnameReportDTO, elapsed time.Duration, format string) {
	h.log.Info().
		Str("source", report.SourceName).
		Str("schema", report.Schema).
		Str("format", format).
		Int("records", report.RecordCount).
		Int("rejected", len(report.Rejected)).
		Int64("grand_total", report.GrandTotal).
		Str("report_id", report.ID).
		Dur("elapsed", elapsed).
		Msg("reporte de opname generado")
}

// fail traduce errores de dominio a respuestas HTTP.
func (h *OpnameHandler) fail(c *fiber.Ctx, err error) error {
	if recErr, ok := appopname.IsRecordError(err); ok {
		h.log.Warn().Int("index", recErr.Index).Str("field", recErr.Field).Err(recErr.Err).Msg("registro de opname rechazado")
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.RecordErrorResponse{
			Code:    recordErrorCode(recErr.Err),
			Message: recErr.Error(),
			Index:   recErr.Index,
			Field:   recErr.Field,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidDataset):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATASET", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reporte no encontrado"})
	case errors.Is(err, domain.ErrArchiveDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "ARCHIVE_DISABLED", Message: err.Error()})
	}
	h.log.Error().Err(err).Msg("error interno en API de opname")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func recordErrorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrMalformedCurrency):
		return "MALFORMED_CURRENCY"
	case errors.Is(err, domain.ErrMalformedQuantity):
		return "MALFORMED_QUANTITY"
	case errors.Is(err, domain.ErrMissingField):
		return "MISSING_FIELD"
	default:
		return "INVALID_RECORD"
	}
}
