// Package opname orquesta el pipeline de stock opname: decodificar el archivo,
// normalizar nominales, agregar selisih por lokasi y (opcionalmente) archivar el resumen.
package opname

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-opname/internal/application/dto"
	"github.com/jhoicas/stock-opname/internal/domain"
	"github.com/jhoicas/stock-opname/internal/domain/entity"
	domopname "github.com/jhoicas/stock-opname/internal/domain/opname"
	"github.com/jhoicas/stock-opname/internal/domain/repository"
)

// Config parámetros del pipeline (ver pkg/config.OpnameConfig).
type Config struct {
	CurrencySymbol     string
	ThousandsSeparator string
	Schema             string // esquema por defecto si la petición no indica uno
	Policy             string // política por defecto si la petición no indica una
}

// Upload es un archivo de opname recibido por la API o la CLI.
type Upload struct {
	Data       []byte
	SourceName string
	Schema     string
	Policy     string
	CreatedBy  string
}

// ReportView agrupa el reporte y los datos de dominio que necesitan los generadores (PDF, XML).
type ReportView struct {
	Report     *dto.OpnameReportDTO
	Schema     domopname.Schema
	Records    []*domopname.Record
	Normalizer domopname.Normalizer
}

// ReportUseCase construye reportes de stock opname.
// archive puede ser nil: en ese caso los reportes no se guardan.
type ReportUseCase struct {
	cfg        Config
	normalizer domopname.Normalizer
	archive    repository.OpnameReportRepository
	pdf        ReportPDFGenerator
	xml        ReportXMLEncoder
	now        func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	cfg Config,
	archive repository.OpnameReportRepository,
	pdf ReportPDFGenerator,
	xml ReportXMLEncoder,
) *ReportUseCase {
	return &ReportUseCase{
		cfg:        cfg,
		normalizer: domopname.NewNormalizer(cfg.CurrencySymbol, cfg.ThousandsSeparator),
		archive:    archive,
		pdf:        pdf,
		xml:        xml,
		now:        time.Now,
	}
}

// Normalizer devuelve el normalizador configurado.
func (uc *ReportUseCase) Normalizer() domopname.Normalizer { return uc.normalizer }

// ArchiveEnabled indica si los reportes se guardan.
func (uc *ReportUseCase) ArchiveEnabled() bool { return uc.archive != nil }

// Build ejecuta el pipeline completo y devuelve el reporte.
//
// Errores:
//   - domain.ErrInvalidDataset / ErrInvalidInput: documento, esquema o política inválidos.
//   - *domain.RecordError (ErrMalformedCurrency, ErrMalformedQuantity, ErrMissingField)
//     con policy=fail.
func (uc *ReportUseCase) Build(ctx context.Context, in Upload) (*dto.OpnameReportDTO, error) {
	view, err := uc.run(ctx, in)
	if err != nil {
		return nil, err
	}
	return view.Report, nil
}

// BuildPDF genera el reporte y su representación PDF.
func (uc *ReportUseCase) BuildPDF(ctx context.Context, in Upload) (pdfBytes []byte, filename string, err error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("opname: generador PDF no configurado")
	}
	view, err := uc.run(ctx, in)
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err = uc.pdf.GenerateReportPDF(ctx, view)
	if err != nil {
		return nil, "", fmt.Errorf("opname: generar PDF: %w", err)
	}
	return pdfBytes, reportFilename(in.SourceName, view.Report.GeneratedAt, "pdf"), nil
}

// BuildXML genera el reporte y su resumen en XML.
func (uc *ReportUseCase) BuildXML(ctx context.Context, in Upload) ([]byte, error) {
	if uc.xml == nil {
		return nil, fmt.Errorf("opname: exportador XML no configurado")
	}
	view, err := uc.run(ctx, in)
	if err != nil {
		return nil, err
	}
	out, err := uc.xml.EncodeReportXML(view)
	if err != nil {
		return nil, fmt.Errorf("opname: generar XML: %w", err)
	}
	return out, nil
}

func (uc *ReportUseCase) run(ctx context.Context, in Upload) (*ReportView, error) {
	records, err := domopname.DecodeRecords(in.Data)
	if err != nil {
		return nil, err
	}

	schema, err := domopname.ResolveSchema(firstNonEmpty(in.Schema, uc.cfg.Schema), records)
	if err != nil {
		return nil, err
	}
	policy, err := domopname.ParsePolicy(firstNonEmpty(in.Policy, uc.cfg.Policy))
	if err != nil {
		return nil, err
	}

	pipeline := domopname.Pipeline{Normalizer: uc.normalizer, Schema: schema, Policy: policy}
	res, err := pipeline.Run(records)
	if err != nil {
		return nil, err
	}

	report := &dto.OpnameReportDTO{
		SourceName:  in.SourceName,
		Schema:      schema.Name,
		Policy:      string(policy),
		RecordCount: len(res.Records),
		GeneratedAt: uc.now(),
		Totals:      toTotalsDTO(res.Totals, uc.normalizer),
		GrandTotal:  res.Totals.GrandTotal(),
		Status:      toStatusDTO(res.Status),
		Records:     toRecordsDTO(res.Records),
		Rejected:    toRejectedDTO(res.Rejected),
	}

	if uc.archive != nil {
		rep := toEntity(report, in.CreatedBy)
		if err := uc.archive.Create(ctx, rep); err != nil {
			return nil, fmt.Errorf("opname: archivar reporte: %w", err)
		}
		report.ID = rep.ID
	}

	return &ReportView{Report: report, Schema: schema, Records: res.Records, Normalizer: uc.normalizer}, nil
}

// GetArchived devuelve un resumen archivado.
func (uc *ReportUseCase) GetArchived(ctx context.Context, id string) (*dto.OpnameReportSummaryDTO, error) {
	if uc.archive == nil {
		return nil, domain.ErrArchiveDisabled
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: id %q", domain.ErrInvalidInput, id)
	}
	rep, err := uc.archive.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("opname: obtener reporte: %w", err)
	}
	if rep == nil {
		return nil, domain.ErrNotFound
	}
	out := toSummaryDTO(rep, uc.normalizer)
	return &out, nil
}

// ListArchived lista los resúmenes archivados, más recientes primero.
func (uc *ReportUseCase) ListArchived(ctx context.Context, page dto.PageRequest) ([]dto.OpnameReportSummaryDTO, error) {
	if uc.archive == nil {
		return nil, domain.ErrArchiveDisabled
	}
	page.DefaultPage()
	list, err := uc.archive.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("opname: listar reportes: %w", err)
	}
	out := make([]dto.OpnameReportSummaryDTO, 0, len(list))
	for _, rep := range list {
		out = append(out, toSummaryDTO(rep, uc.normalizer))
	}
	return out, nil
}

// IsRecordError indica si err corresponde a un registro concreto del archivo.
func IsRecordError(err error) (*domain.RecordError, bool) {
	var recErr *domain.RecordError
	if errors.As(err, &recErr) && recErr.Field != "" {
		return recErr, true
	}
	return nil, false
}

func toEntity(r *dto.OpnameReportDTO, createdBy string) *entity.OpnameReport {
	rep := &entity.OpnameReport{
		ID:            uuid.New().String(),
		SourceName:    r.SourceName,
		Schema:        r.Schema,
		RecordCount:   r.RecordCount,
		RejectedCount: len(r.Rejected),
		CreatedBy:     createdBy,
		CreatedAt:     r.GeneratedAt,
	}
	for _, t := range r.Totals {
		switch {
		case t.Location == string(domopname.LocationStore) && t.Sign == string(domopname.SignMinus):
			rep.StoreMinus = t.Nominal
		case t.Location == string(domopname.LocationStore):
			rep.StorePlus = t.Nominal
		case t.Sign == string(domopname.SignMinus):
			rep.WarehouseMinus = t.Nominal
		default:
			rep.WarehousePlus = t.Nominal
		}
	}
	for _, table := range r.Status {
		for _, row := range table.Rows {
			rep.Status = append(rep.Status, entity.OpnameStatusCount{
				Location: table.Location,
				Status:   row.Status,
				Count:    row.Count,
				Percent:  row.Percent,
			})
		}
	}
	return rep
}

func reportFilename(source string, at time.Time, ext string) string {
	base := strings.TrimSuffix(source, ".json")
	if base == "" {
		base = "stock-opname"
	}
	return fmt.Sprintf("%s-%s.%s", base, at.Format("20060102-150405"), ext)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
