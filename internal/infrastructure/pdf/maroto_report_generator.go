// Package pdf implementa la versión imprimible del dashboard de stock opname.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Dashboard Stock Opname │ archivo + fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL NOMINAL: Lokasi | Tipe | Nominal                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DISTRIBUSI: Item Selisih Store │ Item Selisih Gudang       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DATA OPNAME: # | Selisih/Minus/Plus Store | idem Gudang    │
//	│  RECHAZADOS (solo con policy=skip)                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stock-opname/internal/application/dto"
	appopname "github.com/jhoicas/stock-opname/internal/application/opname"
	domopname "github.com/jhoicas/stock-opname/internal/domain/opname"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorMinus   = &props.Color{Red: 180, Green: 40, Blue: 40}
	colorPlus    = &props.Color{Red: 30, Green: 120, Blue: 60}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appopname.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa opname.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, view *appopname.ReportView) ([]byte, error) {
	if view == nil || view.Report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	report := view.Report

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Dashboard Stock Opname", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Total Nominal per Tipe & Lokasi"))
	m.AddRows(totalsRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Distribusi Item Selisih"))
	m.AddRows(statusRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Data Opname Lengkap"))
	m.AddRows(dataHeaderRow())
	m.AddRows(dataRows(view)...)

	if len(report.Rejected) > 0 {
		m.AddRows(line.NewRow(3))
		m.AddRows(sectionTitle(fmt.Sprintf("Registros rechazados (%d)", len(report.Rejected))))
		m.AddRows(rejectedRows(report.Rejected)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y archivo + fecha de generación (der).
func headerRow(report *dto.OpnameReportDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Dashboard Stock Opname", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%d registros | esquema %s", report.RecordCount, report.Schema), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(nonEmpty(report.SourceName, "archivo sin nombre"), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2}),
	))
}

// totalsRows: una fila por (lokasi, tipe) más el total general.
func totalsRows(report *dto.OpnameReportDTO) []core.Row {
	rows := []core.Row{row.New(6).Add(
		col.New(4).Add(text.New("Lokasi", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(4).Add(text.New("Tipe", props.Text{Style: fontstyle.Bold, Size: 8})),
		col.New(4).Add(text.New("Nominal", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right})),
	)}
	for _, t := range report.Totals {
		color := colorPlus
		if t.Sign == string(domopname.SignMinus) {
			color = colorMinus
		}
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(t.LocationLabel, props.Text{Size: 8})),
			col.New(4).Add(text.New(t.SignLabel, props.Text{Size: 8, Color: color})),
			col.New(4).Add(text.New(t.Formatted, props.Text{Size: 8, Align: align.Right})),
		))
	}
	return rows
}

// statusRows: las dos distribuciones (store y gudang) lado a lado.
func statusRows(report *dto.OpnameReportDTO) []core.Row {
	var store, gudang dto.StatusTableDTO
	for _, t := range report.Status {
		if t.Location == string(domopname.LocationWarehouse) {
			gudang = t
		} else {
			store = t
		}
	}

	header := func(t dto.StatusTableDTO) core.Col {
		return col.New(6).Add(text.New(
			fmt.Sprintf("Item Selisih %s (%d contados)", t.LocationLabel, t.Total),
			props.Text{Style: fontstyle.Bold, Size: 8},
		))
	}
	rows := []core.Row{row.New(6).Add(header(store), header(gudang))}

	cell := func(t dto.StatusTableDTO, i int) []core.Col {
		if i >= len(t.Rows) {
			return []core.Col{col.New(3), col.New(3)}
		}
		r := t.Rows[i]
		return []core.Col{
			col.New(3).Add(text.New(r.Label, props.Text{Size: 8})),
			col.New(3).Add(text.New(fmt.Sprintf("%d (%s%%)", r.Count, r.Percent.StringFixed(1)), props.Text{Size: 8, Align: align.Right, Right: 4})),
		}
	}
	for i := range domopname.Statuses {
		cols := append(cell(store, i), cell(gudang, i)...)
		rows = append(rows, row.New(5).Add(cols...))
	}
	return rows
}

func dataHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		h("#", 1, align.Center),
		h("Selisih Store", 1, align.Right),
		h("Minus Store", 2, align.Right),
		h("Plus Store", 2, align.Right),
		h("Selisih GD", 2, align.Right),
		h("Minus GD", 2, align.Right),
		h("Plus GD", 2, align.Right),
	)
}

// dataRows: una fila por registro procesado con las columnas normalizadas.
func dataRows(view *appopname.ReportView) []core.Row {
	cellProps := props.Text{Size: 7, Align: align.Right, Top: 0.5}
	result := make([]core.Row, 0, len(view.Records))
	for _, r := range view.Records {
		store, gudang := r.Store, r.Warehouse
		result = append(result, row.New(5).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index+1), props.Text{Size: 7, Align: align.Center, Top: 0.5})),
			col.New(1).Add(text.New(discrepancy(store), cellProps)),
			col.New(2).Add(text.New(view.Normalizer.Format(store.Minus.Int64()), cellProps)),
			col.New(2).Add(text.New(view.Normalizer.Format(store.Plus.Int64()), cellProps)),
			col.New(2).Add(text.New(discrepancy(gudang), cellProps)),
			col.New(2).Add(text.New(view.Normalizer.Format(gudang.Minus.Int64()), cellProps)),
			col.New(2).Add(text.New(view.Normalizer.Format(gudang.Plus.Int64()), cellProps)),
		))
	}
	return result
}

func rejectedRows(rejected []dto.RejectedRecordDTO) []core.Row {
	result := make([]core.Row, 0, len(rejected))
	for _, r := range rejected {
		result = append(result, row.New(5).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index+1), props.Text{Size: 7, Align: align.Center})),
			col.New(3).Add(text.New(r.Field, props.Text{Size: 7})),
			col.New(8).Add(text.New(r.Reason, props.Text{Size: 7, Color: colorGray})),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

// discrepancy muestra "-" cuando la lokasi no fue contada.
func discrepancy(l domopname.Line) string {
	if !l.Counted {
		return "-"
	}
	return l.Discrepancy.String()
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
