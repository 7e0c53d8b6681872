package opname_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-opname/internal/application/dto"
	appopname "github.com/jhoicas/stock-opname/internal/application/opname"
	"github.com/jhoicas/stock-opname/internal/domain"
	"github.com/jhoicas/stock-opname/internal/domain/entity"
)

// memArchive implementa repository.OpnameReportRepository en memoria.
type memArchive struct {
	reports []*entity.OpnameReport
	err     error
	limit   int
}

func (m *memArchive) Create(_ context.Context, r *entity.OpnameReport) error {
	if m.err != nil {
		return m.err
	}
	m.reports = append(m.reports, r)
	return nil
}

func (m *memArchive) GetByID(_ context.Context, id string) (*entity.OpnameReport, error) {
	for _, r := range m.reports {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *memArchive) List(_ context.Context, limit, offset int) ([]*entity.OpnameReport, error) {
	m.limit = limit
	if offset >= len(m.reports) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.reports) {
		end = len(m.reports)
	}
	return m.reports[offset:end], nil
}

type fakePDF struct{ called bool }

func (f *fakePDF) GenerateReportPDF(_ context.Context, view *appopname.ReportView) ([]byte, error) {
	f.called = true
	if view == nil || view.Report == nil {
		return nil, errors.New("sin reporte")
	}
	return []byte("%PDF-1.3"), nil
}

const uploadJSON = `[
  {"store_counted_on": "2024-01-01", "store_discrepancy": -2, "minus_store_raw": "Rp2,000", "plus_store_raw": "Rp0",
   "warehouse_discrepancy": 0, "minus_warehouse_raw": "Rp0", "plus_warehouse_raw": "Rp0"},
  {"store_counted_on": null, "store_discrepancy": 5, "minus_store_raw": "Rp0", "plus_store_raw": "Rp0",
   "warehouse_discrepancy": 0, "minus_warehouse_raw": "Rp0", "plus_warehouse_raw": "Rp0"}
]`

func TestBuild_SinArchivo(t *testing.T) {
	uc := appopname.NewReportUseCase(appopname.Config{}, nil, nil, nil)

	report, err := uc.Build(context.Background(), appopname.Upload{Data: []byte(uploadJSON), SourceName: "toko.json"})
	require.NoError(t, err)

	assert.Empty(t, report.ID, "sin archivo no se asigna ID")
	assert.Equal(t, "default", report.Schema)
	assert.Equal(t, "fail", report.Policy)
	assert.Equal(t, 2, report.RecordCount)
	require.Len(t, report.Totals, 4)
	assert.Equal(t, "Store", report.Totals[0].LocationLabel)
	assert.Equal(t, "Minus", report.Totals[0].SignLabel)
	assert.Equal(t, int64(2000), report.Totals[0].Nominal)
	assert.Equal(t, "Rp2,000", report.Totals[0].Formatted)
	assert.Equal(t, int64(2000), report.GrandTotal)

	require.Len(t, report.Status, 2)
	store := report.Status[0]
	assert.Equal(t, "store", store.Location)
	assert.Equal(t, 1, store.Total)
	assert.Equal(t, "Minus", store.Rows[0].Label)
	assert.Equal(t, "100.0", store.Rows[0].Percent.StringFixed(1))

	out, err := json.Marshal(report.Records[0])
	require.NoError(t, err)
	assert.Contains(t, string(out), `"minus_store_nominal":2000`)
	assert.NotNil(t, report.Rejected)
}

func TestBuild_ArchivaResumen(t *testing.T) {
	archive := &memArchive{}
	uc := appopname.NewReportUseCase(appopname.Config{}, archive, nil, nil)

	report, err := uc.Build(context.Background(), appopname.Upload{Data: []byte(uploadJSON), CreatedBy: "auditor"})
	require.NoError(t, err)
	require.Len(t, archive.reports, 1)
	assert.Equal(t, archive.reports[0].ID, report.ID)

	rep := archive.reports[0]
	assert.Equal(t, int64(2000), rep.StoreMinus)
	assert.Equal(t, "auditor", rep.CreatedBy)
	assert.Len(t, rep.Status, 6)

	summary, err := uc.GetArchived(context.Background(), report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.GrandTotal, summary.GrandTotal)
	assert.Equal(t, 1, summary.Status[0].Total)
	assert.Equal(t, 0, summary.Status[1].Total)

	list, err := uc.ListArchived(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestListArchived_LimiteMaximo(t *testing.T) {
	archive := &memArchive{}
	uc := appopname.NewReportUseCase(appopname.Config{}, archive, nil, nil)

	_, err := uc.ListArchived(context.Background(), dto.PageRequest{Limit: 500, Offset: -4})
	require.NoError(t, err)
	assert.Equal(t, dto.MaxPageLimit, archive.limit)
}

func TestBuild_ErrorDeArchivo(t *testing.T) {
	uc := appopname.NewReportUseCase(appopname.Config{}, &memArchive{err: errors.New("db caída")}, nil, nil)
	_, err := uc.Build(context.Background(), appopname.Upload{Data: []byte(uploadJSON)})
	assert.ErrorContains(t, err, "archivar reporte")
}

func TestBuild_PolicyPorDefectoDesdeConfig(t *testing.T) {
	data := `[{"store_discrepancy": 1, "minus_store_raw": "bad", "plus_store_raw": "Rp0",
	  "warehouse_discrepancy": 0, "minus_warehouse_raw": "Rp0", "plus_warehouse_raw": "Rp0"}]`

	strict := appopname.NewReportUseCase(appopname.Config{}, nil, nil, nil)
	_, err := strict.Build(context.Background(), appopname.Upload{Data: []byte(data)})
	recErr, ok := appopname.IsRecordError(err)
	require.True(t, ok)
	assert.Equal(t, "minus_store_raw", recErr.Field)

	lenient := appopname.NewReportUseCase(appopname.Config{Policy: "skip"}, nil, nil, nil)
	report, err := lenient.Build(context.Background(), appopname.Upload{Data: []byte(data)})
	require.NoError(t, err)
	assert.Equal(t, 0, report.RecordCount)
	require.Len(t, report.Rejected, 1)
	assert.Equal(t, "minus_store_raw", report.Rejected[0].Field)
}

func TestBuild_EntradaInválida(t *testing.T) {
	uc := appopname.NewReportUseCase(appopname.Config{}, nil, nil, nil)

	_, err := uc.Build(context.Background(), appopname.Upload{Data: []byte(`{"no": "array"}`)})
	assert.ErrorIs(t, err, domain.ErrInvalidDataset)

	_, err = uc.Build(context.Background(), appopname.Upload{Data: []byte(`[]`), Schema: "xlsx"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestArchived_Deshabilitado(t *testing.T) {
	uc := appopname.NewReportUseCase(appopname.Config{}, nil, nil, nil)
	_, err := uc.GetArchived(context.Background(), "00000000-0000-0000-0000-000000000001")
	assert.ErrorIs(t, err, domain.ErrArchiveDisabled)
	_, err = uc.ListArchived(context.Background(), dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrArchiveDisabled)
}

func TestArchived_NoEncontrado(t *testing.T) {
	uc := appopname.NewReportUseCase(appopname.Config{}, &memArchive{}, nil, nil)
	_, err := uc.GetArchived(context.Background(), "00000000-0000-0000-0000-000000000001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.GetArchived(context.Background(), "no-es-uuid")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildPDF_NombreDeArchivo(t *testing.T) {
	pdf := &fakePDF{}
	uc := appopname.NewReportUseCase(appopname.Config{}, nil, pdf, nil)

	out, filename, err := uc.BuildPDF(context.Background(), appopname.Upload{Data: []byte(uploadJSON), SourceName: "opname-maret.json"})
	require.NoError(t, err)
	assert.True(t, pdf.called)
	assert.Equal(t, "%PDF-1.3", string(out))
	assert.Regexp(t, `^opname-maret-\d{8}-\d{6}\.pdf$`, filename)
}

func TestUploadSchema(t *testing.T) {
	s, err := appopname.UploadSchema("legacy")
	require.NoError(t, err)
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Nominal Selsih Minus GD")

	s, err = appopname.UploadSchema("")
	require.NoError(t, err)
	raw, err = json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "minus_store_raw")
	assert.Contains(t, string(raw), `"type":"array"`)
}
