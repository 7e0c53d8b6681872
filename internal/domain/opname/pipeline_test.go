package opname_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-opname/internal/domain"
	"github.com/jhoicas/stock-opname/internal/domain/opname"
)

const scenarioJSON = `[
  {"store_counted_on": "2024-01-01", "store_discrepancy": -2, "minus_store_raw": "Rp2,000", "plus_store_raw": "Rp0",
   "warehouse_counted_on": null, "warehouse_discrepancy": 0, "minus_warehouse_raw": "", "plus_warehouse_raw": null},
  {"store_counted_on": null, "store_discrepancy": 5, "minus_store_raw": "Rp0", "plus_store_raw": "Rp0",
   "warehouse_counted_on": "2024-01-02", "warehouse_discrepancy": 1, "minus_warehouse_raw": "Rp0", "plus_warehouse_raw": "Rp1,500"}
]`

func newPipeline(t *testing.T, data string, policy opname.ErrorPolicy) (opname.Pipeline, []*opname.Record) {
	t.Helper()
	records, err := opname.DecodeRecords([]byte(data))
	require.NoError(t, err)
	schema, err := opname.ResolveSchema(opname.SchemaAuto, records)
	require.NoError(t, err)
	return opname.Pipeline{
		Normalizer: opname.NewNormalizer("", ""),
		Schema:     schema,
		Policy:     policy,
	}, records
}

type statusCount struct {
	Status opname.Status
	Count  int
	Pct    string
}

func flatten(t opname.StatusTable) []statusCount {
	out := make([]statusCount, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, statusCount{r.Status, r.Count, r.Percent.StringFixed(1)})
	}
	return out
}

func TestPipeline_EscenarioCompleto(t *testing.T) {
	p, records := newPipeline(t, scenarioJSON, opname.PolicyFail)
	assert.Equal(t, opname.SchemaDefault, p.Schema.Name)

	res, err := p.Run(records)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)
	assert.Empty(t, res.Rejected)

	want := []statusCount{
		{opname.StatusNegative, 1, "100.0"},
		{opname.StatusZero, 0, "0.0"},
		{opname.StatusPositive, 0, "0.0"},
	}
	if diff := cmp.Diff(want, flatten(res.Status[opname.LocationStore])); diff != "" {
		t.Errorf("distribución store (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, res.Status[opname.LocationWarehouse].Row(opname.StatusPositive).Count)

	assert.Equal(t, int64(2000), res.Totals.Get(opname.LocationStore, opname.SignMinus))
	assert.Equal(t, int64(1500), res.Totals.Get(opname.LocationWarehouse, opname.SignPlus))
	assert.Equal(t, int64(3500), res.Totals.GrandTotal())
}

func TestPipeline_AgregaNominalesAlFinal(t *testing.T) {
	p, records := newPipeline(t, scenarioJSON, opname.PolicyFail)
	_, err := p.Run(records)
	require.NoError(t, err)

	var keys []string
	for pair := records[0].Fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	require.Len(t, keys, 12)
	assert.Equal(t, "store_counted_on", keys[0])
	assert.Equal(t, []string{
		"minus_store_nominal", "plus_store_nominal",
		"minus_warehouse_nominal", "plus_warehouse_nominal",
	}, keys[8:])

	v, _ := records[0].Fields.Get("minus_store_nominal")
	assert.JSONEq(t, `2000`, string(v))
	v, _ = records[0].Fields.Get("minus_warehouse_nominal")
	assert.JSONEq(t, `0`, string(v))
}

func TestPipeline_EsquemaLegacy(t *testing.T) {
	data := `[{"Kode": "A1", "TGL Store": "2024-02-01", "Selisih Store": 3, "TGL GD": null, "Selisih GD": null,
	  "Nominal Selisih Minus Store": "Rp0", "Nominal Selisih Plus Store": "Rp30,000",
	  "Nominal Selsih Minus GD": "Rp-1,000", "Nominal Selsih Plus GD": 0}]`
	p, records := newPipeline(t, data, opname.PolicyFail)
	assert.Equal(t, opname.SchemaLegacy, p.Schema.Name)

	res, err := p.Run(records)
	require.NoError(t, err)
	assert.Equal(t, int64(30000), res.Totals.Get(opname.LocationStore, opname.SignPlus))
	assert.Equal(t, int64(-1000), res.Totals.Get(opname.LocationWarehouse, opname.SignMinus))
	assert.Equal(t, 0, res.Status[opname.LocationWarehouse].Total)

	_, ok := records[0].Fields.Get("minus_gd_nominal")
	assert.True(t, ok)
}

func TestPipeline_ColumnasAusentesCuentanComoCero(t *testing.T) {
	data := `[
	  {"store_counted_on": "2024-01-01", "store_discrepancy": -2, "minus_store_raw": "Rp2,000"},
	  {"store_counted_on": null, "store_discrepancy": 5, "minus_store_raw": "Rp0"}
	]`
	p, records := newPipeline(t, data, opname.PolicyFail)

	res, err := p.Run(records)
	require.NoError(t, err)
	require.Len(t, res.Records, 2)

	want := []statusCount{
		{opname.StatusNegative, 1, "100.0"},
		{opname.StatusZero, 0, "0.0"},
		{opname.StatusPositive, 0, "0.0"},
	}
	if diff := cmp.Diff(want, flatten(res.Status[opname.LocationStore])); diff != "" {
		t.Errorf("distribución store (-want +got):\n%s", diff)
	}
	assert.Equal(t, 0, res.Status[opname.LocationWarehouse].Total)
	assert.Equal(t, int64(2000), res.Totals.Get(opname.LocationStore, opname.SignMinus))
	assert.Equal(t, int64(2000), res.Totals.GrandTotal())

	assert.False(t, records[0].Store.Plus.Valid, "plus_store_raw ausente queda no informado")
	v, ok := records[0].Fields.Get("plus_store_nominal")
	require.True(t, ok)
	assert.JSONEq(t, `0`, string(v))
}

func TestPipeline_SelisihAusenteIgualQueNull(t *testing.T) {
	// Gudang sin contar: da igual que la columna falte o venga en null.
	for _, data := range []string{
		`[{"store_counted_on": "2024-01-01", "store_discrepancy": 1, "warehouse_discrepancy": null}]`,
		`[{"store_counted_on": "2024-01-01", "store_discrepancy": 1}]`,
	} {
		p, records := newPipeline(t, data, opname.PolicyFail)
		res, err := p.Run(records)
		require.NoError(t, err, data)
		assert.Equal(t, 0, res.Status[opname.LocationWarehouse].Total, data)
	}
}

func TestPipeline_ContadoSinColumnaSelisihFalla(t *testing.T) {
	data := `[{"store_counted_on": "2024-01-01", "minus_store_raw": "Rp0"}]`
	p, records := newPipeline(t, data, opname.PolicyFail)

	_, err := p.Run(records)
	assert.ErrorIs(t, err, domain.ErrMissingField)

	var recErr *domain.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, 0, recErr.Index)
	assert.Equal(t, "store_discrepancy", recErr.Field)
}

func TestPipeline_NominalMalformadoConSkip(t *testing.T) {
	data := `[
	  {"store_counted_on": "2024-01-01", "store_discrepancy": -1, "minus_store_raw": "Rp1,5x0", "plus_store_raw": "Rp0",
	   "warehouse_discrepancy": 0, "minus_warehouse_raw": "Rp0", "plus_warehouse_raw": "Rp0"},
	  {"store_counted_on": "2024-01-01", "store_discrepancy": 0, "minus_store_raw": "Rp0", "plus_store_raw": "Rp0",
	   "warehouse_discrepancy": 0, "minus_warehouse_raw": "Rp0", "plus_warehouse_raw": "Rp0"}
	]`
	p, records := newPipeline(t, data, opname.PolicySkip)

	res, err := p.Run(records)
	require.NoError(t, err)
	require.Len(t, res.Rejected, 1)
	assert.Equal(t, 0, res.Rejected[0].Index)
	assert.Equal(t, "minus_store_raw", res.Rejected[0].Field)
	assert.ErrorIs(t, res.Rejected[0], domain.ErrMalformedCurrency)

	require.Len(t, res.Records, 1)
	store := res.Status[opname.LocationStore]
	assert.Equal(t, 1, store.Total)
	assert.Equal(t, 1, store.Row(opname.StatusZero).Count)

	// El registro rechazado no recibe columnas nuevas.
	_, ok := records[0].Fields.Get("minus_store_nominal")
	assert.False(t, ok)
}

func TestPipeline_ContadoSinSelisih(t *testing.T) {
	data := `[{"store_counted_on": "2024-01-01", "store_discrepancy": null, "minus_store_raw": "Rp0", "plus_store_raw": "Rp0",
	  "warehouse_discrepancy": null, "minus_warehouse_raw": "Rp0", "plus_warehouse_raw": "Rp0"}]`
	p, records := newPipeline(t, data, opname.PolicyFail)

	_, err := p.Run(records)
	var recErr *domain.RecordError
	require.ErrorAs(t, err, &recErr)
	assert.Equal(t, "store_discrepancy", recErr.Field)
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestPipeline_SelisihComoString(t *testing.T) {
	data := `[{"store_counted_on": "2024-01-01", "store_discrepancy": "-4", "minus_store_raw": "Rp0", "plus_store_raw": "Rp0",
	  "warehouse_discrepancy": "n/a", "minus_warehouse_raw": "Rp0", "plus_warehouse_raw": "Rp0"}]`
	p, records := newPipeline(t, data, opname.PolicyFail)

	_, err := p.Run(records)
	assert.ErrorIs(t, err, domain.ErrMalformedQuantity)
}

func TestPipeline_ArchivoVacío(t *testing.T) {
	p, records := newPipeline(t, `[]`, opname.PolicyFail)
	res, err := p.Run(records)
	require.NoError(t, err)
	assert.Empty(t, res.Records)
	for _, loc := range opname.Locations {
		assert.Equal(t, 0, res.Status[loc].Total)
	}
	assert.Equal(t, int64(0), res.Totals.GrandTotal())
}

func TestDecodeRecords_DocumentoInválido(t *testing.T) {
	for _, data := range []string{``, `null`, `{"a": 1}`, `[1, 2]`, `[{"a": }]`} {
		_, err := opname.DecodeRecords([]byte(data))
		assert.ErrorIs(t, err, domain.ErrInvalidDataset, data)
	}
}

func TestDecodeRecords_ConservaOrden(t *testing.T) {
	records, err := opname.DecodeRecords([]byte(`[{"z": 1, "a": "x", "m": null}]`))
	require.NoError(t, err)
	out, err := json.Marshal(records[0].Fields)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":"x","m":null}`, string(out))
}

func TestParsePolicy(t *testing.T) {
	p, err := opname.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, opname.PolicyFail, p)

	_, err = opname.ParsePolicy("ignore")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
