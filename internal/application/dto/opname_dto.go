package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// BuildReportRequest parámetros de consulta de POST /api/opname/reports*.
type BuildReportRequest struct {
	Schema string `query:"schema"` // auto | default | legacy
	Policy string `query:"policy"` // fail | skip
}

// OpnameReportDTO respuesta de POST /api/opname/reports.
// Contiene las dos tablas de resumen y el conjunto de registros enriquecido.
type OpnameReportDTO struct {
	ID          string    `json:"id,omitempty"` // solo si el archivo de reportes está habilitado
	SourceName  string    `json:"source_name,omitempty"`
	Schema      string    `json:"schema"`
	Policy      string    `json:"policy"`
	RecordCount int       `json:"record_count"`
	GeneratedAt time.Time `json:"generated_at"`

	// Total nominal por tipo y lokasi (gráfico de barras)
	Totals     []NominalTotalDTO `json:"totals"`
	GrandTotal int64             `json:"grand_total"`

	// Distribución de item selisih (gráficos de torta), una tabla por lokasi
	Status []StatusTableDTO `json:"status"`

	// Data opname lengkap: columnas originales + nominales normalizados
	Records  []*orderedmap.OrderedMap[string, json.RawMessage] `json:"records"`
	Rejected []RejectedRecordDTO                               `json:"rejected"`
}

// NominalTotalDTO una fila de la tabla de totales.
type NominalTotalDTO struct {
	Location      string `json:"location"`
	LocationLabel string `json:"location_label"` // Store | Gudang
	Sign          string `json:"sign"`
	SignLabel     string `json:"sign_label"` // Minus | Plus
	Nominal       int64  `json:"nominal"`
	Formatted     string `json:"formatted"` // ej: "Rp1,250,000"
}

// StatusTableDTO distribución de selisih de una lokasi.
type StatusTableDTO struct {
	Location      string         `json:"location"`
	LocationLabel string         `json:"location_label"`
	Total         int            `json:"total"` // registros con fecha de conteo
	Rows          []StatusRowDTO `json:"rows"`
}

// StatusRowDTO fila Negative | Zero | Positive.
type StatusRowDTO struct {
	Status  string          `json:"status"`
	Label   string          `json:"label"` // Minus | Sesuai | Plus
	Count   int             `json:"count"`
	Percent decimal.Decimal `json:"percent"`
}

// RejectedRecordDTO registro descartado con policy=skip.
type RejectedRecordDTO struct {
	Index  int    `json:"index"`
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// OpnameReportSummaryDTO resumen archivado (sin registros).
type OpnameReportSummaryDTO struct {
	ID            string            `json:"id"`
	SourceName    string            `json:"source_name,omitempty"`
	Schema        string            `json:"schema"`
	RecordCount   int               `json:"record_count"`
	RejectedCount int               `json:"rejected_count"`
	Totals        []NominalTotalDTO `json:"totals"`
	GrandTotal    int64             `json:"grand_total"`
	Status        []StatusTableDTO  `json:"status"`
	CreatedBy     string            `json:"created_by,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// RecordErrorResponse cuerpo de error 422 cuando un registro no se puede procesar.
type RecordErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Index   int    `json:"index"`
	Field   string `json:"field,omitempty"`
}

// OpnameRecordDTO documenta una fila del archivo con el esquema default.
// Solo se usa para publicar el JSON Schema de carga.
type OpnameRecordDTO struct {
	StoreCountedOn       *string  `json:"store_counted_on,omitempty" jsonschema:"description=Fecha del conteo en store; null si no se contó"`
	StoreDiscrepancy     *float64 `json:"store_discrepancy" jsonschema:"description=Selisih store (puede ser negativo)"`
	MinusStoreRaw        *string  `json:"minus_store_raw" jsonschema:"description=Nominal selisih minus store"`
	PlusStoreRaw         *string  `json:"plus_store_raw" jsonschema:"description=Nominal selisih plus store"`
	WarehouseCountedOn   *string  `json:"warehouse_counted_on,omitempty" jsonschema:"description=Fecha del conteo en gudang; null si no se contó"`
	WarehouseDiscrepancy *float64 `json:"warehouse_discrepancy" jsonschema:"description=Selisih gudang (puede ser negativo)"`
	MinusWarehouseRaw    *string  `json:"minus_warehouse_raw" jsonschema:"description=Nominal selisih minus gudang"`
	PlusWarehouseRaw     *string  `json:"plus_warehouse_raw" jsonschema:"description=Nominal selisih plus gudang"`
}

// LegacyOpnameRecordDTO documenta una fila de la exportación del dashboard anterior.
type LegacyOpnameRecordDTO struct {
	TglStore          *string  `json:"TGL Store,omitempty"`
	SelisihStore      *float64 `json:"Selisih Store"`
	NominalMinusStore *string  `json:"Nominal Selisih Minus Store"`
	NominalPlusStore  *string  `json:"Nominal Selisih Plus Store"`
	TglGD             *string  `json:"TGL GD,omitempty"`
	SelisihGD         *float64 `json:"Selisih GD"`
	NominalMinusGD    *string  `json:"Nominal Selsih Minus GD"`
	NominalPlusGD     *string  `json:"Nominal Selsih Plus GD"`
}
