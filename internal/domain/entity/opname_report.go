package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpnameReport es el resumen archivado de un archivo de stock opname.
// Solo se guardan los agregados; los registros se descartan después de cada carga.
type OpnameReport struct {
	ID            string
	SourceName    string // nombre del archivo subido (puede ir vacío)
	Schema        string // default | legacy
	RecordCount   int
	RejectedCount int

	StoreMinus     int64
	StorePlus      int64
	WarehouseMinus int64
	WarehousePlus  int64

	Status []OpnameStatusCount

	CreatedBy string // subject del token, vacío si la API no exige auth
	CreatedAt time.Time
}

// OpnameStatusCount una fila de la distribución de selisih por lokasi.
type OpnameStatusCount struct {
	Location string // store | warehouse
	Status   string // Negative | Zero | Positive
	Count    int
	Percent  decimal.Decimal
}
