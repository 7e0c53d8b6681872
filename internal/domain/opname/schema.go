package opname

import (
	"fmt"

	"github.com/jhoicas/stock-opname/internal/domain"
)

// Nombres de los esquemas de columnas soportados.
const (
	SchemaAuto    = "auto"
	SchemaDefault = "default"
	SchemaLegacy  = "legacy"
)

// Columns son los nombres de columna que el pipeline lee (y escribe) para una lokasi.
type Columns struct {
	CountedOn    string
	Discrepancy  string
	MinusRaw     string
	PlusRaw      string
	MinusNominal string // columna agregada por Enrich
	PlusNominal  string // columna agregada por Enrich
}

// Schema mapea cada lokasi a sus columnas.
type Schema struct {
	Name      string
	Store     Columns
	Warehouse Columns
}

// Columns devuelve las columnas de la lokasi indicada.
func (s Schema) Columns(loc Location) Columns {
	if loc == LocationWarehouse {
		return s.Warehouse
	}
	return s.Store
}

// DefaultSchema usa nombres de columna en inglés.
var DefaultSchema = Schema{
	Name: SchemaDefault,
	Store: Columns{
		CountedOn:    "store_counted_on",
		Discrepancy:  "store_discrepancy",
		MinusRaw:     "minus_store_raw",
		PlusRaw:      "plus_store_raw",
		MinusNominal: "minus_store_nominal",
		PlusNominal:  "plus_store_nominal",
	},
	Warehouse: Columns{
		CountedOn:    "warehouse_counted_on",
		Discrepancy:  "warehouse_discrepancy",
		MinusRaw:     "minus_warehouse_raw",
		PlusRaw:      "plus_warehouse_raw",
		MinusNominal: "minus_warehouse_nominal",
		PlusNominal:  "plus_warehouse_nominal",
	},
}

// LegacySchema corresponde a la exportación del dashboard anterior.
// "Selsih" en las columnas de gudang viene así en los archivos reales.
var LegacySchema = Schema{
	Name: SchemaLegacy,
	Store: Columns{
		CountedOn:    "TGL Store",
		Discrepancy:  "Selisih Store",
		MinusRaw:     "Nominal Selisih Minus Store",
		PlusRaw:      "Nominal Selisih Plus Store",
		MinusNominal: "minus_store_nominal",
		PlusNominal:  "plus_store_nominal",
	},
	Warehouse: Columns{
		CountedOn:    "TGL GD",
		Discrepancy:  "Selisih GD",
		MinusRaw:     "Nominal Selsih Minus GD",
		PlusRaw:      "Nominal Selsih Plus GD",
		MinusNominal: "minus_gd_nominal",
		PlusNominal:  "plus_gd_nominal",
	},
}

// ResolveSchema elige el esquema por nombre. Con "auto" (o vacío) mira el
// primer registro: si trae la columna de selisih legacy usa LegacySchema.
func ResolveSchema(name string, records []*Record) (Schema, error) {
	switch name {
	case SchemaDefault:
		return DefaultSchema, nil
	case SchemaLegacy:
		return LegacySchema, nil
	case SchemaAuto, "":
		if len(records) > 0 {
			if _, ok := records[0].Fields.Get(LegacySchema.Store.Discrepancy); ok {
				return LegacySchema, nil
			}
		}
		return DefaultSchema, nil
	}
	return Schema{}, fmt.Errorf("%w: esquema %q", domain.ErrInvalidInput, name)
}
