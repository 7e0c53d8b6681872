// Package opname contiene la lógica de dominio del stock opname: normalización
// de nominales y agregación de selisih (discrepancias) por lokasi.
//
// Es un paquete puro: no hace I/O ni guarda estado entre llamadas.
package opname

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/jhoicas/stock-opname/internal/domain"
)

// Location es cada uno de los dos puntos que se cuentan por separado.
type Location string

const (
	LocationStore     Location = "store"
	LocationWarehouse Location = "warehouse"
)

// Locations en el orden en que se presentan en el dashboard.
var Locations = []Location{LocationStore, LocationWarehouse}

// Label devuelve el nombre usado en reportes ("Store" / "Gudang").
func (l Location) Label() string {
	switch l {
	case LocationStore:
		return "Store"
	case LocationWarehouse:
		return "Gudang"
	default:
		return string(l)
	}
}

// ParseLocation acepta el valor canónico o la etiqueta del reporte.
func ParseLocation(s string) (Location, error) {
	switch s {
	case "store", "Store":
		return LocationStore, nil
	case "warehouse", "gudang", "Gudang", "gd", "GD":
		return LocationWarehouse, nil
	}
	return "", fmt.Errorf("%w: lokasi %q", domain.ErrInvalidInput, s)
}

// Sign distingue el nominal de selisih minus (faltante) del plus (sobrante).
type Sign string

const (
	SignMinus Sign = "minus"
	SignPlus  Sign = "plus"
)

// Label devuelve "Minus" / "Plus".
func (s Sign) Label() string {
	if s == SignMinus {
		return "Minus"
	}
	return "Plus"
}

// Line son los valores ya interpretados de un registro para una lokasi.
type Line struct {
	Counted     bool            // la columna de fecha de conteo viene informada
	Discrepancy decimal.Decimal // selisih en unidades
	Minus       Amount
	Plus        Amount
}

// Nominal devuelve el nominal normalizado del signo indicado.
func (l Line) Nominal(s Sign) int64 {
	if s == SignMinus {
		return l.Minus.Int64()
	}
	return l.Plus.Int64()
}

// Record es una línea del archivo de opname.
// Fields conserva todas las columnas subidas en su orden original; Enrich
// agrega al final los cuatro nominales normalizados.
type Record struct {
	Index     int
	Fields    *orderedmap.OrderedMap[string, json.RawMessage]
	Store     Line
	Warehouse Line
}

// Line devuelve los valores de la lokasi indicada.
func (r *Record) Line(loc Location) Line {
	if loc == LocationWarehouse {
		return r.Warehouse
	}
	return r.Store
}

func (r *Record) setLine(loc Location, l Line) {
	if loc == LocationWarehouse {
		r.Warehouse = l
		return
	}
	r.Store = l
}

// DecodeRecords lee el documento subido: un arreglo JSON de objetos homogéneos.
// No normaliza nada; eso lo hace Pipeline.Enrich.
func DecodeRecords(data []byte) ([]*Record, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, domain.ErrInvalidDataset
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
	}

	records := make([]*Record, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			return nil, &domain.RecordError{Index: i, Err: domain.ErrInvalidDataset}
		}
		fields := orderedmap.New[string, json.RawMessage]()
		if err := fields.UnmarshalJSON(item); err != nil {
			return nil, &domain.RecordError{Index: i, Err: fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)}
		}
		records = append(records, &Record{Index: i, Fields: fields})
	}
	return records, nil
}

func isNull(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}
