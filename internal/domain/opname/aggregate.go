package opname

import "github.com/shopspring/decimal"

// Status es el bucket de un selisih según su signo.
type Status string

const (
	StatusNegative Status = "Negative"
	StatusZero     Status = "Zero"
	StatusPositive Status = "Positive"
)

// Statuses en el orden fijo de las filas de StatusTable.
var Statuses = []Status{StatusNegative, StatusZero, StatusPositive}

// Label devuelve la etiqueta del dashboard (Minus / Sesuai / Plus).
func (s Status) Label() string {
	switch s {
	case StatusNegative:
		return "Minus"
	case StatusZero:
		return "Sesuai"
	default:
		return "Plus"
	}
}

// StatusOf clasifica un selisih.
func StatusOf(d decimal.Decimal) Status {
	switch d.Sign() {
	case -1:
		return StatusNegative
	case 0:
		return StatusZero
	default:
		return StatusPositive
	}
}

var hundred = decimal.NewFromInt(100)

// StatusRow es una fila de la distribución de selisih.
type StatusRow struct {
	Status  Status
	Count   int
	Percent decimal.Decimal // count / total * 100, 1 decimal
}

// StatusTable es la distribución de selisih de una lokasi.
// Siempre tiene tres filas en el orden de Statuses.
type StatusTable struct {
	Location Location
	Total    int // registros contados en la lokasi
	Rows     []StatusRow
}

// Row devuelve la fila del bucket indicado.
func (t StatusTable) Row(s Status) StatusRow {
	for _, r := range t.Rows {
		if r.Status == s {
			return r
		}
	}
	return StatusRow{Status: s, Percent: decimal.Zero}
}

// Aggregate cuenta los selisih de los registros contados en loc.
// Un registro entra en la distribución solo si su fecha de conteo viene informada.
// Sin registros contados todos los porcentajes son 0.0.
func Aggregate(records []*Record, loc Location) StatusTable {
	counts := make(map[Status]int, len(Statuses))
	total := 0
	for _, r := range records {
		l := r.Line(loc)
		if !l.Counted {
			continue
		}
		counts[StatusOf(l.Discrepancy)]++
		total++
	}

	t := StatusTable{Location: loc, Total: total, Rows: make([]StatusRow, 0, len(Statuses))}
	for _, s := range Statuses {
		t.Rows = append(t.Rows, StatusRow{Status: s, Count: counts[s], Percent: percent(counts[s], total)})
	}
	return t
}

// percent redondea a un decimal con redondeo bancario (mitad al par).
func percent(count, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(count)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		RoundBank(1)
}

// TotalRow es el nominal acumulado de una lokasi y signo.
type TotalRow struct {
	Location Location
	Sign     Sign
	Nominal  int64
}

// TotalsTable tiene una fila por (lokasi, signo): Store/Minus, Store/Plus, Gudang/Minus, Gudang/Plus.
type TotalsTable struct {
	Rows []TotalRow
}

// Get devuelve el nominal acumulado de (loc, sign).
func (t TotalsTable) Get(loc Location, sign Sign) int64 {
	for _, r := range t.Rows {
		if r.Location == loc && r.Sign == sign {
			return r.Nominal
		}
	}
	return 0
}

// GrandTotal suma todas las filas.
func (t TotalsTable) GrandTotal() int64 {
	var sum int64
	for _, r := range t.Rows {
		sum += r.Nominal
	}
	return sum
}

// Totals suma los nominales normalizados de todo el conjunto, sin filtrar por fecha de conteo.
func Totals(records []*Record) TotalsTable {
	t := TotalsTable{Rows: make([]TotalRow, 0, 4)}
	for _, loc := range Locations {
		for _, sign := range []Sign{SignMinus, SignPlus} {
			var sum int64
			for _, r := range records {
				sum += r.Line(loc).Nominal(sign)
			}
			t.Rows = append(t.Rows, TotalRow{Location: loc, Sign: sign, Nominal: sum})
		}
	}
	return t
}
