package opname

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-opname/internal/domain"
)

// ErrorPolicy define qué hacer con un registro que no se puede procesar.
type ErrorPolicy string

const (
	// PolicyFail aborta todo el lote con el primer error.
	PolicyFail ErrorPolicy = "fail"
	// PolicySkip descarta el registro y lo reporta en Result.Rejected.
	PolicySkip ErrorPolicy = "skip"
)

// ParsePolicy valida el nombre de la política; vacío equivale a PolicyFail.
func ParsePolicy(s string) (ErrorPolicy, error) {
	switch ErrorPolicy(s) {
	case "", PolicyFail:
		return PolicyFail, nil
	case PolicySkip:
		return PolicySkip, nil
	}
	return "", fmt.Errorf("%w: política %q", domain.ErrInvalidInput, s)
}

// Pipeline normaliza los registros de un archivo según un esquema de columnas.
type Pipeline struct {
	Normalizer Normalizer
	Schema     Schema
	Policy     ErrorPolicy
}

// Result es la salida del pipeline: registros enriquecidos y, con PolicySkip, los rechazados.
type Result struct {
	Records  []*Record
	Rejected []*domain.RecordError
	Status   map[Location]StatusTable
	Totals   TotalsTable
}

// Run enriquece cada registro y calcula las tablas de resumen.
func (p Pipeline) Run(records []*Record) (*Result, error) {
	res := &Result{Records: make([]*Record, 0, len(records))}
	for _, r := range records {
		if err := p.Enrich(r); err != nil {
			var recErr *domain.RecordError
			if p.Policy != PolicySkip || !errors.As(err, &recErr) {
				return nil, err
			}
			res.Rejected = append(res.Rejected, recErr)
			continue
		}
		res.Records = append(res.Records, r)
	}

	res.Status = make(map[Location]StatusTable, len(Locations))
	for _, loc := range Locations {
		res.Status[loc] = Aggregate(res.Records, loc)
	}
	res.Totals = Totals(res.Records)
	return res, nil
}

// Enrich interpreta las columnas de ambas lokasi y agrega los nominales
// normalizados al final de Fields. Si falla, el registro queda sin modificar.
func (p Pipeline) Enrich(r *Record) error {
	lines := make(map[Location]Line, len(Locations))
	for _, loc := range Locations {
		l, err := p.readLine(r, p.Schema.Columns(loc))
		if err != nil {
			return err
		}
		lines[loc] = l
	}

	for _, loc := range Locations {
		cols := p.Schema.Columns(loc)
		l := lines[loc]
		r.setLine(loc, l)
		r.Fields.Set(cols.MinusNominal, json.RawMessage(strconv.FormatInt(l.Minus.Int64(), 10)))
		r.Fields.Set(cols.PlusNominal, json.RawMessage(strconv.FormatInt(l.Plus.Int64(), 10)))
	}
	return nil
}

func (p Pipeline) readLine(r *Record, cols Columns) (Line, error) {
	var l Line

	// La fecha solo importa por su presencia.
	if raw, ok := r.Fields.Get(cols.CountedOn); ok && !isNull(raw) {
		l.Counted = true
	}

	// Una columna ausente en el registro vale lo mismo que null.
	raw, _ := r.Fields.Get(cols.Discrepancy)
	switch {
	case !isNull(raw):
		d, err := parseQuantity(raw)
		if err != nil {
			return Line{}, &domain.RecordError{Index: r.Index, Field: cols.Discrepancy, Err: err}
		}
		l.Discrepancy = d
	case l.Counted:
		// Contado pero sin selisih: no se puede ubicar en ningún bucket.
		return Line{}, &domain.RecordError{Index: r.Index, Field: cols.Discrepancy, Err: domain.ErrMissingField}
	}

	var err error
	if l.Minus, err = p.nominal(r, cols.MinusRaw); err != nil {
		return Line{}, err
	}
	if l.Plus, err = p.nominal(r, cols.PlusRaw); err != nil {
		return Line{}, err
	}
	return l, nil
}

// nominal normaliza la columna; si el registro no la trae el nominal queda no informado.
func (p Pipeline) nominal(r *Record, field string) (Amount, error) {
	raw, _ := r.Fields.Get(field)
	a, err := p.Normalizer.Normalize(raw)
	if err != nil {
		return Amount{}, &domain.RecordError{Index: r.Index, Field: field, Err: err}
	}
	return a, nil
}

// parseQuantity acepta números JSON y strings numéricos ("-2").
func parseQuantity(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	s := string(raw)
	if len(raw) > 0 && raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrMalformedQuantity, err)
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrMalformedQuantity, s)
	}
	return d, nil
}
