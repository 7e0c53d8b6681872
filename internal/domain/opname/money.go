package opname

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/stock-opname/internal/domain"
)

// Convención por defecto de los archivos de opname: "Rp1,250,000".
const (
	DefaultCurrencySymbol     = "Rp"
	DefaultThousandsSeparator = ","
)

// Amount es un nominal normalizado en la unidad mínima de la moneda (rupiah enteros).
// Valid es false cuando el valor no venía informado (null, no texto o vacío),
// para no confundir "sin dato" con un cero explícito.
type Amount struct {
	Units int64
	Valid bool
}

// Int64 devuelve el nominal; un valor no informado cuenta como 0.
func (a Amount) Int64() int64 { return a.Units }

// Normalizer convierte nominales con formato de moneda en enteros con signo.
// Una sola instancia cubre las variantes conocidas del archivo: se configura
// con el símbolo de moneda y el separador de miles.
type Normalizer struct {
	Symbol    string
	Separator string
}

// NewNormalizer construye el normalizador; los valores vacíos toman la convención por defecto.
func NewNormalizer(symbol, separator string) Normalizer {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	if separator == "" {
		separator = DefaultThousandsSeparator
	}
	return Normalizer{Symbol: symbol, Separator: separator}
}

// Normalize interpreta un valor JSON crudo. Solo los strings se parsean;
// null, números o booleanos devuelven Amount{} sin error.
func (n Normalizer) Normalize(raw json.RawMessage) (Amount, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return Amount{}, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return Amount{}, fmt.Errorf("%w: %v", domain.ErrMalformedCurrency, err)
	}
	return n.NormalizeString(s)
}

// NormalizeString quita símbolo, separadores y espacios y parsea el resto en base 10.
//
//	"Rp1,000" -> 1000   "Rp-500" -> -500   "Rp0" / "0" -> 0   "" -> no informado
func (n Normalizer) NormalizeString(s string) (Amount, error) {
	if n.Symbol != "" {
		s = strings.ReplaceAll(s, n.Symbol, "")
	}
	if n.Separator != "" {
		s = strings.ReplaceAll(s, n.Separator, "")
	}
	s = strings.TrimSpace(s)
	switch s {
	case "":
		return Amount{}, nil
	case "0":
		return Amount{Units: 0, Valid: true}, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", domain.ErrMalformedCurrency, s)
	}
	return Amount{Units: v, Valid: true}, nil
}

// Format escribe el nominal con la misma convención que acepta Normalize: "Rp1,000", "Rp-500".
func (n Normalizer) Format(units int64) string {
	s := message.NewPrinter(language.English).Sprintf("%d", units)
	if n.Separator != "" && n.Separator != "," {
		s = strings.ReplaceAll(s, ",", n.Separator)
	}
	return n.Symbol + s
}
