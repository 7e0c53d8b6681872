package opname_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-opname/internal/domain"
	"github.com/jhoicas/stock-opname/internal/domain/opname"
)

func TestNormalize_ValoresConocidos(t *testing.T) {
	n := opname.NewNormalizer("", "")

	cases := []struct {
		name  string
		raw   string
		units int64
		valid bool
	}{
		{"null", `null`, 0, false},
		{"vacío", `""`, 0, false},
		{"solo símbolo", `"Rp"`, 0, false},
		{"cero literal", `"0"`, 0, true},
		{"cero con símbolo", `"Rp0"`, 0, true},
		{"miles", `"Rp1,000"`, 1000, true},
		{"negativo", `"Rp-500"`, -500, true},
		{"signo antes del símbolo", `"-Rp2,500"`, -2500, true},
		{"espacios", `"  Rp 1,250,000 "`, 1250000, true},
		{"número JSON", `1500`, 0, false},
		{"booleano", `true`, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := n.Normalize(json.RawMessage(tc.raw))
			require.NoError(t, err)
			assert.Equal(t, tc.units, a.Int64())
			assert.Equal(t, tc.valid, a.Valid)
		})
	}
}

func TestNormalize_Ausente(t *testing.T) {
	a, err := opname.NewNormalizer("", "").Normalize(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), a.Int64())
	assert.False(t, a.Valid)
}

func TestNormalize_MalformadoEsError(t *testing.T) {
	n := opname.NewNormalizer("", "")
	for _, raw := range []string{`"Rp1,000.50"`, `"Rp12abc"`, `"IDR 500"`, `"--5"`} {
		_, err := n.Normalize(json.RawMessage(raw))
		assert.ErrorIs(t, err, domain.ErrMalformedCurrency, raw)
	}
}

func TestNormalize_SeparadorPunto(t *testing.T) {
	n := opname.NewNormalizer("Rp", ".")
	a, err := n.NormalizeString("Rp1.250.000")
	require.NoError(t, err)
	assert.Equal(t, int64(1250000), a.Int64())
	assert.Equal(t, "Rp1.250.000", n.Format(1250000))
}

func TestFormat(t *testing.T) {
	n := opname.NewNormalizer("", "")
	assert.Equal(t, "Rp0", n.Format(0))
	assert.Equal(t, "Rp1,000", n.Format(1000))
	assert.Equal(t, "Rp-500", n.Format(-500))
	assert.Equal(t, "Rp-1,234,567", n.Format(-1234567))
}

// Normalize(Format(Normalize(x))) == Normalize(x)
func TestNormalize_IdempotenteConFormat(t *testing.T) {
	n := opname.NewNormalizer("", "")
	for _, s := range []string{"Rp0", "0", "", "Rp1,000", "Rp-500", "Rp 99,999,999", "-Rp7"} {
		first, err := n.NormalizeString(s)
		require.NoError(t, err)
		again, err := n.NormalizeString(n.Format(first.Int64()))
		require.NoError(t, err)
		assert.Equal(t, first.Int64(), again.Int64(), s)
	}
}
