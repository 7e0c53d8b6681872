package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/stock-opname/pkg/jwt"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate("secret", "gudang-bot", "auditor", "stock-opname", 5)
	require.NoError(t, err)

	subject, role, err := pkgjwt.Parse("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, "gudang-bot", subject)
	assert.Equal(t, "auditor", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("secret", "gudang-bot", "", "stock-opname", 5)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate("secret", "gudang-bot", "", "stock-opname", -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SinSecret(t *testing.T) {
	_, err := pkgjwt.Generate("", "x", "", "", 5)
	assert.Error(t, err)
	_, err = pkgjwt.Generate("secret", "", "", "", 5)
	assert.Error(t, err)
}
