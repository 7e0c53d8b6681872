package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-opname/pkg/logger"
)

func TestNew_JSONConComponente(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf}).Component("opname_http")

	l.Debug().Msg("oculto")
	l.Info().Int("records", 2).Msg("reporte generado")

	var ev map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &ev))
	assert.Equal(t, "info", ev["level"])
	assert.Equal(t, "opname_http", ev["component"])
	assert.Equal(t, "reporte generado", ev["message"])
	assert.EqualValues(t, 2, ev["records"])
	assert.Contains(t, ev, "time")
}

func TestNew_SinGlobalNoReemplazaLogGlobal(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	logger.New(logger.Config{Level: "warn", Output: &bytes.Buffer{}})
	log.Info().Msg("global")
	assert.Contains(t, buf.String(), "global")

	var apiBuf bytes.Buffer
	logger.New(logger.Config{Level: "info", Output: &apiBuf, Global: true})
	log.Info().Msg("api")
	assert.Contains(t, apiBuf.String(), "api")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, logger.ParseLevel("trace"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("warn"))
	assert.Equal(t, zerolog.Disabled, logger.ParseLevel("off"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("verbose"))
}
