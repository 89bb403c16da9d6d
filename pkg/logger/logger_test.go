package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fuera de development la salida es JSON estructurado con nivel y timestamp.
func TestNew_JSONEnProduccion(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "info", Writer: &buf})
	log.Info().Str("component", "api").Msg("iniciando aplicación")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "api", entry["component"])
	assert.Equal(t, "iniciando aplicación", entry["message"])
	assert.Contains(t, entry, "time")
}

// Los eventos por debajo del nivel configurado se descartan.
func TestNew_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Env: "production", Level: "error", Writer: &buf})

	log.Info().Msg("ruido")
	assert.Zero(t, buf.Len(), "info bajo nivel error no debe emitirse")

	log.Error().Msg("falla")
	assert.NotZero(t, buf.Len())
}

// Nivel desconocido o vacío cae en info.
func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("desconocido"))
}
