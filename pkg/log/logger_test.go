package log

import (
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewWritesServiceField(t *testing.T) {
	var buf bytes.Buffer
	l := New("encounter-types", WithWriter(&buf))

	l.Info().Str("uuid", "u1").Msg("encounter type created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "encounter-types", entry["service"])
	assert.Equal(t, "u1", entry["uuid"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}

func TestWithLogLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New("encounter-types", WithWriter(&buf), WithLogLevel("warn"))

	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestWithLogLevelIgnoresUnknownNames(t *testing.T) {
	var buf bytes.Buffer
	l := New("encounter-types", WithWriter(&buf), WithLogLevel("loud"))

	l.Debug().Msg("dropped")
	l.Info().Msg("kept")

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
