package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Config{Level: "debug", Format: FormatJSON, Writer: buf})
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, log.GetLevel())
	log.Debug().Int("key", 5).Msg("inserted")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "inserted", rec["message"])
	require.EqualValues(t, 5, rec["key"])
	require.Equal(t, "debug", rec["level"])
}

func TestNew_ConsoleDefaults(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := New(Config{Writer: buf})
	require.NoError(t, err)
	require.Equal(t, zerolog.InfoLevel, log.GetLevel())
	log.Debug().Msg("hidden")
	require.Zero(t, buf.Len())
	log.Warn().Msg("shown")
	require.Contains(t, buf.String(), "shown")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.ErrorContains(t, err, "parsing log level")
	_, err = New(Config{Format: "xml"})
	require.ErrorContains(t, err, `unknown log format "xml"`)
}
