package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "warn", "json")
	require.NoError(t, err)

	logger.Info().Msg("dropped")
	logger.Warn().Str("session", "abc").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "abc", entry["session"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNew_EmptyLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, "", "json")
	require.NoError(t, err)

	logger.Debug().Msg("dropped")
	assert.Empty(t, buf.String())

	logger.Info().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", "json")

	assert.Error(t, err)
}
