package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyPathIsNop(t *testing.T) {
	logger, err := New("", "debug")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))
}

func TestFileLoggerWritesSessionTaggedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "footprint.log")
	logger, err := New(path, "debug")
	require.NoError(t, err)

	logger.Debug("tab switched")
	logger.Info("scan started")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 2)

	var first, second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "tab switched", first["msg"])
	assert.Equal(t, "debug", first["level"])

	session, ok := first["session"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(session)
	require.NoError(t, err)
	assert.Equal(t, session, second["session"])
}

func TestLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "footprint.log")
	logger, err := New(path, "warn")
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Warn("kept")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "dropped")
	assert.Contains(t, string(raw), "kept")
}

func TestBadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	require.ErrorContains(t, err, "log level")
}
