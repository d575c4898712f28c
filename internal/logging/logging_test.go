package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "memory.log")

	logger, closer, err := New(Options{File: path, Level: "debug", Prefix: "memory"})
	require.NoError(t, err)

	logger.Debug("level started", "level", 3)
	logger.Info("run saved", "pairs", 7)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "memory")
	assert.Contains(t, out, "level started")
	assert.Contains(t, out, "level=3")
	assert.Contains(t, out, "pairs=7")
}

func TestNewLevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.log")

	logger, closer, err := New(Options{File: path, Level: "WARN"})
	require.NoError(t, err)
	assert.Equal(t, log.WarnLevel, logger.GetLevel())

	logger.Info("hidden")
	logger.Warn("shown")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}

func TestNewDiscardsByDefault(t *testing.T) {
	logger, closer, err := New(Options{})
	require.NoError(t, err)
	assert.Equal(t, log.InfoLevel, logger.GetLevel())
	logger.Info("nowhere")
	assert.NoError(t, closer.Close())
}

func TestNewBadLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}
