package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenFramesLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gb.log")

	l, err := Open(Options{File: path, Level: slog.LevelInfo})
	require.NoError(t, err)
	l.Info("renderer", "name", "test")
	l.Debug("hidden")
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "BEGIN LOG")
	assert.Contains(t, lines[1], "name=test")
	assert.Contains(t, lines[2], "END LOG")
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gb.log")
	for i := 0; i < 2; i++ {
		l, err := Open(Options{File: path})
		require.NoError(t, err)
		require.NoError(t, l.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "BEGIN LOG"))
	assert.Equal(t, 2, strings.Count(string(data), "END LOG"))
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open(Options{File: filepath.Join(t.TempDir(), "missing", "gb.log")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
