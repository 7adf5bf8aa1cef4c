package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &e), scanner.Text())
		entries = append(entries, e)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestNew_TagsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobfit.log")
	log := New(path, "staging")

	log.Named("web").Info("request", zap.Int("status", 200))
	log.Debug("not written to the file")
	_ = log.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "request", e["message"])
	assert.Equal(t, "INFO", e["level"])
	assert.Equal(t, "jobfit.web", e["logger"])
	assert.Equal(t, Service, e["service"])
	assert.Equal(t, "staging", e["env"])
	assert.EqualValues(t, 200, e["status"])
	assert.Contains(t, e, "timestamp")
	assert.Contains(t, e, "caller")
}
