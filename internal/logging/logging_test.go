package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesJSONToFile(t *testing.T) {
	dir := t.TempDir()
	Init(Config{LogDir: dir, Level: "debug"})
	t.Cleanup(func() { Init(Config{}) })

	Logger().Info("hello", "session", "work")

	f, err := os.Open(filepath.Join(dir, "xsm.log"))
	require.NoError(t, err)
	defer f.Close()

	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan(), "expected at least one log line")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "work", entry["session"])
}

func TestForComponentTagsRecords(t *testing.T) {
	dir := t.TempDir()

	// Component loggers created before Init must still reach the file.
	log := ForComponent(CompRestore)
	Init(Config{LogDir: dir})
	t.Cleanup(func() { Init(Config{}) })

	log.Info("launched")

	data, err := os.ReadFile(filepath.Join(dir, "xsm.log"))
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data[:len(data)-1], &entry))
	assert.Equal(t, CompRestore, entry["component"])
}

func TestLevelFiltering(t *testing.T) {
	dir := t.TempDir()
	Init(Config{LogDir: dir, Level: "warn"})
	t.Cleanup(func() { Init(Config{}) })

	Logger().Info("dropped")
	Logger().Warn("kept")

	data, err := os.ReadFile(filepath.Join(dir, "xsm.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestUninitializedLoggerDiscards(t *testing.T) {
	Init(Config{})
	// Must not panic or write anywhere.
	Logger().Error("nowhere to go")
	ForComponent(CompWM).Debug("also nowhere")
}
