package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "beamgrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("  ")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "log_level: DEBUG\nlog_format: json\nworkers: 3\nrender: true\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "debug", LogFormat: "json", Workers: 3, Render: true}, cfg)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "workers: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 2, cfg.Workers)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "workers: [1, 2]\n"))
	assert.Error(t, err)

	cases := map[string]string{
		"level":   "log_level: loud\n",
		"format":  "log_format: xml\n",
		"workers": "workers: -4\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	} {
		assert.Equal(t, want, Config{LogLevel: in}.Level(), in)
	}
}
