package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfig(t *testing.T) string {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{"DIARY_DATABASE", "DIARY_IMAGES", "DIARY_LOG_FILE", "DIARY_LOG_LEVEL", "LOG_LEVEL"} {
		t.Setenv(name, "")
	}

	dir := t.TempDir()
	t.Chdir(dir)

	return dir
}

func parsedCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	addConfigFlags(cmd)

	require.NoError(t, cmd.ParseFlags(args))

	return cmd
}

func TestConfigDefaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := loadConfig(parsedCommand(t))
	require.NoError(t, err)

	assert.Equal(t, config{
		Database: "diary.db",
		Images:   "images",
		LogFile:  "debug.log",
		LogLevel: "INFO",
	}, cfg)
}

func TestConfigPrecedence(t *testing.T) {
	dir := isolateConfig(t)

	configFile := "database: from-file.db\nimages: file-images\nlog_level: warn\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "terminaldiary.yaml"), []byte(configFile), 0o644))

	cfg, err := loadConfig(parsedCommand(t))
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", cfg.Database)
	assert.Equal(t, "file-images", cfg.Images)
	assert.Equal(t, "WARN", cfg.LogLevel)

	t.Setenv("DIARY_IMAGES", "env-images")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err = loadConfig(parsedCommand(t))
	require.NoError(t, err)
	assert.Equal(t, "from-file.db", cfg.Database)
	assert.Equal(t, "env-images", cfg.Images)
	assert.Equal(t, "DEBUG", cfg.LogLevel)

	cfg, err = loadConfig(parsedCommand(t, "--database", "flag.db", "--images", "flag-images"))
	require.NoError(t, err)
	assert.Equal(t, "flag.db", cfg.Database)
	assert.Equal(t, "flag-images", cfg.Images)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLogLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("INFO"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("chatty"))
}
