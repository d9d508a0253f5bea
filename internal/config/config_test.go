package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, env := range []string{EnvDevelopment, EnvLogLevel, EnvLogFile, EnvDataDir, EnvSeed} {
		t.Setenv(env, "")
		os.Unsetenv(env)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Development)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.True(t, cfg.LogToFile)
	assert.Empty(t, cfg.DataDir)
	assert.False(t, cfg.HasSeed)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvDevelopment, "1")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFile, "0")
	t.Setenv(EnvDataDir, "/tmp/mines")
	t.Setenv(EnvSeed, "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Development)
	assert.Equal(t, logrus.WarnLevel, cfg.LogLevel)
	assert.False(t, cfg.LogToFile)
	assert.Equal(t, "/tmp/mines", cfg.DataDir)
	assert.True(t, cfg.HasSeed)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestDevelopmentRaisesLogLevel(t *testing.T) {
	t.Setenv(EnvDevelopment, "yes")
	os.Unsetenv(EnvLogLevel)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Run("seed", func(t *testing.T) {
		t.Setenv(EnvSeed, "not-a-number")
		_, err := Load()
		assert.ErrorContains(t, err, EnvSeed)
	})

	t.Run("level", func(t *testing.T) {
		os.Unsetenv(EnvSeed)
		t.Setenv(EnvLogLevel, "loud")
		_, err := Load()
		assert.ErrorContains(t, err, EnvLogLevel)
	})
}

func TestNewLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{LogLevel: logrus.InfoLevel, LogToFile: true}

	log, err := NewLogger(cfg, filepath.Join(dir, "logs"))
	require.NoError(t, err)
	log.SetOutput(os.Stderr)

	log.WithField("preset", "easy").Info("new game")

	data, err := os.ReadFile(filepath.Join(dir, "logs", logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"preset":"easy"`)
}

func TestNewLoggerWithoutFile(t *testing.T) {
	cfg := &Config{Development: true, LogLevel: logrus.DebugLevel}

	log, err := NewLogger(cfg, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
	assert.Empty(t, log.Hooks)
	assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
}

func TestOpenLoggerReportsMissingLogDir(t *testing.T) {
	cfg := &Config{LogLevel: logrus.InfoLevel, LogToFile: true}
	var out bytes.Buffer

	log := OpenLogger(cfg, func() (string, error) {
		return "", errors.New("no home directory")
	}, &out)

	assert.Empty(t, log.Hooks)
	assert.Contains(t, out.String(), "no home directory")
	assert.Contains(t, out.String(), "file logging disabled")
	assert.Contains(t, out.String(), `"level":"warning"`)
}

func TestOpenLoggerWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	cfg := &Config{LogLevel: logrus.InfoLevel, LogToFile: true}
	var out bytes.Buffer

	log := OpenLogger(cfg, func() (string, error) { return dir, nil }, &out)
	log.Info("started")

	assert.NotContains(t, out.String(), "file logging disabled")
	assert.Contains(t, out.String(), "started")
	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
}
