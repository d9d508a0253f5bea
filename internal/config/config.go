// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Environment variables.
const (
	EnvDevelopment = "MINESWEEPER_DEVELOPMENT"
	EnvLogLevel    = "MINESWEEPER_LOG_LEVEL"
	EnvLogFile     = "MINESWEEPER_LOG_FILE"
	EnvDataDir     = "MINESWEEPER_DATA_DIR"
	EnvSeed        = "MINESWEEPER_SEED"
)

// Config holds settings shared by the desktop game and the console driver.
type Config struct {
	Development bool
	LogLevel    logrus.Level
	LogToFile   bool
	DataDir     string // empty means the platform default
	Seed        uint64
	HasSeed     bool
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Development: Development(),
		LogLevel:    logrus.InfoLevel,
		LogToFile:   true,
		DataDir:     os.Getenv(EnvDataDir),
	}
	if cfg.Development {
		cfg.LogLevel = logrus.DebugLevel
	}

	if s, ok := os.LookupEnv(EnvLogLevel); ok {
		level, err := logrus.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = level
	}

	if s, ok := os.LookupEnv(EnvLogFile); ok {
		cfg.LogToFile = s != "0" && !strings.EqualFold(s, "false")
	}

	if s, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	return cfg, nil
}

// Development reports whether development mode is switched on.
func Development() bool {
	development, ok := os.LookupEnv(EnvDevelopment)
	if !ok {
		return false
	}
	return development != "0"
}
