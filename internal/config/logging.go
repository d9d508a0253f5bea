package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

const logFileName = "minesweeper.log"

// NewLogger builds the application logger. Development mode logs human
// readable text; otherwise entries are JSON. When logDir is not empty and
// file logging is enabled, entries are also written to a rotated file there.
func NewLogger(cfg *Config, logDir string) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.LogLevel)

	if cfg.Development {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if !cfg.LogToFile || logDir == "" {
		return log, nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return log, fmt.Errorf("create log dir: %w", err)
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   filepath.Join(logDir, logFileName),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      cfg.LogLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return log, fmt.Errorf("open log file: %w", err)
	}
	log.AddHook(hook)

	return log, nil
}

// OpenLogger builds the logger writing to out, with file output under the
// directory returned by logDir. Log file problems are reported through the
// logger itself and never stop startup.
func OpenLogger(cfg *Config, logDir func() (string, error), out io.Writer) *logrus.Logger {
	dir, dirErr := logDir()
	log, err := NewLogger(cfg, dir)
	log.SetOutput(out)

	if dirErr != nil {
		log.WithError(dirErr).Warn("no log directory, file logging disabled")
	}
	if err != nil {
		log.WithError(err).Warn("file logging disabled")
	}
	return log
}
