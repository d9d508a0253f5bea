// Package storage provides persistent storage for user preferences and game statistics.
package storage

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/sirupsen/logrus"
)

const appName = "minesweeper"

// Log is the package logger; main replaces it with the configured one.
var Log = logrus.New()

// dataDir overrides the platform default when set.
var dataDir string

// SetDataDir makes GetDataDir return dir. An empty dir restores the
// platform default.
func SetDataDir(dir string) {
	dataDir = dir
}

// GetDataDir returns the platform-specific data directory for the application.
// A directory given to SetDataDir takes precedence.
// - macOS: ~/Library/Application Support/minesweeper/
// - Linux: ~/.local/share/minesweeper/
// - Windows: %APPDATA%/minesweeper/
func GetDataDir() (string, error) {
	if dataDir != "" {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", err
		}
		return dataDir, nil
	}

	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		// Check XDG_DATA_HOME first
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dir := filepath.Join(baseDir, appName)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	return dir, nil
}

// GetLogDir returns the directory for rotated log files.
func GetLogDir() (string, error) {
	return subDir("logs")
}

// GetDatabaseDir returns the directory for storing the BadgerDB database.
func GetDatabaseDir() (string, error) {
	dbDir, err := subDir("db")
	if err != nil {
		return "", err
	}
	Log.WithField("dir", dbDir).Debug("database directory")
	return dbDir, nil
}

func subDir(name string) (string, error) {
	base, err := GetDataDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
