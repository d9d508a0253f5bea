package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStorage(t *testing.T) {
	t.Run("DefaultPreferences", func(t *testing.T) {
		prefs := DefaultPreferences()
		assert.Equal(t, "easy", prefs.Preset)
		assert.True(t, prefs.SoundEnabled, "Expected sound enabled by default")
		assert.Equal(t, 0.5, prefs.Volume)
	})

	t.Run("NewGameStats", func(t *testing.T) {
		stats := NewGameStats()
		assert.Zero(t, stats.GamesPlayed)
		assert.Zero(t, stats.GetWinRate())
	})

	t.Run("WinRate", func(t *testing.T) {
		stats := &GameStats{
			GamesPlayed: 10,
			Wins:        5,
			Losses:      5,
		}
		assert.Equal(t, 50.0, stats.GetWinRate())
	})
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := openTestStorage(t)

	prefs, err := s.LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences().Preset, prefs.Preset)

	prefs.Preset = "hard"
	prefs.SoundEnabled = false
	prefs.Volume = 0.2
	require.NoError(t, s.SavePreferences(prefs))

	loaded, err := s.LoadPreferences()
	require.NoError(t, err)
	assert.Equal(t, "hard", loaded.Preset)
	assert.False(t, loaded.SoundEnabled)
	assert.Equal(t, 0.2, loaded.Volume)
	assert.False(t, loaded.LastPlayed.IsZero())
}

func TestFirstLaunch(t *testing.T) {
	s := openTestStorage(t)

	first, err := s.IsFirstLaunch()
	require.NoError(t, err)
	assert.True(t, first)

	require.NoError(t, s.MarkFirstLaunchComplete())

	first, err = s.IsFirstLaunch()
	require.NoError(t, err)
	assert.False(t, first)
}

func TestRecordGame(t *testing.T) {
	s := openTestStorage(t)

	results := []GameResult{
		{Preset: "easy", Won: true},
		{Preset: "easy", Won: true},
		{Preset: "medium", Won: false},
		{Preset: "hard", Won: true},
	}
	for _, r := range results {
		_, err := s.RecordGame(r)
		require.NoError(t, err)
	}

	stats, err := s.LoadStats()
	require.NoError(t, err)
	assert.Equal(t, 4, stats.GamesPlayed)
	assert.Equal(t, 3, stats.Wins)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 2, stats.PlayedByPreset["easy"])
	assert.Equal(t, 2, stats.WinsByPreset["easy"])
	assert.Zero(t, stats.WinsByPreset["medium"])
	assert.Equal(t, 2, stats.LongestStreak)
	assert.Equal(t, 1, stats.CurrentStreak)
	assert.Equal(t, 75.0, stats.GetWinRate())
}

func TestClosedStorage(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.IsFirstLaunch()
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, s.SavePreferences(DefaultPreferences()), ErrClosed)
	_, err = s.LoadStats()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestDataPaths(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	SetDataDir(dir)
	t.Cleanup(func() { SetDataDir("") })

	dataDir, err := GetDataDir()
	require.NoError(t, err)
	assert.Equal(t, dir, dataDir)

	dbDir, err := GetDatabaseDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "db"), dbDir)

	logDir, err := GetLogDir()
	require.NoError(t, err)

	for _, d := range []string{dataDir, dbDir, logDir} {
		info, err := os.Stat(d)
		require.NoError(t, err, "directory was not created: %s", d)
		assert.True(t, info.IsDir())
	}
}
