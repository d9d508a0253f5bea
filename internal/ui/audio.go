package ui

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hailam/minesweeper/internal/sound"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundReveal SoundType = iota
	SoundCascade
	SoundFlag
	SoundUnflag
	SoundExplosion
	SoundWin
)

// AudioManager handles sound effect playback.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sound.SampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: true,
		volume:  0.5,
	}
	am.generateSounds()
	return am
}

func (am *AudioManager) generateSounds() {
	am.sounds[SoundReveal] = sound.Click(440, 0.08, 0.3)
	am.sounds[SoundCascade] = sound.Sweep(320, 960, 0.18, 0.3)
	am.sounds[SoundFlag] = sound.Concat(0.04, sound.Click(520, 0.05, 0.3), sound.Click(620, 0.05, 0.25))
	am.sounds[SoundUnflag] = sound.Click(300, 0.06, 0.25)
	am.sounds[SoundExplosion] = sound.Explosion(0.6, 0.8)
	am.sounds[SoundWin] = sound.Chord(0.5, 0.5)
}

// Play plays a sound effect.
func (am *AudioManager) Play(s SoundType) {
	if !am.enabled {
		return
	}

	data, ok := am.sounds[s]
	if !ok {
		return
	}

	// A new player per call lets sounds overlap.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// SetVolume sets the audio volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = max(0, min(1, volume))
}

// Volume returns the playback volume.
func (am *AudioManager) Volume() float64 {
	return am.volume
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
