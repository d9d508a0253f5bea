package sound

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples(data []byte) []int16 {
	out := make([]int16, len(data)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return out
}

func peak(data []byte) int {
	p := 0
	for _, s := range samples(data) {
		p = max(p, abs(int(s)))
	}
	return p
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestClipLengths(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		frames int
	}{
		{"click", Click(440, 0.1, 0.3), 4410},
		{"tone", Tone(880, 0.2, 0.4), 8820},
		{"sweep", Sweep(300, 900, 0.15, 0.3), 6615},
		{"explosion", Explosion(0.5, 0.8), 22050},
		{"chord", Chord(0.4, 0.5), 17640},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.data, tt.frames*bytesPerFrame)
			assert.Positive(t, peak(tt.data))
		})
	}
}

func TestChannelsMatch(t *testing.T) {
	s := samples(Chord(0.05, 0.5))
	for i := 0; i+1 < len(s); i += 2 {
		require.Equal(t, s[i], s[i+1], "frame %d", i/2)
	}
}

func TestAmplitudeBoundsPeak(t *testing.T) {
	assert.LessOrEqual(t, peak(Tone(440, 0.1, 0.25)), 32767/4+1)
}

func TestLoudInputIsClamped(t *testing.T) {
	data := Explosion(0.1, 10)
	assert.LessOrEqual(t, peak(data), 32767)
	assert.Equal(t, 32767, peak(data))
}

func TestToneStartsSilent(t *testing.T) {
	s := samples(Tone(440, 0.1, 1))
	assert.Zero(t, s[0])
}

func TestExplosionIsDeterministic(t *testing.T) {
	assert.Equal(t, Explosion(0.05, 0.5), Explosion(0.05, 0.5))
}

func TestConcat(t *testing.T) {
	a := Click(400, 0.01, 0.3)
	b := Click(440, 0.01, 0.3)
	out := Concat(0.05, a, b)

	gap := frames(0.05) * bytesPerFrame
	require.Len(t, out, len(a)+gap+len(b))
	assert.Equal(t, a, out[:len(a)])
	assert.Equal(t, make([]byte, gap), out[len(a):len(a)+gap])
	assert.Equal(t, b, out[len(a)+gap:])
}
