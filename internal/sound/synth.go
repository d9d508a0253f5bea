// Package sound synthesizes the game's sound effects as raw PCM.
//
// Every function returns 16-bit little-endian stereo samples at SampleRate,
// the format ebiten's audio players accept directly.
package sound

import "math"

// SampleRate is the output rate in Hz.
const SampleRate = 44100

const bytesPerFrame = 4

func frames(duration float64) int {
	return int(SampleRate * duration)
}

// putFrame writes one stereo frame, clamping the sample to [-1, 1].
func putFrame(data []byte, i int, sample float64) {
	sample = max(-1, min(1, sample))
	val := int16(sample * 32767)
	data[i*bytesPerFrame] = byte(val)
	data[i*bytesPerFrame+1] = byte(val >> 8)
	data[i*bytesPerFrame+2] = byte(val)
	data[i*bytesPerFrame+3] = byte(val >> 8)
}

// Click is a short percussive tick with an exponential decay.
func Click(freq, duration, amplitude float64) []byte {
	n := frames(duration)
	data := make([]byte, n*bytesPerFrame)

	for i := range n {
		t := float64(i) / SampleRate
		envelope := math.Exp(-t * 30)
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		putFrame(data, i, (math.Sin(2*math.Pi*freq*t)+noise)*envelope*amplitude)
	}
	return data
}

// Tone is a sine with a short attack and a linear decay.
func Tone(freq, duration, amplitude float64) []byte {
	n := frames(duration)
	data := make([]byte, n*bytesPerFrame)

	for i := range n {
		t := float64(i) / SampleRate
		progress := t / duration
		var envelope float64
		if progress < 0.1 {
			envelope = progress / 0.1
		} else {
			envelope = 1.0 - (progress-0.1)/0.9
		}
		putFrame(data, i, math.Sin(2*math.Pi*freq*t)*envelope*amplitude)
	}
	return data
}

// Sweep glides from one frequency to another; used for cascades.
func Sweep(from, to, duration, amplitude float64) []byte {
	n := frames(duration)
	data := make([]byte, n*bytesPerFrame)

	phase := 0.0
	for i := range n {
		progress := float64(i) / float64(n)
		freq := from + (to-from)*progress
		phase += 2 * math.Pi * freq / SampleRate
		envelope := 1.0 - progress
		putFrame(data, i, math.Sin(phase)*envelope*amplitude)
	}
	return data
}

// Explosion is decaying low-frequency rumble mixed with deterministic noise.
func Explosion(duration, amplitude float64) []byte {
	n := frames(duration)
	data := make([]byte, n*bytesPerFrame)

	var seed uint32 = 0x2545f491
	for i := range n {
		t := float64(i) / SampleRate
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		noise := float64(seed)/float64(math.MaxUint32)*2 - 1

		envelope := math.Exp(-t * 6)
		rumble := math.Sin(2*math.Pi*60*t) + 0.5*math.Sin(2*math.Pi*90*t)
		putFrame(data, i, (0.6*noise+0.4*rumble)*envelope*amplitude)
	}
	return data
}

// Chord plays a C major triad with fade in and out.
func Chord(duration, amplitude float64) []byte {
	n := frames(duration)
	data := make([]byte, n*bytesPerFrame)

	freqs := []float64{261.63, 329.63, 392.00}

	for i := range n {
		t := float64(i) / SampleRate
		progress := t / duration
		var envelope float64
		switch {
		case progress < 0.1:
			envelope = progress / 0.1
		case progress > 0.7:
			envelope = (1.0 - progress) / 0.3
		default:
			envelope = 1.0
		}

		sample := 0.0
		for _, freq := range freqs {
			sample += math.Sin(2 * math.Pi * freq * t)
		}
		putFrame(data, i, sample/float64(len(freqs))*envelope*amplitude)
	}
	return data
}

// Concat joins clips with gap seconds of silence between them.
func Concat(gap float64, clips ...[]byte) []byte {
	silence := make([]byte, frames(gap)*bytesPerFrame)

	var out []byte
	for i, clip := range clips {
		if i > 0 {
			out = append(out, silence...)
		}
		out = append(out, clip...)
	}
	return out
}
