// Package sfx synthesizes short sound effects as 16-bit stereo PCM, the
// format ebiten's audio players consume.
package sfx

import (
	"encoding/binary"
	"math"
)

type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
	Noise
)

// Tone is a single sweep from StartHz to EndHz with a decaying envelope.
type Tone struct {
	Wave     Waveform
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Volume   float64 // 0.0 - 1.0
}

// attack is the fade-in time that keeps tones from clicking.
const attack = 0.005

const bytesPerFrame = 4 // two int16 channels

// Synthesize renders t at sampleRate. Non-positive durations or rates yield nil.
func Synthesize(sampleRate int, t Tone) []byte {
	if sampleRate <= 0 || !(t.Duration > 0) {
		return nil
	}
	frames := int(t.Duration * float64(sampleRate))
	out := make([]byte, frames*bytesPerFrame)
	volume := math.Max(0, math.Min(1, t.Volume))

	var phase float64
	seed := uint32(0x9e3779b9)
	for i := 0; i < frames; i++ {
		sec := float64(i) / float64(sampleRate)
		p := float64(i) / float64(frames)

		freq := t.StartHz + (t.EndHz-t.StartHz)*p
		phase += 2 * math.Pi * freq / float64(sampleRate)

		var v float64
		switch t.Wave {
		case Square:
			if math.Sin(phase) >= 0 {
				v = 1
			} else {
				v = -1
			}
		case Triangle:
			v = 2 / math.Pi * math.Asin(math.Sin(phase))
		case Noise:
			// xorshift32
			seed ^= seed << 13
			seed ^= seed >> 17
			seed ^= seed << 5
			v = float64(seed)/float64(math.MaxUint32)*2 - 1
		default:
			v = math.Sin(phase)
		}

		env := (1 - p) * (1 - p)
		if sec < attack {
			env *= sec / attack
		}

		s := int16(v * env * volume * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], uint16(s))
	}
	return out
}
