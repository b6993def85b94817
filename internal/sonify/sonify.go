// Package sonify turns a sampled range into a short audio clip: a sine
// carrier whose amplitude follows the range, so oscillator curves can be
// heard as well as seen.
package sonify

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/olivier-w/frameplay/internal/sampler"
)

const (
	channelCount = 2
	bitDepth     = 2 // 16-bit = 2 bytes
	frameSize    = channelCount * bitDepth
)

// Options controls Render.
type Options struct {
	SampleRate int
	CarrierHz  float64
	Duration   time.Duration
}

// Render returns signed 16-bit little-endian stereo PCM. The range is
// normalized by its largest magnitude and linearly interpolated across the
// clip; an all-zero or empty range renders silence.
func Render(r sampler.Range, opts Options) []byte {
	frames := int(float64(opts.SampleRate) * opts.Duration.Seconds())
	if frames <= 0 {
		return nil
	}
	out := make([]byte, frames*frameSize)
	peak := 0.0
	for i := range r.Len() {
		if v := math.Abs(r.At(i)); v > peak && !math.IsInf(v, 0) {
			peak = v
		}
	}
	if peak == 0 {
		return out
	}

	step := 2 * math.Pi * opts.CarrierHz / float64(opts.SampleRate)
	for f := range frames {
		env := envelope(r, float64(f)/float64(frames)) / peak
		s := int16(math.Round(clamp(env*math.Sin(step*float64(f)), -1, 1) * math.MaxInt16))
		off := f * frameSize
		binary.LittleEndian.PutUint16(out[off:], uint16(s))
		binary.LittleEndian.PutUint16(out[off+2:], uint16(s))
	}
	return out
}

// envelope samples r at position u in [0,1) by linear interpolation.
// Non-finite samples read as silence.
func envelope(r sampler.Range, u float64) float64 {
	n := r.Len()
	if n == 1 {
		return finite(r.At(0))
	}
	x := u * float64(n-1)
	lo := int(x)
	hi := min(lo+1, n-1)
	t := x - float64(lo)
	return finite(r.At(lo))*(1-t) + finite(r.At(hi))*t
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
