// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"math"

	"github.com/ik5/pcmedit/audio"
)

// Waveform generates the integer sample value for a frame and channel.
type Waveform func(frame int, channel int) int64

// NewPCM renders frames of waveform as interleaved little-endian samples of
// the given format. Any sample width is supported; values are truncated to
// the width.
func NewPCM(format audio.Format, frames int, waveform Waveform) []byte {
	width := format.SampleWidth
	data := make([]byte, frames*format.FrameSize())

	for frame := range frames {
		for ch := range format.Channels {
			v := waveform(frame, ch)
			off := (frame*format.Channels + ch) * width
			for b := range width {
				data[off+b] = byte(v >> (8 * b))
			}
		}
	}

	return data
}

// NewClip wraps NewPCM into a clip.
func NewClip(format audio.Format, frames int, waveform Waveform) *audio.Clip {
	return &audio.Clip{Format: format, Data: NewPCM(format, frames, waveform)}
}

// Silence generates zeros.
func Silence() Waveform {
	return func(frame int, channel int) int64 { return 0 }
}

// Constant generates the same value on every channel.
func Constant(value int64) Waveform {
	return func(frame int, channel int) int64 { return value }
}

// Ramp generates frame*step, offset by channel so channels stay
// distinguishable.
func Ramp(step int64) Waveform {
	return func(frame int, channel int) int64 {
		return int64(frame)*step + int64(channel)
	}
}

// Sine generates a sine wave of the given peak amplitude and frequency.
func Sine(sampleRate int, frequency float64, amplitude float64) Waveform {
	return func(frame int, channel int) int64 {
		t := float64(frame) / float64(sampleRate)
		return int64(math.Round(amplitude * math.Sin(2*math.Pi*frequency*t)))
	}
}
