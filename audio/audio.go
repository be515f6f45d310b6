// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Format describes how the raw bytes of a Clip are laid out.
// It never changes while a clip is loaded.
type Format struct {
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// SampleWidth is the size of one sample in bytes.
	SampleWidth int
	// SampleRate of the PCM stream in Hz.
	SampleRate int
}

// FrameSize is the number of bytes holding one sample for every channel.
func (f Format) FrameSize() int { return f.Channels * f.SampleWidth }

// BitDepth is the sample width in bits.
func (f Format) BitDepth() int { return f.SampleWidth * 8 }

// Validate reports ErrMalformedContainer when any field is not positive.
func (f Format) Validate() error {
	switch {
	case f.Channels <= 0:
		return fmt.Errorf("%w: channel count %d", ErrMalformedContainer, f.Channels)
	case f.SampleWidth <= 0:
		return fmt.Errorf("%w: sample width %d", ErrMalformedContainer, f.SampleWidth)
	case f.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d", ErrMalformedContainer, f.SampleRate)
	}

	return nil
}

// Seconds converts a frame count into a duration in seconds.
func (f Format) Seconds(frames int) float64 {
	return float64(frames) / float64(f.SampleRate)
}

func (f Format) String() string {
	return fmt.Sprintf("%d ch, %d bit, %d Hz", f.Channels, f.BitDepth(), f.SampleRate)
}

// Clip is a decoded container: its format and the raw interleaved
// little-endian sample bytes.
type Clip struct {
	Format Format
	Data   []byte
}

// FrameCount is the number of whole frames held in Data.
func (c *Clip) FrameCount() int {
	if c == nil || c.Format.FrameSize() <= 0 {
		return 0
	}

	return len(c.Data) / c.Format.FrameSize()
}

// Decoder constructs a Clip from an input reader.
type Decoder interface {
	Decode(r io.Reader) (*Clip, error)
}

// Encoder serializes a Clip into a container.
type Encoder interface {
	Encode(w io.WriteSeeker, c *Clip) error
}

// Codec reads and writes a single container format.
type Codec interface {
	Decoder
	Encoder
}

// Registry for codecs by file extension (e.g., "wav").
// Keys are matched case-insensitively and without the leading dot.
type Registry struct {
	codecs map[string]Codec

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Codec),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, c Codec) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normalizeExt(ext)] = c
}

func (r *Registry) Get(ext string) (Codec, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	c, ok := r.codecs[normalizeExt(ext)]
	return c, ok
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
