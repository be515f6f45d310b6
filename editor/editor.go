// SPDX-License-Identifier: EPL-2.0

package editor

import (
	"fmt"
	"math"

	"github.com/ik5/pcmedit/audio"
	"github.com/ik5/pcmedit/utils"
)

// Editor owns one decoded sample buffer and edits it in place.
//
// Every method validates its arguments before touching the buffer, so a
// failed call leaves the editor exactly as it was. An Editor is not safe for
// concurrent use.
type Editor struct {
	format     audio.Format
	frames     []byte
	frameCount int

	// originalDuration is the duration at construction. It is kept for
	// display and is not updated by edits.
	originalDuration float64
}

// Info is a snapshot of the buffer metadata.
type Info struct {
	DurationSeconds         float64
	Channels                int
	SampleRateHz            int
	SampleWidthBytes        int
	BitDepth                int
	OriginalDurationSeconds float64
}

func (i Info) String() string {
	return fmt.Sprintf("duration %.3fs (original %.3fs), %d ch, %d Hz, %d bytes/sample (%d bit)",
		i.DurationSeconds, i.OriginalDurationSeconds, i.Channels, i.SampleRateHz,
		i.SampleWidthBytes, i.BitDepth)
}

// New takes ownership of clip.Data and wraps it in an editor.
func New(clip *audio.Clip) (*Editor, error) {
	if clip == nil {
		return nil, &audio.Error{Kind: audio.ErrMalformedContainer, Op: "load", Detail: "no clip"}
	}

	if err := clip.Format.Validate(); err != nil {
		return nil, &audio.Error{Kind: audio.ErrMalformedContainer, Op: "load", Err: err}
	}

	frameSize := clip.Format.FrameSize()
	if len(clip.Data)%frameSize != 0 {
		return nil, &audio.Error{
			Kind:   audio.ErrMalformedContainer,
			Op:     "load",
			Detail: fmt.Sprintf("%d bytes is not a multiple of the %d byte frame", len(clip.Data), frameSize),
		}
	}

	e := &Editor{
		format:     clip.Format,
		frames:     clip.Data,
		frameCount: len(clip.Data) / frameSize,
	}
	e.originalDuration = e.Duration()

	return e, nil
}

func (e *Editor) Format() audio.Format { return e.format }
func (e *Editor) FrameCount() int      { return e.frameCount }

// Duration is the current length in seconds.
func (e *Editor) Duration() float64 {
	return e.format.Seconds(e.frameCount)
}

// OriginalDuration is the length in seconds when the buffer was loaded.
func (e *Editor) OriginalDuration() float64 {
	return e.originalDuration
}

// Clip exposes the current buffer for encoding. The returned clip shares
// memory with the editor and is only valid until the next edit.
func (e *Editor) Clip() *audio.Clip {
	return &audio.Clip{Format: e.format, Data: e.frames}
}

func (e *Editor) Info() Info {
	return Info{
		DurationSeconds:         e.Duration(),
		Channels:                e.format.Channels,
		SampleRateHz:            e.format.SampleRate,
		SampleWidthBytes:        e.format.SampleWidth,
		BitDepth:                e.format.BitDepth(),
		OriginalDurationSeconds: e.originalDuration,
	}
}

// Trim keeps the frames between start and end seconds.
//
// Checks run in order and the first failure wins: bounds must be numbers,
// start must not be negative, end must be after start and start must not be
// past the end of the buffer. An end past the buffer is clamped to it. Both
// bounds are converted to frames by truncation, floor(seconds * rate).
func (e *Editor) Trim(start, end float64) error {
	switch duration := e.Duration(); {
	case math.IsNaN(start) || math.IsNaN(end):
		return rangeError("bounds must be numbers")
	case start < 0:
		return rangeError("start negative")
	case end <= start:
		return rangeError("end not after start")
	case start > duration:
		return rangeError("start beyond duration")
	}

	startFrame := e.frameIndex(start)
	endFrame := e.frameIndex(end)

	frameSize := e.format.FrameSize()
	e.frames = e.frames[startFrame*frameSize : endFrame*frameSize]
	e.frameCount = endFrame - startFrame

	return nil
}

// frameIndex truncates seconds to a frame index within the buffer. A time at
// or past the end maps to the frame count exactly, float error in
// frameCount/rate*rate must not drop the last frame.
func (e *Editor) frameIndex(seconds float64) int {
	if seconds >= e.Duration() {
		return e.frameCount
	}

	return min(int(math.Floor(seconds*float64(e.format.SampleRate))), e.frameCount)
}

// ChangeGain scales every sample by 10^(db/20), rounding to the nearest
// integer and clipping to the range of the sample width. There is no limit
// on db, extreme values saturate.
func (e *Editor) ChangeGain(db float64) error {
	kind, err := audio.SampleKindForWidth(e.format.SampleWidth)
	if err != nil {
		return &audio.Error{Kind: audio.ErrUnsupportedSampleWidth, Op: "gain", Err: err}
	}

	factor := utils.DBToLinear(db)
	lo, hi := kind.Min(), kind.Max()

	for i := range kind.Len(e.frames) {
		s := kind.Load(e.frames, i)
		kind.Store(e.frames, i, utils.RoundClip(float64(s)*factor, lo, hi))
	}

	return nil
}

func rangeError(detail string) error {
	return &audio.Error{Kind: audio.ErrInvalidRange, Op: "trim", Detail: detail}
}
