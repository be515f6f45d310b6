// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core data model shared by the codecs and the
// editor.
//
// This package contains:
//   - Format, the immutable layout of a loaded clip
//   - Clip, a decoded container (format + raw sample bytes)
//   - Clip.IntBuffer, the conversion fed to the go-audio encoders
//   - SampleKind, the signed integer sample encodings gain can work on
//   - Codec interfaces and a Registry keyed by file extension
//   - The error kinds reported by every operation
//
// # Clips
//
// A Clip holds raw interleaved PCM bytes exactly as they were stored in the
// container, little-endian:
//
//	clip := &audio.Clip{
//	    Format: audio.Format{Channels: 2, SampleWidth: 2, SampleRate: 44100},
//	    Data:   pcm,
//	}
//	frames := clip.FrameCount()
//
// A frame is one sample per channel at a single instant, so a stereo 16-bit
// frame takes four bytes.
//
// # Sample Kinds
//
// Sample arithmetic is only defined for 8, 16 and 32-bit signed samples:
//
//	kind, err := audio.SampleKindForWidth(clip.Format.SampleWidth)
//	if err != nil {
//	    // errors.Is(err, audio.ErrUnsupportedSampleWidth)
//	}
//	s := kind.Load(clip.Data, 0)
//	kind.Store(clip.Data, 0, min(s*2, kind.Max()))
//
// Each kind carries its own clipping bounds, Min and Max.
//
// # Codec Registry
//
// The registry maps file extensions to container codecs:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Codec{})
//	codec, ok := registry.Get(".WAV")
//
// Lookups ignore case and a leading dot.
//
// # Error Handling
//
// Failures are reported as one of six kinds:
//   - ErrFileNotFound
//   - ErrUnsupportedFormat
//   - ErrMalformedContainer
//   - ErrInvalidRange
//   - ErrUnsupportedSampleWidth
//   - ErrWriteFailure
//
// Operations usually return an *Error that records the operation, the path
// and the cause and unwraps to its kind. Use errors.Is to test for a kind or
// KindOf to find it:
//
//	if errors.Is(err, audio.ErrInvalidRange) {
//	    // ...
//	}
package audio
