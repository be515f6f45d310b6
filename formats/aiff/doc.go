// SPDX-License-Identifier: EPL-2.0

// Package aiff exports edited clips as AIFF (Audio Interchange File Format)
// files, the big-endian counterpart of WAV used on macOS.
//
// Encoding goes through github.com/go-audio/aiff:
//
//	f, _ := os.Create("edited.aiff")
//	defer f.Close()
//	if err := aiff.Export(f, clip); err != nil {
//	    // Handle error
//	}
//
// Export needs an io.WriteSeeker because the chunk sizes are written once
// the samples are known.
//
// # Supported Formats
//
//   - 8, 16, 24 and 32 bit signed PCM
//   - Any channel count and sample rate
//
// Wider samples are rejected with audio.ErrUnsupportedSampleWidth.
package aiff
