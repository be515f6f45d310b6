// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes uncompressed PCM WAV containers.
//
// Decoding walks the RIFF chunks with github.com/go-audio/riff and keeps the
// payload of the data chunk as raw bytes, so a decoded clip can be written
// back without touching a single sample. Encoding of 8, 16, 24 and 32 bit
// clips goes through github.com/go-audio/wav; other widths are written by
// WritePCM.
//
// # Supported Formats
//
//   - Format tag 1 (PCM), and WAVE_FORMAT_EXTENSIBLE with a PCM sub format
//   - Any channel count, sample rate and whole-byte sample width
//
// Compressed or floating point payloads are rejected with ErrNotPCM.
//
// # Decoding
//
//	f, _ := os.Open("audio.wav")
//	clip, err := wav.Codec{}.Decode(f)
//	if errors.Is(err, audio.ErrMalformedContainer) {
//	    // not a usable WAV file
//	}
//
// Chunks other than "fmt " and "data" are skipped. A data chunk cut short
// by the end of the file is accepted, and a trailing partial frame dropped.
//
// # Encoding
//
// Codec.Encode writes a canonical 44 byte header followed by the payload.
// It needs an io.WriteSeeker because the sizes are patched after the payload
// is written. WritePCM produces the same layout in a single pass for
// writers that cannot seek, such as a pipe.
//
// # Errors
//
// Every error returned while decoding matches audio.ErrMalformedContainer.
// The package specific errors (ErrNotWavFile, ErrNotPCM, ...) tell the
// reasons apart.
package wav
