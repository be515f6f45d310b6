// SPDX-License-Identifier: EPL-2.0

// Package editor applies destructive edits to one decoded PCM buffer.
//
// An Editor is built from a decoded audio.Clip and supports two edits:
//
//   - Trim keeps a time range of the buffer.
//   - ChangeGain scales every sample by a decibel amount with hard clipping.
//
// Samples are interpreted as signed little-endian integers of 1, 2 or 4
// bytes. Other widths can be loaded and trimmed but ChangeGain rejects them
// with audio.ErrUnsupportedSampleWidth.
//
// OriginalDuration keeps the duration measured at load time and is not
// updated by Trim.
package editor
