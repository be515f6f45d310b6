// SPDX-License-Identifier: EPL-2.0

// Package pcmedit edits uncompressed PCM WAV files: load a file, trim it to
// a time range, change its volume and save it again.
//
// # Quick Start
//
//	s := pcmedit.NewSession()
//	if err := s.Load("speech.wav"); err != nil {
//	    fmt.Println(pcmedit.Describe(err))
//	    return
//	}
//
//	_ = s.Trim(0.5, 1.5)   // keep one second
//	_ = s.ChangeGain(-6)   // roughly halve the amplitude
//
//	written, err := s.Save("speech-edited") // ".wav" is appended
//
// # Layers
//
// Session is the API a user interface talks to. It owns one editor.Editor,
// logs what happens with logrus and refuses edits before a file is loaded.
//
// Decode and Encode work on paths and map failures onto the error kinds of
// the audio package. The container format itself is handled by
// formats/wav; formats/aiff can export the edited buffer as AIFF.
//
// # Errors
//
// Every failure matches one of audio.ErrFileNotFound,
// audio.ErrUnsupportedFormat, audio.ErrMalformedContainer,
// audio.ErrInvalidRange, audio.ErrUnsupportedSampleWidth or
// audio.ErrWriteFailure through errors.Is, or ErrNothingLoaded. A failed
// call never changes the loaded buffer. Describe renders any of them as a
// single line for the user.
//
// # Volume Confirmation
//
// ChangeGain accepts any decibel value and clips samples that overflow.
// GainNeedsConfirmation tells a user interface when a change is large enough
// (more than 50 dB either way) to be worth a confirmation prompt.
package pcmedit
