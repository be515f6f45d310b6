// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"math"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/pcmedit/audio"
)

// RIFF size field = 4 (form type) + 24 (fmt chunk) + 8 (data header) + payload
const maxPayload = math.MaxUint32 - 36 - 1

// Encode writes clip as a canonical PCM WAV container. The sizes in the
// header are patched once the payload is written, which is why w must seek.
// Samples of 1 to 4 bytes go through the go-audio encoder, wider samples are
// written by WritePCM.
func (Codec) Encode(w io.WriteSeeker, clip *audio.Clip) error {
	if err := checkClip(clip); err != nil {
		return err
	}

	buf, err := clip.IntBuffer()
	if err != nil {
		// wider than an int sample
		return WritePCM(w, clip)
	}

	f := clip.Format
	enc := gowav.NewEncoder(w, f.SampleRate, f.BitDepth(), f.Channels, wavFormatPCM)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("%w", err)
	}

	// The encoder does not word align the data chunk. The pad byte counts
	// towards the RIFF size but not the data size.
	if len(clip.Data)%2 == 1 {
		if err := enc.AddLE(uint8(0)); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func checkClip(clip *audio.Clip) error {
	if clip == nil {
		return fmt.Errorf("%w: nil clip", audio.ErrMalformedContainer)
	}

	if err := clip.Format.Validate(); err != nil {
		return err
	}

	if len(clip.Data)%clip.Format.FrameSize() != 0 {
		return ErrPartialFrame
	}

	if uint64(len(clip.Data)) > maxPayload {
		return ErrTooLarge
	}

	return nil
}
