// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	"github.com/ik5/pcmedit/audio"
)

// Export writes clip as a big-endian AIFF file. Samples keep their value,
// only the byte order changes. Sample widths other than 1 to 4 bytes fail
// with audio.ErrUnsupportedSampleWidth before anything is written.
func Export(w io.WriteSeeker, clip *audio.Clip) error {
	if clip == nil {
		return fmt.Errorf("%w: nil clip", audio.ErrMalformedContainer)
	}

	f := clip.Format
	if err := f.Validate(); err != nil {
		return err
	}

	if len(clip.Data)%f.FrameSize() != 0 {
		return ErrPartialFrame
	}

	buf, err := clip.IntBuffer()
	if err != nil {
		return err
	}

	enc := aiff.NewEncoder(w, f.SampleRate, f.BitDepth(), f.Channels)

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing aiff data: %w", err)
	}

	// SSND must end on an even offset; the pad byte is outside the chunk size.
	if len(clip.Data)%2 == 1 {
		if err := enc.AddBE(uint8(0)); err != nil {
			return fmt.Errorf("padding aiff data: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing aiff encoder: %w", err)
	}

	return nil
}
