// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// IntBuffer widens the little-endian samples of c into a go-audio buffer,
// the input of the go-audio encoders. Converting back to the same bit depth
// yields the original bytes. Only widths of 1 to 4 bytes fit an int sample.
func (c *Clip) IntBuffer() (*goaudio.IntBuffer, error) {
	width := c.Format.SampleWidth
	if width < 1 || width > 4 {
		return nil, fmt.Errorf("%w: %d bytes", ErrUnsupportedSampleWidth, width)
	}

	data := make([]int, len(c.Data)/width)
	for i := range data {
		b := c.Data[i*width : (i+1)*width]

		switch width {
		case 1:
			data[i] = int(int8(b[0]))
		case 2:
			data[i] = int(int16(binary.LittleEndian.Uint16(b)))
		case 3:
			data[i] = int(goaudio.Int24LETo32(b))
		case 4:
			data[i] = int(int32(binary.LittleEndian.Uint32(b)))
		}
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: c.Format.Channels,
			SampleRate:  c.Format.SampleRate,
		},
		Data:           data,
		SourceBitDepth: c.Format.BitDepth(),
	}, nil
}
