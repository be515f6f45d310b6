// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/ik5/pcmedit/audio"
)

const headerSize = 44

// WritePCM writes clip as a canonical PCM WAV in a single pass, so w does
// not need to seek. Any sample width is accepted. An odd sized payload is
// followed by a zero pad byte.
func WritePCM(w io.Writer, clip *audio.Clip) error {
	if err := checkClip(clip); err != nil {
		return err
	}

	f := clip.Format
	numChannels := uint16(f.Channels)
	bitsPerSample := uint16(f.BitDepth())
	blockAlign := uint16(f.FrameSize())
	byteRate := uint32(f.SampleRate) * uint32(blockAlign)
	dataSize := uint32(len(clip.Data))
	padSize := dataSize % 2
	riffSize := 36 + dataSize + padSize

	// Pre-allocate buffer for entire header (44 bytes)
	header := make([]byte, headerSize)

	// RIFF header (12 bytes)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], riffSize)
	copy(header[8:12], "WAVE")

	// fmt chunk (24 bytes)
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], pcmFmtChunkSize)
	binary.LittleEndian.PutUint16(header[20:22], wavFormatPCM)
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(f.SampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)

	// data chunk header (8 bytes)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	if _, err := w.Write(clip.Data); err != nil {
		return fmt.Errorf("%w", err)
	}

	if padSize > 0 {
		if _, err := w.Write([]byte{0}); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}
