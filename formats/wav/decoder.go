// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
	"github.com/ik5/pcmedit/audio"
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE

	pcmFmtChunkSize        = 16
	extensibleFmtChunkSize = 40
)

// Codec reads and writes uncompressed PCM WAV containers.
type Codec struct{}

// Decode parses a RIFF/WAVE container and returns its format and the raw
// payload of the data chunk. Chunks other than "fmt " and "data" are skipped.
func (Codec) Decode(r io.Reader) (*audio.Clip, error) {
	parser := riff.New(r)

	id, _, err := parser.IDnSize()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
	}

	if id != riff.RiffID {
		return nil, ErrNotWavFile
	}

	if err := binary.Read(r, binary.BigEndian, &parser.Format); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
	}

	if parser.Format != riff.WavFormatID {
		return nil, ErrNotWavFile
	}

	var (
		format  audio.Format
		haveFmt bool
	)

	for {
		id, size, err := parser.IDnSize()
		if err == io.EOF {
			return nil, ErrMissingDataChunk
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
		}

		chunk := &riff.Chunk{
			ID:   id,
			Size: int(size),
			R:    io.LimitReader(r, int64(size)),
		}

		switch chunk.ID {
		case riff.FmtID:
			format, err = decodeFmtChunk(chunk)
			if err != nil {
				return nil, err
			}
			haveFmt = true

		case riff.DataFormatID:
			if !haveFmt {
				return nil, ErrMissingFmtChunk
			}

			// A payload cut short by the end of the file is kept.
			data, err := io.ReadAll(chunk)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
			}

			whole := len(data) - len(data)%format.FrameSize()

			return &audio.Clip{Format: format, Data: data[:whole]}, nil

		default:
			chunk.Drain()
		}

		// all RIFF chunks must be word aligned, the pad byte is not part of the size.
		if size%2 == 1 {
			if _, err := io.CopyN(io.Discard, r, 1); err != nil {
				return nil, ErrMissingDataChunk
			}
		}
	}
}

func decodeFmtChunk(chunk *riff.Chunk) (audio.Format, error) {
	if chunk.Size < pcmFmtChunkSize {
		return audio.Format{}, fmt.Errorf("%w: %d bytes", ErrBadFmtChunk, chunk.Size)
	}

	var (
		formatTag      uint16
		numChannels    uint16
		sampleRate     uint32
		avgBytesPerSec uint32
		blockAlign     uint16
		bitsPerSample  uint16
	)

	for _, dst := range []any{&formatTag, &numChannels, &sampleRate, &avgBytesPerSec, &blockAlign, &bitsPerSample} {
		if err := chunk.ReadLE(dst); err != nil {
			return audio.Format{}, fmt.Errorf("%w: %w", ErrBadFmtChunk, err)
		}
	}

	if formatTag == wavFormatExtensible {
		subFormat, err := decodeExtensibleSubFormat(chunk)
		if err != nil {
			return audio.Format{}, err
		}
		formatTag = subFormat
	}

	chunk.Drain()

	if formatTag != wavFormatPCM {
		return audio.Format{}, fmt.Errorf("%w: format tag %#04x", ErrNotPCM, formatTag)
	}

	format := audio.Format{
		Channels:    int(numChannels),
		SampleWidth: (int(bitsPerSample) + 7) / 8,
		SampleRate:  int(sampleRate),
	}

	if format.Validate() != nil {
		return audio.Format{}, fmt.Errorf("%w: %d channels, %d Hz, %d bits",
			ErrBadFmtChunk, numChannels, sampleRate, bitsPerSample)
	}

	return format, nil
}

// decodeExtensibleSubFormat reads the WAVE_FORMAT_EXTENSIBLE fields and
// returns the format tag embedded in the sub format GUID.
func decodeExtensibleSubFormat(chunk *riff.Chunk) (uint16, error) {
	if chunk.Size < extensibleFmtChunkSize {
		return 0, fmt.Errorf("%w: extensible fmt of %d bytes", ErrBadFmtChunk, chunk.Size)
	}

	var (
		extraSize          uint16
		validBitsPerSample uint16
		channelMask        uint32
		subFormat          [16]byte
	)

	for _, dst := range []any{&extraSize, &validBitsPerSample, &channelMask, &subFormat} {
		if err := chunk.ReadLE(dst); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBadFmtChunk, err)
		}
	}

	if extraSize < extensibleFmtChunkSize-pcmFmtChunkSize-2 {
		return 0, fmt.Errorf("%w: extension size %d", ErrBadFmtChunk, extraSize)
	}

	return binary.LittleEndian.Uint16(subFormat[:2]), nil
}
