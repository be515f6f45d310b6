// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"

	"github.com/ik5/pcmedit/audio"
)

// Chunk is a raw RIFF sub chunk.
type Chunk struct {
	ID   string
	Data []byte
}

// BuildRIFF assembles a RIFF container of the given form type ("WAVE").
// Odd sized chunks get a zero pad byte.
func BuildRIFF(formType string, chunks ...Chunk) []byte {
	body := new(bytes.Buffer)
	body.WriteString(formType)

	for _, c := range chunks {
		body.WriteString(c.ID)
		binary.Write(body, binary.LittleEndian, uint32(len(c.Data)))
		body.Write(c.Data)
		if len(c.Data)%2 == 1 {
			body.WriteByte(0)
		}
	}

	buf := new(bytes.Buffer)
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(body.Len()))
	buf.Write(body.Bytes())

	return buf.Bytes()
}

// FmtChunk builds a 16 byte "fmt " chunk for format with the given format tag
// (1 = PCM).
func FmtChunk(tag uint16, format audio.Format) Chunk {
	buf := new(bytes.Buffer)

	blockAlign := uint16(format.FrameSize())
	byteRate := uint32(format.SampleRate) * uint32(blockAlign)

	binary.Write(buf, binary.LittleEndian, tag)
	binary.Write(buf, binary.LittleEndian, uint16(format.Channels))
	binary.Write(buf, binary.LittleEndian, uint32(format.SampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, uint16(format.BitDepth()))

	return Chunk{ID: "fmt ", Data: buf.Bytes()}
}

// ExtensibleFmtChunk builds a 40 byte WAVE_FORMAT_EXTENSIBLE "fmt " chunk
// whose sub format GUID starts with subFormat (1 = PCM).
func ExtensibleFmtChunk(subFormat uint16, format audio.Format) Chunk {
	base := FmtChunk(0xFFFE, format)
	buf := bytes.NewBuffer(base.Data)

	binary.Write(buf, binary.LittleEndian, uint16(22))                 // extension size
	binary.Write(buf, binary.LittleEndian, uint16(format.BitDepth())) // valid bits
	binary.Write(buf, binary.LittleEndian, uint32(0))                 // channel mask
	binary.Write(buf, binary.LittleEndian, subFormat)
	buf.Write([]byte{
		0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x80, 0x00,
		0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71,
	})

	return Chunk{ID: "fmt ", Data: buf.Bytes()}
}

// DataChunk builds a "data" chunk holding pcm.
func DataChunk(pcm []byte) Chunk {
	return Chunk{ID: "data", Data: pcm}
}

// WAVFile builds a canonical PCM WAV file for clip.
func WAVFile(clip *audio.Clip) []byte {
	return BuildRIFF("WAVE", FmtChunk(1, clip.Format), DataChunk(clip.Data))
}
