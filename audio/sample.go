// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"encoding/binary"
	"fmt"
	"math"
)

// SampleKind is one of the signed integer sample encodings the editor can do
// arithmetic on. Each kind carries its width and clipping bounds.
type SampleKind struct {
	name  string
	width int
	min   int64
	max   int64
}

var (
	Int8  = SampleKind{name: "int8", width: 1, min: math.MinInt8, max: math.MaxInt8}
	Int16 = SampleKind{name: "int16", width: 2, min: math.MinInt16, max: math.MaxInt16}
	Int32 = SampleKind{name: "int32", width: 4, min: math.MinInt32, max: math.MaxInt32}
)

// SampleKindForWidth maps a sample width in bytes to its kind.
// Widths other than 1, 2 and 4 fail with ErrUnsupportedSampleWidth.
func SampleKindForWidth(width int) (SampleKind, error) {
	switch width {
	case 1:
		return Int8, nil
	case 2:
		return Int16, nil
	case 4:
		return Int32, nil
	default:
		return SampleKind{}, fmt.Errorf("%w: %d bytes", ErrUnsupportedSampleWidth, width)
	}
}

func (k SampleKind) Width() int     { return k.width }
func (k SampleKind) Min() int64     { return k.min }
func (k SampleKind) Max() int64     { return k.max }
func (k SampleKind) String() string { return k.name }

// Len is the number of samples held in b.
func (k SampleKind) Len(b []byte) int { return len(b) / k.width }

// Load returns the i-th little-endian sample of b.
func (k SampleKind) Load(b []byte, i int) int64 {
	off := i * k.width

	switch k.width {
	case 1:
		return int64(int8(b[off]))
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(b[off:])))
	default:
		return int64(int32(binary.LittleEndian.Uint32(b[off:])))
	}
}

// Store writes v as the i-th little-endian sample of b.
// v must already be within [Min, Max].
func (k SampleKind) Store(b []byte, i int, v int64) {
	off := i * k.width

	switch k.width {
	case 1:
		b[off] = byte(int8(v))
	case 2:
		binary.LittleEndian.PutUint16(b[off:], uint16(int16(v)))
	default:
		binary.LittleEndian.PutUint32(b[off:], uint32(int32(v)))
	}
}
