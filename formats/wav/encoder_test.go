// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/pcmedit/audio"
	"github.com/ik5/pcmedit/internal/audiotest"
)

func TestEncoder_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		format   audio.Format
		waveform audiotest.Waveform
	}{
		{"8-bit mono", audio.Format{Channels: 1, SampleWidth: 1, SampleRate: 8000}, audiotest.Ramp(7)},
		{"16-bit mono sine", audio.Format{Channels: 1, SampleWidth: 2, SampleRate: 16000}, audiotest.Sine(16000, 440, 20000)},
		{"16-bit stereo", audio.Format{Channels: 2, SampleWidth: 2, SampleRate: 44100}, audiotest.Ramp(-129)},
		{"24-bit stereo", audio.Format{Channels: 2, SampleWidth: 3, SampleRate: 48000}, audiotest.Ramp(40000)},
		{"32-bit mono", audio.Format{Channels: 1, SampleWidth: 4, SampleRate: 96000}, audiotest.Ramp(-1 << 20)},
		{"40-bit mono", audio.Format{Channels: 1, SampleWidth: 5, SampleRate: 8000}, audiotest.Ramp(1 << 33)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			want := audiotest.NewClip(tt.format, 64, tt.waveform)

			ws := new(audiotest.WriteSeeker)
			require.NoError(t, Codec{}.Encode(ws, want))

			got, err := Codec{}.Decode(bytes.NewReader(ws.Bytes()))
			require.NoError(t, err)

			assert.Equal(t, want.Format, got.Format)
			assert.Equal(t, want.Data, got.Data)
		})
	}
}

func TestEncoder_CanonicalHeader(t *testing.T) {
	t.Parallel()

	clip := audiotest.NewClip(audio.Format{Channels: 2, SampleWidth: 2, SampleRate: 22050}, 10, audiotest.Ramp(3))

	ws := new(audiotest.WriteSeeker)
	require.NoError(t, Codec{}.Encode(ws, clip))

	out := ws.Bytes()
	require.Len(t, out, headerSize+len(clip.Data))

	assert.Equal(t, "RIFF", string(out[0:4]))
	assert.Equal(t, uint32(len(out)-8), binary.LittleEndian.Uint32(out[4:8]))
	assert.Equal(t, "WAVE", string(out[8:12]))
	assert.Equal(t, "fmt ", string(out[12:16]))
	assert.Equal(t, uint32(16), binary.LittleEndian.Uint32(out[16:20]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(out[20:22]))
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(out[22:24]))
	assert.Equal(t, uint32(22050), binary.LittleEndian.Uint32(out[24:28]))
	assert.Equal(t, uint32(22050*4), binary.LittleEndian.Uint32(out[28:32]))
	assert.Equal(t, uint16(4), binary.LittleEndian.Uint16(out[32:34]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(out[34:36]))
	assert.Equal(t, "data", string(out[36:40]))
	assert.Equal(t, uint32(len(clip.Data)), binary.LittleEndian.Uint32(out[40:44]))
	assert.Equal(t, clip.Data, out[44:])
}

func TestEncoder_EmptyPayload(t *testing.T) {
	t.Parallel()

	clip := &audio.Clip{Format: audio.Format{Channels: 1, SampleWidth: 2, SampleRate: 8000}}

	ws := new(audiotest.WriteSeeker)
	require.NoError(t, Codec{}.Encode(ws, clip))

	got, err := Codec{}.Decode(bytes.NewReader(ws.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, clip.Format, got.Format)
	assert.Zero(t, got.FrameCount())
}

func TestEncoder_OddPayloadIsPadded(t *testing.T) {
	t.Parallel()

	clip := &audio.Clip{
		Format: audio.Format{Channels: 1, SampleWidth: 1, SampleRate: 8000},
		Data:   []byte{1, 2, 3},
	}

	path := filepath.Join(t.TempDir(), "odd.wav")

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Codec{}.Encode(f, clip))
	require.NoError(t, f.Close())

	out, err := os.ReadFile(path)
	require.NoError(t, err)

	require.Len(t, out, headerSize+4)
	assert.Equal(t, uint32(3), binary.LittleEndian.Uint32(out[40:44]), "data size excludes the pad byte")
	assert.Equal(t, uint32(40), binary.LittleEndian.Uint32(out[4:8]), "RIFF size includes the pad byte")
	assert.Zero(t, out[len(out)-1])

	streamed := new(bytes.Buffer)
	require.NoError(t, WritePCM(streamed, clip))
	assert.Equal(t, streamed.Bytes(), out, "Encode and WritePCM write the same container")

	got, err := Codec{}.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, clip.Data, got.Data)
}

func TestEncoder_Odd24BitFrames(t *testing.T) {
	t.Parallel()

	clip := audiotest.NewClip(audio.Format{Channels: 1, SampleWidth: 3, SampleRate: 48000}, 7, audiotest.Ramp(-5000))

	ws := new(audiotest.WriteSeeker)
	require.NoError(t, Codec{}.Encode(ws, clip))

	out := ws.Bytes()
	require.Len(t, out, headerSize+len(clip.Data)+1)
	assert.Equal(t, uint32(len(out)-8), binary.LittleEndian.Uint32(out[4:8]))
	assert.Equal(t, uint32(21), binary.LittleEndian.Uint32(out[40:44]))
}

func TestEncoder_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.wav")
	clip := audiotest.NewClip(audio.Format{Channels: 1, SampleWidth: 2, SampleRate: 16000}, 1600, audiotest.Sine(16000, 1000, 8000))

	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, Codec{}.Encode(f, clip))
	require.NoError(t, f.Close())

	f, err = os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := Codec{}.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, clip.Data, got.Data)
}

func TestEncoder_InvalidClip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		clip *audio.Clip
		want error
	}{
		{"nil clip", nil, audio.ErrMalformedContainer},
		{"zero channels", &audio.Clip{Format: audio.Format{SampleWidth: 2, SampleRate: 8000}}, audio.ErrMalformedContainer},
		{"zero width", &audio.Clip{Format: audio.Format{Channels: 1, SampleRate: 8000}}, audio.ErrMalformedContainer},
		{"partial frame", &audio.Clip{Format: audio.Format{Channels: 2, SampleWidth: 2, SampleRate: 8000}, Data: make([]byte, 6)}, ErrPartialFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ws := new(audiotest.WriteSeeker)
			err := Codec{}.Encode(ws, tt.clip)

			require.ErrorIs(t, err, tt.want)
			assert.Empty(t, ws.Bytes(), "nothing is written for an invalid clip")
		})
	}
}

func TestEncoder_WriteFailure(t *testing.T) {
	t.Parallel()

	errDiskFull := errors.New("disk full")
	clip := audiotest.NewClip(audio.Format{Channels: 1, SampleWidth: 2, SampleRate: 8000}, 100, audiotest.Ramp(1))

	fw := &audiotest.FailingWriter{Limit: 10, Err: errDiskFull}

	require.Error(t, Codec{}.Encode(fw, clip))
}

// BenchmarkEncoder_Encode benchmarks encoding one second of 16-bit stereo.
func BenchmarkEncoder_Encode(b *testing.B) {
	clip := audiotest.NewClip(audio.Format{Channels: 2, SampleWidth: 2, SampleRate: 44100}, 44100, audiotest.Ramp(1))

	b.ReportAllocs()

	for b.Loop() {
		ws := new(audiotest.WriteSeeker)
		_ = Codec{}.Encode(ws, clip)
	}
}
