// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ik5/pcmedit/audio"
	"github.com/ik5/pcmedit/internal/audiotest"
)

func TestWritePCM_Header(t *testing.T) {
	t.Parallel()

	clip := audiotest.NewClip(audio.Format{Channels: 1, SampleWidth: 2, SampleRate: 8000}, 4, audiotest.Ramp(100))

	buf := new(bytes.Buffer)
	if err := WritePCM(buf, clip); err != nil {
		t.Fatalf("WritePCM() error = %v", err)
	}

	data := buf.Bytes()

	if len(data) != headerSize+8 {
		t.Fatalf("len = %d, want %d", len(data), headerSize+8)
	}

	// Check RIFF header
	if string(data[0:4]) != "RIFF" {
		t.Errorf("RIFF marker = %q, want %q", data[0:4], "RIFF")
	}

	if got := binary.LittleEndian.Uint32(data[4:8]); got != 44 {
		t.Errorf("RIFF size = %d, want 44", got)
	}

	if string(data[8:12]) != "WAVE" {
		t.Errorf("WAVE marker = %q, want %q", data[8:12], "WAVE")
	}

	if got := binary.LittleEndian.Uint16(data[20:22]); got != 1 {
		t.Errorf("format tag = %d, want 1 (PCM)", got)
	}

	if got := binary.LittleEndian.Uint32(data[28:32]); got != 16000 {
		t.Errorf("byte rate = %d, want 16000", got)
	}

	if got := binary.LittleEndian.Uint16(data[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}

	if got := binary.LittleEndian.Uint32(data[40:44]); got != 8 {
		t.Errorf("data size = %d, want 8", got)
	}

	if !bytes.Equal(data[44:], clip.Data) {
		t.Errorf("payload = % x, want % x", data[44:], clip.Data)
	}
}

func TestWritePCM_OddPayloadIsPadded(t *testing.T) {
	t.Parallel()

	clip := &audio.Clip{
		Format: audio.Format{Channels: 1, SampleWidth: 1, SampleRate: 8000},
		Data:   []byte{1, 2, 3},
	}

	buf := new(bytes.Buffer)
	if err := WritePCM(buf, clip); err != nil {
		t.Fatalf("WritePCM() error = %v", err)
	}

	data := buf.Bytes()

	if len(data) != headerSize+4 {
		t.Fatalf("len = %d, want %d", len(data), headerSize+4)
	}

	if got := binary.LittleEndian.Uint32(data[40:44]); got != 3 {
		t.Errorf("data size = %d, want 3 (pad byte excluded)", got)
	}

	if got := binary.LittleEndian.Uint32(data[4:8]); got != 40 {
		t.Errorf("RIFF size = %d, want 40 (pad byte included)", got)
	}

	if data[len(data)-1] != 0 {
		t.Errorf("pad byte = %d, want 0", data[len(data)-1])
	}

	got, err := Codec{}.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if !bytes.Equal(got.Data, clip.Data) {
		t.Errorf("Data = % x, want % x", got.Data, clip.Data)
	}
}

func TestWritePCM_WideSamples(t *testing.T) {
	t.Parallel()

	format := audio.Format{Channels: 2, SampleWidth: 8, SampleRate: 8000}
	clip := audiotest.NewClip(format, 5, audiotest.Ramp(1<<40))

	buf := new(bytes.Buffer)
	if err := WritePCM(buf, clip); err != nil {
		t.Fatalf("WritePCM() error = %v", err)
	}

	got, err := Codec{}.Decode(buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got.Format != format {
		t.Errorf("Format = %+v, want %+v", got.Format, format)
	}

	if !bytes.Equal(got.Data, clip.Data) {
		t.Error("Data differs after round trip")
	}
}

func TestWritePCM_WriteErrors(t *testing.T) {
	t.Parallel()

	errWrite := errors.New("write failed")
	clip := audiotest.NewClip(audio.Format{Channels: 1, SampleWidth: 1, SampleRate: 8000}, 3, audiotest.Ramp(1))

	tests := []struct {
		name  string
		limit int
	}{
		{"header", 0},
		{"payload", headerSize},
		{"pad byte", headerSize + 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fw := &audiotest.FailingWriter{Limit: tt.limit, Err: errWrite}

			if err := WritePCM(fw, clip); !errors.Is(err, errWrite) {
				t.Errorf("WritePCM() error = %v, want %v", err, errWrite)
			}
		})
	}
}

func TestWritePCM_InvalidClip(t *testing.T) {
	t.Parallel()

	if err := WritePCM(new(bytes.Buffer), nil); !errors.Is(err, audio.ErrMalformedContainer) {
		t.Errorf("WritePCM(nil) error = %v, want ErrMalformedContainer", err)
	}
}

// BenchmarkWritePCM benchmarks the single pass writer
func BenchmarkWritePCM(b *testing.B) {
	clip := audiotest.NewClip(audio.Format{Channels: 1, SampleWidth: 2, SampleRate: 16000}, 16000, audiotest.Ramp(1))
	buf := bytes.NewBuffer(make([]byte, 0, headerSize+len(clip.Data)+1))

	b.ReportAllocs()

	for b.Loop() {
		buf.Reset()
		_ = WritePCM(buf, clip)
	}
}
