// SPDX-License-Identifier: EPL-2.0

package pcmedit

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/pcmedit/audio"
	"github.com/ik5/pcmedit/formats/aiff"
	"github.com/ik5/pcmedit/formats/wav"
)

const (
	wavExt  = ".wav"
	aiffExt = ".aiff"
)

var registry = newRegistry()

func newRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register(wavExt, wav.Codec{})

	return r
}

// RegisterCodec makes Decode accept files with the extension ext.
func RegisterCodec(ext string, c audio.Codec) {
	registry.Register(ext, c)
}

// Decode reads the container at path.
//
// The extension is checked before the file is touched: anything without a
// registered codec fails with audio.ErrUnsupportedFormat. A path that cannot
// be opened, or is a directory, fails with audio.ErrFileNotFound, and content
// the codec rejects with audio.ErrMalformedContainer.
func Decode(path string) (*audio.Clip, error) {
	ext := filepath.Ext(path)

	codec, ok := registry.Get(ext)
	if !ok {
		return nil, &audio.Error{
			Kind:   audio.ErrUnsupportedFormat,
			Op:     "decode",
			Path:   path,
			Detail: fmt.Sprintf("extension %q", ext),
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &audio.Error{Kind: audio.ErrFileNotFound, Op: "decode", Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &audio.Error{Kind: audio.ErrFileNotFound, Op: "decode", Path: path, Err: err}
	}

	if info.IsDir() {
		return nil, &audio.Error{Kind: audio.ErrFileNotFound, Op: "decode", Path: path, Detail: "is a directory"}
	}

	clip, err := codec.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, &audio.Error{Kind: kindOr(err, audio.ErrMalformedContainer), Op: "decode", Path: path, Err: err}
	}

	return clip, nil
}

// Encode writes clip as WAV to path, appending ".wav" when path has another
// extension, and returns the path written. An existing file is overwritten.
// I/O errors fail with audio.ErrWriteFailure.
func Encode(path string, clip *audio.Clip) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), wavExt) {
		path += wavExt
	}

	codec, _ := registry.Get(wavExt)

	return path, writeFile("encode", path, func(w io.WriteSeeker) error {
		return codec.Encode(w, clip)
	})
}

// ExportAIFF writes clip as AIFF to path, appending ".aiff" unless path ends
// in ".aif" or ".aiff", and returns the path written.
func ExportAIFF(path string, clip *audio.Clip) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".aif", aiffExt:
	default:
		path += aiffExt
	}

	return path, writeFile("export", path, func(w io.WriteSeeker) error {
		return aiff.Export(w, clip)
	})
}

// writeFile creates path and hands it to write. A file left behind by a
// failed write is not removed.
func writeFile(op, path string, write func(io.WriteSeeker) error) error {
	f, err := os.Create(path)
	if err != nil {
		return &audio.Error{Kind: audio.ErrWriteFailure, Op: op, Path: path, Err: err}
	}

	if err := write(f); err != nil {
		f.Close()
		return &audio.Error{Kind: kindOr(err, audio.ErrWriteFailure), Op: op, Path: path, Err: err}
	}

	if err := f.Close(); err != nil {
		return &audio.Error{Kind: audio.ErrWriteFailure, Op: op, Path: path, Err: err}
	}

	return nil
}

func kindOr(err, fallback error) error {
	if kind := audio.KindOf(err); kind != nil {
		return kind
	}

	return fallback
}
