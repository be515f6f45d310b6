// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"fmt"
	"io"
)

// WriteSeeker implements io.WriteSeeker for in-memory data
type WriteSeeker struct {
	data   []byte
	offset int64
}

func (ws *WriteSeeker) Write(p []byte) (int, error) {
	end := ws.offset + int64(len(p))
	if end > int64(len(ws.data)) {
		grown := make([]byte, end)
		copy(grown, ws.data)
		ws.data = grown
	}

	n := copy(ws.data[ws.offset:], p)
	ws.offset += int64(n)

	return n, nil
}

func (ws *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = ws.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(ws.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, errors.New("negative position")
	}

	ws.offset = newOffset
	return newOffset, nil
}

// Bytes returns everything written so far.
func (ws *WriteSeeker) Bytes() []byte { return ws.data }

// FailingWriter fails every write after Limit bytes were accepted.
type FailingWriter struct {
	WriteSeeker

	Limit int
	Err   error
}

func (fw *FailingWriter) Write(p []byte) (int, error) {
	room := fw.Limit - len(fw.data)
	if room < len(p) {
		n, _ := fw.WriteSeeker.Write(p[:max(room, 0)])
		return n, fw.Err
	}

	return fw.WriteSeeker.Write(p)
}
