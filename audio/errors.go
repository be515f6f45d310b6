// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"strings"
)

// Error kinds. Every error returned by this module matches exactly one of
// them through errors.Is.
var (
	ErrFileNotFound           = errors.New("file not found")
	ErrUnsupportedFormat      = errors.New("unsupported format")
	ErrMalformedContainer     = errors.New("malformed container")
	ErrInvalidRange           = errors.New("invalid range")
	ErrUnsupportedSampleWidth = errors.New("unsupported sample width")
	ErrWriteFailure           = errors.New("write failure")
)

var kinds = []error{
	ErrFileNotFound,
	ErrUnsupportedFormat,
	ErrMalformedContainer,
	ErrInvalidRange,
	ErrUnsupportedSampleWidth,
	ErrWriteFailure,
}

// Error adds the failing operation and its subject to an error kind.
type Error struct {
	// Kind is one of the Err* kinds above.
	Kind error
	// Op is the operation that failed, e.g. "decode" or "trim".
	Op string
	// Path is the file involved, if any.
	Path string
	// Detail is a short human readable reason.
	Detail string
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Op)
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}

	if b.Len() > 0 {
		b.WriteString(": ")
	}

	// Kinds already carried by the cause are not repeated.
	if e.Kind != nil && (e.Err == nil || !errors.Is(e.Err, e.Kind)) {
		b.WriteString(e.Kind.Error())
		if e.Err != nil {
			b.WriteString(": ")
		}
	}

	if e.Err != nil {
		b.WriteString(e.Err.Error())
	}

	if e.Detail != "" {
		b.WriteString(" (")
		b.WriteString(e.Detail)
		b.WriteString(")")
	}

	return b.String()
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}

	if e.Err != nil {
		errs = append(errs, e.Err)
	}

	return errs
}

// KindOf returns the error kind err belongs to, or nil when err is nil or
// does not come from this module.
func KindOf(err error) error {
	if err == nil {
		return nil
	}

	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}

	return nil
}
