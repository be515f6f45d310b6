// SPDX-License-Identifier: EPL-2.0

package pcmedit

import (
	"errors"
	"fmt"

	"github.com/ik5/pcmedit/audio"
)

// Describe turns an error from this module into a message for the user.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var (
		aerr   *audio.Error
		path   string
		detail string
	)
	if errors.As(err, &aerr) {
		path = aerr.Path
		detail = aerr.Detail
	}

	switch {
	case errors.Is(err, ErrNothingLoaded):
		return "No audio loaded, open a WAV file first"
	case errors.Is(err, audio.ErrUnsupportedFormat):
		return fmt.Sprintf("Unsupported file format: %q, only WAV files can be opened", path)
	case errors.Is(err, audio.ErrFileNotFound):
		return fmt.Sprintf("File not found: %q", path)
	case errors.Is(err, audio.ErrMalformedContainer):
		return fmt.Sprintf("Not a valid PCM WAV file: %q (%s)", path, cause(aerr, err))
	case errors.Is(err, audio.ErrInvalidRange):
		return fmt.Sprintf("Invalid time range: %s", detail)
	case errors.Is(err, audio.ErrUnsupportedSampleWidth):
		return "Volume can only be changed on 8, 16 or 32 bit audio"
	case errors.Is(err, audio.ErrWriteFailure) && path == "":
		return fmt.Sprintf("Could not write audio output (%s)", cause(aerr, err))
	case errors.Is(err, audio.ErrWriteFailure):
		return fmt.Sprintf("Could not save %q (%s)", path, cause(aerr, err))
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}

func cause(aerr *audio.Error, err error) string {
	if aerr != nil && aerr.Err != nil {
		return aerr.Err.Error()
	}

	return err.Error()
}
