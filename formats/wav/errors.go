// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"

	"github.com/ik5/pcmedit/audio"
)

var (
	ErrNotWavFile       = fmt.Errorf("%w: not a WAV file", audio.ErrMalformedContainer)
	ErrTruncated        = fmt.Errorf("%w: truncated WAV file", audio.ErrMalformedContainer)
	ErrBadFmtChunk      = fmt.Errorf("%w: invalid fmt chunk", audio.ErrMalformedContainer)
	ErrNotPCM           = fmt.Errorf("%w: only uncompressed PCM supported", audio.ErrMalformedContainer)
	ErrMissingFmtChunk  = fmt.Errorf("%w: data chunk before fmt chunk", audio.ErrMalformedContainer)
	ErrMissingDataChunk = fmt.Errorf("%w: missing data chunk", audio.ErrMalformedContainer)
	ErrPartialFrame     = fmt.Errorf("%w: payload is not a whole number of frames", audio.ErrMalformedContainer)
	ErrTooLarge         = fmt.Errorf("%w: payload exceeds the 4 GiB RIFF limit", audio.ErrWriteFailure)
)
