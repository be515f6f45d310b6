// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"fmt"

	"github.com/ik5/pcmedit/audio"
)

var (
	// ErrPartialFrame indicates the payload does not end on a frame boundary
	ErrPartialFrame = fmt.Errorf("%w: payload is not a whole number of frames", audio.ErrMalformedContainer)
)
