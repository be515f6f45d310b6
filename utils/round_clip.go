// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// RoundClip rounds x to the nearest integer (halves away from zero) and hard
// clips it to [lo, hi]. NaN maps to zero.
func RoundClip(x float64, lo, hi int64) int64 {
	if math.IsNaN(x) {
		return 0
	}

	// Clip before converting, float64 beyond int64 range has no defined conversion.
	if x >= float64(hi) {
		return hi
	}
	if x <= float64(lo) {
		return lo
	}

	return int64(math.Round(x))
}
