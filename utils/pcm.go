// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts a normalized sample to 16-bit PCM, clamping
// anything outside [-1, 1]. The positive end scales by 32767 so +1.0
// cannot overflow.
func Float32ToInt16(x float32) int16 {
	switch {
	case x >= 1:
		return 32767
	case x <= -1:
		return -32768
	}
	return int16(x * 32767.0)
}
