// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 converts one normalised sample to 16-bit PCM, clamping to
// [-1, 1] first. The positive end scales by 32767 to avoid overflowing.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int16(x * 32767.0)
}

// Int16ToFloat32 converts one 16-bit PCM sample to the normalised range the
// processing pipeline works in.
func Int16ToFloat32(v int16) float32 {
	return float32(v) / 32768.0
}
