// SPDX-License-Identifier: EPL-2.0

//go:build !amd64 || purego

package resample

func simdAvailable() bool {
	return false
}

func resampleFrameSIMD(src, dst, filter []float32, interp float32, chans int) {
	resampleFrameGeneric(src, dst, filter, interp, chans)
}
