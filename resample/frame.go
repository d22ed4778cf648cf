// SPDX-License-Identifier: EPL-2.0

package resample

// frameFunc produces one output frame. src holds taps consecutive frames of
// chans interleaved channels, filter holds two adjacent phase rows of taps
// coefficients each, and interp in [0,1) blends between the rows:
//
//	dst[c] = sum(src[i*chans+c] * ((1-interp)*filter[i] + interp*filter[i+taps]))
//
// A kernel never reads past src[taps*chans]; the driver guarantees the full
// window is valid.
type frameFunc func(src, dst, filter []float32, interp float32, chans int)

// frameKernels is indexed by chans-1; Setup fills it once.
var frameKernels [8]frameFunc

func resampleFrameMono(src, dst, filter []float32, interp float32, _ int) {
	out := float32(0)

	for i := 0; i < taps; i++ {
		// Interpolate between the nearest two filters.
		scale := filter[i]*(1-interp) + filter[i+taps]*interp

		out += src[i] * scale
	}

	dst[0] = out
}

func resampleFrameStereo(src, dst, filter []float32, interp float32, _ int) {
	out0 := float32(0)
	out1 := float32(0)

	for i := 0; i < taps; i++ {
		// Interpolate between the nearest two filters.
		scale := filter[i]*(1-interp) + filter[i+taps]*interp

		out0 += src[i*2+0] * scale
		out1 += src[i*2+1] * scale
	}

	dst[0] = out0
	dst[1] = out1
}

func resampleFrameGeneric(src, dst, filter []float32, interp float32, chans int) {
	var scales [taps]float32

	// Interpolate between the nearest two filters.
	for i := range scales {
		scales[i] = filter[i]*(1-interp) + filter[i+taps]*interp
	}

	for c := 0; c < chans; c++ {
		out := float32(0)

		for i := 0; i < taps; i++ {
			out += src[i*chans+c] * scales[i]
		}

		dst[c] = out
	}
}

// kernelFor selects the per-frame kernel. Channel counts past the end of the
// table take the generic path instead of indexing out of range.
func kernelFor(chans int) frameFunc {
	if chans <= len(frameKernels) {
		return frameKernels[chans-1]
	}
	if simdAvailable() {
		return resampleFrameSIMD
	}
	return resampleFrameGeneric
}
