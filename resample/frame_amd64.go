// SPDX-License-Identifier: EPL-2.0

//go:build amd64 && !purego

package resample

import "golang.org/x/sys/cpu"

// simdAvailable reports whether the 4-wide single-precision kernels may be
// dispatched. SSE2 is part of the amd64 baseline, but the probe keeps the
// dispatch decision in one place and lets purego builds opt out.
func simdAvailable() bool {
	return cpu.X86.HasSSE2
}

// The assembly kernels take the filter row pair as one pointer (the second
// row starts taps floats after the first) and the two blend weights
// precomputed, w0 = 1-interp and w1 = interp.

//go:noescape
func frameMonoSSE(src, dst, filter *float32, w0, w1 float32)

//go:noescape
func frameStereoSSE(src, dst, filter *float32, w0, w1 float32)

// frameQuadSSE convolves four interleaved channels starting at src/dst with
// a frame stride of chans floats.
//
//go:noescape
func frameQuadSSE(src, dst, filter *float32, w0, w1 float32, chans int64)

// resampleFrameSIMD covers every channel count: dedicated kernels for mono
// and stereo, groups of four for wider layouts, and a scalar tail for the
// one to three channels left over at odd counts.
func resampleFrameSIMD(src, dst, filter []float32, interp float32, chans int) {
	w1 := interp
	w0 := 1 - interp

	switch chans {
	case 1:
		frameMonoSSE(&src[0], &dst[0], &filter[0], w0, w1)
		return
	case 2:
		frameStereoSSE(&src[0], &dst[0], &filter[0], w0, w1)
		return
	}

	ch := 0
	for ; ch+4 <= chans; ch += 4 {
		frameQuadSSE(&src[ch], &dst[ch], &filter[0], w0, w1, int64(chans))
	}

	for ; ch < chans; ch++ {
		out := float32(0)

		for i := 0; i < taps; i++ {
			out += src[i*chans+ch] * (filter[i]*w0 + filter[i+taps]*w1)
		}

		dst[ch] = out
	}
}
