// SPDX-License-Identifier: EPL-2.0

package resample

import "sync"

var setupOnce sync.Once

// Setup builds the filter bank and the kernel dispatch table. It is
// idempotent; hosts sharing the converter across goroutines run it once
// before the first concurrent Resample, after which everything it wrote is
// read-only.
func Setup() {
	setupOnce.Do(func() {
		generateFilter()

		for i := range frameKernels {
			frameKernels[i] = resampleFrameGeneric
		}

		frameKernels[0] = resampleFrameMono
		frameKernels[1] = resampleFrameStereo

		if simdAvailable() {
			for i := range frameKernels {
				frameKernels[i] = resampleFrameSIMD
			}
		}
	})
}

// Resample produces outFrames output frames of chans interleaved channels
// from the live input, advancing *offset by rate per output frame.
//
// src is laid out as HistoryFrames() priming frames, then inFrames live
// frames, then PaddingFrames(rate) trailing frames. *offset is the 32.32
// position of the next output relative to the live region's origin; on
// return it is rebased to the next chunk's origin, so threading it through
// chunked calls reproduces a single-call conversion bit for bit.
//
// The caller plans inFrames and outFrames against each other with
// InputFrames/OutputFrames so that every window access stays inside src; a
// call outside that contract panics on the window bounds.
func Resample(chans int, src []float32, inFrames int, dst []float32, outFrames int, rate int64, offset *int64) {
	srcpos := *offset
	frame := kernelFor(chans)

	// An integer position of 0 puts the left wing over the history
	// region; position -1 is still legal when upsampling.
	const origin = maxPaddingFrames - (zeroCrossings - 1)

	for i := 0; i < outFrames; i++ {
		srcindex := int(int32(srcpos >> 32))
		srcfraction := uint32(srcpos)
		srcpos += rate

		f := int(srcfraction>>filterInterpBits) * taps
		interp := float32(srcfraction&(filterInterpRange-1)) * (1.0 / filterInterpRange)

		win := (srcindex + origin) * chans
		frame(src[win:win+taps*chans], dst[i*chans:(i+1)*chans], filterBank[f:f+2*taps], interp, chans)
	}

	*offset = srcpos - int64(inFrames)<<32
}
