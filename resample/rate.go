// SPDX-License-Identifier: EPL-2.0

package resample

import "math"

// fixedOne is the 32.32 fixed-point representation of 1.0: one input frame
// advanced per output frame, i.e. no rate change.
const fixedOne = int64(1) << 32

// Rate converts a source/destination sample-rate pair into the 32.32
// fixed-point step the converter advances per output frame. Both rates must
// be positive; the result always is.
func Rate(srcRate, dstRate int) int64 {
	return (int64(srcRate) << 32) / int64(dstRate)
}

// Identity reports whether rate performs no conversion: either the exact
// 32.32 one, or zero meaning "not resampling". Stream owners may
// short-circuit such streams to plain copies.
func Identity(rate int64) bool {
	return rate == 0 || rate == fixedOne
}

// HistoryFrames returns how many already-consumed frames a caller must keep
// immediately before the live input. The value does not depend on the rate,
// so changing rates mid-stream never needs more history than was kept.
func HistoryFrames() int {
	return maxPaddingFrames
}

// PaddingFrames returns how many frames must follow the live input at the
// given rate. Identity passthrough (rate 0 meaning "not resampling") needs
// none.
func PaddingFrames(rate int64) int {
	// Always <= HistoryFrames().
	if rate != 0 {
		return maxPaddingFrames
	}
	return 0
}

// addSat and mulSat are not general purpose: they only guard the overflow
// direction their call sites can hit, and negative b is passed through
// unchecked.
func addSat(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

func mulSat(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}

// InputFrames returns how many live input frames past the offset origin are
// needed to produce outputFrames output frames. On arithmetic overflow the
// result saturates to math.MaxInt64; callers clamp against real buffer
// sizes.
func InputFrames(outputFrames, rate, offset int64) int64 {
	// Index of the last input frame sampled, plus one:
	// ((((outputFrames-1) * rate) + offset) >> 32) + 1
	v, ok := mulSat(outputFrames, rate)
	if ok {
		v, ok = addSat(v, -rate+offset+fixedOne)
	}
	if !ok {
		return math.MaxInt64
	}

	in := v >> 32
	if in < 0 {
		in = 0
	}

	return in
}

// OutputFrames returns how many output frames can be produced from
// inputFrames live input frames, and rewrites *offset to the residual
// position relative to the next chunk's origin.
func OutputFrames(inputFrames, rate int64, offset *int64) int64 {
	// inputOffset = (inputFrames << 32) - *offset
	inputOffset, ok := mulSat(inputFrames, fixedOne)
	if ok {
		inputOffset, ok = addSat(inputOffset, -*offset)
	}
	if !ok {
		inputOffset = math.MaxInt64
	}

	// out = div_ceil(inputOffset, rate)
	var out int64
	if inputOffset > 0 {
		out = (inputOffset-1)/rate + 1
	}

	*offset = out*rate - inputOffset

	return out
}
