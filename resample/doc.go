// SPDX-License-Identifier: EPL-2.0

// Package resample implements bandlimited sample-rate conversion over
// interleaved float32 frames.
//
// The converter maps a stream from one fixed rate to another by convolving
// with a precomputed Kaiser-windowed sinc, stored as a bank of filter
// phases that are linearly blended per output frame. Stream position is a
// signed 64-bit fixed-point value with 32 integer and 32 fractional bits,
// advanced by the step returned from Rate.
//
// The package is deliberately low level: the caller owns the input buffer,
// keeps HistoryFrames of already-consumed frames in front of the live data,
// follows it with PaddingFrames of future (or silent) frames, and threads
// the running offset across calls. The audio package wraps all of that
// bookkeeping behind a streaming Source; use it unless you are building
// your own stream owner.
//
// Call Setup once before first use. After that any number of goroutines may
// convert concurrently on disjoint buffers; the hot path performs no
// allocation and no locking.
package resample
