// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audsinc/resample"
)

// Resampler streams from src to the target sample rate through the
// bandlimited converter. Works on interleaved samples; preserves channel
// count.
//
// The wrapper owns all the stream-side state the converter contract asks
// for: the 32.32 rate, the running phase offset threaded across reads,
// resample.HistoryFrames() of priming frames kept in front of the live
// input (silence when the stream opens), and right-side padding zero-filled
// once the source runs dry. Reading in chunks of any size produces the same
// samples as draining the stream in one call.
type Resampler struct {
	src      Source
	dstRate  int
	channels int

	rate   int64
	offset int64

	// buf is interleaved history + live input (+ flush padding at the
	// very end). The first HistoryFrames frames are always the priming
	// region for the next conversion origin.
	buf []float32
	pad int // padding samples appended at EOF

	srcBuf []float32
	eof    bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	resample.Setup()

	channels := src.Channels()

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		channels: channels,
		rate:     resample.Rate(src.SampleRate(), dstRate),
		srcBuf:   make([]float32, 4096),
	}

	// A fresh stream starts at origin zero with silent history.
	r.buf = make([]float32, resample.HistoryFrames()*channels, 8192)

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// liveFrames is the number of whole input frames buffered past the history
// region, not counting flush padding.
func (r *Resampler) liveFrames() int {
	return (len(r.buf)-r.pad)/r.channels - resample.HistoryFrames()
}

// fill pulls one batch from the source onto the live region.
func (r *Resampler) fill() error {
	n, err := r.src.ReadSamples(r.srcBuf)
	if n > 0 {
		r.buf = append(r.buf, r.srcBuf[:n]...)
	}

	if err == io.EOF {
		r.eof = true

		// Drop a torn trailing frame, if any.
		r.buf = r.buf[:len(r.buf)-len(r.buf)%r.channels]

		return io.EOF
	}

	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// ReadSamples produces samples at the target rate.
// dst length should be a multiple of the channel count.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	// Same rate on both sides: hand the stream through untouched.
	if resample.Identity(r.rate) {
		return r.src.ReadSamples(dst)
	}

	framesWanted := len(dst) / r.channels
	written := 0

	for written < framesWanted {
		need := resample.InputFrames(int64(framesWanted-written), r.rate, r.offset)
		padding := resample.PaddingFrames(r.rate)

		// Cover the window of every planned output, or drain the
		// source trying.
		for !r.eof && int64(r.liveFrames()) < need+int64(padding) {
			if err := r.fill(); err != nil && err != io.EOF {
				return written * r.channels, err
			}
		}

		if r.eof && r.pad == 0 {
			// Flush: the windows past the final frame read silence.
			r.pad = padding * r.channels
			r.buf = append(r.buf, make([]float32, r.pad)...)
		}

		// How much can the buffered input actually produce?
		planOffset := r.offset
		maxOut := resample.OutputFrames(int64(r.liveFrames()), r.rate, &planOffset)

		n := framesWanted - written
		if int64(n) > maxOut {
			n = int(maxOut)
		}

		if n == 0 {
			if !r.eof {
				continue
			}
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		in := int(resample.InputFrames(int64(n), r.rate, r.offset))

		resample.Resample(r.channels, r.buf, in,
			dst[written*r.channels:(written+n)*r.channels], n, r.rate, &r.offset)

		// The converter rebased the offset against the next origin;
		// slide the buffer so the history region lines up with it.
		consumed := in * r.channels
		r.buf = r.buf[:copy(r.buf, r.buf[consumed:])]

		written += n
	}

	return written * r.channels, nil
}
