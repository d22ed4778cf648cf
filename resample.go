// SPDX-License-Identifier: EPL-2.0

package audsinc

import (
	"fmt"
	"io"

	"github.com/ik5/audsinc/audio"
	"github.com/ik5/audsinc/resample"
	"github.com/ik5/audsinc/utils"
)

// ResampleToMono16 resamples src to targetRate, folds it to mono, and
// collects the whole stream as 16-bit PCM.
//
// The pipeline is audio.Resampler -> audio.MonoMixer -> int16 conversion,
// reading bufferSize samples at a time. It returns the collected samples
// and the output rate (same as targetRate). On the first error other than
// io.EOF it stops and returns nil samples with that error. For control over
// the individual stages, build the pipeline from the audio package directly.
func ResampleToMono16(src audio.Source, targetRate int, bufferSize int) ([]int16, int, error) {
	resampler := audio.NewResampler(src, targetRate)
	mono := audio.NewMonoMixer(resampler)

	pcm16 := make([]int16, 0, targetRate*2)
	buf := make([]float32, bufferSize)

	for {
		n, err := mono.ReadSamples(buf)
		for i := 0; i < n; i++ {
			pcm16 = append(pcm16, utils.Float32ToInt16(buf[i]))
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, targetRate, fmt.Errorf("%w", err)
		}
	}

	return pcm16, targetRate, nil
}

// ResampleBuffer converts an in-memory interleaved buffer from srcRate to
// dstRate in one call, planning the output length and the history/padding
// regions internally. chans must be at least 1; a short or empty src
// returns nil.
func ResampleBuffer(chans, srcRate, dstRate int, src []float32) []float32 {
	if chans < 1 || len(src) < chans {
		return nil
	}

	resample.Setup()

	rate := resample.Rate(srcRate, dstRate)
	m := len(src) / chans

	if resample.Identity(rate) {
		out := make([]float32, m*chans)
		copy(out, src)
		return out
	}

	planOffset := int64(0)
	n := int(resample.OutputFrames(int64(m), rate, &planOffset))

	buf := make([]float32, 0, (resample.HistoryFrames()+m+resample.PaddingFrames(rate))*chans)
	buf = append(buf, make([]float32, resample.HistoryFrames()*chans)...)
	buf = append(buf, src[:m*chans]...)
	buf = append(buf, make([]float32, resample.PaddingFrames(rate)*chans)...)

	dst := make([]float32, n*chans)
	offset := int64(0)
	resample.Resample(chans, buf, m, dst, n, rate, &offset)

	return dst
}
