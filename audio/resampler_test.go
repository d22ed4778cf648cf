package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/audsinc/resample"
)

// drain reads src to EOF in chunks of bufSize samples.
func drain(t *testing.T, src Source, bufSize int) []float32 {
	t.Helper()

	var samples []float32
	buf := make([]float32, bufSize)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			samples = append(samples, buf[:n]...)
		}
		if err == io.EOF {
			return samples
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

// plannedFrames is the output frame count the core plans for a full stream.
func plannedFrames(inputFrames, srcRate, dstRate int) int {
	offset := int64(0)
	return int(resample.OutputFrames(int64(inputFrames), resample.Rate(srcRate, dstRate), &offset))
}

func TestResampler_Metadata(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 1000)
	resampler := NewResampler(src, 8000)

	if resampler.SampleRate() != 8000 {
		t.Errorf("Resampler.SampleRate() = %d, want 8000", resampler.SampleRate())
	}

	if resampler.Channels() != 2 {
		t.Errorf("Resampler.Channels() = %d, want 2", resampler.Channels())
	}
}

func TestResampler_SameRatePassthrough(t *testing.T) {
	t.Parallel()

	src := newConstantSource(8000, 1, 100, 0.5)
	resampler := NewResampler(src, 8000)

	buf := make([]float32, 100)
	n, err := resampler.ReadSamples(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 100 {
		t.Fatalf("ReadSamples() = %d samples, want 100", n)
	}

	// Equal rates bypass the filter entirely.
	for i := 0; i < n; i++ {
		if buf[i] != 0.5 {
			t.Errorf("buf[%d] = %v, want 0.5", i, buf[i])
		}
	}
}

func TestResampler_DownsamplingFrameCount(t *testing.T) {
	t.Parallel()

	// One second of 44.1kHz mono down to 8kHz: the stream must deliver
	// exactly the frames the planner promises.
	src := newSineSource(44100, 1, 44100, 440.0)
	resampler := NewResampler(src, 8000)

	samples := drain(t, resampler, 1024)

	if want := plannedFrames(44100, 44100, 8000); len(samples) != want {
		t.Errorf("drained %d samples, want %d", len(samples), want)
	}

	for i, s := range samples {
		if s < -1.5 || s > 1.5 {
			t.Errorf("samples[%d] = %v, outside reasonable range", i, s)
		}
	}
}

func TestResampler_UpsamplingFrameCount(t *testing.T) {
	t.Parallel()

	src := newSineSource(8000, 2, 8000, 440.0)
	resampler := NewResampler(src, 44100)

	samples := drain(t, resampler, 4096)

	if want := plannedFrames(8000, 8000, 44100) * 2; len(samples) != want {
		t.Errorf("drained %d samples, want %d", len(samples), want)
	}
}

func TestResampler_SineFidelity(t *testing.T) {
	t.Parallel()

	// A 440Hz tone halved in rate must still be a 440Hz tone.
	const srcRate, dstRate = 44100, 22050

	src := newSineSource(srcRate, 1, srcRate, 440.0)
	resampler := NewResampler(src, dstRate)

	samples := drain(t, resampler, 1000)

	const skip = 16
	sum := float64(0)
	count := 0
	for k := skip; k < len(samples)-skip; k++ {
		want := math.Sin(2 * math.Pi * 440 * float64(k) / dstRate)
		d := float64(samples[k]) - want
		sum += d * d
		count++
	}

	if rms := math.Sqrt(sum / float64(count)); rms > 1e-3 {
		t.Errorf("RMS error vs analytic tone = %v, want < 1e-3", rms)
	}
}

func TestResampler_ChunkSizeInvariance(t *testing.T) {
	t.Parallel()

	// The carried history and phase make the output independent of how
	// the caller slices its reads.
	ref := drain(t, NewResampler(newSineSource(48000, 2, 9600, 1000.0), 44100), 9600*2+64)

	for _, bufSize := range []int{2, 128, 750, 4096} {
		got := drain(t, NewResampler(newSineSource(48000, 2, 9600, 1000.0), 44100), bufSize)

		if len(got) != len(ref) {
			t.Fatalf("bufSize %d: drained %d samples, want %d", bufSize, len(got), len(ref))
		}

		for i := range got {
			if got[i] != ref[i] {
				t.Fatalf("bufSize %d: got[%d] = %v, want %v (bit-exact)", bufSize, i, got[i], ref[i])
			}
		}
	}
}

func TestResampler_InvalidDstSize(t *testing.T) {
	t.Parallel()

	src := newSilentSource(44100, 2, 100)
	resampler := NewResampler(src, 22050)

	buf := make([]float32, 33)
	if _, err := resampler.ReadSamples(buf); err != ErrInvalidDstSize {
		t.Errorf("ReadSamples(odd dst) error = %v, want ErrInvalidDstSize", err)
	}
}

func TestResampler_EOFAfterDrain(t *testing.T) {
	t.Parallel()

	src := newSilentSource(16000, 1, 100)
	resampler := NewResampler(src, 8000)

	drain(t, resampler, 64)

	buf := make([]float32, 64)
	if n, err := resampler.ReadSamples(buf); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() after drain = %d, %v, want 0, io.EOF", n, err)
	}
}
