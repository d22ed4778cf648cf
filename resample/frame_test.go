package resample

import (
	"math"
	"math/rand"
	"testing"
)

// referenceFrame is the kernel contract evaluated in float64: one output
// sample per channel from taps frames of interleaved input and a blended
// filter row pair.
func referenceFrame(src, filter []float32, interp float32, chans int) []float64 {
	out := make([]float64, chans)

	for c := 0; c < chans; c++ {
		sum := float64(0)
		for i := 0; i < taps; i++ {
			scale := float64(filter[i])*(1-float64(interp)) + float64(filter[i+taps])*float64(interp)
			sum += float64(src[i*chans+c]) * scale
		}
		out[c] = sum
	}

	return out
}

// kernelWindow cuts exact-length slices so any tap outside the window trips
// the bounds check instead of reading a neighbour.
func kernelWindow(rng *rand.Rand, chans int) (src, dst, filter []float32, interp float32) {
	src = make([]float32, taps*chans)
	for i := range src {
		src[i] = rng.Float32()*2 - 1
	}

	dst = make([]float32, chans)

	row := rng.Intn(phases)
	filter = filterBank[row*taps : row*taps+2*taps]
	interp = rng.Float32()

	return src, dst, filter, interp
}

func TestKernels_MatchReference(t *testing.T) {
	t.Parallel()
	Setup()

	rng := rand.New(rand.NewSource(1))

	for chans := 1; chans <= 8; chans++ {
		kernel := kernelFor(chans)
		if kernel == nil {
			t.Fatalf("kernelFor(%d) = nil", chans)
		}

		for round := 0; round < 50; round++ {
			src, dst, filter, interp := kernelWindow(rng, chans)
			kernel(src, dst, filter, interp, chans)

			want := referenceFrame(src, filter, interp, chans)
			for c := range dst {
				if math.Abs(float64(dst[c])-want[c]) > 1e-5 {
					t.Fatalf("chans=%d round=%d channel=%d: kernel = %v, want %v",
						chans, round, c, dst[c], want[c])
				}
			}
		}
	}
}

func TestKernels_ScalarSpecialisationsAgree(t *testing.T) {
	t.Parallel()
	Setup()

	rng := rand.New(rand.NewSource(2))

	// Mono and stereo walk the taps in the same order as the generic
	// kernel, so they agree bit for bit.
	for chans := 1; chans <= 2; chans++ {
		for round := 0; round < 50; round++ {
			src, dst, filter, interp := kernelWindow(rng, chans)

			special := resampleFrameMono
			if chans == 2 {
				special = resampleFrameStereo
			}
			special(src, dst, filter, interp, chans)

			want := make([]float32, chans)
			resampleFrameGeneric(src, want, filter, interp, chans)

			for c := range dst {
				if dst[c] != want[c] {
					t.Fatalf("chans=%d channel=%d: specialised = %v, generic = %v",
						chans, c, dst[c], want[c])
				}
			}
		}
	}
}

func TestSIMD_MatchesScalar(t *testing.T) {
	t.Parallel()
	Setup()

	rng := rand.New(rand.NewSource(3))

	// The vector path reassociates the accumulation, so it is held to an
	// absolute 1e-5 of the scalar answer, not to a ULP bound; outputs
	// near zero can differ from the scalar ones by many ULP.
	for chans := 1; chans <= 9; chans++ {
		for round := 0; round < 50; round++ {
			src, dst, filter, interp := kernelWindow(rng, chans)
			resampleFrameSIMD(src, dst, filter, interp, chans)

			want := make([]float32, chans)
			resampleFrameGeneric(src, want, filter, interp, chans)

			for c := range dst {
				if math.Abs(float64(dst[c])-float64(want[c])) > 1e-5 {
					t.Fatalf("chans=%d channel=%d: simd = %v, scalar = %v",
						chans, c, dst[c], want[c])
				}
			}
		}
	}
}

func TestKernelFor_WideChannelCounts(t *testing.T) {
	t.Parallel()
	Setup()

	rng := rand.New(rand.NewSource(4))

	// Counts past the dispatch table still convolve correctly.
	for _, chans := range []int{9, 12, 16} {
		kernel := kernelFor(chans)
		if kernel == nil {
			t.Fatalf("kernelFor(%d) = nil", chans)
		}

		src, dst, filter, interp := kernelWindow(rng, chans)
		kernel(src, dst, filter, interp, chans)

		want := referenceFrame(src, filter, interp, chans)
		for c := range dst {
			if math.Abs(float64(dst[c])-want[c]) > 1e-5 {
				t.Fatalf("chans=%d channel=%d: kernel = %v, want %v", chans, c, dst[c], want[c])
			}
		}
	}
}
