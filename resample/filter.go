// SPDX-License-Identifier: EPL-2.0

package resample

import "math"

// The converter uses a "bandlimited interpolation" filter:
//     https://ccrma.stanford.edu/~jos/resample/
//
// The bank holds phases+1 rows of taps single-precision coefficients; row p
// is the windowed sinc sampled at sub-frame phase p/phases, and the extra
// row lets the driver always blend two adjacent rows linearly.

const (
	// zeroCrossings is the number of sinc lobes kept per filter wing.
	zeroCrossings = 5

	// maxPaddingFrames is how far outside the live input a window may
	// reach. When upsampling, sampling can start one frame before the
	// live region, so keep one frame beyond the wing itself.
	maxPaddingFrames = zeroCrossings + 1

	// taps is the number of input frames convolved per output frame.
	taps = zeroCrossings * 2

	bitsPerSample       = 16
	bitsPerZeroCrossing = bitsPerSample/2 + 1

	// phases is the number of filter rows, one per quantised sub-frame
	// position.
	phases = 1 << bitsPerZeroCrossing

	filterInterpBits  = 32 - bitsPerZeroCrossing
	filterInterpRange = 1 << filterInterpBits

	filterSize = taps * (phases + 1)
)

// If kaiserTableSize is a multiple of zeroCrossings, the cubic interpolation
// weights stay the same between zero crossings of the same phase.
const kaiserTableSize = zeroCrossings * 4

var filterBank [filterSize]float32

// bessel is the zeroth-order modified Bessel function of the first kind.
// It is not the POSIX j0; see
// https://mathworld.wolfram.com/ModifiedBesselFunctionoftheFirstKind.html
func bessel(x float32) float32 {
	const epsilon = 1e-12

	sum := float32(0)
	i := float32(1)
	t := float32(1)
	x *= x * 0.25

	for t > epsilon {
		sum += t
		t *= x / (i * i)
		i++
	}

	return sum
}

func cubicCoef(interp *[4]float32, frac float32) {
	frac2 := frac * frac
	frac3 := frac * frac2

	interp[3] = -0.1666666667*frac + 0.1666666667*frac3
	interp[2] = frac + 0.5*frac2 - 0.5*frac3
	interp[0] = -0.3333333333*frac + 0.5*frac2 - 0.1666666667*frac3
	interp[1] = 1 - interp[3] - interp[2] - interp[0]
}

func cubicInterp(interp *[4]float32, data []float32) float32 {
	return data[0]*interp[0] + data[1]*interp[1] + data[2]*interp[2] + data[3]*interp[3]
}

// generateKaiserTable fills table with tablelen+1 samples of
// I0(beta*sqrt(1-(i/tablelen)^2))/I0(beta), shifted up one slot. The leading
// slot mirrors index 2 and two zero slots follow the tail so cubicInterp
// never needs a bounds check.
func generateKaiserTable(beta float32, table []float32, tablelen int) {
	besselBeta := bessel(beta)

	for i := 0; i <= tablelen; i++ {
		x := 1 - float32(i*i)/float32(tablelen*tablelen)
		table[i+1] = bessel(beta*float32(math.Sqrt(float64(x)))) / besselBeta
	}

	table[0] = table[2]
	table[tablelen+2] = 0
	table[tablelen+3] = 0
}

func generateFilter() {
	// Both wings are written in one pass, mirrored across the bank.

	// if dB > 50, beta = 0.1102*(dB-8.7), according to Matlab.
	const stopbandDB = 80.0
	const beta = 0.1102 * (stopbandDB - 8.7)

	const winglen = phases * zeroCrossings
	sincScale := float32(math.Pi) / phases

	// A small Kaiser table, interpolated over below.
	var kaiser [kaiserTableSize + 4]float32
	generateKaiserTable(beta, kaiser[:], kaiserTableSize)

	for i := 0; i < phases; i++ {
		s := float32(math.Sin(float64(float32(i)*sincScale))) / sincScale

		// The fractional part of the table position repeats every
		// zero crossing, so the weights are fixed for this phase.
		var interp [4]float32
		cubicCoef(&interp, float32((i*kaiserTableSize)%winglen)/float32(winglen))

		for j := 0; j < zeroCrossings; j++ {
			n := j*phases + i
			v := float32(1)

			if n != 0 {
				v = cubicInterp(&interp, kaiser[(n*kaiserTableSize)/winglen:]) * s / float32(n)
			}

			lwing := i*taps + (zeroCrossings - 1) - j
			rwing := (filterSize - 1) - lwing

			filterBank[lwing] = v
			filterBank[rwing] = v

			s = -s
		}
	}

	// Degenerate boundary rows: the outermost taps are zeroed so blending
	// row p with row p+1 stays well defined at both ends of the bank.
	for i := 0; i < zeroCrossings; i++ {
		rwing := i + zeroCrossings
		lwing := (filterSize - 1) - rwing

		filterBank[lwing] = 0
		filterBank[rwing] = 0
	}
}
