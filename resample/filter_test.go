package resample

import (
	"math"
	"testing"
)

func TestBessel(t *testing.T) {
	t.Parallel()

	if got := bessel(0); got != 1 {
		t.Errorf("bessel(0) = %v, want 1", got)
	}

	// I0(1) = 1.2660658..., I0(2) = 2.2795853...
	if got := bessel(1); math.Abs(float64(got)-1.2660658) > 1e-5 {
		t.Errorf("bessel(1) = %v, want ≈1.2660658", got)
	}

	if got := bessel(2); math.Abs(float64(got)-2.2795853) > 1e-5 {
		t.Errorf("bessel(2) = %v, want ≈2.2795853", got)
	}
}

func TestCubicCoef_PartitionOfUnity(t *testing.T) {
	t.Parallel()

	for _, frac := range []float32{0, 0.25, 0.5, 0.75, 0.999} {
		var interp [4]float32
		cubicCoef(&interp, frac)

		sum := interp[0] + interp[1] + interp[2] + interp[3]
		if math.Abs(float64(sum)-1) > 1e-6 {
			t.Errorf("cubicCoef(%v) weights sum to %v, want 1", frac, sum)
		}
	}
}

func TestGenerateKaiserTable(t *testing.T) {
	t.Parallel()

	var table [kaiserTableSize + 4]float32
	generateKaiserTable(7.857, table[:], kaiserTableSize)

	if table[1] != 1 {
		t.Errorf("kaiser[1] = %v, want exactly 1 (window peak)", table[1])
	}

	if table[0] != table[2] {
		t.Errorf("kaiser[0] = %v, want mirror of kaiser[2] = %v", table[0], table[2])
	}

	// Strictly decreasing from the peak out to the edge.
	for i := 1; i <= kaiserTableSize; i++ {
		if table[i+1] >= table[i] {
			t.Errorf("kaiser[%d] = %v >= kaiser[%d] = %v, want decreasing", i+1, table[i+1], i, table[i])
		}
	}

	if table[kaiserTableSize+2] != 0 || table[kaiserTableSize+3] != 0 {
		t.Error("kaiser tail guard slots are not zero")
	}
}

func TestFilterBank_Symmetry(t *testing.T) {
	t.Parallel()
	Setup()

	// A windowed sinc is even, so the bank mirrors across its center.
	for p := 1; p < phases; p++ {
		for i := 0; i < taps; i++ {
			a := filterBank[p*taps+i]
			b := filterBank[(phases-p)*taps+(taps-1-i)]

			if a != b {
				t.Fatalf("filterBank[%d*taps+%d] = %v, want %v (mirror)", p, i, a, b)
			}
		}
	}
}

func TestFilterBank_BoundaryRows(t *testing.T) {
	t.Parallel()
	Setup()

	// Row 0 reduces to a unit impulse at the window center...
	for i := 0; i < taps; i++ {
		want := float32(0)
		if i == zeroCrossings-1 {
			want = 1
		}

		if got := filterBank[i]; got != want {
			t.Errorf("filterBank[%d] = %v, want %v", i, got, want)
		}
	}

	// ...and the extra blend row has its outer taps zeroed.
	for i := 0; i < zeroCrossings; i++ {
		if got := filterBank[phases*taps+i]; got != 0 {
			t.Errorf("filterBank[phases*taps+%d] = %v, want 0", i, got)
		}
	}
}

func TestFilterBank_RowGain(t *testing.T) {
	t.Parallel()
	Setup()

	// Every phase row is one polyphase branch of the low-pass; its DC
	// gain stays near unity across the bank.
	for p := 0; p <= phases; p++ {
		sum := float64(0)
		for i := 0; i < taps; i++ {
			sum += float64(filterBank[p*taps+i])
		}

		if math.Abs(sum-1) > 0.02 {
			t.Errorf("row %d gain = %v, want ≈1", p, sum)
		}
	}
}
