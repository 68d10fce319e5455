package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns |X_k|^2/n for k = 0..n/2 of the real profile.
func PowerSpectrum(profile []float64) []float64 {
	n := len(profile)
	if n == 0 {
		return nil
	}
	x := fft.FFTReal(profile)
	ps := make([]float64, n/2+1)
	for k := range ps {
		a := cmplx.Abs(x[k])
		ps[k] = a * a / float64(n)
	}
	return ps
}

// SineCoefficients projects the interior of an N+1 point profile onto the
// first modes sine modes: b_m = (2/N) * sum_i u_i sin(m*pi*i/N).
func SineCoefficients(profile []float64, modes int) []float64 {
	n := len(profile) - 1
	if n < 2 || modes < 1 {
		return nil
	}
	b := make([]float64, modes)
	for m := 1; m <= modes; m++ {
		s := 0.0
		for i := 1; i < n; i++ {
			s += profile[i] * math.Sin(float64(m)*math.Pi*float64(i)/float64(n))
		}
		b[m-1] = 2 * s / float64(n)
	}
	return b
}

// DominantMode returns the 1-based index of the largest |b_m|.
func DominantMode(coeffs []float64) int {
	best, idx := -1.0, 0
	for i, c := range coeffs {
		if a := math.Abs(c); a > best {
			best, idx = a, i+1
		}
	}
	return idx
}
