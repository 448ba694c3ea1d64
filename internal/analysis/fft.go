package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// FFT zero pads data to a power of two and transforms it, so bin k of the
// result always corresponds to a period of NextPow2(len(data))/k samples.
func FFT(data []float64) []complex128 {
	n := NextPow2(len(data))
	padded := make([]float64, n)
	copy(padded, data)
	return fft.FFTReal(padded)
}

func PowerSpectrum(data []float64) []float64 {
	spectrum := FFT(data)
	ps := make([]float64, len(spectrum)/2)

	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

func NextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// DominantPeriod returns the period, in samples, of the strongest non-constant
// component of series after removing its mean. It returns 0 when the series is
// flat or too short.
func DominantPeriod(series []float64) float64 {
	if len(series) < 4 {
		return 0
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))

	centered := make([]float64, len(series))
	for i, v := range series {
		centered[i] = v - mean
	}

	ps := PowerSpectrum(centered)
	best, bestIdx := 0.0, 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > best {
			best, bestIdx = ps[i], i
		}
	}
	if bestIdx == 0 || best < 1e-9 {
		return 0
	}
	return float64(NextPow2(len(series))) / float64(bestIdx)
}
