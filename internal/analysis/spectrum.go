// Package analysis provides frequency-domain tools for run series, used to
// characterize the bounce and split rhythm of a simulation.
package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude spectrum of the series up to the
// Nyquist bin. Input is zero-padded to the next power of two.
func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}

	n := 1
	for n < len(data) {
		n <<= 1
	}
	padded := make([]float64, n)
	copy(padded, data)

	spectrum := fft.FFTReal(padded)
	ps := make([]float64, n/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// Detrend subtracts the series mean, removing the DC bin's dominance so
// DominantIndex picks out the oscillation rather than the offset.
func Detrend(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = v - mean
	}
	return out
}

// DominantIndex returns the spectrum bin with the largest magnitude,
// skipping the DC bin. Returns 0 when the spectrum is too short.
func DominantIndex(spectrum []float64) int {
	if len(spectrum) < 2 {
		return 0
	}
	best := 1
	for i := 2; i < len(spectrum); i++ {
		if spectrum[i] > spectrum[best] {
			best = i
		}
	}
	return best
}

// DominantFrequency converts the dominant bin of a series to a frequency
// given the sample rate in ticks per second.
func DominantFrequency(data []float64, sampleRate float64) float64 {
	if len(data) == 0 || sampleRate <= 0 {
		return 0
	}

	n := 1
	for n < len(data) {
		n <<= 1
	}

	spectrum := PowerSpectrum(Detrend(data))
	idx := DominantIndex(spectrum)
	return float64(idx) * sampleRate / float64(n)
}
