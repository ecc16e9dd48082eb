package audio

import "math"

// TargetLength is the number of samples that spans seconds at sampleRate,
// rounded half to even.
func TargetLength(seconds float64, sampleRate int) int {
	return int(math.RoundToEven(seconds * float64(sampleRate)))
}

// NormalizeDuration truncates or zero-pads the end of samples so that it
// spans exactly seconds. Input of the right length is returned as is. The
// input slice is never written to.
func NormalizeDuration(samples []float64, sampleRate int, seconds float64) []float64 {
	var length = TargetLength(seconds, sampleRate)
	switch {
	case len(samples) > length:
		return samples[:length:length]
	case len(samples) < length:
		var out = make([]float64, length)
		copy(out, samples)
		return out
	}
	return samples
}

// NormalizeDuration returns a copy of w spanning exactly seconds.
func (w *Waveform) NormalizeDuration(seconds float64) *Waveform {
	return &Waveform{
		Path:       w.Path,
		Samples:    NormalizeDuration(w.Samples, w.SampleRate, seconds),
		SampleRate: w.SampleRate,
	}
}
