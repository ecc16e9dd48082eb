package feature

import "math"

import "gonum.org/v1/gonum/floats"

const melBreakFrequencyHertz = 700.0
const melHighFrequencyQ = 1127.0

// MelToHz converts from the mel scale.
func MelToHz(value float64) float64 {
	return melBreakFrequencyHertz * (math.Exp(value/melHighFrequencyQ) - 1.0)
}

// HzToMel converts to the mel scale.
func HzToMel(value float64) float64 {
	return melHighFrequencyQ * math.Log(1.0+(value/melBreakFrequencyHertz))
}

// MelFilterbank holds triangular filters, one row of nfft/2+1 weights per
// mel band.
type MelFilterbank struct {
	Mels    int
	Bins    int
	Weights []float64
}

// Filterbank builds mels overlapping triangular filters with centers evenly
// spaced on the mel scale between fmin and fmax.
func Filterbank(mels, nfft, sampleRate int, fmin, fmax float64) *MelFilterbank {
	var bins = nfft/2 + 1
	var fb = &MelFilterbank{
		Mels:    mels,
		Bins:    bins,
		Weights: make([]float64, mels*bins),
	}

	var lo, hi = HzToMel(fmin), HzToMel(fmax)
	var points = make([]float64, mels+2)
	for i := range points {
		points[i] = MelToHz(lo + (hi-lo)*float64(i)/float64(mels+1))
	}

	for m := 0; m < mels; m++ {
		left, middle, right := points[m], points[m+1], points[m+2]
		for b := 0; b < bins; b++ {
			freq := float64(b) * float64(sampleRate) / float64(nfft)
			var w float64
			switch {
			case freq > left && freq <= middle:
				w = (freq - left) / (middle - left)
			case freq > middle && freq < right:
				w = (right - freq) / (right - middle)
			}
			fb.Weights[m*bins+b] = w
		}
	}
	return fb
}

// Apply projects a power spectrogram with fb.Bins bins onto the mel bands.
func (fb *MelFilterbank) Apply(s *Spectrogram) *Spectrogram {
	var out = &Spectrogram{
		Bins:   fb.Mels,
		Frames: s.Frames,
		Data:   make([]float64, fb.Mels*s.Frames),
	}
	for m := 0; m < fb.Mels; m++ {
		row := fb.Weights[m*fb.Bins : (m+1)*fb.Bins]
		for b, w := range row {
			if w == 0 {
				continue
			}
			floats.AddScaled(out.Data[m*s.Frames:(m+1)*s.Frames], w, s.Data[b*s.Frames:(b+1)*s.Frames])
		}
	}
	return out
}
