package feature

import "math"

import "github.com/mjibson/go-dsp/window"
import "github.com/pkg/errors"
import "github.com/r9y9/gossp/stft"

import "github.com/neurlang/emotion/audio"

// Spectrogram is a bins x frames feature stored row-major.
type Spectrogram struct {
	Bins   int
	Frames int
	Data   []float64
}

// At returns the value of bin at frame.
func (s *Spectrogram) At(bin, frame int) float64 {
	return s.Data[bin*s.Frames+frame]
}

// Extract computes the configured feature of w. Duration normalization is
// applied first when configured.
func Extract(c Config, w *audio.Waveform) (*Spectrogram, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.AudioDuration > 0 {
		w = w.NormalizeDuration(c.AudioDuration)
	}
	power, err := c.power(w)
	if err != nil {
		return nil, err
	}
	if c.SpectrogramType == TypeMelSpectrogram {
		fmax := c.MelFmax
		if fmax == 0 {
			fmax = float64(w.SampleRate) / 2
		}
		power = Filterbank(c.NMels, c.NFFT, w.SampleRate, c.MelFmin, fmax).Apply(power)
	}
	power.normalize()
	return power, nil
}

// power computes the centered short-time power spectrum.
func (c Config) power(w *audio.Waveform) (*Spectrogram, error) {
	var win = int(float64(w.SampleRate) * c.WindowSize)
	var hop = int(float64(w.SampleRate) * c.WindowStride)
	if hop <= 0 || win <= 0 {
		return nil, errors.Errorf("window %d / hop %d samples at %d Hz", win, hop, w.SampleRate)
	}
	if win > c.NFFT {
		return nil, errors.Errorf("window of %d samples exceeds n_fft %d", win, c.NFFT)
	}

	s := stft.New(hop, c.NFFT)
	s.Window = hann(win, c.NFFT)
	spectrum := s.STFT(center(w.Samples, c.NFFT/2))

	var out = &Spectrogram{
		Bins:   c.NFFT/2 + 1,
		Frames: len(spectrum),
	}
	out.Data = make([]float64, out.Bins*out.Frames)
	for f := range spectrum {
		for b := 0; b < out.Bins; b++ {
			v := spectrum[f][b]
			out.Data[b*out.Frames+f] = real(v)*real(v) + imag(v)*imag(v)
		}
	}
	return out, nil
}

// hann is a periodic Hann window of length win centered in n samples.
func hann(win, n int) []float64 {
	var out = make([]float64, n)
	var offset = (n - win) / 2
	copy(out[offset:], window.Hann(win + 1)[:win])
	return out
}

// center reflect-pads buf by pad samples on each side. Signals too short to
// reflect are zero-padded.
func center(buf []float64, pad int) []float64 {
	var out = make([]float64, len(buf)+2*pad)
	copy(out[pad:], buf)
	if len(buf) <= pad {
		return out
	}
	for i := 0; i < pad; i++ {
		out[pad-1-i] = buf[i+1]
		out[pad+len(buf)+i] = buf[len(buf)-2-i]
	}
	return out
}

// normalize log compresses the feature, clamping at 1e-5.
func (s *Spectrogram) normalize() {
	for i := range s.Data {
		if s.Data[i] < 1e-5 {
			s.Data[i] = 1e-5
		}
		s.Data[i] = math.Log(s.Data[i])
	}
}

// ExtractFile loads the audio file name and extracts its feature.
func ExtractFile(c Config, name string) (*Spectrogram, error) {
	w, err := audio.Load(name)
	if err != nil {
		return nil, err
	}
	s, err := Extract(c, w)
	if err != nil {
		return nil, errors.Wrapf(err, "featurize %s", name)
	}
	return s, nil
}
