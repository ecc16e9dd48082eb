package feature

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurlang/emotion/audio"
)

func tone(seconds float64, sampleRate int, freq float64) *audio.Waveform {
	n := audio.TargetLength(seconds, sampleRate)
	w := &audio.Waveform{SampleRate: sampleRate, Samples: make([]float64, n)}
	for i := range w.Samples {
		w.Samples[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return w
}

func TestValidate(t *testing.T) {
	require.NoError(t, NewConfig().Validate())

	c := NewConfig()
	c.SpectrogramType = "mfcc"
	assert.True(t, errors.Is(c.Validate(), ErrUnknownSpectrogramType))

	c = NewConfig()
	c.NMels = 0
	assert.Error(t, c.Validate())

	c = NewConfig()
	c.WindowStride = 0
	assert.Error(t, c.Validate())

	c = NewConfig()
	c.AudioDuration = -1
	assert.Error(t, c.Validate())
}

func TestExtractSpectrogramShape(t *testing.T) {
	c := NewConfig()
	c.SpectrogramType = TypeSpectrogram
	c.AudioDuration = 0

	s, err := Extract(c, tone(0.1, 16000, 1000))
	require.NoError(t, err)

	assert.Equal(t, 257, s.Bins)
	assert.Equal(t, 11, s.Frames)
	assert.Len(t, s.Data, s.Bins*s.Frames)
	assert.Equal(t, c.Bins(), s.Bins)
}

func TestExtractSpectrogramPeak(t *testing.T) {
	c := NewConfig()
	c.SpectrogramType = TypeSpectrogram
	c.AudioDuration = 0

	s, err := Extract(c, tone(0.1, 16000, 1000))
	require.NoError(t, err)

	frame := s.Frames / 2
	best := 0
	for b := 1; b < s.Bins; b++ {
		if s.At(b, frame) > s.At(best, frame) {
			best = b
		}
	}
	// 1000 Hz with 512 point FFT at 16 kHz sits in bin 32.
	assert.Equal(t, 32, best)
}

func TestExtractMelShapeWithDuration(t *testing.T) {
	c := NewConfig()
	c.AudioDuration = 0.2

	short, err := Extract(c, tone(0.05, 16000, 440))
	require.NoError(t, err)
	long, err := Extract(c, tone(0.5, 16000, 440))
	require.NoError(t, err)

	assert.Equal(t, 40, short.Bins)
	assert.Equal(t, 21, short.Frames)
	assert.Equal(t, short.Bins, long.Bins)
	assert.Equal(t, short.Frames, long.Frames)
}

func TestExtractLogFloor(t *testing.T) {
	c := NewConfig()
	c.AudioDuration = 0.1
	silent := &audio.Waveform{SampleRate: 16000, Samples: make([]float64, 10)}

	s, err := Extract(c, silent)
	require.NoError(t, err)
	for _, v := range s.Data {
		assert.InDelta(t, math.Log(1e-5), v, 1e-12)
	}
}

func TestExtractWindowTooLarge(t *testing.T) {
	c := NewConfig()
	c.WindowSize = 0.05
	_, err := Extract(c, tone(0.1, 16000, 440))
	assert.Error(t, err)
}

func TestExtractUnknownType(t *testing.T) {
	c := NewConfig()
	c.SpectrogramType = "chromagram"
	_, err := Extract(c, tone(0.1, 16000, 440))
	assert.True(t, errors.Is(err, ErrUnknownSpectrogramType))
}

func TestMelScale(t *testing.T) {
	for _, hz := range []float64{0, 100, 700, 4000, 8000} {
		assert.InDelta(t, hz, MelToHz(HzToMel(hz)), 1e-6)
	}
	assert.InDelta(t, 1127*math.Log(2), HzToMel(700), 1e-9)
}

func TestFilterbank(t *testing.T) {
	fb := Filterbank(40, 512, 16000, 0, 8000)
	require.Len(t, fb.Weights, 40*257)
	for m := 0; m < fb.Mels; m++ {
		var peak float64
		for b := 0; b < fb.Bins; b++ {
			w := fb.Weights[m*fb.Bins+b]
			assert.GreaterOrEqual(t, w, 0.0)
			peak = math.Max(peak, w)
		}
		assert.Greater(t, peak, 0.0, "filter %d is empty", m)
		assert.LessOrEqual(t, peak, 1.0)
	}
}

func TestCenter(t *testing.T) {
	assert.Equal(t, []float64{3, 2, 1, 2, 3, 4, 3, 2}, center([]float64{1, 2, 3, 4}, 2))
	assert.Equal(t, []float64{0, 0, 1, 0, 0}, center([]float64{1}, 2))
}
