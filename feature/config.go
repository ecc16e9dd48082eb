package feature

import "github.com/pkg/errors"

// Spectrogram types.
const (
	TypeSpectrogram    = "spectrogram"
	TypeMelSpectrogram = "melspectrogram"
)

// ErrUnknownSpectrogramType is returned for a type other than TypeSpectrogram
// or TypeMelSpectrogram.
var ErrUnknownSpectrogramType = errors.New("unknown spectrogram type")

// Config is the static set of featurization options.
type Config struct {
	SpectrogramType string `mapstructure:"spectrogram_type" yaml:"spectrogram_type"`
	NFFT            int    `mapstructure:"n_fft" yaml:"n_fft"`

	// WindowSize and WindowStride are in seconds.
	WindowSize   float64 `mapstructure:"window_size" yaml:"window_size"`
	WindowStride float64 `mapstructure:"window_stride" yaml:"window_stride"`

	NMels   int     `mapstructure:"n_mels" yaml:"n_mels"`
	MelFmin float64 `mapstructure:"mel_fmin" yaml:"mel_fmin"`
	// MelFmax of zero means half the sample rate.
	MelFmax float64 `mapstructure:"mel_fmax" yaml:"mel_fmax"`

	// AudioDuration is the target duration in seconds, zero disables
	// duration normalization.
	AudioDuration float64 `mapstructure:"audio_duration" yaml:"audio_duration"`
}

// NewConfig returns the default configuration.
func NewConfig() Config {
	return Config{
		SpectrogramType: TypeMelSpectrogram,
		NFFT:            512,
		WindowSize:      0.02,
		WindowStride:    0.01,
		NMels:           40,
		AudioDuration:   3,
	}
}

// Validate checks the options that do not depend on the sample rate.
func (c Config) Validate() error {
	switch c.SpectrogramType {
	case TypeSpectrogram:
	case TypeMelSpectrogram:
		if c.NMels <= 0 {
			return errors.Errorf("n_mels must be positive, got %d", c.NMels)
		}
		if c.MelFmin < 0 || (c.MelFmax != 0 && c.MelFmax <= c.MelFmin) {
			return errors.Errorf("invalid mel range [%v, %v]", c.MelFmin, c.MelFmax)
		}
	default:
		return errors.Wrapf(ErrUnknownSpectrogramType, "%q", c.SpectrogramType)
	}
	if c.NFFT < 2 {
		return errors.Errorf("n_fft must be at least 2, got %d", c.NFFT)
	}
	if c.WindowSize <= 0 || c.WindowStride <= 0 {
		return errors.Errorf("window size %v and stride %v must be positive", c.WindowSize, c.WindowStride)
	}
	if c.AudioDuration < 0 {
		return errors.Errorf("audio_duration must not be negative, got %v", c.AudioDuration)
	}
	return nil
}

// Bins reports the feature height.
func (c Config) Bins() int {
	if c.SpectrogramType == TypeMelSpectrogram {
		return c.NMels
	}
	return c.NFFT/2 + 1
}
