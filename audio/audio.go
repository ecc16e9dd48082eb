package audio

import "io"
import "os"
import "path/filepath"
import "strings"

import "github.com/faiface/beep/wav"
import "github.com/mewkiz/flac"
import "github.com/pkg/errors"

// ErrFileNotLoaded is returned when a file decodes to zero samples.
var ErrFileNotLoaded = errors.New("audio file not loaded")

// ErrUnsupportedFormat is returned for extensions other than .wav and .flac.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Waveform is a decoded mono recording.
type Waveform struct {
	Path       string
	Samples    []float64
	SampleRate int
}

// Duration reports the waveform length in seconds.
func (w *Waveform) Duration() float64 {
	if w.SampleRate == 0 {
		return 0
	}
	return float64(len(w.Samples)) / float64(w.SampleRate)
}

// Load decodes a .wav or .flac file, chosen by extension.
func Load(name string) (*Waveform, error) {
	var samples []float64
	var sr int
	var err error
	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		samples, sr, err = loadwav(name)
	case ".flac":
		samples, sr, err = loadflac(name)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "load %s", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", name)
	}
	if len(samples) == 0 || sr == 0 {
		return nil, errors.Wrapf(ErrFileNotLoaded, "load %s", name)
	}
	return &Waveform{Path: name, Samples: samples, SampleRate: sr}, nil
}

func loadwav(name string) (out []float64, sr int, err error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()

	stream, format, err := wav.Decode(file)
	if err != nil {
		return nil, 0, err
	}
	defer stream.Close()

	var samples = make([][2]float64, 512)
	for {
		n, ok := stream.Stream(samples)
		for i := 0; i < n; i++ {
			out = append(out, samples[i][0])
		}
		if !ok {
			break
		}
	}
	if err := stream.Err(); err != nil {
		return nil, 0, err
	}
	return out, int(format.SampleRate), nil
}

func loadflac(name string) (out []float64, sr int, err error) {
	stream, err := flac.ParseFile(name)
	if err != nil {
		return nil, 0, err
	}
	defer stream.Close()

	var scale = float64(int64(1) << (stream.Info.BitsPerSample - 1))
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		for _, s := range frame.Subframes[0].Samples {
			out = append(out, float64(s)/scale)
		}
	}
	return out, int(stream.Info.SampleRate), nil
}
