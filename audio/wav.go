package audio

import "os"

import "github.com/faiface/beep"
import "github.com/faiface/beep/wav"
import "github.com/pkg/errors"

// WriteWav saves samples as a mono 16-bit PCM wav file.
func WriteWav(name string, samples []float64, sampleRate int) error {
	if len(samples) == 0 {
		return errors.New("cannot encode empty audio samples")
	}
	if sampleRate <= 0 {
		return errors.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	file, err := os.Create(name)
	if err != nil {
		return err
	}

	var pos int
	streamer := beep.StreamerFunc(func(buf [][2]float64) (n int, ok bool) {
		if pos >= len(samples) {
			return 0, false
		}
		for n = 0; n < len(buf) && pos < len(samples); n++ {
			buf[n][0] = samples[pos]
			buf[n][1] = samples[pos]
			pos++
		}
		return n, true
	})
	format := beep.Format{
		SampleRate:  beep.SampleRate(sampleRate),
		NumChannels: 1,
		Precision:   2,
	}
	if err := wav.Encode(file, streamer, format); err != nil {
		file.Close()
		return errors.Wrapf(err, "encode %s", name)
	}
	return file.Close()
}
