// Package ravdess implements the RAVDESS emotional speech Dataset
package ravdess

import "strings"

import "github.com/pkg/errors"

import "github.com/neurlang/emotion/datasets"

// ErrMalformedName is returned for file names without the seven fields of
// the RAVDESS naming convention.
var ErrMalformedName = errors.New("malformed RAVDESS file name")

// ErrUnknownEmotion is returned for an emotion code outside 01..08.
var ErrUnknownEmotion = errors.New("unknown emotion code")

// Property is the label record encoded in a file name such as
// 03-01-01-01-01-01-01.wav.
//
//	Modality           01 = full-AV, 02 = video-only, 03 = audio-only
//	VocalChannel       01 = speech, 02 = song
//	Emotion            01 = neutral ... 08 = surprised
//	EmotionalIntensity 01 = normal, 02 = strong (none for neutral)
//	Statement          01 = "Kids are talking by the door", 02 = "Dogs are sitting by the door"
//	Repetition         01 = 1st, 02 = 2nd
//	Actor              01 to 24, odd male, even female
type Property struct {
	Modality           string
	VocalChannel       string
	Emotion            string
	EmotionalIntensity string
	Statement          string
	Repetition         string
	Actor              string
}

// Parse decodes the file name of path.
func Parse(path string) (p Property, err error) {
	var idea = strings.Split(datasets.PureFilename(path), "-")
	if len(idea) < 7 {
		return p, errors.Wrapf(ErrMalformedName, "%s has %d fields", path, len(idea))
	}
	return Property{
		Modality:           idea[0],
		VocalChannel:       idea[1],
		Emotion:            idea[2],
		EmotionalIntensity: idea[3],
		Statement:          idea[4],
		Repetition:         idea[5],
		Actor:              idea[6],
	}, nil
}

// Emotion returns the emotion code of path.
func Emotion(path string) (string, error) {
	p, err := Parse(path)
	if err != nil {
		return "", err
	}
	return p.Emotion, nil
}

// Classes is the number of emotions.
const Classes = 8

var emotions = [Classes]string{
	"neutral", "calm", "happy", "sad", "angry", "fearful", "disgust", "surprised",
}

// EmotionClass maps an emotion code 01..08 to a class 0..7.
func EmotionClass(code string) (int, error) {
	if len(code) == 2 && code[0] == '0' && code[1] >= '1' && code[1] <= '8' {
		return int(code[1] - '1'), nil
	}
	return -1, errors.Wrapf(ErrUnknownEmotion, "%q", code)
}

// EmotionName returns the name of a class, or "" when out of range.
func EmotionName(class int) string {
	if class < 0 || class >= Classes {
		return ""
	}
	return emotions[class]
}
