// Package datasets enumerates audio files and splits them into train,
// validation and test lists.
package datasets

import "github.com/neurlang/emotion/feature"

// Dataset is an indexed collection of featurized samples.
type Dataset interface {

	// Len reports the number of samples.
	Len() int

	// Get loads the n-th sample.
	Get(n int) (Sample, error)
}

// Sample is one featurized recording and its class.
type Sample struct {
	Path    string
	Feature *feature.Spectrogram

	// Label is the raw label code, Class its index.
	Label string
	Class int
}
