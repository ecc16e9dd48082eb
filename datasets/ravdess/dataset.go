package ravdess

import "time"

import "github.com/pkg/errors"

import "github.com/neurlang/emotion/datasets"
import "github.com/neurlang/emotion/feature"

// Observer is notified after every sample load.
type Observer interface {
	ObserveLoad(elapsed time.Duration, err error)
}

// Dataset lazily loads and featurizes a list of RAVDESS files. Nothing is
// cached: every Get reads the file again. Get is safe for concurrent use.
type Dataset struct {
	files    []string
	config   feature.Config
	observer Observer
}

// NewDataset wraps files, rejecting an invalid feature configuration.
func NewDataset(files []string, config feature.Config) (*Dataset, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Dataset{files: files, config: config}, nil
}

// SetObserver installs o for subsequent loads.
func (d *Dataset) SetObserver(o Observer) {
	d.observer = o
}

// Len reports the number of files.
func (d *Dataset) Len() int {
	return len(d.files)
}

// Path returns the n-th file path.
func (d *Dataset) Path(n int) string {
	return d.files[n]
}

// Get loads the n-th file, extracts its feature and decodes its emotion.
func (d *Dataset) Get(n int) (s datasets.Sample, err error) {
	var start = time.Now()
	if d.observer != nil {
		defer func() { d.observer.ObserveLoad(time.Since(start), err) }()
	}
	if n < 0 || n >= len(d.files) {
		return s, errors.Errorf("index %d out of range [0, %d)", n, len(d.files))
	}
	var path = d.files[n]

	label, err := Emotion(path)
	if err != nil {
		return s, err
	}
	class, err := EmotionClass(label)
	if err != nil {
		return s, errors.Wrap(err, path)
	}
	spec, err := feature.ExtractFile(d.config, path)
	if err != nil {
		return s, err
	}
	return datasets.Sample{
		Path:    path,
		Feature: spec,
		Label:   label,
		Class:   class,
	}, nil
}
