package trainer

import "github.com/pkg/errors"

import "github.com/neurlang/emotion/datasets"

// ErrFeatureSize is returned when a sample does not fit the network input.
var ErrFeatureSize = errors.New("feature size does not match network input")

func tensors(samples []datasets.Sample, size int) (inputs [][]float64, targets []int, err error) {
	inputs = make([][]float64, len(samples))
	targets = make([]int, len(samples))
	for i, s := range samples {
		if s.Feature == nil || len(s.Feature.Data) != size {
			var got int
			if s.Feature != nil {
				got = len(s.Feature.Data)
			}
			return nil, nil, errors.Wrapf(ErrFeatureSize, "%s has %d values, network takes %d", s.Path, got, size)
		}
		inputs[i] = s.Feature.Data
		targets[i] = s.Class
	}
	return
}
