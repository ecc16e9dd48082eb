// Package optimizer updates network parameters from batch gradients
package optimizer

import "github.com/pkg/errors"

import "github.com/neurlang/emotion/layer"

// ErrUnknownOptimizer is returned by Choose for an unsupported name.
var ErrUnknownOptimizer = errors.New("unknown optimizer")

// Optimizer applies one update step. Grads are aligned with the parameters
// the optimizer was created with.
type Optimizer interface {
	Step(grads [][]float64)
}

// Options collects the hyperparameters of every optimizer. Fields an
// optimizer does not use are ignored.
type Options struct {
	LearningRate float64 `mapstructure:"lr" yaml:"lr"`
	Momentum     float64 `mapstructure:"momentum" yaml:"momentum"`
	WeightDecay  float64 `mapstructure:"weight_decay" yaml:"weight_decay"`
	Beta1        float64 `mapstructure:"beta1" yaml:"beta1"`
	Beta2        float64 `mapstructure:"beta2" yaml:"beta2"`
	Epsilon      float64 `mapstructure:"epsilon" yaml:"epsilon"`
}

// DefaultOptions returns the SGD settings of the reference experiment and
// the usual Adam constants.
func DefaultOptions() Options {
	return Options{
		LearningRate: 0.001,
		Momentum:     0.9,
		WeightDecay:  0.1,
		Beta1:        0.9,
		Beta2:        0.999,
		Epsilon:      1e-8,
	}
}

// Choose creates the optimizer registered under name over params.
func Choose(name string, params []*layer.Param, o Options) (Optimizer, error) {
	if o.LearningRate <= 0 {
		return nil, errors.Errorf("learning rate %v must be positive", o.LearningRate)
	}
	switch name {
	case "SGD", "sgd":
		return NewSGD(params, o), nil
	case "Adam", "adam":
		return NewAdam(params, o), nil
	}
	return nil, errors.Wrapf(ErrUnknownOptimizer, "%q", name)
}
