package optimizer

import "gonum.org/v1/gonum/floats"

import "github.com/neurlang/emotion/layer"

// SGD is stochastic gradient descent with momentum and L2 weight decay.
// The first step seeds the momentum buffer with the gradient itself.
type SGD struct {
	params []*layer.Param
	opts   Options
	buf    [][]float64
}

func NewSGD(params []*layer.Param, o Options) *SGD {
	return &SGD{params: params, opts: o}
}

func (s *SGD) Step(grads [][]float64) {
	first := s.buf == nil
	if first {
		s.buf = make([][]float64, len(s.params))
	}
	for i, p := range s.params {
		d := append([]float64(nil), grads[i]...)
		if s.opts.WeightDecay != 0 {
			floats.AddScaled(d, s.opts.WeightDecay, p.Data)
		}
		if s.opts.Momentum != 0 {
			if first {
				s.buf[i] = d
			} else {
				floats.Scale(s.opts.Momentum, s.buf[i])
				floats.Add(s.buf[i], d)
			}
			d = s.buf[i]
		}
		floats.AddScaled(p.Data, -s.opts.LearningRate, d)
	}
}
