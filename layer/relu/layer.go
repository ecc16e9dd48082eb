// Package relu implements the rectified linear activation layer
package relu

import "github.com/neurlang/emotion/layer"

type ReLULayer struct {
	size int
}

type ReLU struct {
	mask []bool
}

// New creates a ReLU over size values.
func New(size int) *ReLULayer {
	return &ReLULayer{size: size}
}

// Lay turns ReLU layer into a combiner
func (i *ReLULayer) Lay() layer.Combiner {
	return &ReLU{mask: make([]bool, i.size)}
}

// Params is empty.
func (i *ReLULayer) Params() []*layer.Param {
	return nil
}

// Sizes reports equal input and output lengths.
func (i *ReLULayer) Sizes() (int, int) {
	return i.size, i.size
}

// Forward zeroes negative inputs.
func (r *ReLU) Forward(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		r.mask[i] = v > 0
		if r.mask[i] {
			out[i] = v
		}
	}
	return out
}

// Backward passes gradients of positive inputs.
func (r *ReLU) Backward(delta []float64) []float64 {
	din := make([]float64, len(delta))
	for i, d := range delta {
		if r.mask[i] {
			din[i] = d
		}
	}
	return din
}

// Grads is empty.
func (r *ReLU) Grads() [][]float64 {
	return nil
}
