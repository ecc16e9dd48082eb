// Package full implements a fully connected layer and combiner
package full

import "fmt"
import "math/rand"

import "github.com/neurlang/emotion/layer"

type FullLayer struct {
	in, out int
	weight  *layer.Param
	bias    *layer.Param
}

type Full struct {
	l     *FullLayer
	input []float64
	dw    []float64
	db    []float64
}

// MustNew creates a new full layer mapping in inputs to out outputs
func MustNew(in, out int, rng *rand.Rand) *FullLayer {
	o, err := New(in, out, rng)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New creates a new full layer mapping in inputs to out outputs
func New(in, out int, rng *rand.Rand) (o *FullLayer, err error) {
	if in <= 0 || out <= 0 {
		return nil, fmt.Errorf("New Full: sizes %d -> %d must be positive", in, out)
	}
	o = new(FullLayer)
	o.in = in
	o.out = out
	o.weight = layer.NewParam("full.weight", in*out)
	o.bias = layer.NewParam("full.bias", out)
	if rng != nil {
		o.weight.Uniform(rng, in)
	}
	return
}

// Lay turns full layer into a combiner
func (i *FullLayer) Lay() layer.Combiner {
	return &Full{
		l:  i,
		dw: make([]float64, len(i.weight.Data)),
		db: make([]float64, len(i.bias.Data)),
	}
}

// Params returns the weight matrix (out rows of in values) and the bias.
func (i *FullLayer) Params() []*layer.Param {
	return []*layer.Param{i.weight, i.bias}
}

// Sizes reports the input and output length.
func (i *FullLayer) Sizes() (int, int) {
	return i.in, i.out
}
