// Package conv2d implements a 2D convolution layer and combiner
package conv2d

import "fmt"
import "math/rand"

import "github.com/neurlang/emotion/layer"

// Conv2DLayer convolves channels x height x width inputs with filters
// kernels of size x size, stride 1, zero padded to keep height and width.
type Conv2DLayer struct {
	channels, height, width, filters, size int

	weight *layer.Param
	bias   *layer.Param
}

type Conv2D struct {
	l     *Conv2DLayer
	input []float64
	dw    []float64
	db    []float64
}

// MustNew creates a new Conv2D layer
func MustNew(channels, height, width, filters, size int, rng *rand.Rand) *Conv2DLayer {
	o, err := New(channels, height, width, filters, size, rng)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// New creates a new Conv2D layer. Size must be odd.
func New(channels, height, width, filters, size int, rng *rand.Rand) (o *Conv2DLayer, err error) {
	if channels <= 0 || height <= 0 || width <= 0 || filters <= 0 {
		return nil, fmt.Errorf("New Conv2D: dimensions %dx%dx%d -> %d must be positive", channels, height, width, filters)
	}
	if size <= 0 || size%2 == 0 {
		return nil, fmt.Errorf("New Conv2D: kernel size %d must be odd", size)
	}
	o = new(Conv2DLayer)
	o.channels = channels
	o.height = height
	o.width = width
	o.filters = filters
	o.size = size
	o.weight = layer.NewParam("conv2d.weight", filters*channels*size*size)
	o.bias = layer.NewParam("conv2d.bias", filters)
	if rng != nil {
		o.weight.Uniform(rng, channels*size*size)
	}
	return
}

// Lay turns Conv2D layer into a combiner
func (i *Conv2DLayer) Lay() layer.Combiner {
	return &Conv2D{
		l:  i,
		dw: make([]float64, len(i.weight.Data)),
		db: make([]float64, len(i.bias.Data)),
	}
}

// Params returns the kernels, laid out filter, channel, row, column, and
// the per filter bias.
func (i *Conv2DLayer) Params() []*layer.Param {
	return []*layer.Param{i.weight, i.bias}
}

// Sizes reports the input and output lengths.
func (i *Conv2DLayer) Sizes() (int, int) {
	return i.channels * i.height * i.width, i.filters * i.height * i.width
}
