// Package maxpool2d implements a 2D max pooling layer and combiner
package maxpool2d

import "fmt"

import "github.com/neurlang/emotion/layer"

// MaxPool2DLayer keeps the maximum of every size x size block of each
// channel. Trailing rows and columns that do not fill a block are dropped.
type MaxPool2DLayer struct {
	channels, height, width, size int
}

type MaxPool2D struct {
	l      *MaxPool2DLayer
	argmax []int
}

// New creates a new MaxPool2D layer
func New(channels, height, width, size int) (o *MaxPool2DLayer, err error) {
	if size <= 0 || height < size || width < size {
		return nil, fmt.Errorf("New MaxPool2D: %dx%d input cannot pool by %d", height, width, size)
	}
	if channels <= 0 {
		return nil, fmt.Errorf("New MaxPool2D: channels %d must be positive", channels)
	}
	o = new(MaxPool2DLayer)
	o.channels = channels
	o.height = height
	o.width = width
	o.size = size
	return
}

// MustNew creates a new MaxPool2D layer
func MustNew(channels, height, width, size int) (o *MaxPool2DLayer) {
	o, err := New(channels, height, width, size)
	if err != nil {
		panic(err.Error())
	}
	return o
}

// Lay turns MaxPool2D layer into a combiner
func (i *MaxPool2DLayer) Lay() layer.Combiner {
	return &MaxPool2D{l: i}
}

// Params is empty.
func (i *MaxPool2DLayer) Params() []*layer.Param {
	return nil
}

// Sizes reports the input and output lengths.
func (i *MaxPool2DLayer) Sizes() (int, int) {
	oh, ow := i.Output()
	return i.channels * i.height * i.width, i.channels * oh * ow
}

// Output reports the pooled height and width.
func (i *MaxPool2DLayer) Output() (height, width int) {
	return i.height / i.size, i.width / i.size
}
