// Package feedforward implements a feedforward network type
package feedforward

import "fmt"
import "sync"

import "github.com/neurlang/emotion/layer"
import "github.com/neurlang/emotion/loss"
import "github.com/neurlang/emotion/parallel"

// FeedforwardNetwork is the feedforward network
type FeedforwardNetwork struct {
	layers []layer.Layer
}

// Batch is the outcome of running a batch through the network.
type Batch struct {
	// Loss is the summed loss of the batch.
	Loss float64

	// Correct counts the samples whose top logit is the target.
	Correct int

	// Predicted holds the top logit index of every sample.
	Predicted []int

	// Grads are the batch mean gradients aligned with Params. They are nil
	// unless computed by Backprop.
	Grads [][]float64
}

// NewLayer adds a layer to the end of network. It panics if the layer input
// does not match the output of the previous layer.
func (f *FeedforwardNetwork) NewLayer(l layer.Layer) {
	if len(f.layers) > 0 {
		_, prev := f.layers[len(f.layers)-1].Sizes()
		if in, _ := l.Sizes(); in != prev {
			panic(fmt.Sprintf("layer %d takes %d inputs, previous layer outputs %d", len(f.layers), in, prev))
		}
	}
	f.layers = append(f.layers, l)
}

// LenLayers returns the number of layers.
func (f FeedforwardNetwork) LenLayers() int {
	return len(f.layers)
}

// Len returns the number of weights which need to be trained inside the network.
func (f FeedforwardNetwork) Len() (o int) {
	for _, p := range f.Params() {
		o += len(p.Data)
	}
	return
}

// Params returns the trainable parameters of all layers in order.
func (f FeedforwardNetwork) Params() (o []*layer.Param) {
	for _, l := range f.layers {
		o = append(o, l.Params()...)
	}
	return
}

// Sizes reports the network input and output lengths.
func (f FeedforwardNetwork) Sizes() (in, out int) {
	if len(f.layers) == 0 {
		return 0, 0
	}
	in, _ = f.layers[0].Sizes()
	_, out = f.layers[len(f.layers)-1].Sizes()
	return
}

func (f FeedforwardNetwork) lay() []layer.Combiner {
	var c = make([]layer.Combiner, len(f.layers))
	for i, l := range f.layers {
		c[i] = l.Lay()
	}
	return c
}

func forward(c []layer.Combiner, in []float64) []float64 {
	for _, v := range c {
		in = v.Forward(in)
	}
	return in
}

// Infer returns the network logits for input.
func (f FeedforwardNetwork) Infer(in []float64) []float64 {
	return forward(f.lay(), in)
}

// Predict returns the most likely class for input.
func (f FeedforwardNetwork) Predict(in []float64) int {
	return loss.Argmax(f.Infer(in))
}

// Evaluate runs the batch forward only.
func (f FeedforwardNetwork) Evaluate(inputs [][]float64, targets []int, l loss.Loss, threads int) Batch {
	return f.run(inputs, targets, l, threads, false)
}

// Backprop runs the batch forward and backward. Samples are split among
// threads goroutines, each accumulating into its own combiners, and the
// per goroutine gradients are merged and averaged over the batch.
func (f FeedforwardNetwork) Backprop(inputs [][]float64, targets []int, l loss.Loss, threads int) Batch {
	return f.run(inputs, targets, l, threads, true)
}

func (f FeedforwardNetwork) run(inputs [][]float64, targets []int, l loss.Loss, threads int, backward bool) (b Batch) {
	if threads <= 0 || threads > len(inputs) {
		threads = len(inputs)
	}
	b.Predicted = make([]int, len(inputs))
	if backward {
		for _, p := range f.Params() {
			b.Grads = append(b.Grads, make([]float64, len(p.Data)))
		}
	}
	var mut sync.Mutex
	parallel.ForEach(threads, threads, func(t int) {
		var combiners = f.lay()
		var sum float64
		var correct int
		for i := t; i < len(inputs); i += threads {
			logits := forward(combiners, inputs[i])
			value, delta := l.Loss(logits, targets[i])
			sum += value
			b.Predicted[i] = loss.Argmax(logits)
			if b.Predicted[i] == targets[i] {
				correct++
			}
			if !backward {
				continue
			}
			for j := len(combiners) - 1; j >= 0; j-- {
				delta = combiners[j].Backward(delta)
			}
		}
		mut.Lock()
		defer mut.Unlock()
		b.Loss += sum
		b.Correct += correct
		if !backward {
			return
		}
		var n int
		for _, c := range combiners {
			for _, g := range c.Grads() {
				for k, v := range g {
					b.Grads[n][k] += v
				}
				n++
			}
		}
	})
	if backward && len(inputs) > 0 {
		var scale = 1 / float64(len(inputs))
		for _, g := range b.Grads {
			for k := range g {
				g[k] *= scale
			}
		}
	}
	return
}
