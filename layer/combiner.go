// Package layer defines the layer and combiner interfaces of the network
package layer

// Combiner evaluates one sample through a layer. It keeps whatever the
// backward pass needs from the forward pass and accumulates the parameter
// gradients of its sample. A combiner is used by one goroutine at a time.
type Combiner interface {

	// Forward computes the layer output for in. The combiner may keep a
	// reference to in until the next Forward.
	Forward(in []float64) []float64

	// Backward takes the loss gradient with respect to the last Forward
	// output, accumulates parameter gradients and returns the gradient with
	// respect to the input.
	Backward(delta []float64) []float64

	// Grads returns the accumulated gradients, aligned with Params of the
	// layer which laid this combiner.
	Grads() [][]float64
}
