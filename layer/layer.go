package layer

import "math"
import "math/rand"

// Layer is the layer which can be used for instantiating a combiner. It owns
// the trainable parameters shared by all samples.
type Layer interface {

	// Lay creates a combiner
	Lay() Combiner

	// Params returns the trainable parameters, possibly none.
	Params() []*Param

	// Sizes reports the flattened input and output lengths.
	Sizes() (in, out int)
}

// Param is a named trainable tensor stored flat.
type Param struct {
	Name string
	Data []float64
}

// NewParam allocates a zeroed parameter of size n.
func NewParam(name string, n int) *Param {
	return &Param{Name: name, Data: make([]float64, n)}
}

// Uniform fills p with values drawn from U(-bound, bound) where
// bound = sqrt(6 / fanIn).
func (p *Param) Uniform(rng *rand.Rand, fanIn int) {
	var bound = math.Sqrt(6 / float64(fanIn))
	for i := range p.Data {
		p.Data[i] = (2*rng.Float64() - 1) * bound
	}
}
