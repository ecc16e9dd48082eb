package optimizer

import "math"

import "github.com/neurlang/emotion/layer"

// Adam keeps bias corrected running moments of the gradient. Weight decay
// is added to the gradient before the moments are updated.
type Adam struct {
	params []*layer.Param
	opts   Options
	m, v   [][]float64
	t      int
}

func NewAdam(params []*layer.Param, o Options) *Adam {
	a := &Adam{params: params, opts: o}
	a.m = make([][]float64, len(params))
	a.v = make([][]float64, len(params))
	for i, p := range params {
		a.m[i] = make([]float64, len(p.Data))
		a.v[i] = make([]float64, len(p.Data))
	}
	return a
}

func (a *Adam) Step(grads [][]float64) {
	a.t++
	b1, b2 := a.opts.Beta1, a.opts.Beta2
	c1 := 1 - math.Pow(b1, float64(a.t))
	c2 := 1 - math.Pow(b2, float64(a.t))
	for i, p := range a.params {
		m, v := a.m[i], a.v[i]
		for j, g := range grads[i] {
			g += a.opts.WeightDecay * p.Data[j]
			m[j] = b1*m[j] + (1-b1)*g
			v[j] = b2*v[j] + (1-b2)*g*g
			p.Data[j] -= a.opts.LearningRate * (m[j] / c1) / (math.Sqrt(v[j]/c2) + a.opts.Epsilon)
		}
	}
}
