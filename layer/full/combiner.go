package full

import "gonum.org/v1/gonum/floats"

// Forward computes weight * in + bias.
func (f *Full) Forward(in []float64) []float64 {
	f.input = in
	var n = f.l.in
	var out = make([]float64, f.l.out)
	for j := range out {
		out[j] = floats.Dot(f.l.weight.Data[j*n:(j+1)*n], in) + f.l.bias.Data[j]
	}
	return out
}

// Backward accumulates the weight and bias gradients.
func (f *Full) Backward(delta []float64) []float64 {
	var n = f.l.in
	var din = make([]float64, n)
	for j, d := range delta {
		if d == 0 {
			continue
		}
		floats.AddScaled(f.dw[j*n:(j+1)*n], d, f.input)
		floats.AddScaled(din, d, f.l.weight.Data[j*n:(j+1)*n])
	}
	floats.Add(f.db, delta)
	return din
}

// Grads returns the weight and bias gradients.
func (f *Full) Grads() [][]float64 {
	return [][]float64{f.dw, f.db}
}
