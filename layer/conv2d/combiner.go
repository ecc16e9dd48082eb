package conv2d

// Forward convolves in with every filter.
func (f *Conv2D) Forward(in []float64) []float64 {
	f.input = in
	l := f.l
	plane := l.height * l.width
	pad := l.size / 2
	out := make([]float64, l.filters*plane)
	for k := 0; k < l.filters; k++ {
		o := out[k*plane : (k+1)*plane]
		for j := range o {
			o[j] = l.bias.Data[k]
		}
		for c := 0; c < l.channels; c++ {
			src := in[c*plane : (c+1)*plane]
			kern := l.weight.Data[(k*l.channels+c)*l.size*l.size:]
			for i := 0; i < l.size; i++ {
				for j := 0; j < l.size; j++ {
					w := kern[i*l.size+j]
					dy, dx := i-pad, j-pad
					for y := max(0, -dy); y < min(l.height, l.height-dy); y++ {
						row := src[(y+dy)*l.width:]
						orow := o[y*l.width:]
						for x := max(0, -dx); x < min(l.width, l.width-dx); x++ {
							orow[x] += w * row[x+dx]
						}
					}
				}
			}
		}
	}
	return out
}

// Backward accumulates kernel and bias gradients and returns the input
// gradient.
func (f *Conv2D) Backward(delta []float64) []float64 {
	l := f.l
	plane := l.height * l.width
	pad := l.size / 2
	din := make([]float64, l.channels*plane)
	for k := 0; k < l.filters; k++ {
		d := delta[k*plane : (k+1)*plane]
		for _, v := range d {
			f.db[k] += v
		}
		for c := 0; c < l.channels; c++ {
			src := f.input[c*plane : (c+1)*plane]
			dsrc := din[c*plane : (c+1)*plane]
			base := (k*l.channels + c) * l.size * l.size
			for i := 0; i < l.size; i++ {
				for j := 0; j < l.size; j++ {
					w := l.weight.Data[base+i*l.size+j]
					dy, dx := i-pad, j-pad
					var dw float64
					for y := max(0, -dy); y < min(l.height, l.height-dy); y++ {
						row := src[(y+dy)*l.width:]
						drow := dsrc[(y+dy)*l.width:]
						dout := d[y*l.width:]
						for x := max(0, -dx); x < min(l.width, l.width-dx); x++ {
							dw += dout[x] * row[x+dx]
							drow[x+dx] += w * dout[x]
						}
					}
					f.dw[base+i*l.size+j] += dw
				}
			}
		}
	}
	return din
}

// Grads returns the kernel and bias gradients.
func (f *Conv2D) Grads() [][]float64 {
	return [][]float64{f.dw, f.db}
}
