package maxpool2d

// Forward keeps the block maxima and remembers where they came from.
func (s *MaxPool2D) Forward(in []float64) []float64 {
	l := s.l
	oh, ow := l.Output()
	out := make([]float64, l.channels*oh*ow)
	s.argmax = make([]int, len(out))
	for c := 0; c < l.channels; c++ {
		base := c * l.height * l.width
		for y := 0; y < oh; y++ {
			for x := 0; x < ow; x++ {
				best := base + (y*l.size)*l.width + x*l.size
				for i := 0; i < l.size; i++ {
					for j := 0; j < l.size; j++ {
						n := base + (y*l.size+i)*l.width + x*l.size + j
						if in[n] > in[best] {
							best = n
						}
					}
				}
				m := (c*oh+y)*ow + x
				out[m] = in[best]
				s.argmax[m] = best
			}
		}
	}
	return out
}

// Backward routes every gradient to the input which won its block.
func (s *MaxPool2D) Backward(delta []float64) []float64 {
	l := s.l
	din := make([]float64, l.channels*l.height*l.width)
	for m, d := range delta {
		din[s.argmax[m]] += d
	}
	return din
}

// Grads is empty.
func (s *MaxPool2D) Grads() [][]float64 {
	return nil
}
