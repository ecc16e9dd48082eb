// Package loss implements classification losses over network logits
package loss

import "math"

import "github.com/pkg/errors"
import "gonum.org/v1/gonum/floats"

// ErrUnknownLoss is returned by Choose for an unsupported loss name.
var ErrUnknownLoss = errors.New("unknown loss")

// Loss scores logits against a target class.
type Loss interface {
	// Loss returns the loss value and its gradient with respect to logits.
	Loss(logits []float64, target int) (float64, []float64)
}

// Choose returns the loss registered under name.
func Choose(name string) (Loss, error) {
	switch name {
	case "CrossEntropyLoss", "cross_entropy":
		return CrossEntropy{}, nil
	}
	return nil, errors.Wrapf(ErrUnknownLoss, "%q", name)
}

// CrossEntropy is the negative log likelihood of the softmax of the logits.
type CrossEntropy struct{}

func (CrossEntropy) Loss(logits []float64, target int) (float64, []float64) {
	grad := Softmax(logits)
	l := -math.Log(math.Max(grad[target], math.SmallestNonzeroFloat64))
	grad[target] -= 1
	return l, grad
}

// Softmax returns the normalized exponentials of logits.
func Softmax(logits []float64) []float64 {
	out := make([]float64, len(logits))
	if len(logits) == 0 {
		return out
	}
	m := floats.Max(logits)
	for i, v := range logits {
		out[i] = math.Exp(v - m)
	}
	floats.Scale(1/floats.Sum(out), out)
	return out
}

// Argmax returns the index of the largest logit, the first one on ties.
func Argmax(logits []float64) int {
	if len(logits) == 0 {
		return -1
	}
	return floats.MaxIdx(logits)
}
