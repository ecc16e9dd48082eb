package trainer

import "context"

import "github.com/pkg/errors"

import "github.com/neurlang/emotion/loss"
import "github.com/neurlang/emotion/net/feedforward"
import "github.com/neurlang/emotion/parallel"

// Result is the outcome of an evaluation pass.
type Result struct {
	// Accuracy is the percentage of correctly classified samples.
	Accuracy float64

	// Loss is the sum of the per batch mean losses.
	Loss float64

	Correct, Total int

	// Confusion counts target and predicted class pairs.
	Confusion *Tally

	// Fingerprint identifies the sequence of predictions.
	Fingerprint string
}

// Evaluate runs the network forward over every batch of loader without
// touching any gradient state.
func Evaluate(ctx context.Context, net *feedforward.FeedforwardNetwork, loader *parallel.Loader, l loss.Loss, threads int) (r Result, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	size, classes := net.Sizes()
	r.Confusion = NewTally(classes)
	var hsh = parallel.NewUint16Hasher(loader.Len())
	for b := range loader.Load(ctx) {
		if b.Err != nil {
			return r, errors.Wrap(b.Err, "evaluate")
		}
		inputs, targets, err := tensors(b.Samples, size)
		if err != nil {
			return r, err
		}
		out := net.Evaluate(inputs, targets, l, threads)
		for i, p := range out.Predicted {
			r.Confusion.Add(targets[i], p)
			hsh.MustPutUint16(r.Total+i, uint16(p))
		}
		r.Loss += out.Loss / float64(len(inputs))
		r.Correct += out.Correct
		r.Total += len(inputs)
	}
	if err := ctx.Err(); err != nil {
		return r, err
	}
	if r.Total > 0 {
		r.Accuracy = 100 * float64(r.Correct) / float64(r.Total)
	}
	r.Fingerprint = hsh.String()
	return r, nil
}
