package trainer

import "context"

import "github.com/pkg/errors"
import "github.com/sirupsen/logrus"

import "github.com/neurlang/emotion/loss"
import "github.com/neurlang/emotion/net/feedforward"
import "github.com/neurlang/emotion/optimizer"
import "github.com/neurlang/emotion/parallel"

// Trainer runs fixed-epoch training of a network.
type Trainer struct {
	Net       *feedforward.FeedforwardNetwork
	Loss      loss.Loss
	Optimizer optimizer.Optimizer

	Epochs int

	// LogEvery is the number of batches whose mean loss is logged together.
	LogEvery int

	// Threads bounds the goroutines computing the gradients of one batch.
	Threads int

	Log      logrus.FieldLogger
	Observer Observer
}

// Train runs t.Epochs passes over train. When valid is not nil it is
// evaluated after every epoch. The first load error aborts training.
func (t *Trainer) Train(ctx context.Context, train, valid *parallel.Loader) error {
	var log = t.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	var every = t.LogEvery
	if every <= 0 {
		every = 20
	}
	var obs Observer = Observers(nil)
	if t.Observer != nil {
		obs = t.Observer
	}

	for epoch := 0; epoch < t.Epochs; epoch++ {
		l, acc, err := t.epoch(ctx, epoch, every, train, log, obs)
		if err != nil {
			return err
		}
		log.WithField("epoch", epoch).Infof("acc : %.4f", acc)
		obs.ObserveEpoch(epoch, l, acc)

		if valid == nil || valid.Len() == 0 {
			continue
		}
		r, err := Evaluate(ctx, t.Net, valid, t.Loss, t.Threads)
		if err != nil {
			return errors.Wrap(err, "validation")
		}
		log.WithFields(logrus.Fields{
			"epoch":       epoch,
			"accuracy":    r.Accuracy,
			"loss":        r.Loss,
			"fingerprint": r.Fingerprint,
		}).Info("validation")
		obs.ObserveEvaluation("valid", r)
	}
	log.Info("Finish Training...")
	return nil
}

// epoch returns the mean batch loss and the accuracy of one pass.
func (t *Trainer) epoch(ctx context.Context, epoch, every int, train *parallel.Loader,
	log logrus.FieldLogger, obs Observer) (mean, acc float64, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	size, _ := t.Net.Sizes()
	var running, total float64
	var pending, batches, correct int
	for b := range train.Load(ctx) {
		if b.Err != nil {
			return 0, 0, errors.Wrapf(b.Err, "epoch %d batch %d", epoch+1, b.Index+1)
		}
		inputs, targets, err := tensors(b.Samples, size)
		if err != nil {
			return 0, 0, err
		}
		out := t.Net.Backprop(inputs, targets, t.Loss, t.Threads)
		t.Optimizer.Step(out.Grads)

		l := out.Loss / float64(len(inputs))
		running += l
		total += l
		pending++
		batches++
		correct += out.Correct
		obs.ObserveBatch(epoch, b.Index, l)

		if pending == every {
			log.WithFields(logrus.Fields{
				"epoch": epoch + 1,
				"batch": b.Index + 1,
			}).Infof("loss: %.3f", running/float64(pending))
			running, pending = 0, 0
		}
	}
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if batches > 0 {
		mean = total / float64(batches)
	}
	if n := train.Len(); n > 0 {
		acc = float64(correct) / float64(n)
	}
	return mean, acc, nil
}
