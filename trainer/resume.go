package trainer

import "github.com/sirupsen/logrus"

import "github.com/neurlang/emotion/net/feedforward"

// Resume loads the weights stored in dstmodel into net when resume is set.
func Resume(net *feedforward.FeedforwardNetwork, resume bool, dstmodel string, log logrus.FieldLogger) error {
	if !resume || dstmodel == "" {
		return nil
	}
	if err := net.ReadCompressedWeightsFromFile(dstmodel); err != nil {
		return err
	}
	log.WithField("model", dstmodel).Info("resumed weights")
	return nil
}
