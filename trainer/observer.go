package trainer

// Observer receives training progress. Calls come from the training
// goroutine.
type Observer interface {
	ObserveBatch(epoch, batch int, loss float64)
	ObserveEpoch(epoch int, loss, accuracy float64)
	ObserveEvaluation(split string, r Result)
}

// Observers fans every call out to each observer in order.
type Observers []Observer

func (o Observers) ObserveBatch(epoch, batch int, loss float64) {
	for _, v := range o {
		v.ObserveBatch(epoch, batch, loss)
	}
}

func (o Observers) ObserveEpoch(epoch int, loss, accuracy float64) {
	for _, v := range o {
		v.ObserveEpoch(epoch, loss, accuracy)
	}
}

func (o Observers) ObserveEvaluation(split string, r Result) {
	for _, v := range o {
		v.ObserveEvaluation(split, r)
	}
}
