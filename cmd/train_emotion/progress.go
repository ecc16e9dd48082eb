package main

import "time"

import "github.com/vbauerster/mpb/v8"
import "github.com/vbauerster/mpb/v8/decor"

import "github.com/neurlang/emotion/trainer"

// progress draws one bar over all batches of the run.
type progress struct {
	p    *mpb.Progress
	bar  *mpb.Bar
	last time.Time
}

func newProgress(epochs, batches int) *progress {
	p := mpb.New(mpb.WithWidth(64))
	bar := p.AddBar(int64(epochs*batches),
		mpb.PrependDecorators(
			decor.Name("Training: "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(
			decor.Percentage(),
			decor.EwmaETA(decor.ET_STYLE_GO, 60),
		),
	)
	return &progress{p: p, bar: bar, last: time.Now()}
}

func (p *progress) ObserveBatch(epoch, batch int, loss float64) {
	now := time.Now()
	p.bar.EwmaIncrement(now.Sub(p.last))
	p.last = now
}

func (p *progress) ObserveEpoch(epoch int, loss, accuracy float64) {}

func (p *progress) ObserveEvaluation(split string, r trainer.Result) {}

// Wait completes the bar and waits for it to be drawn.
func (p *progress) Wait() {
	p.bar.Abort(false)
	p.p.Wait()
}
