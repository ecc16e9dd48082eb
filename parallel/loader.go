package parallel

import "context"
import "math/rand"
import "sync"

import "github.com/neurlang/emotion/datasets"

// Batch is one batch delivered by a Loader. Err is set on the last batch
// sent when loading failed.
type Batch struct {
	Index   int
	Samples []datasets.Sample
	Err     error
}

// Loader groups dataset items into batches, loading the items of a batch
// concurrently. The next batch is loaded while the previous one is consumed.
type Loader struct {
	ds        datasets.Dataset
	batchSize int
	shuffle   bool
	workers   int
	rng       *rand.Rand
}

// NewLoader creates a loader. Shuffled loaders draw a new order from seed on
// every Load.
func NewLoader(ds datasets.Dataset, batchSize int, shuffle bool, seed int64) *Loader {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Loader{
		ds:        ds,
		batchSize: batchSize,
		shuffle:   shuffle,
		workers:   Workers(),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// SetWorkers overrides the number of concurrent item loads.
func (l *Loader) SetWorkers(n int) {
	if n > 0 {
		l.workers = n
	}
}

// Len reports the number of items.
func (l *Loader) Len() int {
	return l.ds.Len()
}

// Batches reports the number of batches of one pass, the last one possibly
// short.
func (l *Loader) Batches() int {
	return (l.ds.Len() + l.batchSize - 1) / l.batchSize
}

func (l *Loader) order() []int {
	if l.shuffle {
		return l.rng.Perm(l.ds.Len())
	}
	var o = make([]int, l.ds.Len())
	for i := range o {
		o[i] = i
	}
	return o
}

// Load starts one pass over the dataset. Batches arrive in order and the
// channel is closed after the last one, after the first failed batch, or
// when ctx is done. Load must not be called again before the channel is
// drained or ctx is cancelled.
func (l *Loader) Load(ctx context.Context) <-chan Batch {
	var out = make(chan Batch, 1)
	var order = l.order()
	go func() {
		defer close(out)
		for b := 0; b*l.batchSize < len(order); b++ {
			if ctx.Err() != nil {
				return
			}
			idx := order[b*l.batchSize : min(len(order), (b+1)*l.batchSize)]
			batch := Batch{Index: b, Samples: make([]datasets.Sample, len(idx))}

			var mut sync.Mutex
			ForEach(len(idx), l.workers, func(i int) {
				s, err := l.ds.Get(idx[i])
				if err != nil {
					mut.Lock()
					if batch.Err == nil {
						batch.Err = err
					}
					mut.Unlock()
					return
				}
				batch.Samples[i] = s
			})
			if batch.Err != nil {
				batch.Samples = nil
			}

			select {
			case out <- batch:
			case <-ctx.Done():
				return
			}
			if batch.Err != nil {
				return
			}
		}
	}()
	return out
}
