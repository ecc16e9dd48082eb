package trainer

import "fmt"
import "strings"
import "sync"

// Tally counts target and predicted class pairs. It is safe for concurrent
// use.
type Tally struct {
	mut     sync.Mutex
	classes int
	counts  []uint64
}

// NewTally creates a confusion tally over classes classes.
func NewTally(classes int) *Tally {
	return &Tally{classes: classes, counts: make([]uint64, classes*classes)}
}

// Add votes for one target and predicted pair. Out of range pairs are
// ignored.
func (t *Tally) Add(target, predicted int) {
	if target < 0 || predicted < 0 || target >= t.classes || predicted >= t.classes {
		return
	}
	t.mut.Lock()
	t.counts[target*t.classes+predicted]++
	t.mut.Unlock()
}

// Count returns how many samples of class target were predicted as predicted.
func (t *Tally) Count(target, predicted int) uint64 {
	t.mut.Lock()
	defer t.mut.Unlock()
	return t.counts[target*t.classes+predicted]
}

// Recall returns the fraction of class target samples predicted correctly,
// or 0 for a class without samples.
func (t *Tally) Recall(target int) float64 {
	t.mut.Lock()
	defer t.mut.Unlock()
	var total uint64
	for p := 0; p < t.classes; p++ {
		total += t.counts[target*t.classes+p]
	}
	if total == 0 {
		return 0
	}
	return float64(t.counts[target*t.classes+target]) / float64(total)
}

// String renders the matrix, one target class per row.
func (t *Tally) String() string {
	t.mut.Lock()
	defer t.mut.Unlock()
	var b strings.Builder
	for r := 0; r < t.classes; r++ {
		for c := 0; c < t.classes; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%4d", t.counts[r*t.classes+c])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
