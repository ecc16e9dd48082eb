package parallel

import "crypto/sha256"
import "encoding/binary"
import "encoding/hex"
import "sync"

// Hasher fingerprints n uint16 values written concurrently in any order.
// The sum depends only on the values and their positions.
type Hasher struct {
	mut    sync.Mutex
	data   []uint16
	filled []bool
}

func NewUint16Hasher(n int) *Hasher {
	return &Hasher{
		data:   make([]uint16, n),
		filled: make([]bool, n),
	}
}

// MustPutUint16 stores value at position n. It panics on a duplicate write.
func (h *Hasher) MustPutUint16(n int, value uint16) {
	h.mut.Lock()
	defer h.mut.Unlock()
	if h.filled[n] {
		panic("duplicate write")
	}
	h.filled[n] = true
	h.data[n] = value
}

// Sum returns the sha256 of the values in position order. Unwritten
// positions hash as zero.
func (h *Hasher) Sum() (ret [32]byte) {
	h.mut.Lock()
	defer h.mut.Unlock()
	var buf = make([]byte, 2*len(h.data))
	for i, v := range h.data {
		binary.LittleEndian.PutUint16(buf[2*i:], v)
	}
	return sha256.Sum256(buf)
}

// String returns the hex encoded Sum.
func (h *Hasher) String() string {
	sum := h.Sum()
	return hex.EncodeToString(sum[:8])
}
