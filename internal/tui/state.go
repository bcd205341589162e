package tui

import (
	"time"

	"github.com/mkalstad/pulse/internal/metrics"
)

// RingBuffer is a fixed-size circular buffer. When full, new pushes
// overwrite the oldest entry.
type RingBuffer[T any] struct {
	buf   []T
	size  int
	head  int // next write position
	count int
}

// NewRingBuffer creates a ring buffer with the given capacity.
func NewRingBuffer[T any](size int) *RingBuffer[T] {
	return &RingBuffer[T]{
		buf:  make([]T, size),
		size: size,
	}
}

// Push adds a value to the buffer, overwriting the oldest if full.
func (r *RingBuffer[T]) Push(v T) {
	r.buf[r.head] = v
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// Data returns all stored values in insertion order (oldest first).
func (r *RingBuffer[T]) Data() []T {
	if r.count == 0 {
		return nil
	}
	out := make([]T, r.count)
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		out[i] = r.buf[(start+i)%r.size]
	}
	return out
}

// Last returns the newest element, or false if the buffer is empty.
func (r *RingBuffer[T]) Last() (T, bool) {
	if r.count == 0 {
		var zero T
		return zero, false
	}
	idx := (r.head - 1 + r.size) % r.size
	return r.buf[idx], true
}

// Len returns the number of stored values.
func (r *RingBuffer[T]) Len() int {
	return r.count
}

// historySize bounds the sparkline windows. At a 500ms sample interval
// this covers the last minute.
const historySize = 120

// History accumulates per-snapshot series for the sparkline graphs.
type History struct {
	CPU      *RingBuffer[float64]
	Memory   *RingBuffer[float64]
	NetSend  *RingBuffer[float64]
	NetRecv  *RingBuffer[float64]
	lastSeen time.Time
}

// NewHistory creates empty history buffers.
func NewHistory() *History {
	return &History{
		CPU:     NewRingBuffer[float64](historySize),
		Memory:  NewRingBuffer[float64](historySize),
		NetSend: NewRingBuffer[float64](historySize),
		NetRecv: NewRingBuffer[float64](historySize),
	}
}

// Observe appends a snapshot's values to the series. Snapshots are
// deduplicated on their timestamp so rendering faster than sampling
// does not repeat points.
func (h *History) Observe(snap metrics.Snapshot) {
	if snap.Taken.IsZero() || snap.Taken.Equal(h.lastSeen) {
		return
	}
	h.lastSeen = snap.Taken
	if snap.CPU.Available {
		h.CPU.Push(snap.CPU.Percent)
	}
	if snap.Memory.Available {
		h.Memory.Push(snap.Memory.Percent)
	}
	if snap.Network.Available {
		h.NetSend.Push(snap.Network.SendRate)
		h.NetRecv.Push(snap.Network.RecvRate)
	}
}
