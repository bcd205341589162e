package tui

import (
	"reflect"
	"testing"
	"time"

	"github.com/mkalstad/pulse/internal/metrics"
)

func TestRingBufferBasic(t *testing.T) {
	r := NewRingBuffer[int](5)

	if r.Len() != 0 {
		t.Fatalf("expected len 0, got %d", r.Len())
	}
	if data := r.Data(); data != nil {
		t.Fatalf("expected nil data, got %v", data)
	}

	r.Push(1)
	r.Push(2)
	r.Push(3)

	want := []int{1, 2, 3}
	if got := r.Data(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Data() = %v, want %v", got, want)
	}
}

func TestRingBufferOverflow(t *testing.T) {
	r := NewRingBuffer[int](3)

	for i := 1; i <= 5; i++ {
		r.Push(i)
	}

	if r.Len() != 3 {
		t.Fatalf("expected len 3, got %d", r.Len())
	}
	want := []int{3, 4, 5}
	if got := r.Data(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Data() = %v, want %v", got, want)
	}
}

func TestRingBufferLast(t *testing.T) {
	r := NewRingBuffer[string](2)

	if _, ok := r.Last(); ok {
		t.Fatal("expected no last element on empty buffer")
	}
	r.Push("a")
	r.Push("b")
	r.Push("c")
	if v, ok := r.Last(); !ok || v != "c" {
		t.Fatalf("Last() = %q, %v, want %q, true", v, ok, "c")
	}
}

func sampleSnapshot(taken time.Time) metrics.Snapshot {
	return metrics.Snapshot{
		Taken:   taken,
		CPU:     metrics.CPUStats{Available: true, Percent: 42},
		Memory:  metrics.MemoryStats{Available: true, Percent: 60},
		Network: metrics.NetworkStats{Available: true, SendRate: 1024, RecvRate: 2048},
	}
}

func TestHistoryObserve(t *testing.T) {
	h := NewHistory()
	h.Observe(sampleSnapshot(time.Unix(100, 0)))

	if got := h.CPU.Data(); !reflect.DeepEqual(got, []float64{42}) {
		t.Fatalf("CPU history = %v", got)
	}
	if got := h.NetRecv.Data(); !reflect.DeepEqual(got, []float64{2048}) {
		t.Fatalf("NetRecv history = %v", got)
	}
}

func TestHistoryDeduplicatesByTimestamp(t *testing.T) {
	h := NewHistory()
	snap := sampleSnapshot(time.Unix(100, 0))

	// Rendering faster than sampling re-observes the same snapshot.
	h.Observe(snap)
	h.Observe(snap)
	h.Observe(snap)

	if h.CPU.Len() != 1 {
		t.Fatalf("expected 1 CPU point, got %d", h.CPU.Len())
	}

	h.Observe(sampleSnapshot(time.Unix(101, 0)))
	if h.CPU.Len() != 2 {
		t.Fatalf("expected 2 CPU points, got %d", h.CPU.Len())
	}
}

func TestHistorySkipsZeroAndUnavailable(t *testing.T) {
	h := NewHistory()

	// Zero-value snapshot (store before first publish) records nothing.
	h.Observe(metrics.Snapshot{})
	if h.CPU.Len() != 0 {
		t.Fatalf("expected no points for zero snapshot, got %d", h.CPU.Len())
	}

	snap := sampleSnapshot(time.Unix(100, 0))
	snap.CPU.Available = false
	h.Observe(snap)
	if h.CPU.Len() != 0 {
		t.Fatalf("unavailable CPU should not be recorded")
	}
	if h.Memory.Len() != 1 {
		t.Fatalf("available memory should still be recorded")
	}
}
