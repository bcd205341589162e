package metrics

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Source is the capability set the sampler draws from. Every call may
// fail; the sampler treats each failure as that category being
// unavailable for the cycle, never as fatal. Calls must honor ctx
// cancellation: the sampler deadlines each cycle.
type Source interface {
	CPU(ctx context.Context) (CPUStats, error)
	Memory(ctx context.Context) (MemoryStats, error)
	Storage(ctx context.Context, path string) (StorageStats, error)
	Battery(ctx context.Context) (BatteryStats, error)
	Network(ctx context.Context) (NetworkStats, error)
	Processes(ctx context.Context) ([]ProcessInfo, error)
	Device(ctx context.Context) (DeviceInfo, error)
	Uptime(ctx context.Context) (uint64, error)
}

// publisher receives the assembled snapshot once per cycle.
type publisher interface {
	Publish(Snapshot)
}

// Sampler gathers a snapshot on a fixed period and publishes it to the
// store. It is the store's only writer.
type Sampler struct {
	src         Source
	sink        publisher
	interval    time.Duration
	backoff     time.Duration
	storagePath string

	rates  RateTracker
	device *DeviceInfo // cached after the first successful read
}

// NewSampler creates a sampler publishing to store every interval.
// storagePath is the mount point measured by the Storage category.
func NewSampler(src Source, store *Store, interval time.Duration, storagePath string) *Sampler {
	return &Sampler{
		src:         src,
		sink:        store,
		interval:    interval,
		backoff:     2 * time.Second,
		storagePath: storagePath,
	}
}

// Run collects immediately, then on every tick until ctx is cancelled.
// A cycle that panics is logged and followed by a backoff sleep instead
// of taking the process down.
func (s *Sampler) Run(ctx context.Context) {
	slog.Info("sampler starting", "interval", s.interval, "storage_path", s.storagePath)

	s.runCycle(ctx, time.Now())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("sampler stopped")
			return
		case now := <-ticker.C:
			s.runCycle(ctx, now)
		}
	}
}

// runCycle executes one cycle and absorbs cycle-level faults.
func (s *Sampler) runCycle(ctx context.Context, now time.Time) {
	if err := s.cycle(ctx, now); err != nil {
		slog.Error("sampler cycle failed, backing off", "error", err)
		select {
		case <-ctx.Done():
		case <-time.After(s.backoff):
		}
	}
}

// cycle gathers every category and publishes exactly one snapshot.
// Only a panic during assembly surfaces as an error.
func (s *Sampler) cycle(ctx context.Context, now time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sampler cycle: %v", r)
		}
	}()

	// Collection is bounded to one period: a metric source call stuck
	// past the deadline becomes an unavailable category for the cycle
	// instead of freezing the loop on stale data.
	ctx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	snap := s.gather(ctx, now)
	s.sink.Publish(snap)
	return nil
}

// gather queries each capability independently. A failed category logs
// and keeps its zero value with Available=false; the rest of the cycle
// proceeds.
func (s *Sampler) gather(ctx context.Context, now time.Time) Snapshot {
	snap := Snapshot{Taken: now}

	if cpu, err := s.src.CPU(ctx); err != nil {
		slog.Debug("cpu sample unavailable", "error", err)
	} else {
		snap.CPU = cpu
		snap.CPU.Available = true
	}

	if m, err := s.src.Memory(ctx); err != nil {
		slog.Debug("memory sample unavailable", "error", err)
	} else {
		snap.Memory = m
		snap.Memory.Available = true
	}

	if st, err := s.src.Storage(ctx, s.storagePath); err != nil {
		slog.Debug("storage sample unavailable", "error", err)
	} else {
		snap.Storage = st
		snap.Storage.Available = true
	}

	if b, err := s.src.Battery(ctx); err != nil {
		slog.Debug("battery sample unavailable", "error", err)
	} else {
		snap.Battery = b
		snap.Battery.Available = true
	}

	if n, err := s.src.Network(ctx); err != nil {
		slog.Debug("network sample unavailable", "error", err)
	} else {
		snap.Network = n
		snap.Network.Available = true
		snap.Network.SendRate, snap.Network.RecvRate = s.rates.Update(now, n.BytesSent, n.BytesRecv)
	}

	if procs, err := s.src.Processes(ctx); err != nil {
		slog.Debug("process list unavailable", "error", err)
	} else {
		snap.Processes = procs
	}

	// Device identity is static; read until the first success, then
	// reuse the cached value for the process lifetime.
	if s.device == nil {
		if d, err := s.src.Device(ctx); err != nil {
			slog.Debug("device info unavailable", "error", err)
		} else {
			d.Available = true
			s.device = &d
		}
	}
	if s.device != nil {
		snap.Device = *s.device
	}

	if up, err := s.src.Uptime(ctx); err != nil {
		slog.Debug("uptime unavailable", "error", err)
	} else {
		snap.Uptime = up
	}

	return snap
}
