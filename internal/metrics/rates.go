package metrics

import "time"

// RateTracker derives per-second rates from cumulative byte counters by
// retaining the previous reading and timestamp.
type RateTracker struct {
	prevSent uint64
	prevRecv uint64
	prevTime time.Time
	hasPrev  bool
}

// Update computes send/receive rates from new counter values.
// A counter smaller than the previous one means the counter reset, and
// the full current value is treated as the delta. Elapsed times of zero
// or less yield zero rates. The first call always returns zero.
func (r *RateTracker) Update(now time.Time, sent, recv uint64) (sendRate, recvRate float64) {
	defer func() {
		r.prevSent = sent
		r.prevRecv = recv
		r.prevTime = now
		r.hasPrev = true
	}()

	if !r.hasPrev {
		return 0, 0
	}
	elapsed := now.Sub(r.prevTime).Seconds()
	if elapsed <= 0 {
		return 0, 0
	}
	return float64(counterDelta(sent, r.prevSent)) / elapsed,
		float64(counterDelta(recv, r.prevRecv)) / elapsed
}

// counterDelta clamps against counter reset: when cur < prev the
// previous value is treated as zero.
func counterDelta(cur, prev uint64) uint64 {
	if cur < prev {
		return cur
	}
	return cur - prev
}
