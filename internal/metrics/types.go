package metrics

import "time"

// CPUStats is a point-in-time CPU reading. Percent is utilization over
// the interval since the previous sample, not since boot.
type CPUStats struct {
	Available bool
	Percent   float64
	Count     int
	Model     string
	FreqsMHz  []float64 // per-core current frequency, may be empty
	FreqAvg   float64
}

// MemoryStats holds RAM and swap usage in bytes.
type MemoryStats struct {
	Available   bool
	Total       uint64
	Used        uint64
	Free        uint64
	Cached      uint64
	Buffers     uint64
	Percent     float64
	SwapTotal   uint64
	SwapUsed    uint64
	SwapPercent float64
}

// StorageStats is disk usage for a single mounted path.
type StorageStats struct {
	Available bool
	Path      string
	Total     uint64
	Used      uint64
	Free      uint64
	Percent   float64
}

// BatteryStats mirrors the fields reported by termux-battery-status.
// CurrentMicroA is negative while discharging.
type BatteryStats struct {
	Available     bool
	Percentage    int
	Status        string
	Health        string
	Plugged       string
	Temperature   float64
	CurrentMicroA int64
	TimeRemaining string // "3h 25m", or "N/A" when no estimate is possible
}

// NetworkStats holds cumulative counters summed over all interfaces,
// plus per-second rates derived by the sampler.
type NetworkStats struct {
	Available   bool
	IPv4        string
	IPv6        string
	BytesSent   uint64
	BytesRecv   uint64
	PacketsSent uint64
	PacketsRecv uint64
	ErrIn       uint64
	ErrOut      uint64
	DropIn      uint64
	DropOut     uint64
	SendRate    float64 // bytes/sec
	RecvRate    float64 // bytes/sec
}

// DeviceInfo is static device identity. It is read once at startup and
// cached for the process lifetime.
type DeviceInfo struct {
	Available    bool
	Model        string
	Manufacturer string
	Android      string
	SDK          string
	ABI          string
	Kernel       string
	Hostname     string
}

// ProcessInfo describes one entry of the process list.
type ProcessInfo struct {
	PID        int32
	Name       string
	CPUPercent float64
	MemPercent float32
	Status     string
}

// Snapshot is the complete set of latest readings, assembled by one
// sampler cycle and published atomically. Categories that failed to
// collect carry their zero value with Available=false.
type Snapshot struct {
	Taken     time.Time
	Uptime    uint64 // seconds since boot
	CPU       CPUStats
	Memory    MemoryStats
	Storage   StorageStats
	Battery   BatteryStats
	Network   NetworkStats
	Device    DeviceInfo
	Processes []ProcessInfo
}

// clone deep-copies the snapshot so the caller can use it after the
// store lock is released.
func (s Snapshot) clone() Snapshot {
	out := s
	if len(s.Processes) > 0 {
		out.Processes = make([]ProcessInfo, len(s.Processes))
		copy(out.Processes, s.Processes)
	}
	if len(s.CPU.FreqsMHz) > 0 {
		out.CPU.FreqsMHz = make([]float64, len(s.CPU.FreqsMHz))
		copy(out.CPU.FreqsMHz, s.CPU.FreqsMHz)
	}
	return out
}
