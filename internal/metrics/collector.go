package metrics

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	gnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// probeTimeout bounds every subprocess probe (termux-battery-status,
// getprop). A probe that exceeds it counts as unavailable for the cycle.
const probeTimeout = 2 * time.Second

// processLimit is how many processes the snapshot keeps, sorted by CPU.
const processLimit = 15

// runner executes an external probe command and returns its stdout.
// Swapped out in tests.
type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Collector is the live metric source. Most categories go through
// gopsutil; CPU identity comes from /proc and /sys probes, battery and
// device identity from Termux/Android command-line tools.
type Collector struct {
	proc        string
	sys         string
	capacityMAh float64
	run         runner

	// Previous aggregate CPU times for interval utilization.
	prevBusy  float64
	prevTotal float64
	hasPrev   bool
}

// NewCollector creates a collector. procRoot and sysRoot are normally
// "/proc" and "/sys"; tests point them at fake trees. capacityMAh is
// the assumed battery pack capacity for time-remaining estimates.
func NewCollector(procRoot, sysRoot string, capacityMAh float64) *Collector {
	return &Collector{
		proc:        procRoot,
		sys:         sysRoot,
		capacityMAh: capacityMAh,
		run:         execRunner,
	}
}

// CPU returns utilization over the interval since the previous call,
// plus static identity (model, core count) and current frequencies.
// The first call reports zero utilization.
func (c *Collector) CPU(ctx context.Context) (CPUStats, error) {
	times, err := cpu.TimesWithContext(ctx, false)
	if err != nil {
		return CPUStats{}, fmt.Errorf("cpu times: %w", err)
	}
	if len(times) == 0 {
		return CPUStats{}, fmt.Errorf("cpu times: no aggregate entry")
	}

	t := times[0]
	busy := t.User + t.System + t.Nice + t.Irq + t.Softirq + t.Steal
	total := busy + t.Idle + t.Iowait

	var pct float64
	if c.hasPrev && total > c.prevTotal && busy >= c.prevBusy {
		pct = (busy - c.prevBusy) / (total - c.prevTotal) * 100
	}
	c.prevBusy = busy
	c.prevTotal = total
	c.hasPrev = true

	count, err := cpu.CountsWithContext(ctx, true)
	if err != nil || count == 0 {
		count = runtime.NumCPU()
	}

	freqs := readCPUFreqs(c.sys)
	var avg float64
	for _, f := range freqs {
		avg += f
	}
	if len(freqs) > 0 {
		avg /= float64(len(freqs))
	}

	return CPUStats{
		Percent:  pct,
		Count:    count,
		Model:    readCPUModel(c.proc),
		FreqsMHz: freqs,
		FreqAvg:  avg,
	}, nil
}

// Memory reads RAM and swap usage.
func (c *Collector) Memory(ctx context.Context) (MemoryStats, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStats{}, fmt.Errorf("virtual memory: %w", err)
	}
	m := MemoryStats{
		Total:   vm.Total,
		Used:    vm.Used,
		Free:    vm.Available,
		Cached:  vm.Cached,
		Buffers: vm.Buffers,
		Percent: vm.UsedPercent,
	}
	// Swap failure degrades to zero swap rather than losing the category.
	if sw, err := mem.SwapMemoryWithContext(ctx); err == nil {
		m.SwapTotal = sw.Total
		m.SwapUsed = sw.Used
		m.SwapPercent = sw.UsedPercent
	}
	return m, nil
}

// Storage reads disk usage for the given path.
func (c *Collector) Storage(ctx context.Context, path string) (StorageStats, error) {
	u, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return StorageStats{}, fmt.Errorf("disk usage %s: %w", path, err)
	}
	return StorageStats{
		Path:    path,
		Total:   u.Total,
		Used:    u.Used,
		Free:    u.Free,
		Percent: u.UsedPercent,
	}, nil
}

// Battery shells out to termux-battery-status.
func (c *Collector) Battery(ctx context.Context) (BatteryStats, error) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	out, err := c.run(ctx, "termux-battery-status")
	if err != nil {
		return BatteryStats{}, fmt.Errorf("termux-battery-status: %w", err)
	}
	return parseBattery(out, c.capacityMAh)
}

// Network reads counters summed over all interfaces and the addresses
// of the primary interface.
func (c *Collector) Network(ctx context.Context) (NetworkStats, error) {
	counters, err := gnet.IOCountersWithContext(ctx, false)
	if err != nil {
		return NetworkStats{}, fmt.Errorf("net counters: %w", err)
	}
	if len(counters) == 0 {
		return NetworkStats{}, fmt.Errorf("net counters: no interfaces")
	}

	io := counters[0]
	n := NetworkStats{
		BytesSent:   io.BytesSent,
		BytesRecv:   io.BytesRecv,
		PacketsSent: io.PacketsSent,
		PacketsRecv: io.PacketsRecv,
		ErrIn:       io.Errin,
		ErrOut:      io.Errout,
		DropIn:      io.Dropin,
		DropOut:     io.Dropout,
	}
	n.IPv4, n.IPv6 = primaryAddrs(ctx)
	return n, nil
}

// primaryAddrs returns the IPv4 and IPv6 addresses of the primary
// interface: wlan0 when present (phone), otherwise the first
// non-loopback interface that is up and has an address.
func primaryAddrs(ctx context.Context) (v4, v6 string) {
	ifaces, err := gnet.InterfacesWithContext(ctx)
	if err != nil {
		return "", ""
	}

	pick := func(st gnet.InterfaceStat) (string, string) {
		var a4, a6 string
		for _, addr := range st.Addrs {
			ip := addr.Addr
			if i := strings.IndexByte(ip, '/'); i >= 0 {
				ip = ip[:i]
			}
			if strings.Contains(ip, ":") {
				if a6 == "" {
					a6 = ip
				}
			} else if a4 == "" {
				a4 = ip
			}
		}
		return a4, a6
	}

	for _, st := range ifaces {
		if st.Name == "wlan0" {
			return pick(st)
		}
	}
	for _, st := range ifaces {
		up, loopback := false, false
		for _, f := range st.Flags {
			switch f {
			case "up":
				up = true
			case "loopback":
				loopback = true
			}
		}
		if up && !loopback && len(st.Addrs) > 0 {
			return pick(st)
		}
	}
	return "", ""
}

// Processes lists the top processes by CPU usage. Per-process read
// failures (exited, permission denied) skip that process only.
func (c *Collector) Processes(ctx context.Context) ([]ProcessInfo, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	out := make([]ProcessInfo, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil || name == "" {
			continue
		}
		cpuPct, err := p.CPUPercentWithContext(ctx)
		if err != nil {
			continue
		}
		memPct, _ := p.MemoryPercentWithContext(ctx)
		status := ""
		if st, err := p.StatusWithContext(ctx); err == nil && len(st) > 0 {
			status = st[0]
		}
		out = append(out, ProcessInfo{
			PID:        p.Pid,
			Name:       name,
			CPUPercent: cpuPct,
			MemPercent: memPct,
			Status:     status,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CPUPercent == out[j].CPUPercent {
			return out[i].PID < out[j].PID
		}
		return out[i].CPUPercent > out[j].CPUPercent
	})
	if len(out) > processLimit {
		out = out[:processLimit]
	}
	return out, nil
}

// Device reads static device identity via getprop and the host kernel
// version. It fails only when getprop itself cannot run, so a non-
// Android host falls back cleanly to hostname and kernel data.
func (c *Collector) Device(ctx context.Context) (DeviceInfo, error) {
	d := DeviceInfo{
		Model:        c.getprop(ctx, "ro.product.model"),
		Manufacturer: c.getprop(ctx, "ro.product.manufacturer"),
		Android:      c.getprop(ctx, "ro.build.version.release"),
		SDK:          c.getprop(ctx, "ro.build.version.sdk"),
		ABI:          c.getprop(ctx, "ro.product.cpu.abi"),
		Kernel:       "Unknown",
	}
	if info, err := host.InfoWithContext(ctx); err == nil {
		d.Kernel = info.KernelVersion
		d.Hostname = info.Hostname
	} else if hn, err := os.Hostname(); err == nil {
		d.Hostname = hn
	}
	return d, nil
}

// getprop returns a single Android system property, "Unknown" when the
// probe fails or the property is empty.
func (c *Collector) getprop(ctx context.Context, prop string) string {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()
	out, err := c.run(ctx, "getprop", prop)
	if err != nil {
		return "Unknown"
	}
	v := strings.TrimSpace(string(out))
	if v == "" {
		return "Unknown"
	}
	return v
}

// Uptime returns seconds since boot.
func (c *Collector) Uptime(ctx context.Context) (uint64, error) {
	up, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("uptime: %w", err)
	}
	return up, nil
}
