package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkalstad/pulse/internal/metrics"
	"github.com/mkalstad/pulse/internal/nav"
)

const waitingMsg = "  waiting for data..."

// renderOverview shows one line per category: the at-a-glance tab.
func renderOverview(snap metrics.Snapshot, width, height int, theme *Theme) string {
	if snap.Taken.IsZero() {
		return Box("Overview", waitingMsg, width, height, theme)
	}

	innerW := width - 4
	var lines []string

	if snap.Device.Available {
		lines = append(lines, brightStyle(theme).Render(" "+snap.Device.Manufacturer+" "+snap.Device.Model))
		lines = append(lines, "")
	}
	if snap.CPU.Available {
		lines = append(lines, " "+Bar("CPU", snap.CPU.Percent, innerW, theme))
	} else {
		lines = append(lines, dimStyle(theme).Render(" CPU  unavailable"))
	}
	if snap.Memory.Available {
		lines = append(lines, " "+Bar("MEM", snap.Memory.Percent, innerW, theme))
	} else {
		lines = append(lines, dimStyle(theme).Render(" MEM  unavailable"))
	}
	if snap.Storage.Available {
		lines = append(lines, " "+Bar("DSK", snap.Storage.Percent, innerW, theme))
	} else {
		lines = append(lines, dimStyle(theme).Render(" DSK  unavailable"))
	}
	lines = append(lines, "")

	if snap.Battery.Available {
		pct := float64(snap.Battery.Percentage)
		val := lipgloss.NewStyle().Foreground(theme.BatteryColor(pct)).
			Render(fmt.Sprintf("%d%% (%s)", snap.Battery.Percentage, strings.ToLower(snap.Battery.Status)))
		lines = append(lines, " "+dimStyle(theme).Render(padRight("Battery", 10))+val)
	}
	if snap.Network.Available {
		net := fmt.Sprintf("↑ %s  ↓ %s", FormatSpeed(snap.Network.SendRate), FormatSpeed(snap.Network.RecvRate))
		lines = append(lines, " "+keyValue("Network", net, 10, theme))
	}
	lines = append(lines, " "+keyValue("Uptime", FormatUptime(snap.Uptime), 10, theme))

	return Box("Overview", strings.Join(lines, "\n"), width, height, theme)
}

func renderCPU(snap metrics.Snapshot, hist *History, width, height int, theme *Theme) string {
	if !snap.CPU.Available {
		return Box("CPU", waitingMsg, width, height, theme)
	}

	innerW := width - 4
	cpu := snap.CPU
	var lines []string

	lines = append(lines, " "+Bar("Usage", cpu.Percent, innerW, theme))
	lines = append(lines, " "+Sparkline(hist.CPU.Data(), innerW, 100, theme.Graph))
	lines = append(lines, "")
	lines = append(lines, " "+keyValue("Model", Truncate(cpu.Model, innerW-12), 12, theme))
	lines = append(lines, " "+keyValue("Cores", fmt.Sprintf("%d", cpu.Count), 12, theme))
	if cpu.FreqAvg > 0 {
		lines = append(lines, " "+keyValue("Avg freq", fmt.Sprintf("%.0f MHz", cpu.FreqAvg), 12, theme))
	}

	// Per-core frequencies, two columns.
	if len(cpu.FreqsMHz) > 0 {
		lines = append(lines, "")
		half := (len(cpu.FreqsMHz) + 1) / 2
		for i := 0; i < half; i++ {
			left := fmt.Sprintf("cpu%-2d %s", i, rightAlign(fmt.Sprintf("%.0f MHz", cpu.FreqsMHz[i]), 9))
			row := " " + dimStyle(theme).Render(left)
			if j := i + half; j < len(cpu.FreqsMHz) {
				right := fmt.Sprintf("cpu%-2d %s", j, rightAlign(fmt.Sprintf("%.0f MHz", cpu.FreqsMHz[j]), 9))
				row += "    " + dimStyle(theme).Render(right)
			}
			lines = append(lines, row)
		}
	}

	return Box("CPU", strings.Join(lines, "\n"), width, height, theme)
}

func renderMemory(snap metrics.Snapshot, hist *History, width, height int, theme *Theme) string {
	if !snap.Memory.Available {
		return Box("Memory", waitingMsg, width, height, theme)
	}

	innerW := width - 4
	mem := snap.Memory
	var lines []string

	lines = append(lines, " "+Bar("RAM ", mem.Percent, innerW, theme))
	lines = append(lines, " "+Sparkline(hist.Memory.Data(), innerW, 100, theme.Graph))
	lines = append(lines, "")
	lines = append(lines, " "+keyValue("Total", FormatBytes(mem.Total), 10, theme))
	lines = append(lines, " "+keyValue("Used", FormatBytes(mem.Used), 10, theme))
	lines = append(lines, " "+keyValue("Free", FormatBytes(mem.Free), 10, theme))
	lines = append(lines, " "+keyValue("Cached", FormatBytes(mem.Cached), 10, theme))
	lines = append(lines, " "+keyValue("Buffers", FormatBytes(mem.Buffers), 10, theme))
	if mem.SwapTotal > 0 {
		lines = append(lines, "")
		lines = append(lines, " "+Bar("Swap", mem.SwapPercent, innerW, theme))
		lines = append(lines, " "+keyValue("Swap used", FormatBytes(mem.SwapUsed), 10, theme))
	}

	return Box("Memory", strings.Join(lines, "\n"), width, height, theme)
}

// renderStorage shows disk usage plus the file browser. When the
// browser is focused the selected row is highlighted and the footer
// hints change.
func renderStorage(snap metrics.Snapshot, st *nav.State, width, height int, theme *Theme) string {
	innerW := width - 4
	var lines []string

	if snap.Storage.Available {
		sto := snap.Storage
		lines = append(lines, " "+Bar("Disk", sto.Percent, innerW, theme))
		detail := fmt.Sprintf("%s / %s free on %s", FormatBytes(sto.Free), FormatBytes(sto.Total), sto.Path)
		lines = append(lines, " "+dimStyle(theme).Render(detail))
	} else {
		lines = append(lines, dimStyle(theme).Render(waitingMsg))
	}
	lines = append(lines, "")

	b := st.Browser
	pathLine := Truncate(b.Path(), innerW)
	if st.Focused {
		lines = append(lines, " "+accentStyle(theme).Render(pathLine))
	} else {
		lines = append(lines, " "+dimStyle(theme).Render(pathLine))
		lines = append(lines, " "+dimStyle(theme).Render("press enter to browse"))
		return Box("Storage", strings.Join(lines, "\n"), width, height, theme)
	}

	sel := lipgloss.NewStyle().Background(theme.Cursor).Foreground(theme.FgBright)
	for i, e := range b.Visible() {
		idx := b.Scroll() + i
		name := e.Name
		if e.Dir {
			name += "/"
		}
		var meta string
		if e.Dir {
			meta = fmt.Sprintf("%d items", e.Count)
		} else {
			meta = FormatBytes(uint64(e.Size))
		}
		row := padRight(" "+Truncate(name, innerW-12), innerW-10) + rightAlign(meta, 10)
		if idx == b.Cursor() {
			lines = append(lines, " "+sel.Render(row))
		} else if e.Dir {
			lines = append(lines, " "+fgStyle(theme).Render(row))
		} else {
			lines = append(lines, " "+dimStyle(theme).Render(row))
		}
	}

	return Box("Storage", strings.Join(lines, "\n"), width, height, theme)
}

func renderBattery(snap metrics.Snapshot, width, height int, theme *Theme) string {
	if !snap.Battery.Available {
		return Box("Battery", "  no battery data (is termux-api installed?)", width, height, theme)
	}

	innerW := width - 4
	bat := snap.Battery
	var lines []string

	pct := float64(bat.Percentage)
	fill := lipgloss.NewStyle().Foreground(theme.BatteryColor(pct))
	barW := innerW - 10
	if barW < 4 {
		barW = 4
	}
	filled := int(pct / 100 * float64(barW))
	if filled > barW {
		filled = barW
	}
	lines = append(lines, " ["+fill.Render(strings.Repeat("█", filled))+
		dimStyle(theme).Render(strings.Repeat("░", barW-filled))+"] "+
		brightStyle(theme).Render(fmt.Sprintf("%d%%", bat.Percentage)))
	lines = append(lines, "")
	lines = append(lines, " "+keyValue("Status", strings.ToLower(bat.Status), 14, theme))
	lines = append(lines, " "+keyValue("Health", strings.ToLower(bat.Health), 14, theme))
	lines = append(lines, " "+keyValue("Plugged", strings.ToLower(bat.Plugged), 14, theme))
	lines = append(lines, " "+keyValue("Temperature", fmt.Sprintf("%.1f°C", bat.Temperature), 14, theme))
	lines = append(lines, " "+keyValue("Current", fmt.Sprintf("%.0f mA", float64(bat.CurrentMicroA)/1000), 14, theme))
	lines = append(lines, " "+keyValue("Remaining", bat.TimeRemaining, 14, theme))

	return Box("Battery", strings.Join(lines, "\n"), width, height, theme)
}

func renderNetwork(snap metrics.Snapshot, hist *History, width, height int, theme *Theme) string {
	if !snap.Network.Available {
		return Box("Network", waitingMsg, width, height, theme)
	}

	innerW := width - 4
	net := snap.Network
	var lines []string

	lines = append(lines, " "+keyValue("Upload", FormatSpeed(net.SendRate), 12, theme))
	lines = append(lines, " "+Sparkline(hist.NetSend.Data(), innerW, 0, theme.Healthy))
	lines = append(lines, " "+keyValue("Download", FormatSpeed(net.RecvRate), 12, theme))
	lines = append(lines, " "+Sparkline(hist.NetRecv.Data(), innerW, 0, theme.Graph))
	lines = append(lines, "")
	if net.IPv4 != "" {
		lines = append(lines, " "+keyValue("IPv4", net.IPv4, 12, theme))
	}
	if net.IPv6 != "" {
		lines = append(lines, " "+keyValue("IPv6", Truncate(net.IPv6, innerW-12), 12, theme))
	}
	lines = append(lines, " "+keyValue("Sent", fmt.Sprintf("%s (%d pkts)", FormatBytes(net.BytesSent), net.PacketsSent), 12, theme))
	lines = append(lines, " "+keyValue("Received", fmt.Sprintf("%s (%d pkts)", FormatBytes(net.BytesRecv), net.PacketsRecv), 12, theme))
	if net.ErrIn+net.ErrOut+net.DropIn+net.DropOut > 0 {
		errs := fmt.Sprintf("%d err / %d drop", net.ErrIn+net.ErrOut, net.DropIn+net.DropOut)
		lines = append(lines, " "+dimStyle(theme).Render(padRight("Errors", 12))+
			lipgloss.NewStyle().Foreground(theme.Warning).Render(errs))
	}

	return Box("Network", strings.Join(lines, "\n"), width, height, theme)
}

func renderProcesses(snap metrics.Snapshot, width, height int, theme *Theme) string {
	if snap.Taken.IsZero() {
		return Box("Processes", waitingMsg, width, height, theme)
	}

	innerW := width - 4
	nameW := innerW - 26
	if nameW < 8 {
		nameW = 8
	}

	var lines []string
	header := fmt.Sprintf(" %s %s %s %s  %s",
		rightAlign("PID", 6), rightAlign("CPU%", 6), rightAlign("MEM%", 6), "S", padRight("NAME", nameW))
	lines = append(lines, dimStyle(theme).Render(header))

	for _, p := range snap.Processes {
		cpuStyle := lipgloss.NewStyle().Foreground(theme.UsageColor(p.CPUPercent))
		row := " " + fgStyle(theme).Render(rightAlign(fmt.Sprintf("%d", p.PID), 6)) + " " +
			cpuStyle.Render(rightAlign(fmt.Sprintf("%.1f", p.CPUPercent), 6)) + " " +
			fgStyle(theme).Render(rightAlign(fmt.Sprintf("%.1f", p.MemPercent), 6)) + " " +
			dimStyle(theme).Render(statusLetter(p.Status)) + "  " +
			fgStyle(theme).Render(Truncate(p.Name, nameW))
		lines = append(lines, row)
	}
	if len(snap.Processes) == 0 {
		lines = append(lines, dimStyle(theme).Render("  no process data"))
	}

	return Box("Processes", strings.Join(lines, "\n"), width, height, theme)
}

// statusLetter compresses a process state name to its single-letter form.
func statusLetter(status string) string {
	if status == "" {
		return "?"
	}
	return strings.ToUpper(status[:1])
}
