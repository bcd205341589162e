package metrics

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// maxCores caps the sysfs frequency scan.
const maxCores = 256

// readCPUModel parses /proc/cpuinfo for the CPU model. ARM kernels
// report it on a "Hardware" line, x86 on "model name".
func readCPUModel(procRoot string) string {
	f, err := os.Open(filepath.Join(procRoot, "cpuinfo"))
	if err != nil {
		return "Unknown"
	}
	defer f.Close()

	model := ""
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "Hardware" {
			// Hardware wins; it names the SoC on ARM.
			return strings.TrimSpace(parts[1])
		}
		if key == "model name" && model == "" {
			model = strings.TrimSpace(parts[1])
		}
	}
	if model == "" {
		return "Unknown"
	}
	return model
}

// readCPUFreqs reads the current scaling frequency of each core from
// sysfs, in MHz. Cores without cpufreq are skipped; the scan stops at
// the first missing core directory.
func readCPUFreqs(sysRoot string) []float64 {
	var freqs []float64
	for i := 0; i < maxCores; i++ {
		cpuDir := filepath.Join(sysRoot, "devices", "system", "cpu", fmt.Sprintf("cpu%d", i))
		if _, err := os.Stat(cpuDir); err != nil {
			break
		}
		data, err := os.ReadFile(filepath.Join(cpuDir, "cpufreq", "scaling_cur_freq"))
		if err != nil {
			continue
		}
		khz, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
		if err != nil {
			continue
		}
		freqs = append(freqs, float64(khz)/1000)
	}
	return freqs
}
