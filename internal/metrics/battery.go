package metrics

import (
	"encoding/json"
	"fmt"
	"strings"
)

// batteryStatus is the JSON shape emitted by termux-battery-status.
type batteryStatus struct {
	Percentage  int     `json:"percentage"`
	Status      string  `json:"status"`
	Health      string  `json:"health"`
	Temperature float64 `json:"temperature"`
	Plugged     string  `json:"plugged"`
	Current     int64   `json:"current"` // microamps, negative when discharging
}

// parseBattery decodes termux-battery-status output and derives a
// time-remaining estimate from the current draw.
func parseBattery(data []byte, capacityMAh float64) (BatteryStats, error) {
	var raw batteryStatus
	if err := json.Unmarshal(data, &raw); err != nil {
		return BatteryStats{}, fmt.Errorf("parse battery status: %w", err)
	}
	return BatteryStats{
		Percentage:    raw.Percentage,
		Status:        raw.Status,
		Health:        raw.Health,
		Plugged:       raw.Plugged,
		Temperature:   raw.Temperature,
		CurrentMicroA: raw.Current,
		TimeRemaining: estimateRemaining(raw, capacityMAh),
	}, nil
}

// estimateRemaining projects time to full (charging) or time to empty
// (discharging) from the instantaneous current against an assumed pack
// capacity. The Android battery API does not report design capacity,
// so this is a rough figure.
func estimateRemaining(raw batteryStatus, capacityMAh float64) string {
	if raw.Current == 0 || capacityMAh <= 0 {
		return "N/A"
	}
	milliamps := float64(raw.Current) / 1000

	status := strings.ToUpper(raw.Status)
	var targetMAh float64
	switch {
	case strings.Contains(status, "CHARGING") && !strings.Contains(status, "DIS") && milliamps > 0:
		targetMAh = capacityMAh * float64(100-raw.Percentage) / 100
	case strings.Contains(status, "DISCHARGING") && milliamps < 0:
		targetMAh = capacityMAh * float64(raw.Percentage) / 100
		milliamps = -milliamps
	default:
		return "N/A"
	}

	hours := targetMAh / milliamps
	h := int(hours)
	m := int((hours - float64(h)) * 60)
	return fmt.Sprintf("%dh %dm", h, m)
}
