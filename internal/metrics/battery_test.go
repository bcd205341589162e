package metrics

import "testing"

func TestParseBatteryDischarging(t *testing.T) {
	out := []byte(`{
		"health": "GOOD",
		"percentage": 50,
		"plugged": "UNPLUGGED",
		"status": "DISCHARGING",
		"temperature": 28.5,
		"current": -1000000
	}`)

	b, err := parseBattery(out, 4000)
	if err != nil {
		t.Fatal(err)
	}
	if b.Percentage != 50 {
		t.Errorf("percentage = %d, want 50", b.Percentage)
	}
	if b.Status != "DISCHARGING" {
		t.Errorf("status = %q, want DISCHARGING", b.Status)
	}
	if b.Temperature != 28.5 {
		t.Errorf("temperature = %v, want 28.5", b.Temperature)
	}
	// 2000 mAh remaining at 1000 mA draw = 2h 0m.
	if b.TimeRemaining != "2h 0m" {
		t.Errorf("time remaining = %q, want \"2h 0m\"", b.TimeRemaining)
	}
}

func TestParseBatteryCharging(t *testing.T) {
	out := []byte(`{"percentage": 75, "status": "CHARGING", "current": 500000}`)

	b, err := parseBattery(out, 4000)
	if err != nil {
		t.Fatal(err)
	}
	// 1000 mAh to full at 500 mA = 2h 0m.
	if b.TimeRemaining != "2h 0m" {
		t.Errorf("time remaining = %q, want \"2h 0m\"", b.TimeRemaining)
	}
}

func TestParseBatteryNoEstimate(t *testing.T) {
	cases := []struct {
		name string
		json string
	}{
		{"full", `{"percentage": 100, "status": "FULL", "current": 0}`},
		{"charging with negative current", `{"percentage": 40, "status": "CHARGING", "current": -200000}`},
		{"not charging", `{"percentage": 90, "status": "NOT_CHARGING", "current": 10000}`},
	}
	for _, tc := range cases {
		b, err := parseBattery([]byte(tc.json), 4000)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if b.TimeRemaining != "N/A" {
			t.Errorf("%s: time remaining = %q, want N/A", tc.name, b.TimeRemaining)
		}
	}
}

func TestParseBatteryBadJSON(t *testing.T) {
	if _, err := parseBattery([]byte("no battery api"), 4000); err == nil {
		t.Error("expected error for non-JSON output")
	}
}
