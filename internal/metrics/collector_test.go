package metrics

import (
	"context"
	"errors"
	"testing"
)

func TestCollectorDeviceProps(t *testing.T) {
	props := map[string]string{
		"ro.product.model":         "Pixel 6\n",
		"ro.product.manufacturer":  "Google\n",
		"ro.build.version.release": "14\n",
		"ro.build.version.sdk":     "34\n",
		"ro.product.cpu.abi":       "arm64-v8a\n",
	}
	c := NewCollector(t.TempDir(), t.TempDir(), 4000)
	c.run = func(_ context.Context, name string, args ...string) ([]byte, error) {
		if name != "getprop" || len(args) != 1 {
			t.Fatalf("unexpected probe: %s %v", name, args)
		}
		return []byte(props[args[0]]), nil
	}

	d, err := c.Device(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if d.Model != "Pixel 6" {
		t.Errorf("model = %q, want Pixel 6", d.Model)
	}
	if d.Manufacturer != "Google" {
		t.Errorf("manufacturer = %q, want Google", d.Manufacturer)
	}
	if d.Android != "14" || d.SDK != "34" || d.ABI != "arm64-v8a" {
		t.Errorf("version fields = %q/%q/%q", d.Android, d.SDK, d.ABI)
	}
}

func TestCollectorDeviceProbeFailure(t *testing.T) {
	c := NewCollector(t.TempDir(), t.TempDir(), 4000)
	c.run = func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("exec: \"getprop\": executable file not found in $PATH")
	}

	// A missing getprop is not fatal: identity fields degrade to Unknown.
	d, err := c.Device(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if d.Model != "Unknown" || d.Manufacturer != "Unknown" {
		t.Errorf("fields = %q/%q, want Unknown/Unknown", d.Model, d.Manufacturer)
	}
}

func TestCollectorBatteryProbeFailure(t *testing.T) {
	c := NewCollector(t.TempDir(), t.TempDir(), 4000)
	c.run = func(context.Context, string, ...string) ([]byte, error) {
		return nil, errors.New("probe failed")
	}

	if _, err := c.Battery(context.Background()); err == nil {
		t.Error("expected error when termux-battery-status cannot run")
	}
}

func TestCollectorBatteryParsesProbeOutput(t *testing.T) {
	c := NewCollector(t.TempDir(), t.TempDir(), 4000)
	c.run = func(_ context.Context, name string, _ ...string) ([]byte, error) {
		if name != "termux-battery-status" {
			t.Fatalf("unexpected probe: %s", name)
		}
		return []byte(`{"percentage": 64, "status": "DISCHARGING", "health": "GOOD", "current": -800000}`), nil
	}

	b, err := c.Battery(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if b.Percentage != 64 || b.Health != "GOOD" {
		t.Errorf("battery = %+v", b)
	}
}
