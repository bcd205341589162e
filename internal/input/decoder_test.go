package input

import (
	"testing"
	"time"
)

// feed returns a decoder whose input channel holds exactly the given
// bytes, with a short escape wait so lone-ESC tests stay fast.
func feed(bytes ...byte) *Decoder {
	ch := make(chan byte, len(bytes)+1)
	for _, b := range bytes {
		ch <- b
	}
	d := NewDecoder(ch)
	d.escWait = 5 * time.Millisecond
	return d
}

func kinds(events []Event) []Kind {
	out := make([]Kind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestPollEmptyReturnsImmediately(t *testing.T) {
	d := feed()
	start := time.Now()
	events := d.Poll()
	if events != nil {
		t.Errorf("events = %v, want nil", events)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Millisecond {
		t.Errorf("empty poll took %v, must not block", elapsed)
	}
}

func TestArrowUpSequence(t *testing.T) {
	events := feed(0x1b, '[', 'A').Poll()
	if len(events) != 1 || events[0].Kind != KindUp {
		t.Fatalf("events = %+v, want exactly one ArrowUp", events)
	}
}

func TestArrowDownSequence(t *testing.T) {
	events := feed(0x1b, '[', 'B').Poll()
	if len(events) != 1 || events[0].Kind != KindDown {
		t.Fatalf("events = %+v, want exactly one ArrowDown", events)
	}
}

func TestLoneEscapeEmitsEscapeAlone(t *testing.T) {
	events := feed(0x1b).Poll()
	if len(events) != 1 || events[0].Kind != KindEscape {
		t.Fatalf("events = %+v, want exactly one EscapeAlone", events)
	}
}

func TestUnrecognizedSequenceIsDropped(t *testing.T) {
	// CSI C (arrow right) is not a navigation key here.
	if events := feed(0x1b, '[', 'C').Poll(); len(events) != 0 {
		t.Errorf("events = %+v, want none for unrecognized sequence", events)
	}
	// ESC followed by a non-CSI byte.
	if events := feed(0x1b, 'O').Poll(); len(events) != 0 {
		t.Errorf("events = %+v, want none for ESC O", events)
	}
	// Truncated CSI with no final byte.
	if events := feed(0x1b, '[').Poll(); len(events) != 0 {
		t.Errorf("events = %+v, want none for truncated CSI", events)
	}
}

func TestOrdinaryKeys(t *testing.T) {
	events := feed('x', '\r', '\n').Poll()
	want := []Kind{KindRune, KindEnter, KindEnter}
	got := kinds(events)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", got, want)
		}
	}
	if events[0].Rune != 'x' {
		t.Errorf("rune = %q, want 'x'", events[0].Rune)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, b := range []byte{'q', 'Q', 0x03} {
		events := feed(b).Poll()
		if len(events) != 1 || events[0].Kind != KindQuit {
			t.Errorf("byte %#x: events = %+v, want Quit", b, events)
		}
	}
}

func TestMixedBurst(t *testing.T) {
	// Arrow-down then a printable key in one poll.
	events := feed(0x1b, '[', 'B', 'j').Poll()
	want := []Kind{KindDown, KindRune}
	got := kinds(events)
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
}

func TestEscapeTailArrivingLate(t *testing.T) {
	ch := make(chan byte, 4)
	d := NewDecoder(ch)
	d.escWait = 50 * time.Millisecond

	ch <- 0x1b
	go func() {
		time.Sleep(10 * time.Millisecond)
		ch <- '['
		ch <- 'A'
	}()

	events := d.Poll()
	if len(events) != 1 || events[0].Kind != KindUp {
		t.Fatalf("events = %+v, want ArrowUp from late tail", events)
	}
}

func TestClosedChannel(t *testing.T) {
	ch := make(chan byte)
	close(ch)
	d := NewDecoder(ch)
	if events := d.Poll(); len(events) != 0 {
		t.Errorf("events = %+v, want none from closed channel", events)
	}
}
