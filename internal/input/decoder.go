package input

import "time"

// Kind tags a decoded input event.
type Kind int

const (
	// KindRune is an ordinary printable key; Rune carries the byte.
	KindRune Kind = iota
	// KindUp and KindDown are the arrow keys (CSI A / CSI B).
	KindUp
	KindDown
	// KindEnter is carriage return or newline.
	KindEnter
	// KindEscape is a bare ESC press with no sequence tail.
	KindEscape
	// KindQuit is q, Q or Ctrl-C.
	KindQuit
)

// Event is one decoded keystroke. Events are produced by the decoder,
// consumed exactly once by the navigation layer, and never stored.
type Event struct {
	Kind Kind
	Rune byte
}

// escWait is how long the decoder waits for the tail of an escape
// sequence before deciding the ESC was pressed alone. Terminals deliver
// a CSI sequence in one burst, so this only has to cover channel
// scheduling, and it stays well under the render cadence.
const escWait = 20 * time.Millisecond

const (
	keyEscape = 0x1b
	keyCtrlC  = 0x03
)

// Decoder turns the raw byte stream into events. The ambiguity between
// a lone ESC and the three-byte arrow sequences is resolved with a
// bounded wait: "no more bytes in time" is a normal transition, not an
// error.
type Decoder struct {
	in      <-chan byte
	escWait time.Duration
}

// NewDecoder wraps a byte channel, normally the one from StartReader.
func NewDecoder(in <-chan byte) *Decoder {
	return &Decoder{in: in, escWait: escWait}
}

// Poll decodes all currently pending input and returns the resulting
// events. When no byte is pending it returns immediately with nil; it
// never blocks the caller longer than the escape wait, and only then
// while an ESC is being disambiguated.
func (d *Decoder) Poll() []Event {
	var events []Event
	for {
		select {
		case b, ok := <-d.in:
			if !ok {
				return events
			}
			if ev, ok := d.decode(b); ok {
				events = append(events, ev)
			}
		default:
			return events
		}
	}
}

func (d *Decoder) decode(b byte) (Event, bool) {
	switch b {
	case keyEscape:
		return d.decodeEscape()
	case '\r', '\n':
		return Event{Kind: KindEnter}, true
	case 'q', 'Q', keyCtrlC:
		return Event{Kind: KindQuit}, true
	default:
		return Event{Kind: KindRune, Rune: b}, true
	}
}

// decodeEscape runs the PendingEscape state: up to two further bytes
// decide between an arrow key, a bare escape, and an unrecognized
// sequence (dropped without an event).
func (d *Decoder) decodeEscape() (Event, bool) {
	b, ok := d.next()
	if !ok {
		return Event{Kind: KindEscape}, true
	}
	if b != '[' {
		return Event{}, false
	}
	final, ok := d.next()
	if !ok {
		return Event{}, false
	}
	switch final {
	case 'A':
		return Event{Kind: KindUp}, true
	case 'B':
		return Event{Kind: KindDown}, true
	default:
		return Event{}, false
	}
}

// next returns the next byte if one arrives within the escape wait.
func (d *Decoder) next() (byte, bool) {
	select {
	case b, ok := <-d.in:
		return b, ok
	default:
	}
	timer := time.NewTimer(d.escWait)
	defer timer.Stop()
	select {
	case b, ok := <-d.in:
		return b, ok
	case <-timer.C:
		return 0, false
	}
}
