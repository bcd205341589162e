// Package nav holds the dashboard's navigation state machine: the
// selected tab and the focused drill-down view, driven by decoded input
// events. It is owned by the render loop's goroutine and needs no lock.
package nav

import "github.com/mkalstad/pulse/internal/input"

// Tab identifies one dashboard tab. Order matches the sidebar.
type Tab int

const (
	TabOverview Tab = iota
	TabCPU
	TabMemory
	TabStorage
	TabBattery
	TabNetwork
	TabProcesses

	// TabCount is the number of tabs; arrow navigation wraps modulo it.
	TabCount
)

var tabNames = [TabCount]string{
	"Overview", "CPU", "Memory", "Storage", "Battery", "Network", "Processes",
}

func (t Tab) String() string {
	if t < 0 || t >= TabCount {
		return "?"
	}
	return tabNames[t]
}

// State is the navigation state: the selected tab and, on the Storage
// tab, whether the file browser has focus.
type State struct {
	Tab     Tab
	Focused bool
	Browser *Browser
}

// NewState starts on the first tab, unfocused, with a browser rooted
// at startPath.
func NewState(startPath string, pageSize int) *State {
	return &State{Browser: NewBrowser(startPath, pageSize)}
}

// Apply consumes one input event and mutates the state. It returns
// true when the event requests process shutdown.
func (s *State) Apply(ev input.Event) (quit bool) {
	switch ev.Kind {
	case input.KindQuit:
		return true

	case input.KindUp:
		if s.Focused {
			s.Browser.MoveUp()
		} else {
			s.Tab = (s.Tab - 1 + TabCount) % TabCount
		}

	case input.KindDown:
		if s.Focused {
			s.Browser.MoveDown()
		} else {
			s.Tab = (s.Tab + 1) % TabCount
		}

	case input.KindEnter:
		if s.Tab != TabStorage {
			return false
		}
		if s.Focused {
			s.Browser.Enter()
		} else {
			// Entering drill-down always re-reads the listing.
			s.Focused = true
			s.Browser.Open()
		}

	case input.KindEscape:
		// Escape closes the drill-down; unfocused it is a no-op.
		s.Focused = false
	}
	return false
}
