package nav

import (
	"testing"

	"github.com/mkalstad/pulse/internal/input"
)

func up() input.Event     { return input.Event{Kind: input.KindUp} }
func down() input.Event   { return input.Event{Kind: input.KindDown} }
func enter() input.Event  { return input.Event{Kind: input.KindEnter} }
func escape() input.Event { return input.Event{Kind: input.KindEscape} }

func TestTabWrapBackward(t *testing.T) {
	s := NewState(t.TempDir(), 15)
	if s.Tab != TabOverview || s.Focused {
		t.Fatalf("initial state = tab %v focused %v, want Overview unfocused", s.Tab, s.Focused)
	}

	s.Apply(up())
	if s.Tab != TabProcesses {
		t.Errorf("after up from tab 0: tab = %d, want %d (wrap to last)", s.Tab, TabProcesses)
	}
}

func TestTabWrapForward(t *testing.T) {
	s := NewState(t.TempDir(), 15)
	s.Tab = TabProcesses

	s.Apply(down())
	if s.Tab != TabOverview {
		t.Errorf("after down from last tab: tab = %d, want 0", s.Tab)
	}
}

func TestTabCycleFullCircle(t *testing.T) {
	s := NewState(t.TempDir(), 15)
	for i := 0; i < int(TabCount); i++ {
		s.Apply(down())
	}
	if s.Tab != TabOverview {
		t.Errorf("after %d downs: tab = %d, want back at 0", TabCount, s.Tab)
	}
}

func TestEnterFocusesOnlyOnStorage(t *testing.T) {
	s := NewState(t.TempDir(), 15)

	s.Apply(enter())
	if s.Focused {
		t.Error("enter on Overview must not focus")
	}

	s.Tab = TabStorage
	s.Apply(enter())
	if !s.Focused {
		t.Error("enter on Storage should focus the browser")
	}
	if s.Browser.Cursor() != 0 || s.Browser.Scroll() != 0 {
		t.Errorf("focus should reset cursor/scroll, got %d/%d", s.Browser.Cursor(), s.Browser.Scroll())
	}
}

func TestEscapeClosesFocusKeepsTab(t *testing.T) {
	s := NewState(t.TempDir(), 15)
	s.Tab = TabStorage
	s.Apply(enter())
	if !s.Focused {
		t.Fatal("setup: expected focused browser")
	}

	s.Apply(escape())
	if s.Focused {
		t.Error("escape should unfocus")
	}
	if s.Tab != TabStorage {
		t.Errorf("escape changed tab to %v, want Storage unchanged", s.Tab)
	}
}

func TestEscapeUnfocusedIsNoop(t *testing.T) {
	s := NewState(t.TempDir(), 15)
	s.Tab = TabBattery
	s.Apply(escape())
	if s.Tab != TabBattery || s.Focused {
		t.Errorf("escape while unfocused changed state: tab %v focused %v", s.Tab, s.Focused)
	}
}

func TestArrowsMoveCursorWhileFocused(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "a.txt", "b.txt", "c.txt")

	s := NewState(dir, 15)
	s.Tab = TabStorage
	s.Apply(enter())

	tabBefore := s.Tab
	s.Apply(down())
	s.Apply(down())
	if s.Browser.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", s.Browser.Cursor())
	}
	if s.Tab != tabBefore {
		t.Error("focused arrows must not change the tab")
	}

	s.Apply(up())
	if s.Browser.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", s.Browser.Cursor())
	}
}

func TestQuitEvent(t *testing.T) {
	s := NewState(t.TempDir(), 15)
	if !s.Apply(input.Event{Kind: input.KindQuit}) {
		t.Error("quit event should request shutdown")
	}
	if s.Apply(down()) {
		t.Error("navigation event must not request shutdown")
	}
}

func TestRefocusRereadsListing(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "one.txt")

	s := NewState(dir, 15)
	s.Tab = TabStorage
	s.Apply(enter())
	if got := len(s.Browser.Items()); got != 2 { // ".." + one.txt
		t.Fatalf("items = %d, want 2", got)
	}
	s.Apply(escape())

	// Directory changes while unfocused.
	writeFiles(t, dir, "two.txt")

	s.Apply(enter())
	if got := len(s.Browser.Items()); got != 3 {
		t.Errorf("items after refocus = %d, want 3 (fresh listing)", got)
	}
}
