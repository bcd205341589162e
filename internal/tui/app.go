// Package tui renders the dashboard: a fixed-cadence frame loop that
// reads the latest snapshot, applies pending key events to the
// navigation state, and redraws the active tab.
package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/mkalstad/pulse/internal/input"
	"github.com/mkalstad/pulse/internal/metrics"
	"github.com/mkalstad/pulse/internal/nav"
)

// sizer reports the terminal dimensions. Satisfied by *input.Terminal.
type sizer interface {
	Size() (width, height int)
}

// App is the render loop. It owns the navigation state and the history
// buffers; the snapshot store is shared with the sampler.
type App struct {
	store    *metrics.Store
	dec      *input.Decoder
	nav      *nav.State
	term     sizer
	out      io.Writer
	theme    Theme
	hist     *History
	interval time.Duration
	log      *slog.Logger
}

// NewApp wires the render loop together.
func NewApp(store *metrics.Store, dec *input.Decoder, st *nav.State, term sizer, out io.Writer, theme Theme, interval time.Duration, log *slog.Logger) *App {
	return &App{
		store:    store,
		dec:      dec,
		nav:      st,
		term:     term,
		out:      out,
		theme:    theme,
		hist:     NewHistory(),
		interval: interval,
		log:      log,
	}
}

// Run draws frames until the context is canceled or a quit key is
// pressed. The terminal is cleared on entry and on exit; raw mode is
// the caller's responsibility.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprint(a.out, escHideCursor+escClearScreen)
	defer fmt.Fprint(a.out, escShowCursor+escClearScreen+escCursorHome)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			for _, ev := range a.dec.Poll() {
				if a.nav.Apply(ev) {
					a.log.Info("quit requested")
					return nil
				}
			}
			a.draw()
		}
	}
}

func (a *App) draw() {
	w, h := a.term.Size()
	// Track terminal resizes so the browser window fits the screen.
	a.nav.Browser.SetPageSize(PageSize(h))
	frame := a.Render(w, h)
	// Raw mode disables output postprocessing, so line feeds need an
	// explicit carriage return. Erasing to end-of-line on every break
	// (and to end-of-screen after the frame) clears leftovers from the
	// previous tab without a full-screen clear per frame.
	frame = strings.ReplaceAll(frame, "\n", escClearEOL+"\r\n")
	if _, err := fmt.Fprint(a.out, escCursorHome+frame+escClearEOS); err != nil {
		a.log.Error("write frame", "error", err)
	}
}

// Render produces one full frame for the given terminal size.
func (a *App) Render(width, height int) string {
	snap := a.store.Read()
	a.hist.Observe(snap)

	header := a.renderHeader(snap, width)
	footer := a.renderFooter(width)
	body := a.renderBody(snap, width, height-3)

	return header + "\n" + body + "\n" + footer
}

func (a *App) renderHeader(snap metrics.Snapshot, width int) string {
	title := accentStyle(&a.theme).Render(" pulse ")
	var clock string
	if !snap.Taken.IsZero() {
		clock = dimStyle(&a.theme).Render(snap.Taken.Format("15:04:05") + " ")
	}

	var tabs []string
	for t := nav.Tab(0); t < nav.TabCount; t++ {
		name := t.String()
		if t == a.nav.Tab {
			tabs = append(tabs, accentStyle(&a.theme).Render("["+name+"]"))
		} else {
			tabs = append(tabs, dimStyle(&a.theme).Render(" "+name+" "))
		}
	}
	tabLine := strings.Join(tabs, " ")

	pad := width - visibleWidth(title) - visibleWidth(tabLine) - visibleWidth(clock)
	if pad < 1 {
		return title + " " + tabLine
	}
	return title + tabLine + strings.Repeat(" ", pad) + clock
}

func (a *App) renderBody(snap metrics.Snapshot, width, height int) string {
	theme := &a.theme
	switch a.nav.Tab {
	case nav.TabCPU:
		return renderCPU(snap, a.hist, width, height, theme)
	case nav.TabMemory:
		return renderMemory(snap, a.hist, width, height, theme)
	case nav.TabStorage:
		return renderStorage(snap, a.nav, width, height, theme)
	case nav.TabBattery:
		return renderBattery(snap, width, height, theme)
	case nav.TabNetwork:
		return renderNetwork(snap, a.hist, width, height, theme)
	case nav.TabProcesses:
		return renderProcesses(snap, width, height, theme)
	default:
		return renderOverview(snap, width, height, theme)
	}
}

func (a *App) renderFooter(width int) string {
	var hint string
	if a.nav.Focused {
		hint = " ↑/↓ move   enter open   esc back   q quit"
	} else if a.nav.Tab == nav.TabStorage {
		hint = " ↑/↓ switch tab   enter browse   q quit"
	} else {
		hint = " ↑/↓ switch tab   q quit"
	}
	return dimStyle(&a.theme).Render(Truncate(hint, width))
}

// visibleWidth counts display columns, skipping ANSI escape sequences.
func visibleWidth(s string) int {
	w := 0
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		w++
	}
	return w
}

// PageSize returns how many browser rows fit in the Storage tab for a
// terminal of the given height: body height minus borders, the disk
// gauge block, and the path line.
func PageSize(termHeight int) int {
	n := termHeight - 3 - 2 - 3 - 1
	if n < 1 {
		n = 1
	}
	return n
}
