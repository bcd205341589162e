package nav

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is one row of the file browser listing.
type Entry struct {
	Name  string
	Dir   bool
	Size  int64 // files only
	Count int   // directories: number of children
}

// Browser is the Storage tab's drill-down view: a directory listing
// with a cursor and a scroll window that always contains the cursor.
type Browser struct {
	path     string
	pageSize int
	items    []Entry
	cursor   int
	scroll   int
}

// NewBrowser creates a browser rooted at start. The listing is read
// lazily on Open, not here.
func NewBrowser(start string, pageSize int) *Browser {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Browser{path: start, pageSize: pageSize}
}

// Open resets the cursor and re-reads the listing. Called every time
// the view gains focus so directory contents are never stale.
func (b *Browser) Open() {
	b.cursor = 0
	b.scroll = 0
	b.Refresh()
}

// Refresh re-reads the current directory. The parent entry ".." is
// always first, then directories, then files, each group ordered
// case-insensitively by name. Entries that cannot be stat'ed are
// skipped; an unreadable directory degrades to just "..".
func (b *Browser) Refresh() {
	items := []Entry{{Name: "..", Dir: true}}

	ents, err := os.ReadDir(b.path)
	if err == nil {
		listed := make([]Entry, 0, len(ents))
		for _, de := range ents {
			e := Entry{Name: de.Name(), Dir: de.IsDir()}
			if e.Dir {
				if children, err := os.ReadDir(filepath.Join(b.path, e.Name)); err == nil {
					e.Count = len(children)
				}
			} else {
				info, err := de.Info()
				if err != nil {
					continue
				}
				e.Size = info.Size()
			}
			listed = append(listed, e)
		}
		sort.Slice(listed, func(i, j int) bool {
			if listed[i].Dir != listed[j].Dir {
				return listed[i].Dir
			}
			return strings.ToLower(listed[i].Name) < strings.ToLower(listed[j].Name)
		})
		items = append(items, listed...)
	}

	b.items = items
	if b.cursor >= len(b.items) {
		b.cursor = len(b.items) - 1
	}
	b.snapScroll()
}

// SetPageSize resizes the scroll window, re-snapping it so the cursor
// stays visible. Called when the terminal is resized.
func (b *Browser) SetPageSize(n int) {
	if n < 1 {
		n = 1
	}
	if n == b.pageSize {
		return
	}
	b.pageSize = n
	b.snapScroll()
}

// MoveUp moves the cursor one row up, clamped at the top.
func (b *Browser) MoveUp() {
	if b.cursor > 0 {
		b.cursor--
	}
	b.snapScroll()
}

// MoveDown moves the cursor one row down, clamped at the last entry.
func (b *Browser) MoveDown() {
	if b.cursor < len(b.items)-1 {
		b.cursor++
	}
	b.snapScroll()
}

// Enter descends into the entry under the cursor when it is a
// directory ( ".." ascends), resetting cursor and scroll and reading a
// fresh listing. Non-directory entries are a no-op.
func (b *Browser) Enter() {
	if b.cursor < 0 || b.cursor >= len(b.items) {
		return
	}
	e := b.items[b.cursor]
	if !e.Dir {
		return
	}
	if e.Name == ".." {
		b.path = filepath.Dir(b.path)
	} else {
		b.path = filepath.Join(b.path, e.Name)
	}
	b.Open()
}

// snapScroll shifts the window by the minimum amount that keeps the
// cursor visible.
func (b *Browser) snapScroll() {
	if b.cursor < b.scroll {
		b.scroll = b.cursor
	}
	if b.cursor >= b.scroll+b.pageSize {
		b.scroll = b.cursor - b.pageSize + 1
	}
	if b.scroll < 0 {
		b.scroll = 0
	}
}

// Path returns the directory currently listed.
func (b *Browser) Path() string { return b.path }

// Items returns the full listing.
func (b *Browser) Items() []Entry { return b.items }

// Cursor returns the index of the selected entry.
func (b *Browser) Cursor() int { return b.cursor }

// Scroll returns the index of the first visible entry.
func (b *Browser) Scroll() int { return b.scroll }

// Visible returns the window of entries currently on screen.
func (b *Browser) Visible() []Entry {
	if len(b.items) == 0 {
		return nil
	}
	end := b.scroll + b.pageSize
	if end > len(b.items) {
		end = len(b.items)
	}
	return b.items[b.scroll:end]
}
