package search

import (
	"github.com/semiotic-labs/agentium-docs/internal/keybind"
)

// Status describes what a search box should display.
type Status int

const (
	// StatusIdle means no query has been typed; no dropdown is shown.
	StatusIdle Status = iota
	// StatusNoResults means a query is present but nothing matched.
	StatusNoResults
	// StatusResults means at least one entry matched.
	StatusResults
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusNoResults:
		return "no-results"
	case StatusResults:
		return "results"
	default:
		return "unknown"
	}
}

// Box holds the per-instance state of a search input: the query, its
// results and the keyboard highlight. A Box is not safe for concurrent use;
// it belongs to the goroutine that delivers its input events.
type Box struct {
	index    *Index
	inputID  string
	onSelect func(SearchEntry)

	query    string
	results  []SearchEntry
	selected int
	focused  bool

	unsubscribe []func()
}

// NewBox creates a search box over idx. inputID identifies the box's text
// input in keyboard events. onSelect, if non-nil, is called when a result is
// chosen.
func NewBox(idx *Index, inputID string, onSelect func(SearchEntry)) *Box {
	return &Box{index: idx, inputID: inputID, onSelect: onSelect}
}

func (b *Box) Query() string          { return b.query }
func (b *Box) Results() []SearchEntry { return b.results }
func (b *Box) SelectedIndex() int     { return b.selected }
func (b *Box) Focused() bool          { return b.focused }

// Selected returns the highlighted result, if any.
func (b *Box) Selected() (SearchEntry, bool) {
	if len(b.results) == 0 {
		return SearchEntry{}, false
	}
	return b.results[b.selected], true
}

// Status reports whether the box is idle, empty, or showing results.
func (b *Box) Status() Status {
	return statusFor(b.query, b.results)
}

func statusFor(query string, results []SearchEntry) Status {
	switch {
	case query == "":
		return StatusIdle
	case len(results) == 0:
		return StatusNoResults
	default:
		return StatusResults
	}
}

// SetQuery recomputes results for q and resets the highlight.
func (b *Box) SetQuery(q string) {
	b.query = q
	b.results = b.index.Search(q)
	b.selected = 0
}

// Clear empties the query and results.
func (b *Box) Clear() {
	b.query = ""
	b.results = nil
	b.selected = 0
}

func (b *Box) Focus() { b.focused = true }

// Blur drops focus. The query is kept.
func (b *Box) Blur() { b.focused = false }

// MoveDown advances the highlight, wrapping to the first result.
func (b *Box) MoveDown() {
	if n := len(b.results); n > 0 {
		b.selected = (b.selected + 1) % n
	}
}

// MoveUp moves the highlight back, wrapping to the last result.
func (b *Box) MoveUp() {
	if n := len(b.results); n > 0 {
		b.selected = (b.selected - 1 + n) % n
	}
}

// Select chooses the highlighted result, notifies onSelect and clears the
// box. It reports false when there is nothing to select.
func (b *Box) Select() (SearchEntry, bool) {
	entry, ok := b.Selected()
	if !ok {
		return SearchEntry{}, false
	}
	if b.onSelect != nil {
		b.onSelect(entry)
	}
	b.Clear()
	return entry, true
}

// Mount installs the box's keyboard bindings on d. Mounting an already
// mounted box first removes the previous bindings.
func (b *Box) Mount(d *keybind.Dispatcher) {
	b.Unmount()
	b.unsubscribe = []func(){
		d.Subscribe(keybind.Binding{Key: "k", AnyMods: keybind.ModCtrl | keybind.ModMeta}, b.handleFocusShortcut),
		d.Subscribe(keybind.Binding{Key: keybind.KeyArrowDown}, b.navigating(b.MoveDown)),
		d.Subscribe(keybind.Binding{Key: keybind.KeyArrowUp}, b.navigating(b.MoveUp)),
		d.Subscribe(keybind.Binding{Key: keybind.KeyEnter}, b.handleEnter),
		d.Subscribe(keybind.Binding{Key: keybind.KeyEscape}, b.handleEscape),
	}
}

// Unmount removes every binding installed by Mount.
func (b *Box) Unmount() {
	for _, unsub := range b.unsubscribe {
		unsub()
	}
	b.unsubscribe = nil
}

func (b *Box) handleFocusShortcut(e keybind.Event) bool {
	if e.Target.ID == b.inputID {
		// Already focused: swallow the combination without re-focusing.
		return true
	}
	if e.Target.Editable {
		// Another text control owns the combination.
		return false
	}
	b.Focus()
	return true
}

// active reports whether e is meant for the box: it has focus, or the key
// was pressed in its input.
func (b *Box) active(e keybind.Event) bool {
	return b.focused || e.Target.ID == b.inputID
}

func (b *Box) navigating(move func()) keybind.Handler {
	return func(e keybind.Event) bool {
		if !b.active(e) || len(b.results) == 0 {
			return false
		}
		move()
		return true
	}
}

func (b *Box) handleEnter(e keybind.Event) bool {
	if !b.active(e) {
		return false
	}
	_, ok := b.Select()
	return ok
}

func (b *Box) handleEscape(e keybind.Event) bool {
	if !b.active(e) {
		return false
	}
	b.Blur()
	return true
}
