// Package keybind is a document-level keyboard dispatcher. Components register
// bindings when they mount and remove them when they unmount, so no listener
// outlives the component that installed it.
package keybind

import (
	"strings"
	"sync"
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModMeta
	ModShift
	ModAlt
)

// Common key names.
const (
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyEnter     = "Enter"
	KeyEscape    = "Escape"
)

// Target identifies the element that has focus when a key is pressed.
type Target struct {
	// ID of the focused control; empty when the document body has focus.
	ID string
	// Editable is true for text inputs, textareas and contenteditable regions.
	Editable bool
}

// Event is one key press delivered to the dispatcher.
type Event struct {
	Key    string
	Mods   Modifier
	Target Target
}

// Has reports whether any of the given modifiers are held.
func (e Event) Has(m Modifier) bool { return e.Mods&m != 0 }

// Handler reacts to a matching event. It returns true when it consumed the
// event; consumed events are not offered to later bindings.
type Handler func(Event) bool

// Binding matches key events.
type Binding struct {
	Key string
	// AnyMods matches when at least one of these modifiers is held. Zero
	// matches only when no Ctrl/Meta/Alt modifier is held.
	AnyMods Modifier
}

func (b Binding) matches(e Event) bool {
	if !strings.EqualFold(b.Key, e.Key) {
		return false
	}
	if b.AnyMods == 0 {
		return !e.Has(ModCtrl | ModMeta | ModAlt)
	}
	return e.Has(b.AnyMods)
}

type subscription struct {
	id      uint64
	binding Binding
	handler Handler
}

// Dispatcher routes key events to registered bindings in registration order.
type Dispatcher struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscription
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers h for events matching b and returns a function that
// removes the registration. Calling the returned function more than once is
// harmless.
func (d *Dispatcher) Subscribe(b Binding, h Handler) (unsubscribe func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := d.nextID
	d.subs = append(d.subs, subscription{id: id, binding: b, handler: h})

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(id) })
	}
}

func (d *Dispatcher) remove(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, s := range d.subs {
		if s.id == id {
			d.subs = append(d.subs[:i], d.subs[i+1:]...)
			return
		}
	}
}

// Len returns the number of active bindings.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.subs)
}

// Dispatch offers e to each matching binding until one consumes it. It
// reports whether the event was consumed, which callers map to
// preventDefault.
func (d *Dispatcher) Dispatch(e Event) bool {
	d.mu.Lock()
	subs := make([]subscription, len(d.subs))
	copy(subs, d.subs)
	d.mu.Unlock()

	// Handlers run unlocked so they may subscribe or unsubscribe.
	for _, s := range subs {
		if !s.binding.matches(e) {
			continue
		}
		if s.handler(e) {
			return true
		}
	}
	return false
}
