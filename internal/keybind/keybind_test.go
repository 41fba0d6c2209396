package keybind

import "testing"

func TestDispatchMatchesKeyCaseInsensitive(t *testing.T) {
	d := NewDispatcher()
	hits := 0
	d.Subscribe(Binding{Key: "k", AnyMods: ModCtrl}, func(Event) bool {
		hits++
		return true
	})

	if !d.Dispatch(Event{Key: "K", Mods: ModCtrl | ModShift}) {
		t.Error("expected Ctrl+Shift+K to match")
	}
	if d.Dispatch(Event{Key: "k", Mods: ModAlt}) {
		t.Error("Alt+K should not match a Ctrl binding")
	}
	if hits != 1 {
		t.Errorf("expected 1 hit, got %d", hits)
	}
}

func TestDispatchPlainBindingRejectsModifiers(t *testing.T) {
	d := NewDispatcher()
	d.Subscribe(Binding{Key: KeyEnter}, func(Event) bool { return true })

	if !d.Dispatch(Event{Key: KeyEnter}) {
		t.Error("plain Enter should match")
	}
	if !d.Dispatch(Event{Key: KeyEnter, Mods: ModShift}) {
		t.Error("Shift+Enter should still match a plain binding")
	}
	if d.Dispatch(Event{Key: KeyEnter, Mods: ModMeta}) {
		t.Error("Meta+Enter should not match a plain binding")
	}
}

func TestDispatchStopsAtFirstConsumer(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(Binding{Key: KeyEscape}, func(Event) bool {
		order = append(order, "first")
		return false
	})
	d.Subscribe(Binding{Key: KeyEscape}, func(Event) bool {
		order = append(order, "second")
		return true
	})
	d.Subscribe(Binding{Key: KeyEscape}, func(Event) bool {
		order = append(order, "third")
		return true
	})

	if !d.Dispatch(Event{Key: KeyEscape}) {
		t.Fatal("expected event to be consumed")
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("unexpected handler order: %v", order)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	unsub := d.Subscribe(Binding{Key: KeyArrowDown}, func(Event) bool { return true })
	keep := d.Subscribe(Binding{Key: KeyArrowUp}, func(Event) bool { return true })
	defer keep()

	unsub()
	unsub()
	if d.Len() != 1 {
		t.Errorf("expected 1 binding, got %d", d.Len())
	}
	if d.Dispatch(Event{Key: KeyArrowDown}) {
		t.Error("removed binding still fired")
	}
}

func TestHandlerMayUnsubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	var unsub func()
	unsub = d.Subscribe(Binding{Key: KeyEnter}, func(Event) bool {
		unsub()
		return true
	})

	if !d.Dispatch(Event{Key: KeyEnter}) {
		t.Error("expected first dispatch to be consumed")
	}
	if d.Dispatch(Event{Key: KeyEnter}) {
		t.Error("binding should be gone after self-unsubscribe")
	}
}
