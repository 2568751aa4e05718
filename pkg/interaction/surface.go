package interaction

import "sync"

// Modifier is a modifier key tracked by a Surface.
type Modifier uint8

const (
	// ModifierShift selects the shift step.
	ModifierShift Modifier = iota + 1
	// ModifierAlt selects a step of 1.
	ModifierAlt
	// ModifierMeta selects a step of 1.
	ModifierMeta
)

// String returns the modifier name.
func (m Modifier) String() string {
	switch m {
	case ModifierShift:
		return "shift"
	case ModifierAlt:
		return "alt"
	case ModifierMeta:
		return "meta"
	default:
		return "unknown"
	}
}

// Modifiers is the set of modifier keys currently held.
type Modifiers struct {
	Shift bool
	Alt   bool
	Meta  bool
}

// With returns a copy of m with modifier k set to down.
func (m Modifiers) With(k Modifier, down bool) Modifiers {
	switch k {
	case ModifierShift:
		m.Shift = down
	case ModifierAlt:
		m.Alt = down
	case ModifierMeta:
		m.Meta = down
	}
	return m
}

// Listener receives surface-wide input that does not depend on focus.
type Listener interface {
	// ModifiersChanged is called with the new modifier set.
	ModifiersChanged(m Modifiers)

	// PointerUp is called when the primary pointer is released anywhere.
	PointerUp()
}

// Surface broadcasts modifier and pointer-up events to its listeners.
// Subscribe returns a function that removes the listener.
type Surface interface {
	Subscribe(l Listener) (cancel func())
}

// Hub is a Surface fed by the host with raw key and pointer events.
// It is shared by all controls on a surface and is safe for concurrent use.
type Hub struct {
	mu        sync.RWMutex
	mods      Modifiers
	listeners map[uint64]Listener
	nextID    uint64
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		listeners: make(map[uint64]Listener),
		nextID:    1,
	}
}

// Subscribe registers l. If modifiers are already held, l is told
// immediately so that a control enabled mid-gesture starts in sync.
func (h *Hub) Subscribe(l Listener) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.listeners[id] = l
	mods := h.mods
	h.mu.Unlock()

	if mods != (Modifiers{}) {
		l.ModifiersChanged(mods)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.listeners, id)
			h.mu.Unlock()
		})
	}
}

// KeyDown records that modifier k is held.
func (h *Hub) KeyDown(k Modifier) {
	h.update(func(m Modifiers) Modifiers { return m.With(k, true) })
}

// KeyUp records that modifier k was released.
func (h *Hub) KeyUp(k Modifier) {
	h.update(func(m Modifiers) Modifiers { return m.With(k, false) })
}

// Reset releases every modifier, e.g. when the surface loses focus and
// key-up events can no longer be observed.
func (h *Hub) Reset() {
	h.update(func(Modifiers) Modifiers { return Modifiers{} })
}

// PointerUp broadcasts a pointer release.
func (h *Hub) PointerUp() {
	for _, l := range h.snapshot() {
		l.PointerUp()
	}
}

// Modifiers returns the modifiers currently held.
func (h *Hub) Modifiers() Modifiers {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.mods
}

// ListenerCount returns the number of subscribed listeners.
func (h *Hub) ListenerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.listeners)
}

func (h *Hub) update(fn func(Modifiers) Modifiers) {
	h.mu.Lock()
	next := fn(h.mods)
	if next == h.mods {
		h.mu.Unlock()
		return
	}
	h.mods = next
	h.mu.Unlock()

	for _, l := range h.snapshot() {
		l.ModifiersChanged(next)
	}
}

// snapshot copies the listeners so callbacks run without the lock held.
func (h *Hub) snapshot() []Listener {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]Listener, 0, len(h.listeners))
	for _, l := range h.listeners {
		out = append(out, l)
	}
	return out
}

var _ Surface = (*Hub)(nil)
