package interaction

// Platform performs the host-side effects of the controller.
type Platform interface {
	// RequestPointerLock captures the pointer at drag start.
	RequestPointerLock()

	// ExitPointerLock releases the pointer at drag end.
	ExitPointerLock()

	// Focus moves input focus to the control.
	Focus()

	// SelectAll selects the control's whole text.
	SelectAll()

	// Defer schedules fn to run after the current event has been handled.
	// Acquiring or releasing pointer lock can steal focus, so the refocus
	// around a drag goes through Defer.
	Defer(fn func())
}

// NoopPlatform is a Platform without side effects. Defer runs fn
// immediately.
type NoopPlatform struct{}

func (NoopPlatform) RequestPointerLock() {}
func (NoopPlatform) ExitPointerLock()    {}
func (NoopPlatform) Focus()              {}
func (NoopPlatform) SelectAll()          {}
func (NoopPlatform) Defer(fn func())     { fn() }

var _ Platform = NoopPlatform{}
