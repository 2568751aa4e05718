package interaction

import (
	"github.com/numval/numval-go/pkg/log"
)

// PointerDown starts a drag on the adjustment handle at (x, y).
func (c *Controller) PointerDown(x, y float64) {
	if c.inactive() || c.readOnly || c.dragging {
		return
	}
	c.dragging = true
	c.anchor = c.coordinate(x, y)
	c.refocus = c.focused
	c.platform.RequestPointerLock()
	if c.refocus {
		c.refocusLater()
	}

	c.debugLog("drag started", "x", x, "y", y)
	c.traceState(log.StateEntityDragging, "IDLE", "DRAGGING", "pointer down")
	c.traceDrag(log.DragEvent{Phase: log.DragPhaseStart, X: x, Y: y})
	if c.onDragChange != nil {
		c.onDragChange(true)
	}
}

// PointerMove commits the movement since the previous sample. Moves without
// the primary button held are ignored.
func (c *Controller) PointerMove(x, y float64, primary bool) {
	if !c.dragging || !primary || c.inactive() {
		return
	}
	pos := c.coordinate(x, y)
	delta := pos - c.anchor
	c.anchor = pos
	if delta == 0 {
		return
	}
	if c.axis == AxisY {
		// Screen Y grows downwards.
		delta = -delta
	}
	c.traceDrag(log.DragEvent{Phase: log.DragPhaseMove, X: x, Y: y, Delta: delta})
	c.stepBy(log.SourcePointer, delta*c.CurrentStep())
}

// PointerUp ends the drag. It implements Listener so that a release
// anywhere on the surface ends the drag.
func (c *Controller) PointerUp() {
	if !c.dragging {
		return
	}
	c.endDrag("pointer up")
}

func (c *Controller) endDrag(reason string) {
	c.dragging = false
	c.platform.ExitPointerLock()
	// Pointer lock may have blurred the input since pointer-down.
	if c.refocus {
		c.refocusLater()
	}
	c.refocus = false

	c.debugLog("drag ended", "reason", reason)
	c.traceState(log.StateEntityDragging, "DRAGGING", "IDLE", reason)
	c.traceDrag(log.DragEvent{Phase: log.DragPhaseEnd})
	if c.onDragChange != nil {
		c.onDragChange(false)
	}
}

// refocusLater restores focus and selection after a pointer lock change.
func (c *Controller) refocusLater() {
	platform := c.platform
	platform.Defer(func() {
		platform.Focus()
		platform.SelectAll()
	})
}

func (c *Controller) coordinate(x, y float64) float64 {
	if c.axis == AxisY {
		return y
	}
	return x
}
