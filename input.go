package aspen

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Per-pointer state ---

type pointerState struct {
	down         bool
	lastX, lastY float64
	button       MouseButton // button captured at press time
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise derives an AABB from node dimensions.
// Group nodes with no size and no HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Width == 0 && n.Height == 0 {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order (DFS, child order),
// appending interactable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Width != 0 || n.Height != 0 {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at stage coordinates (x, y).
// Returns nil if nothing is hit.
func (s *Stage) hitTest(x, y float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		ax, ay := n.AbsolutePosition()
		if nodeContainsLocal(n, x-ax, y-ay) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Stage.Update() to handle mouse input.
// Queued synthetic events take priority, one per frame, matching the pace
// of real input.
func (s *Stage) processInput() {
	mods := readModifiers()
	if s.processInject(mods) {
		return
	}

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	// Detect which button is pressed. If the pointer is already down, the
	// stored button is used so it cannot change mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(x, y, pressed, button, mods)
}

// processPointer runs press/release edge detection for the single pointer
// and fires events on the down->up and up->down transitions. Press and
// release are always delivered in program order; there is no buffering.
func (s *Stage) processPointer(x, y float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointer

	if pressed && !ps.down {
		ps.down = true
		ps.button = button
		s.fire(EventPress, x, y, ps.button, mods)
	} else if !pressed && ps.down {
		ps.down = false
		s.fire(EventRelease, x, y, ps.button, mods)
	}

	ps.lastX = x
	ps.lastY = y
}

// fire hit-tests the event position and dispatches to capture listeners,
// then the target node's own callback, then bubble listeners.
func (s *Stage) fire(event EventType, x, y float64, button MouseButton, mods KeyModifiers) {
	target := s.hitTest(x, y)
	e := &PointerEvent{
		Type:      event,
		Target:    target,
		X:         x,
		Y:         y,
		Button:    button,
		Modifiers: mods,
	}

	s.handlers.dispatch(event, PhaseCapture, e)
	if target != nil {
		switch event {
		case EventPress:
			if target.OnPress != nil {
				target.OnPress(e)
			}
		case EventRelease:
			if target.OnRelease != nil {
				target.OnRelease(e)
			}
		}
	}
	s.handlers.dispatch(event, PhaseBubble, e)
}

// --- Synthetic event injection ---

// syntheticEvent represents a single injected pointer event in stage
// coordinates, consumed by processInput in place of real mouse polling.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

// InjectPress queues a pointer press event at the given stage coordinates
// (left button). The event is consumed on the next frame's input pass.
func (s *Stage) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		x: x, y: y, pressed: true, button: MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release event at the given stage coordinates.
func (s *Stage) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{
		x: x, y: y, pressed: false, button: MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same stage coordinates. Consumes two frames.
func (s *Stage) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// processInject consumes one queued synthetic event, if any, and reports
// whether it did.
func (s *Stage) processInject(mods KeyModifiers) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	ev := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]
	s.processPointer(ev.x, ev.y, ev.pressed, ev.button, mods)
	return true
}
