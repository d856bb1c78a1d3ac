package aspen

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Stage is the top-level object that owns the node tree, the stage-level
// listener registry, and pointer state. It implements EventTarget.
type Stage struct {
	root *Node

	// ClearColor fills the screen before nodes are drawn.
	ClearColor Color

	handlers    listenerRegistry
	pointer     pointerState
	hitBuf      []*Node
	injectQueue []syntheticEvent
	deferred    []func()

	whitePixel *ebiten.Image // lazily created 1x1 image for solid boxes
}

// NewStage creates a stage with a pre-created root group node.
func NewStage() *Stage {
	root := NewNode("root")
	root.Interactable = true
	return &Stage{root: root}
}

// Root returns the stage's root node.
func (s *Stage) Root() *Node {
	return s.root
}

// OnPress registers a stage-level listener for press events in the given
// phase and returns a handle for removing it.
func (s *Stage) OnPress(phase Phase, fn PointerHandler) ListenerHandle {
	return s.handlers.add(EventPress, phase, fn)
}

// OnRelease registers a stage-level listener for release events in the given
// phase and returns a handle for removing it.
func (s *Stage) OnRelease(phase Phase, fn PointerHandler) ListenerHandle {
	return s.handlers.add(EventRelease, phase, fn)
}

// Update processes input, then runs node updaters, then any deferred tree
// mutations. Call once per ebiten tick.
func (s *Stage) Update() {
	dt := 1.0 / float64(ebiten.TPS())
	s.processInput()
	s.tick(dt)
	s.flushDeferred()
}

// tick runs OnUpdate hooks over the tree.
func (s *Stage) tick(dt float64) {
	runUpdaters(s.root, dt)
}

// runUpdaters walks the tree calling OnUpdate. Updaters must not mutate the
// sibling list they are being traversed from; use Stage.Defer for that.
func runUpdaters(n *Node, dt float64) {
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, child := range n.children {
		runUpdaters(child, dt)
	}
}

// Defer schedules fn to run after the current Update pass. Used when an
// updater needs to mutate the part of the tree being traversed (for
// example, a panel unmounting itself when its fade-out finishes).
func (s *Stage) Defer(fn func()) {
	s.deferred = append(s.deferred, fn)
}

func (s *Stage) flushDeferred() {
	for i := 0; i < len(s.deferred); i++ {
		s.deferred[i]()
	}
	s.deferred = s.deferred[:0]
}

// Draw fills the screen with ClearColor and renders the tree as solid
// colored boxes in painter order.
func (s *Stage) Draw(screen *ebiten.Image) {
	screen.Fill(s.ClearColor.toRGBA())
	if s.whitePixel == nil {
		s.whitePixel = ebiten.NewImage(1, 1)
		s.whitePixel.Fill(ColorWhite.toRGBA())
	}
	s.drawNode(screen, s.root, 0, 0, 1)
}

func (s *Stage) drawNode(screen *ebiten.Image, n *Node, ox, oy, alpha float64) {
	if !n.Visible {
		return
	}
	alpha *= n.Alpha
	x := ox + n.X
	y := oy + n.Y

	if n.Width > 0 && n.Height > 0 && n.Color.A > 0 {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(n.Width, n.Height)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(n.Color.toRGBA())
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(s.whitePixel, op)
	}

	for _, child := range n.children {
		s.drawNode(screen, child, x, y, alpha)
	}
}
