package aspen

// HitShape is an optional custom hit region for a node, tested in local
// coordinates. Nodes without one fall back to their Width/Height AABB.
type HitShape interface {
	Contains(x, y float64) bool
}

// nodeIDCounter is a plain counter (no atomic — aspen is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the fundamental scene tree element. A single flat struct is used
// for all nodes; a node with zero size and no HitShape is a pure group.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Position (relative to parent) and size
	X, Y          float64
	Width, Height float64

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Interactable bool

	// Appearance. Boxes with a zero-alpha color draw nothing.
	Color Color

	// Hit testing
	HitShape HitShape

	// Metadata
	UserData any

	// Per-node callbacks (nil by default; zero cost when unused)
	OnPress   func(*PointerEvent)
	OnRelease func(*PointerEvent)
	OnUpdate  func(dt float64)

	disposed bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
}

// NewNode creates a group node with no size and no visual output.
func NewNode(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// NewBox creates a node that renders as a solid colored rectangle.
func NewBox(name string, width, height float64, c Color) *Node {
	n := &Node{Name: name, Width: width, Height: height}
	nodeDefaults(n)
	n.Color = c
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("aspen: cannot add nil child")
	}
	if child.Contains(n) {
		panic("aspen: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("aspen: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Containment ---

// Contains reports whether other is n itself or a descendant of n.
// A nil other is never contained. This is the containment test the
// outside-interaction detector uses: it walks other's live parent chain, so
// the answer reflects the tree as it is right now, not as it was when the
// detector attached.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.Parent {
		if p == n {
			return true
		}
	}
	return false
}

// AbsolutePosition returns the node's position in stage coordinates by
// accumulating parent offsets.
func (n *Node) AbsolutePosition() (x, y float64) {
	for p := n; p != nil; p = p.Parent {
		x += p.X
		y += p.Y
	}
	return x, y
}

// AbsoluteBounds returns the node's AABB in stage coordinates.
func (n *Node) AbsoluteBounds() Rect {
	x, y := n.AbsolutePosition()
	return Rect{X: x, Y: y, Width: n.Width, Height: n.Height}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.UserData = nil
	n.OnPress = nil
	n.OnRelease = nil
	n.OnUpdate = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// removeChildByPtr removes child from n.children without clearing
// child.Parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
