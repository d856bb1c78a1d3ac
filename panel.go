package aspen

import (
	"github.com/tanema/gween/ease"
)

// panelPadding is the gap applied between content nodes by DisplayStack and
// DisplayRow layout.
const panelPadding = 8.0

// PanelConfig configures a Panel. It is re-read on every SetConfig; the
// detector-facing fields (Disabled, UseCapture) take effect through a full
// detach+reattach of the underlying subscription.
type PanelConfig struct {
	// Disabled turns outside-interaction detection off entirely: while set,
	// the panel registers no stage listeners at all.
	Disabled bool

	// UseCapture registers the panel's detector listeners in the capture
	// phase instead of the bubble phase.
	UseCapture bool

	// Display selects the cosmetic content layout. DisplayDefault applies
	// no override.
	Display Display

	// Box geometry and fill.
	Width, Height float64
	Color         Color

	// FadeDuration, in seconds, for the mount fade-in and Dismiss fade-out.
	// Zero disables fading.
	FadeDuration float32
}

// Panel is a dismissable container: a colored box that renders its nested
// content unconditionally and owns an outside-interaction Detector for the
// subtree it roots.
//
// The panel is the detector's external lifecycle owner. It attaches on
// Mount, detaches on Unmount, and re-synchronizes the subscription
// (detach, then attach with current values) whenever the callback or the
// configuration changes. The detector's RootRef reads the panel's node
// live and reports it absent once unmounted.
type Panel struct {
	stage      *Stage
	node       *Node
	cfg        PanelConfig
	onOutside  PointerHandler
	detector   Detector
	fade       *TweenGroup
	mounted    bool
	dismissing bool
}

// NewPanel creates an unmounted panel on the given stage.
func NewPanel(stage *Stage, cfg PanelConfig) *Panel {
	node := NewBox("panel", cfg.Width, cfg.Height, cfg.Color)
	node.Interactable = true
	p := &Panel{stage: stage, node: node, cfg: cfg}
	node.OnUpdate = p.update
	return p
}

// Node returns the panel's box node, the root of the protected subtree.
func (p *Panel) Node() *Node {
	return p.node
}

// Mounted reports whether the panel is currently in the stage tree.
func (p *Panel) Mounted() bool {
	return p.mounted
}

// AddContent adds a child node to the panel's box and re-applies the
// configured Display layout. Content is rendered unconditionally.
func (p *Panel) AddContent(child *Node) {
	p.node.AddChild(child)
	p.layout()
}

// Mount adds the panel to the tree under parent and attaches the detector
// (unless disabled). Mounting an already-mounted panel unmounts it first.
func (p *Panel) Mount(parent *Node) {
	if p.mounted {
		p.Unmount()
	}
	parent.AddChild(p.node)
	p.mounted = true
	p.dismissing = false
	if p.cfg.FadeDuration > 0 {
		p.node.Alpha = 0
		p.fade = TweenAlpha(p.node, 1, p.cfg.FadeDuration, ease.OutQuad)
	} else {
		p.node.Alpha = 1
		p.fade = nil
	}
	p.resync()
}

// Unmount detaches the detector and removes the panel from the tree.
// No-op when not mounted.
func (p *Panel) Unmount() {
	if !p.mounted {
		return
	}
	p.mounted = false
	p.dismissing = false
	p.detector.Detach()
	p.fade = nil
	p.node.RemoveFromParent()
}

// SetOnOutside replaces the outside-interaction callback and re-synchronizes
// the detector subscription. A nil callback detaches.
func (p *Panel) SetOnOutside(fn PointerHandler) {
	p.onOutside = fn
	p.resync()
}

// SetConfig replaces the panel configuration, re-applies geometry and
// layout, and re-synchronizes the detector subscription.
func (p *Panel) SetConfig(cfg PanelConfig) {
	p.cfg = cfg
	p.node.Width = cfg.Width
	p.node.Height = cfg.Height
	p.node.Color = cfg.Color
	p.layout()
	p.resync()
}

// Config returns the current panel configuration.
func (p *Panel) Config() PanelConfig {
	return p.cfg
}

// Dismiss plays the fade-out (if configured) and unmounts the panel. The
// detector detaches immediately, so no further outside callbacks fire while
// the fade plays. No-op when not mounted or already dismissing.
func (p *Panel) Dismiss() {
	if !p.mounted || p.dismissing {
		return
	}
	p.detector.Detach()
	if p.cfg.FadeDuration <= 0 {
		p.Unmount()
		return
	}
	p.dismissing = true
	p.fade = TweenAlpha(p.node, 0, p.cfg.FadeDuration, ease.InQuad)
}

// resync re-subscribes the detector with current inputs: unconditional
// detach, then attach with the latest root reference, callback, and
// configuration if the panel is mounted and has a callback.
func (p *Panel) resync() {
	p.detector.Detach()
	if !p.mounted || p.onOutside == nil {
		return
	}
	p.detector.Attach(p.stage, p.rootRef, p.onOutside, Options{
		Disabled:   p.cfg.Disabled,
		UseCapture: p.cfg.UseCapture,
	})
}

// rootRef is the live root reference handed to the detector. It reports the
// subtree absent once the panel unmounts, so a pending release during
// teardown is treated as outside.
func (p *Panel) rootRef() *Node {
	if !p.mounted {
		return nil
	}
	return p.node
}

// update drives the mount/dismiss fade from the node's OnUpdate hook.
// Unmounting mutates the tree mid-traversal, so it is deferred.
func (p *Panel) update(dt float64) {
	if p.fade == nil {
		return
	}
	p.fade.Update(float32(dt))
	if p.fade.Done {
		p.fade = nil
		if p.dismissing {
			p.stage.Defer(p.Unmount)
		}
	}
}

// layout applies the cosmetic Display mode to the panel's content nodes.
func (p *Panel) layout() {
	switch p.cfg.Display {
	case DisplayStack:
		y := panelPadding
		for _, child := range p.node.Children() {
			child.X = panelPadding
			child.Y = y
			y += child.Height + panelPadding
		}
	case DisplayRow:
		x := panelPadding
		for _, child := range p.node.Children() {
			child.X = x
			child.Y = panelPadding
			x += child.Width + panelPadding
		}
	}
}
