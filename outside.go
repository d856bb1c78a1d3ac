package aspen

// RootRef returns the current root node of the protected subtree, or nil
// when it is absent (not yet, or no longer, mounted). The detector calls it
// at press and release time, never caching the result across events.
type RootRef func() *Node

// Options configures one Detector attachment. It is read once per Attach;
// changing a field afterwards has no effect until the owner detaches and
// re-attaches.
type Options struct {
	// Disabled makes Attach a no-op: no listeners are registered at all.
	Disabled bool

	// UseCapture registers both the press and the release listener in the
	// capture phase instead of the bubble phase.
	UseCapture bool
}

// Detector invokes a callback exactly once per pointer interaction
// (press-and-release) that begins and ends outside a protected subtree.
//
// The state machine has two states per attachment, disarmed and armed, and
// the armed state is exactly "a release listener is registered":
//
//   - A press whose target is outside the subtree arms the detector. An
//     outside press while already armed re-arms it (replacing, not
//     stacking, the release listener).
//   - A press inside the subtree is absorbed: the detector stays disarmed,
//     so no release, wherever it lands, can fire the callback for that
//     interaction.
//   - Any release while armed disarms first, then fires the callback iff
//     the release's own target is outside the subtree. An outside press
//     followed by an inside release therefore does NOT fire.
//
// An absent root (RootRef is nil or returns nil) contains nothing, so the
// detector fails toward firing rather than silently swallowing events
// during mount/unmount races. A nil event target (empty space) is outside
// every subtree.
//
// Detector is not safe for concurrent use; like the rest of the package it
// runs inside the host's single-threaded event dispatch.
type Detector struct {
	target  EventTarget
	root    RootRef
	fn      PointerHandler
	phase   Phase
	press   ListenerHandle
	release ListenerHandle
}

// Attach installs the press listener on target in the phase selected by
// opts. If the detector is already attached, it is detached first, so at
// most one press listener and one release listener are ever live. No-op
// when opts.Disabled is true or target is nil.
func (d *Detector) Attach(target EventTarget, root RootRef, fn PointerHandler, opts Options) {
	d.Detach()
	if opts.Disabled || target == nil || fn == nil {
		return
	}
	d.target = target
	d.root = root
	d.fn = fn
	d.phase = PhaseBubble
	if opts.UseCapture {
		d.phase = PhaseCapture
	}
	d.press = target.OnPress(d.phase, d.onPress)
}

// Detach removes the press listener and, if armed, the release listener.
// Safe to call repeatedly and when never attached. The external owner must
// call it on teardown and before re-attaching with changed inputs.
func (d *Detector) Detach() {
	d.release.Remove()
	d.release = ListenerHandle{}
	d.press.Remove()
	d.press = ListenerHandle{}
	d.target = nil
	d.root = nil
	d.fn = nil
}

// Attached reports whether the press listener is currently registered.
func (d *Detector) Attached() bool {
	return d.press.active()
}

// Armed reports whether a release listener is currently registered, i.e.
// the most recent press was outside the subtree and its release is pending.
func (d *Detector) Armed() bool {
	return d.release.active()
}

// onPress arms the detector when the press lands outside the subtree.
// It always clears any previous release registration first, even within the
// same interaction: registrations must never stack, and a remove that was
// somehow missed must not leak.
func (d *Detector) onPress(e *PointerEvent) {
	if d.target == nil {
		// Detached earlier in this same dispatch; the snapshot still
		// delivered the event.
		return
	}
	if d.containsTarget(e) {
		return
	}
	d.release.Remove()
	d.release = d.target.OnRelease(d.phase, d.onRelease)
}

// onRelease is the one-shot decision point. Disarming happens before the
// containment test and callback, so the detector is left consistent even if
// the callback panics; the panic surfaces to the host untouched.
func (d *Detector) onRelease(e *PointerEvent) {
	d.release.Remove()
	d.release = ListenerHandle{}
	if d.fn == nil || d.containsTarget(e) {
		return
	}
	d.fn(e)
}

// containsTarget tests the event target against the live root subtree.
func (d *Detector) containsTarget(e *PointerEvent) bool {
	if d.root == nil {
		return false
	}
	root := d.root()
	if root == nil {
		return false
	}
	return root.Contains(e.Target)
}
