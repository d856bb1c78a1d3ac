package aspen

// PointerEvent carries the data of one press or release. The same event
// value is passed to every listener in the dispatch, capture phase first.
type PointerEvent struct {
	Type      EventType
	Target    *Node // topmost interactable node hit, or nil over empty space
	X, Y      float64
	Button    MouseButton
	Modifiers KeyModifiers
}

// PointerHandler is a stage-level pointer event callback.
type PointerHandler func(*PointerEvent)

// EventTarget is the global event surface a Detector subscribes to.
// *Stage implements it; other host integrations (or test doubles) can
// provide their own as long as they honor handle removal semantics.
type EventTarget interface {
	OnPress(phase Phase, fn PointerHandler) ListenerHandle
	OnRelease(phase Phase, fn PointerHandler) ListenerHandle
}

// --- Listener registry ---

type listener struct {
	id uint32
	fn PointerHandler
}

// listenerRegistry holds stage-level listeners, one slot per event and phase.
type listenerRegistry struct {
	pressCapture   []listener
	pressBubble    []listener
	releaseCapture []listener
	releaseBubble  []listener
	nextID         uint32
}

func (r *listenerRegistry) slot(event EventType, phase Phase) *[]listener {
	switch {
	case event == EventPress && phase == PhaseCapture:
		return &r.pressCapture
	case event == EventPress:
		return &r.pressBubble
	case phase == PhaseCapture:
		return &r.releaseCapture
	default:
		return &r.releaseBubble
	}
}

func (r *listenerRegistry) add(event EventType, phase Phase, fn PointerHandler) ListenerHandle {
	r.nextID++
	id := r.nextID
	slot := r.slot(event, phase)
	*slot = append(*slot, listener{id: id, fn: fn})
	return ListenerHandle{id: id, reg: r, event: event, phase: phase}
}

// dispatch invokes every listener in the given slot. The slot is copied
// first: a listener may remove itself (the detector's release listener
// always does) or register new listeners mid-dispatch.
func (r *listenerRegistry) dispatch(event EventType, phase Phase, e *PointerEvent) {
	slot := *r.slot(event, phase)
	if len(slot) == 0 {
		return
	}
	snapshot := make([]listener, len(slot))
	copy(snapshot, slot)
	for _, l := range snapshot {
		l.fn(e)
	}
}

// count returns the number of live listeners across all slots.
func (r *listenerRegistry) count() int {
	return len(r.pressCapture) + len(r.pressBubble) +
		len(r.releaseCapture) + len(r.releaseBubble)
}

func removeListener(s []listener, id uint32) []listener {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = listener{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Handle ---

// ListenerHandle allows removing a registered stage-level listener.
// The zero value is inert: Remove on it is a no-op.
type ListenerHandle struct {
	id    uint32
	reg   *listenerRegistry
	event EventType
	phase Phase
}

// Remove unregisters this listener so it no longer fires.
// Safe to call multiple times; later calls find nothing to remove.
func (h ListenerHandle) Remove() {
	if h.reg == nil {
		return
	}
	slot := h.reg.slot(h.event, h.phase)
	*slot = removeListener(*slot, h.id)
}

// active reports whether this handle refers to a registration (it may have
// been removed since; the handle does not track that).
func (h ListenerHandle) active() bool {
	return h.reg != nil
}
