package aspen

import "testing"

func TestListenerHandleRemove(t *testing.T) {
	var reg listenerRegistry

	h1 := reg.add(EventPress, PhaseBubble, func(e *PointerEvent) {})
	h2 := reg.add(EventPress, PhaseBubble, func(e *PointerEvent) {})
	h3 := reg.add(EventRelease, PhaseCapture, func(e *PointerEvent) {})

	if got := reg.count(); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}

	h2.Remove()
	if got := len(reg.pressBubble); got != 1 {
		t.Errorf("pressBubble len = %d, want 1", got)
	}
	if reg.pressBubble[0].id != h1.id {
		t.Error("wrong listener removed")
	}

	// Removing again is a no-op.
	h2.Remove()
	if got := reg.count(); got != 2 {
		t.Errorf("count after double remove = %d, want 2", got)
	}

	h1.Remove()
	h3.Remove()
	if got := reg.count(); got != 0 {
		t.Errorf("count = %d, want 0", got)
	}
}

func TestListenerHandleZeroValueRemove(t *testing.T) {
	var h ListenerHandle
	h.Remove() // must not panic
	if h.active() {
		t.Error("zero handle should not be active")
	}
}

func TestDispatchOrderCaptureNodeBubble(t *testing.T) {
	s := NewStage()
	box := NewBox("box", 50, 50, ColorWhite)
	box.Interactable = true
	s.Root().AddChild(box)

	var order []string
	s.OnPress(PhaseCapture, func(e *PointerEvent) { order = append(order, "capture") })
	s.OnPress(PhaseBubble, func(e *PointerEvent) { order = append(order, "bubble") })
	box.OnPress = func(e *PointerEvent) { order = append(order, "node") }

	s.fire(EventPress, 25, 25, MouseButtonLeft, 0)

	want := []string{"capture", "node", "bubble"}
	if len(order) != len(want) {
		t.Fatalf("dispatch order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("dispatch order = %v, want %v", order, want)
		}
	}
}

func TestDispatchSurvivesSelfRemoval(t *testing.T) {
	var reg listenerRegistry

	var calls []string
	var h1 ListenerHandle
	h1 = reg.add(EventRelease, PhaseBubble, func(e *PointerEvent) {
		calls = append(calls, "first")
		h1.Remove() // one-shot style, as the detector does
	})
	reg.add(EventRelease, PhaseBubble, func(e *PointerEvent) {
		calls = append(calls, "second")
	})

	reg.dispatch(EventRelease, PhaseBubble, &PointerEvent{Type: EventRelease})

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v, want [first second] (self-removal must not skip others)", calls)
	}
	if got := len(reg.releaseBubble); got != 1 {
		t.Errorf("remaining listeners = %d, want 1", got)
	}
}

func TestDispatchAllowsRegistrationMidDispatch(t *testing.T) {
	var reg listenerRegistry

	added := 0
	reg.add(EventPress, PhaseBubble, func(e *PointerEvent) {
		// Arming registers a release listener during press dispatch.
		reg.add(EventRelease, PhaseBubble, func(e *PointerEvent) { added++ })
	})

	reg.dispatch(EventPress, PhaseBubble, &PointerEvent{Type: EventPress})
	if got := len(reg.releaseBubble); got != 1 {
		t.Fatalf("release listeners after press dispatch = %d, want 1", got)
	}
	reg.dispatch(EventRelease, PhaseBubble, &PointerEvent{Type: EventRelease})
	if added != 1 {
		t.Errorf("mid-dispatch listener fired %d times, want 1", added)
	}
}

func TestStageImplementsEventTarget(t *testing.T) {
	var _ EventTarget = NewStage()
}
