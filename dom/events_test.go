package dom

import (
	"testing"
)

// eventTree builds ancestor > middle > target for dispatch tests.
func eventTree(t *testing.T) (ancestor, middle, target *Node) {
	t.Helper()
	doc := NewDocument()
	ancestor = doc.CreateElement("section").AsNode()
	middle = doc.CreateElement("div").AsNode()
	target = doc.CreateElement("button").AsNode()
	ancestor.AppendChild(middle)
	middle.AppendChild(target)
	return ancestor, middle, target
}

func TestDispatchEvent_PhaseOrder(t *testing.T) {
	ancestor, _, target := eventTree(t)

	var order []string
	ancestor.AddEventListener("click", &Listener{Fn: func(e *Event) {
		order = append(order, "capture")
		if e.Phase() != EventPhaseCapturing {
			t.Errorf("expected capturing phase, got %v", e.Phase())
		}
	}}, true)
	target.AddEventListener("click", &Listener{Fn: func(e *Event) {
		order = append(order, "target")
		if e.Phase() != EventPhaseAtTarget {
			t.Errorf("expected at-target phase, got %v", e.Phase())
		}
		if e.Target() != target || e.CurrentTarget() != target {
			t.Error("target/currentTarget should both be the target node here")
		}
	}}, false)
	ancestor.AddEventListener("click", &Listener{Fn: func(e *Event) {
		order = append(order, "bubble")
		if e.Phase() != EventPhaseBubbling {
			t.Errorf("expected bubbling phase, got %v", e.Phase())
		}
		if e.CurrentTarget() != ancestor {
			t.Error("currentTarget should be the ancestor during bubbling")
		}
	}}, false)

	ok, err := target.DispatchEvent(NewEvent("click", true, false))
	if err != nil {
		t.Fatalf("DispatchEvent failed: %v", err)
	}
	if !ok {
		t.Error("a non-prevented event should report true")
	}

	want := []string{"capture", "target", "bubble"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestDispatchEvent_NonBubbling(t *testing.T) {
	ancestor, _, target := eventTree(t)

	bubbled := false
	ancestor.AddEventListener("focus", &Listener{Fn: func(e *Event) {
		bubbled = true
	}}, false)
	target.AddEventListener("focus", &Listener{Fn: func(e *Event) {}}, false)

	if _, err := target.DispatchEvent(NewEvent("focus", false, false)); err != nil {
		t.Fatalf("DispatchEvent failed: %v", err)
	}
	if bubbled {
		t.Error("a non-bubbling event must not reach ancestors after the target")
	}
}

func TestDispatchEvent_AtTargetIgnoresCaptureFlag(t *testing.T) {
	_, _, target := eventTree(t)

	calls := 0
	target.AddEventListener("click", &Listener{Fn: func(e *Event) { calls++ }}, true)
	target.AddEventListener("click", &Listener{Fn: func(e *Event) { calls++ }}, false)

	if _, err := target.DispatchEvent(NewEvent("click", false, false)); err != nil {
		t.Fatalf("DispatchEvent failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("at the target, both capture and bubble registrations fire, got %d", calls)
	}
}

func TestDispatchEvent_StopPropagation(t *testing.T) {
	ancestor, middle, target := eventTree(t)

	var order []string
	ancestor.AddEventListener("click", &Listener{Fn: func(e *Event) {
		order = append(order, "ancestor-capture")
	}}, true)
	middle.AddEventListener("click", &Listener{Fn: func(e *Event) {
		order = append(order, "middle-capture")
		e.StopPropagation()
	}}, true)
	middle.AddEventListener("click", &Listener{Fn: func(e *Event) {
		// Same node, same phase: still runs after StopPropagation
		order = append(order, "middle-capture-2")
	}}, true)
	target.AddEventListener("click", &Listener{Fn: func(e *Event) {
		order = append(order, "target")
	}}, false)

	target.DispatchEvent(NewEvent("click", true, false))

	want := []string{"ancestor-capture", "middle-capture", "middle-capture-2"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
}

func TestDispatchEvent_StopImmediatePropagation(t *testing.T) {
	_, _, target := eventTree(t)

	var order []string
	target.AddEventListener("click", &Listener{Fn: func(e *Event) {
		order = append(order, "first")
		e.StopImmediatePropagation()
	}}, false)
	target.AddEventListener("click", &Listener{Fn: func(e *Event) {
		order = append(order, "second")
	}}, false)

	target.DispatchEvent(NewEvent("click", true, false))

	if len(order) != 1 || order[0] != "first" {
		t.Errorf("stop-immediate must halt remaining listeners at the node, got %v", order)
	}
}

func TestDispatchEvent_DuplicateRegistrations(t *testing.T) {
	_, _, target := eventTree(t)

	var order []string
	first := &Listener{Fn: func(e *Event) { order = append(order, "first") }}
	second := &Listener{Fn: func(e *Event) { order = append(order, "second") }}

	// Distinct handles with the same (type, capture) both fire, in order
	target.AddEventListener("click", first, false)
	target.AddEventListener("click", second, false)
	// The exact same handle is not registered twice
	target.AddEventListener("click", first, false)

	target.DispatchEvent(NewEvent("click", false, false))

	want := []string{"first", "second"}
	if len(order) != len(want) || order[0] != want[0] || order[1] != want[1] {
		t.Errorf("expected %v, got %v", want, order)
	}
}

func TestRemoveEventListener_IdentityMatch(t *testing.T) {
	_, _, target := eventTree(t)

	calls := 0
	listener := &Listener{Fn: func(e *Event) { calls++ }}
	target.AddEventListener("click", listener, false)

	// Wrong capture flag: no match, registration stays
	target.RemoveEventListener("click", listener, true)
	// Nil callback: no-op
	target.RemoveEventListener("click", nil, false)
	// Different handle with identical behavior: no match
	target.RemoveEventListener("click", &Listener{Fn: func(e *Event) { calls++ }}, false)

	target.DispatchEvent(NewEvent("click", false, false))
	if calls != 1 {
		t.Fatalf("the registration should have survived, got %d calls", calls)
	}

	target.RemoveEventListener("click", listener, false)
	target.DispatchEvent(NewEvent("click", false, false))
	if calls != 1 {
		t.Error("an exact triple match should remove the registration")
	}
}

func TestDispatchEvent_SnapshotPerNode(t *testing.T) {
	_, _, target := eventTree(t)

	var order []string
	late := &Listener{Fn: func(e *Event) { order = append(order, "late") }}
	remove := &Listener{Fn: func(e *Event) { order = append(order, "removed-too-late") }}
	target.AddEventListener("click", &Listener{Fn: func(e *Event) {
		order = append(order, "first")
		// Neither mutation affects the invocations in progress at this node
		target.AddEventListener("click", late, false)
		target.RemoveEventListener("click", remove, false)
	}}, false)
	target.AddEventListener("click", remove, false)

	target.DispatchEvent(NewEvent("click", false, false))

	want := []string{"first", "removed-too-late"}
	if len(order) != len(want) || order[0] != want[0] || order[1] != want[1] {
		t.Errorf("listener-list membership must be fixed per node, expected %v, got %v", want, order)
	}
}

func TestDispatchEvent_ReentrantTreeMutation(t *testing.T) {
	ancestor, middle, target := eventTree(t)

	var order []string
	target.AddEventListener("click", &Listener{Fn: func(e *Event) {
		order = append(order, "target")
		// Mutating the tree mid-dispatch is legal; the propagation path is fixed
		middle.RemoveChild(target)
	}}, false)
	ancestor.AddEventListener("click", &Listener{Fn: func(e *Event) {
		order = append(order, "ancestor-bubble")
	}}, false)

	if _, err := target.DispatchEvent(NewEvent("click", true, false)); err != nil {
		t.Fatalf("DispatchEvent failed: %v", err)
	}

	want := []string{"target", "ancestor-bubble"}
	if len(order) != len(want) || order[1] != want[1] {
		t.Errorf("the path fixed at dispatch start must still be walked, got %v", order)
	}
}

func TestDispatchEvent_InvalidState(t *testing.T) {
	_, _, target := eventTree(t)

	// Uninitialized event
	if _, err := target.DispatchEvent(&Event{}); !isDOMError(err, "InvalidStateError") {
		t.Errorf("dispatching an uninitialized event should fail, got %v", err)
	}
	if _, err := target.DispatchEvent(nil); !isDOMError(err, "InvalidStateError") {
		t.Errorf("dispatching nil should fail, got %v", err)
	}

	// Event already mid-dispatch
	event := NewEvent("click", false, false)
	var nested error
	target.AddEventListener("click", &Listener{Fn: func(e *Event) {
		_, nested = target.DispatchEvent(event)
	}}, false)
	if _, err := target.DispatchEvent(event); err != nil {
		t.Fatalf("outer dispatch failed: %v", err)
	}
	if !isDOMError(nested, "InvalidStateError") {
		t.Errorf("re-dispatching an in-flight event should fail, got %v", nested)
	}

	// A completed event can be dispatched again
	if _, err := target.DispatchEvent(event); err != nil {
		t.Errorf("re-dispatching after completion should work, got %v", err)
	}
}

func TestDispatchEvent_TrustAndDefault(t *testing.T) {
	_, _, target := eventTree(t)

	var trusted bool
	target.AddEventListener("submit", &Listener{Fn: func(e *Event) {
		trusted = e.IsTrusted()
		e.PreventDefault()
	}}, false)

	event := NewEvent("submit", false, true)
	ok, err := target.DispatchEvent(event)
	if err != nil {
		t.Fatalf("DispatchEvent failed: %v", err)
	}
	if trusted {
		t.Error("events dispatched through the public API are untrusted")
	}
	if ok || !event.DefaultPrevented() {
		t.Error("PreventDefault on a cancelable event should be reported")
	}

	// Internally synthesized events are trusted
	if !target.dispatchTrusted(NewEvent("load", false, false)) {
		t.Error("an unprevented trusted dispatch should report true")
	}

	// PreventDefault is a no-op on non-cancelable events
	plain := NewEvent("input", false, false)
	target.AddEventListener("input", &Listener{Fn: func(e *Event) { e.PreventDefault() }}, false)
	if ok, _ := target.DispatchEvent(plain); !ok || plain.DefaultPrevented() {
		t.Error("non-cancelable events cannot be default-prevented")
	}
}

func TestDispatchEvent_FailedDispatchClearsTrusted(t *testing.T) {
	_, _, target := eventTree(t)

	event := NewEvent("ready", false, false)
	target.AddEventListener("ready", &Listener{Fn: func(e *Event) {
		if !e.IsTrusted() {
			t.Error("the trusted dispatch should carry the trusted mark")
		}
		// Handing the in-flight event to the public API is rejected but
		// still drops the trusted mark
		if _, err := target.DispatchEvent(e); !isDOMError(err, "InvalidStateError") {
			t.Errorf("re-dispatching an in-flight event should fail, got %v", err)
		}
	}}, false)

	target.dispatchTrusted(event)
	if event.IsTrusted() {
		t.Error("an event that went through the public API must end up untrusted")
	}
}

func TestHasEventListeners(t *testing.T) {
	_, _, target := eventTree(t)

	if target.HasEventListeners("click") {
		t.Error("a fresh node has no listeners")
	}

	listener := &Listener{Fn: func(e *Event) {}}
	target.AddEventListener("click", listener, false)
	if !target.HasEventListeners("click") {
		t.Error("the registration should be visible")
	}
	if target.HasEventListeners("keydown") {
		t.Error("other event types are unaffected")
	}

	target.RemoveEventListener("click", listener, false)
	if target.HasEventListeners("click") {
		t.Error("removing the last registration should clear the type")
	}
}

func TestDispatchEvent_OnceListener(t *testing.T) {
	_, _, target := eventTree(t)

	calls := 0
	target.AddEventListener("click", &Listener{Fn: func(e *Event) { calls++ }, Once: true}, false)

	target.DispatchEvent(NewEvent("click", false, false))
	target.DispatchEvent(NewEvent("click", false, false))

	if calls != 1 {
		t.Errorf("a once listener fires a single time, got %d", calls)
	}
}
