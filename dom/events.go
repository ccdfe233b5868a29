package dom

// EventPhase represents the phase of event dispatch.
type EventPhase int

const (
	EventPhaseNone      EventPhase = 0
	EventPhaseCapturing EventPhase = 1
	EventPhaseAtTarget  EventPhase = 2
	EventPhaseBubbling  EventPhase = 3
)

// Event represents an event travelling through the tree. Create one with
// NewEvent; the zero value is uninitialized and cannot be dispatched.
type Event struct {
	eventType  string
	bubbles    bool
	cancelable bool

	target        *Node
	currentTarget *Node
	phase         EventPhase

	stopPropagation  bool
	stopImmediate    bool
	defaultPrevented bool
	trusted          bool

	initialized bool
	dispatching bool
}

// NewEvent creates an initialized event of the given type.
func NewEvent(eventType string, bubbles, cancelable bool) *Event {
	return &Event{
		eventType:   eventType,
		bubbles:     bubbles,
		cancelable:  cancelable,
		initialized: true,
	}
}

// Type returns the event type string.
func (e *Event) Type() string { return e.eventType }

// Bubbles reports whether the event participates in the bubbling phase.
func (e *Event) Bubbles() bool { return e.bubbles }

// Cancelable reports whether PreventDefault has any effect.
func (e *Event) Cancelable() bool { return e.cancelable }

// Target returns the node the event was dispatched to, nil before dispatch.
func (e *Event) Target() *Node { return e.target }

// CurrentTarget returns the node whose listeners are currently being
// invoked, nil outside dispatch.
func (e *Event) CurrentTarget() *Node { return e.currentTarget }

// Phase returns the current dispatch phase.
func (e *Event) Phase() EventPhase { return e.phase }

// IsTrusted reports whether the event was synthesized internally rather
// than dispatched through the public API.
func (e *Event) IsTrusted() bool { return e.trusted }

// StopPropagation prevents the event from advancing to further nodes.
// Listeners already scheduled at the current node still run.
func (e *Event) StopPropagation() {
	e.stopPropagation = true
}

// StopImmediatePropagation prevents any further listener from running,
// including remaining listeners at the current node.
func (e *Event) StopImmediatePropagation() {
	e.stopPropagation = true
	e.stopImmediate = true
}

// PreventDefault marks a cancelable event's default action as prevented.
func (e *Event) PreventDefault() {
	if e.cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Listener is the registration handle for an event callback. Callbacks are
// identified by the handle pointer: removal and duplicate suppression match
// the exact *Listener used at registration, never the function value, so
// distinct handlers with equal behavior are never conflated.
type Listener struct {
	// Fn is invoked with the event being dispatched.
	Fn func(*Event)
	// Once removes the registration after its first invocation.
	Once bool
}

// listenerEntry is one (type, callback handle, capture) registration.
type listenerEntry struct {
	eventType string
	listener  *Listener
	capture   bool
}

// AddEventListener registers a listener for the given event type. A
// registration already present with the same (type, listener, capture)
// triple is not added again; duplicate (type, capture) registrations with
// different handles all fire, in registration order.
func (n *Node) AddEventListener(eventType string, listener *Listener, capture bool) {
	if listener == nil {
		return
	}
	for _, entry := range n.listeners {
		if entry.eventType == eventType && entry.listener == listener && entry.capture == capture {
			return
		}
	}
	n.listeners = append(n.listeners, listenerEntry{
		eventType: eventType,
		listener:  listener,
		capture:   capture,
	})
}

// RemoveEventListener removes the registration matching the exact
// (type, listener, capture) triple. A no-op when listener is nil or no
// match exists.
func (n *Node) RemoveEventListener(eventType string, listener *Listener, capture bool) {
	if listener == nil {
		return
	}
	for i, entry := range n.listeners {
		if entry.eventType == eventType && entry.listener == listener && entry.capture == capture {
			n.listeners = append(n.listeners[:i], n.listeners[i+1:]...)
			return
		}
	}
}

// HasEventListeners returns true if there are any listeners for the event type.
func (n *Node) HasEventListeners(eventType string) bool {
	for _, entry := range n.listeners {
		if entry.eventType == eventType {
			return true
		}
	}
	return false
}

// DispatchEvent dispatches an event at this node through the capturing,
// at-target and (for bubbling events) bubbling phases. It returns true if
// the event's default action was not prevented. Dispatching an event that
// is already in flight or was never initialized fails with
// InvalidStateError.
//
// Events dispatched through this public entry point are untrusted; internal
// lifecycle notifications go through dispatchTrusted.
func (n *Node) DispatchEvent(event *Event) (bool, error) {
	if event == nil {
		return false, ErrInvalidState("The event was not initialized.")
	}
	// Passing through the public entry point drops the trusted mark even
	// when the dispatch itself is rejected.
	event.trusted = false
	if !event.initialized {
		return false, ErrInvalidState("The event was not initialized.")
	}
	if event.dispatching {
		return false, ErrInvalidState("The event is already being dispatched.")
	}
	return n.dispatch(event), nil
}

// dispatchTrusted dispatches an internally synthesized event, marked trusted.
func (n *Node) dispatchTrusted(event *Event) bool {
	event.trusted = true
	return n.dispatch(event)
}

func (n *Node) dispatch(event *Event) bool {
	event.dispatching = true
	event.target = n
	event.stopPropagation = false
	event.stopImmediate = false

	// The propagation path is fixed when dispatch starts: ancestors of the
	// target from closest to root. Listener-list mutation during dispatch
	// does not change which nodes are visited.
	var ancestors []*Node
	for a := n.parentNode; a != nil; a = a.parentNode {
		ancestors = append(ancestors, a)
	}

	// Capturing phase: root down to, but excluding, the target
	event.phase = EventPhaseCapturing
	for i := len(ancestors) - 1; i >= 0 && !event.stopPropagation; i-- {
		ancestors[i].invokeListeners(event, EventPhaseCapturing)
	}

	// At-target phase: all listeners regardless of capture flag
	if !event.stopPropagation {
		event.phase = EventPhaseAtTarget
		n.invokeListeners(event, EventPhaseAtTarget)
	}

	// Bubbling phase: target's parent up to the root
	if event.bubbles && !event.stopPropagation {
		event.phase = EventPhaseBubbling
		for _, a := range ancestors {
			if event.stopPropagation {
				break
			}
			a.invokeListeners(event, EventPhaseBubbling)
		}
	}

	event.phase = EventPhaseNone
	event.currentTarget = nil
	event.dispatching = false

	return !event.defaultPrevented
}

// invokeListeners runs this node's listeners matching the given phase, in
// registration order. The listener list is snapshotted before iterating:
// listeners added or removed by a callback do not affect the invocations
// already in progress at this node, and a listener may freely mutate the
// tree being dispatched over.
func (n *Node) invokeListeners(event *Event, phase EventPhase) {
	snapshot := make([]listenerEntry, len(n.listeners))
	copy(snapshot, n.listeners)

	event.currentTarget = n

	for _, entry := range snapshot {
		if entry.eventType != event.eventType {
			continue
		}
		if phase == EventPhaseCapturing && !entry.capture {
			continue
		}
		if phase == EventPhaseBubbling && entry.capture {
			continue
		}

		if entry.listener.Once {
			n.RemoveEventListener(entry.eventType, entry.listener, entry.capture)
		}

		entry.listener.Fn(event)

		if event.stopImmediate {
			break
		}
	}
}
