package event

// Handler processes specific event types
// Systems implement this interface to receive routed events
type Handler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// Observer sees every dispatched event, used by recorders and network fan-out
type Observer interface {
	ObserveEvent(ev GameEvent)
}

// ObserverFunc adapts a plain function to Observer
type ObserverFunc func(ev GameEvent)

// ObserveEvent calls f(ev)
func (f ObserverFunc) ObserveEvent(ev GameEvent) { f(ev) }

// Router dispatches events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type Router struct {
	handlers  map[EventType][]Handler
	observers []Observer
	queue     *EventQueue
}

// NewRouter creates a router attached to the given queue
func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// Observe adds an observer receiving every event after handlers ran
func (r *Router) Observe(o Observer) {
	r.observers = append(r.observers, o)
}

// DispatchAll consumes all pending events and routes to handlers
// Events are processed in FIFO order; events pushed by handlers wait for the next dispatch
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
		for _, o := range r.observers {
			o.ObserveEvent(ev)
		}
	}
	return len(events)
}

// HasHandlers returns true if any handlers are registered for the given type
func (r *Router) HasHandlers(t EventType) bool {
	return len(r.handlers[t]) > 0
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
