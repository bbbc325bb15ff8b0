package event

// Router dispatches events to registered handlers
//
// Architecture:
//   - Synchronous dispatch on the simulation goroutine
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type Router struct {
	handlers map[EventType][]Handler
	sinks    []EffectSink
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// RegisterEffects adds a burst receiver
func (r *Router) RegisterEffects(sink EffectSink) {
	r.sinks = append(r.sinks, sink)
}

// Emit routes ev to its handlers
func (r *Router) Emit(ev GameEvent) {
	for _, h := range r.handlers[ev.Type] {
		h.HandleEvent(ev)
	}
}

// Burst forwards an effect request to every sink
func (r *Router) Burst(b Burst) {
	for _, s := range r.sinks {
		s.Burst(b)
	}
}

// HandlerCount returns the number of handlers registered for the given type
func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
