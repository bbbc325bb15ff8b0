package event

import "github.com/lixenwraith/shooter-snake/core"

// GameEvent is one emitted occurrence
type GameEvent struct {
	Type EventType
	Tick uint64
}

// Burst is a visual effect request at a pixel position
// The receiver owns the particle lifecycle
type Burst struct {
	X, Y  float64
	Color core.RGB
	Count int
}

// Handler receives routed events synchronously inside the tick
// Implementations must not block
type Handler interface {
	HandleEvent(ev GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []EventType
}

// EffectSink receives burst requests synchronously inside the tick
type EffectSink interface {
	Burst(b Burst)
}

// HandlerFunc adapts a function into a Handler for the given types
type HandlerFunc struct {
	Types []EventType
	Fn    func(ev GameEvent)
}

func (h HandlerFunc) HandleEvent(ev GameEvent) { h.Fn(ev) }
func (h HandlerFunc) EventTypes() []EventType { return h.Types }
