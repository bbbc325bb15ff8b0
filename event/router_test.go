package event

import (
	"testing"

	"github.com/lixenwraith/shooter-snake/core"
)

type recorder struct {
	types []EventType
	got   []GameEvent
}

func (r *recorder) HandleEvent(ev GameEvent) { r.got = append(r.got, ev) }
func (r *recorder) EventTypes() []EventType { return r.types }

type burstRecorder struct {
	bursts []Burst
}

func (b *burstRecorder) Burst(burst Burst) { b.bursts = append(b.bursts, burst) }

func TestRouter_RoutesByType(t *testing.T) {
	r := NewRouter()
	eats := &recorder{types: []EventType{EventEat}}
	deaths := &recorder{types: []EventType{EventPlayerDied, EventOpponentDied}}
	r.Register(eats)
	r.Register(deaths)

	r.Emit(GameEvent{Type: EventEat, Tick: 1})
	r.Emit(GameEvent{Type: EventOpponentDied, Tick: 2})
	r.Emit(GameEvent{Type: EventVictory, Tick: 3})

	if len(eats.got) != 1 || eats.got[0].Tick != 1 {
		t.Errorf("Expected one eat event, got %v", eats.got)
	}
	if len(deaths.got) != 1 || deaths.got[0].Type != EventOpponentDied {
		t.Errorf("Expected one opponent death, got %v", deaths.got)
	}
	if r.HandlerCount(EventVictory) != 0 {
		t.Error("Expected no victory handlers")
	}
}

func TestRouter_HandlerFunc(t *testing.T) {
	r := NewRouter()
	count := 0
	r.Register(HandlerFunc{Types: AllTypes(), Fn: func(GameEvent) { count++ }})

	for _, typ := range AllTypes() {
		r.Emit(GameEvent{Type: typ})
	}
	if count != len(AllTypes()) {
		t.Errorf("Expected %d calls, got %d", len(AllTypes()), count)
	}
}

func TestRouter_Burst(t *testing.T) {
	r := NewRouter()
	sink := &burstRecorder{}
	r.RegisterEffects(sink)

	r.Burst(Burst{X: 10, Y: 20, Color: core.RGBWhite, Count: 15})
	if len(sink.bursts) != 1 || sink.bursts[0].Count != 15 {
		t.Errorf("Expected one burst of 15, got %v", sink.bursts)
	}
}

func TestEventType_String(t *testing.T) {
	if EventOpponentDied.String() != "OpponentDied" {
		t.Errorf("Expected OpponentDied, got %s", EventOpponentDied)
	}
	if EventType(99).String() != "Unknown" {
		t.Errorf("Expected Unknown, got %s", EventType(99))
	}
}
