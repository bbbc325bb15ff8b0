package status

import "sync/atomic"

// Metric keys written by the engine and read by the HUD and spectator
const (
	Ticks            = "engine.ticks"
	TickFaults       = "engine.tick_faults"
	TickMillis       = "engine.tick_ms"
	Rounds           = "round.count"
	RoundID          = "round.id"
	RoundPhase       = "round.phase"
	ShotsFired       = "combat.shots_player"
	OpponentShots    = "combat.shots_opponent"
	Kills            = "combat.kills"
	ResourcesEaten   = "resource.eaten"
	OpponentsSpawned = "opponent.spawned"
	LiveOpponents    = "opponent.live"
	LiveProjectiles  = "projectile.live"
	LiveResources    = "resource.live"
	PlayerLength     = "player.length"
	SpectatorClients = "spectate.clients"
)

// Registry is the central metrics facade
// Producers cache pointers during init; hot paths write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Snapshot copies every metric into a plain map for serialization
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	r.Strings.Range(func(k string, v *AtomicString) { out[k] = v.Load() })
	return out
}

// Int reads a counter or gauge; unregistered keys read as zero
func (r *Registry) Int(key string) int64 {
	if v, ok := r.Ints.Lookup(key); ok {
		return v.Load()
	}
	return 0
}

// Float reads a float metric; unregistered keys read as zero
func (r *Registry) Float(key string) float64 {
	if v, ok := r.Floats.Lookup(key); ok {
		return v.Get()
	}
	return 0
}
