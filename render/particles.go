package render

import (
	"math"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/event"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// Particle lives in world pixel space
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // 1 at spawn, removed at 0
	Decay  float64 // life lost per frame
	Size   float64
	Color  core.RGB
}

// ParticleSystem owns burst particles; it receives bursts from the engine and
// steps once per rendered frame
type ParticleSystem struct {
	mu        sync.Mutex
	rng       *rand.Rand
	particles []Particle
	max       int
}

// NewParticleSystem creates an empty pool capped at MaxParticles
func NewParticleSystem(seed uint64) *ParticleSystem {
	return &ParticleSystem{
		rng:       rand.New(rand.NewSource(seed)),
		particles: make([]Particle, 0, 256),
		max:       parameter.MaxParticles,
	}
}

// Burst implements event.EffectSink
// Particles past the cap are dropped
func (ps *ParticleSystem) Burst(b event.Burst) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	for i := 0; i < b.Count && len(ps.particles) < ps.max; i++ {
		angle := ps.rng.Float64() * 2 * math.Pi
		speed := ps.rng.Float64() * parameter.ParticleMaxSpeed
		ps.particles = append(ps.particles, Particle{
			X:     b.X,
			Y:     b.Y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  1,
			Decay: parameter.ParticleMinDecay + ps.rng.Float64()*(parameter.ParticleMaxDecay-parameter.ParticleMinDecay),
			Size:  1,
			Color: b.Color,
		})
	}
}

// Update steps every particle one frame and compacts the dead ones
func (ps *ParticleSystem) Update() {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= p.Decay
		p.Size *= parameter.ParticleShrink
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	ps.particles = live
}

// Len returns the live particle count
func (ps *ParticleSystem) Len() int {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	return len(ps.particles)
}

// IsVisible skips the layer while no particle is alive
func (ps *ParticleSystem) IsVisible() bool {
	return ps.Len() > 0
}

// Reset drops every particle
func (ps *ParticleSystem) Reset() {
	ps.mu.Lock()
	ps.particles = ps.particles[:0]
	ps.mu.Unlock()
}

// Render implements SystemRenderer; glyph and brightness fade with size and life
func (ps *ParticleSystem) Render(ctx RenderContext, c *Canvas) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	for _, p := range ps.particles {
		x, y := ctx.PixelOrigin(p.X, p.Y)
		if !ctx.InBoard(x, y) {
			continue
		}
		glyph := '·'
		if p.Size > 0.6 {
			glyph = '•'
		}
		c.Set(x, y, glyph, c.Style(parameter.ColorBackground.Blend(p.Color, p.Life), parameter.ColorBackground))
	}
}
