package parameter

import "time"

// Screen shake
const (
	// ShakeIntensity is the peak offset in pixels
	ShakeIntensity = 10
	ShakeDuration  = 300 * time.Millisecond
)

// Particle bursts
const (
	ParticleCount          = 15
	OpponentDeathParticles = 20
	PlayerSegmentParticles = 5

	ParticleMinDecay = 0.01
	ParticleMaxDecay = 0.04
	ParticleShrink   = 0.95
	ParticleMaxSpeed = 4.0 // pixels per frame

	// MaxParticles caps the live pool
	MaxParticles = 2048
)
