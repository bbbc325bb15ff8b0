package parameter

import "time"

// Movement timing
const (
	// MoveInterval is the player step period
	MoveInterval = 150 * time.Millisecond

	// TickInterval drives the simulation, one tick per display frame
	TickInterval = 16 * time.Millisecond

	// MaxTickElapsed caps a single tick's elapsed time so a stalled frame cannot burst-step entities
	MaxTickElapsed = 100 * time.Millisecond
)

// Round rules
const (
	// WinLength is the player body length that ends the round in victory
	WinLength = 50

	// MinResources is the floor replenished one resource per tick
	MinResources = 3

	// ResourcePlacementTries bounds random placement before the deterministic scan
	ResourcePlacementTries = 64

	// ResourceHueMin and ResourceHueSpan pick a warm hue for each resource
	ResourceHueMin  = 30.0
	ResourceHueSpan = 60.0
)
