package parameter

import "time"

// Projectiles
const (
	// ProjectileSpeed is pixels travelled per tick
	ProjectileSpeed = 1.0

	// ShootCooldown is the player's base shot cooldown; opponents use twice this
	ShootCooldown = 500 * time.Millisecond

	// ShotCost is body cells consumed per shot
	ShotCost = 1
)

// Opponents
const (
	OpponentSpawnInterval = 7 * time.Second
	MaxOpponents          = 5
	OpponentStartLength   = 5

	// OpponentShootRange is the max row/column distance at which an aggressive opponent fires
	OpponentShootRange = 15

	// OpponentDropJitter is the max cell offset of death drops from the last head
	OpponentDropJitter = 2
)

// Archetype pacing as a fraction of MoveInterval: resource 3/2, aggressive 6/5
const (
	ResourcePaceNum   = 3
	ResourcePaceDen   = 2
	AggressivePaceNum = 6
	AggressivePaceDen = 5
)
