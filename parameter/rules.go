package parameter

import "time"

// Rules bundles the simulation constants handed to the engine
// Production code only ever uses DefaultRules; tests shrink the world or timers
type Rules struct {
	Cols, Rows int
	CellSize   int

	MoveInterval time.Duration
	WinLength    int
	MinResources int

	PlayerStart       [2]int
	PlayerStartLength int

	ProjectileSpeed float64
	ShootCooldown   time.Duration
	ShotCost        int

	OpponentSpawnInterval time.Duration
	MaxOpponents          int
	OpponentStartLength   int
	OpponentShootRange    int
	OpponentDropJitter    int
}

// DefaultRules returns the fixed game constants
func DefaultRules() Rules {
	return Rules{
		Cols:                  GridCols,
		Rows:                  GridRows,
		CellSize:              CellSize,
		MoveInterval:          MoveInterval,
		WinLength:             WinLength,
		MinResources:          MinResources,
		PlayerStart:           [2]int{PlayerStartX, PlayerStartY},
		PlayerStartLength:     PlayerStartLength,
		ProjectileSpeed:       ProjectileSpeed,
		ShootCooldown:         ShootCooldown,
		ShotCost:              ShotCost,
		OpponentSpawnInterval: OpponentSpawnInterval,
		MaxOpponents:          MaxOpponents,
		OpponentStartLength:   OpponentStartLength,
		OpponentShootRange:    OpponentShootRange,
		OpponentDropJitter:    OpponentDropJitter,
	}
}

// PixelWidth is the world width in projectile space
func (r Rules) PixelWidth() float64 { return float64(r.Cols * r.CellSize) }

// PixelHeight is the world height in projectile space
func (r Rules) PixelHeight() float64 { return float64(r.Rows * r.CellSize) }

// ResourcePace is the movement interval of a resource-seeking opponent
func (r Rules) ResourcePace() time.Duration {
	return r.MoveInterval * ResourcePaceNum / ResourcePaceDen
}

// AggressivePace is the movement interval of an aggressive opponent
func (r Rules) AggressivePace() time.Duration {
	return r.MoveInterval * AggressivePaceNum / AggressivePaceDen
}
