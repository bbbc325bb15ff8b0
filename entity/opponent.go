package entity

import (
	"sort"
	"time"

	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// Archetype fixes an opponent's targeting behavior at creation
type Archetype uint8

const (
	// ArchetypeResource seeks the nearest resource and never shoots
	ArchetypeResource Archetype = iota
	// ArchetypeAggressive hunts the player head and fires along its facing
	ArchetypeAggressive
)

func (a Archetype) String() string {
	if a == ArchetypeAggressive {
		return "aggressive"
	}
	return "resource"
}

// Surroundings is the read-only view an opponent decides from
type Surroundings struct {
	Cols, Rows int
	PlayerBody []core.Point
	Resources  []core.Point
}

// Opponent is an autonomous snake
type Opponent struct {
	ID            int
	Archetype     Archetype
	Body          []core.Point
	Direction     core.Direction
	Interval      time.Duration
	ShootCooldown time.Duration
	ShootRange    int
	GrowPending   int
	Dead          bool

	moveTimer    time.Duration
	cooldownBase time.Duration
	shotCost     int
}

// NewOpponent creates an opponent with its whole body stacked on one cell, facing right
func NewOpponent(id int, arch Archetype, at core.Point, rules parameter.Rules) *Opponent {
	o := &Opponent{
		ID:           id,
		Archetype:    arch,
		Body:         make([]core.Point, max(1, rules.OpponentStartLength)),
		Direction:    core.DirRight,
		Interval:     rules.ResourcePace(),
		ShootRange:   rules.OpponentShootRange,
		cooldownBase: rules.ShootCooldown,
		shotCost:     rules.ShotCost,
	}
	if arch == ArchetypeAggressive {
		o.Interval = rules.AggressivePace()
	}
	for i := range o.Body {
		o.Body[i] = at
	}
	return o
}

// Head returns the leading cell
func (o *Opponent) Head() core.Point {
	return o.Body[0]
}

// Grow schedules one cell of growth on the next step
func (o *Opponent) Grow() {
	o.GrowPending++
}

// Advance ticks timers and, once per interval, decides and takes a step
// Leaving the grid kills the opponent immediately; other collisions are resolved by the round
func (o *Opponent) Advance(elapsed time.Duration, s Surroundings, rng Rand) bool {
	if o.Dead {
		return false
	}

	o.ShootCooldown = max(0, o.ShootCooldown-elapsed)

	o.moveTimer += elapsed
	if o.moveTimer < o.Interval {
		return false
	}
	o.moveTimer = 0

	dir, ok := o.Decide(s, rng)
	if !ok {
		return false
	}
	o.Direction = dir

	next := o.Head().Add(dir)
	if !core.InBounds(next, s.Cols, s.Rows) {
		o.Dead = true
		return false
	}

	grow := o.GrowPending > 0
	if grow {
		o.GrowPending--
	}
	o.Body = shiftBody(o.Body, next, grow)
	return true
}

// Decide picks the next direction greedily by Manhattan distance to the target
// Returns false when no candidate is safe
func (o *Opponent) Decide(s Surroundings, rng Rand) (core.Direction, bool) {
	head := o.Head()

	safe := make([]core.Direction, 0, len(core.Cardinals))
	for _, d := range core.Cardinals {
		if d.IsReverseOf(o.Direction) {
			continue
		}
		next := head.Add(d)
		if !core.InBounds(next, s.Cols, s.Rows) ||
			core.Occupies(next, o.Body) ||
			core.Occupies(next, s.PlayerBody) {
			continue
		}
		safe = append(safe, d)
	}
	if len(safe) == 0 {
		return core.DirNone, false
	}

	target, ok := o.target(s)
	if !ok {
		return safe[rng.Intn(len(safe))], true
	}

	sort.SliceStable(safe, func(i, j int) bool {
		return head.Add(safe[i]).Manhattan(target) < head.Add(safe[j]).Manhattan(target)
	})
	return safe[0], true
}

func (o *Opponent) target(s Surroundings) (core.Point, bool) {
	if o.Archetype == ArchetypeAggressive && len(s.PlayerBody) > 0 {
		return s.PlayerBody[0], true
	}
	return NearestResource(o.Head(), s.Resources)
}

// NearestResource returns the Manhattan-closest cell; the first one wins ties
func NearestResource(from core.Point, resources []core.Point) (core.Point, bool) {
	if len(resources) == 0 {
		return core.Point{}, false
	}
	best := resources[0]
	bestDist := from.Manhattan(best)
	for _, r := range resources[1:] {
		if d := from.Manhattan(r); d < bestDist {
			best, bestDist = r, d
		}
	}
	return best, true
}

// TryShoot fires along the facing when the player head is in line and in range
// Only aggressive opponents shoot; a declined shot changes nothing
func (o *Opponent) TryShoot(playerBody []core.Point) (ShotRequest, bool) {
	if o.Dead || o.Archetype != ArchetypeAggressive || len(playerBody) == 0 {
		return ShotRequest{}, false
	}
	if o.ShootCooldown > 0 || len(o.Body) <= o.shotCost+1 {
		return ShotRequest{}, false
	}

	head, target := o.Head(), playerBody[0]
	var facing core.Direction
	switch {
	case head.Y == target.Y && head.X != target.X:
		if abs(target.X-head.X) > o.ShootRange {
			return ShotRequest{}, false
		}
		facing = core.Direction{X: sign(target.X - head.X)}
	case head.X == target.X && head.Y != target.Y:
		if abs(target.Y-head.Y) > o.ShootRange {
			return ShotRequest{}, false
		}
		facing = core.Direction{Y: sign(target.Y - head.Y)}
	default:
		return ShotRequest{}, false
	}
	if o.Direction != facing {
		return ShotRequest{}, false
	}

	o.ShootCooldown = 2 * o.cooldownBase
	o.Body = trimTail(o.Body, o.shotCost)
	return ShotRequest{Cell: o.Head(), Direction: o.Direction, Owner: OwnerOpponent}, true
}

// CloneBody returns a copy of the body safe to hand out
func (o *Opponent) CloneBody() []core.Point {
	return cloneBody(o.Body)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
