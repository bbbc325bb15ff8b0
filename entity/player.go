package entity

import (
	"time"

	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// Player is the user-controlled snake
type Player struct {
	Body          []core.Point
	LastDirection core.Direction
	GrowPending   int
	ShootCooldown time.Duration
	Dead          bool

	moveTimer    time.Duration
	moveInterval time.Duration
	cooldownBase time.Duration
	shotCost     int
	start        core.Point
	startLength  int
}

// NewPlayer creates a player laid out leftward from the start cell
// LastDirection stays zero so the snake holds still until the first input
func NewPlayer(rules parameter.Rules) *Player {
	p := &Player{
		moveInterval: rules.MoveInterval,
		cooldownBase: rules.ShootCooldown,
		shotCost:     rules.ShotCost,
		start:        core.Point{X: rules.PlayerStart[0], Y: rules.PlayerStart[1]},
		startLength:  max(1, rules.PlayerStartLength),
	}
	p.layout()
	return p
}

func (p *Player) layout() {
	p.Body = p.Body[:0]
	for i := 0; i < p.startLength; i++ {
		p.Body = append(p.Body, core.Point{X: p.start.X - i, Y: p.start.Y})
	}
	p.GrowPending = 0
	p.ShootCooldown = 0
	p.Dead = false
	p.moveTimer = 0
}

// Reset restores the starting body facing right
func (p *Player) Reset() {
	p.layout()
	p.LastDirection = core.DirRight
}

// Head returns the leading cell
func (p *Player) Head() core.Point {
	return p.Body[0]
}

// Len returns the body length
func (p *Player) Len() int {
	return len(p.Body)
}

// Advance runs the cooldown and move timer, stepping once per move interval
// Returns true when a step was taken; a fatal step sets Dead and returns false
func (p *Player) Advance(elapsed time.Duration, requested core.Direction, cols, rows int) bool {
	if p.Dead {
		return false
	}

	p.ShootCooldown = max(0, p.ShootCooldown-elapsed)

	p.moveTimer += elapsed
	if p.moveTimer < p.moveInterval {
		return false
	}
	p.moveTimer = 0

	dir := p.LastDirection
	if !requested.IsZero() {
		dir = requested
	}
	if dir.IsZero() {
		return false
	}
	p.LastDirection = dir

	next := p.Head().Add(dir)
	// Tail cell vacates this step, so it is not an obstacle
	if !core.InBounds(next, cols, rows) || core.Occupies(next, p.Body[:len(p.Body)-1]) {
		p.Dead = true
		return false
	}

	grow := p.GrowPending > 0
	if grow {
		p.GrowPending--
	}
	p.Body = shiftBody(p.Body, next, grow)
	return true
}

// Grow schedules one cell of growth on the next successful step
func (p *Player) Grow() {
	p.GrowPending++
}

// CanShoot reports whether the cooldown elapsed and the body can pay the shot cost
func (p *Player) CanShoot() bool {
	return p.ShootCooldown <= 0 && len(p.Body) > p.shotCost+1
}

// Shoot pays the shot cost and returns a spawn request at the head
// Rejected shots leave the player untouched
func (p *Player) Shoot() (ShotRequest, bool) {
	if p.Dead || !p.CanShoot() || p.LastDirection.IsZero() {
		return ShotRequest{}, false
	}
	p.ShootCooldown = p.cooldownBase
	p.Body = trimTail(p.Body, p.shotCost)
	return ShotRequest{Cell: p.Head(), Direction: p.LastDirection, Owner: OwnerPlayer}, true
}

// CloneBody returns a copy of the body safe to hand out
func (p *Player) CloneBody() []core.Point {
	return cloneBody(p.Body)
}
