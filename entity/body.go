// Package entity holds the snake, projectile and resource models that the
// round engine moves and collides each tick.
package entity

import "github.com/lixenwraith/shooter-snake/core"

// Rand is the subset of a seeded generator entities draw from
type Rand interface {
	Intn(n int) int
}

// Owner tags who fired a projectile
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerOpponent
)

func (o Owner) String() string {
	if o == OwnerPlayer {
		return "player"
	}
	return "opponent"
}

// ShotRequest asks the projectile registry to spawn at a cell
type ShotRequest struct {
	Cell      core.Point
	Direction core.Direction
	Owner     Owner
}

// shiftBody prepends head in place; the tail is dropped unless keepTail
func shiftBody(body []core.Point, head core.Point, keepTail bool) []core.Point {
	body = append(body, core.Point{})
	copy(body[1:], body[:len(body)-1])
	body[0] = head
	if !keepTail {
		body = body[:len(body)-1]
	}
	return body
}

// trimTail removes n cells from the tail end, never below one cell
func trimTail(body []core.Point, n int) []core.Point {
	keep := len(body) - n
	if keep < 1 {
		keep = 1
	}
	return body[:keep]
}

// cloneBody returns an independent copy for snapshots
func cloneBody(body []core.Point) []core.Point {
	out := make([]core.Point, len(body))
	copy(out, body)
	return out
}
