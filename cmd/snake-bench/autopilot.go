package main

import (
	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/engine"
	"github.com/lixenwraith/shooter-snake/entity"
)

// autopilot steers greedily toward the nearest resource and fires at
// opponents lined up ahead while it can spare the length
type autopilot struct {
	minShootLength int
}

// decide returns the heading to request and whether to fire
func (a autopilot) decide(snap engine.Snapshot, heading core.Direction) (core.Direction, bool) {
	head := snap.Player.Body[0]
	blocked := make(map[core.Point]struct{}, len(snap.Player.Body)+8*len(snap.Opponents))
	for _, p := range snap.Player.Body {
		blocked[p] = struct{}{}
	}
	for _, o := range snap.Opponents {
		for _, p := range o.Body {
			blocked[p] = struct{}{}
		}
	}

	cells := make([]core.Point, len(snap.Resources))
	for i, r := range snap.Resources {
		cells[i] = r.Cell
	}
	target, hasTarget := entity.NearestResource(head, cells)

	best := heading
	bestScore := -1
	for _, d := range core.Cardinals {
		if d.IsReverseOf(heading) {
			continue
		}
		next := head.Add(d)
		if !core.InBounds(next, snap.Cols, snap.Rows) {
			continue
		}
		if _, hit := blocked[next]; hit {
			continue
		}
		score := snap.Cols + snap.Rows
		if hasTarget {
			score -= next.Manhattan(target)
		}
		if d == heading {
			score++ // prefer going straight on ties
		}
		if score > bestScore {
			best, bestScore = d, score
		}
	}

	fire := snap.ShootReady && len(snap.Player.Body) >= a.minShootLength && a.inLine(snap, head, heading)
	return best, fire
}

// inLine reports whether an opponent body lies on the ray from head along dir
func (a autopilot) inLine(snap engine.Snapshot, head core.Point, dir core.Direction) bool {
	if dir.IsZero() {
		return false
	}
	for _, o := range snap.Opponents {
		for _, p := range o.Body {
			dx, dy := p.X-head.X, p.Y-head.Y
			switch {
			case dir.X != 0 && dy == 0 && dx*dir.X > 0:
				return true
			case dir.Y != 0 && dx == 0 && dy*dir.Y > 0:
				return true
			}
		}
	}
	return false
}
