package engine

import (
	"log"

	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/entity"
	"github.com/lixenwraith/shooter-snake/event"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// resolveCollisions runs once per tick after all movement, in fixed order:
//  1. player head consumes resources, then opponent heads forage the rest
//  2. player head on any opponent body ends the round
//  3. opponent head on the player body kills that opponent
//  4. projectiles: opponent shots on the player end the round, player shots
//     kill the first opponent they overlap
//
// Steps 2 and 4 stop resolution for the tick when the player dies.
func (r *Round) resolveCollisions() {
	r.consumeResources()

	head := r.player.Head()
	for _, o := range r.opponents {
		if core.Occupies(head, o.Body) {
			r.killPlayer()
			return
		}
	}

	for _, o := range r.opponents {
		if core.Occupies(o.Head(), r.player.Body) {
			r.killOpponent(o)
		}
	}

	cellSize := r.projectiles.CellSize()
	for i := 0; i < r.projectiles.Len(); i++ {
		p := r.projectiles.At(i)
		if p.Dead {
			continue
		}
		cell := p.Cell(cellSize)

		if p.Owner == entity.OwnerOpponent {
			if core.Occupies(cell, r.player.Body) {
				p.Dead = true
				r.killPlayer()
				return
			}
			continue
		}

		// Opponents killed earlier this tick are still targets until the purge
		for _, o := range r.opponents {
			if core.Occupies(cell, o.Body) {
				r.killOpponent(o)
				p.Dead = true
				break
			}
		}
	}
}

// consumeResources removes every resource under a snake head
// The player is checked first so it wins a resource shared with an opponent head
func (r *Round) consumeResources() {
	head := r.player.Head()
	live := r.resources[:0]
	for _, res := range r.resources {
		if res.Cell == head {
			r.player.Grow()
			r.stats.eaten.Add(1)
			r.emit(event.EventEat)
			r.burstAt(res.Cell, res.Color(), parameter.ParticleCount)
			continue
		}
		live = append(live, res)
	}
	r.resources = live

	if len(r.opponents) == 0 || len(r.resources) == 0 {
		return
	}
	live = r.resources[:0]
	for _, res := range r.resources {
		if o := r.opponentHeadAt(res.Cell); o != nil {
			o.Grow()
			continue
		}
		live = append(live, res)
	}
	r.resources = live
}

func (r *Round) opponentHeadAt(cell core.Point) *entity.Opponent {
	for _, o := range r.opponents {
		if !o.Dead && o.Head() == cell {
			return o
		}
	}
	return nil
}

// killOpponent applies the death protocol once per opponent
// floor(len/2) resources drop around the last head
func (r *Round) killOpponent(o *entity.Opponent) {
	if o.Dead {
		return
	}
	o.Dead = true

	drops := r.resourceSpawner.DropNear(o.Head(), len(o.Body)/2)
	r.resources = append(r.resources, drops...)

	r.stats.kills.Add(1)
	r.emit(event.EventOpponentDied)
	r.burstAt(o.Head(), parameter.ColorOpponentBody, parameter.OpponentDeathParticles)
}

// killPlayer ends the round; every segment bursts
func (r *Round) killPlayer() {
	r.player.Dead = true
	r.setPhase(PhaseOver)
	log.Printf("[engine] round %s over at length %d", r.ID, r.player.Len())
	r.emit(event.EventPlayerDied)

	for i, cell := range r.player.Body {
		color := parameter.ColorPlayerBody
		if i == 0 {
			color = parameter.ColorPlayerHead
		}
		r.burstAt(cell, color, parameter.PlayerSegmentParticles)
	}
	r.publishGauges()
}

func (r *Round) burstAt(cell core.Point, color core.RGB, count int) {
	cs := float64(r.rules.CellSize)
	r.router.Burst(event.Burst{
		X:     float64(cell.X)*cs + cs/2,
		Y:     float64(cell.Y)*cs + cs/2,
		Color: color,
		Count: count,
	})
}
