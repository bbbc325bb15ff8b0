package engine

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/entity"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// SnakeView is a read-only copy of one snake
type SnakeView struct {
	ID        int          `json:"id" msgpack:"id"`
	Kind      string       `json:"kind" msgpack:"kind"`
	Body      []core.Point `json:"body" msgpack:"body"`
	Direction string       `json:"direction" msgpack:"direction"`
	HeadColor core.RGB     `json:"head_color" msgpack:"head_color"`
	BodyColor core.RGB     `json:"body_color" msgpack:"body_color"`
}

// ResourceView is a read-only copy of one resource
type ResourceView struct {
	Cell  core.Point `json:"cell" msgpack:"cell"`
	Color core.RGB   `json:"color" msgpack:"color"`
	Phase float64    `json:"phase" msgpack:"phase"`
}

// ProjectileView is a read-only copy of one projectile in pixel space
type ProjectileView struct {
	X     float64  `json:"x" msgpack:"x"`
	Y     float64  `json:"y" msgpack:"y"`
	Owner string   `json:"owner" msgpack:"owner"`
	Color core.RGB `json:"color" msgpack:"color"`
}

// Snapshot is an immutable deep copy of the round for renderers
type Snapshot struct {
	RoundID     string           `json:"round_id" msgpack:"round_id"`
	Tick        uint64           `json:"tick" msgpack:"tick"`
	Phase       Phase            `json:"-" msgpack:"-"`
	State       string           `json:"state" msgpack:"state"`
	Cols        int              `json:"cols" msgpack:"cols"`
	Rows        int              `json:"rows" msgpack:"rows"`
	CellSize    int              `json:"cell_size" msgpack:"cell_size"`
	WinLength   int              `json:"win_length" msgpack:"win_length"`
	ShootReady  bool             `json:"shoot_ready" msgpack:"shoot_ready"`
	Player      SnakeView        `json:"player" msgpack:"player"`
	Opponents   []SnakeView      `json:"opponents" msgpack:"opponents"`
	Resources   []ResourceView   `json:"resources" msgpack:"resources"`
	Projectiles []ProjectileView `json:"projectiles" msgpack:"projectiles"`
}

// Snapshot copies the current state; the result shares no memory with the round
func (r *Round) Snapshot() Snapshot {
	s := Snapshot{
		Tick:       r.tick,
		Phase:      r.phase,
		State:      r.phase.String(),
		Cols:       r.rules.Cols,
		Rows:       r.rules.Rows,
		CellSize:   r.rules.CellSize,
		WinLength:  r.rules.WinLength,
		ShootReady: !r.player.Dead && r.player.CanShoot(),
		Player: SnakeView{
			Kind:      "player",
			Body:      r.player.CloneBody(),
			Direction: r.player.LastDirection.String(),
			HeadColor: parameter.ColorPlayerHead,
			BodyColor: parameter.ColorPlayerBody,
		},
		Opponents:   make([]SnakeView, 0, len(r.opponents)),
		Resources:   make([]ResourceView, 0, len(r.resources)),
		Projectiles: make([]ProjectileView, 0, r.projectiles.Len()),
	}
	if r.ID != uuid.Nil {
		s.RoundID = r.ID.String()
	}

	for _, o := range r.opponents {
		head := parameter.ColorResourceOpponent
		if o.Archetype == entity.ArchetypeAggressive {
			head = parameter.ColorAggressive
		}
		s.Opponents = append(s.Opponents, SnakeView{
			ID:        o.ID,
			Kind:      o.Archetype.String(),
			Body:      o.CloneBody(),
			Direction: o.Direction.String(),
			HeadColor: head,
			BodyColor: parameter.ColorOpponentBody,
		})
	}
	for _, res := range r.resources {
		s.Resources = append(s.Resources, ResourceView{Cell: res.Cell, Color: res.Color(), Phase: res.Phase})
	}
	for _, p := range r.projectiles.All() {
		color := parameter.ColorPlayerShot
		if p.Owner == entity.OwnerOpponent {
			color = parameter.ColorOpponentShot
		}
		s.Projectiles = append(s.Projectiles, ProjectileView{X: p.X, Y: p.Y, Owner: p.Owner.String(), Color: color})
	}
	return s
}
