// Package system holds the collection-level managers the round drives each
// tick: projectiles, resource placement and opponent spawning.
package system

import (
	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/entity"
)

// ProjectileRegistry owns the live projectile set
type ProjectileRegistry struct {
	items    []entity.Projectile
	cellSize int
	speed    float64
	width    float64
	height   float64
}

// NewProjectileRegistry creates a registry for a world of the given pixel size
func NewProjectileRegistry(cellSize int, speed, width, height float64) *ProjectileRegistry {
	return &ProjectileRegistry{
		items:    make([]entity.Projectile, 0, 32),
		cellSize: cellSize,
		speed:    speed,
		width:    width,
		height:   height,
	}
}

func (r *ProjectileRegistry) Name() string { return "projectile" }

// Spawn appends a projectile at the pixel center of cell
func (r *ProjectileRegistry) Spawn(cell core.Point, dir core.Direction, owner entity.Owner) {
	r.items = append(r.items, entity.NewProjectile(cell, dir, owner, r.cellSize, r.speed))
}

// SpawnRequest is Spawn for a shot returned by an entity
func (r *ProjectileRegistry) SpawnRequest(req entity.ShotRequest) {
	r.Spawn(req.Cell, req.Direction, req.Owner)
}

// Advance moves every projectile one tick, then drops the ones that left the world
func (r *ProjectileRegistry) Advance() {
	for i := range r.items {
		r.items[i].Advance(r.width, r.height)
	}
	r.Compact()
}

// Compact removes dead projectiles in place, preserving the order of survivors
func (r *ProjectileRegistry) Compact() {
	live := r.items[:0]
	for _, p := range r.items {
		if !p.Dead {
			live = append(live, p)
		}
	}
	// Zero the abandoned tail so the backing array holds no stale entries
	for i := len(live); i < len(r.items); i++ {
		r.items[i] = entity.Projectile{}
	}
	r.items = live
}

// At returns a pointer to the i-th projectile for in-tick mutation
func (r *ProjectileRegistry) At(i int) *entity.Projectile {
	return &r.items[i]
}

// All returns a copy of the live set
func (r *ProjectileRegistry) All() []entity.Projectile {
	out := make([]entity.Projectile, len(r.items))
	copy(out, r.items)
	return out
}

// Len returns the number of tracked projectiles, including ones killed this tick
func (r *ProjectileRegistry) Len() int {
	return len(r.items)
}

// CellSize returns the pixel size used for cell conversion
func (r *ProjectileRegistry) CellSize() int {
	return r.cellSize
}

// Reset drops every projectile
func (r *ProjectileRegistry) Reset() {
	clear(r.items)
	r.items = r.items[:0]
}
