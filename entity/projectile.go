package entity

import (
	"math"

	"github.com/lixenwraith/shooter-snake/core"
)

// Projectile travels in pixel space and collides by grid cell
type Projectile struct {
	X, Y      float64
	Direction core.Direction
	Owner     Owner
	Speed     float64
	Dead      bool
}

// NewProjectile places a projectile at the pixel center of cell
func NewProjectile(cell core.Point, dir core.Direction, owner Owner, cellSize int, speed float64) Projectile {
	half := float64(cellSize) / 2
	return Projectile{
		X:         float64(cell.X*cellSize) + half,
		Y:         float64(cell.Y*cellSize) + half,
		Direction: dir,
		Owner:     owner,
		Speed:     speed,
	}
}

// Advance moves one tick and marks the projectile dead once it leaves [0,width]x[0,height]
func (p *Projectile) Advance(width, height float64) {
	if p.Dead {
		return
	}
	p.X += float64(p.Direction.X) * p.Speed
	p.Y += float64(p.Direction.Y) * p.Speed
	if p.X < 0 || p.X > width || p.Y < 0 || p.Y > height {
		p.Dead = true
	}
}

// Cell floor-divides the pixel position into a grid cell
func (p Projectile) Cell(cellSize int) core.Point {
	cs := float64(cellSize)
	return core.Point{
		X: int(math.Floor(p.X / cs)),
		Y: int(math.Floor(p.Y / cs)),
	}
}
