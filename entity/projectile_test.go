package entity

import (
	"testing"

	"github.com/lixenwraith/shooter-snake/core"
)

func TestNewProjectile_CellCenter(t *testing.T) {
	p := NewProjectile(core.Point{X: 3, Y: 4}, core.DirRight, OwnerPlayer, 20, 1)
	if p.X != 70 || p.Y != 90 {
		t.Errorf("Expected (70,90), got (%v,%v)", p.X, p.Y)
	}
	if p.Cell(20) != (core.Point{X: 3, Y: 4}) {
		t.Errorf("Expected cell (3,4), got %v", p.Cell(20))
	}
}

func TestProjectileAdvance_CrossesCells(t *testing.T) {
	p := NewProjectile(core.Point{X: 3, Y: 4}, core.DirRight, OwnerPlayer, 20, 1)
	for i := 0; i < 10; i++ {
		p.Advance(800, 600)
	}
	if p.Cell(20) != (core.Point{X: 4, Y: 4}) {
		t.Errorf("Expected cell (4,4) after 10px, got %v", p.Cell(20))
	}
}

func TestProjectileAdvance_DiesOutOfBounds(t *testing.T) {
	p := NewProjectile(core.Point{X: 0, Y: 0}, core.DirUp, OwnerOpponent, 20, 1)
	for i := 0; i < 10; i++ {
		p.Advance(800, 600)
	}
	if p.Dead {
		t.Fatal("Expected projectile alive on the boundary")
	}
	p.Advance(800, 600)
	if !p.Dead {
		t.Error("Expected projectile dead past the top edge")
	}
}

func TestProjectileCell_Floors(t *testing.T) {
	p := Projectile{X: -0.5, Y: 19.99}
	if got := p.Cell(20); got != (core.Point{X: -1, Y: 0}) {
		t.Errorf("Expected (-1,0), got %v", got)
	}
}
