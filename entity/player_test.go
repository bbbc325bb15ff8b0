package entity

import (
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/parameter"
)

func newTestPlayer() *Player {
	p := NewPlayer(parameter.DefaultRules())
	p.Reset()
	return p
}

func TestNewPlayer_HoldsStillWithoutInput(t *testing.T) {
	rules := parameter.DefaultRules()
	p := NewPlayer(rules)

	if !p.LastDirection.IsZero() {
		t.Fatalf("Expected zero direction before first input, got %v", p.LastDirection)
	}
	before := p.CloneBody()
	if p.Advance(rules.MoveInterval, core.DirNone, rules.Cols, rules.Rows) {
		t.Error("Expected no step without any direction")
	}
	if !reflect.DeepEqual(before, p.Body) {
		t.Errorf("Expected body unchanged, got %v", p.Body)
	}
}

func TestPlayerReset_StartLayout(t *testing.T) {
	p := newTestPlayer()
	want := []core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	if !reflect.DeepEqual(p.Body, want) {
		t.Errorf("Expected %v, got %v", want, p.Body)
	}
	if p.LastDirection != core.DirRight {
		t.Errorf("Expected right after reset, got %v", p.LastDirection)
	}
}

func TestPlayerAdvance_WaitsForInterval(t *testing.T) {
	rules := parameter.DefaultRules()
	p := newTestPlayer()

	if p.Advance(rules.MoveInterval-time.Millisecond, core.DirNone, rules.Cols, rules.Rows) {
		t.Fatal("Expected no step before the interval elapsed")
	}
	if !p.Advance(time.Millisecond, core.DirNone, rules.Cols, rules.Rows) {
		t.Fatal("Expected a step once the interval accumulated")
	}
	if p.Head() != (core.Point{X: 11, Y: 10}) {
		t.Errorf("Expected head (11,10), got %v", p.Head())
	}
	if p.Len() != 3 {
		t.Errorf("Expected length 3, got %d", p.Len())
	}
}

func TestPlayerAdvance_RequestedDirectionCommits(t *testing.T) {
	rules := parameter.DefaultRules()
	p := newTestPlayer()

	p.Advance(rules.MoveInterval, core.DirDown, rules.Cols, rules.Rows)
	if p.Head() != (core.Point{X: 10, Y: 11}) {
		t.Errorf("Expected head (10,11), got %v", p.Head())
	}
	if p.LastDirection != core.DirDown {
		t.Errorf("Expected committed direction down, got %v", p.LastDirection)
	}

	// No request reuses the committed direction
	p.Advance(rules.MoveInterval, core.DirNone, rules.Cols, rules.Rows)
	if p.Head() != (core.Point{X: 10, Y: 12}) {
		t.Errorf("Expected head (10,12), got %v", p.Head())
	}
}

func TestPlayerGrow_AddsExactlyOneCell(t *testing.T) {
	rules := parameter.DefaultRules()
	p := newTestPlayer()
	tail := p.Body[len(p.Body)-1]

	p.Grow()
	p.Advance(rules.MoveInterval, core.DirNone, rules.Cols, rules.Rows)

	if p.Len() != 4 {
		t.Fatalf("Expected length 4, got %d", p.Len())
	}
	if p.Body[len(p.Body)-1] != tail {
		t.Errorf("Expected tail %v kept, got %v", tail, p.Body[len(p.Body)-1])
	}
	if p.GrowPending != 0 {
		t.Errorf("Expected growPending consumed, got %d", p.GrowPending)
	}

	p.Advance(rules.MoveInterval, core.DirNone, rules.Cols, rules.Rows)
	if p.Len() != 4 {
		t.Errorf("Expected length to stay 4, got %d", p.Len())
	}
}

func TestPlayerAdvance_LeftEdgeKills(t *testing.T) {
	rules := parameter.DefaultRules()
	p := newTestPlayer()
	p.Body = []core.Point{{X: 0, Y: 10}, {X: 1, Y: 10}, {X: 2, Y: 10}}

	if p.Advance(rules.MoveInterval, core.DirLeft, rules.Cols, rules.Rows) {
		t.Error("Expected fatal step to report no move")
	}
	if !p.Dead {
		t.Error("Expected player dead after leaving the grid")
	}
	if p.Head() != (core.Point{X: 0, Y: 10}) {
		t.Errorf("Expected body untouched by the aborted step, got head %v", p.Head())
	}
}

func TestPlayerAdvance_SelfCollision(t *testing.T) {
	rules := parameter.DefaultRules()
	p := newTestPlayer()
	// Hook shape: moving down from (5,5) hits (5,6)
	p.Body = []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}}
	p.LastDirection = core.DirLeft

	p.Advance(rules.MoveInterval, core.DirDown, rules.Cols, rules.Rows)
	if !p.Dead {
		t.Error("Expected death on self collision")
	}
}

func TestPlayerAdvance_TailCellIsFree(t *testing.T) {
	rules := parameter.DefaultRules()
	p := newTestPlayer()
	// 2x2 loop: head chases its own tail
	p.Body = []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	p.LastDirection = core.DirLeft

	if !p.Advance(rules.MoveInterval, core.DirDown, rules.Cols, rules.Rows) {
		t.Fatal("Expected the step into the vacating tail to succeed")
	}
	if p.Dead {
		t.Error("Expected player alive")
	}
}

func TestPlayerShoot(t *testing.T) {
	rules := parameter.DefaultRules()
	p := newTestPlayer()

	req, ok := p.Shoot()
	if !ok {
		t.Fatal("Expected shot to fire")
	}
	if req.Cell != (core.Point{X: 10, Y: 10}) || req.Direction != core.DirRight || req.Owner != OwnerPlayer {
		t.Errorf("Unexpected request %+v", req)
	}
	if p.Len() != 2 {
		t.Errorf("Expected length 2 after paying cost, got %d", p.Len())
	}
	if p.ShootCooldown != rules.ShootCooldown {
		t.Errorf("Expected cooldown %v, got %v", rules.ShootCooldown, p.ShootCooldown)
	}
}

func TestPlayerShoot_RejectedIsNoOp(t *testing.T) {
	p := newTestPlayer()
	p.Shoot()

	// Cooldown active and length at the guard
	before := *p
	beforeBody := p.CloneBody()
	if p.CanShoot() {
		t.Fatal("Expected CanShoot false")
	}
	if _, ok := p.Shoot(); ok {
		t.Fatal("Expected shot rejected")
	}
	if !reflect.DeepEqual(beforeBody, p.Body) || before.ShootCooldown != p.ShootCooldown || before.GrowPending != p.GrowPending {
		t.Error("Expected rejected shot to leave state unchanged")
	}
}

func TestPlayerShoot_NeverBelowOne(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 10; i++ {
		p.ShootCooldown = 0
		p.Shoot()
		if p.Len() < 1 {
			t.Fatalf("Expected length >= 1, got %d", p.Len())
		}
	}
	if p.Len() != 2 {
		t.Errorf("Expected the guard to stop at length 2, got %d", p.Len())
	}
}

func TestPlayerCooldown_ClampsAtZero(t *testing.T) {
	rules := parameter.DefaultRules()
	p := newTestPlayer()
	p.ShootCooldown = 10 * time.Millisecond

	p.Advance(time.Second, core.DirNone, rules.Cols, rules.Rows)
	if p.ShootCooldown != 0 {
		t.Errorf("Expected cooldown clamped to 0, got %v", p.ShootCooldown)
	}
}
