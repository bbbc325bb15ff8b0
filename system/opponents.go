package system

import (
	"time"

	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/entity"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// OpponentSpawner periodically introduces opponents up to the cap
type OpponentSpawner struct {
	rules  parameter.Rules
	rng    entity.Rand
	timer  time.Duration
	nextID int
}

// NewOpponentSpawner creates a spawner with an empty timer
func NewOpponentSpawner(rules parameter.Rules, rng entity.Rand) *OpponentSpawner {
	return &OpponentSpawner{rules: rules, rng: rng, nextID: 1}
}

func (s *OpponentSpawner) Name() string { return "opponent" }

// Update accumulates elapsed time and returns a new opponent when one is due
// A due spawn landing on the player body is skipped and the timer still resets
func (s *OpponentSpawner) Update(elapsed time.Duration, live int, playerBody []core.Point) (*entity.Opponent, bool) {
	s.timer += elapsed
	if s.timer < s.rules.OpponentSpawnInterval {
		return nil, false
	}
	s.timer = 0

	if live >= s.rules.MaxOpponents {
		return nil, false
	}

	at := core.Point{X: s.rng.Intn(s.rules.Cols), Y: s.rng.Intn(s.rules.Rows)}
	if core.Occupies(at, playerBody) {
		return nil, false
	}

	arch := entity.ArchetypeResource
	if s.rng.Intn(2) == 1 {
		arch = entity.ArchetypeAggressive
	}
	o := entity.NewOpponent(s.nextID, arch, at, s.rules)
	s.nextID++
	return o, true
}

// Reset clears the timer; IDs keep increasing across rounds
func (s *OpponentSpawner) Reset() {
	s.timer = 0
}
