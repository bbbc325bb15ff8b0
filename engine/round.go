// Package engine drives the simulation: the round state machine, the per-tick
// update order and central collision resolution, plus the clock and driver
// that feed it elapsed time.
package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/entity"
	"github.com/lixenwraith/shooter-snake/event"
	"github.com/lixenwraith/shooter-snake/parameter"
	"github.com/lixenwraith/shooter-snake/status"
	"github.com/lixenwraith/shooter-snake/system"
)

// Round owns every entity and is the only mutator of win and loss transitions
type Round struct {
	ID    uuid.UUID
	rules parameter.Rules
	phase Phase
	tick  uint64

	player      *entity.Player
	opponents   []*entity.Opponent
	resources   []entity.Resource
	projectiles *system.ProjectileRegistry

	resourceSpawner *system.ResourceSpawner
	opponentSpawner *system.OpponentSpawner

	rng    *rand.Rand
	router *event.Router
	stats  roundStats
}

// roundStats caches metric pointers written on the tick path
type roundStats struct {
	ticks, rounds                 *atomic.Int64
	shots, opponentShots, kills   *atomic.Int64
	eaten, spawned                *atomic.Int64
	liveOpponents, liveProjectile *atomic.Int64
	liveResources, playerLength   *atomic.Int64
	id, phase                     *status.AtomicString
}

func newRoundStats(reg *status.Registry) roundStats {
	return roundStats{
		ticks:          reg.Ints.Get(status.Ticks),
		rounds:         reg.Ints.Get(status.Rounds),
		shots:          reg.Ints.Get(status.ShotsFired),
		opponentShots:  reg.Ints.Get(status.OpponentShots),
		kills:          reg.Ints.Get(status.Kills),
		eaten:          reg.Ints.Get(status.ResourcesEaten),
		spawned:        reg.Ints.Get(status.OpponentsSpawned),
		liveOpponents:  reg.Ints.Get(status.LiveOpponents),
		liveProjectile: reg.Ints.Get(status.LiveProjectiles),
		liveResources:  reg.Ints.Get(status.LiveResources),
		playerLength:   reg.Ints.Get(status.PlayerLength),
		id:             reg.Strings.Get(status.RoundID),
		phase:          reg.Strings.Get(status.RoundPhase),
	}
}

// NewRound creates a round in the ready phase
// router and reg may be nil; a seed of zero is replaced by a time-derived one
func NewRound(rules parameter.Rules, seed uint64, router *event.Router, reg *status.Registry) *Round {
	if router == nil {
		router = event.NewRouter()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	r := &Round{
		rules:           rules,
		phase:           PhaseReady,
		player:          entity.NewPlayer(rules),
		projectiles:     system.NewProjectileRegistry(rules.CellSize, rules.ProjectileSpeed, rules.PixelWidth(), rules.PixelHeight()),
		resourceSpawner: system.NewResourceSpawner(rules, rng),
		opponentSpawner: system.NewOpponentSpawner(rules, rng),
		rng:             rng,
		router:          router,
		stats:           newRoundStats(reg),
	}
	r.stats.phase.Store(r.phase.String())
	return r
}

// Phase returns the current state machine position
func (r *Round) Phase() Phase { return r.phase }

// TickCount returns ticks advanced since the last start
func (r *Round) TickCount() uint64 { return r.tick }

// Rules returns the constants the round was built with
func (r *Round) Rules() parameter.Rules { return r.rules }

// Player exposes the player for read access by the frontend
func (r *Round) Player() *entity.Player { return r.player }

// Start resets every collection and timer and enters the running phase
func (r *Round) Start() {
	r.ID = uuid.New()
	r.tick = 0
	r.player.Reset()
	r.opponents = r.opponents[:0]
	r.resources = r.resources[:0]
	r.projectiles.Reset()
	r.opponentSpawner.Reset()

	r.setPhase(PhaseRunning)
	r.stats.rounds.Add(1)
	r.stats.id.Store(r.ID.String())
	r.publishGauges()

	log.Printf("[engine] round %s started", r.ID)
	r.emit(event.EventRoundStarted)
}

// Tick advances the simulation by one step
// Order: start command, win check, input, player, opponents, projectiles,
// resource replenishment, collision resolution, purge
func (r *Round) Tick(elapsed time.Duration, in Intent) {
	if in.Restart && r.phase.Terminal() {
		r.Start()
		return
	}
	if r.phase != PhaseRunning {
		return
	}

	r.tick++
	r.stats.ticks.Add(1)

	if r.player.Len() >= r.rules.WinLength {
		r.setPhase(PhaseVictory)
		log.Printf("[engine] round %s won at length %d", r.ID, r.player.Len())
		r.emit(event.EventVictory)
		return
	}

	if in.Fire {
		if req, ok := r.player.Shoot(); ok {
			r.projectiles.SpawnRequest(req)
			r.stats.shots.Add(1)
			r.emit(event.EventShotFired)
		}
	}

	r.player.Advance(elapsed, in.Direction, r.rules.Cols, r.rules.Rows)
	if r.player.Dead {
		r.killPlayer()
		return
	}

	r.updateOpponents(elapsed)
	r.projectiles.Advance()
	r.replenishResources()
	r.resolveCollisions()
	r.purge()
	r.publishGauges()
}

func (r *Round) updateOpponents(elapsed time.Duration) {
	if o, ok := r.opponentSpawner.Update(elapsed, len(r.opponents), r.player.Body); ok {
		r.opponents = append(r.opponents, o)
		r.stats.spawned.Add(1)
		r.emit(event.EventOpponentSpawned)
	}

	s := entity.Surroundings{
		Cols:       r.rules.Cols,
		Rows:       r.rules.Rows,
		PlayerBody: r.player.Body,
		Resources:  entity.Cells(r.resources),
	}
	for _, o := range r.opponents {
		o.Advance(elapsed, s, r.rng)
		if o.Dead {
			continue
		}
		if req, ok := o.TryShoot(r.player.Body); ok {
			r.projectiles.SpawnRequest(req)
			r.stats.opponentShots.Add(1)
			r.emit(event.EventOpponentShot)
		}
	}

	// Only leaving the grid kills during movement; those exits carry no drop or event
	r.purgeOpponents()
}

// replenishResources adds at most one resource per tick while below the floor
func (r *Round) replenishResources() {
	if len(r.resources) >= r.rules.MinResources {
		return
	}
	occupied := make([][]core.Point, 0, len(r.opponents)+2)
	occupied = append(occupied, r.player.Body, entity.Cells(r.resources))
	for _, o := range r.opponents {
		occupied = append(occupied, o.Body)
	}
	if res, ok := r.resourceSpawner.Spawn(occupied...); ok {
		r.resources = append(r.resources, res)
	}
}

func (r *Round) purge() {
	r.purgeOpponents()
	r.projectiles.Compact()
}

func (r *Round) purgeOpponents() {
	live := r.opponents[:0]
	for _, o := range r.opponents {
		if !o.Dead {
			live = append(live, o)
		}
	}
	clear(r.opponents[len(live):])
	r.opponents = live
}

func (r *Round) setPhase(p Phase) {
	r.phase = p
	r.stats.phase.Store(p.String())
}

func (r *Round) emit(t event.EventType) {
	r.router.Emit(event.GameEvent{Type: t, Tick: r.tick})
}

func (r *Round) publishGauges() {
	r.stats.liveOpponents.Store(int64(len(r.opponents)))
	r.stats.liveProjectile.Store(int64(r.projectiles.Len()))
	r.stats.liveResources.Store(int64(len(r.resources)))
	r.stats.playerLength.Store(int64(r.player.Len()))
}
