package main

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shooter-snake/audio"
	"github.com/lixenwraith/shooter-snake/config"
	"github.com/lixenwraith/shooter-snake/engine"
	"github.com/lixenwraith/shooter-snake/event"
	"github.com/lixenwraith/shooter-snake/input"
	"github.com/lixenwraith/shooter-snake/parameter"
	"github.com/lixenwraith/shooter-snake/render"
	"github.com/lixenwraith/shooter-snake/spectate"
	"github.com/lixenwraith/shooter-snake/status"
)

// game wires the engine to the terminal frontend and owns the frame loop state
// Every method runs on the main goroutine
type game struct {
	screen tcell.Screen
	reg    *status.Registry

	driver    *engine.Driver
	handler   *input.Handler
	sound     *audio.SoundManager
	particles *render.ParticleSystem
	shake     *render.Shake
	renderer  *render.RenderOrchestrator
	publisher *spectate.Publisher
}

type gameOptions struct {
	seed      uint64
	colorMode render.ColorMode
	debugHUD  bool
	keymap    *input.Keymap
	clock     *engine.PausableClock
	sound     *audio.SoundManager
	publisher *spectate.Publisher // nil disables publishing
}

func newGame(screen tcell.Screen, reg *status.Registry, opts gameOptions) *game {
	router := event.NewRouter()
	shake := render.NewShake(parameter.CellSize, opts.seed+2)
	router.Register(shake)

	particles := render.NewParticleSystem(opts.seed + 1)
	router.RegisterEffects(particles)
	if opts.sound != nil {
		router.Register(opts.sound)
	}

	round := engine.NewRound(parameter.DefaultRules(), opts.seed, router, reg)
	clock := opts.clock
	if clock == nil {
		clock = engine.NewPausableClock(nil)
	}

	orchestrator := render.NewRenderOrchestrator(screen, opts.colorMode)
	var hudReg *status.Registry
	if opts.debugHUD {
		hudReg = reg
	}
	orchestrator.RegisterGameLayers(particles, hudReg)

	return &game{
		screen:    screen,
		reg:       reg,
		driver:    engine.NewDriver(round, clock, reg),
		handler:   input.NewHandler(opts.keymap),
		sound:     opts.sound,
		particles: particles,
		shake:     shake,
		renderer:  orchestrator,
		publisher: opts.publisher,
	}
}

// handleEvent applies one terminal event; false means quit
func (g *game) handleEvent(ev tcell.Event) bool {
	return g.apply(g.handler.HandleEvent(ev))
}

func (g *game) apply(cmd input.Command) bool {
	switch cmd {
	case input.CommandQuit:
		return false
	case input.CommandPause:
		round := g.driver.Round()
		if round.Phase() == engine.PhaseRunning || g.driver.Clock().IsPaused() {
			paused := g.driver.Clock().Toggle()
			log.Printf("[game] paused=%v", paused)
		}
	case input.CommandMute:
		if g.sound != nil {
			g.sound.ToggleMute()
		}
	case input.CommandResize:
		g.renderer.Resize()
	}
	return true
}

// frame advances one tick, updates effects and draws
func (g *game) frame(now time.Time) {
	round := g.driver.Round()
	prevID := round.ID

	if err := g.driver.Step(g.handler.Intent()); err != nil {
		log.Printf("[game] %v", err)
	}

	restarted := round.ID != prevID
	g.handler.Sync(round.Player().LastDirection, restarted)
	if restarted {
		g.particles.Reset()
	}

	paused := g.driver.Clock().IsPaused()
	if !paused {
		g.particles.Update()
	}
	g.shake.Update(now)

	snap := round.Snapshot()
	if g.publisher != nil {
		g.publisher.Publish(snap)
	}

	w, h := g.screen.Size()
	ctx := render.NewRenderContext(snap, w, h, now)
	ctx.Paused = paused
	if g.sound != nil {
		ctx.Muted = g.sound.Muted()
	}
	g.shake.Apply(&ctx)
	g.renderer.RenderFrame(ctx)
}

// applyConfig takes the live-reloadable parts of a new config
func (g *game) applyConfig(cfg *config.Config) {
	if km, err := cfg.Keymap(); err == nil {
		g.handler.SetKeymap(km)
	}
	if g.sound != nil {
		if ac, err := cfg.AudioSettings(); err == nil {
			g.sound.ApplyVolumes(ac)
		}
	}
}
