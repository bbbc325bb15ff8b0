package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shooter-snake/audio"
	"github.com/lixenwraith/shooter-snake/config"
	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/parameter"
	"github.com/lixenwraith/shooter-snake/render"
	"github.com/lixenwraith/shooter-snake/spectate"
	"github.com/lixenwraith/shooter-snake/status"
)

var (
	configFlag     = flag.String("config", "shooter-snake.toml", "Settings file")
	initConfigFlag = flag.Bool("init-config", false, "Write default settings to -config and exit")
	debugFlag      = flag.Bool("debug", false, "Write logs and show the metrics line")
	seedFlag       = flag.Uint64("seed", 0, "Random seed, 0 for time based")
	spectateFlag   = flag.String("spectate", "", "Serve spectator API on this address")
	muteFlag       = flag.Bool("mute", false, "Start muted")
	colorModeFlag  = flag.String("color", "", "Color mode: auto, truecolor, 256")
)

func main() {
	// Panic recovery: ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if *initConfigFlag {
		if err := config.WriteDefault(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "init config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", *configFlag)
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	logFile := setupLogging(cfg.Log.Debug, cfg.Log.Dir)
	if logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[game] starting, seed %d", seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := status.NewRegistry()

	// Audio failure is not fatal; the manager stays detached and silent
	ac, _ := cfg.AudioSettings()
	sound := audio.NewSoundManager(ac)
	if err := sound.Initialize(); err != nil {
		log.Printf("[audio] %v (continuing without audio)", err)
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)

	var publisher *spectate.Publisher
	if cfg.Spectate.Enabled {
		publisher = spectate.NewPublisher()
		format, _ := spectate.ParseFormat(cfg.Spectate.Format)
		srv := spectate.NewServer(spectate.Config{
			Addr:     cfg.Spectate.Addr,
			Interval: time.Duration(cfg.Spectate.IntervalMs) * time.Millisecond,
			Format:   format,
		}, publisher, reg)
		if _, err := srv.Start(ctx); err != nil {
			log.Printf("[spectate] %v (continuing without spectators)", err)
			publisher = nil
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()
	screen.HideCursor()

	km, _ := cfg.Keymap()
	g := newGame(screen, reg, gameOptions{
		seed:      seed,
		colorMode: render.ResolveColorMode(cfg.Render.ColorMode, os.Getenv),
		debugHUD:  cfg.Log.Debug,
		keymap:    km,
		sound:     sound,
		publisher: publisher,
	})

	var reloads <-chan *config.Config
	if _, err := os.Stat(*configFlag); err == nil {
		if ch, err := config.Watch(ctx, *configFlag); err == nil {
			reloads = ch
		} else {
			log.Printf("[config] %v", err)
		}
	}

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := time.NewTicker(parameter.TickInterval)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-eventChan:
			if !g.handleEvent(ev) {
				return
			}
		case newCfg, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			g.applyConfig(newCfg)
		case now := <-frameTicker.C:
			g.frame(now)
		}
	}
}

// applyFlags lets explicitly set flags win over file and environment
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Log.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "spectate":
			cfg.Spectate.Enabled = *spectateFlag != ""
			cfg.Spectate.Addr = *spectateFlag
		case "color":
			cfg.Render.ColorMode = *colorModeFlag
		}
	})
}
