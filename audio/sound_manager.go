package audio

import (
	"errors"
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/shooter-snake/event"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// resampleQuality trades CPU for fidelity when the device rate differs from the cue rate
const resampleQuality = 3

// SoundManager turns routed game events into sound
// Every method is safe to call before Initialize; calls are then dropped
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	cache       *soundCache
	mixer       *lockedMixer
	master      *effects.Volume // streamed only through mixer, guarded by mixer.mu
	bgm         *beep.Ctrl
	native      beep.SampleRate
	output      beep.SampleRate
	initialized bool
	muted       bool
}

// NewSoundManager creates a new sound manager; nil cfg means defaults
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.Normalize()

	sm := &SoundManager{
		cfg:    cfg,
		cache:  newSoundCache(),
		mixer:  &lockedMixer{},
		native: beep.SampleRate(parameter.AudioSampleRate),
		output: beep.SampleRate(cfg.SampleRate),
	}
	sm.master = &effects.Volume{Streamer: &sm.mixer.mixer, Base: 2}
	sm.mixer.out = sm.master
	sm.applyMaster()
	return sm
}

// Initialize opens the speaker and starts streaming the mix
func (sm *SoundManager) Initialize() error {
	if !sm.cfg.Enabled {
		return nil
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.output, sm.output.N(parameter.AudioBufferPeriod)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	sm.attachLocked(func(s beep.Streamer) { speaker.Play(s) })
	return nil
}

// attachLocked hands the master chain to a sink and marks the manager live
func (sm *SoundManager) attachLocked(play func(beep.Streamer)) {
	sm.cache.preload()
	play(sm.mixer)
	sm.initialized = true
	log.Printf("[audio] initialized at %d Hz", sm.output)
}

// Output returns the final mixed stream, master volume included
func (sm *SoundManager) Output() beep.Streamer {
	return sm.mixer
}

// Cleanup stops all sounds and detaches from the mix
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	sm.mixer.clear()
	sm.bgm = nil
	sm.initialized = false
}

// Play queues one cue; ErrNotInitialized when no output is attached
func (sm *SoundManager) Play(st SoundType) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return ErrNotInitialized
	}

	buf := sm.cache.get(st)
	if buf == nil {
		return fmt.Errorf("%w: %d", ErrUnknownSound, int(st))
	}
	gain := sm.cfg.effectVolume(st)
	if gain == 0 {
		return nil
	}
	sm.mixer.add(sm.resample(&bufferStreamer{buf: buf, gain: gain}))
	return nil
}

// StartBGM starts the background loop if it is not already playing
func (sm *SoundManager) StartBGM() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	if sm.bgm != nil {
		sm.mixer.mu.Lock()
		sm.bgm.Paused = false
		sm.mixer.mu.Unlock()
		return
	}
	sm.bgm = &beep.Ctrl{Streamer: sm.resample(newBGMGenerator(sm.native))}
	sm.mixer.add(sm.bgm)
}

// StopBGM pauses the background loop
func (sm *SoundManager) StopBGM() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.bgm == nil {
		return
	}
	sm.mixer.mu.Lock()
	sm.bgm.Paused = true
	sm.mixer.mu.Unlock()
}

// BGMPlaying reports whether the background loop is audible
func (sm *SoundManager) BGMPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.bgm == nil {
		return false
	}
	sm.mixer.mu.Lock()
	defer sm.mixer.mu.Unlock()
	return !sm.bgm.Paused
}

// ToggleMute flips the mute state and returns it
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	sm.applyMaster()
	return sm.muted
}

// SetMuted sets the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	sm.applyMaster()
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// ApplyVolumes takes master and per-cue volumes from a reloaded config
// Enabled and sample rate only apply at startup
func (sm *SoundManager) ApplyVolumes(cfg *Config) {
	if cfg == nil {
		return
	}
	cfg.Normalize()

	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.cfg.MasterVolume = cfg.MasterVolume
	sm.cfg.EffectVolumes = make(map[SoundType]float64, len(cfg.EffectVolumes))
	for st, v := range cfg.EffectVolumes {
		sm.cfg.EffectVolumes[st] = v
	}
	sm.applyMaster()
	log.Printf("[audio] volumes reloaded, master %.2f", sm.cfg.MasterVolume)
}

// applyMaster maps linear master volume onto the base-2 volume effect
func (sm *SoundManager) applyMaster() {
	sm.mixer.mu.Lock()
	defer sm.mixer.mu.Unlock()
	sm.master.Silent = sm.muted || sm.cfg.MasterVolume <= 0
	if !sm.master.Silent {
		sm.master.Volume = math.Log2(sm.cfg.MasterVolume)
	}
}

func (sm *SoundManager) resample(s beep.Streamer) beep.Streamer {
	if sm.output == sm.native {
		return s
	}
	return beep.Resample(resampleQuality, sm.native, sm.output, s)
}

// HandleEvent implements event.Handler
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventRoundStarted:
		sm.StartBGM()
		return
	case event.EventPlayerDied, event.EventVictory:
		sm.StopBGM()
	}

	st, ok := eventSounds[ev.Type]
	if !ok {
		return
	}
	if err := sm.Play(st); err != nil && !errors.Is(err, ErrNotInitialized) {
		log.Printf("[audio] play %s: %v", st, err)
	}
}

// EventTypes implements event.Handler
func (sm *SoundManager) EventTypes() []event.EventType {
	types := make([]event.EventType, 0, len(eventSounds)+1)
	types = append(types, event.EventRoundStarted)
	for _, t := range event.AllTypes() {
		if _, ok := eventSounds[t]; ok {
			types = append(types, t)
		}
	}
	return types
}

var eventSounds = map[event.EventType]SoundType{
	event.EventEat:             SoundEat,
	event.EventOpponentSpawned: SoundSpawn,
	event.EventOpponentDied:    SoundOpponentDeath,
	event.EventPlayerDied:      SoundPlayerDeath,
	event.EventShotFired:       SoundPlayerShot,
	event.EventOpponentShot:    SoundOpponentShot,
	event.EventVictory:         SoundVictory,
}
