package audio

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/shooter-snake/event"
)

// attached returns a manager streaming into nothing, so tests pull samples directly
func attached(cfg *Config) *SoundManager {
	sm := NewSoundManager(cfg)
	sm.mu.Lock()
	sm.attachLocked(func(beep.Streamer) {})
	sm.mu.Unlock()
	return sm
}

func loudness(s beep.Streamer, n int) float64 {
	buf := make([][2]float64, n)
	got, _ := s.Stream(buf)
	peak := 0.0
	for _, frame := range buf[:got] {
		peak = math.Max(peak, math.Abs(frame[0]))
	}
	return peak
}

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	if err := sm.Play(SoundEat); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	for _, typ := range event.AllTypes() {
		sm.HandleEvent(event.GameEvent{Type: typ})
	}
	sm.StopBGM()
	sm.ToggleMute()
	sm.Cleanup()
}

func TestSoundManager_DisabledSkipsSpeaker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Expected disabled audio to skip init, got %v", err)
	}
	if err := sm.Play(SoundEat); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
}

func TestSoundManager_EventPlaysCue(t *testing.T) {
	sm := attached(nil)

	sm.HandleEvent(event.GameEvent{Type: event.EventEat})
	if sm.mixer.len() != 1 {
		t.Fatalf("Expected one streamer, got %d", sm.mixer.len())
	}
	if loudness(sm.Output(), 512) == 0 {
		t.Error("Expected audible output")
	}
}

func TestSoundManager_Mute(t *testing.T) {
	sm := attached(nil)

	if !sm.ToggleMute() {
		t.Fatal("Expected muted after toggle")
	}
	sm.HandleEvent(event.GameEvent{Type: event.EventShotFired})
	if got := loudness(sm.Output(), 512); got != 0 {
		t.Errorf("Expected silence while muted, got %f", got)
	}

	sm.SetMuted(false)
	sm.HandleEvent(event.GameEvent{Type: event.EventShotFired})
	if loudness(sm.Output(), 512) == 0 {
		t.Error("Expected sound after unmute")
	}
}

// TestSoundManager_MuteWhileStreaming toggles mute while another goroutine pulls the mix
// Run with -race to check the master volume is only touched under the mix lock
func TestSoundManager_MuteWhileStreaming(t *testing.T) {
	sm := attached(nil)
	sm.StartBGM()
	out := sm.Output()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		buf := make([][2]float64, 64)
		for i := 0; i < 2000; i++ {
			out.Stream(buf)
		}
	}()
	for i := 0; i < 2000; i++ {
		sm.ToggleMute()
	}
	wg.Wait()

	if sm.Muted() {
		t.Fatal("Expected even number of toggles to leave audio unmuted")
	}
	if loudness(out, 512) == 0 {
		t.Error("Expected BGM audible after toggling")
	}
}

func TestSoundManager_BGMFollowsRound(t *testing.T) {
	sm := attached(nil)

	sm.HandleEvent(event.GameEvent{Type: event.EventRoundStarted})
	if !sm.BGMPlaying() {
		t.Fatal("Expected BGM after round start")
	}

	sm.HandleEvent(event.GameEvent{Type: event.EventPlayerDied})
	if sm.BGMPlaying() {
		t.Error("Expected BGM stopped on death")
	}

	sm.HandleEvent(event.GameEvent{Type: event.EventRoundStarted})
	sm.HandleEvent(event.GameEvent{Type: event.EventVictory})
	if sm.BGMPlaying() {
		t.Error("Expected BGM stopped on victory")
	}
}

func TestSoundManager_EffectVolumeZeroSkips(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EffectVolumes[SoundSpawn] = 0
	sm := attached(cfg)

	if err := sm.Play(SoundSpawn); err != nil {
		t.Fatal(err)
	}
	if sm.mixer.len() != 0 {
		t.Errorf("Expected zero-volume cue skipped, got %d streamers", sm.mixer.len())
	}
}

func TestSoundManager_ApplyVolumes(t *testing.T) {
	sm := attached(nil)

	cfg := DefaultConfig()
	cfg.MasterVolume = 0
	sm.ApplyVolumes(cfg)
	sm.HandleEvent(event.GameEvent{Type: event.EventEat})
	if got := loudness(sm.Output(), 512); got != 0 {
		t.Errorf("Expected silence at zero master, got %f", got)
	}
}

func TestSoundManager_Resamples(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 48000
	sm := attached(cfg)

	if err := sm.Play(SoundPlayerShot); err != nil {
		t.Fatal(err)
	}
	if loudness(sm.Output(), 1024) == 0 {
		t.Error("Expected audible resampled output")
	}
}

func TestSoundManager_EventTypes(t *testing.T) {
	sm := NewSoundManager(nil)
	seen := make(map[event.EventType]bool)
	for _, typ := range sm.EventTypes() {
		seen[typ] = true
	}
	for _, typ := range event.AllTypes() {
		if !seen[typ] {
			t.Errorf("Expected %v to be handled", typ)
		}
	}
}

func TestBGMGenerator_Endless(t *testing.T) {
	g := newBGMGenerator(beep.SampleRate(44100))
	buf := make([][2]float64, 44100)
	for i := 0; i < 3; i++ {
		n, ok := g.Stream(buf)
		if n != len(buf) || !ok {
			t.Fatalf("Expected endless stream, got %d %v", n, ok)
		}
	}
}
