package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// PausableClock provides pausable game time and per-tick elapsed deltas
// Paused intervals never reach the simulation
type PausableClock struct {
	mu sync.Mutex

	provider  TimeProvider
	realStart time.Time

	isPaused        atomic.Bool
	pauseStartTime  time.Time
	totalPausedTime time.Duration

	lastGameTime time.Duration
}

// NewPausableClock creates a running clock; nil provider means wall time
func NewPausableClock(provider TimeProvider) *PausableClock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		provider:  provider,
		realStart: provider.Now(),
	}
}

// GameTime returns time since creation minus every pause
func (pc *PausableClock) GameTime() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return pc.gameTimeLocked()
}

func (pc *PausableClock) gameTimeLocked() time.Duration {
	now := pc.provider.Now()
	if pc.isPaused.Load() {
		// Frozen at the pause point
		now = pc.pauseStartTime
	}
	return now.Sub(pc.realStart) - pc.totalPausedTime
}

// Elapsed returns game time since the previous call, capped at maxStep
// The cap absorbs stalls so a late frame cannot step entities in a burst
func (pc *PausableClock) Elapsed(maxStep time.Duration) time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	now := pc.gameTimeLocked()
	dt := now - pc.lastGameTime
	pc.lastGameTime = now

	if dt < 0 {
		return 0
	}
	if maxStep > 0 && dt > maxStep {
		return maxStep
	}
	return dt
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		pc.pauseStartTime = pc.provider.Now()
		pc.mu.Unlock()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.mu.Lock()
		pc.totalPausedTime += pc.provider.Now().Sub(pc.pauseStartTime)
		pc.pauseStartTime = time.Time{}
		pc.mu.Unlock()
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including an active pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() && !pc.pauseStartTime.IsZero() {
		total += pc.provider.Now().Sub(pc.pauseStartTime)
	}
	return total
}
