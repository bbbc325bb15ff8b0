package engine

import (
	"fmt"
	"log"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/shooter-snake/parameter"
	"github.com/lixenwraith/shooter-snake/status"
)

// Driver feeds clock deltas into the round and isolates faults per tick
type Driver struct {
	round   *Round
	clock   *PausableClock
	maxStep time.Duration

	faults   *atomic.Int64
	tickCost *status.AtomicFloat
	lastErr  atomic.Pointer[error]
}

// NewDriver wires a round to a clock; reg may be nil
func NewDriver(round *Round, clock *PausableClock, reg *status.Registry) *Driver {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Driver{
		round:    round,
		clock:    clock,
		maxStep:  parameter.MaxTickElapsed,
		faults:   reg.Ints.Get(status.TickFaults),
		tickCost: reg.Floats.Get(status.TickMillis),
	}
}

// Round returns the driven round
func (d *Driver) Round() *Round { return d.round }

// Clock returns the driver's clock
func (d *Driver) Clock() *PausableClock { return d.clock }

// Step reads the clock and advances one tick
// While paused only a start command gets through, with zero elapsed time
func (d *Driver) Step(in Intent) error {
	elapsed := d.clock.Elapsed(d.maxStep)
	if d.clock.IsPaused() {
		if !in.Restart || !d.round.Phase().Terminal() {
			return nil
		}
		d.clock.Resume()
		elapsed = 0
	}
	return d.Advance(elapsed, in)
}

// Advance runs one tick with an explicit elapsed time
// A panic inside the tick is recovered, logged and counted; the next tick
// continues from whatever state the round holds
func (d *Driver) Advance(elapsed time.Duration, in Intent) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("tick %d: %v", d.round.TickCount(), rec)
			d.faults.Add(1)
			d.lastErr.Store(&err)
			log.Printf("[engine] recovered tick fault: %v\n%s", rec, debug.Stack())
		}
	}()

	start := time.Now()
	d.round.Tick(elapsed, in)
	d.tickCost.Smooth(float64(time.Since(start).Microseconds())/1000, 0.1)
	return nil
}

// LastFault returns the most recent recovered tick fault, if any
func (d *Driver) LastFault() error {
	if p := d.lastErr.Load(); p != nil {
		return *p
	}
	return nil
}
