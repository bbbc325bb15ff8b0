package render

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/shooter-snake/event"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// Shake jitters the world layers after deaths
// Deaths are routed in during the tick and take effect on the next Update
type Shake struct {
	rng      *rand.Rand
	cellSize float64
	pending  bool
	until    time.Time
}

// NewShake creates an idle shake; cellSize converts the pixel intensity to cells
func NewShake(cellSize int, seed uint64) *Shake {
	return &Shake{
		rng:      rand.New(rand.NewSource(seed)),
		cellSize: float64(max(1, cellSize)),
	}
}

// HandleEvent implements event.Handler
func (s *Shake) HandleEvent(event.GameEvent) {
	s.pending = true
}

// EventTypes implements event.Handler
func (s *Shake) EventTypes() []event.EventType {
	return []event.EventType{event.EventOpponentDied, event.EventPlayerDied}
}

// Update starts the shake at frame time if a death was routed since the last call
func (s *Shake) Update(now time.Time) {
	if s.pending {
		s.until = now.Add(parameter.ShakeDuration)
		s.pending = false
	}
}

// Active reports whether a shake is running
func (s *Shake) Active(now time.Time) bool {
	return now.Before(s.until)
}

// Offset returns the screen cell displacement for this frame
// Amplitude fades linearly over the shake duration
func (s *Shake) Offset(now time.Time) (dx, dy int) {
	if !s.Active(now) {
		return 0, 0
	}
	fade := float64(s.until.Sub(now)) / float64(parameter.ShakeDuration)
	amp := parameter.ShakeIntensity * fade / s.cellSize

	jx := (s.rng.Float64()*2 - 1) * amp * CellColumns
	jy := (s.rng.Float64()*2 - 1) * amp
	return int(math.Round(jx)), int(math.Round(jy))
}

// Apply sets the context's shake offset
func (s *Shake) Apply(ctx *RenderContext) {
	ctx.ShakeX, ctx.ShakeY = s.Offset(ctx.Now)
}
