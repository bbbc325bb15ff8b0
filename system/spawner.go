package system

import (
	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/entity"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// ResourceSpawner places resources on free cells
type ResourceSpawner struct {
	cols, rows int
	tries      int
	jitter     int
	rng        entity.Rand
}

// NewResourceSpawner creates a spawner for a cols x rows grid
func NewResourceSpawner(rules parameter.Rules, rng entity.Rand) *ResourceSpawner {
	return &ResourceSpawner{
		cols:   rules.Cols,
		rows:   rules.Rows,
		tries:  parameter.ResourcePlacementTries,
		jitter: rules.OpponentDropJitter,
		rng:    rng,
	}
}

func (s *ResourceSpawner) Name() string { return "resource" }

// FreeCell picks a random cell outside every occupied set
// Random probing is bounded; a row-major scan from a random start follows so a
// sparse free cell is still found. Returns false only on a saturated grid.
func (s *ResourceSpawner) FreeCell(occupied ...[]core.Point) (core.Point, bool) {
	taken := func(p core.Point) bool {
		for _, set := range occupied {
			if core.Occupies(p, set) {
				return true
			}
		}
		return false
	}

	for i := 0; i < s.tries; i++ {
		p := core.Point{X: s.rng.Intn(s.cols), Y: s.rng.Intn(s.rows)}
		if !taken(p) {
			return p, true
		}
	}

	total := s.cols * s.rows
	start := s.rng.Intn(total)
	for i := 0; i < total; i++ {
		idx := (start + i) % total
		p := core.Point{X: idx % s.cols, Y: idx / s.cols}
		if !taken(p) {
			return p, true
		}
	}
	return core.Point{}, false
}

// Spawn creates a resource on a free cell
func (s *ResourceSpawner) Spawn(occupied ...[]core.Point) (entity.Resource, bool) {
	cell, ok := s.FreeCell(occupied...)
	if !ok {
		return entity.Resource{}, false
	}
	return s.at(cell), true
}

// DropNear scatters count resources within the jitter radius of center, clamped into the grid
// Drops may stack on occupied cells; they are consumed by whichever head reaches them first
func (s *ResourceSpawner) DropNear(center core.Point, count int) []entity.Resource {
	if count <= 0 {
		return nil
	}
	span := 2*s.jitter + 1
	out := make([]entity.Resource, 0, count)
	for i := 0; i < count; i++ {
		p := core.Point{
			X: center.X + s.rng.Intn(span) - s.jitter,
			Y: center.Y + s.rng.Intn(span) - s.jitter,
		}
		out = append(out, s.at(core.Clamp(p, s.cols, s.rows)))
	}
	return out
}

func (s *ResourceSpawner) at(cell core.Point) entity.Resource {
	return entity.Resource{
		Cell:  cell,
		Hue:   parameter.ResourceHueMin + float64(s.rng.Intn(int(parameter.ResourceHueSpan))),
		Phase: float64(s.rng.Intn(1000)),
	}
}
