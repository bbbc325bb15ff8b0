// Package frame rasterizes engine snapshots to images for the spectator
// endpoints and for offline inspection.
package frame

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/engine"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// Scale bounds accepted by Encode
const (
	MinScale = 0.25
	MaxScale = 4.0
)

// ErrBadScale is returned for scale factors outside [MinScale, MaxScale]
var ErrBadScale = errors.New("scale out of range")

// gridShade is the grid line color
var gridShade = core.MustHex("#242424")

// Renderer draws snapshots; the grid background is cached per board size
type Renderer struct {
	backgrounds sync.Map // bgKey → image.Image
}

type bgKey struct {
	cols, rows, cell int
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws one snapshot at native pixel size
// Terminal phases are dimmed and blurred under a caption
func (r *Renderer) Render(snap engine.Snapshot) image.Image {
	cs := snap.CellSize
	w, h := snap.Cols*cs, snap.Rows*cs

	dc := gg.NewContext(w, h)
	dc.DrawImage(r.background(snap.Cols, snap.Rows, cs), 0, 0)

	for _, res := range snap.Resources {
		drawResource(dc, res, cs)
	}
	for _, o := range snap.Opponents {
		drawSnake(dc, o, cs)
	}
	drawSnake(dc, snap.Player, cs)
	for _, p := range snap.Projectiles {
		setRGB(dc, p.Color)
		dc.DrawCircle(p.X, p.Y, float64(cs)/5)
		dc.Fill()
	}

	var caption string
	switch snap.Phase {
	case engine.PhaseReady:
		caption = "SHOOTER SNAKE"
	case engine.PhaseOver:
		caption = "GAME OVER"
	case engine.PhaseVictory:
		caption = "VICTORY!"
	default:
		return dc.Image()
	}

	faded := imaging.AdjustBrightness(imaging.Blur(dc.Image(), 2.5), -40)
	out := gg.NewContextForImage(faded)
	setRGB(out, parameter.ColorText)
	out.DrawStringAnchored(caption, float64(w)/2, float64(h)/2, 0.5, 0.5)
	return out.Image()
}

// Encode writes a PNG of the snapshot scaled by scale
func (r *Renderer) Encode(w io.Writer, snap engine.Snapshot, scale float64) error {
	if scale < MinScale || scale > MaxScale || math.IsNaN(scale) {
		return fmt.Errorf("%w: %g", ErrBadScale, scale)
	}
	img := Scale(r.Render(snap), scale)
	if err := imaging.Encode(w, img, imaging.PNG); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Scale resizes img; upscaling keeps hard cell edges, downscaling smooths
func Scale(img image.Image, scale float64) image.Image {
	if scale == 1 {
		return img
	}
	b := img.Bounds()
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))
	filter := imaging.Lanczos
	if scale > 1 {
		filter = imaging.NearestNeighbor
	}
	return imaging.Resize(img, w, h, filter)
}

func (r *Renderer) background(cols, rows, cs int) image.Image {
	key := bgKey{cols, rows, cs}
	if cached, ok := r.backgrounds.Load(key); ok {
		return cached.(image.Image)
	}

	w, h := cols*cs, rows*cs
	dc := gg.NewContext(w, h)
	setRGB(dc, parameter.ColorBackground)
	dc.Clear()

	setRGB(dc, gridShade)
	dc.SetLineWidth(1)
	for x := 0; x <= w; x += cs {
		dc.DrawLine(float64(x), 0, float64(x), float64(h))
		dc.Stroke()
	}
	for y := 0; y <= h; y += cs {
		dc.DrawLine(0, float64(y), float64(w), float64(y))
		dc.Stroke()
	}

	img := dc.Image()
	actual, _ := r.backgrounds.LoadOrStore(key, img)
	return actual.(image.Image)
}

func drawSnake(dc *gg.Context, s engine.SnakeView, cs int) {
	size := float64(cs)
	inset := 1.0
	for i := len(s.Body) - 1; i >= 0; i-- {
		c := s.BodyColor
		if i == 0 {
			c = s.HeadColor
		}
		setRGB(dc, c)
		p := s.Body[i]
		dc.DrawRoundedRectangle(float64(p.X)*size+inset, float64(p.Y)*size+inset, size-2*inset, size-2*inset, size/4)
		dc.Fill()
	}
}

// drawResource paints a soft halo under a solid dot
func drawResource(dc *gg.Context, res engine.ResourceView, cs int) {
	cx := float64(res.Cell.X*cs) + float64(cs)/2
	cy := float64(res.Cell.Y*cs) + float64(cs)/2
	r := float64(cs) / 3

	dc.SetRGBA255(int(res.Color.R), int(res.Color.G), int(res.Color.B), 60)
	dc.DrawCircle(cx, cy, r*1.6)
	dc.Fill()

	setRGB(dc, res.Color)
	dc.DrawCircle(cx, cy, r)
	dc.Fill()
}

func setRGB(dc *gg.Context, c core.RGB) {
	dc.SetRGB255(int(c.R), int(c.G), int(c.B))
}
