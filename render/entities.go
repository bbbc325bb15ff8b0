package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/engine"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// resourcePulseRate is the resource glow frequency in radians per second
const resourcePulseRate = 4.0

// ResourceRenderer draws resources as pulsing dots
type ResourceRenderer struct{}

func NewResourceRenderer() *ResourceRenderer { return &ResourceRenderer{} }

func (r *ResourceRenderer) Render(ctx RenderContext, c *Canvas) {
	t := float64(ctx.Now.UnixNano()) / 1e9
	for _, res := range ctx.Snap.Resources {
		glow := 0.75 + 0.25*math.Sin(res.Phase+t*resourcePulseRate)
		style := c.Style(res.Color.Scale(glow), parameter.ColorBackground)
		x, y := ctx.CellOrigin(res.Cell.X, res.Cell.Y)
		if ctx.InBoard(x, y) {
			c.Set(x, y, '●', style)
		}
	}
}

// SnakeRenderer draws the player and every opponent, two columns per segment
type SnakeRenderer struct{}

func NewSnakeRenderer() *SnakeRenderer { return &SnakeRenderer{} }

func (r *SnakeRenderer) Render(ctx RenderContext, c *Canvas) {
	for _, o := range ctx.Snap.Opponents {
		r.drawSnake(ctx, c, o)
	}
	r.drawSnake(ctx, c, ctx.Snap.Player)
}

// drawSnake paints tail first so the head stays on top of stacked segments
func (r *SnakeRenderer) drawSnake(ctx RenderContext, c *Canvas, s engine.SnakeView) {
	body := c.Style(s.BodyColor, parameter.ColorBackground)
	for i := len(s.Body) - 1; i > 0; i-- {
		r.fillCell(ctx, c, s.Body[i], '█', body)
	}
	if len(s.Body) == 0 {
		return
	}
	head := c.Style(s.HeadColor, parameter.ColorBackground)
	r.fillCell(ctx, c, s.Body[0], '█', head)

	eyes := c.Style(parameter.ColorBackground, s.HeadColor)
	x, y := ctx.CellOrigin(s.Body[0].X, s.Body[0].Y)
	switch s.Direction {
	case core.DirLeft.String():
		c.Set(x, y, '•', eyes)
	case core.DirRight.String():
		c.Set(x+1, y, '•', eyes)
	}
}

func (r *SnakeRenderer) fillCell(ctx RenderContext, c *Canvas, p core.Point, ch rune, style tcell.Style) {
	x, y := ctx.CellOrigin(p.X, p.Y)
	for dx := 0; dx < CellColumns; dx++ {
		if ctx.InBoard(x+dx, y) {
			c.Set(x+dx, y, ch, style)
		}
	}
}

// ProjectileRenderer draws projectiles at their pixel positions
type ProjectileRenderer struct{}

func NewProjectileRenderer() *ProjectileRenderer { return &ProjectileRenderer{} }

func (r *ProjectileRenderer) Render(ctx RenderContext, c *Canvas) {
	for _, p := range ctx.Snap.Projectiles {
		x, y := ctx.PixelOrigin(p.X, p.Y)
		if ctx.InBoard(x, y) {
			c.Set(x, y, '◆', c.Style(p.Color, parameter.ColorBackground))
		}
	}
}
