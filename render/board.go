package render

import (
	"fmt"

	"github.com/lixenwraith/shooter-snake/parameter"
)

// BoardRenderer draws the arena border
type BoardRenderer struct{}

func NewBoardRenderer() *BoardRenderer { return &BoardRenderer{} }

func (r *BoardRenderer) Render(ctx RenderContext, c *Canvas) {
	style := c.Style(parameter.ColorBorder, parameter.ColorBackground)
	w, h := BoardSize(ctx.Snap.Cols, ctx.Snap.Rows)
	x0, y0 := ctx.BoardX, ctx.BoardY
	x1, y1 := x0+w-1, y0+h-1

	for x := x0 + 1; x < x1; x++ {
		c.Set(x, y0, '─', style)
		c.Set(x, y1, '─', style)
	}
	for y := y0 + 1; y < y1; y++ {
		c.Set(x0, y, '│', style)
		c.Set(x1, y, '│', style)
	}
	c.Set(x0, y0, '┌', style)
	c.Set(x1, y0, '┐', style)
	c.Set(x0, y1, '└', style)
	c.Set(x1, y1, '┘', style)
}

func sizeHint(w, h int) string {
	return fmt.Sprintf("need %dx%d", w, h)
}
