package render

import (
	"fmt"

	"github.com/lixenwraith/shooter-snake/parameter"
	"github.com/lixenwraith/shooter-snake/status"
)

// HUDRenderer draws the status line above the board
// With a registry attached it appends a debug line below the board
type HUDRenderer struct {
	reg *status.Registry
}

// NewHUDRenderer creates the HUD; reg may be nil
func NewHUDRenderer(reg *status.Registry) *HUDRenderer {
	return &HUDRenderer{reg: reg}
}

func (r *HUDRenderer) Render(ctx RenderContext, c *Canvas) {
	snap := ctx.Snap
	text := c.Style(parameter.ColorText, parameter.ColorBackground)
	dim := c.Style(parameter.ColorTextDim, parameter.ColorBackground)
	y := ctx.BoardY - 1
	x := ctx.BoardX

	x = c.Text(x, y, fmt.Sprintf("LENGTH %d/%d", len(snap.Player.Body), snap.WinLength), text)
	x += 3
	if snap.ShootReady {
		x = c.Text(x, y, "SHOT READY", c.Style(parameter.ColorPlayerShot, parameter.ColorBackground))
	} else {
		x = c.Text(x, y, "RELOADING", dim)
	}
	x += 3
	x = c.Text(x, y, fmt.Sprintf("OPPONENTS %d", len(snap.Opponents)), dim)

	if ctx.Paused {
		x = c.Text(x+3, y, "PAUSED", text)
	}
	if ctx.Muted {
		c.Text(x+3, y, "MUTED", dim)
	}

	if r.reg != nil {
		r.renderDebug(ctx, c)
	}
}

func (r *HUDRenderer) renderDebug(ctx RenderContext, c *Canvas) {
	_, h := BoardSize(ctx.Snap.Cols, ctx.Snap.Rows)
	y := ctx.BoardY + h
	line := fmt.Sprintf("tick %d  %.2fms  proj %d  res %d  faults %d",
		r.reg.Int(status.Ticks),
		r.reg.Float(status.TickMillis),
		r.reg.Int(status.LiveProjectiles),
		r.reg.Int(status.LiveResources),
		r.reg.Int(status.TickFaults),
	)
	c.Text(ctx.BoardX, y, line, c.Style(parameter.ColorTextDim, parameter.ColorBackground))
}
