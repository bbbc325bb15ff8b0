// Package render draws engine snapshots onto a tcell screen: a bordered board
// two columns per grid cell, a HUD line, particles, screen shake and the
// ready, game over and victory overlays.
package render

import (
	"time"

	"github.com/lixenwraith/shooter-snake/engine"
)

// CellColumns is the terminal width of one grid cell, which keeps cells roughly square
const CellColumns = 2

// hudRows is the space reserved above the board
const hudRows = 1

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Snap engine.Snapshot

	// Time state
	Now    time.Time
	Paused bool
	Muted  bool

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Board origin: top-left border corner in screen coordinates
	BoardX int
	BoardY int

	// Shake offset in screen cells, applied to world layers only
	ShakeX int
	ShakeY int

	// TooSmall is set when the terminal cannot fit the board
	TooSmall bool
}

// BoardSize returns the terminal footprint of the board including its border
func BoardSize(cols, rows int) (width, height int) {
	return cols*CellColumns + 2, rows + 2
}

// NewRenderContext centers the board on the screen
func NewRenderContext(snap engine.Snapshot, screenW, screenH int, now time.Time) RenderContext {
	ctx := RenderContext{
		Snap:         snap,
		Now:          now,
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
	}

	w, h := BoardSize(snap.Cols, snap.Rows)
	if screenW < w || screenH < h+hudRows {
		ctx.TooSmall = true
		return ctx
	}
	ctx.BoardX = (screenW - w) / 2
	ctx.BoardY = hudRows + (screenH-h-hudRows)/2
	return ctx
}

// CellOrigin maps a grid cell to the screen column and row of its left half
// Shake is included; callers clip through the canvas
func (ctx RenderContext) CellOrigin(gx, gy int) (x, y int) {
	return ctx.BoardX + 1 + gx*CellColumns + ctx.ShakeX, ctx.BoardY + 1 + gy + ctx.ShakeY
}

// PixelOrigin maps a world pixel position to a screen cell
func (ctx RenderContext) PixelOrigin(px, py float64) (x, y int) {
	cs := float64(ctx.Snap.CellSize)
	if cs <= 0 {
		cs = 1
	}
	gx := px / cs
	gy := py / cs
	return ctx.BoardX + 1 + int(gx*CellColumns) + ctx.ShakeX, ctx.BoardY + 1 + int(gy) + ctx.ShakeY
}

// InBoard reports whether a screen position lies inside the board interior
func (ctx RenderContext) InBoard(x, y int) bool {
	w, h := BoardSize(ctx.Snap.Cols, ctx.Snap.Rows)
	return x > ctx.BoardX && x < ctx.BoardX+w-1 && y > ctx.BoardY && y < ctx.BoardY+h-1
}
