package render

import (
	"fmt"

	"github.com/lixenwraith/shooter-snake/engine"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// OverlayRenderer draws the title, game over and victory screens
type OverlayRenderer struct{}

func NewOverlayRenderer() *OverlayRenderer { return &OverlayRenderer{} }

func (r *OverlayRenderer) Render(ctx RenderContext, c *Canvas) {
	var lines []string
	switch ctx.Snap.Phase {
	case engine.PhaseReady:
		lines = []string{"SHOOTER SNAKE", "", "arrows/WASD steer   J fire", "P pause   M mute   Q quit", "", "Press SPACE to start"}
	case engine.PhaseOver:
		lines = []string{"GAME OVER", "", fmt.Sprintf("Length %d", len(ctx.Snap.Player.Body)), "", "Press SPACE to restart"}
	case engine.PhaseVictory:
		lines = []string{"VICTORY!", "", fmt.Sprintf("Reached length %d", ctx.Snap.WinLength), "", "Press SPACE to play again"}
	default:
		if !ctx.Paused {
			return
		}
		lines = []string{"PAUSED"}
	}

	w, h := BoardSize(ctx.Snap.Cols, ctx.Snap.Rows)
	top := ctx.BoardY + (h-len(lines))/2
	title := c.Style(parameter.ColorText, parameter.ColorOverlay)
	body := c.Style(parameter.ColorTextDim, parameter.ColorOverlay)

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	left := ctx.BoardX + (w-boxW)/2
	for dy := -1; dy <= len(lines); dy++ {
		for dx := 0; dx < boxW; dx++ {
			c.Set(left+dx, top+dy, ' ', body)
		}
	}

	for i, l := range lines {
		style := body
		if i == 0 {
			style = title
		}
		c.Text(left+(boxW-len(l))/2, top+i, l, style)
	}
}
