package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shooter-snake/parameter"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	canvas    *Canvas
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen, mode ColorMode) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		canvas:    NewCanvas(screen, mode, parameter.ColorBackground),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Canvas returns the shared drawing surface
func (o *RenderOrchestrator) Canvas() *Canvas {
	return o.canvas
}

// Resize resyncs the screen after a terminal resize
func (o *RenderOrchestrator) Resize() {
	o.screen.Sync()
}

// RenderFrame executes the render pipeline: clear, render all, show
// A terminal too small for the board gets a single notice instead
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.canvas.Clear()

	if ctx.TooSmall {
		w, h := BoardSize(ctx.Snap.Cols, ctx.Snap.Rows)
		style := o.canvas.Style(parameter.ColorText, parameter.ColorBackground)
		o.canvas.CenteredText(ctx.ScreenHeight/2, "Terminal too small", style)
		o.canvas.CenteredText(ctx.ScreenHeight/2+1, sizeHint(w, h+hudRows), style)
		o.screen.Show()
		return
	}

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.canvas)
	}

	o.screen.Show()
}
