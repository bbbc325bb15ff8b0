package render

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, c *Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
