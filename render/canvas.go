package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/shooter-snake/core"
	"github.com/lixenwraith/shooter-snake/parameter"
)

// ColorMode selects how RGB values reach the terminal
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota
	ColorMode256
)

// ParseColorMode maps a config value; anything unknown means truecolor
func ParseColorMode(s string) ColorMode {
	if s == "256" {
		return ColorMode256
	}
	return ColorModeTrueColor
}

// Canvas is a clipped drawing surface over a tcell screen
type Canvas struct {
	screen tcell.Screen
	mode   ColorMode
	bg     core.RGB
}

// NewCanvas wraps a screen; bg fills every cell not otherwise drawn
func NewCanvas(screen tcell.Screen, mode ColorMode, bg core.RGB) *Canvas {
	return &Canvas{screen: screen, mode: mode, bg: bg}
}

// Size returns the screen dimensions
func (c *Canvas) Size() (int, int) {
	return c.screen.Size()
}

// Color converts to a terminal color honoring the color mode
func (c *Canvas) Color(rgb core.RGB) tcell.Color {
	if c.mode == ColorMode256 {
		// 6x6x6 cube at palette index 16
		q := func(v uint8) int { return (int(v)*5 + 127) / 255 }
		return tcell.PaletteColor(16 + 36*q(rgb.R) + 6*q(rgb.G) + q(rgb.B))
	}
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}

// Style builds a style from foreground and background colors
func (c *Canvas) Style(fg, bg core.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(c.Color(fg)).Background(c.Color(bg))
}

// Set draws one rune, silently dropping positions off screen
func (c *Canvas) Set(x, y int, r rune, style tcell.Style) {
	w, h := c.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.screen.SetContent(x, y, r, nil, style)
}

// Text draws a string left to right and returns the column after it
func (c *Canvas) Text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.Set(x, y, r, style)
		x += max(1, runewidth.RuneWidth(r))
	}
	return x
}

// CenteredText draws s centered horizontally on row y
func (c *Canvas) CenteredText(y int, s string, style tcell.Style) {
	w, _ := c.screen.Size()
	c.Text((w-runewidth.StringWidth(s))/2, y, s, style)
}

// Clear fills the screen with the background color
func (c *Canvas) Clear() {
	c.screen.SetStyle(c.Style(parameter.ColorText, c.bg))
	c.screen.Clear()
}
