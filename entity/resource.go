package entity

import "github.com/lixenwraith/shooter-snake/core"

// Resource is a consumable cell; Hue and Phase only drive rendering
type Resource struct {
	Cell  core.Point
	Hue   float64
	Phase float64
}

// Color returns the resource's display color
func (r Resource) Color() core.RGB {
	return core.HSL(r.Hue, 1, 0.5)
}

// Cells projects resources onto their grid cells
func Cells(resources []Resource) []core.Point {
	out := make([]core.Point, len(resources))
	for i, r := range resources {
		out[i] = r.Cell
	}
	return out
}
