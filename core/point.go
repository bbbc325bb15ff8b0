package core

// Point is a grid cell address; compared by value
type Point struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

// Add returns the cell one step away in direction d
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Manhattan returns the taxicab distance between two cells
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
