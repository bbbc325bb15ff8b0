package core

// InBounds reports whether p lies in [0,cols)x[0,rows)
func InBounds(p Point, cols, rows int) bool {
	return p.X >= 0 && p.X < cols && p.Y >= 0 && p.Y < rows
}

// Occupies reports whether any cell equals p
func Occupies(p Point, cells []Point) bool {
	for _, c := range cells {
		if c == p {
			return true
		}
	}
	return false
}

// Clamp pulls p into [0,cols)x[0,rows)
func Clamp(p Point, cols, rows int) Point {
	return Point{
		X: max(0, min(p.X, cols-1)),
		Y: max(0, min(p.Y, rows-1)),
	}
}
