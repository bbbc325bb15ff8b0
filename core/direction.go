package core

// Direction is a unit step on the grid
// The zero value is the "no input yet" sentinel and never moves an entity
type Direction struct {
	X, Y int
}

var (
	DirNone  = Direction{}
	DirUp    = Direction{X: 0, Y: -1}
	DirDown  = Direction{X: 0, Y: 1}
	DirLeft  = Direction{X: -1, Y: 0}
	DirRight = Direction{X: 1, Y: 0}
)

// Cardinals lists the four directions in candidate order
var Cardinals = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// IsZero reports whether d is the no-direction sentinel
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// Reverse returns the 180 degree opposite of d
func (d Direction) Reverse() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsReverseOf reports whether d points exactly opposite to other
// Zero directions are never reverses of anything
func (d Direction) IsReverseOf(other Direction) bool {
	if d.IsZero() || other.IsZero() {
		return false
	}
	return d.X == -other.X && d.Y == -other.Y
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	default:
		return "invalid"
	}
}

// ParseDirection maps a direction name to its vector
func ParseDirection(name string) (Direction, bool) {
	switch name {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	default:
		return DirNone, false
	}
}
