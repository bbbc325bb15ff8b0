package parameter

// World geometry, pixel space is the reference frame for projectiles
const (
	// CellSize is the edge length of one grid cell in pixels
	CellSize = 20

	WorldPixelWidth  = 800
	WorldPixelHeight = 600

	GridCols = WorldPixelWidth / CellSize  // 40
	GridRows = WorldPixelHeight / CellSize // 30
)

// Player spawn
const (
	PlayerStartX      = 10
	PlayerStartY      = 10
	PlayerStartLength = 3
)
