package config

// Viewer layout configuration
const (
	// Tile size in pixels
	TileSize = 8

	// Height of the status line above the map, in pixels
	StatusBarHeight = 16
)

// GetScreenDimensions returns the viewer's logical screen size in pixels
// for a grid of the given size
func GetScreenDimensions(gridWidth, gridHeight int) (width, height int) {
	return gridWidth * TileSize, gridHeight*TileSize + StatusBarHeight
}

// GetWindowSize returns the recommended window size (may be different from actual screen dimensions)
func GetWindowSize() (width, height int) {
	return 1024, 840
}
