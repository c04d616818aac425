package components

import (
	"image/color"
)

// Tile is the state of a single grid cell
type Tile int

// Tile types
const (
	TileUnexplored Tile = iota
	TileRoom
	TileHallway
	TileDoor
	TileSecretDoor
)

// Glyph returns the character used when the tile is rendered as text
func (t Tile) Glyph() rune {
	switch t {
	case TileRoom:
		return '.'
	case TileHallway:
		return '#'
	case TileDoor:
		return 'D'
	case TileSecretDoor:
		return 'S'
	default:
		return ' '
	}
}

// IsWalkable reports whether a creature could stand on the tile.
// Secret doors are passable once found.
func (t Tile) IsWalkable() bool {
	return t != TileUnexplored
}

func (t Tile) String() string {
	switch t {
	case TileUnexplored:
		return "unexplored"
	case TileRoom:
		return "room"
	case TileHallway:
		return "hallway"
	case TileDoor:
		return "door"
	case TileSecretDoor:
		return "secret door"
	default:
		return "unknown"
	}
}

// MapComponent stores the dungeon grid, indexed Tiles[y][x]
type MapComponent struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

// NewMapComponent creates a new map with the given dimensions
func NewMapComponent(width, height int) *MapComponent {
	m := &MapComponent{
		Width:  width,
		Height: height,
		Tiles:  make([][]Tile, height),
	}

	// Every cell starts unexplored
	for y := 0; y < height; y++ {
		m.Tiles[y] = make([]Tile, width)
	}

	return m
}

// InBounds reports whether (x, y) lies on the grid
func (m *MapComponent) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// GetTile returns the tile at the given position. Out of bounds reads
// as unexplored.
func (m *MapComponent) GetTile(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileUnexplored
	}
	return m.Tiles[y][x]
}

// SetTile sets the tile at the given position. Writes outside the grid
// are dropped.
func (m *MapComponent) SetTile(x, y int, tile Tile) {
	if m.InBounds(x, y) {
		m.Tiles[y][x] = tile
	}
}

// IsWalkable checks if the position holds a walkable tile
func (m *MapComponent) IsWalkable(x, y int) bool {
	return m.GetTile(x, y).IsWalkable()
}

// Count returns how many cells hold the given tile
func (m *MapComponent) Count(tile Tile) int {
	n := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == tile {
				n++
			}
		}
	}
	return n
}

// TileDefinition describes the visual appearance of a tile type
type TileDefinition struct {
	Glyph rune        // Character used by the text renderer
	FG    color.Color // Fill color in the viewer
}

// TileMappingComponent maps tile types to their visual representation
type TileMappingComponent struct {
	Definitions map[Tile]TileDefinition
}

// NewTileMappingComponent creates the default tile mapping
func NewTileMappingComponent() *TileMappingComponent {
	mapping := &TileMappingComponent{
		Definitions: make(map[Tile]TileDefinition),
	}
	mapping.Definitions[TileUnexplored] = TileDefinition{TileUnexplored.Glyph(), color.RGBA{0, 0, 0, 255}}
	mapping.Definitions[TileRoom] = TileDefinition{TileRoom.Glyph(), color.RGBA{96, 96, 96, 255}}
	mapping.Definitions[TileHallway] = TileDefinition{TileHallway.Glyph(), color.RGBA{160, 140, 100, 255}}
	mapping.Definitions[TileDoor] = TileDefinition{TileDoor.Glyph(), color.RGBA{139, 69, 19, 255}}
	mapping.Definitions[TileSecretDoor] = TileDefinition{TileSecretDoor.Glyph(), color.RGBA{128, 0, 128, 255}}

	return mapping
}

// GetTileDefinition returns the visual definition for a given tile type
func (t *TileMappingComponent) GetTileDefinition(tile Tile) TileDefinition {
	if def, exists := t.Definitions[tile]; exists {
		return def
	}

	// Magenta for undefined tiles
	return TileDefinition{
		Glyph: '?',
		FG:    color.RGBA{255, 0, 255, 255},
	}
}
