package generation

import (
	"dungeon-forge/components"
)

// Door is an opening on a room's perimeter
type Door struct {
	X, Y     int
	IsSecret bool
}

// Tile returns the grid tile that represents the door
func (d Door) Tile() components.Tile {
	if d.IsSecret {
		return components.TileSecretDoor
	}
	return components.TileDoor
}

// Room represents a room within the dungeon. Doors are only ever appended.
type Room struct {
	X, Y, Width, Height int
	Doors               []Door
}

// Contains checks if a given point is inside the room
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Origin is the room's placement corner, used for hallway edge weights
func (r Room) Origin() (int, int) {
	return r.X, r.Y
}

// Center is the room's geometric center, used as the hallway endpoint
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// OnPerimeter reports whether (x, y) lies on the room's outermost ring
func (r Room) OnPerimeter(x, y int) bool {
	if !r.Contains(x, y) {
		return false
	}
	return x == r.X || x == r.X+r.Width-1 || y == r.Y || y == r.Y+r.Height-1
}

// createRoom samples a room strictly inside p. The position is drawn from
// the partition interior first; the size is then bounded by the space left
// between that position and the partition's far edge. p must be at least
// 3x3.
func (g *DungeonGenerator) createRoom(p Partition) Room {
	roomX := p.X + 1 + g.rng.Intn(p.Width-2)
	roomY := p.Y + 1 + g.rng.Intn(p.Height-2)

	roomWidth := 1 + g.rng.Intn(p.X+p.Width-roomX-1)
	roomHeight := 1 + g.rng.Intn(p.Y+p.Height-roomY-1)

	return Room{
		X:      roomX,
		Y:      roomY,
		Width:  roomWidth,
		Height: roomHeight,
	}
}

// paintRoom marks every cell of the room as floor, clipped to the grid
func paintRoom(mapComp *components.MapComponent, room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			mapComp.SetTile(x, y, components.TileRoom)
		}
	}
}
