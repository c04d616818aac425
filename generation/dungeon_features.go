package generation

import (
	"dungeon-forge/components"
	"dungeon-forge/config"
)

// carveHallway joins two room centers with an L-shaped hallway: a
// horizontal run on the first room's center row, then a vertical run on
// the second room's center column. Whatever was on the path is overwritten.
func (g *DungeonGenerator) carveHallway(mapComp *components.MapComponent, rooms []Room, edge Edge) {
	x1, y1 := rooms[edge.A].Center()
	x2, y2 := rooms[edge.B].Center()

	g.createHorizontalCorridor(mapComp, x1, x2, y1)
	g.createVerticalCorridor(mapComp, y1, y2, x2)
}

// createHorizontalCorridor creates a horizontal corridor from x1 to x2 at y
func (g *DungeonGenerator) createHorizontalCorridor(mapComp *components.MapComponent, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		mapComp.SetTile(x, y, components.TileHallway)
	}
}

// createVerticalCorridor creates a vertical corridor from y1 to y2 at x
func (g *DungeonGenerator) createVerticalCorridor(mapComp *components.MapComponent, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		mapComp.SetTile(x, y, components.TileHallway)
	}
}

// Wall sides in the order doors cycle through them
const (
	wallNorth = iota
	wallSouth
	wallWest
	wallEast
)

// secretDoorOdds is the 1-in-N chance that a door is secret
const secretDoorOdds = 5

// placeDoors appends (width/3 + height/3) * {1,2} doors to the room,
// cycling north, south, west, east, and paints each onto the grid.
func (g *DungeonGenerator) placeDoors(mapComp *components.MapComponent, room *Room) {
	multiplier := 1 + g.rng.Intn(2)
	numDoors := (room.Width/3 + room.Height/3) * multiplier

	for i := 0; i < numDoors; i++ {
		isSecret := g.rng.Intn(secretDoorOdds) == 0

		var doorX, doorY int
		switch i % 4 {
		case wallNorth:
			doorX = room.X + g.doorOffset(room.Width)
			doorY = room.Y
		case wallSouth:
			doorX = room.X + g.doorOffset(room.Width)
			doorY = room.Y + room.Height - 1
		case wallWest:
			doorX = room.X
			doorY = room.Y + g.doorOffset(room.Height)
		case wallEast:
			doorX = room.X + room.Width - 1
			doorY = room.Y + g.doorOffset(room.Height)
		}

		doorX = clampCoord(doorX, mapComp.Width)
		doorY = clampCoord(doorY, mapComp.Height)

		door := Door{X: doorX, Y: doorY, IsSecret: isSecret}
		room.Doors = append(room.Doors, door)
		mapComp.SetTile(doorX, doorY, door.Tile())
	}
}

// doorOffset picks a position along a wall of the given length
func (g *DungeonGenerator) doorOffset(wallLength int) int {
	if wallLength <= 0 {
		return 0
	}
	if g.cfg.DoorOffset == config.DoorOffsetProportional {
		return g.rng.Intn(wallLength)
	}
	// Narrow range {1, 2}, wrapped onto short walls
	return (1 + g.rng.Intn(2)) % wallLength
}

// clampCoord limits v to [0, dimension-2]
func clampCoord(v, dimension int) int {
	return max(0, min(v, dimension-2))
}
