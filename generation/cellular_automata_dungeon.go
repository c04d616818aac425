package generation

import (
	"dungeon-forge/components"
)

// Cave generation parameters
const (
	caveWallChance    = 0.45
	DefaultCaveSteps  = 5
	caveWallSurvival  = 4 // a wall with at least this many wall neighbors stays a wall
	caveFloorCollapse = 5 // a floor with more than this many wall neighbors becomes a wall
	caveTileWall      = components.TileUnexplored
	caveTileFloor     = components.TileRoom
)

// GenerateCave creates a cave with cellular automata rules. It shares the
// generator's random source with the BSP pipeline but no state: rock is
// left unexplored and open ground is painted as room floor.
func (g *DungeonGenerator) GenerateCave(width, height, iterations int) *components.MapComponent {
	mapComp := components.NewMapComponent(width, height)

	// Initialize map with random walls
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if g.rng.Float64() < caveWallChance {
				mapComp.SetTile(x, y, caveTileWall)
			} else {
				mapComp.SetTile(x, y, caveTileFloor)
			}
		}
	}

	for i := 0; i < iterations; i++ {
		g.caveSimulationStep(mapComp)
	}

	return mapComp
}

// caveSimulationStep applies one round of the automaton rules to a copy
// of the grid and swaps it in
func (g *DungeonGenerator) caveSimulationStep(mapComp *components.MapComponent) {
	newMap := make([][]components.Tile, mapComp.Height)
	for y := range newMap {
		newMap[y] = make([]components.Tile, mapComp.Width)
		for x := range newMap[y] {
			walls := g.countAdjacentWalls(mapComp, x, y)

			if mapComp.Tiles[y][x] == caveTileWall {
				if walls >= caveWallSurvival {
					newMap[y][x] = caveTileWall
				} else {
					newMap[y][x] = caveTileFloor
				}
			} else {
				if walls > caveFloorCollapse {
					newMap[y][x] = caveTileWall
				} else {
					newMap[y][x] = caveTileFloor
				}
			}
		}
	}

	mapComp.Tiles = newMap
}

// countAdjacentWalls counts the wall tiles among the eight neighbors of a
// position. Cells past the map edge count as walls.
func (g *DungeonGenerator) countAdjacentWalls(mapComp *components.MapComponent, x, y int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			newX, newY := x+dx, y+dy

			// Count edges as walls
			if !mapComp.InBounds(newX, newY) {
				count++
				continue
			}

			if mapComp.Tiles[newY][newX] == caveTileWall {
				count++
			}
		}
	}
	return count
}
