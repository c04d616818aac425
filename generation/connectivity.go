package generation

import (
	"github.com/zyedidia/generic/mapset"

	"dungeon-forge/components"
)

// Point is a grid coordinate
type Point struct {
	X, Y int
}

// ReachableFrom finds all walkable cells connected to (x, y) through
// orthogonal steps. The result is empty if the start is not walkable.
func ReachableFrom(mapComp *components.MapComponent, x, y int) mapset.Set[Point] {
	reachable := mapset.New[Point]()
	queue := []Point{{x, y}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if !mapComp.IsWalkable(current.X, current.Y) || reachable.Has(current) {
			continue
		}
		reachable.Put(current)

		neighbors := []Point{
			{current.X, current.Y - 1},
			{current.X + 1, current.Y},
			{current.X, current.Y + 1},
			{current.X - 1, current.Y},
		}
		for _, n := range neighbors {
			if mapComp.IsWalkable(n.X, n.Y) && !reachable.Has(n) {
				queue = append(queue, n)
			}
		}
	}

	return reachable
}

// Connected reports whether every room's center can be walked to from
// the first room's center
func (d *Dungeon) Connected() bool {
	return len(d.UnreachableRooms()) == 0
}

// UnreachableRooms returns the indices of rooms cut off from the first room
func (d *Dungeon) UnreachableRooms() []int {
	if len(d.Rooms) == 0 {
		return nil
	}

	startX, startY := d.Rooms[0].Center()
	reachable := ReachableFrom(d.Map, startX, startY)

	var orphans []int
	for i, room := range d.Rooms {
		cx, cy := room.Center()
		if !reachable.Has(Point{cx, cy}) {
			orphans = append(orphans, i)
		}
	}
	return orphans
}
