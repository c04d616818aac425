package generation

import (
	"bytes"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"dungeon-forge/components"
	"dungeon-forge/config"
)

func TestNewDungeonGenerator_RejectsInvalidConfig(t *testing.T) {
	_, err := NewDungeonGenerator(config.DungeonConfig{Width: 100, Height: 100, MinPartitionSize: 2})
	if err == nil {
		t.Fatalf("expected an error for MinPartitionSize 2")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestGenerate_Invariants(t *testing.T) {
	sizes := []struct{ width, height, minSize int }{
		{100, 100, 20},
		{80, 40, 10},
		{64, 64, 5},
		{30, 120, 12},
	}
	for _, size := range sizes {
		for seed := int64(1); seed <= 10; seed++ {
			g := newTestGenerator(t, size.width, size.height, size.minSize, seed)
			dungeon, err := g.Generate()
			if err != nil {
				t.Fatalf("%+v seed %d: %v", size, seed, err)
			}
			checkDungeon(t, dungeon)
		}
	}
}

func checkDungeon(t *testing.T, d *Dungeon) {
	t.Helper()

	if len(d.Rooms) == 0 || len(d.Rooms) != len(d.Partitions) {
		t.Fatalf("seed %d: %d rooms for %d partitions", d.Seed, len(d.Rooms), len(d.Partitions))
	}
	if len(d.Hallways) != len(d.Rooms)-1 {
		t.Fatalf("seed %d: %d hallways for %d rooms", d.Seed, len(d.Hallways), len(d.Rooms))
	}

	for i, room := range d.Rooms {
		p := d.Partitions[i]
		if room.X <= p.X || room.Y <= p.Y || room.X+room.Width >= p.X+p.Width || room.Y+room.Height >= p.Y+p.Height {
			t.Fatalf("seed %d: room %d %+v escapes partition %+v", d.Seed, i, room, p)
		}
		if room.X+room.Width > d.Map.Width || room.Y+room.Height > d.Map.Height {
			t.Fatalf("seed %d: room %d outside grid", d.Seed, i)
		}

		// Later phases only ever write walkable tiles over rooms
		for y := room.Y; y < room.Y+room.Height; y++ {
			for x := room.X; x < room.X+room.Width; x++ {
				if !d.Map.IsWalkable(x, y) {
					t.Fatalf("seed %d: room %d cell (%d,%d) is unexplored", d.Seed, i, x, y)
				}
			}
		}

		for _, door := range room.Doors {
			if !room.OnPerimeter(door.X, door.Y) {
				t.Fatalf("seed %d: room %d door (%d,%d) off perimeter", d.Seed, i, door.X, door.Y)
			}
		}
	}

	// The grid holds the last door written at each coordinate
	last := map[Point]Door{}
	for _, room := range d.Rooms {
		for _, door := range room.Doors {
			last[Point{door.X, door.Y}] = door
		}
	}
	for pt, door := range last {
		if got := d.Map.GetTile(pt.X, pt.Y); got != door.Tile() {
			t.Fatalf("seed %d: door at (%d,%d) is %v on the grid, want %v", d.Seed, pt.X, pt.Y, got, door.Tile())
		}
	}
	if got := d.Map.Count(components.TileDoor) + d.Map.Count(components.TileSecretDoor); got != len(last) {
		t.Fatalf("seed %d: %d door tiles for %d door positions", d.Seed, got, len(last))
	}

	if orphans := d.UnreachableRooms(); len(orphans) != 0 {
		t.Fatalf("seed %d: rooms %v unreachable", d.Seed, orphans)
	}
}

func TestGenerate_SameSeedSameDungeon(t *testing.T) {
	render := func(seed int64) string {
		g := newTestGenerator(t, 100, 100, 20, seed)
		d, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		var buf bytes.Buffer
		if err := WriteText(&buf, d.Map); err != nil {
			t.Fatalf("WriteText: %v", err)
		}
		return buf.String()
	}

	if render(1234) != render(1234) {
		t.Fatalf("same seed produced different dungeons")
	}
}

func TestGenerate_SetSeedRestartsSequence(t *testing.T) {
	g := newTestGenerator(t, 60, 60, 8, 5)
	first, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	g.SetSeed(5)
	second, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(first.Rooms) != len(second.Rooms) {
		t.Fatalf("room counts differ after reseed: %d vs %d", len(first.Rooms), len(second.Rooms))
	}
	for i := range first.Rooms {
		a, b := first.Rooms[i], second.Rooms[i]
		if a.X != b.X || a.Y != b.Y || a.Width != b.Width || a.Height != b.Height || len(a.Doors) != len(b.Doors) {
			t.Fatalf("room %d differs after reseed: %+v vs %+v", i, a, b)
		}
	}
	if g.Seed() != 5 || second.Seed != 5 {
		t.Fatalf("seed not recorded")
	}
}

func TestGenerate_SmallestGrid(t *testing.T) {
	g := newTestGenerator(t, 3, 3, 3, 42)
	d, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(d.Rooms) != 1 || len(d.Hallways) != 0 {
		t.Fatalf("expected one room and no hallways, got %d rooms %d hallways", len(d.Rooms), len(d.Hallways))
	}
	room := d.Rooms[0]
	if room.X != 1 || room.Y != 1 || room.Width != 1 || room.Height != 1 || len(room.Doors) != 0 {
		t.Fatalf("unexpected room %+v", room)
	}
	if d.Map.GetTile(1, 1) != components.TileRoom || d.Map.Count(components.TileRoom) != 1 {
		t.Fatalf("expected a single room tile at (1,1)")
	}
	if !d.Connected() {
		t.Fatalf("single room dungeon should be connected")
	}
}

func TestDungeon_RoomAt(t *testing.T) {
	g := newTestGenerator(t, 100, 100, 20, 8)
	d, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for i, room := range d.Rooms {
		cx, cy := room.Center()
		if got := d.RoomAt(cx, cy); got != i {
			t.Fatalf("RoomAt center of room %d = %d", i, got)
		}
	}
	// Partition corners are never inside a room
	p := d.Partitions[0]
	if got := d.RoomAt(p.X, p.Y); got != -1 {
		t.Fatalf("RoomAt partition corner = %d, want -1", got)
	}
}

func TestDungeon_DoorCount(t *testing.T) {
	d := &Dungeon{Rooms: []Room{
		{Doors: []Door{{X: 1}, {X: 2}}},
		{},
		{Doors: []Door{{X: 3, IsSecret: true}}},
	}}
	if got := d.DoorCount(); got != 3 {
		t.Fatalf("DoorCount = %d", got)
	}
}

func TestGenerate_VerboseLogsPartitions(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	g, err := NewDungeonGenerator(config.DungeonConfig{
		Width:            50,
		Height:           50,
		MinPartitionSize: 10,
		Seed:             3,
		Verbose:          true,
	})
	if err != nil {
		t.Fatalf("NewDungeonGenerator: %v", err)
	}
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Processing partition: x=0 y=0 width=50 height=50") {
		t.Fatalf("root partition not logged:\n%s", out)
	}
	if !strings.Contains(out, "Generated dungeon: seed=3") {
		t.Fatalf("summary not logged:\n%s", out)
	}
}
