package generation

import (
	"fmt"
	"log"
	"math/rand"

	"dungeon-forge/components"
	"dungeon-forge/config"
)

// DungeonGenerator handles procedural generation of dungeon layouts.
// One generator owns one random source; every phase of a run draws from it.
type DungeonGenerator struct {
	cfg  config.DungeonConfig
	rng  *rand.Rand
	seed int64
}

// Dungeon is the result of one generation run
type Dungeon struct {
	Map        *components.MapComponent
	Rooms      []Room      // Indexed by room ID
	Partitions []Partition // Terminal partitions, Partitions[i] hosts Rooms[i]
	Hallways   []Edge      // Accepted spanning tree edges
	Seed       int64
}

// NewDungeonGenerator validates cfg and creates a generator seeded from cfg.Seed
func NewDungeonGenerator(cfg config.DungeonConfig) (*DungeonGenerator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new dungeon generator: %w", err)
	}
	g := &DungeonGenerator{cfg: cfg}
	g.SetSeed(cfg.Seed)
	return g, nil
}

// SetSeed allows setting a specific seed for reproducible dungeons
func (g *DungeonGenerator) SetSeed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

// Seed returns the seed the random source was last reset with
func (g *DungeonGenerator) Seed() int64 {
	return g.seed
}

// Config returns the generator's configuration
func (g *DungeonGenerator) Config() config.DungeonConfig {
	return g.cfg
}

// Generate runs the full pipeline: partition, rooms, spanning tree,
// hallways, doors. The grid is painted in that order, so later phases
// overwrite earlier tiles.
func (g *DungeonGenerator) Generate() (*Dungeon, error) {
	mapComp := components.NewMapComponent(g.cfg.Width, g.cfg.Height)

	root := Partition{X: 0, Y: 0, Width: g.cfg.Width, Height: g.cfg.Height}
	leaves := g.SplitPartitions(root)
	if len(leaves) == 0 {
		return nil, fmt.Errorf("generate: no terminal partitions for %dx%d grid", g.cfg.Width, g.cfg.Height)
	}

	// One room per terminal partition
	rooms := make([]Room, 0, len(leaves))
	for _, leaf := range leaves {
		room := g.createRoom(leaf)
		paintRoom(mapComp, room)
		rooms = append(rooms, room)
	}

	// Connect rooms with a minimum spanning set of hallways
	hallways := SpanningTree(rooms)
	for _, edge := range hallways {
		g.carveHallway(mapComp, rooms, edge)
	}

	for i := range rooms {
		g.placeDoors(mapComp, &rooms[i])
	}

	if g.cfg.Verbose {
		log.Printf("Generated dungeon: seed=%d rooms=%d hallways=%d", g.seed, len(rooms), len(hallways))
	}

	return &Dungeon{
		Map:        mapComp,
		Rooms:      rooms,
		Partitions: leaves,
		Hallways:   hallways,
		Seed:       g.seed,
	}, nil
}

// RoomAt returns the index of the room containing (x, y), or -1
func (d *Dungeon) RoomAt(x, y int) int {
	for i := range d.Rooms {
		if d.Rooms[i].Contains(x, y) {
			return i
		}
	}
	return -1
}

// DoorCount returns the total number of doors over all rooms
func (d *Dungeon) DoorCount() int {
	n := 0
	for _, room := range d.Rooms {
		n += len(room.Doors)
	}
	return n
}
