package generation

import (
	"log"
)

// aspectRatioLimit is the ratio beyond which the longer side is always cut
const aspectRatioLimit = 1.25

// Partition is an axis-aligned rectangle of the grid, either split further
// or used to host exactly one room
type Partition struct {
	X, Y, Width, Height int
}

// Area returns the number of cells covered by the partition
func (p Partition) Area() int {
	return p.Width * p.Height
}

// SplitPartitions divides root with a first-in-first-out worklist until
// every partition is too small to halve. The terminal partitions are
// returned in the order they leave the worklist and exactly tile root.
func (g *DungeonGenerator) SplitPartitions(root Partition) []Partition {
	minSize := g.cfg.MinPartitionSize

	var leaves []Partition
	queue := []Partition{root}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if g.cfg.Verbose {
			log.Printf("Processing partition: x=%d y=%d width=%d height=%d",
				current.X, current.Y, current.Width, current.Height)
		}

		if current.Width/2 >= minSize || current.Height/2 >= minSize {
			first, second := g.splitPartition(current)
			queue = append(queue, first, second)

			if g.cfg.Verbose {
				log.Printf("Split into: %+v and %+v", first, second)
			}
			continue
		}

		leaves = append(leaves, current)
	}

	return leaves
}

// splitPartition cuts p in two along one axis. Both children keep every
// side at least MinPartitionSize long as long as p itself is splittable.
func (g *DungeonGenerator) splitPartition(p Partition) (Partition, Partition) {
	minSize := g.cfg.MinPartitionSize

	// horizontal cuts across the height, producing a top and a bottom child
	horizontal := g.rng.Intn(2) == 0

	// Only axes that can hold two minimum sized halves are candidates
	if p.Height < 2*minSize {
		horizontal = false
	} else if p.Width < 2*minSize {
		horizontal = true
	}

	// Elongated partitions always have their longer side cut
	if p.Width > p.Height && float64(p.Width)/float64(p.Height) >= aspectRatioLimit {
		horizontal = false
	} else if p.Height > p.Width && float64(p.Height)/float64(p.Width) >= aspectRatioLimit {
		horizontal = true
	}

	length := p.Width
	if horizontal {
		length = p.Height
	}

	upper := length - minSize
	if upper <= minSize {
		upper = minSize + 1
	}

	split := g.rng.Intn(upper)
	if split <= minSize {
		split = minSize
	}

	if horizontal {
		return Partition{X: p.X, Y: p.Y, Width: p.Width, Height: split},
			Partition{X: p.X, Y: p.Y + split, Width: p.Width, Height: p.Height - split}
	}
	return Partition{X: p.X, Y: p.Y, Width: split, Height: p.Height},
		Partition{X: p.X + split, Y: p.Y, Width: p.Width - split, Height: p.Height}
}
