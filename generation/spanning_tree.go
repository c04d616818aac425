package generation

import (
	"cmp"
	"math"
	"slices"

	"github.com/spakin/disjoint"
)

// Edge joins two rooms, referenced by their index in the room slice
type Edge struct {
	A, B   int
	Weight float64
}

// BuildEdges returns one edge per unordered room pair, in generation order.
// The weight is the distance between the rooms' origins, not their centers.
func BuildEdges(rooms []Room) []Edge {
	edges := make([]Edge, 0, len(rooms)*(len(rooms)-1)/2)
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			x1, y1 := rooms[i].Origin()
			x2, y2 := rooms[j].Origin()
			edges = append(edges, Edge{
				A:      i,
				B:      j,
				Weight: math.Hypot(float64(x1-x2), float64(y1-y2)),
			})
		}
	}
	return edges
}

// SpanningTree selects a minimum spanning tree over the complete room
// graph. Edges are taken in ascending weight, ties in generation order,
// and accepted only when they join two separate components.
func SpanningTree(rooms []Room) []Edge {
	if len(rooms) < 2 {
		return nil
	}

	edges := BuildEdges(rooms)
	slices.SortStableFunc(edges, func(a, b Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	components := make([]*disjoint.Element, len(rooms))
	for i := range components {
		components[i] = disjoint.NewElement()
	}

	tree := make([]Edge, 0, len(rooms)-1)
	for _, edge := range edges {
		if components[edge.A].Find() == components[edge.B].Find() {
			continue // Already connected
		}
		tree = append(tree, edge)
		disjoint.Union(components[edge.A], components[edge.B])

		if len(tree) == len(rooms)-1 {
			break
		}
	}

	return tree
}
