package ctrouting

import (
	"sort"

	"github.com/paulmach/osm"
)

// Node is a minimal OSM node as consumed by the routing graph builder:
// an id and a position, nothing else. Tags on nodes play no role in this
// system (only way and relation tags are inspected, for platform
// classification).
type Node struct {
	ID  osm.NodeID
	Lat float64
	Lon float64
}

// Coord returns the node's position.
func (n Node) Coord() Coord {
	return Coord{Lat: n.Lat, Lon: n.Lon}
}

// findNode performs a binary search for id in nodes, which must be sorted
// by ID ascending. Returns false if no such node is present.
func findNode(nodes []Node, id osm.NodeID) (Node, bool) {
	i := sort.Search(len(nodes), func(i int) bool { return nodes[i].ID >= id })
	if i < len(nodes) && nodes[i].ID == id {
		return nodes[i], true
	}
	return Node{}, false
}
