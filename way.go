package ctrouting

import (
	"sort"

	"github.com/paulmach/osm"
)

// Way is an ordered sequence of OSM node ids forming a polyline, together
// with its tags. Direction, lane count and road class play no role in this
// system; only the node sequence and tags matter.
type Way struct {
	ID    osm.WayID
	Nodes []osm.NodeID
	Tags  osm.Tags
}

// Relation is an OSM relation: a tagged collection of members. Tags are used
// for platform classification; Members are walked by relationCoords in
// platform.go to collect the coordinates a platform relation is centred on.
type Relation struct {
	ID      osm.RelationID
	Members osm.Members
	Tags    osm.Tags
}

// ParsingState is the result of OSM ingestion (C7): every node and way (and
// platform-tagged relation) needed downstream by the graph builder and the
// platform classifier. Nodes are sorted by id, as required by the binary
// search in findNode (node.go).
type ParsingState struct {
	Nodes     []Node
	Ways      []Way
	Relations []Relation
}

// HasKV reports whether tags contains key=value.
func HasKV(tags osm.Tags, key, value string) bool {
	return tags.Find(key) == value
}

func sortNodesByID(nodes []Node) {
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
}
