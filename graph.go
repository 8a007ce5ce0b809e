package ctrouting

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/paulmach/osm"
)

// RoutingNode is a graph vertex: an OSM node id plus the indices of every
// RoutingEdge incident to it. Nodes are held in RoutingData.nodes sorted by
// ID to support binary lookup (mirrors the teacher's use of a sorted node
// slice and std::lower_bound in the original algorithm this was distilled
// from).
type RoutingNode struct {
	ID    osm.NodeID
	Edges []int
}

// wayDictEntry is one (segmentStart, edgeSlot) pair for a way.
type wayDictEntry struct {
	segmentStart int
	edgeSlot     int
}

// wayDictionaryRow is the per-way row of the way dictionary (C2/C3):
// entries sorted by segmentStart ascending.
type wayDictionaryRow struct {
	wayID   osm.WayID
	entries []wayDictEntry
}

// RoutingData is the read-only graph built once from a ParsingState (C2). It
// is safe for concurrent shortest-path searches once built, since FindRoutes
// never mutates it.
type RoutingData struct {
	nodes []RoutingNode
	edges []RoutingEdge

	wayDictionary []wayDictionaryRow
}

// findRoutingNode binary-searches nodes (sorted by ID) for id.
func findRoutingNode(nodes []RoutingNode, id osm.NodeID) (int, bool) {
	i := sort.Search(len(nodes), func(i int) bool { return nodes[i].ID >= id })
	if i < len(nodes) && nodes[i].ID == id {
		return i, true
	}
	return 0, false
}

// findWayDictionaryRow binary-searches the way dictionary (sorted by way
// id) for wayID.
func findWayDictionaryRow(rows []wayDictionaryRow, wayID osm.WayID) (int, bool) {
	i := sort.Search(len(rows), func(i int) bool { return rows[i].wayID >= wayID })
	if i < len(rows) && rows[i].wayID == wayID {
		return i, true
	}
	return 0, false
}

// BuildRoutingData constructs the routing graph from a ParsingState (C2).
// It tallies node usage across all ways, promotes junction/endpoint nodes to
// graph vertices, and splits every way into edges between consecutive
// promoted nodes.
func BuildRoutingData(state *ParsingState, verbose bool) *RoutingData {
	var st time.Time
	if verbose {
		fmt.Printf("Building routing graph...")
		st = time.Now()
	}

	useCount := make(map[osm.NodeID]int)
	for _, way := range state.Ways {
		if len(way.Nodes) == 0 {
			continue
		}
		useCount[way.Nodes[0]] += 2
		for i := 1; i < len(way.Nodes)-1; i++ {
			useCount[way.Nodes[i]]++
		}
		useCount[way.Nodes[len(way.Nodes)-1]] += 2
	}

	promotedIDs := make([]osm.NodeID, 0, len(useCount))
	for id, count := range useCount {
		if count >= 2 {
			promotedIDs = append(promotedIDs, id)
		}
	}
	sort.Slice(promotedIDs, func(i, j int) bool { return promotedIDs[i] < promotedIDs[j] })

	data := &RoutingData{
		nodes: make([]RoutingNode, len(promotedIDs)),
	}
	for i, id := range promotedIDs {
		data.nodes[i] = RoutingNode{ID: id}
	}

	data.wayDictionary = make([]wayDictionaryRow, 0, len(state.Ways))
	for _, way := range state.Ways {
		row := wayDictionaryRow{wayID: way.ID}
		segmentStart := 0
		for i := 1; i < len(way.Nodes); i++ {
			if useCount[way.Nodes[i]] >= 2 {
				row.entries = append(row.entries, wayDictEntry{segmentStart: segmentStart, edgeSlot: len(data.edges)})
				data.edges = append(data.edges, edgeFromWay(data, state, way, segmentStart, i))
				segmentStart = i
			}
		}
		if segmentStart < len(way.Nodes)-1 {
			row.entries = append(row.entries, wayDictEntry{segmentStart: segmentStart, edgeSlot: len(data.edges)})
			data.edges = append(data.edges, edgeFromWay(data, state, way, segmentStart, len(way.Nodes)-1))
		}
		data.wayDictionary = append(data.wayDictionary, row)
	}
	sort.Slice(data.wayDictionary, func(i, j int) bool { return data.wayDictionary[i].wayID < data.wayDictionary[j].wayID })

	for slot, edge := range data.edges {
		if edge.Start != noNode {
			data.nodes[edge.Start].Edges = append(data.nodes[edge.Start].Edges, slot)
		}
		if edge.End != noNode {
			data.nodes[edge.End].Edges = append(data.nodes[edge.End].Edges, slot)
		}
	}

	if verbose {
		fmt.Printf("Done in %v\n\tNodes: %d, Edges: %d\n", time.Since(st), len(data.nodes), len(data.edges))
	}
	return data
}

// edgeFromWay builds the RoutingEdge spanning way.Nodes[startIdx:endIdx+1].
func edgeFromWay(data *RoutingData, state *ParsingState, way Way, startIdx, endIdx int) RoutingEdge {
	edge := RoutingEdge{Start: noNode, End: noNode}

	if i, ok := findRoutingNode(data.nodes, way.Nodes[startIdx]); ok {
		edge.Start = i
	}
	if i, ok := findRoutingNode(data.nodes, way.Nodes[endIdx]); ok {
		edge.End = i
	}

	var last Coord
	for i := startIdx; i <= endIdx; i++ {
		node, ok := findNode(state.Nodes, way.Nodes[i])
		if !ok {
			continue
		}
		coord := node.Coord()
		if len(edge.Trace) > 0 {
			edge.Valuation += distance(last, coord)
		}
		edge.Trace = append(edge.Trace, coord)
		last = coord
	}

	return edge
}

// ResolveWayPos is the way-position resolver (C3): given a way id and a
// 0-based index into that way's original node list, returns the edge
// containing that position and the segment index relative to the edge's own
// trace. Returns (nil, 0) if the way id is unknown.
func (data *RoutingData) ResolveWayPos(wayID osm.WayID, index int) (*RoutingEdge, int) {
	rowIdx, ok := findWayDictionaryRow(data.wayDictionary, wayID)
	if !ok {
		return nil, 0
	}
	entries := data.wayDictionary[rowIdx].entries
	chosen := 0
	for chosen+1 < len(entries) && entries[chosen+1].segmentStart <= index {
		chosen++
	}
	entry := entries[chosen]
	return &data.edges[entry.edgeSlot], index - entry.segmentStart
}

// PrintStatistics emits "<#nodes> <#edges> <total valuation in metres>" to
// stdout, matching the original program's side channel.
func (data *RoutingData) PrintStatistics() {
	total := 0.0
	for _, edge := range data.edges {
		total += edge.Valuation
	}
	fmt.Printf("%d %d %s\n", len(data.nodes), len(data.edges), strconv.FormatFloat(total*metresPerDegree, 'g', -1, 64))
}
