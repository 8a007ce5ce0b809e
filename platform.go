package ctrouting

import "github.com/paulmach/osm"

// IsPlatform reports whether tags identify a public-transport platform
// (C9): either railway=platform, or public_transport=platform on anything
// that is not also tagged bus=yes (bus stops are tagged this way too, and
// are out of scope here).
func IsPlatform(tags osm.Tags) bool {
	if HasKV(tags, "railway", "platform") {
		return true
	}
	if HasKV(tags, "public_transport", "platform") && !HasKV(tags, "bus", "yes") {
		return true
	}
	return false
}

// PlatformLabel derives a human-facing label from tags (C9): local_ref if
// present, else ref, else name, else "-".
func PlatformLabel(tags osm.Tags) string {
	if v := tags.Find("local_ref"); v != "" {
		return v
	}
	if v := tags.Find("ref"); v != "" {
		return v
	}
	if v := tags.Find("name"); v != "" {
		return v
	}
	return "-"
}

// Platform is one recognized platform entity (C9), reduced to the two
// things C6's driver needs: a label and a point to anchor onto the graph.
type Platform struct {
	Label string
	Point Coord
}

// EnumeratePlatforms walks every way and platform relation in state and
// returns one Platform per recognized entity, positioned at the bounding-box
// center of its own geometry (C8's BboxCenter).
func EnumeratePlatforms(state *ParsingState) []Platform {
	var platforms []Platform

	for _, way := range state.Ways {
		if !IsPlatform(way.Tags) {
			continue
		}
		coords := wayCoords(state, way)
		if len(coords) == 0 {
			continue
		}
		platforms = append(platforms, Platform{Label: PlatformLabel(way.Tags), Point: BboxCenter(coords)})
	}

	for _, relation := range state.Relations {
		if !IsPlatform(relation.Tags) {
			continue
		}
		coords := relationCoords(state, relation)
		if len(coords) == 0 {
			continue
		}
		platforms = append(platforms, Platform{Label: PlatformLabel(relation.Tags), Point: BboxCenter(coords)})
	}

	return platforms
}

// wayCoords resolves the coordinates of every node of way that is present
// in state, skipping unresolved ids (same soft-failure contract as the
// graph builder).
func wayCoords(state *ParsingState, way Way) []Coord {
	coords := make([]Coord, 0, len(way.Nodes))
	for _, id := range way.Nodes {
		if node, ok := findNode(state.Nodes, id); ok {
			coords = append(coords, node.Coord())
		}
	}
	return coords
}

// relationCoords resolves the coordinates of every node and way member of
// relation that is present in state.
func relationCoords(state *ParsingState, relation Relation) []Coord {
	var coords []Coord
	for _, member := range relation.Members {
		switch member.Type {
		case osm.TypeNode:
			if node, ok := findNode(state.Nodes, osm.NodeID(member.Ref)); ok {
				coords = append(coords, node.Coord())
			}
		case osm.TypeWay:
			for _, way := range state.Ways {
				if way.ID == osm.WayID(member.Ref) {
					coords = append(coords, wayCoords(state, way)...)
					break
				}
			}
		}
	}
	return coords
}
