package ctrouting

import (
	"github.com/pkg/errors"
)

// BboxCenter returns the midpoint of the bounding box spanned by coords
// (C8) — the center of the box, not the centroid of the points.
func BboxCenter(coords []Coord) Coord {
	return bboxCenter(coords)
}

// AnchorToNearestWay scans every way in state with at least two nodes,
// projects pt onto each of its segments, and returns a WayReference for
// the closest projection found across the whole dataset (C8). The
// projection and the returned FractionalPos are both in the same
// degree-unit as distance(), since that is what RouteRef.ProportionateValuation
// later rescales against an edge's own Valuation.
func AnchorToNearestWay(state *ParsingState, pt Coord) (WayReference, error) {
	best := WayReference{}
	bestDist := -1.0
	found := false

	for _, way := range state.Ways {
		if len(way.Nodes) < 2 {
			continue
		}
		var prev Coord
		havePrev := false
		for i, nodeID := range way.Nodes {
			node, ok := findNode(state.Nodes, nodeID)
			if !ok {
				havePrev = false
				continue
			}
			coord := node.Coord()
			if havePrev {
				fraction, dist := projectOntoSegment(prev, coord, pt)
				if !found || dist <= bestDist {
					found = true
					bestDist = dist
					best = WayReference{
						WayID:         way.ID,
						SegmentIndex:  i - 1,
						FractionalPos: fraction * distance(prev, coord),
					}
				}
			}
			prev = coord
			havePrev = true
		}
	}

	if !found {
		return WayReference{}, errors.New("no way found to anchor point onto")
	}
	return best, nil
}
