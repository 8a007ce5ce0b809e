package ctrouting

import "github.com/paulmach/osm"

// WayReference anchors a free coordinate onto a way in the dataset (C8):
// the way id, the segment index within that way's node list, and a
// fractional offset, in degree-units, measured from the start of that
// segment. It plays the role of the external Way_Reference collaborator
// named (but not defined) by the routing core.
type WayReference struct {
	WayID         osm.WayID
	SegmentIndex  int
	FractionalPos float64
}

// RouteRef anchors a point-on-graph for use as a Dijkstra origin or
// destination (C4): the RoutingEdge it falls on, the segment index relative
// to that edge's own trace, a fractional offset along that segment, and a
// human-facing label. Edge is nil when the underlying WayReference could not
// be resolved against the graph.
type RouteRef struct {
	Label           string
	Edge            *RoutingEdge
	WithinEdgeIndex int
	Pos             float64
}

// NewRouteRef resolves ref against data and wraps the result together with
// label into a RouteRef.
func NewRouteRef(data *RoutingData, ref WayReference, label string) RouteRef {
	edge, withinEdgeIndex := data.ResolveWayPos(ref.WayID, ref.SegmentIndex)
	return RouteRef{
		Label:           label,
		Edge:            edge,
		WithinEdgeIndex: withinEdgeIndex,
		Pos:             ref.FractionalPos,
	}
}

// ProportionateValuation is the distance from the edge's start to this
// anchor, measured along the edge's trace and rescaled to the edge's total
// Valuation (C4). Returns 0 when Edge is nil.
func (r RouteRef) ProportionateValuation() float64 {
	if r.Edge == nil {
		return 0
	}

	trace := r.Edge.Trace
	totalLength := 0.0
	partialLength := 0.0
	for i := 1; i < len(trace); i++ {
		if i == r.WithinEdgeIndex+1 {
			partialLength = totalLength + r.Pos
		}
		totalLength += distance(trace[i-1], trace[i])
	}

	if totalLength == 0 {
		return r.Edge.Valuation
	}
	return r.Edge.Valuation * partialLength / totalLength
}
