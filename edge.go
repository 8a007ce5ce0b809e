package ctrouting

// RoutingEdge is a segment of a single OSM way between two consecutive graph
// vertices of that way (C2/C3). Start and End are indices into
// RoutingData.nodes; Trace is the ordered Coords of the resolved OSM nodes
// from the edge's first to last nd inclusive (length >= 2 when both
// endpoints resolve). Valuation is the sum of planar distances (C1) between
// consecutive Trace points.
//
// Nodes and edges live in flat slices on RoutingData and refer to each other
// by index rather than pointer. RouteRef.Edge and Route.Edges, however, are
// pointers into RoutingData.edges, and FindRoutes compares them by identity,
// so that slice is not reallocated once RouteRefs have been built from it.
type RoutingEdge struct {
	Start     int
	End       int
	Trace     []Coord
	Valuation float64
}

const noNode = -1
