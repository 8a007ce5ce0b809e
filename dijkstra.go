package ctrouting

import "container/heap"

// Route is one shortest-path result: the RouteRefs it connects, the edge
// chain of the shortest path found (best-effort — see the path
// reconstruction design note), and its Value in degree-units. Value ==
// sentinelDistance means unreached.
type Route struct {
	Start RouteRef
	End   RouteRef
	Edges []*RoutingEdge
	Value float64
}

// RouteTree is the result of one Dijkstra run: one Route per destination,
// in the same order as the destinations slice passed to FindRoutes.
type RouteTree struct {
	Routes []Route
}

// openNode is a frontier entry: a RoutingNode index reached (tentatively)
// via viaEdge from predecessor, at the given value.
type openNode struct {
	node        int
	predecessor int
	viaEdge     *RoutingEdge
	value       float64
}

// openHeap is a container/heap min-heap of openNode ordered by value.
type openHeap []openNode

func (h openHeap) Len() int            { return len(h) }
func (h openHeap) Less(i, j int) bool  { return h[i].value < h[j].value }
func (h openHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(openNode)) }
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// closedNode is a finalised Dijkstra node: the shortest value found to it,
// and enough of the predecessor chain to reconstruct the path.
type closedNode struct {
	predecessor int
	viaEdge     *RoutingEdge
	value       float64
}

// reconstructPath walks the closed-node chain back from node to a seed
// (predecessor == noNode) and returns the edges traversed, in forward
// order.
func reconstructPath(closed map[int]closedNode, node int) []*RoutingEdge {
	var edges []*RoutingEdge
	cur := node
	for {
		cn, ok := closed[cur]
		if !ok {
			break
		}
		if cn.viaEdge != nil {
			edges = append(edges, cn.viaEdge)
		}
		if cn.predecessor == noNode {
			break
		}
		cur = cn.predecessor
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return edges
}

// FindRoutes runs a single-source Dijkstra search from origin to every
// RouteRef in destinations (C5). Destinations anchored interior to an edge
// are resolved correctly by the closing-edge evaluator below, which fires
// only once both endpoints of their edge have been finalised.
func FindRoutes(data *RoutingData, origin RouteRef, destinations []RouteRef) RouteTree {
	routes := make([]Route, len(destinations))
	for i, dest := range destinations {
		if dest.Edge == origin.Edge && dest.Edge != nil && dest.WithinEdgeIndex == origin.WithinEdgeIndex {
			routes[i] = Route{Start: origin, End: dest, Value: absFloat(dest.Pos - origin.Pos)}
		} else {
			routes[i] = Route{Start: origin, End: dest, Value: sentinelDistance}
		}
	}

	if origin.Edge == nil {
		return RouteTree{Routes: routes}
	}

	closed := make(map[int]closedNode)
	frontier := &openHeap{}
	heap.Init(frontier)

	startVal := origin.ProportionateValuation()
	endVal := origin.Edge.Valuation - startVal
	if origin.Edge.Start != noNode {
		heap.Push(frontier, openNode{node: origin.Edge.Start, predecessor: noNode, viaEdge: origin.Edge, value: startVal})
	}
	if origin.Edge.End != noNode {
		heap.Push(frontier, openNode{node: origin.Edge.End, predecessor: noNode, viaEdge: origin.Edge, value: endVal})
	}

	for frontier.Len() > 0 {
		current := heap.Pop(frontier).(openNode)
		if _, ok := closed[current.node]; ok {
			continue
		}
		closed[current.node] = closedNode{predecessor: current.predecessor, viaEdge: current.viaEdge, value: current.value}

		for _, edgeSlot := range data.nodes[current.node].Edges {
			edge := &data.edges[edgeSlot]

			if edge.Start == current.node {
				other := edge.End
				if cn, ok := closed[other]; !ok {
					heap.Push(frontier, openNode{node: other, predecessor: current.node, viaEdge: edge, value: current.value + edge.Valuation})
				} else {
					evalClosingEdge(data, closed, edge, destinations, origin, current.node, current.value, other, cn.value, routes)
				}
			}
			if edge.End == current.node {
				other := edge.Start
				if cn, ok := closed[other]; !ok {
					heap.Push(frontier, openNode{node: other, predecessor: current.node, viaEdge: edge, value: current.value + edge.Valuation})
				} else {
					evalClosingEdge(data, closed, edge, destinations, origin, other, cn.value, current.node, current.value, routes)
				}
			}
		}
	}

	return RouteTree{Routes: routes}
}

// evalClosingEdge handles an edge both of whose endpoints have just been
// finalised (a "closing edge"): any destination anchored interior to it can
// now be evaluated, since the shorter approach might come from either end.
// startNode/startValue and endNode/endValue are the edge's Start/End node
// and their closed values, regardless of which side current was extracted
// from.
func evalClosingEdge(data *RoutingData, closed map[int]closedNode, edge *RoutingEdge, destinations []RouteRef, origin RouteRef, startNode int, startValue float64, endNode int, endValue float64, routes []Route) {
	for i, dest := range destinations {
		if dest.Edge != edge || routes[i].Value != sentinelDistance {
			continue
		}

		p := dest.ProportionateValuation()
		viaStart := startValue + p
		viaEnd := endValue + edge.Valuation - p

		route := Route{Start: origin, End: dest}
		if viaStart <= viaEnd {
			route.Value = viaStart
			route.Edges = append(reconstructPath(closed, startNode), edge)
		} else {
			route.Value = viaEnd
			route.Edges = append(reconstructPath(closed, endNode), edge)
		}
		routes[i] = route
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
