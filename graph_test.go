package ctrouting

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/paulmach/osm"
)

// twoNodeWayState is the distilled spec's S1 scenario: one way between two
// nodes one degree of longitude apart on the equator.
func twoNodeWayState() *ParsingState {
	return &ParsingState{
		Nodes: []Node{
			{ID: 1, Lat: 0, Lon: 0},
			{ID: 2, Lat: 0, Lon: 1},
		},
		Ways: []Way{
			{ID: 1, Nodes: []osm.NodeID{1, 2}},
		},
	}
}

func TestPrintStatisticsS1(t *testing.T) {
	data := BuildRoutingData(twoNodeWayState(), false)

	if len(data.nodes) != 2 || len(data.edges) != 1 {
		t.Fatalf("expected 2 nodes and 1 edge, got %d nodes, %d edges", len(data.nodes), len(data.edges))
	}

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("can't create pipe: %v", err)
	}
	stdout := os.Stdout
	os.Stdout = w
	data.PrintStatistics()
	w.Close()
	os.Stdout = stdout

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("can't read captured stdout: %v", err)
	}

	want := "2 1 111111.1\n"
	if got := string(out); got != want {
		t.Errorf("PrintStatistics() = %q, want %q", strings.TrimSpace(got), strings.TrimSpace(want))
	}
}

// straightLineState builds a ParsingState for three ways sharing a T
// junction: way 1 runs A-B-C, way 2 runs C-D, way 3 runs C-E. Node C is
// used by all three ways and must be promoted to a graph vertex; B is
// interior to way 1 only and must not be.
func straightLineState() *ParsingState {
	nodes := []Node{
		{ID: 1, Lat: 0, Lon: 0}, // A
		{ID: 2, Lat: 0, Lon: 1}, // B
		{ID: 3, Lat: 0, Lon: 2}, // C
		{ID: 4, Lat: 1, Lon: 2}, // D
		{ID: 5, Lat: -1, Lon: 2}, // E
	}
	ways := []Way{
		{ID: 10, Nodes: []osm.NodeID{1, 2, 3}},
		{ID: 11, Nodes: []osm.NodeID{3, 4}},
		{ID: 12, Nodes: []osm.NodeID{3, 5}},
	}
	return &ParsingState{Nodes: nodes, Ways: ways}
}

func TestBuildRoutingDataPromotesJunctionsAndEndpoints(t *testing.T) {
	data := BuildRoutingData(straightLineState(), false)

	if len(data.nodes) != 4 {
		t.Fatalf("expected 4 promoted nodes (A, C, D, E), got %d", len(data.nodes))
	}
	if _, ok := findRoutingNode(data.nodes, 2); ok {
		t.Errorf("node B (id 2) should not be promoted, it is interior to a single way")
	}
	for _, id := range []osm.NodeID{1, 3, 4, 5} {
		if _, ok := findRoutingNode(data.nodes, id); !ok {
			t.Errorf("node %d should be promoted", id)
		}
	}
}

func TestBuildRoutingDataEdgeCount(t *testing.T) {
	data := BuildRoutingData(straightLineState(), false)
	if len(data.edges) != 3 {
		t.Fatalf("expected 3 edges (A-C, C-D, C-E), got %d", len(data.edges))
	}
	for _, edge := range data.edges {
		if edge.Start == noNode || edge.End == noNode {
			t.Errorf("edge %+v should have both endpoints resolved", edge)
		}
	}
}

func TestResolveWayPosInsideFirstSegment(t *testing.T) {
	data := BuildRoutingData(straightLineState(), false)
	edge, withinIdx := data.ResolveWayPos(10, 0)
	if edge == nil {
		t.Fatal("expected way 10 to resolve")
	}
	if withinIdx != 0 {
		t.Errorf("expected within-edge index 0, got %d", withinIdx)
	}
	if len(edge.Trace) != 3 {
		t.Errorf("expected the A-C edge to carry all 3 original nodes in its trace, got %d", len(edge.Trace))
	}
}

func TestResolveWayPosUnknownWay(t *testing.T) {
	data := BuildRoutingData(straightLineState(), false)
	edge, _ := data.ResolveWayPos(999, 0)
	if edge != nil {
		t.Errorf("expected unknown way id to resolve to nil edge")
	}
}

func TestWayDictionarySortedByWayID(t *testing.T) {
	data := BuildRoutingData(straightLineState(), false)
	for i := 1; i < len(data.wayDictionary); i++ {
		if data.wayDictionary[i-1].wayID >= data.wayDictionary[i].wayID {
			t.Errorf("way dictionary must be sorted ascending by way id")
		}
	}
}
