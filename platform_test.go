package ctrouting

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestIsPlatform(t *testing.T) {
	cases := []struct {
		tags osm.Tags
		want bool
	}{
		{osm.Tags{{Key: "railway", Value: "platform"}}, true},
		{osm.Tags{{Key: "public_transport", Value: "platform"}}, true},
		{osm.Tags{{Key: "public_transport", Value: "platform"}, {Key: "bus", Value: "yes"}}, false},
		{osm.Tags{{Key: "highway", Value: "residential"}}, false},
	}
	for _, c := range cases {
		if got := IsPlatform(c.tags); got != c.want {
			t.Errorf("IsPlatform(%v) = %v, want %v", c.tags, got, c.want)
		}
	}
}

func TestPlatformLabelPriority(t *testing.T) {
	cases := []struct {
		tags osm.Tags
		want string
	}{
		{osm.Tags{{Key: "local_ref", Value: "3"}, {Key: "ref", Value: "A"}, {Key: "name", Value: "Main"}}, "3"},
		{osm.Tags{{Key: "ref", Value: "A"}, {Key: "name", Value: "Main"}}, "A"},
		{osm.Tags{{Key: "name", Value: "Main"}}, "Main"},
		{osm.Tags{}, "-"},
	}
	for _, c := range cases {
		if got := PlatformLabel(c.tags); got != c.want {
			t.Errorf("PlatformLabel(%v) = %q, want %q", c.tags, got, c.want)
		}
	}
}

func TestEnumeratePlatformsFindsWayPlatform(t *testing.T) {
	state := &ParsingState{
		Nodes: []Node{{ID: 1, Lat: 0, Lon: 0}, {ID: 2, Lat: 0, Lon: 2}},
		Ways: []Way{
			{ID: 1, Nodes: []osm.NodeID{1, 2}, Tags: osm.Tags{{Key: "railway", Value: "platform"}, {Key: "name", Value: "Platform 1"}}},
		},
	}
	platforms := EnumeratePlatforms(state)
	if len(platforms) != 1 {
		t.Fatalf("expected 1 platform, got %d", len(platforms))
	}
	if platforms[0].Label != "Platform 1" {
		t.Errorf("expected label 'Platform 1', got %q", platforms[0].Label)
	}
	want := Coord{Lat: 0, Lon: 1}
	if platforms[0].Point != want {
		t.Errorf("expected bbox center %v, got %v", want, platforms[0].Point)
	}
}

func TestEnumeratePlatformsSkipsNonPlatformWays(t *testing.T) {
	state := &ParsingState{
		Nodes: []Node{{ID: 1, Lat: 0, Lon: 0}, {ID: 2, Lat: 0, Lon: 2}},
		Ways: []Way{
			{ID: 1, Nodes: []osm.NodeID{1, 2}, Tags: osm.Tags{{Key: "highway", Value: "residential"}}},
		},
	}
	if got := EnumeratePlatforms(state); len(got) != 0 {
		t.Errorf("expected 0 platforms, got %d", len(got))
	}
}
