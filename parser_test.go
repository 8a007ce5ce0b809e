package ctrouting

import (
	"strings"
	"testing"
)

func TestNewParserAppliesOptions(t *testing.T) {
	parser := NewParser(
		WithFilename("network.osm.pbf"),
		WithVerbose(true),
		WithAnchorsOutput("anchors.geojson"),
	)

	if parser.filename != "network.osm.pbf" {
		t.Errorf("expected filename to be set, got %q", parser.filename)
	}
	if !parser.verbose {
		t.Errorf("expected verbose to be true")
	}
	if parser.anchorsOutput != "anchors.geojson" {
		t.Errorf("expected anchorsOutput to be set, got %q", parser.anchorsOutput)
	}
}

func TestParserStringContainsFilename(t *testing.T) {
	parser := NewParser(WithFilename("network.osm.pbf"))
	if !strings.Contains(parser.String(), "network.osm.pbf") {
		t.Errorf("expected parser.String() to mention the configured filename")
	}
}
