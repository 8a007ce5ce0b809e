package main

import (
	"flag"
	"fmt"
	"os"

	ctrouting "github.com/drolbr/changing-trains-routing"
	"github.com/pkg/errors"
)

var (
	osmFileName   = flag.String("file", "my_network.osm.pbf", "Filename of OSM file to read (.osm/.xml or .pbf)")
	verbose       = flag.Bool("verbose", true, "Print progress while loading and building the graph")
	anchorsOutput = flag.String("anchors", "", "If set, write resolved platform anchors as GeoJSON to this path")
)

func main() {
	flag.Parse()

	parser := ctrouting.NewParser(
		ctrouting.WithFilename(*osmFileName),
		ctrouting.WithVerbose(*verbose),
		ctrouting.WithAnchorsOutput(*anchorsOutput),
	)

	state, data, err := parser.BuildRoutingData()
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "can't build routing data"))
		os.Exit(1)
	}
	data.PrintStatistics()

	platforms := ctrouting.EnumeratePlatforms(state)
	refs := make([]ctrouting.RouteRef, 0, len(platforms))
	for _, platform := range platforms {
		wayRef, err := ctrouting.AnchorToNearestWay(state, platform.Point)
		if err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrapf(err, "can't anchor platform %q", platform.Label))
			continue
		}
		refs = append(refs, ctrouting.NewRouteRef(data, wayRef, platform.Label))
	}

	if *anchorsOutput != "" {
		if err := writeAnchors(refs, *anchorsOutput); err != nil {
			fmt.Fprintln(os.Stderr, errors.Wrap(err, "can't export anchors"))
		}
	}

	for _, origin := range refs {
		tree := ctrouting.FindRoutes(data, origin, refs)
		for j, route := range tree.Routes {
			fmt.Printf("%f\t%s\t%s\n", route.Value*ctrouting.MetresPerDegree, origin.Label, refs[j].Label)
		}
	}
}

func writeAnchors(refs []ctrouting.RouteRef, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "can't create anchors file")
	}
	defer f.Close()
	return ctrouting.ExportAnchorsGeoJSON(refs, f)
}
