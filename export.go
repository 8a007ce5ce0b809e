package ctrouting

import (
	"io"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// anchorCoord recovers the resolved (lat, lon) of a RouteRef by walking to
// its within-edge position along the edge's trace. Returns ok=false for a
// RouteRef with a nil Edge.
func anchorCoord(r RouteRef) (Coord, bool) {
	if r.Edge == nil {
		return Coord{}, false
	}
	trace := r.Edge.Trace
	if r.WithinEdgeIndex+1 >= len(trace) {
		return trace[len(trace)-1], true
	}
	p, q := trace[r.WithinEdgeIndex], trace[r.WithinEdgeIndex+1]
	segLen := distance(p, q)
	if segLen == 0 {
		return p, true
	}
	fraction := r.Pos / segLen
	return pointOnSegmentByFraction(p, q, fraction), true
}

// ExportAnchorsGeoJSON writes one GeoJSON Point feature per resolved
// RouteRef in refs to w (C10), with "label" and "edge_valuation"
// properties. RouteRefs with a nil Edge are skipped, matching the
// teacher's PrepareGeoJSONPoint/PrepareGeoJSONLinestring diagnostic
// converters generalized to a FeatureCollection of anchors.
func ExportAnchorsGeoJSON(refs []RouteRef, w io.Writer) error {
	fc := geojson.NewFeatureCollection()
	for _, ref := range refs {
		coord, ok := anchorCoord(ref)
		if !ok {
			continue
		}
		feature := geojson.NewPointFeature([]float64{coord.Lon, coord.Lat})
		feature.SetProperty("label", ref.Label)
		feature.SetProperty("edge_valuation", ref.Edge.Valuation)
		fc.AddFeature(feature)
	}

	b, err := fc.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "can't marshal anchors to geojson")
	}
	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "can't write anchors geojson")
	}
	return nil
}
