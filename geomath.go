package ctrouting

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// metresPerDegree converts a planar degree-distance (as returned by
// distance below) to an approximate metre distance. It is a presentation
// concern only — print_statistics and the CLI's per-pair output apply it,
// nothing in the core graph or search does.
const metresPerDegree = 111111.1

// MetresPerDegree is the same planar-degree-to-metres factor PrintStatistics
// uses internally, exported so callers outside this package (the CLI's
// per-pair output) can apply it to a Route.Value themselves.
const MetresPerDegree = metresPerDegree

// sentinelDistance marks a Route whose value has not yet been found, or is
// unreachable. 180.0 degrees is larger than any planar approximation this
// system can produce between two points on Earth, which makes it a safe
// "infinity" without needing a separate reached/unreached flag.
const sentinelDistance = 180.0

// Coord is a (lat, lon) position in decimal degrees.
type Coord struct {
	Lat float64
	Lon float64
}

// String pretty-prints a Coord.
func (c Coord) String() string {
	return fmt.Sprintf("Lat: %f | Lon: %f", c.Lat, c.Lon)
}

// distance is the planar approximation of great-circle distance between two
// coordinates (C1): longitude is scaled by the cosine of the mid-latitude so
// that a degree of longitude and a degree of latitude are comparable near
// the pair's latitude. The result is in degrees of latitude, not metres.
func distance(a, b Coord) float64 {
	midLat := (a.Lat + b.Lat) / 2.0 * math.Pi / 180.0
	lonScale := 1.0 / math.Cos(midLat)
	dLat := b.Lat - a.Lat
	dLon := (b.Lon - a.Lon) * lonScale
	return math.Sqrt(dLat*dLat + dLon*dLon)
}

// traceLength sums distance() over consecutive points of a trace.
func traceLength(trace []Coord) float64 {
	total := 0.0
	for i := 1; i < len(trace); i++ {
		total += distance(trace[i-1], trace[i])
	}
	return total
}

// pointOnSegmentByFraction returns the point a given fraction of the way
// from p to q, linearly interpolating lat/lon independently. Used by the
// anchoring helpers in anchor.go to locate the closest point on a way
// segment to a query coordinate.
func pointOnSegmentByFraction(p, q Coord, fraction float64) Coord {
	return Coord{
		Lat: (1-fraction)*p.Lat + fraction*q.Lat,
		Lon: (1-fraction)*p.Lon + fraction*q.Lon,
	}
}

// projectOntoSegment returns the fraction in [0, 1] along p->q closest to
// pt, and the planar distance (C1) from pt to that projected point. The
// projection is done in the same Lon/Lat plane distance() itself uses, via
// a local equirectangular approximation scaled by the segment's own
// mid-latitude, so that the returned fraction is consistent with distance
// computed along the segment by the caller.
func projectOntoSegment(p, q, pt Coord) (fraction float64, dist float64) {
	midLat := (p.Lat + q.Lat) / 2.0 * math.Pi / 180.0
	lonScale := 1.0 / math.Cos(midLat)

	px, py := p.Lon*lonScale, p.Lat
	qx, qy := q.Lon*lonScale, q.Lat
	ptx, pty := pt.Lon*lonScale, pt.Lat

	dx, dy := qx-px, qy-py
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return 0, distance(p, pt)
	}

	fraction = ((ptx-px)*dx + (pty-py)*dy) / lenSq
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}

	proj := pointOnSegmentByFraction(p, q, fraction)
	return fraction, distance(proj, pt)
}

// bboxCenter returns the midpoint of the bounding box spanned by coords
// (C8's Geometry.bbox_center()) — the center of the box, not the centroid
// of the points.
func bboxCenter(coords []Coord) Coord {
	if len(coords) == 0 {
		return Coord{}
	}
	bound := orb.Bound{
		Min: orb.Point{coords[0].Lon, coords[0].Lat},
		Max: orb.Point{coords[0].Lon, coords[0].Lat},
	}
	for _, c := range coords[1:] {
		bound = bound.Extend(orb.Point{c.Lon, c.Lat})
	}
	center := bound.Center()
	return Coord{Lat: center.Lat(), Lon: center.Lon()}
}
