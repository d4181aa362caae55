package digipin

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// preparedPolygon is a validated polygon with its bounding box precomputed,
// so the containment predicate is built once per polyfill call and reused
// for every cell test.
type preparedPolygon struct {
	poly  orb.Polygon
	ring  orb.Ring
	bound Rect
}

// preparePolygon validates and prepares a polygon for repeated containment
// tests. The polygon must consist of a single ring with at least three
// distinct vertices and no self-intersections; an open ring is closed
// automatically. Anything else fails with ErrInvalidPolygon.
func preparePolygon(p orb.Polygon) (*preparedPolygon, error) {
	if len(p) == 0 || len(p[0]) == 0 {
		return nil, fmt.Errorf("%w: empty polygon", ErrInvalidPolygon)
	}
	if len(p) > 1 {
		return nil, fmt.Errorf("%w: %d interior rings", ErrInvalidPolygon, len(p)-1)
	}

	// Drop consecutive duplicate vertices and close the ring.
	ring := make(orb.Ring, 0, len(p[0])+1)
	for _, v := range p[0] {
		if len(ring) == 0 || ring[len(ring)-1] != v {
			ring = append(ring, v)
		}
	}
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return nil, fmt.Errorf("%w: fewer than 3 distinct vertices", ErrInvalidPolygon)
	}
	ring = append(ring, ring[0])
	if planar.Area(ring) == 0 {
		return nil, fmt.Errorf("%w: ring encloses no area", ErrInvalidPolygon)
	}

	// Non-adjacent edges must not meet; adjacent edges share exactly their
	// common vertex.
	n := len(ring) - 1
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent {
				continue
			}
			if segmentsIntersect(ring[i], ring[i+1], ring[j], ring[j+1]) {
				return nil, fmt.Errorf("%w: edges %d and %d intersect", ErrInvalidPolygon, i, j)
			}
		}
	}

	poly := orb.Polygon{ring}
	return &preparedPolygon{poly: poly, ring: ring, bound: RectFromBound(ring.Bound())}, nil
}

// contains reports whether the point lies inside the polygon. The bounding
// box check makes the common all-outside case cheap.
func (pp *preparedPolygon) contains(ll LatLng) bool {
	if !pp.bound.ContainsLatLng(ll) {
		return false
	}
	return planar.PolygonContains(pp.poly, ll.Point())
}

// relation classifies a rectangle against the polygon for the quadtree
// filler.
type relation int

const (
	// relOutside: the rectangle shares no point with the polygon interior.
	relOutside relation = iota
	// relInside: the rectangle lies entirely inside the polygon.
	relInside
	// relBoundary: the polygon boundary passes through the rectangle.
	relBoundary
)

func (pp *preparedPolygon) relate(r Rect) relation {
	if !r.Intersects(pp.bound) {
		return relOutside
	}
	// A polygon vertex inside the rectangle puts the boundary inside it,
	// even when no edge crosses the rectangle's sides (polygon wholly
	// contained in one cell).
	for _, v := range pp.ring {
		if v.Y() >= r.MinLat && v.Y() <= r.MaxLat && v.X() >= r.MinLng && v.X() <= r.MaxLng {
			return relBoundary
		}
	}
	corners := [4]orb.Point{
		{r.MinLng, r.MinLat},
		{r.MaxLng, r.MinLat},
		{r.MaxLng, r.MaxLat},
		{r.MinLng, r.MaxLat},
	}
	for i := 0; i < len(pp.ring)-1; i++ {
		a, b := pp.ring[i], pp.ring[i+1]
		for k := 0; k < 4; k++ {
			if segmentsIntersect(a, b, corners[k], corners[(k+1)%4]) {
				return relBoundary
			}
		}
	}
	// No boundary contact: the whole rectangle is on one side, and its
	// center tells us which.
	if pp.contains(r.Center()) {
		return relInside
	}
	return relOutside
}

// segmentsIntersect reports whether segments pq and rs share any point,
// endpoints and collinear overlap included.
func segmentsIntersect(p, q, r, s orb.Point) bool {
	d1 := cross(r, s, p)
	d2 := cross(r, s, q)
	d3 := cross(p, q, r)
	d4 := cross(p, q, s)
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(r, s, p):
		return true
	case d2 == 0 && onSegment(r, s, q):
		return true
	case d3 == 0 && onSegment(p, q, r):
		return true
	case d4 == 0 && onSegment(p, q, s):
		return true
	}
	return false
}

// cross returns the z component of (b-a) × (c-a); its sign gives the
// orientation of c relative to the directed segment ab.
func cross(a, b, c orb.Point) float64 {
	return (b.X()-a.X())*(c.Y()-a.Y()) - (b.Y()-a.Y())*(c.X()-a.X())
}

// onSegment reports whether c, already known to be collinear with ab, lies
// within ab's extent.
func onSegment(a, b, c orb.Point) bool {
	return min(a.X(), b.X()) <= c.X() && c.X() <= max(a.X(), b.X()) &&
		min(a.Y(), b.Y()) <= c.Y() && c.Y() <= max(a.Y(), b.Y())
}
