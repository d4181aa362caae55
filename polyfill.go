package digipin

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// Algorithm selects the polyfill strategy.
type Algorithm string

const (
	// AlgorithmGrid scans every cell in the polygon's bounding box and
	// tests each center. Cost grows with the covered area.
	AlgorithmGrid Algorithm = "grid"
	// AlgorithmQuadtree recursively subdivides from precision 1, pruning
	// subtrees wholly outside the polygon and bulk-emitting subtrees wholly
	// inside, so only boundary cells pay a geometric test. Cost grows with
	// the polygon perimeter instead of its area.
	AlgorithmQuadtree Algorithm = "quadtree"
)

// PolyfillOptions configures Polyfill.
type PolyfillOptions struct {
	Algorithm Algorithm
}

// NewPolyfillOptions returns the default options: the quadtree algorithm.
func NewPolyfillOptions() PolyfillOptions {
	return PolyfillOptions{Algorithm: AlgorithmQuadtree}
}

// Polyfill returns the precision-p codes whose cell centers lie inside the
// polygon (x=longitude, y=latitude). A cell merely overlapping the polygon
// is not included, so both algorithms produce the same set. The polygon
// must be a single simple ring: holes and self-intersections fail with
// ErrInvalidPolygon. Passing nil opts selects the defaults.
//
// At high precision over a large polygon the result can be enormous; see
// the package documentation before filling at precision 9 or 10.
func Polyfill(polygon orb.Polygon, precision int, opts *PolyfillOptions) ([]Code, error) {
	if precision < 1 || precision > MaxPrecision {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrecision, precision)
	}
	if opts == nil {
		def := NewPolyfillOptions()
		opts = &def
	}
	if opts.Algorithm != AlgorithmGrid && opts.Algorithm != AlgorithmQuadtree {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidAlgorithm, opts.Algorithm)
	}
	pp, err := preparePolygon(polygon)
	if err != nil {
		return nil, err
	}
	if opts.Algorithm == AlgorithmGrid {
		return gridFill(pp, precision), nil
	}
	return quadtreeFill(pp, precision), nil
}

// PolygonFromLatLngs builds an orb.Polygon from a (lat, lng) vertex list,
// closing the ring if the caller left it open.
func PolygonFromLatLngs(pts []LatLng) orb.Polygon {
	ring := make(orb.Ring, 0, len(pts)+1)
	for _, p := range pts {
		ring = append(ring, p.Point())
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return orb.Polygon{ring}
}

// gridFill enumerates every lattice-aligned cell center within the
// polygon's bounding box (clipped to the domain) and keeps the contained
// ones.
func gridFill(pp *preparedPolygon, precision int) []Code {
	if !pp.bound.Intersects(domain) {
		return nil
	}
	latStep, lngStep, _ := CellSize(precision)
	n := 1 << (2 * uint(precision)) // cells per axis

	i0 := clampIndex(int(math.Floor((max(pp.bound.MinLat, LatMin)-LatMin)/latStep)), n)
	i1 := clampIndex(int(math.Floor((min(pp.bound.MaxLat, LatMax)-LatMin)/latStep)), n)
	j0 := clampIndex(int(math.Floor((max(pp.bound.MinLng, LngMin)-LngMin)/lngStep)), n)
	j1 := clampIndex(int(math.Floor((min(pp.bound.MaxLng, LngMax)-LngMin)/lngStep)), n)

	var out []Code
	for i := i1; i >= i0; i-- {
		lat := LatMin + (float64(i)+0.5)*latStep
		for j := j0; j <= j1; j++ {
			lng := LngMin + (float64(j)+0.5)*lngStep
			if pp.contains(LatLng{Lat: lat, Lng: lng}) {
				out = append(out, encodeValid(lat, lng, precision))
			}
		}
	}
	return out
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

// quadtreeFill recursively subdivides the domain. Subtrees wholly outside
// the polygon are pruned, subtrees wholly inside are expanded through the
// descendant sequence with no further geometric tests, and only cells the
// polygon boundary passes through descend to a per-center test.
func quadtreeFill(pp *preparedPolygon, precision int) []Code {
	var out []Code
	var visit func(r Rect, prefix Code)
	visit = func(r Rect, prefix Code) {
		switch pp.relate(r) {
		case relOutside:
			return
		case relInside:
			for d := range prefix.Descendants(precision) {
				out = append(out, d)
			}
		case relBoundary:
			if prefix.Precision() == precision {
				if pp.contains(r.Center()) {
					out = append(out, prefix)
				}
				return
			}
			for cell := uint8(0); cell < 16; cell++ {
				visit(childRect(r, cell), prefix.child(cell))
			}
		}
	}
	for cell := uint8(0); cell < 16; cell++ {
		visit(childRect(domain, cell), Code{}.child(cell))
	}
	return out
}

// CodesBound returns the aggregate bounding rectangle of a code set,
// regardless of which operation produced it. An empty set yields the zero
// Rect.
func CodesBound(codes []Code) Rect {
	if len(codes) == 0 {
		return Rect{}
	}
	minLats := make([]float64, len(codes))
	maxLats := make([]float64, len(codes))
	minLngs := make([]float64, len(codes))
	maxLngs := make([]float64, len(codes))
	for i, c := range codes {
		b := c.Bounds()
		minLats[i], maxLats[i] = b.MinLat, b.MaxLat
		minLngs[i], maxLngs[i] = b.MinLng, b.MaxLng
	}
	minLat, _ := BaseBatchMinMax(minLats)
	_, maxLat := BaseBatchMinMax(maxLats)
	minLng, _ := BaseBatchMinMax(minLngs)
	_, maxLng := BaseBatchMinMax(maxLngs)
	return Rect{MinLat: minLat, MaxLat: maxLat, MinLng: minLng, MaxLng: maxLng}
}
