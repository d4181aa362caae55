package digipin

import (
	"fmt"

	"github.com/paulmach/orb"
)

// LatLng is a point in degrees. The zero value is outside the DIGIPIN
// domain.
type LatLng struct {
	Lat float64
	Lng float64
}

// LatLngFromPoint converts an orb.Point (x=longitude, y=latitude) to a
// LatLng.
func LatLngFromPoint(p orb.Point) LatLng {
	return LatLng{Lat: p.Y(), Lng: p.X()}
}

// Point returns ll as an orb.Point (x=longitude, y=latitude).
func (ll LatLng) Point() orb.Point { return orb.Point{ll.Lng, ll.Lat} }

func (ll LatLng) String() string { return fmt.Sprintf("[%.6f, %.6f]", ll.Lat, ll.Lng) }

// Rect is an axis-aligned latitude/longitude rectangle. Cells, the domain
// and polyfill bounds are all Rects.
type Rect struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// RectFromBound converts an orb.Bound to a Rect.
func RectFromBound(b orb.Bound) Rect {
	return Rect{MinLat: b.Min.Y(), MaxLat: b.Max.Y(), MinLng: b.Min.X(), MaxLng: b.Max.X()}
}

// Bound returns r as an orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.MinLng, r.MinLat},
		Max: orb.Point{r.MaxLng, r.MaxLat},
	}
}

// Center returns the midpoint of r.
func (r Rect) Center() LatLng {
	return LatLng{Lat: (r.MinLat + r.MaxLat) / 2, Lng: (r.MinLng + r.MaxLng) / 2}
}

// ContainsLatLng reports whether ll lies within r, edges included.
func (r Rect) ContainsLatLng(ll LatLng) bool {
	return ll.Lat >= r.MinLat && ll.Lat <= r.MaxLat &&
		ll.Lng >= r.MinLng && ll.Lng <= r.MaxLng
}

// Intersects reports whether r and o share any point.
func (r Rect) Intersects(o Rect) bool {
	return r.MinLat <= o.MaxLat && o.MinLat <= r.MaxLat &&
		r.MinLng <= o.MaxLng && o.MinLng <= r.MaxLng
}

// Union returns the smallest Rect covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinLat: min(r.MinLat, o.MinLat),
		MaxLat: max(r.MaxLat, o.MaxLat),
		MinLng: min(r.MinLng, o.MinLng),
		MaxLng: max(r.MaxLng, o.MaxLng),
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[Lo%v, Hi%v]", LatLng{r.MinLat, r.MinLng}, LatLng{r.MaxLat, r.MaxLng})
}
