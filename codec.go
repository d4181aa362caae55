package digipin

import (
	"fmt"
	"math"
)

// childRect narrows r to the quadrant named by cell (row*4+col, rows
// north→south, columns west→east). Encode, Decode and Bounds all narrow
// through this one routine so they are exact inverses by construction.
func childRect(r Rect, cell uint8) Rect {
	latDiv := (r.MaxLat - r.MinLat) / 4
	lngDiv := (r.MaxLng - r.MinLng) / 4
	row := float64(cell / 4)
	col := float64(cell % 4)
	minLat := r.MinLat + latDiv*(3-row)
	minLng := r.MinLng + lngDiv*col
	return Rect{MinLat: minLat, MaxLat: minLat + latDiv, MinLng: minLng, MaxLng: minLng + lngDiv}
}

// cellAt returns the quadrant of r containing (lat, lng). A point exactly
// on a dividing line belongs to the quadrant north of a horizontal divider
// and east of a vertical one; on r's own top or right edge there is no such
// quadrant, so the index clamps back to the adjacent interior one.
func cellAt(r Rect, lat, lng float64) uint8 {
	latDiv := (r.MaxLat - r.MinLat) / 4
	lngDiv := (r.MaxLng - r.MinLng) / 4
	i := clampQuadrant(int(math.Floor((lat - r.MinLat) / latDiv)))
	j := clampQuadrant(int(math.Floor((lng - r.MinLng) / lngDiv)))
	row := 3 - i
	return uint8(row*4 + j)
}

func clampQuadrant(i int) int {
	if i < 0 {
		return 0
	}
	if i > 3 {
		return 3
	}
	return i
}

// Encode returns the precision-length code of the cell containing
// (lat, lng). It fails with ErrOutOfBounds for coordinates outside the
// domain and ErrInvalidPrecision for precision outside [1, 10].
func Encode(lat, lng float64, precision int) (Code, error) {
	if precision < 1 || precision > MaxPrecision {
		return Code{}, fmt.Errorf("%w: %d", ErrInvalidPrecision, precision)
	}
	if !IsValidCoordinate(lat, lng) {
		return Code{}, fmt.Errorf("%w: (%v, %v)", ErrOutOfBounds, lat, lng)
	}
	return encodeValid(lat, lng, precision), nil
}

// encodeValid is Encode without input validation, for callers that have
// already range-checked (batch prevalidation, neighbor offsets).
func encodeValid(lat, lng float64, precision int) Code {
	var c Code
	c.precision = uint8(precision)
	r := domain
	for i := 0; i < precision; i++ {
		cell := cellAt(r, lat, lng)
		c.cells[i] = cell
		r = childRect(r, cell)
	}
	return c
}

// Decode parses a code and returns the center of its cell. The center
// always lies strictly inside the cell's own bounds.
func Decode(code string) (LatLng, error) {
	c, err := ParseCode(code)
	if err != nil {
		return LatLng{}, err
	}
	return c.LatLng(), nil
}

// Bounds parses a code and returns its cell rectangle.
func Bounds(code string) (Rect, error) {
	c, err := ParseCode(code)
	if err != nil {
		return Rect{}, err
	}
	return c.Bounds(), nil
}

// LatLng returns the center of c's cell.
func (c Code) LatLng() LatLng { return c.Bounds().Center() }

// Bounds returns c's cell rectangle.
func (c Code) Bounds() Rect {
	r := domain
	for i := 0; i < int(c.precision); i++ {
		r = childRect(r, c.cells[i])
	}
	return r
}
