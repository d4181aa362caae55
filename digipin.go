// Package digipin implements the DIGIPIN hierarchical geocoding grid used
// by India Post: a fixed 36°×36° domain (latitude 2.5–38.5, longitude
// 63.5–99.5) recursively divided into 4×4 quadrants, with each level of
// subdivision appending one symbol from a 16-character alphabet. A code of
// precision k (1–10) names one cell of the level-k partition; a precision-10
// cell is roughly 3.8m × 3.7m.
//
// The package provides three layers, all pure functions over the fixed
// domain and alphabet tables and therefore safe for concurrent use:
//
//   - the codec: Encode, Decode, Bounds and the Code value type;
//   - the neighbor engine: Neighbors, Ring and Disk, built by offsetting a
//     cell center and re-encoding so that queries transparently cross
//     higher-level quadrant boundaries;
//   - the polyfill engine: Polyfill, which covers a polygon with the codes
//     whose cell centers fall inside it, either by exhaustive grid scan or
//     by adaptive quadtree subdivision.
//
// Result sets grow as 4^precision: covering a large area at precision 9 or
// 10 can produce millions of codes. Callers filling city-sized polygons
// should prefer precisions 6–8, and use Code.Descendants to stream interior
// expansions instead of materializing them.
package digipin

import "errors"

// Domain extent in degrees. Every code ever produced lies inside this
// rectangle; coordinates outside it cannot be encoded.
const (
	LatMin = 2.5
	LatMax = 38.5
	LngMin = 63.5
	LngMax = 99.5
)

// MaxPrecision is the deepest supported subdivision level.
const MaxPrecision = 10

// gridSymbols is the spiral layout of the alphabet within one 4×4
// subdivision, rows north→south and columns west→east. The reverse mapping
// is derived from this table in init so the two can never drift apart.
var gridSymbols = [4][4]byte{
	{'F', 'C', '9', '8'},
	{'J', '3', '2', '7'},
	{'K', '4', '5', '6'},
	{'L', 'M', 'P', 'T'},
}

// symbolCell maps an alphabet byte to its cell position row*4+col, or -1
// for bytes outside the alphabet. Lowercase letters map to the same cell as
// their uppercase form.
var symbolCell [256]int8

func init() {
	for i := range symbolCell {
		symbolCell[i] = -1
	}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			s := gridSymbols[row][col]
			symbolCell[s] = int8(row*4 + col)
			if s >= 'A' && s <= 'Z' {
				symbolCell[s+'a'-'A'] = int8(row*4 + col)
			}
		}
	}
}

// domain is the full DIGIPIN rectangle, the precision-0 "cell".
var domain = Rect{MinLat: LatMin, MaxLat: LatMax, MinLng: LngMin, MaxLng: LngMax}

// Domain returns the fixed rectangle over which all codes are defined.
func Domain() Rect { return domain }

// Errors reported by this package. Each public operation validates its
// input before doing any work and fails with exactly one of these, possibly
// wrapped with detail; none of them is retryable.
var (
	ErrOutOfBounds          = errors.New("digipin: coordinate outside the DIGIPIN domain")
	ErrInvalidPrecision     = errors.New("digipin: precision must be between 1 and 10")
	ErrInvalidCodeLength    = errors.New("digipin: code length must be between 1 and 10")
	ErrInvalidCodeCharacter = errors.New("digipin: code character outside the DIGIPIN alphabet")
	ErrInvalidDirection     = errors.New("digipin: unrecognized direction")
	ErrInvalidRadius        = errors.New("digipin: invalid radius")
	ErrInvalidAlgorithm     = errors.New(`digipin: algorithm must be "grid" or "quadtree"`)
	ErrInvalidPolygon       = errors.New("digipin: polygon must be a simple closed ring without holes")
)

// IsValidCoordinate reports whether (lat, lng) lies within the DIGIPIN
// domain, edges included.
func IsValidCoordinate(lat, lng float64) bool {
	return lat >= LatMin && lat <= LatMax && lng >= LngMin && lng <= LngMax
}

// CellSize returns the extent in degrees, per axis, of one cell at the
// given precision.
func CellSize(precision int) (latDeg, lngDeg float64, err error) {
	if precision < 1 || precision > MaxPrecision {
		return 0, 0, ErrInvalidPrecision
	}
	div := float64(uint64(1) << (2 * uint(precision))) // 4^precision
	return (LatMax - LatMin) / div, (LngMax - LngMin) / div, nil
}
