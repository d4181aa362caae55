package digipin

import (
	"fmt"
	"strings"
)

// Direction selects which neighbors of a cell to return.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	// Cardinal selects the four edge-adjacent neighbors N, E, S, W.
	Cardinal
	// All selects all eight surrounding neighbors, clockwise from north.
	All
)

var directionNames = map[string]Direction{
	"n": North, "north": North,
	"ne": NorthEast, "northeast": NorthEast,
	"e": East, "east": East,
	"se": SouthEast, "southeast": SouthEast,
	"s": South, "south": South,
	"sw": SouthWest, "southwest": SouthWest,
	"w": West, "west": West,
	"nw": NorthWest, "northwest": NorthWest,
	"cardinal": Cardinal,
	"all":      All,
}

// ParseDirection parses a direction token such as "north", "NE", "cardinal"
// or "all", case-insensitively. It fails with ErrInvalidDirection.
func ParseDirection(s string) (Direction, error) {
	d, ok := directionNames[strings.ToLower(s)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
	return d, nil
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case NorthEast:
		return "northeast"
	case East:
		return "east"
	case SouthEast:
		return "southeast"
	case South:
		return "south"
	case SouthWest:
		return "southwest"
	case West:
		return "west"
	case NorthWest:
		return "northwest"
	case Cardinal:
		return "cardinal"
	case All:
		return "all"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// offset is a neighbor displacement in cell units, north and east positive.
type offset struct{ dy, dx int }

var directionOffsets = [8]offset{
	North:     {1, 0},
	NorthEast: {1, 1},
	East:      {0, 1},
	SouthEast: {-1, 1},
	South:     {-1, 0},
	SouthWest: {-1, -1},
	West:      {0, -1},
	NorthWest: {1, -1},
}

// Neighbors returns the cells adjacent to c in the given direction, at c's
// precision, clockwise from north. Neighbors that would fall outside the
// domain are dropped, so cells on the domain edge have fewer than the
// nominal count; a single named direction yields zero or one code. It fails
// with ErrInvalidDirection for a direction outside the defined set.
//
// Each neighbor is produced by shifting c's center one cell width along the
// offset axes and re-encoding, so a query on a cell at the edge of its
// parent correctly returns codes under a different parent.
func Neighbors(c Code, d Direction) ([]Code, error) {
	if d < North || d > All {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDirection, d)
	}
	var offs []offset
	switch d {
	case All:
		offs = directionOffsets[:]
	case Cardinal:
		offs = []offset{directionOffsets[North], directionOffsets[East], directionOffsets[South], directionOffsets[West]}
	default:
		offs = []offset{directionOffsets[d]}
	}
	return shiftAll(c, offs), nil
}

// Ring returns the cells at exactly Chebyshev distance radius from c: the
// boundary of the (2*radius+1)² block centered on it. Results keep c's
// precision, run row by row from the north, and exclude cells outside the
// domain. It fails with ErrInvalidRadius for radius < 1.
func Ring(c Code, radius int) ([]Code, error) {
	if radius < 1 {
		return nil, fmt.Errorf("%w: ring radius %d < 1", ErrInvalidRadius, radius)
	}
	offs := make([]offset, 0, 8*radius)
	for dy := radius; dy >= -radius; dy-- {
		for dx := -radius; dx <= radius; dx++ {
			if max(abs(dy), abs(dx)) == radius {
				offs = append(offs, offset{dy, dx})
			}
		}
	}
	return shiftAll(c, offs), nil
}

// Disk returns every cell within Chebyshev distance radius of c, including
// c itself: (2*radius+1)² cells unless clipped by the domain edge. A radius
// of 0 returns just c. It fails with ErrInvalidRadius for radius < 0.
func Disk(c Code, radius int) ([]Code, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: disk radius %d < 0", ErrInvalidRadius, radius)
	}
	offs := make([]offset, 0, (2*radius+1)*(2*radius+1))
	for dy := radius; dy >= -radius; dy-- {
		for dx := -radius; dx <= radius; dx++ {
			offs = append(offs, offset{dy, dx})
		}
	}
	return shiftAll(c, offs), nil
}

// shiftAll re-encodes c's center displaced by each offset, dropping
// displacements that leave the domain and deduplicating the rest.
func shiftAll(c Code, offs []offset) []Code {
	p := c.Precision()
	latStep, lngStep, _ := CellSize(p)
	ctr := c.LatLng()
	out := make([]Code, 0, len(offs))
	seen := make(map[Code]struct{}, len(offs))
	for _, o := range offs {
		lat := ctr.Lat + float64(o.dy)*latStep
		lng := ctr.Lng + float64(o.dx)*lngStep
		if !IsValidCoordinate(lat, lng) {
			continue
		}
		n := encodeValid(lat, lng, p)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
