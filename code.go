package digipin

import (
	"fmt"
	"iter"
)

// Code identifies one cell of the DIGIPIN grid. It stores the quadrant
// position chosen at each subdivision level together with an explicit
// precision, so prefix relationships are structural rather than string
// slicing. The zero value is not a valid code; construct one with Encode or
// ParseCode.
//
// Codes nest: a precision-k code is the ancestor of every deeper code that
// shares its first k positions, and at any fixed precision the cells
// partition the domain exactly.
type Code struct {
	cells     [MaxPrecision]uint8 // row*4+col per level, 0..15
	precision uint8
}

// ParseCode parses a code string. Parsing is case-insensitive; the returned
// Code formats in uppercase. It fails with ErrInvalidCodeLength or
// ErrInvalidCodeCharacter.
func ParseCode(s string) (Code, error) {
	if len(s) < 1 || len(s) > MaxPrecision {
		return Code{}, fmt.Errorf("%w: %d", ErrInvalidCodeLength, len(s))
	}
	var c Code
	c.precision = uint8(len(s))
	for i := 0; i < len(s); i++ {
		cell := symbolCell[s[i]]
		if cell < 0 {
			return Code{}, fmt.Errorf("%w: %q", ErrInvalidCodeCharacter, s[i])
		}
		c.cells[i] = uint8(cell)
	}
	return c, nil
}

// IsValid reports whether s parses as a DIGIPIN code. With strict set it
// additionally requires the full precision-10 length.
func IsValid(s string, strict bool) bool {
	c, err := ParseCode(s)
	if err != nil {
		return false
	}
	return !strict || c.Precision() == MaxPrecision
}

// String returns the code in its canonical uppercase form.
func (c Code) String() string {
	buf := make([]byte, c.precision)
	for i := 0; i < int(c.precision); i++ {
		buf[i] = gridSymbols[c.cells[i]/4][c.cells[i]%4]
	}
	return string(buf)
}

// Precision returns the code length, 1 (coarsest) to 10 (finest).
func (c Code) Precision() int { return int(c.precision) }

// Parent returns the ancestor of c at the given precision. It fails with
// ErrInvalidPrecision unless 1 <= precision <= c.Precision().
func (c Code) Parent(precision int) (Code, error) {
	if precision < 1 || precision > c.Precision() {
		return Code{}, fmt.Errorf("%w: no ancestor of %q at precision %d", ErrInvalidPrecision, c, precision)
	}
	p := Code{precision: uint8(precision)}
	copy(p.cells[:precision], c.cells[:precision])
	return p, nil
}

// IsWithin reports whether c lies inside parent's cell, i.e. whether parent
// is a (not necessarily proper) prefix of c.
func (c Code) IsWithin(parent Code) bool {
	if parent.precision > c.precision {
		return false
	}
	for i := 0; i < int(parent.precision); i++ {
		if c.cells[i] != parent.cells[i] {
			return false
		}
	}
	return true
}

// child returns the code extending c by one level in the given cell
// position.
func (c Code) child(cell uint8) Code {
	c.cells[c.precision] = cell
	c.precision++
	return c
}

// Descendants returns the codes at the given precision whose cells lie
// inside c, in grid-table order. The sequence is lazy and restartable; c
// has 16^(precision-c.Precision()) descendants, so materializing the
// sequence for a coarse code at high precision can be very large (a
// precision-1 code has tens of billions of precision-10 descendants).
//
// If precision equals c.Precision the sequence yields only c itself; below
// it the sequence is empty.
func (c Code) Descendants(precision int) iter.Seq[Code] {
	return func(yield func(Code) bool) {
		if precision < c.Precision() || precision > MaxPrecision {
			return
		}
		if precision == c.Precision() {
			yield(c)
			return
		}
		d := c
		d.precision = uint8(precision)
		for {
			if !yield(d) {
				return
			}
			// Advance the trailing positions like an odometer.
			i := precision - 1
			for i >= c.Precision() {
				d.cells[i]++
				if d.cells[i] < 16 {
					break
				}
				d.cells[i] = 0
				i--
			}
			if i < c.Precision() {
				return
			}
		}
	}
}
