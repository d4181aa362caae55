package digipin

import "fmt"

// BatchEncode encodes many coordinates at once, preserving input order.
// lats and lngs are parallel slices. The whole batch is range-checked
// against the domain with one SIMD min/max pass plus a NaN sweep before any
// encoding; when that passes, the per-item range validation is skipped. On
// failure it reports the first offending item and returns no partial
// results.
func BatchEncode(lats, lngs []float64, precision int) ([]Code, error) {
	if precision < 1 || precision > MaxPrecision {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPrecision, precision)
	}
	if len(lats) != len(lngs) {
		return nil, fmt.Errorf("digipin: mismatched batch lengths %d and %d", len(lats), len(lngs))
	}
	if len(lats) == 0 {
		return []Code{}, nil
	}

	latLo, latHi := BaseBatchMinMax(lats)
	lngLo, lngHi := BaseBatchMinMax(lngs)
	ok := latLo >= LatMin && latHi <= LatMax && lngLo >= LngMin && lngHi <= LngMax
	if ok {
		// Min/max lane semantics for unordered compares are target-defined,
		// so a NaN can be washed out of the reduction entirely rather than
		// propagated. Sweep for NaNs explicitly instead of trusting the
		// reduced values to carry them.
		for i := range lats {
			if lats[i] != lats[i] || lngs[i] != lngs[i] {
				ok = false
				break
			}
		}
	}
	if !ok {
		for i := range lats {
			if !IsValidCoordinate(lats[i], lngs[i]) {
				return nil, fmt.Errorf("%w: item %d (%v, %v)", ErrOutOfBounds, i, lats[i], lngs[i])
			}
		}
	}

	out := make([]Code, len(lats))
	for i := range lats {
		out[i] = encodeValid(lats[i], lngs[i], precision)
	}
	return out, nil
}

// BatchDecode decodes many code strings at once, preserving input order. On
// failure it reports the first invalid code and returns no partial results.
func BatchDecode(codes []string) ([]LatLng, error) {
	out := make([]LatLng, len(codes))
	for i, s := range codes {
		c, err := ParseCode(s)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = c.LatLng()
	}
	return out, nil
}
