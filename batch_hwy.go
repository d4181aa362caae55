package digipin

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseBatchMinMax computes the minimum and maximum values in a slice using
// SIMD lanes. Batch encoding uses it to range-check a whole coordinate
// slice against the domain in one pass, and CodesBound uses it to reduce
// per-code bounds.
func BaseBatchMinMax[T hwy.Floats](data []T) (minVal, maxVal T) {
	if len(data) == 0 {
		return 0, 0
	}

	// Broadcast the first value rather than starting from ±MaxFloat so a
	// slice of equal values reduces exactly.
	initial := data[0]
	vMin := hwy.Set(initial)
	vMax := hwy.Set(initial)

	hwy.ProcessWithTail[T](len(data),
		func(offset int) {
			v := hwy.Load(data[offset:])
			vMin = hwy.Min(vMin, v)
			vMax = hwy.Max(vMax, v)
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			v := hwy.MaskLoad(mask, data[offset:])

			// MaskLoad zero-pads the dead lanes; substitute the running
			// min/max there so the padding cannot win the reduction.
			vMinSafe := hwy.IfThenElse(mask, v, vMin)
			vMaxSafe := hwy.IfThenElse(mask, v, vMax)

			vMin = hwy.Min(vMin, vMinSafe)
			vMax = hwy.Max(vMax, vMaxSafe)
		},
	)

	return hwy.ReduceMin(vMin), hwy.ReduceMax(vMax)
}
