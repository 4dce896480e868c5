package baseflow

import (
	"fmt"
	"math"

	"github.com/uyouii/hydrograph-algorithms/common"
)

// Local is the local minimum graphical method from the HYSEP program
// (Sloto & Crouse, 1996). Baseflow is linearly interpolated between local
// turning points of the hydrograph; outside the first and last turning
// point it falls back to the LH first-pass estimate. area is the drainage
// area in km^2, zero or negative means unknown.
func Local(q, bLH []float64, area float64) ([]float64, error) {
	idx := turningPoints(q, hysepWindow(area))
	if len(idx) < MinTurningPoints {
		return nil, fmt.Errorf("%w: found %v turning points, need at least %v, try a different separation method",
			common.ErrorInsufficientData, len(idx), MinTurningPoints)
	}

	b := interpolateTurningPoints(q, idx)

	first, last := idx[0], idx[len(idx)-1]
	copy(b[:first], bLH[:first])
	copy(b[last+1:], bLH[last+1:])
	return b, nil
}

// hysepWindow picks the smoothing window from the drainage area. The
// duration of surface runoff is N = A^0.2 days with A in square miles
// (Linsley and others, 1982), the separation interval is the odd integer
// in [3,11] nearest to 2N.
func hysepWindow(area float64) int {
	if area <= 0 || math.IsNaN(area) {
		return DefaultHysepWindow
	}
	n := math.Pow(SquareMilesPerKm2*area, 0.2)
	w := math.Ceil(2 * n)
	if math.Mod(w, 2) == 0 {
		w = w - 1
	}
	if w < MinHysepWindow {
		return MinHysepWindow
	}
	if w > MaxHysepWindow {
		return MaxHysepWindow
	}
	return int(w)
}

// turningPoints finds the interior indices whose value is the minimum of
// the centered window around them.
func turningPoints(q []float64, window int) []int {
	half := (window - 1) / 2
	res := []int{}
	for i := half; i < len(q)-half; i++ {
		if q[i] == minOf(q[i-half:i+half+1]) {
			res = append(res, i)
		}
	}
	return res
}

// interpolateTurningPoints connects consecutive turning points with
// straight lines, clamped to the hydrograph. Outside [idx[0], idx[last]]
// the result stays zero, the caller fills those ranges.
func interpolateTurningPoints(q []float64, idx []int) []float64 {
	b := make([]float64, len(q))

	seg := 0
	for i := idx[0]; i <= idx[len(idx)-1]; i++ {
		if i == idx[seg+1] {
			seg++
			b[i] = q[i]
		} else {
			lo, hi := idx[seg], idx[seg+1]
			b[i] = q[lo] + (q[hi]-q[lo])/float64(hi-lo)*float64(i-lo)
		}
		b[i] = clampStep(b[i], q[i])
	}
	return b
}
