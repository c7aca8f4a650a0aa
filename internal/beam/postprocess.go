package beam

import "math"

// postprocess finalizes the raw accumulated series, in order:
//
//  1. negate V and M so downward loads plot positive shear,
//  2. forward-fill NaN samples left by exact offset coincidences at the
//     domain boundaries, counting every repair,
//  3. clamp the last sample of both series to exactly zero, enforcing
//     the free-end condition that no shear or moment is carried past
//     the far end of the beam.
func (d *Diagram) postprocess() {
	for i := range d.V {
		d.V[i] = -d.V[i]
		d.M[i] = -d.M[i]
	}

	d.RepairedV = forwardFill(d.V)
	d.RepairedM = forwardFill(d.M)

	if last := len(d.V) - 1; last >= 0 {
		d.V[last] = 0
		d.M[last] = 0
	}
}

// forwardFill replaces each NaN sample with the previous sample's value
// and reports how many were repaired. A NaN in the first slot becomes 0.
func forwardFill(s []float64) int {
	repaired := 0
	for i := range s {
		if !math.IsNaN(s[i]) {
			continue
		}
		if i == 0 {
			s[i] = 0
		} else {
			s[i] = s[i-1]
		}
		repaired++
	}
	return repaired
}
