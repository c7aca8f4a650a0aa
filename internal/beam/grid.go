package beam

import (
	"fmt"
	"math"
)

// DefaultResolution divides the span into this many steps when no
// explicit step size is given.
const DefaultResolution = 1000

// Grid is the beam sampling domain: evenly spaced stations from 0 to
// Length inclusive. The far end is always sampled exactly.
type Grid struct {
	Length float64
	Step   float64
	X      []float64
}

// NewGrid builds the sampling grid for a beam of length l. A step of 0
// selects the default resolution (l/1000). A non-positive length, a
// negative step or a step wider than the beam is a fatal configuration
// error; nothing downstream runs without a valid grid.
//
// The far end is always sampled exactly: when step does not divide l,
// one extra station at l closes the grid and the final interval comes
// out shorter than Step. The boundary clamp needs that exact last
// sample more than the grid needs uniform spacing.
func NewGrid(l, step float64) (Grid, error) {
	if l <= 0 {
		return Grid{}, fmt.Errorf("invalid beam length: L=%.3f (must be positive)", l)
	}
	if step < 0 {
		return Grid{}, fmt.Errorf("invalid step: %.6f (must be positive)", step)
	}
	if step == 0 {
		step = l / DefaultResolution
	}
	if step > l {
		return Grid{}, fmt.Errorf("step %.6f exceeds beam length %.3f", step, l)
	}

	// Rounding keeps 0.1-style steps from losing the final station to
	// float error; an overshooting count is pulled back instead.
	n := int(math.Round(l / step))
	if float64(n)*step > l*(1+1e-9) {
		n--
	}
	x := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		x[i] = math.Min(float64(i)*step, l)
	}
	if l-x[n] > step*1e-9 {
		x = append(x, l)
	} else {
		x[n] = l
	}

	return Grid{Length: l, Step: step, X: x}, nil
}
