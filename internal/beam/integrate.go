package beam

import (
	"github.com/alexiusacademia/gosmd/internal/macaulay"
)

// Diagram holds the shear and moment series computed over a grid. V and
// M are co-indexed with Grid.X and are not mutated after Integrate
// returns them.
type Diagram struct {
	Grid Grid
	V    []float64 // shear force at each station
	M    []float64 // bending moment at each station

	// NaN samples repaired by the post-processing forward-fill. A high
	// count signals an upstream parsing or evaluation problem rather
	// than the numerical edge artifact the repair is meant for.
	RepairedV int
	RepairedM int
}

// Integrate derives V(x) and M(x) from the parsed load terms by
// integrating each term's singularity function once and twice.
//
// A load q<x-a>^n integrates to q<x-a>^(n+1)/(n+1) for shear and to
// q<x-a>^(n+2)/((n+1)(n+2)) for moment. Denominators that would drop to
// zero or below are clamped to 1; that single clamp is what folds point
// forces (n=-1) into shear steps and point moments (n=-2) into moment
// steps with no per-load-type branching.
//
// Terms accumulate negatively: a load written with positive magnitude
// acts downward and reduces internal shear. The post-processing sign
// flip then restores the diagram convention where downward loads plot
// positive shear left to right.
func Integrate(terms []macaulay.LoadTerm, g Grid) *Diagram {
	d := &Diagram{
		Grid: g,
		V:    make([]float64, len(g.X)),
		M:    make([]float64, len(g.X)),
	}

	for _, t := range terms {
		vExp := t.Exponent + 1
		vDen := float64(max(1, vExp))
		bv := Bracket(g.X, t.Offset, vExp)
		for i := range d.V {
			d.V[i] -= t.Magnitude / vDen * bv[i]
		}

		mExp := t.Exponent + 2
		mDen := vDen * float64(max(1, mExp))
		bm := Bracket(g.X, t.Offset, mExp)
		for i := range d.M {
			d.M[i] -= t.Magnitude / mDen * bm[i]
		}
	}

	d.postprocess()
	return d
}
