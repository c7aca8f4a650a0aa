package beam

import "math"

// Bracket evaluates the Macaulay singularity function <x-a>^n over a
// sample grid:
//
//	<x-a>^n = 0         if n < 0
//	        = 0         if x <= a
//	        = (x-a)^n   otherwise
//
// Zero for x <= a is the Macaulay convention that the load has not
// started yet. Negative exponents are zero by definition here: point
// forces (n=-1) and moments (n=-2) enter the results only through the
// integration recurrence, so the x == a division singularity never
// reaches the arithmetic at all.
func Bracket(x []float64, a float64, n int) []float64 {
	out := make([]float64, len(x))
	if n < 0 {
		return out
	}
	for i, xi := range x {
		if xi <= a {
			continue
		}
		out[i] = math.Pow(xi-a, float64(n))
	}
	return out
}
