package beam

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gosmd/internal/macaulay"
)

func mustGrid(t *testing.T, l, step float64) Grid {
	t.Helper()
	g, err := NewGrid(l, step)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// Uniform load of 10 over the whole beam: V(x) = 10x and M(x) = 5x²,
// with both clamped to exactly zero at the far end.
func TestIntegrateUniformLoad(t *testing.T) {
	g := mustGrid(t, 10, 0.1)
	d := Integrate([]macaulay.LoadTerm{{Magnitude: 10, Offset: 0, Exponent: 0}}, g)

	last := len(g.X) - 1
	for i, x := range g.X {
		if i == last {
			continue
		}
		if wantV := 10 * x; math.Abs(d.V[i]-wantV) > 1e-9 {
			t.Fatalf("V(%v) = %v, want %v", x, d.V[i], wantV)
		}
		if wantM := 5 * x * x; math.Abs(d.M[i]-wantM) > 1e-9 {
			t.Fatalf("M(%v) = %v, want %v", x, d.M[i], wantM)
		}
	}
	if d.V[last] != 0 || d.M[last] != 0 {
		t.Fatalf("far end not clamped: V=%v M=%v", d.V[last], d.M[last])
	}
}

// A uniform load starting mid-span contributes nothing before its
// offset and q(x-a) after it.
func TestIntegrateOffsetUniformLoad(t *testing.T) {
	g := mustGrid(t, 10, 0.1)
	d := Integrate([]macaulay.LoadTerm{{Magnitude: 4, Offset: 3, Exponent: 0}}, g)

	last := len(g.X) - 1
	for i, x := range g.X {
		if i == last {
			continue
		}
		want := 0.0
		if x > 3 {
			want = 4 * (x - 3)
		}
		if math.Abs(d.V[i]-want) > 1e-9 {
			t.Fatalf("V(%v) = %v, want %v", x, d.V[i], want)
		}
	}
}

// A point load q<x-a>^-1 steps the shear by exactly q at the offset and
// leaves it constant after; the moment is continuous with slope V.
func TestIntegratePointLoad(t *testing.T) {
	g := mustGrid(t, 10, 0.1)
	d := Integrate([]macaulay.LoadTerm{{Magnitude: 50, Offset: 2, Exponent: -1}}, g)

	last := len(g.X) - 1
	for i, x := range g.X {
		if i == last {
			continue
		}
		if x <= 2 {
			if d.V[i] != 0 {
				t.Fatalf("V(%v) = %v before the load, want 0", x, d.V[i])
			}
			if d.M[i] != 0 {
				t.Fatalf("M(%v) = %v before the load, want 0", x, d.M[i])
			}
			continue
		}
		if d.V[i] != 50 {
			t.Fatalf("V(%v) = %v after the load, want exactly 50", x, d.V[i])
		}
		if want := 50 * (x - 2); math.Abs(d.M[i]-want) > 1e-9 {
			t.Fatalf("M(%v) = %v, want %v", x, d.M[i], want)
		}
	}
}

// A point moment q<x-a>^-2 never touches the shear and steps the moment
// by exactly q at the offset.
func TestIntegratePointMoment(t *testing.T) {
	g := mustGrid(t, 10, 0.1)
	d := Integrate([]macaulay.LoadTerm{{Magnitude: 20, Offset: 3, Exponent: -2}}, g)

	last := len(g.X) - 1
	for i, x := range g.X {
		if d.V[i] != 0 {
			t.Fatalf("V(%v) = %v, want 0 for a pure moment", x, d.V[i])
		}
		if i == last {
			continue
		}
		want := 0.0
		if x > 3 {
			want = 20
		}
		if d.M[i] != want {
			t.Fatalf("M(%v) = %v, want %v", x, d.M[i], want)
		}
	}
}

// Contributions accumulate additively across terms.
func TestIntegrateCombinedLoading(t *testing.T) {
	g := mustGrid(t, 10, 0.1)
	terms := []macaulay.LoadTerm{
		{Magnitude: 10, Offset: 0, Exponent: 0},
		{Magnitude: -50, Offset: 2, Exponent: -1},
	}
	d := Integrate(terms, g)

	last := len(g.X) - 1
	for i, x := range g.X {
		if i == last {
			continue
		}
		want := 10 * x
		if x > 2 {
			want -= 50
		}
		if math.Abs(d.V[i]-want) > 1e-9 {
			t.Fatalf("V(%v) = %v, want %v", x, d.V[i], want)
		}
	}
}

// An empty or fully rejected expression still yields diagrams, all zero.
func TestIntegrateNoTerms(t *testing.T) {
	g := mustGrid(t, 5, 0.5)
	d := Integrate(nil, g)

	for i := range g.X {
		if d.V[i] != 0 || d.M[i] != 0 {
			t.Fatalf("empty loading produced nonzero sample at %d", i)
		}
	}
}

// The whole pipeline is deterministic: two runs over identical input
// produce bit-identical series.
func TestIntegrateIdempotent(t *testing.T) {
	g := mustGrid(t, 10, 0.01)
	terms := macaulay.ParseExpression("10*<x-0>^0 - 50*<x-2>^-1 + 20<x-3>^-2").Terms()

	a := Integrate(terms, g)
	b := Integrate(terms, g)

	for i := range g.X {
		if a.V[i] != b.V[i] || a.M[i] != b.M[i] {
			t.Fatalf("runs differ at sample %d: V %v!=%v M %v!=%v",
				i, a.V[i], b.V[i], a.M[i], b.M[i])
		}
	}
}

func TestForwardFill(t *testing.T) {
	nan := math.NaN()
	s := []float64{1, nan, nan, 4, nan}

	repaired := forwardFill(s)
	if repaired != 3 {
		t.Fatalf("repaired %d samples, want 3", repaired)
	}
	want := []float64{1, 1, 1, 4, 4}
	for i := range s {
		if s[i] != want[i] {
			t.Fatalf("slot %d = %v, want %v", i, s[i], want[i])
		}
	}

	lead := []float64{nan, 2}
	if repaired := forwardFill(lead); repaired != 1 || lead[0] != 0 {
		t.Fatalf("leading NaN handled as %v (repaired %d), want 0", lead[0], repaired)
	}
}

func TestBoundsIncludeZero(t *testing.T) {
	g := mustGrid(t, 10, 0.1)
	d := Integrate([]macaulay.LoadTerm{{Magnitude: 10, Offset: 0, Exponent: 0}}, g)

	vb, mb := d.Bounds()
	if vb.Min > 0 || mb.Min > 0 {
		t.Fatalf("bounds exclude zero: V %+v, M %+v", vb, mb)
	}
	if vb.Max < 99 || vb.Max > 100 {
		t.Fatalf("shear upper bound %v, want just under 100", vb.Max)
	}
}

func TestExtremes(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	s := []float64{0, 5, -2, 1}

	maxE, minE := Extremes(x, s)
	if maxE.Value != 5 || maxE.X != 1 {
		t.Fatalf("max = %+v, want {1 5}", maxE)
	}
	if minE.Value != -2 || minE.X != 2 {
		t.Fatalf("min = %+v, want {2 -2}", minE)
	}
}
