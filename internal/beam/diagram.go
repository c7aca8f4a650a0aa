package beam

// AxisBounds is the natural plotting range of one series. Zero is
// always inside the range so diagrams keep their baseline visible.
type AxisBounds struct {
	Min float64
	Max float64
}

// Bounds returns the natural axis ranges of the shear and moment
// series, for the rendering collaborator.
func (d *Diagram) Bounds() (shear, moment AxisBounds) {
	return seriesBounds(d.V), seriesBounds(d.M)
}

func seriesBounds(s []float64) AxisBounds {
	var b AxisBounds
	for _, v := range s {
		if v < b.Min {
			b.Min = v
		}
		if v > b.Max {
			b.Max = v
		}
	}
	return b
}

// Extreme is a series extremum and the station where it occurs.
type Extreme struct {
	X     float64
	Value float64
}

// Extremes reports the maximum and minimum of a series with their
// stations. Ties resolve to the first occurrence.
func Extremes(x, s []float64) (maxE, minE Extreme) {
	if len(s) == 0 {
		return
	}
	maxE = Extreme{X: x[0], Value: s[0]}
	minE = maxE
	for i := 1; i < len(s); i++ {
		if s[i] > maxE.Value {
			maxE = Extreme{X: x[i], Value: s[i]}
		}
		if s[i] < minE.Value {
			minE = Extreme{X: x[i], Value: s[i]}
		}
	}
	return
}
