package macaulay

// LoadTerm is one parsed contribution to the beam loading function,
// written q<x-a>^n in Macaulay singularity-function notation.
type LoadTerm struct {
	Magnitude float64 // q - signed intensity (kN, kN/m or kN-m depending on exponent)
	Offset    float64 // a - beam station where the load starts
	Exponent  int     // n - load shape selector
}

// Load shape exponents.
const (
	ExpMoment    = -2 // concentrated moment
	ExpPointLoad = -1 // concentrated force
	ExpUniform   = 0  // uniformly distributed load
	ExpRamp      = 1  // linearly varying load
)

// Kind names the physical load type selected by the exponent.
func (t LoadTerm) Kind() string {
	switch {
	case t.Exponent == ExpMoment:
		return "concentrated moment"
	case t.Exponent == ExpPointLoad:
		return "concentrated force"
	case t.Exponent == ExpUniform:
		return "uniform load"
	case t.Exponent == ExpRamp:
		return "ramp load"
	default:
		return "distributed load"
	}
}

// ParseStatus is the outcome of parsing one term substring.
type ParseStatus int

const (
	Accepted ParseStatus = iota
	Rejected
)

func (s ParseStatus) String() string {
	if s == Accepted {
		return "accepted"
	}
	return "rejected"
}

// ParseDiagnostic records the outcome for one term position. The parser
// emits one entry per term, in input order, whether or not the term
// parsed; this is the full user-facing output surface of the parser.
type ParseDiagnostic struct {
	Index  int
	Raw    string
	Status ParseStatus
	Term   LoadTerm // valid only when Status == Accepted
	Err    error    // rejection reason, nil when accepted
}

// Diagnostics is the ordered parser output, one entry per term.
type Diagnostics []ParseDiagnostic

// Terms returns the accepted load terms in input order.
func (d Diagnostics) Terms() []LoadTerm {
	terms := make([]LoadTerm, 0, len(d))
	for _, dg := range d {
		if dg.Status == Accepted {
			terms = append(terms, dg.Term)
		}
	}
	return terms
}

// RejectedTerms returns the entries that failed to parse, in input order.
func (d Diagnostics) RejectedTerms() []ParseDiagnostic {
	var rejected []ParseDiagnostic
	for _, dg := range d {
		if dg.Status == Rejected {
			rejected = append(rejected, dg)
		}
	}
	return rejected
}
