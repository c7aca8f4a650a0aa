package macaulay

import "fmt"

// ParseTerm parses one normalized term substring into a LoadTerm.
// A bare bracket implies unit magnitude: "", "+" and "-" resolve to
// +1, +1 and -1.
func ParseTerm(raw string) (LoadTerm, error) {
	parts, err := scanTerm(raw)
	if err != nil {
		return LoadTerm{}, err
	}

	var magnitude float64
	switch parts.magnitude {
	case "", "+":
		magnitude = 1
	case "-":
		magnitude = -1
	default:
		magnitude, err = evalNumber(parts.magnitude)
		if err != nil {
			return LoadTerm{}, fmt.Errorf("magnitude: %w", err)
		}
	}

	offset, err := evalNumber(parts.offset)
	if err != nil {
		return LoadTerm{}, fmt.Errorf("offset: %w", err)
	}

	exponent, err := evalExponent(parts.exponent)
	if err != nil {
		return LoadTerm{}, fmt.Errorf("exponent: %w", err)
	}

	return LoadTerm{Magnitude: magnitude, Offset: offset, Exponent: exponent}, nil
}

// ParseExpression runs the front half of the pipeline: normalize the
// raw expression, split it into terms, and parse each one. A malformed
// term becomes a Rejected entry and parsing continues; one bad term
// never aborts the expression.
func ParseExpression(expr string) Diagnostics {
	terms := SplitTerms(Normalize(expr))
	diags := make(Diagnostics, 0, len(terms))
	for i, raw := range terms {
		term, err := ParseTerm(raw)
		if err != nil {
			diags = append(diags, ParseDiagnostic{Index: i, Raw: raw, Status: Rejected, Err: err})
			continue
		}
		diags = append(diags, ParseDiagnostic{Index: i, Raw: raw, Status: Accepted, Term: term})
	}
	return diags
}
