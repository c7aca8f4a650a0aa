package macaulay

import (
	"fmt"
	"strings"
)

// termParts is the raw textual decomposition of one term,
//
//	magnitude [*] < x - offset > ^ exponent
//
// with the three payload substrings still unevaluated.
type termParts struct {
	magnitude string
	offset    string
	exponent  string
}

// scanTerm cuts one normalized term substring into its parts. It walks
// the term structurally instead of matching one monolithic pattern, so
// arithmetic inside the magnitude, offset or exponent passes through
// intact for numeric evaluation later.
func scanTerm(raw string) (termParts, error) {
	var p termParts

	open := strings.IndexByte(raw, '<')
	if open < 0 {
		return p, fmt.Errorf("no singularity bracket")
	}
	closing := strings.IndexByte(raw, '>')
	if closing < open {
		return p, fmt.Errorf("unbalanced singularity bracket")
	}

	// Magnitude is everything before the bracket, minus the optional
	// '*' separator. It may legitimately be empty, "+" or "-".
	p.magnitude = strings.TrimSuffix(raw[:open], "*")
	if strings.ContainsAny(p.magnitude, "<>^") {
		return p, fmt.Errorf("malformed magnitude %q", p.magnitude)
	}

	inner := raw[open+1 : closing]
	switch {
	case inner == "x":
		p.offset = "0"
	case strings.HasPrefix(inner, "x-"):
		p.offset = inner[2:]
	default:
		return p, fmt.Errorf("bracket must contain x-a, got %q", inner)
	}
	if p.offset == "" {
		return p, fmt.Errorf("empty offset in bracket %q", inner)
	}

	rest := raw[closing+1:]
	if !strings.HasPrefix(rest, "^") {
		return p, fmt.Errorf("missing ^exponent after bracket")
	}
	p.exponent = rest[1:]
	if p.exponent == "" {
		return p, fmt.Errorf("empty exponent")
	}

	return p, nil
}
