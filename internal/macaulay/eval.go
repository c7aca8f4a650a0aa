package macaulay

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Konstantin8105/sm"
)

// evalNumber resolves a magnitude/offset/exponent substring to a float.
// Plain literals take the fast path; anything else is treated as a
// literal arithmetic expression and constant-folded. Variables are not
// supported.
func evalNumber(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty numeric expression")
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}

	// Leading signs on a compound expression ("-3*2") are peeled off so
	// the remainder folds to a single literal.
	sign := 1.0
	body := s
	for len(body) > 0 && (body[0] == '+' || body[0] == '-') {
		if body[0] == '-' {
			sign = -sign
		}
		body = body[1:]
	}
	if body == "" {
		return 0, fmt.Errorf("%q is not a number", s)
	}

	folded, err := foldLiteral(body)
	if err != nil {
		return 0, fmt.Errorf("cannot evaluate %q: %w", s, err)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(folded), 64)
	if err != nil {
		return 0, fmt.Errorf("%q does not reduce to a number", s)
	}
	return sign * v, nil
}

// foldLiteral constant-folds a literal arithmetic expression. The
// simplifier panics on syntax it has no folding rule for (identifiers,
// embedded unary operators, comparison operators), so the call is
// fenced: a panic here is just one malformed term, never the whole
// expression.
func foldLiteral(s string) (folded string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("not literal arithmetic: %v", r)
		}
	}()
	return sm.Sexpr(io.Discard, s)
}

// evalExponent resolves an exponent substring and requires the result to
// be an integer.
func evalExponent(s string) (int, error) {
	v, err := evalNumber(s)
	if err != nil {
		return 0, err
	}
	n := math.Round(v)
	if math.Abs(v-n) > 1e-9 {
		return 0, fmt.Errorf("exponent %q is not an integer", s)
	}
	return int(n), nil
}
