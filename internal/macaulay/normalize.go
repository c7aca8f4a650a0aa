package macaulay

import (
	"regexp"
	"strings"
	"unicode"
)

// termMinus matches a '-' that directly follows a complete >^n exponent
// group. Only that '-' plays the role of "minus between terms"; a '-'
// inside the offset bracket (<x-2>) must survive untouched.
var termMinus = regexp.MustCompile(`(>\^[+-]?\d+)-`)

// Normalize strips all whitespace and rewrites subtraction between terms
// as addition of a negated term, so the result can be split on '+'.
//
//	A<x-a>^n - B<x-b>^m  →  A<x-a>^n+-B<x-b>^m
//
// The rewrite is purely positional: it keys on the closing >^n group and
// can mis-fire on unusual exponent formats (parenthesized or non-integer
// exponents). Those shapes fall through unchanged and surface later as
// rejected terms rather than being silently repaired here.
func Normalize(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))
	for _, r := range expr {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return termMinus.ReplaceAllString(b.String(), "${1}+-")
}

// SplitTerms partitions a normalized expression into its independent
// term substrings. Empty pieces (a leading '+', doubled separators) are
// dropped before parsing.
func SplitTerms(normalized string) []string {
	parts := strings.Split(normalized, "+")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			terms = append(terms, p)
		}
	}
	return terms
}
