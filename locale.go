package jsonlogic

import "strconv"

// parseCLocaleFloat parses a numeric lexeme already validated by the
// number DFA. strconv.ParseFloat is locale-independent (always decimal
// point, no digit grouping), which is exactly the fixed "C" locale this
// package requires regardless of the host process's locale — so no
// separate locale plumbing is needed here, unlike implementations that
// wrap a libc strtod.
func parseCLocaleFloat(lexeme string) (float64, bool) {
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
