package jsonlogic

import "strings"

// FormatSyntaxError renders a human-readable diagnostic for a parse
// failure: the previous line (if any), the offending line, and a '^'
// pointer under the failing column. It is a pure function of LineInfo and
// the original source text, with no dependency on any CLI type, so the
// thin command-line front end can call it directly.
func FormatSyntaxError(source string, info LineInfo, message string) string {
	lines := strings.Split(source, "\n")
	lineIdx := info.Lineno - 1
	var b strings.Builder
	b.WriteString(message)
	b.WriteByte('\n')
	if lineIdx > 0 && lineIdx-1 < len(lines) {
		b.WriteString(lines[lineIdx-1])
		b.WriteByte('\n')
	}
	if lineIdx >= 0 && lineIdx < len(lines) {
		b.WriteString(lines[lineIdx])
		b.WriteByte('\n')
	}
	col := info.Column
	if col < 1 {
		col = 1
	}
	b.WriteString(strings.Repeat(" ", col-1))
	b.WriteString("^")
	return b.String()
}
