package jsonlogic

import (
	"strings"
	"testing"
)

func TestFormatSyntaxErrorPointsAtColumn(t *testing.T) {
	src := `{"foo": "bar" "a":"b"}`
	_, info, err := Parse([]byte(src))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	out := FormatSyntaxError(src, info, err.Error())
	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines in diagnostic, got %d: %q", len(lines), out)
	}
	caretLine := lines[len(lines)-1]
	if !strings.HasSuffix(caretLine, "^") {
		t.Errorf("last line should end in a caret pointer, got %q", caretLine)
	}
	if strings.Count(caretLine, "^") != 1 {
		t.Errorf("expected exactly one caret, got %q", caretLine)
	}
}

func TestFormatSyntaxErrorIncludesMessage(t *testing.T) {
	out := FormatSyntaxError("1 2", LineInfo{Index: 2, Lineno: 1, Column: 3}, "trailing content after value")
	if !strings.Contains(out, "trailing content after value") {
		t.Errorf("diagnostic should include the message, got %q", out)
	}
}
