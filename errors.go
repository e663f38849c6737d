package jsonlogic

import "fmt"

// ErrorKind is the closed set of error kinds a Value of Kind KindError can
// carry. Success is internal only: it is never observed on a Value that
// escapes this package.
type ErrorKind int8

// Error kinds, mirroring the original library's closed set.
const (
	ErrSuccess ErrorKind = iota
	ErrOutOfMemory
	ErrIllegalOperation
	ErrIllegalArgument
	ErrInternalError
	ErrStopIteration
	ErrIOError
	ErrSyntaxError
	ErrUnicodeError

	numErrorKinds
)

var errorKindNames = [numErrorKinds]string{
	ErrSuccess:          "success",
	ErrOutOfMemory:      "out of memory",
	ErrIllegalOperation: "illegal operation",
	ErrIllegalArgument:  "illegal argument",
	ErrInternalError:    "internal error",
	ErrStopIteration:    "stop iteration",
	ErrIOError:          "io error",
	ErrSyntaxError:      "syntax error",
	ErrUnicodeError:     "unicode error",
}

// String returns the human-readable name of the error kind.
func (k ErrorKind) String() string {
	if k < 0 || k >= numErrorKinds {
		return "unknown error"
	}
	return errorKindNames[k]
}

// Sentinel errors for the Go-facing API (bridged from ErrorKind at package
// boundaries; the Value-level ErrorKind is the source of truth internally).
var (
	ErrType             = fmt.Errorf("jsonlogic: type error")
	ErrParse            = fmt.Errorf("jsonlogic: parse error")
	ErrUnknownOperation = fmt.Errorf("jsonlogic: unknown operation")
)

// LineInfo locates a byte offset in parser input by 1-based line and
// column, as produced by the parser on both success and failure.
type LineInfo struct {
	Index  int
	Lineno int
	Column int
}
