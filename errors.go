package gpxstream

import (
	"errors"
	"fmt"
)

// StructuralError indicates that the input stream ended, or lost
// well-formedness, before the envelope terminator was observed.  It is
// always fatal: the decoder never treats a missing terminator as a normal
// end of data, since that would mask truncated or corrupted input.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return e.Msg
}

func Structuralf(format string, args ...interface{}) *StructuralError {
	return &StructuralError{Msg: fmt.Sprintf(format, args...)}
}

// IsStructural reports whether err is (or wraps) a StructuralError, as
// opposed to an I/O failure on the underlying source or sink.
func IsStructural(err error) bool {
	var structural *StructuralError
	return errors.As(err, &structural)
}
