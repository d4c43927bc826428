package encoder

import "fmt"

// Position locates a source line for error reporting, mirroring the
// assembler's own Position type so encoding errors can be reported with
// file:line context when the assembler supplies one.
type Position struct {
	Filename string
	Line     int
}

// EncodingError reports a failure to encode or decode an instruction,
// with optional source position and the raw source line for context.
type EncodingError struct {
	Pos     Position
	RawLine string
	Message string
	Wrapped error
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	location := ""
	if e.Pos.Filename != "" {
		location = fmt.Sprintf("%s:%d: ", e.Pos.Filename, e.Pos.Line)
	} else if e.Pos.Line > 0 {
		location = fmt.Sprintf("line %d: ", e.Pos.Line)
	}

	msg := e.Message
	if e.Wrapped != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	msg = location + msg

	if e.RawLine != "" {
		msg = fmt.Sprintf("%s\n  source: %s", msg, e.RawLine)
	}
	return msg
}

// Unwrap supports errors.Is/As against the underlying cause.
func (e *EncodingError) Unwrap() error {
	return e.Wrapped
}

// NewEncodingError creates a position-less EncodingError; callers that have
// source context should set Pos/RawLine on the result before returning it.
func NewEncodingError(message string) *EncodingError {
	return &EncodingError{Message: message}
}

// WithPosition attaches source position/text to an EncodingError, returning
// it unchanged if err is not one (or is nil).
func WithPosition(err error, pos Position, rawLine string) error {
	if err == nil {
		return nil
	}
	ee, ok := err.(*EncodingError)
	if !ok {
		return err
	}
	ee.Pos = pos
	ee.RawLine = rawLine
	return ee
}
