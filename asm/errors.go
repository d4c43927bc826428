package asm

import (
	"fmt"
	"strings"
)

// Position locates a line in a (possibly included) source file.
type Position struct {
	Filename string
	Line     int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.Filename, p.Line)
}

// ErrorKind categorizes a preprocessor/assembler error, per spec section 7.
type ErrorKind int

const (
	ErrorSyntax             ErrorKind = iota // unknown directive, malformed number, missing include
	ErrorUndefinedLabel                      // label operand with no matching definition
	ErrorDuplicateLabel                      // same label bound twice across any section
	ErrorUndefinedEquate                     // .equ name used before definition
	ErrorUnknownMnemonic                     // no isa.Table entry for the mnemonic
	ErrorOperandArity                        // wrong operand count/kind for the mnemonic
	ErrorOperandRange                        // numeric operand out of its declared width
	ErrorRelocationOverflow                  // resolved label doesn't fit the relocation field
)

// Error is a single fatal diagnostic with source position and, where
// available, the offending source line.
type Error struct {
	Pos     Position
	Kind    ErrorKind
	Message string
	Context string
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: error: %s", e.Pos, e.Message)
	if e.Context != "" {
		fmt.Fprintf(&sb, "\n    %s", e.Context)
	}
	return sb.String()
}

// NewError creates a fatal Error at pos.
func NewError(pos Position, kind ErrorKind, message string) *Error {
	return &Error{Pos: pos, Kind: kind, Message: message}
}

// NewErrorWithContext creates a fatal Error carrying the raw source line.
func NewErrorWithContext(pos Position, kind ErrorKind, message, context string) *Error {
	return &Error{Pos: pos, Kind: kind, Message: message, Context: context}
}

// ErrorList collects diagnostics raised while processing a program. Unlike
// the simulator, which aborts on the first runtime error, the preprocessor
// and assembler report every error they find before the pipeline gives up,
// so a single run can surface more than one fix to make.
type ErrorList struct {
	Errors []*Error
}

func (el *ErrorList) AddError(err *Error) { el.Errors = append(el.Errors, err) }
func (el *ErrorList) HasErrors() bool     { return len(el.Errors) > 0 }

func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}
	var sb strings.Builder
	for _, err := range el.Errors {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}
