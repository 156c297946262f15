// Package errors defines the failure taxonomy shared by the schemadrift
// core and its ingestion drivers. Every failure carries a stable Code so
// callers can branch on failure kind without parsing messages.
package errors

import (
	stderrors "errors"
	"fmt"
)

type Code string

const (
	CodeNotFound             Code = "not_found"
	CodeEmptyInput           Code = "empty_input"
	CodeUnsupportedFileType  Code = "unsupported_file_type"
	CodeUnsupportedStructure Code = "unsupported_structure"
	CodeMalformedInput       Code = "malformed_input"
	CodeIsADirectory         Code = "is_a_directory"
	CodePermissionDenied     Code = "permission_denied"
	CodeWriteError           Code = "write_error"
	CodeReadError            Code = "read_error"
	CodeMalformedSnapshot    Code = "malformed_snapshot"
)

// Error is the single error type returned across the core's API boundary.
type Error struct {
	Code  Code
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(code Code, msg string) *Error { return &Error{Code: code, Msg: msg} }

func Newf(code Code, format string, a ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, a...)}
}

func Wrap(code Code, msg string, cause error) *Error {
	return &Error{Code: code, Msg: msg, Cause: cause}
}

// CodeOf extracts the failure code from err, unwrapping as needed.
// It returns "" when err carries no code.
func CodeOf(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}
