package schemadrift

import sderrors "github.com/schemadrift/schemadrift/errors"

// Re-export the failure taxonomy so callers can branch on failure kind
// without importing the errors subpackage.
type (
	Error = sderrors.Error
	Code  = sderrors.Code
)

const (
	CodeNotFound             = sderrors.CodeNotFound
	CodeEmptyInput           = sderrors.CodeEmptyInput
	CodeUnsupportedFileType  = sderrors.CodeUnsupportedFileType
	CodeUnsupportedStructure = sderrors.CodeUnsupportedStructure
	CodeMalformedInput       = sderrors.CodeMalformedInput
	CodeIsADirectory         = sderrors.CodeIsADirectory
	CodePermissionDenied     = sderrors.CodePermissionDenied
	CodeWriteError           = sderrors.CodeWriteError
	CodeReadError            = sderrors.CodeReadError
	CodeMalformedSnapshot    = sderrors.CodeMalformedSnapshot
)

// CodeOf extracts the failure code from err, unwrapping as needed.
func CodeOf(err error) Code { return sderrors.CodeOf(err) }
