package models

import "errors"

type ErrorCode string

const (
	CodeMissingStructureID      ErrorCode = "MISSING_STRUCTURE_ID"
	CodeMissingDrawDefinition   ErrorCode = "MISSING_DRAW_DEFINITION"
	CodeMissingMatchUpID        ErrorCode = "MISSING_MATCHUP_ID"
	CodeMissingValue            ErrorCode = "MISSING_VALUE"
	CodeMissingSetObject        ErrorCode = "MISSING_SET_OBJECT"
	CodeInvalidDrawType         ErrorCode = "INVALID_DRAW_TYPE"
	CodeInvalidDrawSize         ErrorCode = "INVALID_DRAW_SIZE"
	CodeInvalidSideNumber       ErrorCode = "INVALID_SIDE_NUMBER"
	CodeInvalidSetNumber        ErrorCode = "INVALID_SET_NUMBER"
	CodeInvalidMatchUpFormat    ErrorCode = "INVALID_MATCHUP_FORMAT"
	CodeInvalidValues           ErrorCode = "INVALID_VALUES"
	CodeInvalidGenerationState  ErrorCode = "INVALID_GENERATION_STATE"
	CodeInvalidLink             ErrorCode = "INVALID_LINK"
	CodeCannotChangeWinningSide ErrorCode = "CANNOT_CHANGE_WINNING_SIDE"
	CodeUnrecognizedFormat      ErrorCode = "UNRECOGNIZED_MATCHUP_FORMAT"
	CodeStructureNotFound       ErrorCode = "STRUCTURE_NOT_FOUND"
	CodeMatchUpNotFound         ErrorCode = "MATCHUP_NOT_FOUND"
	CodeDrawNotFound            ErrorCode = "DRAW_NOT_FOUND"
	CodeNotFound                ErrorCode = "NOT_FOUND"
	CodeUnknown                 ErrorCode = "UNKNOWN_ERROR"
)

// CodedError is the error value every core function returns. Callers compare
// with errors.Is against the sentinels below; wrapping keeps the code.
type CodedError struct {
	Code    ErrorCode
	Message string
}

func (e *CodedError) Error() string {
	return e.Message
}

// Is matches any CodedError carrying the same code.
func (e *CodedError) Is(target error) bool {
	t, ok := target.(*CodedError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func newCoded(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

var (
	ErrMissingStructureID      = newCoded(CodeMissingStructureID, "structure id is required")
	ErrMissingDrawDefinition   = newCoded(CodeMissingDrawDefinition, "draw definition is required")
	ErrMissingMatchUpID        = newCoded(CodeMissingMatchUpID, "matchUp id is required")
	ErrMissingValue            = newCoded(CodeMissingValue, "required value is missing")
	ErrMissingSetObject        = newCoded(CodeMissingSetObject, "set object is required")
	ErrInvalidDrawType         = newCoded(CodeInvalidDrawType, "invalid draw type")
	ErrInvalidDrawSize         = newCoded(CodeInvalidDrawSize, "invalid draw size")
	ErrInvalidSideNumber       = newCoded(CodeInvalidSideNumber, "invalid side number")
	ErrInvalidSetNumber        = newCoded(CodeInvalidSetNumber, "invalid set number")
	ErrInvalidMatchUpFormat    = newCoded(CodeInvalidMatchUpFormat, "invalid matchUp format")
	ErrInvalidValues           = newCoded(CodeInvalidValues, "invalid values")
	ErrInvalidGenerationState  = newCoded(CodeInvalidGenerationState, "invalid draw generation state transition")
	ErrInvalidLink             = newCoded(CodeInvalidLink, "invalid link")
	ErrCannotChangeWinningSide = newCoded(CodeCannotChangeWinningSide, "winning side cannot change once participants have been directed")
	ErrUnrecognizedFormat      = newCoded(CodeUnrecognizedFormat, "unrecognized matchUp format")
	ErrStructureNotFound       = newCoded(CodeStructureNotFound, "structure not found")
	ErrMatchUpNotFound         = newCoded(CodeMatchUpNotFound, "matchUp not found")
	ErrDrawNotFound            = newCoded(CodeDrawNotFound, "draw not found")
	ErrNotFound                = newCoded(CodeNotFound, "not found")
)

// CodeOf returns the code of the first CodedError in err's chain.
func CodeOf(err error) ErrorCode {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return CodeUnknown
}
