package upload

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies an upload failure. Codes are part of the HTTP
// contract: clients branch on them.
type Code string

const (
	CodePayloadTooLarge      Code = "PayloadTooLarge"
	CodeMalformedMultipart   Code = "MalformedMultipart"
	CodeMissingRequiredField Code = "MissingRequiredField"
	CodeMissingFile          Code = "MissingFile"
	CodeInvalidDate          Code = "InvalidDate"
	CodeUnsupportedType      Code = "UnsupportedType"
	CodeUploadTimeout        Code = "UploadTimeout"
	CodeIOFailure            Code = "IOFailure"
	CodeDatabaseFailure      Code = "DatabaseFailure"
)

// Error is a classified upload failure.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError creates a classified error without a cause.
func NewError(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError attaches a classification to an underlying cause.
func WrapError(code Code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// AsError extracts the classified error, if any.
func AsError(err error) (*Error, bool) {
	var ue *Error
	ok := errors.As(err, &ue)
	return ue, ok
}

// HTTPStatus maps a failure code to its response status. Validation
// failures are the client's fault; everything else is ours.
func HTTPStatus(err error) int {
	ue, ok := AsError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch ue.Code {
	case CodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeMalformedMultipart, CodeMissingRequiredField, CodeMissingFile,
		CodeInvalidDate, CodeUnsupportedType:
		return http.StatusBadRequest
	case CodeUploadTimeout:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}
