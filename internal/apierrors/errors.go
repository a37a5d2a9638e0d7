// Package apierrors defines the closed set of domain errors raised by stores and services.
package apierrors

import (
	"errors"
	"fmt"
)

// Code is a stable numeric identifier of an error kind.
type Code int

const (
	// CodeUnknown is reported for errors outside the taxonomy.
	CodeUnknown Code = iota
	CodeMissingParameter
	CodeInvalidParameter
	CodeInvalidBody
	CodeTaskNotFound
	CodeUserNotFound
	CodeNotAuthorized
	CodeMissingToken
	CodeInvalidArgument
)

// String returns the symbolic name of the code.
func (c Code) String() string {
	switch c {
	case CodeMissingParameter:
		return "MISSING_PARAMETER"
	case CodeInvalidParameter:
		return "INVALID_PARAMETER"
	case CodeInvalidBody:
		return "INVALID_BODY"
	case CodeTaskNotFound:
		return "TASK_NOT_FOUND"
	case CodeUserNotFound:
		return "USER_NOT_FOUND"
	case CodeNotAuthorized:
		return "NOT_AUTHORIZED"
	case CodeMissingToken:
		return "MISSING_TOKEN"
	case CodeInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN"
	}
}

// APIError is a domain error carrying a code and a human readable message.
type APIError struct {
	Code    Code
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is reports whether target is an APIError of the same kind.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func newError(code Code, format string, args ...any) *APIError {
	return &APIError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func NewErrMissingParameter(name string) *APIError {
	return newError(CodeMissingParameter, "Missing parameter %s", name)
}

func NewErrInvalidParameter(name string) *APIError {
	return newError(CodeInvalidParameter, "Invalid parameter %s", name)
}

func NewErrInvalidBody(reason string) *APIError {
	return newError(CodeInvalidBody, "Invalid body %s", reason)
}

func NewErrTaskNotFound(taskID string) *APIError {
	return newError(CodeTaskNotFound, "Task %s not found", taskID)
}

func NewErrUserNotFound() *APIError {
	return newError(CodeUserNotFound, "User not found")
}

// NewErrNotAuthorized reports that who has no access to what.
func NewErrNotAuthorized(who, what string) *APIError {
	return newError(CodeNotAuthorized, "%s has no access to %s", who, what)
}

func NewErrMissingToken() *APIError {
	return newError(CodeMissingToken, "Missing token")
}

// NewErrInvalidArgument is raised by constructors when a required collaborator is absent.
func NewErrInvalidArgument(name string) *APIError {
	return newError(CodeInvalidArgument, "Invalid argument %s", name)
}

// CodeOf returns the code of the first APIError in err's chain.
func CodeOf(err error) (Code, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	return CodeUnknown, false
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code Code) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}
