// Package apperr carries the (code, http status, message) triple that the
// response layer renders for a failed operation.
package apperr

import "net/http"

type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

func NotFound(code, message string) *Error {
	return New(code, http.StatusNotFound, message)
}

func Conflict(code, message string) *Error {
	return New(code, http.StatusConflict, message)
}

func Forbidden(code, message string) *Error {
	return New(code, http.StatusForbidden, message)
}
