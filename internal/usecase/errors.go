package usecase

import "net/http"

// Error is the failure signal handlers hand to the response middleware.
// Use cases never format response bodies; they only carry a status and a
// message to the single error boundary.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error {
	return NewError(http.StatusBadRequest, message)
}

func Conflict(message string) *Error {
	return NewError(http.StatusConflict, message)
}

func Internal(message string) *Error {
	return NewError(http.StatusInternalServerError, message)
}
