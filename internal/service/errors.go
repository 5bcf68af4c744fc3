package service

import (
	"fmt"
	"net/http"
)

// Error standardizes client-visible failures. Message is safe to surface;
// anything else is wrapped and mapped to a generic 500 at the handler
// boundary.
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, message string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

func validationError(message string) *Error {
	return newError("invalid_request", message, http.StatusBadRequest)
}

// invalidCredentials never distinguishes unknown email from wrong password,
// to avoid account enumeration.
func invalidCredentials() *Error {
	return newError("invalid_credentials", "Invalid credentials", http.StatusUnauthorized)
}

func forbidden(message string) *Error {
	return newError("forbidden", message, http.StatusForbidden)
}

func notFound(message string) *Error {
	return newError("not_found", message, http.StatusNotFound)
}
