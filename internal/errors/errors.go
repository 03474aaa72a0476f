package errors

import (
	"net/http"
	"strings"
)

// Error is a domain error carrying the HTTP status it translates to. The set
// of values below is closed; services and middleware return these and the
// central error handler renders them.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrUserAlreadyExists      = &Error{Status: http.StatusConflict, Message: "a user with this email already exists"}
	ErrUserNotFound           = &Error{Status: http.StatusNotFound, Message: "user not found"}
	ErrUserPasswordNotMatched = &Error{Status: http.StatusBadRequest, Message: "password does not match"}
	ErrEmptyToken             = &Error{Status: http.StatusBadRequest, Message: "a token is required but none was provided"}
	ErrNotBearerToken         = &Error{Status: http.StatusBadRequest, Message: "authorization header must use the Bearer scheme"}
	ErrNotAccessToken         = &Error{Status: http.StatusUnauthorized, Message: "wrong token kind: an access token is required"}
	ErrTokenExpired           = &Error{Status: http.StatusUnauthorized, Message: "the token has expired"}
)

// ValidationError carries the first failing constraint of each invalid field.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}
