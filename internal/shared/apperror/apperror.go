package apperror

import (
	"fmt"
	"net/http"
)

// Code is the wire-level error code of the uniform envelope.
type Code string

const (
	CodeUnauthorized       Code = "UNAUTHORIZED"
	CodeUnauthorizedGuest  Code = "UNAUTHORIZED_GUEST"
	CodeInvalidCredentials Code = "AUTH_INVALID_CREDENTIALS"
	CodeTokenExpired       Code = "AUTH_TOKEN_EXPIRED"
	CodeEmailAlreadyExists Code = "AUTH_EMAIL_ALREADY_EXISTS"
	CodeListNotFound       Code = "LIST_NOT_FOUND"
	CodeItemNotFound       Code = "ITEM_NOT_FOUND"
	CodeItemAlreadyClaimed Code = "ITEM_ALREADY_CLAIMED"
	CodeItemNotClaimed     Code = "ITEM_NOT_CLAIMED"
	CodeNotClaimedByYou    Code = "ITEM_NOT_CLAIMED_BY_YOU"
	CodeValidation         Code = "VALIDATION_ERROR"
	CodeInternal           Code = "INTERNAL_SERVER_ERROR"
)

// Error is a domain failure carrying everything the response boundary needs.
// The set of values below is closed: services fail with one of these (or a
// Validation instance), and nothing below the boundary writes a response.
type Error struct {
	Status  int
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches by code so errors.Is works across instances of the same case.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Code == t.Code
}

func New(status int, code Code, message string) *Error {
	return &Error{Status: status, Code: code, Message: message}
}

var (
	ErrUnauthorized       = New(http.StatusUnauthorized, CodeUnauthorized, "Authorization required")
	ErrUnauthorizedGuest  = New(http.StatusUnauthorized, CodeUnauthorizedGuest, "Guest session missing or invalid")
	ErrInvalidCredentials = New(http.StatusUnauthorized, CodeInvalidCredentials, "Invalid credentials")
	ErrTokenExpired       = New(http.StatusUnauthorized, CodeTokenExpired, "Token expired or invalid")
	ErrEmailAlreadyExists = New(http.StatusConflict, CodeEmailAlreadyExists, "Email already exists")
	ErrListNotFound       = New(http.StatusNotFound, CodeListNotFound, "List not found")
	ErrItemNotFound       = New(http.StatusNotFound, CodeItemNotFound, "Item not found")
	ErrItemAlreadyClaimed = New(http.StatusConflict, CodeItemAlreadyClaimed, "Item already claimed")
	ErrItemNotClaimed     = New(http.StatusBadRequest, CodeItemNotClaimed, "Item is not claimed")
	ErrNotClaimedByYou    = New(http.StatusForbidden, CodeNotClaimedByYou, "Not claimed by you")
	ErrInternal           = New(http.StatusInternalServerError, CodeInternal, "An unexpected error occurred")
)

// Validation wraps the first validation failure message.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, CodeValidation, message)
}
