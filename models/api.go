package models

import (
	"errors"
	"net/http"
)

// APIError is the single error shape the handlers render to clients:
// an HTTP status class plus a human-readable message. Internal detail
// never crosses this boundary.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return e.Message
}

func ErrBadRequest(message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Message: message}
}

func ErrUnauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Message: message}
}

func ErrForbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Message: message}
}

func ErrNotFound(message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Message: message}
}

func ErrConflict(message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Message: message}
}

func ErrInternal(message string) *APIError {
	return &APIError{StatusCode: http.StatusInternalServerError, Message: message}
}

// AsAPIError maps any error onto an APIError. Errors that did not start
// life as an APIError collapse to an opaque 500.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return ErrInternal("something went wrong, please try again later")
}
