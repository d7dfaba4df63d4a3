package pkg

import (
	"fmt"
	"net/http"
)

// AppError is the error shape returned by HTTP handlers.
//
// Code is a stable machine-readable identifier; Message is safe to show to clients.
// Details carries optional extra fields (e.g. the feature that requires an upgrade).
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Details    map[string]any
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// WithDetail returns a copy of e carrying an extra detail field.
func (e *AppError) WithDetail(key string, value any) *AppError {
	out := *e
	out.Details = make(map[string]any, len(e.Details)+1)
	for k, v := range e.Details {
		out.Details[k] = v
	}
	out.Details[key] = value
	return &out
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}

// StatusOrDefault returns the HTTP status, falling back to 500 when unset.
func (e *AppError) StatusOrDefault() int {
	if e.HTTPStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.HTTPStatus
}
