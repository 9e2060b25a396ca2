package model

import "net/http"

type Error struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param,omitempty"`
	Code    any    `json:"code,omitempty"`
}

type ErrorWithStatusCode struct {
	Error
	StatusCode int `json:"status_code"`
}

func NewErrorWithStatusCode(statusCode int, errType string, message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Error: Error{
			Message: message,
			Type:    errType,
		},
		StatusCode: statusCode,
	}
}

func InvalidRequestError(message string) *ErrorWithStatusCode {
	return NewErrorWithStatusCode(http.StatusBadRequest, ErrorTypeInvalidRequest, message)
}

// StatusError lets an ErrorWithStatusCode travel through an error return without losing
// its status and type.
type StatusError struct {
	Err *ErrorWithStatusCode
}

func (e *StatusError) Error() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Message
}

func (e *ErrorWithStatusCode) AsError() error {
	return &StatusError{Err: e}
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Detail    string `json:"detail"`
	Type      string `json:"type"`
	RequestId string `json:"request_id,omitempty"`
}
