// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

// Code is the classification tag carried by every *Error.
type Code string

const (
	CodeNetwork      Code = "NETWORK_ERROR"
	CodeBadRequest   Code = "BAD_REQUEST"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeNotFound     Code = "NOT_FOUND"
	CodeRateLimit    Code = "RATE_LIMIT"
	CodeServer       Code = "SERVER_ERROR"
	CodeTimeout      Code = "TIMEOUT"
	CodeAPI          Code = "API_ERROR"
	CodeUnknown      Code = "UNKNOWN_ERROR"
	CodeCircuitOpen  Code = "CIRCUIT_OPEN"
)

// DefaultRetryableStatuses are the HTTP statuses that make an API_ERROR
// retryable when the retry policy does not override them.
var DefaultRetryableStatuses = []int{
	http.StatusRequestTimeout,
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

// Retryable reports whether failures with this tag are transient.
// API_ERROR is not retryable by tag alone; see (*Error).Retryable.
func (c Code) Retryable() bool {
	switch c {
	case CodeNetwork, CodeRateLimit, CodeServer, CodeTimeout:
		return true
	default:
		return false
	}
}

var userMessages = map[Code]string{
	CodeNetwork:      "No internet connection. Please check your network and try again.",
	CodeBadRequest:   "The request could not be processed.",
	CodeUnauthorized: "You are not allowed to access this resource. Please sign in again.",
	CodeNotFound:     "The requested content could not be found.",
	CodeRateLimit:    "Too many requests. Please wait a moment and try again.",
	CodeServer:       "The service is having trouble right now. Please try again later.",
	CodeTimeout:      "The request took too long. Please try again.",
	CodeAPI:          "The service returned an unexpected response.",
	CodeUnknown:      "Something went wrong. Please try again.",
	CodeCircuitOpen:  "The service is temporarily unavailable. Please try again in a minute.",
}

// UserMessage returns display-safe text for the tag.
func (c Code) UserMessage() string {
	if msg, ok := userMessages[c]; ok {
		return msg
	}
	return userMessages[CodeUnknown]
}

// Error is the single normalised failure returned by the resilient client.
//
// Message is technical and may contain response bodies or transport details;
// it is meant for logs. UserMessage never does and can be shown as is.
type Error struct {
	Code        Code
	Message     string
	UserMessage string
	Retryable   bool
	StatusCode  int
	Err         error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (http %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error by code, so errors.Is(err, ErrCircuitOpen)
// works for any CIRCUIT_OPEN instance.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code && (t.StatusCode == 0 || t.StatusCode == e.StatusCode)
}

// Sentinels for errors.Is matching by code.
var (
	ErrNetwork      = &Error{Code: CodeNetwork}
	ErrBadRequest   = &Error{Code: CodeBadRequest}
	ErrUnauthorized = &Error{Code: CodeUnauthorized}
	ErrNotFound     = &Error{Code: CodeNotFound}
	ErrRateLimit    = &Error{Code: CodeRateLimit}
	ErrServer       = &Error{Code: CodeServer}
	ErrTimeout      = &Error{Code: CodeTimeout}
	ErrAPI          = &Error{Code: CodeAPI}
	ErrUnknown      = &Error{Code: CodeUnknown}
	ErrCircuitOpen  = &Error{Code: CodeCircuitOpen}
)

func newError(code Code, message string, status int, cause error) *Error {
	return &Error{
		Code:        code,
		Message:     message,
		UserMessage: code.UserMessage(),
		Retryable:   code.Retryable(),
		StatusCode:  status,
		Err:         cause,
	}
}

// FromStatus classifies an HTTP response with status >= 400. body is kept
// in Message only.
func FromStatus(status int, body string) *Error {
	body = strings.TrimSpace(body)
	if body == "" {
		body = http.StatusText(status)
	}

	switch {
	case status == http.StatusBadRequest:
		return newError(CodeBadRequest, body, status, nil)
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return newError(CodeUnauthorized, body, status, nil)
	case status == http.StatusNotFound:
		return newError(CodeNotFound, body, status, nil)
	case status == http.StatusTooManyRequests:
		return newError(CodeRateLimit, body, status, nil)
	case status >= 500 && status <= 599:
		return newError(CodeServer, body, status, nil)
	default:
		e := newError(CodeAPI, body, status, nil)
		e.Retryable = statusIn(status, DefaultRetryableStatuses)
		return e
	}
}

// Classify normalises err into an *Error. ctx is the caller's context: a
// deadline that fired while ctx itself is still alive was a per-attempt
// timeout (TIMEOUT), while a cancelled ctx means the caller gave up
// (UNKNOWN_ERROR, not retryable). nil stays nil.
func Classify(ctx context.Context, err error) *Error {
	if err == nil {
		return nil
	}

	if apiErr, ok := AsError(err); ok {
		return apiErr
	}

	if ctx != nil && ctx.Err() != nil {
		return newError(CodeUnknown, fmt.Sprintf("request abandoned: %v", err), 0, errors.Join(ctx.Err(), err))
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return newError(CodeTimeout, err.Error(), 0, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newError(CodeTimeout, err.Error(), 0, err)
	}

	return newError(CodeNetwork, err.Error(), 0, err)
}

// AsError extracts an *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// UserMessage returns display-safe text for any error. Errors that did not
// go through the resilient client get the generic UNKNOWN_ERROR text.
func UserMessage(err error) string {
	if apiErr, ok := AsError(err); ok && apiErr.UserMessage != "" {
		return apiErr.UserMessage
	}
	return CodeUnknown.UserMessage()
}

func statusIn(status int, statuses []int) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}
