// Package apierror defines the error type returned for failed provider API
// requests. It carries the HTTP status code so that callers can distinguish
// authentication failures, unknown cities, rate limiting and server errors.
package apierror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is the type of error returned by the weather API client. It contains
// an HTTP status code so that callers can interpret the failure.
type Error struct {
	err    error
	status int
}

// providerMessage is the error body format used by OpenWeatherMap, for
// example {"cod":"404","message":"city not found"}.
type providerMessage struct {
	Cod     json.Number `json:"cod"`
	Message string      `json:"message"`
}

func New(err error, status int) *Error {
	return &Error{
		err:    err,
		status: status,
	}
}

// FromResponse creates an error from a non-success HTTP response. If the
// body is a provider error message, its message text is used; otherwise the
// trimmed body text is kept as-is.
func FromResponse(status int, body []byte) error {
	var err error
	var pm providerMessage
	if jsonErr := json.Unmarshal(body, &pm); jsonErr == nil && pm.Message != "" {
		err = errors.New(pm.Message)
	} else if text := strings.TrimSpace(string(body)); text != "" {
		err = errors.New(text)
	}
	if status == 0 {
		return err
	}
	return New(err, status)
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	if e.status == 0 {
		return ""
	}
	if text := http.StatusText(e.status); text != "" {
		return fmt.Sprintf("%d %s", e.status, text)
	}
	return fmt.Sprintf("%d", e.status)
}

func (e *Error) Status() int {
	return e.status
}

// Text returns the status code, status text, and underlying error message.
func (e *Error) Text() string {
	parts := make([]string, 0, 5)
	if e.status != 0 {
		parts = append(parts, fmt.Sprintf("%d", e.status))
		text := http.StatusText(e.status)
		if text != "" {
			parts = append(parts, " ")
			parts = append(parts, text)
		}
	}
	if e.err != nil {
		if len(parts) != 0 {
			parts = append(parts, ": ")
		}
		parts = append(parts, e.err.Error())
	}

	return strings.Join(parts, "")
}

func (e *Error) Unwrap() error {
	return e.err
}

// StatusOf returns the HTTP status carried by err, or 0 if err does not wrap
// an *Error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status()
	}
	return 0
}
