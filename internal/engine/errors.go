// internal/engine/errors.go
package engine

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a class of recoverable scraping failure
type ErrorCode string

const (
	ErrCodeFetch           ErrorCode = "FETCH_FAILURE"
	ErrCodeEmptyInput      ErrorCode = "EMPTY_INPUT"
	ErrCodePersistence     ErrorCode = "PERSISTENCE"
	ErrCodeMissingResource ErrorCode = "MISSING_RESOURCE"
	ErrCodeValidation      ErrorCode = "VALIDATION"
)

// Sentinels for errors.Is. Any *ScrapeError with the same code matches.
var (
	ErrFetch           = &ScrapeError{Code: ErrCodeFetch}
	ErrEmptyInput      = &ScrapeError{Code: ErrCodeEmptyInput}
	ErrPersistence     = &ScrapeError{Code: ErrCodePersistence}
	ErrMissingResource = &ScrapeError{Code: ErrCodeMissingResource}
	ErrValidation      = &ScrapeError{Code: ErrCodeValidation}
)

// ScrapeError wraps errors with additional context
type ScrapeError struct {
	Code       ErrorCode
	Message    string
	URL        string
	StatusCode int
	RequestID  string
	Underlying error
}

// Error implements the error interface
func (e *ScrapeError) Error() string {
	msg := string(e.Code)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.URL != "" {
		msg += fmt.Sprintf(" (%s)", e.URL)
	}
	if e.Underlying != nil {
		msg += ": " + e.Underlying.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *ScrapeError) Unwrap() error {
	return e.Underlying
}

// Is checks if the error matches the target
func (e *ScrapeError) Is(target error) bool {
	if t, ok := target.(*ScrapeError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.Underlying, target)
}

// NewScrapeError creates a new ScrapeError
func NewScrapeError(code ErrorCode, message string, err error) *ScrapeError {
	return &ScrapeError{
		Code:       code,
		Message:    message,
		Underlying: err,
	}
}

// WithURL records the URL the failure relates to
func (e *ScrapeError) WithURL(u string) *ScrapeError {
	e.URL = u
	return e
}

// WithStatus records the HTTP status of a rejected response
func (e *ScrapeError) WithStatus(code int) *ScrapeError {
	e.StatusCode = code
	return e
}

// WithRequestID records the id of the request that failed
func (e *ScrapeError) WithRequestID(id string) *ScrapeError {
	e.RequestID = id
	return e
}

// FetchFailure builds the error returned for any failed page fetch
func FetchFailure(url, reason string, err error) *ScrapeError {
	return NewScrapeError(ErrCodeFetch, reason, err).WithURL(url)
}
