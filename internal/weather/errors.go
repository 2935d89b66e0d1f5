package weather

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
)

// ErrorType represents the category of a failed fetch
type ErrorType int

const (
	// ErrTypeNetwork indicates a connection-level failure
	ErrTypeNetwork ErrorType = iota
	// ErrTypeTimeout indicates the request exceeded its deadline
	ErrTypeTimeout
	// ErrTypeDNS indicates the service host could not be resolved
	ErrTypeDNS
	// ErrTypeHTTP indicates a non-200 response
	ErrTypeHTTP
	// ErrTypeParse indicates an unexpected response body
	ErrTypeParse
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeParse:
		return "Parse Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// FetchError describes why a weather report could not be obtained.
type FetchError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Err        error
	Retryable  bool
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Short returns a compact message suitable for the one-line weather band.
func (e *FetchError) Short() string {
	if e.Type == ErrTypeHTTP && e.StatusCode != 0 {
		return fmt.Sprintf("%s %d", e.Type, e.StatusCode)
	}
	return e.Type.String()
}

// classifyNetworkError maps transport failures onto FetchError types.
func classifyNetworkError(message string, err error) *FetchError {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) {
		return &FetchError{Type: ErrTypeTimeout, Message: message, Err: err, Retryable: true}
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &FetchError{
			Type:      ErrTypeDNS,
			Message:   fmt.Sprintf("%s: cannot resolve %s", message, dnsErr.Name),
			Err:       err,
			Retryable: dnsErr.IsTemporary,
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil && urlErr.Err != err {
		return classifyNetworkError(message, urlErr.Err)
	}

	return &FetchError{Type: ErrTypeNetwork, Message: message, Err: err, Retryable: true}
}

func newHTTPError(statusCode int) *FetchError {
	return &FetchError{
		Type:       ErrTypeHTTP,
		Message:    fmt.Sprintf("unexpected status code: %d", statusCode),
		StatusCode: statusCode,
		Retryable:  statusCode >= 500,
	}
}

func newParseError(message string, err error) *FetchError {
	return &FetchError{Type: ErrTypeParse, Message: message, Err: err}
}

// IsRetryable reports whether another attempt might succeed.
func IsRetryable(err error) bool {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Retryable
	}
	return false
}
