package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNoDatasets indicates the backend holds no datasets visible to the
	// configured credential. Retrieval cannot run without a dataset scope.
	ErrNoDatasets = errors.New("no datasets available")

	// ErrDatasetNotFound indicates a requested dataset does not exist.
	ErrDatasetNotFound = errors.New("dataset not found")

	// ErrMissingBaseURL indicates the backend base URL is not configured.
	ErrMissingBaseURL = errors.New("backend base URL not configured")

	// ErrMissingAPIKey indicates the backend API key is not configured.
	ErrMissingAPIKey = errors.New("backend API key not configured")

	// ErrClientClosed indicates the backend client has been closed.
	ErrClientClosed = errors.New("backend client closed")
)

// InvalidArgumentError reports a request parameter that failed validation.
// Validation runs before any backend call, so an InvalidArgumentError
// guarantees no network traffic was generated.
type InvalidArgumentError struct {
	// Field is the name of the offending parameter.
	Field string

	// Reason describes why the value was rejected.
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// BackendError reports a definite backend failure: the backend was reached
// and answered with a non-success status or an error envelope.
type BackendError struct {
	// Status is the HTTP status code of the response.
	Status int

	// Message is the backend-provided error message, if any.
	Message string

	// Body is the raw response body, truncated for logging.
	Body string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend error %d: %s", e.Status, e.Body)
}

// Retryable reports whether the failure class may clear on its own.
// Only server-side statuses qualify; client errors and envelope-level
// rejections are definite.
func (e *BackendError) Retryable() bool {
	return e.Status >= 500
}

// BackendUnavailableError reports a transient transport failure: the backend
// could not be reached at all (connection refused, connect timeout, DNS).
type BackendUnavailableError struct {
	// URL is the backend base URL that was unreachable.
	URL string

	// Err is the underlying transport error.
	Err error
}

func (e *BackendUnavailableError) Error() string {
	return fmt.Sprintf("backend unavailable at %s: %v", e.URL, e.Err)
}

func (e *BackendUnavailableError) Unwrap() error {
	return e.Err
}

// IsInvalidArgument returns true if the error is a parameter validation failure.
func IsInvalidArgument(err error) bool {
	var invalidErr *InvalidArgumentError
	return errors.As(err, &invalidErr)
}

// IsBackendError returns true if the error is a definite backend failure.
func IsBackendError(err error) bool {
	var backendErr *BackendError
	return errors.As(err, &backendErr)
}

// IsBackendUnavailable returns true if the error is a transient transport failure.
func IsBackendUnavailable(err error) bool {
	var unavailErr *BackendUnavailableError
	return errors.As(err, &unavailErr)
}
