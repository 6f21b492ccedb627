package errors

import "fmt"

// ErrInvalidPayload is a caller error: a required field is missing or
// malformed. Never retried.
type ErrInvalidPayload struct {
	Field  string
	Reason string
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid payload: field %s: %s", e.Field, e.Reason)
}

// ErrPersistFailed is a transient infrastructure error: the spreadsheet
// append did not succeed within the configured retry budget.
type ErrPersistFailed struct {
	Attempts int
	Last     error
}

func (e *ErrPersistFailed) Error() string {
	return fmt.Sprintf("persisting order failed after %d attempts: %v", e.Attempts, e.Last)
}

func (e *ErrPersistFailed) Unwrap() error {
	return e.Last
}

// ErrConfig is an operator error: a feature is enabled but its credentials
// or settings are missing.
type ErrConfig struct {
	Reason string
}

func (e *ErrConfig) Error() string {
	return "configuration error: " + e.Reason
}
