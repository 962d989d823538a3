package client

import (
	"errors"
	"fmt"
)

// ErrFetch matches every failure returned by FetchTransactions.
var ErrFetch = errors.New("fetch transactions")

// ErrMalformedBody is returned when the response body is not a JSON object.
var ErrMalformedBody = fmt.Errorf("%w: malformed response body", ErrFetch)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Status     string
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s failed with status %s: %s", e.URL, e.Status, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrFetch }

// FieldError reports a required response field that is missing or has the
// wrong JSON type. Field is a path such as "transactions[2].amount".
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("response field %s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error { return ErrFetch }
