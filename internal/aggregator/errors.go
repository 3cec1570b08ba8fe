package aggregator

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every InputError.
var ErrInvalidInput = errors.New("invalid input")

// ErrDownstream is matched by every DownstreamError.
var ErrDownstream = errors.New("downstream failure")

// Downstream stages that can fail a request.
const (
	StageSellerDirectory = "seller_directory"
	StageSearchIndex     = "search_index"
)

// InputError reports a request parameter that failed validation.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// DownstreamError reports a failed call to the seller directory or the
// search index. Stage is safe to show to clients; Err is not.
type DownstreamError struct {
	Stage string
	Err   error
}

func (e *DownstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *DownstreamError) Unwrap() []error {
	return []error{ErrDownstream, e.Err}
}
