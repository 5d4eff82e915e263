package domain

import "errors"

var (
	// ErrNotFound signals a missing record.
	ErrNotFound = errors.New("not found")
	// ErrMalformedNumericField signals a present but non-numeric flat-file field.
	ErrMalformedNumericField = errors.New("malformed numeric field")
	// ErrTruncatedRecord signals a flat-file line with too few fields.
	ErrTruncatedRecord = errors.New("truncated record")
	// ErrInvalidRecord signals a record missing required attributes.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrInvalidQuery signals unusable query parameters.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrStoreUnavailable signals a document store connectivity failure.
	ErrStoreUnavailable = errors.New("store unavailable")
)
