package domain

import "errors"

var (
	// ErrNotFound signals a missing record.
	ErrNotFound = errors.New("value not found")
	// ErrDuplicateValue signals that the value is already stored.
	ErrDuplicateValue = errors.New("value already exists")
	// ErrMissingField signals that the request body has no value field.
	ErrMissingField = errors.New("value field is required")
	// ErrInvalidType signals that the value field is not a string.
	ErrInvalidType = errors.New("value must be a string")
	// ErrValueTooLarge signals that the value exceeds the configured size limit.
	ErrValueTooLarge = errors.New("value too large")
	// ErrInvalidFilter signals a malformed structured filter.
	ErrInvalidFilter = errors.New("invalid filter")
	// ErrMissingQuery signals an absent natural-language query.
	ErrMissingQuery = errors.New("query parameter is required")
	// ErrUnparsableQuery signals a natural-language query with no recognized phrase.
	ErrUnparsableQuery = errors.New("unable to interpret query")
)
