package redact

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
//
// All of these surface from redactor construction; a built redactor's
// traversal is total and cannot fail.
var (
	// ErrInvalidTag indicates a redact struct tag has an invalid value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnknownClassification indicates a redact tag names a classification
	// with no policy binding.
	ErrUnknownClassification = errors.New("unknown classification")

	// ErrNotClassifiable indicates a classification tag on a field whose
	// type does not bottom out in a string or SensitiveValue leaf.
	ErrNotClassifiable = errors.New("type is not classifiable")

	// ErrUnsupportedType indicates a redactor was requested for a
	// non-struct type.
	ErrUnsupportedType = errors.New("unsupported type")
)

// TagError reports a construction-time contract violation on a specific
// field. It wraps a sentinel error with the field path and tag value.
type TagError struct {
	Err   error  // Underlying sentinel error
	Field string // Field path that triggered the error (e.g. "Customer.Email")
	Tag   string // Offending tag value
}

func (e *TagError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("%s %q (field %s)", e.Err.Error(), e.Tag, e.Field)
	}
	return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
}

func (e *TagError) Unwrap() error {
	return e.Err
}

// newTagError creates a TagError for a field-level contract violation.
func newTagError(sentinel error, field, tag string) error {
	return &TagError{
		Err:   sentinel,
		Field: field,
		Tag:   tag,
	}
}
