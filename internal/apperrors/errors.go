package apperrors

import (
	"fmt"
	"strings"
)

// ValidationError reports required request fields that were absent. It is
// raised before any store access, so a failed validation never leaves a
// partial write behind.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// StoreError wraps a fault from the underlying data store. Handlers
// translate it to a 500 envelope; the cause is logged server-side only.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error in %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
