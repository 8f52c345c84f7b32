package registry

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a well-formed identifier matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned when an identifier is not a positive integer.
	ErrInvalidID = errors.New("invalid record id")
)

// ValidationError reports which required fields were missing from a
// create request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("missing required field(s): %s", strings.Join(e.Fields, ", "))
}
