package dataset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInput is returned when the input cannot be read as a table.
var ErrMalformedInput = errors.New("malformed input")

// MissingColumnsError is returned when required columns are absent after aliasing.
type MissingColumnsError struct {
	Missing []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s\nExpected columns: %s",
		strings.Join(e.Missing, ", "), strings.Join(RequiredColumns(), ", "))
}
