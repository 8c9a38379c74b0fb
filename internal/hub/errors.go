package hub

import (
	"errors"
	"fmt"
)

// ErrEmptyInput indicates a required text field was blank. The operation
// aborts with no state change.
var ErrEmptyInput = errors.New("required text is empty")

// NotFoundError indicates an operation referenced a stale or unknown id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
