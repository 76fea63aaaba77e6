package shopping

import "fmt"

// ValidationError reports bad input to a service operation. The caller
// boundary is expected to catch it with errors.As and surface the
// reason; storage failures are returned as plain wrapped errors and are
// never a ValidationError.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
